package main

import (
	"context"
	"log"

	api "letteron-backend/cmd/api"
	authdomain "letteron-backend/internal/auth/domain"
	authRepo "letteron-backend/internal/auth/repository"
	authUsecase "letteron-backend/internal/auth/usecase"
	chatdomain "letteron-backend/internal/chat/domain"
	chatRepo "letteron-backend/internal/chat/repository"
	chatUsecase "letteron-backend/internal/chat/usecase"
	letterdomain "letteron-backend/internal/letter/domain"
	letterRepo "letteron-backend/internal/letter/repository"
	letterUsecase "letteron-backend/internal/letter/usecase"
	reminderdomain "letteron-backend/internal/reminder/domain"
	reminderRepo "letteron-backend/internal/reminder/repository"
	"letteron-backend/internal/reminder/scheduler"
	reminderUsecase "letteron-backend/internal/reminder/usecase"
	"letteron-backend/pkg/analysis"
	"letteron-backend/pkg/config"
	"letteron-backend/pkg/database"
	"letteron-backend/pkg/ocr"
	"letteron-backend/pkg/storage"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awslambda "github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(
		&authdomain.User{},
		&letterdomain.Letter{},
		&reminderdomain.Reminder{},
		&chatdomain.ConversationMessage{},
	); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize AWS clients
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(cfg.AWSRegion))
	if err != nil {
		log.Fatal("Failed to load AWS configuration:", err)
	}
	s3Client := s3.NewFromConfig(awsCfg)
	lambdaClient := awslambda.NewFromConfig(awsCfg)

	store := storage.NewS3Store(s3Client, cfg)
	extractor := ocr.NewLambdaExtractor(lambdaClient, cfg)
	analyzer := analysis.NewLambdaAnalyzer(lambdaClient, cfg)

	// Initialize repositories (dependency injection)
	userRepository := authRepo.NewUserRepository(db)
	letterRepository := letterRepo.NewLetterRepository(db)
	reminderRepository := reminderRepo.NewReminderRepository(db)
	conversationRepository := chatRepo.NewConversationRepository(db)

	// Initialize use cases (dependency injection)
	authUc := authUsecase.NewAuthUsecase(userRepository, cfg)
	letterUc := letterUsecase.NewLetterUsecase(letterRepository, store, extractor, analyzer, cfg)
	chatUc := chatUsecase.NewChatUsecase(conversationRepository, letterRepository, analyzer)
	reminderUc := reminderUsecase.NewReminderUsecase(reminderRepository, letterRepository)

	// Start reminder dispatcher
	dispatcher := scheduler.NewReminderDispatcher(reminderRepository, scheduler.LogNotifier{}, cfg.ReminderCheckInterval)
	dispatcher.Start()
	defer dispatcher.Stop()

	// Initialize HTTP handler
	handler := api.NewHandler(authUc, letterUc, chatUc, reminderUc, cfg)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
