package api

import (
	"net/http"

	"letteron-backend/internal/auth/delivery"
	authUsecase "letteron-backend/internal/auth/usecase"
	chatDelivery "letteron-backend/internal/chat/delivery"
	chatUsecase "letteron-backend/internal/chat/usecase"
	letterDelivery "letteron-backend/internal/letter/delivery"
	letterUsecase "letteron-backend/internal/letter/usecase"
	reminderDelivery "letteron-backend/internal/reminder/delivery"
	reminderUsecase "letteron-backend/internal/reminder/usecase"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	r *gin.Engine,
	authUc authUsecase.AuthUsecase,
	letterUc letterUsecase.LetterUsecase,
	chatUc chatUsecase.ChatUsecase,
	reminderUc reminderUsecase.ReminderUsecase,
) {
	authHandler := delivery.NewAuthHandler(authUc)
	letterHandler := letterDelivery.NewLetterHandler(letterUc)
	chatHandler := chatDelivery.NewChatHandler(chatUc)
	reminderHandler := reminderDelivery.NewReminderHandler(reminderUc)

	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", delivery.AuthMiddleware(authUc), authHandler.Me)
		}

		// Letter routes (protected)
		letters := api.Group("/letters")
		letters.Use(delivery.AuthMiddleware(authUc))
		{
			letters.POST("/process-images", letterHandler.ProcessImages)
			letters.GET("", letterHandler.ListLetters)
			letters.GET("/:id", letterHandler.GetLetter)
			letters.PATCH("/:id", letterHandler.UpdateLetter)
			letters.DELETE("/:id", letterHandler.DeleteLetter)
			letters.POST("/:id/snooze", letterHandler.SnoozeLetter)
			letters.POST("/:id/archive", letterHandler.ArchiveLetter)
			letters.POST("/:id/restore", letterHandler.RestoreLetter)
			letters.POST("/:id/translate", letterHandler.TranslateLetter)
		}

		// Search routes (protected)
		search := api.Group("/search")
		search.Use(delivery.AuthMiddleware(authUc))
		{
			search.GET("", letterHandler.SearchLetters)
			search.GET("/suggestions", letterHandler.SearchSuggestions)
		}

		// Chat routes (protected)
		chat := api.Group("/chat")
		chat.Use(delivery.AuthMiddleware(authUc))
		{
			chat.POST("", chatHandler.Chat)
			chat.DELETE("/:letterID/history", chatHandler.ClearHistory)
		}

		// Reminder routes (protected)
		reminders := api.Group("/reminders")
		reminders.Use(delivery.AuthMiddleware(authUc))
		{
			reminders.POST("", reminderHandler.CreateReminder)
			reminders.GET("", reminderHandler.ListReminders)
			reminders.GET("/:id", reminderHandler.GetReminder)
			reminders.PATCH("/:id", reminderHandler.UpdateReminder)
			reminders.DELETE("/:id", reminderHandler.DeleteReminder)
		}
	}
}
