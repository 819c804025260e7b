package api

import (
	authUsecase "letteron-backend/internal/auth/usecase"
	chatUsecase "letteron-backend/internal/chat/usecase"
	letterUsecase "letteron-backend/internal/letter/usecase"
	reminderUsecase "letteron-backend/internal/reminder/usecase"
	"letteron-backend/pkg/config"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	authUsecase     authUsecase.AuthUsecase
	letterUsecase   letterUsecase.LetterUsecase
	chatUsecase     chatUsecase.ChatUsecase
	reminderUsecase reminderUsecase.ReminderUsecase
	config          *config.Config
}

func NewHandler(
	authUc authUsecase.AuthUsecase,
	letterUc letterUsecase.LetterUsecase,
	chatUc chatUsecase.ChatUsecase,
	reminderUc reminderUsecase.ReminderUsecase,
	cfg *config.Config,
) *Handler {
	return &Handler{
		authUsecase:     authUc,
		letterUsecase:   letterUc,
		chatUsecase:     chatUc,
		reminderUsecase: reminderUc,
		config:          cfg,
	}
}

func (h *Handler) Start(addr string) error {
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	r.Use(h.corsMiddleware())

	SetupRoutes(r, h.authUsecase, h.letterUsecase, h.chatUsecase, h.reminderUsecase)

	return r.Run(addr)
}

func (h *Handler) corsMiddleware() gin.HandlerFunc {
	allowed := map[string]bool{}
	allowAll := len(h.config.CORSOrigins) == 0
	for _, origin := range h.config.CORSOrigins {
		if origin == "*" {
			allowAll = true
		}
		allowed[origin] = true
	}

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" && (allowAll || allowed[origin]) {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		} else if allowAll {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
