package delivery

import (
	"net/http"

	"letteron-backend/internal/chat/dto"
	"letteron-backend/internal/chat/usecase"

	"github.com/gin-gonic/gin"
)

type ChatHandler struct {
	chatUsecase usecase.ChatUsecase
}

func NewChatHandler(chatUsecase usecase.ChatUsecase) *ChatHandler {
	return &ChatHandler{
		chatUsecase: chatUsecase,
	}
}

// Chat answers a question about a letter
// POST /api/chat
func (h *ChatHandler) Chat(c *gin.Context) {
	userID := c.GetString("userID")

	var req dto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.chatUsecase.Chat(c.Request.Context(), userID, &req)
	if err != nil {
		if err.Error() == "letter not found" {
			c.JSON(http.StatusNotFound, gin.H{"error": "letter not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error generating chat response"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ClearHistory wipes a letter's conversation
// DELETE /api/chat/:letterID/history
func (h *ChatHandler) ClearHistory(c *gin.Context) {
	userID := c.GetString("userID")

	deleted, err := h.chatUsecase.ClearHistory(userID, c.Param("letterID"))
	if err != nil {
		if err.Error() == "letter not found" {
			c.JSON(http.StatusNotFound, gin.H{"error": "letter not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error clearing conversation"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "conversation cleared", "deleted": deleted})
}
