package delivery

import (
	"net/http"

	"letteron-backend/internal/reminder/dto"
	"letteron-backend/internal/reminder/usecase"

	"github.com/gin-gonic/gin"
)

type ReminderHandler struct {
	reminderUsecase usecase.ReminderUsecase
}

func NewReminderHandler(reminderUsecase usecase.ReminderUsecase) *ReminderHandler {
	return &ReminderHandler{
		reminderUsecase: reminderUsecase,
	}
}

func respondError(c *gin.Context, err error, fallback string) {
	switch err.Error() {
	case "reminder not found", "letter not found":
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case "reminder time must be in the future":
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}

// CreateReminder schedules a reminder for a letter
// POST /api/reminders
func (h *ReminderHandler) CreateReminder(c *gin.Context) {
	userID := c.GetString("userID")

	var req dto.CreateReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.reminderUsecase.CreateReminder(userID, &req)
	if err != nil {
		respondError(c, err, "error creating reminder")
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// ListReminders lists the caller's reminders
// GET /api/reminders
func (h *ReminderHandler) ListReminders(c *gin.Context) {
	userID := c.GetString("userID")

	reminders, err := h.reminderUsecase.ListReminders(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error fetching reminders"})
		return
	}

	c.JSON(http.StatusOK, reminders)
}

// GetReminder returns one reminder
// GET /api/reminders/:id
func (h *ReminderHandler) GetReminder(c *gin.Context) {
	userID := c.GetString("userID")

	resp, err := h.reminderUsecase.GetReminder(userID, c.Param("id"))
	if err != nil {
		respondError(c, err, "error fetching reminder")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateReminder changes the time or message of a reminder
// PATCH /api/reminders/:id
func (h *ReminderHandler) UpdateReminder(c *gin.Context) {
	userID := c.GetString("userID")

	var req dto.UpdateReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.reminderUsecase.UpdateReminder(userID, c.Param("id"), &req)
	if err != nil {
		respondError(c, err, "error updating reminder")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// DeleteReminder removes a reminder
// DELETE /api/reminders/:id
func (h *ReminderHandler) DeleteReminder(c *gin.Context) {
	userID := c.GetString("userID")

	if err := h.reminderUsecase.DeleteReminder(userID, c.Param("id")); err != nil {
		respondError(c, err, "error deleting reminder")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "reminder deleted successfully"})
}
