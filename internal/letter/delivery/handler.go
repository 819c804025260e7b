package delivery

import (
	"io"
	"net/http"
	"strconv"
	"strings"

	"letteron-backend/internal/letter/dto"
	"letteron-backend/internal/letter/usecase"

	"github.com/gin-gonic/gin"
)

type LetterHandler struct {
	letterUsecase usecase.LetterUsecase
}

func NewLetterHandler(letterUsecase usecase.LetterUsecase) *LetterHandler {
	return &LetterHandler{
		letterUsecase: letterUsecase,
	}
}

func respondError(c *gin.Context, err error, fallback string) {
	if usecase.IsValidation(err) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err.Error() == "letter not found" {
		c.JSON(http.StatusNotFound, gin.H{"error": "letter not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
}

// ProcessImages ingests letter photos and returns the materialized letter
// POST /api/letters/process-images
func (h *LetterHandler) ProcessImages(c *gin.Context) {
	userID := c.GetString("userID")

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "expected multipart form data"})
		return
	}
	headers := form.File["files"]

	files := make([]dto.UploadedImage, 0, len(headers))
	for _, header := range headers {
		f, err := header.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "could not read uploaded file"})
			return
		}
		content, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "could not read uploaded file"})
			return
		}
		files = append(files, dto.UploadedImage{
			Content:     content,
			Filename:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
		})
	}

	resp, err := h.letterUsecase.ProcessImages(c.Request.Context(), userID, files)
	if err != nil {
		respondError(c, err, "error processing images")
		return
	}

	// translation is best effort; the letter is already stored
	if lang := c.PostForm("translation_language"); lang != "" && c.PostForm("include_translation") == "true" {
		_, _ = h.letterUsecase.Translate(c.Request.Context(), userID, resp.LetterID, lang)
	}

	c.JSON(http.StatusCreated, resp)
}

// ListLetters lists the caller's letters
// GET /api/letters
func (h *LetterHandler) ListLetters(c *gin.Context) {
	userID := c.GetString("userID")

	filters := dto.ListFilters{}
	if v, ok := boolQuery(c, "archived"); ok {
		filters.Archived = &v
	}
	if v, ok := boolQuery(c, "deleted"); ok {
		filters.Deleted = &v
	}
	if v, ok := boolQuery(c, "flagged"); ok {
		filters.Flagged = &v
	}
	if v, ok := boolQuery(c, "snoozed"); ok {
		filters.Snoozed = &v
	}
	if category := c.Query("category"); category != "" {
		filters.Category = &category
	}
	if limit, err := strconv.Atoi(c.Query("limit")); err == nil && limit > 0 {
		filters.Limit = limit
	}

	letters, err := h.letterUsecase.ListLetters(userID, filters)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error fetching letters"})
		return
	}

	c.JSON(http.StatusOK, letters)
}

// GetLetter returns one letter
// GET /api/letters/:id
func (h *LetterHandler) GetLetter(c *gin.Context) {
	userID := c.GetString("userID")

	letter, err := h.letterUsecase.GetLetter(userID, c.Param("id"))
	if err != nil {
		respondError(c, err, "error fetching letter")
		return
	}

	c.JSON(http.StatusOK, letter)
}

// UpdateLetter applies a partial update
// PATCH /api/letters/:id
func (h *LetterHandler) UpdateLetter(c *gin.Context) {
	userID := c.GetString("userID")

	var req dto.LetterUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	letter, err := h.letterUsecase.UpdateLetter(userID, c.Param("id"), &req)
	if err != nil {
		respondError(c, err, "error updating letter")
		return
	}

	c.JSON(http.StatusOK, letter)
}

// DeleteLetter soft-deletes, or removes permanently with ?permanent=true
// DELETE /api/letters/:id
func (h *LetterHandler) DeleteLetter(c *gin.Context) {
	userID := c.GetString("userID")
	permanent := c.Query("permanent") == "true"

	if err := h.letterUsecase.DeleteLetter(c.Request.Context(), userID, c.Param("id"), permanent); err != nil {
		respondError(c, err, "error deleting letter")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "letter deleted successfully"})
}

// SnoozeLetter hides a letter until a future time
// POST /api/letters/:id/snooze
func (h *LetterHandler) SnoozeLetter(c *gin.Context) {
	userID := c.GetString("userID")

	var req dto.SnoozeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	letter, err := h.letterUsecase.Snooze(userID, c.Param("id"), req.SnoozeUntil)
	if err != nil {
		respondError(c, err, "error snoozing letter")
		return
	}

	c.JSON(http.StatusOK, letter)
}

// ArchiveLetter moves a letter out of the inbox
// POST /api/letters/:id/archive
func (h *LetterHandler) ArchiveLetter(c *gin.Context) {
	userID := c.GetString("userID")

	letter, err := h.letterUsecase.Archive(userID, c.Param("id"))
	if err != nil {
		respondError(c, err, "error archiving letter")
		return
	}

	c.JSON(http.StatusOK, letter)
}

// RestoreLetter brings a letter back to the inbox
// POST /api/letters/:id/restore
func (h *LetterHandler) RestoreLetter(c *gin.Context) {
	userID := c.GetString("userID")

	letter, err := h.letterUsecase.Restore(userID, c.Param("id"))
	if err != nil {
		respondError(c, err, "error restoring letter")
		return
	}

	c.JSON(http.StatusOK, letter)
}

// TranslateLetter renders the letter content in another language
// POST /api/letters/:id/translate
func (h *LetterHandler) TranslateLetter(c *gin.Context) {
	userID := c.GetString("userID")

	var req dto.TranslationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.letterUsecase.Translate(c.Request.Context(), userID, c.Param("id"), req.TargetLanguage)
	if err != nil {
		respondError(c, err, "error translating letter")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// SearchLetters matches a query across subject, sender and content
// GET /api/search
func (h *LetterHandler) SearchLetters(c *gin.Context) {
	userID := c.GetString("userID")

	q := c.Query("q")
	if q == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter q is required"})
		return
	}
	limit := 20
	if v, err := strconv.Atoi(c.Query("limit")); err == nil && v > 0 && v <= 100 {
		limit = v
	}

	resp, err := h.letterUsecase.Search(userID, q, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error searching letters"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

var suggestionTerms = []string{
	"bills", "bank", "insurance", "government", "medical",
	"education", "legal", "delivery", "subscription", "utilities",
}

// SearchSuggestions completes a partial query against common terms
// GET /api/search/suggestions
func (h *LetterHandler) SearchSuggestions(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter q is required"})
		return
	}
	limit := 5
	if v, err := strconv.Atoi(c.Query("limit")); err == nil && v >= 1 && v <= 10 {
		limit = v
	}

	suggestions := make([]string, 0, limit)
	needle := strings.ToLower(q)
	for _, term := range suggestionTerms {
		if strings.Contains(term, needle) {
			suggestions = append(suggestions, term)
			if len(suggestions) == limit {
				break
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{"query": q, "suggestions": suggestions})
}

func boolQuery(c *gin.Context, name string) (bool, bool) {
	v := c.Query(name)
	if v == "" {
		return false, false
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, false
	}
	return b, true
}
