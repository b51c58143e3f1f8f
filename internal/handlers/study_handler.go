package handlers

import (
	"context"
	"errors"
	"net/http"

	"studyhub-service/internal/service"
	"studyhub-service/internal/srs"

	"github.com/gin-gonic/gin"
)

type StudyHandler struct {
	Service *service.StudyService
}

func NewStudyHandler(s *service.StudyService) *StudyHandler {
	return &StudyHandler{Service: s}
}

// StartSession begins a study session over a deck
func (h *StudyHandler) StartSession(c *gin.Context) {
	var req struct {
		DeckID string `json:"deck_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request format",
			"details": err.Error(),
		})
		return
	}

	_, status, err := h.Service.StartSession(context.Background(), req.DeckID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Deck not found"})
		return
	}
	c.JSON(http.StatusCreated, status)
}

// GetStatus returns the current card and progress
func (h *StudyHandler) GetStatus(c *gin.Context) {
	status, err := h.Service.Status(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	}
	c.JSON(http.StatusOK, status)
}

// RecordResponse applies a known or unknown response to the current card
func (h *StudyHandler) RecordResponse(c *gin.Context) {
	var req struct {
		Known *bool `json:"known" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request format",
			"details": err.Error(),
		})
		return
	}

	status, err := h.Service.RecordResponse(context.Background(), c.Param("id"), *req.Known)
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
	case errors.Is(err, srs.ErrSessionComplete):
		c.JSON(http.StatusConflict, gin.H{"error": "Session already complete"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusOK, status)
	}
}

// GetSummary returns the end-of-session report
func (h *StudyHandler) GetSummary(c *gin.Context) {
	summary, err := h.Service.Summary(c.Param("id"))
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
	case errors.Is(err, service.ErrSessionInProgress):
		c.JSON(http.StatusConflict, gin.H{"error": "Session still in progress"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusOK, summary)
	}
}

// EndSession discards a session
func (h *StudyHandler) EndSession(c *gin.Context) {
	if err := h.Service.EndSession(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Session ended"})
}
