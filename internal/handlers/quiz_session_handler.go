package handlers

import (
	"context"
	"errors"
	"net/http"

	"studyhub-service/internal/adaptive"
	"studyhub-service/internal/service"

	"github.com/gin-gonic/gin"
)

type QuizSessionHandler struct {
	Service *service.QuizSessionService
}

func NewQuizSessionHandler(s *service.QuizSessionService) *QuizSessionHandler {
	return &QuizSessionHandler{Service: s}
}

// StartSession begins an adaptive quiz attempt
func (h *QuizSessionHandler) StartSession(c *gin.Context) {
	var req struct {
		QuizID string `json:"quiz_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request format",
			"details": err.Error(),
		})
		return
	}

	userID := c.GetHeader("X-User-ID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User ID is required"})
		return
	}

	_, status, err := h.Service.Start(context.Background(), req.QuizID, userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Quiz not found"})
		return
	}
	c.JSON(http.StatusCreated, status)
}

// GetStatus returns session progress and the current question
func (h *QuizSessionHandler) GetStatus(c *gin.Context) {
	status, err := h.Service.Status(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	}
	c.JSON(http.StatusOK, status)
}

// SubmitAnswer records the learner's choice for the current question
func (h *QuizSessionHandler) SubmitAnswer(c *gin.Context) {
	var req struct {
		OptionID string `json:"option_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid answer format",
			"details": err.Error(),
		})
		return
	}

	feedback, err := h.Service.SubmitAnswer(context.Background(), c.Param("id"), req.OptionID)
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
	case errors.Is(err, adaptive.ErrSessionComplete):
		c.JSON(http.StatusConflict, gin.H{"error": "Session already complete"})
	case errors.Is(err, adaptive.ErrAlreadyAnswered):
		c.JSON(http.StatusConflict, gin.H{"error": "Current question already answered"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusOK, feedback)
	}
}

// NextQuestion advances to the next question
func (h *QuizSessionHandler) NextQuestion(c *gin.Context) {
	status, err := h.Service.Advance(context.Background(), c.Param("id"))
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
	case errors.Is(err, adaptive.ErrSessionComplete):
		c.JSON(http.StatusConflict, gin.H{"error": "Session already complete"})
	case errors.Is(err, adaptive.ErrNoAnswerRecorded):
		c.JSON(http.StatusConflict, gin.H{"error": "Current question has no answer yet"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusOK, status)
	}
}

// SubmitSession ends the attempt early and returns the scored result
func (h *QuizSessionHandler) SubmitSession(c *gin.Context) {
	result, err := h.Service.Finish(context.Background(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetResult returns the final result of a completed attempt
func (h *QuizSessionHandler) GetResult(c *gin.Context) {
	result, err := h.Service.Result(c.Param("id"))
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
	case errors.Is(err, service.ErrSessionInProgress):
		c.JSON(http.StatusConflict, gin.H{"error": "Session still in progress"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusOK, result)
	}
}

// AbandonSession discards an attempt without scoring it
func (h *QuizSessionHandler) AbandonSession(c *gin.Context) {
	if err := h.Service.Abandon(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Session abandoned"})
}
