package handlers

import (
	"context"
	"net/http"

	"studyhub-service/internal/service"

	"github.com/gin-gonic/gin"
)

type ResultHandler struct {
	Service *service.ResultService
}

func NewResultHandler(s *service.ResultService) *ResultHandler {
	return &ResultHandler{Service: s}
}

// GetResultBySession retrieves the result for a quiz session
func (h *ResultHandler) GetResultBySession(c *gin.Context) {
	result, err := h.Service.GetResultBySession(context.Background(), c.Param("sessionId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Result not found"})
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetMyResults lists the authenticated learner's quiz history
func (h *ResultHandler) GetMyResults(c *gin.Context) {
	userID := c.GetHeader("X-User-ID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User ID is required"})
		return
	}

	results, err := h.Service.GetResultsByUser(context.Background(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"results": results,
		"count":   len(results),
	})
}

// GetResultsByQuiz lists all results recorded for a quiz
func (h *ResultHandler) GetResultsByQuiz(c *gin.Context) {
	results, err := h.Service.GetResultsByQuiz(context.Background(), c.Param("quizId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"results": results,
		"count":   len(results),
	})
}
