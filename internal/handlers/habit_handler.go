package handlers

import (
	"context"
	"net/http"

	"studyhub-service/internal/models"
	"studyhub-service/internal/service"

	"github.com/gin-gonic/gin"
)

type HabitHandler struct {
	Service *service.HabitService
}

func NewHabitHandler(s *service.HabitService) *HabitHandler {
	return &HabitHandler{Service: s}
}

func userIDFrom(c *gin.Context) (string, bool) {
	userID := c.GetHeader("X-User-ID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User ID is required"})
		return "", false
	}
	return userID, true
}

// GetHabits lists the learner's habits with streaks rolled forward
func (h *HabitHandler) GetHabits(c *gin.Context) {
	userID, ok := userIDFrom(c)
	if !ok {
		return
	}

	habits, err := h.Service.ListHabits(context.Background(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"habits": habits,
		"count":  len(habits),
	})
}

// CreateHabit creates a new habit
func (h *HabitHandler) CreateHabit(c *gin.Context) {
	userID, ok := userIDFrom(c)
	if !ok {
		return
	}

	var habit models.Habit
	if err := c.ShouldBindJSON(&habit); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid habit format",
			"details": err.Error(),
		})
		return
	}
	habit.UserID = userID

	if err := h.Service.CreateHabit(context.Background(), &habit); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, habit)
}

// ToggleCompletion flips today's completion for a habit
func (h *HabitHandler) ToggleCompletion(c *gin.Context) {
	habit, err := h.Service.ToggleCompletion(context.Background(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Habit not found"})
		return
	}
	c.JSON(http.StatusOK, habit)
}

// DeleteHabit removes a habit
func (h *HabitHandler) DeleteHabit(c *gin.Context) {
	if err := h.Service.DeleteHabit(context.Background(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Habit deleted successfully"})
}

// GetStats returns aggregate habit statistics for the learner
func (h *HabitHandler) GetStats(c *gin.Context) {
	userID, ok := userIDFrom(c)
	if !ok {
		return
	}

	stats, err := h.Service.Stats(context.Background(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}
