package handlers

import (
	"context"
	"net/http"
	"strconv"

	"studyhub-service/internal/models"
	"studyhub-service/internal/service"

	"github.com/gin-gonic/gin"
)

type CourseHandler struct {
	Service *service.CourseService
}

func NewCourseHandler(s *service.CourseService) *CourseHandler {
	return &CourseHandler{Service: s}
}

// GetCourses lists the course catalog with optional filters
func (h *CourseHandler) GetCourses(c *gin.Context) {
	filter := service.CourseFilter{
		Topic:      c.Query("topic"),
		Difficulty: c.Query("difficulty"),
		Search:     c.Query("search"),
	}
	if maxHours := c.Query("max_hours"); maxHours != "" {
		hours, err := strconv.ParseFloat(maxHours, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "max_hours must be a number"})
			return
		}
		filter.MaxHours = hours
	}

	courses, err := h.Service.ListCourses(context.Background(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"courses": courses,
		"count":   len(courses),
	})
}

// GetCourse retrieves a single course
func (h *CourseHandler) GetCourse(c *gin.Context) {
	course, err := h.Service.GetCourse(context.Background(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
		return
	}
	c.JSON(http.StatusOK, course)
}

// CreateCourse adds a course to the catalog
func (h *CourseHandler) CreateCourse(c *gin.Context) {
	var course models.Course
	if err := c.ShouldBindJSON(&course); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid course format",
			"details": err.Error(),
		})
		return
	}

	if err := h.Service.CreateCourse(context.Background(), &course); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, course)
}
