package handlers

import (
	"context"
	"net/http"

	"studyhub-service/internal/models"
	"studyhub-service/internal/service"

	"github.com/gin-gonic/gin"
)

type ReadingHandler struct {
	Service *service.ReadingService
}

func NewReadingHandler(s *service.ReadingService) *ReadingHandler {
	return &ReadingHandler{Service: s}
}

// GetBooks lists the learner's reading log
func (h *ReadingHandler) GetBooks(c *gin.Context) {
	userID, ok := userIDFrom(c)
	if !ok {
		return
	}

	books, err := h.Service.ListBooks(context.Background(), userID, c.Query("search"), c.Query("sort"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"books": books,
		"count": len(books),
	})
}

// AddBook adds a book to the reading log
func (h *ReadingHandler) AddBook(c *gin.Context) {
	userID, ok := userIDFrom(c)
	if !ok {
		return
	}

	var book models.Book
	if err := c.ShouldBindJSON(&book); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid book format",
			"details": err.Error(),
		})
		return
	}
	book.UserID = userID

	if err := h.Service.AddBook(context.Background(), &book); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, book)
}

// UpdateBook updates book fields such as progress, rating or notes
func (h *ReadingHandler) UpdateBook(c *gin.Context) {
	var update map[string]interface{}
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Service.UpdateBook(context.Background(), c.Param("id"), update); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Book updated successfully"})
}

// DeleteBook removes a book from the log
func (h *ReadingHandler) DeleteBook(c *gin.Context) {
	if err := h.Service.DeleteBook(context.Background(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Book deleted successfully"})
}

// GetStats returns reading progress statistics
func (h *ReadingHandler) GetStats(c *gin.Context) {
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
