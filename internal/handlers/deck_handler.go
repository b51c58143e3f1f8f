package handlers

import (
	"context"
	"net/http"

	"studyhub-service/internal/models"
	"studyhub-service/internal/service"

	"github.com/gin-gonic/gin"
)

type DeckHandler struct {
	Service *service.DeckService
}

func NewDeckHandler(s *service.DeckService) *DeckHandler {
	return &DeckHandler{Service: s}
}

// GetDecks lists all flashcard decks
func (h *DeckHandler) GetDecks(c *gin.Context) {
	decks, err := h.Service.GetAllDecks(context.Background())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"decks": decks,
		"count": len(decks),
	})
}

// GetDeck retrieves a single deck with its cards
func (h *DeckHandler) GetDeck(c *gin.Context) {
	id := c.Param("id")
	deck, err := h.Service.GetDeck(context.Background(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Deck not found"})
		return
	}
	c.JSON(http.StatusOK, deck)
}

// CreateDeck creates a new deck
func (h *DeckHandler) CreateDeck(c *gin.Context) {
	var deck models.Deck
	if err := c.ShouldBindJSON(&deck); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid deck format",
			"details": err.Error(),
		})
		return
	}

	if err := h.Service.CreateDeck(context.Background(), &deck); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, deck)
}

// UpdateDeck updates deck metadata
func (h *DeckHandler) UpdateDeck(c *gin.Context) {
	id := c.Param("id")
	var update map[string]interface{}
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Service.UpdateDeck(context.Background(), id, update); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Deck updated successfully"})
}

// AddCard appends a card to a deck
func (h *DeckHandler) AddCard(c *gin.Context) {
	id := c.Param("id")
	var card models.Card
	if err := c.ShouldBindJSON(&card); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid card format",
			"details": err.Error(),
		})
		return
	}

	deck, err := h.Service.AddCard(context.Background(), id, card)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Deck not found"})
		return
	}
	c.JSON(http.StatusCreated, deck)
}

// DeleteDeck removes a deck
func (h *DeckHandler) DeleteDeck(c *gin.Context) {
	id := c.Param("id")
	if err := h.Service.DeleteDeck(context.Background(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Deck deleted successfully"})
}
