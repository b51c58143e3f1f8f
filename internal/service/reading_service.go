package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"studyhub-service/internal/models"
	"studyhub-service/internal/repository"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

type ReadingService struct {
	Repo *repository.BookRepository
}

// ReadingStats summarizes a learner's reading log.
type ReadingStats struct {
	TotalBooks    int     `json:"total_books"`
	Completed     int     `json:"completed"`
	InProgress    int     `json:"in_progress"`
	NotStarted    int     `json:"not_started"`
	AverageRating float64 `json:"average_rating"`
}

func NewReadingService(repo *repository.BookRepository) *ReadingService {
	return &ReadingService{Repo: repo}
}

// ListBooks returns a learner's books, optionally filtered by a search
// term over title and author, sorted by the given field.
func (s *ReadingService) ListBooks(ctx context.Context, userID, search, sortBy string) ([]models.Book, error) {
	books, err := s.Repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if search != "" {
		term := strings.ToLower(search)
		filtered := books[:0]
		for _, b := range books {
			if strings.Contains(strings.ToLower(b.Title), term) ||
				strings.Contains(strings.ToLower(b.Author), term) {
				filtered = append(filtered, b)
			}
		}
		books = filtered
	}

	switch sortBy {
	case "author":
		sort.SliceStable(books, func(i, j int) bool { return books[i].Author < books[j].Author })
	case "rating":
		sort.SliceStable(books, func(i, j int) bool { return books[i].Rating > books[j].Rating })
	case "date":
		sort.SliceStable(books, func(i, j int) bool { return books[i].AddedAt.After(books[j].AddedAt) })
	default:
		sort.SliceStable(books, func(i, j int) bool { return books[i].Title < books[j].Title })
	}

	return books, nil
}

func (s *ReadingService) AddBook(ctx context.Context, book *models.Book) error {
	book.ID = uuid.NewString()
	now := time.Now()
	book.AddedAt = now
	book.UpdatedAt = now
	if book.Progress == "" {
		book.Progress = models.ProgressNotStarted
	}
	return s.Repo.Create(ctx, book)
}

func (s *ReadingService) UpdateBook(ctx context.Context, id string, update map[string]interface{}) error {
	update["updated_at"] = time.Now()
	return s.Repo.Update(ctx, id, bson.M(update))
}

func (s *ReadingService) DeleteBook(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}

// Stats counts books per progress state and averages ratings over the
// rated ones.
func (s *ReadingService) Stats(ctx context.Context, userID string) (*ReadingStats, error) {
	books, err := s.Repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	stats := &ReadingStats{TotalBooks: len(books)}
	ratingSum, rated := 0, 0
	for _, b := range books {
		switch b.Progress {
		case models.ProgressCompleted:
			stats.Completed++
		case models.ProgressInProgress:
			stats.InProgress++
		default:
			stats.NotStarted++
		}
		if b.Rating > 0 {
			ratingSum += b.Rating
			rated++
		}
	}
	if rated > 0 {
		stats.AverageRating = float64(ratingSum) / float64(rated)
	}
	return stats, nil
}
