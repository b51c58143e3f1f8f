package service

import (
	"context"
	"strings"

	"studyhub-service/internal/models"
	"studyhub-service/internal/repository"

	"github.com/google/uuid"
)

type CourseService struct {
	Repo *repository.CourseRepository
}

// CourseFilter mirrors the catalog filter controls: topic, difficulty,
// a maximum time budget in hours and a free-text search term.
type CourseFilter struct {
	Topic      string
	Difficulty string
	MaxHours   float64
	Search     string
}

func NewCourseService(repo *repository.CourseRepository) *CourseService {
	return &CourseService{Repo: repo}
}

func (s *CourseService) GetCourse(ctx context.Context, id string) (*models.Course, error) {
	return s.Repo.FindByID(ctx, id)
}

func (s *CourseService) CreateCourse(ctx context.Context, course *models.Course) error {
	if course.ID == "" {
		course.ID = uuid.NewString()
	}
	return s.Repo.Create(ctx, course)
}

// ListCourses applies the catalog filters to the full course list.
func (s *CourseService) ListCourses(ctx context.Context, filter CourseFilter) ([]models.Course, error) {
	courses, err := s.Repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	matched := courses[:0]
	for _, c := range courses {
		if !matchesFilter(&c, filter) {
			continue
		}
		matched = append(matched, c)
	}
	return matched, nil
}

func matchesFilter(course *models.Course, filter CourseFilter) bool {
	if filter.Difficulty != "" && filter.Difficulty != "all" &&
		!strings.EqualFold(course.Difficulty, filter.Difficulty) {
		return false
	}
	if filter.MaxHours > 0 && course.EstimatedHours > filter.MaxHours {
		return false
	}
	if filter.Topic != "" && filter.Topic != "all" {
		found := false
		for _, topic := range course.Topics {
			if strings.EqualFold(topic, filter.Topic) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if filter.Search != "" {
		term := strings.ToLower(filter.Search)
		if !strings.Contains(strings.ToLower(course.Title), term) &&
			!strings.Contains(strings.ToLower(course.Description), term) {
			return false
		}
	}
	return true
}
