package repository

import (
	"context"
	"errors"
	"time"

	"studyhub-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type LearnerRepository struct {
	Col *mongo.Collection
}

func NewLearnerRepository(db *mongo.Database) *LearnerRepository {
	return &LearnerRepository{Col: db.Collection("learners")}
}

// FindByUser returns the learner's profile, creating a default one
// (medium difficulty) for first-time learners.
func (r *LearnerRepository) FindByUser(ctx context.Context, userID string) (*models.LearnerProfile, error) {
	var profile models.LearnerProfile
	err := r.Col.FindOne(ctx, bson.M{"_id": userID}).Decode(&profile)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return &models.LearnerProfile{
			UserID:          userID,
			DifficultyLevel: 2,
			UpdatedAt:       time.Now(),
		}, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *LearnerRepository) Save(ctx context.Context, profile *models.LearnerProfile) error {
	opts := options.Replace().SetUpsert(true)
	_, err := r.Col.ReplaceOne(ctx, bson.M{"_id": profile.UserID}, profile, opts)
	return err
}
