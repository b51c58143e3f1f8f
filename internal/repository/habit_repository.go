package repository

import (
	"context"

	"studyhub-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type HabitRepository struct {
	Col *mongo.Collection
}

func NewHabitRepository(db *mongo.Database) *HabitRepository {
	return &HabitRepository{Col: db.Collection("habits")}
}

func (r *HabitRepository) FindByUser(ctx context.Context, userID string) ([]models.Habit, error) {
	cur, err := r.Col.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var habits []models.Habit
	for cur.Next(ctx) {
		var h models.Habit
		if err := cur.Decode(&h); err != nil {
			return nil, err
		}
		habits = append(habits, h)
	}
	return habits, nil
}

func (r *HabitRepository) FindByID(ctx context.Context, id string) (*models.Habit, error) {
	var habit models.Habit
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&habit)
	if err != nil {
		return nil, err
	}
	return &habit, nil
}

func (r *HabitRepository) Create(ctx context.Context, habit *models.Habit) error {
	_, err := r.Col.InsertOne(ctx, habit)
	return err
}

func (r *HabitRepository) Save(ctx context.Context, habit *models.Habit) error {
	_, err := r.Col.ReplaceOne(ctx, bson.M{"_id": habit.ID}, habit)
	return err
}

func (r *HabitRepository) Delete(ctx context.Context, id string) error {
	_, err := r.Col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
