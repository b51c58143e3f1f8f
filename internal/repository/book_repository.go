package repository

import (
	"context"

	"studyhub-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type BookRepository struct {
	Col *mongo.Collection
}

func NewBookRepository(db *mongo.Database) *BookRepository {
	return &BookRepository{Col: db.Collection("books")}
}

func (r *BookRepository) FindByUser(ctx context.Context, userID string) ([]models.Book, error) {
	cur, err := r.Col.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var books []models.Book
	for cur.Next(ctx) {
		var b models.Book
		if err := cur.Decode(&b); err != nil {
			return nil, err
		}
		books = append(books, b)
	}
	return books, nil
}

func (r *BookRepository) FindByID(ctx context.Context, id string) (*models.Book, error) {
	var book models.Book
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&book)
	if err != nil {
		return nil, err
	}
	return &book, nil
}

func (r *BookRepository) Create(ctx context.Context, book *models.Book) error {
	_, err := r.Col.InsertOne(ctx, book)
	return err
}

func (r *BookRepository) Update(ctx context.Context, id string, update bson.M) error {
	_, err := r.Col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": update})
	return err
}

func (r *BookRepository) Delete(ctx context.Context, id string) error {
	_, err := r.Col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
