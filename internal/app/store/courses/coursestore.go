// internal/app/store/courses/coursestore.go
package coursestore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/coursehub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when no course matches the lookup.
var ErrNotFound = errors.New("course not found")

// Store provides access to the courses collection.
type Store struct {
	c *mongo.Collection
}

// New creates a new course store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("courses")}
}

// Insert stores a new course and returns it with its generated ID.
func (s *Store) Insert(ctx context.Context, course models.Course) (models.Course, error) {
	if course.ID.IsZero() {
		course.ID = primitive.NewObjectID()
	}
	if course.CreatedAt.IsZero() {
		course.CreatedAt = time.Now().UTC()
	}
	if _, err := s.c.InsertOne(ctx, course); err != nil {
		return models.Course{}, err
	}
	return course, nil
}

// GetByID returns one course.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Course, error) {
	var course models.Course
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&course)
	if err == mongo.ErrNoDocuments {
		return models.Course{}, ErrNotFound
	}
	if err != nil {
		return models.Course{}, err
	}
	return course, nil
}

// List returns all courses ordered by folded title.
func (s *Store) List(ctx context.Context) ([]models.Course, error) {
	opts := options.Find().SetSort(bson.D{{Key: "title_ci", Value: 1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var courses []models.Course
	if err := cur.All(ctx, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

// Replace overwrites the stored course document, stamping updated_at.
func (s *Store) Replace(ctx context.Context, course models.Course) error {
	now := time.Now().UTC()
	course.UpdatedAt = &now
	res, err := s.c.ReplaceOne(ctx, bson.M{"_id": course.ID}, course)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
