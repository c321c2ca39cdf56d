// internal/app/store/lessons/lessonstore.go
package lessonstore

import (
	"context"
	"time"

	"github.com/dalemusser/coursehub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store provides access to the lessons collection.
type Store struct {
	c *mongo.Collection
}

// New creates a new lesson store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("lessons")}
}

// Insert stores a new lesson and returns it with its generated ID.
func (s *Store) Insert(ctx context.Context, lesson models.Lesson) (models.Lesson, error) {
	if lesson.ID.IsZero() {
		lesson.ID = primitive.NewObjectID()
	}
	if lesson.CreatedAt.IsZero() {
		lesson.CreatedAt = time.Now().UTC()
	}
	if _, err := s.c.InsertOne(ctx, lesson); err != nil {
		return models.Lesson{}, err
	}
	return lesson, nil
}

// ListByCourse returns all lessons of a course sorted by owning unit and
// ordinal, so grouping by unit preserves authoring order.
func (s *Store) ListByCourse(ctx context.Context, courseID primitive.ObjectID) ([]models.Lesson, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "unit_id", Value: 1},
		{Key: "ordinal", Value: 1},
	})
	cur, err := s.c.Find(ctx, bson.M{"course_id": courseID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var lessons []models.Lesson
	if err := cur.All(ctx, &lessons); err != nil {
		return nil, err
	}
	return lessons, nil
}

// CountByUnit returns the number of lessons in a unit. Used to assign the
// next ordinal when authoring.
func (s *Store) CountByUnit(ctx context.Context, courseID primitive.ObjectID, unitID string) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{"course_id": courseID, "unit_id": unitID})
}

// ReplaceAll writes back every lesson of a course in one bulk call,
// touching only the availability-editable fields.
func (s *Store) ReplaceAll(ctx context.Context, courseID primitive.ObjectID, lessons []models.Lesson) error {
	if len(lessons) == 0 {
		return nil
	}
	now := time.Now().UTC()
	writes := make([]mongo.WriteModel, 0, len(lessons))
	for _, l := range lessons {
		writes = append(writes, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"course_id": courseID, "lesson_id": l.LessonID}).
			SetUpdate(bson.M{"$set": bson.M{
				"availability":           l.Availability,
				"shown_when_unavailable": l.ShownWhenUnavailable,
				"updated_at":             now,
			}}))
	}
	_, err := s.c.BulkWrite(ctx, writes, options.BulkWrite().SetOrdered(false))
	return err
}
