// internal/app/store/settings/settingsstore.go
package settingsstore

import (
	"context"
	"time"

	"github.com/dalemusser/coursehub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store provides access to the course_settings collection.
// Each course has its own settings document (one document per course_id).
type Store struct {
	c *mongo.Collection
}

// New creates a new course-settings store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("course_settings")}
}

// Get returns the settings for a course. If none have been saved yet it
// returns defaults rather than an error.
func (s *Store) Get(ctx context.Context, courseID primitive.ObjectID) (models.CourseSettings, error) {
	var settings models.CourseSettings
	err := s.c.FindOne(ctx, bson.M{"course_id": courseID}).Decode(&settings)
	if err == mongo.ErrNoDocuments {
		return models.CourseSettings{
			CourseID:              courseID,
			ShowLessonsInSyllabus: false,
		}, nil
	}
	if err != nil {
		return models.CourseSettings{}, err
	}
	return settings, nil
}

// Save upserts the settings for a course in one call.
func (s *Store) Save(ctx context.Context, courseID primitive.ObjectID, settings models.CourseSettings) error {
	now := time.Now().UTC()

	update := bson.M{
		"$set": bson.M{
			"course_id":                courseID,
			"whitelist":                settings.Whitelist,
			"show_lessons_in_syllabus": settings.ShowLessonsInSyllabus,
			"updated_at":               now,
			"updated_by_id":            settings.UpdatedByID,
			"updated_by_name":          settings.UpdatedByName,
		},
		"$setOnInsert": bson.M{
			"_id": primitive.NewObjectID(),
		},
	}

	opts := options.Update().SetUpsert(true)
	_, err := s.c.UpdateOne(ctx, bson.M{"course_id": courseID}, update, opts)
	return err
}

// Delete removes the settings for a course. Used when deleting a course.
func (s *Store) Delete(ctx context.Context, courseID primitive.ObjectID) error {
	_, err := s.c.DeleteOne(ctx, bson.M{"course_id": courseID})
	return err
}
