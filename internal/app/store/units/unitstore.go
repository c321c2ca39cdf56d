// internal/app/store/units/unitstore.go
package unitstore

import (
	"context"
	"time"

	"github.com/dalemusser/coursehub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store provides access to the units collection.
type Store struct {
	c *mongo.Collection
}

// New creates a new unit store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("units")}
}

// Insert stores a new unit and returns it with its generated ID.
func (s *Store) Insert(ctx context.Context, unit models.Unit) (models.Unit, error) {
	if unit.ID.IsZero() {
		unit.ID = primitive.NewObjectID()
	}
	if unit.CreatedAt.IsZero() {
		unit.CreatedAt = time.Now().UTC()
	}
	if _, err := s.c.InsertOne(ctx, unit); err != nil {
		return models.Unit{}, err
	}
	return unit, nil
}

// ListByCourse returns a course's units in authoring (ordinal) order.
func (s *Store) ListByCourse(ctx context.Context, courseID primitive.ObjectID) ([]models.Unit, error) {
	opts := options.Find().SetSort(bson.D{{Key: "ordinal", Value: 1}})
	cur, err := s.c.Find(ctx, bson.M{"course_id": courseID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var units []models.Unit
	if err := cur.All(ctx, &units); err != nil {
		return nil, err
	}
	return units, nil
}

// CountByCourse returns the number of units in a course. Used to assign the
// next ordinal when authoring.
func (s *Store) CountByCourse(ctx context.Context, courseID primitive.ObjectID) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{"course_id": courseID})
}

// SetOwnedAssessment records a pre- or post-assessment reference on a unit.
// slot must be "pre_assessment_id" or "post_assessment_id".
func (s *Store) SetOwnedAssessment(ctx context.Context, courseID primitive.ObjectID, unitID, slot, assessmentID string) error {
	now := time.Now().UTC()
	_, err := s.c.UpdateOne(ctx,
		bson.M{"course_id": courseID, "unit_id": unitID},
		bson.M{"$set": bson.M{slot: assessmentID, "updated_at": now}})
	return err
}

// ReplaceAll writes back every unit of a course in one bulk call. Only the
// availability-editable fields are touched so concurrent authoring edits to
// titles or ordering are not clobbered.
func (s *Store) ReplaceAll(ctx context.Context, courseID primitive.ObjectID, units []models.Unit) error {
	if len(units) == 0 {
		return nil
	}
	now := time.Now().UTC()
	writes := make([]mongo.WriteModel, 0, len(units))
	for _, u := range units {
		writes = append(writes, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"course_id": courseID, "unit_id": u.UnitID}).
			SetUpdate(bson.M{"$set": bson.M{
				"availability":           u.Availability,
				"shown_when_unavailable": u.ShownWhenUnavailable,
				"updated_at":             now,
			}}))
	}
	_, err := s.c.BulkWrite(ctx, writes, options.BulkWrite().SetOrdered(false))
	return err
}
