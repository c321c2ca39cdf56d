// internal/domain/models/lesson.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Lesson belongs to exactly one plain Unit, ordered by Ordinal within it.
// LessonID is the public string identifier, unique within the course, so
// lesson lookups from the availability editor are unit-agnostic.
type Lesson struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	CourseID primitive.ObjectID `bson:"course_id" json:"course_id"`

	LessonID string `bson:"lesson_id" json:"lesson_id"`
	UnitID   string `bson:"unit_id" json:"unit_id"` // owning unit's UnitID
	Title    string `bson:"title" json:"title"`
	Ordinal  int    `bson:"ordinal" json:"ordinal"`

	Availability         Availability `bson:"availability" json:"availability"`
	ShownWhenUnavailable bool         `bson:"shown_when_unavailable" json:"shown_when_unavailable"`

	CreatedAt time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt *time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}
