// internal/domain/models/coursesettings.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CourseSettings holds per-course scalar configuration edited alongside, but
// persisted separately from, the unit/lesson tree. One document per course.
type CourseSettings struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	CourseID primitive.ObjectID `bson:"course_id" json:"course_id"`

	// Whitelist is free text listing email address patterns allowed to
	// register for a restricted course. The availability editor stores it
	// verbatim; parsing happens where registration is checked.
	Whitelist string `bson:"whitelist" json:"whitelist"`

	// ShowLessonsInSyllabus controls whether lessons appear in the
	// student-facing syllabus outline.
	ShowLessonsInSyllabus bool `bson:"show_lessons_in_syllabus" json:"show_lessons_in_syllabus"`

	UpdatedAt     *time.Time          `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
	UpdatedByID   *primitive.ObjectID `bson:"updated_by_id,omitempty" json:"updated_by_id,omitempty"`
	UpdatedByName string              `bson:"updated_by_name,omitempty" json:"updated_by_name,omitempty"`
}
