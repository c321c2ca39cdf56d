// internal/domain/models/course.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Course is the ownership root for an ordered tree of Units and Lessons.
// The tree itself lives in the units and lessons collections; the course
// document carries identity plus the course-wide availability policy and
// the flags that policy cascades onto.
type Course struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title   string             `bson:"title" json:"title"`
	TitleCI string             `bson:"title_ci" json:"title_ci"` // lowercase, diacritics-stripped
	Slug    string             `bson:"slug" json:"slug"`

	// Availability is the course-wide policy. Setting it through
	// SetAvailability also cascades the Browsable/CanRegister defaults.
	Availability CourseAvailability `bson:"availability" json:"availability"`

	// Browsable means unregistered visitors may view the syllabus.
	Browsable bool `bson:"browsable" json:"browsable"`
	// CanRegister means the registration flow is open for this course.
	CanRegister bool `bson:"can_register" json:"can_register"`

	CreatedAt time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt *time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`

	CreatedByID   *primitive.ObjectID `bson:"created_by_id,omitempty" json:"created_by_id,omitempty"`
	CreatedByName string              `bson:"created_by_name,omitempty" json:"created_by_name,omitempty"`
	UpdatedByID   *primitive.ObjectID `bson:"updated_by_id,omitempty" json:"updated_by_id,omitempty"`
	UpdatedByName string              `bson:"updated_by_name,omitempty" json:"updated_by_name,omitempty"`
}

// SetAvailability applies a course-wide availability policy and cascades the
// policy's default flags. Callers should treat this as the only way to change
// Course.Availability; a bare field write skips the cascade.
func (c *Course) SetAvailability(policy CourseAvailability) error {
	if _, err := ParseCourseAvailability(string(policy)); err != nil {
		return err
	}
	c.Availability = policy
	switch policy {
	case CourseAvailabilityPrivate:
		c.Browsable = false
		c.CanRegister = false
	case CourseAvailabilityRegistrationRequired:
		c.Browsable = true
		c.CanRegister = true
	case CourseAvailabilityRegistrationOptional:
		c.Browsable = true
		c.CanRegister = true
	case CourseAvailabilityPublic:
		c.Browsable = true
		c.CanRegister = false
	}
	return nil
}
