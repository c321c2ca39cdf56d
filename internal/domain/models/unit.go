// internal/domain/models/unit.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Unit type discriminator values.
const (
	UnitTypeUnit       = "unit"       // a plain unit holding lessons
	UnitTypeAssessment = "assessment" // a standalone or pre/post assessment
)

// Unit is a top-level course section or an assessment. Units are ordered by
// Ordinal within their course; that order is the authoring order and drives
// syllabus and availability-editor output.
//
// UnitID is the public string identifier used on the wire; it is unique
// within the course and stable across edits (the Mongo _id is internal).
type Unit struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	CourseID primitive.ObjectID `bson:"course_id" json:"course_id"`

	UnitID  string `bson:"unit_id" json:"unit_id"`
	Title   string `bson:"title" json:"title"`
	Type    string `bson:"type" json:"type"` // UnitTypeUnit or UnitTypeAssessment
	Ordinal int    `bson:"ordinal" json:"ordinal"`

	Availability         Availability `bson:"availability" json:"availability"`
	ShownWhenUnavailable bool         `bson:"shown_when_unavailable" json:"shown_when_unavailable"`

	// PreAssessmentID / PostAssessmentID reference assessment units (by
	// UnitID) shown before and after this unit's lessons. Only plain units
	// carry them. An assessment referenced here is "owned" by this unit and
	// is not listed at the top level of the syllabus.
	PreAssessmentID  string `bson:"pre_assessment_id,omitempty" json:"pre_assessment_id,omitempty"`
	PostAssessmentID string `bson:"post_assessment_id,omitempty" json:"post_assessment_id,omitempty"`

	CreatedAt time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt *time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// IsUnit reports whether this is a plain unit (holds lessons, may own
// pre/post assessments).
func (u *Unit) IsUnit() bool { return u.Type == UnitTypeUnit }

// IsAssessment reports whether this is an assessment unit.
func (u *Unit) IsAssessment() bool { return u.Type == UnitTypeAssessment }
