// internal/app/features/availability/types.go
package availability

import (
	"errors"
	"fmt"

	"github.com/dalemusser/coursehub/internal/domain/models"
)

// Wire values for Element.Type / ElementSetting.Type.
const (
	elementTypeUnit   = "unit"
	elementTypeLesson = "lesson"
)

// ErrInvalidElementType is returned when a submitted element setting names a
// kind that is neither "unit" nor "lesson". It aborts the whole write.
var ErrInvalidElementType = errors.New("invalid element type")

// ElementKind is the parsed element discriminator. The wire carries a string;
// parsing it once up front means every later dispatch is an exhaustive
// switch instead of a string comparison with an error fallback.
type ElementKind int

const (
	// KindUnit addresses a unit or assessment by its unit id.
	KindUnit ElementKind = iota
	// KindLesson addresses a lesson by its lesson id; the lookup is
	// unit-agnostic because lesson ids are unique within a course.
	KindLesson
)

// ParseElementKind maps a wire type string onto an ElementKind.
func ParseElementKind(s string) (ElementKind, error) {
	switch s {
	case elementTypeUnit:
		return KindUnit, nil
	case elementTypeLesson:
		return KindLesson, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidElementType, s)
	}
}

// Element is the flattened projection of a unit or lesson shown in the
// availability editor. It is regenerated on every read, never persisted.
type Element struct {
	Type                 string              `json:"type"`
	ID                   string              `json:"id"`
	Indent               bool                `json:"indent"`
	Name                 string              `json:"name"`
	Availability         models.Availability `json:"availability"`
	ShownWhenUnavailable bool                `json:"shown_when_unavailable"`
}

// Entity is the read payload for the availability editor.
type Entity struct {
	CourseAvailability    models.CourseAvailability `json:"course_availability"`
	ShowLessonsInSyllabus bool                      `json:"show_lessons_in_syllabus"`
	Whitelist             string                    `json:"whitelist"`
	ElementSettings       []Element                 `json:"element_settings"`
}

// Payload is the write payload. Pointer fields distinguish "key missing"
// (nil, leave stored value alone) from an explicit value, including the
// empty string for Whitelist and false for ShowLessonsInSyllabus.
type Payload struct {
	Whitelist             *string          `json:"whitelist"`
	ShowLessonsInSyllabus *bool            `json:"show_lessons_in_syllabus"`
	CourseAvailability    string           `json:"course_availability"`
	ElementSettings       []ElementSetting `json:"element_settings"`
}

// ElementSetting is one per-element edit within a Payload. Availability and
// ShownWhenUnavailable are only applied when their keys are present.
type ElementSetting struct {
	Type                 string  `json:"type"`
	ID                   string  `json:"id"`
	Availability         *string `json:"availability,omitempty"`
	ShownWhenUnavailable *bool   `json:"shown_when_unavailable,omitempty"`
}
