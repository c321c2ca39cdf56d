// internal/domain/models/availability.go
package models

import "fmt"

// Availability controls who can see a single course element (unit or lesson).
//
// The zero-ish default is AvailabilityCourse, which means the element inherits
// whatever the course-wide policy allows. The string values are part of the
// wire format consumed by the authoring console and must not change.
type Availability string

const (
	// AvailabilityCourse inherits the course-wide availability policy.
	AvailabilityCourse Availability = "course"
	// AvailabilityPrivate restricts the element to course admins.
	AvailabilityPrivate Availability = "private"
	// AvailabilityPublic makes the element visible to everyone, registered or not.
	AvailabilityPublic Availability = "public"
)

// AvailabilityValues lists the valid element availability values in the order
// they are presented to authors.
var AvailabilityValues = []Availability{
	AvailabilityCourse,
	AvailabilityPrivate,
	AvailabilityPublic,
}

// ParseAvailability validates a wire string and returns the typed value.
func ParseAvailability(s string) (Availability, error) {
	for _, a := range AvailabilityValues {
		if string(a) == s {
			return a, nil
		}
	}
	return "", fmt.Errorf("unknown availability %q", s)
}

// CourseAvailability is the course-wide availability policy. It governs both
// visibility of the syllabus and whether students may register.
type CourseAvailability string

const (
	// CourseAvailabilityPrivate hides the course from everyone but admins.
	CourseAvailabilityPrivate CourseAvailability = "private"
	// CourseAvailabilityRegistrationRequired shows the syllabus and requires
	// registration to view content.
	CourseAvailabilityRegistrationRequired CourseAvailability = "registration_required"
	// CourseAvailabilityRegistrationOptional shows the syllabus; registration
	// is offered but content is viewable without it.
	CourseAvailabilityRegistrationOptional CourseAvailability = "registration_optional"
	// CourseAvailabilityPublic opens the course to everyone with registration
	// closed.
	CourseAvailabilityPublic CourseAvailability = "public"
)

// CourseAvailabilityPolicies lists the valid course-wide policies in the
// order they are presented to authors.
var CourseAvailabilityPolicies = []CourseAvailability{
	CourseAvailabilityPrivate,
	CourseAvailabilityRegistrationRequired,
	CourseAvailabilityRegistrationOptional,
	CourseAvailabilityPublic,
}

// ParseCourseAvailability validates a wire string and returns the typed value.
func ParseCourseAvailability(s string) (CourseAvailability, error) {
	for _, p := range CourseAvailabilityPolicies {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown course availability %q", s)
}
