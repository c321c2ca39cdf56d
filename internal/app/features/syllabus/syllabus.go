// internal/app/features/syllabus/syllabus.go
package syllabus

import (
	"github.com/dalemusser/coursehub/internal/app/features/availability"
	"github.com/dalemusser/coursehub/internal/domain/models"
)

// Row is one line of the student-facing course outline.
type Row struct {
	Type      string `json:"type"`
	ID        string `json:"id"`
	Title     string `json:"title"`
	Indent    bool   `json:"indent"`
	Available bool   `json:"available"`
}

// Outline is the syllabus payload.
type Outline struct {
	CourseTitle        string                    `json:"course_title"`
	CourseAvailability models.CourseAvailability `json:"course_availability"`
	CanRegister        bool                      `json:"can_register"`
	Rows               []Row                     `json:"rows"`
}

// Build filters the flattened course outline down to what the viewer may
// see. Admins see every element. For everyone else:
//   - elements set to "public" are always shown,
//   - elements set to "course" follow the course-wide policy (the caller
//     only reaches here for browsable courses, so they are shown),
//   - "private" elements are dropped, except that elements flagged
//     shown-when-unavailable keep a title-only row marked unavailable,
//   - lessons are dropped entirely when the course hides them from the
//     syllabus.
func Build(settings models.CourseSettings, elements []availability.Element, isAdmin bool) []Row {
	rows := make([]Row, 0, len(elements))
	for _, el := range elements {
		if el.Type == "lesson" && !settings.ShowLessonsInSyllabus && !isAdmin {
			continue
		}
		available := isAdmin || el.Availability != models.AvailabilityPrivate
		if !available && !el.ShownWhenUnavailable {
			continue
		}
		rows = append(rows, Row{
			Type:      el.Type,
			ID:        el.ID,
			Title:     el.Name,
			Indent:    el.Indent,
			Available: available,
		})
	}
	return rows
}
