// internal/app/features/availability/flatten.go
package availability

import "github.com/dalemusser/coursehub/internal/domain/models"

// Flatten walks a course's ordered unit/lesson tree and produces the flat,
// ordered element list the editor renders: unit, its pre-assessment, its
// lessons, its post-assessment, next unit. Assessments owned by a unit are
// emitted indented under that unit and skipped at their own top-level
// position. Pure; no side effects.
//
// units must be in authoring order and lessonsByUnit values in lesson order;
// the output mirrors that order exactly.
func Flatten(units []models.Unit, lessonsByUnit map[string][]models.Lesson) []Element {
	byID := make(map[string]*models.Unit, len(units))
	owned := make(map[string]bool)
	for i := range units {
		u := &units[i]
		byID[u.UnitID] = u
		if u.PreAssessmentID != "" {
			owned[u.PreAssessmentID] = true
		}
		if u.PostAssessmentID != "" {
			owned[u.PostAssessmentID] = true
		}
	}

	var elements []Element
	for i := range units {
		u := &units[i]
		if u.IsAssessment() && owned[u.UnitID] {
			// Emitted nested under its owning unit instead.
			continue
		}
		elements = append(elements, unitElement(u, false))
		if !u.IsUnit() {
			continue
		}
		if pre, ok := byID[u.PreAssessmentID]; ok && u.PreAssessmentID != "" {
			elements = append(elements, unitElement(pre, true))
		}
		for _, lesson := range lessonsByUnit[u.UnitID] {
			elements = append(elements, lessonElement(lesson))
		}
		if post, ok := byID[u.PostAssessmentID]; ok && u.PostAssessmentID != "" {
			elements = append(elements, unitElement(post, true))
		}
	}
	return elements
}

func unitElement(u *models.Unit, indent bool) Element {
	return Element{
		Type:                 elementTypeUnit,
		ID:                   u.UnitID,
		Indent:               indent,
		Name:                 u.Title,
		Availability:         u.Availability,
		ShownWhenUnavailable: u.ShownWhenUnavailable,
	}
}

func lessonElement(l models.Lesson) Element {
	return Element{
		Type:                 elementTypeLesson,
		ID:                   l.LessonID,
		Indent:               true,
		Name:                 l.Title,
		Availability:         l.Availability,
		ShownWhenUnavailable: l.ShownWhenUnavailable,
	}
}
