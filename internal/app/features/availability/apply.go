// internal/app/features/availability/apply.go
package availability

import "github.com/dalemusser/coursehub/internal/domain/models"

// Apply merges a submitted payload onto the in-memory course state, mutating
// course, settings, units, and lessonsByUnit in place. Persistence is the
// caller's job (one settings save, one tree save) and must be skipped when
// Apply returns an error.
//
// Field semantics:
//   - Whitelist: applied when the key is present, including the empty string.
//   - ShowLessonsInSyllabus: applied when present.
//   - CourseAvailability: applied when non-empty, via Course.SetAvailability
//     so the policy cascade runs.
//   - ElementSettings: each entry resolves by (kind, id). Unknown kinds fail
//     the whole write; every entry kind is validated before anything is
//     mutated so a bad entry can't leave a half-applied payload behind.
//     Entries whose target no longer exists are skipped without error
//     (stale client state is expected, not exceptional).
func Apply(course *models.Course, settings *models.CourseSettings, units []models.Unit, lessonsByUnit map[string][]models.Lesson, p Payload) error {
	kinds := make([]ElementKind, len(p.ElementSettings))
	for i, es := range p.ElementSettings {
		kind, err := ParseElementKind(es.Type)
		if err != nil {
			return err
		}
		kinds[i] = kind
	}

	if p.Whitelist != nil {
		settings.Whitelist = *p.Whitelist
	}
	if p.ShowLessonsInSyllabus != nil {
		settings.ShowLessonsInSyllabus = *p.ShowLessonsInSyllabus
	}

	if p.CourseAvailability != "" {
		if err := course.SetAvailability(models.CourseAvailability(p.CourseAvailability)); err != nil {
			return err
		}
	}

	unitsByID := make(map[string]*models.Unit, len(units))
	for i := range units {
		unitsByID[units[i].UnitID] = &units[i]
	}
	lessonsByID := make(map[string]*models.Lesson)
	for unitID := range lessonsByUnit {
		ls := lessonsByUnit[unitID]
		for i := range ls {
			lessonsByID[ls[i].LessonID] = &ls[i]
		}
	}

	for i, es := range p.ElementSettings {
		switch kinds[i] {
		case KindUnit:
			unit, ok := unitsByID[es.ID]
			if !ok {
				continue
			}
			if es.Availability != nil {
				unit.Availability = models.Availability(*es.Availability)
			}
			if es.ShownWhenUnavailable != nil {
				unit.ShownWhenUnavailable = *es.ShownWhenUnavailable
			}
		case KindLesson:
			lesson, ok := lessonsByID[es.ID]
			if !ok {
				continue
			}
			if es.Availability != nil {
				lesson.Availability = models.Availability(*es.Availability)
			}
			if es.ShownWhenUnavailable != nil {
				lesson.ShownWhenUnavailable = *es.ShownWhenUnavailable
			}
		}
	}
	return nil
}
