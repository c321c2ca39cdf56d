package availability_test

import (
	"reflect"
	"testing"

	"github.com/dalemusser/coursehub/internal/app/features/availability"
	"github.com/dalemusser/coursehub/internal/domain/models"
)

func unit(id, title string, ordinal int) models.Unit {
	return models.Unit{
		UnitID:       id,
		Title:        title,
		Type:         models.UnitTypeUnit,
		Ordinal:      ordinal,
		Availability: models.AvailabilityCourse,
	}
}

func assessment(id, title string, ordinal int) models.Unit {
	u := unit(id, title, ordinal)
	u.Type = models.UnitTypeAssessment
	return u
}

func lesson(id, unitID, title string, ordinal int) models.Lesson {
	return models.Lesson{
		LessonID:     id,
		UnitID:       unitID,
		Title:        title,
		Ordinal:      ordinal,
		Availability: models.AvailabilityCourse,
	}
}

func ids(elements []availability.Element) []string {
	out := make([]string, len(elements))
	for i, el := range elements {
		out[i] = el.ID
	}
	return out
}

func TestFlatten_OrderAndNesting(t *testing.T) {
	u1 := unit("u1", "Unit One", 0)
	u1.PreAssessmentID = "a1"
	u1.PostAssessmentID = "a2"

	units := []models.Unit{
		u1,
		assessment("a1", "Pre Quiz", 1),
		assessment("a2", "Post Quiz", 2),
		unit("u2", "Unit Two", 3),
		assessment("a3", "Final Exam", 4),
	}
	lessonsByUnit := map[string][]models.Lesson{
		"u1": {lesson("l1", "u1", "Lesson One", 0), lesson("l2", "u1", "Lesson Two", 1)},
	}

	got := availability.Flatten(units, lessonsByUnit)

	wantIDs := []string{"u1", "a1", "l1", "l2", "a2", "u2", "a3"}
	if !reflect.DeepEqual(ids(got), wantIDs) {
		t.Fatalf("element order: got %v, want %v", ids(got), wantIDs)
	}

	wantIndent := []bool{false, true, true, true, true, false, false}
	for i, el := range got {
		if el.Indent != wantIndent[i] {
			t.Errorf("element %s indent: got %v, want %v", el.ID, el.Indent, wantIndent[i])
		}
	}

	if got[0].Type != "unit" {
		t.Errorf("u1 type: got %q, want %q", got[0].Type, "unit")
	}
	if got[2].Type != "lesson" {
		t.Errorf("l1 type: got %q, want %q", got[2].Type, "lesson")
	}
	if got[1].Name != "Pre Quiz" {
		t.Errorf("a1 name: got %q, want %q", got[1].Name, "Pre Quiz")
	}
}

func TestFlatten_UnownedAssessmentStaysTopLevel(t *testing.T) {
	units := []models.Unit{
		assessment("a1", "Placement Exam", 0),
		unit("u1", "Unit One", 1),
	}

	got := availability.Flatten(units, nil)

	wantIDs := []string{"a1", "u1"}
	if !reflect.DeepEqual(ids(got), wantIDs) {
		t.Fatalf("element order: got %v, want %v", ids(got), wantIDs)
	}
	if got[0].Indent {
		t.Error("unowned assessment should not be indented")
	}
}

func TestFlatten_DanglingAssessmentReference(t *testing.T) {
	u1 := unit("u1", "Unit One", 0)
	u1.PreAssessmentID = "gone"

	got := availability.Flatten([]models.Unit{u1}, nil)

	wantIDs := []string{"u1"}
	if !reflect.DeepEqual(ids(got), wantIDs) {
		t.Fatalf("dangling reference should be skipped: got %v, want %v", ids(got), wantIDs)
	}
}

func TestFlatten_AssessmentOwnedByLaterUnit(t *testing.T) {
	// The owned assessment appears before its owner in authoring order; it
	// must still be skipped at the top level and emitted under the owner.
	u2 := unit("u2", "Unit Two", 1)
	u2.PostAssessmentID = "a1"

	units := []models.Unit{
		assessment("a1", "Post Quiz", 0),
		u2,
	}

	got := availability.Flatten(units, nil)

	wantIDs := []string{"u2", "a1"}
	if !reflect.DeepEqual(ids(got), wantIDs) {
		t.Fatalf("element order: got %v, want %v", ids(got), wantIDs)
	}
	if !got[1].Indent {
		t.Error("owned assessment should be indented under its owner")
	}
}

func TestFlatten_CarriesAvailabilityFields(t *testing.T) {
	u1 := unit("u1", "Unit One", 0)
	u1.Availability = models.AvailabilityPrivate
	u1.ShownWhenUnavailable = true

	got := availability.Flatten([]models.Unit{u1}, nil)

	if len(got) != 1 {
		t.Fatalf("element count: got %d, want 1", len(got))
	}
	if got[0].Availability != models.AvailabilityPrivate {
		t.Errorf("availability: got %q, want %q", got[0].Availability, models.AvailabilityPrivate)
	}
	if !got[0].ShownWhenUnavailable {
		t.Error("shown_when_unavailable: got false, want true")
	}
}

func TestFlatten_EmptyCourse(t *testing.T) {
	if got := availability.Flatten(nil, nil); len(got) != 0 {
		t.Errorf("empty course: got %d elements, want 0", len(got))
	}
}
