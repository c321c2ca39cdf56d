package availability_test

import (
	"reflect"
	"testing"

	"github.com/dalemusser/coursehub/internal/app/features/availability"
)

func fieldNames(fields []availability.FieldDef) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = f.Name
	}
	return out
}

func findField(t *testing.T, fields []availability.FieldDef, name string) availability.FieldDef {
	t.Helper()
	for _, f := range fields {
		if f.Name == name {
			return f
		}
	}
	t.Fatalf("field %q not found in schema", name)
	return availability.FieldDef{}
}

func choiceValues(choices []availability.Choice) []string {
	out := make([]string, len(choices))
	for i, c := range choices {
		out[i] = c.Value
	}
	return out
}

// The field names and choice values are wire contract with the console's
// form renderer; these tests pin them down.
func TestSchema_FieldNames(t *testing.T) {
	got := fieldNames(availability.Schema())
	want := []string{"course_availability", "show_lessons_in_syllabus", "element_settings", "whitelist"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("top-level fields: got %v, want %v", got, want)
	}
}

func TestSchema_CourseAvailabilityChoices(t *testing.T) {
	f := findField(t, availability.Schema(), "course_availability")
	got := choiceValues(f.Choices)
	want := []string{"private", "registration_required", "registration_optional", "public"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("choices: got %v, want %v", got, want)
	}
}

func TestSchema_ElementSettingsItems(t *testing.T) {
	f := findField(t, availability.Schema(), "element_settings")
	if f.Kind != "array" {
		t.Errorf("kind: got %q, want %q", f.Kind, "array")
	}

	got := fieldNames(f.Items)
	want := []string{"type", "id", "indent", "name", "availability", "shown_when_unavailable"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("item fields: got %v, want %v", got, want)
	}

	avail := findField(t, f.Items, "availability")
	gotChoices := choiceValues(avail.Choices)
	wantChoices := []string{"course", "private", "public"}
	if !reflect.DeepEqual(gotChoices, wantChoices) {
		t.Errorf("availability choices: got %v, want %v", gotChoices, wantChoices)
	}
}

func TestSchema_ChoiceLabels(t *testing.T) {
	f := findField(t, availability.Schema(), "course_availability")
	labels := map[string]string{}
	for _, c := range f.Choices {
		labels[c.Value] = c.Label
	}
	if labels["registration_required"] != "Registration Required" {
		t.Errorf("label: got %q, want %q", labels["registration_required"], "Registration Required")
	}
	if labels["private"] != "Private" {
		t.Errorf("label: got %q, want %q", labels["private"], "Private")
	}
}
