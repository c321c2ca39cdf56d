// internal/app/features/availability/schema.go
package availability

import (
	"strings"

	"github.com/dalemusser/coursehub/internal/domain/models"
)

// Choice is one entry in an enumerated field.
type Choice struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// FieldDef describes one form field to the console's form renderer. The
// descriptor is configuration data: field names and choice values are wire
// contract with the client and must stay stable.
type FieldDef struct {
	Name        string     `json:"name"`
	Label       string     `json:"label"`
	Kind        string     `json:"kind"` // "string", "boolean", "text", "array"
	Description string     `json:"description,omitempty"`
	Optional    bool       `json:"optional"`
	Hidden      bool       `json:"hidden,omitempty"`
	Editable    bool       `json:"editable"`
	Choices     []Choice   `json:"choices,omitempty"`
	Items       []FieldDef `json:"items,omitempty"` // item fields for Kind "array"
}

// Schema returns the field-definition table for the availability editor.
func Schema() []FieldDef {
	return []FieldDef{
		{
			Name:  "course_availability",
			Label: "Course Availability",
			Kind:  "string",
			Description: "This sets the availability of the course for " +
				"registered and unregistered users.",
			Optional: true,
			Editable: true,
			Choices:  courseAvailabilityChoices(),
		},
		{
			Name:  "show_lessons_in_syllabus",
			Label: "Show Lessons in Syllabus",
			Kind:  "boolean",
			Description: "When checked, lessons are shown in the course " +
				"syllabus.",
			Optional: true,
			Editable: true,
		},
		{
			Name:     "element_settings",
			Label:    "Content Availability",
			Kind:     "array",
			Optional: true,
			Editable: true,
			Items: []FieldDef{
				{Name: "type", Label: "Element Kind", Kind: "string", Optional: true, Hidden: true},
				{Name: "id", Label: "Element Key", Kind: "string", Optional: true, Hidden: true},
				{Name: "indent", Label: "Indent", Kind: "boolean", Optional: true, Hidden: true},
				{Name: "name", Label: "Element Title", Kind: "string", Optional: true},
				{
					Name:  "availability",
					Label: "Content Availability",
					Kind:  "string",
					Description: "Content defaults to the availability of the " +
						"course, but may also be restricted to admins (Private) " +
						"or open to the public (Public).",
					Optional: true,
					Editable: true,
					Choices:  availabilityChoices(),
				},
				{
					Name:  "shown_when_unavailable",
					Label: "Shown When Unavailable",
					Kind:  "boolean",
					Description: "If checked, the content displays its title in " +
						"the syllabus even when it is private.",
					Optional: true,
					Editable: true,
				},
			},
		},
		{
			Name:  "whitelist",
			Label: "Students Allowed to Register",
			Kind:  "text",
			Description: "Only students with email addresses in this list may " +
				"register for the course. Separate addresses with any " +
				"combination of commas, spaces, or separate lines.",
			Optional: true,
			Editable: true,
		},
	}
}

func availabilityChoices() []Choice {
	out := make([]Choice, 0, len(models.AvailabilityValues))
	for _, a := range models.AvailabilityValues {
		out = append(out, Choice{Value: string(a), Label: choiceLabel(string(a))})
	}
	return out
}

func courseAvailabilityChoices() []Choice {
	out := make([]Choice, 0, len(models.CourseAvailabilityPolicies))
	for _, p := range models.CourseAvailabilityPolicies {
		out = append(out, Choice{Value: string(p), Label: choiceLabel(string(p))})
	}
	return out
}

// choiceLabel turns a snake_case enum value into a display label, e.g.
// "registration_required" -> "Registration Required".
func choiceLabel(value string) string {
	words := strings.Split(value, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
