package whitelist_test

import (
	"reflect"
	"testing"

	"github.com/dalemusser/coursehub/internal/app/system/whitelist"
)

func TestAllows(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		email string
		want  bool
	}{
		{"empty list allows everyone", "", "anyone@test.com", true},
		{"whitespace-only list allows everyone", "  \n\t ", "anyone@test.com", true},
		{"listed email allowed", "a@test.com, b@test.com", "b@test.com", true},
		{"unlisted email denied", "a@test.com, b@test.com", "c@test.com", false},
		{"case-insensitive match", "Alice@Test.COM", "alice@test.com", true},
		{"query trimmed", "a@test.com", "  a@test.com ", true},
		{"newline separated", "a@test.com\nb@test.com", "b@test.com", true},
		{"semicolon separated", "a@test.com;b@test.com", "a@test.com", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := whitelist.Allows(tt.text, tt.email); got != tt.want {
				t.Errorf("Allows(%q, %q) = %v, want %v", tt.text, tt.email, got, tt.want)
			}
		})
	}
}

func TestEntries(t *testing.T) {
	got := whitelist.Entries("A@test.com, b@test.com;c@test.com\nd@test.com")
	want := []string{"a@test.com", "b@test.com", "c@test.com", "d@test.com"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Entries: got %v, want %v", got, want)
	}
}

func TestEntries_Empty(t *testing.T) {
	if got := whitelist.Entries(""); len(got) != 0 {
		t.Errorf("Entries(\"\"): got %v, want empty", got)
	}
}
