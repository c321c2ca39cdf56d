package navigation_test

import (
	"reflect"
	"testing"

	"github.com/dalemusser/coursehub/internal/app/system/navigation"
)

func TestEntries_SortedByGroupPlacementAction(t *testing.T) {
	reg := navigation.NewRegistry()
	reg.RegisterSubNav("publish", "availability", "Availability", 1000)
	reg.RegisterSubNav("edit", "outline", "Outline", 100)
	reg.RegisterSubNav("publish", "announce", "Announce", 1000)
	reg.RegisterSubNav("edit", "settings", "Settings", 50)

	var got []string
	for _, e := range reg.Entries() {
		got = append(got, e.Group+"/"+e.Action)
	}
	want := []string{"edit/settings", "edit/outline", "publish/announce", "publish/availability"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("order: got %v, want %v", got, want)
	}
}

func TestRegisterSubNav_ReplacesDuplicate(t *testing.T) {
	reg := navigation.NewRegistry()
	reg.RegisterSubNav("publish", "availability", "Availability", 1000)
	reg.RegisterSubNav("publish", "availability", "Course Availability", 500)

	entries := reg.Entries()
	if len(entries) != 1 {
		t.Fatalf("entry count: got %d, want 1", len(entries))
	}
	if entries[0].Title != "Course Availability" || entries[0].Placement != 500 {
		t.Errorf("entry not replaced: %+v", entries[0])
	}
}
