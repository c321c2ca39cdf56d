// internal/app/system/navigation/navigation.go

// Package navigation holds the dashboard sub-navigation registry. Features
// register their console entries at startup; the dashboard feature serves
// the registry to the client, which renders the nav. The registry is passed
// to features explicitly instead of living in package globals.
package navigation

import (
	"sort"
	"sync"
)

// SubNav is one dashboard navigation entry.
type SubNav struct {
	Group     string `json:"group"`     // top-level nav group, e.g. "publish"
	Action    string `json:"action"`    // console action name, e.g. "availability"
	Title     string `json:"title"`     // display title
	Placement int    `json:"placement"` // sort order within the group
}

// Registry collects SubNav entries from features.
type Registry struct {
	mu      sync.RWMutex
	entries []SubNav
}

// NewRegistry returns an empty navigation registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// RegisterSubNav adds an entry. Re-registering the same group+action
// replaces the earlier entry so startup order doesn't duplicate nav items.
func (reg *Registry) RegisterSubNav(group, action, title string, placement int) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	for i, e := range reg.entries {
		if e.Group == group && e.Action == action {
			reg.entries[i] = SubNav{Group: group, Action: action, Title: title, Placement: placement}
			return
		}
	}
	reg.entries = append(reg.entries, SubNav{Group: group, Action: action, Title: title, Placement: placement})
}

// Entries returns a copy of the registry sorted by group, then placement,
// then action for a stable tie-break.
func (reg *Registry) Entries() []SubNav {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	out := make([]SubNav, len(reg.entries))
	copy(out, reg.entries)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Group != out[j].Group {
			return out[i].Group < out[j].Group
		}
		if out[i].Placement != out[j].Placement {
			return out[i].Placement < out[j].Placement
		}
		return out[i].Action < out[j].Action
	})
	return out
}
