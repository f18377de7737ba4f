package domain

import (
	"sort"
	"strings"
)

// MemberFilter narrows calendar events to a set of family members.
// The zero value shows everyone. Events that list no members concern the
// whole family and are always shown.
type MemberFilter struct {
	Enabled bool     `json:"enabled"`
	Members []string `json:"members,omitempty"`
}

// OnlyMembers returns a filter showing events of the given members
func OnlyMembers(names ...string) MemberFilter {
	f := MemberFilter{Enabled: true}
	for _, name := range names {
		if name = strings.TrimSpace(name); name != "" && !f.Shows(name) {
			f.Members = append(f.Members, name)
		}
	}
	sort.Strings(f.Members)
	return f
}

// Active reports whether the filter hides anything
func (f MemberFilter) Active() bool {
	return f.Enabled
}

// Shows reports whether events of name pass the filter
func (f MemberFilter) Shows(name string) bool {
	if !f.Enabled {
		return true
	}
	for _, m := range f.Members {
		if strings.EqualFold(m, name) {
			return true
		}
	}
	return false
}

// Match reports whether e passes the filter
func (f MemberFilter) Match(e *Event) bool {
	if !f.Enabled || len(e.Members) == 0 {
		return true
	}
	for _, name := range e.Members {
		if f.Shows(name) {
			return true
		}
	}
	return false
}

// Toggle flips name within choices. Selecting every choice again clears the filter.
func (f MemberFilter) Toggle(name string, choices []string) MemberFilter {
	var shown []string
	for _, c := range choices {
		on := f.Shows(c)
		if strings.EqualFold(c, name) {
			on = !on
		}
		if on {
			shown = append(shown, c)
		}
	}
	if len(shown) == len(choices) {
		return MemberFilter{}
	}
	return OnlyMembers(shown...)
}

// ToggleAll deselects every member when all are shown, otherwise shows everyone
func (f MemberFilter) ToggleAll() MemberFilter {
	if f.Enabled {
		return MemberFilter{}
	}
	return MemberFilter{Enabled: true}
}

// ToggleAllLabel names the action ToggleAll performs
func (f MemberFilter) ToggleAllLabel() string {
	if f.Enabled {
		return "Select All"
	}
	return "Deselect All"
}
