package services

import (
	"strings"

	"eventdesk/internal/domain"
)

// Filter returns the events matching every set field of the filter,
// preserving the input's relative order. The input slice is never modified
// and the result is always a fresh slice, even with a nil filter.
func Filter(events []*domain.EventRecord, filter *domain.EventFilter) []*domain.EventRecord {
	out := make([]*domain.EventRecord, 0, len(events))
	for _, e := range events {
		if filter == nil || matches(e, filter) {
			out = append(out, e)
		}
	}
	return out
}

func matches(e *domain.EventRecord, f *domain.EventFilter) bool {
	if f.Status != "" && e.Status != f.Status {
		return false
	}
	if f.Category != "" && e.Category != f.Category {
		return false
	}
	if f.Featured != nil && e.IsFeatured != *f.Featured {
		return false
	}
	if f.Search != "" && !matchesSearch(e, f.Search) {
		return false
	}
	return true
}

// matchesSearch is a case-insensitive substring match against title,
// description, short description, or any tag. One field hit suffices.
func matchesSearch(e *domain.EventRecord, search string) bool {
	needle := strings.ToLower(search)
	if strings.Contains(strings.ToLower(e.Title), needle) ||
		strings.Contains(strings.ToLower(e.Description), needle) ||
		strings.Contains(strings.ToLower(e.ShortDescription), needle) {
		return true
	}
	for _, tag := range e.Tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}
