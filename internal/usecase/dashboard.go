// Package usecase holds the dashboard's derived views: pure functions over
// a query snapshot. Nothing here writes the store.
package usecase

import (
	"sort"
	"time"

	"eventdesk/internal/domain"
)

const dateLayout = "2006-01-02"

// Today returns the current calendar date in the store's date format.
func Today() string {
	return time.Now().Format(dateLayout)
}

// CategoryCount is one slice of the category distribution chart.
type CategoryCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// StatusCount is one slice of the status distribution chart.
type StatusCount struct {
	Status domain.EventStatus `json:"status"`
	Count  int                `json:"count"`
}

// OverviewStats feeds the stat cards at the top of the dashboard.
type OverviewStats struct {
	Total     int `json:"total"`
	Published int `json:"published"`
	Upcoming  int `json:"upcoming"`
	Featured  int `json:"featured"`
}

// Upcoming returns the published events starting today or later, ascending
// by start date, capped at limit. ISO dates compare correctly as strings.
func Upcoming(events []*domain.EventRecord, today string, limit int) []*domain.EventRecord {
	out := make([]*domain.EventRecord, 0, limit)
	for _, e := range events {
		if e.Status == domain.StatusPublished && e.StartDate >= today {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StartDate < out[j].StartDate
	})
	if limit >= 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// CategoryDistribution counts events per category and returns the top
// categories by count, first-seen order breaking ties.
func CategoryDistribution(events []*domain.EventRecord, limit int) []CategoryCount {
	index := make(map[string]int)
	var counts []CategoryCount
	for _, e := range events {
		i, ok := index[e.Category]
		if !ok {
			i = len(counts)
			index[e.Category] = i
			counts = append(counts, CategoryCount{Name: e.Category})
		}
		counts[i].Count++
	}
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	if limit >= 0 && len(counts) > limit {
		counts = counts[:limit]
	}
	return counts
}

// StatusDistribution tallies events per status in the fixed display order,
// zero-filled for statuses with no events.
func StatusDistribution(events []*domain.EventRecord) []StatusCount {
	out := make([]StatusCount, len(domain.Statuses))
	for i, status := range domain.Statuses {
		out[i].Status = status
	}
	for _, e := range events {
		for i := range out {
			if out[i].Status == e.Status {
				out[i].Count++
				break
			}
		}
	}
	return out
}

// Overview computes the stat-card numbers. Upcoming means published with a
// start date of today or later.
func Overview(events []*domain.EventRecord, today string) OverviewStats {
	stats := OverviewStats{Total: len(events)}
	for _, e := range events {
		if e.Status == domain.StatusPublished {
			stats.Published++
			if e.StartDate >= today {
				stats.Upcoming++
			}
		}
		if e.IsFeatured {
			stats.Featured++
		}
	}
	return stats
}
