package usecase

import (
	"testing"

	"eventdesk/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func event(id string, status domain.EventStatus, startDate, category string, featured bool) *domain.EventRecord {
	return &domain.EventRecord{
		ID:         id,
		Title:      "Event " + id,
		Status:     status,
		StartDate:  startDate,
		Category:   category,
		IsFeatured: featured,
	}
}

func TestUpcoming(t *testing.T) {
	today := "2024-06-01"
	events := []*domain.EventRecord{
		event("past", domain.StatusPublished, "2024-05-20", "Music", false),
		event("late", domain.StatusPublished, "2024-08-01", "Technology", false),
		event("draft", domain.StatusDraft, "2024-06-10", "Business", false),
		event("soon", domain.StatusPublished, "2024-06-02", "Sports", false),
		event("today", domain.StatusPublished, today, "Music", false),
	}

	got := Upcoming(events, today, 5)
	require.Len(t, got, 3, "past and non-published events are excluded; today counts")
	assert.Equal(t, "today", got[0].ID)
	assert.Equal(t, "soon", got[1].ID)
	assert.Equal(t, "late", got[2].ID)
}

func TestUpcomingLimit(t *testing.T) {
	today := "2024-06-01"
	var events []*domain.EventRecord
	for _, day := range []string{"1", "2", "3", "4", "5", "6", "7"} {
		events = append(events, event(day, domain.StatusPublished, "2024-07-0"+day, "Music", false))
	}
	assert.Len(t, Upcoming(events, today, 5), 5)
}

func TestCategoryDistribution(t *testing.T) {
	events := []*domain.EventRecord{
		event("1", domain.StatusPublished, "", "Music", false),
		event("2", domain.StatusPublished, "", "Technology", false),
		event("3", domain.StatusDraft, "", "Music", false),
		event("4", domain.StatusPublished, "", "Sports", false),
		event("5", domain.StatusPublished, "", "Technology", false),
		event("6", domain.StatusPublished, "", "Music", false),
	}

	got := CategoryDistribution(events, 6)
	require.Len(t, got, 3)
	assert.Equal(t, CategoryCount{Name: "Music", Count: 3}, got[0])
	assert.Equal(t, CategoryCount{Name: "Technology", Count: 2}, got[1])
	assert.Equal(t, CategoryCount{Name: "Sports", Count: 1}, got[2])
}

func TestCategoryDistributionTopN(t *testing.T) {
	var events []*domain.EventRecord
	for _, c := range []string{"A", "B", "C", "D", "E", "F", "G"} {
		events = append(events, event(c, domain.StatusPublished, "", c, false))
	}
	assert.Len(t, CategoryDistribution(events, 6), 6)
}

func TestStatusDistributionZeroFilled(t *testing.T) {
	events := []*domain.EventRecord{
		event("1", domain.StatusPublished, "", "Music", false),
		event("2", domain.StatusPublished, "", "Music", false),
		event("3", domain.StatusDraft, "", "Music", false),
	}

	got := StatusDistribution(events)
	require.Len(t, got, 4, "all four statuses appear, in fixed order")
	assert.Equal(t, StatusCount{Status: domain.StatusDraft, Count: 1}, got[0])
	assert.Equal(t, StatusCount{Status: domain.StatusPublished, Count: 2}, got[1])
	assert.Equal(t, StatusCount{Status: domain.StatusCancelled, Count: 0}, got[2])
	assert.Equal(t, StatusCount{Status: domain.StatusCompleted, Count: 0}, got[3])
}

func TestOverview(t *testing.T) {
	today := "2024-06-01"
	events := []*domain.EventRecord{
		event("1", domain.StatusPublished, "2024-07-01", "Music", true),
		event("2", domain.StatusPublished, "2024-05-01", "Music", false),
		event("3", domain.StatusDraft, "2024-07-01", "Music", true),
		event("4", domain.StatusCancelled, "2024-07-01", "Music", false),
	}

	got := Overview(events, today)
	assert.Equal(t, OverviewStats{Total: 4, Published: 2, Upcoming: 1, Featured: 2}, got)
}

func TestDerivationsDoNotMutateInput(t *testing.T) {
	events := []*domain.EventRecord{
		event("b", domain.StatusPublished, "2024-07-02", "Music", false),
		event("a", domain.StatusPublished, "2024-07-01", "Music", false),
	}

	Upcoming(events, "2024-06-01", 5)
	assert.Equal(t, "b", events[0].ID, "sorting happens on a copy, not the input")
	assert.Equal(t, "a", events[1].ID)
}
