package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Annual Tech Conference 2024!", "annual-tech-conference-2024"},
		{"Summer Music Festival", "summer-music-festival"},
		{"Food & Drink: A Night Out", "food-drink-a-night-out"},
		{"already-lowercase", "alreadylowercase"},
		{"  Spaced   Out  ", "-spaced-out-"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.title), "Slugify(%q)", tt.title)
	}
}

func TestSlugifyDeterministic(t *testing.T) {
	assert.Equal(t, Slugify("Annual Tech Conference 2024!"), Slugify("Annual Tech Conference 2024!"))
}

func TestDedupeTags(t *testing.T) {
	assert.Equal(t, []string{"tech", "conference"}, DedupeTags([]string{"tech", "conference", "tech", ""}))
	assert.Nil(t, DedupeTags(nil))
}

func TestCanTransition(t *testing.T) {
	for _, from := range Statuses {
		for _, to := range Statuses {
			assert.True(t, CanTransition(from, to), "%s -> %s", from, to)
		}
	}
	assert.False(t, CanTransition(StatusDraft, "archived"))
}
