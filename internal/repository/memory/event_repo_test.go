package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"eventdesk/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedEvents() []*domain.EventRecord {
	now := time.Now()
	return []*domain.EventRecord{
		{ID: "a", Title: "Tech Conference", Status: domain.StatusPublished, CreatedAt: now, UpdatedAt: now},
		{ID: "b", Title: "Music Festival", Status: domain.StatusDraft, CreatedAt: now, UpdatedAt: now},
	}
}

func TestListReturnsDefensiveCopy(t *testing.T) {
	repo := NewEventRepo(seedEvents())

	first, err := repo.List(context.Background())
	require.NoError(t, err)
	first[0] = nil

	second, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, second[0], "caller mutation of a snapshot must not reach the store")
}

func TestSnapshotIsolation(t *testing.T) {
	repo := NewEventRepo(seedEvents())

	before, err := repo.List(context.Background())
	require.NoError(t, err)

	require.NoError(t, repo.Delete(context.Background(), "a"))

	assert.Len(t, before, 2, "a snapshot taken before a mutation stays consistent")
	assert.Equal(t, 1, repo.Len())
}

func TestUpdateClonesRecord(t *testing.T) {
	repo := NewEventRepo(seedEvents())

	old, err := repo.GetByID(context.Background(), "a")
	require.NoError(t, err)

	updated, err := repo.Update(context.Background(), "a", func(e *domain.EventRecord) error {
		e.Title = "Renamed"
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, "Tech Conference", old.Title, "records already handed out are never mutated in place")
	assert.Equal(t, "Renamed", updated.Title)

	current, err := repo.GetByID(context.Background(), "a")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", current.Title)
}

func TestUpdateErrorLeavesCollectionUntouched(t *testing.T) {
	repo := NewEventRepo(seedEvents())

	_, err := repo.Update(context.Background(), "a", func(e *domain.EventRecord) error {
		e.Title = "Half Applied"
		return domain.ErrTransient
	})
	require.ErrorIs(t, err, domain.ErrTransient)

	got, err := repo.GetByID(context.Background(), "a")
	require.NoError(t, err)
	assert.Equal(t, "Tech Conference", got.Title)
}

func TestUpdateNotFound(t *testing.T) {
	repo := NewEventRepo(nil)
	_, err := repo.Update(context.Background(), "missing", func(e *domain.EventRecord) error { return nil })
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteNotFound(t *testing.T) {
	repo := NewEventRepo(seedEvents())
	err := repo.Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, 2, repo.Len())
}

func TestConcurrentUpdatesSerialize(t *testing.T) {
	repo := NewEventRepo(seedEvents())

	const toggles = 100
	var wg sync.WaitGroup
	for i := 0; i < toggles; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Update(context.Background(), "a", func(e *domain.EventRecord) error {
				e.IsFeatured = !e.IsFeatured
				return nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	got, err := repo.GetByID(context.Background(), "a")
	require.NoError(t, err)
	assert.False(t, got.IsFeatured, "an even number of toggles must land on the initial value")
}

func TestReset(t *testing.T) {
	repo := NewEventRepo(seedEvents())
	require.NoError(t, repo.Delete(context.Background(), "a"))

	repo.Reset(seedEvents())
	assert.Equal(t, 2, repo.Len())

	got, err := repo.GetByID(context.Background(), "a")
	require.NoError(t, err)
	assert.Equal(t, "Tech Conference", got.Title)
}
