package analytics

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"projectpager/internal/domain"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := OpenStore(filepath.Join(t.TempDir(), "analytics.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreRecordsEvents(t *testing.T) {
	t.Parallel()
	store := openTestStore(t)

	project := domain.Project{Slug: "solar-roadways", Name: "Solar Roadways"}
	store.TrackSwipedProject(project, "discovery", DirectionNext)
	store.TrackClosedProjectPage(project, "discovery", GestureSwipe)

	events, err := store.Events()
	require.NoError(t, err)
	require.Len(t, events, 2)

	require.Equal(t, "swiped_project", events[0].Event)
	require.Equal(t, "solar-roadways", events[0].ProjectSlug)
	require.Equal(t, "discovery", events[0].RefTag)
	require.Equal(t, "next", events[0].Detail)

	require.Equal(t, "closed_project_page", events[1].Event)
	require.Equal(t, "swipe", events[1].Detail)
	require.NotEmpty(t, events[1].OccurredAt)
}

func TestStoreIsReopenable(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "analytics.db")

	store, err := OpenStore(path)
	require.NoError(t, err)
	store.TrackSwipedProject(domain.Project{Slug: "a"}, "discovery", DirectionPrevious)
	require.NoError(t, store.Close())

	reopened, err := OpenStore(path)
	require.NoError(t, err)
	defer reopened.Close()

	events, err := reopened.Events()
	require.NoError(t, err)
	require.Len(t, events, 1, "events persist across opens")
}

func TestEmptyStoreHasNoEvents(t *testing.T) {
	t.Parallel()
	store := openTestStore(t)

	events, err := store.Events()
	require.NoError(t, err)
	require.Empty(t, events)
}
