package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"projectpager/internal/config"
	"projectpager/internal/domain"
	"projectpager/internal/eventbus"
	"projectpager/internal/navigator"
)

func testProjects() []domain.Project {
	return []domain.Project{
		{Slug: "one", Name: "Project One", Blurb: "First.", Creator: "A", Category: "Tech"},
		{Slug: "two", Name: "Project Two", Blurb: "Second.", Creator: "B", Category: "Games"},
		{Slug: "three", Name: "Project Three", Blurb: "Third.", Creator: "C", Category: "Art"},
	}
}

func newTestModel(t *testing.T) *Model {
	t.Helper()
	bus := eventbus.New()
	vm := navigator.New(bus, nil)
	cfg := config.DefaultConfig()
	projects := testProjects()
	m := NewModel(bus, cfg, vm, projects)

	idx := 0
	vm.Configure(domain.NavigatorConfig{
		Index:   &idx,
		Project: projects[0],
		RefTag:  domain.RefTag(cfg.RefTag),
	})
	m.Init()
	return m
}

func keyRunes(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestSwipeKeysChangePage(t *testing.T) {
	t.Parallel()
	m := newTestModel(t)

	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	require.Equal(t, 1, m.index)

	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	require.Equal(t, 2, m.index)

	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	require.Equal(t, 2, m.index, "swiping past the last page is ignored")

	m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	require.Equal(t, 1, m.index)
}

func TestDragReleaseDismisses(t *testing.T) {
	t.Parallel()
	m := newTestModel(t)

	m.Update(keyRunes('j'))
	require.True(t, m.inFlight, "a downward drag puts the transition in flight")
	require.Equal(t, dragStep, m.dragOffset)

	m.Update(keyRunes('j'))
	require.Equal(t, 2*dragStep, m.dragOffset)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeySpace})
	require.True(t, m.dismissed)
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd(), "finishing the dismissal quits the program")
}

func TestDragUpPastOriginCancels(t *testing.T) {
	t.Parallel()
	m := newTestModel(t)

	m.Update(keyRunes('j'))
	require.True(t, m.inFlight)

	// Drag back up beyond the gesture origin
	m.Update(keyRunes('k'))
	_, cmd := m.Update(keyRunes('k'))
	require.Nil(t, cmd)
	require.False(t, m.inFlight, "upward drag past the origin cancels the dismissal")

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeySpace})
	require.Nil(t, cmd, "canceled dismissal must not quit")
	require.False(t, m.dismissed)
}

func TestScrolledContentSuppressesDismiss(t *testing.T) {
	t.Parallel()
	m := newTestModel(t)

	m.Update(keyRunes('u'))
	require.False(t, m.inFlight)
	require.False(t, m.dismissed)
}

func TestCatalogReloadReconfiguresNavigator(t *testing.T) {
	t.Parallel()
	m := newTestModel(t)

	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	require.Equal(t, 1, m.index)

	smaller := testProjects()[:1]
	m.Update(CatalogReloadedMsg{Projects: smaller})
	require.Equal(t, 0, m.index, "index clamps to the reloaded catalog")
	require.Len(t, m.projects, 1)
}

func TestViewShowsCurrentProject(t *testing.T) {
	t.Parallel()
	m := newTestModel(t)

	require.Contains(t, m.View(), "Project One")

	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	require.Contains(t, m.View(), "Project Two")
}
