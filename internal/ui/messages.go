package ui

import (
	"projectpager/internal/domain"
)

// CatalogReloadedMsg is sent when the catalog watcher reloaded the project
// list. It arrives via tea.Program.Send from the watcher goroutine.
type CatalogReloadedMsg struct {
	Projects []domain.Project
}

// detailPagerMsg contains the result of a detail pager command
type detailPagerMsg struct {
	err error
}
