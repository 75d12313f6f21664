package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"

	"projectpager/internal/domain"
)

// renderProjectDetail builds the full-page detail text for the ov pager.
func renderProjectDetail(project domain.Project, styles *Styles) string {
	var b strings.Builder

	b.WriteString(styles.Title.Render(project.Name))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("  %s  %s\n", styles.Dim.Render("slug:"), project.Slug))
	b.WriteString(fmt.Sprintf("  %s  %s\n", styles.Dim.Render("by:"), styles.Creator.Render(project.Creator)))
	b.WriteString(fmt.Sprintf("  %s  %s\n", styles.Dim.Render("in:"), styles.Category.Render(project.Category)))
	b.WriteString("\n")
	b.WriteString(project.Blurb)
	b.WriteString("\n")

	return b.String()
}

// showDetailInPager shows the project detail using the ov pager. The caller's
// bubbletea program must release the terminal first and restore it after.
func showDetailInPager(program *tea.Program, content string) error {
	if program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = program.RestoreTerminal() // Ignore error as we're in defer context
	}()

	reader := strings.NewReader(content)

	root, err := oviewer.NewRoot(reader)
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	// Run the oviewer (this will take over the terminal)
	return root.Run()
}
