package ui

import (
	"fmt"
	"log"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/paginator"
	tea "github.com/charmbracelet/bubbletea"

	"projectpager/internal/config"
	"projectpager/internal/domain"
	"projectpager/internal/eventbus"
	"projectpager/internal/navigator"
)

// dragStep is the synthetic vertical distance of one drag key press.
const dragStep = 16.0

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	vm     *navigator.ViewModel

	projects []domain.Project
	index    int

	// synthetic gesture state
	dragging    bool
	translation float64
	lastDelta   float64

	// navigator-driven state
	inFlight        bool
	dragOffset      float64
	statusRefreshes int
	dismissed       bool

	width         int
	height        int
	help          help.Model
	keys          keyMap
	pager         paginator.Model
	styles        *Styles
	statusMessage string

	// events captured synchronously while feeding the view model
	pending []eventbus.DomainEvent

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model
func NewModel(bus eventbus.EventBus, cfg *config.Config, vm *navigator.ViewModel, projects []domain.Project) *Model {
	pager := paginator.New()
	pager.Type = paginator.Dots
	pager.SetTotalPages(len(projects))

	m := &Model{
		bus:      bus,
		config:   cfg,
		vm:       vm,
		projects: projects,
		help:     help.New(),
		keys:     defaultKeyMap(),
		pager:    pager,
		styles:   NewStyles(),
	}

	m.subscribeToEvents()

	return m
}

// SetProgram stores the program reference needed for pager handoff.
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
}

// subscribeToEvents collects the navigator's output events. The bus delivers
// them synchronously inside the view-model calls made from Update, so the
// pending slice is only ever touched on the program goroutine.
func (m *Model) subscribeToEvents() {
	collect := func(e eventbus.DomainEvent) {
		m.pending = append(m.pending, e)
	}
	for _, t := range []eventbus.EventType{
		eventbus.EventNavigatorConfigured,
		eventbus.EventPagerSetupRequested,
		eventbus.EventDismissRequested,
		eventbus.EventTransitionCanceled,
		eventbus.EventTransitionFinished,
		eventbus.EventAnimatorInFlightChanged,
		eventbus.EventTransitionProgressed,
		eventbus.EventStatusBarUpdateRequested,
		eventbus.EventPageChanged,
	} {
		m.bus.Subscribe(t, collect)
	}
}

// Init implements tea.Model. The view is loaded once the program starts, so
// this is where the navigator learns the view is ready.
func (m *Model) Init() tea.Cmd {
	m.vm.ViewReady()
	return m.drainPending()
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case CatalogReloadedMsg:
		return m, m.reloadCatalog(msg.Projects)

	case detailPagerMsg:
		if msg.err != nil {
			m.statusMessage = fmt.Sprintf("Pager error: %v", msg.err)
			log.Printf("detail pager failed: %v", msg.err)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.NextPage):
		return m, m.swipeTo(m.index + 1)

	case key.Matches(msg, m.keys.PrevPage):
		return m, m.swipeTo(m.index - 1)

	case key.Matches(msg, m.keys.DragDown):
		return m, m.panBy(dragStep)

	case key.Matches(msg, m.keys.DragUp):
		return m, m.panBy(-dragStep)

	case key.Matches(msg, m.keys.Release):
		return m, m.releaseDrag()

	case key.Matches(msg, m.keys.Scroll):
		return m, m.scrollContent()

	case key.Matches(msg, m.keys.Details):
		return m, m.openDetails()
	}

	return m, nil
}

// swipeTo runs one page swipe through the navigator: the pager announces the
// target, animates, and reports completion.
func (m *Model) swipeTo(to int) tea.Cmd {
	if to < 0 || to >= len(m.projects) {
		return nil
	}
	from := m.index
	target := to
	m.vm.WillTransition(m.projects[target], &target)
	m.vm.PageTransition(true, &from)
	return m.drainPending()
}

// panBy feeds one synthetic drag sample. Translation accumulates over the
// gesture like a real pan recognizer's.
func (m *Model) panBy(delta float64) tea.Cmd {
	m.dragging = true
	m.translation += delta
	m.lastDelta = delta
	m.vm.Panning(domain.PanningData{
		Translation: domain.Point{Y: m.translation},
		Velocity:    domain.Point{Y: delta},
		IsDragging:  true,
	})
	return m.drainPending()
}

// releaseDrag ends the gesture; the velocity of the last sample decides
// whether the dismissal finishes or snaps back.
func (m *Model) releaseDrag() tea.Cmd {
	if !m.dragging {
		return nil
	}
	m.vm.Panning(domain.PanningData{
		Translation: domain.Point{Y: m.translation},
		Velocity:    domain.Point{Y: m.lastDelta},
		IsDragging:  false,
	})
	m.dragging = false
	m.translation = 0
	m.lastDelta = 0
	return m.drainPending()
}

// scrollContent simulates the page content being scrolled away from the top,
// which suppresses or cancels an interactive dismissal.
func (m *Model) scrollContent() tea.Cmd {
	m.vm.Panning(domain.PanningData{
		ContentOffset: domain.Point{Y: 24},
		Translation:   domain.Point{Y: m.translation},
		IsDragging:    m.dragging,
	})
	m.dragging = false
	m.translation = 0
	m.lastDelta = 0
	return m.drainPending()
}

func (m *Model) openDetails() tea.Cmd {
	project, ok := m.currentProject()
	if !ok {
		return nil
	}
	content := renderProjectDetail(project, m.styles)
	program := m.program
	return func() tea.Msg {
		return detailPagerMsg{err: showDetailInPager(program, content)}
	}
}

// reloadCatalog swaps the project list and re-feeds the navigator's
// configuration, which re-emits through the configuration gate.
func (m *Model) reloadCatalog(projects []domain.Project) tea.Cmd {
	if len(projects) == 0 {
		return nil
	}
	m.projects = projects
	if m.index >= len(projects) {
		m.index = len(projects) - 1
	}
	m.pager.SetTotalPages(len(projects))
	m.pager.Page = m.index

	idx := m.index
	m.vm.Configure(domain.NavigatorConfig{
		Index:   &idx,
		Project: projects[idx],
		RefTag:  domain.RefTag(m.config.RefTag),
	})
	m.statusMessage = fmt.Sprintf("Catalog reloaded: %d projects", len(projects))
	return m.drainPending()
}

// drainPending applies the events the navigator published during the last
// input call and returns any follow-up command.
func (m *Model) drainPending() tea.Cmd {
	events := m.pending
	m.pending = nil

	var cmd tea.Cmd
	for _, event := range events {
		switch e := event.(type) {
		case eventbus.NavigatorConfiguredEvent:
			if e.Config.Index != nil {
				m.index = *e.Config.Index
				m.pager.Page = m.index
			}

		case eventbus.PagerSetupRequestedEvent:
			m.pager.SetTotalPages(len(m.projects))
			m.pager.Page = m.index

		case eventbus.DismissRequestedEvent:
			m.statusMessage = "Dismissing… release to close, drag up to keep"

		case eventbus.TransitionCanceledEvent:
			m.dragOffset = 0
			m.statusMessage = "Dismissal canceled"

		case eventbus.TransitionFinishedEvent:
			m.dismissed = true
			cmd = tea.Quit

		case eventbus.AnimatorInFlightChangedEvent:
			m.inFlight = e.InFlight

		case eventbus.TransitionProgressedEvent:
			m.dragOffset = e.Translation

		case eventbus.StatusBarUpdateRequestedEvent:
			m.statusRefreshes++

		case eventbus.PageChangedEvent:
			m.index = e.Index
			m.pager.Page = e.Index
			m.statusMessage = fmt.Sprintf("Swiped to page %d", e.Index+1)
		}
	}
	return cmd
}

func (m *Model) currentProject() (domain.Project, bool) {
	if m.index < 0 || m.index >= len(m.projects) {
		return domain.Project{}, false
	}
	return m.projects[m.index], true
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.dismissed {
		return ""
	}

	project, ok := m.currentProject()
	if !ok {
		return m.styles.Main.Render("No projects in catalog.")
	}

	var view string
	view += m.styles.Title.Render(project.Name) + "\n"
	view += m.styles.Creator.Render("by "+project.Creator) +
		m.styles.Dim.Render("  ·  ") +
		m.styles.Category.Render(project.Category) + "\n\n"

	blurb := m.styles.Blurb
	if m.width > 8 {
		blurb = blurb.Width(m.width - 8)
	}
	view += blurb.Render(project.Blurb) + "\n"

	if m.inFlight {
		view += m.styles.InFlight.Render(fmt.Sprintf("⇣ dismissing  %+.0fpx", m.dragOffset)) + "\n"
	} else if m.dragging {
		view += m.styles.Drag.Render(fmt.Sprintf("drag %+.0fpx", m.translation)) + "\n"
	}

	if m.config.UISettings.ShowPageDots {
		view += m.styles.Dots.Render(m.pager.View()) + "\n"
	}

	status := fmt.Sprintf("page %d/%d", m.index+1, len(m.projects))
	if m.statusRefreshes > 0 {
		status += fmt.Sprintf("  ·  status bar refreshed ×%d", m.statusRefreshes)
	}
	if m.statusMessage != "" {
		status += "  ·  " + m.statusMessage
	}
	view += m.styles.Status.Render(status) + "\n"

	view += m.styles.Help.Render(m.help.View(m.keys))

	return m.styles.Main.Render(view)
}
