package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"ebrowse/internal/domain"
	"ebrowse/internal/logger"
	"ebrowse/internal/logic"
	"ebrowse/internal/ui/input"
	uilogic "ebrowse/internal/ui/logic"
	"ebrowse/internal/ui/views"
)

var log = logger.New("ebrowse.ui")

// Model is the interactive package browser. It owns the cursor state; the
// renderers only ever see copies of it.
type Model struct {
	source logic.PackageSource
	cpvs   []string // sorted once at start-up

	nav    domain.NavigationState
	layout domain.Layout

	width     int
	height    int
	listWidth int

	renderer     *views.Renderer
	inputHandler *input.Handler

	grid  *views.Grid // last painted screen
	frame string

	quitting bool
	err      error
}

// NewModel lists every installed package from source and returns a model
// positioned on the first one.
func NewModel(source logic.PackageSource) (*Model, error) {
	index, err := source.ListAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list installed packages: %w", err)
	}
	cpvs := uilogic.SortedCPVs(index)
	log.Info("got %d installed CPVs", len(cpvs))

	m := &Model{
		source:       source,
		cpvs:         cpvs,
		nav:          domain.NavigationState{Position: 1, Page: 1},
		listWidth:    uilogic.WidestCPV(cpvs) + views.ListPadding,
		renderer:     views.NewRenderer(source),
		inputHandler: input.New(),
	}
	m.layout = uilogic.NewLayout(len(cpvs), 1)
	return m, nil
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if err := m.SetSize(msg.Width, msg.Height); err != nil {
			return m.fail(err)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	return m.frame
}

// SetSize lays the list out for a terminal of the given size and repaints
func (m *Model) SetSize(width, height int) error {
	log.Debug("terminal is %d cols and %d lines big", width, height)
	m.width = width
	m.height = height
	m.layout = uilogic.NewLayout(len(m.cpvs), views.PageLen(height))
	m.nav = uilogic.Reflow(m.nav, m.layout)
	return m.repaint()
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	intent := m.inputHandler.HandleKey(msg)
	switch intent {
	case uilogic.IntentNone:
		return m, nil
	case uilogic.IntentQuit:
		log.Info("user quit")
		m.quitting = true
		return m, tea.Quit
	}

	m.nav = uilogic.Apply(intent, m.nav, m.layout)
	log.Debug("%s: new pos: %d, page %d", intent, m.nav.Position, m.nav.Page)

	if err := m.repaint(); err != nil {
		return m.fail(err)
	}
	return m, nil
}

// repaint redraws both panels. The detail panel always follows the list
// cursor.
func (m *Model) repaint() error {
	if m.width <= 0 || m.height <= 0 {
		return nil
	}
	grid, err := m.renderer.Draw(views.ViewState{
		Width:     m.width,
		Height:    m.height,
		CPVs:      m.cpvs,
		Nav:       m.nav,
		ListWidth: m.listWidth,
	})
	if err != nil {
		return err
	}
	m.grid = grid
	m.frame = grid.Render(m.renderer.Styles())
	return nil
}

func (m *Model) fail(err error) (tea.Model, tea.Cmd) {
	log.Error("%v", err)
	m.err = err
	m.quitting = true
	return m, tea.Quit
}

// Err returns the error that stopped the browser, if any
func (m *Model) Err() error {
	return m.err
}

// Navigation returns the current cursor state
func (m *Model) Navigation() domain.NavigationState {
	return m.nav
}

// Layout returns the current page layout
func (m *Model) Layout() domain.Layout {
	return m.layout
}

// CPVs returns the package list in display order
func (m *Model) CPVs() []string {
	return m.cpvs
}

// Selected returns the cpv under the cursor, or "" for an empty list
func (m *Model) Selected() string {
	if len(m.cpvs) == 0 {
		return ""
	}
	return m.cpvs[m.nav.Position-1]
}

// Screen returns the last painted screen as plain text
func (m *Model) Screen() string {
	if m.grid == nil {
		return ""
	}
	return m.grid.String()
}
