package views

import (
	"ebrowse/internal/domain"
	"ebrowse/internal/logic"
)

// ListPadding is added to the widest cpv to size the list panel: two cells
// of border and two of margin.
const ListPadding = 4

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int
	CPVs   []string
	Nav    domain.NavigationState
	// ListWidth is the width of the list panel including its border
	ListWidth int
}

// Renderer handles all view rendering
type Renderer struct {
	styles       *Styles
	listRender   *ListRenderer
	detailRender *DetailRenderer
}

// NewRenderer creates a new renderer reading package details from source
func NewRenderer(source logic.PackageSource) *Renderer {
	return &Renderer{
		styles:       NewStyles(),
		listRender:   NewListRenderer(),
		detailRender: NewDetailRenderer(source),
	}
}

// Styles returns the styles used by Render
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Draw paints the list panel and, to its right, the detail panel for the
// package under the cursor. The two panels share a border column.
func (r *Renderer) Draw(state ViewState) (*Grid, error) {
	grid := NewGrid(state.Height, state.Width)

	listWidth := state.ListWidth
	if listWidth > state.Width {
		listWidth = state.Width
	}
	list := grid.Region(0, 0, state.Height, listWidth)
	r.listRender.Render(list, state.Nav.Position, state.Nav.Page, state.CPVs)

	detailX := listWidth - 1
	if detailX < 0 {
		detailX = 0
	}
	detail := grid.Region(0, detailX, state.Height, state.Width-detailX)
	if len(state.CPVs) == 0 {
		detail.Erase()
		detail.Box()
		return grid, nil
	}
	if err := r.detailRender.Render(detail, state.CPVs[state.Nav.Position-1]); err != nil {
		return nil, err
	}
	return grid, nil
}
