package logic

import (
	"ebrowse/internal/domain"
)

// Intent is a navigation request decoded from user input
type Intent int

const (
	IntentNone Intent = iota
	IntentDown
	IntentUp
	IntentNextPage
	IntentPrevPage
	IntentQuit
)

func (i Intent) String() string {
	switch i {
	case IntentDown:
		return "down"
	case IntentUp:
		return "up"
	case IntentNextPage:
		return "next-page"
	case IntentPrevPage:
		return "prev-page"
	case IntentQuit:
		return "quit"
	default:
		return "none"
	}
}

// PageCount returns the number of pages needed to show total items,
// pageLen at a time. An empty list has zero pages.
func PageCount(total, pageLen int) int {
	if total <= 0 || pageLen <= 0 {
		return 0
	}
	return (total + pageLen - 1) / pageLen
}

// NewLayout builds the page layout for total items shown pageLen at a time
func NewLayout(total, pageLen int) domain.Layout {
	if pageLen < 1 {
		pageLen = 1
	}
	return domain.Layout{
		PageLen: pageLen,
		Pages:   PageCount(total, pageLen),
		Total:   total,
	}
}

// MoveDown moves the cursor one item down, crossing onto the next page
// when it leaves the bottom of the current one.
func MoveDown(pos, page, pageLen, pages, total int) (int, int) {
	if total <= 0 || pos >= total {
		return pos, page
	}
	l := domain.Layout{PageLen: pageLen, Pages: pages, Total: total}

	switch {
	case page == 1:
		if pos < pageLen {
			pos++
		} else if pages > 1 {
			page++
			pos = l.FirstIndex(page)
		}
	case page == pages:
		pos++
	default:
		if pos < l.LastIndex(page) {
			pos++
		} else {
			page++
			pos = l.FirstIndex(page)
		}
	}
	return pos, page
}

// MoveUp moves the cursor one item up, crossing onto the previous page
// when it leaves the top of the current one.
func MoveUp(pos, page, pageLen, pages, total int) (int, int) {
	if total <= 0 {
		return pos, page
	}
	l := domain.Layout{PageLen: pageLen, Pages: pages, Total: total}

	if page == 1 {
		if pos > 1 {
			pos--
		}
		return pos, page
	}

	if pos > l.FirstIndex(page) {
		pos--
	} else {
		page--
		pos = l.LastIndex(page)
	}
	return pos, page
}

// NextPage advances one page. When the page after the new one would not
// be full the cursor jumps to the last item; otherwise it moves by exactly
// pageLen, which need not land on the new page's first item.
func NextPage(pos, page, pageLen, pages, total int) (int, int) {
	if total <= 0 || page >= pages {
		return pos, page
	}
	l := domain.Layout{PageLen: pageLen, Pages: pages, Total: total}

	if total < l.LastIndex(page+2) {
		return total, page + 1
	}
	return pos + pageLen, page + 1
}

// PrevPage goes back one page, moving the cursor back by pageLen.
func PrevPage(pos, page, pageLen, pages, total int) (int, int) {
	if total <= 0 || page <= 1 {
		return pos, page
	}
	return pos - pageLen, page - 1
}

// Apply runs the transition for intent against state. Intents that are not
// navigation (none, quit) leave the state untouched.
func Apply(intent Intent, state domain.NavigationState, layout domain.Layout) domain.NavigationState {
	var pos, page int
	switch intent {
	case IntentDown:
		pos, page = MoveDown(state.Position, state.Page, layout.PageLen, layout.Pages, layout.Total)
	case IntentUp:
		pos, page = MoveUp(state.Position, state.Page, layout.PageLen, layout.Pages, layout.Total)
	case IntentNextPage:
		pos, page = NextPage(state.Position, state.Page, layout.PageLen, layout.Pages, layout.Total)
	case IntentPrevPage:
		pos, page = PrevPage(state.Position, state.Page, layout.PageLen, layout.Pages, layout.Total)
	default:
		return state
	}
	return domain.NavigationState{Position: pos, Page: page}
}

// Reflow returns state moved onto the page that holds its position under
// layout. Used when the page length changes with the terminal height.
func Reflow(state domain.NavigationState, layout domain.Layout) domain.NavigationState {
	if layout.Total <= 0 {
		return domain.NavigationState{Position: 1, Page: 1}
	}
	pos := state.Position
	if pos < 1 {
		pos = 1
	}
	if pos > layout.Total {
		pos = layout.Total
	}
	return domain.NavigationState{
		Position: pos,
		Page:     (pos-1)/layout.PageLen + 1,
	}
}
