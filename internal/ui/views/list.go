package views

import (
	"fmt"

	"ebrowse/internal/logger"
	"ebrowse/internal/ui/logic"
)

const (
	listCol   = 2
	footerCol = 6

	// EmptyListMessage is shown in place of entries when nothing is installed
	EmptyListMessage = "No installed packages!"
)

var listLog = logger.New("ebrowse.ui.list")

// PageLen returns how many list entries fit in a list region of the given
// height: everything inside the border except the footer line.
func PageLen(rows int) int {
	if rows-3 < 1 {
		return 1
	}
	return rows - 3
}

// ListRenderer draws one page of the package list
type ListRenderer struct{}

// NewListRenderer creates a new list renderer
func NewListRenderer() *ListRenderer {
	return &ListRenderer{}
}

// Render repaints s with the page of cpvs holding pos, highlighting pos,
// and a "Pkg X / N - Pg P / Q" footer.
func (r *ListRenderer) Render(s Surface, pos, page int, cpvs []string) {
	listLog.Debug("Drawing pkglist window: pos %d, pg %d", pos, page)

	rows, _ := s.Size()
	pageLen := PageLen(rows)
	total := len(cpvs)
	layout := logic.NewLayout(total, pageLen)

	s.Erase()
	s.Box()

	if total == 0 {
		s.AddStr(1, 1, clip(s, 1, EmptyListMessage), AttrReverse)
		pos, page = 0, 0
	} else {
		first := layout.FirstIndex(page)
		for index := first; index <= layout.LastIndex(page) && index <= total; index++ {
			if index < 1 {
				continue
			}
			slot := index - first + 1
			attr := AttrNormal
			if index == pos {
				attr = AttrReverse
			}
			s.AddStr(slot, listCol, clip(s, listCol, cpvs[index-1]), attr)
		}
	}

	footer := fmt.Sprintf("Pkg %d / %d - Pg %d / %d", pos, total, page, layout.Pages)
	s.AddStr(pageLen+1, footerCol, clip(s, footerCol, footer), AttrBold)
}
