package views

import (
	"strings"

	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"

	"ebrowse/internal/logger"
	"ebrowse/internal/logic"
)

const (
	labelCol = 2
	valueCol = 15
)

// Section labels drawn by the detail panel
const (
	LabelCPV         = "Package CPV: "
	LabelDescription = "Description:"
	LabelHomepage    = "Homepage   :"
	LabelDepend      = "DEPEND:"
	LabelRDepend     = "RDEPEND:"
	LabelIUse        = "IUSE:"
)

var detailLog = logger.New("ebrowse.ui.detail")

// DetailRenderer draws the metadata of a single package
type DetailRenderer struct {
	source logic.PackageSource
}

// NewDetailRenderer creates a detail renderer reading from source
func NewDetailRenderer(source logic.PackageSource) *DetailRenderer {
	return &DetailRenderer{source: source}
}

// Render looks up cpv and repaints s with its fields. Dependency strings are
// split on whitespace only, so grouping syntax such as "|| (" shows up as
// tokens of its own. Fields that do not fit above the bottom border are not
// drawn.
func (r *DetailRenderer) Render(s Surface, cpv string) error {
	detailLog.Debug("drawing detail for %q", cpv)
	pkg, err := r.source.Detail(cpv)
	if err != nil {
		return err
	}

	s.Erase()
	s.Box()

	rows, cols := s.Size()
	c := &detailCursor{s: s, line: 1, bottom: rows - 1}
	wrapWidth := cols - (valueCol + 1)

	s.AddStr(c.line, labelCol, clip(s, labelCol, LabelCPV+pkg.CPV), AttrBold)
	if !c.advance(2) {
		return nil
	}

	if !c.section(LabelDescription, WrapText(pkg.Description, wrapWidth)) {
		return nil
	}
	if !c.section(LabelHomepage, []string{pkg.Homepage}) || !c.advance(1) {
		return nil
	}
	if !c.section(LabelDepend, strings.Fields(pkg.Depend)) || !c.advance(1) {
		return nil
	}
	if !c.section(LabelRDepend, strings.Fields(pkg.RDepend)) || !c.advance(1) {
		return nil
	}
	c.section(LabelIUse, WrapText(pkg.IUse, wrapWidth))
	return nil
}

type detailCursor struct {
	s      Surface
	line   int
	bottom int
}

// advance moves the cursor down n lines and reports whether there is still
// room to draw
func (c *detailCursor) advance(n int) bool {
	c.line += n
	return c.line < c.bottom
}

// section draws a bold label with its values listed one per line next to
// it. A section without values still takes up its label's line.
func (c *detailCursor) section(label string, values []string) bool {
	c.s.AddStr(c.line, labelCol, label, AttrBold)
	if len(values) == 0 {
		return c.advance(1)
	}
	for _, value := range values {
		c.s.AddStr(c.line, valueCol, clip(c.s, valueCol, value), AttrNormal)
		if !c.advance(1) {
			return false
		}
	}
	return true
}

// WrapText word-wraps text into lines at most width cells wide. Runs of
// whitespace collapse to one space and words longer than width are broken.
func WrapText(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	if width < 1 {
		width = 1
	}

	wrapped := wrap.String(wordwrap.String(strings.Join(words, " "), width), width)

	var lines []string
	for _, line := range strings.Split(wrapped, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
