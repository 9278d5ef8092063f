// Package viewport tracks the scroll position over a laid-out document.
//
// All transitions are pure functions of the current state, the navigation
// command, and the document/display extents, so replaying a key sequence is
// deterministic.
package viewport

import (
	"strings"

	"github.com/aemsenhuber/follow/internal/document"
)

// Extent is a rectangle measured in rows and columns.
type Extent struct {
	Rows int
	Cols int
}

// DocExtent returns the extent of a document.
func DocExtent(doc document.Document) Extent {
	return Extent{Rows: doc.Height(), Cols: doc.Width}
}

// State is the scroll position. Row and Col may transiently sit outside the
// document bounds after a "past" navigation; rendering guards against it.
type State struct {
	Row    int
	Col    int
	Follow bool
}

type navKind int

const (
	navDelta navKind = iota
	navTop
	navBottom
	navToggleFollow
)

// Nav is one navigation command.
type Nav struct {
	kind navKind
	rows int
	cols int
	past bool
}

// ScrollRows moves vertically by n rows, clamped to the document.
func ScrollRows(n int) Nav { return Nav{kind: navDelta, rows: n} }

// ScrollRowsPast moves vertically by n rows, allowed to overshoot the edges.
func ScrollRowsPast(n int) Nav { return Nav{kind: navDelta, rows: n, past: true} }

// ScrollCols moves horizontally by n columns, clamped to the document.
func ScrollCols(n int) Nav { return Nav{kind: navDelta, cols: n} }

// ScrollColsPast moves horizontally by n columns, allowed to overshoot.
func ScrollColsPast(n int) Nav { return Nav{kind: navDelta, cols: n, past: true} }

// Top jumps to the first line and leaves follow mode.
func Top() Nav { return Nav{kind: navTop} }

// Bottom jumps to the last page and leaves follow mode.
func Bottom() Nav { return Nav{kind: navBottom} }

// ToggleFollow flips follow mode; engaging it pins the view to the bottom.
func ToggleFollow() Nav { return Nav{kind: navToggleFollow} }

// Apply executes one navigation command.
func (s State) Apply(nav Nav, doc, disp Extent) State {
	switch nav.kind {
	case navTop:
		s.Row = 0
		s.Follow = false
	case navBottom:
		s.Row = maxOffset(doc.Rows, disp.Rows)
		s.Follow = false
	case navToggleFollow:
		s.Follow = !s.Follow
		if s.Follow {
			s.Row = maxOffset(doc.Rows, disp.Rows)
		}
	case navDelta:
		s.Row = shift(s.Row, nav.rows, nav.past, doc.Rows, disp.Rows)
		s.Col = shift(s.Col, nav.cols, nav.past, doc.Cols, disp.Cols)
	}
	return s
}

// Reclamp is applied once per redraw. With follow engaged it repins the view
// to the bottom of the latest document, whatever the offset was before.
func (s State) Reclamp(doc, disp Extent) State {
	if s.Follow {
		s.Row = maxOffset(doc.Rows, disp.Rows)
	}
	return s
}

// shift applies one delta along an axis. Clamped moves never push the offset
// out of [0, max(extent-display, 0)], but they also never pull an already
// out-of-range offset back: a positive move keeps at least the current
// offset, a negative move keeps at most the current offset.
func shift(offset, delta int, past bool, extent, display int) int {
	switch {
	case delta == 0:
		return offset
	case past:
		return offset + delta
	case delta > 0:
		return max(offset, min(offset+delta, maxOffset(extent, display)))
	default:
		return min(offset, max(offset+delta, 0))
	}
}

func maxOffset(extent, display int) int {
	return max(extent-display, 0)
}

// Visible renders the window of doc selected by the state. A state that
// reclamping left entirely past an edge renders nothing for the frame rather
// than garbage; offsets less than one screen past an edge render a partial
// window with blank padding.
func Visible(s State, doc document.Document, disp Extent) []string {
	ext := DocExtent(doc)
	if disp.Rows <= 0 || disp.Cols <= 0 {
		return nil
	}
	if s.Row <= -disp.Rows || s.Row >= ext.Rows || s.Col <= -disp.Cols || s.Col >= ext.Cols {
		return nil
	}

	out := make([]string, 0, disp.Rows)
	for i := 0; i < -s.Row && i < disp.Rows; i++ {
		out = append(out, "")
	}
	first := max(s.Row, 0)
	last := min(s.Row+disp.Rows, ext.Rows)
	pad := max(-s.Col, 0)
	for row := first; row < last; row++ {
		line := doc.Lines[row]
		text := line.Slice(max(s.Col, 0), disp.Cols-pad)
		if pad > 0 && text != "" {
			text = strings.Repeat(" ", pad) + text
		}
		out = append(out, text)
	}
	return out
}
