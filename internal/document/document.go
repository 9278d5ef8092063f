// Package document turns raw command output into a grid of display lines.
package document

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

const tabStop = 8

// Cell is one grapheme cluster with its rendered content and display width.
type Cell struct {
	Content string
	Width   int
}

// Line is a laid-out output line.
type Line struct {
	cells []Cell
	width int
}

// Width returns the line width in display columns.
func (l Line) Width() int { return l.width }

func (l Line) String() string {
	var b strings.Builder
	for _, c := range l.cells {
		b.WriteString(c.Content)
	}
	return b.String()
}

// Slice returns the part of the line covering document columns
// [fromCol, fromCol+cols). A wide cell straddling the left edge is replaced
// by padding so later cells keep their columns; one straddling the right edge
// is dropped.
func (l Line) Slice(fromCol, cols int) string {
	if cols <= 0 || fromCol >= l.width {
		return ""
	}
	if fromCol < 0 {
		cols += fromCol
		fromCol = 0
		if cols <= 0 {
			return ""
		}
	}
	end := fromCol + cols
	var b strings.Builder
	col := 0
	for _, c := range l.cells {
		next := col + c.Width
		if next <= fromCol {
			col = next
			continue
		}
		if col >= end {
			break
		}
		if col < fromCol {
			// Left edge cuts through a wide cell.
			b.WriteString(strings.Repeat(" ", next-fromCol))
		} else if next > end {
			break
		} else {
			b.WriteString(c.Content)
		}
		col = next
	}
	return b.String()
}

// Document is the laid-out result of one command run. It is never mutated;
// each refresh that completes replaces the whole value.
type Document struct {
	Lines []Line
	// Width is the widest line in display columns.
	Width int
	// Decoded is false when the raw bytes were not valid UTF-8. No lines are
	// produced in that case.
	Decoded bool
}

// Height returns the number of lines.
func (d Document) Height() int { return len(d.Lines) }

// Layout splits raw bytes into display lines. A zero-length fragment after
// the final newline is dropped; an empty line between two newlines is kept.
func Layout(raw []byte) Document {
	if !utf8.Valid(raw) {
		return Document{}
	}
	doc := Document{Decoded: true}
	rest := string(raw)
	for len(rest) > 0 {
		var text string
		if i := strings.IndexByte(rest, '\n'); i >= 0 {
			text, rest = rest[:i], rest[i+1:]
		} else {
			text, rest = rest, ""
		}
		line := layoutLine(text)
		if line.width > doc.Width {
			doc.Width = line.width
		}
		doc.Lines = append(doc.Lines, line)
	}
	return doc
}

func layoutLine(text string) Line {
	text = strings.TrimSuffix(text, "\r")
	var line Line
	state := -1
	for len(text) > 0 {
		var cluster string
		cluster, text, _, state = uniseg.FirstGraphemeClusterInString(text, state)
		cell := layoutCell(cluster, line.width)
		line.cells = append(line.cells, cell)
		line.width += cell.Width
	}
	return line
}

func layoutCell(cluster string, col int) Cell {
	if cluster == "\t" {
		width := tabStop - col%tabStop
		return Cell{Content: strings.Repeat(" ", width), Width: width}
	}
	if r, size := utf8.DecodeRuneInString(cluster); size == len(cluster) && (r < 0x20 || r == 0x7f) {
		// Control characters other than tab take one blank cell.
		return Cell{Content: " ", Width: 1}
	}
	width := runewidth.StringWidth(cluster)
	if width <= 0 {
		width = 1
	}
	return Cell{Content: cluster, Width: width}
}
