package app

import (
	"strings"

	"github.com/aemsenhuber/follow/internal/viewport"
)

func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	if m.showHelp {
		return m.helpView()
	}

	var lines []string
	if !m.opts.NoTitle {
		lines = append(lines, renderHeader(m.headerLeft, m.headerRight, m.width))
	}

	if m.status.kind == statusSpawn {
		// A failed spawn has no output; the error takes its place until the
		// next scheduled refresh retries.
		lines = append(lines, renderStatus("spawn error: "+m.status.msg, m.width))
		return strings.Join(lines, "\n")
	}

	lines = append(lines, viewport.Visible(m.view, m.doc, m.dispExtent())...)
	if m.status.kind != statusNone {
		for len(lines) < m.height-1 {
			lines = append(lines, "")
		}
		lines = append(lines, renderStatus(m.status.msg, m.width))
	}
	return strings.Join(lines, "\n")
}

func (m Model) helpView() string {
	var b strings.Builder
	b.WriteString(renderHeader("follow: key bindings", m.headerRight, m.width))
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n\npress ? to return")
	return b.String()
}
