package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

var (
	headerStyle = lipgloss.NewStyle().Reverse(true)
	statusStyle = lipgloss.NewStyle().Reverse(true).Bold(true)
)

// renderHeader lays the two header fragments out on one reverse-video line:
// left anchored at column zero, right anchored at the right edge. When they
// would collide the left part is shortened with an ellipsis; when even that
// is hopeless the timestamp wins.
func renderHeader(left, right string, width int) string {
	if width <= 0 {
		return ""
	}
	rightW := ansi.StringWidth(right)
	rightStart := width - rightW

	if rightStart < 0 {
		return headerStyle.Render(ansi.TruncateLeft(right, -rightStart, ""))
	}

	leftW := ansi.StringWidth(left)
	if leftW >= rightStart {
		if rightStart > 4 {
			left = ansi.Truncate(left, rightStart-4, "") + "..."
			leftW = ansi.StringWidth(left)
		} else {
			left = ""
			leftW = 0
		}
	}

	gap := width - leftW - rightW
	if gap < 0 {
		gap = 0
	}
	return headerStyle.Render(left + strings.Repeat(" ", gap) + right)
}

func renderStatus(msg string, width int) string {
	if width <= 0 {
		return ""
	}
	return statusStyle.Render(ansi.Truncate(msg, width, "..."))
}
