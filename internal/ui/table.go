package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// tableColumn is a fixed-width column; width 0 takes the remaining space.
type tableColumn struct {
	title string
	width int
}

// layoutColumns resolves flexible column widths for the available width.
func layoutColumns(cols []tableColumn, total int) []int {
	widths := make([]int, len(cols))
	used := 0
	flex := 0
	for i, c := range cols {
		widths[i] = c.width
		used += c.width + 1
		if c.width == 0 {
			flex++
		}
	}
	if flex == 0 {
		return widths
	}
	share := max((total-used)/flex, 8)
	for i, c := range cols {
		if c.width == 0 {
			widths[i] = share
		}
	}
	return widths
}

func (m Model) renderTableHeader(cols []tableColumn, widths []int) string {
	styles := m.theme.Styles().WithBackground(m.theme.Background)
	cells := make([]string, len(cols))
	for i, c := range cols {
		cells[i] = column(c.title, widths[i])
	}
	return styles.FaintText.Bold(true).Render(strings.Join(cells, " "))
}

// renderRow renders plain cells followed by an optional status badge.
func (m Model) renderRow(cells []string, widths []int, status string, selected bool) string {
	styles := m.theme.Styles()
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = column(c, widths[i])
	}
	text := strings.Join(out, " ")
	if selected {
		text = styles.Selected.Render(text)
	} else {
		text = styles.Text.Render(text)
	}
	if status == "" {
		return text
	}
	return text + " " + styles.StatusStyle(status).Render(strings.ToUpper(status))
}

// renderPlaceholder renders the body shown instead of a list: the initial
// loading state, an error with nothing cached, or an empty cache.
func (m Model) renderPlaceholder(height int, lines ...string) string {
	styles := m.theme.Styles()
	rendered := make([]string, len(lines))
	for i, l := range lines {
		style := styles.MutedText
		if i == 0 {
			style = styles.Text.Bold(true)
		}
		rendered[i] = style.Render(l)
	}
	return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, rendered...))
}

// renderListState handles the non-content states every list shares. ok is
// false when the list itself should be rendered.
func (m Model) renderListState(height int, noun string, initialLoading, hasContent bool, errMsg string) (string, bool) {
	switch {
	case initialLoading:
		return m.renderPlaceholder(height, m.spinner.View()+" Loading "+noun+"..."), true
	case hasContent:
		return "", false
	case errMsg != "":
		return m.renderPlaceholder(height, errMsg, "Press r to retry"), true
	default:
		return m.renderPlaceholder(height, "No "+noun+" cached yet", "Press r to refresh"), true
	}
}

// renderRows renders the visible window of a list around the selection.
func (m Model) renderRows(total, height int, row func(i int, selected bool) string) string {
	start, end := visibleRange(m.selected, total, height)
	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		lines = append(lines, row(i, i == m.selected))
	}
	return strings.Join(lines, "\n")
}
