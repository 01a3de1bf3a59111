package ui

import (
	"time"

	"github.com/charmbracelet/lipgloss"
)

const logoText = "spacex"

// screenStatus is the part of a screen.UIState the header shows.
type screenStatus struct {
	loading     bool
	err         string
	offline     bool
	lastUpdated time.Time
}

func (m Model) activeStatus() screenStatus {
	switch m.listView {
	case ViewRockets:
		s := m.rockets
		return screenStatus{s.IsLoading, s.Error, s.IsOffline(), s.LastUpdated}
	case ViewCapsules:
		s := m.capsules
		return screenStatus{s.IsLoading, s.Error, s.IsOffline(), s.LastUpdated}
	default:
		s := m.launches
		return screenStatus{s.IsLoading, s.Error, s.IsOffline(), s.LastUpdated}
	}
}

// renderHeader renders the status bar.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	compact := m.width < LayoutCompactWidth
	status := m.activeStatus()

	parts := []string{bg.Render(logoText, styles.Logo), m.renderTabs(styles, bg)}

	if m.listView == ViewLaunches {
		parts = append(parts,
			bg.Render("Filter:", styles.MutedText)+bg.Space()+
				bg.Render(m.filter.String(), styles.AccentText))
		if m.searching || m.searchQuery != "" {
			query := m.searchInput.Value()
			if m.searching {
				query += "_"
			}
			parts = append(parts,
				bg.Render("Search:", styles.MutedText)+bg.Space()+
					bg.Render(truncate(query, 32), styles.AccentText))
		}
	}

	if status.loading {
		parts = append(parts,
			lipgloss.NewStyle().Background(bg.Color()).Render(m.spinner.View())+bg.Space()+
				bg.Render("Refreshing", styles.WarningText))
	}

	if status.offline {
		parts = append(parts, styles.StatusStyle("failed").Bold(true).Render("OFFLINE"))
	}

	if age := formatUpdated(status.lastUpdated, time.Now()); age != "" {
		parts = append(parts, bg.Render(age, styles.MutedText))
	}

	if status.err != "" {
		maxErr := 80
		if compact {
			maxErr = 40
		}
		parts = append(parts,
			bg.Render("ERROR", styles.DangerText.Bold(true))+bg.Space()+
				bg.Render(truncate(status.err, maxErr), styles.DangerText))
	} else if m.notice != "" {
		parts = append(parts, bg.Render(m.notice, styles.WarningText))
	}

	return styles.Header.Width(m.width).Render(bg.Join(parts, "  "))
}

func (m Model) renderTabs(styles Styles, bg BgStyle) string {
	views := []View{ViewLaunches, ViewRockets, ViewCapsules}
	tabs := make([]string, 0, len(views))
	for i, v := range views {
		label := string(rune('1'+i)) + " " + v.String()
		style := styles.MutedText
		if v == m.listView {
			style = styles.AccentText.Bold(true)
		}
		tabs = append(tabs, bg.Render(label, style))
	}
	return bg.Join(tabs, "  ")
}

// formatUpdated formats the last refresh time with a relative age.
func formatUpdated(last, now time.Time) string {
	if last.IsZero() {
		return ""
	}
	return "Updated " + last.Format("15:04:05") + " (" + humanizeDuration(now.Sub(last)) + ")"
}

// renderCommandBar renders the key hints for the current view.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	var hints [][2]string
	switch {
	case m.searching:
		hints = [][2]string{{"enter", "Keep search"}, {"esc", "Clear search"}}
		return styles.Footer.Width(m.width).Render(m.renderHints(hints, styles, bg))
	case m.currentView == ViewDetail, m.currentView == ViewLogs:
		hints = [][2]string{{"esc", "Back"}, {"j/k", "Scroll"}, {"r", "Reload"}}
	case m.currentView == ViewLaunches:
		hints = [][2]string{{"f", "Filter"}, {"/", "Search"}, {"enter", "Details"}, {"r", "Refresh"}, {"X", "Clear"}}
	case m.currentView == ViewCapsules:
		hints = [][2]string{{"enter", "Details"}, {"r", "Refresh"}}
	default:
		hints = [][2]string{{"r", "Refresh"}}
	}
	if m.currentView != ViewDetail && m.currentView != ViewLogs {
		hints = append(hints, [2]string{"L", "Log"})
	}
	hints = append(hints, [2]string{"1-3", "Views"}, [2]string{"T", "Theme"}, [2]string{"?", "Help"}, [2]string{"q", "Quit"})

	line := m.renderHints(hints, styles, bg)
	if m.width >= LayoutExtraWideWidth {
		line += bg.Spaces(2) + bg.Render(m.theme.Name, styles.FaintText)
	}
	return styles.Footer.Width(m.width).Render(line)
}

func (m Model) renderHints(hints [][2]string, styles Styles, bg BgStyle) string {
	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts,
			bg.Render("<"+h[0]+">", styles.AccentText)+bg.Space()+bg.Render(h[1], styles.MutedText))
	}
	return bg.Join(parts, "  ")
}
