package ui

import (
	"strconv"

	"github.com/JoseDFN/SpaceX-Explorer-App-sub001/internal/domain"
)

var launchColumns = []tableColumn{
	{"FLIGHT", 7},
	{"DATE", 11},
	{"MISSION", 0},
}

func (m Model) renderLaunches(height int) string {
	s := m.launches
	if body, ok := m.renderListState(height, "launches", s.InitialLoading(), s.HasContent(), s.Error); ok {
		return body
	}

	visible := m.visibleLaunches()
	if len(visible) == 0 {
		return m.renderPlaceholder(height, "No launches match \""+m.searchQuery+"\"", "Press esc to clear the search")
	}

	widths := layoutColumns(launchColumns, m.width-12)
	header := m.renderTableHeader(launchColumns, widths)
	rows := m.renderRows(len(visible), height-1, func(i int, selected bool) string {
		l := visible[i]
		return m.renderRow(launchCells(l), widths, launchStatus(l), selected)
	})
	return header + "\n" + rows
}

func launchCells(l domain.Launch) []string {
	flight := "-"
	if l.FlightNumber > 0 {
		flight = strconv.Itoa(l.FlightNumber)
	}
	return []string{flight, formatLaunchDate(l.DateUTC), l.Name}
}
