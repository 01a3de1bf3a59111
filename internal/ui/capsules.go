package ui

import (
	"strconv"

	"github.com/JoseDFN/SpaceX-Explorer-App-sub001/internal/domain"
)

var capsuleColumns = []tableColumn{
	{"SERIAL", 8},
	{"TYPE", 11},
	{"REUSE", 6},
	{"LANDINGS", 9},
	{"LAST UPDATE", 0},
}

func (m Model) renderCapsules(height int) string {
	s := m.capsules
	if body, ok := m.renderListState(height, "capsules", s.InitialLoading(), s.HasContent(), s.Error); ok {
		return body
	}

	widths := layoutColumns(capsuleColumns, m.width-14)
	header := m.renderTableHeader(capsuleColumns, widths)
	rows := m.renderRows(len(s.Data), height-1, func(i int, selected bool) string {
		c := s.Data[i]
		return m.renderRow(capsuleCells(c), widths, c.Status, selected)
	})
	return header + "\n" + rows
}

func capsuleCells(c domain.Capsule) []string {
	lastUpdate := c.LastUpdate
	if lastUpdate == "" {
		lastUpdate = "-"
	}
	return []string{
		c.Serial,
		c.Type,
		strconv.Itoa(c.ReuseCount),
		strconv.Itoa(c.WaterLandings + c.LandLandings),
		lastUpdate,
	}
}
