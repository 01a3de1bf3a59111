package ui

import (
	"fmt"
	"strconv"

	"github.com/JoseDFN/SpaceX-Explorer-App-sub001/internal/domain"
)

var rocketColumns = []tableColumn{
	{"NAME", 0},
	{"STAGES", 7},
	{"SUCCESS", 8},
	{"COST", 9},
	{"FIRST FLIGHT", 13},
}

func (m Model) renderRockets(height int) string {
	s := m.rockets
	if body, ok := m.renderListState(height, "rockets", s.InitialLoading(), s.HasContent(), s.Error); ok {
		return body
	}

	widths := layoutColumns(rocketColumns, m.width-12)
	header := m.renderTableHeader(rocketColumns, widths)
	rows := m.renderRows(len(s.Data), height-1, func(i int, selected bool) string {
		r := s.Data[i]
		return m.renderRow(rocketCells(r), widths, rocketStatus(r), selected)
	})
	return header + "\n" + rows
}

func rocketCells(r domain.Rocket) []string {
	return []string{
		r.Name,
		strconv.Itoa(r.Stages),
		fmt.Sprintf("%d%%", r.SuccessRatePct),
		formatCost(r.CostPerLaunch),
		r.FirstFlight,
	}
}
