package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderDetailContent renders the launch or capsule detail shown in the viewport.
func (m Model) renderDetailContent() string {
	if m.detail.kind == detailCapsule {
		return m.renderCapsuleDetail()
	}
	styles := m.theme.Styles()
	d := m.detail

	switch {
	case d.loading && d.launch.ID == "":
		return styles.MutedText.Render(m.spinner.View() + " Loading launch...")
	case d.err != "" && d.launch.ID == "":
		return styles.DangerText.Render(d.err) + "\n" + styles.MutedText.Render("Press r to retry or esc to go back")
	}

	l := d.launch
	labelWidth := 14
	wrap := max(m.width-4, 20)

	var b strings.Builder
	section := func(title string) {
		b.WriteString("\n")
		b.WriteString(styles.AccentText.Bold(true).Render(title))
		b.WriteString("\n")
	}
	field := func(label, value string) {
		if strings.TrimSpace(value) == "" {
			return
		}
		b.WriteString(styles.MutedText.Render(padRight(label, labelWidth)))
		b.WriteString(styles.Text.Render(value))
		b.WriteString("\n")
	}

	status := launchStatus(l)
	b.WriteString(styles.Text.Bold(true).Render(l.Name))
	b.WriteString("  ")
	b.WriteString(styles.StatusStyle(status).Render(strings.ToUpper(status)))
	b.WriteString("\n")

	if l.FlightNumber > 0 {
		field("Flight", strconv.Itoa(l.FlightNumber))
	}
	field("Date (UTC)", formatLaunchDate(l.DateUTC))
	field("Patch", truncateMiddle(l.PatchURL, wrap-labelWidth))
	if d.err != "" {
		b.WriteString(styles.DangerText.Render(d.err))
		b.WriteString("\n")
	}

	if details := strings.TrimSpace(l.Details); details != "" {
		section("Details")
		b.WriteString(lipgloss.NewStyle().Width(wrap).Foreground(lipgloss.Color(m.theme.Text)).Render(details))
		b.WriteString("\n")
	}

	section("Rocket")
	switch {
	case d.hasRocket:
		r := d.rocket
		field("Name", r.Name)
		field("Type", titleCase(r.Type))
		field("Status", titleCase(rocketStatus(r)))
		field("Stages", strconv.Itoa(r.Stages))
		field("Success rate", fmt.Sprintf("%d%%", r.SuccessRatePct))
		field("Cost", formatCost(r.CostPerLaunch))
		field("First flight", r.FirstFlight)
		field("Wikipedia", truncateMiddle(r.Wikipedia, wrap-labelWidth))
	case d.loading:
		b.WriteString(styles.MutedText.Render("Loading rocket..."))
		b.WriteString("\n")
	case l.RocketID != "":
		b.WriteString(styles.MutedText.Render("Rocket " + l.RocketID + " is not cached"))
		b.WriteString("\n")
	default:
		b.WriteString(styles.MutedText.Render("No rocket assigned"))
		b.WriteString("\n")
	}

	if len(l.Failures) > 0 {
		section(fmt.Sprintf("Failures (%d)", len(l.Failures)))
		for _, f := range l.Failures {
			b.WriteString(styles.DangerText.Render("• "))
			b.WriteString(styles.Text.Render(formatFailure(f)))
			b.WriteString("\n")
		}
	}

	if len(l.CapsuleIDs) > 0 {
		section(fmt.Sprintf("Capsules (%d)", len(l.CapsuleIDs)))
		for _, id := range l.CapsuleIDs {
			b.WriteString(styles.FaintText.Render("• "))
			b.WriteString(styles.Text.Render(id))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func (m Model) renderCapsuleDetail() string {
	styles := m.theme.Styles()
	d := m.detail

	switch {
	case d.loading && !d.loaded():
		return styles.MutedText.Render(m.spinner.View() + " Loading capsule...")
	case d.err != "" && !d.loaded():
		return styles.DangerText.Render(d.err) + "\n" + styles.MutedText.Render("Press r to retry or esc to go back")
	}

	c := d.capsule
	const labelWidth = 16
	var b strings.Builder
	field := func(label, value string) {
		if strings.TrimSpace(value) == "" {
			return
		}
		b.WriteString(styles.MutedText.Render(padRight(label, labelWidth)))
		b.WriteString(styles.Text.Render(value))
		b.WriteString("\n")
	}

	b.WriteString(styles.Text.Bold(true).Render(c.Serial))
	if c.Status != "" {
		b.WriteString("  ")
		b.WriteString(styles.StatusStyle(c.Status).Render(strings.ToUpper(c.Status)))
	}
	b.WriteString("\n")

	field("Type", c.Type)
	field("Reuse count", strconv.Itoa(c.ReuseCount))
	field("Water landings", strconv.Itoa(c.WaterLandings))
	field("Land landings", strconv.Itoa(c.LandLandings))
	if c.LastUpdate != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Width(max(m.width-4, 20)).Foreground(lipgloss.Color(m.theme.Text)).Render(c.LastUpdate))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.AccentText.Bold(true).Render(fmt.Sprintf("Launches (%d)", len(c.LaunchIDs))))
	b.WriteString("\n")
	if len(c.LaunchIDs) == 0 {
		b.WriteString(styles.MutedText.Render("No launches recorded"))
		b.WriteString("\n")
	}
	for _, id := range c.LaunchIDs {
		b.WriteString(styles.FaintText.Render("• "))
		if name, ok := d.launchNames[id]; ok {
			b.WriteString(styles.Text.Render(name))
			b.WriteString(" ")
			b.WriteString(styles.FaintText.Render(id))
		} else {
			b.WriteString(styles.MutedText.Render(id + " (not cached)"))
		}
		b.WriteString("\n")
	}
	return b.String()
}
