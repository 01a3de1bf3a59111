package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/JoseDFN/SpaceX-Explorer-App-sub001/internal/domain"
)

func humanizeDuration(d time.Duration) string {
	switch {
	case d < time.Second:
		return "now"
	case d < time.Minute:
		return fmt.Sprintf("%ds", int(d.Seconds()))
	case d < time.Hour:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	case d < 24*time.Hour:
		hours := int(d.Hours())
		if minutes := int(d.Minutes()) % 60; minutes > 0 {
			return fmt.Sprintf("%dh %dm", hours, minutes)
		}
		return fmt.Sprintf("%dh", hours)
	default:
		return fmt.Sprintf("%dd", int(d.Hours()/24))
	}
}

// launchStatus maps a launch to its badge key.
func launchStatus(l domain.Launch) string {
	switch {
	case l.Upcoming:
		return "upcoming"
	case l.Succeeded():
		return "success"
	case l.Failed():
		return "failed"
	default:
		return "unknown"
	}
}

func rocketStatus(r domain.Rocket) string {
	if r.Active {
		return "active"
	}
	return "inactive"
}

// formatCost renders a dollar amount in millions, e.g. "$50.0M".
func formatCost(dollars int64) string {
	if dollars <= 0 {
		return "n/a"
	}
	if dollars < 1_000_000 {
		return fmt.Sprintf("$%dK", dollars/1_000)
	}
	return fmt.Sprintf("$%.1fM", float64(dollars)/1_000_000)
}

func formatLaunchDate(t time.Time) string {
	if t.IsZero() {
		return "TBD"
	}
	return t.UTC().Format("2006-01-02")
}

func formatFailure(f domain.Failure) string {
	var b strings.Builder
	fmt.Fprintf(&b, "T+%ds", f.TimeSeconds)
	if f.Altitude != nil {
		fmt.Fprintf(&b, " at %d km", *f.Altitude)
	}
	if reason := strings.TrimSpace(f.Reason); reason != "" {
		b.WriteString(": ")
		b.WriteString(reason)
	}
	return b.String()
}

// visibleRange returns the [start, end) window of a list of total rows that
// keeps selected on screen within height rows.
func visibleRange(selected, total, height int) (int, int) {
	if total <= 0 || height <= 0 {
		return 0, 0
	}
	if total <= height {
		return 0, total
	}
	start := selected - height/2
	if start < 0 {
		start = 0
	}
	if start > total-height {
		start = total - height
	}
	return start, start + height
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return min(max(v, lo), hi)
}
