package ui

import "time"

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which compact mode is used.
	LayoutCompactWidth = 100

	// LayoutExtraWideWidth is the threshold for extra-wide layouts.
	LayoutExtraWideWidth = 160
)

// chromeHeight is the header plus the command bar.
const chromeHeight = 2

// LaunchListLimit caps the Past and Successful launch lists.
const LaunchListLimit = 50

// logTailLines is how much of the log file the log view reads.
const logTailLines = 400

// DefaultUIInterval is how often relative timestamps are re-rendered.
const DefaultUIInterval = time.Second
