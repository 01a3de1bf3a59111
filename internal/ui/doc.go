// Package ui is the Bubble Tea terminal interface for SpaceX Explorer.
//
// The UI never talks to the network directly. Each list view (launches,
// rockets, capsules) owns a screen.Holder that observes a live query on the
// local cache and triggers a repository refresh when it opens. Switching view
// or launch filter closes the old holder, which cancels its subscription and
// any in-flight refresh, and opens a new one.
//
// Holder updates reach the Bubble Tea loop through waitForScreen, which turns
// the holder's change signal into a screenUpdateMsg tagged with the screen
// generation so that late signals from a closed screen are dropped.
//
// # Files
//
//   - app.go: Model, Update loop, screen lifecycle and detail loading
//   - header.go: status bar (spinner, errors, offline badge, last update) and command bar
//   - launches.go, rockets.go, capsules.go: list renderers
//   - detail.go: launch detail rendered into a viewport
//   - help.go, keys.go: key bindings and the help overlay
//   - theme.go, style_helpers.go: lipgloss themes and background painting
//
// # Key Bindings
//
//   - 1/2/3: Launches, Rockets, Capsules
//   - f: cycle launch filter (All, Upcoming, Past, Successful)
//   - j/k, g/G, pgup/pgdown: move
//   - enter: launch detail, esc: back
//   - r: retry the refresh
//   - T: cycle theme (saved to preferences)
//   - ?: help, q or ctrl+c: quit
package ui
