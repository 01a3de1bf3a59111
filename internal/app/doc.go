// Package app is the composition root of SpaceX Explorer.
//
// Run wires the pieces together:
//
//  1. config.Load reads ~/.config/spacex-explorer/config.toml (missing file uses defaults)
//  2. logging.Setup points zerolog at the log file, since the TUI owns the terminal
//  3. store.Open opens the SQLite cache and applies migrations
//  4. spacex.NewClient and repository.New build the sync layer
//  5. StartPoller keeps the cache warm in the background
//  6. ui.Run blocks until the user quits or the context is cancelled
//
// Deferred cleanup runs in reverse: the poller stops before the cache closes.
//
// # Polling Behavior
//
// The poller waits one interval (default 15 minutes) before its first cycle,
// because every screen refreshes its own data when it opens. A cycle refreshes
// launches, upcoming launches, the latest launch, rockets and capsules. Each
// refresh is independent; a failed one is logged and the rest still run.
//
// Consecutive failed cycles back off exponentially from the base interval up
// to maxBackoff, so an offline session does not keep hammering the API.
// Writes land in the cache, and open screens pick them up through their live
// queries.
package app
