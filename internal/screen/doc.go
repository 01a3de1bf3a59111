// Package screen holds per-screen presentation state.
//
// A Holder pairs a live query on the cache with the refresh that keeps that
// cache current. The live query updates Data whenever the store changes; the
// refresh only moves IsLoading and Error. Cached data therefore stays on
// screen when a refresh fails, and the UI can show it together with the
// error.
//
// The UI reads Snapshot whenever Updates fires. Snapshots are values; the
// slices they carry come fresh from the store and are never mutated.
package screen
