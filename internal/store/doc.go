// Package store implements the local cache: a SQLite file holding the last
// known good launches, rockets and capsules.
//
// The store is the single source of truth read by the UI. Writes are
// insert-or-replace batches, each applied in one transaction, so every row of
// a batch becomes visible at once. Rows missing from a batch are never
// deleted; only ClearLaunches removes data.
//
// List-valued fields (launch failures, capsule ids, rocket images, capsule
// launches) live in TEXT columns as JSON arrays. An empty list is stored as
// NULL and NULL reads back as an empty list.
//
// Live queries (ObserveLaunches, ObserveRockets, ObserveCapsules) deliver the
// current result immediately and a fresh result after every committed write
// to their table, until the subscription is closed, its context is cancelled
// or the store is closed.
package store
