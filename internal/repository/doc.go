// Package repository is the single authority that reconciles the local cache
// with the SpaceX API.
//
// Reads are cache-only: the Observe* methods return live queries on the store
// and never touch the network, and Get*ByID never falls back to a fetch.
// Refresh* methods fetch from the API and upsert whatever succeeded before they
// return, so a caller that waits for a refresh sees the new rows in any live
// query opened afterwards. A failed fetch leaves the cache as it was.
//
// RefreshLaunches runs its two fetches (general and past listings)
// concurrently. Each success is cached on its own; the outcome is an error
// only when both fail.
package repository
