// Package state holds the post list shared by the poller and the UI.
//
// The poller writes with Update and the UI reads with Snapshot. Both copy the
// post slice so neither side can mutate what the other holds. A failed
// refresh keeps the previous posts and records the error, so the UI keeps
// showing the last good list while it reports the failure.
package state
