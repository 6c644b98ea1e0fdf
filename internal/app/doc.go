// Package app wires configuration, the post source, polling, state and the UI
// into the folio program.
//
// # Overview
//
// Run is the composition root:
//
//	┌──────────────┐
//	│   Run()      │ Initialize everything
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()       Read folio config
//	       ├─────> logging.NewOrNop()  File logger
//	       ├─────> posts.NewSource()   Directory, SQLite or feed
//	       ├─────> state.Store{}       Shared post list
//	       ├─────> refresh()           Fill the store before the first frame
//	       ├─────> StartPoller()       Background refresh
//	       └─────> ui.Run()            Start TUI (blocks)
//
// List is the non-interactive path used when stdout is not a terminal. It
// prints one line per post with its canonical URL.
//
// # Polling Behavior
//
// The poller lists posts at the configured interval (default one minute).
// Each consecutive failure doubles the wait, capped at 15 minutes. The UI can
// ask for an immediate refresh; requests made while one is queued are merged.
//
// # Error Handling
//
// Fatal errors (returned from Run):
//   - Configuration file invalid
//   - Unknown post source or a source that cannot be opened
//
// Recoverable errors (logged, polling continues):
//   - Listing failures, which the store records for the header
//   - Log file that cannot be opened, which disables logging
package app
