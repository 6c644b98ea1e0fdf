// Package interact holds the interactive behaviour of a post card and the
// page around it, independent of how it is drawn.
//
// # Controllers
//
// CopyLink copies a post URL to the clipboard and reports the outcome:
//
//	Idle ──Copy──▶ (write pending) ──ok──▶ Copied ──2.5s──▶ Idle
//	                               └─err─▶ Failed ──2.5s──▶ Idle
//
// Every resolution re-arms the reset timer. The old timer is always stopped
// before a new one is scheduled, so a session never has two timers armed.
// When clipboard writes overlap, the last one to resolve decides the status.
//
// ScrollTop shows a back-to-top affordance once the scroll offset passes
// ScrollThreshold and, when activated, asks the host to scroll the
// BackToTopAnchorID element into the centre of the viewport.
//
// # Host
//
// The controllers never touch a real clipboard, clock or viewport. The host
// supplies a Clipboard, a Scheduler, a Scroller and optionally a ScrollSource
// and Document. All of their callbacks must be delivered on one event loop;
// the controllers do no locking.
//
// # Disposal
//
// CopyLink.Dispose must be called when the owning card goes away. It stops
// the reset timer and makes the controller ignore clipboard results that
// arrive later. ScrollTop.Close drops its scroll subscription.
package interact
