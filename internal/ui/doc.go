// Package ui is the folio terminal interface, built on Bubble Tea.
//
// The list view shows one card per post with its copy-link button and share
// targets. The reader view shows a single post in a scrollable pane with a
// back-to-top affordance once the reader has scrolled far enough.
//
// # Event loop
//
// The copy-link and back-to-top controllers from package interact are not
// safe for concurrent use, so every call into them happens inside
// Model.Update. The host type adapts Bubble Tea to their capabilities:
//
//   - Scheduler: AfterFunc emits a tea.Tick whose message carries a timer id.
//     Stop forgets the id, so a stopped timer's tick is dropped on arrival.
//   - Clipboard: WriteText runs the write in a tea.Cmd and delivers the
//     result back to Update as a message.
//
// The reader pane wraps a bubbles viewport and is the controller's scroll
// source, scroller and document. Smooth scrolling runs as a chain of frame
// ticks, each of which reports the new offset to observers.
//
// # Key Bindings
//
//   - j/k, g/G: Move through the post list
//   - enter: Read the selected post
//   - esc/q: Back to the list
//   - c: Copy the post URL
//   - s/S: Cycle share target, copy the share link
//   - t: Back to top (reader, once visible)
//   - r: Refresh posts now
//   - T: Cycle theme
//   - h/?: Help
//   - e or Ctrl+C: Exit
package ui
