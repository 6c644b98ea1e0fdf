// Package posts loads blog post metadata for folio.
//
// Three sources are supported: a directory of markdown files with YAML front
// matter, a pubengine-style SQLite database, and an RSS 2.0 feed. Every source
// returns published posts newest first. BlogURL builds the canonical link a
// post card copies and shares.
package posts
