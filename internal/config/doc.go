// Package config loads folio configuration from TOML.
//
// # Configuration Discovery
//
// Load reads the path it is given, or ~/.config/folio/config.toml. A missing
// file is not an error: folio starts with defaults. Empty fields fall back to
// defaults too, and a small set of FOLIO_* environment variables override the
// file.
//
// # TOML Format
//
//	site_url = "https://example.com"
//	site_name = "Example"
//	source = "dir"              # dir, sqlite or feed
//	content_dir = "~/blog/content"
//	content_glob = "**/*.md"
//	database_path = "~/blog/data/blog.db"
//	feed_url = "https://example.com/feed.xml"
//	refresh_seconds = 60
//	log_file = "~/.local/state/folio/folio.log"
//	log_level = "info"
//
// Tilde paths are expanded and relative paths are made absolute.
package config
