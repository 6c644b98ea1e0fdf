package posts

import (
	"fmt"
	"io"
	"strings"
)

// Source kinds accepted by NewSource.
const (
	KindDir    = "dir"
	KindSQLite = "sqlite"
	KindFeed   = "feed"
)

// Options select and configure a Source.
type Options struct {
	Kind         string
	ContentDir   string
	ContentGlob  string
	DatabasePath string
	FeedURL      string
}

// NewSource builds the Source named by opts.Kind. The returned closer
// releases resources held by the source and is never nil.
func NewSource(opts Options) (Source, io.Closer, error) {
	switch strings.ToLower(strings.TrimSpace(opts.Kind)) {
	case "", KindDir:
		if strings.TrimSpace(opts.ContentDir) == "" {
			return nil, nil, fmt.Errorf("dir source: content_dir is empty")
		}
		return NewDirSource(opts.ContentDir, opts.ContentGlob), nopCloser{}, nil
	case KindSQLite:
		src, err := OpenSQLite(opts.DatabasePath)
		if err != nil {
			return nil, nil, err
		}
		return src, src, nil
	case KindFeed:
		src, err := NewFeedSource(opts.FeedURL)
		if err != nil {
			return nil, nil, err
		}
		return src, nopCloser{}, nil
	default:
		return nil, nil, fmt.Errorf("%w %q", ErrUnknownSource, opts.Kind)
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
