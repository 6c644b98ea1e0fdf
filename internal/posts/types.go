package posts

import (
	"context"
	"errors"
	"net/url"
	"path"
	"sort"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// ErrUnknownSource is returned by NewSource for an unrecognised kind.
var ErrUnknownSource = errors.New("unknown post source")

// Post is the metadata and body of a single blog post.
type Post struct {
	Slug    string
	Title   string
	Date    string
	Excerpt string
	Tags    []string
	Hero    string
	HeroAlt string
	Body    string
	Draft   bool
}

// ParsedDate returns Date as a time.Time, or the zero time when unparseable.
func (p Post) ParsedDate() time.Time {
	return parseDate(p.Date)
}

// Source lists the posts of a blog.
type Source interface {
	List(ctx context.Context) ([]Post, error)
}

// BlogURL returns the canonical URL of the post with slug on siteURL.
func BlogURL(siteURL, slug string) string {
	slug = strings.Trim(strings.TrimSpace(slug), "/")
	u, err := url.Parse(strings.TrimSpace(siteURL))
	if err != nil {
		return strings.TrimRight(siteURL, "/") + "/blog/" + slug + "/"
	}
	u.Path = path.Join("/", u.Path, "blog", slug)
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	u.RawQuery = ""
	u.Fragment = ""
	return u.String()
}

// Sort orders posts newest first, breaking ties by title, and drops drafts.
func Sort(items []Post) []Post {
	out := make([]Post, 0, len(items))
	for _, p := range items {
		if p.Draft {
			continue
		}
		out = append(out, p)
	}
	sort.SliceStable(out, func(i, j int) bool {
		di, dj := out[i].ParsedDate(), out[j].ParsedDate()
		if !di.Equal(dj) {
			return di.After(dj)
		}
		return out[i].Title < out[j].Title
	})
	return out
}

func parseDate(value string) time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}
	}
	for _, layout := range []string{dateLayout, time.RFC3339, time.RFC1123Z, time.RFC1123} {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}

func parseTags(raw string) []string {
	var tags []string
	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
