package posts

import (
	"context"
	"encoding/xml"
	"fmt"
	"html"
	"net/http"
	"net/url"
	"path"
	"regexp"
	"strings"
	"time"
)

const (
	defaultUserAgent = "folio/0.1"
	requestTimeout   = 5 * time.Second
)

// FeedSource reads posts from an RSS 2.0 feed. Feeds carry no post body, so
// Body holds the item description.
type FeedSource struct {
	feedURL   string
	http      *http.Client
	userAgent string
}

// NewFeedSource builds a FeedSource for feedURL.
func NewFeedSource(feedURL string) (*FeedSource, error) {
	u, err := url.Parse(strings.TrimSpace(feedURL))
	if err != nil {
		return nil, fmt.Errorf("parse feed_url %q: %w", feedURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("feed_url %q: scheme must be http or https", feedURL)
	}
	return &FeedSource{
		feedURL:   u.String(),
		http:      &http.Client{Timeout: requestTimeout},
		userAgent: defaultUserAgent,
	}, nil
}

type rssFeed struct {
	Channel struct {
		Items []rssItem `xml:"item"`
	} `xml:"channel"`
}

type rssItem struct {
	Title       string   `xml:"title"`
	Link        string   `xml:"link"`
	Description string   `xml:"description"`
	PubDate     string   `xml:"pubDate"`
	GUID        string   `xml:"guid"`
	Categories  []string `xml:"category"`
}

var reTags = regexp.MustCompile(`<[^>]*>`)

// List implements Source.
func (s *FeedSource) List(ctx context.Context) ([]Post, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/rss+xml, application/xml;q=0.9")
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("feed %s returned status %d", s.feedURL, resp.StatusCode)
	}

	var feed rssFeed
	if err := xml.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return nil, fmt.Errorf("decode feed: %w", err)
	}

	items := make([]Post, 0, len(feed.Channel.Items))
	for _, it := range feed.Channel.Items {
		link := strings.TrimSpace(it.Link)
		if link == "" {
			link = strings.TrimSpace(it.GUID)
		}
		summary := strings.Join(strings.Fields(html.UnescapeString(reTags.ReplaceAllString(it.Description, " "))), " ")
		date := ""
		if t := parseDate(it.PubDate); !t.IsZero() {
			date = t.Format(dateLayout)
		}
		items = append(items, Post{
			Slug:    slugFromLink(link),
			Title:   strings.TrimSpace(it.Title),
			Date:    date,
			Excerpt: summary,
			Tags:    it.Categories,
			Body:    summary,
		})
	}
	return Sort(items), nil
}

// slugFromLink returns the last path segment of a post link.
func slugFromLink(link string) string {
	u, err := url.Parse(link)
	if err != nil || u.Path == "" {
		return strings.Trim(link, "/")
	}
	return path.Base(strings.TrimSuffix(u.Path, "/"))
}
