package posts

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const sampleFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
  <title>Blog</title>
  <link>https://example.com</link>
  <item>
    <title>Older</title>
    <link>https://example.com/blog/older/</link>
    <description>&lt;p&gt;An   older &amp;amp; wiser post&lt;/p&gt;</description>
    <pubDate>Mon, 02 Jan 2023 10:00:00 +0000</pubDate>
    <category>go</category>
  </item>
  <item>
    <title>Newer</title>
    <guid>https://example.com/blog/newer/</guid>
    <description>Fresh</description>
    <pubDate>Tue, 05 Mar 2024 10:00:00 +0000</pubDate>
  </item>
</channel>
</rss>`

func TestFeedSource_List(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(sampleFeed))
	}))
	defer srv.Close()

	src, err := NewFeedSource(srv.URL + "/feed.xml")
	if err != nil {
		t.Fatalf("NewFeedSource: %v", err)
	}
	got, err := src.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if gotUA != defaultUserAgent {
		t.Fatalf("User-Agent = %q, want %q", gotUA, defaultUserAgent)
	}
	if len(got) != 2 {
		t.Fatalf("List returned %d posts, want 2", len(got))
	}
	if got[0].Slug != "newer" || got[0].Date != "2024-03-05" {
		t.Fatalf("first = %#v, want slug newer dated 2024-03-05", got[0])
	}
	if got[1].Excerpt != "An older & wiser post" {
		t.Fatalf("Excerpt = %q, want stripped description", got[1].Excerpt)
	}
	if len(got[1].Tags) != 1 || got[1].Tags[0] != "go" {
		t.Fatalf("Tags = %#v, want [go]", got[1].Tags)
	}
}

func TestFeedSource_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer srv.Close()

	src, err := NewFeedSource(srv.URL)
	if err != nil {
		t.Fatalf("NewFeedSource: %v", err)
	}
	_, err = src.List(context.Background())
	if err == nil || !strings.Contains(err.Error(), "502") {
		t.Fatalf("List error = %v, want status 502", err)
	}
}

func TestSlugFromLink(t *testing.T) {
	cases := map[string]string{
		"https://example.com/blog/post/": "post",
		"https://example.com/blog/post":  "post",
		"/blog/x/":                       "x",
	}
	for in, want := range cases {
		if got := slugFromLink(in); got != want {
			t.Errorf("slugFromLink(%q) = %q, want %q", in, got, want)
		}
	}
}
