package posts

import (
	"errors"
	"testing"
)

func TestBlogURL(t *testing.T) {
	tests := []struct {
		name string
		site string
		slug string
		want string
	}{
		{"plain", "https://example.com", "hello-world", "https://example.com/blog/hello-world/"},
		{"site trailing slash", "https://example.com/", "hello-world", "https://example.com/blog/hello-world/"},
		{"gatsby slug", "https://example.com", "/hello-world/", "https://example.com/blog/hello-world/"},
		{"site subpath", "https://example.com/me", "post", "https://example.com/me/blog/post/"},
		{"drops query", "https://example.com/?ref=x", "post", "https://example.com/blog/post/"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BlogURL(tt.site, tt.slug); got != tt.want {
				t.Fatalf("BlogURL(%q, %q) = %q, want %q", tt.site, tt.slug, got, tt.want)
			}
		})
	}
}

func TestSort_NewestFirstWithoutDrafts(t *testing.T) {
	in := []Post{
		{Slug: "old", Title: "Old", Date: "2020-01-01"},
		{Slug: "draft", Title: "Draft", Date: "2030-01-01", Draft: true},
		{Slug: "new", Title: "New", Date: "2024-05-06"},
		{Slug: "b", Title: "B", Date: "2022-02-02"},
		{Slug: "a", Title: "A", Date: "2022-02-02"},
	}
	got := Sort(in)
	want := []string{"new", "a", "b", "old"}
	if len(got) != len(want) {
		t.Fatalf("Sort returned %d posts, want %d", len(got), len(want))
	}
	for i, slug := range want {
		if got[i].Slug != slug {
			t.Fatalf("Sort()[%d] = %q, want %q", i, got[i].Slug, slug)
		}
	}
	if len(in) != 5 {
		t.Fatalf("Sort mutated input length")
	}
}

func TestParsedDate(t *testing.T) {
	if got := (Post{Date: "2021-03-04"}).ParsedDate(); got.Year() != 2021 || got.Month() != 3 || got.Day() != 4 {
		t.Fatalf("ParsedDate = %v, want 2021-03-04", got)
	}
	if got := (Post{Date: "Mon, 02 Jan 2006 15:04:05 -0700"}).ParsedDate(); got.Year() != 2006 {
		t.Fatalf("ParsedDate RFC1123Z = %v, want 2006", got)
	}
	if got := (Post{Date: "soon"}).ParsedDate(); !got.IsZero() {
		t.Fatalf("ParsedDate invalid = %v, want zero", got)
	}
}

func TestParseTags(t *testing.T) {
	got := parseTags(" go, ,tui ,")
	if len(got) != 2 || got[0] != "go" || got[1] != "tui" {
		t.Fatalf("parseTags = %#v, want [go tui]", got)
	}
}

func TestNewSource(t *testing.T) {
	if _, _, err := NewSource(Options{Kind: "ftp"}); !errors.Is(err, ErrUnknownSource) {
		t.Fatalf("NewSource(ftp) error = %v, want ErrUnknownSource", err)
	}
	if _, _, err := NewSource(Options{Kind: KindDir}); err == nil {
		t.Fatalf("NewSource(dir) without content_dir returned nil error")
	}
	if _, _, err := NewSource(Options{Kind: KindFeed, FeedURL: "ftp://x"}); err == nil {
		t.Fatalf("NewSource(feed) with ftp scheme returned nil error")
	}

	src, closer, err := NewSource(Options{Kind: " DIR ", ContentDir: t.TempDir()})
	if err != nil {
		t.Fatalf("NewSource(dir) error = %v", err)
	}
	if _, ok := src.(*DirSource); !ok {
		t.Fatalf("NewSource(dir) = %T, want *DirSource", src)
	}
	if err := closer.Close(); err != nil {
		t.Fatalf("Close() = %v", err)
	}
}
