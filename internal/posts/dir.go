package posts

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

const defaultGlob = "**/*.md"

// DirSource reads markdown posts with YAML front matter from a directory.
type DirSource struct {
	fsys    fs.FS
	pattern string
}

// NewDirSource reads posts under dir matching pattern (default **/*.md).
func NewDirSource(dir, pattern string) *DirSource {
	return NewFSSource(os.DirFS(dir), pattern)
}

// NewFSSource is NewDirSource over an arbitrary file system.
func NewFSSource(fsys fs.FS, pattern string) *DirSource {
	if strings.TrimSpace(pattern) == "" {
		pattern = defaultGlob
	}
	return &DirSource{fsys: fsys, pattern: pattern}
}

type frontMatter struct {
	Title       string   `yaml:"title"`
	Date        yamlDate `yaml:"date"`
	Description string   `yaml:"description"`
	Excerpt     string   `yaml:"excerpt"`
	Tags        yamlTags `yaml:"tags"`
	Slug        string   `yaml:"slug"`
	Hero        string   `yaml:"hero"`
	HeroAlt     string   `yaml:"heroAlt"`
	Draft       bool     `yaml:"draft"`
}

// List implements Source.
func (s *DirSource) List(ctx context.Context) ([]Post, error) {
	matches, err := doublestar.Glob(s.fsys, s.pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %q: %w", s.pattern, err)
	}
	items := make([]Post, 0, len(matches))
	for _, name := range matches {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		data, err := fs.ReadFile(s.fsys, name)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		post, err := parsePost(name, data)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		items = append(items, post)
	}
	return Sort(items), nil
}

func parsePost(name string, data []byte) (Post, error) {
	meta, body, err := splitFrontMatter(data)
	if err != nil {
		return Post{}, err
	}
	var fm frontMatter
	if len(meta) > 0 {
		if err := yaml.Unmarshal(meta, &fm); err != nil {
			return Post{}, fmt.Errorf("front matter: %w", err)
		}
	}

	post := Post{
		Slug:    strings.Trim(fm.Slug, "/"),
		Title:   strings.TrimSpace(fm.Title),
		Date:    string(fm.Date),
		Excerpt: strings.TrimSpace(fm.Excerpt),
		Tags:    []string(fm.Tags),
		Hero:    fm.Hero,
		HeroAlt: fm.HeroAlt,
		Body:    strings.TrimSpace(body),
		Draft:   fm.Draft,
	}
	if post.Slug == "" {
		post.Slug = slugFromPath(name)
	}
	if post.Title == "" {
		post.Title = post.Slug
	}
	if post.Excerpt == "" {
		post.Excerpt = strings.TrimSpace(fm.Description)
	}
	if post.Excerpt == "" {
		post.Excerpt = firstParagraph(post.Body)
	}
	return post, nil
}

// splitFrontMatter separates a leading "---" delimited block from the body.
func splitFrontMatter(data []byte) (meta []byte, body string, err error) {
	data = bytes.TrimPrefix(data, []byte("\ufeff"))
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	if !strings.HasPrefix(text, "---\n") {
		return nil, text, nil
	}
	rest := text[len("---\n"):]
	if strings.HasPrefix(rest, "---") {
		return nil, strings.TrimPrefix(rest[len("---"):], "\n"), nil
	}
	end := strings.Index(rest, "\n---")
	if end < 0 {
		return nil, "", fmt.Errorf("unterminated front matter")
	}
	meta = []byte(rest[:end])
	body = rest[end+len("\n---"):]
	body = strings.TrimPrefix(body, "\n")
	return meta, body, nil
}

func slugFromPath(name string) string {
	dir, file := path.Split(name)
	base := strings.TrimSuffix(file, path.Ext(file))
	if base == "index" && dir != "" {
		return path.Base(strings.TrimSuffix(dir, "/"))
	}
	return base
}

func firstParagraph(body string) string {
	for _, block := range strings.Split(body, "\n\n") {
		block = strings.TrimSpace(block)
		if block == "" || strings.HasPrefix(block, "#") || strings.HasPrefix(block, "```") || strings.HasPrefix(block, "![") {
			continue
		}
		return strings.Join(strings.Fields(block), " ")
	}
	return ""
}

// yamlDate accepts both quoted strings and bare YAML timestamps.
type yamlDate string

func (d *yamlDate) UnmarshalYAML(node *yaml.Node) error {
	var t time.Time
	if node.Tag == "!!timestamp" {
		if err := node.Decode(&t); err == nil {
			*d = yamlDate(t.Format(dateLayout))
			return nil
		}
	}
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	if t := parseDate(s); !t.IsZero() {
		s = t.Format(dateLayout)
	}
	*d = yamlDate(strings.TrimSpace(s))
	return nil
}

// yamlTags accepts a sequence or a comma separated string.
type yamlTags []string

func (t *yamlTags) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.SequenceNode {
		var list []string
		if err := node.Decode(&list); err != nil {
			return err
		}
		var out []string
		for _, tag := range list {
			if tag = strings.TrimSpace(tag); tag != "" {
				out = append(out, tag)
			}
		}
		*t = out
		return nil
	}
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	*t = parseTags(s)
	return nil
}
