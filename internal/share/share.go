// Package share builds social share links for a post.
package share

import (
	"net/url"
	"strings"
)

// Target is a share destination.
type Target string

const (
	Twitter  Target = "twitter"
	Facebook Target = "facebook"
	Pocket   Target = "pocket"
	LinkedIn Target = "linkedin"
	Reddit   Target = "reddit"
	Email    Target = "email"
)

// Targets lists every supported target in display order.
var Targets = []Target{Twitter, Facebook, Pocket, LinkedIn, Reddit, Email}

// CardTargets are the targets shown on a post card.
var CardTargets = []Target{Twitter, Facebook, Pocket}

var labels = map[Target]string{
	Twitter:  "Twitter",
	Facebook: "Facebook",
	Pocket:   "Pocket",
	LinkedIn: "LinkedIn",
	Reddit:   "Reddit",
	Email:    "Email",
}

// Label returns the display name of t, or t itself when it is unknown.
func (t Target) Label() string {
	if l, ok := labels[t]; ok {
		return l
	}
	return string(t)
}

// Parse returns the target named by s, ignoring case and surrounding space.
func Parse(s string) (Target, bool) {
	t := Target(strings.ToLower(strings.TrimSpace(s)))
	_, ok := labels[t]
	return t, ok
}

// Next returns the target after t in Targets, wrapping around. Unknown
// targets yield the first one.
func Next(t Target) Target {
	for i, candidate := range Targets {
		if candidate == t {
			return Targets[(i+1)%len(Targets)]
		}
	}
	return Targets[0]
}

// Request describes what is being shared.
type Request struct {
	URL     string
	Title   string
	Summary string
	Tags    []string
}

// Link is a share URL for one target.
type Link struct {
	Target Target
	Label  string
	URL    string
}

// Links returns one link per known target, in the order given. Unknown and
// repeated targets are skipped.
func Links(req Request, targets ...Target) []Link {
	seen := make(map[Target]bool, len(targets))
	links := make([]Link, 0, len(targets))
	for _, t := range targets {
		if seen[t] {
			continue
		}
		seen[t] = true
		if link, ok := build(req, t); ok {
			links = append(links, link)
		}
	}
	return links
}

func build(req Request, t Target) (Link, bool) {
	v := url.Values{}
	switch t {
	case Twitter:
		v.Set("url", req.URL)
		v.Set("text", req.Title)
		if tags := hashtags(req.Tags); tags != "" {
			v.Set("hashtags", tags)
		}
		return Link{t, t.Label(), "https://twitter.com/intent/tweet?" + v.Encode()}, true
	case Facebook:
		v.Set("u", req.URL)
		if req.Summary != "" {
			v.Set("quote", req.Summary)
		}
		return Link{t, t.Label(), "https://www.facebook.com/sharer/sharer.php?" + v.Encode()}, true
	case Pocket:
		v.Set("url", req.URL)
		v.Set("title", req.Title)
		return Link{t, t.Label(), "https://getpocket.com/save?" + v.Encode()}, true
	case LinkedIn:
		v.Set("url", req.URL)
		return Link{t, t.Label(), "https://www.linkedin.com/sharing/share-offsite/?" + v.Encode()}, true
	case Reddit:
		v.Set("url", req.URL)
		v.Set("title", req.Title)
		return Link{t, t.Label(), "https://www.reddit.com/submit?" + v.Encode()}, true
	case Email:
		body := req.URL
		if req.Summary != "" {
			body = req.Summary + "\n\n" + req.URL
		}
		v.Set("subject", req.Title)
		v.Set("body", body)
		// mailto wants %20, not +.
		return Link{t, t.Label(), "mailto:?" + strings.ReplaceAll(v.Encode(), "+", "%20")}, true
	default:
		return Link{}, false
	}
}

func hashtags(tags []string) string {
	var out []string
	for _, tag := range tags {
		tag = strings.Join(strings.Fields(tag), "")
		if tag != "" {
			out = append(out, tag)
		}
	}
	return strings.Join(out, ",")
}
