package ui

import (
	"go.uber.org/zap"

	"github.com/five82/folio/internal/interact"
	"github.com/five82/folio/internal/posts"
)

// copyLinks holds one copy-link controller per post card, keyed by slug.
// Controllers are created on first use and disposed when their post leaves
// the list.
type copyLinks struct {
	host  *host
	log   *zap.Logger
	links map[string]*interact.CopyLink
}

func newCopyLinks(h *host, log *zap.Logger) *copyLinks {
	if log == nil {
		log = zap.NewNop()
	}
	return &copyLinks{
		host:  h,
		log:   log,
		links: make(map[string]*interact.CopyLink),
	}
}

// get returns the controller for slug, creating it if needed.
func (c *copyLinks) get(slug string) *interact.CopyLink {
	if link, ok := c.links[slug]; ok {
		return link
	}
	var link *interact.CopyLink
	link = interact.NewCopyLink(c.host, c.host, interact.WithStatusListener(func(status interact.CopyStatus) {
		fields := []zap.Field{zap.String("slug", slug), zap.Stringer("status", status)}
		if status == interact.CopyFailed {
			fields = append(fields, zap.Error(link.Session().LastError))
			c.log.Warn("copy link failed", fields...)
			return
		}
		c.log.Debug("copy link status", fields...)
	}))
	c.links[slug] = link
	return link
}

// status returns the status for slug without creating a controller.
func (c *copyLinks) status(slug string) interact.CopyStatus {
	if link, ok := c.links[slug]; ok {
		return link.Status()
	}
	return interact.CopyIdle
}

// prune disposes controllers whose posts are no longer listed.
func (c *copyLinks) prune(live []posts.Post) {
	keep := make(map[string]struct{}, len(live))
	for _, p := range live {
		keep[p.Slug] = struct{}{}
	}
	for slug, link := range c.links {
		if _, ok := keep[slug]; ok {
			continue
		}
		link.Dispose()
		delete(c.links, slug)
	}
}

// disposeAll disposes every controller.
func (c *copyLinks) disposeAll() {
	for slug, link := range c.links {
		link.Dispose()
		delete(c.links, slug)
	}
}
