package ui

import (
	"regexp"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/folio/internal/interact"
	"github.com/five82/folio/internal/posts"
)

// scrollFrame is the delay between smooth scroll steps.
const scrollFrame = 16 * time.Millisecond

type scrollFrameMsg struct{ gen uint64 }

// anchor marks a line in the rendered post.
type anchor struct {
	id   string
	line int
}

func (a anchor) ID() string { return a.id }

// reader is the post reading pane. It is the scroll source, the scroller and
// the document the back-to-top controller works against.
type reader struct {
	vp      viewport.Model
	host    *host
	post    posts.Post
	loaded  bool
	anchors map[string]anchor

	observers  map[int]func(int)
	nextObs    int
	lastOffset int

	animGen    uint64
	animTarget int
	animating  bool
}

var (
	_ interact.ScrollSource = (*reader)(nil)
	_ interact.Scroller     = (*reader)(nil)
	_ interact.Document     = (*reader)(nil)
)

func newReader(h *host, width, height int) *reader {
	vp := viewport.New(width, height)
	vp.MouseWheelEnabled = true
	return &reader{
		vp:        vp,
		host:      h,
		anchors:   make(map[string]anchor),
		observers: make(map[int]func(int)),
	}
}

// setSize resizes the pane and re-wraps the open post.
func (r *reader) setSize(width, height int) {
	r.vp.Width = width
	r.vp.Height = height
	if r.loaded {
		r.render()
	}
}

// open loads p and scrolls back to the first line.
func (r *reader) open(p posts.Post) {
	r.post = p
	r.loaded = true
	r.stopAnimation()
	r.render()
	r.setOffset(0)
}

// close clears the pane.
func (r *reader) close() {
	r.post = posts.Post{}
	r.loaded = false
	r.stopAnimation()
	r.anchors = make(map[string]anchor)
	r.vp.SetContent("")
	r.setOffset(0)
}

func (r *reader) render() {
	content, anchors := renderPost(r.post, r.vp.Width)
	r.anchors = anchors
	r.vp.SetContent(content)
	r.notify()
}

// offset returns the current scroll offset in lines.
func (r *reader) offset() int {
	return r.vp.YOffset
}

// ObserveScroll implements interact.ScrollSource.
func (r *reader) ObserveScroll(fn func(int)) func() {
	r.nextObs++
	id := r.nextObs
	r.observers[id] = fn
	return func() { delete(r.observers, id) }
}

// ElementByID implements interact.Document.
func (r *reader) ElementByID(id string) (interact.Element, bool) {
	if !r.loaded {
		return nil, false
	}
	a, ok := r.anchors[id]
	if !ok {
		return nil, false
	}
	return a, true
}

// ScrollIntoView implements interact.Scroller. Elements that do not belong to
// the pane are ignored.
func (r *reader) ScrollIntoView(el interact.Element, opts interact.ScrollOptions) {
	a, ok := el.(anchor)
	if !ok {
		return
	}
	if current, ok := r.anchors[a.id]; ok {
		a = current
	}
	target := r.blockOffset(a.line, opts.Block)
	if opts.Behavior == interact.ScrollInstant {
		r.stopAnimation()
		r.setOffset(target)
		return
	}
	r.animGen++
	r.animTarget = target
	r.animating = true
	r.queueFrame()
}

// blockOffset returns the offset that places line at the requested block
// position, clamped to the scrollable range.
func (r *reader) blockOffset(line int, block interact.ScrollBlock) int {
	var target int
	switch block {
	case interact.BlockCenter:
		target = line - r.vp.Height/2
	case interact.BlockEnd:
		target = line - r.vp.Height + 1
	default:
		target = line
	}
	return clampInt(target, 0, r.maxOffset())
}

func (r *reader) maxOffset() int {
	return max(0, r.vp.TotalLineCount()-r.vp.Height)
}

func (r *reader) queueFrame() {
	gen := r.animGen
	r.host.queue(tea.Tick(scrollFrame, func(time.Time) tea.Msg {
		return scrollFrameMsg{gen: gen}
	}))
}

// frame advances a smooth scroll by one step.
func (r *reader) frame(msg scrollFrameMsg) {
	if !r.animating || msg.gen != r.animGen {
		return
	}
	cur := r.vp.YOffset
	dist := r.animTarget - cur
	if dist == 0 {
		r.animating = false
		return
	}
	step := dist / 3
	if step == 0 {
		step = dist
	}
	r.setOffset(cur + step)
	if r.vp.YOffset == r.animTarget || r.vp.YOffset == cur {
		r.animating = false
		return
	}
	r.queueFrame()
}

func (r *reader) stopAnimation() {
	r.animGen++
	r.animating = false
}

// update forwards keys and mouse events to the viewport. Manual scrolling
// interrupts a smooth scroll.
func (r *reader) update(msg tea.Msg) tea.Cmd {
	before := r.vp.YOffset
	var cmd tea.Cmd
	r.vp, cmd = r.vp.Update(msg)
	if r.vp.YOffset != before {
		r.stopAnimation()
	}
	r.notify()
	return cmd
}

func (r *reader) setOffset(y int) {
	r.vp.SetYOffset(y)
	r.notify()
}

// notify reports the offset to observers when it has changed.
func (r *reader) notify() {
	y := r.vp.YOffset
	if y == r.lastOffset {
		return
	}
	r.lastOffset = y
	for _, fn := range r.observers {
		fn(y)
	}
}

func (r *reader) view() string {
	return r.vp.View()
}

func (r *reader) scrollPercent() float64 {
	return r.vp.ScrollPercent()
}

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

// headingID turns heading text into an anchor id.
func headingID(text string) string {
	return strings.Trim(nonSlug.ReplaceAllString(strings.ToLower(text), "-"), "-")
}

// renderPost wraps the post to width and records the line of each anchor.
// The back-to-top anchor is the title line.
func renderPost(p posts.Post, width int) (string, map[string]anchor) {
	if width <= 0 {
		width = 80
	}
	wrap := lipgloss.NewStyle().Width(width)

	anchors := map[string]anchor{
		interact.BackToTopAnchorID: {id: interact.BackToTopAnchorID, line: 0},
	}

	var lines []string
	add := func(block string) {
		lines = append(lines, strings.Split(wrap.Render(block), "\n")...)
	}

	add(p.Title)
	meta := p.Date
	if len(p.Tags) > 0 {
		meta = strings.TrimSpace(meta + "  #" + strings.Join(p.Tags, " #"))
	}
	if meta != "" {
		add(meta)
	}
	lines = append(lines, "")

	for _, para := range splitParagraphs(p.Body) {
		if strings.HasPrefix(para, "#") {
			text := strings.TrimSpace(strings.TrimLeft(para, "#"))
			if id := headingID(text); id != "" {
				if _, taken := anchors[id]; !taken {
					anchors[id] = anchor{id: id, line: len(lines)}
				}
			}
			add(text)
		} else {
			add(para)
		}
		lines = append(lines, "")
	}

	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return strings.Join(lines, "\n"), anchors
}

// splitParagraphs splits markdown text on blank lines. Lines inside a
// paragraph are joined so the pane can re-wrap them, and headings always
// stand alone.
func splitParagraphs(body string) []string {
	body = strings.ReplaceAll(body, "\r\n", "\n")
	var (
		out []string
		cur []string
	)
	flush := func() {
		if len(cur) > 0 {
			out = append(out, strings.Join(cur, " "))
			cur = nil
		}
	}
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case line == "":
			flush()
		case strings.HasPrefix(line, "#"):
			flush()
			out = append(out, line)
		default:
			cur = append(cur, line)
		}
	}
	flush()
	return out
}
