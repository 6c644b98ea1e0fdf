package ui

import (
	"context"
	"errors"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/five82/folio/internal/config"
	"github.com/five82/folio/internal/interact"
	"github.com/five82/folio/internal/posts"
	"github.com/five82/folio/internal/prefs"
	"github.com/five82/folio/internal/share"
	"github.com/five82/folio/internal/state"
)

// View represents the current active view.
type View int

const (
	ViewList View = iota
	ViewReader
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Store     *state.Store
	Config    *config.Config
	Refresh   func() // asks the poller for an immediate refresh
	Logger    *zap.Logger
	PollTick  time.Duration
	ThemeName string
	Share     string
	PrefsPath string

	// ClipboardWrite replaces the system clipboard.
	ClipboardWrite func(string) error
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	store     *state.Store
	config    *config.Config
	refresh   func()
	log       *zap.Logger
	prefsPath string
	pollTick  time.Duration

	// UI state
	keys     keyMap
	theme    Theme
	share    share.Target
	view     View
	width    int
	height   int
	ready    bool
	showHelp bool

	// Data state
	snapshot state.Snapshot

	// List state
	selected int
	listTop  int

	// Interaction state. The pointers are shared by every copy of the model.
	host      *host
	links     *copyLinks
	shareCopy *interact.CopyLink
	reader    *reader
	scrollTop *interact.ScrollTop
	reading   string // slug of the open post
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	pollTick := opts.PollTick
	if pollTick == 0 {
		pollTick = DefaultUIInterval
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Nightfox"
	}

	target, ok := share.Parse(opts.Share)
	if !ok {
		target = share.Twitter
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	h := newHost(opts.ClipboardWrite)
	r := newReader(h, 80, 20)
	scrollTop := interact.NewScrollTop(r, interact.WithVisibilityListener(func(visible bool) {
		log.Debug("back to top visibility", zap.Bool("visible", visible))
	}))
	scrollTop.Observe(r)

	return Model{
		ctx:       ctx,
		store:     opts.Store,
		config:    opts.Config,
		refresh:   opts.Refresh,
		log:       log,
		prefsPath: prefsPath,
		pollTick:  pollTick,
		keys:      DefaultKeyMap(),
		theme:     GetTheme(themeName),
		share:     target,
		view:      ViewList,
		host:      h,
		links:     newCopyLinks(h, log),
		shareCopy: interact.NewCopyLink(h, h),
		reader:    r,
		scrollTop: scrollTop,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tickCmd(m.pollTick)}
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		m, cmd = m.handleKey(msg)

	case tea.MouseMsg:
		if m.view == ViewReader {
			cmd = m.reader.update(msg)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.reader.setSize(m.readerWidth(), m.readerHeight())
		m.ensureVisible()

	case tickMsg:
		cmds := []tea.Cmd{tickCmd(m.pollTick)}
		if m.store != nil {
			cmds = append(cmds, fetchSnapshotCmd(m.store))
		}
		cmd = tea.Batch(cmds...)

	case snapshotMsg:
		m.applySnapshot(state.Snapshot(msg))

	case scrollFrameMsg:
		m.reader.frame(msg)

	default:
		m.host.dispatch(msg)
	}

	return m, tea.Batch(cmd, m.host.flush())
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")
	switch m.view {
	case ViewReader:
		b.WriteString(m.renderReader())
	default:
		b.WriteString(m.renderList())
	}
	return b.String()
}

// applySnapshot installs a new post list, disposing controllers of posts
// that disappeared and leaving the reader if its post is gone.
func (m *Model) applySnapshot(snap state.Snapshot) {
	m.snapshot = snap
	m.links.prune(snap.Posts)

	if m.selected >= len(snap.Posts) {
		m.selected = max(0, len(snap.Posts)-1)
	}
	m.ensureVisible()

	if m.view != ViewReader {
		return
	}
	p, ok := snap.Find(m.reading)
	if !ok {
		m.closeReader()
		return
	}
	if p.Body != m.reader.post.Body || p.Title != m.reader.post.Title {
		m.reader.post = p
		m.reader.render()
	}
}

// selectedPost returns the post under the cursor.
func (m Model) selectedPost() (posts.Post, bool) {
	if m.selected < 0 || m.selected >= len(m.snapshot.Posts) {
		return posts.Post{}, false
	}
	return m.snapshot.Posts[m.selected], true
}

// currentPost is the open post in the reader, or the selected card.
func (m Model) currentPost() (posts.Post, bool) {
	if m.view == ViewReader {
		return m.snapshot.Find(m.reading)
	}
	return m.selectedPost()
}

func (m Model) siteURL() string {
	if m.config == nil {
		return ""
	}
	return m.config.SiteURL
}

func (m Model) postURL(p posts.Post) string {
	return posts.BlogURL(m.siteURL(), p.Slug)
}

// copyPostURL copies the canonical URL of the current post.
func (m *Model) copyPostURL() {
	p, ok := m.currentPost()
	if !ok {
		return
	}
	m.links.get(p.Slug).Copy(m.postURL(p))
}

// copyShareLink copies the share link for the current post and target.
func (m *Model) copyShareLink() {
	p, ok := m.currentPost()
	if !ok {
		return
	}
	links := share.Links(share.Request{
		URL:     m.postURL(p),
		Title:   p.Title,
		Summary: p.Excerpt,
		Tags:    p.Tags,
	}, m.share)
	if len(links) == 0 {
		return
	}
	m.shareCopy.Copy(links[0].URL)
}

func (m Model) shareTarget() share.Target {
	return m.share
}

func (m *Model) openReader(p posts.Post) {
	m.reading = p.Slug
	m.view = ViewReader
	m.reader.setSize(m.readerWidth(), m.readerHeight())
	m.reader.open(p)
}

func (m *Model) closeReader() {
	m.reading = ""
	m.view = ViewList
	m.reader.close()
}

// backToTop scrolls the reader to its top anchor when the affordance is
// showing.
func (m *Model) backToTop() {
	if !m.scrollTop.Visible() {
		return
	}
	m.scrollTop.Activate(interact.ByID(m.reader, interact.BackToTopAnchorID))
}

func (m *Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name, ShareTarget: string(m.share)})
	if err != nil {
		m.log.Warn("save prefs failed", zap.Error(err))
	}
}

// shutdown releases every controller before the program exits.
func (m *Model) shutdown() {
	m.links.disposeAll()
	m.shareCopy.Dispose()
	m.scrollTop.Close()
}

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(m.ctx))
	_, err := p.Run()
	m.shutdown()
	if errors.Is(err, tea.ErrProgramKilled) && m.ctx.Err() != nil {
		return nil
	}
	return err
}
