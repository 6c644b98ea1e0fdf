package ui

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/folio/internal/config"
	"github.com/five82/folio/internal/interact"
	"github.com/five82/folio/internal/posts"
	"github.com/five82/folio/internal/prefs"
	"github.com/five82/folio/internal/state"
)

type fakeClipboard struct {
	writes []string
	err    error
}

func (f *fakeClipboard) write(text string) error {
	f.writes = append(f.writes, text)
	return f.err
}

func newTestModel(t *testing.T, items ...posts.Post) (Model, *fakeClipboard, string) {
	t.Helper()
	if len(items) == 0 {
		items = []posts.Post{
			{Slug: "hello", Title: "Hello", Date: "2024-02-03", Excerpt: "First post", Tags: []string{"go"}},
			longPost(),
		}
	}
	store := &state.Store{}
	store.Update(items, nil)

	clip := &fakeClipboard{}
	prefsPath := filepath.Join(t.TempDir(), "prefs.toml")
	m := New(Options{
		Store:          store,
		Config:         &config.Config{SiteURL: "https://example.com", SiteName: "Blog"},
		PrefsPath:      prefsPath,
		ClipboardWrite: clip.write,
	})
	m, _ = update(m, tea.WindowSizeMsg{Width: 100, Height: 40})
	m, _ = update(m, snapshotMsg(store.Snapshot()))
	return m, clip, prefsPath
}

func update(m Model, msg tea.Msg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func press(m Model, k string) (Model, tea.Cmd) {
	var msg tea.KeyMsg
	switch k {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
	return update(m, msg)
}

// fireTimers delivers every pending host timer.
func fireTimers(m Model) Model {
	for id := range m.host.timers {
		m, _ = update(m, timerFiredMsg{id: id})
	}
	return m
}

func TestModel_CopyPostURLSettles(t *testing.T) {
	m, clip, _ := newTestModel(t)

	m, cmd := press(m, "c")
	if got := m.links.status("hello"); got != interact.CopyIdle {
		t.Fatalf("status before write resolves = %v, want idle", got)
	}
	for _, msg := range execCmd(cmd) {
		m, _ = update(m, msg)
	}

	if len(clip.writes) != 1 || clip.writes[0] != "https://example.com/blog/hello/" {
		t.Fatalf("clipboard writes = %q, want post URL", clip.writes)
	}
	if got := m.links.status("hello"); got != interact.CopyCopied {
		t.Fatalf("status = %v, want copied", got)
	}
	if !strings.Contains(m.View(), "Copied") {
		t.Fatalf("view does not show Copied")
	}
	if m.host.pendingTimers() != 1 {
		t.Fatalf("pendingTimers = %d, want 1", m.host.pendingTimers())
	}

	m = fireTimers(m)
	if got := m.links.status("hello"); got != interact.CopyIdle {
		t.Fatalf("status after reset = %v, want idle", got)
	}
	if !strings.Contains(m.View(), "Copy URL") {
		t.Fatalf("view does not show Copy URL")
	}
}

func TestModel_CopyFailureShowsFailed(t *testing.T) {
	m, clip, _ := newTestModel(t)
	clip.err = errors.New("no clipboard")

	m, cmd := press(m, "c")
	for _, msg := range execCmd(cmd) {
		m, _ = update(m, msg)
	}
	if got := m.links.status("hello"); got != interact.CopyFailed {
		t.Fatalf("status = %v, want failed", got)
	}
	if !strings.Contains(m.View(), "Failed!") {
		t.Fatalf("view does not show Failed!")
	}
	m = fireTimers(m)
	if got := m.links.status("hello"); got != interact.CopyIdle {
		t.Fatalf("status after reset = %v, want idle", got)
	}
}

func TestModel_RemovedPostDisposesController(t *testing.T) {
	m, _, _ := newTestModel(t)

	m, cmd := press(m, "c")
	link := m.links.get("hello")

	// The post disappears before the clipboard answers.
	m, _ = update(m, snapshotMsg(state.Snapshot{Posts: []posts.Post{longPost()}, Loaded: true}))
	if !link.Disposed() {
		t.Fatalf("controller not disposed after post removal")
	}
	for _, msg := range execCmd(cmd) {
		m, _ = update(m, msg)
	}
	if link.Status() != interact.CopyIdle {
		t.Fatalf("late resolution changed status to %v", link.Status())
	}
	if m.host.pendingTimers() != 0 {
		t.Fatalf("pendingTimers = %d, want 0", m.host.pendingTimers())
	}
}

func TestModel_ReaderBackToTop(t *testing.T) {
	m, _, _ := newTestModel(t)

	m, _ = press(m, "j")
	m, _ = press(m, "enter")
	if m.view != ViewReader || m.reading != "long" {
		t.Fatalf("view = %v reading %q, want reader on long", m.view, m.reading)
	}
	if m.scrollTop.Visible() {
		t.Fatalf("back to top visible at offset 0")
	}

	// Not visible yet: t does nothing.
	m.reader.setOffset(100)
	m, _ = press(m, "t")
	if m.reader.animating || m.reader.offset() != 100 {
		t.Fatalf("back to top ran while hidden")
	}

	m.reader.setOffset(150)
	if !m.scrollTop.Visible() {
		t.Fatalf("back to top hidden at offset 150")
	}
	if !strings.Contains(m.View(), "Top (t)") {
		t.Fatalf("view does not show the back to top affordance")
	}

	m, cmd := press(m, "t")
	if cmd == nil || !m.reader.animating {
		t.Fatalf("back to top did not start a smooth scroll")
	}
	for i := 0; i < 100 && m.reader.animating; i++ {
		m, _ = update(m, scrollFrameMsg{gen: m.reader.animGen})
	}
	if m.reader.offset() != 0 {
		t.Fatalf("offset = %d, want 0", m.reader.offset())
	}
	if m.scrollTop.Visible() {
		t.Fatalf("back to top still visible at the top")
	}

	m, _ = press(m, "esc")
	if m.view != ViewList {
		t.Fatalf("view = %v, want list", m.view)
	}
}

func TestModel_ReaderClosesWhenPostRemoved(t *testing.T) {
	m, _, _ := newTestModel(t)
	m, _ = press(m, "enter")
	if m.view != ViewReader {
		t.Fatalf("view = %v, want reader", m.view)
	}
	m, _ = update(m, snapshotMsg(state.Snapshot{Posts: []posts.Post{longPost()}, Loaded: true}))
	if m.view != ViewList {
		t.Fatalf("view = %v, want list after post removal", m.view)
	}
}

func TestModel_ShareTargetCycleAndCopy(t *testing.T) {
	m, clip, prefsPath := newTestModel(t)

	m, _ = press(m, "s")
	if m.share != "facebook" {
		t.Fatalf("share = %q, want facebook", m.share)
	}
	if got := prefs.Load(prefsPath).ShareTarget; got != "facebook" {
		t.Fatalf("saved share target = %q, want facebook", got)
	}

	m, cmd := press(m, "S")
	for _, msg := range execCmd(cmd) {
		m, _ = update(m, msg)
	}
	if len(clip.writes) != 1 || !strings.HasPrefix(clip.writes[0], "https://www.facebook.com/sharer/sharer.php?") {
		t.Fatalf("clipboard writes = %q, want facebook share link", clip.writes)
	}
	if m.shareCopy.Status() != interact.CopyCopied {
		t.Fatalf("share copy status = %v, want copied", m.shareCopy.Status())
	}
	if got := m.links.status("hello"); got != interact.CopyIdle {
		t.Fatalf("card status = %v, want idle", got)
	}
}

func TestModel_QuitDisposesControllers(t *testing.T) {
	m, _, _ := newTestModel(t)
	m, _ = press(m, "c")
	link := m.links.get("hello")

	m, cmd := press(m, "e")
	if cmd == nil {
		t.Fatalf("quit returned no command")
	}
	if !link.Disposed() || !m.shareCopy.Disposed() {
		t.Fatalf("controllers not disposed on quit")
	}
}

func TestModel_RefreshKeyCallsPoller(t *testing.T) {
	m, _, _ := newTestModel(t)
	called := 0
	m.refresh = func() { called++ }
	press(m, "r")
	if called != 1 {
		t.Fatalf("refresh called %d times, want 1", called)
	}
}

func TestModel_HelpOverlay(t *testing.T) {
	m, _, _ := newTestModel(t)
	m, _ = press(m, "?")
	if !strings.Contains(m.View(), "Keyboard Shortcuts") {
		t.Fatalf("help overlay not shown")
	}
	m, _ = press(m, "x")
	if m.showHelp {
		t.Fatalf("help still shown after key press")
	}
}
