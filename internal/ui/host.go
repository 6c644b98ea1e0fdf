package ui

import (
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/folio/internal/interact"
)

// host runs the interact controllers on the Bubble Tea event loop. Timers and
// clipboard writes leave Update as commands and come back as messages, so
// every controller callback runs inside Update.
type host struct {
	nextID uint64
	timers map[uint64]func()
	writes map[uint64]func(error)
	cmds   []tea.Cmd
	write  func(string) error
}

var (
	_ interact.Scheduler = (*host)(nil)
	_ interact.Clipboard = (*host)(nil)
)

type timerFiredMsg struct{ id uint64 }

type clipboardResultMsg struct {
	id  uint64
	err error
}

func newHost(write func(string) error) *host {
	if write == nil {
		write = clipboard.WriteAll
	}
	return &host{
		timers: make(map[uint64]func()),
		writes: make(map[uint64]func(error)),
		write:  write,
	}
}

// AfterFunc implements interact.Scheduler.
func (h *host) AfterFunc(d time.Duration, f func()) interact.Timer {
	h.nextID++
	id := h.nextID
	h.timers[id] = f
	h.queue(tea.Tick(d, func(time.Time) tea.Msg { return timerFiredMsg{id: id} }))
	return hostTimer{h: h, id: id}
}

type hostTimer struct {
	h  *host
	id uint64
}

// Stop forgets the callback. The tick is already in flight and will be
// dropped when it arrives.
func (t hostTimer) Stop() bool {
	if _, ok := t.h.timers[t.id]; !ok {
		return false
	}
	delete(t.h.timers, t.id)
	return true
}

// WriteText implements interact.Clipboard.
func (h *host) WriteText(text string, done func(error)) {
	h.nextID++
	id := h.nextID
	h.writes[id] = done
	write := h.write
	h.queue(func() tea.Msg {
		return clipboardResultMsg{id: id, err: write(text)}
	})
}

func (h *host) queue(cmd tea.Cmd) {
	h.cmds = append(h.cmds, cmd)
}

// flush returns the commands queued since the last flush.
func (h *host) flush() tea.Cmd {
	if len(h.cmds) == 0 {
		return nil
	}
	cmds := h.cmds
	h.cmds = nil
	return tea.Batch(cmds...)
}

// dispatch runs the callback a host message belongs to. It reports whether
// msg was a host message.
func (h *host) dispatch(msg tea.Msg) bool {
	switch msg := msg.(type) {
	case timerFiredMsg:
		if f, ok := h.timers[msg.id]; ok {
			delete(h.timers, msg.id)
			f()
		}
		return true
	case clipboardResultMsg:
		if done, ok := h.writes[msg.id]; ok {
			delete(h.writes, msg.id)
			done(msg.err)
		}
		return true
	}
	return false
}

func (h *host) pendingTimers() int { return len(h.timers) }
