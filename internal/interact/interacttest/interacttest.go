// Package interacttest provides a deterministic fake host for the interact
// controllers: a manual clock, a clipboard whose writes resolve on demand,
// and recording scroll collaborators.
package interacttest

import (
	"sort"
	"time"

	"github.com/five82/folio/internal/interact"
)

// Clock is a manual interact.Scheduler. Timers only fire from Advance.
type Clock struct {
	now        time.Duration
	nextID     int
	timers     map[int]*fakeTimer
	scheduled  int
	maxPending int
}

type fakeTimer struct {
	clock *Clock
	id    int
	at    time.Duration
	fn    func()
}

var _ interact.Scheduler = (*Clock)(nil)

// NewClock returns a clock at time zero.
func NewClock() *Clock {
	return &Clock{timers: make(map[int]*fakeTimer)}
}

// AfterFunc implements interact.Scheduler.
func (c *Clock) AfterFunc(d time.Duration, f func()) interact.Timer {
	c.nextID++
	t := &fakeTimer{clock: c, id: c.nextID, at: c.now + d, fn: f}
	c.timers[t.id] = t
	c.scheduled++
	if len(c.timers) > c.maxPending {
		c.maxPending = len(c.timers)
	}
	return t
}

func (t *fakeTimer) Stop() bool {
	if _, ok := t.clock.timers[t.id]; !ok {
		return false
	}
	delete(t.clock.timers, t.id)
	return true
}

// Advance moves the clock forward by d and fires every timer that comes due,
// in deadline order.
func (c *Clock) Advance(d time.Duration) {
	target := c.now + d
	for {
		due := c.due(target)
		if due == nil {
			break
		}
		delete(c.timers, due.id)
		c.now = due.at
		due.fn()
	}
	c.now = target
}

func (c *Clock) due(limit time.Duration) *fakeTimer {
	var ready []*fakeTimer
	for _, t := range c.timers {
		if t.at <= limit {
			ready = append(ready, t)
		}
	}
	if len(ready) == 0 {
		return nil
	}
	sort.Slice(ready, func(i, j int) bool {
		if ready[i].at == ready[j].at {
			return ready[i].id < ready[j].id
		}
		return ready[i].at < ready[j].at
	})
	return ready[0]
}

// Now returns the elapsed fake time.
func (c *Clock) Now() time.Duration { return c.now }

// Pending returns the number of armed timers.
func (c *Clock) Pending() int { return len(c.timers) }

// MaxPending returns the highest number of simultaneously armed timers seen.
func (c *Clock) MaxPending() int { return c.maxPending }

// Scheduled returns how many timers were ever armed.
func (c *Clock) Scheduled() int { return c.scheduled }

// Clipboard is an interact.Clipboard whose writes stay pending until resolved.
type Clipboard struct {
	Writes  []string
	pending []func(error)
}

var _ interact.Clipboard = (*Clipboard)(nil)

// WriteText implements interact.Clipboard.
func (c *Clipboard) WriteText(text string, done func(error)) {
	c.Writes = append(c.Writes, text)
	c.pending = append(c.pending, done)
}

// Pending returns how many writes have not been resolved.
func (c *Clipboard) Pending() int {
	n := 0
	for _, done := range c.pending {
		if done != nil {
			n++
		}
	}
	return n
}

// Resolve completes the i-th write (in call order) with err. Resolving the
// same write twice does nothing.
func (c *Clipboard) Resolve(i int, err error) {
	if i < 0 || i >= len(c.pending) || c.pending[i] == nil {
		return
	}
	done := c.pending[i]
	c.pending[i] = nil
	done(err)
}

// ResolveLast completes the most recent write with err.
func (c *Clipboard) ResolveLast(err error) {
	c.Resolve(len(c.pending)-1, err)
}

// Scroller records scroll-into-view requests.
type Scroller struct {
	Calls []ScrollCall
}

// ScrollCall is one recorded request.
type ScrollCall struct {
	Element interact.Element
	Options interact.ScrollOptions
}

var _ interact.Scroller = (*Scroller)(nil)

// ScrollIntoView implements interact.Scroller.
func (s *Scroller) ScrollIntoView(el interact.Element, opts interact.ScrollOptions) {
	s.Calls = append(s.Calls, ScrollCall{Element: el, Options: opts})
}

// Element is a named element.
type Element string

// ID implements interact.Element.
func (e Element) ID() string { return string(e) }

// Document resolves the ids it was built with.
type Document map[string]interact.Element

// ElementByID implements interact.Document.
func (d Document) ElementByID(id string) (interact.Element, bool) {
	el, ok := d[id]
	return el, ok
}

// ScrollSource fans out offsets pushed with Emit.
type ScrollSource struct {
	nextID    int
	observers map[int]func(int)
}

var _ interact.ScrollSource = (*ScrollSource)(nil)

// ObserveScroll implements interact.ScrollSource.
func (s *ScrollSource) ObserveScroll(fn func(offset int)) func() {
	if s.observers == nil {
		s.observers = make(map[int]func(int))
	}
	s.nextID++
	id := s.nextID
	s.observers[id] = fn
	return func() { delete(s.observers, id) }
}

// Emit delivers offset to every observer.
func (s *ScrollSource) Emit(offset int) {
	for _, fn := range s.observers {
		fn(offset)
	}
}

// Observers returns the number of live subscriptions.
func (s *ScrollSource) Observers() int { return len(s.observers) }
