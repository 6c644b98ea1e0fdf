package interact

import (
	"errors"
	"fmt"
	"time"
)

// CopyResetDelay is how long a Copied or Failed status stays visible.
const CopyResetDelay = 2500 * time.Millisecond

// ErrClipboardWrite wraps the error reported by the clipboard capability.
var ErrClipboardWrite = errors.New("clipboard write failed")

// CopyLinkSession is a point-in-time view of a CopyLink.
type CopyLinkSession struct {
	Status    CopyStatus
	TargetURL string
	Pending   bool  // a reset timer is armed
	LastError error // wraps ErrClipboardWrite after a failed copy
}

// CopyLinkOption configures a CopyLink.
type CopyLinkOption func(*CopyLink)

// WithResetDelay overrides CopyResetDelay. Non-positive values are ignored.
func WithResetDelay(d time.Duration) CopyLinkOption {
	return func(c *CopyLink) {
		if d > 0 {
			c.delay = d
		}
	}
}

// WithStatusListener registers fn to run after every status change.
func WithStatusListener(fn func(CopyStatus)) CopyLinkOption {
	return func(c *CopyLink) {
		c.listener = fn
	}
}

// CopyLink copies a URL to the clipboard and shows the outcome for a short
// time before settling back to CopyIdle.
//
// A CopyLink is not safe for concurrent use. Its methods and the callbacks it
// hands to the Clipboard and Scheduler must all run on the same event loop.
type CopyLink struct {
	clipboard Clipboard
	timers    Scheduler
	delay     time.Duration
	listener  func(CopyStatus)

	status   CopyStatus
	target   string
	lastErr  error
	pending  Timer
	gen      uint64 // bumped whenever a timer is armed or cancelled
	disposed bool
}

// NewCopyLink returns an idle CopyLink.
func NewCopyLink(clipboard Clipboard, timers Scheduler, opts ...CopyLinkOption) *CopyLink {
	c := &CopyLink{
		clipboard: clipboard,
		timers:    timers,
		delay:     CopyResetDelay,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Copy starts writing targetURL to the clipboard and returns immediately.
// Calls after Dispose are ignored.
func (c *CopyLink) Copy(targetURL string) {
	if c.disposed {
		return
	}
	c.target = targetURL
	if c.clipboard == nil {
		c.resolve(fmt.Errorf("%w: no clipboard available", ErrClipboardWrite))
		return
	}
	c.clipboard.WriteText(targetURL, c.resolve)
}

// Status returns the current status.
func (c *CopyLink) Status() CopyStatus {
	return c.status
}

// Session returns a snapshot of the controller state.
func (c *CopyLink) Session() CopyLinkSession {
	return CopyLinkSession{
		Status:    c.status,
		TargetURL: c.target,
		Pending:   c.pending != nil,
		LastError: c.lastErr,
	}
}

// Dispose cancels the pending reset. Resolutions that arrive afterwards are
// dropped. Dispose is idempotent.
func (c *CopyLink) Dispose() {
	if c.disposed {
		return
	}
	c.disposed = true
	c.cancel()
}

// Disposed reports whether Dispose has been called.
func (c *CopyLink) Disposed() bool {
	return c.disposed
}

func (c *CopyLink) resolve(err error) {
	if c.disposed {
		return
	}
	if err != nil {
		if !errors.Is(err, ErrClipboardWrite) {
			err = fmt.Errorf("%w: %w", ErrClipboardWrite, err)
		}
		c.lastErr = err
		c.set(CopyFailed)
	} else {
		c.lastErr = nil
		c.set(CopyCopied)
	}
	c.arm()
}

func (c *CopyLink) arm() {
	c.cancel()
	if c.timers == nil {
		return
	}
	gen := c.gen
	c.pending = c.timers.AfterFunc(c.delay, func() { c.expire(gen) })
}

func (c *CopyLink) cancel() {
	c.gen++
	if c.pending != nil {
		c.pending.Stop()
		c.pending = nil
	}
}

// expire runs when a reset timer fires. A fire from a timer that has since
// been replaced or cancelled is ignored.
func (c *CopyLink) expire(gen uint64) {
	if c.disposed || gen != c.gen {
		return
	}
	c.pending = nil
	c.set(CopyIdle)
}

func (c *CopyLink) set(status CopyStatus) {
	c.status = status
	if c.listener != nil {
		c.listener(status)
	}
}
