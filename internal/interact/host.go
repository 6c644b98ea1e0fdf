package interact

import "time"

// Clipboard writes text to the system clipboard without blocking the caller.
// Implementations must invoke done exactly once, on the host's event loop,
// with nil on success or the write error.
type Clipboard interface {
	WriteText(text string, done func(error))
}

// ClipboardFunc adapts a plain function to the Clipboard interface.
type ClipboardFunc func(text string, done func(error))

// WriteText calls f(text, done).
func (f ClipboardFunc) WriteText(text string, done func(error)) {
	f(text, done)
}

// Timer is a pending callback that can be cancelled.
type Timer interface {
	// Stop cancels the timer. It returns false if the timer already fired or
	// was already stopped.
	Stop() bool
}

// Scheduler arms callbacks that run on the host's event loop after a delay.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// ScrollSource delivers scroll offsets as they change.
type ScrollSource interface {
	ObserveScroll(fn func(offset int)) (unsubscribe func())
}

// Element is an opaque handle to something the host can scroll to.
type Element interface {
	ID() string
}

// Document resolves elements by id.
type Document interface {
	ElementByID(id string) (Element, bool)
}

// AnchorLookup resolves the element a scroll-to-top action targets.
type AnchorLookup func() (Element, bool)

// ByID returns an AnchorLookup that resolves id in doc. A nil doc never
// resolves.
func ByID(doc Document, id string) AnchorLookup {
	return func() (Element, bool) {
		if doc == nil {
			return nil, false
		}
		return doc.ElementByID(id)
	}
}

// ScrollBehavior selects animated or immediate scrolling.
type ScrollBehavior int

const (
	ScrollSmooth ScrollBehavior = iota
	ScrollInstant
)

// ScrollBlock selects where the target lands in the viewport.
type ScrollBlock int

const (
	BlockCenter ScrollBlock = iota
	BlockStart
	BlockEnd
)

// ScrollOptions mirrors the options of a scroll-into-view request.
type ScrollOptions struct {
	Behavior ScrollBehavior
	Block    ScrollBlock
}

// Scroller brings an element into view.
type Scroller interface {
	ScrollIntoView(el Element, opts ScrollOptions)
}
