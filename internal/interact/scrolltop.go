package interact

// ScrollThreshold is the offset a page must scroll past before the
// back-to-top affordance shows. The comparison is strict.
const ScrollThreshold = 100

// BackToTopAnchorID is the element id the back-to-top action scrolls to.
const BackToTopAnchorID = "back-to-top-anchor"

// ScrollTopOption configures a ScrollTop.
type ScrollTopOption func(*ScrollTop)

// WithVisibilityListener registers fn to run when visibility flips.
func WithVisibilityListener(fn func(visible bool)) ScrollTopOption {
	return func(s *ScrollTop) {
		s.listener = fn
	}
}

// ScrollTop decides when to show a back-to-top affordance and scrolls to the
// top anchor when it is activated.
//
// Like CopyLink it belongs to a single event loop.
type ScrollTop struct {
	scroller    Scroller
	listener    func(bool)
	visible     bool
	unsubscribe func()
}

// NewScrollTop returns a hidden ScrollTop that scrolls with scroller.
func NewScrollTop(scroller Scroller, opts ...ScrollTopOption) *ScrollTop {
	s := &ScrollTop{scroller: scroller}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// OnScroll records a scroll sample.
func (s *ScrollTop) OnScroll(offset int) {
	visible := offset > ScrollThreshold
	if visible == s.visible {
		return
	}
	s.visible = visible
	if s.listener != nil {
		s.listener(visible)
	}
}

// Visible reports whether the affordance should be shown.
func (s *ScrollTop) Visible() bool {
	return s.visible
}

// Activate scrolls the anchor returned by lookup into the centre of the
// viewport. A nil lookup or a missing anchor does nothing.
func (s *ScrollTop) Activate(lookup AnchorLookup) {
	if lookup == nil || s.scroller == nil {
		return
	}
	el, ok := lookup()
	if !ok || el == nil {
		return
	}
	s.scroller.ScrollIntoView(el, ScrollOptions{Behavior: ScrollSmooth, Block: BlockCenter})
}

// Observe feeds OnScroll from src, replacing any earlier subscription.
func (s *ScrollTop) Observe(src ScrollSource) {
	s.Close()
	if src == nil {
		return
	}
	s.unsubscribe = src.ObserveScroll(s.OnScroll)
}

// Close drops the scroll subscription, if any.
func (s *ScrollTop) Close() {
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
}
