package gallery

import "fmt"

// NavigationPolicy controls what Next and Previous do while the lightbox is
// closed.
type NavigationPolicy int

const (
	// NavigateOnlyWhenOpen ignores navigation while closed.
	NavigateOnlyWhenOpen NavigationPolicy = iota
	// NavigateAlways advances the retained index even while closed.
	NavigateAlways
)

// State is a snapshot of the lightbox.
type State struct {
	IsOpen       bool
	CurrentIndex int
}

// Current is the image on display together with its position label.
type Current struct {
	Item     ImageItem
	Index    int
	Position string
}

// Option customises a Controller.
type Option func(*Controller)

// WithNavigationPolicy selects the closed-state navigation policy.
func WithNavigationPolicy(p NavigationPolicy) Option {
	return func(c *Controller) {
		c.policy = p
	}
}

// WithObserver registers a callback invoked after every state change.
func WithObserver(fn func(State)) Option {
	return func(c *Controller) {
		c.observer = fn
	}
}

// Controller manages lightbox visibility and navigation over a fixed catalog.
// The scroll lock and key subscription are held exactly while the lightbox is
// open.
type Controller struct {
	catalog  Catalog
	lock     ScrollLock
	keys     KeySubscriber
	policy   NavigationPolicy
	observer func(State)

	state State
	sub   Subscription
}

// NewController builds a closed controller positioned at index 0.
func NewController(catalog Catalog, lock ScrollLock, keys KeySubscriber, opts ...Option) (*Controller, error) {
	if catalog.Len() == 0 {
		return nil, ErrEmptyCatalog
	}
	if lock == nil || keys == nil {
		return nil, ErrMissingCapability
	}

	c := &Controller{
		catalog: catalog,
		lock:    lock,
		keys:    keys,
		policy:  NavigateOnlyWhenOpen,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Open shows the image at index. Out-of-range indices are clamped.
func (c *Controller) Open(index int) {
	c.state.CurrentIndex = c.clamp(index)
	if !c.state.IsOpen {
		c.state.IsOpen = true
		c.lock.Acquire()
		c.sub = c.keys.Subscribe(c.HandleKey)
	}
	c.notify()
}

// Close hides the lightbox and restores scrolling. Closing a closed
// controller does nothing.
func (c *Controller) Close() {
	if !c.state.IsOpen {
		return
	}
	c.state.IsOpen = false
	if c.sub != nil {
		c.sub.Unsubscribe()
		c.sub = nil
	}
	c.lock.Release()
	c.notify()
}

// Next advances to the following image, wrapping at the end.
func (c *Controller) Next() {
	if !c.navigable() {
		return
	}
	c.state.CurrentIndex = (c.state.CurrentIndex + 1) % c.catalog.Len()
	c.notify()
}

// Previous steps back to the preceding image, wrapping at the start.
func (c *Controller) Previous() {
	if !c.navigable() {
		return
	}
	n := c.catalog.Len()
	c.state.CurrentIndex = (c.state.CurrentIndex - 1 + n) % n
	c.notify()
}

// HandleKey applies a keyboard event. Keys are ignored while closed.
func (c *Controller) HandleKey(k Key) bool {
	if !c.state.IsOpen {
		return false
	}
	switch k {
	case KeyEscape, KeyClose:
		c.Close()
	case KeyRight, KeyNext:
		c.Next()
	case KeyLeft, KeyPrevious:
		c.Previous()
	default:
		return false
	}
	return true
}

// Teardown releases everything held by an open lightbox. Hosts call it when
// unmounting the controller.
func (c *Controller) Teardown() {
	c.Close()
}

// CurrentItem returns the image at the current index and its 1-based
// position label.
func (c *Controller) CurrentItem() Current {
	i := c.state.CurrentIndex
	return Current{
		Item:     c.catalog.At(i),
		Index:    i,
		Position: PositionLabel(i, c.catalog.Len()),
	}
}

// State returns a snapshot of the lightbox.
func (c *Controller) State() State {
	return c.state
}

// IsOpen reports whether the lightbox is visible.
func (c *Controller) IsOpen() bool {
	return c.state.IsOpen
}

// Len returns the catalog size.
func (c *Controller) Len() int {
	return c.catalog.Len()
}

// Catalog returns the catalog the controller navigates.
func (c *Controller) Catalog() Catalog {
	return c.catalog
}

// PositionLabel formats a zero-based index as "i+1 / n".
func PositionLabel(index, n int) string {
	return fmt.Sprintf("%d / %d", index+1, n)
}

func (c *Controller) navigable() bool {
	return c.state.IsOpen || c.policy == NavigateAlways
}

func (c *Controller) clamp(index int) int {
	switch {
	case index < 0:
		return 0
	case index >= c.catalog.Len():
		return c.catalog.Len() - 1
	default:
		return index
	}
}

func (c *Controller) notify() {
	if c.observer != nil {
		c.observer(c.state)
	}
}
