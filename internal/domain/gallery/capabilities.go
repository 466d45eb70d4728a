package gallery

import "sync"

// ScrollLock suspends background scrolling on the host surface while held.
type ScrollLock interface {
	Acquire()
	Release()
}

// Key names a keyboard event delivered by the host. Values match the key
// strings Bubble Tea reports.
type Key string

const (
	KeyEscape Key = "esc"
	KeyRight  Key = "right"
	KeyLeft   Key = "left"

	// Letter aliases for terminals without arrow keys.
	KeyNext     Key = "n"
	KeyPrevious Key = "p"
	KeyClose    Key = "q"
)

// KeyHandler consumes a key and reports whether it was handled.
type KeyHandler func(Key) bool

// Subscription is a live keyboard registration.
type Subscription interface {
	Unsubscribe()
}

// KeySubscriber lets the controller listen for keys only while it is open.
type KeySubscriber interface {
	Subscribe(handler KeyHandler) Subscription
}

// CountingScrollLock is an in-memory ScrollLock. Scrolling is enabled while
// no holder remains; releasing an unheld lock does nothing.
type CountingScrollLock struct {
	mu      sync.Mutex
	holders int
}

// NewCountingScrollLock returns an unheld lock.
func NewCountingScrollLock() *CountingScrollLock {
	return &CountingScrollLock{}
}

// Acquire implements ScrollLock.
func (l *CountingScrollLock) Acquire() {
	l.mu.Lock()
	l.holders++
	l.mu.Unlock()
}

// Release implements ScrollLock.
func (l *CountingScrollLock) Release() {
	l.mu.Lock()
	if l.holders > 0 {
		l.holders--
	}
	l.mu.Unlock()
}

// ScrollEnabled reports whether background scrolling is currently allowed.
func (l *CountingScrollLock) ScrollEnabled() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.holders == 0
}

// KeyRouter dispatches host key events to live subscribers in subscription
// order. The first handler that consumes a key stops dispatch.
type KeyRouter struct {
	mu       sync.Mutex
	nextID   int
	handlers []routedHandler
}

type routedHandler struct {
	id      int
	handler KeyHandler
}

// NewKeyRouter returns a router with no subscribers.
func NewKeyRouter() *KeyRouter {
	return &KeyRouter{}
}

// Subscribe implements KeySubscriber.
func (r *KeyRouter) Subscribe(handler KeyHandler) Subscription {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	id := r.nextID
	r.handlers = append(r.handlers, routedHandler{id: id, handler: handler})
	return &routerSubscription{router: r, id: id}
}

// Dispatch delivers key to subscribers and reports whether any consumed it.
func (r *KeyRouter) Dispatch(key Key) bool {
	r.mu.Lock()
	snapshot := make([]routedHandler, len(r.handlers))
	copy(snapshot, r.handlers)
	r.mu.Unlock()

	for _, h := range snapshot {
		if h.handler(key) {
			return true
		}
	}
	return false
}

// Active returns the number of live subscriptions.
func (r *KeyRouter) Active() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.handlers)
}

func (r *KeyRouter) remove(id int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, h := range r.handlers {
		if h.id == id {
			r.handlers = append(r.handlers[:i], r.handlers[i+1:]...)
			return
		}
	}
}

type routerSubscription struct {
	router *KeyRouter
	id     int
	once   sync.Once
}

func (s *routerSubscription) Unsubscribe() {
	s.once.Do(func() { s.router.remove(s.id) })
}
