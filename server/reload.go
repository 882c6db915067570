package server

import (
	"sync"
)

// reloadNotifier broadcasts template/asset change signals to the open dev
// reload streams. Subscriber channels hold at most one pending signal; a
// browser that has not consumed the previous one does not need another.
type reloadNotifier struct {
	mu     sync.Mutex
	closed bool
	nextID int
	subs   map[int]chan struct{}
}

func newReloadNotifier() *reloadNotifier {
	return &reloadNotifier{
		subs: make(map[int]chan struct{}),
	}
}

// Subscribe registers a listener. After Close the returned channel is already
// closed, so late subscribers terminate immediately instead of hanging.
func (n *reloadNotifier) Subscribe() (int, <-chan struct{}) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.closed {
		ch := make(chan struct{})
		close(ch)
		return -1, ch
	}

	id := n.nextID
	n.nextID++

	ch := make(chan struct{}, 1)
	n.subs[id] = ch

	return id, ch
}

func (n *reloadNotifier) Unsubscribe(id int) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if ch, ok := n.subs[id]; ok {
		close(ch)
		delete(n.subs, id)
	}
}

// Notify signals every subscriber without blocking on slow readers.
func (n *reloadNotifier) Notify() {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.closed {
		return
	}

	for _, ch := range n.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

func (n *reloadNotifier) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.closed {
		return
	}
	n.closed = true

	for id, ch := range n.subs {
		close(ch)
		delete(n.subs, id)
	}
}
