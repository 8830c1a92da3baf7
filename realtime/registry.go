package realtime

import (
	"sync"
)

// Channel - one live delivery channel to a connected user. Delivery is
// best effort: implementations must not block the caller.
type Channel interface {
	Deliver(alert Alert)
}

// Registry tracks which users are online and the channel to reach them on.
// It holds at most one live channel per user; a reconnect overwrites the
// previous entry (last writer wins). State lives only in memory and is
// empty on restart.
type Registry struct {
	mu     sync.Mutex
	online map[string]Channel
}

func NewRegistry() *Registry {
	return &Registry{
		online: make(map[string]Channel),
	}
}

// Connect records ch as the user's current channel, superseding any
// previous one.
func (r *Registry) Connect(accountNumber string, ch Channel) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.online[accountNumber] = ch
}

// Disconnect removes the entry whose current channel is ch. A disconnect
// from a stale channel that has already been superseded by a reconnect
// leaves the newer entry alone.
func (r *Registry) Disconnect(ch Channel) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for accountNumber, current := range r.online {
		if current == ch {
			delete(r.online, accountNumber)
			return
		}
	}
}

// Lookup returns the user's current channel, if the user is online.
func (r *Registry) Lookup(accountNumber string) (Channel, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ch, ok := r.online[accountNumber]
	return ch, ok
}

// Online returns the number of connected users.
func (r *Registry) Online() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.online)
}
