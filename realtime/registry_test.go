package realtime

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeChannel struct {
	mu     sync.Mutex
	alerts []Alert
}

func (c *fakeChannel) Deliver(alert Alert) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.alerts = append(c.alerts, alert)
}

func (c *fakeChannel) delivered() []Alert {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Alert(nil), c.alerts...)
}

func TestRegistryConnectLookup(t *testing.T) {
	r := NewRegistry()
	ch := &fakeChannel{}

	_, ok := r.Lookup("u1")
	assert.False(t, ok)

	r.Connect("u1", ch)
	got, ok := r.Lookup("u1")
	assert.True(t, ok)
	assert.Equal(t, Channel(ch), got)
	assert.Equal(t, 1, r.Online())
}

func TestRegistryReconnectSupersedes(t *testing.T) {
	r := NewRegistry()
	first := &fakeChannel{}
	second := &fakeChannel{}

	r.Connect("u1", first)
	r.Connect("u1", second)

	got, ok := r.Lookup("u1")
	assert.True(t, ok)
	assert.Equal(t, Channel(second), got)
	assert.Equal(t, 1, r.Online())
}

func TestRegistryStaleDisconnectKeepsNewChannel(t *testing.T) {
	r := NewRegistry()
	first := &fakeChannel{}
	second := &fakeChannel{}

	r.Connect("u1", first)
	r.Connect("u1", second)

	// the old socket closes after the reconnect already replaced it
	r.Disconnect(first)

	got, ok := r.Lookup("u1")
	assert.True(t, ok)
	assert.Equal(t, Channel(second), got)
}

func TestRegistryDisconnect(t *testing.T) {
	r := NewRegistry()
	ch := &fakeChannel{}

	r.Connect("u1", ch)
	r.Disconnect(ch)

	_, ok := r.Lookup("u1")
	assert.False(t, ok)
	assert.Equal(t, 0, r.Online())
}

func TestRegistryConcurrentAccess(t *testing.T) {
	r := NewRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ch := &fakeChannel{}
			r.Connect("u1", ch)
			r.Lookup("u1")
			r.Disconnect(ch)
		}()
	}
	wg.Wait()
}
