package store

import (
	"context"
	"sync"
	"time"
)

// DefaultDebounceWindow is how long the debouncer waits for further writes
// before flushing.
const DefaultDebounceWindow = time.Second

type pendingKey struct {
	owner string
	key   Key
}

// Debouncer coalesces rapid successive saves of the same key into one write
// to the underlying gateway. Each save restarts the quiescence window; only
// the latest payload per key survives. Close flushes whatever is pending, so
// a clean shutdown never drops a write.
type Debouncer struct {
	gw     Gateway
	window time.Duration

	mu      sync.Mutex
	pending map[pendingKey][]byte
	timer   *time.Timer
	closed  bool

	flushed chan struct{} // signals a completed background flush, for tests
}

// NewDebouncer wraps a gateway with a write debounce window. A zero window
// uses the default.
func NewDebouncer(gw Gateway, window time.Duration) *Debouncer {
	if window <= 0 {
		window = DefaultDebounceWindow
	}
	return &Debouncer{
		gw:      gw,
		window:  window,
		pending: make(map[pendingKey][]byte),
		flushed: make(chan struct{}, 1),
	}
}

// Save implements Gateway. The payload is staged and written once the
// window elapses without another save.
func (d *Debouncer) Save(ctx context.Context, owner string, key Key, data []byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return d.gw.Save(ctx, owner, key, data)
	}
	d.pending[pendingKey{owner, key}] = data
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, func() {
		d.Flush(context.Background())
		select {
		case d.flushed <- struct{}{}:
		default:
		}
	})
	return nil
}

// Load implements Gateway. A staged payload not yet flushed is returned
// as-is, so a read after a debounced write never sees stale data.
func (d *Debouncer) Load(ctx context.Context, owner string, key Key) ([]byte, error) {
	d.mu.Lock()
	if data, ok := d.pending[pendingKey{owner, key}]; ok {
		d.mu.Unlock()
		return data, nil
	}
	d.mu.Unlock()
	return d.gw.Load(ctx, owner, key)
}

// Flush writes all staged payloads through immediately. The first write
// error is returned, but every staged payload is attempted.
func (d *Debouncer) Flush(ctx context.Context) error {
	d.mu.Lock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	batch := d.pending
	d.pending = make(map[pendingKey][]byte)
	d.mu.Unlock()

	var first error
	for pk, data := range batch {
		if err := d.gw.Save(ctx, pk.owner, pk.key, data); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// Close flushes pending writes and turns the debouncer into a passthrough.
func (d *Debouncer) Close(ctx context.Context) error {
	d.mu.Lock()
	d.closed = true
	d.mu.Unlock()
	return d.Flush(ctx)
}
