// Package draft holds the campaign draft lifecycle: the autosave debouncer used by
// the API and the editor state machine used by clients embedding the library.
package draft

import (
	"sync"
	"time"
)

type pendingWrite[V any] struct {
	value V
	timer *time.Timer
	gen   uint64
}

// Debouncer coalesces bursts of writes per key. A write is flushed once no new
// value for its key arrived during the quiet period; values scheduled in between
// are folded together with merge.
type Debouncer[K comparable, V any] struct {
	quiet time.Duration
	merge func(prev, next V) V
	flush func(key K, value V)

	mu      sync.Mutex
	pending map[K]*pendingWrite[V]
	gen     uint64
	closed  bool
	wg      sync.WaitGroup
}

// NewDebouncer creates a debouncer. A nil merge keeps the latest value.
func NewDebouncer[K comparable, V any](quiet time.Duration, merge func(prev, next V) V, flush func(key K, value V)) *Debouncer[K, V] {
	if merge == nil {
		merge = func(_, next V) V { return next }
	}
	return &Debouncer[K, V]{
		quiet:   quiet,
		merge:   merge,
		flush:   flush,
		pending: make(map[K]*pendingWrite[V]),
	}
}

// Schedule records value for key and restarts the key's quiet period.
// After Close, values are flushed immediately.
func (d *Debouncer[K, V]) Schedule(key K, value V) {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		d.flush(key, value)
		return
	}

	p, ok := d.pending[key]
	if ok {
		if p.timer.Stop() {
			d.wg.Done()
		}
		p.value = d.merge(p.value, value)
	} else {
		p = &pendingWrite[V]{value: value}
		d.pending[key] = p
	}

	d.gen++
	gen := d.gen
	p.gen = gen
	d.wg.Add(1)
	p.timer = time.AfterFunc(d.quiet, func() {
		defer d.wg.Done()
		d.fire(key, gen)
	})
	d.mu.Unlock()
}

func (d *Debouncer[K, V]) fire(key K, gen uint64) {
	d.mu.Lock()
	p, ok := d.pending[key]
	if !ok || p.gen != gen {
		d.mu.Unlock()
		return
	}
	delete(d.pending, key)
	d.mu.Unlock()

	d.flush(key, p.value)
}

func (d *Debouncer[K, V]) take(key K) (V, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	p, ok := d.pending[key]
	if !ok {
		var zero V
		return zero, false
	}
	if p.timer.Stop() {
		d.wg.Done()
	}
	delete(d.pending, key)
	return p.value, true
}

// Flush writes the pending value for key now. It reports whether one existed.
func (d *Debouncer[K, V]) Flush(key K) bool {
	v, ok := d.take(key)
	if ok {
		d.flush(key, v)
	}
	return ok
}

// Cancel drops the pending value for key without writing it
func (d *Debouncer[K, V]) Cancel(key K) bool {
	_, ok := d.take(key)
	return ok
}

// Pending reports whether key has an unflushed value
func (d *Debouncer[K, V]) Pending(key K) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, ok := d.pending[key]
	return ok
}

// FlushAll writes every pending value and returns how many were flushed
func (d *Debouncer[K, V]) FlushAll() int {
	return d.FlushMatching(func(K) bool { return true })
}

// FlushMatching writes the pending values whose key satisfies match
func (d *Debouncer[K, V]) FlushMatching(match func(K) bool) int {
	d.mu.Lock()
	keys := make([]K, 0, len(d.pending))
	for k := range d.pending {
		if match(k) {
			keys = append(keys, k)
		}
	}
	d.mu.Unlock()

	n := 0
	for _, k := range keys {
		if d.Flush(k) {
			n++
		}
	}
	return n
}

// Close flushes everything and waits for writes already in progress
func (d *Debouncer[K, V]) Close() {
	d.mu.Lock()
	d.closed = true
	d.mu.Unlock()

	d.FlushAll()
	d.wg.Wait()
}
