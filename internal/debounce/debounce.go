// Package debounce delays a callback until calls to it stop arriving for a
// fixed quiet interval.
package debounce

import (
	"sync"
	"time"
)

// Timer is a scheduled call that can be cancelled.
type Timer interface {
	Stop() bool
}

// Scheduler creates timers. The default uses time.AfterFunc.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type realScheduler struct{}

func (realScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Option configures a Debouncer.
type Option func(*options)

type options struct {
	scheduler Scheduler
}

// WithScheduler replaces the timer source.
func WithScheduler(s Scheduler) Option {
	return func(o *options) {
		if s != nil {
			o.scheduler = s
		}
	}
}

// Debouncer forwards the value of the last Schedule call to fn once delay has
// elapsed without another call.
type Debouncer[T any] struct {
	delay     time.Duration
	fn        func(T)
	scheduler Scheduler

	mu      sync.Mutex
	timer   Timer
	gen     uint64
	pending bool
	value   T
}

// New returns a debouncer for fn.
func New[T any](delay time.Duration, fn func(T), opts ...Option) *Debouncer[T] {
	o := options{scheduler: realScheduler{}}
	for _, opt := range opts {
		opt(&o)
	}
	return &Debouncer[T]{
		delay:     delay,
		fn:        fn,
		scheduler: o.scheduler,
	}
}

// Schedule cancels any pending call and schedules fn(v) after the delay.
func (d *Debouncer[T]) Schedule(v T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopLocked()
	d.gen++
	gen := d.gen
	d.value = v
	d.pending = true
	d.timer = d.scheduler.AfterFunc(d.delay, func() { d.fire(gen) })
}

// Cancel drops the pending call, if any.
func (d *Debouncer[T]) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopLocked()
	d.gen++
	d.pending = false
	var zero T
	d.value = zero
}

// Pending reports whether a call is waiting for the delay to elapse.
func (d *Debouncer[T]) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending
}

func (d *Debouncer[T]) fire(gen uint64) {
	d.mu.Lock()
	// A timer that lost the race with Stop must not deliver a stale value.
	if gen != d.gen || !d.pending {
		d.mu.Unlock()
		return
	}
	v := d.value
	d.pending = false
	d.timer = nil
	d.mu.Unlock()

	d.fn(v)
}

func (d *Debouncer[T]) stopLocked() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
