package debounce

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const delay = 250 * time.Millisecond

type recorder struct {
	mu    sync.Mutex
	calls []string
}

func (r *recorder) record(v string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, v)
}

func (r *recorder) snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.calls...)
}

func TestBurstRunsOnceWithLastValue(t *testing.T) {
	clock := NewManualScheduler()
	rec := &recorder{}
	d := New(delay, rec.record, WithScheduler(clock))

	for _, v := range []string{"a", "ab", "abc", "abcd"} {
		d.Schedule(v)
		clock.Advance(delay / 2)
	}
	assert.Empty(t, rec.snapshot())
	assert.True(t, d.Pending())

	// delay/2 has already passed since the last call.
	clock.Advance(delay/2 - time.Millisecond)
	assert.Empty(t, rec.snapshot())

	clock.Advance(time.Millisecond)
	assert.Equal(t, []string{"abcd"}, rec.snapshot())
	assert.False(t, d.Pending())
	assert.Zero(t, clock.Active())
}

func TestSpacedCallsEachRun(t *testing.T) {
	clock := NewManualScheduler()
	rec := &recorder{}
	d := New(delay, rec.record, WithScheduler(clock))

	d.Schedule("one")
	clock.Advance(delay + time.Millisecond)
	d.Schedule("two")
	clock.Advance(delay + time.Millisecond)
	d.Schedule("three")
	clock.Advance(delay + time.Millisecond)

	assert.Equal(t, []string{"one", "two", "three"}, rec.snapshot())
}

func TestCancelDropsPendingCall(t *testing.T) {
	clock := NewManualScheduler()
	rec := &recorder{}
	d := New(delay, rec.record, WithScheduler(clock))

	d.Schedule("x")
	d.Cancel()
	assert.False(t, d.Pending())
	clock.Advance(2 * delay)
	assert.Empty(t, rec.snapshot())
}

func TestStaleTimerDoesNotFire(t *testing.T) {
	clock := NewManualScheduler()
	rec := &recorder{}
	d := New(delay, rec.record, WithScheduler(clock))

	// Simulate a timer callback that raced with a reschedule.
	d.Schedule("old")
	d.mu.Lock()
	staleGen := d.gen
	d.mu.Unlock()
	d.Schedule("new")
	d.fire(staleGen)
	assert.Empty(t, rec.snapshot())

	require.True(t, d.Pending())
	clock.Advance(delay)
	assert.Equal(t, []string{"new"}, rec.snapshot())
}

func TestRealSchedulerFires(t *testing.T) {
	done := make(chan int, 1)
	d := New(10*time.Millisecond, func(v int) { done <- v })

	d.Schedule(1)
	d.Schedule(2)

	select {
	case v := <-done:
		assert.Equal(t, 2, v)
	case <-time.After(2 * time.Second):
		t.Fatal("debounced call never ran")
	}
}
