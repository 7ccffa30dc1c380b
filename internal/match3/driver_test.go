package match3

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func ticksOf(t *testing.T, d *Driver) uint64 {
	t.Helper()
	var n uint64
	if err := d.Do(func(s *Session) { n = s.Stats().Ticks }); err != nil {
		t.Fatalf("Do() failed: %v", err)
	}
	return n
}

func TestDriverTicks(t *testing.T) {
	var observed atomic.Int64
	d := NewDriver(NewSession(newRand(1), CascadePaced), time.Millisecond,
		WithTickObserver(func(TickReport) { observed.Add(1) }))
	d.Start(context.Background())
	defer d.Stop()

	if !d.Running() {
		t.Fatal("Running() = false after Start")
	}

	deadline := time.Now().Add(2 * time.Second)
	for ticksOf(t, d) < 5 {
		if time.Now().After(deadline) {
			t.Fatal("driver did not tick")
		}
		time.Sleep(time.Millisecond)
	}
	if observed.Load() == 0 {
		t.Error("tick observer never called")
	}
}

func TestDriverStop(t *testing.T) {
	d := NewDriver(NewSession(newRand(2), CascadePaced), time.Millisecond)
	d.Start(context.Background())
	time.Sleep(10 * time.Millisecond)

	d.Stop()
	if d.Running() {
		t.Error("Running() = true after Stop")
	}

	frozen := d.Session().Stats().Ticks
	time.Sleep(10 * time.Millisecond)
	if got := d.Session().Stats().Ticks; got != frozen {
		t.Errorf("ticks advanced after Stop: %d -> %d", frozen, got)
	}

	if err := d.Do(func(*Session) {}); !errors.Is(err, ErrDriverStopped) {
		t.Errorf("Do() after Stop = %v, expected ErrDriverStopped", err)
	}

	// Stop is idempotent and a stopped driver does not restart.
	d.Stop()
	d.Start(context.Background())
	if d.Running() {
		t.Error("Start() restarted a stopped driver")
	}
}

func TestDriverContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	d := NewDriver(NewSession(newRand(3), CascadePaced), time.Millisecond)
	d.Start(ctx)

	cancel()
	deadline := time.Now().Add(2 * time.Second)
	for d.Running() {
		if time.Now().After(deadline) {
			t.Fatal("driver still running after cancel")
		}
		time.Sleep(time.Millisecond)
	}
	d.Stop()
}

// An observer that cancels the context at a tick limit gets exactly that many ticks.
func TestDriverCancelFromObserver(t *testing.T) {
	const limit = 5
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	d := NewDriver(NewSession(newRand(5), CascadePaced), time.Millisecond,
		WithTickObserver(func(r TickReport) {
			if r.Tick >= limit {
				cancel()
			}
		}))
	d.Start(ctx)

	deadline := time.Now().Add(2 * time.Second)
	for d.Running() {
		if time.Now().After(deadline) {
			t.Fatal("driver still running after the observer cancelled")
		}
		time.Sleep(time.Millisecond)
	}
	d.Stop()

	if got := d.Session().Stats().Ticks; got != limit {
		t.Errorf("Ticks = %d, expected %d", got, limit)
	}
}

func TestDriverAttemptSwap(t *testing.T) {
	s := NewSessionWithGrid(mustGrid(t, moveBoard), &seqSource{vals: []int{0}}, CascadePaced)
	d := NewDriver(s, time.Hour)
	d.Start(context.Background())
	defer d.Stop()

	out, err := d.AttemptSwap(2, 10)
	if err != nil {
		t.Fatalf("AttemptSwap() failed: %v", err)
	}
	if !out.Committed() {
		t.Error("AttemptSwap() reverted, expected commit")
	}

	g, score, err := d.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot() failed: %v", err)
	}
	if score != 4 || g.Count(Empty) != 4 {
		t.Errorf("Snapshot() score %d empty %d, expected 4 and 4", score, g.Count(Empty))
	}
}

func TestNewDriverDefaultInterval(t *testing.T) {
	d := NewDriver(NewSession(newRand(4), CascadePaced), 0)
	if d.interval != DefaultTickInterval {
		t.Errorf("interval = %v, expected %v", d.interval, DefaultTickInterval)
	}
}
