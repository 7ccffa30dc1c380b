package match3

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"
)

// DefaultTickInterval is the driver period.
const DefaultTickInterval = 100 * time.Millisecond

// ErrDriverStopped is returned by commands sent to a driver that is not running.
var ErrDriverStopped = errors.New("match3: driver is not running")

// Driver owns a Session on a single goroutine and ticks it at a fixed interval.
// User intents are funneled through the same goroutine, so ticks and moves never
// run concurrently against the grid.
type Driver struct {
	session  *Session
	interval time.Duration
	onTick   func(TickReport)

	cmds     chan command
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool
}

type command struct {
	fn   func(*Session)
	done chan struct{}
}

// DriverOption configures a Driver.
type DriverOption func(*Driver)

// WithTickObserver registers fn to receive every tick report. fn runs on the driver
// goroutine and must not call back into the driver.
func WithTickObserver(fn func(TickReport)) DriverOption {
	return func(d *Driver) {
		d.onTick = fn
	}
}

// NewDriver creates a stopped driver for s. A non-positive interval uses
// DefaultTickInterval.
func NewDriver(s *Session, interval time.Duration, opts ...DriverOption) *Driver {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	d := &Driver{
		session:  s,
		interval: interval,
		cmds:     make(chan command),
		stopChan: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Start begins ticking. Cancelling ctx stops the driver like Stop.
// Starting a stopped driver has no effect.
func (d *Driver) Start(ctx context.Context) {
	select {
	case <-d.stopChan:
		return
	default:
	}
	if d.running.CompareAndSwap(false, true) {
		d.wg.Add(1)
		go d.loop(ctx)
	}
}

// Stop halts the driver and waits for its goroutine to exit. Once Stop returns no
// further tick runs. Safe to call more than once.
func (d *Driver) Stop() {
	d.stopOnce.Do(func() {
		close(d.stopChan)
	})
	d.wg.Wait()
}

// Running reports whether the tick loop is active.
func (d *Driver) Running() bool {
	return d.running.Load()
}

func (d *Driver) loop(ctx context.Context) {
	defer d.wg.Done()
	defer d.running.Store(false)

	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	for {
		select {
		case <-d.stopChan:
			return

		case <-ctx.Done():
			d.stopOnce.Do(func() {
				close(d.stopChan)
			})
			return

		case cmd := <-d.cmds:
			cmd.fn(d.session)
			close(cmd.done)

		case <-ticker.C:
			// A stop or cancel racing with the ticker wins, so an observer that
			// cancels ctx sees no further tick.
			select {
			case <-d.stopChan:
				return
			case <-ctx.Done():
				d.stopOnce.Do(func() {
					close(d.stopChan)
				})
				return
			default:
			}
			report := d.session.Tick()
			if d.onTick != nil {
				d.onTick(report)
			}
		}
	}
}

// Do runs fn against the session on the driver goroutine, between ticks, and waits
// for it to finish.
func (d *Driver) Do(fn func(*Session)) error {
	if !d.running.Load() {
		return ErrDriverStopped
	}
	cmd := command{fn: fn, done: make(chan struct{})}
	select {
	case d.cmds <- cmd:
	case <-d.stopChan:
		return ErrDriverStopped
	}
	<-cmd.done
	return nil
}

// AttemptSwap runs a swap gesture from a to b.
func (d *Driver) AttemptSwap(a, b int) (MoveOutcome, error) {
	var out MoveOutcome
	err := d.Do(func(s *Session) {
		out = s.AttemptSwap(a, b)
	})
	return out, err
}

// Snapshot returns a copy of the grid and the score.
func (d *Driver) Snapshot() (Grid, int, error) {
	var (
		g     Grid
		score int
	)
	err := d.Do(func(s *Session) {
		g = s.Snapshot()
		score = s.Score()
	})
	return g, score, err
}

// Session returns the owned session. Only touch it after Stop has returned.
func (d *Driver) Session() *Session {
	return d.session
}
