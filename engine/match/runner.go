package match

import (
	"context"
	"time"
)

// Runner drives a match in real time without a display attached.
// Close stops the loop and waits for it; no tick runs after Close
// returns.
type Runner struct {
	m    *Match
	stop chan struct{}
	done chan struct{}
}

// NewRunner starts ticking the match at its fixed rate on a
// background goroutine. The context cancels it as well.
func NewRunner(ctx context.Context, m *Match) *Runner {
	r := &Runner{
		m:    m,
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}
	go r.run(ctx)
	return r
}

func (r *Runner) run(ctx context.Context) {
	defer close(r.done)
	interval := time.Duration(float64(time.Second) / r.m.cfg.Match.TickRate)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-r.stop:
			return
		case <-ticker.C:
			r.m.Step(1)
		}
	}
}

// Close shuts the runner down and blocks until the loop goroutine has
// exited. Safe to call more than once.
func (r *Runner) Close() {
	select {
	case <-r.stop:
	default:
		close(r.stop)
	}
	<-r.done
}
