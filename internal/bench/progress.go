package bench

import (
	"sync/atomic"
	"time"
)

const defaultRelayInterval = 50 * time.Millisecond

// progressRelay counts finished items on the timed path and forwards them
// to the item callback from its own goroutine. Only an atomic increment
// happens between Restart and Stop; the callback never does.
type progressRelay struct {
	fn       func()
	interval time.Duration
	count    atomic.Int64
	sent     int64
	stop     chan struct{}
	done     chan struct{}
}

// startRelay returns nil when fn is nil; a nil relay ignores every call.
func startRelay(fn func(), interval time.Duration) *progressRelay {
	if fn == nil {
		return nil
	}
	p := &progressRelay{
		fn:       fn,
		interval: interval,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	go p.loop()
	return p
}

func (p *progressRelay) add() {
	if p != nil {
		p.count.Add(1)
	}
}

func (p *progressRelay) loop() {
	defer close(p.done)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			p.flush()
		case <-p.stop:
			p.flush()
			return
		}
	}
}

func (p *progressRelay) flush() {
	for n := p.count.Load(); p.sent < n; p.sent++ {
		p.fn()
	}
}

// close delivers any outstanding counts and waits for the relay goroutine.
func (p *progressRelay) close() {
	if p == nil {
		return
	}
	close(p.stop)
	<-p.done
}
