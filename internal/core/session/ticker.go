package session

import (
	"sync"
	"time"
)

// Ticker drives a callback once per fixed interval while active.
// Start and Stop are idempotent; the callback is never invoked concurrently
// with itself.
type Ticker interface {
	Start(interval time.Duration, onTick func())
	Stop()
}

// Clock reports wall-clock time.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// intervalTicker runs a goroutine around time.Ticker.
type intervalTicker struct {
	mu     sync.Mutex
	stopCh chan struct{}
	active bool
}

func (ticker *intervalTicker) Start(interval time.Duration, onTick func()) {
	ticker.mu.Lock()
	if ticker.active {
		ticker.mu.Unlock()
		return
	}
	ticker.active = true
	stopCh := make(chan struct{})
	ticker.stopCh = stopCh
	ticker.mu.Unlock()

	go func() {
		driver := time.NewTicker(interval)
		defer driver.Stop()
		for {
			select {
			case <-stopCh:
				return
			case <-driver.C:
				onTick()
			}
		}
	}()
}

func (ticker *intervalTicker) Stop() {
	ticker.mu.Lock()
	defer ticker.mu.Unlock()
	if !ticker.active {
		return
	}
	close(ticker.stopCh)
	ticker.active = false
}
