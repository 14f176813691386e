package jobs

import (
	"context"
	"log"
	"time"
)

// Pinger checks store reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// StatusSink receives the result of each probe.
type StatusSink interface {
	SetStoreUp(up bool)
}

// StoreMonitor periodically pings the store and publishes its status.
type StoreMonitor struct {
	store    Pinger
	sink     StatusSink
	interval time.Duration
	timeout  time.Duration
}

// NewStoreMonitor creates a new store monitor.
func NewStoreMonitor(store Pinger, sink StatusSink, interval time.Duration) *StoreMonitor {
	return &StoreMonitor{
		store:    store,
		sink:     sink,
		interval: interval,
		timeout:  5 * time.Second,
	}
}

// Start begins the background probe loop. It returns when ctx is cancelled.
func (m *StoreMonitor) Start(ctx context.Context) {
	log.Printf("Store monitor started (interval: %v)", m.interval)

	// Run immediately on start
	m.check(ctx)

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Store monitor stopped")
			return
		case <-ticker.C:
			m.check(ctx)
		}
	}
}

// check pings the store once and reports the result.
func (m *StoreMonitor) check(ctx context.Context) bool {
	pingCtx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	err := m.store.Ping(pingCtx)
	if err != nil {
		log.Printf("Store monitor: ping failed: %v", err)
	}
	m.sink.SetStoreUp(err == nil)
	return err == nil
}
