// Package metrics tracks network usage accumulated by the dashboard's
// outbound calls. A single Tracker is shared by the feed fetcher, the content
// extractor and the model client, counting payload bytes in both directions.
package metrics

import (
	"sync"
	"sync/atomic"
	"time"
)

// UsageSnapshot represents accumulated traffic for one UTC day.
type UsageSnapshot struct {
	Date       string
	RxBytes    int64
	TxBytes    int64
	TotalBytes int64
}

// Tracker accumulates received and sent byte counts with a daily reset.
// The zero value is not usable, create with NewTracker. All methods are safe
// for concurrent use and safe on a nil receiver, which makes the tracker an
// optional dependency for its callers.
type Tracker struct {
	rx  atomic.Int64
	tx  atomic.Int64
	day atomic.Value // string, YYYY-MM-DD in UTC

	mu    sync.Mutex // serializes day rollover only
	nowFn func() time.Time
}

// NewTracker creates a tracker starting a fresh count for the current UTC day.
func NewTracker() *Tracker {
	t := &Tracker{nowFn: time.Now}
	t.day.Store(t.today())
	return t
}

// AddRx adds n received bytes to the current day's count.
func (t *Tracker) AddRx(n int64) {
	if t == nil || n <= 0 {
		return
	}
	t.rollover()
	t.rx.Add(n)
}

// AddTx adds n sent bytes to the current day's count.
func (t *Tracker) AddTx(n int64) {
	if t == nil || n <= 0 {
		return
	}
	t.rollover()
	t.tx.Add(n)
}

// Snapshot returns the current day's totals. Counters reset when the UTC day
// changed since the last call.
func (t *Tracker) Snapshot() UsageSnapshot {
	if t == nil {
		return UsageSnapshot{}
	}
	t.rollover()
	rx, tx := t.rx.Load(), t.tx.Load()
	return UsageSnapshot{
		Date:       t.day.Load().(string),
		RxBytes:    rx,
		TxBytes:    tx,
		TotalBytes: rx + tx,
	}
}

// rollover resets counters when the stored day no longer matches the clock.
// The fast path is a single atomic load.
func (t *Tracker) rollover() {
	today := t.today()
	if t.day.Load().(string) == today {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.day.Load().(string) == today { // another goroutine rolled already
		return
	}
	t.rx.Store(0)
	t.tx.Store(0)
	t.day.Store(today)
}

func (t *Tracker) today() string {
	return t.nowFn().UTC().Format("2006-01-02")
}
