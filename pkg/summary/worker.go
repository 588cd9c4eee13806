package summary

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/homedeck/homedeck/pkg/content"
	"github.com/homedeck/homedeck/pkg/domain"
)

//go:generate moq -out mocks/gpu_checker.go -pkg mocks -skip-ensure -fmt goimports . GPUChecker
//go:generate moq -out mocks/extractor.go -pkg mocks -skip-ensure -fmt goimports . Extractor

// GPUChecker reports the inference hardware available on the model host
type GPUChecker interface {
	GPUs(ctx context.Context) []string
}

// Extractor pulls article text out of a web page
type Extractor interface {
	Extract(ctx context.Context, url string) content.Result
}

// Summarizer produces the final summary text for an article
type Summarizer interface {
	Summarize(ctx context.Context, req Request) string
}

// State is the worker's lifecycle position
type State int32

// Worker lifecycle states. A worker moves Idle -> Running -> Stopped, with
// Stopping in between when a stop was requested while the loop is live.
const (
	StateIdle State = iota
	StateRunning
	StateStopping
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateStopping:
		return "stopping"
	case StateStopped:
		return "stopped"
	}
	return "unknown"
}

// Worker drains one backlog of feed items in the background, publishing
// finished summaries to its results channel. It owns nothing but the producer
// end of that channel, the consumer decides when to spawn a fresh worker.
// A worker runs at most once. Drain and Stop are valid after Start returned.
type Worker struct {
	gpus       GPUChecker
	extractor  Extractor
	summarizer Summarizer
	cache      Cache
	delay      time.Duration

	state   atomic.Int32
	cancel  context.CancelFunc
	results chan domain.SummaryUpdate
	done    chan struct{}
}

// NewWorker creates an idle worker. The delay spaces consecutive model calls,
// defaulting to one second.
func NewWorker(gpus GPUChecker, extractor Extractor, summarizer Summarizer, cache Cache, delay time.Duration) *Worker {
	if delay == 0 {
		delay = time.Second
	}
	w := &Worker{
		gpus:       gpus,
		extractor:  extractor,
		summarizer: summarizer,
		cache:      cache,
		delay:      delay,
		done:       make(chan struct{}),
	}
	w.state.Store(int32(StateIdle))
	return w
}

// Start launches the run loop over backlog using the given model. The results
// channel is buffered to the backlog size so the loop never waits on a slow
// consumer. Calling Start more than once is ignored.
func (w *Worker) Start(ctx context.Context, backlog []domain.FeedItem, model string) {
	if !w.state.CompareAndSwap(int32(StateIdle), int32(StateRunning)) {
		lgr.Printf("[WARN] summary worker started twice, ignored")
		return
	}

	ctx, w.cancel = context.WithCancel(ctx)
	w.results = make(chan domain.SummaryUpdate, len(backlog))
	go w.run(ctx, backlog, model)
}

// Stop asks the worker to quit at the next iteration boundary. Safe to call
// in any state and more than once. In-flight network and model calls are
// aborted through the context.
func (w *Worker) Stop() {
	w.state.CompareAndSwap(int32(StateRunning), int32(StateStopping))
	if w.cancel != nil {
		w.cancel()
	}
}

// State reports the worker's lifecycle state
func (w *Worker) State() State {
	return State(w.state.Load())
}

// Running reports whether the run loop is still alive, including the window
// where a stop was requested but not yet observed
func (w *Worker) Running() bool {
	s := w.State()
	return s == StateRunning || s == StateStopping
}

// Done closes when the run loop has exited
func (w *Worker) Done() <-chan struct{} {
	return w.done
}

// Drain returns everything published since the last call without blocking
func (w *Worker) Drain() []domain.SummaryUpdate {
	var updates []domain.SummaryUpdate
	for {
		select {
		case u := <-w.results:
			updates = append(updates, u)
		default:
			return updates
		}
	}
}

func (w *Worker) run(ctx context.Context, backlog []domain.FeedItem, model string) {
	defer close(w.done)
	defer w.state.Store(int32(StateStopped))
	defer w.cancel()

	// without a gpu every generate call would grind on cpu for minutes,
	// bail out and let the consumer retry on a later poll
	if len(w.gpus.GPUs(ctx)) == 0 {
		lgr.Printf("[WARN] no gpu detected on the model host, auto summary skipped")
		return
	}

	lgr.Printf("[INFO] summary worker started, %d items, model %s", len(backlog), model)
	for _, item := range backlog {
		if ctx.Err() != nil {
			lgr.Printf("[INFO] summary worker canceled: %v", ctx.Err())
			return
		}
		w.process(ctx, item, model)
	}
	lgr.Printf("[INFO] summary worker finished")
}

// process summarizes a single backlog item. Cached items publish right away
// and skip the pacing delay, everything else goes through extraction and the
// model with a delay afterwards.
func (w *Worker) process(ctx context.Context, item domain.FeedItem, model string) {
	if cached, ok := w.cache.Get(ctx, item.Link); ok {
		w.publish(domain.SummaryUpdate{Link: item.Link, Summary: cached})
		return
	}

	res := w.extractor.Extract(ctx, item.Link)
	if res.Degraded {
		// deliver the diagnostic so the item leaves the backlog, otherwise
		// the consumer would respawn a worker for it on every poll
		lgr.Printf("[WARN] extraction degraded for %s: %s", item.Link, res.Reason)
		w.publish(domain.SummaryUpdate{Link: item.Link, Summary: res.Reason})
		w.pause(ctx)
		return
	}

	summary := w.summarizer.Summarize(ctx, Request{Link: item.Link, Text: res.Text, Model: model})
	if ctx.Err() != nil {
		return // canceled mid-item, the result is an abort artifact
	}
	if summary != "" {
		w.publish(domain.SummaryUpdate{Link: item.Link, Summary: summary})
	}
	w.pause(ctx)
}

func (w *Worker) publish(u domain.SummaryUpdate) {
	select {
	case w.results <- u:
	default:
		lgr.Printf("[WARN] results channel full, dropping summary for %s", u.Link)
	}
}

// pause sleeps the pacing delay, cut short by cancellation
func (w *Worker) pause(ctx context.Context) {
	select {
	case <-ctx.Done():
	case <-time.After(w.delay):
	}
}
