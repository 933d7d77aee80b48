package host

import (
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync/atomic"

	"github.com/temporalgraph/chronosolve/config"
	"github.com/temporalgraph/chronosolve/solver"
	"github.com/temporalgraph/chronosolve/temporal"
)

// MaxCrashRetries bounds how many times the worker retries the request
// that caused it to panic, per spec.md §7's "Programmer error ... the host
// restarts the worker" row and §5's "retries the last request a bounded
// number of times."
const MaxCrashRetries = 3

// Worker runs solver.Solve off the caller's goroutine, serializing one
// request at a time and discarding results whose RequestID has been
// superseded by a newer request. It is the concrete host.
//
// A Worker's zero value is not usable; construct with NewWorker.
type Worker struct {
	requests  chan Request
	responses chan Response
	current   int64 // most recently issued request_id; set by Submit
	done      chan struct{}
	log       *slog.Logger
	cfg       config.Constants
}

// Option customizes a Worker at construction, mirroring solver.Option.
type Option func(*Worker)

// WithConstants overrides the tuning constants every solve on this Worker
// uses. Without it, a Worker solves with config.Default().
func WithConstants(cfg config.Constants) Option {
	return func(w *Worker) { w.cfg = cfg }
}

// NewWorker starts a Worker goroutine and returns it. The caller must drain
// Responses() to avoid blocking the worker, and should call Stop when done.
// A nil logger falls back to slog.Default().
func NewWorker(logger *slog.Logger, opts ...Option) *Worker {
	if logger == nil {
		logger = slog.Default()
	}

	w := &Worker{
		requests:  make(chan Request),
		responses: make(chan Response, 1),
		done:      make(chan struct{}),
		log:       logger,
		cfg:       config.Default(),
	}

	for _, opt := range opts {
		opt(w)
	}

	go w.run()

	return w
}

// Submit enqueues a solve request, tagging it as the current outstanding
// request. Any result later delivered for an earlier RequestID is dropped.
func (w *Worker) Submit(events []temporal.Event, assertions []temporal.Assertion) int64 {
	id := atomic.AddInt64(&w.current, 1)
	w.requests <- Request{Type: RequestSolve, RequestID: id, Events: events, Assertions: assertions}

	return id
}

// Responses returns the channel the worker delivers Response values on,
// including the one-time ResponseReady signal emitted at startup.
func (w *Worker) Responses() <-chan Response {
	return w.responses
}

// Stop shuts down the worker goroutine. It does not wait for an in-flight
// solve to finish.
func (w *Worker) Stop() {
	close(w.done)
}

// run is the worker's main loop: it emits ResponseReady once, then services
// requests one at a time, recovering from a panicking solve and retrying
// the same request up to MaxCrashRetries times before giving up on it.
func (w *Worker) run() {
	w.responses <- Response{Type: ResponseReady}

	for {
		select {
		case <-w.done:
			return
		case req := <-w.requests:
			w.service(req)
		}
	}
}

func (w *Worker) service(req Request) {
	for attempt := 0; attempt <= MaxCrashRetries; attempt++ {
		result, crashed := w.solveRecovering(req)

		if atomic.LoadInt64(&w.current) != req.RequestID {
			// A newer request has already been submitted; this one is
			// stale regardless of how it turned out.
			recordStaleResult()
			return
		}

		if !crashed {
			recordSolve(result, len(result.Violations))
			w.responses <- Response{Type: ResponseResult, RequestID: req.RequestID, Result: result}
			return
		}

		recordCrash()
		w.log.Warn("solve worker recovered from panic",
			slog.Int64("request_id", req.RequestID),
			slog.Int("attempt", attempt+1),
		)

		if attempt == MaxCrashRetries {
			w.log.Error("solve worker exhausted crash retries",
				slog.Int64("request_id", req.RequestID),
			)
			w.responses <- Response{
				Type:         ResponseError,
				RequestID:    req.RequestID,
				ErrorMessage: "solver worker crashed",
			}
			return
		}
	}
}

// solveRecovering runs solver.Solve, converting a panic into (nil, true)
// instead of propagating it, mirroring the SafeGo/RecoverPanic pattern the
// AleutianFOSS example repo uses at its goroutine boundaries.
func (w *Worker) solveRecovering(req Request) (result *temporal.Result, crashed bool) {
	defer func() {
		if r := recover(); r != nil {
			crashed = true
			w.log.Debug("panic detail", slog.String("value", fmt.Sprint(r)), slog.String("stack", string(debug.Stack())))
		}
	}()

	return solver.Solve(req.Events, req.Assertions, solver.WithConstants(w.cfg)), false
}
