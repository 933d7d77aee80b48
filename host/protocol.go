// Package host wraps solver.Solve behind the worker boundary spec.md §5
// describes: a serialized, single-flight goroutine that tags every request
// with an integer id, discards stale results, and recovers a panicking
// solve by retrying the request a bounded number of times on the same
// worker goroutine.
//
// Grounded on cmd/aleutian/internal/util's SafeGo/RecoverPanic pattern in
// the AleutianFOSS example repo (goroutine + deferred recover, panic value
// handed to a callback) and on the "runner struct holds the mutable state
// of one execution" shape used throughout lvlath's dijkstra and dfs.
package host

import "github.com/temporalgraph/chronosolve/temporal"

// The Request* and Response* constants enumerate the wire protocol's message kinds,
// per spec.md §6 "Host/worker wire protocol".
const (
	RequestSolve = "solve"

	ResponseReady  = "ready"
	ResponseResult = "result"
	ResponseError  = "error"
)

// Request is one message a caller sends to the worker, wire-shaped per
// spec.md §6: {type="solve", request_id, input}.
type Request struct {
	Type       string               `json:"type"`
	RequestID  int64                `json:"request_id"`
	Events     []temporal.Event     `json:"events"`
	Assertions []temporal.Assertion `json:"assertions"`
}

// Response is one message the worker sends back, wire-shaped per spec.md
// §6: {type="result", request_id, result} or {type="error", request_id,
// error_message}, plus the one-time {type="ready"}. A result carries only
// Result, an error carries only ErrorMessage, and ready carries neither.
type Response struct {
	Type         string          `json:"type"`
	RequestID    int64           `json:"request_id"`
	Result       *temporal.Result `json:"result,omitempty"`
	ErrorMessage string          `json:"error_message,omitempty"`
}
