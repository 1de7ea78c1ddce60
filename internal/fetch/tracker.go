// Package fetch tracks in-flight API requests so that a slow, stale
// response never overwrites the result of a newer request.
package fetch

import (
	"context"
	"fmt"
	"sync"
)

// Status is the lifecycle of a tracked request
type Status int

const (
	Idle Status = iota
	Loading
	Success
	Error
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Success:
		return "success"
	case Error:
		return "error"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Snapshot is the observable state of a Tracker
type Snapshot[T any] struct {
	Status    Status
	RequestID uint64
	Data      T
	Err       error
}

// Tracker holds the latest result of a repeatable request. Each Begin
// issues a higher request id. A response applies only when its id is
// newer than the last applied one, so overlapping requests that finish
// in order all land while a late, older response is dropped.
type Tracker[T any] struct {
	mu      sync.Mutex
	latest  uint64
	applied uint64
	current Snapshot[T]
}

// Begin starts a request and returns its id
func (t *Tracker[T]) Begin() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.latest++
	t.current.Status = Loading
	t.current.RequestID = t.latest
	return t.latest
}

// Resolve records the outcome of request id. A response older than the
// displayed state is dropped and Resolve returns false. Data from a failed
// request is not applied; the previous data stays visible. The status
// stays Loading while a newer request is still outstanding.
func (t *Tracker[T]) Resolve(id uint64, data T, err error) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if id <= t.applied || id > t.latest {
		return false
	}
	t.applied = id
	done := id == t.latest
	if err != nil {
		if done {
			t.current.Status = Error
		}
		t.current.Err = err
		return true
	}
	if done {
		t.current.Status = Success
	}
	t.current.Data = data
	t.current.Err = nil
	return true
}

// Snapshot returns the current state
func (t *Tracker[T]) Snapshot() Snapshot[T] {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.current
}

// Run begins a request, calls fn and resolves with its result. The
// returned bool is false when a newer response was applied first.
func (t *Tracker[T]) Run(ctx context.Context, fn func(ctx context.Context) (T, error)) (T, bool, error) {
	id := t.Begin()
	data, err := fn(ctx)
	applied := t.Resolve(id, data, err)
	return data, applied, err
}
