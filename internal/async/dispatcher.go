// Package async provides the side-effect dispatchers used for best-effort
// delivery work (push and email after a notification fan-out).
package async

import (
	"context"
	"log"
	"time"

	"agencyhub/internal/port"
)

type goDispatcher struct {
	timeout time.Duration
}

// NewDispatcher returns a Dispatcher that runs each task on its own goroutine
// with a detached, deadline-bound context. Panics are recovered and logged so
// a failing side effect can never take the process down.
func NewDispatcher(timeout time.Duration) port.Dispatcher {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &goDispatcher{timeout: timeout}
}

func (d *goDispatcher) Submit(name string, fn func(ctx context.Context)) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("WARNING: side-effect task %q panicked: %v", name, r)
			}
		}()
		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		defer cancel()
		fn(ctx)
	}()
}

type syncDispatcher struct{}

// NewSyncDispatcher returns a Dispatcher that runs tasks inline. Used in tests
// where side-effect completion must be observable deterministically.
func NewSyncDispatcher() port.Dispatcher {
	return syncDispatcher{}
}

func (syncDispatcher) Submit(name string, fn func(ctx context.Context)) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("WARNING: side-effect task %q panicked: %v", name, r)
		}
	}()
	fn(context.Background())
}
