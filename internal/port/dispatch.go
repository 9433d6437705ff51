package port

import "context"

// Dispatcher submits best-effort side-effect work (push and email delivery
// after a fan-out) with a non-blocking contract: the primary operation's
// result is returned before submitted work completes, and outcomes are only
// observable via logs.
type Dispatcher interface {
	Submit(name string, fn func(ctx context.Context))
}
