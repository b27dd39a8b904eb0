// Copyright 2025 Raamsri Kumar <raam@tinkershack.in>
// Copyright 2025 The StrataSTOR Authors and Contributors
// SPDX-License-Identifier: Apache-2.0

package anf

import "context"

// Handle is the polling reference for an in-flight control-plane mutation.
// Token is the poller resume token when the control plane issued one; it is
// opaque to the gateway and its consumers.
type Handle struct {
	ID        string `json:"id"`
	Resource  string `json:"resource"`
	Operation string `json:"operation"`
	Token     string `json:"token,omitempty"`
}

// Operation is an accepted control-plane mutation. Handle returns the polling
// reference available immediately after submission; Wait blocks the calling
// goroutine until the operation reaches a terminal state and returns the final
// resource representation, or the terminal failure.
type Operation[T any] interface {
	Handle() Handle
	Wait(ctx context.Context) (T, error)
}

// Ack is the result type of operations with no final resource body (deletes).
type Ack struct{}

// Result is the tagged outcome of a mutating call: exactly one of Resource
// (terminal, wait=true) or Pending (submission handle, wait=false) is set.
type Result[T any] struct {
	Resource *T
	Pending  *Handle
}

// Done reports whether the result carries a terminal resource.
func (r Result[T]) Done() bool {
	return r.Resource != nil
}

// Await resolves the wait dichotomy for an accepted operation. With wait
// false it returns the submission handle without blocking; with wait true it
// blocks on the operation and returns the terminal resource. Submission has
// already happened by the time Await runs, so exactly one mutating call is
// issued either way.
func Await[T any](ctx context.Context, op Operation[T], wait bool) (Result[T], error) {
	if !wait {
		h := op.Handle()
		return Result[T]{Pending: &h}, nil
	}
	v, err := op.Wait(ctx)
	if err != nil {
		return Result[T]{}, err
	}
	return Result[T]{Resource: &v}, nil
}
