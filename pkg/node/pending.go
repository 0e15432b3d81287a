package node

import (
	"context"
	"sync"
)

// Pending is a child value whose content is not yet known. The
// serializer records its position and keeps going; the final document
// is linearized once every Pending has settled. Where a Pending
// appears, its resolved value is spliced through the ordinary child
// rules, so it may resolve to a string, a *Node, a Raw, a number, a
// nested slice, or even another *Pending.
type Pending struct {
	done  chan struct{}
	once  sync.Once
	value any
	err   error

	// lazy, when set, is run by the first Wait call instead of being
	// settled by a producer goroutine. See Lazy.
	lazy    func(ctx context.Context) (any, error)
	lazyRun sync.Once
}

// NewPending returns an unsettled Pending and its settle function.
// Settling is idempotent; only the first call takes effect.
func NewPending() (*Pending, func(value any, err error)) {
	p := &Pending{done: make(chan struct{})}
	return p, p.settle
}

func (p *Pending) settle(value any, err error) {
	p.once.Do(func() {
		p.value = value
		p.err = err
		close(p.done)
	})
}

// Go starts fn in its own goroutine immediately and returns a Pending
// settled with its result. Resolution order across Pendings is
// unconstrained; document order is restored at linearization.
func Go(fn func(ctx context.Context) (any, error)) *Pending {
	p, settle := NewPending()
	go func() {
		settle(fn(context.Background()))
	}()
	return p
}

// Lazy returns a Pending whose work runs on the goroutine of the
// first Wait call, not in its own goroutine. The linearizer awaits
// pendings in document order, so a Lazy continuation is guaranteed to
// run only after the serialization pass that produced it has
// completed. The context stack protocol depends on this scheduling.
func Lazy(fn func(ctx context.Context) (any, error)) *Pending {
	return &Pending{done: make(chan struct{}), lazy: fn}
}

// Resolved returns a Pending already settled with value. Useful in
// tests and for adapting precomputed content.
func Resolved(value any) *Pending {
	p, settle := NewPending()
	settle(value, nil)
	return p
}

// Done returns a channel that is closed once the value settles.
func (p *Pending) Done() <-chan struct{} {
	return p.done
}

// Ready reports whether the value has settled.
func (p *Pending) Ready() bool {
	select {
	case <-p.done:
		return true
	default:
		return false
	}
}

// Wait blocks until the value settles or ctx is canceled. A settled
// error fails the entire render that contains this Pending. For a
// Lazy pending, the first Wait runs the work on the calling
// goroutine; concurrent waiters block until it settles.
func (p *Pending) Wait(ctx context.Context) (any, error) {
	if p.lazy != nil {
		p.lazyRun.Do(func() {
			p.settle(p.lazy(ctx))
		})
	}
	select {
	case <-p.done:
		return p.value, p.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
