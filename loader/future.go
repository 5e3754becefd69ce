// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package loader

import (
	"context"
	"sync"

	"github.com/gviegas/folio/model"
)

// ErrPending is returned by Future.Result before the
// load settles.
var ErrPending = newLoaderErr("load pending")

// Future is the eventual result of a load.
type Future struct {
	url    string
	cancel context.CancelFunc
	post   Poster
	done   chan struct{}

	mu        sync.Mutex
	asset     *model.Asset
	err       error
	settled   bool
	abandoned bool
	then      []func(*model.Asset, error)
}

func newFuture(url string, cancel context.CancelFunc, post Poster) *Future {
	return &Future{
		url:    url,
		cancel: cancel,
		post:   post,
		done:   make(chan struct{}),
	}
}

// URL returns the URL being loaded.
func (f *Future) URL() string { return f.url }

// Done returns a channel that is closed when the load
// settles.
func (f *Future) Done() <-chan struct{} { return f.done }

// Result returns the loaded asset or the error that
// caused the load to fail.
// It returns ErrPending if the load has not settled.
func (f *Future) Result() (*model.Asset, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.settled {
		return nil, ErrPending
	}
	return f.asset, f.err
}

// Wait blocks until the load settles or ctx is done.
func (f *Future) Wait(ctx context.Context) (*model.Asset, error) {
	select {
	case <-f.done:
		return f.Result()
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Cancel abandons the load.
// An unsettled load is aborted and settles with an
// error. Continuations still run; consumers decide
// whether the result is still wanted by checking the
// liveness of its destination.
func (f *Future) Cancel() {
	f.mu.Lock()
	f.abandoned = true
	f.mu.Unlock()
	f.cancel()
}

// Abandoned returns whether Cancel was called.
func (f *Future) Abandoned() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.abandoned
}

// Then registers fn to be called with the result once
// the load settles. fn runs through the Loader's Poster,
// if any. Registering after settlement schedules fn
// immediately.
func (f *Future) Then(fn func(*model.Asset, error)) {
	f.mu.Lock()
	if !f.settled {
		f.then = append(f.then, fn)
		f.mu.Unlock()
		return
	}
	asset, err := f.asset, f.err
	f.mu.Unlock()
	f.deliver(fn, asset, err)
}

func (f *Future) settle(asset *model.Asset, err error) {
	f.mu.Lock()
	f.asset, f.err = asset, err
	f.settled = true
	then := f.then
	f.then = nil
	f.mu.Unlock()
	close(f.done)
	for _, fn := range then {
		f.deliver(fn, asset, err)
	}
}

func (f *Future) deliver(fn func(*model.Asset, error), asset *model.Asset, err error) {
	if f.post == nil {
		fn(asset, err)
		return
	}
	f.post(func() { fn(asset, err) })
}
