// Copyright 2023 Gustavo C. Viegas. All rights reserved.

// Package loader implements asynchronous loading of
// glTF assets.
// A load fetches the payload, decodes it into a detached
// scene graph fragment and applies the configured
// placement and material override, all off the calling
// goroutine. The result is delivered through a Future.
package loader

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/gviegas/folio/material"
	"github.com/gviegas/folio/model"
)

const loaderPrefix = "loader: "

func newLoaderErr(reason string) error { return errors.New(loaderPrefix + reason) }

// Operations reported by LoadError.
const (
	OpFetch  = "fetch"
	OpDecode = "decode"
)

// LoadError describes a failed load.
type LoadError struct {
	Op  string
	URL string
	Err error
}

func (e *LoadError) Error() string {
	return loaderPrefix + e.Op + " " + e.URL + ": " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *LoadError) Unwrap() error { return e.Err }

// Poster schedules a function to run on the owner's
// goroutine. It is called from the load's goroutine.
type Poster func(fn func())

// Config is used to configure a Loader.
type Config struct {
	// Placement applied to every asset.
	//
	// Default is model.DefaultPlacement().
	Placement model.Placement

	// Material override applied to every asset.
	//
	// Default is material.DefaultOverride().
	Override material.Override

	// Maximum duration of a load.
	// Zero means no limit.
	//
	// Default is zero.
	Timeout time.Duration

	// Where continuations run.
	// nil means on the load's own goroutine.
	Poster Poster

	// Logger for load diagnostics.
	// nil means slog.Default().
	Logger *slog.Logger
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Placement: model.DefaultPlacement(),
		Override:  material.DefaultOverride(),
	}
}

// Loader loads assets through a Fetcher.
// Its methods can be called from any goroutine.
type Loader struct {
	fetch Fetcher
	cfg   Config
	log   *slog.Logger
}

// New creates a new Loader.
func New(f Fetcher, cfg *Config) (*Loader, error) {
	if f == nil {
		return nil, newLoaderErr("nil Fetcher")
	}
	if err := cfg.Placement.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Override.Validate(); err != nil {
		return nil, err
	}
	if cfg.Timeout < 0 {
		return nil, newLoaderErr("negative Timeout")
	}
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Loader{fetch: f, cfg: *cfg, log: log.With("pkg", "loader")}, nil
}

// Load starts loading url and returns immediately.
// Canceling ctx, or calling Cancel on the returned
// Future, aborts the fetch if it has not completed.
// Every call starts a new load.
func (l *Loader) Load(ctx context.Context, url string) *Future {
	var cancel context.CancelFunc
	if l.cfg.Timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, l.cfg.Timeout)
	} else {
		ctx, cancel = context.WithCancel(ctx)
	}
	fut := newFuture(url, cancel, l.cfg.Poster)
	go func() {
		defer cancel()
		asset, err := l.load(ctx, url)
		fut.settle(asset, err)
	}()
	return fut
}

func (l *Loader) load(ctx context.Context, url string) (*model.Asset, error) {
	start := time.Now()
	data, err := l.fetch.Fetch(ctx, url)
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		return nil, &LoadError{OpFetch, url, err}
	}
	l.log.Debug("fetched", "url", url, "bytes", len(data), "elapsed", time.Since(start))
	asset, err := model.Decode(data)
	if err != nil {
		return nil, &LoadError{OpDecode, url, err}
	}
	asset.Place(&l.cfg.Placement)
	n := asset.ApplyOverride(&l.cfg.Override)
	l.log.Debug("decoded", "url", url, "meshes", n, "materials", asset.Materials)
	return asset, nil
}
