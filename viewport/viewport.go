// Copyright 2023 Gustavo C. Viegas. All rights reserved.

// Package viewport implements an interactive model
// viewport.
// A Controller owns a scene with a fixed lighting rig,
// a camera driven by orbit controls and an anchor that
// receives a single asset loaded in the background.
// The host render loop calls Frame once per frame; all
// scene and camera mutation happens on the goroutine
// that calls Open, Frame and Close.
package viewport

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gviegas/folio/linear"
	"github.com/gviegas/folio/loader"
	"github.com/gviegas/folio/model"
	"github.com/gviegas/folio/node"
	"github.com/gviegas/folio/orbit"
	"github.com/gviegas/folio/scene"
	"github.com/gviegas/folio/wsi"
)

const viewportPrefix = "viewport: "

func newViewportErr(reason string) error { return errors.New(viewportPrefix + reason) }

var (
	// ErrOpen is returned by Open when the Controller
	// was already opened.
	ErrOpen = newViewportErr("already opened")

	// ErrNotOpen is returned by Frame before Open.
	ErrNotOpen = newViewportErr("not opened")

	// ErrClosed is returned by Open and Frame after
	// Close.
	ErrClosed = newViewportErr("closed")
)

// Renderer is the interface that wraps the Draw method.
//
// Draw renders s as seen from cam. It is called once per
// frame and must not retain s or cam.
type Renderer interface {
	Draw(s *scene.Scene, cam *node.Camera) error
}

// RendererFunc is a function that implements Renderer.
type RendererFunc func(s *scene.Scene, cam *node.Camera) error

// Draw implements Renderer.
func (f RendererFunc) Draw(s *scene.Scene, cam *node.Camera) error { return f(s, cam) }

// Controller manages the lifetime of a viewport.
// Except where noted, its methods must be called from a
// single goroutine.
type Controller struct {
	cfg   Config
	surf  wsi.Surface
	rd    Renderer
	fetch loader.Fetcher
	log   *slog.Logger

	// Continuations posted by the loader.
	mu     sync.Mutex
	posted []func()
	sealed bool

	scene   *scene.Scene
	anchor  *scene.Anchor
	ctrl    *orbit.Controls
	fut     *loader.Future
	cancel  context.CancelFunc
	release []func()
	pending bool
	err     error

	opened bool
	closed bool
	frames int
}

// New creates a new Controller.
// rd may be nil, in which case Frame draws nothing.
// If log is nil, slog.Default() is used.
func New(cfg *Config, surf wsi.Surface, rd Renderer, f loader.Fetcher, log *slog.Logger) (*Controller, error) {
	if surf == nil {
		return nil, newViewportErr("nil Surface")
	}
	if f == nil {
		return nil, newViewportErr("nil Fetcher")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = slog.Default()
	}
	c := &Controller{
		cfg:   *cfg,
		surf:  surf,
		rd:    rd,
		fetch: f,
		log:   log.With("pkg", "viewport"),
	}
	if cfg.Orbit.Azimuth != nil && !cfg.FreeAzimuth {
		az := *cfg.Orbit.Azimuth
		c.cfg.Orbit.Azimuth = &az
	} else {
		c.cfg.Orbit.Azimuth = nil
	}
	return c, nil
}

// Open acquires the viewport's resources and starts
// loading the asset.
// It configures the surface, builds the scene, creates
// the orbit controls and registers them for input, in
// this order. If any step fails, everything acquired so
// far is released as if by Close.
// The load is bound to ctx.
func (c *Controller) Open(ctx context.Context) (err error) {
	switch {
	case c.closed:
		return ErrClosed
	case c.opened:
		return ErrOpen
	}
	c.opened = true
	defer func() {
		if err != nil {
			c.log.Error("open failed", "err", err)
			c.Close()
		}
	}()

	if err = c.surf.Configure(c.cfg.Surface); err != nil {
		return fmt.Errorf(viewportPrefix+"%w", err)
	}

	cam := node.Camera{
		Position: c.cfg.Camera.Position,
		Target:   c.cfg.Orbit.Target,
		Up:       linear.V3{0, 1, 0},
		FOV:      c.cfg.Camera.FOV,
		Near:     c.cfg.Camera.Near,
		Far:      c.cfg.Camera.Far,
	}
	c.scene = scene.New(cam)
	rig := scene.DefaultRig()
	c.scene.AddRig(&rig)
	c.anchor = c.scene.NewAnchor("asset")

	c.ctrl = orbit.New(c.scene.Camera(), &c.cfg.Orbit, c.surf.Size)
	c.release = append(c.release,
		c.surf.AddPointerHandler(c.ctrl),
		c.surf.AddWheelHandler(c.ctrl))

	ld, err := loader.New(c.fetch, &loader.Config{
		Placement: c.cfg.Asset.Placement,
		Override:  c.cfg.Asset.Override,
		Timeout:   time.Duration(c.cfg.LoadTimeout),
		Poster:    c.post,
		Logger:    c.log,
	})
	if err != nil {
		return err
	}
	var lctx context.Context
	lctx, c.cancel = context.WithCancel(ctx)
	c.fut = ld.Load(lctx, c.cfg.Asset.URL)
	c.pending = true
	c.fut.Then(c.attach)

	c.log.Info("opened", "url", c.cfg.Asset.URL, "lights", len(c.scene.Lights()))
	return nil
}

// post is called by the loader from its own goroutine.
func (c *Controller) post(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.sealed {
		c.log.Debug("continuation dropped after close")
		return
	}
	c.posted = append(c.posted, fn)
}

// drain runs the posted continuations.
func (c *Controller) drain() {
	c.mu.Lock()
	fns := c.posted
	c.posted = nil
	c.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

// attach is the load's continuation.
// It runs on the Controller's goroutine and checks that
// the anchor is still live before consuming the result.
func (c *Controller) attach(asset *model.Asset, err error) {
	c.pending = false
	url := c.cfg.Asset.URL
	if !c.anchor.Live() {
		c.log.Debug("asset discarded", "url", url, "err", scene.ErrDisposed)
		return
	}
	if err != nil {
		c.err = err
		c.log.Error("asset load failed", "url", url, "err", err)
		return
	}
	if err := c.anchor.Attach(asset.Root); err != nil {
		if errors.Is(err, scene.ErrDisposed) {
			c.log.Debug("asset discarded", "url", url, "err", err)
		} else {
			c.log.Warn("asset not attached", "url", url, "err", err)
		}
		return
	}
	c.log.Info("asset attached", "url", url, "meshes", asset.Meshes, "materials", asset.Materials)
}

// Frame advances the viewport by one frame.
// It consumes completed loads, updates the orbit
// controls and draws the scene through the Renderer.
// A Renderer error is returned but leaves the viewport
// usable.
func (c *Controller) Frame() error {
	switch {
	case c.closed:
		return ErrClosed
	case !c.opened:
		return ErrNotOpen
	}
	c.drain()
	c.ctrl.Update()
	c.frames++
	if c.rd == nil {
		return nil
	}
	if err := c.rd.Draw(c.scene, c.scene.Camera()); err != nil {
		c.log.Warn("draw failed", "frame", c.frames, "err", err)
		return fmt.Errorf(viewportPrefix+"%w", err)
	}
	return nil
}

// Close releases the viewport's resources.
// It cancels a pending load, unregisters input handlers,
// disposes of the orbit controls and the scene, and
// closes the surface. Continuations that arrive after
// Close are discarded.
// Calling Close more than once has no further effect.
func (c *Controller) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	if c.fut != nil {
		c.fut.Cancel()
	}
	if c.cancel != nil {
		c.cancel()
	}
	for i := len(c.release) - 1; i >= 0; i-- {
		c.release[i]()
	}
	c.release = nil
	if c.ctrl != nil {
		c.ctrl.Dispose()
	}
	if c.scene != nil {
		c.scene.Dispose()
	}

	// Already queued continuations observe the disposed
	// anchor.
	c.mu.Lock()
	c.sealed = true
	c.mu.Unlock()
	c.drain()
	c.pending = false

	c.surf.Close()
	c.log.Info("closed", "frames", c.frames)
	return nil
}

// Scene returns the viewport's scene.
// It is nil before Open.
func (c *Controller) Scene() *scene.Scene { return c.scene }

// Anchor returns the anchor that receives the asset.
// It is nil before Open.
func (c *Controller) Anchor() *scene.Anchor { return c.anchor }

// Camera returns the camera.
// It is nil before Open.
// Callers must treat it as read only; only the orbit
// controls move the camera.
func (c *Controller) Camera() *node.Camera {
	if c.scene == nil {
		return nil
	}
	return c.scene.Camera()
}

// Controls returns the orbit controls.
// It is nil before Open.
func (c *Controller) Controls() *orbit.Controls { return c.ctrl }

// Pending returns whether the asset load has not been
// consumed yet.
func (c *Controller) Pending() bool { return c.pending }

// Err returns the error of a failed asset load.
func (c *Controller) Err() error { return c.err }

// Frames returns the number of frames drawn.
func (c *Controller) Frames() int { return c.frames }
