// Copyright 2023 Gustavo C. Viegas. All rights reserved.

// Package orbit implements camera controls that orbit a
// target point in response to pointer input.
package orbit

import (
	"github.com/chewxy/math32"

	"github.com/gviegas/folio/linear"
	"github.com/gviegas/folio/node"
	"github.com/gviegas/folio/wsi"
)

// Keeps the camera off the poles, where the view
// direction would be parallel to the up vector.
const poleEps = 1e-6

// Spherical is a position relative to the orbit target.
// Theta is the azimuth about +Y measured from +Z, and
// Phi is the polar angle measured from +Y.
type Spherical struct {
	Radius, Theta, Phi float32
}

// Controls is an orbit control rig.
// It implements wsi.PointerHandler and wsi.WheelHandler.
// Input only accumulates deltas; the camera is written
// by Update. Controls are not safe for concurrent use.
type Controls struct {
	cfg  Config
	cam  *node.Camera
	size func() (int, int)

	sph    Spherical
	dTheta float32
	dPhi   float32
	scale  float32

	rotating     bool
	lastX, lastY int
	disposed     bool
}

// New creates controls that drive cam.
// size reports the height used to convert pointer motion
// into angles; it may be nil.
// cfg must be valid. cam is moved, if needed, to satisfy
// the configured bounds.
func New(cam *node.Camera, cfg *Config, size func() (width, height int)) *Controls {
	c := &Controls{cfg: *cfg, cam: cam, size: size, scale: 1}
	if c.cfg.Azimuth != nil {
		az := *c.cfg.Azimuth
		c.cfg.Azimuth = &az
	}
	var off linear.V3
	off.Sub(&cam.Position, &c.cfg.Target)
	c.sph = toSpherical(&off)
	c.apply()
	return c
}

func toSpherical(v *linear.V3) (s Spherical) {
	s.Radius = v.Len()
	if s.Radius == 0 {
		s.Phi = math32.Pi / 2
		return
	}
	s.Theta = math32.Atan2(v[0], v[2])
	s.Phi = math32.Acos(max(-1, min(1, v[1]/s.Radius)))
	return
}

// Spherical returns the current camera position
// relative to the target.
func (c *Controls) Spherical() Spherical { return c.sph }

// Config returns the configuration of c.
func (c *Controls) Config() Config { return c.cfg }

// PointerButton implements wsi.PointerHandler.
// The left button starts and ends a rotation.
func (c *Controls) PointerButton(btn wsi.Button, pressed bool, x, y int) {
	if c.disposed || btn != wsi.BtnLeft {
		return
	}
	c.rotating = pressed
	c.lastX, c.lastY = x, y
}

// PointerMotion implements wsi.PointerHandler.
func (c *Controls) PointerMotion(newX, newY int) {
	if c.disposed || !c.rotating {
		return
	}
	h := 1
	if c.size != nil {
		_, h = c.size()
		h = max(1, h)
	}
	k := 2 * math32.Pi / float32(h) * c.cfg.RotateSpeed
	c.dTheta -= float32(newX-c.lastX) * k
	c.dPhi -= float32(newY-c.lastY) * k
	c.lastX, c.lastY = newX, newY
}

// Wheel implements wsi.WheelHandler.
// Scrolling away from the user (dy < 0) dollies in.
// Wheel input is ignored when zoom is disabled.
func (c *Controls) Wheel(_, dy float32) {
	if c.disposed || !c.cfg.Zoom || dy == 0 {
		return
	}
	f := math32.Pow(0.95, c.cfg.ZoomSpeed)
	if dy < 0 {
		c.scale *= f
	} else {
		c.scale /= f
	}
}

// Update applies accumulated input to the camera.
// It must be called once per frame. With damping, the
// pending rotation decays by the damping factor each
// call, so the camera keeps easing after input stops.
// It returns whether the camera moved.
func (c *Controls) Update() bool {
	if c.disposed {
		return false
	}
	prev := c.cam.Position
	f := float32(1)
	if c.cfg.Damping {
		f = c.cfg.DampingFactor
	}
	c.sph.Theta += c.dTheta * f
	c.sph.Phi += c.dPhi * f
	c.sph.Radius *= c.scale
	if c.cfg.Damping {
		c.dTheta *= 1 - f
		c.dPhi *= 1 - f
	} else {
		c.dTheta, c.dPhi = 0, 0
	}
	c.scale = 1
	c.apply()
	return c.cam.Position != prev
}

// apply clamps the spherical state and writes the
// camera pose.
func (c *Controls) apply() {
	s := &c.sph
	if az := c.cfg.Azimuth; az != nil {
		s.Theta = az.Clamp(s.Theta)
	} else {
		s.Theta = wrap(s.Theta)
	}
	pol := c.cfg.Polar
	s.Phi = pol.Clamp(s.Phi)
	s.Phi = max(poleEps, min(math32.Pi-poleEps, s.Phi))
	s.Radius = c.cfg.Distance.Clamp(s.Radius)

	sinPhi, cosPhi := math32.Sincos(s.Phi)
	sinTheta, cosTheta := math32.Sincos(s.Theta)
	off := linear.V3{
		s.Radius * sinPhi * sinTheta,
		s.Radius * cosPhi,
		s.Radius * sinPhi * cosTheta,
	}
	c.cam.Position.Add(&c.cfg.Target, &off)
	c.cam.Target = c.cfg.Target
	if c.cam.Up == (linear.V3{}) {
		c.cam.Up = linear.V3{0, 1, 0}
	}
}

// wrap maps an angle into (-π, π].
func wrap(a float32) float32 {
	a = math32.Mod(a+math32.Pi, 2*math32.Pi)
	if a <= 0 {
		a += 2 * math32.Pi
	}
	return a - math32.Pi
}

// Dispose detaches c from its camera.
// Input and updates are ignored afterwards.
func (c *Controls) Dispose() {
	c.disposed = true
	c.rotating = false
	c.dTheta, c.dPhi, c.scale = 0, 0, 1
}

// Disposed returns whether c was disposed.
func (c *Controls) Disposed() bool { return c.disposed }
