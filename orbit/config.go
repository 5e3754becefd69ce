// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package orbit

import (
	"errors"

	"github.com/chewxy/math32"

	"github.com/gviegas/folio/linear"
)

const orbitPrefix = "orbit: "

func newOrbitErr(reason string) error { return errors.New(orbitPrefix + reason) }

// Range is a closed interval.
type Range struct {
	Min float32 `toml:"min" yaml:"min"`
	Max float32 `toml:"max" yaml:"max"`
}

// Clamp returns x clamped to r.
func (r Range) Clamp(x float32) float32 { return max(r.Min, min(r.Max, x)) }

// Contains returns whether x is in r.
func (r Range) Contains(x float32) bool { return x >= r.Min && x <= r.Max }

// Config is used to configure the controls.
type Config struct {
	// Orbit center.
	//
	// Default is the world origin.
	Target linear.V3 `toml:"target" yaml:"target"`

	// Polar angle bounds, in radians from +Y.
	// Must lie within [0, π].
	//
	// Default is [π/3, π/1.5].
	Polar Range `toml:"polar" yaml:"polar"`

	// Azimuth angle bounds, in radians about +Y.
	// nil means unconstrained.
	//
	// Default is [-π/10, π/10].
	Azimuth *Range `toml:"azimuth" yaml:"azimuth"`

	// Distance bounds from Target.
	//
	// Default is [5, 15].
	Distance Range `toml:"distance" yaml:"distance"`

	// Whether rotation eases out over several frames.
	//
	// Default is true.
	Damping bool `toml:"damping" yaml:"damping"`

	// Fraction of the remaining rotation applied per
	// frame when Damping is set. Must be in (0, 1].
	//
	// Default is 0.05.
	DampingFactor float32 `toml:"damping_factor" yaml:"damping_factor"`

	// Whether wheel input dollies the camera.
	//
	// Default is true.
	Zoom bool `toml:"zoom" yaml:"zoom"`

	// Input sensitivity.
	//
	// Default is 1.
	RotateSpeed float32 `toml:"rotate_speed" yaml:"rotate_speed"`
	ZoomSpeed   float32 `toml:"zoom_speed" yaml:"zoom_speed"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Polar:         Range{math32.Pi / 3, math32.Pi / 1.5},
		Azimuth:       &Range{-math32.Pi / 10, math32.Pi / 10},
		Distance:      Range{5, 15},
		Damping:       true,
		DampingFactor: 0.05,
		Zoom:          true,
		RotateSpeed:   1,
		ZoomSpeed:     1,
	}
}

// Validate checks that c is a valid configuration.
func (c *Config) Validate() error {
	switch {
	case c.Polar.Min < 0 || c.Polar.Max > math32.Pi:
		return newOrbitErr("Polar outside [0, π] interval")
	case c.Polar.Min > c.Polar.Max:
		return newOrbitErr("Polar.Min greater than Polar.Max")
	case c.Azimuth != nil && c.Azimuth.Min > c.Azimuth.Max:
		return newOrbitErr("Azimuth.Min greater than Azimuth.Max")
	case c.Azimuth != nil && (c.Azimuth.Min < -2*math32.Pi || c.Azimuth.Max > 2*math32.Pi):
		return newOrbitErr("Azimuth outside [-2π, 2π] interval")
	case c.Distance.Min <= 0:
		return newOrbitErr("Distance.Min must be greater than 0.0")
	case c.Distance.Min > c.Distance.Max:
		return newOrbitErr("Distance.Min greater than Distance.Max")
	case c.Damping && (c.DampingFactor <= 0 || c.DampingFactor > 1):
		return newOrbitErr("DampingFactor outside (0.0, 1.0] interval")
	case c.RotateSpeed < 0 || c.ZoomSpeed < 0:
		return newOrbitErr("negative input speed")
	}
	return nil
}
