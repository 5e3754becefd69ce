// Copyright 2022 Gustavo C. Viegas. All rights reserved.

// Package wsi provides window system integration (WSI)
// for viewports.
// A Surface is a drawable area that also delivers the
// pointer and wheel input scoped to it. Handlers are
// registered individually and released through the
// function returned on registration.
package wsi

import (
	"errors"
	"fmt"
	"strings"
)

const wsiPrefix = "wsi: "

func newWSIErr(reason string) error { return errors.New(wsiPrefix + reason) }

// ErrClosed is returned by operations on a closed Surface.
var ErrClosed = newWSIErr("surface closed")

// Surface is the interface that defines a drawable
// surface with scoped input.
type Surface interface {
	// Configure sets the surface's drawing options.
	Configure(opts Options) error

	// Size returns the surface's size in pixels.
	Size() (width, height int)

	// AddPointerHandler registers h to receive pointer
	// events. Calling the returned function unregisters
	// h; it may be called more than once.
	AddPointerHandler(h PointerHandler) (release func())

	// AddWheelHandler registers h to receive wheel
	// events. Calling the returned function unregisters
	// h; it may be called more than once.
	AddWheelHandler(h WheelHandler) (release func())

	// Close releases the surface.
	Close()
}

// Button is the type of pointer buttons.
type Button int

// Pointer buttons.
const (
	BtnUnknown Button = iota
	BtnLeft
	BtnRight
	BtnMiddle
	BtnSide
	BtnForward
	BtnBackward
)

// PointerHandler is the interface that defines the methods
// for handling pointer events.
type PointerHandler interface {
	// PointerMotion is called when the pointer changes position.
	PointerMotion(newX, newY int)

	// PointerButton is called when a button is pressed/released.
	PointerButton(btn Button, pressed bool, x, y int)
}

// WheelHandler is the interface that defines the method
// for handling wheel events.
type WheelHandler interface {
	// Wheel is called when the wheel is scrolled.
	// Positive dy scrolls towards the user.
	Wheel(dx, dy float32)
}

// ToneMapping is the type of tone mapping operators.
type ToneMapping int

// Tone mapping operators.
const (
	NoToneMapping ToneMapping = iota
	LinearToneMapping
	ReinhardToneMapping
	ACESFilmicToneMapping
)

var toneNames = [...]string{"none", "linear", "reinhard", "aces"}

// String implements fmt.Stringer.
func (t ToneMapping) String() string {
	if t < 0 || int(t) >= len(toneNames) {
		return fmt.Sprintf("ToneMapping(%d)", int(t))
	}
	return toneNames[t]
}

// MarshalText implements encoding.TextMarshaler.
func (t ToneMapping) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *ToneMapping) UnmarshalText(b []byte) error {
	for i, s := range toneNames {
		if strings.EqualFold(s, string(b)) {
			*t = ToneMapping(i)
			return nil
		}
	}
	return newWSIErr("unknown tone mapping " + string(b))
}

// ColorSpace is the type of output color spaces.
type ColorSpace int

// Color spaces.
const (
	LinearSRGB ColorSpace = iota
	SRGB
)

var spaceNames = [...]string{"linear-srgb", "srgb"}

// String implements fmt.Stringer.
func (c ColorSpace) String() string {
	if c < 0 || int(c) >= len(spaceNames) {
		return fmt.Sprintf("ColorSpace(%d)", int(c))
	}
	return spaceNames[c]
}

// MarshalText implements encoding.TextMarshaler.
func (c ColorSpace) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *ColorSpace) UnmarshalText(b []byte) error {
	for i, s := range spaceNames {
		if strings.EqualFold(s, string(b)) {
			*c = ColorSpace(i)
			return nil
		}
	}
	return newWSIErr("unknown color space " + string(b))
}

// Options are the drawing options of a Surface.
// The surface interprets them; they are opaque to
// callers.
type Options struct {
	Antialias   bool        `toml:"antialias" yaml:"antialias"`
	ToneMapping ToneMapping `toml:"tone_mapping" yaml:"tone_mapping"`
	ColorSpace  ColorSpace  `toml:"color_space" yaml:"color_space"`
}

// DefaultOptions returns antialiased, ACES filmic tone
// mapped sRGB output.
func DefaultOptions() Options {
	return Options{
		Antialias:   true,
		ToneMapping: ACESFilmicToneMapping,
		ColorSpace:  SRGB,
	}
}
