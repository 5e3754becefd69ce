// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package wsi

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ Surface = (*Headless)(nil)

type E struct {
	log []string
}

func (e *E) PointerMotion(newX, newY int) {
	e.log = append(e.log, fmt.Sprintf("motion %d %d", newX, newY))
}

func (e *E) PointerButton(btn Button, pressed bool, x, y int) {
	e.log = append(e.log, fmt.Sprintf("button %d %t %d %d", btn, pressed, x, y))
}

func (e *E) Wheel(dx, dy float32) {
	e.log = append(e.log, fmt.Sprintf("wheel %g %g", dx, dy))
}

func TestHeadless(t *testing.T) {
	s := NewHeadless(640, 480)
	w, h := s.Size()
	assert.Equal(t, 640, w)
	assert.Equal(t, 480, h)

	_, ok := s.Options()
	assert.False(t, ok)
	require.NoError(t, s.Configure(DefaultOptions()))
	opts, ok := s.Options()
	assert.True(t, ok)
	assert.Equal(t, ACESFilmicToneMapping, opts.ToneMapping)
	assert.Equal(t, SRGB, opts.ColorSpace)
	assert.True(t, opts.Antialias)

	var e E
	rp := s.AddPointerHandler(&e)
	rw := s.AddWheelHandler(&e)
	assert.Equal(t, 2, s.Listeners())

	s.Drag(BtnLeft, 0, 0, 10, 20, 2)
	s.Scroll(0, -1)
	assert.Equal(t, []string{
		"motion 0 0",
		"button 1 true 0 0",
		"motion 5 10",
		"motion 10 20",
		"button 1 false 10 20",
		"wheel 0 -1",
	}, e.log)

	rp()
	rp()
	rw()
	assert.Equal(t, 0, s.Listeners())
	e.log = nil
	s.Move(1, 1)
	s.Scroll(0, 1)
	assert.Empty(t, e.log, "released handlers must not receive events")

	s.AddPointerHandler(&e)
	s.Close()
	assert.True(t, s.Closed())
	assert.Equal(t, 0, s.Listeners())
	assert.ErrorIs(t, s.Configure(DefaultOptions()), ErrClosed)
	s.AddWheelHandler(&e)()
	assert.Equal(t, 0, s.Listeners())
}

func TestText(t *testing.T) {
	var tm ToneMapping
	require.NoError(t, tm.UnmarshalText([]byte("ACES")))
	assert.Equal(t, ACESFilmicToneMapping, tm)
	b, err := tm.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "aces", string(b))
	assert.Error(t, tm.UnmarshalText([]byte("filmic")))

	var cs ColorSpace
	require.NoError(t, cs.UnmarshalText([]byte("linear-srgb")))
	assert.Equal(t, LinearSRGB, cs)
	assert.Equal(t, "srgb", SRGB.String())
	assert.Equal(t, "ColorSpace(9)", ColorSpace(9).String())
}
