// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package wsi

// Headless is an in-memory Surface.
// Input is injected by calling Press, Release, Move and
// Scroll, which dispatch to registered handlers in
// registration order.
// It must be used from a single goroutine.
type Headless struct {
	width, height int
	opts          Options
	configured    bool
	closed        bool
	next          int
	pointer       []pointerEntry
	wheel         []wheelEntry
}

type pointerEntry struct {
	id int
	h  PointerHandler
}

type wheelEntry struct {
	id int
	h  WheelHandler
}

// NewHeadless creates a headless surface of the given size.
func NewHeadless(width, height int) *Headless {
	return &Headless{width: max(1, width), height: max(1, height)}
}

// Configure implements Surface.
func (s *Headless) Configure(opts Options) error {
	if s.closed {
		return ErrClosed
	}
	s.opts = opts
	s.configured = true
	return nil
}

// Options returns the options last passed to Configure
// and whether Configure was called.
func (s *Headless) Options() (Options, bool) { return s.opts, s.configured }

// Size implements Surface.
func (s *Headless) Size() (width, height int) { return s.width, s.height }

// Resize changes the size of s.
func (s *Headless) Resize(width, height int) {
	s.width, s.height = max(1, width), max(1, height)
}

// AddPointerHandler implements Surface.
func (s *Headless) AddPointerHandler(h PointerHandler) func() {
	if s.closed {
		return func() {}
	}
	s.next++
	id := s.next
	s.pointer = append(s.pointer, pointerEntry{id, h})
	return func() {
		for i := range s.pointer {
			if s.pointer[i].id == id {
				s.pointer = append(s.pointer[:i], s.pointer[i+1:]...)
				return
			}
		}
	}
}

// AddWheelHandler implements Surface.
func (s *Headless) AddWheelHandler(h WheelHandler) func() {
	if s.closed {
		return func() {}
	}
	s.next++
	id := s.next
	s.wheel = append(s.wheel, wheelEntry{id, h})
	return func() {
		for i := range s.wheel {
			if s.wheel[i].id == id {
				s.wheel = append(s.wheel[:i], s.wheel[i+1:]...)
				return
			}
		}
	}
}

// Listeners returns the number of registered handlers.
func (s *Headless) Listeners() int { return len(s.pointer) + len(s.wheel) }

// Close implements Surface.
// Handlers still registered are dropped.
func (s *Headless) Close() {
	s.closed = true
	s.pointer = nil
	s.wheel = nil
}

// Closed returns whether s was closed.
func (s *Headless) Closed() bool { return s.closed }

// Press delivers a button press at (x, y).
func (s *Headless) Press(btn Button, x, y int) {
	for _, e := range s.snapshotPointer() {
		e.h.PointerButton(btn, true, x, y)
	}
}

// Release delivers a button release at (x, y).
func (s *Headless) Release(btn Button, x, y int) {
	for _, e := range s.snapshotPointer() {
		e.h.PointerButton(btn, false, x, y)
	}
}

// Move delivers pointer motion to (x, y).
func (s *Headless) Move(x, y int) {
	for _, e := range s.snapshotPointer() {
		e.h.PointerMotion(x, y)
	}
}

// Drag presses btn at (x0, y0), moves to (x1, y1) in
// the given number of steps and releases.
func (s *Headless) Drag(btn Button, x0, y0, x1, y1, steps int) {
	steps = max(1, steps)
	s.Move(x0, y0)
	s.Press(btn, x0, y0)
	for i := 1; i <= steps; i++ {
		s.Move(x0+(x1-x0)*i/steps, y0+(y1-y0)*i/steps)
	}
	s.Release(btn, x1, y1)
}

// Scroll delivers a wheel event.
func (s *Headless) Scroll(dx, dy float32) {
	for _, e := range append([]wheelEntry(nil), s.wheel...) {
		e.h.Wheel(dx, dy)
	}
}

// Handlers may release themselves during dispatch.
func (s *Headless) snapshotPointer() []pointerEntry {
	return append([]pointerEntry(nil), s.pointer...)
}
