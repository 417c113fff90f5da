package backdrop

import "math"

// PointerState is the latest pointer and scroll sample. X and Y are in
// normalized device coordinates: -1 is the left/bottom edge, +1 the
// right/top edge. Values beyond ±1 occur while the pointer is outside the
// viewport and are kept as-is.
type PointerState struct {
	X, Y   float64
	Scroll float64

	// PixelX and PixelY are the raw pointer coordinates of the last sample,
	// used for screen-space hit testing.
	PixelX, PixelY float64
}

// Sampler records pointer and scroll input. Both record methods overwrite;
// nothing is queued or averaged. Input handlers write, the updater reads a
// Snapshot once per tick.
type Sampler struct {
	state PointerState
}

// RecordPointer normalizes a pixel position against the viewport size and
// stores it. The vertical axis is inverted so that the top of the viewport
// maps to +1.
func (s *Sampler) RecordPointer(xPixel, yPixel, viewportW, viewportH float64) {
	s.state.PixelX = finiteOrZero(xPixel)
	s.state.PixelY = finiteOrZero(yPixel)
	s.state.X, s.state.Y = NormalizePointer(xPixel, yPixel, viewportW, viewportH)
}

// NormalizePointer maps a pixel position to normalized device coordinates:
// x = 2*x/w - 1, y = -(2*y/h - 1). Non-finite coordinates count as 0 and a
// non-positive dimension counts as 1.
func NormalizePointer(xPixel, yPixel, viewportW, viewportH float64) (x, y float64) {
	xPixel = finiteOrZero(xPixel)
	yPixel = finiteOrZero(yPixel)
	viewportW = positiveOrOne(viewportW)
	viewportH = positiveOrOne(viewportH)
	return 2*xPixel/viewportW - 1, -(2*yPixel/viewportH - 1)
}

// RecordScroll stores the page scroll offset. Negative and non-finite
// offsets are stored as 0.
func (s *Sampler) RecordScroll(offset float64) {
	offset = finiteOrZero(offset)
	if offset < 0 {
		offset = 0
	}
	s.state.Scroll = offset
}

// Snapshot returns a copy of the current state.
func (s *Sampler) Snapshot() PointerState {
	return s.state
}

// Reset returns the sampler to the centered, unscrolled state.
func (s *Sampler) Reset() {
	s.state = PointerState{}
}

func finiteOrZero(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func positiveOrOne(v float64) float64 {
	if !(v > 0) || math.IsInf(v, 0) {
		return 1
	}
	return v
}
