package backdrop

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputSource is polled once per tick for pointer, wheel and click input.
type InputSource interface {
	// CursorPosition returns the pointer position in screen pixels.
	CursorPosition() (x, y int)
	// Wheel returns the vertical wheel movement since the last tick.
	// Positive values scroll up (toward the top of the page).
	Wheel() float64
	// JustClicked reports whether the primary button was pressed this tick.
	JustClicked() bool
}

// ebitenInput reads the mouse through ebiten.
type ebitenInput struct{}

func (ebitenInput) CursorPosition() (int, int) { return ebiten.CursorPosition() }

func (ebitenInput) Wheel() float64 {
	_, y := ebiten.Wheel()
	return y
}

func (ebitenInput) JustClicked() bool {
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

// processInput consumes one injected event if any is queued; otherwise it
// polls the input source. Either way it only writes sampler state or
// spawns effects, it never draws.
func (s *Scene) processInput() {
	if s.processInjectedInput() {
		return
	}
	if s.input == nil {
		return
	}

	x, y := s.input.CursorPosition()
	if x != s.lastCursorX || y != s.lastCursorY {
		s.lastCursorX, s.lastCursorY = x, y
		s.movePointer(float64(x), float64(y))
	}
	if dy := s.input.Wheel(); dy != 0 {
		s.scrollTo(s.scroll - dy*s.cfg.ScrollStep)
	}
	if s.input.JustClicked() {
		s.Click(float64(x), float64(y))
	}
}

// movePointer records a pointer position against the current viewport.
func (s *Scene) movePointer(x, y float64) {
	s.sampler.RecordPointer(x, y, float64(s.width), float64(s.height))
}

// scrollTo clamps offset to the page and records it.
func (s *Scene) scrollTo(offset float64) {
	offset = max(0, offset)
	if s.cfg.ScrollLength > 0 {
		offset = min(offset, s.cfg.ScrollLength)
	}
	s.scroll = offset
	s.sampler.RecordScroll(offset)
}

// ScrollOffset returns the current page scroll offset in pixels.
func (s *Scene) ScrollOffset() float64 {
	return s.scroll
}
