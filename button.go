package backdrop

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// buttonSwipeDuration is how long the hover fill takes to rise or fall.
const buttonSwipeDuration = 0.4

// Accent is the neon fill color of hovered buttons.
var Accent = Color{R: 0xD2 / 255.0, G: 1, B: 0, A: 1}

// Button is a capsule link whose fill swipes up from the bottom while the
// pointer is over it and back down when it leaves.
type Button struct {
	Label  string
	Bounds Rect

	// Fill is the swipe progress in [0, 1]; 1 means fully filled.
	Fill float64

	// OnClick fires when a click lands inside Bounds.
	OnClick func()

	hovered bool
	swipe   *gween.Tween
}

// NewButton creates a button occupying bounds in screen pixels.
func NewButton(label string, bounds Rect) *Button {
	return &Button{Label: label, Bounds: bounds}
}

// Hovered reports whether the pointer was over the button on the last tick.
func (b *Button) Hovered() bool {
	return b.hovered
}

// LabelColor blends the label from white to near-black as the fill rises.
func (b *Button) LabelColor() Color {
	v := lerp(1, 0x11/255.0, b.Fill)
	return Color{R: v, G: v, B: v, A: 1}
}

// BorderColor switches to the accent while hovered.
func (b *Button) BorderColor() Color {
	if b.hovered {
		return Accent
	}
	return ColorWhite.WithAlpha(0.3)
}

// update hit-tests the pointer and advances the swipe by one tick.
func (b *Button) update(f Frame) {
	over := b.Bounds.Contains(f.Pointer.PixelX, f.Pointer.PixelY)
	if over != b.hovered {
		b.hovered = over
		to := 0.0
		if over {
			to = 1
		}
		b.swipe = gween.New(float32(b.Fill), float32(to), buttonSwipeDuration, ease.OutExpo)
	}
	if b.swipe == nil {
		return
	}
	val, done := b.swipe.Update(float32(f.DT))
	b.Fill = clamp01(float64(val))
	if done {
		b.swipe = nil
	}
}

// click fires OnClick when (x, y) lies inside the button. It reports
// whether the click was consumed.
func (b *Button) click(x, y float64) bool {
	if !b.Bounds.Contains(x, y) {
		return false
	}
	if b.OnClick != nil {
		b.OnClick()
	}
	return true
}
