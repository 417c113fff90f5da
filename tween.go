package backdrop

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Trigger is the scroll range that scrubs a tween: at Start the tween is at
// its beginning, at End it is finished.
type Trigger struct {
	Start, End float64
}

// Progress returns where offset lies within the trigger, clamped to [0, 1].
func (tr Trigger) Progress(offset float64) float64 {
	return scrollProgress(offset, tr.Start, tr.End)
}

// ScrollTween animates one channel of an object toward a target value.
// Without a trigger it plays over time and finishes; with a trigger its
// position is set from the scroll offset every tick and it never finishes,
// so scrolling back reverses it.
//
// If the target object is disposed, the tween stops immediately.
type ScrollTween struct {
	tween    *gween.Tween
	duration float32
	channel  Channel
	target   *Object
	trigger  *Trigger
	Done     bool
}

// NewScrollTween creates a tween from the channel's current value to to
// over duration seconds using the easing function.
func NewScrollTween(o *Object, ch Channel, to float64, duration float32, fn ease.TweenFunc) *ScrollTween {
	if fn == nil {
		fn = ease.Linear
	}
	return &ScrollTween{
		tween:    gween.New(float32(o.Transform.Get(ch)), float32(to), duration, fn),
		duration: duration,
		channel:  ch,
		target:   o,
	}
}

// ScrubBy links the tween's progress to the scroll offset within tr and
// returns the tween for chaining.
func (t *ScrollTween) ScrubBy(tr Trigger) *ScrollTween {
	t.trigger = &tr
	return t
}

// Scrubbed reports whether the tween follows a scroll trigger.
func (t *ScrollTween) Scrubbed() bool {
	return t.trigger != nil
}

// Update advances a time-driven tween by dt seconds and writes the value.
func (t *ScrollTween) Update(dt float32) {
	if t.stopIfDetached() {
		return
	}
	val, finished := t.tween.Update(dt)
	t.target.Transform.Set(t.channel, float64(val))
	t.Done = finished
}

// Scrub positions the tween from a scroll offset and writes the value.
func (t *ScrollTween) Scrub(offset float64) {
	if t.stopIfDetached() {
		return
	}
	p := 1.0
	if t.trigger != nil {
		p = t.trigger.Progress(offset)
	}
	val, _ := t.tween.Set(float32(p) * t.duration)
	t.target.Transform.Set(t.channel, float64(val))
}

// step advances the tween for one tick.
func (t *ScrollTween) step(f Frame) {
	if t.trigger != nil {
		t.Scrub(f.Pointer.Scroll)
		return
	}
	t.Update(float32(f.DT))
}

func (t *ScrollTween) stopIfDetached() bool {
	if t.Done {
		return true
	}
	if !t.target.present() {
		t.Done = true
		return true
	}
	return false
}
