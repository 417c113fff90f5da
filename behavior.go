package backdrop

// ReferenceTPS is the tick rate the per-tick constants are tuned for.
// Real-time behaviors scale their per-tick step by DT*ReferenceTPS.
const ReferenceTPS = 60

// Behavior computes part of an object's transform for one tick.
// Implementations must not block.
type Behavior interface {
	Apply(t *Transform, f Frame)
}

// BehaviorFunc adapts a plain function to Behavior.
type BehaviorFunc func(t *Transform, f Frame)

// Apply calls fn(t, f).
func (fn BehaviorFunc) Apply(t *Transform, f Frame) { fn(t, f) }

// TargetFunc derives a pursuit target from the tick's snapshot.
type TargetFunc func(f Frame) float64

// PointerX targets the normalized pointer X multiplied by scale.
func PointerX(scale float64) TargetFunc {
	return func(f Frame) float64 { return f.Pointer.X * scale }
}

// PointerY targets the normalized pointer Y multiplied by scale.
func PointerY(scale float64) TargetFunc {
	return func(f Frame) float64 { return f.Pointer.Y * scale }
}

// ScrollTarget targets base + scroll*scale.
func ScrollTarget(base, scale float64) TargetFunc {
	return func(f Frame) float64 { return base + f.Pointer.Scroll*scale }
}

// Constant targets a fixed value.
func Constant(v float64) TargetFunc {
	return func(Frame) float64 { return v }
}

// Spin adds Step to a channel every tick. With RealTime unset the speed is
// tied to the tick rate, not to elapsed time.
type Spin struct {
	Channel  Channel
	Step     float64
	RealTime bool
}

// Apply advances the channel by one step.
func (s Spin) Apply(t *Transform, f Frame) {
	step := s.Step
	if s.RealTime {
		step *= f.DT * ReferenceTPS
	}
	t.Set(s.Channel, t.Get(s.Channel)+step)
}

// Follow pursues a moving target with exponential smoothing.
type Follow struct {
	Channel Channel
	Target  TargetFunc
	Factor  float64
}

// Apply closes Factor of the remaining distance to the target.
func (b Follow) Apply(t *Transform, f Frame) {
	if b.Target == nil {
		return
	}
	t.Set(b.Channel, Damp(t.Get(b.Channel), b.Target(f), ClampFactor(b.Factor)))
}

// Breathe writes Base + sin(elapsed*Frequency)*Amplitude to a channel.
type Breathe struct {
	Channel   Channel
	Base      float64
	Frequency float64
	Amplitude float64
}

// Apply sets the oscillating value.
func (b Breathe) Apply(t *Transform, f Frame) {
	t.Set(b.Channel, b.Base+Oscillate(f.Elapsed, b.Frequency, b.Amplitude))
}

// ScrollFade maps the scroll offset across [From, To] linearly onto an
// opacity between Start and End. Offsets outside the range hold the end values.
type ScrollFade struct {
	From, To   float64
	Start, End float64
}

// Apply writes the scroll-linked opacity.
func (b ScrollFade) Apply(t *Transform, f Frame) {
	t.Set(ChannelOpacity, lerp(b.Start, b.End, scrollProgress(f.Pointer.Scroll, b.From, b.To)))
}

// scrollProgress returns where offset lies in [from, to], clamped to [0, 1].
// An empty range reports 0 before it and 1 at or after it.
func scrollProgress(offset, from, to float64) float64 {
	if to <= from {
		if offset >= from {
			return 1
		}
		return 0
	}
	return clamp01((offset - from) / (to - from))
}
