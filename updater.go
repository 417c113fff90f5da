package backdrop

import (
	"time"

	"go.uber.org/zap"
)

// Frame is the immutable per-tick snapshot every behavior reads. All
// objects in one tick see the same Pointer values.
type Frame struct {
	Pointer PointerState
	// Elapsed is the time since the driver started, in seconds.
	Elapsed float64
	// DT is the time since the previous tick, in seconds.
	DT float64
	// Tick counts Tick calls, starting at 1.
	Tick uint64
}

// Updater is the per-frame scene driver. It owns the tracked objects'
// transforms, the camera rig and the effect pool, and mutates them once per
// Tick from a single Sampler snapshot.
type Updater struct {
	sampler *Sampler
	camera  *Camera
	effects *EffectPool
	log     *zap.Logger

	objects []*Object
	tweens  []*ScrollTween

	tick    uint64
	last    time.Duration
	started bool
	failed  int
}

// NewUpdater creates an updater reading from sampler. camera and effects may
// be nil when the variant has no camera motion or no click effects.
func NewUpdater(sampler *Sampler, camera *Camera, effects *EffectPool, log *zap.Logger) *Updater {
	if log == nil {
		log = zap.NewNop()
	}
	return &Updater{
		sampler: sampler,
		camera:  camera,
		effects: effects,
		log:     log,
	}
}

// Track adds objects to the update set. Nil objects are accepted and
// skipped every tick.
func (u *Updater) Track(objs ...*Object) {
	u.objects = append(u.objects, objs...)
}

// Untrack removes o from the update set.
func (u *Updater) Untrack(o *Object) {
	for i, c := range u.objects {
		if c == o {
			copy(u.objects[i:], u.objects[i+1:])
			u.objects[len(u.objects)-1] = nil
			u.objects = u.objects[:len(u.objects)-1]
			return
		}
	}
}

// Objects returns the tracked objects. The returned slice MUST NOT be mutated.
func (u *Updater) Objects() []*Object {
	return u.objects
}

// AddTween registers a tween advanced every tick. Finished time-driven
// tweens are dropped automatically.
func (u *Updater) AddTween(t *ScrollTween) {
	u.tweens = append(u.tweens, t)
}

// Tweens returns the registered tweens. The returned slice MUST NOT be mutated.
func (u *Updater) Tweens() []*ScrollTween {
	return u.tweens
}

// Failures returns how many object updates were abandoned because a
// behavior panicked.
func (u *Updater) Failures() int {
	return u.failed
}

// Tick runs one frame at time now (measured from the driver's start) and
// returns the snapshot it used. It never blocks and never fails.
func (u *Updater) Tick(now time.Duration) Frame {
	dt := 1.0 / ReferenceTPS
	if u.started {
		dt = (now - u.last).Seconds()
		if dt < 0 {
			dt = 0
		}
	}
	u.started = true
	u.last = now
	u.tick++

	var pointer PointerState
	if u.sampler != nil {
		pointer = u.sampler.Snapshot()
	}
	f := Frame{
		Pointer: pointer,
		Elapsed: now.Seconds(),
		DT:      dt,
		Tick:    u.tick,
	}

	live := u.objects[:0]
	for _, o := range u.objects {
		if !o.present() {
			continue
		}
		u.applyObject(o, f)
		live = append(live, o)
	}
	clear(u.objects[len(live):])
	u.objects = live

	tweens := u.tweens[:0]
	for _, t := range u.tweens {
		t.step(f)
		if !t.Done {
			tweens = append(tweens, t)
		}
	}
	clear(u.tweens[len(tweens):])
	u.tweens = tweens

	if u.camera != nil {
		u.camera.update(f)
	}
	if u.effects != nil {
		u.effects.Advance()
	}
	return f
}

// applyObject runs o's behaviors. A panicking behavior abandons the rest of
// o's update for this tick but never the other objects.
func (u *Updater) applyObject(o *Object, f Frame) {
	defer func() {
		if r := recover(); r != nil {
			u.failed++
			u.log.Warn("object update failed",
				zap.String("object", o.Name),
				zap.Uint64("tick", f.Tick),
				zap.Any("panic", r))
		}
	}()
	for _, b := range o.Behaviors {
		if b != nil {
			b.Apply(&o.Transform, f)
		}
	}
}
