package backdrop

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
)

// fakeInput is a scripted InputSource.
type fakeInput struct {
	x, y    int
	wheel   float64
	clicked bool
}

func (in *fakeInput) CursorPosition() (int, int) { return in.x, in.y }
func (in *fakeInput) Wheel() float64              { return in.wheel }
func (in *fakeInput) JustClicked() bool           { return in.clicked }

// stepClock advances one 60 Hz tick per call.
func stepClock() func() time.Duration {
	var now time.Duration
	return func() time.Duration {
		now += time.Second / 60
		return now
	}
}

func mountVariant(t *testing.T, variant string, opts ...Option) *Scene {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Variant = variant
	opts = append([]Option{
		WithInput(nil),
		WithClock(stepClock()),
		WithRand(rand.New(rand.NewPCG(3, 4))),
		WithLogger(zaptest.NewLogger(t)),
	}, opts...)
	s, err := Mount(FixedContainer{W: 800, H: 600}, cfg, opts...)
	require.NoError(t, err)
	require.True(t, s.Mounted())
	return s
}

func runTicks(s *Scene, n int) {
	for i := 0; i < n; i++ {
		_ = s.Update()
	}
}

func TestMountWithoutContainerIsDisabled(t *testing.T) {
	s, err := Mount(nil, DefaultConfig())
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.True(t, s.Disabled())
	assert.False(t, s.Mounted())

	assert.NotPanics(t, func() {
		assert.NoError(t, s.Update())
		s.Resize(1600, 900)
		assert.False(t, s.Click(10, 10))
		s.InjectPointer(1, 1)
		s.AddObject(NewWireObject("x", nil))
		s.Unmount()
		w, h := s.Layout(640, 480)
		assert.Equal(t, 640, w)
		assert.Equal(t, 480, h)
	})
	assert.Nil(t, s.Updater())
	assert.Nil(t, s.Camera())
	assert.Nil(t, s.Object("x"))
	assert.Equal(t, 0, s.Pending())
}

func TestMountDisabledSkipsValidation(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Variant = "nebula"
	s, err := Mount(nil, cfg)
	require.NoError(t, err)
	assert.True(t, s.Disabled())
}

func TestMountRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Variant = "nebula"
	_, err := Mount(FixedContainer{W: 800, H: 600}, cfg)
	assert.ErrorIs(t, err, ErrUnknownVariant)
}

func TestMountEveryVariant(t *testing.T) {
	for _, v := range Variants() {
		t.Run(v, func(t *testing.T) {
			s := mountVariant(t, v)
			assert.NotEmpty(t, s.Updater().Objects())
			assert.Len(t, s.Buttons(), 2)
			assert.NotNil(t, s.Object("logo"))
			assert.NotPanics(t, func() { runTicks(s, 120) })
			assert.Equal(t, 0, s.Updater().Failures())
		})
	}
}

func TestMountFallsBackToConfigSize(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 1024, 768
	s, err := Mount(FixedContainer{}, cfg, WithInput(nil))
	require.NoError(t, err)
	w, h := s.Size()
	assert.Equal(t, 1024, w)
	assert.Equal(t, 768, h)
	assert.Equal(t, 1024.0/768.0, s.Camera().Aspect)
}

func TestResizeKeepsTransforms(t *testing.T) {
	s := mountVariant(t, VariantHero)
	runTicks(s, 10)

	before := map[uint32]Transform{}
	for _, o := range s.Updater().Objects() {
		before[o.ID] = o.Transform
	}

	s.Resize(1600, 900)
	assert.Equal(t, 1600.0/900.0, s.Camera().Aspect)
	for _, o := range s.Updater().Objects() {
		assert.Equal(t, before[o.ID], o.Transform, o.Name)
	}

	w, h := s.Layout(1600, 900)
	assert.Equal(t, 1600, w)
	assert.Equal(t, 900, h)
}

func TestLayoutResizesCamera(t *testing.T) {
	s := mountVariant(t, VariantOrbit)
	s.Layout(1280, 720)
	assert.Equal(t, 1280.0/720.0, s.Camera().Aspect)
}

func TestSplashClickSpawnsEffect(t *testing.T) {
	s := mountVariant(t, VariantSplash)
	require.True(t, s.Click(400, 300))
	require.Equal(t, 1, s.Effects().Len())

	e := s.Effects().Effects()[0]
	assert.InDelta(t, 0, e.Position.X, 1e-9)
	assert.InDelta(t, 0, e.Position.Y, 1e-9)
	assert.InDelta(t, 0, e.Position.Z, 1e-9)

	runTicks(s, TicksToExpire(DefaultEffectDecay))
	assert.Equal(t, 0, s.Effects().Len())
}

func TestSplashClickAboveHorizonMisses(t *testing.T) {
	s := mountVariant(t, VariantSplash)
	assert.False(t, s.Click(400, 0))
	assert.Equal(t, 0, s.Effects().Len())
}

func TestSplashClickOnButtonDoesNotSpawn(t *testing.T) {
	s := mountVariant(t, VariantSplash)
	clicked := false
	s.Buttons()[0].OnClick = func() { clicked = true }

	b := s.Buttons()[0].Bounds
	assert.True(t, s.Click(b.X+b.Width/2, b.Y+b.Height/2))
	assert.True(t, clicked)
	assert.Equal(t, 0, s.Effects().Len())
}

func TestHeroClickDoesNotSpawn(t *testing.T) {
	s := mountVariant(t, VariantHero)
	assert.False(t, s.Click(400, 300))
	assert.Equal(t, 0, s.Effects().Len())
}

func TestSplashClickFlood(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Variant = VariantSplash
	cfg.Effects.MaxEffects = 4
	s, err := Mount(FixedContainer{W: 800, H: 600}, cfg, WithInput(nil))
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		s.Click(400, 300)
	}
	assert.Equal(t, 4, s.Effects().Len())
	assert.Equal(t, 6, s.Effects().Dropped())
}

func TestPolledInput(t *testing.T) {
	in := &fakeInput{x: 800, y: 0}
	s := mountVariant(t, VariantSplash, WithInput(in))

	_ = s.Update()
	assert.Equal(t, PointerState{X: 1, Y: 1, PixelX: 800}, s.LastFrame().Pointer)

	in.wheel = -2
	_ = s.Update()
	assert.Equal(t, 80.0, s.ScrollOffset())

	in.wheel = 0
	in.x, in.y = 400, 300
	in.clicked = true
	_ = s.Update()
	assert.Equal(t, 1, s.Effects().Len())
}

func TestScrollIsClampedToPage(t *testing.T) {
	s := mountVariant(t, VariantHero)
	s.InjectScroll(1e6)
	_ = s.Update()
	assert.Equal(t, s.Config().ScrollLength, s.ScrollOffset())

	s.InjectScroll(-50)
	_ = s.Update()
	assert.Equal(t, 0.0, s.ScrollOffset())
}

func TestInjectedEventsOnePerTick(t *testing.T) {
	s := mountVariant(t, VariantSplash)
	s.InjectSweep(0, 0, 800, 600, 5)
	assert.Equal(t, 5, s.Pending())

	_ = s.Update()
	assert.Equal(t, 4, s.Pending())
	assert.Equal(t, -1.0, s.LastFrame().Pointer.X)

	runTicks(s, 4)
	assert.Equal(t, 0, s.Pending())
	assert.Equal(t, 1.0, s.LastFrame().Pointer.X)
	assert.Equal(t, -1.0, s.LastFrame().Pointer.Y)
}

func TestInjectClickSpawnsOnSecondTick(t *testing.T) {
	s := mountVariant(t, VariantSplash)
	s.InjectClick(400, 300)
	_ = s.Update()
	assert.Equal(t, 0, s.Effects().Len())
	_ = s.Update()
	assert.Equal(t, 1, s.Effects().Len())
}

func TestInjectResize(t *testing.T) {
	s := mountVariant(t, VariantOrbit)
	s.InjectResize(1600, 900)
	_ = s.Update()
	w, h := s.Size()
	assert.Equal(t, 1600, w)
	assert.Equal(t, 900, h)
}

func TestHoverReachesButtonsThroughScene(t *testing.T) {
	s := mountVariant(t, VariantHero)
	b := s.Buttons()[1]
	s.InjectPointer(b.Bounds.X+1, b.Bounds.Y+1)
	runTicks(s, 40)
	assert.True(t, b.Hovered())
	assert.InDelta(t, 1.0, b.Fill, 1e-6)
	assert.False(t, s.Buttons()[0].Hovered())
}

func TestLogoShrinksOnScroll(t *testing.T) {
	s := mountVariant(t, VariantHero)
	logo := s.Object("logo")
	require.NotNil(t, logo)

	s.InjectScroll(logoTrigger.End)
	_ = s.Update()
	assert.InDelta(t, 0.4, logo.Transform.Scale.X, 1e-6)
	assert.InDelta(t, 40, logo.Transform.Position.Y, 1e-4)

	s.InjectScroll(0)
	_ = s.Update()
	assert.InDelta(t, 1, logo.Transform.Scale.X, 1e-6)
}

func TestUnmount(t *testing.T) {
	s := mountVariant(t, VariantSplash)
	objs := append([]*Object(nil), s.Updater().Objects()...)
	s.Click(400, 300)
	s.InjectPointer(1, 1)

	s.Unmount()
	assert.False(t, s.Mounted())
	for _, o := range objs {
		assert.True(t, o.IsDisposed(), o.Name)
	}
	assert.Equal(t, 0, s.Effects().Len())
	assert.Equal(t, 0, s.Pending())

	assert.NoError(t, s.Update())
	assert.False(t, s.Click(400, 300))
	s.AddObject(NewWireObject("late", nil))
	assert.Nil(t, s.Object("late"))
	assert.NotPanics(t, s.Unmount)
}

func TestDisposedObjectLeavesScene(t *testing.T) {
	s := mountVariant(t, VariantHero)
	torus := s.Object("torus")
	require.NotNil(t, torus)
	n := len(s.Updater().Objects())

	torus.Dispose()
	_ = s.Update()
	assert.Nil(t, s.Object("torus"))
	assert.Len(t, s.Updater().Objects(), n-1)
}

func TestDebugLogging(t *testing.T) {
	core, logs := observerCore()
	s := mountVariant(t, VariantHero, WithLogger(zap.New(core)))
	s.SetDebugMode(true)
	_ = s.Update()
	assert.Equal(t, 1, logs.FilterMessage("frame").Len())
}
