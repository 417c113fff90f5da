package backdrop

import (
	"math/rand/v2"
	"time"

	"go.uber.org/zap"
)

// Container is the surface a backdrop is mounted into. Size reports its
// current pixel dimensions.
type Container interface {
	Size() (w, h int)
}

// FixedContainer is a Container of constant size. Windows start at this
// size; later window resizes reach the scene through Layout.
type FixedContainer struct {
	W, H int
}

// Size returns the fixed dimensions.
func (c FixedContainer) Size() (int, int) { return c.W, c.H }

// Option configures a Scene at mount time.
type Option func(*Scene)

// WithLogger sets the scene's logger. The default discards everything.
func WithLogger(log *zap.Logger) Option {
	return func(s *Scene) {
		if log != nil {
			s.log = log
		}
	}
}

// WithRand sets the random source used for starfields and effect growth.
// The default is seeded from Config.Seed.
func WithRand(rng *rand.Rand) Option {
	return func(s *Scene) { s.rng = rng }
}

// WithClock sets the time source passed to the updater. It must return the
// time elapsed since mount. The default measures wall-clock time.
func WithClock(clock func() time.Duration) Option {
	return func(s *Scene) { s.clock = clock }
}

// WithInput sets the input source polled once per tick. Pass nil to drive
// the scene only through injected events.
func WithInput(in InputSource) Option {
	return func(s *Scene) {
		s.input = in
		s.inputSet = true
	}
}

// lifecyclePhase tracks a Scene from Mount to Unmount.
type lifecyclePhase uint8

const (
	phaseBuilding lifecyclePhase = iota // Mount is assembling the variant
	phaseMounted
	phaseUnmounted
	phaseDisabled // mounted without a container
)

// Scene is the lifecycle-owned context of one mounted backdrop: sampler,
// updater, camera, effect pool and overlays. A Scene mounted without a
// container is disabled and every method is a no-op.
type Scene struct {
	cfg      Config
	log      *zap.Logger
	rng      *rand.Rand
	clock    func() time.Duration
	phase    lifecyclePhase

	sampler Sampler
	updater *Updater
	camera  *Camera
	effects *EffectPool
	buttons []*Button

	// effectsEnabled routes clicks that miss every button to the ground
	// raycast and the effect pool.
	effectsEnabled bool

	width, height int

	// Input state
	input       InputSource
	inputSet    bool
	scroll      float64
	lastCursorX int
	lastCursorY int
	injectQueue []syntheticEvent

	// Render state
	ClearColor Color
	commands   []drawCommand
	projBuf    []projected
	fps        *fpsOverlay
	lastFrame  Frame

	// Scripted runs
	testRunner      *TestRunner
	ScreenshotDir   string
	screenshotQueue []string

	debug bool
}

// Mount builds the configured variant into container. A nil container
// disables the backdrop: the returned Scene is non-nil, reports Disabled,
// and ignores every call. Errors are returned only for invalid
// configuration.
func Mount(container Container, cfg Config, opts ...Option) (*Scene, error) {
	s := &Scene{
		cfg:           cfg,
		log:           zap.NewNop(),
		ClearColor:    Color{R: 0x11 / 255.0, G: 0x11 / 255.0, B: 0x12 / 255.0, A: 1},
		ScreenshotDir: cfg.ScreenshotDir,
		debug:         cfg.Debug,
	}
	for _, opt := range opts {
		opt(s)
	}

	if container == nil {
		s.phase = phaseDisabled
		s.log.Info("no container; backdrop disabled")
		return s, nil
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if s.rng == nil {
		s.rng = rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15))
	}
	if s.clock == nil {
		start := time.Now()
		s.clock = func() time.Duration { return time.Since(start) }
	}
	if !s.inputSet {
		s.input = ebitenInput{}
	}

	w, h := container.Size()
	if w <= 0 || h <= 0 {
		w, h = cfg.Width, cfg.Height
	}
	s.width, s.height = w, h
	s.camera = newCamera(Rect{Width: float64(w), Height: float64(h)})
	s.effects = NewEffectPool(cfg.Effects, s.rng)
	s.updater = NewUpdater(&s.sampler, s.camera, s.effects, s.log)
	if cfg.ShowFPS {
		s.fps = &fpsOverlay{}
	}

	build := variants[cfg.Variant]
	build(s, cfg)

	s.phase = phaseMounted
	s.log.Info("backdrop mounted",
		zap.String("variant", cfg.Variant),
		zap.Int("width", w),
		zap.Int("height", h),
		zap.Int("objects", len(s.updater.Objects())))
	return s, nil
}

// Disabled reports whether the scene was mounted without a container.
func (s *Scene) Disabled() bool {
	return s.phase == phaseDisabled
}

// Mounted reports whether the scene is live (mounted and not unmounted).
func (s *Scene) Mounted() bool {
	return s.phase == phaseMounted
}

// Unmount tears the scene down. Objects are disposed, effects cleared and
// queued input dropped. Further calls are no-ops.
func (s *Scene) Unmount() {
	if s.phase != phaseMounted {
		return
	}
	s.phase = phaseUnmounted
	for _, o := range s.updater.Objects() {
		if o != nil {
			o.Dispose()
		}
	}
	s.effects.Reset()
	s.sampler.Reset()
	s.injectQueue = nil
	s.buttons = nil
	s.log.Info("backdrop unmounted")
}

// Update runs one tick: input, behaviors, camera, effects, buttons.
// It satisfies ebiten.Game and always returns nil.
func (s *Scene) Update() error {
	if s.phase != phaseMounted {
		return nil
	}
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	if s.testRunner != nil {
		s.testRunner.step(s)
	}
	s.processInput()

	f := s.updater.Tick(s.clock())
	for _, b := range s.buttons {
		b.update(f)
	}
	if s.fps != nil {
		s.fps.update(f.DT)
	}
	s.lastFrame = f

	if s.debug {
		s.debugLog(debugStats{
			updateTime:  time.Since(t0),
			tick:        f.Tick,
			objectCount: len(s.updater.Objects()),
			effectCount: s.effects.Len(),
		})
	}
	return nil
}

// Layout satisfies ebiten.Game. A change of outside size resizes the
// camera before the next tick.
func (s *Scene) Layout(outsideWidth, outsideHeight int) (int, int) {
	if s.phase == phaseMounted && (outsideWidth != s.width || outsideHeight != s.height) {
		s.Resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

// Resize updates the camera aspect ratio and viewport. Object transforms
// are untouched. Non-positive sizes are ignored.
func (s *Scene) Resize(w, h int) {
	if s.phase != phaseMounted || w <= 0 || h <= 0 {
		return
	}
	s.width, s.height = w, h
	s.camera.Resize(float64(w), float64(h))
	s.log.Debug("resized", zap.Int("width", w), zap.Int("height", h))
}

// Size returns the current viewport size in pixels.
func (s *Scene) Size() (w, h int) {
	return s.width, s.height
}

// Click handles a click at a pixel position: a button under the pointer
// takes it; otherwise, if the variant has effects, the click is cast onto
// the ground plane and spawns an effect there. It reports whether anything
// consumed the click.
func (s *Scene) Click(xPixel, yPixel float64) bool {
	if s.phase != phaseMounted {
		return false
	}
	for _, b := range s.buttons {
		if b.click(xPixel, yPixel) {
			return true
		}
	}
	if !s.effectsEnabled {
		return false
	}
	nx, ny := NormalizePointer(xPixel, yPixel, float64(s.width), float64(s.height))
	hit, ok := PickGround(s.camera, nx, ny)
	if !ok {
		return false
	}
	return s.effects.Spawn(hit)
}

// AddObject tracks objects for updating and drawing.
func (s *Scene) AddObject(objs ...*Object) {
	if !s.live() {
		return
	}
	s.updater.Track(objs...)
}

// AddButton adds a hover button drawn above the 3D layer.
func (s *Scene) AddButton(b *Button) {
	if !s.live() {
		return
	}
	s.buttons = append(s.buttons, b)
}

// live reports whether objects may be added: while Mount builds the
// variant and until Unmount.
func (s *Scene) live() bool {
	return s.phase == phaseBuilding || s.phase == phaseMounted
}

// Sampler returns the scene's pointer/scroll sampler.
func (s *Scene) Sampler() *Sampler { return &s.sampler }

// Updater returns the per-frame driver, or nil when disabled.
func (s *Scene) Updater() *Updater { return s.updater }

// Camera returns the scene camera, or nil when disabled.
func (s *Scene) Camera() *Camera { return s.camera }

// Effects returns the effect pool, or nil when disabled.
func (s *Scene) Effects() *EffectPool { return s.effects }

// Buttons returns the scene's buttons. The returned slice MUST NOT be mutated.
func (s *Scene) Buttons() []*Button { return s.buttons }

// LastFrame returns the snapshot used by the most recent tick.
func (s *Scene) LastFrame() Frame { return s.lastFrame }

// Object returns the first tracked object with the given name.
func (s *Scene) Object(name string) *Object {
	if s.updater == nil {
		return nil
	}
	for _, o := range s.updater.Objects() {
		if o.present() && o.Name == name {
			return o
		}
	}
	return nil
}

// SetDebugMode enables or disables per-tick timing logs at debug level.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
}

// Config returns the configuration the scene was mounted with.
func (s *Scene) Config() Config {
	return s.cfg
}
