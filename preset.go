package backdrop

import (
	"errors"
	"math"
	"slices"

	"github.com/tanema/gween/ease"
)

// Page variants. Each builds the same driver with different objects and
// parameters.
const (
	VariantHero   = "hero"   // torus and starfield, pointer-parallax camera
	VariantOrbit  = "orbit"  // breathing icosahedron, scroll dolly camera
	VariantSplash = "splash" // ground grid, click-spawned rings
)

// ErrUnknownVariant is returned for a variant name with no builder.
var ErrUnknownVariant = errors.New("unknown variant")

type variantBuilder func(s *Scene, cfg Config)

var variants = map[string]variantBuilder{
	VariantHero:   buildHero,
	VariantOrbit:  buildOrbit,
	VariantSplash: buildSplash,
}

// Variants returns the registered variant names in sorted order.
func Variants() []string {
	names := make([]string, 0, len(variants))
	for name := range variants {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

var (
	colorTorus    = Color{R: 0.82, G: 1, B: 0, A: 0.9}
	colorStars    = Color{R: 1, G: 1, B: 1, A: 0.7}
	colorIco      = Color{R: 0.55, G: 0.75, B: 1, A: 1}
	colorGrid     = Color{R: 1, G: 1, B: 1, A: 0.15}
	colorLogo     = ColorWhite
	logoTrigger   = Trigger{Start: 0, End: 400}
	buttonSize    = Vec2{X: 160, Y: 44}
	buttonSpacing = 32.0
)

// addPageChrome adds the logo that shrinks into the corner on scroll and
// the two call-to-action buttons shared by every variant.
func addPageChrome(s *Scene, cfg Config) {
	w, h := float64(s.width), float64(s.height)

	logo := NewOverlay("logo", cfg.Title, 320, 72)
	logo.Color = colorLogo
	logo.Transform.Position = Vec3{X: w / 2, Y: h * 0.35}
	s.AddObject(logo)
	s.updater.AddTween(NewScrollTween(logo, ChannelScale, 0.4, 1, ease.InOutQuad).ScrubBy(logoTrigger))
	s.updater.AddTween(NewScrollTween(logo, ChannelPositionY, 40, 1, ease.InOutQuad).ScrubBy(logoTrigger))

	top := h*0.65 - buttonSize.Y/2
	left := w/2 - buttonSize.X - buttonSpacing/2
	s.AddButton(NewButton("WORK", Rect{X: left, Y: top, Width: buttonSize.X, Height: buttonSize.Y}))
	s.AddButton(NewButton("CONTACT", Rect{X: left + buttonSize.X + buttonSpacing, Y: top, Width: buttonSize.X, Height: buttonSize.Y}))
}

func buildHero(s *Scene, cfg Config) {
	torus := NewWireObject("torus", NewTorusGeometry(1.4, 0.45, 16, 48))
	torus.Color = colorTorus
	torus.AddBehavior(
		Spin{Channel: ChannelRotationX, Step: 0.003, RealTime: cfg.RealTime},
		Spin{Channel: ChannelRotationY, Step: 0.005, RealTime: cfg.RealTime},
		Follow{Channel: ChannelRotationZ, Target: PointerX(-0.3), Factor: cfg.Smoothing},
		Breathe{Channel: ChannelScale, Base: 1, Frequency: 1.5, Amplitude: 0.04},
		ScrollFade{From: 0, To: 900, Start: 1, End: 0.15},
	)

	stars := NewPointsObject("stars", NewStarfieldGeometry(s.rng, 600, 20))
	stars.Color = colorStars
	stars.PointSize = 1
	stars.AddBehavior(
		Spin{Channel: ChannelRotationY, Step: 0.0005, RealTime: cfg.RealTime},
		Follow{Channel: ChannelPositionY, Target: ScrollTarget(0, 0.004), Factor: cfg.Smoothing},
	)

	s.AddObject(stars, torus)
	s.camera.SetPosition(Vec3{0, 0, 5})
	s.camera.LookAt(Vec3{})
	s.camera.Follow(PointerParallax(Vec3{0, 0, 5}, Vec2{X: 0.8, Y: 0.5}), cfg.Smoothing)
	addPageChrome(s, cfg)
}

func buildOrbit(s *Scene, cfg Config) {
	ico := NewWireObject("icosahedron", NewIcosahedronGeometry(1.5))
	ico.Color = colorIco
	ico.StrokeWidth = 1.5
	ico.AddBehavior(
		Spin{Channel: ChannelRotationY, Step: 0.004, RealTime: cfg.RealTime},
		Breathe{Channel: ChannelScale, Base: 1, Frequency: 0.8, Amplitude: 0.1},
		Breathe{Channel: ChannelPositionY, Base: 0, Frequency: 0.5, Amplitude: 0.2},
		Follow{Channel: ChannelRotationX, Target: PointerY(0.4), Factor: cfg.Smoothing},
	)
	s.AddObject(ico)

	// Three tilted rings orbiting the icosahedron at staggered speeds.
	for i := 0; i < 3; i++ {
		ring := NewWireObject("ring", NewRingGeometry(2.4+0.4*float64(i), 64))
		ring.Color = colorIco.WithAlpha(0.5)
		ring.Transform.Rotation = Vec3{X: math.Pi / 6 * float64(i+1)}
		ring.AddBehavior(
			Spin{Channel: ChannelRotationY, Step: 0.002 * float64(i+1), RealTime: cfg.RealTime},
			ScrollFade{From: 200 * float64(i), To: 200*float64(i) + 600, Start: 1, End: 0},
		)
		s.AddObject(ring)
	}

	s.camera.SetPosition(Vec3{0, 0.5, 6})
	s.camera.LookAt(Vec3{})
	s.camera.Follow(ScrollDolly(Vec3{0, 0.5, 6}, 0.002), cfg.Smoothing)
	addPageChrome(s, cfg)
}

func buildSplash(s *Scene, cfg Config) {
	grid := NewWireObject("ground", NewGridGeometry(20, 20))
	grid.Color = colorGrid
	grid.AddBehavior(
		Follow{Channel: ChannelRotationY, Target: PointerX(0.15), Factor: cfg.Smoothing},
	)
	s.AddObject(grid)

	s.camera.SetPosition(Vec3{0, 3, 6})
	s.camera.LookAt(Vec3{})
	s.effectsEnabled = true
	addPageChrome(s, cfg)
}
