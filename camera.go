package backdrop

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// scrollAnim holds active scroll-to tweens for the camera position.
type scrollAnim struct {
	tweens [3]*gween.Tween
	done   [3]bool
}

// Camera is a perspective camera looking from Position at Target.
type Camera struct {
	Position Vec3
	Target   Vec3
	Up       Vec3

	// FOV is the vertical field of view in radians.
	FOV float64
	// Aspect is viewport width divided by height.
	Aspect    float64
	Near, Far float64

	// Viewport is the screen-space rectangle this camera renders into.
	Viewport Rect

	followFn   func(Frame) Vec3
	followLerp float64

	scrollTween *scrollAnim

	// Cached view basis, rebuilt when dirty.
	right, up, forward Vec3
	tanHalfFOV         float64
	dirty              bool
}

// newCamera creates a camera 5 units in front of the origin with a 75°
// field of view, sized to the viewport.
func newCamera(viewport Rect) *Camera {
	c := &Camera{
		Position: Vec3{0, 0, 5},
		Up:       Vec3{0, 1, 0},
		FOV:      75 * math.Pi / 180,
		Aspect:   1,
		Near:     0.1,
		Far:      1000,
		dirty:    true,
	}
	c.Resize(viewport.Width, viewport.Height)
	c.Viewport = viewport
	return c
}

// Resize updates the viewport and aspect ratio. Zero or negative sizes are
// ignored. Object transforms are not affected.
func (c *Camera) Resize(w, h float64) {
	if w <= 0 || h <= 0 {
		return
	}
	c.Viewport = Rect{Width: w, Height: h}
	c.Aspect = w / h
	c.dirty = true
}

// LookAt points the camera at target.
func (c *Camera) LookAt(target Vec3) {
	c.Target = target
	c.dirty = true
}

// SetPosition moves the camera without animation.
func (c *Camera) SetPosition(p Vec3) {
	c.Position = p
	c.dirty = true
}

// Follow makes the camera pursue a target computed from each tick's
// snapshot. A lerp of 1.0 snaps immediately; lower values give smoother
// following.
func (c *Camera) Follow(fn func(Frame) Vec3, lerp float64) {
	c.followFn = fn
	c.followLerp = ClampFactor(lerp)
}

// Unfollow stops pursuing.
func (c *Camera) Unfollow() {
	c.followFn = nil
}

// ScrollTo animates the camera position to p over duration seconds.
func (c *Camera) ScrollTo(p Vec3, duration float32, easeFn ease.TweenFunc) {
	c.scrollTween = &scrollAnim{tweens: [3]*gween.Tween{
		gween.New(float32(c.Position.X), float32(p.X), duration, easeFn),
		gween.New(float32(c.Position.Y), float32(p.Y), duration, easeFn),
		gween.New(float32(c.Position.Z), float32(p.Z), duration, easeFn),
	}}
}

// Scrolling reports whether a ScrollTo animation is in progress.
func (c *Camera) Scrolling() bool {
	return c.scrollTween != nil
}

// update advances follow and scroll animation. Called once per tick.
func (c *Camera) update(f Frame) {
	prev := c.Position

	if c.followFn != nil {
		c.Position = DampVec3(c.Position, c.followFn(f), c.followLerp)
	}

	if c.scrollTween != nil {
		fields := [3]*float64{&c.Position.X, &c.Position.Y, &c.Position.Z}
		allDone := true
		for i, tw := range c.scrollTween.tweens {
			if c.scrollTween.done[i] {
				continue
			}
			val, done := tw.Update(float32(f.DT))
			*fields[i] = float64(val)
			c.scrollTween.done[i] = done
			if !done {
				allDone = false
			}
		}
		if allDone {
			c.scrollTween = nil
		}
	}

	if c.Position != prev {
		c.dirty = true
	}
}

// computeView rebuilds the view basis if dirty.
func (c *Camera) computeView() {
	if !c.dirty {
		return
	}
	c.dirty = false

	c.forward = c.Target.Sub(c.Position).Normalize()
	up := c.Up
	if up == (Vec3{}) {
		up = Vec3{0, 1, 0}
	}
	c.right = c.forward.Cross(up).Normalize()
	if c.right == (Vec3{}) {
		// Looking straight along Up; pick any perpendicular.
		c.right = Vec3{1, 0, 0}
	}
	c.up = c.right.Cross(c.forward)
	c.tanHalfFOV = math.Tan(c.FOV / 2)
}

// Project converts a world-space point to screen pixels. depth is the
// distance along the view direction. ok is false for points behind the near
// plane or beyond the far plane.
func (c *Camera) Project(p Vec3) (sx, sy, depth float64, ok bool) {
	c.computeView()
	d := p.Sub(c.Position)
	depth = d.Dot(c.forward)
	if depth < c.Near || depth > c.Far {
		return 0, 0, depth, false
	}
	ndcX := d.Dot(c.right) / (depth * c.tanHalfFOV * c.Aspect)
	ndcY := d.Dot(c.up) / (depth * c.tanHalfFOV)
	sx, sy = c.NDCToScreen(ndcX, ndcY)
	return sx, sy, depth, true
}

// NDCToScreen maps normalized device coordinates to viewport pixels.
func (c *Camera) NDCToScreen(x, y float64) (sx, sy float64) {
	vp := c.Viewport
	return vp.X + (x+1)/2*vp.Width, vp.Y + (1-y)/2*vp.Height
}

// Ray returns the world-space ray through the given normalized device
// coordinates.
func (c *Camera) Ray(ndcX, ndcY float64) Ray {
	c.computeView()
	dir := c.forward.
		Add(c.right.Scale(ndcX * c.tanHalfFOV * c.Aspect)).
		Add(c.up.Scale(ndcY * c.tanHalfFOV))
	return Ray{Origin: c.Position, Dir: dir.Normalize()}
}

// MarkDirty forces the view basis to be rebuilt. Call it after writing
// Position, Target, Up or FOV directly.
func (c *Camera) MarkDirty() {
	c.dirty = true
}

// PointerParallax returns a follow target that offsets base by the pointer
// position scaled by strength, the "look around" drift of the hero pages.
func PointerParallax(base Vec3, strength Vec2) func(Frame) Vec3 {
	return func(f Frame) Vec3 {
		return Vec3{
			X: base.X + f.Pointer.X*strength.X,
			Y: base.Y + f.Pointer.Y*strength.Y,
			Z: base.Z,
		}
	}
}

// ScrollDolly returns a follow target that pulls the camera along Z as the
// page scrolls, perPixel world units per scrolled pixel.
func ScrollDolly(base Vec3, perPixel float64) func(Frame) Vec3 {
	return func(f Frame) Vec3 {
		return Vec3{X: base.X, Y: base.Y, Z: base.Z - f.Pointer.Scroll*perPixel}
	}
}
