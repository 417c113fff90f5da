package backdrop

import (
	"cmp"
	"math"
	"slices"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

const (
	// effectRingRadius is the world-space radius of an effect at scale 1.
	effectRingRadius   = 0.1
	effectRingSegments = 32
	effectStrokeWidth  = 1.5
)

// labelFace renders overlay and button labels.
var labelFace = text.NewGoXFace(basicfont.Face7x13)

// commandType identifies the kind of draw command.
type commandType uint8

const (
	commandLine  commandType = iota // stroked segment from (x0,y0) to (x1,y1)
	commandPoint                    // filled dot at (x0,y0) with radius width
)

// drawCommand is one projected primitive of the 3D layer, emitted during
// traversal and sorted far to near before submission.
type drawCommand struct {
	typ            commandType
	x0, y0, x1, y1 float32
	width          float32
	depth          float64
	color          Color
}

// projected is a vertex after camera projection.
type projected struct {
	x, y, depth float64
	ok          bool
}

// projectVertices appends the screen projection of every model-space vertex.
func projectVertices(buf []projected, cam *Camera, verts []Vec3, m modelMatrix) []projected {
	for _, v := range verts {
		x, y, d, ok := cam.Project(m.toWorld(v))
		buf = append(buf, projected{x, y, d, ok})
	}
	return buf
}

// buildCommands projects every visible object and live effect into the
// command buffer, sorted back to front.
func (s *Scene) buildCommands() []drawCommand {
	s.commands = s.commands[:0]

	for _, o := range s.updater.Objects() {
		if !o.present() || !o.Visible || o.Kind == KindOverlay || o.Geometry == nil {
			continue
		}
		alpha := o.Transform.Alpha()
		if alpha <= 0 {
			continue
		}
		clr := o.Color.WithAlpha(alpha)
		s.projBuf = projectVertices(s.projBuf[:0], s.camera, o.Geometry.Vertices, newModelMatrix(&o.Transform))

		switch o.Kind {
		case KindWire:
			for _, e := range o.Geometry.Edges {
				if int(e[0]) >= len(s.projBuf) || int(e[1]) >= len(s.projBuf) {
					continue
				}
				a, b := s.projBuf[e[0]], s.projBuf[e[1]]
				if !a.ok || !b.ok {
					continue
				}
				s.commands = append(s.commands, lineCommand(a, b, o.StrokeWidth, clr))
			}
		case KindPoints:
			for _, p := range s.projBuf {
				if !p.ok {
					continue
				}
				s.commands = append(s.commands, drawCommand{
					typ:   commandPoint,
					x0:    float32(p.x),
					y0:    float32(p.y),
					width: o.PointSize,
					depth: p.depth,
					color: clr,
				})
			}
		}
	}

	for i := range s.effects.Effects() {
		s.emitEffect(&s.effects.Effects()[i])
	}

	// Painter's order: farthest first. Stable so equal depths keep
	// traversal order.
	slices.SortStableFunc(s.commands, func(a, b drawCommand) int {
		return cmp.Compare(b.depth, a.depth)
	})
	return s.commands
}

// emitEffect projects an effect as a ring on the ground plane.
func (s *Scene) emitEffect(e *Effect) {
	if !e.Active() {
		return
	}
	clr := Accent.WithAlpha(clamp01(e.Opacity))
	r := effectRingRadius * e.Scale
	var prev projected
	for i := 0; i <= effectRingSegments; i++ {
		a := 2 * math.Pi * float64(i) / effectRingSegments
		p := e.Position.Add(Vec3{X: math.Cos(a) * r, Z: math.Sin(a) * r})
		x, y, d, ok := s.camera.Project(p)
		cur := projected{x, y, d, ok}
		if i > 0 && prev.ok && cur.ok {
			s.commands = append(s.commands, lineCommand(prev, cur, effectStrokeWidth, clr))
		}
		prev = cur
	}
}

func lineCommand(a, b projected, width float32, clr Color) drawCommand {
	return drawCommand{
		typ:   commandLine,
		x0:    float32(a.x),
		y0:    float32(a.y),
		x1:    float32(b.x),
		y1:    float32(b.y),
		width: width,
		depth: (a.depth + b.depth) / 2,
		color: clr,
	}
}

// Draw renders the 3D layer, overlays, buttons and the FPS widget. It
// satisfies ebiten.Game.
func (s *Scene) Draw(screen *ebiten.Image) {
	if s.phase != phaseMounted {
		return
	}
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	screen.Fill(s.ClearColor.toRGBA())
	cmds := s.buildCommands()
	for i := range cmds {
		submitCommand(screen, &cmds[i])
	}
	for _, o := range s.updater.Objects() {
		if o.present() && o.Visible && o.Kind == KindOverlay {
			drawOverlay(screen, o)
		}
	}
	for _, b := range s.buttons {
		drawButton(screen, b)
	}
	if s.fps != nil {
		s.fps.draw(screen, s.effects.Len())
	}
	s.flushScreenshots(screen)

	if s.debug {
		s.debugLog(debugStats{
			drawTime:     time.Since(t0),
			tick:         s.lastFrame.Tick,
			commandCount: len(cmds),
		})
	}
}

func submitCommand(screen *ebiten.Image, cmd *drawCommand) {
	clr := cmd.color.toRGBA()
	switch cmd.typ {
	case commandLine:
		vector.StrokeLine(screen, cmd.x0, cmd.y0, cmd.x1, cmd.y1, cmd.width, clr, true)
	case commandPoint:
		vector.DrawFilledCircle(screen, cmd.x0, cmd.y0, cmd.width, clr, true)
	}
}

// overlayRect returns the screen rectangle of an overlay: Size scaled by
// Transform.Scale and centered on Transform.Position.
func overlayRect(o *Object) Rect {
	w := o.Size.X * o.Transform.Scale.X
	h := o.Size.Y * o.Transform.Scale.X
	return Rect{
		X:      o.Transform.Position.X - w/2,
		Y:      o.Transform.Position.Y - h/2,
		Width:  w,
		Height: h,
	}
}

func drawOverlay(screen *ebiten.Image, o *Object) {
	alpha := o.Transform.Alpha()
	if alpha <= 0 {
		return
	}
	r := overlayRect(o)
	clr := o.Color.WithAlpha(alpha).toRGBA()
	vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), o.StrokeWidth, clr, true)
	drawLabel(screen, o.Label, r, o.Transform.Scale.X, o.Color.WithAlpha(alpha))
}

func drawButton(screen *ebiten.Image, b *Button) {
	r := b.Bounds
	if b.Fill > 0 {
		fillH := r.Height * b.Fill
		vector.DrawFilledRect(screen, float32(r.X), float32(r.Y+r.Height-fillH),
			float32(r.Width), float32(fillH), Accent.toRGBA(), true)
	}
	vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height),
		1, b.BorderColor().toRGBA(), true)
	drawLabel(screen, b.Label, r, 1, b.LabelColor())
}

// drawLabel centers s inside r at the given scale.
func drawLabel(screen *ebiten.Image, s string, r Rect, scale float64, clr Color) {
	if s == "" || scale <= 0 {
		return
	}
	tw, th := text.Measure(s, labelFace, 0)
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(r.X+(r.Width-tw*scale)/2, r.Y+(r.Height-th*scale)/2)
	op.ColorScale.ScaleWithColor(clr.toRGBA())
	text.Draw(screen, s, labelFace, op)
}
