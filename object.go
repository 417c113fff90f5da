package backdrop

// objectIDCounter is a plain counter; the driver runs on one goroutine.
var objectIDCounter uint32

func nextObjectID() uint32 {
	objectIDCounter++
	return objectIDCounter
}

// ObjectKind selects how the renderer draws an Object.
type ObjectKind uint8

const (
	KindWire    ObjectKind = iota // projected edges of a Geometry
	KindPoints                    // projected vertices of a Geometry
	KindOverlay                   // screen-space rectangle with a label (logo, headings)
)

// Object is one tracked element of the backdrop. A single flat struct is
// used for every kind so the per-frame loop never dispatches on an interface.
type Object struct {
	ID   uint32
	Name string
	Kind ObjectKind

	// Transform is mutated only by the updater and tweens.
	Transform Transform

	// World-space geometry (KindWire, KindPoints).
	Geometry *Geometry

	// Screen-space fields (KindOverlay). Transform.Position X/Y are pixels
	// and Transform.Scale multiplies Size.
	Size  Vec2
	Label string

	Color       Color
	StrokeWidth float32
	PointSize   float32

	// Behaviors run in order every tick.
	Behaviors []Behavior

	Visible  bool
	disposed bool
}

func objectDefaults(o *Object) {
	o.ID = nextObjectID()
	o.Transform = identityTransformState
	o.Color = ColorWhite
	o.StrokeWidth = 1
	o.PointSize = 1.5
	o.Visible = true
}

// NewWireObject creates an object drawn as the edges of g.
func NewWireObject(name string, g *Geometry) *Object {
	o := &Object{Name: name, Kind: KindWire, Geometry: g}
	objectDefaults(o)
	return o
}

// NewPointsObject creates an object drawn as the vertices of g.
func NewPointsObject(name string, g *Geometry) *Object {
	o := &Object{Name: name, Kind: KindPoints, Geometry: g}
	objectDefaults(o)
	return o
}

// NewOverlay creates a screen-space rectangle of the given pixel size
// centered on its position.
func NewOverlay(name, label string, w, h float64) *Object {
	o := &Object{Name: name, Kind: KindOverlay, Label: label, Size: Vec2{w, h}}
	objectDefaults(o)
	return o
}

// AddBehavior appends b to the object's behavior list and returns the object
// for chaining.
func (o *Object) AddBehavior(b ...Behavior) *Object {
	o.Behaviors = append(o.Behaviors, b...)
	return o
}

// Dispose marks the object absent. The updater and renderer skip disposed
// objects; the scene drops them on the next tick.
func (o *Object) Dispose() {
	if o.disposed {
		return
	}
	o.disposed = true
	o.ID = 0
	o.Behaviors = nil
	o.Geometry = nil
}

// IsDisposed reports whether Dispose has been called.
func (o *Object) IsDisposed() bool {
	return o.disposed
}

// present reports whether the object can take part in a tick.
func (o *Object) present() bool {
	return o != nil && !o.disposed
}
