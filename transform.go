package backdrop

import "math"

// Transform is the per-object state the updater owns and the renderer reads.
type Transform struct {
	Position Vec3
	Rotation Vec3 // Euler angles in radians, applied X then Y then Z
	Scale    Vec3

	// Opacity is only meaningful when HasOpacity is set; otherwise the
	// object renders fully opaque.
	Opacity    float64
	HasOpacity bool
}

// identityTransformState is the rest pose: origin, no rotation, unit scale.
var identityTransformState = Transform{Scale: Vec3{1, 1, 1}, Opacity: 1}

// Alpha returns the effective opacity of the transform.
func (t *Transform) Alpha() float64 {
	if !t.HasOpacity {
		return 1
	}
	return clamp01(t.Opacity)
}

// Channel names one scalar field of a Transform that behaviors and tweens
// can drive.
type Channel uint8

const (
	ChannelPositionX Channel = iota
	ChannelPositionY
	ChannelPositionZ
	ChannelRotationX
	ChannelRotationY
	ChannelRotationZ
	ChannelScale // uniform: writes all three scale components, reads X
	ChannelOpacity
)

var channelNames = [...]string{
	"position.x", "position.y", "position.z",
	"rotation.x", "rotation.y", "rotation.z",
	"scale", "opacity",
}

func (c Channel) String() string {
	if int(c) < len(channelNames) {
		return channelNames[c]
	}
	return "unknown"
}

// Get reads the channel's current value.
func (t *Transform) Get(c Channel) float64 {
	switch c {
	case ChannelPositionX:
		return t.Position.X
	case ChannelPositionY:
		return t.Position.Y
	case ChannelPositionZ:
		return t.Position.Z
	case ChannelRotationX:
		return t.Rotation.X
	case ChannelRotationY:
		return t.Rotation.Y
	case ChannelRotationZ:
		return t.Rotation.Z
	case ChannelScale:
		return t.Scale.X
	case ChannelOpacity:
		if !t.HasOpacity {
			return 1
		}
		return t.Opacity
	}
	return 0
}

// Set writes v to the channel. Writing opacity enables HasOpacity.
func (t *Transform) Set(c Channel, v float64) {
	switch c {
	case ChannelPositionX:
		t.Position.X = v
	case ChannelPositionY:
		t.Position.Y = v
	case ChannelPositionZ:
		t.Position.Z = v
	case ChannelRotationX:
		t.Rotation.X = v
	case ChannelRotationY:
		t.Rotation.Y = v
	case ChannelRotationZ:
		t.Rotation.Z = v
	case ChannelScale:
		t.Scale = Vec3{v, v, v}
	case ChannelOpacity:
		t.Opacity = v
		t.HasOpacity = true
	}
}

// mat3 is a row-major 3x3 matrix.
type mat3 [9]float64

// rotationMatrix composes Rx, then Ry, then Rz: R = Rz * Ry * Rx.
func rotationMatrix(r Vec3) mat3 {
	sx, cx := math.Sincos(r.X)
	sy, cy := math.Sincos(r.Y)
	sz, cz := math.Sincos(r.Z)

	rx := mat3{1, 0, 0, 0, cx, -sx, 0, sx, cx}
	ry := mat3{cy, 0, sy, 0, 1, 0, -sy, 0, cy}
	rz := mat3{cz, -sz, 0, sz, cz, 0, 0, 0, 1}
	return multiplyMat3(rz, multiplyMat3(ry, rx))
}

// multiplyMat3 returns a * b.
func multiplyMat3(a, b mat3) mat3 {
	var m mat3
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			m[row*3+col] = a[row*3]*b[col] + a[row*3+1]*b[3+col] + a[row*3+2]*b[6+col]
		}
	}
	return m
}

// apply multiplies the matrix by a column vector.
func (m mat3) apply(v Vec3) Vec3 {
	return Vec3{
		m[0]*v.X + m[1]*v.Y + m[2]*v.Z,
		m[3]*v.X + m[4]*v.Y + m[5]*v.Z,
		m[6]*v.X + m[7]*v.Y + m[8]*v.Z,
	}
}

// modelMatrix is a cached Scale -> Rotate -> Translate composition for one
// transform, reused across every vertex of an object in a frame.
type modelMatrix struct {
	rot   mat3
	scale Vec3
	pos   Vec3
}

func newModelMatrix(t *Transform) modelMatrix {
	return modelMatrix{rot: rotationMatrix(t.Rotation), scale: t.Scale, pos: t.Position}
}

// toWorld transforms a model-space vertex into world space.
func (m modelMatrix) toWorld(v Vec3) Vec3 {
	v = Vec3{v.X * m.scale.X, v.Y * m.scale.Y, v.Z * m.scale.Z}
	return m.rot.apply(v).Add(m.pos)
}
