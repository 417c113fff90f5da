package backdrop

import "math"

// Ray is a half-line from Origin along the unit direction Dir.
type Ray struct {
	Origin Vec3
	Dir    Vec3
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Dir.Scale(t))
}

// IntersectPlane returns where the ray crosses the plane through point with
// the given normal. ok is false when the ray is parallel to the plane or the
// plane is behind the origin.
func (r Ray) IntersectPlane(point, normal Vec3) (hit Vec3, ok bool) {
	denom := r.Dir.Dot(normal)
	if math.Abs(denom) < 1e-9 {
		return Vec3{}, false
	}
	t := point.Sub(r.Origin).Dot(normal) / denom
	if t < 0 {
		return Vec3{}, false
	}
	return r.At(t), true
}

// GroundPlane is the horizontal plane y = 0 that click effects land on.
var GroundPlane = struct{ Point, Normal Vec3 }{Normal: Vec3{0, 1, 0}}

// PickGround casts a ray from the camera through the normalized device
// coordinates and returns the ground hit.
func PickGround(cam *Camera, ndcX, ndcY float64) (Vec3, bool) {
	return cam.Ray(ndcX, ndcY).IntersectPlane(GroundPlane.Point, GroundPlane.Normal)
}
