package geom

import "math"

// Vec3 is a 3D vector.
type Vec3 [3]float64

// Point3D is a respondent position. The engine computes X/Y/Z; ID belongs to
// the caller and is carried through untouched.
type Point3D struct {
	ID string  `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
	Z  float64 `json:"z"`
}

// Vec returns the coordinates of p as a Vec3.
func (p Point3D) Vec() Vec3 { return Vec3{p.X, p.Y, p.Z} }

// Add returns a + b.
func (a Vec3) Add(b Vec3) Vec3 { return Vec3{a[0] + b[0], a[1] + b[1], a[2] + b[2]} }

// Sub returns a - b.
func (a Vec3) Sub(b Vec3) Vec3 { return Vec3{a[0] - b[0], a[1] - b[1], a[2] - b[2]} }

// Scale returns s·a.
func (a Vec3) Scale(s float64) Vec3 { return Vec3{a[0] * s, a[1] * s, a[2] * s} }

// Dot returns a·b.
func (a Vec3) Dot(b Vec3) float64 { return a[0]*b[0] + a[1]*b[1] + a[2]*b[2] }

// Cross returns a×b.
func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

// Norm returns the Euclidean length of a.
func (a Vec3) Norm() float64 { return math.Sqrt(a.Dot(a)) }

// Normalize returns a/‖a‖; the zero vector is returned unchanged.
func (a Vec3) Normalize() Vec3 {
	n := a.Norm()
	if n == 0 {
		return a
	}

	return a.Scale(1 / n)
}

// Dist2 returns the squared distance between a and b.
func Dist2(a, b Vec3) float64 {
	dx, dy, dz := a[0]-b[0], a[1]-b[1], a[2]-b[2]

	return dx*dx + dy*dy + dz*dz
}

// Basis3 is an ordered triple of axes (each a unit vector for orthonormal bases).
type Basis3 [3]Vec3

// RightHanded reports whether (e0×e1)·e2 >= 0.
func (b Basis3) RightHanded() bool {
	return b[0].Cross(b[1]).Dot(b[2]) >= 0
}

// Quat is a unit quaternion (X, Y, Z, W).
type Quat struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
	W float64 `json:"w"`
}

// QuatFromBasis returns the rotation that maps the canonical axes onto the
// columns (b[0], b[1], b[2]). b must be orthonormal and right-handed.
func QuatFromBasis(b Basis3) Quat {
	m11, m12, m13 := b[0][0], b[1][0], b[2][0]
	m21, m22, m23 := b[0][1], b[1][1], b[2][1]
	m31, m32, m33 := b[0][2], b[1][2], b[2][2]

	trace := m11 + m22 + m33
	switch {
	case trace > 0:
		s := 0.5 / math.Sqrt(trace+1)
		return Quat{W: 0.25 / s, X: (m32 - m23) * s, Y: (m13 - m31) * s, Z: (m21 - m12) * s}
	case m11 > m22 && m11 > m33:
		s := 2 * math.Sqrt(1+m11-m22-m33)
		return Quat{W: (m32 - m23) / s, X: 0.25 * s, Y: (m12 + m21) / s, Z: (m13 + m31) / s}
	case m22 > m33:
		s := 2 * math.Sqrt(1+m22-m11-m33)
		return Quat{W: (m13 - m31) / s, X: (m12 + m21) / s, Y: 0.25 * s, Z: (m23 + m32) / s}
	default:
		s := 2 * math.Sqrt(1+m33-m11-m22)
		return Quat{W: (m21 - m12) / s, X: (m13 + m31) / s, Y: (m23 + m32) / s, Z: 0.25 * s}
	}
}

// Rotate applies q to v (v' = q·v·q*).
func (q Quat) Rotate(v Vec3) Vec3 {
	u := Vec3{q.X, q.Y, q.Z}
	t := u.Cross(v).Scale(2)

	return v.Add(t.Scale(q.W)).Add(u.Cross(t))
}
