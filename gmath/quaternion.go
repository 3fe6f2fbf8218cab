// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package gmath

// Quaternion is a rotation stored as (x, y, z, w) with w the scalar part.
// Element-wise work (dot, lerp, scaling) goes through its Vector4 view.
type Quaternion struct {
	X, Y, Z, W float32
}

// QuaternionEpsilon is the closeness tolerance used by Quaternion comparisons,
// normalization guards and interpolation fast paths.
const QuaternionEpsilon = FloatEpsilon * 4

// Named quaternions. They are never modified by this package.
var (
	QuaternionIdentity = Quaternion{W: 1}
	QuaternionZero     = Quaternion{}
)

// NewQuaternion returns (x, y, z, w).
func NewQuaternion(x, y, z, w float32) Quaternion {
	return Quaternion{X: x, Y: y, Z: z, W: w}
}

// QuaternionFromVector4 reads v as (x, y, z, w).
func QuaternionFromVector4(v Vector4) Quaternion {
	return Quaternion{X: v.X, Y: v.Y, Z: v.Z, W: v.W}
}

// Vector4 returns q as a Vector4 with the same component order.
func (q Quaternion) Vector4() Vector4 {
	return Vector4{X: q.X, Y: q.Y, Z: q.Z, W: q.W}
}

// QuaternionFromMatrix extracts the rotation of m. Scale is removed from the
// first three rows before extraction; if any of them is degenerate the
// identity is returned.
func QuaternionFromMatrix(m Matrix4x4) Quaternion {
	var q Quaternion
	QuaternionFromMatrixInto(m, &q)
	return q
}

// QuaternionFromMatrixInto stores the rotation of m in out. The off-diagonal
// terms of each branch follow the rows-as-basis-axes layout written by
// Matrix4x4FromQuaternion; swapping them breaks the round trip.
func QuaternionFromMatrixInto(m Matrix4x4, out *Quaternion) {
	x, y, z := m.R[0].XYZ(), m.R[1].XYZ(), m.R[2].XYZ()
	sx, sy, sz := x.Magnitude(), y.Magnitude(), z.Magnitude()
	if sx <= FloatEpsilon || sy <= FloatEpsilon || sz <= FloatEpsilon {
		*out = QuaternionIdentity
		return
	}
	x = x.DivScalar(sx)
	y = y.DivScalar(sy)
	z = z.DivScalar(sz)

	trace := x.X + y.Y + z.Z + 1
	switch {
	case trace > 1:
		s := 0.5 / Sqrt(trace)
		*out = Quaternion{
			X: (y.Z - z.Y) * s,
			Y: (z.X - x.Z) * s,
			Z: (x.Y - y.X) * s,
			W: 0.25 / s,
		}
	case x.X > y.Y && x.X > z.Z:
		s := 0.5 / Sqrt(1+x.X-y.Y-z.Z)
		*out = Quaternion{
			X: 0.25 / s,
			Y: (y.X + x.Y) * s,
			Z: (z.X + x.Z) * s,
			W: (y.Z - z.Y) * s,
		}
	case y.Y > z.Z:
		s := 0.5 / Sqrt(1+y.Y-x.X-z.Z)
		*out = Quaternion{
			X: (y.X + x.Y) * s,
			Y: 0.25 / s,
			Z: (z.Y + y.Z) * s,
			W: (z.X - x.Z) * s,
		}
	default:
		s := 0.5 / Sqrt(1+z.Z-x.X-y.Y)
		*out = Quaternion{
			X: (z.X + x.Z) * s,
			Y: (z.Y + y.Z) * s,
			Z: 0.25 / s,
			W: (x.Y - y.X) * s,
		}
	}
}

// At returns component i in x, y, z, w order.
func (q Quaternion) At(i int) float32 { return q.Vector4().At(i) }

// SetAt sets component i in x, y, z, w order.
func (q *Quaternion) SetAt(i int, f float32) {
	v := q.Vector4()
	v.SetAt(i, f)
	*q = QuaternionFromVector4(v)
}

// Mul returns the Hamilton product q*o, the rotation o followed by q.
func (q Quaternion) Mul(o Quaternion) Quaternion {
	return Quaternion{
		X: q.W*o.X + q.X*o.W + q.Y*o.Z - q.Z*o.Y,
		Y: q.W*o.Y - q.X*o.Z + q.Y*o.W + q.Z*o.X,
		Z: q.W*o.Z + q.X*o.Y - q.Y*o.X + q.Z*o.W,
		W: q.W*o.W - q.X*o.X - q.Y*o.Y - q.Z*o.Z,
	}
}

// Dot returns the 4-lane dot product of q and o.
func (q Quaternion) Dot(o Quaternion) float32 { return q.Vector4().Dot(o.Vector4()) }

// Equal reports whether every component of q is within QuaternionEpsilon of
// o. q and -q are not equal even though they describe the same rotation.
func (q Quaternion) Equal(o Quaternion) bool {
	return CloseEnough(q.X, o.X, QuaternionEpsilon) &&
		CloseEnough(q.Y, o.Y, QuaternionEpsilon) &&
		CloseEnough(q.Z, o.Z, QuaternionEpsilon) &&
		CloseEnough(q.W, o.W, QuaternionEpsilon)
}

func (q Quaternion) NotEqual(o Quaternion) bool { return !q.Equal(o) }

func (q Quaternion) MagnitudeSquared() float32 { return q.Vector4().MagnitudeSquared() }
func (q Quaternion) Magnitude() float32        { return Sqrt(q.MagnitudeSquared()) }

func (q Quaternion) IsNormalized() bool {
	return CloseEnough(q.MagnitudeSquared(), 1, QuaternionEpsilon)
}

// Conjugate returns q with its vector part negated.
func (q Quaternion) Conjugate() Quaternion {
	q.MakeConjugate()
	return q
}

// MakeConjugate negates the vector part of q in place.
func (q *Quaternion) MakeConjugate() {
	q.X, q.Y, q.Z = -q.X, -q.Y, -q.Z
}

// Inverse returns the multiplicative inverse of q. For unit q that is the
// conjugate. A q with near-zero magnitude is returned unchanged.
func (q Quaternion) Inverse() Quaternion {
	q.MakeInverse()
	return q
}

// MakeInverse replaces q with its inverse, with the same guards as Inverse.
func (q *Quaternion) MakeInverse() {
	m := q.MagnitudeSquared()
	if CloseEnough(m, 1, QuaternionEpsilon) {
		q.MakeConjugate()
		return
	}
	if CloseEnough(m, 0, QuaternionEpsilon) {
		return
	}
	q.MakeConjugate()
	*q = QuaternionFromVector4(q.Vector4().DivScalar(m))
}

// Normalized returns q scaled to unit length. A q already within
// QuaternionEpsilon of unit length, or of zero, is returned unchanged.
func (q Quaternion) Normalized() Quaternion {
	q.Normalize()
	return q
}

// Normalize scales q to unit length in place, with the same guards as
// Normalized.
func (q *Quaternion) Normalize() {
	m := q.MagnitudeSquared()
	if CloseEnough(m, 1, QuaternionEpsilon) {
		return
	}
	n := Sqrt(m)
	if CloseEnough(n, 0, QuaternionEpsilon) {
		return
	}
	*q = QuaternionFromVector4(q.Vector4().DivScalar(n))
}

// AxisAngleRadians returns the unit rotation axis and angle of q. For the
// identity the axis is zero.
func (q Quaternion) AxisAngleRadians() (axis Vector3, radians float32) {
	n := q.Normalized()
	axis = NewVector3(n.X, n.Y, n.Z).Normalized()
	radians = 2 * ACos(clamp(n.W, -1, 1))
	return axis, radians
}

// AxisAngleDegrees is AxisAngleRadians with the angle in degrees.
func (q Quaternion) AxisAngleDegrees() (axis Vector3, degrees float32) {
	axis, radians := q.AxisAngleRadians()
	return axis, radians * Rad2Deg
}

// QuaternionRotationRadiansInto stores the rotation for Euler angles x, y and
// z (radians) in out.
func QuaternionRotationRadiansInto(x, y, z float32, out *Quaternion) {
	sx, cx := Sin(x*0.5), Cos(x*0.5)
	sy, cy := Sin(y*0.5), Cos(y*0.5)
	sz, cz := Sin(z*0.5), Cos(z*0.5)
	*out = Quaternion{
		X: sx*cy*cz - cx*sy*sz,
		Y: cx*sy*cz + sx*cy*sz,
		Z: cx*cy*sz - sx*sy*cz,
		W: cx*cy*cz + sx*sy*sz,
	}
}

func QuaternionRotationVectorRadiansInto(v Vector3, out *Quaternion) {
	QuaternionRotationRadiansInto(v.X, v.Y, v.Z, out)
}

func QuaternionRotationDegreesInto(x, y, z float32, out *Quaternion) {
	QuaternionRotationRadiansInto(x*Deg2Rad, y*Deg2Rad, z*Deg2Rad, out)
}

func QuaternionRotationVectorDegreesInto(v Vector3, out *Quaternion) {
	QuaternionRotationDegreesInto(v.X, v.Y, v.Z, out)
}

// QuaternionAxisAngleRadiansInto stores the rotation of radians around axis
// in out. The axis is normalized first. The scalar part is cos(radians), not
// cos(radians/2), so only angles where the two agree (zero) produce a unit
// quaternion without normalizing.
func QuaternionAxisAngleRadiansInto(axis Vector3, radians float32, out *Quaternion) {
	v := axis.Normalized().MulScalar(Sin(radians * 0.5))
	*out = Quaternion{X: v.X, Y: v.Y, Z: v.Z, W: Cos(radians)}
}

func QuaternionAxisAngleDegreesInto(axis Vector3, degrees float32, out *Quaternion) {
	QuaternionAxisAngleRadiansInto(axis, degrees*Deg2Rad, out)
}

// QuaternionLookAtFromDirectionInto stores in out the rotation taking +Z to
// direction, with up resolving the roll.
func QuaternionLookAtFromDirectionInto(direction, up Vector3, out *Quaternion) {
	side, newUp, forward := lookAtBasis(direction, up)
	QuaternionFromMatrixInto(Matrix4x4FromRows3(side, newUp, forward), out)
}

func QuaternionLookAtFromPositionInto(from, to, up Vector3, out *Quaternion) {
	QuaternionLookAtFromDirectionInto(to.Sub(from), up, out)
}

func QuaternionRotationRadians(x, y, z float32) Quaternion {
	var q Quaternion
	QuaternionRotationRadiansInto(x, y, z, &q)
	return q
}

func QuaternionRotationVectorRadians(v Vector3) Quaternion {
	var q Quaternion
	QuaternionRotationVectorRadiansInto(v, &q)
	return q
}

func QuaternionRotationDegrees(x, y, z float32) Quaternion {
	var q Quaternion
	QuaternionRotationDegreesInto(x, y, z, &q)
	return q
}

func QuaternionRotationVectorDegrees(v Vector3) Quaternion {
	var q Quaternion
	QuaternionRotationVectorDegreesInto(v, &q)
	return q
}

func QuaternionAxisAngleRadians(axis Vector3, radians float32) Quaternion {
	var q Quaternion
	QuaternionAxisAngleRadiansInto(axis, radians, &q)
	return q
}

func QuaternionAxisAngleDegrees(axis Vector3, degrees float32) Quaternion {
	var q Quaternion
	QuaternionAxisAngleDegreesInto(axis, degrees, &q)
	return q
}

func QuaternionLookAtFromDirection(direction, up Vector3) Quaternion {
	var q Quaternion
	QuaternionLookAtFromDirectionInto(direction, up, &q)
	return q
}

// QuaternionLookAtFromDirectionUp is QuaternionLookAtFromDirection with
// Vector3Up.
func QuaternionLookAtFromDirectionUp(direction Vector3) Quaternion {
	return QuaternionLookAtFromDirection(direction, Vector3Up)
}

func QuaternionLookAtFromPosition(from, to, up Vector3) Quaternion {
	var q Quaternion
	QuaternionLookAtFromPositionInto(from, to, up, &q)
	return q
}

// QuaternionLookAtFromPositionUp is QuaternionLookAtFromPosition with
// Vector3Up.
func QuaternionLookAtFromPositionUp(from, to Vector3) Quaternion {
	return QuaternionLookAtFromPosition(from, to, Vector3Up)
}

// Lerp returns the component-wise interpolation q + (o-q)*t. The result is
// not renormalized.
func (q Quaternion) Lerp(o Quaternion, t float32) Quaternion {
	return QuaternionLerp(q, o, t)
}

// Slerp returns the spherical interpolation from q to o.
func (q Quaternion) Slerp(o Quaternion, t float32) Quaternion {
	return QuaternionSlerp(q, o, t)
}

func QuaternionLerp(a, b Quaternion, t float32) Quaternion {
	var q Quaternion
	QuaternionLerpInto(a, b, t, &q)
	return q
}

// QuaternionLerpInto stores the component-wise interpolation from a to b in
// out. t within QuaternionEpsilon of 0 or 1 yields a or b exactly.
func QuaternionLerpInto(a, b Quaternion, t float32, out *Quaternion) {
	switch {
	case CloseEnough(t, 0, QuaternionEpsilon):
		*out = a
	case CloseEnough(t, 1, QuaternionEpsilon):
		*out = b
	default:
		*out = QuaternionFromVector4(a.Vector4().Lerp(b.Vector4(), t))
	}
}

func QuaternionSlerp(a, b Quaternion, t float32) Quaternion {
	var q Quaternion
	QuaternionSlerpInto(a, b, t, &q)
	return q
}

// Coefficients of the truncated series used by QuaternionSlerpInto.
const (
	slerpH0 = 1.09
	slerpH1 = 0.476537
	slerpH2 = 0.0903321
	slerpC5 = 0.0000440917108
	slerpC4 = -0.00158730159
	slerpC3 = 0.0333333333
	slerpC2 = -0.333333333
)

// QuaternionSlerpInto stores the spherical interpolation from a to b at t in
// out, taking the shorter arc. t within QuaternionEpsilon of 0 or 1, or a
// equal to b, short-circuits to an endpoint. Otherwise a fixed polynomial
// approximation is evaluated, with no trigonometric calls, and the result is
// pulled back toward unit length with one Newton step. Accuracy is about
// 1e-5 for unit inputs.
func QuaternionSlerpInto(a, b Quaternion, t float32, out *Quaternion) {
	switch {
	case CloseEnough(t, 0, QuaternionEpsilon):
		*out = a
		return
	case CloseEnough(t, 1, QuaternionEpsilon):
		*out = b
		return
	case a.Equal(b):
		*out = a
		return
	}

	cosTheta := a.Dot(b)
	var alpha float32 = 1
	if cosTheta < 0 {
		alpha = -1
	}
	halfY := 1 + alpha*cosTheta

	// Evaluate around t = 0.5 so both weights share one series.
	f2b := t - 0.5
	u := Abs(f2b)
	f2a := u - f2b
	f2b += u
	u += u
	f1 := 1 - u

	// Approximate 1/sqrt(halfY) and refine once.
	h := slerpH0 - (slerpH1-slerpH2*halfY)*halfY
	h *= 1.5 - halfY*h*h
	v := 1 - halfY*h

	sqNotU := f1 * f1
	r2 := slerpC5 * v
	r1 := slerpC4 + (sqNotU-16)*r2
	r1 = slerpC3 + r1*(sqNotU-9)*v
	r1 = slerpC2 + r1*(sqNotU-4)*v
	r1 = 1 + r1*(sqNotU-1)*v

	sqU := u * u
	r2 = slerpC4 + (sqU-16)*r2
	r2 = slerpC3 + r2*(sqU-9)*v
	r2 = slerpC2 + r2*(sqU-4)*v
	r2 = 1 + r2*(sqU-1)*v

	f1 *= r1 * h
	f2a *= r2
	f2b *= r2
	alpha *= f1 + f2a
	beta := f1 + f2b

	r := a.Vector4().MulScalar(alpha).Add(b.Vector4().MulScalar(beta))
	r = r.MulScalar(1.5 - 0.5*r.MagnitudeSquared())
	*out = QuaternionFromVector4(r)
}
