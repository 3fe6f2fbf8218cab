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

// Vector2 is a 2-component vector. It is too narrow to benefit from the lane
// kernels and always computes with scalar code.
type Vector2 struct {
	X, Y float32
}

// Vector2Epsilon is the closeness tolerance used by Vector2 comparisons and
// normalization guards.
const Vector2Epsilon = FloatEpsilon * 2

// Named Vector2 values. They are never modified by this package.
var (
	Vector2UnitX = Vector2{1, 0}
	Vector2UnitY = Vector2{0, 1}

	Vector2Up    = Vector2{0, 1}
	Vector2Down  = Vector2{0, -1}
	Vector2Left  = Vector2{-1, 0}
	Vector2Right = Vector2{1, 0}

	Vector2One  = Vector2{1, 1}
	Vector2Zero = Vector2{0, 0}
)

// NewVector2 returns (x, y).
func NewVector2(x, y float32) Vector2 {
	return Vector2{X: x, Y: y}
}

// Vector2Splat returns (f, f).
func Vector2Splat(f float32) Vector2 {
	return Vector2{X: f, Y: f}
}

// At returns component i (0 = X, 1 = Y).
func (v Vector2) At(i int) float32 {
	if SafeIndex {
		i &= 0b1
	}
	return [2]float32{v.X, v.Y}[i]
}

// SetAt sets component i (0 = X, 1 = Y).
func (v *Vector2) SetAt(i int, f float32) {
	if SafeIndex {
		i &= 0b1
	}
	a := [2]float32{v.X, v.Y}
	a[i] = f
	v.X, v.Y = a[0], a[1]
}

// Vec3 widens v to a Vector3 with z = 0.
func (v Vector2) Vec3() Vector3 { return Vector3{X: v.X, Y: v.Y} }

// Vec4 widens v to a Vector4 with z = w = 0.
func (v Vector2) Vec4() Vector4 { return Vector4{X: v.X, Y: v.Y} }

func (v Vector2) Add(o Vector2) Vector2 { return Vector2{v.X + o.X, v.Y + o.Y} }
func (v Vector2) Sub(o Vector2) Vector2 { return Vector2{v.X - o.X, v.Y - o.Y} }
func (v Vector2) Mul(o Vector2) Vector2 { return Vector2{v.X * o.X, v.Y * o.Y} }
func (v Vector2) Div(o Vector2) Vector2 { return Vector2{v.X / o.X, v.Y / o.Y} }

func (v Vector2) AddScalar(f float32) Vector2 { return Vector2{v.X + f, v.Y + f} }
func (v Vector2) SubScalar(f float32) Vector2 { return Vector2{v.X - f, v.Y - f} }
func (v Vector2) MulScalar(f float32) Vector2 { return Vector2{v.X * f, v.Y * f} }
func (v Vector2) DivScalar(f float32) Vector2 { return Vector2{v.X / f, v.Y / f} }

// Neg returns -v.
func (v Vector2) Neg() Vector2 { return Vector2{-v.X, -v.Y} }

// YX returns v with its components swapped.
func (v Vector2) YX() Vector2 { return Vector2{v.Y, v.X} }

// Sum returns x + y.
func (v Vector2) Sum() float32 { return v.X + v.Y }

func (v Vector2) Magnitude() float32        { return Sqrt(v.MagnitudeSquared()) }
func (v Vector2) MagnitudeSquared() float32 { return v.X*v.X + v.Y*v.Y }

// Normalized returns v scaled to unit length. A vector whose squared
// magnitude is already within Vector2Epsilon of 1 or of 0 is returned
// unchanged.
func (v Vector2) Normalized() Vector2 {
	v.Normalize()
	return v
}

// Normalize scales v to unit length in place, with the same guards as
// Normalized.
func (v *Vector2) Normalize() {
	m := v.MagnitudeSquared()
	if CloseEnough(m, 1, Vector2Epsilon) {
		return
	}
	if CloseEnough(m, 0, Vector2Epsilon) {
		return
	}
	*v = v.DivScalar(Sqrt(m))
}

func (v Vector2) IsZero() bool       { return CloseEnough(v.MagnitudeSquared(), 0, Vector2Epsilon) }
func (v Vector2) IsNormalized() bool { return CloseEnough(v.MagnitudeSquared(), 1, Vector2Epsilon) }

// Ordering comparisons compare squared magnitudes.
func (v Vector2) Less(o Vector2) bool         { return v.MagnitudeSquared() < o.MagnitudeSquared() }
func (v Vector2) LessEqual(o Vector2) bool    { return v.MagnitudeSquared() <= o.MagnitudeSquared() }
func (v Vector2) Greater(o Vector2) bool      { return v.MagnitudeSquared() > o.MagnitudeSquared() }
func (v Vector2) GreaterEqual(o Vector2) bool { return v.MagnitudeSquared() >= o.MagnitudeSquared() }

// Scalar comparisons compare the magnitude of v with |f|.
func (v Vector2) LessScalar(f float32) bool         { return v.MagnitudeSquared() < f*f }
func (v Vector2) LessEqualScalar(f float32) bool    { return v.MagnitudeSquared() <= f*f }
func (v Vector2) GreaterScalar(f float32) bool      { return v.MagnitudeSquared() > f*f }
func (v Vector2) GreaterEqualScalar(f float32) bool { return v.MagnitudeSquared() >= f*f }

// Equal reports whether every component of v is within Vector2Epsilon of o.
func (v Vector2) Equal(o Vector2) bool {
	return CloseEnough(v.X, o.X, Vector2Epsilon) && CloseEnough(v.Y, o.Y, Vector2Epsilon)
}

func (v Vector2) NotEqual(o Vector2) bool { return !v.Equal(o) }

// EqualScalar reports whether the magnitude of v is within Vector2Epsilon of |f|.
func (v Vector2) EqualScalar(f float32) bool {
	return CloseEnough(v.MagnitudeSquared(), f*f, Vector2Epsilon)
}

func (v Vector2) NotEqualScalar(f float32) bool { return !v.EqualScalar(f) }

// Dot returns the dot product of v and o.
func (v Vector2) Dot(o Vector2) float32 { return v.X*o.X + v.Y*o.Y }

// Cross returns the z component of the 3D cross product of (v, 0) and (o, 0).
func (v Vector2) Cross(o Vector2) float32 { return v.X*o.Y - v.Y*o.X }

// AngleRadians returns the unsigned angle between v and o, in [0, π].
func (v Vector2) AngleRadians(o Vector2) float32 {
	return ATan2(Abs(v.Cross(o)), v.Dot(o))
}

// AngleDegrees returns the unsigned angle between v and o, in [0, 180].
func (v Vector2) AngleDegrees(o Vector2) float32 {
	return v.AngleRadians(o) * Rad2Deg
}

func (v Vector2) DistanceSquared(o Vector2) float32 { return v.Sub(o).MagnitudeSquared() }
func (v Vector2) Distance(o Vector2) float32        { return v.Sub(o).Magnitude() }

// OrthogonalCCW returns v rotated by 90 degrees.
func (v Vector2) OrthogonalCCW() Vector2 {
	var out Vector2
	Vector2OrthogonalCCWInto(v, &out)
	return out
}

// OrthogonalCW returns v rotated by -90 degrees.
func (v Vector2) OrthogonalCW() Vector2 {
	var out Vector2
	Vector2OrthogonalCWInto(v, &out)
	return out
}

// Max returns whichever of v and o has the larger magnitude, preferring v on
// a tie.
func (v Vector2) Max(o Vector2) Vector2 {
	var out Vector2
	Vector2MaxInto(v, o, &out)
	return out
}

// Min returns whichever of v and o has the smaller magnitude, preferring v
// on a tie.
func (v Vector2) Min(o Vector2) Vector2 {
	var out Vector2
	Vector2MinInto(v, o, &out)
	return out
}

// Lerp returns v + (o-v)*t. t is not clamped.
func (v Vector2) Lerp(o Vector2, t float32) Vector2 {
	var out Vector2
	Vector2LerpInto(v, o, t, &out)
	return out
}

func Vector2OrthogonalCCWInto(v Vector2, out *Vector2) { *out = Vector2{-v.Y, v.X} }
func Vector2OrthogonalCWInto(v Vector2, out *Vector2)  { *out = Vector2{v.Y, -v.X} }

func Vector2MaxInto(a, b Vector2, out *Vector2) {
	if a.MagnitudeSquared() >= b.MagnitudeSquared() {
		*out = a
		return
	}
	*out = b
}

func Vector2MinInto(a, b Vector2, out *Vector2) {
	if a.MagnitudeSquared() <= b.MagnitudeSquared() {
		*out = a
		return
	}
	*out = b
}

// Vector2LerpInto stores a + (b-a)*t in out. t within Vector2Epsilon of 0
// or 1 yields a or b exactly.
func Vector2LerpInto(a, b Vector2, t float32, out *Vector2) {
	switch {
	case CloseEnough(t, 0, Vector2Epsilon):
		*out = a
	case CloseEnough(t, 1, Vector2Epsilon):
		*out = b
	default:
		*out = a.Add(b.Sub(a).MulScalar(t))
	}
}
