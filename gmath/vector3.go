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

// Vector3 is a 3-component vector stored in four lanes. The fourth lane, w,
// only exists so a Vector3 fills one 128-bit register: lane-wise arithmetic
// carries it along, At(3) can read it, and every reduction (magnitude, dot,
// cross, angle) masks it out.
type Vector3 struct {
	X, Y, Z float32
	w       float32
}

// Vector3Epsilon is the closeness tolerance used by Vector3 comparisons and
// normalization guards.
const Vector3Epsilon = FloatEpsilon * 3

// Named Vector3 values. They are never modified by this package.
var (
	Vector3Origin = Vector3{}

	Vector3UnitX = Vector3{X: 1}
	Vector3UnitY = Vector3{Y: 1}
	Vector3UnitZ = Vector3{Z: 1}

	Vector3Up       = Vector3{Y: 1}
	Vector3Down     = Vector3{Y: -1}
	Vector3Left     = Vector3{X: -1}
	Vector3Right    = Vector3{X: 1}
	Vector3Forward  = Vector3{Z: 1}
	Vector3Backward = Vector3{Z: -1}

	Vector3One  = Vector3{X: 1, Y: 1, Z: 1}
	Vector3Zero = Vector3{}
)

// NewVector3 returns (x, y, z) with a zero padding lane.
func NewVector3(x, y, z float32) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// Vector3Splat sets all four lanes to f.
func Vector3Splat(f float32) Vector3 {
	return Vector3{X: f, Y: f, Z: f, w: f}
}

func (v Vector3) lanes() lanes { return lanes{v.X, v.Y, v.Z, v.w} }

func vector3FromLanes(l lanes) Vector3 {
	return Vector3{X: l[0], Y: l[1], Z: l[2], w: l[3]}
}

// At returns lane i. Index 3 is the padding lane.
func (v Vector3) At(i int) float32 {
	if SafeIndex {
		i &= 0b11
	}
	return v.lanes()[i]
}

// SetAt sets lane i. Index 3 is the padding lane.
func (v *Vector3) SetAt(i int, f float32) {
	if SafeIndex {
		i &= 0b11
	}
	l := v.lanes()
	l[i] = f
	*v = vector3FromLanes(l)
}

// Array returns x, y and z.
func (v Vector3) Array() [3]float32 { return [3]float32{v.X, v.Y, v.Z} }

// XY narrows v to its first two components.
func (v Vector3) XY() Vector2 { return Vector2{X: v.X, Y: v.Y} }

// Vec4 widens v to a Vector4 with w = 0 (direction semantics).
func (v Vector3) Vec4() Vector4 { return Vector4{X: v.X, Y: v.Y, Z: v.Z} }

// Point widens v to a homogeneous Vector4 with w = 1 (point semantics).
func (v Vector3) Point() Vector4 { return Vector4{X: v.X, Y: v.Y, Z: v.Z, W: 1} }

func (v Vector3) Add(o Vector3) Vector3 { return vector3FromLanes(add4(v.lanes(), o.lanes())) }
func (v Vector3) Sub(o Vector3) Vector3 { return vector3FromLanes(sub4(v.lanes(), o.lanes())) }
func (v Vector3) Mul(o Vector3) Vector3 { return vector3FromLanes(mul4(v.lanes(), o.lanes())) }
func (v Vector3) Div(o Vector3) Vector3 { return vector3FromLanes(div4(v.lanes(), o.lanes())) }

func (v Vector3) AddScalar(f float32) Vector3 { return vector3FromLanes(add4(v.lanes(), splat(f))) }
func (v Vector3) SubScalar(f float32) Vector3 { return vector3FromLanes(sub4(v.lanes(), splat(f))) }
func (v Vector3) MulScalar(f float32) Vector3 { return vector3FromLanes(scale4(v.lanes(), f)) }
func (v Vector3) DivScalar(f float32) Vector3 { return vector3FromLanes(div4(v.lanes(), splat(f))) }

// Neg returns -v.
func (v Vector3) Neg() Vector3 { return vector3FromLanes(scale4(v.lanes(), -1)) }

// ZYX returns v with x and z swapped.
func (v Vector3) ZYX() Vector3 { return Vector3{X: v.Z, Y: v.Y, Z: v.X, w: v.w} }

// Sum returns x + y + z.
func (v Vector3) Sum() float32 { return v.X + v.Y + v.Z }

func (v Vector3) MagnitudeSquared() float32 { return dot3(v.lanes(), v.lanes()) }
func (v Vector3) Magnitude() float32        { return Sqrt(v.MagnitudeSquared()) }

// Normalized returns v scaled to unit length. A vector whose squared
// magnitude is already within Vector3Epsilon of 1 or of 0 is returned
// unchanged.
func (v Vector3) Normalized() Vector3 {
	v.Normalize()
	return v
}

// Normalize scales v to unit length in place, with the same guards as
// Normalized.
func (v *Vector3) Normalize() {
	m := v.MagnitudeSquared()
	if CloseEnough(m, 1, Vector3Epsilon) {
		return
	}
	if CloseEnough(m, 0, Vector3Epsilon) {
		return
	}
	*v = v.MulScalar(1 / Sqrt(m))
}

func (v Vector3) IsZero() bool       { return CloseEnough(v.MagnitudeSquared(), 0, Vector3Epsilon) }
func (v Vector3) IsNormalized() bool { return CloseEnough(v.MagnitudeSquared(), 1, Vector3Epsilon) }

// Ordering comparisons compare squared magnitudes.
func (v Vector3) Less(o Vector3) bool         { return v.MagnitudeSquared() < o.MagnitudeSquared() }
func (v Vector3) LessEqual(o Vector3) bool    { return v.MagnitudeSquared() <= o.MagnitudeSquared() }
func (v Vector3) Greater(o Vector3) bool      { return v.MagnitudeSquared() > o.MagnitudeSquared() }
func (v Vector3) GreaterEqual(o Vector3) bool { return v.MagnitudeSquared() >= o.MagnitudeSquared() }

// Scalar comparisons compare the magnitude of v with |f|.
func (v Vector3) LessScalar(f float32) bool         { return v.MagnitudeSquared() < f*f }
func (v Vector3) LessEqualScalar(f float32) bool    { return v.MagnitudeSquared() <= f*f }
func (v Vector3) GreaterScalar(f float32) bool      { return v.MagnitudeSquared() > f*f }
func (v Vector3) GreaterEqualScalar(f float32) bool { return v.MagnitudeSquared() >= f*f }

// Equal reports whether x, y and z of v are each within Vector3Epsilon of o.
// The padding lane is ignored.
func (v Vector3) Equal(o Vector3) bool {
	return CloseEnough(v.X, o.X, Vector3Epsilon) &&
		CloseEnough(v.Y, o.Y, Vector3Epsilon) &&
		CloseEnough(v.Z, o.Z, Vector3Epsilon)
}

func (v Vector3) NotEqual(o Vector3) bool { return !v.Equal(o) }

// EqualScalar reports whether the magnitude of v is within Vector3Epsilon of |f|.
func (v Vector3) EqualScalar(f float32) bool {
	return CloseEnough(v.MagnitudeSquared(), f*f, Vector3Epsilon)
}

func (v Vector3) NotEqualScalar(f float32) bool { return !v.EqualScalar(f) }

// Dot returns the dot product of the x, y and z lanes.
func (v Vector3) Dot(o Vector3) float32 { return dot3(v.lanes(), o.lanes()) }

// Cross returns v × o.
func (v Vector3) Cross(o Vector3) Vector3 { return vector3FromLanes(cross3(v.lanes(), o.lanes())) }

// AngleRadians returns the unsigned angle between v and o, in [0, π],
// computed as atan2(|v × o|, v · o). Parallel vectors, and the zero vector,
// give 0.
func (v Vector3) AngleRadians(o Vector3) float32 {
	c := cross3(v.lanes(), o.lanes())
	return ATan2(Sqrt(dot3(c, c)), v.Dot(o))
}

// AngleDegrees returns the unsigned angle between v and o, in [0, 180].
func (v Vector3) AngleDegrees(o Vector3) float32 {
	return v.AngleRadians(o) * Rad2Deg
}

func (v Vector3) DistanceSquared(o Vector3) float32 { return v.Sub(o).MagnitudeSquared() }
func (v Vector3) Distance(o Vector3) float32        { return v.Sub(o).Magnitude() }

// Max returns whichever of v and o has the larger magnitude, preferring v on
// a tie.
func (v Vector3) Max(o Vector3) Vector3 {
	if v.MagnitudeSquared() >= o.MagnitudeSquared() {
		return v
	}
	return o
}

// Min returns whichever of v and o has the smaller magnitude, preferring v
// on a tie.
func (v Vector3) Min(o Vector3) Vector3 {
	if v.MagnitudeSquared() <= o.MagnitudeSquared() {
		return v
	}
	return o
}

// Lerp returns v + (o-v)*t. t is not clamped.
func (v Vector3) Lerp(o Vector3, t float32) Vector3 {
	var out Vector3
	Vector3LerpInto(v, o, t, &out)
	return out
}

// Vector3LerpInto stores a + (b-a)*t in out. t within Vector3Epsilon of 0
// or 1 yields a or b exactly.
func Vector3LerpInto(a, b Vector3, t float32, out *Vector3) {
	switch {
	case CloseEnough(t, 0, Vector3Epsilon):
		*out = a
	case CloseEnough(t, 1, Vector3Epsilon):
		*out = b
	default:
		*out = a.Add(b.Sub(a).MulScalar(t))
	}
}
