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

// Vector4 is a 4-component vector. It is the row type of Matrix4x4 and the
// shared arithmetic view of Quaternion.
type Vector4 struct {
	X, Y, Z, W float32
}

// Vector4Epsilon is the closeness tolerance used by Vector4 comparisons and
// normalization guards.
const Vector4Epsilon = FloatEpsilon * 4

// Named Vector4 values. They are never modified by this package.
var (
	Vector4UnitX = Vector4{X: 1}
	Vector4UnitY = Vector4{Y: 1}
	Vector4UnitZ = Vector4{Z: 1}
	Vector4UnitW = Vector4{W: 1}

	Vector4One  = Vector4{1, 1, 1, 1}
	Vector4Zero = Vector4{}
)

// NewVector4 returns (x, y, z, w).
func NewVector4(x, y, z, w float32) Vector4 {
	return Vector4{X: x, Y: y, Z: z, W: w}
}

// Vector4Splat returns (f, f, f, f).
func Vector4Splat(f float32) Vector4 {
	return Vector4{f, f, f, f}
}

func (v Vector4) lanes() lanes { return lanes{v.X, v.Y, v.Z, v.W} }

func vector4FromLanes(l lanes) Vector4 { return Vector4{l[0], l[1], l[2], l[3]} }

// At returns component i.
func (v Vector4) At(i int) float32 {
	if SafeIndex {
		i &= 0b11
	}
	return v.lanes()[i]
}

// SetAt sets component i.
func (v *Vector4) SetAt(i int, f float32) {
	if SafeIndex {
		i &= 0b11
	}
	l := v.lanes()
	l[i] = f
	*v = vector4FromLanes(l)
}

// Array returns the components in x, y, z, w order.
func (v Vector4) Array() [4]float32 { return v.lanes() }

// XY narrows v to its first two components.
func (v Vector4) XY() Vector2 { return Vector2{X: v.X, Y: v.Y} }

// XYZ narrows v to its first three components.
func (v Vector4) XYZ() Vector3 { return Vector3{X: v.X, Y: v.Y, Z: v.Z} }

func (v Vector4) Add(o Vector4) Vector4 { return vector4FromLanes(add4(v.lanes(), o.lanes())) }
func (v Vector4) Sub(o Vector4) Vector4 { return vector4FromLanes(sub4(v.lanes(), o.lanes())) }
func (v Vector4) Mul(o Vector4) Vector4 { return vector4FromLanes(mul4(v.lanes(), o.lanes())) }
func (v Vector4) Div(o Vector4) Vector4 { return vector4FromLanes(div4(v.lanes(), o.lanes())) }

func (v Vector4) AddScalar(f float32) Vector4 { return vector4FromLanes(add4(v.lanes(), splat(f))) }
func (v Vector4) SubScalar(f float32) Vector4 { return vector4FromLanes(sub4(v.lanes(), splat(f))) }
func (v Vector4) MulScalar(f float32) Vector4 { return vector4FromLanes(scale4(v.lanes(), f)) }
func (v Vector4) DivScalar(f float32) Vector4 { return vector4FromLanes(div4(v.lanes(), splat(f))) }

// Neg returns -v.
func (v Vector4) Neg() Vector4 { return vector4FromLanes(scale4(v.lanes(), -1)) }

// WZYX returns v with its components reversed.
func (v Vector4) WZYX() Vector4 { return Vector4{v.W, v.Z, v.Y, v.X} }

// Sum returns x + y + z + w.
func (v Vector4) Sum() float32 { return hsum(v.lanes()) }

func (v Vector4) MagnitudeSquared() float32 { return dot4(v.lanes(), v.lanes()) }
func (v Vector4) Magnitude() float32        { return Sqrt(v.MagnitudeSquared()) }

// Normalized returns v scaled to unit length. A vector whose squared
// magnitude is already within Vector4Epsilon of 1 or of 0 is returned
// unchanged.
func (v Vector4) Normalized() Vector4 {
	v.Normalize()
	return v
}

// Normalize scales v to unit length in place, with the same guards as
// Normalized.
func (v *Vector4) Normalize() {
	m := v.MagnitudeSquared()
	if CloseEnough(m, 1, Vector4Epsilon) {
		return
	}
	if CloseEnough(m, 0, Vector4Epsilon) {
		return
	}
	*v = v.MulScalar(1 / Sqrt(m))
}

func (v Vector4) IsZero() bool       { return CloseEnough(v.MagnitudeSquared(), 0, Vector4Epsilon) }
func (v Vector4) IsNormalized() bool { return CloseEnough(v.MagnitudeSquared(), 1, Vector4Epsilon) }

// Ordering comparisons compare squared magnitudes.
func (v Vector4) Less(o Vector4) bool         { return v.MagnitudeSquared() < o.MagnitudeSquared() }
func (v Vector4) LessEqual(o Vector4) bool    { return v.MagnitudeSquared() <= o.MagnitudeSquared() }
func (v Vector4) Greater(o Vector4) bool      { return v.MagnitudeSquared() > o.MagnitudeSquared() }
func (v Vector4) GreaterEqual(o Vector4) bool { return v.MagnitudeSquared() >= o.MagnitudeSquared() }

// Scalar comparisons compare the magnitude of v with |f|.
func (v Vector4) LessScalar(f float32) bool         { return v.MagnitudeSquared() < f*f }
func (v Vector4) LessEqualScalar(f float32) bool    { return v.MagnitudeSquared() <= f*f }
func (v Vector4) GreaterScalar(f float32) bool      { return v.MagnitudeSquared() > f*f }
func (v Vector4) GreaterEqualScalar(f float32) bool { return v.MagnitudeSquared() >= f*f }

// Equal reports whether every component of v is within Vector4Epsilon of o.
func (v Vector4) Equal(o Vector4) bool {
	return CloseEnough(v.X, o.X, Vector4Epsilon) &&
		CloseEnough(v.Y, o.Y, Vector4Epsilon) &&
		CloseEnough(v.Z, o.Z, Vector4Epsilon) &&
		CloseEnough(v.W, o.W, Vector4Epsilon)
}

func (v Vector4) NotEqual(o Vector4) bool { return !v.Equal(o) }

// EqualScalar reports whether the magnitude of v is within Vector4Epsilon of |f|.
func (v Vector4) EqualScalar(f float32) bool {
	return CloseEnough(v.MagnitudeSquared(), f*f, Vector4Epsilon)
}

func (v Vector4) NotEqualScalar(f float32) bool { return !v.EqualScalar(f) }

// Dot returns the 4-lane dot product of v and o.
func (v Vector4) Dot(o Vector4) float32 { return dot4(v.lanes(), o.lanes()) }

func (v Vector4) DistanceSquared(o Vector4) float32 { return v.Sub(o).MagnitudeSquared() }
func (v Vector4) Distance(o Vector4) float32        { return v.Sub(o).Magnitude() }

// Max returns whichever of v and o has the larger magnitude, preferring v on
// a tie.
func (v Vector4) Max(o Vector4) Vector4 {
	if v.MagnitudeSquared() >= o.MagnitudeSquared() {
		return v
	}
	return o
}

// Min returns whichever of v and o has the smaller magnitude, preferring v
// on a tie.
func (v Vector4) Min(o Vector4) Vector4 {
	if v.MagnitudeSquared() <= o.MagnitudeSquared() {
		return v
	}
	return o
}

// Lerp returns v + (o-v)*t. t is not clamped.
func (v Vector4) Lerp(o Vector4, t float32) Vector4 {
	var out Vector4
	Vector4LerpInto(v, o, t, &out)
	return out
}

// Vector4LerpInto stores a + (b-a)*t in out. t within Vector4Epsilon of 0
// or 1 yields a or b exactly.
func Vector4LerpInto(a, b Vector4, t float32, out *Vector4) {
	switch {
	case CloseEnough(t, 0, Vector4Epsilon):
		*out = a
	case CloseEnough(t, 1, Vector4Epsilon):
		*out = b
	default:
		*out = a.Add(b.Sub(a).MulScalar(t))
	}
}
