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

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestQuaternionBasics(t *testing.T) {
	q := NewQuaternion(1, 2, 3, 4)
	assert.Equal(t, NewVector4(1, 2, 3, 4), q.Vector4())
	assert.Equal(t, q, QuaternionFromVector4(q.Vector4()))
	assert.Equal(t, float32(3), q.At(2))
	q.SetAt(3, 9)
	assert.Equal(t, float32(9), q.W)

	assert.Equal(t, float32(30), NewQuaternion(1, 2, 3, 4).MagnitudeSquared())
	assert.Equal(t, float32(1), QuaternionIdentity.Magnitude())
	assert.True(t, QuaternionIdentity.IsNormalized())
	assert.Equal(t, float32(20), NewQuaternion(1, 2, 3, 4).Dot(NewQuaternion(4, 3, 2, 1)))

	a := NewQuaternion(0.1, 0.2, 0.3, 0.4)
	assert.True(t, a.Equal(NewQuaternion(0.1, 0.2, 0.3, 0.4+QuaternionEpsilon/2)))
	assert.True(t, a.NotEqual(QuaternionFromVector4(a.Vector4().Neg())), "q and -q compare unequal")
}

func TestQuaternionConjugateInverse(t *testing.T) {
	forEachLevel(t, func(t *testing.T) {
		q := NewQuaternion(1, -2, 3, 4)
		assert.Equal(t, NewQuaternion(-1, 2, -3, 4), q.Conjugate())
		assert.Equal(t, q, q.Conjugate().Conjugate())

		// Unit quaternions invert to their conjugate.
		u := NewQuaternion(0, 0, 0.6, 0.8)
		assert.Equal(t, u.Conjugate(), u.Inverse())

		inv := q.Inverse()
		if diff := cmp.Diff(q, inv.Inverse(), approx(1e-5)); diff != "" {
			t.Errorf("Inverse(Inverse(q)) (-want +got):\n%s", diff)
		}
		if diff := cmp.Diff(QuaternionIdentity, q.Mul(inv), approx(1e-6)); diff != "" {
			t.Errorf("q * Inverse(q) (-want +got):\n%s", diff)
		}

		r := newRand()
		for _i := 0; _i < 50; _i++ {
			u := randUnitQuaternion(r)
			if diff := cmp.Diff(QuaternionIdentity, u.Mul(u.Inverse()), approx(1e-6)); diff != "" {
				t.Errorf("%v * Inverse (-want +got):\n%s", u, diff)
			}
		}

		assert.Equal(t, QuaternionZero, QuaternionZero.Inverse())

		m := q
		m.MakeInverse()
		assert.Equal(t, inv, m)
		m.MakeConjugate()
		assert.Equal(t, inv.Conjugate(), m)
	})
}

func TestQuaternionNormalize(t *testing.T) {
	forEachLevel(t, func(t *testing.T) {
		assert.Equal(t, QuaternionIdentity, NewQuaternion(0, 0, 0, 2).Normalized())
		n := NewQuaternion(0, 3, 0, 4).Normalized()
		assert.InDelta(t, 0.6, n.Y, 1e-6)
		assert.InDelta(t, 0.8, n.W, 1e-6)
		assert.Equal(t, QuaternionZero, QuaternionZero.Normalized())

		tiny := NewQuaternion(1e-8, 0, 0, 0)
		assert.Equal(t, tiny, tiny.Normalized())

		q := NewQuaternion(1, 2, 3, 4)
		q.Normalize()
		assert.InDelta(t, 1, q.Magnitude(), 1e-6)
	})
}

func TestQuaternionMul(t *testing.T) {
	i := NewQuaternion(1, 0, 0, 0)
	j := NewQuaternion(0, 1, 0, 0)
	k := NewQuaternion(0, 0, 1, 0)
	minusOne := NewQuaternion(0, 0, 0, -1)

	assert.Equal(t, k, i.Mul(j))
	assert.Equal(t, i, j.Mul(k))
	assert.Equal(t, j, k.Mul(i))
	assert.Equal(t, minusOne, i.Mul(i))
	assert.Equal(t, QuaternionFromVector4(k.Vector4().Neg()), j.Mul(i))

	q := NewQuaternion(0.5, -1, 2, 3)
	assert.Equal(t, q, QuaternionIdentity.Mul(q))
	assert.Equal(t, q, q.Mul(QuaternionIdentity))

	// Rotations about one axis compose by adding angles.
	ab := QuaternionRotationRadians(0, 0, 0.4).Mul(QuaternionRotationRadians(0, 0, 0.9))
	if diff := cmp.Diff(QuaternionRotationRadians(0, 0, 1.3), ab, approx(1e-6)); diff != "" {
		t.Errorf("z rotation composition (-want +got):\n%s", diff)
	}
}

func TestQuaternionEuler(t *testing.T) {
	const r = 0.8
	s, c := Sin(r/2), Cos(r/2)
	tests := []struct {
		name    string
		x, y, z float32
		want    Quaternion
	}{
		{"zero", 0, 0, 0, QuaternionIdentity},
		{"x", r, 0, 0, NewQuaternion(s, 0, 0, c)},
		{"y", 0, r, 0, NewQuaternion(0, s, 0, c)},
		{"z", 0, 0, r, NewQuaternion(0, 0, s, c)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := QuaternionRotationRadians(tt.x, tt.y, tt.z)
			if diff := cmp.Diff(tt.want, got, approx(1e-6)); diff != "" {
				t.Errorf("QuaternionRotationRadians (-want +got):\n%s", diff)
			}
			assert.True(t, got.IsNormalized())
		})
	}

	x, y, z := float32(10), float32(-70), float32(135)
	v := NewVector3(x, y, z)
	want := QuaternionRotationRadians(x*Deg2Rad, y*Deg2Rad, z*Deg2Rad)
	assert.Equal(t, want, QuaternionRotationDegrees(x, y, z))
	assert.Equal(t, want, QuaternionRotationVectorDegrees(v))
	assert.Equal(t, QuaternionRotationRadians(x, y, z), QuaternionRotationVectorRadians(v))

	var q Quaternion
	QuaternionRotationDegreesInto(x, y, z, &q)
	assert.Equal(t, want, q)
}

func TestQuaternionAxisAngleConstruction(t *testing.T) {
	assert.Equal(t, QuaternionIdentity, QuaternionAxisAngleRadians(Vector3UnitX, 0))

	// The vector part uses the half angle; the scalar part is cos of the
	// full angle.
	const r = 1.2
	got := QuaternionAxisAngleRadians(NewVector3(0, 0, 2), r)
	want := NewQuaternion(0, 0, Sin(r/2), Cos(r))
	if diff := cmp.Diff(want, got, approx(1e-6)); diff != "" {
		t.Errorf("QuaternionAxisAngleRadians (-want +got):\n%s", diff)
	}

	deg := float32(75)
	assert.Equal(t, QuaternionAxisAngleRadians(Vector3UnitY, deg*Deg2Rad), QuaternionAxisAngleDegrees(Vector3UnitY, deg))
}

func TestQuaternionAxisAngleExtraction(t *testing.T) {
	const r = 1.2
	q := QuaternionRotationRadians(0, 0, r)
	axis, angle := q.AxisAngleRadians()
	assert.True(t, axis.Equal(Vector3UnitZ), "axis = %v", axis)
	assert.InDelta(t, r, angle, 1e-5)

	// Scaling q does not change the rotation it describes.
	axis2, angle2 := QuaternionFromVector4(q.Vector4().MulScalar(3)).AxisAngleRadians()
	assert.True(t, axis2.Equal(axis))
	assert.InDelta(t, angle, angle2, 1e-5)

	_, deg := q.AxisAngleDegrees()
	assert.InDelta(t, r*Rad2Deg, deg, 1e-3)

	axis, angle = QuaternionIdentity.AxisAngleRadians()
	assert.True(t, axis.IsZero())
	assert.InDelta(t, 0, angle, 1e-6)
}

func TestQuaternionMatrixRoundTrip(t *testing.T) {
	forEachLevel(t, func(t *testing.T) {
		qs := []Quaternion{
			QuaternionIdentity,
			NewQuaternion(1, 0, 0, 0),
			NewQuaternion(0, 1, 0, 0),
			NewQuaternion(0, 0, 1, 0),
			NewQuaternion(0.5, 0.5, 0.5, 0.5),
			NewQuaternion(0.5, -0.5, 0.5, -0.5),
		}
		r := newRand()
		for _i := 0; _i < 200; _i++ {
			qs = append(qs, randUnitQuaternion(r))
		}
		for _, q := range qs {
			m := Matrix4x4FromQuaternion(q)
			if got := QuaternionFromMatrix(m); !sameRotation(q, got, 1e-5) {
				t.Errorf("QuaternionFromMatrix(Matrix4x4FromQuaternion(%v)) = %v", q, got)
			}

			// Per-axis scale and translation are removed before extraction.
			scaled := MatrixScale(2, 0.5, 3).Mul(m)
			scaled.R[0].W, scaled.R[1].W, scaled.R[2].W = 7, -8, 9
			if got := QuaternionFromMatrix(scaled); !sameRotation(q, got, 1e-5) {
				t.Errorf("QuaternionFromMatrix(scaled %v) = %v", q, got)
			}
		}
	})
}

func TestQuaternionFromDegenerateMatrix(t *testing.T) {
	assert.Equal(t, QuaternionIdentity, QuaternionFromMatrix(Matrix4x4Zero))
	assert.Equal(t, QuaternionIdentity, QuaternionFromMatrix(MatrixScale(1, 0, 1)))

	var q Quaternion
	QuaternionFromMatrixInto(MatrixScale(1e-9, 1, 1), &q)
	assert.Equal(t, QuaternionIdentity, q)
}

func TestQuaternionLookAt(t *testing.T) {
	forEachLevel(t, func(t *testing.T) {
		q := QuaternionLookAtFromDirectionUp(Vector3Forward)
		assert.True(t, sameRotation(QuaternionIdentity, q, 1e-6), "look along +z = %v", q)

		q = QuaternionLookAtFromDirectionUp(NewVector3(3, 0, 0))
		m := Matrix4x4FromQuaternion(q)
		if diff := cmp.Diff(Vector3UnitX, m.Row(2).XYZ(), approx(1e-6)); diff != "" {
			t.Errorf("forward row (-want +got):\n%s", diff)
		}
		if diff := cmp.Diff(Vector3Up, m.Row(1).XYZ(), approx(1e-6)); diff != "" {
			t.Errorf("up row (-want +got):\n%s", diff)
		}

		from, to := NewVector3(1, 1, 1), NewVector3(1, 1, 5)
		assert.True(t, sameRotation(QuaternionIdentity, QuaternionLookAtFromPositionUp(from, to), 1e-6))
		assert.Equal(t,
			QuaternionLookAtFromDirection(to.Sub(from), Vector3UnitX),
			QuaternionLookAtFromPosition(from, to, Vector3UnitX))
	})
}

func TestQuaternionLerp(t *testing.T) {
	a, b := QuaternionIdentity, NewQuaternion(0, 0, 1, 0)
	got := QuaternionLerp(a, b, 0.5)
	assert.Equal(t, NewQuaternion(0, 0, 0.5, 0.5), got, "lerp does not renormalize")
	assert.Equal(t, got, a.Lerp(b, 0.5))
	assert.Equal(t, a, QuaternionLerp(a, b, 0))
	assert.Equal(t, b, QuaternionLerp(a, b, 1))

	var out Quaternion
	QuaternionLerpInto(a, b, 0.25, &out)
	assert.Equal(t, NewQuaternion(0, 0, 0.25, 0.75), out)
}

// slerp64 is the textbook spherical interpolation in float64.
func slerp64(a, b Quaternion, t float64) Quaternion {
	av := [4]float64{float64(a.X), float64(a.Y), float64(a.Z), float64(a.W)}
	bv := [4]float64{float64(b.X), float64(b.Y), float64(b.Z), float64(b.W)}
	var d float64
	for i := range av {
		d += av[i] * bv[i]
	}
	if d < 0 {
		d = -d
		for i := range bv {
			bv[i] = -bv[i]
		}
	}
	theta := math.Acos(min(d, 1))
	wa := math.Sin((1-t)*theta) / math.Sin(theta)
	wb := math.Sin(t*theta) / math.Sin(theta)
	var out [4]float32
	for i := range out {
		out[i] = float32(wa*av[i] + wb*bv[i])
	}
	return QuaternionFromVector4(vector4FromLanes(out))
}

func TestQuaternionSlerp(t *testing.T) {
	forEachLevel(t, func(t *testing.T) {
		r := newRand()
		for _i := 0; _i < 200; _i++ {
			a, b := randUnitQuaternion(r), randUnitQuaternion(r)
			tt := r.Float32()

			assert.Equal(t, a, QuaternionSlerp(a, b, 0))
			assert.Equal(t, b, QuaternionSlerp(a, b, 1))
			assert.Equal(t, a, QuaternionSlerp(a, a, tt))

			got := QuaternionSlerp(a, b, tt)
			assert.InDelta(t, 1, got.Magnitude(), 1e-5, "|Slerp(%v, %v, %v)|", a, b, tt)
			if CloseEnough(tt, 0, QuaternionEpsilon) || CloseEnough(tt, 1, QuaternionEpsilon) {
				continue
			}
			if want := slerp64(a, b, float64(tt)); !sameRotation(want, got, 2e-5) {
				t.Errorf("Slerp(%v, %v, %v) = %v, want %v", a, b, tt, got, want)
			}
		}
	})
}

func TestQuaternionSlerpHalfway(t *testing.T) {
	a := QuaternionIdentity
	b := QuaternionRotationDegrees(0, 0, 160)
	for _, tt := range []float32{0.25, 0.5, 0.75} {
		want := QuaternionRotationDegrees(0, 0, 160*tt)
		got := a.Slerp(b, tt)
		assert.True(t, sameRotation(want, got, 2e-5), "t=%v: got %v, want %v", tt, got, want)

		var out Quaternion
		QuaternionSlerpInto(a, b, tt, &out)
		assert.Equal(t, got, out)
	}
}

func TestQuaternionLerpEndpoints(t *testing.T) {
	forEachLevel(t, func(t *testing.T) {
		r := newRand()
		for _i := 0; _i < 1000; _i++ {
			a := QuaternionFromVector4(randVector4(r))
			b := randUnitQuaternion(r)
			assert.True(t, QuaternionLerp(a, b, 0).Equal(a), "Lerp(%v, %v, 0)", a, b)
			assert.True(t, QuaternionLerp(a, b, 1).Equal(b), "Lerp(%v, %v, 1)", a, b)
		}
	})
}
