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

// Matrix4x4 is a row-major 4x4 matrix. R[i] is row i, and R[i].At(j) is the
// element in row i, column j. Vectors are treated as columns: Transform
// computes M*v, so translation lives in the W column of the first three rows.
//
// Nothing forces a Matrix4x4 to be orthonormal; scaled and skewed matrices
// are valid values.
type Matrix4x4 struct {
	R [4]Vector4
}

// Named matrices. They are never modified by this package.
var (
	Matrix4x4Identity = Matrix4x4{R: [4]Vector4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}}
	Matrix4x4One  = Matrix4x4Splat(1)
	Matrix4x4Zero = Matrix4x4{}
)

// NewMatrix4x4 builds a matrix from 16 values given row by row.
func NewMatrix4x4(
	a0, b0, c0, d0,
	a1, b1, c1, d1,
	a2, b2, c2, d2,
	a3, b3, c3, d3 float32,
) Matrix4x4 {
	return Matrix4x4{R: [4]Vector4{
		{a0, b0, c0, d0},
		{a1, b1, c1, d1},
		{a2, b2, c2, d2},
		{a3, b3, c3, d3},
	}}
}

// Matrix4x4Splat returns a matrix with every element set to f.
func Matrix4x4Splat(f float32) Matrix4x4 {
	r := Vector4Splat(f)
	return Matrix4x4{R: [4]Vector4{r, r, r, r}}
}

// Matrix4x4FromRows builds a matrix from four rows.
func Matrix4x4FromRows(r0, r1, r2, r3 Vector4) Matrix4x4 {
	return Matrix4x4{R: [4]Vector4{r0, r1, r2, r3}}
}

// Matrix4x4FromRows3 builds a matrix whose first three rows are r0, r1 and r2
// with w = 0, and whose last row is (0, 0, 0, 1).
func Matrix4x4FromRows3(r0, r1, r2 Vector3) Matrix4x4 {
	return Matrix4x4{R: [4]Vector4{r0.Vec4(), r1.Vec4(), r2.Vec4(), Vector4UnitW}}
}

// Matrix4x4FromQuaternion returns the rotation matrix of q. q is expected to
// be unit length; the result carries no scale or translation.
func Matrix4x4FromQuaternion(q Quaternion) Matrix4x4 {
	v := q.Vector4()
	q2 := v.Add(v)
	qq2 := v.Mul(q2)
	wq2 := q2.MulScalar(q.W)

	xy2 := q.X * q2.Y
	xz2 := q.X * q2.Z
	yz2 := q.Y * q2.Z

	return Matrix4x4{R: [4]Vector4{
		{1 - qq2.Y - qq2.Z, xy2 + wq2.Z, xz2 - wq2.Y, 0},
		{xy2 - wq2.Z, 1 - qq2.X - qq2.Z, yz2 + wq2.X, 0},
		{xz2 + wq2.Y, yz2 - wq2.X, 1 - qq2.X - qq2.Y, 0},
		Vector4UnitW,
	}}
}

func (m *Matrix4x4) lanes() mat4 {
	return mat4{m.R[0].lanes(), m.R[1].lanes(), m.R[2].lanes(), m.R[3].lanes()}
}

func matrixFromLanes(l *mat4) Matrix4x4 {
	return Matrix4x4{R: [4]Vector4{
		vector4FromLanes(l[0]),
		vector4FromLanes(l[1]),
		vector4FromLanes(l[2]),
		vector4FromLanes(l[3]),
	}}
}

// Row returns row i.
func (m Matrix4x4) Row(i int) Vector4 {
	if SafeIndex {
		i &= 0b11
	}
	return m.R[i]
}

// Column returns column j.
func (m Matrix4x4) Column(j int) Vector4 {
	return Vector4{m.R[0].At(j), m.R[1].At(j), m.R[2].At(j), m.R[3].At(j)}
}

// At returns the element in row i, column j.
func (m Matrix4x4) At(i, j int) float32 {
	return m.Row(i).At(j)
}

// SetAt sets the element in row i, column j.
func (m *Matrix4x4) SetAt(i, j int, f float32) {
	if SafeIndex {
		i &= 0b11
	}
	m.R[i].SetAt(j, f)
}

// Mul returns the matrix product m*o.
func (m Matrix4x4) Mul(o Matrix4x4) Matrix4x4 {
	a, b := m.lanes(), o.lanes()
	out := matMul(&a, &b)
	return matrixFromLanes(&out)
}

// MulVector4 returns m*v with v as a column vector.
func (m Matrix4x4) MulVector4(v Vector4) Vector4 {
	a := m.lanes()
	return vector4FromLanes(matMulVec(&a, v.lanes()))
}

// Transform replaces v with the xyz part of m*(v, 1) and returns m so calls
// can be chained. The widening gives v point semantics; use TransformVector4
// with w = 0 for directions.
func (m Matrix4x4) Transform(v *Vector3) Matrix4x4 {
	*v = m.MulVector4(v.Point()).XYZ()
	return m
}

// TransformVector4 replaces v with m*v and returns m so calls can be chained.
func (m Matrix4x4) TransformVector4(v *Vector4) Matrix4x4 {
	*v = m.MulVector4(*v)
	return m
}

// Transpose returns the transpose of m.
func (m Matrix4x4) Transpose() Matrix4x4 {
	m.MakeTranspose()
	return m
}

// MakeTranspose transposes m in place.
func (m *Matrix4x4) MakeTranspose() {
	l := m.lanes()
	matTranspose(&l)
	*m = matrixFromLanes(&l)
}

// Equal reports whether every element of m is within Vector4Epsilon of o.
func (m Matrix4x4) Equal(o Matrix4x4) bool {
	for i := range m.R {
		if !m.R[i].Equal(o.R[i]) {
			return false
		}
	}
	return true
}
