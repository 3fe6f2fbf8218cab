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

import "golang.org/x/image/math/f32"

// Conversions to and from the plain array types in golang.org/x/image/math/f32.
// Both sides are row-major, so matrices copy element for element.

func (v Vector2) F32() f32.Vec2 { return f32.Vec2{v.X, v.Y} }
func (v Vector3) F32() f32.Vec3 { return f32.Vec3{v.X, v.Y, v.Z} }
func (v Vector4) F32() f32.Vec4 { return f32.Vec4(v.Array()) }

// F32 returns q as an f32.Vec4 in x, y, z, w order.
func (q Quaternion) F32() f32.Vec4 { return q.Vector4().F32() }

func Vector2FromF32(a f32.Vec2) Vector2 { return Vector2{X: a[0], Y: a[1]} }
func Vector3FromF32(a f32.Vec3) Vector3 { return Vector3{X: a[0], Y: a[1], Z: a[2]} }
func Vector4FromF32(a f32.Vec4) Vector4 { return vector4FromLanes(lanes(a)) }

func QuaternionFromF32(a f32.Vec4) Quaternion {
	return QuaternionFromVector4(Vector4FromF32(a))
}

// F32 returns m as an f32.Mat4, where element 4*r+c is row r, column c.
func (m Matrix4x4) F32() f32.Mat4 {
	var a f32.Mat4
	for r, row := range m.R {
		l := row.Array()
		copy(a[4*r:4*r+4], l[:])
	}
	return a
}

// Mat3 returns the upper-left 3x3 block of m, the linear part of an affine
// transform.
func (m Matrix4x4) Mat3() f32.Mat3 {
	var a f32.Mat3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			a[3*r+c] = m.R[r].At(c)
		}
	}
	return a
}

func Matrix4x4FromF32(a f32.Mat4) Matrix4x4 {
	var m Matrix4x4
	for r := range m.R {
		m.R[r] = Vector4{a[4*r], a[4*r+1], a[4*r+2], a[4*r+3]}
	}
	return m
}

// Matrix4x4FromMat3 embeds a in the upper-left block of an identity matrix.
func Matrix4x4FromMat3(a f32.Mat3) Matrix4x4 {
	return Matrix4x4FromRows3(
		NewVector3(a[0], a[1], a[2]),
		NewVector3(a[3], a[4], a[5]),
		NewVector3(a[6], a[7], a[8]),
	)
}
