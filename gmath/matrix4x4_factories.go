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

// This file holds the canonical matrix factories. Each one comes in two
// forms: FooInto(args..., out) writes the caller's matrix, and Foo(args...)
// returns a new matrix by delegating to FooInto. Degree variants convert to
// radians and call the radian variant.

// MatrixUniformScaleInto stores a scale by s on all three axes in out.
func MatrixUniformScaleInto(s float32, out *Matrix4x4) {
	MatrixScaleInto(s, s, s, out)
}

// MatrixScaleInto stores a per-axis scale in out.
func MatrixScaleInto(x, y, z float32, out *Matrix4x4) {
	*out = NewMatrix4x4(
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	)
}

// MatrixScaleVectorInto stores a scale by the components of v in out.
func MatrixScaleVectorInto(v Vector3, out *Matrix4x4) {
	MatrixScaleInto(v.X, v.Y, v.Z, out)
}

// MatrixTranslationInto stores a translation by (x, y, z) in out.
func MatrixTranslationInto(x, y, z float32, out *Matrix4x4) {
	*out = NewMatrix4x4(
		1, 0, 0, x,
		0, 1, 0, y,
		0, 0, 1, z,
		0, 0, 0, 1,
	)
}

// MatrixTranslationVectorInto stores a translation by v in out.
func MatrixTranslationVectorInto(v Vector3, out *Matrix4x4) {
	MatrixTranslationInto(v.X, v.Y, v.Z, out)
}

// MatrixRotationXRadiansInto stores a rotation about the x axis in out.
func MatrixRotationXRadiansInto(radians float32, out *Matrix4x4) {
	c, s := Cos(radians), Sin(radians)
	*out = NewMatrix4x4(
		1, 0, 0, 0,
		0, c, -s, 0,
		0, s, c, 0,
		0, 0, 0, 1,
	)
}

// MatrixRotationYRadiansInto stores a rotation about the y axis in out.
func MatrixRotationYRadiansInto(radians float32, out *Matrix4x4) {
	c, s := Cos(radians), Sin(radians)
	*out = NewMatrix4x4(
		c, 0, -s, 0,
		0, 1, 0, 0,
		s, 0, c, 0,
		0, 0, 0, 1,
	)
}

// MatrixRotationZRadiansInto stores a rotation about the z axis in out.
func MatrixRotationZRadiansInto(radians float32, out *Matrix4x4) {
	c, s := Cos(radians), Sin(radians)
	*out = NewMatrix4x4(
		c, -s, 0, 0,
		s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	)
}

// MatrixRotationRadiansInto stores the combined rotation Ry*(Rx*Rz) in out.
// The y rotation is built in out first and then multiplied by Rx*Rz; this
// order is part of the contract.
func MatrixRotationRadiansInto(x, y, z float32, out *Matrix4x4) {
	var mx, mz Matrix4x4
	MatrixRotationXRadiansInto(x, &mx)
	MatrixRotationYRadiansInto(y, out)
	MatrixRotationZRadiansInto(z, &mz)
	*out = out.Mul(mx.Mul(mz))
}

// MatrixRotationVectorRadiansInto is MatrixRotationRadiansInto with the
// angles taken from v.
func MatrixRotationVectorRadiansInto(v Vector3, out *Matrix4x4) {
	MatrixRotationRadiansInto(v.X, v.Y, v.Z, out)
}

// MatrixAxisAngleRadiansInto stores the Rodrigues rotation about axis in out.
// axis is used as given; pass a unit vector.
func MatrixAxisAngleRadiansInto(axis Vector3, radians float32, out *Matrix4x4) {
	c, s := Cos(radians), Sin(radians)
	t := 1 - c
	x, y, z := axis.X, axis.Y, axis.Z
	*out = NewMatrix4x4(
		t*x*x+c, t*x*y-z*s, t*x*z+y*s, 0,
		t*x*y+z*s, t*y*y+c, t*y*z-x*s, 0,
		t*x*z-y*s, t*y*z+x*s, t*z*z+c, 0,
		0, 0, 0, 1,
	)
}

func MatrixRotationXDegreesInto(degrees float32, out *Matrix4x4) {
	MatrixRotationXRadiansInto(degrees*Deg2Rad, out)
}

func MatrixRotationYDegreesInto(degrees float32, out *Matrix4x4) {
	MatrixRotationYRadiansInto(degrees*Deg2Rad, out)
}

func MatrixRotationZDegreesInto(degrees float32, out *Matrix4x4) {
	MatrixRotationZRadiansInto(degrees*Deg2Rad, out)
}

func MatrixRotationDegreesInto(x, y, z float32, out *Matrix4x4) {
	MatrixRotationRadiansInto(x*Deg2Rad, y*Deg2Rad, z*Deg2Rad, out)
}

func MatrixRotationVectorDegreesInto(v Vector3, out *Matrix4x4) {
	MatrixRotationVectorRadiansInto(v.MulScalar(Deg2Rad), out)
}

func MatrixAxisAngleDegreesInto(axis Vector3, degrees float32, out *Matrix4x4) {
	MatrixAxisAngleRadiansInto(axis, degrees*Deg2Rad, out)
}

// MatrixOrthographicProjectionInto stores an orthographic projection for a
// w by h view volume between near plane n and far plane f in out.
// Zero width or height is reported to the AssertHook.
func MatrixOrthographicProjectionInto(w, h, n, f float32, out *Matrix4x4) {
	failFast(w != 0, "MatrixOrthographicProjection: width (w) should not be zero")
	failFast(h != 0, "MatrixOrthographicProjection: height (h) should not be zero")
	*out = NewMatrix4x4(
		1/w, 0, 0, 0,
		0, 1/h, 0, 0,
		0, 0, f-n, 0,
		0, 0, n*(f-n), 1,
	)
}

// MatrixPerspectiveProjectionRadiansInto stores a perspective projection
// with horizontal and vertical fields of view fovx and fovy in out.
// Equal near and far planes are reported to the AssertHook.
func MatrixPerspectiveProjectionRadiansInto(fovx, fovy, n, f float32, out *Matrix4x4) {
	failFast(n != f, "MatrixPerspectiveProjection: near (n) and far (f) should not be equal")
	*out = NewMatrix4x4(
		ATan(fovx/2), 0, 0, 0,
		0, ATan(fovy/2), 0, 0,
		0, 0, f/(f-n), 1,
		0, 0, -n*(f/-n), 1,
	)
}

func MatrixPerspectiveProjectionDegreesInto(fovx, fovy, n, f float32, out *Matrix4x4) {
	MatrixPerspectiveProjectionRadiansInto(fovx*Deg2Rad, fovy*Deg2Rad, n, f, out)
}

// MatrixLookAtFromPositionInto stores a view matrix for an eye at from
// looking at to in out. The side axis is up × forward and the up axis is
// rebuilt as forward × side, so up only has to be non-parallel to the view
// direction.
func MatrixLookAtFromPositionInto(from, to, up Vector3, out *Matrix4x4) {
	x, y, z := lookAtBasis(to.Sub(from), up)
	*out = NewMatrix4x4(
		x.X, y.X, z.X, 0,
		x.Y, y.Y, z.Y, 0,
		x.Z, y.Z, z.Z, 0,
		-x.Dot(from), -y.Dot(from), -z.Dot(from), 1,
	)
}

// MatrixLookAtFromDirectionInto stores a rotation-only view matrix looking
// along direction in out.
func MatrixLookAtFromDirectionInto(direction, up Vector3, out *Matrix4x4) {
	x, y, z := lookAtBasis(direction, up)
	*out = NewMatrix4x4(
		x.X, y.X, z.X, 0,
		x.Y, y.Y, z.Y, 0,
		x.Z, y.Z, z.Z, 0,
		0, 0, 0, 1,
	)
}

// lookAtBasis returns the right-handed side, up and forward axes for a view
// along direction.
func lookAtBasis(direction, up Vector3) (side, newUp, forward Vector3) {
	forward = direction.Normalized()
	side = up.Cross(forward).Normalized()
	newUp = forward.Cross(side)
	return side, newUp, forward
}

// Value forms.

func MatrixUniformScale(s float32) Matrix4x4 {
	var m Matrix4x4
	MatrixUniformScaleInto(s, &m)
	return m
}

func MatrixScale(x, y, z float32) Matrix4x4 {
	var m Matrix4x4
	MatrixScaleInto(x, y, z, &m)
	return m
}

func MatrixScaleVector(v Vector3) Matrix4x4 {
	var m Matrix4x4
	MatrixScaleVectorInto(v, &m)
	return m
}

func MatrixTranslation(x, y, z float32) Matrix4x4 {
	var m Matrix4x4
	MatrixTranslationInto(x, y, z, &m)
	return m
}

func MatrixTranslationVector(v Vector3) Matrix4x4 {
	var m Matrix4x4
	MatrixTranslationVectorInto(v, &m)
	return m
}

func MatrixRotationXRadians(radians float32) Matrix4x4 {
	var m Matrix4x4
	MatrixRotationXRadiansInto(radians, &m)
	return m
}

func MatrixRotationYRadians(radians float32) Matrix4x4 {
	var m Matrix4x4
	MatrixRotationYRadiansInto(radians, &m)
	return m
}

func MatrixRotationZRadians(radians float32) Matrix4x4 {
	var m Matrix4x4
	MatrixRotationZRadiansInto(radians, &m)
	return m
}

func MatrixRotationRadians(x, y, z float32) Matrix4x4 {
	var m Matrix4x4
	MatrixRotationRadiansInto(x, y, z, &m)
	return m
}

func MatrixRotationVectorRadians(v Vector3) Matrix4x4 {
	var m Matrix4x4
	MatrixRotationVectorRadiansInto(v, &m)
	return m
}

func MatrixAxisAngleRadians(axis Vector3, radians float32) Matrix4x4 {
	var m Matrix4x4
	MatrixAxisAngleRadiansInto(axis, radians, &m)
	return m
}

func MatrixRotationXDegrees(degrees float32) Matrix4x4 {
	var m Matrix4x4
	MatrixRotationXDegreesInto(degrees, &m)
	return m
}

func MatrixRotationYDegrees(degrees float32) Matrix4x4 {
	var m Matrix4x4
	MatrixRotationYDegreesInto(degrees, &m)
	return m
}

func MatrixRotationZDegrees(degrees float32) Matrix4x4 {
	var m Matrix4x4
	MatrixRotationZDegreesInto(degrees, &m)
	return m
}

func MatrixRotationDegrees(x, y, z float32) Matrix4x4 {
	var m Matrix4x4
	MatrixRotationDegreesInto(x, y, z, &m)
	return m
}

func MatrixRotationVectorDegrees(v Vector3) Matrix4x4 {
	var m Matrix4x4
	MatrixRotationVectorDegreesInto(v, &m)
	return m
}

func MatrixAxisAngleDegrees(axis Vector3, degrees float32) Matrix4x4 {
	var m Matrix4x4
	MatrixAxisAngleDegreesInto(axis, degrees, &m)
	return m
}

func MatrixOrthographicProjection(w, h, n, f float32) Matrix4x4 {
	var m Matrix4x4
	MatrixOrthographicProjectionInto(w, h, n, f, &m)
	return m
}

func MatrixPerspectiveProjectionRadians(fovx, fovy, n, f float32) Matrix4x4 {
	var m Matrix4x4
	MatrixPerspectiveProjectionRadiansInto(fovx, fovy, n, f, &m)
	return m
}

func MatrixPerspectiveProjectionDegrees(fovx, fovy, n, f float32) Matrix4x4 {
	var m Matrix4x4
	MatrixPerspectiveProjectionDegreesInto(fovx, fovy, n, f, &m)
	return m
}

func MatrixLookAtFromPosition(from, to, up Vector3) Matrix4x4 {
	var m Matrix4x4
	MatrixLookAtFromPositionInto(from, to, up, &m)
	return m
}

// MatrixLookAtFromPositionUp is MatrixLookAtFromPosition with Vector3Up.
func MatrixLookAtFromPositionUp(from, to Vector3) Matrix4x4 {
	return MatrixLookAtFromPosition(from, to, Vector3Up)
}

func MatrixLookAtFromDirection(direction, up Vector3) Matrix4x4 {
	var m Matrix4x4
	MatrixLookAtFromDirectionInto(direction, up, &m)
	return m
}

// MatrixLookAtFromDirectionUp is MatrixLookAtFromDirection with Vector3Up.
func MatrixLookAtFromDirectionUp(direction Vector3) Matrix4x4 {
	return MatrixLookAtFromDirection(direction, Vector3Up)
}
