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

// Package gmath provides small fixed-size float32 geometry types for real-time
// 3D work: Vector2, Vector3, Vector4, Matrix4x4 and Quaternion.
//
// All types are plain values. Arithmetic on the 4-lane types (Vector3, Vector4,
// Quaternion, Matrix4x4 rows) runs through a set of lane kernels that are
// selected at init time from the CPU features and build configuration:
//
//   - amd64 built with GOEXPERIMENT=simd, on a CPU with AVX2, uses simd/archsimd
//     Float32x4 kernels.
//   - every other build uses the portable scalar kernels.
//
// Both backends compute every lane in the same order, so results match across
// targets. Set GMATH_NO_SIMD=1 to force the scalar kernels at runtime.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-gmath/gmath"
//
//	m := gmath.MatrixTranslation(1, 2, 3).Mul(gmath.MatrixRotationZDegrees(90))
//	p := gmath.NewVector3(1, 0, 0)
//	m.Transform(&p)
//
//	q := gmath.QuaternionSlerp(a, b, 0.25)
//
// Go has no operator overloading, so operators are methods: Add, Sub, Mul, Div
// for vector operands, AddScalar and friends for scalar operands, and
// Less/Greater/Equal for comparisons. Ordering comparisons between vectors
// compare squared magnitudes; Equal compares components within the type's
// Epsilon.
//
// Degenerate numeric input never produces an error. Normalizing a zero vector,
// inverting a zero quaternion or extracting a rotation from a collapsed matrix
// return a well defined value (the input unchanged, or the identity). Caller
// mistakes such as a zero-width projection are reported to the AssertHook.
package gmath
