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

// lanes is the 4-wide storage unit every kernel works on. Vector3, Vector4,
// Quaternion and each Matrix4x4 row convert to and from it by value.
type lanes = [4]float32

// mat4 is a row-major 4x4 block of lanes.
type mat4 = [4]lanes

// Lane kernels. They start out as the scalar implementations and are
// replaced by useSIMDKernels when the dispatch init selects a vector target.
// Every implementation must evaluate each lane with the same operation order
// as the base version so both targets produce the same bits.
var (
	add4   = baseAdd4
	sub4   = baseSub4
	mul4   = baseMul4
	div4   = baseDiv4
	scale4 = baseScale4
	dot3   = baseDot3
	dot4   = baseDot4
	cross3 = baseCross3

	matMul       = baseMatMul
	matMulVec    = baseMatMulVec
	matTranspose = baseMatTranspose
)

func useScalarKernels() {
	add4 = baseAdd4
	sub4 = baseSub4
	mul4 = baseMul4
	div4 = baseDiv4
	scale4 = baseScale4
	dot3 = baseDot3
	dot4 = baseDot4
	cross3 = baseCross3
	matMul = baseMatMul
	matMulVec = baseMatMulVec
	matTranspose = baseMatTranspose
}

// maskW clears the fourth lane of a product before a horizontal sum, so that
// 3-wide reductions never see whatever the padding lane of a Vector3 holds.
// Both backends reduce through this helper.
func maskW(p lanes) lanes {
	p[3] = 0
	return p
}

// hsum adds the lanes left to right.
func hsum(p lanes) float32 {
	return p[0] + p[1] + p[2] + p[3]
}

func splat(f float32) lanes {
	return lanes{f, f, f, f}
}
