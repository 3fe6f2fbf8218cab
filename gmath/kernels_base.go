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

// This file provides pure Go (scalar) implementations of the lane kernels.
// They are the fallback on every target and the reference the SIMD kernels
// are tested against.
//
// Products are wrapped in float32() conversions so the compiler cannot fuse
// them into FMA instructions; the vector kernels round every multiply.

func baseAdd4(a, b lanes) lanes {
	return lanes{a[0] + b[0], a[1] + b[1], a[2] + b[2], a[3] + b[3]}
}

func baseSub4(a, b lanes) lanes {
	return lanes{a[0] - b[0], a[1] - b[1], a[2] - b[2], a[3] - b[3]}
}

func baseMul4(a, b lanes) lanes {
	return lanes{float32(a[0] * b[0]), float32(a[1] * b[1]), float32(a[2] * b[2]), float32(a[3] * b[3])}
}

func baseDiv4(a, b lanes) lanes {
	return lanes{a[0] / b[0], a[1] / b[1], a[2] / b[2], a[3] / b[3]}
}

func baseScale4(a lanes, s float32) lanes {
	return lanes{a[0] * s, a[1] * s, a[2] * s, a[3] * s}
}

func baseDot3(a, b lanes) float32 {
	return hsum(maskW(baseMul4(a, b)))
}

func baseDot4(a, b lanes) float32 {
	return hsum(baseMul4(a, b))
}

// baseCross3 computes a.yzx*b.zxy - a.zxy*b.yzx. The fourth lane is
// a.w*b.w - a.w*b.w, which is zero for finite padding.
func baseCross3(a, b lanes) lanes {
	l := lanes{
		float32(a[1] * b[2]),
		float32(a[2] * b[0]),
		float32(a[0] * b[1]),
		float32(a[3] * b[3]),
	}
	r := lanes{
		float32(a[2] * b[1]),
		float32(a[0] * b[2]),
		float32(a[1] * b[0]),
		float32(a[3] * b[3]),
	}
	return baseSub4(l, r)
}

// baseMatMul returns a*b. Row i of the result accumulates a[i][k]*b[k]
// for k = 0..3 in order.
func baseMatMul(a, b *mat4) mat4 {
	var out mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			acc := float32(a[i][0] * b[0][j])
			acc += float32(a[i][1] * b[1][j])
			acc += float32(a[i][2] * b[2][j])
			acc += float32(a[i][3] * b[3][j])
			out[i][j] = acc
		}
	}
	return out
}

// baseMatMulVec returns m*v treating v as a column vector.
func baseMatMulVec(m *mat4, v lanes) lanes {
	var out lanes
	for i := 0; i < 4; i++ {
		acc := float32(m[i][0] * v[0])
		acc += float32(m[i][1] * v[1])
		acc += float32(m[i][2] * v[2])
		acc += float32(m[i][3] * v[3])
		out[i] = acc
	}
	return out
}

// baseMatTranspose transposes m in place with the six off-diagonal swaps.
func baseMatTranspose(m *mat4) {
	m[0][1], m[1][0] = m[1][0], m[0][1]
	m[0][2], m[2][0] = m[2][0], m[0][2]
	m[0][3], m[3][0] = m[3][0], m[0][3]
	m[1][2], m[2][1] = m[2][1], m[1][2]
	m[1][3], m[3][1] = m[3][1], m[1][3]
	m[2][3], m[3][2] = m[3][2], m[2][3]
}
