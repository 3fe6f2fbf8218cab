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

//go:build amd64 && goexperiment.simd

package gmath

import "simd/archsimd"

// This file provides the 128-bit lane kernels built on archsimd.Float32x4.
// Horizontal reductions store the vector and sum in lane order, matching
// the scalar kernels bit for bit.

func useSIMDKernels() {
	add4 = sseAdd4
	sub4 = sseSub4
	mul4 = sseMul4
	div4 = sseDiv4
	scale4 = sseScale4
	dot3 = sseDot3
	dot4 = sseDot4
	cross3 = sseCross3
	matMul = sseMatMul
	matMulVec = sseMatMulVec
	matTranspose = baseMatTranspose
}

func load4(l *lanes) archsimd.Float32x4 {
	return archsimd.LoadFloat32x4Slice(l[:])
}

func store4(v archsimd.Float32x4) lanes {
	var out lanes
	v.Store(&out)
	return out
}

func sseAdd4(a, b lanes) lanes {
	return store4(load4(&a).Add(load4(&b)))
}

func sseSub4(a, b lanes) lanes {
	return store4(load4(&a).Sub(load4(&b)))
}

func sseMul4(a, b lanes) lanes {
	return store4(load4(&a).Mul(load4(&b)))
}

func sseDiv4(a, b lanes) lanes {
	return store4(load4(&a).Div(load4(&b)))
}

func sseScale4(a lanes, s float32) lanes {
	return store4(load4(&a).Mul(archsimd.BroadcastFloat32x4(s)))
}

func sseDot3(a, b lanes) float32 {
	return hsum(maskW(sseMul4(a, b)))
}

func sseDot4(a, b lanes) float32 {
	return hsum(sseMul4(a, b))
}

func sseCross3(a, b lanes) lanes {
	ayzx := lanes{a[1], a[2], a[0], a[3]}
	bzxy := lanes{b[2], b[0], b[1], b[3]}
	azxy := lanes{a[2], a[0], a[1], a[3]}
	byzx := lanes{b[1], b[2], b[0], b[3]}
	l := load4(&ayzx).Mul(load4(&bzxy))
	r := load4(&azxy).Mul(load4(&byzx))
	return store4(l.Sub(r))
}

// sseMatMul broadcasts a[i][k] across row k of b and accumulates, which is
// the same per-lane order as baseMatMul.
func sseMatMul(a, b *mat4) mat4 {
	b0, b1, b2, b3 := load4(&b[0]), load4(&b[1]), load4(&b[2]), load4(&b[3])
	var out mat4
	for i := 0; i < 4; i++ {
		acc := archsimd.BroadcastFloat32x4(a[i][0]).Mul(b0)
		acc = acc.Add(archsimd.BroadcastFloat32x4(a[i][1]).Mul(b1))
		acc = acc.Add(archsimd.BroadcastFloat32x4(a[i][2]).Mul(b2))
		acc = acc.Add(archsimd.BroadcastFloat32x4(a[i][3]).Mul(b3))
		acc.Store(&out[i])
	}
	return out
}

// sseMatMulVec accumulates the columns of m scaled by the lanes of v.
func sseMatMulVec(m *mat4, v lanes) lanes {
	c0 := lanes{m[0][0], m[1][0], m[2][0], m[3][0]}
	c1 := lanes{m[0][1], m[1][1], m[2][1], m[3][1]}
	c2 := lanes{m[0][2], m[1][2], m[2][2], m[3][2]}
	c3 := lanes{m[0][3], m[1][3], m[2][3], m[3][3]}
	acc := load4(&c0).Mul(archsimd.BroadcastFloat32x4(v[0]))
	acc = acc.Add(load4(&c1).Mul(archsimd.BroadcastFloat32x4(v[1])))
	acc = acc.Add(load4(&c2).Mul(archsimd.BroadcastFloat32x4(v[2])))
	acc = acc.Add(load4(&c3).Mul(archsimd.BroadcastFloat32x4(v[3])))
	return store4(acc)
}
