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

import (
	"simd/archsimd"

	"golang.org/x/sys/cpu"
)

func init() {
	detectCPUFeatures()

	// The 128-bit kernels are VEX encoded and broadcast through AVX2.
	if !archsimd.X86.AVX2() {
		detectedLevel = DispatchScalar
		setScalarMode()
		return
	}
	detectedLevel = DispatchSSE

	// Check if SIMD is disabled via environment variable
	if NoSimdEnv() {
		setScalarMode()
		return
	}

	useSIMDKernels()
	currentLevel = DispatchSSE
}

func detectCPUFeatures() {
	cpuFeatures = []CPUFeature{
		{Name: "sse2", Present: cpu.X86.HasSSE2},
		{Name: "sse3", Present: cpu.X86.HasSSE3},
		{Name: "sse41", Present: cpu.X86.HasSSE41},
		{Name: "avx", Present: archsimd.X86.AVX()},
		{Name: "avx2", Present: archsimd.X86.AVX2()},
		{Name: "fma", Present: cpu.X86.HasFMA},
	}
}
