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

//go:build amd64 && !goexperiment.simd

package gmath

import "golang.org/x/sys/cpu"

// Fallback for when GOEXPERIMENT=simd is not enabled.
// Without archsimd there are no vector kernels to select, so the scalar
// kernels are used. Build with GOEXPERIMENT=simd for the SSE kernels.

func init() {
	detectCPUFeatures()
	detectedLevel = DispatchScalar
	setScalarMode()
}

func detectCPUFeatures() {
	cpuFeatures = []CPUFeature{
		{Name: "sse2", Present: cpu.X86.HasSSE2},
		{Name: "sse3", Present: cpu.X86.HasSSE3},
		{Name: "sse41", Present: cpu.X86.HasSSE41},
		{Name: "avx", Present: cpu.X86.HasAVX},
		{Name: "avx2", Present: cpu.X86.HasAVX2},
		{Name: "fma", Present: cpu.X86.HasFMA},
	}
}

func useSIMDKernels() {
	useScalarKernels()
}
