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

//go:build arm64

package gmath

import "golang.org/x/sys/cpu"

func init() {
	// ARM64 always has ASIMD, but there are no NEON lane kernels yet, so the
	// scalar kernels are used and the features are only reported.
	// TODO: add NEON kernels once archsimd grows arm64 vector types.
	cpuFeatures = []CPUFeature{
		{Name: "asimd", Present: cpu.ARM64.HasASIMD},
		{Name: "fp", Present: cpu.ARM64.HasFP},
		{Name: "fphp", Present: cpu.ARM64.HasFPHP},
	}
	detectedLevel = DispatchScalar
	setScalarMode()
}

func useSIMDKernels() {
	useScalarKernels()
}
