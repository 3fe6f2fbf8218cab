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

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strconv"
)

// DispatchLevel represents the lane kernel backend currently in use.
type DispatchLevel int

const (
	// DispatchScalar indicates the portable pure Go kernels.
	DispatchScalar DispatchLevel = iota

	// DispatchSSE indicates 128-bit x86 kernels built on simd/archsimd.
	// They need AVX2.
	DispatchSSE

	// DispatchNEON is reserved for 128-bit ARM kernels.
	DispatchNEON
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE:
		return "sse"
	case DispatchNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// ParseDispatchLevel maps a level name as returned by String back to its level.
func ParseDispatchLevel(name string) (DispatchLevel, error) {
	for _, l := range []DispatchLevel{DispatchScalar, DispatchSSE, DispatchNEON} {
		if l.String() == name {
			return l, nil
		}
	}
	return DispatchScalar, fmt.Errorf("gmath: unknown dispatch level %q", name)
}

// ErrLevelUnavailable is returned by SetDispatchLevel when the requested
// kernels were not compiled into this binary or the CPU lacks them.
var ErrLevelUnavailable = errors.New("gmath: dispatch level unavailable")

// currentLevel is the active kernel backend.
// Set by init() in dispatch_*.go files.
var currentLevel DispatchLevel

// detectedLevel is the best level found at init, before any override.
var detectedLevel DispatchLevel

// CurrentLevel returns the kernel backend being used.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentName returns a human-readable name for the current backend.
func CurrentName() string {
	return currentLevel.String()
}

// AvailableLevels returns every level SetDispatchLevel accepts on this
// machine, scalar first.
func AvailableLevels() []DispatchLevel {
	levels := []DispatchLevel{DispatchScalar}
	if detectedLevel != DispatchScalar {
		levels = append(levels, detectedLevel)
	}
	return levels
}

// SetDispatchLevel switches the lane kernels. It is meant for tests,
// benchmarks and command line tools; it must not race with arithmetic running
// on other goroutines.
func SetDispatchLevel(level DispatchLevel) error {
	if !slices.Contains(AvailableLevels(), level) {
		return fmt.Errorf("%w: %s (detected %s)", ErrLevelUnavailable, level, detectedLevel)
	}
	if level == DispatchScalar {
		useScalarKernels()
	} else {
		useSIMDKernels()
	}
	currentLevel = level
	return nil
}

// NoSimdEnv checks if the GMATH_NO_SIMD environment variable is set.
// When set, the scalar kernels are used regardless of CPU capabilities.
func NoSimdEnv() bool {
	val := os.Getenv("GMATH_NO_SIMD")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// CPUFeature is one instruction set extension reported by CPUFeatures.
type CPUFeature struct {
	Name    string
	Present bool
}

// cpuFeatures is filled by the dispatch_*.go init for this architecture.
var cpuFeatures []CPUFeature

// CPUFeatures reports the instruction set extensions relevant to the lane
// kernels, as seen by golang.org/x/sys/cpu.
func CPUFeatures() []CPUFeature {
	return slices.Clone(cpuFeatures)
}

func setScalarMode() {
	useScalarKernels()
	currentLevel = DispatchScalar
}
