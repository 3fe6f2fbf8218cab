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
	"math"

	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

// Scalar constants shared by every type.
const (
	// FloatEpsilon is the float32 machine epsilon (2^-23).
	FloatEpsilon float32 = 1.1920929e-07

	Pi     float32 = math.Pi
	Tau    float32 = 2 * math.Pi
	HalfPi float32 = math.Pi / 2

	// Deg2Rad converts degrees to radians by multiplication.
	Deg2Rad float32 = math.Pi / 180
	// Rad2Deg converts radians to degrees by multiplication.
	Rad2Deg float32 = 180 / math.Pi
)

// Sin returns the sine of the radian argument r.
func Sin(r float32) float32 { return math32.Sin(r) }

// Cos returns the cosine of the radian argument r.
func Cos(r float32) float32 { return math32.Cos(r) }

// ATan returns the arctangent, in radians, of x.
func ATan(x float32) float32 { return math32.Atan(x) }

// ATan2 returns the arc tangent of y/x, using the signs of the two to
// determine the quadrant of the return value.
func ATan2(y, x float32) float32 { return math32.Atan2(y, x) }

// ACos returns the arccosine, in radians, of x.
func ACos(x float32) float32 { return math32.Acos(x) }

// Sqrt returns the square root of x.
func Sqrt(x float32) float32 { return math32.Sqrt(x) }

// Abs returns the absolute value of x.
func Abs(x float32) float32 { return math32.Abs(x) }

// CloseEnough reports whether a and b differ by at most epsilon.
func CloseEnough[T constraints.Float](a, b, epsilon T) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= epsilon
}

// clamp limits x to [lo, hi].
func clamp[T constraints.Float](x, lo, hi T) T {
	return min(max(x, lo), hi)
}
