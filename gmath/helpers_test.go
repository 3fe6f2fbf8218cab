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
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

// forEachLevel runs fn once per dispatch level available on this machine and
// restores the original level afterwards.
func forEachLevel(t *testing.T, fn func(t *testing.T)) {
	t.Helper()
	prev := CurrentLevel()
	t.Cleanup(func() {
		if err := SetDispatchLevel(prev); err != nil {
			t.Errorf("restore dispatch level %s: %v", prev, err)
		}
	})
	for _, level := range AvailableLevels() {
		t.Run(level.String(), func(t *testing.T) {
			require.NoError(t, SetDispatchLevel(level))
			fn(t)
		})
	}
}

// approx compares float32 values with an absolute margin of tol.
func approx(tol float64) cmp.Option {
	return cmp.Options{
		cmpopts.EquateApprox(0, tol),
		cmpopts.IgnoreUnexported(Vector3{}),
	}
}

// captureAsserts installs a hook that records messages and removes it when
// the test ends.
func captureAsserts(t *testing.T) *[]string {
	t.Helper()
	var msgs []string
	prev := SetAssertHook(func(msg string) { msgs = append(msgs, msg) })
	t.Cleanup(func() { SetAssertHook(prev) })
	return &msgs
}

func newRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

// randFloat returns a value in [-scale, scale).
func randFloat(r *rand.Rand, scale float32) float32 {
	return (r.Float32()*2 - 1) * scale
}

func randVector3(r *rand.Rand) Vector3 {
	return NewVector3(randFloat(r, 10), randFloat(r, 10), randFloat(r, 10))
}

func randVector4(r *rand.Rand) Vector4 {
	return NewVector4(randFloat(r, 10), randFloat(r, 10), randFloat(r, 10), randFloat(r, 10))
}

func randUnitQuaternion(r *rand.Rand) Quaternion {
	for {
		q := QuaternionFromVector4(randVector4(r))
		if q.MagnitudeSquared() > 0.1 {
			return q.Normalized()
		}
	}
}

// sameRotation reports whether a and b are within tol of each other up to
// the sign of the whole quaternion.
func sameRotation(a, b Quaternion, tol float32) bool {
	within := func(s float32) bool {
		return Abs(a.X-s*b.X) <= tol && Abs(a.Y-s*b.Y) <= tol &&
			Abs(a.Z-s*b.Z) <= tol && Abs(a.W-s*b.W) <= tol
	}
	return within(1) || within(-1)
}
