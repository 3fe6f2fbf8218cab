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

import "testing"

var (
	sinkVector3    Vector3
	sinkMatrix     Matrix4x4
	sinkQuaternion Quaternion
	sinkFloat      float32
)

// benchLevels runs fn as a sub-benchmark per available dispatch level.
func benchLevels(b *testing.B, fn func(b *testing.B)) {
	prev := CurrentLevel()
	defer SetDispatchLevel(prev)
	for _, level := range AvailableLevels() {
		if err := SetDispatchLevel(level); err != nil {
			b.Fatal(err)
		}
		b.Run(level.String(), fn)
	}
}

func BenchmarkVector3Cross(b *testing.B) {
	x, y := NewVector3(1, 2, 3), NewVector3(-4, 5, 0.5)
	benchLevels(b, func(b *testing.B) {
		for b.Loop() {
			sinkVector3 = x.Cross(y)
		}
	})
}

func BenchmarkVector3Normalize(b *testing.B) {
	v := NewVector3(1, 2, 3)
	benchLevels(b, func(b *testing.B) {
		for b.Loop() {
			sinkVector3 = v.Normalized()
		}
	})
}

func BenchmarkMatrixMul(b *testing.B) {
	m := MatrixRotationDegrees(10, 20, 30)
	n := MatrixTranslation(1, 2, 3)
	benchLevels(b, func(b *testing.B) {
		for b.Loop() {
			sinkMatrix = m.Mul(n)
		}
	})
}

func BenchmarkMatrixTransform(b *testing.B) {
	m := MatrixRotationDegrees(10, 20, 30).Mul(MatrixTranslation(1, 2, 3))
	benchLevels(b, func(b *testing.B) {
		v := NewVector3(1, 1, 1)
		for b.Loop() {
			m.Transform(&v)
		}
		sinkVector3 = v
	})
}

func BenchmarkQuaternionSlerp(b *testing.B) {
	q0 := QuaternionRotationDegrees(0, 0, 0)
	q1 := QuaternionRotationDegrees(30, 60, 90)
	benchLevels(b, func(b *testing.B) {
		for b.Loop() {
			sinkQuaternion = QuaternionSlerp(q0, q1, 0.3)
		}
	})
}

func BenchmarkQuaternionFromMatrix(b *testing.B) {
	m := Matrix4x4FromQuaternion(QuaternionRotationDegrees(30, 60, 90))
	benchLevels(b, func(b *testing.B) {
		for b.Loop() {
			sinkQuaternion = QuaternionFromMatrix(m)
		}
	})
}

func BenchmarkVector4Dot(b *testing.B) {
	x, y := NewVector4(1, 2, 3, 4), NewVector4(4, 3, 2, 1)
	benchLevels(b, func(b *testing.B) {
		for b.Loop() {
			sinkFloat = x.Dot(y)
		}
	})
}
