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
	"strconv"
	"strings"
)

// The String methods are for debugging output. The text is not meant to be
// parsed back.

func (v Vector2) String() string {
	return formatFields([]string{"x", "y", "mag"}, v.X, v.Y, v.Magnitude())
}

func (v Vector3) String() string {
	return formatFields([]string{"x", "y", "z", "mag"}, v.X, v.Y, v.Z, v.Magnitude())
}

func (v Vector4) String() string {
	return formatFields([]string{"x", "y", "z", "w", "mag"}, v.X, v.Y, v.Z, v.W, v.Magnitude())
}

func (q Quaternion) String() string {
	return formatFields([]string{"x", "y", "z", "w"}, q.X, q.Y, q.Z, q.W)
}

// String renders one row per line.
func (m Matrix4x4) String() string {
	var b strings.Builder
	for i, r := range m.R {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteByte('[')
		for j, f := range r.Array() {
			if j > 0 {
				b.WriteString(", ")
			}
			b.WriteString(formatFloat(f))
		}
		b.WriteByte(']')
	}
	return b.String()
}

func formatFields(names []string, values ...float32) string {
	var b strings.Builder
	b.WriteByte('(')
	for i, name := range names {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(name)
		b.WriteByte(':')
		b.WriteString(formatFloat(values[i]))
	}
	b.WriteByte(')')
	return b.String()
}

func formatFloat(f float32) string {
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}
