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

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ajroetker/go-gmath/gmath"
)

// vector3Flag is a flag.Value holding a comma-separated x,y,z triple.
type vector3Flag struct {
	v gmath.Vector3
}

func (f *vector3Flag) String() string {
	return fmt.Sprintf("%g,%g,%g", f.v.X, f.v.Y, f.v.Z)
}

func (f *vector3Flag) Set(s string) error {
	v, err := parseVector3(s)
	if err != nil {
		return err
	}
	f.v = v
	return nil
}

func parseVector3(s string) (gmath.Vector3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return gmath.Vector3{}, fmt.Errorf("want x,y,z, got %q", s)
	}
	var c [3]float32
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return gmath.Vector3{}, fmt.Errorf("component %d of %q: %w", i, s, err)
		}
		c[i] = float32(f)
	}
	return gmath.NewVector3(c[0], c[1], c[2]), nil
}
