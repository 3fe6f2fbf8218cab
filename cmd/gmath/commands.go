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
	"flag"
	"fmt"
	"io"

	"github.com/ajroetker/go-gmath/gmath"
	"go.uber.org/zap"
)

func runInfo(args []string, out io.Writer, logger *zap.Logger) error {
	fs := flag.NewFlagSet("info", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	fmt.Fprintf(out, "dispatch:  %s\n", gmath.CurrentName())
	fmt.Fprintf(out, "available: %v\n", gmath.AvailableLevels())
	fmt.Fprintf(out, "no-simd:   %v\n", gmath.NoSimdEnv())
	for _, f := range gmath.CPUFeatures() {
		fmt.Fprintf(out, "cpu:       %-6s %v\n", f.Name, f.Present)
	}
	return nil
}

func runRotate(args []string, out io.Writer, logger *zap.Logger) error {
	fs := flag.NewFlagSet("rotate", flag.ContinueOnError)
	var euler, point vector3Flag
	fs.Var(&euler, "euler", "Rotation about x,y,z in degrees")
	fs.Var(&point, "point", "Point to rotate, as x,y,z")
	useQuat := fs.Bool("quat", false, "Rotate through a quaternion instead of the Euler matrix")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var m gmath.Matrix4x4
	if *useQuat {
		q := gmath.QuaternionRotationVectorDegrees(euler.v)
		logger.Debug("rotation", zap.Stringer("quaternion", q))
		m = gmath.Matrix4x4FromQuaternion(q)
	} else {
		m = gmath.MatrixRotationVectorDegrees(euler.v)
	}
	logger.Debug("rotation", zap.Stringer("matrix", m))

	p := point.v
	m.Transform(&p)
	fmt.Fprintln(out, p)
	return nil
}

func runSlerp(args []string, out io.Writer, logger *zap.Logger) error {
	fs := flag.NewFlagSet("slerp", flag.ContinueOnError)
	var from, to vector3Flag
	fs.Var(&from, "from", "Start rotation about x,y,z in degrees")
	fs.Var(&to, "to", "End rotation about x,y,z in degrees")
	steps := fs.Int("steps", 4, "Number of intervals between the two rotations")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *steps < 1 {
		return fmt.Errorf("steps must be at least 1, got %d", *steps)
	}

	a := gmath.QuaternionRotationVectorDegrees(from.v)
	b := gmath.QuaternionRotationVectorDegrees(to.v)
	logger.Debug("slerp endpoints", zap.Stringer("from", a), zap.Stringer("to", b))
	for i := 0; i <= *steps; i++ {
		t := float32(i) / float32(*steps)
		q := gmath.QuaternionSlerp(a, b, t)
		axis, angle := q.AxisAngleDegrees()
		fmt.Fprintf(out, "t=%.3f %v axis=%v angle=%.3f\n", t, q, axis, angle)
	}
	return nil
}

func runLookAt(args []string, out io.Writer, logger *zap.Logger) error {
	fs := flag.NewFlagSet("lookat", flag.ContinueOnError)
	from, to := vector3Flag{}, vector3Flag{}
	up := vector3Flag{v: gmath.Vector3Up}
	fs.Var(&from, "from", "Eye position, as x,y,z")
	fs.Var(&to, "to", "Target position, as x,y,z")
	fs.Var(&up, "up", "Up direction, as x,y,z")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if from.v.Equal(to.v) {
		return fmt.Errorf("from and to are the same point %v", from.v)
	}
	if to.v.Sub(from.v).Cross(up.v).IsZero() {
		logger.Warn("up is parallel to the view direction; the basis is degenerate",
			zap.Stringer("up", up.v))
	}

	m := gmath.MatrixLookAtFromPosition(from.v, to.v, up.v)
	q := gmath.QuaternionLookAtFromPosition(from.v, to.v, up.v)
	fmt.Fprintln(out, m)
	fmt.Fprintln(out, q)
	return nil
}

func runProject(args []string, out io.Writer, logger *zap.Logger) error {
	fs := flag.NewFlagSet("project", flag.ContinueOnError)
	fov := fs.Float64("fov", 90, "Horizontal and vertical field of view in degrees")
	near := fs.Float64("near", 0.1, "Near plane distance")
	far := fs.Float64("far", 100, "Far plane distance")
	var point vector3Flag
	fs.Var(&point, "point", "Point to project, as x,y,z")
	if err := fs.Parse(args); err != nil {
		return err
	}

	// Equal planes are reported through the assertion hook installed by main.
	f := float32(*fov)
	m := gmath.MatrixPerspectiveProjectionDegrees(f, f, float32(*near), float32(*far))
	logger.Debug("projection", zap.Stringer("matrix", m))

	v := point.v.Point()
	m.TransformVector4(&v)
	fmt.Fprintln(out, v)
	return nil
}
