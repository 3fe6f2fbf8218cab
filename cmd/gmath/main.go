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

// Command gmath evaluates gmath transforms from the command line. It is
// mostly useful for checking conventions (rotation order, handedness) and
// for seeing which kernel backend a machine picks.
//
// Usage:
//
//	gmath info
//	gmath rotate -euler 0,0,90 -point 1,0,0
//	gmath slerp -from 0,0,0 -to 0,90,0 -steps 4
//	gmath lookat -from 0,0,-5 -to 0,0,0
//	gmath project -fov 90 -near 0.1 -far 100 -point 1,1,10
//
// Global flags come before the command:
//
//	gmath -level scalar -verbose rotate -euler 45,0,0 -point 0,1,0
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/ajroetker/go-gmath/gmath"
	"go.uber.org/zap"
)

// command runs one subcommand with its own arguments.
type command struct {
	usage string
	run   func(args []string, out io.Writer, logger *zap.Logger) error
}

var commands = map[string]command{
	"info":    {"print the kernel backend and CPU features", runInfo},
	"rotate":  {"rotate a point by Euler angles in degrees", runRotate},
	"slerp":   {"interpolate between two Euler rotations", runSlerp},
	"lookat":  {"print a look-at view matrix and rotation", runLookAt},
	"project": {"project a point with a perspective matrix", runProject},
}

func main() {
	os.Exit(runMain(os.Args[1:], os.Stdout, os.Stderr))
}

// runMain parses the global flags, runs one command and returns the process
// exit code. Deferred cleanup, including the logger sync, runs before it
// returns.
func runMain(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("gmath", flag.ContinueOnError)
	fs.SetOutput(stderr)
	level := fs.String("level", "", "Kernel backend to use ("+levelNames()+"); default is the detected one")
	verbose := fs.Bool("verbose", false, "Development logging: debug output, and precondition violations panic")
	fs.Usage = func() { usage(fs) }
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if fs.NArg() == 0 {
		fmt.Fprintf(stderr, "Error: no command given\n\n")
		fs.Usage()
		return 1
	}
	cmd, ok := commands[fs.Arg(0)]
	if !ok {
		fmt.Fprintf(stderr, "Error: unknown command %q\n\n", fs.Arg(0))
		fs.Usage()
		return 1
	}

	logger, err := newLogger(*verbose)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	defer logger.Sync()

	prevHook := gmath.SetAssertHook(gmath.ZapAssertHook(logger))
	defer gmath.SetAssertHook(prevHook)

	if *level != "" {
		l, err := gmath.ParseDispatchLevel(*level)
		if err == nil {
			err = gmath.SetDispatchLevel(l)
		}
		if err != nil {
			fmt.Fprintf(stderr, "Error: cannot select kernel backend: %v\n", err)
			return 1
		}
	}
	logger.Debug("dispatch", zap.String("level", gmath.CurrentName()))

	if err := cmd.run(fs.Args()[1:], stdout, logger); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func newLogger(development bool) (*zap.Logger, error) {
	if development {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func usage(fs *flag.FlagSet) {
	out := fs.Output()
	fmt.Fprintf(out, "Usage: gmath [flags] <command> [command flags]\n\nCommands:\n")
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(out, "  %-8s %s\n", name, commands[name].usage)
	}
	fmt.Fprintf(out, "\nFlags:\n")
	fs.PrintDefaults()
}

func levelNames() string {
	var names []string
	for _, l := range []gmath.DispatchLevel{gmath.DispatchScalar, gmath.DispatchSSE, gmath.DispatchNEON} {
		names = append(names, l.String())
	}
	return strings.Join(names, ",")
}
