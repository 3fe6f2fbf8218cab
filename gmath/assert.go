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

import "sync/atomic"

// AssertHook receives precondition violations, such as a projection built
// with zero width. The arithmetic continues after the hook returns, so the
// result is whatever the formula produces (usually Inf or NaN entries).
//
// A hook that wants to abort should panic or exit.
type AssertHook func(msg string)

var assertHook atomic.Pointer[AssertHook]

func init() {
	if defaultAssertHook != nil {
		h := defaultAssertHook
		assertHook.Store(&h)
	}
}

// SetAssertHook installs h as the precondition sink and returns the previous
// hook. A nil hook disables the checks.
//
// Builds tagged gmath_debug start with a hook that panics; other builds start
// with no hook.
func SetAssertHook(h AssertHook) AssertHook {
	var prev *AssertHook
	if h == nil {
		prev = assertHook.Swap(nil)
	} else {
		prev = assertHook.Swap(&h)
	}
	if prev == nil {
		return nil
	}
	return *prev
}

// failFast reports msg when cond is false and a hook is installed.
func failFast(cond bool, msg string) {
	if cond {
		return
	}
	if h := assertHook.Load(); h != nil {
		(*h)(msg)
	}
}
