//go:build gmath_debug

package gmath

// DebugAsserts reports whether this build fails fast on precondition
// violations by default.
const DebugAsserts = true

var defaultAssertHook AssertHook = func(msg string) {
	panic("gmath: " + msg)
}
