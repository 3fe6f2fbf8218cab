//go:build !gmath_safe_index

package gmath

// SafeIndex reports whether At and SetAt mask their index into range.
// Without the gmath_safe_index tag an out-of-range index panics.
const SafeIndex = false
