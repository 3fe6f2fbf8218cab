//go:build gmath_safe_index

package gmath

// SafeIndex reports whether At and SetAt mask their index into range.
const SafeIndex = true
