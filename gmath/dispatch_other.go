//go:build !amd64 && !arm64

package gmath

func init() {
	// Non-amd64 architectures use the scalar kernels.
	detectedLevel = DispatchScalar
	setScalarMode()
}

func useSIMDKernels() {
	useScalarKernels()
}
