//go:build !amd64 && !arm64

package hwy

func init() {
	// Other architectures run the portable kernels. math.FMA is emulated in
	// software there, so multiply-add defaults to the unfused form.
	hasFMA = false
	setScalarMode()
}
