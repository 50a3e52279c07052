package math

import "github.com/ajroetker/avxmath/hwy"

// Angle constants.
const (
	Pi       = 3.14159265358979323846264338327950288419716939937510582097494459
	HalfPi   = Pi / 2
	TwoPi    = Pi * 2
	InvTwoPi = 1 / (2 * Pi)
	InvPi    = 1 / Pi

	degreesPerRadian = 180 / Pi
	radiansPerDegree = Pi / 180
)

// Documented accuracy, checked by the tests.
const (
	// SinMaxError bounds |Sin(x) - math.Sin(x)| for |x| <= 100.
	SinMaxError = 6e-11
	// CosMaxError bounds |Cos(x) - math.Cos(x)| for |x| <= 100.
	CosMaxError = 4e-10
	// TanRelError bounds |Tan(x) - math.Tan(x)| / max(1, |math.Tan(x)|) for |x| <= 1.4.
	TanRelError = 1e-8
	// TanhMaxError bounds |Tanh(x) - math.Tanh(x)| for all finite x.
	TanhMaxError = 4e-4
)

// cosSinCoefficients holds the minimax coefficients of cos (lane X, degree 10)
// and sin (lane Y, degree 11) in x², lowest order first. The constant term 1
// is implicit. Geometric Tools GTE_C_COS_DEG10 / GTE_C_SIN_DEG11.
var cosSinCoefficients = [5]hwy.Float64x2{
	{-4.9999999508695869e-01, -1.6666666601721269e-01},
	{+4.1666638865338612e-02, +8.3333303183525942e-03},
	{-1.3888377661039897e-03, -1.9840782426250314e-04},
	{+2.4760495088926859e-05, +2.7521557770526783e-06},
	{-2.6051615464872668e-07, -2.3828544692960918e-08},
}

// Padé 7/6 coefficients for tan(πx), π folded in.
const (
	tanMul0 = -424539.12324285670928 // -135135 * π
	tanMul2 = 537183.74348619438457  // 17325 * π³
	tanMul4 = -115675.44084883638934 // -378 * π⁵
	tanMul6 = 3020.2932277767920678  // π⁷
	tanDiv0 = -135135.0
	tanDiv2 = 615567.22649594329707  // 62370 * π²
	tanDiv4 = -306838.63675710767731 // -3150 * π⁴
	tanDiv6 = 26918.897420108524239  // 28 * π⁶
)

// tanh(x) ≈ x(x⁴ + 70x² + 600) / (600 + 270x² + 11x⁴ + x⁶/24).
const (
	tanh600  = 600.0
	tanh270  = 270.0
	tanh70   = 70.0
	tanh11   = 11.0
	tanhLast = 1.0 / 24.0

	// tanhSaturation is where the result is pinned to ±1.
	tanhSaturation = 5.0
)

// Broadcast constants for the 4-wide portable kernels.
var (
	pi4       = hwy.Broadcast4(Pi)
	halfPi4   = hwy.Broadcast4(HalfPi)
	twoPi4    = hwy.Broadcast4(TwoPi)
	invTwoPi4 = hwy.Broadcast4(InvTwoPi)
	invPi4    = hwy.Broadcast4(InvPi)
	one4      = hwy.Broadcast4(1)
)
