// SPDX-License-Identifier: MIT

package normal

import "math"

// Acklam's coefficients for the central and tail regions.
var (
	acklamA = [6]float64{
		-3.969683028665376e+01, 2.209460984245205e+02, -2.759285104469687e+02,
		1.383577518672690e+02, -3.066479806614716e+01, 2.506628277459239e+00,
	}
	acklamB = [5]float64{
		-5.447609879822406e+01, 1.615858368580409e+02, -1.556989798598866e+02,
		6.680131188771972e+01, -1.328068155288572e+01,
	}
	acklamC = [6]float64{
		-7.784894002430293e-03, -3.223964580411365e-01, -2.400758277161838e+00,
		-2.549732539343734e+00, 4.374664141464968e+00, 2.938163982698783e+00,
	}
	acklamD = [4]float64{
		7.784695709041462e-03, 3.224671290700398e-01, 2.445134137142996e+00,
		3.754408661907416e+00,
	}
)

const (
	pLow  = 0.02425   // lower breakpoint between tail and central regions
	pHigh = 1 - pLow  // upper breakpoint
	sqrt2 = math.Sqrt2
)

var sqrt2Pi = math.Sqrt(2 * math.Pi)

// InverseCDF returns x such that Φ(x) = u for the standard normal CDF Φ.
//
// Behavior:
//   - u in (0,1): finite, strictly increasing in u, InverseCDF(0.5) == 0.
//   - u == 0 → -Inf, u == 1 → +Inf.
//   - u outside [0,1] or NaN → NaN.
//
// Complexity: O(1), no allocations.
func InverseCDF(u float64) float64 {
	switch {
	case math.IsNaN(u) || u < 0 || u > 1:
		return math.NaN()
	case u == 0:
		return math.Inf(-1)
	case u == 1:
		return math.Inf(1)
	case u == 0.5:
		return 0
	}

	var x float64
	switch {
	case u < pLow:
		q := math.Sqrt(-2 * math.Log(u))
		x = tail(q)
	case u > pHigh:
		q := math.Sqrt(-2 * math.Log1p(-u))
		x = -tail(q)
	default:
		q := u - 0.5
		r := q * q
		x = (((((acklamA[0]*r+acklamA[1])*r+acklamA[2])*r+acklamA[3])*r+acklamA[4])*r + acklamA[5]) * q /
			(((((acklamB[0]*r+acklamB[1])*r+acklamB[2])*r+acklamB[3])*r+acklamB[4])*r + 1)
	}

	return refine(x, u)
}

// tail evaluates the lower-tail rational function at q = sqrt(-2 ln p).
func tail(q float64) float64 {
	return (((((acklamC[0]*q+acklamC[1])*q+acklamC[2])*q+acklamC[3])*q+acklamC[4])*q + acklamC[5]) /
		((((acklamD[0]*q+acklamD[1])*q+acklamD[2])*q+acklamD[3])*q + 1)
}

// refine applies one Halley step on Φ(x) - u.
func refine(x, u float64) float64 {
	e := 0.5*math.Erfc(-x/sqrt2) - u
	if u > 0.5 {
		// Measure the residual from the upper tail to avoid cancellation.
		e = (1 - u) - 0.5*math.Erfc(x/sqrt2)
	}
	d := e * sqrt2Pi * math.Exp(0.5*x*x)

	return x - d/(1+0.5*x*d)
}
