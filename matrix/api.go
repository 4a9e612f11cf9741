// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
)

// matrixErrorf prefixes err with the facade tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// compare validates a and b and calls f on every pair of elements in
// row-major order until f returns false.
func compare(tag string, a, b Matrix, f func(av, bv float64) bool) error {
	if err := ValidateNotNil(a); err != nil {
		return matrixErrorf(tag, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return matrixErrorf(tag, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return matrixErrorf(tag, err)
	}

	// Dense fast-path over the flat buffers.
	if da, ok := a.(*Dense); ok {
		if db, ok := b.(*Dense); ok {
			for idx := range da.data {
				if !f(da.data[idx], db.data[idx]) {
					return nil
				}
			}

			return nil
		}
	}

	r, c := a.Rows(), a.Cols()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			av, _ := a.At(i, j)
			bv, _ := b.At(i, j)
			if !f(av, bv) {
				return nil
			}
		}
	}

	return nil
}

// Equal reports whether a and b have the same shape and bitwise-identical
// values (NaN never equals anything).
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Equal(a, b Matrix) (bool, error) {
	eq := true
	err := compare("Equal", a, b, func(av, bv float64) bool {
		eq = av == bv

		return eq
	})
	if err != nil {
		return false, err
	}

	return eq, nil
}

// AllClose reports whether |a-b| ≤ atol + rtol*|b| holds elementwise.
// Negative tolerances are taken by absolute value.
//
// Errors: ErrNaNInf for a non-finite tolerance, ErrNilMatrix, ErrDimensionMismatch.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if isNonFinite(rtol) || isNonFinite(atol) {
		return false, matrixErrorf("AllClose", ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	ok := true
	err := compare("AllClose", a, b, func(av, bv float64) bool {
		ok = math.Abs(av-bv) <= atol+rtol*math.Abs(bv)

		return ok
	})
	if err != nil {
		return false, err
	}

	return ok, nil
}

// MaxAbsDiff returns max |a(i,j) - b(i,j)| over all cells.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func MaxAbsDiff(a, b Matrix) (float64, error) {
	var worst float64
	err := compare("MaxAbsDiff", a, b, func(av, bv float64) bool {
		if d := math.Abs(av - bv); d > worst || math.IsNaN(d) {
			worst = d
		}

		return true
	})
	if err != nil {
		return 0, err
	}

	return worst, nil
}
