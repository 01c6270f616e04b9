package functions

import (
	"fmt"
	"math"
)

// sums holds the (weighted) sums of the normal equations.
type sums struct {
	s, sx, sy     float64
	sxx, sxy, syy float64
}

// solve solves the normal equations for the slope and intercept.
// It returns the inverse determinant, for the error propagation.
func (sm sums) solve() (a0, a1, deltaInv float64, err error) {
	delta := sm.s*sm.sxx - sm.sx*sm.sx
	if delta == 0.0 {
		return 0, 0, 0, fmt.Errorf("normal equations determinant is zero: %w", ErrSingularFit)
	}
	deltaInv = 1.0 / delta
	a1 = (sm.s*sm.sxy - sm.sx*sm.sy) * deltaInv
	a0 = (sm.sxx*sm.sy - sm.sx*sm.sxy) * deltaInv
	return a0, a1, deltaInv, nil
}

func (sm sums) rSquared() (float64, error) {
	r2Tmp := (sm.s*sm.sxx - sm.sx*sm.sx) * (sm.s*sm.syy - sm.sy*sm.sy)
	if r2Tmp == 0.0 {
		return 0, fmt.Errorf("r-squared denominator is zero: %w", ErrSingularFit)
	}
	return (sm.s*sm.sxy - sm.sx*sm.sy) * (sm.s*sm.sxy - sm.sx*sm.sy) / r2Tmp, nil
}

// FromLeastSquares fits a line to the given points,
// assuming the same uncertainty sigma for all of them.
func FromLeastSquares(x, y []float64, sigma float64) (LinearFunction, error) {
	n := len(x)
	if len(y) != n {
		return LinearFunction{}, fmt.Errorf("x & y must be same length [%d vs %d]: %w", n, len(y), ErrLengthMismatch)
	}
	if sigma <= 0.0 {
		return LinearFunction{}, fmt.Errorf("sigma must be positive [%v]: %w", sigma, ErrInvalidArgument)
	}

	sm := sums{s: float64(n)}
	for j := 0; j < n; j++ {
		xj, yj := x[j], y[j]
		sm.sx += xj
		sm.sy += yj
		sm.sxx += xj * xj
		sm.sxy += xj * yj
		sm.syy += yj * yj
	}

	a0, a1, deltaInv, err := sm.solve()
	if err != nil {
		return LinearFunction{}, err
	}
	fit := New(a0, a1)
	fit.a0Error = math.Sqrt(sm.sxx * sigma * sigma * deltaInv)
	fit.a1Error = math.Sqrt(sm.s * sigma * sigma * deltaInv)

	fit.rSquared, err = sm.rSquared()
	if err != nil {
		return LinearFunction{}, err
	}

	r, err := fit.Residuals(x, y)
	if err != nil {
		return LinearFunction{}, err
	}
	e := 0.0
	for j := range r {
		e += r[j] * r[j]
	}

	// NOTE : with 2 points or fewer there are no degrees of freedom left, chi2 defaults to 1
	if n > 2 && sigma != 0.0 {
		fit.chiSquared = e / (sigma * sigma * float64(n-2))
	} else {
		fit.chiSquared = 1.0
	}

	return fit, nil
}

// FromWeightedLeastSquares fits a line to the given points,
// weighting each point by the inverse square of its own uncertainty.
func FromWeightedLeastSquares(x, y, sigma []float64) (LinearFunction, error) {
	n := len(x)
	if len(y) != n {
		return LinearFunction{}, fmt.Errorf("x & y must be same length [%d vs %d]: %w", n, len(y), ErrLengthMismatch)
	} else if len(sigma) != n {
		return LinearFunction{}, fmt.Errorf("x & sigma must be same length [%d vs %d]: %w", n, len(sigma), ErrLengthMismatch)
	}

	var sm sums
	for j := 0; j < n; j++ {
		xj, yj := x[j], y[j]
		if sigma[j] <= 0.0 {
			return LinearFunction{}, fmt.Errorf("sigma values must be positive [%d:%v]: %w", j, sigma[j], ErrInvalidArgument)
		}
		w := 1.0 / (sigma[j] * sigma[j])

		sm.s += w
		sm.sx += w * xj
		sm.sy += w * yj
		sm.sxx += w * xj * xj
		sm.sxy += w * xj * yj
		sm.syy += w * yj * yj
	}

	a0, a1, deltaInv, err := sm.solve()
	if err != nil {
		return LinearFunction{}, err
	}
	fit := New(a0, a1)
	// the weights already carry the uncertainty scale
	fit.a0Error = math.Sqrt(sm.sxx * deltaInv)
	fit.a1Error = math.Sqrt(sm.s * deltaInv)

	fit.rSquared, err = sm.rSquared()
	if err != nil {
		return LinearFunction{}, err
	}

	r, err := fit.Residuals(x, y)
	if err != nil {
		return LinearFunction{}, err
	}
	e := 0.0
	for j := range r {
		e += r[j] * r[j] / (sigma[j] * sigma[j])
	}

	if n > 2 {
		fit.chiSquared = e / float64(n-2)
	} else {
		fit.chiSquared = 1.0
	}

	return fit, nil
}
