package functions

import (
	"fmt"

	"github.com/kbushick/infrastructure/internal/math"
)

// LinearFunction is the line f(x) = a1*x + a0 ,
// together with the diagnostics of the fit that produced it.
type LinearFunction struct {
	a0, a1           float64
	a0Error, a1Error float64
	rSquared         float64
	chiSquared       float64
}

// New creates a linear function from its coefficients only.
// NOTE : no fit is involved, so the errors are zero and both goodness-of-fit statistics are 1.
func New(a0, a1 float64) LinearFunction {
	return LinearFunction{
		a0:         a0,
		a1:         a1,
		rSquared:   1.0,
		chiSquared: 1.0,
	}
}

// A0 returns the intercept.
func (f LinearFunction) A0() float64 {
	return f.a0
}

// A1 returns the slope.
func (f LinearFunction) A1() float64 {
	return f.a1
}

// A0Error returns the standard error of the intercept.
func (f LinearFunction) A0Error() float64 {
	return f.a0Error
}

// A1Error returns the standard error of the slope.
func (f LinearFunction) A1Error() float64 {
	return f.a1Error
}

// RSquared returns the coefficient of determination.
func (f LinearFunction) RSquared() float64 {
	return f.rSquared
}

// ChiSquared returns the reduced chi-squared of the fit.
func (f LinearFunction) ChiSquared() float64 {
	return f.chiSquared
}

// Evaluate evaluates the function at the given point.
func (f LinearFunction) Evaluate(x float64) float64 {
	return f.a1*x + f.a0
}

// EvaluateAll evaluates the function at each of the given points.
func (f LinearFunction) EvaluateAll(x []float64) []float64 {
	y := make([]float64, len(x))
	for j := range x {
		y[j] = f.Evaluate(x[j])
	}
	return y
}

// Residuals returns the differences between the observed values and the function values.
func (f LinearFunction) Residuals(x, y []float64) ([]float64, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("x & y must be same length [%d vs %d]: %w", len(x), len(y), ErrLengthMismatch)
	}
	r := f.EvaluateAll(x)
	for j := range r {
		r[j] = y[j] - r[j]
	}
	return r, nil
}

func (f LinearFunction) String() string {
	return fmt.Sprintf("f(x) = (%s ± %s)x + (%s ± %s) [r2=%s,chi2=%s]",
		math.Precise(f.a1), math.Precise(f.a1Error),
		math.Precise(f.a0), math.Precise(f.a0Error),
		math.Precise(f.rSquared), math.Precise(f.chiSquared))
}
