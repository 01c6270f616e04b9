package functions

import "fmt"

// Uncertainty describes the measurement errors of the y values,
// either one value shared by all points or one value per point.
type Uncertainty struct {
	uniform  float64
	perPoint []float64
}

// Uniform is the same uncertainty for all points.
func Uniform(sigma float64) Uncertainty {
	return Uncertainty{uniform: sigma}
}

// PerPoint is an individual uncertainty for each point.
func PerPoint(sigma ...float64) Uncertainty {
	return Uncertainty{perPoint: sigma}
}

// Fit fits a line to the given points with the given uncertainty.
func Fit(x, y []float64, u Uncertainty) (LinearFunction, error) {
	switch {
	case u.perPoint != nil:
		return FromWeightedLeastSquares(x, y, u.perPoint)
	case u.uniform != 0.0:
		return FromLeastSquares(x, y, u.uniform)
	}
	return LinearFunction{}, fmt.Errorf("no uncertainty given: %w", ErrInvalidArgument)
}
