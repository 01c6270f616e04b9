package main

import (
	"fmt"

	"github.com/kbushick/infrastructure/functions"
	"github.com/kbushick/infrastructure/internal/math"
	"gonum.org/v1/gonum/stat"
)

// DataSets is the config of the reference data.
type DataSets struct {
	Sets []DataSet `json:"sets"`
}

// DataSet is a named set of points to fit.
// NOTE : a single-element sigma is shared by all points
type DataSet struct {
	Name  string    `json:"name"`
	X     []float64 `json:"x"`
	Y     []float64 `json:"y"`
	Sigma []float64 `json:"sigma"`
}

func (d DataSet) uncertainty() functions.Uncertainty {
	switch len(d.Sigma) {
	case 0:
		return functions.Uncertainty{}
	case 1:
		return functions.Uniform(d.Sigma[0])
	}
	return functions.PerPoint(d.Sigma...)
}

func (d DataSet) weights() []float64 {
	if len(d.Sigma) < 2 {
		return nil
	}
	w := make([]float64, len(d.Sigma))
	for i, s := range d.Sigma {
		w[i] = 1 / (s * s)
	}
	return w
}

// Report is the outcome of fitting a data set.
type Report struct {
	Set         string
	Fit         functions.LinearFunction
	Correlation float64
	Err         error
}

// String summarises the report with percentages for the fit quality.
func (r Report) String() string {
	if r.Err != nil {
		return fmt.Sprintf("%s error: %s", r.Set, r.Err.Error())
	}
	return fmt.Sprintf("%s r2=%s%% corr=%s%% chi2=%s",
		r.Set,
		math.Format(100*r.Fit.RSquared()),
		math.Format(100*r.Correlation),
		math.Format(r.Fit.ChiSquared()))
}

func fit(d DataSet) Report {
	f, err := functions.Fit(d.X, d.Y, d.uncertainty())
	if err != nil {
		return Report{Set: d.Name, Err: err}
	}
	return Report{
		Set:         d.Name,
		Fit:         f,
		Correlation: stat.Correlation(d.X, d.Y, d.weights()),
	}
}

// fitAll fits all data sets concurrently,
// reports are returned in the order of the given sets.
func fitAll(sets []DataSet) []Report {
	type indexed struct {
		i int
		r Report
	}
	ch := make(chan indexed)
	for i, d := range sets {
		go func(i int, d DataSet) {
			ch <- indexed{i: i, r: fit(d)}
		}(i, d)
	}
	reports := make([]Report, len(sets))
	for range sets {
		ir := <-ch
		reports[ir.i] = ir.r
	}
	return reports
}
