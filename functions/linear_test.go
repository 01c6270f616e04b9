package functions

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {

	type test struct {
		a0, a1 float64
	}

	tests := map[string]test{
		"zero": {},
		"positive": {
			a0: 1.5,
			a1: 2.5,
		},
		"negative": {
			a0: 10.5432,
			a1: -4.1234,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			f := New(tt.a0, tt.a1)
			assert.Equal(t, tt.a0, f.A0())
			assert.Equal(t, tt.a1, f.A1())
			assert.Equal(t, 0.0, f.A0Error())
			assert.Equal(t, 0.0, f.A1Error())
			assert.Equal(t, 1.0, f.RSquared())
			assert.Equal(t, 1.0, f.ChiSquared())
		})
	}

}

func TestLinearFunction_Evaluate(t *testing.T) {

	x := []float64{-1.1, 0.0, 2.2, 10.4}
	expected := []float64{15.07894, 10.5432, 1.47172, -32.34016}

	f := New(10.5432, -4.1234)

	y := f.EvaluateAll(x)
	require.Equal(t, len(x), len(y))
	for j := range x {
		assert.InDelta(t, expected[j], y[j], 1e-14, fmt.Sprintf("x = %v", x[j]))
		assert.Equal(t, f.Evaluate(x[j]), y[j])
	}
	// input is left untouched
	assert.Equal(t, []float64{-1.1, 0.0, 2.2, 10.4}, x)

}

func TestLinearFunction_EvaluateAll_Empty(t *testing.T) {
	f := New(1, 2)
	y := f.EvaluateAll(nil)
	assert.NotNil(t, y)
	assert.Empty(t, y)
}

func TestLinearFunction_Residuals(t *testing.T) {

	f := New(1, 2)

	r, err := f.Residuals([]float64{0, 1, 2}, []float64{1, 4, 4})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, -1}, r)

	_, err = f.Residuals([]float64{0, 1, 2}, []float64{1, 4})
	assert.ErrorIs(t, err, ErrLengthMismatch)

}

func TestLinearFunction_String(t *testing.T) {
	f := New(0.0714, 0.0262)
	assert.Equal(t, "f(x) = (0.02620 ± 0)x + (0.07140 ± 0) [r2=1.0000,chi2=1.0000]", f.String())
}
