package math

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {

	type test struct {
		input  float64
		output string
	}

	tests := map[string]test{
		"0": {
			input:  0,
			output: "0.00",
		},
		"-1": {
			input:  -1,
			output: "-1.00",
		},
		"5": {
			input:  1.5555,
			output: "1.56",
		},
		"4": {
			input:  1.4444,
			output: "1.44",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s := Format(tt.input)
			assert.Equal(t, tt.output, s)
		})
	}

}

func TestPrecise(t *testing.T) {

	type test struct {
		input  float64
		output string
	}

	tests := map[string]test{
		"0": {
			input:  0,
			output: "0",
		},
		"nan": {
			input:  math.NaN(),
			output: "NaN",
		},
		"big": {
			input:  119.4605168746,
			output: "119.4605",
		},
		"chi2": {
			input:  1.95 / 7,
			output: "0.2786",
		},
		"intercept": {
			input:  0.0714,
			output: "0.07140",
		},
		"slope-error": {
			input:  0.00065,
			output: "0.0006500",
		},
		"negative-slope-error": {
			input:  -0.00065,
			output: "-0.0006500",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s := Precise(tt.input)
			assert.Equal(t, tt.output, s)
		})
	}

}

func TestO10(t *testing.T) {

	type test struct {
		input  float64
		output int
	}

	tests := map[string]test{
		"-1": {
			input:  -1,
			output: 0,
		},
		"1": {
			input:  1,
			output: 0,
		},
		"-0.134": {
			input:  -0.134,
			output: 0,
		},
		"-0.0734": {
			input:  -0.0734,
			output: 1,
		},
		"0.00167676": {
			input:  0.00167676,
			output: 2,
		},
		"1234": {
			input:  1234,
			output: 3,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s := O10(tt.input)
			assert.Equal(t, tt.output, s)
		})
	}

}
