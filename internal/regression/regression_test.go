package regression_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"

	"trendline/internal/domain"
	"trendline/internal/regression"
)

func TestFit_PerfectLine(t *testing.T) {
	got, err := regression.Fit([]float64{0, 1, 2}, []float64{0, 1, 2})
	require.NoError(t, err)
	assert.Equal(t, domain.Trendline{Slope: 1, Intercept: 0, RSquared: 1}, got)
}

func TestFit_ConstantData(t *testing.T) {
	got, err := regression.Fit([]float64{0, 1, 2}, []float64{5, 5, 5})
	require.NoError(t, err)
	assert.Equal(t, 0.0, got.Slope)
	assert.Equal(t, 5.0, got.Intercept)
	assert.Equal(t, 0.0, got.RSquared)
	assert.False(t, math.Signbit(got.Slope), "slope must not be -0")

	got, err = regression.Fit([]float64{0, 1e-10}, []float64{1e308, 1e308})
	require.NoError(t, err)
	assert.Equal(t, domain.Trendline{Slope: 0, Intercept: 1e308, RSquared: 0}, got)
}

func TestFit_YearScaleLine(t *testing.T) {
	x := []float64{2000, 2001, 2002, 2003, 2004, 2005}
	y := make([]float64, len(x))
	for i, v := range x {
		y[i] = 0.5*v - 990
	}

	got, err := regression.Fit(x, y)
	require.NoError(t, err)
	assert.Equal(t, 0.5, got.Slope)
	assert.Equal(t, -990.0, got.Intercept)
	assert.Equal(t, 1.0, got.RSquared)
}

func TestFit_NegativeSlope(t *testing.T) {
	got, err := regression.Fit([]float64{1, 2, 3, 4}, []float64{8, 6, 4, 2})
	require.NoError(t, err)
	assert.Equal(t, -2.0, got.Slope)
	assert.Equal(t, 10.0, got.Intercept)
	assert.Equal(t, 1.0, got.RSquared)
}

func TestFit_MatchesGonum(t *testing.T) {
	noise := []float64{0.3, -1.2, 0.8, 2.1, -0.4, -1.7, 0.9, 0.1, -0.6, 1.4, -2.2, 0.5, 1.1, -0.9, 0.2, -0.3, 1.8, -1.1, 0.6, -0.5}
	x := make([]float64, len(noise))
	y := make([]float64, len(noise))
	for i := range noise {
		x[i] = float64(2000 + i)
		y[i] = 12.5 + 0.73*float64(i) + noise[i]
	}

	got, err := regression.Fit(x, y)
	require.NoError(t, err)

	alpha, beta := stat.LinearRegression(x, y, nil, false)
	r2 := stat.RSquared(x, y, nil, alpha, beta)

	const tol = 5e-4 + 1e-9
	assert.InDelta(t, beta, got.Slope, tol)
	assert.InDelta(t, alpha, got.Intercept, tol)
	assert.InDelta(t, r2, got.RSquared, tol)
	assert.GreaterOrEqual(t, got.RSquared, 0.0)
	assert.LessOrEqual(t, got.RSquared, 1.0)
}

func TestFit_RejectsDegenerateInput(t *testing.T) {
	tests := []struct {
		name string
		x, y []float64
		want error
	}{
		{"length mismatch", []float64{1, 2}, []float64{1}, regression.ErrLengthMismatch},
		{"empty", nil, nil, regression.ErrTooFewPoints},
		{"single point", []float64{1}, []float64{3}, regression.ErrTooFewPoints},
		{"constant x", []float64{4, 4, 4}, []float64{1, 2, 3}, regression.ErrConstantX},
		{"infinite value", []float64{1, 2}, []float64{1, math.Inf(1)}, regression.ErrOutOfRange},
		{"slope overflows", []float64{0, 1e-10}, []float64{0, 1e308}, regression.ErrOutOfRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := regression.Fit(tt.x, tt.y)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestFit_LargeValues(t *testing.T) {
	got, err := regression.Fit([]float64{0, 1}, []float64{0, 1e308})
	require.NoError(t, err)
	assert.InEpsilon(t, 1e308, got.Slope, 1e-12)
	assert.Equal(t, 0.0, got.Intercept)
	assert.Equal(t, 1.0, got.RSquared)

	x := []float64{2000, 2001, 2002, 2003}
	y := []float64{1e300, 2e300, 3e300, 4e300}
	got, err = regression.Fit(x, y)
	require.NoError(t, err)
	assert.InEpsilon(t, 1e300, got.Slope, 1e-9)
	assert.Equal(t, 1.0, got.RSquared)
}

func TestFitInts(t *testing.T) {
	got, err := regression.FitInts([]int{2010, 2011, 2012}, []float64{10, 12, 14})
	require.NoError(t, err)
	assert.Equal(t, 2.0, got.Slope)
	assert.Equal(t, -4010.0, got.Intercept)
	assert.Equal(t, 1.0, got.RSquared)
}

func TestLine(t *testing.T) {
	xs, ys := regression.Line(domain.Trendline{Slope: 2, Intercept: 1}, 0, 10, 100)
	require.Len(t, xs, 100)
	require.Len(t, ys, 100)
	assert.Equal(t, 0.0, xs[0])
	assert.Equal(t, 1.0, ys[0])
	assert.Equal(t, 10.0, xs[99])
	assert.Equal(t, 21.0, ys[99])
	for i := 1; i < len(xs); i++ {
		assert.Greater(t, xs[i], xs[i-1])
	}
}

func TestRound3(t *testing.T) {
	assert.Equal(t, 1.235, regression.Round3(1.23456))
	assert.Equal(t, -1.235, regression.Round3(-1.23456))
	assert.Equal(t, 0.0, regression.Round3(-0.0001))
	assert.False(t, math.Signbit(regression.Round3(-0.0001)))
	assert.Equal(t, 1e308, regression.Round3(1e308))
	assert.Equal(t, -1e306, regression.Round3(-1e306))
	assert.Equal(t, 1234567890123456.5, regression.Round3(1234567890123456.5))
}
