package regression

import (
	"errors"
	"math"

	"trendline/internal/domain"
)

var (
	// ErrLengthMismatch is returned when x and y differ in length.
	ErrLengthMismatch = errors.New("x and y must have the same length")

	// ErrTooFewPoints is returned for fewer than two observations.
	ErrTooFewPoints = errors.New("at least two points are required")

	// ErrConstantX is returned when every x value is identical.
	ErrConstantX = errors.New("cannot fit a line when all x values are identical")

	// ErrOutOfRange is returned when the slope or intercept is not a finite float64.
	ErrOutOfRange = errors.New("fitted line is out of float64 range")
)

// roundLimit is the magnitude above which a float64 has no fractional digits
// left to round.
const roundLimit = 1e15

// Fit computes the least-squares line through (x[i], y[i]).
func Fit(x, y []float64) (domain.Trendline, error) {
	if len(x) != len(y) {
		return domain.Trendline{}, ErrLengthMismatch
	}
	n := len(x)
	if n < 2 {
		return domain.Trendline{}, ErrTooFewPoints
	}

	// Sums run on x/sx and y/sy. The scales are powers of two, so the
	// division is exact and squares of huge values cannot overflow.
	sx, sy := scaleOf(x), scaleOf(y)
	meanX, meanY := mean(x, sx), mean(y, sy)

	// Centered sums of squares; two passes keep large x (years) stable.
	var sxx, syy, sxy float64
	for i := range x {
		dx := x[i]/sx - meanX
		dy := y[i]/sy - meanY
		sxx += dx * dx
		syy += dy * dy
		sxy += dx * dy
	}
	if sxx == 0 {
		return domain.Trendline{}, ErrConstantX
	}

	slope := 0.0
	if sxy != 0 {
		slope = sxy / sxx * (sy / sx)
	}
	intercept := meanY*sy - slope*(meanX*sx)
	if !finite(slope) || !finite(intercept) {
		return domain.Trendline{}, ErrOutOfRange
	}

	r := 0.0
	if syy != 0 {
		r = sxy / (math.Sqrt(sxx) * math.Sqrt(syy))
		// Rounding can push |r| past 1.
		r = math.Max(-1, math.Min(1, r))
	}

	return domain.Trendline{
		Slope:     Round3(slope),
		Intercept: Round3(intercept),
		RSquared:  Round3(r * r),
	}, nil
}

// FitSeries fits a line through a country series.
func FitSeries(s domain.Series) (domain.Trendline, error) {
	return Fit(s.X(), s.Values)
}

// FitInts fits a line through integer timestamps and values.
func FitInts(timestamps []int, data []float64) (domain.Trendline, error) {
	return FitSeries(domain.Series{Years: timestamps, Values: data})
}

// Line samples n evenly spaced points of t between x0 and x1 inclusive.
func Line(t domain.Trendline, x0, x1 float64, n int) (xs, ys []float64) {
	if n < 2 {
		n = 2
	}
	xs = make([]float64, n)
	ys = make([]float64, n)
	step := (x1 - x0) / float64(n-1)
	for i := range xs {
		xs[i] = x0 + float64(i)*step
		ys[i] = t.At(xs[i])
	}
	xs[n-1] = x1
	ys[n-1] = t.At(x1)
	return xs, ys
}

// Round3 rounds v half away from zero to three decimal places. Values too
// large to carry a fractional part are returned unchanged.
func Round3(v float64) float64 {
	if math.Abs(v) >= roundLimit {
		return v
	}
	r := math.Round(v*1000) / 1000
	if r == 0 {
		// Avoid -0 in JSON output.
		return 0
	}
	return r
}

// mean returns the mean of v/scale.
func mean(v []float64, scale float64) float64 {
	sum := 0.0
	for _, x := range v {
		sum += x / scale
	}
	return sum / float64(len(v))
}

// scaleOf returns the largest power of two not above max|v|, or 1 when v is
// all zero or not finite. Every |v[i]|/scale is then below 2.
func scaleOf(v []float64) float64 {
	m := 0.0
	for _, x := range v {
		m = math.Max(m, math.Abs(x))
	}
	if m == 0 || !finite(m) {
		return 1
	}
	_, exp := math.Frexp(m)
	return math.Ldexp(1, exp-1)
}

func finite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}
