package domain

// Series is one country's indicator values indexed by year.
// Years are ascending and len(Years) == len(Values).
type Series struct {
	Years  []int
	Values []float64
}

// Len returns the number of observations.
func (s Series) Len() int { return len(s.Years) }

// X returns the years as float64 for regression.
func (s Series) X() []float64 {
	out := make([]float64, len(s.Years))
	for i, y := range s.Years {
		out[i] = float64(y)
	}
	return out
}

// Trendline is a fitted straight line y = Slope*x + Intercept.
// All fields are rounded to 3 decimal places.
type Trendline struct {
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`
	RSquared  float64 `json:"r_squared"`
}

// At evaluates the line at x.
func (t Trendline) At(x float64) float64 { return t.Slope*x + t.Intercept }
