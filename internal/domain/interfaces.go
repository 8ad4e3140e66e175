package domain

import "context"

// CountryTable is a year-indexed table with one column per country.
type CountryTable interface {
	Years() []int
	Countries() []string
	CountrySeries(country string) (Series, error)
}

// TableLoader reads the country table from its source. Implementations
// reload on every call.
type TableLoader interface {
	Load(ctx context.Context) (CountryTable, error)
}

// PlotRenderer draws a series and its trendline as a PNG image.
type PlotRenderer interface {
	Render(country string, s Series, t Trendline) ([]byte, error)
}

// ImageStore persists rendered images.
type ImageStore interface {
	SaveImage(name string, png []byte) (path string, err error)
	OpenImage(path string) ([]byte, error)
}

// TrendlineService fits trendlines and renders country plots.
type TrendlineService interface {
	Fit(ctx context.Context, timestamps []int, data []float64) (Trendline, error)
	CountryTrendline(ctx context.Context, country string) (Trendline, error)
	RenderPlot(ctx context.Context, country string) (string, error)
	Countries(ctx context.Context) ([]string, error)
}
