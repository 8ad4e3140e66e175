package trendline

import (
	"context"
	"fmt"

	"k8s.io/klog/v2"

	"trendline/internal/domain"
	"trendline/internal/regression"
)

// Service runs the load -> select -> fit -> render chain.
type Service struct {
	tables   domain.TableLoader
	renderer domain.PlotRenderer
	images   domain.ImageStore
}

// New returns a service backed by the given loader, renderer and image store.
func New(tables domain.TableLoader, renderer domain.PlotRenderer, images domain.ImageStore) *Service {
	return &Service{tables: tables, renderer: renderer, images: images}
}

// Fit fits a line through caller supplied timestamps and values.
func (s *Service) Fit(ctx context.Context, timestamps []int, data []float64) (domain.Trendline, error) {
	t, err := regression.FitInts(timestamps, data)
	if err != nil {
		return domain.Trendline{}, err
	}
	klog.FromContext(ctx).V(2).Info("fitted trendline", "points", len(timestamps), "slope", t.Slope, "r_squared", t.RSquared)
	return t, nil
}

// CountryTrendline loads the table and fits the named country's series.
func (s *Service) CountryTrendline(ctx context.Context, country string) (domain.Trendline, error) {
	_, t, err := s.countryFit(ctx, country)
	return t, err
}

// RenderPlot loads the table, fits the country's series, renders the chart
// and writes <country>.png. It returns the image's absolute path.
func (s *Service) RenderPlot(ctx context.Context, country string) (string, error) {
	series, t, err := s.countryFit(ctx, country)
	if err != nil {
		return "", err
	}
	png, err := s.renderer.Render(country, series, t)
	if err != nil {
		return "", fmt.Errorf("render %s: %w", country, err)
	}
	path, err := s.images.SaveImage(country, png)
	if err != nil {
		return "", err
	}
	klog.FromContext(ctx).Info("image written", "country", country, "path", path, "bytes", len(png))
	return path, nil
}

// Countries lists every country in the table.
func (s *Service) Countries(ctx context.Context) ([]string, error) {
	tbl, err := s.tables.Load(ctx)
	if err != nil {
		return nil, err
	}
	return tbl.Countries(), nil
}

func (s *Service) countryFit(ctx context.Context, country string) (domain.Series, domain.Trendline, error) {
	tbl, err := s.tables.Load(ctx)
	if err != nil {
		return domain.Series{}, domain.Trendline{}, err
	}
	series, err := tbl.CountrySeries(country)
	if err != nil {
		return domain.Series{}, domain.Trendline{}, err
	}
	t, err := regression.FitSeries(series)
	if err != nil {
		return domain.Series{}, domain.Trendline{}, fmt.Errorf("fit %s: %w", country, err)
	}
	return series, t, nil
}

// Compile-time assertion that Service implements domain.TrendlineService.
var _ domain.TrendlineService = (*Service)(nil)
