package chart

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"trendline/internal/domain"
	"trendline/internal/regression"
)

// linePoints is the number of samples drawn for the fitted line.
const linePoints = 100

var (
	dataColor = color.RGBA{B: 255, A: 255}
	fitColor  = color.RGBA{R: 255, A: 255}
)

// ErrEmptySeries is returned when there is nothing to draw.
var ErrEmptySeries = errors.New("series has no points")

// Options sets the canvas size and resolution.
type Options struct {
	Width  vg.Length
	Height vg.Length
	DPI    int
}

// DefaultOptions is a 6.4x4.8 inch canvas at 300 DPI.
func DefaultOptions() Options {
	return Options{Width: 6.4 * vg.Inch, Height: 4.8 * vg.Inch, DPI: 300}
}

// Renderer implements domain.PlotRenderer.
type Renderer struct {
	opts Options
}

// NewRenderer returns a Renderer; zero fields in opts take the defaults.
func NewRenderer(opts Options) *Renderer {
	def := DefaultOptions()
	if opts.Width <= 0 {
		opts.Width = def.Width
	}
	if opts.Height <= 0 {
		opts.Height = def.Height
	}
	if opts.DPI <= 0 {
		opts.DPI = def.DPI
	}
	return &Renderer{opts: opts}
}

var _ domain.PlotRenderer = (*Renderer)(nil)

// Render draws the raw series in blue and the trendline in red over the
// series' year range, then encodes the chart as PNG.
func (r *Renderer) Render(country string, s domain.Series, t domain.Trendline) ([]byte, error) {
	if s.Len() == 0 {
		return nil, ErrEmptySeries
	}

	p := plot.New()
	p.Title.Text = country + ": Data Plot with Linear Regression"
	p.X.Label.Text = "year"
	p.Y.Label.Text = "percent"
	p.Add(plotter.NewGrid())
	p.Legend.Top = true
	p.Legend.Left = true

	pts := make(plotter.XYs, s.Len())
	for i := range pts {
		pts[i].X = float64(s.Years[i])
		pts[i].Y = s.Values[i]
	}
	data, err := plotter.NewLine(pts)
	if err != nil {
		return nil, fmt.Errorf("data line: %w", err)
	}
	data.Color = dataColor
	data.Width = vg.Points(1.5)

	x0, x1 := float64(s.Years[0]), float64(s.Years[s.Len()-1])
	xs, ys := regression.Line(t, x0, x1, linePoints)
	fitPts := make(plotter.XYs, len(xs))
	for i := range xs {
		fitPts[i].X = xs[i]
		fitPts[i].Y = ys[i]
	}
	fit, err := plotter.NewLine(fitPts)
	if err != nil {
		return nil, fmt.Errorf("trendline: %w", err)
	}
	fit.Color = fitColor
	fit.Width = vg.Points(1.5)

	p.Add(data, fit)
	p.Legend.Add("Data", data)
	p.Legend.Add(Equation(t), fit)

	c := vgimg.NewWith(vgimg.UseWH(r.opts.Width, r.opts.Height), vgimg.UseDPI(r.opts.DPI))
	p.Draw(draw.New(c))

	var buf bytes.Buffer
	if _, err := (vgimg.PngCanvas{Canvas: c}).WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// Equation formats t as the legend label, e.g. "y = 0.25x + -480.1".
// Whole numbers keep a ".0" suffix: "y = 1.0x + 0.0".
func Equation(t domain.Trendline) string {
	return "y = " + formatFloat(t.Slope) + "x + " + formatFloat(t.Intercept)
}

// formatFloat prints the shortest representation of v, switching to
// exponent form below 1e-4 and from 1e16 up.
func formatFloat(v float64) string {
	if a := math.Abs(v); a != 0 && (a < 1e-4 || a >= 1e16) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".NI") {
		s += ".0"
	}
	return s
}
