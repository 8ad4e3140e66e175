package dataset

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"k8s.io/klog/v2"

	"trendline/internal/domain"
)

var (
	// ErrColumnNotFound is returned when a required column is not in the header.
	ErrColumnNotFound = errors.New("column not found")

	// ErrBadYear is returned when a data column header is not an integer year.
	ErrBadYear = errors.New("column header is not a year")

	// ErrBadValue is returned when a data cell is not numeric.
	ErrBadValue = errors.New("cell is not numeric")

	// ErrEmptySheet is returned when the source has no header row.
	ErrEmptySheet = errors.New("sheet is empty")
)

// DefaultLabelColumn holds the country names in the SDG export.
const DefaultLabelColumn = "GeoAreaName"

// DefaultDropColumns are the SDG metadata columns removed before transposing.
var DefaultDropColumns = []string{
	"Goal",
	"Target",
	"Indicator",
	"SeriesCode",
	"SeriesDescription",
	"GeoAreaCode",
	"Reporting Type",
	"Sex",
	"Units",
}

// Options controls how the raw sheet is reshaped.
type Options struct {
	Sheet       string   // sheet name; first sheet when empty
	LabelColumn string   // country name column (default GeoAreaName)
	DropColumns []string // metadata columns to remove (default DefaultDropColumns)
}

// DefaultOptions returns the options for the SDG SG_GEN_PARL export.
func DefaultOptions() Options {
	return Options{
		LabelColumn: DefaultLabelColumn,
		DropColumns: append([]string(nil), DefaultDropColumns...),
	}
}

func (o Options) withDefaults() Options {
	if o.LabelColumn == "" {
		o.LabelColumn = DefaultLabelColumn
	}
	if o.DropColumns == nil {
		o.DropColumns = append([]string(nil), DefaultDropColumns...)
	}
	return o
}

// Table is the transposed country table: Years are the row labels and
// every country is a column. Missing cells are stored as NaN.
type Table struct {
	years     []int
	countries []string
	columns   map[string][]float64
}

var _ domain.CountryTable = (*Table)(nil)

// Years returns the row labels in ascending order.
func (t *Table) Years() []int { return append([]int(nil), t.years...) }

// Countries returns the column labels in source order.
func (t *Table) Countries() []string { return append([]string(nil), t.countries...) }

// Value returns the cell for country at the given year, or false when the
// country, the year or the cell is missing.
func (t *Table) Value(country string, year int) (float64, bool) {
	col, ok := t.columns[country]
	if !ok {
		return 0, false
	}
	i := sort.SearchInts(t.years, year)
	if i == len(t.years) || t.years[i] != year || math.IsNaN(col[i]) {
		return 0, false
	}
	return col[i], true
}

// CountrySeries selects a country column by exact name. Years with an
// empty cell are skipped.
func (t *Table) CountrySeries(country string) (domain.Series, error) {
	if _, ok := t.columns[country]; !ok {
		return domain.Series{}, fmt.Errorf("%w: %q", domain.ErrCountryNotFound, country)
	}
	s := domain.Series{
		Years:  make([]int, 0, len(t.years)),
		Values: make([]float64, 0, len(t.years)),
	}
	for _, year := range t.years {
		if v, ok := t.Value(country, year); ok {
			s.Years = append(s.Years, year)
			s.Values = append(s.Values, v)
		}
	}
	return s, nil
}

// build drops the metadata columns, indexes rows by the label column and
// transposes the result. header is the first row; rows may be ragged.
func build(logger klog.Logger, header []string, rows [][]string, opts Options) (*Table, error) {
	opts = opts.withDefaults()
	if len(header) == 0 {
		return nil, ErrEmptySheet
	}

	index := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimSpace(h)
		if _, dup := index[h]; !dup {
			index[h] = i
		}
	}

	drop := make(map[int]bool, len(opts.DropColumns))
	for _, name := range opts.DropColumns {
		i, ok := index[name]
		if !ok {
			return nil, fmt.Errorf("drop %q: %w", name, ErrColumnNotFound)
		}
		drop[i] = true
	}
	label, ok := index[opts.LabelColumn]
	if !ok {
		return nil, fmt.Errorf("label %q: %w", opts.LabelColumn, ErrColumnNotFound)
	}
	drop[label] = true

	// Remaining columns are years; keep their source positions.
	type yearCol struct {
		year int
		pos  int
	}
	var cols []yearCol
	for i, h := range header {
		if drop[i] {
			continue
		}
		y, err := parseYear(h)
		if err != nil {
			return nil, err
		}
		cols = append(cols, yearCol{year: y, pos: i})
	}
	sort.SliceStable(cols, func(a, b int) bool { return cols[a].year < cols[b].year })
	for i := 1; i < len(cols); i++ {
		if cols[i].year == cols[i-1].year {
			return nil, fmt.Errorf("%w: duplicate year %d", ErrBadYear, cols[i].year)
		}
	}

	t := &Table{
		years:   make([]int, len(cols)),
		columns: make(map[string][]float64, len(rows)),
	}
	for i, c := range cols {
		t.years[i] = c.year
	}

	for r, row := range rows {
		country := strings.TrimSpace(cell(row, label))
		if country == "" {
			continue
		}
		if _, seen := t.columns[country]; seen {
			logger.Info("duplicate country row ignored", "country", country, "row", r+2)
			continue
		}
		values := make([]float64, len(cols))
		for i, c := range cols {
			v, err := parseValue(cell(row, c.pos))
			if err != nil {
				return nil, fmt.Errorf("row %d, %s %d: %w", r+2, country, c.year, err)
			}
			values[i] = v
		}
		t.countries = append(t.countries, country)
		t.columns[country] = values
	}
	return t, nil
}

func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

func parseYear(h string) (int, error) {
	h = strings.TrimSpace(h)
	if y, err := strconv.Atoi(h); err == nil {
		return y, nil
	}
	// Numeric headers may come back as "2000.0".
	f, err := strconv.ParseFloat(h, 64)
	if err != nil || f != math.Trunc(f) {
		return 0, fmt.Errorf("%w: %q", ErrBadYear, h)
	}
	return int(f), nil
}

func parseValue(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return math.NaN(), nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadValue, s)
	}
	return v, nil
}
