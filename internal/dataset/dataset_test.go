package dataset_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-logr/logr/funcr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"k8s.io/klog/v2"

	"trendline/internal/dataset"
	"trendline/internal/domain"
)

var sdgHeader = []any{
	"Goal", "Target", "Indicator", "SeriesCode", "SeriesDescription",
	"GeoAreaCode", "GeoAreaName", "Reporting Type", "Sex", "Units",
	2000, 2001, 2002, 2003,
}

func sdgRow(code int, country string, values ...any) []any {
	row := []any{
		5, "5.5", "5.5.1", "SG_GEN_PARL", "Proportion of seats held by women in national parliaments (% of total number of seats)",
		code, country, "G", "FEMALE", "PERCENT",
	}
	return append(row, values...)
}

// writeWorkbook saves rows (header first) into a fresh xlsx under t.TempDir.
func writeWorkbook(t *testing.T, rows ...[]any) string {
	t.Helper()
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		r := row
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &r))
	}
	path := filepath.Join(t.TempDir(), "SG_GEN_PARL.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestLoadTable_TransposesByCountry(t *testing.T) {
	path := writeWorkbook(t,
		sdgHeader,
		sdgRow(356, "India", 9.0, 9.0, 8.8, 8.3),
		sdgRow(392, "Japan", 4.6, 7.3, 7.3, 7.1),
	)

	tbl, err := dataset.LoadTable(context.Background(), path, dataset.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, []int{2000, 2001, 2002, 2003}, tbl.Years())
	assert.Equal(t, []string{"India", "Japan"}, tbl.Countries())

	s, err := tbl.CountrySeries("Japan")
	require.NoError(t, err)
	assert.Equal(t, []int{2000, 2001, 2002, 2003}, s.Years)
	assert.Equal(t, []float64{4.6, 7.3, 7.3, 7.1}, s.Values)

	v, ok := tbl.Value("India", 2002)
	require.True(t, ok)
	assert.Equal(t, 8.8, v)
}

func TestLoadTable_UnknownCountry(t *testing.T) {
	path := writeWorkbook(t, sdgHeader, sdgRow(356, "India", 9.0, 9.0, 8.8, 8.3))

	tbl, err := dataset.LoadTable(context.Background(), path, dataset.DefaultOptions())
	require.NoError(t, err)

	_, err = tbl.CountrySeries("india")
	require.ErrorIs(t, err, domain.ErrCountryNotFound)
}

func TestLoadTable_SkipsMissingCells(t *testing.T) {
	path := writeWorkbook(t, sdgHeader, sdgRow(4, "Afghanistan", nil, 27.3, "", 27.3))

	tbl, err := dataset.LoadTable(context.Background(), path, dataset.DefaultOptions())
	require.NoError(t, err)

	s, err := tbl.CountrySeries("Afghanistan")
	require.NoError(t, err)
	assert.Equal(t, []int{2001, 2003}, s.Years)
	assert.Equal(t, []float64{27.3, 27.3}, s.Values)

	_, ok := tbl.Value("Afghanistan", 2000)
	assert.False(t, ok)
}

func TestLoadTable_DuplicateCountryKeepsFirst(t *testing.T) {
	path := writeWorkbook(t,
		sdgHeader,
		sdgRow(356, "India", 1.0, 2.0, 3.0, 4.0),
		sdgRow(356, "India", 9.0, 9.0, 9.0, 9.0),
	)

	var logged []string
	logger := funcr.New(func(prefix, args string) {
		logged = append(logged, args)
	}, funcr.Options{})
	ctx := klog.NewContext(context.Background(), logger)

	tbl, err := dataset.LoadTable(ctx, path, dataset.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, []string{"India"}, tbl.Countries())

	s, err := tbl.CountrySeries("India")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3, 4}, s.Values)

	require.Len(t, logged, 1)
	assert.Contains(t, logged[0], `"msg"="duplicate country row ignored"`)
	assert.Contains(t, logged[0], `"country"="India"`)
	assert.Contains(t, logged[0], `"row"=3`)
}

func TestLoadTable_MissingDropColumn(t *testing.T) {
	path := writeWorkbook(t,
		[]any{"GeoAreaName", 2000, 2001},
		[]any{"India", 1.0, 2.0},
	)

	_, err := dataset.LoadTable(context.Background(), path, dataset.DefaultOptions())
	require.ErrorIs(t, err, dataset.ErrColumnNotFound)
}

func TestLoadTable_CustomDropColumns(t *testing.T) {
	path := writeWorkbook(t,
		[]any{"Code", "GeoAreaName", 2001, 2000},
		[]any{"IN", "India", 2.0, 1.0},
	)

	opts := dataset.Options{DropColumns: []string{"Code"}}
	tbl, err := dataset.LoadTable(context.Background(), path, opts)
	require.NoError(t, err)

	// Year columns come back sorted even when the sheet is not.
	s, err := tbl.CountrySeries("India")
	require.NoError(t, err)
	assert.Equal(t, []int{2000, 2001}, s.Years)
	assert.Equal(t, []float64{1, 2}, s.Values)
}

func TestLoadTable_NonYearColumn(t *testing.T) {
	path := writeWorkbook(t,
		[]any{"GeoAreaName", "Footnote", 2000},
		[]any{"India", "x", 1.0},
	)

	_, err := dataset.LoadTable(context.Background(), path, dataset.Options{DropColumns: []string{}})
	require.ErrorIs(t, err, dataset.ErrBadYear)
}

func TestLoadTable_NonNumericCell(t *testing.T) {
	path := writeWorkbook(t,
		[]any{"GeoAreaName", 2000, 2001},
		[]any{"India", 1.0, "n/a"},
	)

	_, err := dataset.LoadTable(context.Background(), path, dataset.Options{DropColumns: []string{}})
	require.ErrorIs(t, err, dataset.ErrBadValue)
}

func TestLoadTable_MissingFile(t *testing.T) {
	_, err := dataset.LoadTable(context.Background(), filepath.Join(t.TempDir(), "nope.xlsx"), dataset.DefaultOptions())
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadTable_CSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sdg.csv")
	csv := "\ufeffGeoAreaCode,GeoAreaName,2010,2011,2012\n" +
		"8,Albania,16.4,15.7,\n" +
		"12,Algeria,7.7,31.6,31.6\n"
	require.NoError(t, os.WriteFile(path, []byte(csv), 0o600))

	tbl, err := dataset.LoadTable(context.Background(), path, dataset.Options{DropColumns: []string{"GeoAreaCode"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"Albania", "Algeria"}, tbl.Countries())

	s, err := tbl.CountrySeries("Albania")
	require.NoError(t, err)
	assert.Equal(t, []int{2010, 2011}, s.Years)
}

func TestLoader_ReloadsEveryCall(t *testing.T) {
	path := writeWorkbook(t, sdgHeader, sdgRow(356, "India", 1.0, 2.0, 3.0, 4.0))
	l := dataset.NewLoader(path, dataset.DefaultOptions())

	first, err := l.Fingerprint()
	require.NoError(t, err)
	_, err = l.Load(context.Background())
	require.NoError(t, err)

	// Replace the file; the next Load must see the new content.
	next := writeWorkbook(t, sdgHeader, sdgRow(392, "Japan", 1.0, 2.0, 3.0, 4.0))
	data, err := os.ReadFile(next)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	tbl, err := l.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Japan"}, tbl.Countries())

	second, err := l.Fingerprint()
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}
