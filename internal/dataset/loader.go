package dataset

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
	"k8s.io/klog/v2"

	"trendline/internal/digest"
	"trendline/internal/domain"
)

// Loader reads the country table from a spreadsheet on disk.
// Files ending in .csv are read as CSV; everything else as an xlsx workbook.
type Loader struct {
	Path    string
	Options Options
}

// NewLoader returns a Loader for path with the SDG default options.
func NewLoader(path string, opts Options) *Loader {
	return &Loader{Path: path, Options: opts}
}

var _ domain.TableLoader = (*Loader)(nil)

// Load reads and reshapes the file. It is called once per request.
func (l *Loader) Load(ctx context.Context) (domain.CountryTable, error) {
	return l.LoadTable(ctx)
}

// LoadTable is Load with the concrete return type.
func (l *Loader) LoadTable(ctx context.Context) (*Table, error) {
	raw, err := os.ReadFile(l.Path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}

	var t *Table
	if strings.EqualFold(filepath.Ext(l.Path), ".csv") {
		t, err = ReadCSV(ctx, bytes.NewReader(raw), l.Options)
	} else {
		t, err = ReadXLSX(ctx, bytes.NewReader(raw), l.Options)
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", l.Path, err)
	}

	klog.FromContext(ctx).V(1).Info("dataset loaded",
		"path", l.Path,
		"fingerprint", digest.Fingerprint(raw),
		"years", len(t.years),
		"countries", len(t.countries))
	return t, nil
}

// Fingerprint returns the short BLAKE2b fingerprint of the dataset file.
func (l *Loader) Fingerprint() (string, error) {
	raw, err := os.ReadFile(l.Path)
	if err != nil {
		return "", fmt.Errorf("read dataset: %w", err)
	}
	return digest.Fingerprint(raw), nil
}

// LoadTable reads path with the given options. It is a shorthand for
// NewLoader(path, opts).LoadTable.
func LoadTable(ctx context.Context, path string, opts Options) (*Table, error) {
	return NewLoader(path, opts).LoadTable(ctx)
}

// ReadXLSX parses a workbook. The first sheet is used unless opts.Sheet is set.
func ReadXLSX(ctx context.Context, r io.Reader, opts Options) (*Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	sheet := opts.Sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, ErrEmptySheet
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, ErrEmptySheet
	}
	return build(klog.FromContext(ctx), rows[0], rows[1:], opts)
}

// ReadCSV parses a comma separated export with the same layout as the workbook.
func ReadCSV(ctx context.Context, r io.Reader, opts Options) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrEmptySheet
	}
	// Strip a UTF-8 BOM left by spreadsheet exports.
	records[0][0] = strings.TrimPrefix(records[0][0], "\ufeff")
	return build(klog.FromContext(ctx), records[0], records[1:], opts)
}
