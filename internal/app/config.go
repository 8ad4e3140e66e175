package app

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"gopkg.in/yaml.v3"

	"trendline/internal/dataset"
)

// DefaultDatasetPath is the SDG export read when nothing else is configured.
const DefaultDatasetPath = "SG_GEN_PARL.xlsx"

// Config holds runtime wiring options for building the app.
type Config struct {
	Addr      string        `yaml:"addr"`       // listen address, e.g. :8000
	ServerURL string        `yaml:"server_url"` // API base URL for remote commands
	OutputDir string        `yaml:"output_dir"` // where <country>.png files go
	DPI       int           `yaml:"dpi"`        // plot resolution
	Dataset   DatasetConfig `yaml:"dataset"`
	HTTP      *http.Client  `yaml:"-"` // optional; defaults to http.DefaultClient
}

// DatasetConfig selects and reshapes the input spreadsheet.
type DatasetConfig struct {
	Path        string   `yaml:"path"`
	Sheet       string   `yaml:"sheet"`
	LabelColumn string   `yaml:"label_column"`
	DropColumns []string `yaml:"drop_columns"`
}

// Options converts the config into loader options.
func (d DatasetConfig) Options() dataset.Options {
	return dataset.Options{
		Sheet:       d.Sheet,
		LabelColumn: d.LabelColumn,
		DropColumns: d.DropColumns,
	}
}

// DefaultConfig reads the SDG file from the working directory and writes
// images next to it.
func DefaultConfig() Config {
	return Config{
		Addr:      ":8000",
		OutputDir: ".",
		DPI:       300,
		Dataset: DatasetConfig{
			Path:        DefaultDatasetPath,
			LabelColumn: dataset.DefaultLabelColumn,
			DropColumns: append([]string(nil), dataset.DefaultDropColumns...),
		},
	}
}

// LoadConfig returns DefaultConfig overlaid with the YAML file at path.
// An empty path returns the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := decodeConfig(bytes.NewReader(b), &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func decodeConfig(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
