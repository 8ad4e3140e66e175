package commands

import (
	"encoding/json"
	"flag"
	"io"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"trendline/internal/app"
)

var (
	configPath  string
	datasetPath string
	outputDir   string
	serverURL   string
	dpi         int

	cfg    app.Config
	appCtx *app.Wire
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "trendline",
		Short:        "Fit linear trendlines to SDG country indicators",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = app.LoadConfig(configPath)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("dataset") {
				cfg.Dataset.Path = datasetPath
			}
			if flags.Changed("output-dir") {
				cfg.OutputDir = outputDir
			}
			if flags.Changed("server") {
				cfg.ServerURL = serverURL
			}
			if flags.Changed("dpi") {
				cfg.DPI = dpi
			}
			if flags.Changed("addr") {
				cfg.Addr = addr
			}

			appCtx, err = app.NewWire(cfg)
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			klog.Flush()
		},
	}

	klogFlags := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(klogFlags)
	root.PersistentFlags().AddGoFlagSet(klogFlags)

	root.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file")
	root.PersistentFlags().StringVar(&datasetPath, "dataset", app.DefaultDatasetPath, "SDG spreadsheet (.xlsx or .csv)")
	root.PersistentFlags().StringVar(&outputDir, "output-dir", ".", "directory for rendered <country>.png files")
	root.PersistentFlags().StringVar(&serverURL, "server", "", "API base URL (e.g. http://127.0.0.1:8000); use a running server instead of the local dataset")
	root.PersistentFlags().IntVar(&dpi, "dpi", 300, "plot resolution")

	root.AddCommand(serveCmd(), fitCmd(), countryCmd(), plotCmd(), countriesCmd(), fingerprintCmd())
	return root
}

// printJSON writes v as indented JSON.
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
