package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// plot: render <country>.png. With --server the image is rendered remotely
// and saved into --output-dir.
func plotCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plot [country]",
		Short: "Render a country's data and trendline to <country>.png",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			country := args[0]

			var (
				path string
				err  error
			)
			if appCtx.Client != nil {
				var png []byte
				if png, err = appCtx.Client.CountryImage(cmd.Context(), country); err != nil {
					return err
				}
				path, err = appCtx.Images.SaveImage(country, png)
			} else {
				path, err = appCtx.Trendlines.RenderPlot(cmd.Context(), country)
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}
