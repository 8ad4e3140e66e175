package commands

import (
	"github.com/spf13/cobra"

	"trendline/internal/api"
	"trendline/internal/domain"
)

var (
	timestamps []int
	values     []float64
)

// fit: fit a trendline to --timestamps and --data.
func fitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "fit",
		Short:   "Fit a trendline to integer timestamps and values",
		Example: "  trendline fit --timestamps 2000,2001,2002 --data 9,9,8.8",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := api.FitRequest{Timestamps: timestamps, Data: values}
			if err := req.Validate(); err != nil {
				return err
			}

			var (
				t   domain.Trendline
				err error
			)
			if appCtx.Client != nil {
				t, err = appCtx.Client.Fit(cmd.Context(), req.Timestamps, req.Data)
			} else {
				t, err = appCtx.Trendlines.Fit(cmd.Context(), req.Timestamps, req.Data)
			}
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), api.FitResponse{Slope: t.Slope, RSquared: t.RSquared})
		},
	}
	cmd.Flags().IntSliceVar(&timestamps, "timestamps", nil, "comma separated ascending years")
	cmd.Flags().Float64SliceVar(&values, "data", nil, "comma separated non-negative values")
	_ = cmd.MarkFlagRequired("timestamps")
	_ = cmd.MarkFlagRequired("data")
	return cmd
}
