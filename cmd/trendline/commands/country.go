package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"trendline/internal/domain"
)

func countryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "country [name]",
		Short: "Print the trendline of a country in the dataset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				t   domain.Trendline
				err error
			)
			if appCtx.Client != nil {
				t, err = appCtx.Client.CountryTrendline(cmd.Context(), args[0])
			} else {
				t, err = appCtx.Trendlines.CountryTrendline(cmd.Context(), args[0])
			}
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), t)
		},
	}
}

func countriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "countries",
		Short: "List the countries in the dataset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				list []string
				err  error
			)
			if appCtx.Client != nil {
				list, err = appCtx.Client.Countries(cmd.Context())
			} else {
				list, err = appCtx.Trendlines.Countries(cmd.Context())
			}
			if err != nil {
				return err
			}
			for _, c := range list {
				fmt.Fprintln(cmd.OutOrStdout(), c)
			}
			return nil
		},
	}
}
