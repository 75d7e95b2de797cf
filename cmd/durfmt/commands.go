package main

import (
	"github.com/spf13/cobra"
)

func (a *app) formatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "format <value>...",
		Short: "Format nanoseconds or Go durations as duration strings",
		Example: `  durfmt format 90000000000     # 90s
  durfmt format 1h30m           # 90m
  durfmt format 0               # 0s`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := mapArgs(args, formatValue)
			if err != nil {
				return err
			}
			a.logger.Debug("formatted", "count", len(results))
			return emit(cmd.OutOrStdout(), a.cfg.Output, results)
		},
	}
}

func (a *app) parseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <string>...",
		Short: "Parse duration strings",
		Long: `Parse prints, for each duration string, the nanosecond count, the Go
rendering and the value in the unit it was written in.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := mapArgs(args, parseValue)
			if err != nil {
				return err
			}
			return emit(cmd.OutOrStdout(), a.cfg.Output, results)
		},
	}
}

func (a *app) normalizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "normalize <string>...",
		Aliases: []string{"norm"},
		Short:   "Rewrite duration strings in unit-minimal form",
		Example: `  durfmt normalize 60s 1500000ns   # 1m 1500us`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := mapArgs(args, normalizeValue)
			if err != nil {
				return err
			}
			return emit(cmd.OutOrStdout(), a.cfg.Output, results)
		},
	}
}

func (a *app) convertCmd() *cobra.Command {
	var to string
	cmd := &cobra.Command{
		Use:   "convert <string>... --to <unit>",
		Short: "Express durations in another unit",
		Long: `Convert rewrites each duration in the target unit. The unit may be a
suffix ("m") or a long name ("minutes"). Conversions that would lose
precision fail.`,
		Example: `  durfmt convert 2h --to minutes   # 120m
  durfmt convert 90s --to m        # error: not exact`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := mapArgs(args, func(s string) (convertResult, error) {
				return convertValue(s, to)
			})
			if err != nil {
				return err
			}
			return emit(cmd.OutOrStdout(), a.cfg.Output, results)
		},
	}
	cmd.Flags().StringVarP(&to, "to", "t", "", "target unit (suffix or name)")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

func (a *app) unitsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "units",
		Short: "List the supported time units",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return emit(cmd.OutOrStdout(), a.cfg.Output, unitRows())
		},
	}
}
