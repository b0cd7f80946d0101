package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/numfield/internal/config"
	"github.com/raphi011/numfield/internal/log"
	"github.com/raphi011/numfield/internal/numeric"
	"github.com/raphi011/numfield/internal/output"
)

func newFilterCmd() *cobra.Command {
	var (
		styleName string
		overrides styleOverrides
	)

	cmd := &cobra.Command{
		Use:     "filter [value...]",
		Short:   "Strip disallowed characters from numeric input",
		GroupID: GroupCore,
		Long: `Filter values down to the characters a numeric style permits.

Each value is scanned left to right keeping digits, one decimal separator,
one sign and one exponent marker, as permitted by the style. Disallowed
characters are dropped silently; filtering never fails.

Values come from arguments, or from stdin (one per line) when piped.`,
		Example: `  numfield filter "1.2.3"              # -> 1.23
  numfield filter --style int "1.5"    # -> 15
  echo "1-2-3" | numfield filter       # -> -123
  numfield filter --no-exponent 1e5    # -> 15`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)
			cfg := config.FromContext(ctx)

			style, err := resolveStyle(cfg, styleName, overrides)
			if err != nil {
				return err
			}

			inputs, err := collectInputs(args)
			if err != nil {
				return err
			}

			l.Debug("filtering", "style", styleName, "inputs", len(inputs))

			for _, result := range numeric.FilterAll(ctx, inputs, style) {
				out.Println(result)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&styleName, "style", "s", "", "Style preset to filter with")
	cmd.Flags().BoolVar(&overrides.noDecimal, "no-decimal", false, "Disallow the decimal separator")
	cmd.Flags().BoolVar(&overrides.noNegative, "no-negative", false, "Disallow negative values")
	cmd.Flags().BoolVar(&overrides.noExponent, "no-exponent", false, "Disallow the exponent marker")

	// Completions
	cmd.RegisterFlagCompletionFunc("style", completeStyleNames)

	return cmd
}
