package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/numfield/internal/log"
	"github.com/raphi011/numfield/internal/numeric"
	"github.com/raphi011/numfield/internal/output"
)

func newReformatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "reformat [value...]",
		Short:   "Canonicalize numeric strings",
		GroupID: GroupCore,
		Long: `Reformat numeric strings into a canonical representation.

Mid-range values render as plain decimals, large and tiny positive values
render in scientific notation, zero renders as "0". Values that do not parse
as numbers pass through unchanged.

Values come from arguments, or from stdin (one per line) when piped.`,
		Example: `  numfield reformat 0.0        # -> 0
  numfield reformat 123456     # -> 1.23456E+05
  numfield reformat 1.5000     # -> 1.5
  echo "abc" | numfield reformat  # -> abc (pass-through)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)

			inputs, err := collectInputs(args)
			if err != nil {
				return err
			}

			l.Debug("reformatting", "inputs", len(inputs))

			for _, in := range inputs {
				out.Println(numeric.Reformat(in))
			}

			return nil
		},
	}

	return cmd
}
