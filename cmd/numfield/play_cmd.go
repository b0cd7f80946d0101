package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/numfield/internal/config"
	"github.com/raphi011/numfield/internal/output"
	"github.com/raphi011/numfield/internal/ui/playground"
)

func newPlayCmd() *cobra.Command {
	var styleName string

	cmd := &cobra.Command{
		Use:     "play",
		Short:   "Interactive numeric input playground",
		GroupID: GroupCore,
		Args:    cobra.NoArgs,
		Long: `Open an interactive playground for numeric input styles.

Keystrokes are filtered live, enter commits (canonicalizes) the value, and
tab opens a fuzzy-filterable preset picker. The UI renders on stderr; the
committed value is printed to stdout on exit, so it can be captured:

  VALUE=$(numfield play)`,
		Example: `  numfield play                 # start with the "any" preset
  numfield play --style percent # start with a configured preset`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)
			cfg := config.FromContext(ctx)

			result, err := playground.Run(cfg, styleName)
			if err != nil {
				return err
			}

			if result != "" {
				out.Println(result)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&styleName, "style", "s", "any", "Style preset to start with")

	// Completions
	cmd.RegisterFlagCompletionFunc("style", completeStyleNames)

	return cmd
}
