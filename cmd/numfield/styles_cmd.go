package main

import (
	"encoding/json"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/raphi011/numfield/internal/config"
	"github.com/raphi011/numfield/internal/output"
	"github.com/raphi011/numfield/internal/ui/static"
)

// StyleDisplay holds a style preset for JSON output.
type StyleDisplay struct {
	Name             string   `json:"name"`
	DecimalSeparator bool     `json:"decimal_separator"`
	Negative         bool     `json:"negative"`
	Exponent         bool     `json:"exponent"`
	Min              *float64 `json:"min,omitempty"`
	Max              *float64 `json:"max,omitempty"`
}

func newStylesCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:     "styles",
		Short:   "List configured style presets",
		Aliases: []string{"ls"},
		GroupID: GroupCore,
		Args:    cobra.NoArgs,
		Long: `List style presets available via --style and in the playground.

Built-in presets are always present; [styles.NAME] sections in the config
file add to or shadow them.`,
		Example: `  numfield styles          # table of presets
  numfield styles --json   # JSON output`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)
			cfg := config.FromContext(ctx)

			var display []StyleDisplay
			for _, name := range cfg.StyleNames() {
				style := cfg.Styles[name].Style()
				d := StyleDisplay{
					Name:             name,
					DecimalSeparator: style.AllowDecimalSeparator,
					Negative:         style.AllowNegative,
					Exponent:         style.AllowExponent,
				}
				if style.Range != nil {
					d.Min = style.Range.Min
					d.Max = style.Range.Max
				}
				display = append(display, d)
			}

			if jsonOutput {
				enc := json.NewEncoder(out.Writer())
				enc.SetIndent("", "  ")
				return enc.Encode(display)
			}

			headers := []string{"NAME", "SEPARATOR", "NEGATIVE", "EXPONENT", "RANGE"}
			var rows [][]string
			for _, d := range display {
				rows = append(rows, []string{
					d.Name,
					yesNo(d.DecimalSeparator),
					yesNo(d.Negative),
					yesNo(d.Exponent),
					rangeColumn(d.Min, d.Max),
				})
			}

			out.Print(static.RenderTable(headers, rows))

			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// rangeColumn formats an advisory range for the table, "" when open on
// both sides.
func rangeColumn(min, max *float64) string {
	if min == nil && max == nil {
		return ""
	}
	f := func(p *float64) string {
		if p == nil {
			return ""
		}
		return strconv.FormatFloat(*p, 'f', -1, 64)
	}
	return "[" + f(min) + ".." + f(max) + "]"
}
