package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/raphi011/numfield/internal/config"
	"github.com/raphi011/numfield/internal/numeric"
)

// styleOverrides holds the per-invocation flag overrides applied on top of
// a configured preset.
type styleOverrides struct {
	noDecimal  bool
	noNegative bool
	noExponent bool
}

// resolveStyle picks the preset named by styleName (or the full default
// style when empty) and applies flag overrides.
func resolveStyle(cfg *config.Config, styleName string, o styleOverrides) (numeric.Style, error) {
	style := numeric.DefaultStyle()
	if styleName != "" {
		var err error
		style, err = cfg.ResolveStyle(styleName)
		if err != nil {
			return numeric.Style{}, err
		}
	}

	if o.noDecimal {
		style.AllowDecimalSeparator = false
	}
	if o.noNegative {
		style.AllowNegative = false
	}
	if o.noExponent {
		style.AllowExponent = false
	}

	return style, nil
}

// collectInputs returns args, or the piped stdin split into lines when no
// args were given. Errors when neither is available.
func collectInputs(args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	piped, err := readStdinIfPiped()
	if err != nil {
		return nil, err
	}
	if piped == "" {
		return nil, fmt.Errorf("no input: pass values as arguments or pipe them on stdin")
	}

	return splitLines(piped), nil
}

// readStdinIfPiped reads all content from stdin if it's piped (not a TTY).
// Returns empty string and nil if stdin is a TTY (interactive).
func readStdinIfPiped() (string, error) {
	if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		return "", nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}

// splitLines splits piped input into lines, dropping a single trailing
// empty line so "echo" style input yields one value.
func splitLines(s string) []string {
	lines := strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}

// completeStyleNames provides completion for the --style flag.
func completeStyleNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	cfg := config.FromContext(cmd.Context())
	return cfg.StyleNames(), cobra.ShellCompDirectiveNoFileComp
}
