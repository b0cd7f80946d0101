// Package config loads the numfield configuration.
//
// Configuration lives at ~/.config/numfield/config.toml and is entirely
// optional: a missing file yields the built-in defaults, and every section
// can be given partially.
//
// # Style presets
//
// [styles.NAME] sections define named numeric styles usable via --style:
//
//	[styles.quantity]
//	decimal_separator = false
//	negative = false
//	min = 1.0
//	max = 9999.0
//
// Omitted character-class keys default to permitted; omitted min/max leave
// the range open on that side. User presets are merged over the built-in set
// (any, int, decimal, positive, percent) and may shadow it.
//
// # Theme
//
// The [theme] section selects a color theme family by name and optionally
// overrides individual colors:
//
//	[theme]
//	name = "nord"
//	accent = "#ff79c6"
//
// # Debug log
//
// log_file names a file the interactive playground writes debug events to.
// A TUI owns the terminal, so diagnostics cannot go to stderr while it runs.
package config
