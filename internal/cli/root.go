// Package cli provides the Cobra command structure for pystylecheck.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/yaklabco/pystylecheck/internal/configloader"
	"github.com/yaklabco/pystylecheck/internal/logging"
	"github.com/yaklabco/pystylecheck/pkg/config"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root pystylecheck command with all subcommands.
// The root command itself checks the single path it is given.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string
	flags := &checkFlags{}

	rootCmd := &cobra.Command{
		Use:   "pystylecheck <path>",
		Short: "A static style checker for Python source",
		Long: `pystylecheck checks Python source files against a fixed set of style rules
(S001-S012): line length, indentation, semicolons, comment spacing, TODO
markers, blank lines, keyword spacing, class, function, argument and variable
naming, and mutable default arguments.

Pass a file to check it alone, or a directory to check every .py file below it.`,
		Args: cobra.ArbitraryArgs,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, flags, info)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.Long += "\n\n" + environmentHelp()

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", string(config.ColorAuto),
		"colorize output: auto, always, never")

	addCheckFlags(rootCmd, flags)

	rootCmd.AddCommand(newCheckCommand(info))
	rootCmd.AddCommand(newRulesCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	// Help is rendered before flags are parsed, so the color mode comes from
	// the environment rather than --color.
	helpColor := config.ColorMode(os.Getenv("PYSTYLECHECK_COLOR"))
	if !helpColor.IsValid() {
		helpColor = config.ColorAuto
	}
	NewHelpFormatter(helpColor, os.Stdout).ApplyToCommand(rootCmd)

	return rootCmd
}

// environmentHelp lists the PYSTYLECHECK_* variables for the root help text.
func environmentHelp() string {
	vars := configloader.ListEnvVars()

	width := 0
	for _, v := range vars {
		width = max(width, len(v.Name))
	}

	var b strings.Builder
	b.WriteString("Environment:")
	for _, v := range vars {
		fmt.Fprintf(&b, "\n  %-*s  %s", width, v.Name, v.Description)
	}
	return b.String()
}

// RouteArgs keeps a path argument from being taken as a subcommand. When the
// only positional argument names both a subcommand and an existing file or
// directory, the arguments are sent to the check command instead, so
// "pystylecheck init" checks a directory called init rather than writing a
// config file.
func RouteArgs(root *cobra.Command, args []string) []string {
	positional := positionalArgs(root, args)
	if len(positional) != 1 {
		return args
	}

	name := args[positional[0]]
	if !isCommandName(root, name) {
		return args
	}
	if _, err := os.Stat(name); err != nil {
		return args
	}

	return append([]string{"check"}, args...)
}

// isCommandName reports whether name selects a subcommand, including the
// help and completion commands cobra adds at execution time.
func isCommandName(root *cobra.Command, name string) bool {
	if name == "help" || name == "completion" {
		return true
	}
	for _, sub := range root.Commands() {
		if sub.Name() == name || sub.HasAlias(name) {
			return true
		}
	}
	return false
}

// positionalArgs returns the indexes of the arguments that are neither flags
// nor flag values.
func positionalArgs(root *cobra.Command, args []string) []int {
	var positional []int

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			for j := i + 1; j < len(args); j++ {
				positional = append(positional, j)
			}
			return positional

		case strings.HasPrefix(arg, "--"):
			name := strings.TrimPrefix(arg, "--")
			if strings.Contains(name, "=") {
				continue
			}
			if takesValue(root, name, "") {
				i++
			}

		case strings.HasPrefix(arg, "-") && len(arg) > 1:
			if len(arg) == 2 && takesValue(root, "", arg[1:]) {
				i++
			}

		default:
			positional = append(positional, i)
		}
	}

	return positional
}

// takesValue reports whether the root flag with the given name or shorthand
// consumes the following argument.
func takesValue(root *cobra.Command, name, shorthand string) bool {
	for _, set := range []*pflag.FlagSet{root.Flags(), root.PersistentFlags()} {
		f := set.Lookup(name)
		if shorthand != "" {
			f = set.ShorthandLookup(shorthand)
		}
		if f != nil {
			return f.NoOptDefVal == ""
		}
	}
	return false
}
