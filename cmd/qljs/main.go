package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"qljs/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "qljs",
	Short: "qljs lints JavaScript/TypeScript variable scoping and mutability",
	Long:  `qljs replays parser visit-events through a variable analyzer and reports scoping, binding, mutability, hoisting, and type-vs-value diagnostics.`,
}

// init wires subcommands and persistent flags onto rootCmd at package load,
// not inside main, so tests in this package can exercise rootCmd (and the
// cmd.Root().PersistentFlags() reads the subcommands do) without going
// through main itself.
func init() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(lintCmd)
	rootCmd.AddCommand(printConfigCmd)
	rootCmd.AddCommand(lspCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Bool("timings", false, "show timing information")
	rootCmd.PersistentFlags().Int("max-diagnostics", 1000, "maximum number of diagnostics to collect per file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// resolveColor applies the --color flag against whether stdout is a
// terminal: "auto" colorizes only when stdout is a terminal, "on"/"off"
// force the choice regardless.
func resolveColor(mode string) bool {
	switch mode {
	case "on":
		return true
	case "off":
		return false
	default:
		return isTerminal(os.Stdout)
	}
}
