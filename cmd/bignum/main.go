package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"bignum/internal/version"
)

// cli carries the state shared by all commands of one invocation.
type cli struct {
	settings settings
	cleanup  func()
}

// newRootCmd builds the command tree. Running the root without a subcommand
// starts the interactive session, which is how test drivers invoke the binary.
func newRootCmd() (*cobra.Command, *cli) {
	c := &cli{cleanup: func() {}}

	rootCmd := &cobra.Command{
		Use:   "bignum",
		Short: "Arbitrary-precision integer test harness",
		Long: `bignum reads decimal integers, stores them as base-256 magnitudes and reports
their decimal, int64 and polynomial forms together with pairwise sums`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		PersistentPreRunE: c.prepare,
		RunE:              c.runSession,
	}
	rootCmd.Version = version.Version

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().String("config", "", "path to bignum.toml (default: search upwards from the working directory)")
	rootCmd.PersistentFlags().String("trace", "", "trace output file (- for stderr)")
	rootCmd.PersistentFlags().String("trace-level", "", "trace level (off|error|session|word|op)")
	rootCmd.PersistentFlags().String("trace-format", "", "trace format (text|ndjson)")
	addSessionFlags(rootCmd)

	rootCmd.AddCommand(newSessionCmd(c))
	rootCmd.AddCommand(newAddCmd())
	rootCmd.AddCommand(newPolyCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd, c
}

// execute runs the CLI with the given arguments and streams and returns the exit status.
func execute(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	rootCmd, c := newRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.ExecuteContext(ctx)
	c.cleanup()
	if err != nil {
		return 1
	}
	return 0
}

// main executes the root command; a command error exits with status 1.
func main() {
	os.Exit(execute(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// isTerminal reports whether v is an *os.File attached to a terminal.
func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd())) //nolint:gosec // G115: file descriptors fit in int.
}

func readToggle(flag, value string, auto func() bool) (bool, error) {
	switch value {
	case "", "auto":
		return auto(), nil
	case "on":
		return true, nil
	case "off":
		return false, nil
	default:
		return false, fmt.Errorf("invalid --%s value %q (expected auto|on|off)", flag, value)
	}
}
