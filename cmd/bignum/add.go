package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"bignum/internal/bignum"
	"bignum/internal/trace"
)

func newAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add [--] <n> <n>...",
		Short: "Print the sum of decimal integers",
		Long: `Print the sum of all arguments. Put negative numbers after "--" so they are
not read as flags: bignum add -- -5 3`,
		Args: cobra.MinimumNArgs(1),
		RunE: runAdd,
	}
	cmd.Flags().Bool("poly", false, "also print the base-256 polynomial of the sum")
	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	showPoly, err := cmd.Flags().GetBool("poly")
	if err != nil {
		return fmt.Errorf("failed to get poly flag: %w", err)
	}

	tracer := trace.FromContext(cmd.Context())
	span := trace.Begin(tracer, trace.ScopeSession, "add", 0)

	sum := bignum.IntZero()
	for _, arg := range args {
		v, err := bignum.ParseInt(arg)
		if err != nil {
			span.Fail(err)
			return err
		}
		sum = bignum.IntAdd(sum, v)
	}
	span.WithExtra("terms", fmt.Sprint(len(args))).End("")

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, sum)
	if showPoly {
		fmt.Fprintln(out, bignum.FormatPoly(sum))
	}
	return nil
}
