package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"bignum/internal/bignum"
)

func newPolyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "poly [--] <n>...",
		Short: "Print the base-256 polynomial form of decimal integers",
		Long: `Print one line per argument with the magnitude written as a sum of byte*256**k
terms, suitable for evaluation by an independent arithmetic evaluator`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, arg := range args {
				v, err := bignum.ParseInt(arg)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, bignum.FormatPoly(v))
			}
			return nil
		},
	}
}
