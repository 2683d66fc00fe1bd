package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"bignum/internal/config"
	"bignum/internal/session"
)

func newSessionCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "session",
		Aliases: []string{"run"},
		Short:   "Run the interactive number session on stdin/stdout",
		Long: `Read whitespace-separated integers until 'q' or end of input. For each number
print orig=, bn= and bnLong= lines; after every second number print bn2= and bn1+bn2=`,
		Args: cobra.NoArgs,
		RunE: c.runSession,
	}
	addSessionFlags(cmd)
	return cmd
}

func addSessionFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("poly", false, "also print the base-256 polynomial of every number (bnPoly=)")
	cmd.Flags().String("prompt", config.DefaultPrompt, "prompt line written before each read")
	cmd.Flags().String("prompt-mode", "", "when to show the prompt (auto|on|off)")
}

func (c *cli) runSession(cmd *cobra.Command, _ []string) error {
	opts, err := c.sessionOptions(cmd)
	if err != nil {
		return err
	}
	return session.Run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), opts)
}

// sessionOptions merges session flags over the [session] table.
func (c *cli) sessionOptions(cmd *cobra.Command) (session.Options, error) {
	cfg := c.settings.config.Session

	poly, err := cmd.Flags().GetBool("poly")
	if err != nil {
		return session.Options{}, fmt.Errorf("failed to get poly flag: %w", err)
	}
	if !cmd.Flags().Changed("poly") {
		poly = cfg.Poly
	}

	prompt, err := cmd.Flags().GetString("prompt")
	if err != nil {
		return session.Options{}, fmt.Errorf("failed to get prompt flag: %w", err)
	}
	if !cmd.Flags().Changed("prompt") {
		prompt = cfg.Prompt
	}

	modeStr, err := cmd.Flags().GetString("prompt-mode")
	if err != nil {
		return session.Options{}, fmt.Errorf("failed to get prompt-mode flag: %w", err)
	}
	mode := cfg.ShowPrompt
	if cmd.Flags().Changed("prompt-mode") {
		mode, err = config.ParsePromptMode(modeStr)
		if err != nil {
			return session.Options{}, err
		}
	}
	show, err := readToggle("prompt-mode", strings.ToLower(string(mode)), func() bool {
		return isTerminal(cmd.InOrStdin())
	})
	if err != nil {
		return session.Options{}, err
	}
	if !show {
		prompt = ""
	}

	return session.Options{
		Prompt: prompt,
		Poly:   poly,
		Color:  c.settings.color,
	}, nil
}
