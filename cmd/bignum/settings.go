package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"bignum/internal/config"
)

type settings struct {
	config     config.Config
	configPath string
	color      bool
}

// prepare loads bignum.toml, resolves --color and starts tracing before any command runs.
func (c *cli) prepare(cmd *cobra.Command, _ []string) error {
	root := cmd.Root()

	explicit, err := root.PersistentFlags().GetString("config")
	if err != nil {
		return fmt.Errorf("failed to get config flag: %w", err)
	}
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}
	cfg, path, err := config.Resolve(explicit, wd)
	if err != nil {
		return err
	}

	colorMode, err := root.PersistentFlags().GetString("color")
	if err != nil {
		return fmt.Errorf("failed to get color flag: %w", err)
	}
	useColor, err := readToggle("color", strings.ToLower(colorMode), func() bool {
		return isTerminal(cmd.OutOrStdout())
	})
	if err != nil {
		return err
	}
	color.NoColor = !useColor

	c.settings = settings{
		config:     cfg,
		configPath: path,
		color:      useColor,
	}

	cleanup, err := setupTracing(cmd, cfg.Trace)
	if err != nil {
		return err
	}
	c.cleanup = cleanup
	return nil
}
