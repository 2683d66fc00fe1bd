package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"bignum/internal/config"
	"bignum/internal/trace"
)

// setupTracing merges trace flags over the [trace] table and initializes the tracer.
// It returns a cleanup function and an error if initialization fails.
func setupTracing(cmd *cobra.Command, fileCfg config.TraceConfig) (func(), error) {
	root := cmd.Root()

	traceOutput, err := stringFlagOr(root, "trace", fileCfg.Output)
	if err != nil {
		return nil, err
	}
	levelStr, err := stringFlagOr(root, "trace-level", fileCfg.Level)
	if err != nil {
		return nil, err
	}
	formatStr, err := stringFlagOr(root, "trace-format", fileCfg.Format)
	if err != nil {
		return nil, err
	}

	level, err := trace.ParseLevel(levelStr)
	if err != nil {
		return nil, fmt.Errorf("invalid trace level: %w", err)
	}

	// --trace alone means "trace words to that output"
	if level == trace.LevelOff && root.PersistentFlags().Changed("trace") && !root.PersistentFlags().Changed("trace-level") {
		level = trace.LevelWord
	}

	if level == trace.LevelOff {
		cmd.SetContext(trace.WithTracer(cmd.Context(), trace.Nop))
		return func() {}, nil
	}

	format, err := trace.ParseFormat(formatStr)
	if err != nil {
		return nil, fmt.Errorf("invalid trace format: %w", err)
	}

	cfg := trace.Config{
		Level:      level,
		Format:     format,
		OutputPath: traceOutput,
	}
	if traceOutput == "" || traceOutput == "-" {
		cfg.Output = cmd.ErrOrStderr()
	}

	tracer, err := trace.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create tracer: %w", err)
	}

	ctx := trace.WithTracer(cmd.Context(), tracer)
	cmd.SetContext(ctx)
	root.SetContext(ctx)

	cleanup := func() {
		if err := tracer.Flush(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "trace: flush error: %v\n", err)
		}
		if err := tracer.Close(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "trace: close error: %v\n", err)
		}
	}

	return cleanup, nil
}

// stringFlagOr returns the persistent flag value when it was set, else fallback.
func stringFlagOr(root *cobra.Command, name, fallback string) (string, error) {
	value, err := root.PersistentFlags().GetString(name)
	if err != nil {
		return "", fmt.Errorf("failed to get %s flag: %w", name, err)
	}
	if !root.PersistentFlags().Changed(name) {
		return fallback, nil
	}
	return value, nil
}
