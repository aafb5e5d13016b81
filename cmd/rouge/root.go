//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"trpc.group/trpc-go/trpc-rouge-go/config"
	"trpc.group/trpc-go/trpc-rouge-go/log"
)

// rootFlags holds the flags shared by every subcommand.
type rootFlags struct {
	configPath string
	metrics    []string
	logLevel   string
	trace      bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	cmd := &cobra.Command{
		Use:   "rouge",
		Short: "Compute ROUGE scores",
		Long: `rouge computes ROUGE-N, ROUGE-L and ROUGE-Lsum scores between reference
and candidate summaries.

Examples:
  rouge score --reference ref.txt --candidate cand.txt
  rouge batch --input pairs.jsonl --metrics rouge1,rougeL
  rouge dir --references refs/ --candidates cands/ --pattern "**/*.txt"
  rouge serve --addr :8080 --config rouge.yaml`,
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to a YAML or JSON config file")
	cmd.PersistentFlags().StringSliceVarP(&flags.metrics, "metrics", "m", nil, "ROUGE types to compute, e.g. rouge1,rouge2,rougeL,rougeLsum")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level (debug, info, warn, error, fatal)")
	cmd.PersistentFlags().BoolVar(&flags.trace, "trace", false, "Log per-metric scores at debug level")

	cmd.AddCommand(
		newScoreCmd(flags),
		newBatchCmd(flags),
		newDirCmd(flags),
		newServeCmd(flags),
	)
	return cmd
}

// load resolves the configuration from the config file and flag overrides.
func (f *rootFlags) load() (*config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		loaded, err := config.Load(f.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if len(f.metrics) > 0 {
		cfg.Metrics = f.metrics
	}
	if f.logLevel != "" {
		cfg.LogLevel = f.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log.SetLevel(cfg.LogLevel)
	log.SetTraceEnabled(f.trace)
	return cfg, nil
}

func writeJSONLine(w io.Writer, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}
