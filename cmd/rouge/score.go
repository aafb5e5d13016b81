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
	"os"

	"github.com/spf13/cobra"
)

func newScoreCmd(root *rootFlags) *cobra.Command {
	var referencePath, candidatePath string
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score one candidate file against one reference file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.load()
			if err != nil {
				return err
			}
			reference, err := os.ReadFile(referencePath)
			if err != nil {
				return fmt.Errorf("read reference: %w", err)
			}
			candidate, err := os.ReadFile(candidatePath)
			if err != nil {
				return fmt.Errorf("read candidate: %w", err)
			}
			scorer, err := cfg.NewScorer()
			if err != nil {
				return err
			}
			result, err := scorer.Score(cmd.Context(), string(reference), string(candidate))
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		},
	}
	cmd.Flags().StringVarP(&referencePath, "reference", "r", "", "Reference summary file")
	cmd.Flags().StringVarP(&candidatePath, "candidate", "p", "", "Candidate summary file")
	_ = cmd.MarkFlagRequired("reference")
	_ = cmd.MarkFlagRequired("candidate")
	return cmd
}
