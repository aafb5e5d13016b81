//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//

package main

import (
	"fmt"
	"io/fs"
	"os"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"trpc.group/trpc-go/trpc-rouge-go/log"
	"trpc.group/trpc-go/trpc-rouge-go/server"
)

const defaultDirPattern = "**/*.txt"

func newDirCmd(root *rootFlags) *cobra.Command {
	var referenceDir, candidateDir, pattern string
	cmd := &cobra.Command{
		Use:   "dir",
		Short: "Score candidate files against reference files with the same relative path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.load()
			if err != nil {
				return err
			}
			pairs, err := pairFiles(os.DirFS(referenceDir), os.DirFS(candidateDir), pattern)
			if err != nil {
				return err
			}
			scorer, err := cfg.NewScorer()
			if err != nil {
				return err
			}
			return scoreAndWrite(cmd, scorer, pairs, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&referenceDir, "references", "", "Directory of reference summaries")
	cmd.Flags().StringVar(&candidateDir, "candidates", "", "Directory of candidate summaries")
	cmd.Flags().StringVar(&pattern, "pattern", defaultDirPattern, "Doublestar glob selecting reference files")
	_ = cmd.MarkFlagRequired("references")
	_ = cmd.MarkFlagRequired("candidates")
	return cmd
}

// pairFiles matches pattern in refs and pairs every match with the file of
// the same relative path in cands. References without a candidate are skipped.
func pairFiles(refs, cands fs.FS, pattern string) ([]server.BatchPair, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid pattern %q", pattern)
	}
	matches, err := doublestar.Glob(refs, pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("glob references: %w", err)
	}
	sort.Strings(matches)
	pairs := make([]server.BatchPair, 0, len(matches))
	for _, name := range matches {
		reference, err := fs.ReadFile(refs, name)
		if err != nil {
			return nil, fmt.Errorf("read reference %s: %w", name, err)
		}
		candidate, err := fs.ReadFile(cands, name)
		if err != nil {
			log.Warnf("skip %s: %v", name, err)
			continue
		}
		pairs = append(pairs, server.BatchPair{
			ID:        name,
			Reference: string(reference),
			Candidate: string(candidate),
		})
	}
	return pairs, nil
}
