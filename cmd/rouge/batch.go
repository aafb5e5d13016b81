//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//

package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"trpc.group/trpc-go/trpc-rouge-go/log"
	"trpc.group/trpc-go/trpc-rouge-go/rouge"
	"trpc.group/trpc-go/trpc-rouge-go/server"
)

const maxLineBytes = 64 << 20

func newBatchCmd(root *rootFlags) *cobra.Command {
	var inputPath, outputPath string
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Score JSONL pairs",
		Long: `Score every {"id","reference","candidate"} line of a JSONL file and write
one {"id","scores"} line per pair. Missing ids are generated.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.load()
			if err != nil {
				return err
			}
			in := cmd.InOrStdin()
			if inputPath != "-" {
				f, err := os.Open(inputPath)
				if err != nil {
					return fmt.Errorf("open input: %w", err)
				}
				defer f.Close()
				in = f
			}
			out := cmd.OutOrStdout()
			if outputPath != "" && outputPath != "-" {
				f, err := os.Create(outputPath)
				if err != nil {
					return fmt.Errorf("create output: %w", err)
				}
				defer f.Close()
				out = f
			}

			pairs, err := readPairs(in)
			if err != nil {
				return err
			}
			scorer, err := cfg.NewScorer()
			if err != nil {
				return err
			}
			return scoreAndWrite(cmd, scorer, pairs, out)
		},
	}
	cmd.Flags().StringVarP(&inputPath, "input", "i", "-", "JSONL input file, - for stdin")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "-", "JSONL output file, - for stdout")
	return cmd
}

func readPairs(r io.Reader) ([]server.BatchPair, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	var pairs []server.BatchPair
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		var p server.BatchPair
		if err := json.Unmarshal([]byte(text), &p); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if p.ID == "" {
			p.ID = uuid.NewString()
		}
		pairs = append(pairs, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return pairs, nil
}

// scoreAndWrite scores pairs and writes one result line per pair. Pair
// failures are written to their line and reported in the returned error.
func scoreAndWrite(cmd *cobra.Command, scorer *rouge.Scorer, pairs []server.BatchPair, w io.Writer) error {
	input := make([]rouge.Pair, len(pairs))
	for i, p := range pairs {
		input[i] = rouge.Pair{Reference: p.Reference, Candidate: p.Candidate}
	}
	results, scoreErr := scorer.ScoreBatch(cmd.Context(), input)
	if scoreErr != nil {
		log.Errorf("batch scoring: %v", scoreErr)
	}
	pairErrs := rouge.PairErrors(scoreErr, len(pairs))
	for i, p := range pairs {
		res := server.BatchResult{ID: p.ID}
		if i < len(results) && results[i] != nil {
			res.Scores = results[i]
		} else if pairErrs[i] != nil {
			res.Error = pairErrs[i].Error()
		}
		if err := writeJSONLine(w, res); err != nil {
			return err
		}
	}
	log.Infof("scored %d pairs", len(pairs))
	return scoreErr
}
