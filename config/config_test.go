//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//

package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trpc.group/trpc-go/trpc-rouge-go/rouge"
	"trpc.group/trpc-go/trpc-rouge-go/sentence"
	"trpc.group/trpc-go/trpc-rouge-go/tokenizer"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, []string{"rouge1", "rouge2", "rougeL", "rougeLsum"}, cfg.Metrics)
	assert.Equal(t, TokenizerRouge, cfg.Tokenizer.Kind)
	assert.Positive(t, cfg.Workers)
}

func TestLoad_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rouge.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
metrics: [rouge1, rougeLsum]
tokenizer:
  kind: rouge
  stemmer: true
sentence_splitter: punkt
workers: 2
log_level: debug
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"rouge1", "rougeLsum"}, cfg.Metrics)
	assert.True(t, cfg.Tokenizer.Stemmer)
	assert.Equal(t, SplitterPunkt, cfg.SentenceSplitter)
	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, "debug", cfg.LogLevel)
}

// TestParse_JSON verifies that JSON documents decode through the YAML parser.
func TestParse_JSON(t *testing.T) {
	cfg, err := Parse([]byte(`{"metrics": ["rougeL"], "tokenizer": {"kind": "whitespace"}}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"rougeL"}, cfg.Metrics)
	assert.Equal(t, TokenizerWhitespace, cfg.Tokenizer.Kind)
	assert.Equal(t, SplitterNewline, cfg.SentenceSplitter)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config")

	_, err = Parse([]byte("metrics: [rouge1"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")
}

// TestValidate_CollectsAllErrors verifies that every invalid field is reported at once.
func TestValidate_CollectsAllErrors(t *testing.T) {
	cfg := &Config{
		Metrics:          []string{"rougeX", "rouge0", "rouge1"},
		Tokenizer:        TokenizerConfig{Kind: "bpe", StemmerAlgorithm: "lancaster"},
		SentenceSplitter: "spacy",
		Workers:          -1,
		LogLevel:         "loud",
	}
	err := cfg.Validate()
	require.Error(t, err)
	var merr *multierror.Error
	require.ErrorAs(t, err, &merr)
	assert.Len(t, merr.Errors, 7)
	assert.ErrorIs(t, err, rouge.ErrInvalidMetricLabel)
	assert.ErrorIs(t, err, rouge.ErrInvalidNgramOrder)
}

func TestNewTokenizer(t *testing.T) {
	tests := []struct {
		kind string
		want any
	}{
		{kind: TokenizerRouge, want: &tokenizer.Default{}},
		{kind: TokenizerWhitespace, want: tokenizer.Whitespace{}},
		{kind: TokenizerMultilingual, want: &tokenizer.Multilingual{}},
		{kind: TokenizerTiktoken, want: &tokenizer.Tiktoken{}},
	}
	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			cfg := Default()
			cfg.Tokenizer.Kind = tt.kind
			tok, err := cfg.NewTokenizer()
			require.NoError(t, err)
			assert.IsType(t, tt.want, tok)
		})
	}

	cfg := Default()
	cfg.Tokenizer = TokenizerConfig{Kind: TokenizerRouge, Stemmer: true}
	tok, err := cfg.NewTokenizer()
	require.NoError(t, err)
	assert.Equal(t, []string{"die", "enjoy"}, tok.Tokenize("dies enjoy"))

	cfg.Tokenizer.StemmerAlgorithm = StemmerPorter
	tok, err = cfg.NewTokenizer()
	require.NoError(t, err)
	assert.Equal(t, []string{"di", "enjoi"}, tok.Tokenize("dies enjoy"))

	cfg.Tokenizer = TokenizerConfig{Kind: TokenizerTiktoken, Encoding: "not_an_encoding"}
	_, err = cfg.NewTokenizer()
	require.Error(t, err)
}

func TestNewSplitter(t *testing.T) {
	cfg := Default()
	splitter, err := cfg.NewSplitter()
	require.NoError(t, err)
	assert.IsType(t, sentence.Newline{}, splitter)

	cfg.SentenceSplitter = SplitterPunkt
	splitter, err = cfg.NewSplitter()
	require.NoError(t, err)
	assert.IsType(t, &sentence.Punkt{}, splitter)
}

func TestNewScorer(t *testing.T) {
	cfg := Default()
	cfg.Tokenizer.Kind = TokenizerWhitespace
	scorer, err := cfg.NewScorer()
	require.NoError(t, err)
	assert.Equal(t, cfg.Metrics, scorer.Labels())

	result, err := scorer.Score(context.Background(), "a b c\nd e", "a b\nc d")
	require.NoError(t, err)
	lsum, ok := result.Get("rougeLsum")
	require.True(t, ok)
	assert.InDelta(t, 0.8, lsum.Recall, 1e-12)

	scorer, err = cfg.NewScorer(rouge.WithRougeTypes("rougeL"))
	require.NoError(t, err)
	assert.Equal(t, []string{"rougeL"}, scorer.Labels())
}
