//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//

// Package config loads scorer configuration from YAML or JSON files.
package config

import (
	"fmt"
	"os"
	"runtime"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"

	"trpc.group/trpc-go/trpc-rouge-go/log"
	"trpc.group/trpc-go/trpc-rouge-go/rouge"
	"trpc.group/trpc-go/trpc-rouge-go/sentence"
	"trpc.group/trpc-go/trpc-rouge-go/tokenizer"
)

// Tokenizer kinds.
const (
	TokenizerRouge        = "rouge"
	TokenizerWhitespace   = "whitespace"
	TokenizerMultilingual = "multilingual"
	TokenizerTiktoken     = "tiktoken"
)

// Sentence splitter kinds.
const (
	SplitterNewline = "newline"
	SplitterPunkt   = "punkt"
)

// Stemming algorithms for the rouge tokenizer.
const (
	StemmerNLTK   = "nltk"
	StemmerPorter = "porter"
)

// Config describes how a rouge.Scorer is built.
type Config struct {
	// Metrics lists the ROUGE labels to compute, e.g. rouge1, rougeL, rougeLsum.
	Metrics []string `yaml:"metrics" json:"metrics"`
	// Tokenizer selects and configures the tokenizer.
	Tokenizer TokenizerConfig `yaml:"tokenizer" json:"tokenizer"`
	// SentenceSplitter is "newline" or "punkt" and only affects rougeLsum.
	SentenceSplitter string `yaml:"sentence_splitter,omitempty" json:"sentence_splitter,omitempty"`
	// Workers bounds batch scoring concurrency.
	Workers int `yaml:"workers,omitempty" json:"workers,omitempty"`
	// LogLevel is one of the log package levels.
	LogLevel string `yaml:"log_level,omitempty" json:"log_level,omitempty"`
}

// TokenizerConfig configures the tokenizer.
type TokenizerConfig struct {
	// Kind is one of rouge, whitespace, multilingual or tiktoken.
	Kind string `yaml:"kind" json:"kind"`
	// Stemmer enables Porter stemming for the rouge tokenizer.
	Stemmer bool `yaml:"stemmer,omitempty" json:"stemmer,omitempty"`
	// StemmerAlgorithm is nltk (default) or porter.
	StemmerAlgorithm string `yaml:"stemmer_algorithm,omitempty" json:"stemmer_algorithm,omitempty"`
	// Lowercase enables case folding for the multilingual tokenizer.
	Lowercase bool `yaml:"lowercase,omitempty" json:"lowercase,omitempty"`
	// Encoding names the tiktoken encoding, cl100k_base when empty.
	Encoding string `yaml:"encoding,omitempty" json:"encoding,omitempty"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Metrics:          []string{"rouge1", "rouge2", "rougeL", "rougeLsum"},
		Tokenizer:        TokenizerConfig{Kind: TokenizerRouge},
		SentenceSplitter: SplitterNewline,
		Workers:          runtime.GOMAXPROCS(0),
		LogLevel:         log.LevelInfo,
	}
}

// Load reads the file at path on top of Default and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML or JSON document on top of Default and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

// Validate reports every invalid field.
func (c *Config) Validate() error {
	var merr *multierror.Error
	for _, label := range c.Metrics {
		if _, err := rouge.ParseMetric(label); err != nil {
			merr = multierror.Append(merr, fmt.Errorf("metrics: %w", err))
		}
	}
	switch c.Tokenizer.Kind {
	case TokenizerRouge, TokenizerWhitespace, TokenizerMultilingual, TokenizerTiktoken:
	default:
		merr = multierror.Append(merr, fmt.Errorf("tokenizer.kind: unsupported tokenizer %q", c.Tokenizer.Kind))
	}
	switch c.Tokenizer.StemmerAlgorithm {
	case "", StemmerNLTK, StemmerPorter:
	default:
		merr = multierror.Append(merr, fmt.Errorf("tokenizer.stemmer_algorithm: unsupported algorithm %q", c.Tokenizer.StemmerAlgorithm))
	}
	switch c.SentenceSplitter {
	case "", SplitterNewline, SplitterPunkt:
	default:
		merr = multierror.Append(merr, fmt.Errorf("sentence_splitter: unsupported splitter %q", c.SentenceSplitter))
	}
	if c.Workers < 0 {
		merr = multierror.Append(merr, fmt.Errorf("workers must be non-negative"))
	}
	if c.LogLevel != "" && !log.ValidLevel(c.LogLevel) {
		merr = multierror.Append(merr, fmt.Errorf("log_level: unsupported level %q", c.LogLevel))
	}
	return merr.ErrorOrNil()
}

// NewTokenizer builds the configured tokenizer.
func (c *Config) NewTokenizer() (rouge.Tokenizer, error) {
	switch c.Tokenizer.Kind {
	case TokenizerRouge:
		if c.Tokenizer.StemmerAlgorithm == StemmerPorter {
			return tokenizer.NewDefault(c.Tokenizer.Stemmer, tokenizer.WithStemmer(tokenizer.ClassicPorter)), nil
		}
		return tokenizer.NewDefault(c.Tokenizer.Stemmer), nil
	case TokenizerWhitespace:
		return tokenizer.Whitespace{}, nil
	case TokenizerMultilingual:
		return tokenizer.NewMultilingual(tokenizer.WithLowercase(c.Tokenizer.Lowercase)), nil
	case TokenizerTiktoken:
		return tokenizer.NewTiktoken(c.Tokenizer.Encoding)
	default:
		return nil, fmt.Errorf("unsupported tokenizer %q", c.Tokenizer.Kind)
	}
}

// NewSplitter builds the configured sentence splitter.
func (c *Config) NewSplitter() (rouge.SentenceSplitter, error) {
	switch c.SentenceSplitter {
	case "", SplitterNewline:
		return sentence.Newline{}, nil
	case SplitterPunkt:
		return sentence.NewPunkt(), nil
	default:
		return nil, fmt.Errorf("unsupported sentence splitter %q", c.SentenceSplitter)
	}
}

// NewScorer builds a scorer from the configuration. Options in opt are
// applied after the configured ones.
func (c *Config) NewScorer(opt ...rouge.Option) (*rouge.Scorer, error) {
	tok, err := c.NewTokenizer()
	if err != nil {
		return nil, err
	}
	splitter, err := c.NewSplitter()
	if err != nil {
		return nil, err
	}
	opts := []rouge.Option{
		rouge.WithRougeTypes(c.Metrics...),
		rouge.WithSentenceSplitter(splitter),
		rouge.WithWorkers(c.Workers),
	}
	return rouge.New(tok, append(opts, opt...)...)
}
