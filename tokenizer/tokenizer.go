//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//

// Package tokenizer provides tokenizers for ROUGE scoring.
//
// The scoring core only compares tokens for equality; every normalisation
// decision (case, punctuation, stemming, sub-word splitting) lives here.
package tokenizer

import (
	"regexp"
	"strings"
)

var (
	// nonAlphaNumRE matches one or more non-alphanumeric characters for normalization.
	nonAlphaNumRE = regexp.MustCompile(`[^a-z0-9]+`)
	// spacesRE matches one or more whitespace characters for token splitting.
	spacesRE = regexp.MustCompile(`\s+`)
	// validTokenRE matches a token consisting only of lowercase ASCII letters and digits.
	validTokenRE = regexp.MustCompile(`^[a-z0-9]+$`)
)

// Tokenizer tokenizes text into a list of tokens.
type Tokenizer interface {
	// Tokenize splits input text into tokens. Equal input must give equal output.
	Tokenize(text string) []string
}

// Func adapts a plain function to Tokenizer.
type Func func(text string) []string

// Tokenize calls f(text).
func (f Func) Tokenize(text string) []string {
	return f(text)
}

// Default replicates the tokenization used by google-research/rouge.
type Default struct {
	// useStemmer enables stemming for tokens longer than 3 characters.
	useStemmer bool
	stemmer    Stemmer
}

// DefaultOption configures a Default tokenizer.
type DefaultOption func(*Default)

// WithStemmer replaces the NLTKPorter stemmer. It only takes effect when
// stemming is enabled.
func WithStemmer(s Stemmer) DefaultOption {
	return func(t *Default) {
		if s != nil {
			t.stemmer = s
		}
	}
}

// NewDefault creates the google-research compatible tokenizer.
func NewDefault(useStemmer bool, opts ...DefaultOption) *Default {
	t := &Default{useStemmer: useStemmer, stemmer: NLTKPorter}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Tokenize lowercases, replaces non-alphanumerics with spaces, splits on
// whitespace, and optionally stems tokens.
func (t *Default) Tokenize(text string) []string {
	text = strings.ToLower(text)
	text = nonAlphaNumRE.ReplaceAllString(text, " ")

	parts := spacesRE.Split(text, -1)
	tokens := make([]string, 0, len(parts))
	for _, token := range parts {
		if token == "" || !validTokenRE.MatchString(token) {
			continue
		}
		if t.useStemmer && len(token) > 3 {
			token = t.stemmer(token)
		}
		if token == "" || !validTokenRE.MatchString(token) {
			continue
		}
		tokens = append(tokens, token)
	}
	return tokens
}
