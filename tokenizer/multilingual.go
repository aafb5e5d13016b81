//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//

package tokenizer

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Multilingual is a language-agnostic word tokenizer in the style of the
// BERT basic tokenizer: text is NFC-normalized, control characters are
// removed, every punctuation character becomes its own token and every CJK
// ideograph becomes its own token. Case is preserved unless lowercasing is
// enabled.
type Multilingual struct {
	lowercase bool
}

// MultilingualOption configures a Multilingual tokenizer.
type MultilingualOption func(*Multilingual)

// WithLowercase enables Unicode case folding of tokens.
func WithLowercase(lowercase bool) MultilingualOption {
	return func(m *Multilingual) {
		m.lowercase = lowercase
	}
}

// NewMultilingual creates a Multilingual tokenizer.
func NewMultilingual(opt ...MultilingualOption) *Multilingual {
	m := &Multilingual{}
	for _, o := range opt {
		o(m)
	}
	return m
}

// Tokenize splits text into words, punctuation and CJK characters.
func (m *Multilingual) Tokenize(text string) []string {
	text = norm.NFC.String(text)
	if m.lowercase {
		// A Caser keeps state, so one is made per call.
		text = cases.Fold().String(text)
	}

	var tokens []string
	var word strings.Builder
	flush := func() {
		if word.Len() > 0 {
			tokens = append(tokens, word.String())
			word.Reset()
		}
	}
	for _, r := range text {
		switch {
		case r == 0 || r == unicode.ReplacementChar:
			continue
		case isWhitespace(r):
			flush()
		case isControl(r):
			continue
		case isPunctuation(r) || isCJK(r):
			flush()
			tokens = append(tokens, string(r))
		default:
			word.WriteRune(r)
		}
	}
	flush()
	return tokens
}

func isWhitespace(r rune) bool {
	if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
		return true
	}
	return unicode.Is(unicode.Zs, r)
}

func isControl(r rune) bool {
	return unicode.IsControl(r) || unicode.In(r, unicode.Cf)
}

// isPunctuation treats all non-alphanumeric ASCII as punctuation, plus the
// Unicode punctuation categories.
func isPunctuation(r rune) bool {
	if (r >= 33 && r <= 47) || (r >= 58 && r <= 64) || (r >= 91 && r <= 96) || (r >= 123 && r <= 126) {
		return true
	}
	return unicode.IsPunct(r)
}

// isCJK reports whether r is in a CJK Unified Ideographs block.
func isCJK(r rune) bool {
	return (r >= 0x4E00 && r <= 0x9FFF) ||
		(r >= 0x3400 && r <= 0x4DBF) ||
		(r >= 0x20000 && r <= 0x2A6DF) ||
		(r >= 0x2A700 && r <= 0x2B73F) ||
		(r >= 0x2B740 && r <= 0x2B81F) ||
		(r >= 0x2B820 && r <= 0x2CEAF) ||
		(r >= 0xF900 && r <= 0xFAFF) ||
		(r >= 0x2F800 && r <= 0x2FA1F)
}
