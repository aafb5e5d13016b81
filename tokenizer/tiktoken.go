//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//

package tokenizer

import (
	"fmt"
	"strings"

	"github.com/tiktoken-go/tokenizer"

	"trpc.group/trpc-go/trpc-rouge-go/log"
)

// Tiktoken splits text into BPE sub-word pieces with a tiktoken codec.
// Pieces are trimmed of surrounding whitespace and empty pieces are dropped,
// so " world" and "world" compare equal.
type Tiktoken struct {
	codec tokenizer.Codec
}

// NewTiktoken creates a sub-word tokenizer for the named encoding, e.g.
// "cl100k_base" or "o200k_base". An empty name selects cl100k_base.
func NewTiktoken(encoding string) (*Tiktoken, error) {
	if encoding == "" {
		encoding = string(tokenizer.Cl100kBase)
	}
	codec, err := tokenizer.Get(tokenizer.Encoding(encoding))
	if err != nil {
		return nil, fmt.Errorf("get tiktoken encoding %q: %w", encoding, err)
	}
	return &Tiktoken{codec: codec}, nil
}

// Tokenize returns the sub-word pieces of text. Text the codec cannot
// encode yields no tokens.
func (t *Tiktoken) Tokenize(text string) []string {
	_, pieces, err := t.codec.Encode(text)
	if err != nil {
		log.Warnf("tiktoken %s: encode failed: %v", t.codec.GetName(), err)
		return nil
	}
	tokens := make([]string, 0, len(pieces))
	for _, p := range pieces {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		tokens = append(tokens, p)
	}
	return tokens
}
