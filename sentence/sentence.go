//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//

// Package sentence splits summaries into sentences for rougeLsum.
package sentence

import "strings"

// Splitter splits text into non-empty sentences.
type Splitter interface {
	// Split returns the sentences of text in order.
	Split(text string) ([]string, error)
}

// Newline treats every non-empty line as a sentence.
type Newline struct{}

// Split splits text on "\n" and drops empty lines.
func (Newline) Split(text string) ([]string, error) {
	return dropEmpty(strings.Split(text, "\n")), nil
}

func dropEmpty(sents []string) []string {
	out := make([]string, 0, len(sents))
	for _, sent := range sents {
		if len(sent) == 0 {
			continue
		}
		out = append(out, sent)
	}
	return out
}
