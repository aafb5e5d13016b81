//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//

package tokenizer

import "strings"

// Whitespace splits text on Unicode whitespace without any normalization.
type Whitespace struct{}

// Tokenize returns the whitespace-separated fields of text.
func (Whitespace) Tokenize(text string) []string {
	return strings.Fields(text)
}
