//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//

package rouge

import (
	"fmt"
	"strconv"
	"strings"
)

// ngramMultiset maps an encoded n-gram to its number of occurrences.
type ngramMultiset map[string]int

// total returns the sum of all occurrence counts.
func (m ngramMultiset) total() int {
	var sum int
	for _, cnt := range m {
		sum += cnt
	}
	return sum
}

// createNGrams builds the multiset of length-n windows over tokens with stride 1.
// A sequence shorter than n yields an empty multiset.
func createNGrams(tokens []string, n int) (ngramMultiset, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidNgramOrder, n)
	}
	if len(tokens) < n {
		return ngramMultiset{}, nil
	}
	ngrams := make(ngramMultiset, len(tokens)-n+1)
	var b strings.Builder
	for i := 0; i+n <= len(tokens); i++ {
		ngrams[ngramKey(&b, tokens[i:i+n])]++
	}
	return ngrams, nil
}

// ngramKey encodes a token window as a length-prefixed string so that no
// token content can make two different windows collide.
func ngramKey(b *strings.Builder, window []string) string {
	b.Reset()
	for _, tok := range window {
		b.WriteString(strconv.Itoa(len(tok)))
		b.WriteByte(':')
		b.WriteString(tok)
	}
	return b.String()
}

// scoreNGramSets compares target and prediction multisets.
// Only n-grams present in the target can contribute to the intersection.
func scoreNGramSets(target, prediction ngramMultiset) Score {
	var intersection int
	for key, cnt := range target {
		intersection += min(cnt, prediction[key])
	}
	precision := float64(intersection) / float64(max(prediction.total(), 1))
	recall := float64(intersection) / float64(max(target.total(), 1))
	return newScore(precision, recall)
}

// scoreNGrams computes ROUGE-N precision, recall, and F-measure for tokenized inputs.
func scoreNGrams(targetTokens, predTokens []string, n int) (Score, error) {
	targetNGrams, err := createNGrams(targetTokens, n)
	if err != nil {
		return Score{}, err
	}
	predNGrams, err := createNGrams(predTokens, n)
	if err != nil {
		return Score{}, err
	}
	return scoreNGramSets(targetNGrams, predNGrams), nil
}
