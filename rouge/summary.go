//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//

package rouge

// scoreSummaryLCS scores every reference sentence against the whole candidate
// with unionLCS. A hit spends one unit of the token's count on both sides, so
// repeated tokens are never credited beyond what either summary holds.
func scoreSummaryLCS(refSents, canSents [][]string) Score {
	if len(refSents) == 0 || len(canSents) == 0 {
		return Score{}
	}
	m := countTokens(refSents)
	n := countTokens(canSents)
	if m == 0 || n == 0 {
		return Score{}
	}

	// Remaining credit per token, local to this call.
	remainingRef := tokenCounts(refSents)
	remainingCan := tokenCounts(canSents)

	hits := 0
	for _, r := range refSents {
		for _, tok := range unionLCS(r, canSents) {
			if remainingCan[tok] <= 0 || remainingRef[tok] <= 0 {
				continue
			}
			hits++
			remainingCan[tok]--
			remainingRef[tok]--
		}
	}

	recall := float64(hits) / float64(m)
	precision := float64(hits) / float64(n)
	return newScore(precision, recall)
}

// unionLCS pairs ref with every candidate sentence on its own and returns,
// in reference order, each ref token that lies on at least one of those LCS
// paths. A token reached through several candidate sentences appears once.
func unionLCS(ref []string, cans [][]string) []string {
	positions := coveredPositions(ref, cans)
	out := make([]string, 0, len(positions))
	for _, i := range positions {
		out = append(out, ref[i])
	}
	return out
}

// coveredPositions marks the ref positions on any candidate sentence's LCS
// path and returns them ascending.
func coveredPositions(ref []string, cans [][]string) []int {
	onPath := make([]bool, len(ref))
	for _, can := range cans {
		for _, i := range lcsInd(ref, can) {
			onPath[i] = true
		}
	}
	positions := make([]int, 0, len(ref))
	for i, ok := range onPath {
		if ok {
			positions = append(positions, i)
		}
	}
	return positions
}

func countTokens(sents [][]string) int {
	total := 0
	for _, s := range sents {
		total += len(s)
	}
	return total
}

func tokenCounts(sents [][]string) map[string]int {
	counts := make(map[string]int)
	for _, s := range sents {
		for _, tok := range s {
			counts[tok]++
		}
	}
	return counts
}
