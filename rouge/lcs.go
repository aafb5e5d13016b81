//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//

package rouge

// lcsTable is the dynamic programming table of an LCS computation.
// Cell [i][j] holds the LCS length of ref[:i] and can[:j].
type lcsTable [][]int

// newLCSTable builds the (len(ref)+1) x (len(can)+1) LCS table.
func newLCSTable(ref, can []string) lcsTable {
	rows := len(ref)
	cols := len(can)
	table := make(lcsTable, rows+1)
	for i := range table {
		table[i] = make([]int, cols+1)
	}
	for i := 1; i <= rows; i++ {
		for j := 1; j <= cols; j++ {
			if ref[i-1] == can[j-1] {
				table[i][j] = table[i-1][j-1] + 1
				continue
			}
			table[i][j] = max(table[i-1][j], table[i][j-1])
		}
	}
	return table
}

// length returns the LCS length of the full sequences.
func (t lcsTable) length() int {
	last := t[len(t)-1]
	return last[len(last)-1]
}

// backtrack reconstructs one LCS as ascending indices into ref.
//
// On a mismatch the walk moves left (consumes can) only when that cell is
// strictly greater than the one above; ties move up. Scores built on union
// LCS depend on this exact choice.
func (t lcsTable) backtrack(ref, can []string) []int {
	i := len(ref)
	j := len(can)
	indices := make([]int, 0, t[i][j])
	for i > 0 && j > 0 {
		if ref[i-1] == can[j-1] {
			indices = append(indices, i-1)
			i--
			j--
		} else if t[i][j-1] > t[i-1][j] {
			j--
		} else {
			i--
		}
	}
	for left, right := 0, len(indices)-1; left < right; left, right = left+1, right-1 {
		indices[left], indices[right] = indices[right], indices[left]
	}
	return indices
}

// lcsInd returns indices of one LCS between ref and can.
func lcsInd(ref, can []string) []int {
	return newLCSTable(ref, can).backtrack(ref, can)
}

// scoreLCS computes ROUGE-L precision, recall, and F-measure using the LCS length.
func scoreLCS(targetTokens, predTokens []string) Score {
	if len(targetTokens) == 0 || len(predTokens) == 0 {
		return Score{}
	}
	lcsLen := newLCSTable(targetTokens, predTokens).length()
	precision := float64(lcsLen) / float64(len(predTokens))
	recall := float64(lcsLen) / float64(len(targetTokens))
	return newScore(precision, recall)
}
