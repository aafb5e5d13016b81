//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//

// Package rouge implements ROUGE scoring over tokenized text.
//
// Three scoring families are supported: n-gram overlap (rougeN), pairwise
// longest common subsequence (rougeL) and summary-level union LCS
// (rougeLsum). Tokenization and sentence splitting are supplied by the
// caller; the scoring itself is a pure function of the token sequences.
package rouge

// Score holds ROUGE precision, recall and F-measure.
type Score struct {
	// Precision is the fraction of predicted units that match the reference in range [0, 1].
	Precision float64 `json:"precision"`
	// Recall is the fraction of reference units that are matched by the prediction in range [0, 1].
	Recall float64 `json:"recall"`
	// FMeasure is the harmonic mean of precision and recall in range [0, 1].
	FMeasure float64 `json:"fmeasure"`
}

// newScore builds a Score whose F-measure is derived from precision and recall.
func newScore(precision, recall float64) Score {
	return Score{Precision: precision, Recall: recall, FMeasure: fMeasure(precision, recall)}
}

// fMeasure computes the harmonic mean of precision and recall.
func fMeasure(precision, recall float64) float64 {
	if precision+recall > 0 {
		return 2 * precision * recall / (precision + recall)
	}
	return 0
}
