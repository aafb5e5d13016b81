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

// Kind enumerates the ROUGE scoring families.
type Kind int

const (
	// KindNgram scores n-gram overlap, the N field of Metric holds the order.
	KindNgram Kind = iota + 1
	// KindLCS scores the longest common subsequence of the full token sequences.
	KindLCS
	// KindLCSSum scores the summary-level union LCS over sentence lists.
	KindLCSSum
)

const (
	labelPrefix = "rouge"
	labelLCS    = "rougeL"
	labelLCSSum = "rougeLsum"
)

// String returns a short name for the kind.
func (k Kind) String() string {
	switch k {
	case KindNgram:
		return "ngram"
	case KindLCS:
		return "lcs"
	case KindLCSSum:
		return "lcsSum"
	default:
		return "unknown"
	}
}

// Metric is a parsed ROUGE metric label.
type Metric struct {
	// Kind selects the scoring family.
	Kind Kind
	// N is the n-gram order and is only meaningful for KindNgram.
	N int
	// label keeps the caller's spelling, e.g. "rouge01".
	label string
}

// NgramMetric returns the metric for rouge<n>.
func NgramMetric(n int) Metric {
	return Metric{Kind: KindNgram, N: n}
}

// LCSMetric returns the rougeL metric.
func LCSMetric() Metric {
	return Metric{Kind: KindLCS}
}

// LCSSumMetric returns the rougeLsum metric.
func LCSSumMetric() Metric {
	return Metric{Kind: KindLCSSum}
}

// String returns the label the metric was parsed from, or its canonical label.
func (m Metric) String() string {
	if m.label != "" {
		return m.label
	}
	switch m.Kind {
	case KindLCS:
		return labelLCS
	case KindLCSSum:
		return labelLCSSum
	case KindNgram:
		return labelPrefix + strconv.Itoa(m.N)
	default:
		return fmt.Sprintf("rouge(%d)", int(m.Kind))
	}
}

// ParseMetric parses a label such as rouge1, rouge10, rougeL or rougeLsum.
func ParseMetric(label string) (Metric, error) {
	switch label {
	case labelLCS:
		return Metric{Kind: KindLCS, label: label}, nil
	case labelLCSSum:
		return Metric{Kind: KindLCSSum, label: label}, nil
	}
	digits, ok := strings.CutPrefix(label, labelPrefix)
	if !ok || !isDigits(digits) {
		return Metric{}, fmt.Errorf("%w: %q", ErrInvalidMetricLabel, label)
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return Metric{}, fmt.Errorf("%w: %q: %v", ErrInvalidMetricLabel, label, err)
	}
	if n <= 0 {
		return Metric{}, fmt.Errorf("%w: %q", ErrInvalidNgramOrder, label)
	}
	return Metric{Kind: KindNgram, N: n, label: label}, nil
}

// ParseMetrics parses labels in order and drops repeated labels.
func ParseMetrics(labels ...string) ([]Metric, error) {
	metrics := make([]Metric, 0, len(labels))
	seen := make(map[string]struct{}, len(labels))
	for _, label := range labels {
		if _, ok := seen[label]; ok {
			continue
		}
		m, err := ParseMetric(label)
		if err != nil {
			return nil, err
		}
		seen[label] = struct{}{}
		metrics = append(metrics, m)
	}
	return metrics, nil
}

// isDigits reports whether s is a non-empty run of ASCII digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
