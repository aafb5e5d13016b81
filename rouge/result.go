//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//

package rouge

import (
	"bytes"
	"encoding/json"
)

// ResultMap maps metric labels to scores and remembers the order in which
// labels were requested.
type ResultMap struct {
	labels []string
	scores map[string]Score
}

func newResultMap(capacity int) *ResultMap {
	return &ResultMap{
		labels: make([]string, 0, capacity),
		scores: make(map[string]Score, capacity),
	}
}

// set stores score under label unless label is already present.
func (r *ResultMap) set(label string, score Score) {
	if _, ok := r.scores[label]; ok {
		return
	}
	r.labels = append(r.labels, label)
	r.scores[label] = score
}

// Get returns the score stored for label.
func (r *ResultMap) Get(label string) (Score, bool) {
	if r == nil {
		return Score{}, false
	}
	s, ok := r.scores[label]
	return s, ok
}

// Labels returns the labels in request order.
func (r *ResultMap) Labels() []string {
	if r == nil {
		return nil
	}
	return append([]string(nil), r.labels...)
}

// Len returns the number of scores.
func (r *ResultMap) Len() int {
	if r == nil {
		return 0
	}
	return len(r.labels)
}

// Range calls fn for each label in request order until fn returns false.
func (r *ResultMap) Range(fn func(label string, score Score) bool) {
	if r == nil {
		return
	}
	for _, label := range r.labels {
		if !fn(label, r.scores[label]) {
			return
		}
	}
}

// Map returns a copy of the scores as a plain map.
func (r *ResultMap) Map() map[string]Score {
	out := make(map[string]Score, r.Len())
	r.Range(func(label string, score Score) bool {
		out[label] = score
		return true
	})
	return out
}

// MarshalJSON encodes the scores as a JSON object with keys in request order.
func (r *ResultMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	var err error
	r.Range(func(label string, score Score) bool {
		if buf.Len() > 1 {
			buf.WriteByte(',')
		}
		var b []byte
		if b, err = json.Marshal(label); err != nil {
			return false
		}
		buf.Write(b)
		buf.WriteByte(':')
		if b, err = json.Marshal(score); err != nil {
			return false
		}
		buf.Write(b)
		return true
	})
	if err != nil {
		return nil, err
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
