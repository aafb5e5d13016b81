//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//

package rouge

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/trace"

	itelemetry "trpc.group/trpc-go/trpc-rouge-go/internal/telemetry"
	"trpc.group/trpc-go/trpc-rouge-go/log"
	"trpc.group/trpc-go/trpc-rouge-go/sentence"
	"trpc.group/trpc-go/trpc-rouge-go/tokenizer"
)

// Tokenizer tokenizes text into a list of tokens.
type Tokenizer = tokenizer.Tokenizer

// SentenceSplitter splits a summary into sentences for rougeLsum.
type SentenceSplitter = sentence.Splitter

// Document is one side of a comparison in tokenized form.
type Document struct {
	// Tokens is the whole text as one token sequence, used by rougeN and rougeL.
	Tokens []string
	// Sentences holds one token sequence per sentence, used by rougeLsum.
	Sentences [][]string
}

func (d Document) tokenCount() int {
	if d.Tokens != nil {
		return len(d.Tokens)
	}
	return countTokens(d.Sentences)
}

// Scorer computes a fixed set of ROUGE metrics for text pairs.
// A Scorer is immutable and safe for concurrent use.
type Scorer struct {
	metrics       []Metric
	tokenizer     Tokenizer
	splitter      SentenceSplitter
	workers       int
	needTokens    bool
	needSentences bool
}

// New creates a Scorer that tokenizes text with tok.
// It fails when tok is nil or a requested ROUGE type is invalid.
func New(tok Tokenizer, opt ...Option) (*Scorer, error) {
	if tok == nil {
		return nil, errors.New("tokenizer is nil")
	}
	opts := newOptions(opt...)
	metrics, err := ParseMetrics(opts.rougeTypes...)
	if err != nil {
		return nil, err
	}
	s := &Scorer{
		metrics:   metrics,
		tokenizer: tok,
		splitter:  opts.splitter,
		workers:   max(opts.workers, 1),
	}
	if s.splitter == nil {
		s.splitter = sentence.Newline{}
	}
	for _, m := range metrics {
		if m.Kind == KindLCSSum {
			s.needSentences = true
		} else {
			s.needTokens = true
		}
	}
	log.Debugf("rouge scorer created: metrics=%v workers=%d", s.Labels(), s.workers)
	return s, nil
}

// Metrics returns the parsed metrics in request order.
func (s *Scorer) Metrics() []Metric {
	return append([]Metric(nil), s.metrics...)
}

// Labels returns the metric labels in request order.
func (s *Scorer) Labels() []string {
	labels := make([]string, 0, len(s.metrics))
	for _, m := range s.metrics {
		labels = append(labels, m.String())
	}
	return labels
}

// Score returns ROUGE scores for a single reference and candidate pair.
// Score returns an empty ResultMap when no ROUGE types are configured.
func (s *Scorer) Score(ctx context.Context, reference, candidate string) (*ResultMap, error) {
	if ctx == nil {
		return nil, fmt.Errorf("context is nil")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start := time.Now()
	ctx, span := itelemetry.StartScoreSpan(ctx, s.Labels())
	defer span.End()

	result, err := s.score(span, reference, candidate)
	itelemetry.TraceScoreError(span, err)
	itelemetry.IncScoreRequestCnt(ctx, itelemetry.OperationScore, err)
	itelemetry.RecordScoreDuration(ctx, itelemetry.OperationScore, time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *Scorer) score(span trace.Span, reference, candidate string) (*ResultMap, error) {
	ref, err := s.document(reference)
	if err != nil {
		return nil, fmt.Errorf("prepare reference: %w", err)
	}
	can, err := s.document(candidate)
	if err != nil {
		return nil, fmt.Errorf("prepare candidate: %w", err)
	}
	itelemetry.TraceScoreInput(span, ref.tokenCount(), can.tokenCount())
	return ScoreTokens(s.metrics, ref, can)
}

// document tokenizes text into the forms the configured metrics need.
// Empty sentences are dropped before tokenization.
func (s *Scorer) document(text string) (Document, error) {
	var doc Document
	if s.needTokens {
		doc.Tokens = s.tokenizer.Tokenize(text)
	}
	if !s.needSentences {
		return doc, nil
	}
	sents, err := s.splitter.Split(text)
	if err != nil {
		return Document{}, fmt.Errorf("split sentences: %w", err)
	}
	doc.Sentences = make([][]string, 0, len(sents))
	for _, sent := range sents {
		if sent == "" {
			continue
		}
		doc.Sentences = append(doc.Sentences, s.tokenizer.Tokenize(sent))
	}
	return doc, nil
}

// ScoreTokens scores pre-tokenized documents for each metric in order.
// The first failing metric aborts the call and no partial result is returned.
func ScoreTokens(metrics []Metric, reference, candidate Document) (*ResultMap, error) {
	result := newResultMap(len(metrics))
	for _, m := range metrics {
		label := m.String()
		if _, ok := result.Get(label); ok {
			continue
		}
		var score Score
		switch m.Kind {
		case KindLCS:
			score = scoreLCS(reference.Tokens, candidate.Tokens)
		case KindLCSSum:
			score = scoreSummaryLCS(reference.Sentences, candidate.Sentences)
		case KindNgram:
			ngramScore, err := scoreNGrams(reference.Tokens, candidate.Tokens, m.N)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", label, err)
			}
			score = ngramScore
		default:
			return nil, fmt.Errorf("%w: %s", ErrInvalidMetricLabel, label)
		}
		log.Tracef("%s: precision=%.4f recall=%.4f fmeasure=%.4f", label, score.Precision, score.Recall, score.FMeasure)
		result.set(label, score)
	}
	return result, nil
}
