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
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	itelemetry "trpc.group/trpc-go/trpc-rouge-go/internal/telemetry"
	"trpc.group/trpc-go/trpc-rouge-go/log"
	"trpc.group/trpc-go/trpc-rouge-go/sentence"
	semconvtrace "trpc.group/trpc-go/trpc-rouge-go/telemetry/semconv/trace"
	"trpc.group/trpc-go/trpc-rouge-go/tokenizer"
)

// whitespaceTokenizer tokenizes text by splitting on whitespace without normalization.
type whitespaceTokenizer struct{}

// Tokenize splits text on whitespace without normalization.
func (whitespaceTokenizer) Tokenize(text string) []string {
	return strings.Fields(text)
}

// failingSplitter always fails to split.
type failingSplitter struct{}

func (failingSplitter) Split(string) ([]string, error) {
	return nil, errors.New("split failed")
}

func newTestScorer(t *testing.T, tok Tokenizer, opt ...Option) *Scorer {
	t.Helper()
	s, err := New(tok, opt...)
	require.NoError(t, err)
	return s
}

func TestNew(t *testing.T) {
	_, err := New(nil, WithRougeTypes("rouge1"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tokenizer is nil")

	_, err = New(whitespaceTokenizer{}, WithRougeTypes("rouge1", "rougeX"))
	assert.ErrorIs(t, err, ErrInvalidMetricLabel)

	_, err = New(whitespaceTokenizer{}, WithRougeTypes("rouge0"))
	assert.ErrorIs(t, err, ErrInvalidNgramOrder)

	s := newTestScorer(t, whitespaceTokenizer{}, WithRougeTypes("rougeLsum", "rouge1", "rouge1"))
	assert.Equal(t, []string{"rougeLsum", "rouge1"}, s.Labels())
	metrics := s.Metrics()
	require.Len(t, metrics, 2)
	metrics[0] = Metric{}
	assert.Equal(t, KindLCSSum, s.Metrics()[0].Kind)
}

// TestScorer_InvalidRougeType verifies that invalid ROUGE type names return an error.
func TestScorer_InvalidRougeType(t *testing.T) {
	for _, rougeType := range []string{"rouge", "rougen", "rouge0", "rouge-1", "rougeX"} {
		_, err := New(whitespaceTokenizer{}, WithRougeTypes(rougeType))
		require.Error(t, err, rougeType)
	}
}

// TestScorer_NilContext verifies that nil contexts return an error.
func TestScorer_NilContext(t *testing.T) {
	s := newTestScorer(t, whitespaceTokenizer{}, WithRougeTypes("rouge1"))
	_, err := s.Score(nil, "a", "b")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "context is nil")
}

// TestScorer_ContextCanceled verifies that canceled contexts return the context error.
func TestScorer_ContextCanceled(t *testing.T) {
	s := newTestScorer(t, whitespaceTokenizer{}, WithRougeTypes("rouge1"))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := s.Score(ctx, "a", "b")
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

// TestScorer_EmptyRougeTypes verifies that empty rougeTypes returns an empty result without error.
func TestScorer_EmptyRougeTypes(t *testing.T) {
	s := newTestScorer(t, whitespaceTokenizer{})
	result, err := s.Score(context.Background(), "a", "b")
	require.NoError(t, err)
	assert.Zero(t, result.Len())
}

// TestScorer_RougeN_MultiDigit verifies that multi-digit ROUGE-N values are accepted.
func TestScorer_RougeN_MultiDigit(t *testing.T) {
	s := newTestScorer(t, whitespaceTokenizer{}, WithRougeTypes("rouge10"))
	result, err := s.Score(context.Background(), "a b c d e f g h i j", "a b c d e f g h i j")
	require.NoError(t, err)
	score, ok := result.Get("rouge10")
	require.True(t, ok)
	assert.InDelta(t, 1.0, score.Precision, 1e-12)
	assert.InDelta(t, 1.0, score.Recall, 1e-12)
	assert.InDelta(t, 1.0, score.FMeasure, 1e-12)
}

func TestScorer_KeepsCallerLabel(t *testing.T) {
	s := newTestScorer(t, whitespaceTokenizer{}, WithRougeTypes("rouge01"))
	result, err := s.Score(context.Background(), "a b", "a")
	require.NoError(t, err)
	assert.Equal(t, []string{"rouge01"}, result.Labels())
}

// TestScorer_Tokenizer verifies that the injected tokenizer drives scoring.
func TestScorer_Tokenizer(t *testing.T) {
	s := newTestScorer(t, tokenizer.NewDefault(false), WithRougeTypes("rouge1"))
	result, err := s.Score(context.Background(), "a-b", "a")
	require.NoError(t, err)
	score, _ := result.Get("rouge1")
	assert.Greater(t, score.FMeasure, 0.0)

	s = newTestScorer(t, whitespaceTokenizer{}, WithRougeTypes("rouge1"))
	result, err = s.Score(context.Background(), "a-b", "a")
	require.NoError(t, err)
	score, _ = result.Get("rouge1")
	assert.InDelta(t, 0.0, score.FMeasure, 1e-12)
}

func TestScorer_Score(t *testing.T) {
	tests := []struct {
		name      string
		rougeType string
		ref, can  string
		precision float64
		recall    float64
		fmeasure  float64
	}{
		{name: "rouge1", rougeType: "rouge1", ref: "testing one two", can: "testing", precision: 1, recall: 1.0 / 3.0, fmeasure: 0.5},
		{name: "rouge2", rougeType: "rouge2", ref: "testing one two", can: "testing one", precision: 1, recall: 0.5, fmeasure: 2.0 / 3.0},
		{name: "rougeL non consecutive", rougeType: "rougeL", ref: "testing one two", can: "testing two", precision: 1, recall: 2.0 / 3.0, fmeasure: 0.8},
		{name: "rouge1 repeats", rougeType: "rouge1", ref: "a b c a", can: "a c a b", precision: 1, recall: 1, fmeasure: 1},
		{name: "rouge1 mismatch", rougeType: "rouge1", ref: "police killed the gunman", can: "police kill the gunman", precision: 0.75, recall: 0.75, fmeasure: 0.75},
		{name: "rougeL mismatch", rougeType: "rougeL", ref: "police killed the gunman", can: "police kill the gunman", precision: 0.75, recall: 0.75, fmeasure: 0.75},
		{name: "rougeLsum", rougeType: "rougeLsum", ref: "a b c\nd e", can: "a b\nc d", precision: 1, recall: 0.8, fmeasure: 8.0 / 9.0},
		{name: "rouge1 disjoint", rougeType: "rouge1", ref: "a b c", can: "x y z"},
		{name: "rouge2 disjoint", rougeType: "rouge2", ref: "a b c", can: "x y z"},
		{name: "rougeL disjoint", rougeType: "rougeL", ref: "a b c", can: "x y z"},
		{name: "rougeLsum disjoint", rougeType: "rougeLsum", ref: "a b\nc", can: "x\ny z"},
		{name: "rougeL empty candidate", rougeType: "rougeL", ref: "a b", can: ""},
		{name: "rouge1 empty reference", rougeType: "rouge1", ref: "", can: "a b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestScorer(t, whitespaceTokenizer{}, WithRougeTypes(tt.rougeType))
			result, err := s.Score(context.Background(), tt.ref, tt.can)
			require.NoError(t, err)
			score, ok := result.Get(tt.rougeType)
			require.True(t, ok)
			assert.InDelta(t, tt.precision, score.Precision, 1e-12)
			assert.InDelta(t, tt.recall, score.Recall, 1e-12)
			assert.InDelta(t, tt.fmeasure, score.FMeasure, 1e-12)
		})
	}
}

// TestScorer_RougeLsum verifies rougeLsum scoring on newline-separated summaries and edge cases.
func TestScorer_RougeLsum(t *testing.T) {
	s := newTestScorer(t, tokenizer.NewDefault(false), WithRougeTypes("rougeLsum"))

	result, err := s.Score(context.Background(), "w1 w2 w3 w4 w5", "w1 w2 w6 w7 w8\nw1 w3 w8 w9 w5")
	require.NoError(t, err)
	score, _ := result.Get("rougeLsum")
	assert.InDelta(t, 0.8, score.Recall, 1e-12)
	assert.InDelta(t, 0.4, score.Precision, 1e-12)
	assert.InDelta(t, 0.5333, score.FMeasure, 1e-4)

	for _, tc := range [][2]string{
		{"w1 w2 w3 w4 w5", ""},
		{"", "w1"},
		{"w1 w2 w3 w4 w5", "/"},
	} {
		result, err = s.Score(context.Background(), tc[0], tc[1])
		require.NoError(t, err)
		score, _ = result.Get("rougeLsum")
		assert.Equal(t, Score{}, score)
	}
}

// TestScorer_RougeLsumSentenceSplitting verifies sentence splitting options for rougeLsum.
func TestScorer_RougeLsumSentenceSplitting(t *testing.T) {
	target := "First sentence.\nSecond Sentence."
	prediction := "Second sentence.\nFirst Sentence."
	stemmer := tokenizer.NewDefault(true)

	s := newTestScorer(t, stemmer, WithRougeTypes("rougeLsum"))
	result, err := s.Score(context.Background(), target, prediction)
	require.NoError(t, err)
	score, _ := result.Get("rougeLsum")
	assert.InDelta(t, 1.0, score.FMeasure, 1e-12)

	target = strings.ReplaceAll(target, "\n", " ")
	prediction = strings.ReplaceAll(prediction, "\n", " ")
	result, err = s.Score(context.Background(), target, prediction)
	require.NoError(t, err)
	score, _ = result.Get("rougeLsum")
	assert.InDelta(t, 0.50, score.FMeasure, 1e-12)

	s = newTestScorer(t, stemmer, WithRougeTypes("rougeLsum"), WithSentenceSplitter(sentence.NewPunkt()))
	result, err = s.Score(context.Background(), target, prediction)
	require.NoError(t, err)
	score, _ = result.Get("rougeLsum")
	assert.InDelta(t, 1.0, score.FMeasure, 1e-12)
}

func TestScorer_SplitterError(t *testing.T) {
	s := newTestScorer(t, whitespaceTokenizer{}, WithRougeTypes("rougeLsum"), WithSentenceSplitter(failingSplitter{}))
	_, err := s.Score(context.Background(), "a", "a")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "prepare reference")
	assert.Contains(t, err.Error(), "split failed")

	// Sentence splitting is skipped when no rougeLsum metric is requested.
	s = newTestScorer(t, whitespaceTokenizer{}, WithRougeTypes("rouge1"), WithSentenceSplitter(failingSplitter{}))
	_, err = s.Score(context.Background(), "a", "a")
	require.NoError(t, err)
}

// TestScorer_ResultOrder verifies that result labels follow the requested order.
func TestScorer_ResultOrder(t *testing.T) {
	s := newTestScorer(t, whitespaceTokenizer{}, WithRougeTypes("rougeLsum", "rouge2", "rougeL", "rouge1"))
	result, err := s.Score(context.Background(), "a b c", "a b d")
	require.NoError(t, err)
	assert.Equal(t, []string{"rougeLsum", "rouge2", "rougeL", "rouge1"}, result.Labels())
}

func TestScoreTokens(t *testing.T) {
	ref := Document{
		Tokens:    []string{"a", "b", "c", "d", "e"},
		Sentences: [][]string{{"a", "b", "c"}, {"d", "e"}},
	}
	can := Document{
		Tokens:    []string{"a", "b", "c", "d"},
		Sentences: [][]string{{"a", "b"}, {"c", "d"}},
	}
	result, err := ScoreTokens([]Metric{NgramMetric(1), LCSMetric(), LCSSumMetric()}, ref, can)
	require.NoError(t, err)
	assert.Equal(t, []string{"rouge1", "rougeL", "rougeLsum"}, result.Labels())
	lsum, _ := result.Get("rougeLsum")
	assert.InDelta(t, 0.8, lsum.Recall, 1e-12)
	assert.InDelta(t, 1.0, lsum.Precision, 1e-12)

	_, err = ScoreTokens([]Metric{NgramMetric(0)}, ref, can)
	assert.ErrorIs(t, err, ErrInvalidNgramOrder)

	_, err = ScoreTokens([]Metric{{}}, ref, can)
	assert.ErrorIs(t, err, ErrInvalidMetricLabel)
}

// TestScoreTokens_DisjointVocabularies verifies that documents sharing no
// token score zero on every metric.
func TestScoreTokens_DisjointVocabularies(t *testing.T) {
	metrics := []Metric{NgramMetric(1), NgramMetric(2), NgramMetric(3), LCSMetric(), LCSSumMetric()}
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 100; i++ {
		ref := documentOf(randomSentences(rng), false)
		can := documentOf(randomSentences(rng), true)
		result, err := ScoreTokens(metrics, ref, can)
		require.NoError(t, err)
		assert.Equal(t, len(metrics), result.Len())
		result.Range(func(label string, score Score) bool {
			assert.Equal(t, Score{}, score, label)
			return true
		})
	}
}

// documentOf flattens sents into a Document, upper-casing every token when
// upper is set so that the vocabulary cannot overlap a lower-case one.
func documentOf(sents [][]string, upper bool) Document {
	doc := Document{Sentences: make([][]string, len(sents))}
	for i, sent := range sents {
		for _, tok := range sent {
			if upper {
				tok = strings.ToUpper(tok)
			}
			doc.Sentences[i] = append(doc.Sentences[i], tok)
			doc.Tokens = append(doc.Tokens, tok)
		}
	}
	return doc
}

// TestScoreTokens_Trace verifies that each scored metric is traced when enabled.
func TestScoreTokens_Trace(t *testing.T) {
	rec := &traceRecorder{}
	orig := log.Default
	log.Default = rec
	log.SetTraceEnabled(true)
	t.Cleanup(func() {
		log.Default = orig
		log.SetTraceEnabled(false)
	})

	doc := documentOf([][]string{{"a", "b"}}, false)
	_, err := ScoreTokens([]Metric{NgramMetric(1), LCSMetric()}, doc, doc)
	require.NoError(t, err)
	require.Len(t, rec.lines, 2)
	assert.True(t, strings.HasPrefix(rec.lines[0], "[TRACE] rouge1: precision=1.0000"))
	assert.True(t, strings.HasPrefix(rec.lines[1], "[TRACE] rougeL: "))
}

type traceRecorder struct {
	lines []string
}

func (r *traceRecorder) Debugf(format string, args ...any) {
	r.lines = append(r.lines, fmt.Sprintf(format, args...))
}
func (r *traceRecorder) Infof(string, ...any)  {}
func (r *traceRecorder) Warnf(string, ...any)  {}
func (r *traceRecorder) Errorf(string, ...any) {}
func (r *traceRecorder) Fatalf(string, ...any) {}

// TestScorer_RecordsSpan verifies that scoring emits a span with token counts.
func TestScorer_RecordsSpan(t *testing.T) {
	orig := itelemetry.Tracer
	t.Cleanup(func() { itelemetry.Tracer = orig })
	sr := tracetest.NewSpanRecorder()
	itelemetry.Tracer = sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr)).Tracer(itelemetry.InstrumentName)

	s := newTestScorer(t, whitespaceTokenizer{}, WithRougeTypes("rouge1", "rougeL"))
	_, err := s.Score(context.Background(), "a b c", "a b")
	require.NoError(t, err)

	ended := sr.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, semconvtrace.SpanNameScore, ended[0].Name())
	attrs := map[string]any{}
	for _, kv := range ended[0].Attributes() {
		attrs[string(kv.Key)] = kv.Value.AsInterface()
	}
	assert.Equal(t, []string{"rouge1", "rougeL"}, attrs[semconvtrace.KeyRougeMetrics])
	assert.Equal(t, int64(3), attrs[semconvtrace.KeyRougeReferenceTokens])
	assert.Equal(t, int64(2), attrs[semconvtrace.KeyRougeCandidateTokens])
}
