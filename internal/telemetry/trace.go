//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//

package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"

	"trpc.group/trpc-go/trpc-rouge-go/telemetry/errs"
	semconvtrace "trpc.group/trpc-go/trpc-rouge-go/telemetry/semconv/trace"
)

// InstrumentName is the instrumentation scope of all spans and meters.
const InstrumentName = "trpc.rouge.go"

// Tracer opens scoring spans.
var Tracer trace.Tracer = tracenoop.NewTracerProvider().Tracer(InstrumentName)

// StartScoreSpan opens the span of one scoring call.
func StartScoreSpan(ctx context.Context, labels []string) (context.Context, trace.Span) {
	return Tracer.Start(ctx, semconvtrace.SpanNameScore,
		trace.WithAttributes(attribute.StringSlice(semconvtrace.KeyRougeMetrics, labels)))
}

// TraceScoreInput records the tokenized input sizes on span.
func TraceScoreInput(span trace.Span, referenceTokens, candidateTokens int) {
	span.SetAttributes(
		attribute.Int(semconvtrace.KeyRougeReferenceTokens, referenceTokens),
		attribute.Int(semconvtrace.KeyRougeCandidateTokens, candidateTokens),
	)
}

// TraceScoreError marks span as failed when err is not nil.
func TraceScoreError(span trace.Span, err error) {
	if err == nil {
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	span.SetAttributes(attribute.String(semconvtrace.KeyErrorType, errs.ToErrorType(err)))
}
