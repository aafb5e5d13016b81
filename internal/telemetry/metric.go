//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//

// Package telemetry holds the instruments used by ROUGE scoring.
// Everything defaults to noop until a provider is installed through the
// public telemetry/metric and telemetry/trace packages.
package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"

	"trpc.group/trpc-go/trpc-rouge-go/telemetry/errs"
	"trpc.group/trpc-go/trpc-rouge-go/telemetry/semconv/metrics"
)

// OperationScore names a single Scorer.Score call.
const OperationScore = "score"

const (
	statusOK    = "ok"
	statusError = "error"
)

var (
	MeterProvider metric.MeterProvider = noop.NewMeterProvider()

	ScoreMeter                          metric.Meter            = MeterProvider.Meter(metrics.MeterNameScore)
	ScoreMetricTRPCRougeScoreRequestCnt metric.Int64Counter     = noop.Int64Counter{}
	ScoreMetricTRPCRougeScoreDuration   metric.Float64Histogram = noop.Float64Histogram{}
)

// IncScoreRequestCnt counts one scoring call.
func IncScoreRequestCnt(ctx context.Context, operation string, err error) {
	ScoreMetricTRPCRougeScoreRequestCnt.Add(ctx, 1, metric.WithAttributes(scoreAttributes(operation, err)...))
}

// RecordScoreDuration records how long one scoring call took.
func RecordScoreDuration(ctx context.Context, operation string, duration time.Duration, err error) {
	ScoreMetricTRPCRougeScoreDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(scoreAttributes(operation, err)...))
}

func scoreAttributes(operation string, err error) []attribute.KeyValue {
	attrs := []attribute.KeyValue{
		attribute.String(metrics.KeyTRPCRougeOperationName, operation),
	}
	if err == nil {
		return append(attrs, attribute.String(metrics.KeyTRPCRougeStatus, statusOK))
	}
	return append(attrs,
		attribute.String(metrics.KeyTRPCRougeStatus, statusError),
		attribute.String(metrics.KeyErrorType, errs.ToErrorType(err)),
	)
}
