//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//

// Package metric wires ROUGE scoring metrics into an OpenTelemetry meter provider.
package metric

import (
	"fmt"

	"go.opentelemetry.io/otel/metric"

	itelemetry "trpc.group/trpc-go/trpc-rouge-go/internal/telemetry"
	"trpc.group/trpc-go/trpc-rouge-go/telemetry/semconv/metrics"
)

// InitMeterProvider installs mp and creates the scoring instruments on it.
func InitMeterProvider(mp metric.MeterProvider) error {
	if mp == nil {
		return fmt.Errorf("meter provider is nil")
	}
	meter := mp.Meter(metrics.MeterNameScore)
	requestCnt, err := meter.Int64Counter(
		metrics.MetricTRPCRougeScoreRequestCnt,
		metric.WithDescription("Total number of ROUGE scoring calls"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return fmt.Errorf("failed to create score metric TRPCRougeScoreRequestCnt: %w", err)
	}
	duration, err := meter.Float64Histogram(
		metrics.MetricTRPCRougeScoreDuration,
		metric.WithDescription("Duration of ROUGE scoring calls"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return fmt.Errorf("failed to create score metric TRPCRougeScoreDuration: %w", err)
	}
	itelemetry.MeterProvider = mp
	itelemetry.ScoreMeter = meter
	itelemetry.ScoreMetricTRPCRougeScoreRequestCnt = requestCnt
	itelemetry.ScoreMetricTRPCRougeScoreDuration = duration
	return nil
}
