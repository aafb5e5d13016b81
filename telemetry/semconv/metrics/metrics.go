//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//

// Package metrics defines metric name constants following OpenTelemetry semantic conventions.
package metrics

const (
	// MeterNameScore is the meter used for ROUGE scoring.
	MeterNameScore = "trpc_rouge.score"

	// MetricTRPCRougeScoreRequestCnt counts scoring calls.
	MetricTRPCRougeScoreRequestCnt = "trpc_rouge.score.request_cnt"
	// MetricTRPCRougeScoreDuration records the wall time of one scoring call.
	MetricTRPCRougeScoreDuration = "trpc_rouge.score.duration"

	// KeyTRPCRougeOperationName is the scoring operation, e.g. "score".
	KeyTRPCRougeOperationName = "trpc_rouge.operation.name"
	// KeyTRPCRougeStatus is "ok" or "error".
	KeyTRPCRougeStatus = "trpc_rouge.status"
	// KeyErrorType classifies a failed call.
	KeyErrorType = "error.type"
)
