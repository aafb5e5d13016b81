//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//

// Package trace defines span attribute keys used by ROUGE scoring spans.
package trace

const (
	// SpanNameScore is the name of the span opened for each scoring call.
	SpanNameScore = "rouge.score"

	// KeyRougeMetrics lists the requested metric labels.
	KeyRougeMetrics = "trpc_rouge.metrics"
	// KeyRougeReferenceTokens is the number of reference tokens.
	KeyRougeReferenceTokens = "trpc_rouge.reference.tokens"
	// KeyRougeCandidateTokens is the number of candidate tokens.
	KeyRougeCandidateTokens = "trpc_rouge.candidate.tokens"
	// KeyErrorType classifies a failed call.
	KeyErrorType = "error.type"
)
