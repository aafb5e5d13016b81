//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//

package rouge

import "errors"

var (
	// ErrInvalidMetricLabel is returned when a metric label is not rougeL, rougeLsum or rouge<N>.
	ErrInvalidMetricLabel = errors.New("invalid rouge type")
	// ErrInvalidNgramOrder is returned when an n-gram metric asks for a non-positive n.
	ErrInvalidNgramOrder = errors.New("rougeN requires positive n")
)
