//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//

// Package errs classifies scoring errors for telemetry.
package errs

import (
	"context"
	"errors"
)

const (
	// ErrorTypeCanceled marks calls aborted by context cancellation.
	ErrorTypeCanceled = "canceled"
	// ErrorTypeDeadline marks calls aborted by a context deadline.
	ErrorTypeDeadline = "deadline_exceeded"
	// ErrorTypeInvalidArgument marks every other failure. Scoring is
	// deterministic, so the remaining errors come from the request.
	ErrorTypeInvalidArgument = "invalid_argument"
)

// ToErrorType converts an error to a low-cardinality error type recorded on
// spans and metrics. It can be replaced to report custom classifications.
var ToErrorType = func(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, context.Canceled):
		return ErrorTypeCanceled
	case errors.Is(err, context.DeadlineExceeded):
		return ErrorTypeDeadline
	default:
		return ErrorTypeInvalidArgument
	}
}
