//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//

// Package trace wires ROUGE scoring spans into an OpenTelemetry tracer provider.
package trace

import (
	"fmt"

	"go.opentelemetry.io/otel/trace"

	itelemetry "trpc.group/trpc-go/trpc-rouge-go/internal/telemetry"
)

// InitTracerProvider makes scoring spans go to tp.
func InitTracerProvider(tp trace.TracerProvider) error {
	if tp == nil {
		return fmt.Errorf("tracer provider is nil")
	}
	itelemetry.Tracer = tp.Tracer(itelemetry.InstrumentName)
	return nil
}
