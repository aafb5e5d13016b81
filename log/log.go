//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//

// Package log provides the leveled logger used by trpc-rouge-go.
package log

import (
	"os"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log level names accepted by SetLevel.
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
	LevelFatal = "fatal"
)

var levels = map[string]zapcore.Level{
	LevelDebug: zapcore.DebugLevel,
	LevelInfo:  zapcore.InfoLevel,
	LevelWarn:  zapcore.WarnLevel,
	LevelError: zapcore.ErrorLevel,
	LevelFatal: zapcore.FatalLevel,
}

var (
	zapLevel     = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	traceEnabled atomic.Bool
)

// Default is a zap sugared logger writing to stderr. It can be replaced by
// any Logger implementation.
var Default Logger = zap.New(
	zapcore.NewCore(
		zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
			TimeKey:        "ts",
			LevelKey:       "lvl",
			CallerKey:      "caller",
			MessageKey:     "message",
			StacktraceKey:  "stacktrace",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.CapitalLevelEncoder,
			EncodeTime:     zapcore.RFC3339TimeEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
			EncodeCaller:   zapcore.ShortCallerEncoder,
		}),
		zapcore.AddSync(os.Stderr),
		zapLevel,
	),
	zap.AddCaller(),
	zap.AddCallerSkip(1),
).Sugar()

// Logger is the formatted logging interface used by trpc-rouge-go.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
	// Fatalf logs and then terminates the process.
	Fatalf(format string, args ...any)
}

// SetLevel changes the level of Default. Unknown names select info.
func SetLevel(level string) {
	l, ok := levels[level]
	if !ok {
		l = zapcore.InfoLevel
	}
	zapLevel.SetLevel(l)
}

// ValidLevel reports whether level is one of the level names.
func ValidLevel(level string) bool {
	_, ok := levels[level]
	return ok
}

// Debugf logs to DEBUG log. Arguments are handled in the manner of fmt.Printf.
func Debugf(format string, args ...any) {
	Default.Debugf(format, args...)
}

// Infof logs to INFO log. Arguments are handled in the manner of fmt.Printf.
func Infof(format string, args ...any) {
	Default.Infof(format, args...)
}

// Warnf logs to WARNING log. Arguments are handled in the manner of fmt.Printf.
func Warnf(format string, args ...any) {
	Default.Warnf(format, args...)
}

// Errorf logs to ERROR log. Arguments are handled in the manner of fmt.Printf.
func Errorf(format string, args ...any) {
	Default.Errorf(format, args...)
}

// Fatalf logs to FATAL log and exits. Arguments are handled in the manner of fmt.Printf.
func Fatalf(format string, args ...any) {
	Default.Fatalf(format, args...)
}

// Tracef logs at debug level with a [TRACE] prefix when tracing is enabled.
func Tracef(format string, args ...any) {
	if !traceEnabled.Load() {
		return
	}
	Default.Debugf("[TRACE] "+format, args...)
}

// SetTraceEnabled turns Tracef output on or off.
func SetTraceEnabled(enabled bool) {
	traceEnabled.Store(enabled)
}

// TraceEnabled reports whether Tracef output is on.
func TraceEnabled() bool {
	return traceEnabled.Load()
}
