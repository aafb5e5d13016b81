//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//

package rouge

// options holds internal configuration for ROUGE scoring.
type options struct {
	// rougeTypes holds the requested ROUGE types to compute.
	rougeTypes []string
	// splitter splits summaries into sentences for rougeLsum.
	splitter SentenceSplitter
	// workers bounds the goroutines used by ScoreBatch.
	workers int
}

// newOptions applies functional options to build a scoring configuration.
func newOptions(opt ...Option) *options {
	opts := &options{workers: 1}
	for _, o := range opt {
		o(opts)
	}
	return opts
}

// Option configures ROUGE scoring.
type Option func(*options)

// WithRougeTypes sets the ROUGE types to compute, e.g. "rouge1", "rougeL", "rougeLsum".
func WithRougeTypes(rougeTypes ...string) Option {
	return func(o *options) {
		o.rougeTypes = append([]string(nil), rougeTypes...)
	}
}

// WithSentenceSplitter sets the splitter used for rougeLsum.
// Summaries are split on newlines when unset.
func WithSentenceSplitter(splitter SentenceSplitter) Option {
	return func(o *options) {
		o.splitter = splitter
	}
}

// WithWorkers sets how many pairs ScoreBatch scores concurrently.
// Values below 1 are treated as 1.
func WithWorkers(workers int) Option {
	return func(o *options) {
		o.workers = workers
	}
}
