//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//

package rouge

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/hashicorp/go-multierror"
	"github.com/panjf2000/ants/v2"

	"trpc.group/trpc-go/trpc-rouge-go/log"
)

// Pair is one reference and candidate text to be scored together.
type Pair struct {
	// Reference is the target text.
	Reference string
	// Candidate is the predicted text.
	Candidate string
}

type batchParam struct {
	idx     int
	ctx     context.Context
	pair    Pair
	scorer  *Scorer
	results []*ResultMap
	errs    []error
	wg      *sync.WaitGroup
}

func (p *batchParam) reset() {
	p.idx = 0
	p.ctx = nil
	p.pair = Pair{}
	p.scorer = nil
	p.results = nil
	p.errs = nil
	p.wg = nil
}

var batchParamPool = &sync.Pool{
	New: func() any { return new(batchParam) },
}

// ScoreBatch scores independent pairs, running up to the configured number of
// workers at once. The returned slice is aligned with pairs; entries whose
// scoring failed are nil and every failure is reported in the returned error.
func (s *Scorer) ScoreBatch(ctx context.Context, pairs []Pair) ([]*ResultMap, error) {
	if ctx == nil {
		return nil, fmt.Errorf("context is nil")
	}
	results := make([]*ResultMap, len(pairs))
	errs := make([]error, len(pairs))
	if len(pairs) == 0 {
		return results, nil
	}
	if s.workers <= 1 || len(pairs) == 1 {
		for i, pair := range pairs {
			results[i], errs[i] = s.Score(ctx, pair.Reference, pair.Candidate)
		}
		return results, collectBatchErrors(errs)
	}

	pool, err := newBatchPool(min(s.workers, len(pairs)))
	if err != nil {
		return nil, err
	}
	defer pool.Release()
	log.Debugf("rouge batch: scoring %d pairs with %d workers", len(pairs), pool.Cap())

	var wg sync.WaitGroup
	for i, pair := range pairs {
		param := batchParamPool.Get().(*batchParam)
		param.idx = i
		param.ctx = ctx
		param.pair = pair
		param.scorer = s
		param.results = results
		param.errs = errs
		param.wg = &wg
		wg.Add(1)
		if err := pool.Invoke(param); err != nil {
			wg.Done()
			param.reset()
			batchParamPool.Put(param)
			errs[i] = fmt.Errorf("submit pair: %w", err)
		}
	}
	wg.Wait()
	return results, collectBatchErrors(errs)
}

func newBatchPool(size int) (*ants.PoolWithFunc, error) {
	pool, err := ants.NewPoolWithFunc(size, func(args any) {
		param, ok := args.(*batchParam)
		if !ok {
			panic("rouge batch pool args type error")
		}
		wg := param.wg
		defer func() {
			wg.Done()
			param.reset()
			batchParamPool.Put(param)
		}()
		param.results[param.idx], param.errs[param.idx] = param.scorer.Score(param.ctx, param.pair.Reference, param.pair.Candidate)
	})
	if err != nil {
		return nil, fmt.Errorf("create rouge batch pool: %w", err)
	}
	return pool, nil
}

// PairError is the failure of one pair in a batch.
type PairError struct {
	// Index is the position of the pair in the batch.
	Index int
	Err   error
}

func (e *PairError) Error() string { return fmt.Sprintf("pair %d: %v", e.Index, e.Err) }

func (e *PairError) Unwrap() error { return e.Err }

// PairErrors spreads an error returned by ScoreBatch over n pairs. Entry i
// holds the failure of pair i, or nil. An error not tied to a single pair is
// reported for every pair.
func PairErrors(err error, n int) []error {
	out := make([]error, n)
	if err == nil {
		return out
	}
	var merr *multierror.Error
	if !errors.As(err, &merr) {
		for i := range out {
			out[i] = err
		}
		return out
	}
	for _, e := range merr.Errors {
		var pe *PairError
		if errors.As(e, &pe) && pe.Index >= 0 && pe.Index < n {
			out[pe.Index] = pe.Err
		}
	}
	return out
}

func collectBatchErrors(errs []error) error {
	var merr *multierror.Error
	for i, err := range errs {
		if err != nil {
			merr = multierror.Append(merr, &PairError{Index: i, Err: err})
		}
	}
	return merr.ErrorOrNil()
}
