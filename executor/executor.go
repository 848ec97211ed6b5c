// Package executor distributes independent chain generations across a
// pool of workers (spec §4.7). Chains are mutually independent, so the
// pool may complete them out of order; this package relies on
// ordered-concurrently's submission-order output guarantee to hand the
// generator a channel of results already in chain-index order, so the
// generator can write records sequentially without its own reorder
// buffer.
package executor

import (
	"context"
	"fmt"

	concurrently "github.com/tejzpr/ordered-concurrently/v3"
)

// ChainResult is one chain's (start, end) index pair (spec §3).
type ChainResult struct {
	ChainIndex uint64
	Start      uint64
	End        uint64
}

// ChainFunc computes a single chain's start/end indices. Implementations
// must own their own chainwalker.Context (cloned per call) and must not
// share mutable state with other chains (spec §5).
type ChainFunc func(ctx context.Context, chainIndex uint64) (start, end uint64, err error)

type workUnit struct {
	chainIndex uint64
	fn         ChainFunc
}

func (w workUnit) Run(ctx context.Context) interface{} {
	start, end, err := w.fn(ctx, w.chainIndex)
	if err != nil {
		return fmt.Errorf("chain %d: %w", w.chainIndex, err)
	}
	return ChainResult{ChainIndex: w.chainIndex, Start: start, End: end}
}

// Run dispatches chains [firstChainIndex, firstChainIndex+count) across
// numWorkers goroutines. The returned channel delivers one value per
// chain, in ascending chain-index order, each either a ChainResult or an
// error. It is closed once every chain has been delivered, or once ctx
// is cancelled (in which case not all chains will have been delivered;
// the generator must not write partial results past that point, per
// spec §4.7's cancellation contract).
func Run(ctx context.Context, numWorkers int, firstChainIndex, count uint64, fn ChainFunc) <-chan interface{} {
	if numWorkers <= 0 {
		numWorkers = 1
	}

	workerInputChan := make(chan concurrently.WorkFunction, numWorkers)
	outputChan := concurrently.Process(ctx, workerInputChan, &concurrently.Options{
		PoolSize:         numWorkers,
		OutChannelBuffer: numWorkers,
	})

	go func() {
		defer close(workerInputChan)
		for i := uint64(0); i < count; i++ {
			select {
			case <-ctx.Done():
				return
			case workerInputChan <- workUnit{chainIndex: firstChainIndex + i, fn: fn}:
			}
		}
	}()

	results := make(chan interface{})
	go func() {
		defer close(results)
		for out := range outputChan {
			select {
			case results <- out.Value:
			case <-ctx.Done():
				return
			}
		}
	}()

	return results
}
