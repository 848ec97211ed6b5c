package tablefile

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"k8s.io/klog/v2"

	"github.com/tkamucheka/rt-rampage/chainwalker"
	"github.com/tkamucheka/rt-rampage/executor"
	"github.com/tkamucheka/rt-rampage/params"
	"github.com/tkamucheka/rt-rampage/rterrors"
	"github.com/tkamucheka/rt-rampage/rtrand"
)

// flushEvery is the minimum cadence at which the generator flushes and
// fsyncs the table file and emits a progress line (spec §4.6 step 4c/d).
const flushEvery = 100_000

// Generator drives chain generation, persistence and resume for one
// rainbow table file (spec §4.6).
type Generator struct {
	Path       string
	Params     params.Params
	Context    *chainwalker.Context
	NumWorkers int
	// BaseSeed seeds every chain's CSPRNG deterministically as
	// f(BaseSeed, chainIndex) (see rtrand), so that two runs with the
	// same BaseSeed produce byte-identical files (spec §8 S6) while
	// chains computed concurrently never share RNG state (spec §5).
	BaseSeed uint64
}

// Run opens (or resumes) the table file at g.Path and generates every
// remaining chain, writing (start, end) records in chain-index order.
// If resume finds the table already complete it returns
// rterrors.ErrAlreadyFinished; callers treat that as exit code 0, not a
// failure (spec §7).
func (g *Generator) Run(ctx context.Context) error {
	file, completedRecords, err := g.openForResume()
	if err != nil {
		return err
	}
	defer file.Close()

	if completedRecords >= g.Params.NumChains {
		klog.Infof("table %s already has %s chains, nothing to do", g.Path, humanize.Comma(int64(completedRecords)))
		return fmt.Errorf("%s: %w", g.Path, rterrors.ErrAlreadyFinished)
	}

	klog.Infof("generating %s chains (resuming from %s) into %s",
		humanize.Comma(int64(g.Params.NumChains)), humanize.Comma(int64(completedRecords)), g.Path)

	writer := bufio.NewWriterSize(file, flushEvery/10*RecordSize+RecordSize)
	startedAt := time.Now()
	remaining := g.Params.NumChains - completedRecords

	chainFn := func(stepCtx context.Context, chainIndex uint64) (uint64, uint64, error) {
		workerCtx := g.Context.Clone()
		src := rtrand.NewSeeded(g.BaseSeed, chainIndex)
		start := rtrand.NextStartIndex(src, workerCtx.PlainSpaceTotal())
		workerCtx.SetIndex(start)
		if err := workerCtx.Step(g.Params.ChainLength); err != nil {
			return 0, 0, err
		}
		return start, workerCtx.Index(), nil
	}

	results := executor.Run(ctx, g.NumWorkers, completedRecords, remaining, chainFn)

	written := uint64(0)
	for value := range results {
		switch v := value.(type) {
		case error:
			_ = writer.Flush()
			_ = file.Sync()
			return fmt.Errorf("chain generation failed after %s records: %w", humanize.Comma(int64(written)), v)
		case executor.ChainResult:
			record := EncodeRecord(v.Start, v.End)
			if _, err := writer.Write(record[:]); err != nil {
				return fmt.Errorf("tablefile: write record for chain %d: %w", v.ChainIndex, err)
			}
			written++
			if written%flushEvery == 0 {
				if err := g.flush(writer, file); err != nil {
					return err
				}
				klog.Infof("chain %s/%s generated, elapsed %s",
					humanize.Comma(int64(completedRecords+written)), humanize.Comma(int64(g.Params.NumChains)), time.Since(startedAt))
			}
		default:
			return fmt.Errorf("tablefile: unexpected result type %T", value)
		}

		if err := ctx.Err(); err != nil {
			_ = g.flush(writer, file)
			klog.Infof("generation cancelled after %s/%s chains", humanize.Comma(int64(completedRecords+written)), humanize.Comma(int64(g.Params.NumChains)))
			return err
		}
	}

	if err := g.flush(writer, file); err != nil {
		return err
	}
	klog.Infof("chain %s/%s generated, elapsed %s (final)",
		humanize.Comma(int64(completedRecords+written)), humanize.Comma(int64(g.Params.NumChains)), time.Since(startedAt))

	if completedRecords+written != g.Params.NumChains {
		return fmt.Errorf("tablefile: generation stopped early at %d/%d chains: %w",
			completedRecords+written, g.Params.NumChains, context.Canceled)
	}
	return nil
}

// openForResume opens (creating if necessary) the table file and
// computes the resume point (spec §4.6 steps 2-3): any trailing partial
// record is discarded by truncating to the last record boundary.
func (g *Generator) openForResume() (*os.File, uint64, error) {
	file, err := os.OpenFile(g.Path, os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return nil, 0, fmt.Errorf("tablefile: open %s: %w", g.Path, err)
	}
	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, 0, fmt.Errorf("tablefile: stat %s: %w", g.Path, err)
	}

	completedRecords := uint64(info.Size()) / RecordSize
	alignedSize := int64(completedRecords) * RecordSize
	if alignedSize != info.Size() {
		if err := file.Truncate(alignedSize); err != nil {
			file.Close()
			return nil, 0, fmt.Errorf("tablefile: truncate partial trailing record in %s: %w", g.Path, err)
		}
	}
	if _, err := file.Seek(alignedSize, os.SEEK_SET); err != nil {
		file.Close()
		return nil, 0, fmt.Errorf("tablefile: seek to resume point in %s: %w", g.Path, err)
	}
	return file, completedRecords, nil
}

// flush drains the buffered writer and fsyncs the underlying file,
// stopping at the first failure.
func (g *Generator) flush(w *bufio.Writer, f *os.File) error {
	if err := w.Flush(); err != nil {
		return fmt.Errorf("tablefile: flush %s: %w", g.Path, err)
	}
	if err := f.Sync(); err != nil {
		return fmt.Errorf("tablefile: fsync %s: %w", g.Path, err)
	}
	return nil
}
