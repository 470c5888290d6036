package extract

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/lexmex/mencion/internal/model"
	"github.com/lexmex/mencion/internal/worker"
)

// ExtractParallel runs the official extractor's per-document pipeline
// across contiguous document chunks. Worker count defaults to the
// available CPUs and is capped there. Results are concatenated in chunk
// order, not re-sorted globally.
func (e *OfficialExtractor) ExtractParallel(docs []model.Document, workers int) ([]model.Mention, error) {
	if workers <= 0 || workers > runtime.NumCPU() {
		workers = runtime.NumCPU()
	}

	start := time.Now()
	if e.verbose {
		fmt.Fprintf(os.Stderr, "using %d parallel workers for %d documents\n", workers, len(docs))
	}

	out, err := worker.RunChunks(docs, workers, e.chunkFor)
	if err != nil {
		return nil, fmt.Errorf("parallel extraction: %w", err)
	}

	if e.verbose {
		printSummary("official entities (parallel)", len(docs), len(out), time.Since(start))
	}
	return out, nil
}
