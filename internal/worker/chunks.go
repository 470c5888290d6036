package worker

import (
	"context"
	"runtime"
	"sort"

	"github.com/lexmex/mencion/internal/model"
)

// ChunkFunc runs the full per-document extraction pipeline over one
// contiguous chunk of documents.
type ChunkFunc func(docs []model.Document) []model.Mention

// ChunkJob is one contiguous slice of the document collection. A
// document never spans a chunk boundary, so per-document overlap
// resolution stays correct inside each worker.
type ChunkJob struct {
	Index int
	Docs  []model.Document
	Fn    ChunkFunc
}

// ChunkResult carries a chunk's mentions tagged with the chunk index,
// so the dispatcher can reassemble output in chunk order.
type ChunkResult struct {
	Index    int
	Mentions []model.Mention
	Err      error
}

// GetError returns the error from the chunk execution
func (r *ChunkResult) GetError() error { return r.Err }

// Execute runs the chunk function
func (j *ChunkJob) Execute(ctx context.Context) Result {
	select {
	case <-ctx.Done():
		return &ChunkResult{Index: j.Index, Err: ctx.Err()}
	default:
	}
	return &ChunkResult{Index: j.Index, Mentions: j.Fn(j.Docs)}
}

// SplitChunks partitions docs into at most n contiguous chunks of
// near-equal size. Never returns an empty chunk.
func SplitChunks(docs []model.Document, n int) [][]model.Document {
	if len(docs) == 0 {
		return nil
	}
	if n <= 0 {
		n = 1
	}
	if n > len(docs) {
		n = len(docs)
	}

	size := (len(docs) + n - 1) / n
	var chunks [][]model.Document
	for start := 0; start < len(docs); start += size {
		end := start + size
		if end > len(docs) {
			end = len(docs)
		}
		chunks = append(chunks, docs[start:end])
	}
	return chunks
}

// RunChunks fans the document collection out across workers and merges
// the per-chunk results by simple concatenation in chunk order. The
// first chunk failure aborts the whole run.
func RunChunks(docs []model.Document, workers int, fn ChunkFunc) ([]model.Mention, error) {
	if workers <= 0 || workers > runtime.NumCPU() {
		workers = runtime.NumCPU()
	}

	chunks := SplitChunks(docs, workers)
	if len(chunks) == 0 {
		return nil, nil
	}

	pool := NewPool(workers)
	pool.Start()
	for i, chunk := range chunks {
		pool.Submit(&ChunkJob{Index: i, Docs: chunk, Fn: fn})
	}
	results := pool.Wait()

	ordered := make([]*ChunkResult, 0, len(results))
	for _, r := range results {
		cr := r.(*ChunkResult)
		if cr.Err != nil {
			return nil, cr.Err
		}
		ordered = append(ordered, cr)
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Index < ordered[j].Index })

	var out []model.Mention
	for _, cr := range ordered {
		out = append(out, cr.Mentions...)
	}
	return out, nil
}
