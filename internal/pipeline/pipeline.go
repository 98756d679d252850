package pipeline

import (
	"runtime"
	"sync"

	"github.com/BaryoDev/NovelAssistant/internal/ingest"
)

type job struct {
	index int
	doc   ingest.Document
}

type DocumentFunc func(index int, doc ingest.Document) error

// EachDocument fans documents out to a bounded worker pool and collects
// every error. Workers default to the CPU count. Jobs carry their index so
// callers can write results into preallocated slices without locks.
func EachDocument(docs []ingest.Document, workers int, fn DocumentFunc) []error {
	if len(docs) == 0 || fn == nil {
		return nil
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
		if workers < 1 {
			workers = 1
		}
	}

	jobs := make(chan job)
	errs := make(chan error, len(docs))
	var wg sync.WaitGroup

	for n := 0; n < workers; n++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				if err := fn(j.index, j.doc); err != nil {
					errs <- err
				}
			}
		}()
	}

	for i, d := range docs {
		jobs <- job{index: i, doc: d}
	}
	close(jobs)
	wg.Wait()
	close(errs)

	out := make([]error, 0, len(errs))
	for err := range errs {
		out = append(out, err)
	}
	return out
}
