package lemmaru

import (
	"runtime"
	"sync"
)

// chunkSize is the number of words handed to a worker at a time.
const chunkSize = 256

// AnalyzeAll analyzes words concurrently on a fixed pool of workers and
// returns the candidate lists in input order. A word that fails input
// validation yields a nil slice at its position; per-word validation
// failures do not abort the batch.
func (a *Analyzer) AnalyzeAll(words []string) ([][]Candidate, error) {
	if a.closed {
		return nil, ErrAnalyzerClosed
	}

	type chunk struct {
		start int
		words []string
	}

	numWorkers := runtime.NumCPU()
	chunksCh := make(chan chunk, numWorkers)
	results := make([][]Candidate, len(words))

	var wg sync.WaitGroup
	wg.Add(numWorkers)
	for i := 0; i < numWorkers; i++ {
		go func() {
			defer wg.Done()
			for c := range chunksCh {
				for j, w := range c.words {
					cands, err := a.Analyze(w)
					if err != nil {
						continue
					}
					results[c.start+j] = cands
				}
			}
		}()
	}

	for i := 0; i < len(words); i += chunkSize {
		end := min(i+chunkSize, len(words))
		chunksCh <- chunk{start: i, words: words[i:end]}
	}
	close(chunksCh)
	wg.Wait()

	return results, nil
}
