// Package lemmaru provides dictionary-driven morphological analysis and
// lemmatization for Russian, with paradigm-based guessing for words that
// are missing from the dictionary.
//
// An Analyzer is constructed once from a data directory (or a compiled
// snapshot), answers any number of analysis queries, and is closed once:
//
//	a, err := lemmaru.New("data")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer a.Close()
//
//	cands, err := a.Analyze("программисткою")
//
// After construction the analyzer is read-only, so Analyze and the other
// query methods are safe for concurrent use by any number of goroutines.
// New, OpenSnapshot and Close are not safe to race with queries: construct
// before spawning workers and close only after they have joined.
package lemmaru

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/edsrzf/mmap-go"
)

// EnvData is the environment variable that, when set, overrides the data
// directory passed to New.
const EnvData = "LEMMARU_DATA"

// Data file names expected under the data directory.
const (
	paradigmsFile = "paradigms.lr"
	lexiconFile   = "lexicon.lr"
)

// Analyzer owns an immutable dictionary and paradigm table and answers
// analysis queries against them. See the package documentation for the
// concurrency contract.
type Analyzer struct {
	dict      *Dictionary
	paradigms *ParadigmTable

	// mapped is the snapshot mapping when the analyzer was opened from
	// a compiled snapshot; it is unmapped by Close.
	mapped mmap.MMap

	closed bool
}

// New loads the paradigm table and lexicon from dataDir and returns a
// ready-to-use Analyzer. The LEMMARU_DATA environment variable overrides
// dataDir when set. On failure the error is a *LoadError and no usable
// handle is produced.
func New(dataDir string) (*Analyzer, error) {
	if env := os.Getenv(EnvData); env != "" {
		dataDir = env
	}

	paradigmsPath := filepath.Join(dataDir, paradigmsFile)
	paradigms, err := loadParadigms(paradigmsPath)
	if err != nil {
		return nil, classifyLoadError(paradigmsPath, err)
	}

	lexiconPath := filepath.Join(dataDir, lexiconFile)
	dict, err := loadLexicon(lexiconPath, paradigms)
	if err != nil {
		return nil, classifyLoadError(lexiconPath, err)
	}

	return &Analyzer{dict: dict, paradigms: paradigms}, nil
}

// classifyLoadError wraps a loader failure as a *LoadError, distinguishing
// an absent data source from a present but invalid one.
func classifyLoadError(path string, err error) error {
	kind := CorruptData
	if errors.Is(err, fs.ErrNotExist) {
		kind = MissingData
	}
	return &LoadError{Kind: kind, Path: path, Err: err}
}

// Analyze returns every analysis of word, best first.
//
// A known word yields one candidate per dictionary reading. An unknown
// word falls back to paradigm suffix guessing. An empty result with a nil
// error means the word could not be analyzed — a valid outcome, distinct
// from the ErrEmptyWord validation failure for input that contains no
// letters.
func (a *Analyzer) Analyze(word string) ([]Candidate, error) {
	if a.closed {
		return nil, ErrAnalyzerClosed
	}
	w := Normalize(word)
	if w == "" {
		return nil, ErrEmptyWord
	}
	if out := lookupCandidates(a.dict, w); len(out) > 0 {
		return out, nil
	}
	return guessCandidates(a.paradigms, w), nil
}

// Lemmatize returns the best lemma for word. ok is false when the word
// could not be analyzed; that is not an error.
func (a *Analyzer) Lemmatize(word string) (lemma string, ok bool, err error) {
	cands, err := a.Analyze(word)
	if err != nil {
		return "", false, err
	}
	if len(cands) == 0 {
		return "", false, nil
	}
	return cands[0].Lemma, true, nil
}

// Dict returns the analyzer's dictionary store.
func (a *Analyzer) Dict() *Dictionary { return a.dict }

// Paradigms returns the analyzer's paradigm table.
func (a *Analyzer) Paradigms() *ParadigmTable { return a.paradigms }

// Close releases the resources owned by the analyzer. Any use after
// Close, including a second Close, fails fast with ErrAnalyzerClosed.
func (a *Analyzer) Close() error {
	if a.closed {
		return ErrAnalyzerClosed
	}
	a.closed = true
	a.dict = nil
	a.paradigms = nil
	if a.mapped != nil {
		m := a.mapped
		a.mapped = nil
		return m.Unmap()
	}
	return nil
}
