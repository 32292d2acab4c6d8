package lemmaru

import (
	"errors"
	"fmt"
)

// ErrEmptyWord is returned when the input word is empty, or contains no
// letters once boundary punctuation and digits are stripped.
var ErrEmptyWord = errors.New("lemmaru: empty word")

// ErrAnalyzerClosed is returned by any call on a closed Analyzer,
// including a second Close.
var ErrAnalyzerClosed = errors.New("lemmaru: analyzer already closed")

// LoadErrorKind classifies a failed Analyzer construction.
type LoadErrorKind int

const (
	// MissingData means the backing data source was not found.
	MissingData LoadErrorKind = iota + 1
	// CorruptData means the source was found but failed parsing or
	// load-time validation.
	CorruptData
)

// String returns the kind name.
func (k LoadErrorKind) String() string {
	switch k {
	case MissingData:
		return "missing data"
	case CorruptData:
		return "corrupt data"
	default:
		return "unknown"
	}
}

// LoadError reports why an Analyzer could not be constructed.
type LoadError struct {
	// Kind classifies the failure.
	Kind LoadErrorKind
	// Path is the data source that failed.
	Path string
	// Err is the underlying cause, if any.
	Err error
}

func (e *LoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("lemmaru: %s: %s: %v", e.Kind, e.Path, e.Err)
	}
	return fmt.Sprintf("lemmaru: %s: %s", e.Kind, e.Path)
}

func (e *LoadError) Unwrap() error { return e.Err }

// UnknownParadigmError signals a paradigm reference that does not resolve.
// After a validated load this never happens; seeing it means the loaded
// data violated its integrity invariant.
type UnknownParadigmError struct {
	// ID is the unresolved paradigm identifier.
	ID int
}

func (e *UnknownParadigmError) Error() string {
	return fmt.Sprintf("lemmaru: unknown paradigm %d", e.ID)
}
