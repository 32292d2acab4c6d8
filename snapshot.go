package lemmaru

import (
	"bytes"
	"compress/gzip"
	"encoding/gob"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/edsrzf/mmap-go"
)

// snapshotMagic is the signature at the start of every snapshot file.
const snapshotMagic = "LRU1"

// snapshotData is the gob-encoded payload of a snapshot file.
type snapshotData struct {
	Entries   map[string][]LexicalEntry
	Paradigms []Paradigm
}

// WriteSnapshot compiles the analyzer's loaded data into a single binary
// file that OpenSnapshot can load without re-parsing the text sources.
// The layout is the magic signature followed by a gzip-compressed gob
// block.
func (a *Analyzer) WriteSnapshot(path string) error {
	if a.closed {
		return ErrAnalyzerClosed
	}

	data := snapshotData{Entries: a.dict.entries}
	a.paradigms.all(func(p *Paradigm) {
		data.Paradigms = append(data.Paradigms, *p)
	})

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}
	if _, err := f.Write([]byte(snapshotMagic)); err != nil {
		f.Close()
		return fmt.Errorf("write snapshot header: %w", err)
	}
	zw := gzip.NewWriter(f)
	if err := gob.NewEncoder(zw).Encode(&data); err != nil {
		f.Close()
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := zw.Close(); err != nil {
		f.Close()
		return fmt.Errorf("flush snapshot: %w", err)
	}
	return f.Close()
}

// OpenSnapshot memory-maps a compiled snapshot read-only and returns a
// ready Analyzer. The mapping is held until Close. On failure the error
// is a *LoadError and no handle is produced.
func OpenSnapshot(path string) (*Analyzer, error) {
	f, err := os.Open(path)
	if err != nil {
		kind := CorruptData
		if errors.Is(err, fs.ErrNotExist) {
			kind = MissingData
		}
		return nil, &LoadError{Kind: kind, Path: path, Err: err}
	}
	defer f.Close()

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, &LoadError{Kind: CorruptData, Path: path, Err: err}
	}

	a, err := decodeSnapshot(m)
	if err != nil {
		_ = m.Unmap()
		return nil, &LoadError{Kind: CorruptData, Path: path, Err: err}
	}
	a.mapped = m
	return a, nil
}

// decodeSnapshot parses the mapped snapshot bytes and rebuilds the
// dictionary and paradigm table, re-establishing the same load-time
// validation as the text loaders.
func decodeSnapshot(m []byte) (*Analyzer, error) {
	if len(m) < len(snapshotMagic) || string(m[:len(snapshotMagic)]) != snapshotMagic {
		return nil, errors.New("bad snapshot signature")
	}

	zr, err := gzip.NewReader(bytes.NewReader(m[len(snapshotMagic):]))
	if err != nil {
		return nil, fmt.Errorf("open snapshot block: %w", err)
	}
	var data snapshotData
	if err := gob.NewDecoder(zr).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	if err := zr.Close(); err != nil {
		return nil, fmt.Errorf("close snapshot block: %w", err)
	}

	paradigms := newParadigmTable()
	for i := range data.Paradigms {
		if err := paradigms.add(&data.Paradigms[i]); err != nil {
			return nil, err
		}
	}

	dict := newDictionary()
	for surface, entries := range data.Entries {
		for _, e := range entries {
			if e.Stem == "" || e.Lemma == "" {
				return nil, fmt.Errorf("entry %q: empty stem or lemma", surface)
			}
			if _, ok := paradigms.Paradigm(e.ParadigmID); !ok {
				return nil, &UnknownParadigmError{ID: e.ParadigmID}
			}
		}
		dict.entries[surface] = entries
		dict.size += len(entries)
	}

	return &Analyzer{dict: dict, paradigms: paradigms}, nil
}
