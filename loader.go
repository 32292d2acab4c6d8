package lemmaru

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// loadParadigms reads a paradigms file into a ParadigmTable.
//
// Format: line-oriented, "!" starts a comment, blank lines separate
// nothing in particular. A paradigm block is:
//
//	paradigm:<id>
//	lemma:<suffix>:<tag>
//	rule:<suffix>:<tag>
//	rule:...
//
// A suffix of "-" denotes the empty suffix. Every paradigm must carry a
// lemma rule and at least one inflection rule.
func loadParadigms(path string) (*ParadigmTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	table := newParadigmTable()
	var cur *Paradigm
	lineNum := 0

	flush := func() error {
		if cur == nil {
			return nil
		}
		if cur.LemmaRule.Tag == "" {
			return fmt.Errorf("paradigm %d has no lemma rule", cur.ID)
		}
		if len(cur.Rules) == 0 {
			return fmt.Errorf("paradigm %d has no rules", cur.ID)
		}
		if err := table.add(cur); err != nil {
			return err
		}
		cur = nil
		return nil
	}

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lineNum++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "!") {
			continue
		}

		parts := strings.Split(line, ":")
		switch parts[0] {
		case "paradigm":
			if err := flush(); err != nil {
				return nil, err
			}
			if len(parts) != 2 {
				return nil, fmt.Errorf("%s:%d: malformed paradigm directive", path, lineNum)
			}
			id, err := strconv.Atoi(parts[1])
			if err != nil {
				return nil, fmt.Errorf("%s:%d: bad paradigm id %q", path, lineNum, parts[1])
			}
			cur = &Paradigm{ID: id}

		case "lemma", "rule":
			if cur == nil {
				return nil, fmt.Errorf("%s:%d: %s directive outside a paradigm block", path, lineNum, parts[0])
			}
			if len(parts) != 3 {
				return nil, fmt.Errorf("%s:%d: malformed %s directive", path, lineNum, parts[0])
			}
			suffix := parts[1]
			if suffix == "-" {
				suffix = ""
			}
			tag := parts[2]
			if tag == "" {
				return nil, fmt.Errorf("%s:%d: empty tag", path, lineNum)
			}
			r := Rule{Suffix: suffix, Tag: tag}
			if parts[0] == "lemma" {
				cur.LemmaRule = r
			} else {
				cur.Rules = append(cur.Rules, r)
			}

		default:
			return nil, fmt.Errorf("%s:%d: unknown directive %q", path, lineNum, parts[0])
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if err := flush(); err != nil {
		return nil, err
	}
	if table.Len() == 0 {
		return nil, fmt.Errorf("%s: no paradigms", path)
	}
	return table, nil
}

// loadLexicon reads a lexicon file into a Dictionary, validating each
// entry against the paradigm table.
//
// Format: one entry per line, "!" starts a comment:
//
//	surface|stem|lemma|tag|paradigmID[|freq]
//
// The surface form is normalized before insertion, so lookups hit
// regardless of case or boundary punctuation in the source file.
func loadLexicon(path string, paradigms *ParadigmTable) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	dict := newDictionary()
	lineNum := 0

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lineNum++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "!") {
			continue
		}

		parts := strings.Split(line, "|")
		if len(parts) != 5 && len(parts) != 6 {
			return nil, fmt.Errorf("%s:%d: want 5 or 6 fields, got %d", path, lineNum, len(parts))
		}

		surface := Normalize(parts[0])
		if surface == "" {
			return nil, fmt.Errorf("%s:%d: surface form %q normalizes to nothing", path, lineNum, parts[0])
		}

		e := LexicalEntry{
			Stem:  parts[1],
			Lemma: parts[2],
			Tag:   parts[3],
		}
		if e.Stem == "" {
			return nil, fmt.Errorf("%s:%d: empty stem", path, lineNum)
		}
		if e.Lemma == "" {
			return nil, fmt.Errorf("%s:%d: empty lemma", path, lineNum)
		}

		e.ParadigmID, err = strconv.Atoi(parts[4])
		if err != nil {
			return nil, fmt.Errorf("%s:%d: bad paradigm id %q", path, lineNum, parts[4])
		}
		// Referential integrity is established here, once; analysis
		// never re-checks it.
		if _, ok := paradigms.Paradigm(e.ParadigmID); !ok {
			return nil, fmt.Errorf("%s:%d: %w", path, lineNum, &UnknownParadigmError{ID: e.ParadigmID})
		}

		if len(parts) == 6 {
			e.Freq, err = strconv.Atoi(parts[5])
			if err != nil || e.Freq < 0 {
				return nil, fmt.Errorf("%s:%d: bad frequency %q", path, lineNum, parts[5])
			}
		}

		dict.add(surface, e)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return dict, nil
}
