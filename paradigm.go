package lemmaru

import "fmt"

// ParadigmTable holds every inflection paradigm, keyed by ID.
// Like the dictionary it is immutable after load.
type ParadigmTable struct {
	byID  map[int]*Paradigm
	order []int // IDs in source order, for deterministic guessing

	// maxSuffixLen is the longest rule suffix in runes, used to scale
	// guess scores into [0,1].
	maxSuffixLen int
}

func newParadigmTable() *ParadigmTable {
	return &ParadigmTable{byID: make(map[int]*Paradigm)}
}

// add registers p, rejecting duplicate IDs.
func (t *ParadigmTable) add(p *Paradigm) error {
	if _, dup := t.byID[p.ID]; dup {
		return fmt.Errorf("duplicate paradigm %d", p.ID)
	}
	t.byID[p.ID] = p
	t.order = append(t.order, p.ID)
	for _, r := range p.Rules {
		if n := len([]rune(r.Suffix)); n > t.maxSuffixLen {
			t.maxSuffixLen = n
		}
	}
	return nil
}

// RulesFor returns the ordered rules of paradigm id. An unknown id yields
// an UnknownParadigmError, which callers treat as a data-corruption
// signal rather than a recoverable condition.
func (t *ParadigmTable) RulesFor(id int) ([]Rule, error) {
	p, ok := t.byID[id]
	if !ok {
		return nil, &UnknownParadigmError{ID: id}
	}
	return p.Rules, nil
}

// Paradigm returns the paradigm with the given id.
func (t *ParadigmTable) Paradigm(id int) (*Paradigm, bool) {
	p, ok := t.byID[id]
	return p, ok
}

// Len returns the number of paradigms.
func (t *ParadigmTable) Len() int { return len(t.byID) }

// all iterates paradigms in source order.
func (t *ParadigmTable) all(yield func(*Paradigm)) {
	for _, id := range t.order {
		yield(t.byID[id])
	}
}
