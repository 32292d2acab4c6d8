package lemmaru

// Rule is a single inflection rule: attaching Suffix to a stem produces a
// surface form carrying the grammatical tag Tag.
type Rule struct {
	// Suffix is the ending attached to the stem (may be empty).
	Suffix string
	// Tag is the grammatical tag of the resulting form, e.g. "NOUN-INSTR-FEM".
	Tag string
}

// Paradigm is an inflection paradigm: the ordered set of rules that
// generate surface forms from a stem.
type Paradigm struct {
	// ID is the paradigm identifier referenced by lexical entries.
	ID int
	// LemmaRule builds the canonical (dictionary) form from a stem.
	LemmaRule Rule
	// Rules are the inflection rules in source order.
	Rules []Rule
}

// LexicalEntry is one dictionary reading of a surface form.
// Entries are immutable once loaded.
type LexicalEntry struct {
	// Stem is the invariant part of the word the paradigm attaches to.
	Stem string
	// Lemma is the canonical dictionary form.
	Lemma string
	// Tag is the grammatical tag of this reading.
	Tag string
	// ParadigmID references a paradigm in the paradigm table.
	ParadigmID int
	// Freq is the optional corpus frequency; 0 means no frequency signal.
	Freq int
}

// Candidate is one ranked analysis of a surface form. Candidates are fresh
// values owned by the caller; the analyzer retains no reference to them.
type Candidate struct {
	// Lemma is the proposed canonical form.
	Lemma string
	// Tag is the grammatical tag of the analyzed form.
	Tag string
	// Score is the confidence in [0,1]. Dictionary-confirmed candidates
	// always outrank guessed ones.
	Score float64
	// Guessed is true when the candidate was synthesized by paradigm
	// suffix matching rather than found in the dictionary.
	Guessed bool
}

// Form is a single generated surface form of a lemma.
type Form struct {
	// Form is the inflected surface form.
	Form string
	// Tag is the grammatical tag of the form.
	Tag string
}

// TokenAnalysis holds the analysis of a single token from a text.
type TokenAnalysis struct {
	// Token is the original word form from the text.
	Token string
	// Candidates are the ranked analyses of the token; empty when the
	// token could not be analyzed.
	Candidates []Candidate
}
