package lemmaru

import "strings"

// grammemeSet is a set of grammeme labels belonging to one category.
type grammemeSet map[string]struct{}

var (
	posSet = grammemeSet{
		"NOUN": {}, "VERB": {}, "ADJ": {}, "ADV": {}, "PRON": {},
		"NUM": {}, "PREP": {}, "CONJ": {}, "PART": {}, "INTJ": {},
	}
	caseSet = grammemeSet{
		"NOM": {}, "GEN": {}, "DAT": {}, "ACC": {}, "INSTR": {},
		"PREPOS": {}, "VOC": {}, "LOC": {},
	}
	genderSet = grammemeSet{"MASC": {}, "FEM": {}, "NEUT": {}}
	numberSet = grammemeSet{"SG": {}, "PL": {}}
	personSet = grammemeSet{"P1": {}, "P2": {}, "P3": {}}
	tenseSet  = grammemeSet{"PAST": {}, "PRES": {}, "FUT": {}, "INF": {}}
)

// Grammemes is the structured decomposition of a tag string.
type Grammemes struct {
	POS    string
	Case   string
	Gender string
	Number string
	Person string
	Tense  string
	// Other collects grammemes that fit no known category, in tag order.
	Other []string
}

// ParseTag splits a hyphen-separated tag like "NOUN-INSTR-FEM" into its
// grammatical categories. Unrecognized grammemes land in Other.
func ParseTag(tag string) Grammemes {
	var g Grammemes
	for _, gr := range strings.Split(tag, "-") {
		if gr == "" {
			continue
		}
		switch {
		case inSet(gr, posSet):
			g.POS = gr
		case inSet(gr, caseSet):
			g.Case = gr
		case inSet(gr, genderSet):
			g.Gender = gr
		case inSet(gr, numberSet):
			g.Number = gr
		case inSet(gr, personSet):
			g.Person = gr
		case inSet(gr, tenseSet):
			g.Tense = gr
		default:
			g.Other = append(g.Other, gr)
		}
	}
	return g
}

func inSet(key string, set grammemeSet) bool {
	_, ok := set[key]
	return ok
}
