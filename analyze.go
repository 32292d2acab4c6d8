package lemmaru

import (
	"sort"
	"strings"
)

// guessPenalty caps the score of a guessed candidate, keeping every guess
// strictly below any dictionary-confirmed candidate.
const guessPenalty = 0.5

// lookupCandidates turns the dictionary readings of a normalized word into
// ranked candidates. With a frequency signal each entry scores its share
// of the total; without one all entries tie at 1.0 and keep their
// insertion order.
func lookupCandidates(dict *Dictionary, word string) []Candidate {
	entries := dict.Lookup(word)
	if len(entries) == 0 {
		return nil
	}

	total := 0
	for _, e := range entries {
		total += e.Freq
	}

	out := make([]Candidate, 0, len(entries))
	for _, e := range entries {
		score := 1.0
		if total > 0 {
			score = float64(e.Freq) / float64(total)
		}
		out = append(out, Candidate{Lemma: e.Lemma, Tag: e.Tag, Score: score})
	}
	sortCandidates(out)
	return out
}

// guessCandidates synthesizes candidates for a word absent from the
// dictionary. Every paradigm rule whose suffix ends the word proposes
// a lemma: the matched suffix is stripped and the paradigm's lemma rule
// suffix appended. Longer matched suffixes score higher; duplicate
// lemma+tag proposals keep their best score.
func guessCandidates(paradigms *ParadigmTable, word string) []Candidate {
	runes := []rune(word)

	var out []Candidate
	index := make(map[string]int)

	paradigms.all(func(p *Paradigm) {
		for _, r := range p.Rules {
			sufLen := len([]rune(r.Suffix))
			// The suffix must match and leave a non-empty stem.
			if sufLen == 0 || sufLen >= len(runes) {
				continue
			}
			if !strings.HasSuffix(word, r.Suffix) {
				continue
			}

			stem := string(runes[:len(runes)-sufLen])
			c := Candidate{
				Lemma:   stem + p.LemmaRule.Suffix,
				Tag:     r.Tag,
				Score:   guessPenalty * float64(sufLen) / float64(paradigms.maxSuffixLen),
				Guessed: true,
			}

			key := c.Lemma + "\x00" + c.Tag
			if i, dup := index[key]; dup {
				if c.Score > out[i].Score {
					out[i] = c
				}
				continue
			}
			index[key] = len(out)
			out = append(out, c)
		}
	})

	sortCandidates(out)
	return out
}

// sortCandidates orders candidates by descending score; the stable sort
// preserves insertion (entry or paradigm) order among ties.
func sortCandidates(cs []Candidate) {
	sort.SliceStable(cs, func(i, j int) bool {
		return cs[i].Score > cs[j].Score
	})
}
