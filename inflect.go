package lemmaru

// WordForms returns every inflected surface form of lemma recorded in the
// dictionary: for each entry whose lemma matches, the stem is combined
// with each rule of the entry's paradigm. Forms are deduplicated and keep
// rule order. An empty result means the lemma is not in the dictionary.
func (a *Analyzer) WordForms(lemma string) ([]Form, error) {
	if a.closed {
		return nil, ErrAnalyzerClosed
	}
	w := Normalize(lemma)
	if w == "" {
		return nil, ErrEmptyWord
	}

	seen := make(map[string]bool)
	var out []Form
	for _, e := range a.dict.Lookup(w) {
		if e.Lemma != w {
			continue
		}
		rules, err := a.paradigms.RulesFor(e.ParadigmID)
		if err != nil {
			return nil, err
		}
		for _, r := range rules {
			f := e.Stem + r.Suffix
			if seen[f+"\x00"+r.Tag] {
				continue
			}
			seen[f+"\x00"+r.Tag] = true
			out = append(out, Form{Form: f, Tag: r.Tag})
		}
	}
	return out, nil
}
