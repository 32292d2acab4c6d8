package lemmaru

import "regexp"

// reWord matches a single word token: a run of Unicode letters.
var reWord = regexp.MustCompile(`\pL+`)

// AnalyzeText splits text into letter-run tokens and analyzes each one.
// Tokens appear in the result in text order; a token the engine could not
// analyze carries an empty candidate list.
func (a *Analyzer) AnalyzeText(text string) ([]TokenAnalysis, error) {
	if a.closed {
		return nil, ErrAnalyzerClosed
	}

	tokens := reWord.FindAllString(text, -1)
	out := make([]TokenAnalysis, 0, len(tokens))
	for _, tok := range tokens {
		cands, err := a.Analyze(tok)
		if err != nil {
			return nil, err
		}
		out = append(out, TokenAnalysis{Token: tok, Candidates: cands})
	}
	return out, nil
}
