package lemmaru

import (
	"errors"
	"reflect"
	"testing"
)

func TestAnalyzeKnownWord(t *testing.T) {
	a, err := New(dataDir)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer a.Close()

	tests := []struct {
		word      string
		wantLemma string
		wantTag   string
	}{
		{"кот", "кот", "NOUN-NOM-SG-MASC"},
		{"коту", "кот", "NOUN-DAT-SG-MASC"},
		{"Кошкою", "кошка", "NOUN-INSTR-SG-FEM"},
		{"маму", "мама", "NOUN-ACC-SG-FEM"},
	}
	for _, tt := range tests {
		cands, err := a.Analyze(tt.word)
		if err != nil {
			t.Errorf("Analyze(%q): %v", tt.word, err)
			continue
		}
		if len(cands) == 0 {
			t.Errorf("Analyze(%q) returned no candidates", tt.word)
			continue
		}
		top := cands[0]
		if top.Lemma != tt.wantLemma || top.Tag != tt.wantTag {
			t.Errorf("Analyze(%q) top = {%q %q}, want {%q %q}",
				tt.word, top.Lemma, top.Tag, tt.wantLemma, tt.wantTag)
		}
		if top.Guessed {
			t.Errorf("Analyze(%q) top candidate marked guessed", tt.word)
		}
		if top.Score < 0 || top.Score > 1 {
			t.Errorf("Analyze(%q) score %v outside [0,1]", tt.word, top.Score)
		}
	}
}

func TestAnalyzeFrequencyRanking(t *testing.T) {
	a, err := New(dataDir)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer a.Close()

	cands, err := a.Analyze("стали")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if len(cands) != 2 {
		t.Fatalf("got %d candidates, want 2: %v", len(cands), cands)
	}
	if cands[0].Lemma != "стать" || cands[1].Lemma != "сталь" {
		t.Errorf("ranking = [%s %s], want [стать сталь]",
			cands[0].Lemma, cands[1].Lemma)
	}
	if cands[0].Score != 0.9 || cands[1].Score != 0.1 {
		t.Errorf("scores = [%v %v], want [0.9 0.1]",
			cands[0].Score, cands[1].Score)
	}
}

func TestAnalyzeTieByInsertionOrder(t *testing.T) {
	a, err := New(dataDir)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer a.Close()

	cands, err := a.Analyze("печь")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if len(cands) != 2 {
		t.Fatalf("got %d candidates, want 2: %v", len(cands), cands)
	}
	// No frequency signal: both tie at 1.0 in lexicon order.
	if cands[0].Score != 1.0 || cands[1].Score != 1.0 {
		t.Errorf("scores = [%v %v], want [1 1]", cands[0].Score, cands[1].Score)
	}
	if cands[0].Tag != "NOUN-NOM-SG-FEM" || cands[1].Tag != "VERB-INF" {
		t.Errorf("tag order = [%s %s], want [NOUN-NOM-SG-FEM VERB-INF]",
			cands[0].Tag, cands[1].Tag)
	}
}

func TestAnalyzeGuessing(t *testing.T) {
	a, err := New(dataDir)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer a.Close()

	// "программисткою" is not in the lexicon. The longest matching rule
	// suffix is "кою" (paradigm 1); stripping it and applying the
	// paradigm's lemma rule yields "программистка".
	cands, err := a.Analyze("программисткою")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if len(cands) == 0 {
		t.Fatal("no candidates for программисткою")
	}
	top := cands[0]
	if top.Lemma != "программистка" {
		t.Errorf("top lemma = %q, want %q", top.Lemma, "программистка")
	}
	if top.Tag != "NOUN-INSTR-SG-FEM" {
		t.Errorf("top tag = %q, want %q", top.Tag, "NOUN-INSTR-SG-FEM")
	}
	if !top.Guessed {
		t.Error("top candidate not marked guessed")
	}
	// Guessed scores stay strictly below the dictionary tier.
	if top.Score <= 0 || top.Score > guessPenalty {
		t.Errorf("guessed score = %v, want in (0, %v]", top.Score, guessPenalty)
	}
}

func TestAnalyzeGuessLongestSuffixWins(t *testing.T) {
	a, err := New(dataDir)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer a.Close()

	// "мамой" matches only the 2-rune suffix "ой" (paradigm 3).
	short, err := a.Analyze("мамой")
	if err != nil {
		t.Fatalf("Analyze(мамой): %v", err)
	}
	if len(short) == 0 || short[0].Lemma != "мама" {
		t.Fatalf("Analyze(мамой) top = %+v, want lemma мама", short)
	}

	// "программисткою" matches the 3-rune suffix "кою"; the longer match
	// must outscore the shorter one.
	long, err := a.Analyze("программисткою")
	if err != nil {
		t.Fatalf("Analyze(программисткою): %v", err)
	}
	if len(long) == 0 {
		t.Fatal("no candidates for программисткою")
	}
	if long[0].Score <= short[0].Score {
		t.Errorf("longer suffix score %v not above shorter suffix score %v",
			long[0].Score, short[0].Score)
	}
}

func TestAnalyzeNoAnalysis(t *testing.T) {
	a, err := New(dataDir)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer a.Close()

	cands, err := a.Analyze("бррр")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if len(cands) != 0 {
		t.Errorf("Analyze(бррр) = %v, want no candidates", cands)
	}
}

func TestAnalyzeEmptyInput(t *testing.T) {
	a, err := New(dataDir)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer a.Close()

	for _, word := range []string{"", "   ", "...", "1234", "«»"} {
		if _, err := a.Analyze(word); !errors.Is(err, ErrEmptyWord) {
			t.Errorf("Analyze(%q) error = %v, want ErrEmptyWord", word, err)
		}
	}
}

func TestAnalyzePure(t *testing.T) {
	a, err := New(dataDir)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer a.Close()

	for _, word := range []string{"кот", "стали", "программисткою", "бррр"} {
		first, err := a.Analyze(word)
		if err != nil {
			t.Fatalf("Analyze(%q): %v", word, err)
		}
		second, err := a.Analyze(word)
		if err != nil {
			t.Fatalf("Analyze(%q) again: %v", word, err)
		}
		if !reflect.DeepEqual(first, second) {
			t.Errorf("Analyze(%q) not stable: %v then %v", word, first, second)
		}
	}
}

func BenchmarkAnalyze(b *testing.B) {
	a, err := New(dataDir)
	if err != nil {
		b.Fatalf("New: %v", err)
	}
	defer a.Close()

	words := []string{"кот", "коту", "стали", "программисткою", "мамой"}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := a.Analyze(words[i%len(words)]); err != nil {
			b.Fatal(err)
		}
	}
}
