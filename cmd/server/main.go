// Command server exposes the lemmaru analyzer as a JSON REST API.
//
// Endpoints:
//
//	GET  /api/analyze?word=<word>
//	POST /api/analyze/text   body: {"text":"..."}
//	GET  /api/forms?lemma=<key>
//	GET  /api/health
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"log"
	"net/http"

	"github.com/rs/cors"
	lemmaru "github.com/slavtext/lemmaru"
)

// ---- JSON response types ------------------------------------------------

type candidateJSON struct {
	Lemma   string  `json:"lemma"`
	Tag     string  `json:"tag"`
	Score   float64 `json:"score"`
	Guessed bool    `json:"guessed,omitempty"`
}

type analyzeResponse struct {
	Word       string          `json:"word"`
	Lemma      string          `json:"lemma,omitempty"`
	Found      bool            `json:"found"`
	Candidates []candidateJSON `json:"candidates"`
}

type tokenJSON struct {
	Token      string          `json:"token"`
	Candidates []candidateJSON `json:"candidates"`
}

type analyzeTextResponse struct {
	Results []tokenJSON `json:"results"`
}

type formJSON struct {
	Form string `json:"form"`
	Tag  string `json:"tag"`
}

type formsResponse struct {
	Lemma string     `json:"lemma"`
	Forms []formJSON `json:"forms"`
}

type healthResponse struct {
	Status    string `json:"status"`
	Surfaces  int    `json:"surfaces"`
	Entries   int    `json:"entries"`
	Paradigms int    `json:"paradigms"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ---- helpers ------------------------------------------------------------

func toCandidatesJSON(cands []lemmaru.Candidate) []candidateJSON {
	out := make([]candidateJSON, 0, len(cands))
	for _, c := range cands {
		out = append(out, candidateJSON{
			Lemma:   c.Lemma,
			Tag:     c.Tag,
			Score:   c.Score,
			Guessed: c.Guessed,
		})
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode error: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// ---- handlers -----------------------------------------------------------

func handleAnalyze(a *lemmaru.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		word := r.URL.Query().Get("word")
		if word == "" {
			writeError(w, http.StatusBadRequest, "missing 'word' query parameter")
			return
		}

		cands, err := a.Analyze(word)
		if errors.Is(err, lemmaru.ErrEmptyWord) {
			writeError(w, http.StatusBadRequest, "word contains no letters")
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		resp := analyzeResponse{
			Word:       word,
			Found:      len(cands) > 0,
			Candidates: toCandidatesJSON(cands),
		}
		status := http.StatusOK
		if len(cands) == 0 {
			status = http.StatusNotFound
		} else {
			resp.Lemma = cands[0].Lemma
		}
		writeJSON(w, status, resp)
	}
}

func handleAnalyzeText(a *lemmaru.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "POST required")
			return
		}
		var body struct {
			Text string `json:"text"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Text == "" {
			writeError(w, http.StatusBadRequest, "body must be JSON with a non-empty 'text' field")
			return
		}

		results, err := a.AnalyzeText(body.Text)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		out := make([]tokenJSON, 0, len(results))
		for _, res := range results {
			out = append(out, tokenJSON{
				Token:      res.Token,
				Candidates: toCandidatesJSON(res.Candidates),
			})
		}
		writeJSON(w, http.StatusOK, analyzeTextResponse{Results: out})
	}
}

func handleForms(a *lemmaru.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		lemma := r.URL.Query().Get("lemma")
		if lemma == "" {
			writeError(w, http.StatusBadRequest, "missing 'lemma' query parameter")
			return
		}

		forms, err := a.WordForms(lemma)
		if errors.Is(err, lemmaru.ErrEmptyWord) {
			writeError(w, http.StatusBadRequest, "lemma contains no letters")
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		if len(forms) == 0 {
			writeError(w, http.StatusNotFound, "lemma not found")
			return
		}

		out := make([]formJSON, 0, len(forms))
		for _, f := range forms {
			out = append(out, formJSON{Form: f.Form, Tag: f.Tag})
		}
		writeJSON(w, http.StatusOK, formsResponse{Lemma: lemma, Forms: out})
	}
}

func handleHealth(a *lemmaru.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		writeJSON(w, http.StatusOK, healthResponse{
			Status:    "ok",
			Surfaces:  a.Dict().Len(),
			Entries:   a.Dict().Size(),
			Paradigms: a.Paradigms().Len(),
		})
	}
}

// ---- main ---------------------------------------------------------------

func main() {
	dataDir := flag.String("data", "data", "path to the lemmaru data directory")
	snapshot := flag.String("snapshot", "", "path to a compiled snapshot (overrides -data)")
	addr := flag.String("addr", ":8080", "listen address")
	flag.Parse()

	var (
		a   *lemmaru.Analyzer
		err error
	)
	if *snapshot != "" {
		log.Printf("loading snapshot %s …", *snapshot)
		a, err = lemmaru.OpenSnapshot(*snapshot)
	} else {
		log.Printf("loading data from %s …", *dataDir)
		a, err = lemmaru.New(*dataDir)
	}
	if err != nil {
		log.Fatalf("failed to load data: %v", err)
	}
	defer a.Close()
	log.Printf("data loaded: %d surface forms, %d paradigms",
		a.Dict().Len(), a.Paradigms().Len())

	mux := http.NewServeMux()
	mux.HandleFunc("/api/analyze/text", handleAnalyzeText(a))
	mux.HandleFunc("/api/analyze", handleAnalyze(a))
	mux.HandleFunc("/api/forms", handleForms(a))
	mux.HandleFunc("/api/health", handleHealth(a))

	handler := cors.Default().Handler(mux)

	log.Printf("listening on %s", *addr)
	if err := http.ListenAndServe(*addr, handler); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
