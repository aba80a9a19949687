package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shona-nlp/shonamorph"
)

// ---- JSON response types ------------------------------------------------

type classEntryJSON struct {
	Class           string `json:"class"`
	Meaning         string `json:"meaning"`
	Number          string `json:"number"`
	CompanionPrefix string `json:"companion_prefix,omitempty"`
	SourcePrefix    string `json:"source_prefix,omitempty"`
	Priority        int    `json:"priority"`
}

type analysisJSON struct {
	Word            string           `json:"word"`
	Prefix          string           `json:"prefix"`
	Stem            string           `json:"stem"`
	Resolved        bool             `json:"resolved"`
	Entry           *classEntryJSON  `json:"entry,omitempty"`
	Candidates      []classEntryJSON `json:"candidates,omitempty"`
	Lemma           string           `json:"lemma"`
	CompanionForm   string           `json:"companion_form,omitempty"`
	FallbackClasses []string         `json:"fallback_classes,omitempty"`
}

type patternSetJSON struct {
	Name     string   `json:"name"`
	Patterns []string `json:"patterns"`
}

type classesResponse struct {
	Prefixes        map[string][]classEntryJSON `json:"prefixes"`
	StemPatterns    map[string][]patternSetJSON `json:"stem_patterns"`
	FallbackClasses []string                    `json:"fallback_classes"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ---- helpers ------------------------------------------------------------

func toEntryJSON(e shonamorph.ClassEntry) classEntryJSON {
	out := classEntryJSON{
		Class:    e.ID,
		Meaning:  e.Meaning,
		Number:   e.Number.String(),
		Priority: e.Priority,
	}
	if p, ok := e.Pairing.Companion(); ok {
		out.CompanionPrefix = p
	}
	if p, ok := e.Pairing.Source(); ok {
		out.SourcePrefix = p
	}
	return out
}

func toAnalysisJSON(a shonamorph.Analysis) analysisJSON {
	out := analysisJSON{
		Word:            a.Word,
		Prefix:          a.Prefix,
		Stem:            a.Stem,
		Resolved:        a.Resolved(),
		Lemma:           a.Lemma,
		CompanionForm:   a.CompanionForm,
		FallbackClasses: a.FallbackClasses,
	}
	if a.Entry != nil {
		e := toEntryJSON(*a.Entry)
		out.Entry = &e
	}
	for _, c := range a.Candidates {
		out.Candidates = append(out.Candidates, toEntryJSON(c))
	}
	return out
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encode response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, errorResponse{Error: msg})
}

// ---- handlers -----------------------------------------------------------

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}
	word := r.URL.Query().Get("word")
	if word == "" {
		s.writeError(w, http.StatusBadRequest, "missing 'word' query parameter")
		return
	}

	analysis, err := s.analyzer.Analyze(r.Context(), word)
	if err != nil {
		s.metrics.resolutions.WithLabelValues("error").Inc()
		switch {
		case errors.Is(err, shonamorph.ErrNoSegmenter):
			s.writeError(w, http.StatusServiceUnavailable, "no segmenter configured")
		default:
			s.logger.Error("analyze failed", "word", word, "error", err)
			s.writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	s.metrics.observeResolution(analysis.Resolved())
	s.writeJSON(w, http.StatusOK, toAnalysisJSON(analysis))
}

func (s *Server) handleResolve(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}
	prefix := r.URL.Query().Get("prefix")
	stem := r.URL.Query().Get("stem")
	if stem == "" {
		s.writeError(w, http.StatusBadRequest, "missing 'stem' query parameter")
		return
	}

	analysis := s.analyzer.Resolve(prefix, stem)
	s.metrics.observeResolution(analysis.Resolved())
	s.writeJSON(w, http.StatusOK, toAnalysisJSON(analysis))
}

func (s *Server) handleClasses(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}

	resp := classesResponse{
		Prefixes:        make(map[string][]classEntryJSON),
		StemPatterns:    make(map[string][]patternSetJSON),
		FallbackClasses: shonamorph.FallbackClasses(),
	}
	for _, prefix := range s.analyzer.KnownPrefixes() {
		for _, e := range s.analyzer.Entries(prefix) {
			resp.Prefixes[prefix] = append(resp.Prefixes[prefix], toEntryJSON(e))
		}
		for _, set := range shonamorph.StemPatterns(prefix) {
			resp.StemPatterns[prefix] = append(resp.StemPatterns[prefix], patternSetJSON{
				Name:     set.Name,
				Patterns: set.Patterns,
			})
		}
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
