package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/openlaw-hk/counsel/pkg/counsel"
	"github.com/openlaw-hk/counsel/pkg/counsel/infer"
	"github.com/openlaw-hk/counsel/pkg/counsel/internalerr"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type offenceDTO struct {
	Label    string `json:"label"`
	RuleID   string `json:"rule_id"`
	RuleName string `json:"rule_name"`
	Citation string `json:"citation"`
	Penalty  string `json:"penalty"`
}

type defenseDTO struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Effect string `json:"effect"`
}

type analysisDTO struct {
	Facts       []string     `json:"facts"`
	RulesFired  int          `json:"rules_fired"`
	Offences    []offenceDTO `json:"offences"`
	Defenses    []defenseDTO `json:"defenses"`
	Explanation string       `json:"explanation"`
}

func analysisFromEngine(e *infer.Engine) analysisDTO {
	summary := e.Summary()
	dto := analysisDTO{
		Facts:       e.Facts(),
		RulesFired:  summary.RulesFired,
		Offences:    []offenceDTO{},
		Defenses:    []defenseDTO{},
		Explanation: e.Explain(),
	}
	for _, o := range e.Offences() {
		dto.Offences = append(dto.Offences, offenceDTO{
			Label:    o.Label,
			RuleID:   o.RuleID,
			RuleName: o.RuleName,
			Citation: o.Citation,
			Penalty:  o.Penalty,
		})
	}
	for _, d := range e.Defenses() {
		dto.Defenses = append(dto.Defenses, defenseDTO{ID: d.ID, Name: d.Name, Effect: d.Effect})
	}
	return dto
}

// POST /api/v1/analyze runs inference over explicit canonical facts.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Facts []string `json:"facts"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.Facts) == 0 {
		respondError(w, http.StatusBadRequest, "facts are required")
		return
	}

	engine := s.svc.AnalyzeFacts(req.Facts)
	respondJSON(w, http.StatusOK, analysisFromEngine(engine))
}

type caseDTO struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Year     int     `json:"year"`
	Court    string  `json:"court"`
	Outcome  string  `json:"outcome"`
	Sentence string  `json:"sentence,omitempty"`
	Score    float64 `json:"score"`
}

type consultResponse struct {
	ReportID      string      `json:"report_id"`
	Analysis      analysisDTO `json:"analysis"`
	MatchStrategy string      `json:"match_strategy"`
	MatchCoverage string      `json:"match_coverage"`
	RiskLevel     string      `json:"risk_level"`
	RiskScore     int         `json:"risk_score"`
	SimilarCases  []caseDTO   `json:"similar_cases"`
	Report        string      `json:"report"`
}

// POST /api/v1/consult runs the full consultation flow.
func (s *Server) handleConsult(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text  string   `json:"text"`
		Facts []string `json:"facts"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Text == "" && len(req.Facts) == 0 {
		respondError(w, http.StatusBadRequest, "text or facts are required")
		return
	}

	res, err := s.svc.Consult(r.Context(), counsel.Request{Text: req.Text, Facts: req.Facts})
	if err != nil {
		s.log.Error("consult failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "consultation failed")
		return
	}

	resp := consultResponse{
		ReportID:      res.Report.ID,
		Analysis:      analysisFromEngine(res.Engine),
		MatchStrategy: res.Match.Strategy,
		MatchCoverage: string(res.Match.Coverage),
		RiskLevel:     string(res.Risk.Overall.Level),
		RiskScore:     res.Risk.Overall.Score,
		SimilarCases:  []caseDTO{},
		Report:        res.Report.Render(),
	}
	for _, h := range res.SimilarHits {
		resp.SimilarCases = append(resp.SimilarCases, caseDTO{
			ID:       h.Case.ID,
			Name:     h.Case.Name,
			Year:     h.Case.Year,
			Court:    h.Case.Court,
			Outcome:  h.Case.Outcome,
			Sentence: h.Case.Sentence,
			Score:    h.Score,
		})
	}
	respondJSON(w, http.StatusOK, resp)
}

// GET /api/v1/cases/search?q=...&limit=N
func (s *Server) handleSearchCases(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		respondError(w, http.StatusBadRequest, "query parameter q is required")
		return
	}
	limit := queryInt(r, "limit", 5)

	hits, err := s.svc.SearchCases(r.Context(), q, limit)
	if err != nil {
		s.log.Error("case search failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "search failed")
		return
	}

	out := make([]caseDTO, 0, len(hits))
	for _, h := range hits {
		out = append(out, caseDTO{
			ID:       h.Case.ID,
			Name:     h.Case.Name,
			Year:     h.Case.Year,
			Court:    h.Case.Court,
			Outcome:  h.Case.Outcome,
			Sentence: h.Case.Sentence,
			Score:    h.Score,
		})
	}
	respondJSON(w, http.StatusOK, map[string]any{"query": q, "results": out})
}

type sectionDTO struct {
	Ref   string  `json:"ref"`
	Title string  `json:"title"`
	Score float64 `json:"score"`
}

// GET /api/v1/sections/search?q=...&limit=N
func (s *Server) handleSearchSections(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		respondError(w, http.StatusBadRequest, "query parameter q is required")
		return
	}
	limit := queryInt(r, "limit", 5)

	hits, ok, err := s.svc.SearchSections(r.Context(), q, limit)
	if err != nil {
		s.log.Error("section search failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "search failed")
		return
	}
	if !ok {
		respondError(w, http.StatusNotFound, "no legislation database loaded")
		return
	}

	out := make([]sectionDTO, 0, len(hits))
	for _, h := range hits {
		out = append(out, sectionDTO{Ref: h.Ref, Title: h.Title, Score: h.Score})
	}
	respondJSON(w, http.StatusOK, map[string]any{"query": q, "results": out})
}

// GET /api/v1/consultations/{id}
func (s *Server) handleGetConsultation(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	c, err := s.svc.Store().GetConsultation(r.Context(), id)
	if err != nil {
		if errors.Is(err, internalerr.ErrNotFound) {
			respondError(w, http.StatusNotFound, "consultation not found")
			return
		}
		s.log.Error("consultation lookup failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "lookup failed")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"id":         c.ID,
		"created_at": c.CreatedAt,
		"query":      c.Query,
		"facts":      c.Facts,
		"offences":   c.Offences,
		"report":     c.Report,
	})
}

// GET /api/v1/consultations?limit=N
func (s *Server) handleRecentConsultations(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", 10)

	list, err := s.svc.Store().RecentConsultations(r.Context(), limit)
	if err != nil {
		s.log.Error("consultation list failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "list failed")
		return
	}

	out := make([]map[string]any, 0, len(list))
	for _, c := range list {
		out = append(out, map[string]any{
			"id":         c.ID,
			"created_at": c.CreatedAt,
			"query":      c.Query,
			"offences":   c.Offences,
		})
	}
	respondJSON(w, http.StatusOK, map[string]any{"results": out})
}

// GET /api/v1/stats
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	stats := s.svc.MatchStats()
	tiers := make(map[string]int, len(stats.Tiers))
	for _, t := range stats.Tiers {
		tiers[t.Name] = t.Hits
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"queries": stats.Queries,
		"tiers":   tiers,
		"misses":  stats.Misses,
	})
}

func queryInt(r *http.Request, key string, def int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return def
	}
	return n
}
