package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openlaw-hk/counsel/pkg/counsel"
	"github.com/openlaw-hk/counsel/pkg/counsel/legislation"
)

func testServer(t *testing.T) *Server {
	t.Helper()

	db := &legislation.Database{
		Ordinances: map[string]legislation.Ordinance{
			"cap_210": {
				Chapter: "210",
				Title:   "Theft Ordinance",
				Sections: map[string]legislation.Section{
					"2": {
						Number: "2",
						Title:  "Basic definition of theft",
						Text:   "A person commits theft if he dishonestly appropriates property belonging to another.",
					},
				},
			},
		},
	}

	svc, err := counsel.New(context.Background(), counsel.Options{Legislation: db})
	require.NoError(t, err)
	t.Cleanup(func() { svc.Close() })

	return NewServer(svc, nil)
}

func doJSON(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	s := testServer(t)
	rec := doJSON(t, s, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}

func TestAnalyze(t *testing.T) {
	s := testServer(t)
	rec := doJSON(t, s, http.MethodPost, "/api/v1/analyze", map[string]any{
		"facts": []string{
			"appropriates_property",
			"property_belongs_to_another",
			"acts_dishonestly",
			"intent_to_permanently_deprive",
		},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Offences []struct {
			Label    string `json:"label"`
			Citation string `json:"citation"`
		} `json:"offences"`
		Explanation string `json:"explanation"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Offences, 1)
	assert.Equal(t, "Theft", body.Offences[0].Label)
	assert.Equal(t, "Cap. 210, s. 2", body.Offences[0].Citation)
	assert.Contains(t, body.Explanation, "=== LEGAL ANALYSIS ===")
}

func TestAnalyzeRejectsEmptyFacts(t *testing.T) {
	s := testServer(t)
	rec := doJSON(t, s, http.MethodPost, "/api/v1/analyze", map[string]any{"facts": []string{}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAnalyzeRejectsBadJSON(t *testing.T) {
	s := testServer(t)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze", bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestConsult(t *testing.T) {
	s := testServer(t)
	rec := doJSON(t, s, http.MethodPost, "/api/v1/consult", map[string]any{
		"text":  "He threatened the cashier with a knife, demanded cash, and took HK$20,000",
		"facts": []string{"property_belongs_to_another", "acts_dishonestly", "intent_to_permanently_deprive"},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var body consultResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body.ReportID)
	assert.NotEmpty(t, body.Analysis.Offences)
	assert.NotEmpty(t, body.RiskLevel)
	assert.Contains(t, body.Report, "IMPORTANT DISCLAIMER:")

	// The logged consultation is retrievable.
	rec = doJSON(t, s, http.MethodGet, "/api/v1/consultations/"+body.ReportID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestConsultRequiresInput(t *testing.T) {
	s := testServer(t)
	rec := doJSON(t, s, http.MethodPost, "/api/v1/consult", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSearchCases(t *testing.T) {
	s := testServer(t)
	rec := doJSON(t, s, http.MethodGet, "/api/v1/cases/search?q=robbery+with+a+knife&limit=2", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Results []caseDTO `json:"results"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotEmpty(t, body.Results)
	assert.Equal(t, "ROBBERY_001", body.Results[0].ID)
	assert.LessOrEqual(t, len(body.Results), 2)
}

func TestSearchCasesRequiresQuery(t *testing.T) {
	s := testServer(t)
	rec := doJSON(t, s, http.MethodGet, "/api/v1/cases/search", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSearchSections(t *testing.T) {
	s := testServer(t)
	rec := doJSON(t, s, http.MethodGet, "/api/v1/sections/search?q=dishonestly+appropriates+property", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Results []sectionDTO `json:"results"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotEmpty(t, body.Results)
	assert.Equal(t, "Cap. 210, s. 2", body.Results[0].Ref)
}

func TestGetConsultationNotFound(t *testing.T) {
	s := testServer(t)
	rec := doJSON(t, s, http.MethodGet, "/api/v1/consultations/NOPE", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStats(t *testing.T) {
	s := testServer(t)

	doJSON(t, s, http.MethodPost, "/api/v1/consult", map[string]any{
		"text": "he stole a wallet", "facts": []string{"appropriates_property"},
	})

	rec := doJSON(t, s, http.MethodGet, "/api/v1/stats", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Queries int `json:"queries"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Queries)
}

func TestRecentConsultations(t *testing.T) {
	s := testServer(t)

	rec := doJSON(t, s, http.MethodPost, "/api/v1/consult", map[string]any{
		"text": "he stole a wallet", "facts": []string{"appropriates_property"},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, s, http.MethodGet, "/api/v1/consultations?limit=5", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Results []struct {
			ID    string `json:"id"`
			Query string `json:"query"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Results, 1)
	assert.NotEmpty(t, body.Results[0].ID)
	assert.Equal(t, "he stole a wallet", body.Results[0].Query)
}
