package library

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchAnalysis(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/analysis", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "10", r.URL.Query().Get("size"))

		json.NewEncoder(w).Encode(AnalysisPage{
			Items: []AnalysisItem{{ID: "a1", Question: "2x+5=13", Answer: "x=4"}},
			Page:  2,
			Size:  10,
			Total: 37,
		})
	}))
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL))
	page, err := c.FetchAnalysis(context.Background(), 2, 10)
	require.NoError(t, err)
	assert.Equal(t, 37, page.Total)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "a1", page.Items[0].ID)
}

func TestFetchKnowledgeStats(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/knowledge/stats", r.URL.Path)
		assert.Equal(t, "linear equations", r.URL.Query().Get("knowledge"))

		json.NewEncoder(w).Encode(KnowledgeStats{
			Knowledge: "linear equations",
			Total:     40,
			Correct:   28,
			Accuracy:  70,
		})
	}))
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL))
	stats, err := c.FetchKnowledgeStats(context.Background(), "linear equations")
	require.NoError(t, err)
	assert.Equal(t, 28, stats.Correct)
	assert.InDelta(t, 70.0, stats.Accuracy, 0.001)
}

func TestQueryBriefs(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/library/briefs/query", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body struct {
			Keywords []string `json:"keywords"`
			Limit    int      `json:"limit"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, []string{"Algebra", "Paper"}, body.Keywords)
		assert.Equal(t, 50, body.Limit)

		json.NewEncoder(w).Encode(map[string]any{
			"items": []Brief{{ID: "b1", Title: "Factoring tricks"}},
		})
	}))
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL))
	briefs, err := c.QueryBriefs(context.Background(), []string{"Algebra", "Paper"}, 50)
	require.NoError(t, err)
	require.Len(t, briefs, 1)
	assert.Equal(t, "Factoring tricks", briefs[0].Title)
}

func TestNonOKStatusIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL))

	_, err := c.FetchAnalysis(context.Background(), 1, 10)
	assert.ErrorContains(t, err, "500")

	_, err = c.QueryBriefs(context.Background(), []string{"x"}, 10)
	assert.ErrorContains(t, err, "500")
}

func TestContextCancellation(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer srv.Close()
	defer close(block)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewClient(WithBaseURL(srv.URL))
	_, err := c.QueryBriefs(ctx, []string{"x"}, 10)
	assert.ErrorIs(t, err, context.Canceled)
}
