package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"lexia/internal/config"
)

func newConstituteForTest(t *testing.T, handler http.HandlerFunc) ConstituteServiceInterface {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewConstituteService(&config.Config{ConstituteBaseURL: server.URL}, zap.NewNop().Sugar())
}

func TestRelevantArticlesFormatsExcerpts(t *testing.T) {
	svc := newConstituteForTest(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/sections", r.URL.Path)
		assert.Equal(t, "herencia", r.URL.Query().Get("q"))
		assert.Equal(t, "EC", r.URL.Query().Get("country"))
		assert.Equal(t, "3", r.URL.Query().Get("limit"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"title": "Art. 66", "excerpt": "Derecho a la propiedad"},
			{"title": "", "excerpt": "Texto sin título"},
			{"title": "Art. 67", "excerpt": ""},
			{"title": "Art. 68", "excerpt": "Familia"},
			{"title": "Art. 69", "excerpt": "Sobrante"}
		]`))
	})

	articles, err := svc.RelevantArticles(context.Background(), "herencia", "EC", "es", 3)
	require.NoError(t, err)
	// empty excerpts skipped, limit applied after filtering
	assert.Equal(t, []string{
		"Art. 66: Derecho a la propiedad",
		"Texto sin título",
		"Art. 68: Familia",
	}, articles)
}

func TestRelevantArticlesNon200(t *testing.T) {
	svc := newConstituteForTest(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := svc.RelevantArticles(context.Background(), "herencia", "EC", "es", 3)
	assert.Error(t, err)
}
