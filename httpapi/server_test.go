package httpapi_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tothepoint "github.com/drivernf/to-the-point"
	"github.com/drivernf/to-the-point/httpapi"
)

const articleHTML = `<!DOCTYPE html>
<html><head>
<title>Glacier Survey Results</title>
<meta property="og:type" content="article">
</head><body>
<article>
	<h2>Glacier Survey Results</h2>
	<p>Researchers measured ice thickness at forty sites along the northern ridge during the spring campaign.</p>
	<p>The survey found thinning at every site, with losses concentrated near the terminus of the glacier.</p>
	<p>Longer melt seasons and reduced snowfall accumulation both contribute to the measured imbalance.</p>
</article>
</body></html>`

func newTestServer(t *testing.T) *httpapi.Server {
	t.Helper()
	logger := slog.New(slog.DiscardHandler)
	return httpapi.NewServer(tothepoint.NewPipeline(), logger)
}

func TestServer_Locate(t *testing.T) {
	t.Parallel()

	t.Run("locates and ranks an article", func(t *testing.T) {
		t.Parallel()

		body, err := json.Marshal(map[string]string{"html": articleHTML})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/v1/locate", strings.NewReader(string(body)))
		rec := httptest.NewRecorder()
		newTestServer(t).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			IsArticle bool                      `json:"isArticle"`
			Title     string                    `json:"title"`
			Body      tothepoint.BodyExtraction `json:"body"`
			Ranking   tothepoint.RankingResult  `json:"ranking"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

		assert.True(t, resp.IsArticle)
		assert.Equal(t, "Glacier Survey Results", resp.Title)
		assert.Equal(t, tothepoint.SourceScoredContainer, resp.Body.Source)
		assert.NotEmpty(t, resp.Ranking.Matches)
	})

	t.Run("an explicit title overrides the sniffed one", func(t *testing.T) {
		t.Parallel()

		body, err := json.Marshal(map[string]string{"html": articleHTML, "title": "melt seasons"})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/v1/locate", strings.NewReader(string(body)))
		rec := httptest.NewRecorder()
		newTestServer(t).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"title":"melt seasons"`)
	})

	t.Run("empty html is a bad request", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/v1/locate", strings.NewReader(`{"html": ""}`))
		rec := httptest.NewRecorder()
		newTestServer(t).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), tothepoint.EINVALID)
	})

	t.Run("malformed json is a bad request", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/v1/locate", strings.NewReader("{nope"))
		rec := httptest.NewRecorder()
		newTestServer(t).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("non-article pages still return a typed absence", func(t *testing.T) {
		t.Parallel()

		payload := `{"html": "<html><body><p>Just a short page.</p></body></html>"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/locate", strings.NewReader(payload))
		rec := httptest.NewRecorder()
		newTestServer(t).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"source":"absent"`)
	})
}

func TestServer_Health(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	newTestServer(t).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
