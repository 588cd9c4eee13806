package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homedeck/homedeck/pkg/config"
	"github.com/homedeck/homedeck/pkg/content"
	"github.com/homedeck/homedeck/pkg/domain"
	"github.com/homedeck/homedeck/pkg/feed"
	"github.com/homedeck/homedeck/pkg/summary"
	"github.com/homedeck/homedeck/server/mocks"
)

// testRegistry returns a registry with two named sources
func testRegistry() *feed.Registry {
	return feed.NewRegistry([]feed.Source{
		{Name: "hn", URL: "https://news.ycombinator.com/rss"},
		{Name: "lobsters", URL: "https://lobste.rs/rss"},
	})
}

func testItems() []domain.FeedItem {
	return []domain.FeedItem{
		{Title: "First", Link: "https://example.com/1", Published: "Mon, 25 Aug 2025 10:00:00 +0000", Source: "hn"},
		{Title: "Second", Link: "https://example.com/2", Published: "Mon, 25 Aug 2025 09:00:00 +0000", Source: "hn"},
	}
}

func TestServer_sourcesHandler(t *testing.T) {
	srv := New(testConfig(), Deps{Registry: testRegistry()}, "1.0.0", false)
	srv.view.source = "hn"

	req := httptest.NewRequest("GET", "/api/v1/news/sources", http.NoBody)
	w := httptest.NewRecorder()

	srv.sourcesHandler(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Sources []string `json:"sources"`
		Current string   `json:"current"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"hn", "lobsters"}, resp.Sources)
	assert.Equal(t, "hn", resp.Current)
}

func TestServer_newsFeedHandler(t *testing.T) {
	t.Run("defaults to the first source", func(t *testing.T) {
		fetcher := &mocks.FeedFetcherMock{
			FetchFunc: func(ctx context.Context, src feed.Source) ([]domain.FeedItem, error) {
				assert.Equal(t, "hn", src.Name)
				assert.Equal(t, "https://news.ycombinator.com/rss", src.URL)
				return testItems(), nil
			},
		}
		cache := &mocks.SummaryCacheMock{
			GetFunc: func(ctx context.Context, link string) (string, bool) {
				return "", false
			},
		}

		srv := New(testConfig(), Deps{Registry: testRegistry(), Fetcher: fetcher, Cache: cache}, "1.0.0", false)

		req := httptest.NewRequest("GET", "/api/v1/news/feed", http.NoBody)
		w := httptest.NewRecorder()

		srv.newsFeedHandler(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Source string         `json:"source"`
			Items  []feedItemJSON `json:"items"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "hn", resp.Source)
		require.Len(t, resp.Items, 2)
		assert.Equal(t, "First", resp.Items[0].Title)
		assert.Equal(t, "https://example.com/1", resp.Items[0].Link)
	})

	t.Run("attaches cached summaries on switch", func(t *testing.T) {
		fetcher := &mocks.FeedFetcherMock{
			FetchFunc: func(ctx context.Context, src feed.Source) ([]domain.FeedItem, error) {
				assert.Equal(t, "lobsters", src.Name)
				return testItems(), nil
			},
		}
		cache := &mocks.SummaryCacheMock{
			GetFunc: func(ctx context.Context, link string) (string, bool) {
				if link == "https://example.com/1" {
					return "- cached summary", true
				}
				return "", false
			},
		}

		srv := New(testConfig(), Deps{Registry: testRegistry(), Fetcher: fetcher, Cache: cache}, "1.0.0", false)

		req := httptest.NewRequest("GET", "/api/v1/news/feed?source=lobsters", http.NoBody)
		w := httptest.NewRecorder()

		srv.newsFeedHandler(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Source string         `json:"source"`
			Items  []feedItemJSON `json:"items"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "lobsters", resp.Source)
		require.Len(t, resp.Items, 2)
		assert.Equal(t, "- cached summary", resp.Items[0].Summary)
		assert.Empty(t, resp.Items[1].Summary)
		assert.Len(t, cache.GetCalls(), 2, "every fetched item is checked against the cache")
	})

	t.Run("switching stops the previous worker", func(t *testing.T) {
		worker := &mocks.BacklogWorkerMock{
			StopFunc: func() {},
		}
		fetcher := &mocks.FeedFetcherMock{
			FetchFunc: func(ctx context.Context, src feed.Source) ([]domain.FeedItem, error) {
				return testItems(), nil
			},
		}
		cache := &mocks.SummaryCacheMock{
			GetFunc: func(ctx context.Context, link string) (string, bool) { return "", false },
		}

		srv := New(testConfig(), Deps{Registry: testRegistry(), Fetcher: fetcher, Cache: cache}, "1.0.0", false)
		srv.view.worker = worker

		req := httptest.NewRequest("GET", "/api/v1/news/feed?source=lobsters", http.NoBody)
		w := httptest.NewRecorder()

		srv.newsFeedHandler(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, worker.StopCalls(), 1)
		assert.Nil(t, srv.view.worker)
	})

	t.Run("unknown source", func(t *testing.T) {
		srv := New(testConfig(), Deps{Registry: testRegistry()}, "1.0.0", false)

		req := httptest.NewRequest("GET", "/api/v1/news/feed?source=nope", http.NoBody)
		w := httptest.NewRecorder()

		srv.newsFeedHandler(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), `unknown source \"nope\"`)
	})

	t.Run("no sources configured", func(t *testing.T) {
		srv := New(testConfig(), Deps{Registry: feed.NewRegistry(nil)}, "1.0.0", false)

		req := httptest.NewRequest("GET", "/api/v1/news/feed", http.NoBody)
		w := httptest.NewRecorder()

		srv.newsFeedHandler(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "no feed sources configured")
	})

	t.Run("fetch failure", func(t *testing.T) {
		fetcher := &mocks.FeedFetcherMock{
			FetchFunc: func(ctx context.Context, src feed.Source) ([]domain.FeedItem, error) {
				return nil, errors.New("connection timed out")
			},
		}

		srv := New(testConfig(), Deps{Registry: testRegistry(), Fetcher: fetcher}, "1.0.0", false)

		req := httptest.NewRequest("GET", "/api/v1/news/feed?source=hn", http.NoBody)
		w := httptest.NewRecorder()

		srv.newsFeedHandler(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "connection timed out")
	})
}

// updatesResponse decodes the poll endpoint's payload
type updatesResponse struct {
	Source      string            `json:"source"`
	State       string            `json:"state"`
	AutoSummary bool              `json:"auto_summary"`
	Model       string            `json:"model"`
	Pending     int               `json:"pending"`
	Summaries   map[string]string `json:"summaries"`
}

func TestServer_updatesHandler(t *testing.T) {
	pollUpdates := func(t *testing.T, srv *Server) updatesResponse {
		req := httptest.NewRequest("GET", "/api/v1/news/updates", http.NoBody)
		w := httptest.NewRecorder()
		srv.updatesHandler(w, req)
		require.Equal(t, http.StatusOK, w.Code)

		var resp updatesResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		return resp
	}

	t.Run("empty view polls idle", func(t *testing.T) {
		srv := New(testConfig(), Deps{Prefs: testPrefs(t)}, "1.0.0", false)

		resp := pollUpdates(t, srv)
		assert.Equal(t, "idle", resp.State)
		assert.False(t, resp.AutoSummary)
		assert.Zero(t, resp.Pending)
		assert.Empty(t, resp.Summaries)
	})

	t.Run("spawns a worker for the unsummarized backlog", func(t *testing.T) {
		prefs := testPrefs(t)
		require.NoError(t, prefs.Set(config.PrefAutoSummary, "true"))
		require.NoError(t, prefs.Set(config.PrefDefaultModel, "mistral:latest"))

		worker := &mocks.BacklogWorkerMock{
			StartFunc: func(ctx context.Context, backlog []domain.FeedItem, model string) {},
			StateFunc: func() summary.State { return summary.StateRunning },
		}

		srv := New(testConfig(), Deps{Prefs: prefs, NewWorker: func() BacklogWorker { return worker }}, "1.0.0", false)
		srv.view.source = "hn"
		srv.view.items = testItems()
		srv.view.summaries = map[string]string{"https://example.com/1": "- already done"}

		resp := pollUpdates(t, srv)
		assert.Equal(t, "running", resp.State)
		assert.Equal(t, "mistral:latest", resp.Model)
		assert.Equal(t, 1, resp.Pending)

		calls := worker.StartCalls()
		require.Len(t, calls, 1)
		require.Len(t, calls[0].Backlog, 1)
		assert.Equal(t, "https://example.com/2", calls[0].Backlog[0].Link)
		assert.Equal(t, "mistral:latest", calls[0].Model)
		assert.Equal(t, context.Background(), calls[0].Ctx, "the run must not die with the request")
		assert.Same(t, worker, srv.view.worker)
	})

	t.Run("does not spawn with auto-summary off", func(t *testing.T) {
		spawned := false

		srv := New(testConfig(), Deps{Prefs: testPrefs(t), NewWorker: func() BacklogWorker {
			spawned = true
			return &mocks.BacklogWorkerMock{}
		}}, "1.0.0", false)
		srv.view.items = testItems()
		srv.view.summaries = map[string]string{}

		resp := pollUpdates(t, srv)
		assert.False(t, spawned)
		assert.Equal(t, "idle", resp.State)
		assert.Equal(t, 2, resp.Pending)
	})

	t.Run("does not spawn without a model", func(t *testing.T) {
		prefs := testPrefs(t)
		require.NoError(t, prefs.Set(config.PrefAutoSummary, "true"))

		spawned := false
		srv := New(testConfig(), Deps{Prefs: prefs, NewWorker: func() BacklogWorker {
			spawned = true
			return &mocks.BacklogWorkerMock{}
		}}, "1.0.0", false)
		srv.view.items = testItems()
		srv.view.summaries = map[string]string{}

		resp := pollUpdates(t, srv)
		assert.False(t, spawned)
		assert.Equal(t, 2, resp.Pending)
	})

	t.Run("does not spawn when everything is summarized", func(t *testing.T) {
		prefs := testPrefs(t)
		require.NoError(t, prefs.Set(config.PrefAutoSummary, "true"))
		require.NoError(t, prefs.Set(config.PrefDefaultModel, "mistral:latest"))

		spawned := false
		srv := New(testConfig(), Deps{Prefs: prefs, NewWorker: func() BacklogWorker {
			spawned = true
			return &mocks.BacklogWorkerMock{}
		}}, "1.0.0", false)
		srv.view.items = testItems()
		srv.view.summaries = map[string]string{
			"https://example.com/1": "- one",
			"https://example.com/2": "- two",
		}

		resp := pollUpdates(t, srv)
		assert.False(t, spawned)
		assert.Zero(t, resp.Pending)
		assert.Len(t, resp.Summaries, 2)
	})

	t.Run("drains finished summaries from a live worker", func(t *testing.T) {
		prefs := testPrefs(t)
		require.NoError(t, prefs.Set(config.PrefAutoSummary, "true"))
		require.NoError(t, prefs.Set(config.PrefDefaultModel, "mistral:latest"))

		worker := &mocks.BacklogWorkerMock{
			DrainFunc: func() []domain.SummaryUpdate {
				return []domain.SummaryUpdate{{Link: "https://example.com/1", Summary: "- fresh"}}
			},
			RunningFunc: func() bool { return true },
			StateFunc:   func() summary.State { return summary.StateRunning },
		}

		srv := New(testConfig(), Deps{Prefs: prefs}, "1.0.0", false)
		srv.view.source = "hn"
		srv.view.items = testItems()
		srv.view.summaries = map[string]string{}
		srv.view.worker = worker

		resp := pollUpdates(t, srv)
		assert.Equal(t, "running", resp.State)
		assert.Equal(t, "- fresh", resp.Summaries["https://example.com/1"])
		assert.Equal(t, 1, resp.Pending, "the drained item left the backlog")
		assert.Same(t, worker, srv.view.worker, "a live worker is not replaced")
	})

	t.Run("stops the worker when auto-summary goes off mid-run", func(t *testing.T) {
		worker := &mocks.BacklogWorkerMock{
			DrainFunc:   func() []domain.SummaryUpdate { return nil },
			RunningFunc: func() bool { return true },
			StopFunc:    func() {},
			StateFunc:   func() summary.State { return summary.StateStopping },
		}

		srv := New(testConfig(), Deps{Prefs: testPrefs(t)}, "1.0.0", false)
		srv.view.items = testItems()
		srv.view.summaries = map[string]string{}
		srv.view.worker = worker

		resp := pollUpdates(t, srv)
		assert.Len(t, worker.StopCalls(), 1)
		assert.Equal(t, "stopping", resp.State)
	})

	t.Run("final drain of a finished worker", func(t *testing.T) {
		prefs := testPrefs(t)
		require.NoError(t, prefs.Set(config.PrefAutoSummary, "true"))
		require.NoError(t, prefs.Set(config.PrefDefaultModel, "mistral:latest"))

		worker := &mocks.BacklogWorkerMock{
			DrainFunc: func() []domain.SummaryUpdate {
				return []domain.SummaryUpdate{
					{Link: "https://example.com/1", Summary: "- one"},
					{Link: "https://example.com/2", Summary: "- two"},
				}
			},
			RunningFunc: func() bool { return false },
			StateFunc:   func() summary.State { return summary.StateStopped },
		}

		srv := New(testConfig(), Deps{Prefs: prefs}, "1.0.0", false)
		srv.view.items = testItems()
		srv.view.summaries = map[string]string{}
		srv.view.worker = worker

		resp := pollUpdates(t, srv)
		assert.Equal(t, "stopped", resp.State)
		assert.Zero(t, resp.Pending)
		assert.Len(t, resp.Summaries, 2)
	})
}

func TestServer_summarizeHandler(t *testing.T) {
	t.Run("summarizes posted text", func(t *testing.T) {
		summarizer := &mocks.SummarizerMock{
			SummarizeFunc: func(ctx context.Context, req summary.Request) string {
				assert.Equal(t, "https://example.com/1", req.Link)
				assert.Equal(t, "full article text", req.Text)
				assert.Equal(t, "mistral:latest", req.Model)
				assert.True(t, req.ForceRefresh)
				return "- the point"
			},
		}

		srv := New(testConfig(), Deps{Summarize: summarizer, Prefs: testPrefs(t)}, "1.0.0", false)
		srv.view.summaries = map[string]string{}

		body := `{"link": "https://example.com/1", "text": "full article text", "model": "mistral:latest", "force": true}`
		req := httptest.NewRequest("POST", "/api/v1/news/summarize", strings.NewReader(body))
		w := httptest.NewRecorder()

		srv.summarizeHandler(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp summarizeResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "- the point", resp.Summary)
		assert.Equal(t, "mistral:latest", resp.Model)
		assert.Equal(t, "https://example.com/1", resp.Link)

		assert.Equal(t, "- the point", srv.view.summaries["https://example.com/1"],
			"a foreground summary lands in the view")
	})

	t.Run("extracts text when only a link is posted", func(t *testing.T) {
		extractor := &mocks.PageExtractorMock{
			ExtractFunc: func(ctx context.Context, url string) content.Result {
				assert.Equal(t, "https://example.com/2", url)
				return content.Result{Text: "extracted body"}
			},
		}
		summarizer := &mocks.SummarizerMock{
			SummarizeFunc: func(ctx context.Context, req summary.Request) string {
				assert.Equal(t, "extracted body", req.Text)
				return "- extracted point"
			},
		}

		srv := New(testConfig(), Deps{Extractor: extractor, Summarize: summarizer, Prefs: testPrefs(t)}, "1.0.0", false)

		body := `{"link": "https://example.com/2", "model": "mistral:latest"}`
		req := httptest.NewRequest("POST", "/api/v1/news/summarize", strings.NewReader(body))
		w := httptest.NewRecorder()

		srv.summarizeHandler(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, extractor.ExtractCalls(), 1)
		assert.Contains(t, w.Body.String(), "- extracted point")
	})

	t.Run("degraded extraction returns the diagnostic", func(t *testing.T) {
		reason := "Could not extract text content. Site structure might be complex."
		extractor := &mocks.PageExtractorMock{
			ExtractFunc: func(ctx context.Context, url string) content.Result {
				return content.Result{Degraded: true, Reason: reason}
			},
		}
		summarizer := &mocks.SummarizerMock{
			SummarizeFunc: func(ctx context.Context, req summary.Request) string {
				return "must not be called"
			},
		}

		srv := New(testConfig(), Deps{Extractor: extractor, Summarize: summarizer, Prefs: testPrefs(t)}, "1.0.0", false)
		srv.view.summaries = map[string]string{}

		body := `{"link": "https://example.com/3", "model": "mistral:latest"}`
		req := httptest.NewRequest("POST", "/api/v1/news/summarize", strings.NewReader(body))
		w := httptest.NewRecorder()

		srv.summarizeHandler(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, summarizer.SummarizeCalls())

		var resp summarizeResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, reason, resp.Summary)
		assert.Empty(t, resp.Model)
		assert.Equal(t, reason, srv.view.summaries["https://example.com/3"],
			"the next poll must not queue the item again")
	})

	t.Run("falls back to the default model", func(t *testing.T) {
		prefs := testPrefs(t)
		require.NoError(t, prefs.Set(config.PrefDefaultModel, "llama3:8b"))

		summarizer := &mocks.SummarizerMock{
			SummarizeFunc: func(ctx context.Context, req summary.Request) string {
				assert.Equal(t, "llama3:8b", req.Model)
				return "- default model point"
			},
		}

		srv := New(testConfig(), Deps{Summarize: summarizer, Prefs: prefs}, "1.0.0", false)

		body := `{"link": "https://example.com/1", "text": "some text"}`
		req := httptest.NewRequest("POST", "/api/v1/news/summarize", strings.NewReader(body))
		w := httptest.NewRecorder()

		srv.summarizeHandler(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, summarizer.SummarizeCalls(), 1)
	})

	t.Run("no model selected", func(t *testing.T) {
		srv := New(testConfig(), Deps{Prefs: testPrefs(t)}, "1.0.0", false)

		body := `{"link": "https://example.com/1", "text": "some text"}`
		req := httptest.NewRequest("POST", "/api/v1/news/summarize", strings.NewReader(body))
		w := httptest.NewRecorder()

		srv.summarizeHandler(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "no model selected")
	})

	t.Run("missing link and text", func(t *testing.T) {
		srv := New(testConfig(), Deps{Prefs: testPrefs(t)}, "1.0.0", false)

		req := httptest.NewRequest("POST", "/api/v1/news/summarize", strings.NewReader(`{"model": "mistral"}`))
		w := httptest.NewRecorder()

		srv.summarizeHandler(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "link or text is required")
	})

	t.Run("invalid payload", func(t *testing.T) {
		srv := New(testConfig(), Deps{}, "1.0.0", false)

		req := httptest.NewRequest("POST", "/api/v1/news/summarize", strings.NewReader("{"))
		w := httptest.NewRecorder()

		srv.summarizeHandler(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestServer_articlesHandler(t *testing.T) {
	now := time.Now()
	articles := &mocks.ArticleStoreMock{
		ListFunc: func(ctx context.Context) ([]domain.SavedArticle, error) {
			return []domain.SavedArticle{
				{ID: 2, Title: "Newer", Link: "https://example.com/2", Summary: "- newer", CreatedAt: now},
				{ID: 1, Title: "Older", Link: "https://example.com/1", Comment: "read later", CreatedAt: now.Add(-time.Hour)},
			}, nil
		},
	}

	srv := New(testConfig(), Deps{Articles: articles}, "1.0.0", false)

	req := httptest.NewRequest("GET", "/api/v1/news/articles", http.NoBody)
	w := httptest.NewRecorder()

	srv.articlesHandler(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Articles []articleJSON `json:"articles"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Articles, 2)
	assert.Equal(t, int64(2), resp.Articles[0].ID)
	assert.Equal(t, "Newer", resp.Articles[0].Title)
	assert.Equal(t, "- newer", resp.Articles[0].Summary)
	assert.Equal(t, "read later", resp.Articles[1].Comment)
}

func TestServer_articlesHandlerError(t *testing.T) {
	articles := &mocks.ArticleStoreMock{
		ListFunc: func(ctx context.Context) ([]domain.SavedArticle, error) {
			return nil, errors.New("database is locked")
		},
	}

	srv := New(testConfig(), Deps{Articles: articles}, "1.0.0", false)

	req := httptest.NewRequest("GET", "/api/v1/news/articles", http.NoBody)
	w := httptest.NewRecorder()

	srv.articlesHandler(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestServer_saveArticleHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		saved := false
		articles := &mocks.ArticleStoreMock{
			SaveFunc: func(ctx context.Context, article *domain.SavedArticle) error {
				saved = true
				assert.Equal(t, "Big News", article.Title)
				assert.Equal(t, "https://example.com/big", article.Link)
				assert.Equal(t, "- big summary", article.Summary)
				assert.Equal(t, "worth keeping", article.Comment)
				return nil
			},
			GetFunc: func(ctx context.Context, link string) (*domain.SavedArticle, error) {
				return &domain.SavedArticle{
					ID:        7,
					Title:     "Big News",
					Link:      link,
					Summary:   "- big summary",
					Comment:   "worth keeping",
					CreatedAt: time.Now(),
				}, nil
			},
		}

		srv := New(testConfig(), Deps{Articles: articles}, "1.0.0", false)

		body := `{"title": "Big News", "link": "https://example.com/big", "summary": "- big summary", "comment": "worth keeping"}`
		req := httptest.NewRequest("POST", "/api/v1/news/articles", strings.NewReader(body))
		w := httptest.NewRecorder()

		srv.saveArticleHandler(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.True(t, saved)

		var resp articleJSON
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, int64(7), resp.ID)
		assert.Equal(t, "Big News", resp.Title)
	})

	t.Run("missing required fields", func(t *testing.T) {
		srv := New(testConfig(), Deps{}, "1.0.0", false)

		req := httptest.NewRequest("POST", "/api/v1/news/articles", strings.NewReader(`{"title": "No Link"}`))
		w := httptest.NewRecorder()

		srv.saveArticleHandler(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "title and link are required")
	})

	t.Run("invalid payload", func(t *testing.T) {
		srv := New(testConfig(), Deps{}, "1.0.0", false)

		req := httptest.NewRequest("POST", "/api/v1/news/articles", strings.NewReader("not json"))
		w := httptest.NewRecorder()

		srv.saveArticleHandler(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("store failure", func(t *testing.T) {
		articles := &mocks.ArticleStoreMock{
			SaveFunc: func(ctx context.Context, article *domain.SavedArticle) error {
				return errors.New("database is locked")
			},
		}

		srv := New(testConfig(), Deps{Articles: articles}, "1.0.0", false)

		body := `{"title": "Big News", "link": "https://example.com/big"}`
		req := httptest.NewRequest("POST", "/api/v1/news/articles", strings.NewReader(body))
		w := httptest.NewRecorder()

		srv.saveArticleHandler(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("reload failure still reports saved", func(t *testing.T) {
		articles := &mocks.ArticleStoreMock{
			SaveFunc: func(ctx context.Context, article *domain.SavedArticle) error {
				return nil
			},
			GetFunc: func(ctx context.Context, link string) (*domain.SavedArticle, error) {
				return nil, errors.New("database is locked")
			},
		}

		srv := New(testConfig(), Deps{Articles: articles}, "1.0.0", false)

		body := `{"title": "Big News", "link": "https://example.com/big"}`
		req := httptest.NewRequest("POST", "/api/v1/news/articles", strings.NewReader(body))
		w := httptest.NewRecorder()

		srv.saveArticleHandler(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "saved")
	})
}

func TestServer_deleteArticleHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		articles := &mocks.ArticleStoreMock{
			DeleteFunc: func(ctx context.Context, articleID int64) error {
				assert.Equal(t, int64(42), articleID)
				return nil
			},
		}

		srv := New(testConfig(), Deps{Articles: articles}, "1.0.0", false)

		req := httptest.NewRequest("DELETE", "/api/v1/news/articles/42", http.NoBody)
		req.SetPathValue("id", "42")
		w := httptest.NewRecorder()

		srv.deleteArticleHandler(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, articles.DeleteCalls(), 1)

		var resp map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "deleted", resp["result"])
	})

	t.Run("bad id", func(t *testing.T) {
		srv := New(testConfig(), Deps{}, "1.0.0", false)

		req := httptest.NewRequest("DELETE", "/api/v1/news/articles/abc", http.NoBody)
		req.SetPathValue("id", "abc")
		w := httptest.NewRecorder()

		srv.deleteArticleHandler(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "invalid article ID")
	})

	t.Run("store failure", func(t *testing.T) {
		articles := &mocks.ArticleStoreMock{
			DeleteFunc: func(ctx context.Context, articleID int64) error {
				return errors.New("database is locked")
			},
		}

		srv := New(testConfig(), Deps{Articles: articles}, "1.0.0", false)

		req := httptest.NewRequest("DELETE", "/api/v1/news/articles/42", http.NoBody)
		req.SetPathValue("id", "42")
		w := httptest.NewRecorder()

		srv.deleteArticleHandler(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
