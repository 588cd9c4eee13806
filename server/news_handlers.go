package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/homedeck/homedeck/pkg/config"
	"github.com/homedeck/homedeck/pkg/domain"
	"github.com/homedeck/homedeck/pkg/feed"
	"github.com/homedeck/homedeck/pkg/summary"
)

// feedView is the reader's current feed: one source, its fetched items and
// the summaries collected for them so far. At most one background worker is
// alive per view, the updates poll drains it and decides on respawns.
type feedView struct {
	mu        sync.Mutex
	source    string
	items     []domain.FeedItem
	summaries map[string]string
	worker    BacklogWorker
}

// stopWorker signals the live worker, if any, to quit
func (v *feedView) stopWorker() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.worker != nil {
		v.worker.Stop()
	}
}

// feedItemJSON is the wire form of one feed entry with its summary so far
type feedItemJSON struct {
	Title     string `json:"title"`
	Link      string `json:"link"`
	Published string `json:"published"`
	Source    string `json:"source"`
	Summary   string `json:"summary,omitempty"`
}

// itemsJSON renders the view's items with summaries inline, callers hold mu
func (v *feedView) itemsJSON() []feedItemJSON {
	items := make([]feedItemJSON, len(v.items))
	for i, item := range v.items {
		items[i] = feedItemJSON{
			Title:     item.Title,
			Link:      item.Link,
			Published: item.Published,
			Source:    item.Source,
			Summary:   v.summaries[item.Link],
		}
	}
	return items
}

// sourcesHandler lists the configured feed sources and the current one
func (s *Server) sourcesHandler(w http.ResponseWriter, r *http.Request) {
	s.view.mu.Lock()
	current := s.view.source
	s.view.mu.Unlock()

	renderJSON(w, r, http.StatusOK, map[string]interface{}{
		"sources": s.deps.Registry.Names(),
		"current": current,
	})
}

// newsFeedHandler switches the view to a source and returns its items. The
// previous worker is stopped, cached summaries are attached right away.
func (s *Server) newsFeedHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	name := r.URL.Query().Get("source")
	var src feed.Source
	var ok bool
	if name == "" {
		if src, ok = s.deps.Registry.Default(); !ok {
			renderError(w, r, fmt.Errorf("no feed sources configured"), http.StatusNotFound)
			return
		}
	} else if src, ok = s.deps.Registry.Lookup(name); !ok {
		renderError(w, r, fmt.Errorf("unknown source %q", name), http.StatusNotFound)
		return
	}

	items, err := s.deps.Fetcher.Fetch(ctx, src)
	if err != nil {
		log.Printf("[ERROR] failed to fetch feed %s: %v", src.Name, err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	s.view.mu.Lock()
	if s.view.worker != nil {
		// the old backlog is stale once the source switches
		s.view.worker.Stop()
		s.view.worker = nil
	}
	s.view.source = src.Name
	s.view.items = items
	s.view.summaries = make(map[string]string, len(items))
	for _, item := range items {
		if cached, found := s.deps.Cache.Get(ctx, item.Link); found {
			s.view.summaries[item.Link] = cached
		}
	}
	payload := map[string]interface{}{"source": s.view.source, "items": s.view.itemsJSON()}
	s.view.mu.Unlock()

	renderJSON(w, r, http.StatusOK, payload)
}

// updatesHandler is the poll endpoint behind the reader. It drains finished
// summaries from the worker, reports its state and spawns a fresh worker when
// auto-summary is on, a model is selected and unsummarized items remain.
func (s *Server) updatesHandler(w http.ResponseWriter, r *http.Request) {
	auto := s.deps.Prefs.GetBool(config.PrefAutoSummary)
	model, _ := s.deps.Prefs.Get(config.PrefDefaultModel)

	s.view.mu.Lock()

	if s.view.worker != nil {
		for _, u := range s.view.worker.Drain() {
			s.view.summaries[u.Link] = u.Summary
		}
	}

	var pending []domain.FeedItem
	for _, item := range s.view.items {
		if _, done := s.view.summaries[item.Link]; !done {
			pending = append(pending, item)
		}
	}

	alive := s.view.worker != nil && s.view.worker.Running()
	switch {
	case !auto && alive:
		// auto-summary was switched off mid-run
		s.view.worker.Stop()
	case auto && model != "" && len(pending) > 0 && !alive:
		worker := s.deps.NewWorker()
		// detached from the request context, the run has to survive it
		worker.Start(context.Background(), pending, model)
		s.view.worker = worker
	}

	state := summary.StateIdle
	if s.view.worker != nil {
		state = s.view.worker.State()
	}

	summaries := make(map[string]string, len(s.view.summaries))
	for link, text := range s.view.summaries {
		summaries[link] = text
	}
	source := s.view.source
	s.view.mu.Unlock()

	renderJSON(w, r, http.StatusOK, map[string]interface{}{
		"source":       source,
		"state":        state.String(),
		"auto_summary": auto,
		"model":        model,
		"pending":      len(pending),
		"summaries":    summaries,
	})
}

// summarizeResponse is the wire form of a foreground summarize call
type summarizeResponse struct {
	Link    string `json:"link,omitempty"`
	Summary string `json:"summary"`
	Model   string `json:"model,omitempty"`
}

// summarizeHandler summarizes one article on demand. Text is extracted from
// the link when the caller did not send it, force bypasses the cache.
func (s *Server) summarizeHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req struct {
		Link  string `json:"link"`
		Text  string `json:"text"`
		Model string `json:"model"`
		Force bool   `json:"force"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid summarize payload"), http.StatusBadRequest)
		return
	}
	if req.Link == "" && req.Text == "" {
		renderError(w, r, fmt.Errorf("link or text is required"), http.StatusBadRequest)
		return
	}

	model := req.Model
	if model == "" {
		model, _ = s.deps.Prefs.Get(config.PrefDefaultModel)
	}
	if model == "" {
		renderError(w, r, fmt.Errorf("no model selected"), http.StatusBadRequest)
		return
	}

	text := req.Text
	if text == "" {
		res := s.deps.Extractor.Extract(ctx, req.Link)
		if res.Degraded {
			// the diagnostic stands in for the summary, same as the worker
			s.rememberSummary(req.Link, res.Reason)
			renderJSON(w, r, http.StatusOK, summarizeResponse{Link: req.Link, Summary: res.Reason})
			return
		}
		text = res.Text
	}

	result := s.deps.Summarize.Summarize(ctx, summary.Request{
		Link:         req.Link,
		Text:         text,
		Model:        model,
		ForceRefresh: req.Force,
	})
	s.rememberSummary(req.Link, result)

	renderJSON(w, r, http.StatusOK, summarizeResponse{Link: req.Link, Summary: result, Model: model})
}

// rememberSummary reflects a foreground summary into the current view so the
// next poll does not queue the item again
func (s *Server) rememberSummary(link, text string) {
	if link == "" || text == "" {
		return
	}
	s.view.mu.Lock()
	defer s.view.mu.Unlock()
	if s.view.summaries == nil {
		return
	}
	s.view.summaries[link] = text
}

// articleJSON is the wire form of a saved article
type articleJSON struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	Link          string    `json:"link"`
	PublishedDate string    `json:"published_date,omitempty"`
	Summary       string    `json:"summary,omitempty"`
	Content       string    `json:"content,omitempty"`
	Source        string    `json:"source,omitempty"`
	Comment       string    `json:"comment,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

func toArticleJSON(a domain.SavedArticle) articleJSON {
	return articleJSON{
		ID:            a.ID,
		Title:         a.Title,
		Link:          a.Link,
		PublishedDate: a.PublishedDate,
		Summary:       a.Summary,
		Content:       a.Content,
		Source:        a.Source,
		Comment:       a.Comment,
		CreatedAt:     a.CreatedAt,
	}
}

// articlesHandler lists saved articles, most recently saved first
func (s *Server) articlesHandler(w http.ResponseWriter, r *http.Request) {
	articles, err := s.deps.Articles.List(r.Context())
	if err != nil {
		log.Printf("[ERROR] failed to list articles: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	out := make([]articleJSON, len(articles))
	for i, a := range articles {
		out[i] = toArticleJSON(a)
	}
	renderJSON(w, r, http.StatusOK, map[string]interface{}{"articles": out})
}

// saveArticleHandler stores an article with its summary and user comment,
// re-saving the same link replaces the stored copy
func (s *Server) saveArticleHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req struct {
		Title         string `json:"title"`
		Link          string `json:"link"`
		PublishedDate string `json:"published_date"`
		Summary       string `json:"summary"`
		Content       string `json:"content"`
		Source        string `json:"source"`
		Comment       string `json:"comment"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid article payload"), http.StatusBadRequest)
		return
	}
	if req.Title == "" || req.Link == "" {
		renderError(w, r, fmt.Errorf("title and link are required"), http.StatusBadRequest)
		return
	}

	article := &domain.SavedArticle{
		Title:         req.Title,
		Link:          req.Link,
		PublishedDate: req.PublishedDate,
		Summary:       req.Summary,
		Content:       req.Content,
		Source:        req.Source,
		Comment:       req.Comment,
	}
	if err := s.deps.Articles.Save(ctx, article); err != nil {
		log.Printf("[ERROR] failed to save article %s: %v", req.Link, err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	saved, err := s.deps.Articles.Get(ctx, req.Link)
	if err != nil {
		log.Printf("[WARN] failed to reload saved article %s: %v", req.Link, err)
		renderJSON(w, r, http.StatusCreated, map[string]string{"result": "saved"})
		return
	}
	renderJSON(w, r, http.StatusCreated, toArticleJSON(*saved))
}

// deleteArticleHandler removes a saved article by id
func (s *Server) deleteArticleHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		renderError(w, r, fmt.Errorf("invalid article ID"), http.StatusBadRequest)
		return
	}

	if err := s.deps.Articles.Delete(r.Context(), id); err != nil {
		log.Printf("[ERROR] failed to delete article %d: %v", id, err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]string{"result": "deleted"})
}
