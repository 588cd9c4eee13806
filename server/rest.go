package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/homedeck/homedeck/pkg/config"
)

// statusHandler returns server status along with the model server's health,
// its installed models and the gpu inventory
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	available, message := s.deps.Model.Check(ctx)

	var models []string
	if available {
		var err error
		if models, err = s.deps.Model.Models(ctx); err != nil {
			log.Printf("[WARN] failed to list models: %v", err)
		}
	}

	status := map[string]interface{}{
		"status":  "ok",
		"version": s.version,
		"time":    time.Now().UTC(),
		"model": map[string]interface{}{
			"available": available,
			"message":   message,
			"models":    models,
			"gpus":      s.deps.Model.GPUs(ctx),
		},
	}
	renderJSON(w, r, http.StatusOK, status)
}

// settingsHandler returns the whole preferences document
func (s *Server) settingsHandler(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, r, http.StatusOK, map[string]interface{}{"settings": s.deps.Prefs.All()})
}

// updateSettingsHandler merges the posted keys into the preferences document
func (s *Server) updateSettingsHandler(w http.ResponseWriter, r *http.Request) {
	var updates map[string]string
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		renderError(w, r, fmt.Errorf("invalid settings payload"), http.StatusBadRequest)
		return
	}

	for key, value := range updates {
		if err := s.deps.Prefs.Set(key, value); err != nil {
			log.Printf("[ERROR] failed to store setting %s: %v", key, err)
			renderError(w, r, err, http.StatusInternalServerError)
			return
		}
	}

	// turning auto-summary off takes effect right away
	if updates[config.PrefAutoSummary] == "false" {
		s.view.stopWorker()
	}

	renderJSON(w, r, http.StatusOK, map[string]interface{}{"settings": s.deps.Prefs.All()})
}

// usageHandler reports today's model traffic counters
func (s *Server) usageHandler(w http.ResponseWriter, r *http.Request) {
	snap := s.deps.Usage.Snapshot()
	renderJSON(w, r, http.StatusOK, map[string]interface{}{
		"date":        snap.Date,
		"rx_bytes":    snap.RxBytes,
		"tx_bytes":    snap.TxBytes,
		"total_bytes": snap.TotalBytes,
	})
}
