package server

import (
	"errors"
	"log"
	"net/http"

	"github.com/homedeck/homedeck/pkg/power"
)

// devicesHandler probes all configured devices and returns their statuses
func (s *Server) devicesHandler(w http.ResponseWriter, r *http.Request) {
	statuses := s.deps.Power.Statuses(r.Context())
	renderJSON(w, r, http.StatusOK, map[string]interface{}{"devices": statuses})
}

// wakeHandler sends the wake-on-lan packet to a device
func (s *Server) wakeHandler(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	if err := s.deps.Power.Wake(name); err != nil {
		log.Printf("[ERROR] failed to wake %s: %v", name, err)
		renderError(w, r, err, powerErrorCode(err))
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]string{"result": "wake sent", "device": name})
}

// shutdownHandler halts a device over ssh
func (s *Server) shutdownHandler(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	if err := s.deps.Power.Shutdown(r.Context(), name); err != nil {
		log.Printf("[ERROR] failed to shut down %s: %v", name, err)
		renderError(w, r, err, powerErrorCode(err))
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]string{"result": "shutdown sent", "device": name})
}

// resetHandler drops a device's pending action window
func (s *Server) resetHandler(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	if err := s.deps.Power.Reset(name); err != nil {
		renderError(w, r, err, powerErrorCode(err))
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]string{"result": "reset", "device": name})
}

func powerErrorCode(err error) int {
	if errors.Is(err, power.ErrUnknownDevice) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
