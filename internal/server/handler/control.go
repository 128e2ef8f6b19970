// Package handler provides the HTTP handlers for the control API.
package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"prwatch/internal/core"
	"prwatch/internal/engine"
	"prwatch/internal/menu"
	"prwatch/internal/util"
)

// Controller is the slice of the poller the control API needs.
type Controller interface {
	PullRequests() []core.PullRequest
	RefreshNow()
}

// ControlHandler serves menu reads and user actions.
type ControlHandler struct {
	ctrl    Controller
	markers *engine.Markers
	openURL func(string) error
	logger  *slog.Logger
}

// NewControlHandler creates a control handler.
func NewControlHandler(ctrl Controller, markers *engine.Markers, logger *slog.Logger) *ControlHandler {
	return &ControlHandler{
		ctrl:    ctrl,
		markers: markers,
		openURL: util.OpenBrowser,
		logger:  logger,
	}
}

// Menu returns the rendered menu for the most recent poll cycle.
func (h *ControlHandler) Menu(w http.ResponseWriter, _ *http.Request) {
	m := menu.Build(h.ctrl.PullRequests(), h.markers)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(m); err != nil {
		h.logger.Error("failed to encode menu", "error", err)
	}
}

// Refresh requests an out-of-band poll and returns immediately.
func (h *ControlHandler) Refresh(w http.ResponseWriter, _ *http.Request) {
	h.ctrl.RefreshNow()
	w.WriteHeader(http.StatusAccepted)
	_, _ = fmt.Fprint(w, "Refresh queued")
}

// Seen clears all attention markers.
func (h *ControlHandler) Seen(w http.ResponseWriter, _ *http.Request) {
	h.markers.MarkAllSeen()
	w.WriteHeader(http.StatusNoContent)
}

type openRequest struct {
	URL string `json:"url"`
}

// Open acknowledges a pull request and opens it in the browser. Only URLs
// present in the current menu are accepted.
func (h *ControlHandler) Open(w http.ResponseWriter, r *http.Request) {
	var req openRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.URL == "" {
		http.Error(w, "Missing or invalid url", http.StatusBadRequest)
		return
	}

	if !h.knownURL(req.URL) {
		http.Error(w, "Unknown pull request", http.StatusNotFound)
		return
	}

	h.markers.Acknowledge(req.URL)

	if err := h.openURL(req.URL); err != nil {
		h.logger.Error("failed to open browser", "error", err, "url", req.URL)
		http.Error(w, "Failed to open browser", http.StatusInternalServerError)
		return
	}

	h.logger.Info("opened pull request", "url", req.URL)
	w.WriteHeader(http.StatusNoContent)
}

func (h *ControlHandler) knownURL(url string) bool {
	for _, pr := range h.ctrl.PullRequests() {
		if pr.URL == url {
			return true
		}
	}
	return false
}
