package cancellation

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/wolfman30/slot-booking/internal/form"
	"github.com/wolfman30/slot-booking/internal/session"
	"github.com/wolfman30/slot-booking/pkg/logging"
)

// Renderer renders a named HTML page.
type Renderer interface {
	Render(w http.ResponseWriter, name string, data any) error
}

// Handler exposes the cancellation form over HTTP.
type Handler struct {
	forms    *session.Store[*Form]
	renderer Renderer
	logger   *logging.Logger
}

// NewHandler creates a cancellation handler. renderer may be nil when only
// the JSON API is served.
func NewHandler(forms *session.Store[*Form], renderer Renderer, logger *logging.Logger) *Handler {
	if forms == nil {
		panic("cancellation: form store required")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{forms: forms, renderer: renderer, logger: logger}
}

func (h *Handler) form(w http.ResponseWriter, r *http.Request) *Form {
	return h.forms.Load(session.ID(w, r))
}

// ServePage handles GET /cancel requests
func (h *Handler) ServePage(w http.ResponseWriter, r *http.Request) {
	if h.renderer == nil {
		http.NotFound(w, r)
		return
	}
	view := struct {
		Title string
		Form  State
	}{
		Title: "ご予約のキャンセル",
		Form:  h.form(w, r).State(),
	}
	if err := h.renderer.Render(w, "cancel.html", view); err != nil {
		h.logger.Error("failed to render cancel page", "error", err)
	}
}

// TimeOptionsResponse lists the selectable start times.
type TimeOptionsResponse struct {
	Options []string `json:"options"`
}

// ListTimeOptions handles GET /api/cancellations/time-options requests
func (h *Handler) ListTimeOptions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, TimeOptionsResponse{Options: TimeOptions()})
}

// GetForm handles GET /api/cancellations/form requests
func (h *Handler) GetForm(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.form(w, r).State())
}

// SubmitResponse carries the notice and the form as it looks afterwards.
type SubmitResponse struct {
	Notice form.Notice `json:"notice"`
	Form   State       `json:"form"`
}

// Submit handles POST /api/cancellations requests
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	var in Input
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		h.logger.Error("failed to decode cancellation", "error", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	f := h.form(w, r)
	notice, err := f.Submit(r.Context(), in)
	switch {
	case errors.Is(err, ErrSubmitInFlight):
		writeError(w, http.StatusConflict, err)
		return
	case err != nil:
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, SubmitResponse{Notice: notice, Form: f.State()})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
