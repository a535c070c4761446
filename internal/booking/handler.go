package booking

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/wolfman30/slot-booking/internal/calendar"
	"github.com/wolfman30/slot-booking/internal/session"
	"github.com/wolfman30/slot-booking/pkg/logging"
)

// Renderer renders a named HTML page.
type Renderer interface {
	Render(w http.ResponseWriter, name string, data any) error
}

// Handler exposes a visitor's booking page over HTTP.
type Handler struct {
	pages    *session.Store[*Page]
	renderer Renderer
	location *time.Location
	now      func() time.Time
	logger   *logging.Logger
}

// NewHandler creates a booking handler. renderer may be nil when only the
// JSON API is served.
func NewHandler(pages *session.Store[*Page], renderer Renderer, loc *time.Location, logger *logging.Logger) *Handler {
	if pages == nil {
		panic("booking: page store required")
	}
	if loc == nil {
		loc = time.Local
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		pages:    pages,
		renderer: renderer,
		location: loc,
		now:      time.Now,
		logger:   logger,
	}
}

func (h *Handler) page(w http.ResponseWriter, r *http.Request) *Page {
	return h.pages.Load(session.ID(w, r))
}

// pageView is the data behind the booking page template.
type pageView struct {
	Title string
	Week  []dayView
	Modal ModalState
}

type dayView struct {
	Label string
	Slots []slotView
}

type slotView struct {
	Label     string
	Start     string
	End       string
	Available bool
}

// ServePage handles GET / requests
func (h *Handler) ServePage(w http.ResponseWriter, r *http.Request) {
	if h.renderer == nil {
		http.NotFound(w, r)
		return
	}
	page := h.page(w, r)

	anchor, err := h.parseDate(r.URL.Query().Get("date"))
	if err != nil {
		http.Error(w, "invalid date", http.StatusBadRequest)
		return
	}

	view := pageView{Title: "ご予約", Modal: page.Modal.State()}
	for _, day := range page.Grid.Week(anchor) {
		dv := dayView{Label: FormatLongDate(day)}
		for _, s := range page.Slots(day) {
			dv.Slots = append(dv.Slots, slotView{
				Label:     s.Start.Format("15:04"),
				Start:     s.Start.Format(time.RFC3339),
				End:       s.End.Format(time.RFC3339),
				Available: s.Available,
			})
		}
		view.Week = append(view.Week, dv)
	}

	if err := h.renderer.Render(w, "booking.html", view); err != nil {
		h.logger.Error("failed to render booking page", "error", err)
	}
}

// EventsResponse lists the events of one calendar week.
type EventsResponse struct {
	Events []calendar.Event `json:"events"`
	Count  int              `json:"count"`
}

// ListEvents handles GET /api/booking/events requests
func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	anchor, err := h.parseDate(r.URL.Query().Get("date"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	events := h.page(w, r).Events(anchor)
	writeJSON(w, http.StatusOK, EventsResponse{Events: events, Count: len(events)})
}

// SlotsResponse lists the grid cells of one day.
type SlotsResponse struct {
	Date  string `json:"date"`
	Slots []Slot `json:"slots"`
}

// ListSlots handles GET /api/booking/slots requests
func (h *Handler) ListSlots(w http.ResponseWriter, r *http.Request) {
	day, err := h.parseDate(r.URL.Query().Get("date"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, SlotsResponse{
		Date:  day.Format("2006-01-02"),
		Slots: h.page(w, r).Slots(day),
	})
}

// Select handles POST /api/booking/selections requests
func (h *Handler) Select(w http.ResponseWriter, r *http.Request) {
	var sel calendar.TimeRange
	if err := json.NewDecoder(r.Body).Decode(&sel); err != nil {
		h.logger.Error("failed to decode selection", "error", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	state, err := h.page(w, r).Select(sel)
	if err != nil {
		status := http.StatusUnprocessableEntity
		if errors.Is(err, calendar.ErrOverlap) {
			status = http.StatusConflict
		}
		writeError(w, status, err)
		return
	}
	writeJSON(w, http.StatusOK, state)
}

// GetModal handles GET /api/booking/modal requests
func (h *Handler) GetModal(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.page(w, r).Modal.State())
}

// CloseModal handles POST /api/booking/modal/close requests
func (h *Handler) CloseModal(w http.ResponseWriter, r *http.Request) {
	modal := h.page(w, r).Modal
	modal.Close()
	writeJSON(w, http.StatusOK, modal.State())
}

// Submit handles POST /api/booking/reservations requests
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	var details ContactDetails
	if err := json.NewDecoder(r.Body).Decode(&details); err != nil {
		h.logger.Error("failed to decode reservation", "error", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	res, err := h.page(w, r).Modal.Submit(r.Context(), details)
	switch {
	case errors.Is(err, ErrNoSelection), errors.Is(err, ErrSubmitInFlight), errors.Is(err, calendar.ErrOverlap):
		writeError(w, http.StatusConflict, err)
		return
	case err != nil:
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *Handler) parseDate(raw string) (time.Time, error) {
	if raw == "" {
		return calendar.StartOfDay(h.now(), h.location), nil
	}
	day, err := time.ParseInLocation("2006-01-02", raw, h.location)
	if err != nil {
		return time.Time{}, errors.New("date must be YYYY-MM-DD")
	}
	return day, nil
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
