package booking

import (
	"errors"
	"time"

	"github.com/wolfman30/slot-booking/internal/calendar"
	"github.com/wolfman30/slot-booking/internal/observability/metrics"
	"github.com/wolfman30/slot-booking/pkg/logging"
)

// PageConfig holds the collaborators shared by every booking page.
type PageConfig struct {
	Sender   Sender
	Location *time.Location
	Now      func() time.Time
	Logger   *logging.Logger
	Metrics  *metrics.BookingMetrics
}

// Page is one visitor's booking view: the local calendar model, the slot
// selector over it and the detail modal the selector opens.
type Page struct {
	Calendar *calendar.Model
	Grid     calendar.Grid
	Selector *calendar.Selector
	Modal    *Modal

	metrics *metrics.BookingMetrics
}

// Slot is one grid cell and whether it can currently be selected.
type Slot struct {
	calendar.TimeRange
	Available bool `json:"available"`
}

// NewPage wires a fresh, empty calendar to its selector and modal.
func NewPage(cfg PageConfig) *Page {
	loc := cfg.Location
	if loc == nil {
		loc = time.Local
	}
	model := calendar.NewModel()
	selector := calendar.NewSelector(model, loc, cfg.Now)
	modal := NewModal(model, cfg.Sender, loc, cfg.Logger, cfg.Metrics)
	selector.OnSelect(modal.Open)

	return &Page{
		Calendar: model,
		Grid:     calendar.DefaultGrid(loc),
		Selector: selector,
		Modal:    modal,
		metrics:  cfg.Metrics,
	}
}

// Select applies a drag selection from the grid. Accepted selections open the
// modal; the grid keeps no highlight either way.
func (p *Page) Select(r calendar.TimeRange) (ModalState, error) {
	if !p.Grid.Aligned(r) {
		p.metrics.ObserveSelection(selectionResult(calendar.ErrOutsideGrid))
		return ModalState{}, calendar.ErrOutsideGrid
	}
	if _, err := p.Selector.Select(r); err != nil {
		p.metrics.ObserveSelection(selectionResult(err))
		return ModalState{}, err
	}
	p.metrics.ObserveSelection(selectionResult(nil))
	return p.Modal.State(), nil
}

// Slots lists the grid cells of day with their availability.
func (p *Page) Slots(day time.Time) []Slot {
	cells := p.Grid.Slots(day)
	out := make([]Slot, 0, len(cells))
	for _, c := range cells {
		out = append(out, Slot{TimeRange: c, Available: p.Selector.Allow(c) == nil})
	}
	return out
}

// Events returns the calendar events visible in the week containing anchor.
func (p *Page) Events(anchor time.Time) []calendar.Event {
	days := p.Grid.Week(anchor)
	window := calendar.TimeRange{Start: days[0], End: days[len(days)-1].AddDate(0, 0, 1)}
	return p.Calendar.Between(window)
}

func selectionResult(err error) string {
	switch {
	case err == nil:
		return "accepted"
	case errors.Is(err, calendar.ErrPastDate):
		return "past"
	case errors.Is(err, calendar.ErrOverlap):
		return "overlap"
	case errors.Is(err, calendar.ErrOutsideGrid):
		return "outside_grid"
	default:
		return "invalid"
	}
}
