package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var tokyo = time.FixedZone("JST", 9*60*60)

func at(day, hour, min int) time.Time {
	return time.Date(2024, time.June, day, hour, min, 0, 0, tokyo)
}

func fixedNow(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestSelectorAllow(t *testing.T) {
	model := NewModel()
	_, err := model.Add(Event{Title: "booked", Start: at(10, 9, 0), End: at(10, 10, 0)})
	require.NoError(t, err)
	_, err = model.Add(Event{Title: "shade", Start: at(10, 12, 0), End: at(10, 14, 0), Display: DisplayBackground})
	require.NoError(t, err)

	sel := NewSelector(model, tokyo, fixedNow(at(10, 15, 30)))

	tests := []struct {
		name string
		r    TimeRange
		want error
	}{
		{"earlier today is still allowed", TimeRange{at(10, 7, 0), at(10, 8, 0)}, nil},
		{"yesterday", TimeRange{at(9, 20, 0), at(9, 20, 30)}, ErrPastDate},
		{"exact overlap", TimeRange{at(10, 9, 0), at(10, 10, 0)}, ErrOverlap},
		{"partial overlap at start", TimeRange{at(10, 8, 30), at(10, 9, 30)}, ErrOverlap},
		{"contains event", TimeRange{at(10, 8, 0), at(10, 11, 0)}, ErrOverlap},
		{"touching end is free", TimeRange{at(10, 10, 0), at(10, 10, 30)}, nil},
		{"touching start is free", TimeRange{at(10, 8, 0), at(10, 9, 0)}, nil},
		{"background event ignored", TimeRange{at(10, 12, 30), at(10, 13, 30)}, nil},
		{"empty range", TimeRange{at(10, 11, 0), at(10, 11, 0)}, ErrInvalidRange},
		{"reversed range", TimeRange{at(10, 11, 0), at(10, 10, 30)}, ErrInvalidRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := sel.Allow(tt.r)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestSelectorAllowMatchesOverlapRule(t *testing.T) {
	now := at(10, 0, 0)
	existing := TimeRange{at(12, 10, 0), at(12, 11, 0)}
	model := NewModel()
	_, err := model.Add(Event{Start: existing.Start, End: existing.End})
	require.NoError(t, err)
	sel := NewSelector(model, tokyo, fixedNow(now))

	for start := 7 * 60; start < 21*60; start += 30 {
		for end := start + 30; end <= 21*60; end += 30 {
			b := TimeRange{at(12, start/60, start%60), at(12, end/60, end%60)}
			overlap := b.Start.Before(existing.End) && b.End.After(existing.Start)
			err := sel.Allow(b)
			if overlap {
				assert.ErrorIs(t, err, ErrOverlap, "range %v", b)
			} else {
				assert.NoError(t, err, "range %v", b)
			}
		}
	}
}

func TestSelectorSelectInvokesHandler(t *testing.T) {
	model := NewModel()
	sel := NewSelector(model, tokyo, fixedNow(at(10, 8, 0)))

	var got []TimeRange
	sel.OnSelect(func(r TimeRange) { got = append(got, r) })

	r := TimeRange{at(11, 9, 0), at(11, 10, 0)}
	accepted, err := sel.Select(r)
	require.NoError(t, err)
	assert.True(t, accepted.Start.Equal(r.Start))
	require.Len(t, got, 1)

	_, err = sel.Select(TimeRange{at(9, 9, 0), at(9, 10, 0)})
	assert.ErrorIs(t, err, ErrPastDate)
	assert.Len(t, got, 1, "rejected selection must not reach the handler")
	assert.Zero(t, model.Len(), "selecting never mutates the calendar")
}

func TestSelectorUsesLocalMidnight(t *testing.T) {
	// 00:30 JST on the 10th is still the 9th in UTC.
	sel := NewSelector(NewModel(), tokyo, fixedNow(at(10, 0, 30)))
	assert.NoError(t, sel.Allow(TimeRange{at(10, 0, 0), at(10, 0, 30)}))
	assert.ErrorIs(t, sel.Allow(TimeRange{at(9, 23, 30), at(10, 0, 0)}), ErrPastDate)
}
