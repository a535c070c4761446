package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModelStartsEmpty(t *testing.T) {
	m := NewModel()
	assert.Empty(t, m.Events())
	assert.False(t, m.Conflicts(TimeRange{at(10, 9, 0), at(10, 10, 0)}))
}

func TestModelAddAssignsID(t *testing.T) {
	m := NewModel()
	e, err := m.Add(Event{Title: "a", Start: at(10, 9, 0), End: at(10, 10, 0)})
	require.NoError(t, err)
	assert.NotEmpty(t, e.ID)

	kept, err := m.Add(Event{ID: "fixed", Title: "b", Start: at(10, 11, 0), End: at(10, 12, 0)})
	require.NoError(t, err)
	assert.Equal(t, "fixed", kept.ID)
	assert.Equal(t, 2, m.Len())
}

func TestModelAddRejectsInvalidRange(t *testing.T) {
	m := NewModel()
	_, err := m.Add(Event{Start: at(10, 10, 0), End: at(10, 9, 0)})
	assert.ErrorIs(t, err, ErrInvalidRange)
	assert.Zero(t, m.Len())
}

func TestModelEventsReturnsCopy(t *testing.T) {
	m := NewModel()
	_, err := m.Add(Event{Title: "a", Start: at(10, 9, 0), End: at(10, 10, 0)})
	require.NoError(t, err)

	events := m.Events()
	events[0].Title = "changed"
	assert.Equal(t, "a", m.Events()[0].Title)
}

func TestModelBetween(t *testing.T) {
	m := NewModel()
	_, _ = m.Add(Event{Title: "late", Start: at(11, 15, 0), End: at(11, 16, 0)})
	_, _ = m.Add(Event{Title: "early", Start: at(11, 9, 0), End: at(11, 10, 0)})
	_, _ = m.Add(Event{Title: "other day", Start: at(13, 9, 0), End: at(13, 10, 0)})

	got := m.Between(TimeRange{at(11, 0, 0), at(12, 0, 0)})
	require.Len(t, got, 2)
	assert.Equal(t, "early", got[0].Title)
	assert.Equal(t, "late", got[1].Title)
}
