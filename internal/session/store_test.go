package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type counter struct{ n int }

func TestStoreLoadCreatesOnce(t *testing.T) {
	built := 0
	s := NewStore(time.Hour, func() *counter {
		built++
		return &counter{}
	})

	a := s.Load("a")
	a.n = 5
	assert.Same(t, a, s.Load("a"))
	assert.Equal(t, 1, built)

	b := s.Load("b")
	assert.NotSame(t, a, b)
	assert.Equal(t, 2, s.Len())
}

func TestStoreExpiry(t *testing.T) {
	now := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	s := NewStore(10*time.Minute, func() *counter { return &counter{} })
	s.now = func() time.Time { return now }

	s.Load("a")
	s.Load("b")

	now = now.Add(5 * time.Minute)
	kept := s.Load("b")

	now = now.Add(6 * time.Minute)
	assert.Equal(t, 1, s.Sweep())
	assert.Equal(t, 1, s.Len())

	now = now.Add(11 * time.Minute)
	assert.NotSame(t, kept, s.Load("b"), "expired entry is rebuilt on load")
}

func TestIDIssuesCookie(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	id := ID(rec, req)
	require.NotEmpty(t, id)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, CookieName, cookies[0].Name)
	assert.Equal(t, id, cookies[0].Value)
}

func TestIDReusesCookie(t *testing.T) {
	first := httptest.NewRecorder()
	id := ID(first, httptest.NewRequest(http.MethodGet, "/", nil))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: id})

	assert.Equal(t, id, ID(rec, req))
	assert.Empty(t, rec.Result().Cookies())
}

func TestIDReplacesGarbageCookie(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "not-a-uuid"})

	id := ID(rec, req)
	assert.NotEqual(t, "not-a-uuid", id)
	assert.Len(t, rec.Result().Cookies(), 1)
}
