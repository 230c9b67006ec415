//go:build unit

package calendar_test

import (
	"encoding/json"
	"net/url"
	"testing"
	"time"

	"github.com/google/go-querystring/query"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-portal/internal/domain/calendar"
)

func TestParseDate(t *testing.T) {
	d, err := calendar.ParseDate("2025-01-03")
	require.NoError(t, err)
	assert.Equal(t, "2025-01-03", d.String())

	withTime, err := calendar.ParseDate("2025-01-03T10:00:00")
	require.NoError(t, err)
	assert.True(t, d.Equal(withTime))

	_, err = calendar.ParseDate("03.01.2025")
	assert.ErrorIs(t, err, calendar.ErrInvalidDate)
}

func TestDate_DaysUntil(t *testing.T) {
	start := calendar.NewDate(2025, time.January, 1)
	assert.Equal(t, 2, start.DaysUntil(calendar.NewDate(2025, time.January, 3)))
	assert.Equal(t, 0, start.DaysUntil(start))
	assert.Equal(t, -1, start.DaysUntil(calendar.NewDate(2024, time.December, 31)))
	assert.Equal(t, 1, calendar.NewDate(2025, time.March, 30).DaysUntil(calendar.NewDate(2025, time.March, 31)))
}

func TestDate_JSON(t *testing.T) {
	type payload struct {
		Start calendar.Date `json:"start"`
		End   calendar.Date `json:"end"`
	}
	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"start":"2025-05-01","end":null}`), &p))
	assert.Equal(t, "2025-05-01", p.Start.String())
	assert.True(t, p.End.IsZero())

	b, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"start":"2025-05-01","end":null}`, string(b))
}

func TestDate_QueryEncoding(t *testing.T) {
	type params struct {
		Date  calendar.Date `url:"date,omitempty"`
		Other calendar.Date `url:"other,omitempty"`
	}
	v, err := query.Values(params{Date: calendar.NewDate(2025, time.June, 7)})
	require.NoError(t, err)
	assert.Equal(t, url.Values{"date": {"2025-06-07"}}, v)
}

func TestClockTime(t *testing.T) {
	from, err := calendar.ParseClockTime("09:30")
	require.NoError(t, err)
	to, err := calendar.ParseClockTime("09:50:00")
	require.NoError(t, err)

	assert.True(t, from.Before(to))
	assert.Equal(t, 20*time.Minute, to.Sub(from))
	assert.Equal(t, "09:50", to.String())

	loc := time.FixedZone("hotel", 3600)
	at := from.On(calendar.NewDate(2025, time.May, 2), loc)
	assert.Equal(t, time.Date(2025, time.May, 2, 9, 30, 0, 0, loc), at)

	_, err = calendar.ParseClockTime("25:00")
	assert.ErrorIs(t, err, calendar.ErrInvalidClock)
	assert.True(t, calendar.ClockTime{}.IsZero())
}

func TestParseDateTime(t *testing.T) {
	loc := time.UTC
	got, err := calendar.ParseDateTime("2025-02-01T08:15:00.123", loc)
	require.NoError(t, err)
	assert.Equal(t, 8, got.Hour())

	got, err = calendar.ParseDateTime("2025-02-01T08:15:00+02:00", loc)
	require.NoError(t, err)
	assert.Equal(t, 6, got.Hour())

	_, err = calendar.ParseDateTime("yesterday", loc)
	assert.ErrorIs(t, err, calendar.ErrInvalidDate)
}
