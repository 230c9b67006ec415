// Package calendar holds the date and wall-clock types exchanged with the
// backend ("2006-01-02" dates and "15:04" or "15:04:05" times).
package calendar

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"hotel-portal/internal/pkg/errs"
)

const (
	DateLayout       = "2006-01-02"
	ClockLayout      = "15:04"
	clockLayoutLong  = "15:04:05"
	dateTimeLayout   = "2006-01-02T15:04:05"
	dateTimeLayoutMs = "2006-01-02T15:04:05.999999999"
)

var (
	ErrInvalidDate  = errs.New("invalid date")
	ErrInvalidClock = errs.New("invalid time of day")
)

// Date is a calendar day without a time zone.
type Date struct {
	t time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf takes the calendar day of t in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return NewDate(y, m, d)
}

func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if len(s) > len(DateLayout) {
		s = s[:len(DateLayout)]
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, errs.Mark(errs.Wrapf(err, "parse date %q", s), ErrInvalidDate)
	}
	return Date{t: t}, nil
}

func (d Date) IsZero() bool { return d.t.IsZero() }

func (d Date) Before(o Date) bool { return d.t.Before(o.t) }

func (d Date) After(o Date) bool { return d.t.After(o.t) }

func (d Date) Equal(o Date) bool { return d.t.Equal(o.t) }

func (d Date) Compare(o Date) int { return d.t.Compare(o.t) }

func (d Date) AddDays(n int) Date { return Date{t: d.t.AddDate(0, 0, n)} }

func (d Date) Weekday() time.Weekday { return d.t.Weekday() }

// DaysUntil counts whole days from d to o; negative when o is earlier.
func (d Date) DaysUntil(o Date) int {
	return int(o.t.Sub(d.t).Hours() / 24)
}

// In returns midnight of d in loc.
func (d Date) In(loc *time.Location) time.Time {
	return time.Date(d.t.Year(), d.t.Month(), d.t.Day(), 0, 0, 0, 0, loc)
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil || s == "" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// EncodeValues lets go-querystring encode dates as yyyy-MM-dd.
func (d Date) EncodeValues(key string, v *url.Values) error {
	if !d.IsZero() {
		v.Set(key, d.String())
	}
	return nil
}

// ClockTime is a wall-clock time of day with minute precision.
type ClockTime struct {
	minutes int
	set     bool
}

func NewClockTime(hour, minute int) ClockTime {
	return ClockTime{minutes: hour*60 + minute, set: true}
}

// ClockOf takes the time of day of t.
func ClockOf(t time.Time) ClockTime {
	return NewClockTime(t.Hour(), t.Minute())
}

// ParseClockTime accepts HH:MM and HH:MM:SS.
func ParseClockTime(s string) (ClockTime, error) {
	s = strings.TrimSpace(s)
	layout := ClockLayout
	if strings.Count(s, ":") == 2 {
		layout = clockLayoutLong
	}
	t, err := time.Parse(layout, s)
	if err != nil {
		return ClockTime{}, errs.Mark(errs.Wrapf(err, "parse time %q", s), ErrInvalidClock)
	}
	return NewClockTime(t.Hour(), t.Minute()), nil
}

func (c ClockTime) IsZero() bool { return !c.set }

func (c ClockTime) Hour() int { return c.minutes / 60 }

func (c ClockTime) Minute() int { return c.minutes % 60 }

func (c ClockTime) Before(o ClockTime) bool { return c.minutes < o.minutes }

// Sub returns c - o.
func (c ClockTime) Sub(o ClockTime) time.Duration {
	return time.Duration(c.minutes-o.minutes) * time.Minute
}

// On places c on day d in loc.
func (c ClockTime) On(d Date, loc *time.Location) time.Time {
	return d.In(loc).Add(time.Duration(c.minutes) * time.Minute)
}

func (c ClockTime) String() string {
	if !c.set {
		return ""
	}
	return fmt.Sprintf("%02d:%02d", c.Hour(), c.Minute())
}

func (c ClockTime) MarshalJSON() ([]byte, error) {
	if !c.set {
		return []byte("null"), nil
	}
	return json.Marshal(c.String())
}

func (c *ClockTime) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil || s == "" {
		*c = ClockTime{}
		return nil
	}
	parsed, err := ParseClockTime(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseDateTime reads the backend's LocalDateTime format in loc. Offsets,
// when present, are honored.
func ParseDateTime(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.In(loc), nil
	}
	for _, layout := range []string{dateTimeLayoutMs, dateTimeLayout} {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errs.Mark(errs.Newf("parse date-time %q", s), ErrInvalidDate)
}
