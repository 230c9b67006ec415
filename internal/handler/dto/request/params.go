package request

import (
	"strconv"
	"strings"

	"hotel-portal/internal/domain/calendar"
	"hotel-portal/internal/pkg/errs"
	"hotel-portal/internal/usecase/queries"
)

var (
	ErrInvalidID    = errs.Validation("Invalid id.")
	ErrInvalidDate  = errs.Validation("Please enter a valid date.")
	ErrInvalidClock = errs.Validation("Please enter a valid time.")
)

// ParseID reads a positive numeric path parameter.
func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}

// optionalDate treats an empty parameter as no filter.
func optionalDate(raw string) (calendar.Date, error) {
	if strings.TrimSpace(raw) == "" {
		return calendar.Date{}, nil
	}
	d, err := calendar.ParseDate(raw)
	if err != nil {
		return calendar.Date{}, errs.Invalidf(ErrInvalidDate, "Please enter a valid date: %s", raw)
	}
	return d, nil
}

func optionalClock(raw string) (calendar.ClockTime, error) {
	if strings.TrimSpace(raw) == "" {
		return calendar.ClockTime{}, nil
	}
	t, err := calendar.ParseClockTime(raw)
	if err != nil {
		return calendar.ClockTime{}, errs.Invalidf(ErrInvalidClock, "Please enter a valid time: %s", raw)
	}
	return t, nil
}

type PageQuery struct {
	Page int `form:"page"`
	Size int `form:"size"`
}

func (q *PageQuery) ToQuery() queries.PageRequest {
	return queries.PageRequest{Page: q.Page, Size: q.Size}.Normalize()
}
