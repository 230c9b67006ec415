package activity

import (
	"strings"
	"time"
	"unicode/utf8"

	"hotel-portal/internal/pkg/errs"
)

const (
	MinNameLength        = 3
	MaxNameLength        = 100
	MinDescriptionLength = 3
	MaxDescriptionLength = 1000
)

var (
	ErrInvalidName        = errs.Validation("Name must be between 3 and 100 characters.")
	ErrInvalidDescription = errs.Validation("Description must be between 3 and 1000 characters.")
	ErrInvalidCapacity    = errs.Validation("Capacity must be at least 1.")
	ErrInvalidPrice       = errs.Validation("Price must be at least 1.")
	ErrInvalidCategory    = errs.Validation("Unknown category.")
)

// Activity is the read model of an activity with its schedule.
type Activity struct {
	ID               int64
	Name             string
	Description      string
	Capacity         int
	Price            float64
	MainImage        string
	AdditionalImages []string
	Categories       []Category
	Timeslots        []Timeslot
}

// Form is a validated create or update payload.
type Form struct {
	Name        string
	Description string
	Capacity    int
	Price       float64
	Categories  []Category
	Timeslots   []Timeslot
}

type FormInput struct {
	Name        string
	Description string
	Capacity    int
	Price       float64
	Categories  []string
	Schedule    ScheduleInput
}

// NewForm validates field constraints first and the schedule last.
func NewForm(in FormInput, now time.Time) (Form, error) {
	name := strings.TrimSpace(in.Name)
	if n := utf8.RuneCountInString(name); n < MinNameLength || n > MaxNameLength {
		return Form{}, ErrInvalidName
	}
	desc := strings.TrimSpace(in.Description)
	if n := utf8.RuneCountInString(desc); n < MinDescriptionLength || n > MaxDescriptionLength {
		return Form{}, ErrInvalidDescription
	}
	if in.Capacity < 1 {
		return Form{}, ErrInvalidCapacity
	}
	if in.Price < 1 {
		return Form{}, ErrInvalidPrice
	}
	cats := make([]Category, 0, len(in.Categories))
	for _, c := range in.Categories {
		cat := Category(strings.TrimSpace(c))
		if !cat.IsValid() {
			return Form{}, errs.Invalidf(ErrInvalidCategory, "Unknown category: %s.", c)
		}
		cats = append(cats, cat)
	}
	slots, err := BuildSchedule(in.Schedule, now)
	if err != nil {
		return Form{}, err
	}
	return Form{
		Name:        name,
		Description: desc,
		Capacity:    in.Capacity,
		Price:       in.Price,
		Categories:  cats,
		Timeslots:   slots,
	}, nil
}
