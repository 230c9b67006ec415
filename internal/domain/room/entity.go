package room

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"hotel-portal/internal/pkg/errs"
)

var (
	ErrInvalidName        = errs.Validation("Name must be between 3 and 40 characters.")
	ErrNameCharacters     = errs.Validation("Name may only contain letters and single spaces.")
	ErrInvalidDescription = errs.Validation("Description must be between 3 and 100 characters.")
	ErrInvalidPrice       = errs.Validation("Price must be a whole number between 1 and 10000.")
	ErrInvalidCapacity    = errs.Validation("Capacity must be between 1 and 6.")
)

const (
	MinNameLength        = 3
	MaxNameLength        = 40
	MinDescriptionLength = 3
	MaxDescriptionLength = 100
	MinPrice             = 1
	MaxPrice             = 10000
	MinCapacity          = 1
	MaxCapacity          = 6
)

var nameRegex = regexp.MustCompile(`^[a-zA-Z ]+$`)

// CleaningTime is the window the occupant offered, anchored to the day it
// was chosen.
type CleaningTime struct {
	From time.Time
	To   time.Time
}

// Room is the read model shared by listings, detail pages and the cleaning
// board.
type Room struct {
	ID               int64
	Name             string
	Description      string
	Capacity         int
	Price            float64
	SmartLockID      string
	MainImage        string
	AdditionalImages []string
	LastCleanedAt    time.Time
	CleaningTime     *CleaningTime
}

// ExpiredAt reports whether the room's cleaning window ended before now.
func (r Room) ExpiredAt(now time.Time) bool {
	if r.CleaningTime == nil || r.CleaningTime.To.IsZero() {
		return false
	}
	return r.CleaningTime.To.Before(now)
}

// FormInput is the unvalidated create or edit form.
type FormInput struct {
	Name        string
	Description string
	Capacity    int
	Price       float64
	SmartLockID string
}

// Form is a validated create or edit payload. Images travel separately.
type Form struct {
	Name        string
	Description string
	Capacity    int
	Price       int
	SmartLockID string
}

func NewForm(in FormInput) (Form, error) {
	name := strings.TrimSpace(in.Name)
	if n := utf8.RuneCountInString(name); n < MinNameLength || n > MaxNameLength {
		return Form{}, ErrInvalidName
	}
	if !nameRegex.MatchString(name) || strings.Contains(name, "  ") {
		return Form{}, ErrNameCharacters
	}
	desc := strings.TrimSpace(in.Description)
	if n := utf8.RuneCountInString(desc); n < MinDescriptionLength || n > MaxDescriptionLength {
		return Form{}, ErrInvalidDescription
	}
	if in.Price != float64(int(in.Price)) || in.Price < MinPrice || in.Price > MaxPrice {
		return Form{}, ErrInvalidPrice
	}
	if in.Capacity < MinCapacity || in.Capacity > MaxCapacity {
		return Form{}, ErrInvalidCapacity
	}
	return Form{
		Name:        name,
		Description: desc,
		Capacity:    in.Capacity,
		Price:       int(in.Price),
		SmartLockID: strings.TrimSpace(in.SmartLockID),
	}, nil
}
