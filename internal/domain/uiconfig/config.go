package uiconfig

import (
	"strings"
	"unicode/utf8"

	"hotel-portal/internal/pkg/errs"
)

// Module names as the backend's module-enabled endpoint expects them.
type Module string

const (
	ModuleRoomCleaning   Module = "roomCleaning"
	ModuleDigitalCheckIn Module = "digitalCheckIn"
	ModuleActivities     Module = "activities"
	ModuleCommunication  Module = "communication"
	ModuleNuki           Module = "nuki"
	ModuleHalfBoard      Module = "halfBoard"
)

// All lists every module in display order.
var All = []Module{
	ModuleRoomCleaning,
	ModuleDigitalCheckIn,
	ModuleActivities,
	ModuleCommunication,
	ModuleNuki,
	ModuleHalfBoard,
}

var ErrUnknownModule = errs.Validation("Unknown module.")

func ParseModule(s string) (Module, error) {
	m := Module(s)
	switch m {
	case ModuleRoomCleaning, ModuleDigitalCheckIn, ModuleActivities,
		ModuleCommunication, ModuleNuki, ModuleHalfBoard:
		return m, nil
	}
	return "", ErrUnknownModule
}

// Modules are the feature switches of the site.
type Modules struct {
	RoomCleaning   bool
	DigitalCheckIn bool
	Activities     bool
	Communication  bool
	Nuki           bool
	HalfBoard      bool
	PriceHalfBoard float64
}

func (m Modules) Enabled(name Module) bool {
	switch name {
	case ModuleRoomCleaning:
		return m.RoomCleaning
	case ModuleDigitalCheckIn:
		return m.DigitalCheckIn
	case ModuleActivities:
		return m.Activities
	case ModuleCommunication:
		return m.Communication
	case ModuleNuki:
		return m.Nuki
	case ModuleHalfBoard:
		return m.HalfBoard
	}
	return false
}

// Config is the singleton site configuration.
type Config struct {
	ID               int64
	HotelName        string
	DescriptionShort string
	Description      string
	Address          string
	Modules          Modules
	Images           []string
}

// Homepage is the public subset of Config.
type Homepage struct {
	HotelName        string
	DescriptionShort string
	Description      string
	Address          string
	Images           []string
}

var (
	ErrHotelName        = errs.Validation("Hotel name must be between 3 and 100 characters.")
	ErrDescriptionShort = errs.Validation("Short description must be between 3 and 100 characters.")
	ErrDescription      = errs.Validation("Description must be between 3 and 1000 characters.")
	ErrAddress          = errs.Validation("Address must be between 3 and 100 characters.")
	ErrAddressCountry   = errs.Validation("Address must be in Austria.")
	ErrHalfBoardPrice   = errs.Validation("Half board price cannot be negative.")
)

var countryNames = []string{"Austria", "Österreich"}

// NewForm validates an update. Images are passed through untouched.
func NewForm(in Config) (Config, error) {
	checks := []struct {
		value    *string
		min, max int
		err      error
	}{
		{&in.HotelName, 3, 100, ErrHotelName},
		{&in.DescriptionShort, 3, 100, ErrDescriptionShort},
		{&in.Description, 3, 1000, ErrDescription},
		{&in.Address, 3, 100, ErrAddress},
	}
	for _, c := range checks {
		*c.value = strings.TrimSpace(*c.value)
		if n := utf8.RuneCountInString(*c.value); n < c.min || n > c.max {
			return Config{}, c.err
		}
	}
	if !containsAny(in.Address, countryNames) {
		return Config{}, ErrAddressCountry
	}
	if in.Modules.PriceHalfBoard < 0 {
		return Config{}, ErrHalfBoardPrice
	}
	return in, nil
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

const SavedMessage = "Configuration updated successfully!"
