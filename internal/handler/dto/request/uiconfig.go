package request

import (
	"hotel-portal/internal/domain/uiconfig"
	"hotel-portal/internal/pkg/patch"
)

// UIConfigPayload is the JSON part "config" of the multipart site settings
// form. New pictures travel as the files "images"; Images keeps the ones
// already stored.
type UIConfigPayload struct {
	HotelName        string         `json:"hotelName"`
	DescriptionShort string         `json:"descriptionShort"`
	Description      string         `json:"description"`
	Address          string         `json:"address"`
	Modules          ModulesPayload `json:"modules"`
	Images           []string       `json:"images"`
}

type ModulesPayload struct {
	RoomCleaning   bool     `json:"roomCleaning"`
	DigitalCheckIn bool     `json:"digitalCheckIn"`
	Activities     bool     `json:"activities"`
	Communication  bool     `json:"communication"`
	Nuki           bool     `json:"nuki"`
	HalfBoard      bool     `json:"halfBoard"`
	PriceHalfBoard *float64 `json:"priceHalfBoard"`
}

func (p *UIConfigPayload) ToDomain() uiconfig.Config {
	return uiconfig.Config{
		HotelName:        p.HotelName,
		DescriptionShort: p.DescriptionShort,
		Description:      p.Description,
		Address:          p.Address,
		Modules: uiconfig.Modules{
			RoomCleaning:   p.Modules.RoomCleaning,
			DigitalCheckIn: p.Modules.DigitalCheckIn,
			Activities:     p.Modules.Activities,
			Communication:  p.Modules.Communication,
			Nuki:           p.Modules.Nuki,
			HalfBoard:      p.Modules.HalfBoard,
			PriceHalfBoard: patch.Coalesce(p.Modules.PriceHalfBoard, 0),
		},
		Images: p.Images,
	}
}
