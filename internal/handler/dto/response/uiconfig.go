package response

import (
	"hotel-portal/internal/domain/uiconfig"
)

type HomepageResponse struct {
	HotelName        string   `json:"hotelName"`
	DescriptionShort string   `json:"descriptionShort"`
	Description      string   `json:"description"`
	Address          string   `json:"address"`
	Images           []string `json:"images"`
}

func FromHomepage(h uiconfig.Homepage) HomepageResponse {
	var res HomepageResponse
	copyFields(&res, &h)
	if res.Images == nil {
		res.Images = []string{}
	}
	return res
}

type ModulesResponse struct {
	RoomCleaning   bool    `json:"roomCleaning"`
	DigitalCheckIn bool    `json:"digitalCheckIn"`
	Activities     bool    `json:"activities"`
	Communication  bool    `json:"communication"`
	Nuki           bool    `json:"nuki"`
	HalfBoard      bool    `json:"halfBoard"`
	PriceHalfBoard float64 `json:"priceHalfBoard"`
}

type UIConfigResponse struct {
	ID               int64           `json:"id"`
	HotelName        string          `json:"hotelName"`
	DescriptionShort string          `json:"descriptionShort"`
	Description      string          `json:"description"`
	Address          string          `json:"address"`
	Switches         ModulesResponse `json:"modules"`
	Images           []string        `json:"images"`
}

func FromUIConfig(c uiconfig.Config) UIConfigResponse {
	var res UIConfigResponse
	copyFields(&res, &c)
	copyFields(&res.Switches, &c.Modules)
	if res.Images == nil {
		res.Images = []string{}
	}
	return res
}

type UIConfigSavedResponse struct {
	Config  UIConfigResponse `json:"config"`
	Message string           `json:"message"`
}
