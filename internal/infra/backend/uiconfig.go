package backend

import (
	"context"
	"net/http"

	"hotel-portal/internal/domain/uiconfig"
	"hotel-portal/internal/pkg/imgdata"
)

// configID is the id of the singleton configuration row.
const configID = 1

func (c *Client) UIConfig(ctx context.Context) (uiconfig.Config, error) {
	var dto uiConfigDTO
	if err := c.getJSON(ctx, "uiconfig.get", "/ui-config/"+formatID(configID), nil, &dto); err != nil {
		return uiconfig.Config{}, err
	}
	return toUIConfig(dto), nil
}

func (c *Client) Homepage(ctx context.Context) (uiconfig.Homepage, error) {
	var dto uiConfigDTO
	if err := c.getJSON(ctx, "uiconfig.homepage", "/ui-config/homepage", nil, &dto); err != nil {
		return uiconfig.Homepage{}, err
	}
	return uiconfig.Homepage{
		HotelName:        dto.HotelName,
		DescriptionShort: dto.DescriptionShort,
		Description:      dto.Description,
		Address:          dto.Address,
		Images:           imgdata.DataURLs(dto.Images),
	}, nil
}

func (c *Client) ModuleEnabled(ctx context.Context, m uiconfig.Module) (bool, error) {
	var enabled bool
	if err := c.getJSON(ctx, "uiconfig.module", "/ui-config/module-enabled/"+string(m), nil, &enabled); err != nil {
		return false, err
	}
	return enabled, nil
}

// UpdateUIConfig replaces the configuration. New images replace the stored set.
func (c *Client) UpdateUIConfig(ctx context.Context, cfg uiconfig.Config, images []File) (uiconfig.Config, error) {
	id := cfg.ID
	if id == 0 {
		id = configID
	}
	m := cfg.Modules
	form := newForm().
		intField("id", id).
		field("hotelName", cfg.HotelName).
		field("descriptionShort", cfg.DescriptionShort).
		field("description", cfg.Description).
		field("address", cfg.Address).
		boolField("roomCleaning", m.RoomCleaning).
		boolField("digitalCheckIn", m.DigitalCheckIn).
		boolField("activities", m.Activities).
		boolField("communication", m.Communication).
		boolField("nuki", m.Nuki).
		boolField("halfBoard", m.HalfBoard).
		floatField("priceHalfBoard", m.PriceHalfBoard).
		files("images", images)
	var dto uiConfigDTO
	if err := c.sendForm(ctx, "uiconfig.update", http.MethodPut, "/ui-config/"+formatID(id), form, &dto); err != nil {
		return uiconfig.Config{}, err
	}
	return toUIConfig(dto), nil
}
