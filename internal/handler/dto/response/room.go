package response

import (
	"time"

	"hotel-portal/internal/domain/pricing"
	"hotel-portal/internal/domain/room"
	"hotel-portal/internal/usecase/readmodel"
)

type CleaningWindowResponse struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

type RoomResponse struct {
	ID               int64                   `json:"id"`
	Name             string                  `json:"name"`
	Description      string                  `json:"description"`
	Capacity         int                     `json:"capacity"`
	Price            float64                 `json:"price"`
	SmartLockID      string                  `json:"smartLockId,omitempty"`
	MainImage        string                  `json:"mainImage,omitempty"`
	AdditionalImages []string                `json:"additionalImages"`
	LastCleaned      *time.Time              `json:"lastCleanedAt,omitempty"`
	Window           *CleaningWindowResponse `json:"cleaningTime,omitempty"`
}

func FromRoom(r room.Room) RoomResponse {
	var res RoomResponse
	copyFields(&res, &r)
	if res.AdditionalImages == nil {
		res.AdditionalImages = []string{}
	}
	if !r.LastCleanedAt.IsZero() {
		t := r.LastCleanedAt
		res.LastCleaned = &t
	}
	if r.CleaningTime != nil {
		res.Window = &CleaningWindowResponse{From: r.CleaningTime.From, To: r.CleaningTime.To}
	}
	return res
}

func FromRoomPage(p readmodel.Page[room.Room]) Page[RoomResponse] {
	return mapPage(p, FromRoom)
}

type RoomSavedResponse struct {
	Room    RoomResponse `json:"room"`
	Message string       `json:"message"`
}

type QuoteResponse struct {
	Quantity        int64  `json:"quantity"`
	UnitPrice       string `json:"unitPrice"`
	PriceWithoutTax string `json:"priceWithoutTax"`
	Tax             string `json:"tax"`
	Total           string `json:"total"`
}

func FromEstimate(e pricing.Estimate) QuoteResponse {
	return QuoteResponse{
		Quantity:        e.Quantity,
		UnitPrice:       e.UnitPrice.String(),
		PriceWithoutTax: e.PriceWithoutTax.String(),
		Tax:             e.Tax.String(),
		Total:           e.Total.String(),
	}
}
