package request

import (
	"hotel-portal/internal/domain/calendar"
)

type CleaningWindowRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
}

func (r *CleaningWindowRequest) ToDomain() (from, to calendar.ClockTime, err error) {
	if from, err = optionalClock(r.From); err != nil {
		return
	}
	to, err = optionalClock(r.To)
	return
}

type InviteRequest struct {
	Email string `json:"email"`
}

type GuestEmailRequest struct {
	Email string `json:"email"`
}

type CleaningBoardQuery struct {
	PageQuery
	OnlyFree bool `form:"onlyFree"`
}
