package request

import (
	"hotel-portal/internal/domain/booking"
	"hotel-portal/internal/domain/calendar"
	"hotel-portal/internal/usecase"
)

type BookingRequest struct {
	RoomID        int64         `json:"roomId"`
	RoomName      string        `json:"roomName"`
	StartDate     calendar.Date `json:"startDate"`
	EndDate       calendar.Date `json:"endDate"`
	PaymentMethod string        `json:"paymentMethod"`
}

func (r *BookingRequest) ToDomain() usecase.BookingInput {
	return usecase.BookingInput{
		RoomID:        r.RoomID,
		RoomName:      r.RoomName,
		Start:         r.StartDate,
		End:           r.EndDate,
		PaymentMethod: booking.PaymentMethod(r.PaymentMethod),
	}
}

type PaymentReturnQuery struct {
	Outcome string `form:"outcome"`
}

func (q *PaymentReturnQuery) ToDomain() usecase.PaymentOutcome {
	return usecase.PaymentOutcome(q.Outcome)
}

type CheckOutRequest struct {
	BookingID int64 `json:"bookingId"`
}
