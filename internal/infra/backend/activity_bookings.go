package backend

import (
	"context"
	"net/http"

	"hotel-portal/internal/domain/calendar"
	"hotel-portal/internal/usecase/readmodel"
)

// ActivityBookingRequest books Participants places on one slot.
type ActivityBookingRequest struct {
	ActivityID   int64
	SlotID       int64
	Date         calendar.Date
	Participants int
	UserEmail    string
}

func (c *Client) BookActivity(ctx context.Context, r ActivityBookingRequest) (readmodel.ActivityBookingRM, error) {
	body := activityBookingCreateDTO{
		ActivityID:     r.ActivityID,
		ActivitySlotID: r.SlotID,
		BookingDate:    r.Date,
		Participants:   r.Participants,
		UserEmail:      r.UserEmail,
	}
	var dto activityBookingDTO
	if err := c.sendJSON(ctx, "activity_booking.create", http.MethodPost, "/activity-booking", body, &dto); err != nil {
		return readmodel.ActivityBookingRM{}, err
	}
	return toActivityBooking(dto), nil
}

func (c *Client) MarkActivityBookingPaid(ctx context.Context, id int64) error {
	return c.sendJSON(ctx, "activity_booking.paid", http.MethodPut, "/activity-booking/"+formatID(id), nil, nil)
}

func (c *Client) MyActivityBookings(ctx context.Context) ([]readmodel.ActivityBookingRM, error) {
	var dtos []activityBookingDTO
	if err := c.getJSON(ctx, "activity_booking.mine", "/activity-booking/my-bookings", nil, &dtos); err != nil {
		return nil, err
	}
	return mapSlice(dtos, toActivityBooking), nil
}
