package backend

import (
	"context"
	"net/http"

	"hotel-portal/internal/usecase/readmodel"
)

func (c *Client) RoomCheckout(ctx context.Context, roomID, bookingID int64) (readmodel.CheckoutRM, error) {
	var dto checkoutDTO
	body := roomPaymentDTO{RoomID: roomID, BookingID: bookingID}
	if err := c.sendJSON(ctx, "payment.room", http.MethodPost, "/payment/create-checkout-session", body, &dto); err != nil {
		return readmodel.CheckoutRM{}, err
	}
	return readmodel.CheckoutRM{URL: dto.URL, SessionID: dto.SessionID}, nil
}

func (c *Client) ActivityCheckout(ctx context.Context, activityID, activityBookingID int64) (readmodel.CheckoutRM, error) {
	var dto checkoutDTO
	body := activityPaymentDTO{ActivityID: activityID, ActivityBookingID: activityBookingID}
	if err := c.sendJSON(ctx, "payment.activity", http.MethodPost, "/payment/activity-booking-checkout", body, &dto); err != nil {
		return readmodel.CheckoutRM{}, err
	}
	return readmodel.CheckoutRM{URL: dto.URL, SessionID: dto.SessionID}, nil
}
