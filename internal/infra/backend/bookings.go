package backend

import (
	"context"
	"net/http"
	"net/url"

	"hotel-portal/internal/domain/booking"
	"hotel-portal/internal/usecase/queries"
	"hotel-portal/internal/usecase/readmodel"
)

// CreateBooking sends the browser client's field set plus the payment method.
func (c *Client) CreateBooking(ctx context.Context, r booking.Request) (booking.Booking, error) {
	body := bookingCreateDTO{
		RoomID:        r.RoomID,
		StartDate:     r.Stay.Start(),
		EndDate:       r.Stay.End(),
		RoomName:      r.RoomName,
		PaymentMethod: string(r.PaymentMethod),
	}
	var dto bookingDTO
	if err := c.sendJSON(ctx, "booking.create", http.MethodPost, "/bookings", body, &dto); err != nil {
		return booking.Booking{}, err
	}
	return toBooking(dto), nil
}

func (c *Client) MyBookings(ctx context.Context) ([]booking.Booking, error) {
	var dtos []bookingDTO
	if err := c.getJSON(ctx, "booking.mine", "/bookings/my-bookings", nil, &dtos); err != nil {
		return nil, err
	}
	return mapSlice(dtos, toBooking), nil
}

func (c *Client) GetBooking(ctx context.Context, id int64) (booking.Booking, error) {
	var dto bookingDTO
	if err := c.getJSON(ctx, "booking.get", "/bookings/"+formatID(id), nil, &dto); err != nil {
		return booking.Booking{}, err
	}
	return toBooking(dto), nil
}

func (c *Client) ManagerBookings(ctx context.Context, p queries.PageRequest) (readmodel.Page[readmodel.DetailedBookingRM], error) {
	var page readmodel.Page[bookingDTO]
	if err := c.getJSON(ctx, "booking.manager", "/bookings/managerbookings/paged", p, &page); err != nil {
		return readmodel.Page[readmodel.DetailedBookingRM]{}, err
	}
	return mapPage(page, c.toDetailedBooking), nil
}

func (c *Client) CancelBooking(ctx context.Context, id int64) error {
	return c.sendJSON(ctx, "booking.cancel", http.MethodDelete, "/bookings/my-bookings/"+formatID(id)+"/cancel", nil, nil)
}

// ConfirmPayment asks the backend to reconcile the booking with its payment
// provider after the checkout returned successfully.
func (c *Client) ConfirmPayment(ctx context.Context, id int64) error {
	return c.sendJSON(ctx, "booking.confirm_payment", http.MethodPut, "/bookings/"+formatID(id), nil, nil)
}

// MarkBookingPaid records a cash payment taken at the front desk.
func (c *Client) MarkBookingPaid(ctx context.Context, id int64) error {
	return c.sendJSON(ctx, "booking.mark_paid", http.MethodPut, "/bookings/"+formatID(id)+"/mark-as-paid", nil, nil)
}

// BookingPDF fetches one of the caller's stored booking documents.
func (c *Client) BookingPDF(ctx context.Context, id int64, docType string) (readmodel.DocumentRM, error) {
	resp, err := c.getRaw(ctx, "booking.pdf", "/bookings/my-bookings/"+formatID(id)+"/pdf/"+url.PathEscape(docType))
	if err != nil {
		return readmodel.DocumentRM{}, err
	}
	return document(docType, resp), nil
}
