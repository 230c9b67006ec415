package backend

import (
	"context"
	"net/http"
	"net/url"

	"hotel-portal/internal/domain/user"
	"hotel-portal/internal/usecase/queries"
	"hotel-portal/internal/usecase/readmodel"
)

func (c *Client) ListGuests(ctx context.Context, p queries.PageRequest) (readmodel.Page[readmodel.GuestRM], error) {
	var page readmodel.Page[guestListDTO]
	if err := c.getJSON(ctx, "guest.list", "/guest", p, &page); err != nil {
		return readmodel.Page[readmodel.GuestRM]{}, err
	}
	return mapPage(page, toGuestRM), nil
}

func (c *Client) SearchGuests(ctx context.Context, q queries.GuestSearch) (readmodel.Page[readmodel.GuestRM], error) {
	var page readmodel.Page[guestListDTO]
	if err := c.getJSON(ctx, "guest.search", "/guest/search", q, &page); err != nil {
		return readmodel.Page[readmodel.GuestRM]{}, err
	}
	return mapPage(page, toGuestRM), nil
}

func (c *Client) GetGuest(ctx context.Context, email string) (user.Guest, error) {
	var dto guestDTO
	if err := c.getJSON(ctx, "guest.get", "/guest/"+url.PathEscape(email), nil, &dto); err != nil {
		return user.Guest{}, err
	}
	return toGuest(dto), nil
}

func (c *Client) CreateGuest(ctx context.Context, f user.GuestForm) (user.Guest, error) {
	var dto guestDTO
	if err := c.sendJSON(ctx, "guest.create", http.MethodPost, "/guest", fromGuestForm(f), &dto); err != nil {
		return user.Guest{}, err
	}
	return toGuest(dto), nil
}

func (c *Client) UpdateGuest(ctx context.Context, email string, f user.GuestForm) (user.Guest, error) {
	var dto guestDTO
	if err := c.sendJSON(ctx, "guest.update", http.MethodPut, "/guest/"+url.PathEscape(email), fromGuestForm(f), &dto); err != nil {
		return user.Guest{}, err
	}
	return toGuest(dto), nil
}

func (c *Client) DeleteGuest(ctx context.Context, email string) error {
	return c.sendJSON(ctx, "guest.delete", http.MethodDelete, "/guest/"+url.PathEscape(email), nil, nil)
}
