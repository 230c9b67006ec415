package backend

import (
	"context"
	"net/http"

	"hotel-portal/internal/domain/calendar"
	"hotel-portal/internal/domain/room"
	"hotel-portal/internal/usecase/queries"
	"hotel-portal/internal/usecase/readmodel"
)

func (c *Client) SearchRooms(ctx context.Context, q queries.RoomSearch) (readmodel.Page[room.Room], error) {
	var page readmodel.Page[roomDTO]
	if err := c.getJSON(ctx, "room.search", "/room", q, &page); err != nil {
		return readmodel.Page[room.Room]{}, err
	}
	return mapPage(page, c.listRoom), nil
}

func (c *Client) AllRooms(ctx context.Context, p queries.PageRequest) (readmodel.Page[room.Room], error) {
	var page readmodel.Page[roomDTO]
	if err := c.getJSON(ctx, "room.all", "/room/all", p, &page); err != nil {
		return readmodel.Page[room.Room]{}, err
	}
	return mapPage(page, c.listRoom), nil
}

func (c *Client) AdminSearchRooms(ctx context.Context, q queries.RoomAdminSearch) (readmodel.Page[room.Room], error) {
	var page readmodel.Page[roomDTO]
	if err := c.getJSON(ctx, "room.admin_search", "/room/admin", q, &page); err != nil {
		return readmodel.Page[room.Room]{}, err
	}
	return mapPage(page, c.listRoom), nil
}

// CleaningRooms lists rooms for the cleaning board, cleaning windows included.
func (c *Client) CleaningRooms(ctx context.Context, p queries.PageRequest) (readmodel.Page[room.Room], error) {
	var page readmodel.Page[roomDTO]
	if err := c.getJSON(ctx, "room.clean_list", "/room/clean", p, &page); err != nil {
		return readmodel.Page[room.Room]{}, err
	}
	return mapPage(page, c.listRoom), nil
}

func (c *Client) GetRoom(ctx context.Context, id int64) (room.Room, error) {
	var dto roomDTO
	if err := c.getJSON(ctx, "room.get", "/room/"+formatID(id), nil, &dto); err != nil {
		return room.Room{}, err
	}
	return c.detailRoom(dto), nil
}

func roomForm(f room.Form, images Images) *multipartForm {
	return newForm().
		field("name", f.Name).
		field("description", f.Description).
		intField("capacity", int64(f.Capacity)).
		field("smartLockId", f.SmartLockID).
		intField("price", int64(f.Price)).
		file("mainImage", images.Main).
		files("additionalImages", images.Additional)
}

func (c *Client) CreateRoom(ctx context.Context, f room.Form, images Images) (room.Room, error) {
	var dto roomDTO
	if err := c.sendForm(ctx, "room.create", http.MethodPost, "/room", roomForm(f, images), &dto); err != nil {
		return room.Room{}, err
	}
	return c.detailRoom(dto), nil
}

func (c *Client) UpdateRoom(ctx context.Context, id int64, f room.Form, images Images) (room.Room, error) {
	var dto roomDTO
	if err := c.sendForm(ctx, "room.update", http.MethodPut, "/room/"+formatID(id), roomForm(f, images), &dto); err != nil {
		return room.Room{}, err
	}
	return c.detailRoom(dto), nil
}

func (c *Client) DeleteRoom(ctx context.Context, id int64) error {
	return c.sendJSON(ctx, "room.delete", http.MethodDelete, "/room/rooms/"+formatID(id), nil, nil)
}

// MarkCleaned stamps lastCleanedAt with the backend's current time.
func (c *Client) MarkCleaned(ctx context.Context, id int64) error {
	return c.sendJSON(ctx, "room.clean", http.MethodPut, "/room/"+formatID(id)+"/clean", nil, nil)
}

// SetCleaningTime stores the occupant's window; the backend anchors it to today.
func (c *Client) SetCleaningTime(ctx context.Context, id int64, from, to calendar.ClockTime) error {
	body := cleaningTimeDTO{CleaningTimeFrom: from.String(), CleaningTimeTo: to.String()}
	return c.sendJSON(ctx, "room.clean_time", http.MethodPut, "/room/"+formatID(id)+"/clean-time", body, nil)
}

// ClearCleaningTime removes the room's cleaning window, not the room.
func (c *Client) ClearCleaningTime(ctx context.Context, id int64) error {
	return c.sendJSON(ctx, "room.clear_clean_time", http.MethodDelete, "/room/"+formatID(id), nil, nil)
}
