package backend

import (
	"context"
	"encoding/json"
	"net/http"

	"hotel-portal/internal/domain/activity"
	"hotel-portal/internal/pkg/errs"
	"hotel-portal/internal/usecase/queries"
	"hotel-portal/internal/usecase/readmodel"
)

func (c *Client) AllActivities(ctx context.Context, q queries.ActivitySearch) (readmodel.Page[activity.Activity], error) {
	paging := queries.ActivitySearch{PageIndex: q.PageIndex, PageSize: q.PageSize}
	var page readmodel.Page[activityDTO]
	if err := c.getJSON(ctx, "activity.all", "/activity/all", paging, &page); err != nil {
		return readmodel.Page[activity.Activity]{}, err
	}
	return mapPage(page, c.listActivity), nil
}

func (c *Client) SearchActivities(ctx context.Context, q queries.ActivitySearch) (readmodel.Page[activity.Activity], error) {
	var page readmodel.Page[activityDTO]
	if err := c.getJSON(ctx, "activity.search", "/activity/search", q, &page); err != nil {
		return readmodel.Page[activity.Activity]{}, err
	}
	return mapPage(page, c.listActivity), nil
}

func (c *Client) RecommendedActivity(ctx context.Context) (activity.Activity, error) {
	var dto activityDTO
	if err := c.getJSON(ctx, "activity.recommended", "/activity/recommended", nil, &dto); err != nil {
		return activity.Activity{}, err
	}
	return c.listActivity(dto), nil
}

func (c *Client) GetActivity(ctx context.Context, id int64) (activity.Activity, error) {
	var dto activityDTO
	if err := c.getJSON(ctx, "activity.get", "/activity/"+formatID(id), nil, &dto); err != nil {
		return activity.Activity{}, err
	}
	return c.detailActivity(dto), nil
}

// Slots pages through the concrete slots of an activity without filters.
func (c *Client) Slots(ctx context.Context, activityID int64, q queries.SlotSearch) (readmodel.Page[activity.Slot], error) {
	paging := queries.SlotSearch{PageIndex: q.PageIndex, PageSize: q.PageSize}
	var page readmodel.Page[slotDTO]
	if err := c.getJSON(ctx, "activity.slots", "/activity/timeslots/"+formatID(activityID), paging, &page); err != nil {
		return readmodel.Page[activity.Slot]{}, err
	}
	return mapPage(page, toSlot), nil
}

func (c *Client) SearchSlots(ctx context.Context, activityID int64, q queries.SlotSearch) (readmodel.Page[activity.Slot], error) {
	var page readmodel.Page[slotDTO]
	if err := c.getJSON(ctx, "activity.slot_search", "/activity/timeslots/search/"+formatID(activityID), q, &page); err != nil {
		return readmodel.Page[activity.Slot]{}, err
	}
	return mapPage(page, toSlot), nil
}

func activityForm(f activity.Form, images Images) (*multipartForm, error) {
	slots, err := json.Marshal(mapSlice(f.Timeslots, fromTimeslot))
	if err != nil {
		return nil, errs.Wrap(err, "encode timeslots")
	}
	return newForm().
		field("name", f.Name).
		field("description", f.Description).
		intField("capacity", int64(f.Capacity)).
		floatField("price", f.Price).
		field("categories", activity.JoinCategories(f.Categories)).
		file("mainImage", images.Main).
		files("additionalImages", images.Additional).
		field("timeslots", string(slots)), nil
}

func (c *Client) CreateActivity(ctx context.Context, f activity.Form, images Images) (activity.Activity, error) {
	form, err := activityForm(f, images)
	if err != nil {
		return activity.Activity{}, err
	}
	var dto activityDTO
	if err := c.sendForm(ctx, "activity.create", http.MethodPost, "/activity", form, &dto); err != nil {
		return activity.Activity{}, err
	}
	return c.detailActivity(dto), nil
}

func (c *Client) UpdateActivity(ctx context.Context, id int64, f activity.Form, images Images) (activity.Activity, error) {
	form, err := activityForm(f, images)
	if err != nil {
		return activity.Activity{}, err
	}
	var dto activityDTO
	if err := c.sendForm(ctx, "activity.update", http.MethodPut, "/activity/"+formatID(id), form, &dto); err != nil {
		return activity.Activity{}, err
	}
	return c.detailActivity(dto), nil
}

func (c *Client) DeleteActivity(ctx context.Context, id int64) error {
	return c.sendJSON(ctx, "activity.delete", http.MethodDelete, "/activity/activities/"+formatID(id), nil, nil)
}
