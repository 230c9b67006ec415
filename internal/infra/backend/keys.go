package backend

import (
	"context"
	"net/http"

	"hotel-portal/internal/usecase/readmodel"
)

func (c *Client) KeyStatus(ctx context.Context, roomID int64) (readmodel.KeyStatusRM, error) {
	var dto keyStatusDTO
	if err := c.getJSON(ctx, "key.status", "/key/"+formatID(roomID), nil, &dto); err != nil {
		return readmodel.KeyStatusRM{}, err
	}
	return toKeyStatus(dto), nil
}

func (c *Client) Unlock(ctx context.Context, roomID int64) error {
	return c.sendJSON(ctx, "key.unlock", http.MethodPost, "/key/unlock/"+formatID(roomID), nil, nil)
}
