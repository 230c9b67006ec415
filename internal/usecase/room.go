package usecase

import (
	"context"
	"log/slog"

	"hotel-portal/internal/domain/booking"
	"hotel-portal/internal/domain/room"
	"hotel-portal/internal/domain/session"
	"hotel-portal/internal/infra/backend"
	"hotel-portal/internal/usecase/notice"
	"hotel-portal/internal/usecase/queries"
	"hotel-portal/internal/usecase/readmodel"
)

//go:generate mockgen -source=room.go -destination=../testutil/mock/usecase/mock_room.go -package=usecasemock

const (
	MsgRoomCreated = "Room created successfully!"
	MsgRoomUpdated = "Room updated successfully!"
	MsgRoomDeleted = "Room deleted successfully!"
)

type RoomGateway interface {
	SearchRooms(ctx context.Context, q queries.RoomSearch) (readmodel.Page[room.Room], error)
	AllRooms(ctx context.Context, p queries.PageRequest) (readmodel.Page[room.Room], error)
	AdminSearchRooms(ctx context.Context, q queries.RoomAdminSearch) (readmodel.Page[room.Room], error)
	GetRoom(ctx context.Context, id int64) (room.Room, error)
	CreateRoom(ctx context.Context, f room.Form, images backend.Images) (room.Room, error)
	UpdateRoom(ctx context.Context, id int64, f room.Form, images backend.Images) (room.Room, error)
	DeleteRoom(ctx context.Context, id int64) error
}

type RoomUseCase interface {
	Search(ctx context.Context, q queries.RoomSearch) (readmodel.Page[room.Room], error)
	AdminSearch(ctx context.Context, sess session.Session, q queries.RoomAdminSearch) (readmodel.Page[room.Room], error)
	Get(ctx context.Context, id int64) (room.Room, error)
	Create(ctx context.Context, sess session.Session, in room.FormInput, images backend.Images) (room.Room, string, error)
	Update(ctx context.Context, sess session.Session, id int64, in room.FormInput, images backend.Images) (room.Room, string, error)
	Delete(ctx context.Context, sess session.Session, id int64) (string, error)
}

type roomUseCaseImpl struct {
	gateway RoomGateway
	logger  *slog.Logger
}

func NewRoomUseCase(gateway RoomGateway, logger *slog.Logger) RoomUseCase {
	return &roomUseCaseImpl{
		gateway: gateway,
		logger:  logger,
	}
}

// Search lists all rooms when no filter is set. A date filter must form a
// valid stay.
func (u *roomUseCaseImpl) Search(ctx context.Context, q queries.RoomSearch) (readmodel.Page[room.Room], error) {
	q.PageRequest = q.PageRequest.Normalize()
	if !q.StartDate.IsZero() || !q.EndDate.IsZero() {
		if _, err := booking.NewStay(q.StartDate, q.EndDate); err != nil {
			return readmodel.Page[room.Room]{}, err
		}
	}

	var (
		page readmodel.Page[room.Room]
		err  error
	)
	if q.StartDate.IsZero() && q.Capacity == 0 && q.MinPrice == 0 && q.MaxPrice == 0 {
		page, err = u.gateway.AllRooms(ctx, q.PageRequest)
	} else {
		page, err = u.gateway.SearchRooms(ctx, q)
	}
	if err != nil {
		return readmodel.Page[room.Room]{}, notice.Wrap(err, notice.Policy{Fallback: "Error loading rooms"})
	}
	return page, nil
}

func (u *roomUseCaseImpl) AdminSearch(ctx context.Context, sess session.Session, q queries.RoomAdminSearch) (readmodel.Page[room.Room], error) {
	q.PageRequest = q.PageRequest.Normalize()
	page, err := u.gateway.AdminSearchRooms(backend.WithCredential(ctx, sess.Token()), q)
	if err != nil {
		return readmodel.Page[room.Room]{}, notice.Wrap(err, notice.Policy{Fallback: "Error loading rooms"})
	}
	return page, nil
}

func (u *roomUseCaseImpl) Get(ctx context.Context, id int64) (room.Room, error) {
	r, err := u.gateway.GetRoom(ctx, id)
	if err != nil {
		return room.Room{}, notice.Wrap(err, notice.Policy{RawNotFound: true})
	}
	return r, nil
}

func (u *roomUseCaseImpl) Create(ctx context.Context, sess session.Session, in room.FormInput, images backend.Images) (room.Room, string, error) {
	form, err := room.NewForm(in)
	if err != nil {
		return room.Room{}, "", err
	}
	r, err := u.gateway.CreateRoom(backend.WithCredential(ctx, sess.Token()), form, images)
	if err != nil {
		return room.Room{}, "", notice.Wrap(err, notice.Default)
	}
	return r, MsgRoomCreated, nil
}

func (u *roomUseCaseImpl) Update(ctx context.Context, sess session.Session, id int64, in room.FormInput, images backend.Images) (room.Room, string, error) {
	form, err := room.NewForm(in)
	if err != nil {
		return room.Room{}, "", err
	}
	r, err := u.gateway.UpdateRoom(backend.WithCredential(ctx, sess.Token()), id, form, images)
	if err != nil {
		return room.Room{}, "", notice.Wrap(err, notice.Default)
	}
	return r, MsgRoomUpdated, nil
}

func (u *roomUseCaseImpl) Delete(ctx context.Context, sess session.Session, id int64) (string, error) {
	if err := u.gateway.DeleteRoom(backend.WithCredential(ctx, sess.Token()), id); err != nil {
		return "", notice.Wrap(err, notice.Default)
	}
	u.logger.Info("room deleted", slog.Int64("room_id", id), slog.String("email", sess.Email()))
	return MsgRoomDeleted, nil
}
