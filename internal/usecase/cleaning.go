package usecase

import (
	"context"
	"log/slog"

	"hotel-portal/internal/domain/calendar"
	"hotel-portal/internal/domain/cleaning"
	"hotel-portal/internal/domain/room"
	"hotel-portal/internal/domain/session"
	"hotel-portal/internal/infra/backend"
	"hotel-portal/internal/pkg/clock"
	"hotel-portal/internal/pkg/config"
	"hotel-portal/internal/pkg/errs"
	"hotel-portal/internal/usecase/notice"
	"hotel-portal/internal/usecase/queries"
	"hotel-portal/internal/usecase/readmodel"
)

//go:generate mockgen -source=cleaning.go -destination=../testutil/mock/usecase/mock_cleaning.go -package=usecasemock

type CleaningGateway interface {
	SetCleaningTime(ctx context.Context, id int64, from, to calendar.ClockTime) error
	ClearCleaningTime(ctx context.Context, id int64) error
	CleaningRooms(ctx context.Context, p queries.PageRequest) (readmodel.Page[room.Room], error)
	Occupied(ctx context.Context, roomID int64) (bool, error)
	MarkCleaned(ctx context.Context, id int64) error
}

type CleaningUseCase interface {
	// Schedule offers today's cleaning window for the caller's room.
	Schedule(ctx context.Context, sess session.Session, roomID int64, from, to calendar.ClockTime) (string, error)
	StaffView(ctx context.Context, sess session.Session, p queries.PageRequest, onlyFree bool) (readmodel.Page[readmodel.CleaningRowRM], error)
	Start(ctx context.Context, sess session.Session, roomID int64) (string, error)
	Finish(ctx context.Context, sess session.Session, roomID int64) (string, error)
}

type cleaningUseCaseImpl struct {
	gateway CleaningGateway
	hints   hints
	clock   clock.Clock
	fanout  int
	logger  *slog.Logger
}

func NewCleaningUseCase(gateway CleaningGateway, kv KVStore, clk clock.Clock, cfg config.Config, logger *slog.Logger) CleaningUseCase {
	return &cleaningUseCaseImpl{
		gateway: gateway,
		hints:   hints{kv: kv, logger: logger},
		clock:   clk,
		fanout:  cfg.Backend.Fanout,
		logger:  logger,
	}
}

func (u *cleaningUseCaseImpl) Schedule(ctx context.Context, sess session.Session, roomID int64, from, to calendar.ClockTime) (string, error) {
	now := u.clock.Now()
	w, err := cleaning.NewWindow(from, to, now)
	if err != nil {
		return "", err
	}

	if err := u.gateway.SetCleaningTime(backend.WithCredential(ctx, sess.Token()), roomID, w.From(), w.To()); err != nil {
		return "", notice.Wrap(err, notice.Default)
	}

	hint := windowHint{Date: w.Date(), From: w.From(), To: w.To()}
	if err := u.hints.put(ctx, windowKey(sess.Email(), roomID), hint, clock.EndOfDay(now).Sub(now)); err != nil {
		u.logger.Warn("cleaning window hint not stored",
			slog.Int64("room_id", roomID),
			slog.String("email", sess.Email()),
			slog.Any("error", err),
		)
	}
	return w.ConfirmationMessage(), nil
}

// StaffView builds the cleaning board. Occupancy and window expiry are
// resolved per row; a failing row carries its error and the rest still load.
func (u *cleaningUseCaseImpl) StaffView(ctx context.Context, sess session.Session, p queries.PageRequest, onlyFree bool) (readmodel.Page[readmodel.CleaningRowRM], error) {
	ctx = backend.WithCredential(ctx, sess.Token())
	page, err := u.gateway.CleaningRooms(ctx, p.Normalize())
	if err != nil {
		return readmodel.Page[readmodel.CleaningRowRM]{}, notice.Wrap(err, notice.Policy{Fallback: "Error loading rooms"})
	}

	now := u.clock.Now()
	rows := make([]readmodel.CleaningRowRM, len(page.Content))
	fanOut(len(rows), u.fanout, func(i int) {
		r := page.Content[i]
		row := readmodel.CleaningRowRM{
			Room:             r,
			InProgress:       u.hints.progress(ctx, r.ID) == cleaning.StateInProgress,
			LastCleanedLabel: cleaning.LastCleanedLabel(r.LastCleanedAt.In(now.Location()), now),
		}

		occupied, err := u.gateway.Occupied(ctx, r.ID)
		if err != nil {
			row.Err = notice.Describe(err, notice.Default)
		}
		row.Occupied = occupied

		if r.ExpiredAt(now) {
			if err := u.gateway.ClearCleaningTime(ctx, r.ID); err != nil {
				u.logger.Warn("expired cleaning window not cleared", slog.Int64("room_id", r.ID), slog.Any("error", err))
			} else {
				row.Expired = true
				row.Room.CleaningTime = nil
			}
		}
		rows[i] = row
	})

	out := readmodel.Page[readmodel.CleaningRowRM]{TotalElements: page.TotalElements}
	for _, row := range rows {
		if onlyFree && row.Occupied {
			out.TotalElements--
			continue
		}
		out.Content = append(out.Content, row)
	}
	return out, nil
}

func (u *cleaningUseCaseImpl) Start(ctx context.Context, sess session.Session, roomID int64) (string, error) {
	next, err := u.hints.progress(ctx, roomID).Start()
	if err != nil {
		return "", err
	}
	if err := u.hints.put(ctx, progressKey(roomID), next, 0); err != nil {
		return "", errs.Wrapf(err, "store cleaning state of room %d", roomID)
	}
	u.logger.Info("room cleaning started", slog.Int64("room_id", roomID), slog.String("email", sess.Email()))
	return cleaning.StartedMessage, nil
}

// Finish reports the room as cleaned and returns it to idle. The room
// counts as finished once the backend accepted it; a window that could not
// be withdrawn is only logged.
func (u *cleaningUseCaseImpl) Finish(ctx context.Context, sess session.Session, roomID int64) (string, error) {
	if _, err := u.hints.progress(ctx, roomID).Finish(); err != nil {
		return "", err
	}

	bctx := backend.WithCredential(ctx, sess.Token())
	if err := u.gateway.MarkCleaned(bctx, roomID); err != nil {
		return "", notice.Wrap(err, notice.Default)
	}
	u.hints.drop(ctx, progressKey(roomID))
	if err := u.gateway.ClearCleaningTime(bctx, roomID); err != nil {
		u.logger.Warn("cleaning window not withdrawn", slog.Int64("room_id", roomID), slog.Any("error", err))
	}
	u.logger.Info("room cleaning finished", slog.Int64("room_id", roomID), slog.String("email", sess.Email()))
	return cleaning.FinishedMessage, nil
}
