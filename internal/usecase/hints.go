package usecase

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"hotel-portal/internal/domain/calendar"
	"hotel-portal/internal/domain/cleaning"
	"hotel-portal/internal/domain/uiconfig"
	"hotel-portal/internal/infra"
	"hotel-portal/internal/pkg/errs"
)

// KVStore holds the gateway's short-lived hints. Entries are advisory; the
// backend stays authoritative.
type KVStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

func windowKey(email string, roomID int64) string {
	return "cleaning:window:" + email + ":" + formatID(roomID)
}

func progressKey(roomID int64) string {
	return "cleaning:progress:" + formatID(roomID)
}

func moduleKey(m uiconfig.Module) string {
	return "module:" + string(m)
}

type windowHint struct {
	Date calendar.Date      `json:"date"`
	From calendar.ClockTime `json:"from"`
	To   calendar.ClockTime `json:"to"`
}

// hints wraps the KV store with typed accessors. Read failures degrade to
// "no hint" and are logged; write failures are returned.
type hints struct {
	kv     KVStore
	logger *slog.Logger
}

func (h hints) get(ctx context.Context, key string, out any) bool {
	b, err := h.kv.Get(ctx, key)
	if err != nil {
		if !infra.IsKind(err, infra.KindNotFound) {
			h.logger.Warn("hint read failed", slog.String("key", key), slog.Any("error", err))
		}
		return false
	}
	if err := json.Unmarshal(b, out); err != nil {
		h.logger.Warn("hint undecodable", slog.String("key", key), slog.Any("error", err))
		return false
	}
	return true
}

func (h hints) put(ctx context.Context, key string, v any, ttl time.Duration) error {
	b, err := json.Marshal(v)
	if err != nil {
		return errs.Wrapf(err, "encode hint %s", key)
	}
	return h.kv.Set(ctx, key, b, ttl)
}

func (h hints) drop(ctx context.Context, key string) {
	if err := h.kv.Delete(ctx, key); err != nil {
		h.logger.Warn("hint delete failed", slog.String("key", key), slog.Any("error", err))
	}
}

func (h hints) window(ctx context.Context, email string, roomID int64, today calendar.Date) (cleaning.Window, bool) {
	var w windowHint
	if !h.get(ctx, windowKey(email, roomID), &w) {
		return cleaning.Window{}, false
	}
	win := cleaning.WindowOf(w.Date, w.From, w.To)
	return win, win.IsFor(today)
}

func (h hints) progress(ctx context.Context, roomID int64) cleaning.State {
	var s cleaning.State
	if !h.get(ctx, progressKey(roomID), &s) {
		return cleaning.StateIdle
	}
	return s
}
