//go:build unit

package room_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-portal/internal/domain/room"
)

func validInput() room.FormInput {
	return room.FormInput{Name: "Deluxe Suite", Description: "Lake view", Capacity: 2, Price: 180}
}

func TestNewForm(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*room.FormInput)
		errIs  error
	}{
		{name: "valid", mutate: func(*room.FormInput) {}},
		{name: "name too short", mutate: func(in *room.FormInput) { in.Name = "Ab" }, errIs: room.ErrInvalidName},
		{name: "name too long", mutate: func(in *room.FormInput) { in.Name = "Abcdefghij Abcdefghij Abcdefghij Abcdefghij" }, errIs: room.ErrInvalidName},
		{name: "digits in name", mutate: func(in *room.FormInput) { in.Name = "Room 12" }, errIs: room.ErrNameCharacters},
		{name: "double space", mutate: func(in *room.FormInput) { in.Name = "Deluxe  Suite" }, errIs: room.ErrNameCharacters},
		{name: "short description", mutate: func(in *room.FormInput) { in.Description = "ok" }, errIs: room.ErrInvalidDescription},
		{name: "fractional price", mutate: func(in *room.FormInput) { in.Price = 99.5 }, errIs: room.ErrInvalidPrice},
		{name: "price too high", mutate: func(in *room.FormInput) { in.Price = 10001 }, errIs: room.ErrInvalidPrice},
		{name: "capacity seven", mutate: func(in *room.FormInput) { in.Capacity = 7 }, errIs: room.ErrInvalidCapacity},
		{name: "capacity zero", mutate: func(in *room.FormInput) { in.Capacity = 0 }, errIs: room.ErrInvalidCapacity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)
			form, err := room.NewForm(in)
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 180, form.Price)
		})
	}
}

func TestRoom_ExpiredAt(t *testing.T) {
	now := time.Date(2025, 4, 2, 12, 0, 0, 0, time.UTC)
	at := func(h int) time.Time { return time.Date(2025, 4, 2, h, 0, 0, 0, time.UTC) }

	r := room.Room{CleaningTime: &room.CleaningTime{From: at(10), To: at(11)}}
	assert.True(t, r.ExpiredAt(now))

	r.CleaningTime.To = at(13)
	assert.False(t, r.ExpiredAt(now))

	assert.False(t, room.Room{}.ExpiredAt(now))
}
