package response

import (
	"hotel-portal/internal/usecase/readmodel"
)

type MyRoomResponse struct {
	RoomInfo      RoomResponse           `json:"room"`
	BookingID     int64                  `json:"bookingId"`
	IsOwner       bool                   `json:"isOwner"`
	Occupants     []GuestSummaryResponse `json:"guests"`
	KeyStatus     string                 `json:"keyStatus"`
	CleaningFrom  string                 `json:"cleaningFrom,omitempty"`
	CleaningTo    string                 `json:"cleaningTo,omitempty"`
	TimeOptions   []string               `json:"timeOptions"`
	CleaningInUse bool                   `json:"cleaningInUse"`
}

func FromMyRooms(rows []readmodel.MyRoomRM) []MyRoomResponse {
	return mapSlice(rows, func(r readmodel.MyRoomRM) MyRoomResponse {
		var res MyRoomResponse
		copyFields(&res, &r)
		res.RoomInfo = FromRoom(r.Room)
		res.Occupants = FromGuestSummaries(r.Guests)
		if res.TimeOptions == nil {
			res.TimeOptions = []string{}
		}
		return res
	})
}

type CleaningRowResponse struct {
	RoomInfo         RoomResponse `json:"room"`
	Occupied         bool         `json:"occupied"`
	InProgress       bool         `json:"inProgress"`
	LastCleanedLabel string       `json:"lastCleanedLabel"`
	Expired          bool         `json:"expired"`
	Error            string       `json:"error,omitempty"`
}

func FromCleaningBoard(p readmodel.Page[readmodel.CleaningRowRM]) Page[CleaningRowResponse] {
	return mapPage(p, func(r readmodel.CleaningRowRM) CleaningRowResponse {
		var res CleaningRowResponse
		copyFields(&res, &r)
		res.RoomInfo = FromRoom(r.Room)
		res.Error = r.Err
		return res
	})
}
