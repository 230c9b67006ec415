package backend

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"hotel-portal/internal/domain/activity"
	"hotel-portal/internal/domain/booking"
	"hotel-portal/internal/domain/calendar"
	"hotel-portal/internal/domain/room"
	"hotel-portal/internal/domain/uiconfig"
	"hotel-portal/internal/domain/user"
	"hotel-portal/internal/pkg/imgdata"
	"hotel-portal/internal/usecase/readmodel"
)

// flexID accepts the smart lock id as number, string or null.
type flexID string

func (f *flexID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexID(s)
		return nil
	}
	*f = flexID(b)
	return nil
}

type roomDTO struct {
	ID               int64    `json:"id"`
	Name             string   `json:"name"`
	Description      string   `json:"description"`
	Price            float64  `json:"price"`
	Capacity         int      `json:"capacity"`
	SmartLockID      flexID   `json:"smartLockId"`
	MainImage        string   `json:"mainImage"`
	AdditionalImages []string `json:"additionalImages"`
	LastCleanedAt    string   `json:"lastCleanedAt"`
	CleaningTimeFrom string   `json:"cleaningTimeFrom"`
	CleaningTimeTo   string   `json:"cleaningTimeTo"`
}

type cleaningTimeDTO struct {
	CleaningTimeFrom string `json:"cleaningTimeFrom"`
	CleaningTimeTo   string `json:"cleaningTimeTo"`
}

type timeslotDTO struct {
	ID           int64              `json:"id,omitempty"`
	DayOfWeek    string             `json:"dayOfWeek,omitempty"`
	SpecificDate calendar.Date      `json:"specificDate"`
	StartTime    calendar.ClockTime `json:"startTime"`
	EndTime      calendar.ClockTime `json:"endTime"`
}

type activityDTO struct {
	ID               int64         `json:"id"`
	Name             string        `json:"name"`
	Description      string        `json:"description"`
	Price            float64       `json:"price"`
	Capacity         int           `json:"capacity"`
	MainImage        string        `json:"mainImage"`
	AdditionalImages []string      `json:"additionalImages"`
	Timeslots        []timeslotDTO `json:"timeslots"`
	TimeslotInfos    []timeslotDTO `json:"activityTimeslotInfos"`
	Categories       string        `json:"categories"`
}

type slotDTO struct {
	ID        int64              `json:"id"`
	Date      calendar.Date      `json:"date"`
	StartTime calendar.ClockTime `json:"startTime"`
	EndTime   calendar.ClockTime `json:"endTime"`
	Capacity  int                `json:"capacity"`
	Occupied  int                `json:"occupied"`
}

type activityBookingDTO struct {
	ID           int64              `json:"id"`
	ActivityID   int64              `json:"activityId"`
	ActivityName string             `json:"activityName"`
	BookingDate  calendar.Date      `json:"bookingDate"`
	StartTime    calendar.ClockTime `json:"startTime"`
	EndTime      calendar.ClockTime `json:"endTime"`
	Date         calendar.Date      `json:"date"`
	Participants int                `json:"participants"`
	Paid         bool               `json:"paid"`
}

type activityBookingCreateDTO struct {
	ActivityID     int64         `json:"activityId"`
	ActivitySlotID int64         `json:"activitySlotId"`
	BookingDate    calendar.Date `json:"bookingDate"`
	Participants   int           `json:"participants"`
	UserEmail      string        `json:"userEmail,omitempty"`
}

// bookingDTO covers both the guest and the manager booking shapes.
type bookingDTO struct {
	ID             int64         `json:"id"`
	RoomID         int64         `json:"roomId"`
	UserID         int64         `json:"userId"`
	StartDate      calendar.Date `json:"startDate"`
	EndDate        calendar.Date `json:"endDate"`
	RoomName       string        `json:"roomName"`
	Price          float64       `json:"price"`
	IsPaid         bool          `json:"isPaid"`
	Status         string        `json:"status"`
	BookingNumber  string        `json:"bookingNumber"`
	BookingDate    calendar.Date `json:"bookingDate"`
	TotalAmount    float64       `json:"totalAmount"`
	NumberOfNights int           `json:"numberOfNights"`
	PaymentID      string        `json:"paymentId"`
	TransactionID  string        `json:"transactionId"`
	Email          string        `json:"email"`
	IsActive       bool          `json:"isActive"`
	FirstName      string        `json:"firstName"`
	LastName       string        `json:"lastName"`
	Address        string        `json:"address"`
	DateOfBirth    calendar.Date `json:"dateOfBirth"`
	Nationality    string        `json:"nationality"`
	PassportNumber string        `json:"passportNumber"`
	PhoneNumber    string        `json:"phoneNumber"`
	Gender         string        `json:"gender"`
	PlaceOfBirth   string        `json:"placeOfBirth"`
	Capacity       int           `json:"capacity"`
	LastCleanedAt  string        `json:"lastCleanedAt"`
}

type bookingCreateDTO struct {
	RoomID        int64         `json:"roomId"`
	UserID        *int64        `json:"userId"`
	StartDate     calendar.Date `json:"startDate"`
	EndDate       calendar.Date `json:"endDate"`
	RoomName      string        `json:"roomName"`
	PaymentMethod string        `json:"paymentMethod"`
}

type checkoutDTO struct {
	URL       string `json:"url"`
	SessionID string `json:"sessionId"`
}

type roomPaymentDTO struct {
	RoomID    int64 `json:"roomId"`
	BookingID int64 `json:"bookingId"`
}

type activityPaymentDTO struct {
	ActivityID        int64 `json:"activityId"`
	ActivityBookingID int64 `json:"activityBookingId"`
}

type checkInStatusDTO struct {
	BookingID int64  `json:"bookingId"`
	Email     string `json:"email"`
}

type guestListDTO struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

type occupancyDTO struct {
	RoomID int64  `json:"roomId"`
	Status string `json:"status"`
}

type keyStatusDTO struct {
	RoomID      int64  `json:"roomId"`
	SmartLockID flexID `json:"smartLockId"`
	Status      string `json:"status"`
}

type checkOutDTO struct {
	BookingID int64  `json:"bookingId"`
	Email     string `json:"email"`
}

type inviteDTO struct {
	BookingID  int64  `json:"bookingId"`
	Email      string `json:"email"`
	OwnerEmail string `json:"ownerEmail"`
}

type credentialsDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type guestDTO struct {
	FirstName      string        `json:"firstName"`
	LastName       string        `json:"lastName"`
	Email          string        `json:"email"`
	DateOfBirth    calendar.Date `json:"dateOfBirth"`
	PlaceOfBirth   string        `json:"placeOfBirth,omitempty"`
	Gender         string        `json:"gender,omitempty"`
	Nationality    string        `json:"nationality,omitempty"`
	Address        string        `json:"address,omitempty"`
	PassportNumber string        `json:"passportNumber,omitempty"`
	PhoneNumber    string        `json:"phoneNumber,omitempty"`
	Password       string        `json:"password,omitempty"`
}

type employeeDTO struct {
	ID          int64  `json:"id,omitempty"`
	Email       string `json:"email,omitempty"`
	Password    string `json:"password,omitempty"`
	FirstName   string `json:"firstName,omitempty"`
	LastName    string `json:"lastName,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	RoleType    string `json:"roleType,omitempty"`
}

type uiConfigDTO struct {
	ID               int64    `json:"id"`
	HotelName        string   `json:"hotelName"`
	DescriptionShort string   `json:"descriptionShort"`
	Description      string   `json:"description"`
	Address          string   `json:"address"`
	RoomCleaning     bool     `json:"roomCleaning"`
	DigitalCheckIn   bool     `json:"digitalCheckIn"`
	Activities       bool     `json:"activities"`
	Communication    bool     `json:"communication"`
	Nuki             bool     `json:"nuki"`
	HalfBoard        bool     `json:"halfBoard"`
	PriceHalfBoard   float64  `json:"priceHalfBoard"`
	Images           []string `json:"images"`
}

func mapPage[S, T any](p readmodel.Page[S], f func(S) T) readmodel.Page[T] {
	out := readmodel.Page[T]{TotalElements: p.TotalElements, Content: make([]T, len(p.Content))}
	for i, s := range p.Content {
		out.Content[i] = f(s)
	}
	return out
}

func mapSlice[S, T any](in []S, f func(S) T) []T {
	out := make([]T, len(in))
	for i, s := range in {
		out[i] = f(s)
	}
	return out
}

// dateTime parses an optional LocalDateTime in the hotel's zone; malformed
// values read as zero.
func (c *Client) dateTime(s string) time.Time {
	if strings.TrimSpace(s) == "" {
		return time.Time{}
	}
	t, err := calendar.ParseDateTime(s, c.loc)
	if err != nil {
		c.logger.Debug("unparsable backend date-time", "value", s)
		return time.Time{}
	}
	return t
}

func (c *Client) thumbnail(b64 string) string {
	thumb, err := imgdata.Thumbnail(b64, c.thumbWidth)
	if err != nil {
		c.logger.Debug("thumbnail failed, sending original", "error", err)
		return imgdata.DataURL(b64)
	}
	return thumb
}

// listRoom is the card shape: thumbnail only.
func (c *Client) listRoom(d roomDTO) room.Room {
	r := c.detailRoom(d)
	r.MainImage = c.thumbnail(d.MainImage)
	r.AdditionalImages = nil
	return r
}

func (c *Client) detailRoom(d roomDTO) room.Room {
	r := room.Room{
		ID:               d.ID,
		Name:             d.Name,
		Description:      d.Description,
		Capacity:         d.Capacity,
		Price:            d.Price,
		SmartLockID:      string(d.SmartLockID),
		MainImage:        imgdata.DataURL(d.MainImage),
		AdditionalImages: imgdata.DataURLs(d.AdditionalImages),
		LastCleanedAt:    c.dateTime(d.LastCleanedAt),
	}
	from, to := c.dateTime(d.CleaningTimeFrom), c.dateTime(d.CleaningTimeTo)
	if !from.IsZero() || !to.IsZero() {
		r.CleaningTime = &room.CleaningTime{From: from, To: to}
	}
	return r
}

func toTimeslot(d timeslotDTO) activity.Timeslot {
	day, _ := activity.ParseDayOfWeek(d.DayOfWeek)
	return activity.Timeslot{
		ID:           d.ID,
		DayOfWeek:    day,
		SpecificDate: d.SpecificDate,
		Start:        d.StartTime,
		End:          d.EndTime,
	}
}

func fromTimeslot(t activity.Timeslot) timeslotDTO {
	return timeslotDTO{
		ID:           t.ID,
		DayOfWeek:    string(t.DayOfWeek),
		SpecificDate: t.SpecificDate,
		StartTime:    t.Start,
		EndTime:      t.End,
	}
}

func (c *Client) listActivity(d activityDTO) activity.Activity {
	a := c.detailActivity(d)
	a.MainImage = c.thumbnail(d.MainImage)
	a.AdditionalImages = nil
	return a
}

func (c *Client) detailActivity(d activityDTO) activity.Activity {
	slots := d.Timeslots
	if len(slots) == 0 {
		slots = d.TimeslotInfos
	}
	return activity.Activity{
		ID:               d.ID,
		Name:             d.Name,
		Description:      d.Description,
		Capacity:         d.Capacity,
		Price:            d.Price,
		MainImage:        imgdata.DataURL(d.MainImage),
		AdditionalImages: imgdata.DataURLs(d.AdditionalImages),
		Categories:       activity.SplitCategories(d.Categories),
		Timeslots:        mapSlice(slots, toTimeslot),
	}
}

func toSlot(d slotDTO) activity.Slot {
	return activity.Slot{
		ID:       d.ID,
		Date:     d.Date,
		Start:    d.StartTime,
		End:      d.EndTime,
		Capacity: d.Capacity,
		Occupied: d.Occupied,
	}
}

func toActivityBooking(d activityBookingDTO) readmodel.ActivityBookingRM {
	return readmodel.ActivityBookingRM{
		ID:           d.ID,
		ActivityID:   d.ActivityID,
		ActivityName: d.ActivityName,
		BookingDate:  d.BookingDate,
		Date:         d.Date,
		Start:        d.StartTime,
		End:          d.EndTime,
		Participants: d.Participants,
		Paid:         d.Paid,
	}
}

func toBooking(d bookingDTO) booking.Booking {
	return booking.Booking{
		ID:           d.ID,
		Number:       d.BookingNumber,
		RoomID:       d.RoomID,
		RoomName:     d.RoomName,
		UserID:       d.UserID,
		UserFullName: strings.TrimSpace(d.FirstName + " " + d.LastName),
		Stay:         booking.StayOf(d.StartDate, d.EndDate),
		Price:        d.Price,
		Status:       booking.Status(strings.ToUpper(d.Status)),
		Paid:         d.IsPaid,
	}
}

func (c *Client) toDetailedBooking(d bookingDTO) readmodel.DetailedBookingRM {
	txn := d.TransactionID
	if txn == "" {
		txn = d.PaymentID
	}
	return readmodel.DetailedBookingRM{
		ID:             d.ID,
		BookingNumber:  d.BookingNumber,
		RoomName:       d.RoomName,
		Stay:           booking.StayOf(d.StartDate, d.EndDate),
		Price:          d.Price,
		Email:          d.Email,
		FirstName:      d.FirstName,
		LastName:       d.LastName,
		Address:        d.Address,
		Nationality:    d.Nationality,
		PhoneNumber:    d.PhoneNumber,
		PassportNumber: d.PassportNumber,
		Gender:         d.Gender,
		DateOfBirth:    d.DateOfBirth,
		PlaceOfBirth:   d.PlaceOfBirth,
		IsActive:       d.IsActive,
		Capacity:       d.Capacity,
		LastCleanedAt:  c.dateTime(d.LastCleanedAt),
		BookingDate:    d.BookingDate,
		IsPaid:         d.IsPaid,
		Status:         booking.Status(strings.ToUpper(d.Status)),
		TotalAmount:    d.TotalAmount,
		NumberOfNights: d.NumberOfNights,
		TransactionID:  txn,
	}
}

func toCheckInRecord(d checkInStatusDTO) booking.CheckInRecord {
	return booking.CheckInRecord{BookingID: d.BookingID, Email: d.Email}
}

func toGuestRM(d guestListDTO) readmodel.GuestRM {
	return readmodel.GuestRM{FirstName: d.FirstName, LastName: d.LastName, Email: d.Email}
}

func toGuest(d guestDTO) user.Guest {
	return user.Guest{
		FirstName:      d.FirstName,
		LastName:       d.LastName,
		Email:          d.Email,
		DateOfBirth:    d.DateOfBirth,
		PlaceOfBirth:   d.PlaceOfBirth,
		Gender:         user.Gender(d.Gender),
		Nationality:    d.Nationality,
		Address:        d.Address,
		PassportNumber: d.PassportNumber,
		PhoneNumber:    d.PhoneNumber,
	}
}

func fromGuestForm(f user.GuestForm) guestDTO {
	return guestDTO{
		FirstName:      f.FirstName,
		LastName:       f.LastName,
		Email:          f.Email,
		DateOfBirth:    f.DateOfBirth,
		PlaceOfBirth:   f.PlaceOfBirth,
		Gender:         string(f.Gender),
		Nationality:    f.Nationality,
		Address:        f.Address,
		PassportNumber: f.PassportNumber,
		PhoneNumber:    f.PhoneNumber,
		Password:       f.Password,
	}
}

func toEmployee(d employeeDTO) user.Employee {
	return user.Employee{
		ID:          d.ID,
		Email:       d.Email,
		FirstName:   d.FirstName,
		LastName:    d.LastName,
		PhoneNumber: d.PhoneNumber,
		RoleType:    user.RoleType(d.RoleType),
	}
}

func fromEmployeeForm(f user.EmployeeForm) employeeDTO {
	return employeeDTO{
		Email:       f.Email,
		Password:    f.Password,
		FirstName:   f.FirstName,
		LastName:    f.LastName,
		PhoneNumber: f.PhoneNumber,
		RoleType:    f.RoleType.String(),
	}
}

func toUIConfig(d uiConfigDTO) uiconfig.Config {
	return uiconfig.Config{
		ID:               d.ID,
		HotelName:        d.HotelName,
		DescriptionShort: d.DescriptionShort,
		Description:      d.Description,
		Address:          d.Address,
		Modules: uiconfig.Modules{
			RoomCleaning:   d.RoomCleaning,
			DigitalCheckIn: d.DigitalCheckIn,
			Activities:     d.Activities,
			Communication:  d.Communication,
			Nuki:           d.Nuki,
			HalfBoard:      d.HalfBoard,
			PriceHalfBoard: d.PriceHalfBoard,
		},
		Images: imgdata.DataURLs(d.Images),
	}
}

func toKeyStatus(d keyStatusDTO) readmodel.KeyStatusRM {
	return readmodel.KeyStatusRM{RoomID: d.RoomID, SmartLockID: string(d.SmartLockID), Status: d.Status}
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
