package usecase

import (
	"cmp"
	"context"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/skip2/go-qrcode"
	"golang.org/x/sync/errgroup"

	"hotel-portal/internal/domain/booking"
	"hotel-portal/internal/domain/calendar"
	"hotel-portal/internal/domain/pricing"
	"hotel-portal/internal/domain/room"
	"hotel-portal/internal/domain/session"
	"hotel-portal/internal/pkg/clock"
	"hotel-portal/internal/pkg/config"
	"hotel-portal/internal/pkg/errs"
	"hotel-portal/internal/infra/backend"
	"hotel-portal/internal/usecase/notice"
	"hotel-portal/internal/usecase/queries"
	"hotel-portal/internal/usecase/readmodel"
)

//go:generate mockgen -source=booking.go -destination=../testutil/mock/usecase/mock_booking.go -package=usecasemock

const (
	MsgBookingCreated   = "Booking created successfully"
	MsgBookingCancelled = "Booking canceled successfully"
	MsgBookingPaid      = "Booking marked as paid successfully."
	MsgPaymentSucceeded = "Payment successful. Thank you!"
	MsgPaymentCancelled = "Payment was canceled. Your booking remains unpaid."
	MsgCheckedOut       = "Checked out successfully."
	MsgPaymentConflict  = "Payment conflict occurred."
	MsgPaymentFailed    = "Payment failed. Please try again."

	passSize = 256
)

var ErrBookingNotFound = notice.New(http.StatusNotFound, "Could not retrieve booking.")

type BookingGateway interface {
	GetRoom(ctx context.Context, id int64) (room.Room, error)
	CreateBooking(ctx context.Context, r booking.Request) (booking.Booking, error)
	RoomCheckout(ctx context.Context, roomID, bookingID int64) (readmodel.CheckoutRM, error)
	MyBookings(ctx context.Context) ([]booking.Booking, error)
	CheckInStatus(ctx context.Context) ([]booking.CheckInRecord, error)
	GuestCheckInStatus(ctx context.Context, email string) ([]booking.CheckInRecord, error)
	CancelBooking(ctx context.Context, id int64) error
	ConfirmPayment(ctx context.Context, id int64) error
	MarkBookingPaid(ctx context.Context, id int64) error
	BookingPDF(ctx context.Context, id int64, docType string) (readmodel.DocumentRM, error)
	ManagerBookings(ctx context.Context, p queries.PageRequest) (readmodel.Page[readmodel.DetailedBookingRM], error)
	CheckOut(ctx context.Context, bookingID int64, email string) error
}

// BookingInput is the raw booking form.
type BookingInput struct {
	RoomID        int64
	RoomName      string
	Start         calendar.Date
	End           calendar.Date
	PaymentMethod booking.PaymentMethod
}

// BookingResult carries either a payment redirect or a confirmation message.
type BookingResult struct {
	Booking     booking.Booking
	RedirectURL string
	Message     string
}

type PaymentOutcome string

const (
	PaymentSuccess PaymentOutcome = "success"
	PaymentCancel  PaymentOutcome = "cancel"
)

func (o PaymentOutcome) IsValid() bool {
	return o == PaymentSuccess || o == PaymentCancel
}

var ErrInvalidOutcome = errs.Validation("Unknown payment outcome.")

type BookingUseCase interface {
	Quote(ctx context.Context, roomID int64, start, end calendar.Date) (pricing.Estimate, error)
	Create(ctx context.Context, sess session.Session, in BookingInput) (BookingResult, error)
	Mine(ctx context.Context, sess session.Session) ([]readmodel.GuestBookingRM, error)
	Cancel(ctx context.Context, sess session.Session, id int64) (string, error)
	PaymentReturn(ctx context.Context, sess session.Session, id int64, outcome PaymentOutcome) (string, error)
	Document(ctx context.Context, sess session.Session, id int64, docType string) (readmodel.DocumentRM, error)
	Pass(ctx context.Context, sess session.Session, id int64) ([]byte, error)
	CheckOut(ctx context.Context, sess session.Session, bookingID int64) (string, error)
	Manager(ctx context.Context, sess session.Session, p queries.PageRequest) (readmodel.Page[readmodel.ManagerBookingRM], error)
	MarkPaid(ctx context.Context, sess session.Session, id int64) (string, error)
}

type bookingUseCaseImpl struct {
	gateway BookingGateway
	clock   clock.Clock
	fanout  int
	logger  *slog.Logger
}

func NewBookingUseCase(gateway BookingGateway, clk clock.Clock, cfg config.Config, logger *slog.Logger) BookingUseCase {
	return &bookingUseCaseImpl{
		gateway: gateway,
		clock:   clk,
		fanout:  cfg.Backend.Fanout,
		logger:  logger,
	}
}

func (u *bookingUseCaseImpl) Quote(ctx context.Context, roomID int64, start, end calendar.Date) (pricing.Estimate, error) {
	stay, err := booking.NewStay(start, end)
	if err != nil {
		return pricing.Estimate{}, err
	}
	r, err := u.gateway.GetRoom(ctx, roomID)
	if err != nil {
		return pricing.Estimate{}, notice.Wrap(err, notice.Policy{RawNotFound: true})
	}
	return booking.Quote(stay, pricing.FromAmount(r.Price))
}

func (u *bookingUseCaseImpl) Create(ctx context.Context, sess session.Session, in BookingInput) (BookingResult, error) {
	req, err := booking.NewRequest(in.RoomID, in.RoomName, in.Start, in.End, in.PaymentMethod)
	if err != nil {
		return BookingResult{}, err
	}

	ctx = backend.WithCredential(ctx, sess.Token())
	created, err := u.gateway.CreateBooking(ctx, req)
	if err != nil {
		return BookingResult{}, notice.Wrap(err, notice.Default)
	}

	if req.PaymentMethod == booking.PayCash {
		return BookingResult{Booking: created, Message: MsgBookingCreated}, nil
	}

	checkout, err := u.gateway.RoomCheckout(ctx, req.RoomID, created.ID)
	if err != nil {
		return BookingResult{Booking: created}, paymentError(err)
	}
	return BookingResult{Booking: created, RedirectURL: checkout.URL}, nil
}

// paymentError words a failed checkout: a conflict shows its first sentence,
// everything else the generic retry hint.
func paymentError(err error) error {
	if apiErr, ok := backend.AsAPIError(err); ok && apiErr.Status == http.StatusConflict {
		msg := strings.TrimSpace(backend.FirstSentence(apiErr.Message))
		if msg == "" {
			msg = MsgPaymentConflict
		}
		return notice.Override(err, msg)
	}
	return notice.Override(err, MsgPaymentFailed)
}

func (u *bookingUseCaseImpl) Mine(ctx context.Context, sess session.Session) ([]readmodel.GuestBookingRM, error) {
	ctx = backend.WithCredential(ctx, sess.Token())

	var (
		bookings []booking.Booking
		records  []booking.CheckInRecord
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		bookings, err = u.gateway.MyBookings(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		records, err = u.gateway.CheckInStatus(gctx)
		if err != nil {
			u.logger.Warn("check-in status unavailable", slog.String("email", sess.Email()), slog.Any("error", err))
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, notice.Wrap(err, notice.Policy{Fallback: "Error loading bookings"})
	}

	now := u.clock.Now()
	out := make([]readmodel.GuestBookingRM, len(bookings))
	for i, b := range bookings {
		out[i] = readmodel.GuestBookingRM{
			Booking: b,
			CheckIn:  booking.CheckInStatus(b.ID, b.Status, records),
			Started:  b.Stay.HasStarted(now),
			IsActive: b.IsActive(now),
		}
	}
	slices.SortStableFunc(out, func(a, b readmodel.GuestBookingRM) int {
		if c := a.Stay.Start().Compare(b.Stay.Start()); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return out, nil
}

func (u *bookingUseCaseImpl) Cancel(ctx context.Context, sess session.Session, id int64) (string, error) {
	err := u.gateway.CancelBooking(backend.WithCredential(ctx, sess.Token()), id)
	if err != nil {
		if apiErr, ok := backend.AsAPIError(err); ok && apiErr.Status == http.StatusConflict {
			return "", notice.Override(err, backend.FirstSentence(apiErr.Message))
		}
		return "", notice.Wrap(err, notice.Policy{Fallback: "Error canceling booking"})
	}
	return MsgBookingCancelled, nil
}

// PaymentReturn handles the browser coming back from the payment page. Only
// a successful outcome asks the backend to settle the booking.
func (u *bookingUseCaseImpl) PaymentReturn(ctx context.Context, sess session.Session, id int64, outcome PaymentOutcome) (string, error) {
	switch outcome {
	case PaymentCancel:
		return MsgPaymentCancelled, nil
	case PaymentSuccess:
		if err := u.gateway.ConfirmPayment(backend.WithCredential(ctx, sess.Token()), id); err != nil {
			return "", notice.Wrap(err, notice.Default)
		}
		return MsgPaymentSucceeded, nil
	default:
		return "", ErrInvalidOutcome
	}
}

func (u *bookingUseCaseImpl) Document(ctx context.Context, sess session.Session, id int64, docType string) (readmodel.DocumentRM, error) {
	if !booking.IsDocumentType(docType) {
		return readmodel.DocumentRM{}, booking.ErrInvalidDocument
	}
	doc, err := u.gateway.BookingPDF(backend.WithCredential(ctx, sess.Token()), id, docType)
	if err != nil {
		return readmodel.DocumentRM{}, notice.Wrap(err, notice.Policy{Fallback: "Error downloading PDF"})
	}
	return doc, nil
}

// Pass renders a QR code of the booking number for the front desk. Only the
// caller's own bookings qualify.
func (u *bookingUseCaseImpl) Pass(ctx context.Context, sess session.Session, id int64) ([]byte, error) {
	bookings, err := u.gateway.MyBookings(backend.WithCredential(ctx, sess.Token()))
	if err != nil {
		return nil, notice.Wrap(err, notice.Default)
	}
	i := slices.IndexFunc(bookings, func(b booking.Booking) bool { return b.ID == id })
	if i < 0 {
		return nil, ErrBookingNotFound
	}
	content := bookings[i].Number
	if content == "" {
		content = formatID(id)
	}
	png, err := qrcode.Encode(content, qrcode.Medium, passSize)
	if err != nil {
		return nil, errs.Wrap(err, "encode booking pass")
	}
	return png, nil
}

func (u *bookingUseCaseImpl) CheckOut(ctx context.Context, sess session.Session, bookingID int64) (string, error) {
	if err := u.gateway.CheckOut(backend.WithCredential(ctx, sess.Token()), bookingID, sess.Email()); err != nil {
		return "", notice.Wrap(err, notice.Policy{Flatten: notice.Default.Flatten, Fallback: "Error checking out"})
	}
	return MsgCheckedOut, nil
}

// Manager lists all bookings and resolves each guest's check-in marker. The
// status of every distinct guest is fetched once, concurrently; a failed
// lookup leaves that guest's bookings at "not checked in".
func (u *bookingUseCaseImpl) Manager(ctx context.Context, sess session.Session, p queries.PageRequest) (readmodel.Page[readmodel.ManagerBookingRM], error) {
	ctx = backend.WithCredential(ctx, sess.Token())
	page, err := u.gateway.ManagerBookings(ctx, p.Normalize())
	if err != nil {
		return readmodel.Page[readmodel.ManagerBookingRM]{}, notice.Wrap(err, notice.Policy{Fallback: "Error loading bookings"})
	}

	var emails []string
	for _, b := range page.Content {
		if b.Email != "" && !slices.Contains(emails, b.Email) {
			emails = append(emails, b.Email)
		}
	}
	records := make([][]booking.CheckInRecord, len(emails))
	fanOut(len(emails), u.fanout, func(i int) {
		recs, err := u.gateway.GuestCheckInStatus(ctx, emails[i])
		if err != nil {
			u.logger.Warn("guest check-in status unavailable", slog.String("guest", emails[i]), slog.Any("error", err))
			return
		}
		records[i] = recs
	})
	byEmail := make(map[string][]booking.CheckInRecord, len(emails))
	for i, e := range emails {
		byEmail[e] = records[i]
	}

	out := readmodel.Page[readmodel.ManagerBookingRM]{
		TotalElements: page.TotalElements,
		Content:       make([]readmodel.ManagerBookingRM, len(page.Content)),
	}
	now := u.clock.Now()
	for i, b := range page.Content {
		b.IsActive = b.Stay.Contains(now)
		out.Content[i] = readmodel.ManagerBookingRM{
			DetailedBookingRM: b,
			CheckIn:           booking.CheckInStatus(b.ID, b.Status, byEmail[b.Email]),
		}
	}
	// ACTIVE bookings lead, the rest follow by arrival date
	slices.SortStableFunc(out.Content, func(a, b readmodel.ManagerBookingRM) int {
		aa, ba := a.Status == booking.StatusActive, b.Status == booking.StatusActive
		if aa != ba {
			if aa {
				return -1
			}
			return 1
		}
		return a.Stay.Start().Compare(b.Stay.Start())
	})
	return out, nil
}

func (u *bookingUseCaseImpl) MarkPaid(ctx context.Context, sess session.Session, id int64) (string, error) {
	if err := u.gateway.MarkBookingPaid(backend.WithCredential(ctx, sess.Token()), id); err != nil {
		return "", notice.Wrap(err, notice.Default)
	}
	return MsgBookingPaid, nil
}
