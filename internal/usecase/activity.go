package usecase

import (
	"context"
	"log/slog"
	"net/http"
	"slices"

	"golang.org/x/sync/errgroup"

	"hotel-portal/internal/domain/activity"
	"hotel-portal/internal/domain/calendar"
	"hotel-portal/internal/domain/pricing"
	"hotel-portal/internal/domain/session"
	"hotel-portal/internal/infra/backend"
	"hotel-portal/internal/pkg/clock"
	"hotel-portal/internal/usecase/notice"
	"hotel-portal/internal/usecase/queries"
	"hotel-portal/internal/usecase/readmodel"
)

//go:generate mockgen -source=activity.go -destination=../testutil/mock/usecase/mock_activity.go -package=usecasemock

const (
	MsgActivityCreated = "Activity created successfully!"
	MsgActivityUpdated = "Activity updated successfully!"
	MsgActivityDeleted = "Activity deleted successfully!"
)

// bookingPolicy words a failed activity booking: field errors of 422, 409
// and 404 are shown, anything else is unknown.
var bookingPolicy = notice.Policy{
	Flatten:  []int{http.StatusUnprocessableEntity, http.StatusConflict, http.StatusNotFound},
	Fallback: notice.UnknownError,
}

type ActivityGateway interface {
	AllActivities(ctx context.Context, q queries.ActivitySearch) (readmodel.Page[activity.Activity], error)
	SearchActivities(ctx context.Context, q queries.ActivitySearch) (readmodel.Page[activity.Activity], error)
	RecommendedActivity(ctx context.Context) (activity.Activity, error)
	GetActivity(ctx context.Context, id int64) (activity.Activity, error)
	Slots(ctx context.Context, activityID int64, q queries.SlotSearch) (readmodel.Page[activity.Slot], error)
	SearchSlots(ctx context.Context, activityID int64, q queries.SlotSearch) (readmodel.Page[activity.Slot], error)
	BookActivity(ctx context.Context, r backend.ActivityBookingRequest) (readmodel.ActivityBookingRM, error)
	ActivityCheckout(ctx context.Context, activityID, activityBookingID int64) (readmodel.CheckoutRM, error)
	MarkActivityBookingPaid(ctx context.Context, id int64) error
	MyActivityBookings(ctx context.Context) ([]readmodel.ActivityBookingRM, error)
	CreateActivity(ctx context.Context, f activity.Form, images backend.Images) (activity.Activity, error)
	UpdateActivity(ctx context.Context, id int64, f activity.Form, images backend.Images) (activity.Activity, error)
	DeleteActivity(ctx context.Context, id int64) error
}

// SlotBooking is the slot the caller picked together with the group size.
// Its capacity figures are what the browser showed and only serve the early
// rejection; Book re-reads the slot before deciding.
type SlotBooking struct {
	Slot         *activity.Slot
	Participants int
}

type ActivityUseCase interface {
	List(ctx context.Context, q queries.ActivitySearch) (readmodel.Page[activity.Activity], error)
	Recommended(ctx context.Context) (activity.Activity, error)
	Get(ctx context.Context, id int64) (activity.Activity, error)
	ListSlots(ctx context.Context, activityID int64, q queries.SlotSearch) (readmodel.SlotListRM, error)
	Book(ctx context.Context, sess session.Session, activityID int64, in SlotBooking) (BookingResult, error)
	Mine(ctx context.Context, sess session.Session) ([]readmodel.ActivityBookingRM, error)
	PaymentReturn(ctx context.Context, sess session.Session, id int64, outcome PaymentOutcome) (string, error)
	Create(ctx context.Context, sess session.Session, in activity.FormInput, images backend.Images) (activity.Activity, string, error)
	Update(ctx context.Context, sess session.Session, id int64, in activity.FormInput, images backend.Images) (activity.Activity, string, error)
	Delete(ctx context.Context, sess session.Session, id int64) (string, error)
}

type activityUseCaseImpl struct {
	gateway ActivityGateway
	clock   clock.Clock
	logger  *slog.Logger
}

func NewActivityUseCase(gateway ActivityGateway, clk clock.Clock, logger *slog.Logger) ActivityUseCase {
	return &activityUseCaseImpl{
		gateway: gateway,
		clock:   clk,
		logger:  logger,
	}
}

func (u *activityUseCaseImpl) List(ctx context.Context, q queries.ActivitySearch) (readmodel.Page[activity.Activity], error) {
	if q.PageSize <= 0 {
		q.PageSize = queries.DefaultPageSize
	}
	if q.PageIndex < 0 {
		q.PageIndex = 0
	}

	var (
		page readmodel.Page[activity.Activity]
		err  error
	)
	if q.IsEmpty() {
		page, err = u.gateway.AllActivities(ctx, q)
	} else {
		page, err = u.gateway.SearchActivities(ctx, q)
	}
	if err != nil {
		return readmodel.Page[activity.Activity]{}, notice.Wrap(err, notice.Policy{Fallback: "Error loading activities"})
	}
	return page, nil
}

func (u *activityUseCaseImpl) Recommended(ctx context.Context) (activity.Activity, error) {
	a, err := u.gateway.RecommendedActivity(ctx)
	if err != nil {
		return activity.Activity{}, notice.Wrap(err, notice.Policy{RawNotFound: true})
	}
	return a, nil
}

func (u *activityUseCaseImpl) Get(ctx context.Context, id int64) (activity.Activity, error) {
	a, err := u.gateway.GetActivity(ctx, id)
	if err != nil {
		return activity.Activity{}, notice.Wrap(err, notice.Policy{RawNotFound: true})
	}
	return a, nil
}

// ListSlots loads a page of slots next to the activity itself, which supplies
// the per-person price for the estimate.
func (u *activityUseCaseImpl) ListSlots(ctx context.Context, activityID int64, q queries.SlotSearch) (readmodel.SlotListRM, error) {
	filter := activity.SlotFilter{Date: q.Date, Participants: q.Participants}
	if err := filter.Validate(calendar.DateOf(u.clock.Now())); err != nil {
		return readmodel.SlotListRM{}, err
	}
	if q.PageSize <= 0 {
		q.PageSize = queries.DefaultPageSize
	}

	var (
		slots readmodel.Page[activity.Slot]
		act   activity.Activity
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if filter.IsEmpty() {
			slots, err = u.gateway.Slots(gctx, activityID, q)
		} else {
			slots, err = u.gateway.SearchSlots(gctx, activityID, q)
		}
		return err
	})
	g.Go(func() error {
		var err error
		act, err = u.gateway.GetActivity(gctx, activityID)
		return err
	})
	if err := g.Wait(); err != nil {
		return readmodel.SlotListRM{}, notice.Wrap(err, notice.Policy{RawNotFound: true})
	}

	out := readmodel.SlotListRM{
		Slots:     slots,
		PerPerson: pricing.FromAmount(act.Price),
	}
	if q.Participants > 0 {
		est, err := activity.ParticipantEstimate(q.Participants, out.PerPerson)
		if err != nil {
			return readmodel.SlotListRM{}, err
		}
		out.Estimate = &est
	}
	return out, nil
}

// Book checks the selected slot against the current listing, then creates
// the booking and the payment session. Nothing is sent when the group does
// not fit.
func (u *activityUseCaseImpl) Book(ctx context.Context, sess session.Session, activityID int64, in SlotBooking) (BookingResult, error) {
	if err := activity.CheckBooking(in.Slot, in.Participants); err != nil {
		return BookingResult{}, err
	}

	ctx = backend.WithCredential(ctx, sess.Token())
	current, err := u.currentSlot(ctx, activityID, in.Slot)
	if err != nil {
		return BookingResult{}, err
	}
	if err := activity.CheckBooking(&current, in.Participants); err != nil {
		return BookingResult{}, err
	}

	created, err := u.gateway.BookActivity(ctx, backend.ActivityBookingRequest{
		ActivityID:   activityID,
		SlotID:       in.Slot.ID,
		Date:         in.Slot.Date,
		Participants: in.Participants,
		UserEmail:    sess.Email(),
	})
	if err != nil {
		return BookingResult{}, notice.Wrap(err, bookingPolicy)
	}

	checkout, err := u.gateway.ActivityCheckout(ctx, activityID, created.ID)
	if err != nil {
		return BookingResult{}, notice.Wrap(err, bookingPolicy)
	}
	u.logger.Info("activity booked",
		slog.Int64("activity_id", activityID),
		slog.Int64("activity_booking_id", created.ID),
		slog.Int("participants", in.Participants),
	)
	return BookingResult{RedirectURL: checkout.URL}, nil
}

// currentSlot looks the picked slot up in the backend's listing for its date.
func (u *activityUseCaseImpl) currentSlot(ctx context.Context, activityID int64, picked *activity.Slot) (activity.Slot, error) {
	q := queries.SlotSearch{PageSize: queries.MaxPageSize, Date: picked.Date}
	var (
		page readmodel.Page[activity.Slot]
		err  error
	)
	if q.Date.IsZero() {
		page, err = u.gateway.Slots(ctx, activityID, q)
	} else {
		page, err = u.gateway.SearchSlots(ctx, activityID, q)
	}
	if err != nil {
		return activity.Slot{}, notice.Wrap(err, bookingPolicy)
	}
	i := slices.IndexFunc(page.Content, func(sl activity.Slot) bool { return sl.ID == picked.ID })
	if i < 0 {
		return activity.Slot{}, activity.ErrSlotUnavailable
	}
	return page.Content[i], nil
}

func (u *activityUseCaseImpl) Mine(ctx context.Context, sess session.Session) ([]readmodel.ActivityBookingRM, error) {
	out, err := u.gateway.MyActivityBookings(backend.WithCredential(ctx, sess.Token()))
	if err != nil {
		return nil, notice.Wrap(err, notice.Policy{Fallback: "Error loading activity bookings"})
	}
	return out, nil
}

// PaymentReturn marks the activity booking as paid only on success. A
// cancelled payment leaves the booking untouched.
func (u *activityUseCaseImpl) PaymentReturn(ctx context.Context, sess session.Session, id int64, outcome PaymentOutcome) (string, error) {
	switch outcome {
	case PaymentCancel:
		return MsgPaymentCancelled, nil
	case PaymentSuccess:
		if err := u.gateway.MarkActivityBookingPaid(backend.WithCredential(ctx, sess.Token()), id); err != nil {
			return "", notice.Wrap(err, notice.Default)
		}
		return MsgPaymentSucceeded, nil
	default:
		return "", ErrInvalidOutcome
	}
}

func (u *activityUseCaseImpl) Create(ctx context.Context, sess session.Session, in activity.FormInput, images backend.Images) (activity.Activity, string, error) {
	form, err := activity.NewForm(in, u.clock.Now())
	if err != nil {
		return activity.Activity{}, "", err
	}
	a, err := u.gateway.CreateActivity(backend.WithCredential(ctx, sess.Token()), form, images)
	if err != nil {
		return activity.Activity{}, "", notice.Wrap(err, notice.Default)
	}
	return a, MsgActivityCreated, nil
}

func (u *activityUseCaseImpl) Update(ctx context.Context, sess session.Session, id int64, in activity.FormInput, images backend.Images) (activity.Activity, string, error) {
	form, err := activity.NewForm(in, u.clock.Now())
	if err != nil {
		return activity.Activity{}, "", err
	}
	a, err := u.gateway.UpdateActivity(backend.WithCredential(ctx, sess.Token()), id, form, images)
	if err != nil {
		return activity.Activity{}, "", notice.Wrap(err, notice.Default)
	}
	return a, MsgActivityUpdated, nil
}

func (u *activityUseCaseImpl) Delete(ctx context.Context, sess session.Session, id int64) (string, error) {
	if err := u.gateway.DeleteActivity(backend.WithCredential(ctx, sess.Token()), id); err != nil {
		return "", notice.Wrap(err, notice.Default)
	}
	return MsgActivityDeleted, nil
}
