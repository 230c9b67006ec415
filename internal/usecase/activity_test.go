//go:build unit

package usecase_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"hotel-portal/internal/domain/activity"
	"hotel-portal/internal/domain/session"
	"hotel-portal/internal/infra/backend"
	"hotel-portal/internal/pkg/clock"
	"hotel-portal/internal/testutil"
	"hotel-portal/internal/testutil/authtest"
	usecasemock "hotel-portal/internal/testutil/mock/usecase"
	"hotel-portal/internal/usecase"
	"hotel-portal/internal/usecase/notice"
	"hotel-portal/internal/usecase/queries"
	"hotel-portal/internal/usecase/readmodel"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ActivityUseCaseTestSuite struct {
	suite.Suite
	mockCtrl *gomock.Controller
	gateway  *usecasemock.MockActivityGateway
	clock    *clock.MockClock
	sess     session.Session
	uc       usecase.ActivityUseCase
}

func (s *ActivityUseCaseTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.gateway = usecasemock.NewMockActivityGateway(s.mockCtrl)
	s.clock = clock.NewMockClock(time.Date(2025, 4, 2, 10, 0, 0, 0, time.UTC))
	s.sess = authtest.Session(s.T(), "guest@hotel.com", session.RoleGuest, s.clock.Now())
	s.uc = usecase.NewActivityUseCase(s.gateway, s.clock, testutil.Logger())
}

func (s *ActivityUseCaseTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestActivityUseCaseSuite(t *testing.T) {
	suite.Run(t, new(ActivityUseCaseTestSuite))
}

func (s *ActivityUseCaseTestSuite) slot() *activity.Slot {
	return &activity.Slot{ID: 11, Date: date(2025, 4, 10), Capacity: 10, Occupied: 8}
}

func (s *ActivityUseCaseTestSuite) TestBook_RejectedLocally() {
	tests := []struct {
		name         string
		slot         *activity.Slot
		participants int
		errIs        error
	}{
		{name: "group larger than remaining spots", slot: s.slot(), participants: 3, errIs: activity.ErrNotEnoughSpots},
		{name: "no slot selected", slot: nil, participants: 1, errIs: activity.ErrNoSlotSelected},
		{name: "zero participants", slot: s.slot(), participants: 0, errIs: activity.ErrParticipantsRange},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, err := s.uc.Book(context.Background(), s.sess, 4, usecase.SlotBooking{Slot: tt.slot, Participants: tt.participants})
			s.Require().ErrorIs(err, tt.errIs)
		})
	}
}

// listed makes the backend listing for the slot's date return slots.
func (s *ActivityUseCaseTestSuite) listed(slots ...activity.Slot) *gomock.Call {
	return s.gateway.EXPECT().
		SearchSlots(gomock.Any(), int64(4), queries.SlotSearch{PageSize: queries.MaxPageSize, Date: date(2025, 4, 10)}).
		Return(readmodel.Page[activity.Slot]{Content: slots, TotalElements: len(slots)}, nil)
}

func (s *ActivityUseCaseTestSuite) TestBook_Success() {
	gomock.InOrder(
		s.listed(activity.Slot{ID: 3, Date: date(2025, 4, 10), Capacity: 5}, *s.slot()),
		s.gateway.EXPECT().
			BookActivity(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, r backend.ActivityBookingRequest) (readmodel.ActivityBookingRM, error) {
				s.Equal(int64(4), r.ActivityID)
				s.Equal(int64(11), r.SlotID)
				s.Equal(2, r.Participants)
				s.Equal("guest@hotel.com", r.UserEmail)
				return readmodel.ActivityBookingRM{ID: 21}, nil
			}),
		s.gateway.EXPECT().ActivityCheckout(gomock.Any(), int64(4), int64(21)).
			Return(readmodel.CheckoutRM{URL: "https://pay.example.com/cs_9"}, nil),
	)

	res, err := s.uc.Book(context.Background(), s.sess, 4, usecase.SlotBooking{Slot: s.slot(), Participants: 2})
	s.Require().NoError(err)
	s.Equal("https://pay.example.com/cs_9", res.RedirectURL)
}

func (s *ActivityUseCaseTestSuite) TestBook_CapacityFromListing() {
	s.Run("posted spots are ignored", func() {
		tampered := s.slot()
		tampered.Occupied = 0
		s.listed(*s.slot())

		_, err := s.uc.Book(context.Background(), s.sess, 4, usecase.SlotBooking{Slot: tampered, Participants: 5})
		s.Require().ErrorIs(err, activity.ErrNotEnoughSpots)
	})

	s.Run("slot missing from listing", func() {
		s.listed(activity.Slot{ID: 3, Date: date(2025, 4, 10), Capacity: 5})

		_, err := s.uc.Book(context.Background(), s.sess, 4, usecase.SlotBooking{Slot: s.slot(), Participants: 1})
		s.Require().ErrorIs(err, activity.ErrSlotUnavailable)
	})

	s.Run("listing failure", func() {
		s.gateway.EXPECT().SearchSlots(gomock.Any(), int64(4), gomock.Any()).
			Return(readmodel.Page[activity.Slot]{}, &backend.APIError{Status: http.StatusInternalServerError, Message: "boom"})

		_, err := s.uc.Book(context.Background(), s.sess, 4, usecase.SlotBooking{Slot: s.slot(), Participants: 1})
		s.Equal(notice.UnknownError, err.Error())
	})
}

func (s *ActivityUseCaseTestSuite) TestBook_BackendErrors() {
	s.Run("conflict shows field errors", func() {
		s.listed(*s.slot())
		s.gateway.EXPECT().BookActivity(gomock.Any(), gomock.Any()).Return(readmodel.ActivityBookingRM{}, &backend.APIError{
			Status:      http.StatusConflict,
			FieldErrors: []backend.FieldError{{Field: "slot", Messages: []string{"Slot is fully booked"}}},
		})
		_, err := s.uc.Book(context.Background(), s.sess, 4, usecase.SlotBooking{Slot: s.slot(), Participants: 1})
		s.Equal("Slot is fully booked", err.Error())
	})

	s.Run("server error is unknown", func() {
		s.listed(*s.slot())
		s.gateway.EXPECT().BookActivity(gomock.Any(), gomock.Any()).
			Return(readmodel.ActivityBookingRM{}, &backend.APIError{Status: http.StatusInternalServerError, Message: "NullPointerException"})
		_, err := s.uc.Book(context.Background(), s.sess, 4, usecase.SlotBooking{Slot: s.slot(), Participants: 1})
		s.Equal(notice.UnknownError, err.Error())
	})
}

func (s *ActivityUseCaseTestSuite) TestListSlots() {
	s.Run("past date is rejected", func() {
		_, err := s.uc.ListSlots(context.Background(), 4, queries.SlotSearch{Date: date(2025, 4, 1)})
		s.ErrorIs(err, activity.ErrFilterDateInPast)
	})

	s.Run("unfiltered listing without estimate", func() {
		s.gateway.EXPECT().Slots(gomock.Any(), int64(4), gomock.Any()).
			Return(readmodel.Page[activity.Slot]{Content: []activity.Slot{*s.slot()}, TotalElements: 1}, nil)
		s.gateway.EXPECT().GetActivity(gomock.Any(), int64(4)).Return(activity.Activity{ID: 4, Price: 25}, nil)

		got, err := s.uc.ListSlots(context.Background(), 4, queries.SlotSearch{})
		s.Require().NoError(err)
		s.Len(got.Slots.Content, 1)
		s.Nil(got.Estimate)
		s.Equal("25.00", got.PerPerson.String())
	})

	s.Run("participants produce an estimate", func() {
		q := queries.SlotSearch{Date: date(2025, 4, 10), Participants: 3}
		s.gateway.EXPECT().SearchSlots(gomock.Any(), int64(4), gomock.Any()).Return(readmodel.Page[activity.Slot]{}, nil)
		s.gateway.EXPECT().GetActivity(gomock.Any(), int64(4)).Return(activity.Activity{ID: 4, Price: 25}, nil)

		got, err := s.uc.ListSlots(context.Background(), 4, q)
		s.Require().NoError(err)
		s.Require().NotNil(got.Estimate)
		s.Equal("75.00", got.Estimate.PriceWithoutTax.String())
		s.Equal("82.50", got.Estimate.Total.String())
	})
}

func (s *ActivityUseCaseTestSuite) TestList_PicksSearchWhenFiltered() {
	s.gateway.EXPECT().AllActivities(gomock.Any(), queries.ActivitySearch{PageSize: queries.DefaultPageSize}).
		Return(readmodel.Page[activity.Activity]{}, nil)
	_, err := s.uc.List(context.Background(), queries.ActivitySearch{})
	s.Require().NoError(err)

	s.gateway.EXPECT().SearchActivities(gomock.Any(), gomock.Any()).Return(readmodel.Page[activity.Activity]{}, nil)
	_, err = s.uc.List(context.Background(), queries.ActivitySearch{Name: "yoga"})
	s.Require().NoError(err)
}

func (s *ActivityUseCaseTestSuite) TestPaymentReturn() {
	s.Run("cancel does not mark paid", func() {
		msg, err := s.uc.PaymentReturn(context.Background(), s.sess, 21, usecase.PaymentCancel)
		s.Require().NoError(err)
		s.Equal(usecase.MsgPaymentCancelled, msg)
	})

	s.Run("success marks paid", func() {
		s.gateway.EXPECT().MarkActivityBookingPaid(gomock.Any(), int64(21)).Return(nil)
		msg, err := s.uc.PaymentReturn(context.Background(), s.sess, 21, usecase.PaymentSuccess)
		s.Require().NoError(err)
		s.Equal(usecase.MsgPaymentSucceeded, msg)
	})
}
