//go:build unit

package usecase_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"hotel-portal/internal/domain/session"
	"hotel-portal/internal/domain/user"
	"hotel-portal/internal/infra/backend"
	"hotel-portal/internal/pkg/clock"
	"hotel-portal/internal/testutil"
	"hotel-portal/internal/testutil/authtest"
	"hotel-portal/internal/testutil/builder"
	usecasemock "hotel-portal/internal/testutil/mock/usecase"
	"hotel-portal/internal/usecase"
	"hotel-portal/internal/usecase/queries"
	"hotel-portal/internal/usecase/readmodel"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type GuestUseCaseTestSuite struct {
	suite.Suite
	mockCtrl *gomock.Controller
	gateway  *usecasemock.MockGuestGateway
	admin    session.Session
	uc       usecase.GuestUseCase
}

func (s *GuestUseCaseTestSuite) SetupTest() {
	now := time.Date(2025, 4, 2, 10, 0, 0, 0, time.UTC)
	s.mockCtrl = gomock.NewController(s.T())
	s.gateway = usecasemock.NewMockGuestGateway(s.mockCtrl)
	s.admin = authtest.Session(s.T(), "desk@hotel.com", session.RoleAdmin, now)
	s.uc = usecase.NewGuestUseCase(s.gateway, clock.NewMockClock(now), testutil.Logger())
}

func (s *GuestUseCaseTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestGuestUseCaseSuite(t *testing.T) {
	suite.Run(t, new(GuestUseCaseTestSuite))
}

func (s *GuestUseCaseTestSuite) TestList() {
	s.Run("no filter lists every guest", func() {
		s.gateway.EXPECT().ListGuests(gomock.Any(), queries.PageRequest{Page: 0, Size: queries.DefaultPageSize}).
			Return(readmodel.Page[readmodel.GuestRM]{TotalElements: 3}, nil)

		page, err := s.uc.List(context.Background(), s.admin, queries.GuestSearch{})
		s.Require().NoError(err)
		s.Equal(3, page.TotalElements)
	})

	s.Run("filter goes to search", func() {
		q := queries.GuestSearch{PageRequest: queries.PageRequest{Page: 1, Size: 20}, LastName: "Huber"}
		s.gateway.EXPECT().SearchGuests(gomock.Any(), q).
			Return(readmodel.Page[readmodel.GuestRM]{Content: []readmodel.GuestRM{{Email: "anna@hotel.com"}}, TotalElements: 1}, nil)

		page, err := s.uc.List(context.Background(), s.admin, q)
		s.Require().NoError(err)
		s.Len(page.Content, 1)
	})

	s.Run("backend failure", func() {
		s.gateway.EXPECT().ListGuests(gomock.Any(), gomock.Any()).Return(readmodel.Page[readmodel.GuestRM]{}, backend.ErrUnavailable)

		_, err := s.uc.List(context.Background(), s.admin, queries.GuestSearch{})
		s.Require().Error(err)
		s.Equal("Error loading guests", err.Error())
	})
}

func (s *GuestUseCaseTestSuite) TestCreate() {
	s.Run("invalid form sends nothing", func() {
		in := builder.NewGuestBuilder().With(func(b *builder.GuestBuilder) {
			b.Input.FirstName = " "
		}).Input

		_, _, err := s.uc.Create(context.Background(), s.admin, in)
		s.ErrorIs(err, user.ErrGuestName)
	})

	s.Run("password required", func() {
		in := builder.NewGuestBuilder().With(func(b *builder.GuestBuilder) {
			b.Input.Password = ""
		}).Input

		_, _, err := s.uc.Create(context.Background(), s.admin, in)
		s.ErrorIs(err, user.ErrPasswordTooWeak)
	})

	s.Run("success", func() {
		in := builder.NewGuestBuilder().Input
		s.gateway.EXPECT().CreateGuest(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, f user.GuestForm) (user.Guest, error) {
				s.Equal("anna.huber@example.com", f.Email)
				s.Equal("secret1", f.Password)
				return f.Guest, nil
			})

		g, msg, err := s.uc.Create(context.Background(), s.admin, in)
		s.Require().NoError(err)
		s.Equal("Anna", g.FirstName)
		s.Equal(usecase.MsgGuestCreated, msg)
	})
}

func (s *GuestUseCaseTestSuite) TestUpdate_KeepsPassword() {
	in := builder.NewGuestBuilder().With(func(b *builder.GuestBuilder) {
		b.Input.Password = ""
	}).Input
	s.gateway.EXPECT().UpdateGuest(gomock.Any(), "anna.huber@example.com", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, f user.GuestForm) (user.Guest, error) {
			s.Empty(f.Password)
			return f.Guest, nil
		})

	_, msg, err := s.uc.Update(context.Background(), s.admin, "anna.huber@example.com", in)
	s.Require().NoError(err)
	s.Equal(usecase.MsgGuestUpdated, msg)
}

func (s *GuestUseCaseTestSuite) TestGet_NotFoundKeepsBackendMessage() {
	s.gateway.EXPECT().GetGuest(gomock.Any(), "ghost@hotel.com").
		Return(user.Guest{}, &backend.APIError{Status: http.StatusNotFound, Body: "Guest not found"})

	_, err := s.uc.Get(context.Background(), s.admin, "ghost@hotel.com")
	s.Require().Error(err)
	s.Equal("Guest not found", err.Error())
}

func (s *GuestUseCaseTestSuite) TestDelete() {
	s.gateway.EXPECT().DeleteGuest(gomock.Any(), "anna@hotel.com").Return(nil)

	msg, err := s.uc.Delete(context.Background(), s.admin, "anna@hotel.com")
	s.Require().NoError(err)
	s.Equal(usecase.MsgGuestDeleted, msg)
}
