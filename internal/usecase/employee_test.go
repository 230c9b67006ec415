//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"hotel-portal/internal/domain/session"
	"hotel-portal/internal/domain/user"
	"hotel-portal/internal/infra/backend"
	"hotel-portal/internal/testutil"
	"hotel-portal/internal/testutil/authtest"
	"hotel-portal/internal/testutil/builder"
	usecasemock "hotel-portal/internal/testutil/mock/usecase"
	"hotel-portal/internal/usecase"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type EmployeeUseCaseTestSuite struct {
	suite.Suite
	mockCtrl *gomock.Controller
	gateway  *usecasemock.MockEmployeeGateway
	admin    session.Session
	uc       usecase.EmployeeUseCase
}

func (s *EmployeeUseCaseTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.gateway = usecasemock.NewMockEmployeeGateway(s.mockCtrl)
	s.admin = authtest.Session(s.T(), "desk@hotel.com", session.RoleAdmin, time.Date(2025, 4, 2, 10, 0, 0, 0, time.UTC))
	s.uc = usecase.NewEmployeeUseCase(s.gateway, testutil.Logger())
}

func (s *EmployeeUseCaseTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestEmployeeUseCaseSuite(t *testing.T) {
	suite.Run(t, new(EmployeeUseCaseTestSuite))
}

func (s *EmployeeUseCaseTestSuite) TestCreate() {
	s.Run("unknown role sends nothing", func() {
		in := builder.NewEmployeeBuilder().With(func(b *builder.EmployeeBuilder) {
			b.Input.RoleType = "BUTLER"
		}).Input

		_, _, err := s.uc.Create(context.Background(), s.admin, in)
		s.ErrorIs(err, user.ErrInvalidRoleType)
	})

	s.Run("success names the employee", func() {
		s.gateway.EXPECT().CreateEmployee(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, f user.EmployeeForm) (user.Employee, error) {
				s.Equal(user.RoleTypeCleaningStaff, f.RoleType)
				return user.Employee{ID: 3, FirstName: f.FirstName, LastName: f.LastName}, nil
			})

		e, msg, err := s.uc.Create(context.Background(), s.admin, builder.NewEmployeeBuilder().Input)
		s.Require().NoError(err)
		s.Equal(int64(3), e.ID)
		s.Equal("Employee Max Mustermann created successfully", msg)
	})
}

func (s *EmployeeUseCaseTestSuite) TestUpdate_SendsOnlyFilledFields() {
	in := user.EmployeeInput{PhoneNumber: "0664987654"}
	s.gateway.EXPECT().UpdateEmployee(gomock.Any(), int64(3), user.EmployeeForm{PhoneNumber: "0664987654"}).
		Return(user.Employee{ID: 3}, nil)

	_, msg, err := s.uc.Update(context.Background(), s.admin, 3, in)
	s.Require().NoError(err)
	s.Equal(usecase.MsgEmployeeUpdated, msg)
}

func (s *EmployeeUseCaseTestSuite) TestList_Fallback() {
	s.gateway.EXPECT().ListEmployees(gomock.Any()).Return(nil, backend.ErrUnavailable)

	_, err := s.uc.List(context.Background(), s.admin)
	s.Require().Error(err)
	s.Equal("Error loading employees", err.Error())
}
