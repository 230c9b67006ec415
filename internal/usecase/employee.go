package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"hotel-portal/internal/domain/session"
	"hotel-portal/internal/domain/user"
	"hotel-portal/internal/infra/backend"
	"hotel-portal/internal/usecase/notice"
)

//go:generate mockgen -source=employee.go -destination=../testutil/mock/usecase/mock_employee.go -package=usecasemock

const (
	MsgEmployeeUpdated = "Employee updated successfully"
	MsgEmployeeDeleted = "Employee deleted successfully"
)

type EmployeeGateway interface {
	ListEmployees(ctx context.Context) ([]user.Employee, error)
	GetEmployee(ctx context.Context, id int64) (user.Employee, error)
	CreateEmployee(ctx context.Context, f user.EmployeeForm) (user.Employee, error)
	UpdateEmployee(ctx context.Context, id int64, f user.EmployeeForm) (user.Employee, error)
	DeleteEmployee(ctx context.Context, id int64) error
}

type EmployeeUseCase interface {
	List(ctx context.Context, sess session.Session) ([]user.Employee, error)
	Get(ctx context.Context, sess session.Session, id int64) (user.Employee, error)
	Create(ctx context.Context, sess session.Session, in user.EmployeeInput) (user.Employee, string, error)
	Update(ctx context.Context, sess session.Session, id int64, in user.EmployeeInput) (user.Employee, string, error)
	Delete(ctx context.Context, sess session.Session, id int64) (string, error)
}

type employeeUseCaseImpl struct {
	gateway EmployeeGateway
	logger  *slog.Logger
}

func NewEmployeeUseCase(gateway EmployeeGateway, logger *slog.Logger) EmployeeUseCase {
	return &employeeUseCaseImpl{
		gateway: gateway,
		logger:  logger,
	}
}

func (u *employeeUseCaseImpl) List(ctx context.Context, sess session.Session) ([]user.Employee, error) {
	out, err := u.gateway.ListEmployees(backend.WithCredential(ctx, sess.Token()))
	if err != nil {
		return nil, notice.Wrap(err, notice.Policy{Fallback: "Error loading employees"})
	}
	return out, nil
}

func (u *employeeUseCaseImpl) Get(ctx context.Context, sess session.Session, id int64) (user.Employee, error) {
	e, err := u.gateway.GetEmployee(backend.WithCredential(ctx, sess.Token()), id)
	if err != nil {
		return user.Employee{}, notice.Wrap(err, notice.Policy{RawNotFound: true})
	}
	return e, nil
}

func (u *employeeUseCaseImpl) Create(ctx context.Context, sess session.Session, in user.EmployeeInput) (user.Employee, string, error) {
	form, err := user.NewEmployeeForm(in, true)
	if err != nil {
		return user.Employee{}, "", err
	}
	e, err := u.gateway.CreateEmployee(backend.WithCredential(ctx, sess.Token()), form)
	if err != nil {
		return user.Employee{}, "", notice.Wrap(err, notice.Default)
	}
	return e, fmt.Sprintf("Employee %s %s created successfully", form.FirstName, form.LastName), nil
}

// Update sends only the fields that were filled in.
func (u *employeeUseCaseImpl) Update(ctx context.Context, sess session.Session, id int64, in user.EmployeeInput) (user.Employee, string, error) {
	form, err := user.NewEmployeeForm(in, false)
	if err != nil {
		return user.Employee{}, "", err
	}
	e, err := u.gateway.UpdateEmployee(backend.WithCredential(ctx, sess.Token()), id, form)
	if err != nil {
		return user.Employee{}, "", notice.Wrap(err, notice.Default)
	}
	return e, MsgEmployeeUpdated, nil
}

func (u *employeeUseCaseImpl) Delete(ctx context.Context, sess session.Session, id int64) (string, error) {
	if err := u.gateway.DeleteEmployee(backend.WithCredential(ctx, sess.Token()), id); err != nil {
		return "", notice.Wrap(err, notice.Default)
	}
	u.logger.Info("employee deleted", slog.Int64("employee_id", id), slog.String("email", sess.Email()))
	return MsgEmployeeDeleted, nil
}
