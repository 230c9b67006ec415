package backend

import (
	"context"
	"net/http"

	"hotel-portal/internal/domain/user"
)

func (c *Client) ListEmployees(ctx context.Context) ([]user.Employee, error) {
	var dtos []employeeDTO
	if err := c.getJSON(ctx, "employee.list", "/employee", nil, &dtos); err != nil {
		return nil, err
	}
	return mapSlice(dtos, toEmployee), nil
}

func (c *Client) GetEmployee(ctx context.Context, id int64) (user.Employee, error) {
	var dto employeeDTO
	if err := c.getJSON(ctx, "employee.get", "/employee/"+formatID(id), nil, &dto); err != nil {
		return user.Employee{}, err
	}
	e := toEmployee(dto)
	e.ID = id
	return e, nil
}

func (c *Client) CreateEmployee(ctx context.Context, f user.EmployeeForm) (user.Employee, error) {
	var dto employeeDTO
	if err := c.sendJSON(ctx, "employee.create", http.MethodPost, "/employee", fromEmployeeForm(f), &dto); err != nil {
		return user.Employee{}, err
	}
	return toEmployee(dto), nil
}

func (c *Client) UpdateEmployee(ctx context.Context, id int64, f user.EmployeeForm) (user.Employee, error) {
	var dto employeeDTO
	if err := c.sendJSON(ctx, "employee.update", http.MethodPut, "/employee/"+formatID(id), fromEmployeeForm(f), &dto); err != nil {
		return user.Employee{}, err
	}
	e := toEmployee(dto)
	e.ID = id
	return e, nil
}

func (c *Client) DeleteEmployee(ctx context.Context, id int64) error {
	return c.sendJSON(ctx, "employee.delete", http.MethodDelete, "/employee/"+formatID(id), nil, nil)
}
