package service

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"github.com/wl0182/Restaurant-Ordering-System/internal/entity"
)

// AddStaff pre-provisions an employee. Registration later succeeds only for
// the employee id and email given here.
func (s *Service) AddStaff(ctx context.Context, ts TokenSource, staff entity.Staff) (entity.StaffAdded, error) {
	staff.FirstName = strings.TrimSpace(staff.FirstName)
	staff.LastName = strings.TrimSpace(staff.LastName)
	staff.Email = strings.TrimSpace(staff.Email)
	staff.Role = strings.TrimSpace(staff.Role)

	err := validateStaff(staff)
	if err != nil {
		return entity.StaffAdded{}, err
	}

	token, err := ts.Token(ctx)
	if err != nil {
		return entity.StaffAdded{}, err
	}

	return s.api.AddStaff(ctx, token, staff)
}

func validateStaff(staff entity.Staff) error {
	switch {
	case staff.FirstName == "" || staff.LastName == "":
		return fmt.Errorf("%w: first and last name are required", entity.ErrInvalidArgument)
	case staff.EmployeeID <= 0:
		return fmt.Errorf("%w: employee id must be a positive number", entity.ErrInvalidArgument)
	case staff.Role == "":
		return fmt.Errorf("%w: role is required", entity.ErrInvalidArgument)
	}

	_, err := mail.ParseAddress(staff.Email)
	if err != nil {
		return fmt.Errorf("%w: invalid email %q", entity.ErrInvalidArgument, staff.Email)
	}

	return nil
}
