package staff

import (
	"fmt"
)

// StaffRequest is the payload for adding or editing a staff member. The
// employing service center comes from the session.
type StaffRequest struct {
	Name  string `json:"name"`
	Role  string `json:"role"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

func (s StaffRequest) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.Role == "" {
		return fmt.Errorf("role is required")
	}
	if s.Phone == "" {
		return fmt.Errorf("phone is required")
	}
	if s.Email == "" {
		return fmt.Errorf("email is required")
	}
	return nil
}
