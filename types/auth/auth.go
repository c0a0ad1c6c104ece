package auth

import (
	"fmt"
	"strings"
)

// RegisterRequest is the shared payload for both registration flows: the
// account credentials plus the profile fields for the customer or service
// center being created alongside it.
type RegisterRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	Name            string `json:"name"`
	Address         string `json:"address"`
	Phone           string `json:"phone"`
}

func (r RegisterRequest) Validate() error {
	if r.Username == "" {
		return fmt.Errorf("username is required")
	}
	if r.Email == "" || !strings.Contains(r.Email, "@") {
		return fmt.Errorf("a valid email is required")
	}
	if len(r.Password) < 8 {
		return fmt.Errorf("password must be at least 8 characters long")
	}
	if r.Password != r.ConfirmPassword {
		return fmt.Errorf("passwords do not match")
	}
	if r.Name == "" {
		return fmt.Errorf("name is required")
	}
	if r.Address == "" {
		return fmt.Errorf("address is required")
	}
	if r.Phone == "" {
		return fmt.Errorf("phone is required")
	}
	return nil
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	if r.Username == "" {
		return fmt.Errorf("username is required")
	}
	if r.Password == "" {
		return fmt.Errorf("password is required")
	}
	return nil
}
