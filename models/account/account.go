package account

import (
	"time"
)

// Role identifies which profile an account is linked to. It is resolved once
// at login from the profile tables and carried in the JWT claims; it is never
// stored on the account row itself.
type Role string

const (
	RoleCustomer      Role = "customer"
	RoleServiceCenter Role = "servicecenter"
	RoleUnassigned    Role = "unassigned"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleServiceCenter, RoleUnassigned:
		return true
	default:
		return false
	}
}

// Account is the base login identity. Exactly one of Customer or
// ServiceCenter points back at it through account_id.
type Account struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Uuid         string `gorm:"type:varchar(255);not null;unique" json:"uuid"`
	Username     string `gorm:"type:varchar(150);not null;unique" json:"username"`
	Email        string `gorm:"type:varchar(255);not null;unique" json:"email"`
	PasswordHash string `gorm:"type:varchar(255);not null" json:"-"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
