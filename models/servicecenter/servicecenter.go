package servicecenter

import (
	"time"

	"vehicle-service/models/account"
)

// ServiceCenter is the service-center profile, one-to-one with an Account.
type ServiceCenter struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	AccountID uint            `gorm:"not null;unique" json:"account_id"`
	Account   account.Account `gorm:"foreignKey:AccountID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"account"`

	Name             string    `gorm:"type:varchar(150);not null" json:"name"`
	Address          string    `gorm:"type:text;not null" json:"address"`
	Phone            string    `gorm:"type:varchar(15);not null" json:"phone"`
	Email            string    `gorm:"type:varchar(255);not null;unique" json:"email"`
	RegistrationDate time.Time `gorm:"autoCreateTime" json:"registration_date"`
}
