package reminder

import (
	"time"

	"vehicle-service/models/customer"
	"vehicle-service/models/servicecenter"
)

// ReminderOffer is a reminder or promotional message a service center sends
// to one of its customers.
type ReminderOffer struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	ServiceCenterID uint                        `gorm:"not null;index" json:"service_center_id"`
	ServiceCenter   servicecenter.ServiceCenter `gorm:"foreignKey:ServiceCenterID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"service_center"`

	CustomerID uint              `gorm:"not null;index" json:"customer_id"`
	Customer   customer.Customer `gorm:"foreignKey:CustomerID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"customer"`

	Title    string    `gorm:"type:varchar(150);not null" json:"title"`
	Message  string    `gorm:"type:text;not null" json:"message"`
	SentDate time.Time `gorm:"autoCreateTime" json:"sent_date"`
}
