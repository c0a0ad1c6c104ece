package booking

import (
	"time"

	"vehicle-service/models/customer"
	"vehicle-service/models/servicecenter"
	"vehicle-service/models/vehicle"
)

// ServiceBooking ties a customer, one of their vehicles and a service center
// together with a lifecycle status. Status is only changed through status
// tracking or invoice generation, never edited directly.
type ServiceBooking struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	CustomerID uint              `gorm:"not null;index" json:"customer_id"`
	Customer   customer.Customer `gorm:"foreignKey:CustomerID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"customer"`

	VehicleID uint            `gorm:"not null;index" json:"vehicle_id"`
	Vehicle   vehicle.Vehicle `gorm:"foreignKey:VehicleID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"vehicle"`

	ServiceCenterID uint                        `gorm:"not null;index" json:"service_center_id"`
	ServiceCenter   servicecenter.ServiceCenter `gorm:"foreignKey:ServiceCenterID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"service_center"`

	BookingDate   time.Time     `gorm:"autoCreateTime" json:"booking_date"`
	ScheduledDate time.Time     `gorm:"type:date;not null" json:"scheduled_date"`
	Description   string        `gorm:"type:text;not null" json:"description"`
	Status        BookingStatus `gorm:"type:varchar(20);not null;default:Pending" json:"status"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName sets the table name for the ServiceBooking model
func (ServiceBooking) TableName() string {
	return "service_bookings"
}
