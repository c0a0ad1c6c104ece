package history

import (
	"time"

	"vehicle-service/models/booking"
	"vehicle-service/models/customer"
	"vehicle-service/models/servicecenter"
	"vehicle-service/models/vehicle"
)

// ServiceHistory is a record of work done on a vehicle. The customer or
// service-center side is filled in from the authenticated account, never from
// the submitted form.
type ServiceHistory struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	CustomerID uint              `gorm:"not null;index" json:"customer_id"`
	Customer   customer.Customer `gorm:"foreignKey:CustomerID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"customer"`

	ServiceCenterID *uint                        `gorm:"index" json:"service_center_id,omitempty"`
	ServiceCenter   *servicecenter.ServiceCenter `gorm:"foreignKey:ServiceCenterID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"service_center,omitempty"`

	VehicleID uint            `gorm:"not null;index" json:"vehicle_id"`
	Vehicle   vehicle.Vehicle `gorm:"foreignKey:VehicleID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"vehicle"`

	BookingID uint                   `gorm:"not null;index" json:"booking_id"`
	Booking   booking.ServiceBooking `gorm:"foreignKey:BookingID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"booking"`

	ServiceDate time.Time `gorm:"type:date;not null" json:"service_date"`
	Details     string    `gorm:"type:text;not null" json:"details"`
	Cost        float64   `gorm:"type:decimal(10,2);not null" json:"cost"`
}

// TableName sets the table name for the ServiceHistory model
func (ServiceHistory) TableName() string {
	return "service_histories"
}
