package booking

import (
	"time"

	"vehicle-service/models/staff"
)

// JobAssignment assigns a staff member of the booking's service center to a
// booking.
type JobAssignment struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	BookingID uint           `gorm:"not null;index" json:"booking_id"`
	Booking   ServiceBooking `gorm:"foreignKey:BookingID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"booking"`

	StaffID uint        `gorm:"not null;index" json:"staff_id"`
	Staff   staff.Staff `gorm:"foreignKey:StaffID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"staff"`

	AssignedDate time.Time `gorm:"autoCreateTime" json:"assigned_date"`
	Notes        string    `gorm:"type:text" json:"notes"`
}
