package booking

import (
	"time"
)

// ServiceStatus is one append-only status entry for a booking. The most
// recent entry is mirrored into the booking's status column.
type ServiceStatus struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	BookingID uint           `gorm:"not null;index" json:"booking_id"`
	Booking   ServiceBooking `gorm:"foreignKey:BookingID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"booking"`

	CurrentStatus BookingStatus `gorm:"type:varchar(20);not null" json:"current_status"`
	Remarks       string        `gorm:"type:text" json:"remarks"`
	UpdatedOn     time.Time     `gorm:"autoCreateTime" json:"updated_on"`
}

// TableName sets the table name for the ServiceStatus model
func (ServiceStatus) TableName() string {
	return "service_statuses"
}
