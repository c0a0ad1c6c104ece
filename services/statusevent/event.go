package statusevent

import (
	bookingModel "vehicle-service/models/booking"

	"gorm.io/gorm"
)

// AppendStatus writes one ServiceStatus row for the booking and mirrors the
// new value into the booking's status column. Both writes run on the caller's
// transaction so they commit or roll back together.
func AppendStatus(tx *gorm.DB, b *bookingModel.ServiceBooking, status bookingModel.BookingStatus, remarks string) error {
	entry := bookingModel.ServiceStatus{
		BookingID:     b.ID,
		CurrentStatus: status,
		Remarks:       remarks,
	}

	if err := tx.Create(&entry).Error; err != nil {
		return err
	}

	if err := tx.Model(&bookingModel.ServiceBooking{}).Where("id = ?", b.ID).
		Update("status", status).Error; err != nil {
		return err
	}

	b.Status = status
	return nil
}
