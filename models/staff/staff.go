package staff

import (
	"time"

	"vehicle-service/models/servicecenter"
)

// Staff is an employee record owned by a service center.
type Staff struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	ServiceCenterID uint                        `gorm:"not null;index" json:"service_center_id"`
	ServiceCenter   servicecenter.ServiceCenter `gorm:"foreignKey:ServiceCenterID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"service_center"`

	Name       string    `gorm:"type:varchar(150);not null" json:"name"`
	Role       string    `gorm:"type:varchar(100);not null" json:"role"`
	Phone      string    `gorm:"type:varchar(15);not null" json:"phone"`
	Email      string    `gorm:"type:varchar(255);not null" json:"email"`
	DateJoined time.Time `gorm:"autoCreateTime" json:"date_joined"`
}
