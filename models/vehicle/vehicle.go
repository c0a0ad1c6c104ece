package vehicle

import (
	"time"

	"vehicle-service/models/customer"
)

// Vehicle belongs to exactly one customer. The vehicle number is unique
// across all customers.
type Vehicle struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	CustomerID uint              `gorm:"not null;index" json:"customer_id"`
	Customer   customer.Customer `gorm:"foreignKey:CustomerID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"customer"`

	VehicleNumber    string    `gorm:"type:varchar(50);not null;unique" json:"vehicle_number"`
	Model            string    `gorm:"type:varchar(100);not null" json:"model"`
	Manufacturer     string    `gorm:"type:varchar(100);not null" json:"manufacturer"`
	Year             int       `gorm:"type:int;not null" json:"year"`
	FuelType         string    `gorm:"type:varchar(50);not null" json:"fuel_type"`
	RegistrationDate time.Time `gorm:"autoCreateTime" json:"registration_date"`
}
