package vehicle

import (
	"fmt"
	"time"
)

// VehicleRequest is the payload for adding or editing a vehicle. The owning
// customer is never part of the payload; it comes from the session.
type VehicleRequest struct {
	VehicleNumber string `json:"vehicle_number"`
	Model         string `json:"model"`
	Manufacturer  string `json:"manufacturer"`
	Year          int    `json:"year"`
	FuelType      string `json:"fuel_type"`
}

func (v VehicleRequest) Validate() error {
	if v.VehicleNumber == "" {
		return fmt.Errorf("vehicle_number is required")
	}
	if v.Model == "" {
		return fmt.Errorf("model is required")
	}
	if v.Manufacturer == "" {
		return fmt.Errorf("manufacturer is required")
	}
	if v.Year < 1900 || v.Year > time.Now().Year()+1 {
		return fmt.Errorf("year must be between 1900 and %d", time.Now().Year()+1)
	}
	if v.FuelType == "" {
		return fmt.Errorf("fuel_type is required")
	}
	return nil
}
