package dashboard

import (
	"vehicle-service/logger"
	bookingModel "vehicle-service/models/booking"
	"vehicle-service/types"
	"vehicle-service/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// DashboardController serves the landing data for each role.
type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

// Customer returns the customer's profile together with their bookings,
// newest first.
func (dc *DashboardController) Customer(c *fiber.Ctx) error {
	profile, err := utils.CurrentCustomer(c)
	if err != nil {
		return c.Status(fiber.StatusForbidden).JSON(types.ErrorResponse{
			Message: "Customer profile not found",
			Status:  fiber.StatusForbidden,
		})
	}

	var bookings []bookingModel.ServiceBooking
	err = dc.DB.Preload("Vehicle").Preload("ServiceCenter").
		Where("customer_id = ?", profile.ID).
		Order("booking_date desc").Find(&bookings).Error
	if err != nil {
		logger.Error("Failed to load customer dashboard", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Database error",
			Status:  fiber.StatusInternalServerError,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Dashboard loaded successfully",
		Status:  fiber.StatusOK,
		Data: fiber.Map{
			"profile":  profile,
			"bookings": bookings,
		},
	})
}

// ServiceCenter returns the service center's profile together with the
// bookings addressed to it, newest first.
func (dc *DashboardController) ServiceCenter(c *fiber.Ctx) error {
	profile, err := utils.CurrentServiceCenter(c)
	if err != nil {
		return c.Status(fiber.StatusForbidden).JSON(types.ErrorResponse{
			Message: "Service center profile not found",
			Status:  fiber.StatusForbidden,
		})
	}

	var bookings []bookingModel.ServiceBooking
	err = dc.DB.Preload("Vehicle").Preload("Customer").
		Where("service_center_id = ?", profile.ID).
		Order("booking_date desc").Find(&bookings).Error
	if err != nil {
		logger.Error("Failed to load service center dashboard", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Database error",
			Status:  fiber.StatusInternalServerError,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Dashboard loaded successfully",
		Status:  fiber.StatusOK,
		Data: fiber.Map{
			"profile":  profile,
			"bookings": bookings,
		},
	})
}
