package booking

import (
	"errors"
	"fmt"
	"time"

	"vehicle-service/logger"
	accountModel "vehicle-service/models/account"
	bookingModel "vehicle-service/models/booking"
	servicecenterModel "vehicle-service/models/servicecenter"
	vehicleModel "vehicle-service/models/vehicle"
	"vehicle-service/types"
	bookingTypes "vehicle-service/types/booking"
	"vehicle-service/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"
	"gorm.io/gorm"
)

// BookingController handles service booking requests
type BookingController struct {
	DB     *gorm.DB
	Logger *logger.AsyncLogger
}

// NewBookingController creates a new booking controller
func NewBookingController(db *gorm.DB, asyncLogger *logger.AsyncLogger) *BookingController {
	return &BookingController{
		DB:     db,
		Logger: asyncLogger,
	}
}

// Store books a service for one of the authenticated customer's vehicles.
// The customer and the Pending status are set server-side regardless of the
// submitted payload.
func (bc *BookingController) Store(c *fiber.Ctx) error {
	var req bookingTypes.BookingCreateRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
			Message: "Invalid request body",
			Status:  fiber.StatusBadRequest,
		})
	}

	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
			Message: err.Error(),
			Status:  fiber.StatusBadRequest,
		})
	}

	profile, err := utils.CurrentCustomer(c)
	if err != nil {
		return c.Status(fiber.StatusForbidden).JSON(types.ErrorResponse{
			Message: "Customer profile not found",
			Status:  fiber.StatusForbidden,
		})
	}

	scheduledDate, err := time.Parse("2006-01-02", req.ScheduledDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
			Message: "scheduled_date must be in YYYY-MM-DD format",
			Status:  fiber.StatusBadRequest,
		})
	}

	if scheduledDate.Before(now.BeginningOfDay()) {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
			Message: "Scheduled date cannot be in the past",
			Status:  fiber.StatusBadRequest,
		})
	}

	// The vehicle choice is limited to the caller's own vehicles.
	var v vehicleModel.Vehicle
	err = bc.DB.Where("id = ? AND customer_id = ?", req.VehicleID, profile.ID).First(&v).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ErrorResponse{
				Message: "Vehicle not found",
				Status:  fiber.StatusNotFound,
			})
		}
		logger.Error("Database error while loading vehicle", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Database error",
			Status:  fiber.StatusInternalServerError,
		})
	}

	var center servicecenterModel.ServiceCenter
	err = bc.DB.First(&center, req.ServiceCenterID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ErrorResponse{
				Message: "Service center not found",
				Status:  fiber.StatusNotFound,
			})
		}
		logger.Error("Database error while loading service center", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Database error",
			Status:  fiber.StatusInternalServerError,
		})
	}

	b := bookingModel.ServiceBooking{
		CustomerID:      profile.ID,
		VehicleID:       v.ID,
		ServiceCenterID: center.ID,
		ScheduledDate:   scheduledDate,
		Description:     req.Description,
		Status:          bookingModel.BookingStatusPending,
	}

	if err := bc.DB.Create(&b).Error; err != nil {
		logger.Error("Failed to create booking", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Failed to save booking",
			Status:  fiber.StatusInternalServerError,
		})
	}

	bc.Logger.Log(utils.CreateSanitizedLogEntry(c))

	logger.Success(fmt.Sprintf("Booking created successfully with ID: %d", b.ID))

	// Load the complete booking data with relationships
	var createdBooking bookingModel.ServiceBooking
	err = bc.DB.Preload("Vehicle").Preload("ServiceCenter").First(&createdBooking, b.ID).Error
	if err != nil {
		logger.Error("Failed to load created booking data", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Booking created but failed to retrieve complete data",
			Status:  fiber.StatusInternalServerError,
		})
	}

	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Message: "Service booked successfully",
		Status:  fiber.StatusCreated,
		Data:    createdBooking,
	})
}

// Index lists bookings for the authenticated account: a customer sees their
// own bookings, a service center sees bookings addressed to it.
func (bc *BookingController) Index(c *fiber.Ctx) error {
	claims, err := utils.CurrentClaims(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ErrorResponse{
			Message: "Invalid session",
			Status:  fiber.StatusUnauthorized,
		})
	}

	var bookings []bookingModel.ServiceBooking

	switch claims.Role {
	case accountModel.RoleCustomer:
		profile, err := utils.CurrentCustomer(c)
		if err != nil {
			return c.Status(fiber.StatusForbidden).JSON(types.ErrorResponse{
				Message: "Customer profile not found",
				Status:  fiber.StatusForbidden,
			})
		}
		err = bc.DB.Preload("Vehicle").Preload("ServiceCenter").
			Where("customer_id = ?", profile.ID).
			Order("booking_date desc").Find(&bookings).Error
		if err != nil {
			logger.Error("Failed to list bookings", err)
			return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
				Message: "Database error",
				Status:  fiber.StatusInternalServerError,
			})
		}
	case accountModel.RoleServiceCenter:
		profile, err := utils.CurrentServiceCenter(c)
		if err != nil {
			return c.Status(fiber.StatusForbidden).JSON(types.ErrorResponse{
				Message: "Service center profile not found",
				Status:  fiber.StatusForbidden,
			})
		}
		err = bc.DB.Preload("Vehicle").Preload("Customer").
			Where("service_center_id = ?", profile.ID).
			Order("booking_date desc").Find(&bookings).Error
		if err != nil {
			logger.Error("Failed to list bookings", err)
			return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
				Message: "Database error",
				Status:  fiber.StatusInternalServerError,
			})
		}
	default:
		return c.Status(fiber.StatusForbidden).JSON(types.ErrorResponse{
			Message: "Access denied for this role",
			Status:  fiber.StatusForbidden,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Bookings retrieved successfully",
		Status:  fiber.StatusOK,
		Data:    bookings,
	})
}
