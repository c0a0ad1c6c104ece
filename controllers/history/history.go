package history

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"vehicle-service/logger"
	accountModel "vehicle-service/models/account"
	bookingModel "vehicle-service/models/booking"
	historyModel "vehicle-service/models/history"
	"vehicle-service/types"
	historyTypes "vehicle-service/types/history"
	"vehicle-service/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// HistoryController handles service history records.
type HistoryController struct {
	DB     *gorm.DB
	Logger *logger.AsyncLogger
}

func NewHistoryController(db *gorm.DB, asyncLogger *logger.AsyncLogger) *HistoryController {
	return &HistoryController{DB: db, Logger: asyncLogger}
}

// Record stores a service history entry for a booking. Either side of the
// booking may record it: a customer only for their own bookings, a service
// center only for bookings addressed to it. The opposite party is always
// copied from the booking itself.
func (hc *HistoryController) Record(c *fiber.Ctx) error {
	var req historyTypes.RecordHistoryRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
			Message: "Invalid request body",
			Status:  fiber.StatusBadRequest,
		})
	}

	// A booking id in the route wins over one in the body.
	if param := c.Params("booking_id"); param != "" {
		id, err := strconv.Atoi(param)
		if err != nil || id <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
				Message: "Invalid booking id",
				Status:  fiber.StatusBadRequest,
			})
		}
		req.BookingID = uint(id)
	}

	if req.BookingID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
			Message: "booking_id is required",
			Status:  fiber.StatusBadRequest,
		})
	}

	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
			Message: err.Error(),
			Status:  fiber.StatusBadRequest,
		})
	}

	serviceDate, err := time.Parse("2006-01-02", req.ServiceDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
			Message: "service_date must be in YYYY-MM-DD format",
			Status:  fiber.StatusBadRequest,
		})
	}

	var b bookingModel.ServiceBooking
	err = hc.DB.First(&b, req.BookingID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ErrorResponse{
				Message: "Booking not found",
				Status:  fiber.StatusNotFound,
			})
		}
		logger.Error("Database error while loading booking", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Database error",
			Status:  fiber.StatusInternalServerError,
		})
	}

	claims, err := utils.CurrentClaims(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ErrorResponse{
			Message: "Invalid session",
			Status:  fiber.StatusUnauthorized,
		})
	}

	entry := historyModel.ServiceHistory{
		VehicleID:   req.VehicleID,
		BookingID:   b.ID,
		ServiceDate: serviceDate,
		Details:     req.Details,
		Cost:        req.Cost,
	}

	switch claims.Role {
	case accountModel.RoleCustomer:
		profile, err := utils.CurrentCustomer(c)
		if err != nil {
			return c.Status(fiber.StatusForbidden).JSON(types.ErrorResponse{
				Message: "Customer profile not found",
				Status:  fiber.StatusForbidden,
			})
		}
		if b.CustomerID != profile.ID {
			return c.Status(fiber.StatusForbidden).JSON(types.ErrorResponse{
				Message: "Booking belongs to another customer",
				Status:  fiber.StatusForbidden,
			})
		}
		entry.CustomerID = profile.ID
		centerID := b.ServiceCenterID
		entry.ServiceCenterID = &centerID
	case accountModel.RoleServiceCenter:
		profile, err := utils.CurrentServiceCenter(c)
		if err != nil {
			return c.Status(fiber.StatusForbidden).JSON(types.ErrorResponse{
				Message: "Service center profile not found",
				Status:  fiber.StatusForbidden,
			})
		}
		if b.ServiceCenterID != profile.ID {
			return c.Status(fiber.StatusForbidden).JSON(types.ErrorResponse{
				Message: "Booking belongs to another service center",
				Status:  fiber.StatusForbidden,
			})
		}
		entry.ServiceCenterID = &profile.ID
		entry.CustomerID = b.CustomerID
	default:
		return c.Status(fiber.StatusForbidden).JSON(types.ErrorResponse{
			Message: "Access denied for this role",
			Status:  fiber.StatusForbidden,
		})
	}

	if err := hc.DB.Create(&entry).Error; err != nil {
		logger.Error("Failed to record service history", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Failed to record service history",
			Status:  fiber.StatusInternalServerError,
		})
	}

	hc.Logger.Log(utils.CreateSanitizedLogEntry(c))

	logger.Success(fmt.Sprintf("Service history %d recorded for booking %d", entry.ID, b.ID))
	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Message: "Service history recorded successfully",
		Status:  fiber.StatusCreated,
		Data:    entry,
	})
}

// Index lists the authenticated customer's service history, newest first.
func (hc *HistoryController) Index(c *fiber.Ctx) error {
	claims, err := utils.CurrentClaims(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ErrorResponse{
			Message: "Invalid session",
			Status:  fiber.StatusUnauthorized,
		})
	}

	if claims.Role != accountModel.RoleCustomer {
		return c.Status(fiber.StatusForbidden).JSON(types.ErrorResponse{
			Message: "Access denied",
			Status:  fiber.StatusForbidden,
		})
	}

	profile, err := utils.CurrentCustomer(c)
	if err != nil {
		return c.Status(fiber.StatusForbidden).JSON(types.ErrorResponse{
			Message: "Customer profile not found",
			Status:  fiber.StatusForbidden,
		})
	}

	var entries []historyModel.ServiceHistory
	err = hc.DB.Preload("Vehicle").Preload("ServiceCenter").
		Where("customer_id = ?", profile.ID).
		Order("service_date desc").Find(&entries).Error
	if err != nil {
		logger.Error("Failed to list service history", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Database error",
			Status:  fiber.StatusInternalServerError,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Service history retrieved successfully",
		Status:  fiber.StatusOK,
		Data:    entries,
	})
}
