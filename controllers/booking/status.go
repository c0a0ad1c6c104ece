package booking

import (
	"errors"
	"fmt"
	"strconv"

	"vehicle-service/logger"
	bookingModel "vehicle-service/models/booking"
	"vehicle-service/services/statusevent"
	"vehicle-service/types"
	bookingTypes "vehicle-service/types/booking"
	"vehicle-service/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// UpdateStatus appends a status entry to a booking owned by the authenticated
// service center. The booking's own status column is only ever changed through
// this append, so the history and the current value cannot drift apart.
func (bc *BookingController) UpdateStatus(c *fiber.Ctx) error {
	bookingID, err := strconv.Atoi(c.Params("id"))
	if err != nil || bookingID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
			Message: "Invalid booking id",
			Status:  fiber.StatusBadRequest,
		})
	}

	var req bookingTypes.StatusUpdateRequest
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

	profile, err := utils.CurrentServiceCenter(c)
	if err != nil {
		return c.Status(fiber.StatusForbidden).JSON(types.ErrorResponse{
			Message: "Service center profile not found",
			Status:  fiber.StatusForbidden,
		})
	}

	var b bookingModel.ServiceBooking
	err = bc.DB.First(&b, bookingID).Error
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

	if b.ServiceCenterID != profile.ID {
		return c.Status(fiber.StatusForbidden).JSON(types.ErrorResponse{
			Message: "Booking belongs to another service center",
			Status:  fiber.StatusForbidden,
		})
	}

	status := bookingModel.BookingStatus(req.CurrentStatus)

	err = bc.DB.Transaction(func(tx *gorm.DB) error {
		return statusevent.AppendStatus(tx, &b, status, req.Remarks)
	})
	if err != nil {
		logger.Error("Failed to record status update", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Failed to update booking status",
			Status:  fiber.StatusInternalServerError,
		})
	}

	bc.Logger.Log(utils.CreateSanitizedLogEntry(c))

	logger.Success(fmt.Sprintf("Booking %d status updated to %s", b.ID, status))
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Booking status updated successfully",
		Status:  fiber.StatusOK,
		Data:    b,
	})
}
