package booking

import (
	"errors"
	"fmt"
	"strconv"

	"vehicle-service/logger"
	bookingModel "vehicle-service/models/booking"
	staffModel "vehicle-service/models/staff"
	"vehicle-service/types"
	bookingTypes "vehicle-service/types/booking"
	"vehicle-service/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AssignJob assigns one of the service center's staff members to a booking
// addressed to that center.
func (bc *BookingController) AssignJob(c *fiber.Ctx) error {
	bookingID, err := strconv.Atoi(c.Params("booking_id"))
	if err != nil || bookingID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
			Message: "Invalid booking id",
			Status:  fiber.StatusBadRequest,
		})
	}

	var req bookingTypes.AssignJobRequest
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

	// Only the center's own staff can take the job.
	var member staffModel.Staff
	err = bc.DB.Where("id = ? AND service_center_id = ?", req.StaffID, profile.ID).First(&member).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
				Message: "Staff member not found at this service center",
				Status:  fiber.StatusBadRequest,
			})
		}
		logger.Error("Database error while loading staff member", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Database error",
			Status:  fiber.StatusInternalServerError,
		})
	}

	assignment := bookingModel.JobAssignment{
		BookingID: b.ID,
		StaffID:   member.ID,
		Notes:     req.Notes,
	}

	if err := bc.DB.Create(&assignment).Error; err != nil {
		logger.Error("Failed to create job assignment", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Failed to assign job",
			Status:  fiber.StatusInternalServerError,
		})
	}

	bc.Logger.Log(utils.CreateSanitizedLogEntry(c))

	logger.Success(fmt.Sprintf("Job for booking %d assigned to staff %d", b.ID, member.ID))
	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Message: "Job assigned successfully",
		Status:  fiber.StatusCreated,
		Data:    assignment,
	})
}
