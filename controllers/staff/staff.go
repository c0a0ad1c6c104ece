package staff

import (
	"errors"
	"fmt"
	"strconv"

	"vehicle-service/logger"
	staffModel "vehicle-service/models/staff"
	"vehicle-service/types"
	staffTypes "vehicle-service/types/staff"
	"vehicle-service/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// StaffController handles the service center's staff roster. The employing
// center is always re-derived from the session.
type StaffController struct {
	DB     *gorm.DB
	Logger *logger.AsyncLogger
}

func NewStaffController(db *gorm.DB, asyncLogger *logger.AsyncLogger) *StaffController {
	return &StaffController{DB: db, Logger: asyncLogger}
}

// Store adds a staff member for the authenticated service center
func (sc *StaffController) Store(c *fiber.Ctx) error {
	var req staffTypes.StaffRequest
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

	member := staffModel.Staff{
		ServiceCenterID: profile.ID,
		Name:            req.Name,
		Role:            req.Role,
		Phone:           req.Phone,
		Email:           req.Email,
	}

	if err := sc.DB.Create(&member).Error; err != nil {
		logger.Error("Failed to create staff member", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Failed to save staff member",
			Status:  fiber.StatusInternalServerError,
		})
	}

	sc.Logger.Log(utils.CreateSanitizedLogEntry(c))

	logger.Success(fmt.Sprintf("Staff member created successfully with ID: %d", member.ID))
	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Message: "Staff member added successfully",
		Status:  fiber.StatusCreated,
		Data:    member,
	})
}

// Update edits a staff member employed by the authenticated service center.
func (sc *StaffController) Update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
			Message: "Invalid staff id",
			Status:  fiber.StatusBadRequest,
		})
	}

	var req staffTypes.StaffRequest
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

	var member staffModel.Staff
	err = sc.DB.Where("id = ? AND service_center_id = ?", id, profile.ID).First(&member).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ErrorResponse{
				Message: "Staff member not found",
				Status:  fiber.StatusNotFound,
			})
		}
		logger.Error("Database error while loading staff member", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Database error",
			Status:  fiber.StatusInternalServerError,
		})
	}

	member.Name = req.Name
	member.Role = req.Role
	member.Phone = req.Phone
	member.Email = req.Email

	if err := sc.DB.Save(&member).Error; err != nil {
		logger.Error("Failed to update staff member", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Failed to update staff member",
			Status:  fiber.StatusInternalServerError,
		})
	}

	logger.Success(fmt.Sprintf("Staff member %d updated successfully", member.ID))
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Staff member updated successfully",
		Status:  fiber.StatusOK,
		Data:    member,
	})
}

// Delete removes a staff member employed by the authenticated service center.
func (sc *StaffController) Delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
			Message: "Invalid staff id",
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

	var member staffModel.Staff
	err = sc.DB.Where("id = ? AND service_center_id = ?", id, profile.ID).First(&member).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ErrorResponse{
				Message: "Staff member not found",
				Status:  fiber.StatusNotFound,
			})
		}
		logger.Error("Database error while loading staff member", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Database error",
			Status:  fiber.StatusInternalServerError,
		})
	}

	if err := sc.DB.Delete(&member).Error; err != nil {
		logger.Error("Failed to delete staff member", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Failed to delete staff member",
			Status:  fiber.StatusInternalServerError,
		})
	}

	logger.Success(fmt.Sprintf("Staff member %d deleted successfully", member.ID))
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Staff member deleted successfully",
		Status:  fiber.StatusOK,
	})
}

// Index lists the authenticated service center's staff
func (sc *StaffController) Index(c *fiber.Ctx) error {
	profile, err := utils.CurrentServiceCenter(c)
	if err != nil {
		return c.Status(fiber.StatusForbidden).JSON(types.ErrorResponse{
			Message: "Service center profile not found",
			Status:  fiber.StatusForbidden,
		})
	}

	var members []staffModel.Staff
	if err := sc.DB.Where("service_center_id = ?", profile.ID).Find(&members).Error; err != nil {
		logger.Error("Failed to list staff", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Database error",
			Status:  fiber.StatusInternalServerError,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Staff retrieved successfully",
		Status:  fiber.StatusOK,
		Data:    members,
	})
}
