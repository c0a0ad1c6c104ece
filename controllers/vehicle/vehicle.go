package vehicle

import (
	"errors"
	"fmt"
	"strconv"

	"vehicle-service/logger"
	vehicleModel "vehicle-service/models/vehicle"
	"vehicle-service/types"
	vehicleTypes "vehicle-service/types/vehicle"
	"vehicle-service/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// VehicleController handles the customer's vehicle CRUD. The owning customer
// is always re-derived from the session, never taken from the payload.
type VehicleController struct {
	DB     *gorm.DB
	Logger *logger.AsyncLogger
}

func NewVehicleController(db *gorm.DB, asyncLogger *logger.AsyncLogger) *VehicleController {
	return &VehicleController{DB: db, Logger: asyncLogger}
}

// Store adds a vehicle for the authenticated customer
func (vc *VehicleController) Store(c *fiber.Ctx) error {
	var req vehicleTypes.VehicleRequest
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

	// Vehicle numbers are unique across all customers.
	var count int64
	if err := vc.DB.Model(&vehicleModel.Vehicle{}).
		Where("vehicle_number = ?", req.VehicleNumber).
		Count(&count).Error; err != nil {
		logger.Error("Database error while checking vehicle number", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Database error",
			Status:  fiber.StatusInternalServerError,
		})
	}
	if count > 0 {
		return c.Status(fiber.StatusConflict).JSON(types.ErrorResponse{
			Message: "A vehicle with this number is already registered",
			Status:  fiber.StatusConflict,
		})
	}

	v := vehicleModel.Vehicle{
		CustomerID:    profile.ID,
		VehicleNumber: req.VehicleNumber,
		Model:         req.Model,
		Manufacturer:  req.Manufacturer,
		Year:          req.Year,
		FuelType:      req.FuelType,
	}

	if err := vc.DB.Create(&v).Error; err != nil {
		logger.Error("Failed to create vehicle", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Failed to save vehicle",
			Status:  fiber.StatusInternalServerError,
		})
	}

	vc.Logger.Log(utils.CreateSanitizedLogEntry(c))

	logger.Success(fmt.Sprintf("Vehicle created successfully with ID: %d", v.ID))
	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Message: "Vehicle added successfully",
		Status:  fiber.StatusCreated,
		Data:    v,
	})
}

// Update edits a vehicle owned by the authenticated customer. Lookups are
// filtered by owner, so someone else's vehicle reads as not found.
func (vc *VehicleController) Update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
			Message: "Invalid vehicle id",
			Status:  fiber.StatusBadRequest,
		})
	}

	var req vehicleTypes.VehicleRequest
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

	var v vehicleModel.Vehicle
	err = vc.DB.Where("id = ? AND customer_id = ?", id, profile.ID).First(&v).Error
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

	if req.VehicleNumber != v.VehicleNumber {
		var count int64
		if err := vc.DB.Model(&vehicleModel.Vehicle{}).
			Where("vehicle_number = ? AND id <> ?", req.VehicleNumber, v.ID).
			Count(&count).Error; err != nil {
			logger.Error("Database error while checking vehicle number", err)
			return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
				Message: "Database error",
				Status:  fiber.StatusInternalServerError,
			})
		}
		if count > 0 {
			return c.Status(fiber.StatusConflict).JSON(types.ErrorResponse{
				Message: "A vehicle with this number is already registered",
				Status:  fiber.StatusConflict,
			})
		}
	}

	v.VehicleNumber = req.VehicleNumber
	v.Model = req.Model
	v.Manufacturer = req.Manufacturer
	v.Year = req.Year
	v.FuelType = req.FuelType

	if err := vc.DB.Save(&v).Error; err != nil {
		logger.Error("Failed to update vehicle", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Failed to update vehicle",
			Status:  fiber.StatusInternalServerError,
		})
	}

	logger.Success(fmt.Sprintf("Vehicle %d updated successfully", v.ID))
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Vehicle updated successfully",
		Status:  fiber.StatusOK,
		Data:    v,
	})
}

// Delete removes a vehicle owned by the authenticated customer.
func (vc *VehicleController) Delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
			Message: "Invalid vehicle id",
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

	var v vehicleModel.Vehicle
	err = vc.DB.Where("id = ? AND customer_id = ?", id, profile.ID).First(&v).Error
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

	if err := vc.DB.Delete(&v).Error; err != nil {
		logger.Error("Failed to delete vehicle", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Failed to delete vehicle",
			Status:  fiber.StatusInternalServerError,
		})
	}

	logger.Success(fmt.Sprintf("Vehicle %d deleted successfully", v.ID))
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Vehicle deleted successfully",
		Status:  fiber.StatusOK,
	})
}

// Index lists the authenticated customer's vehicles
func (vc *VehicleController) Index(c *fiber.Ctx) error {
	profile, err := utils.CurrentCustomer(c)
	if err != nil {
		return c.Status(fiber.StatusForbidden).JSON(types.ErrorResponse{
			Message: "Customer profile not found",
			Status:  fiber.StatusForbidden,
		})
	}

	var vehicles []vehicleModel.Vehicle
	if err := vc.DB.Where("customer_id = ?", profile.ID).Find(&vehicles).Error; err != nil {
		logger.Error("Failed to list vehicles", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Database error",
			Status:  fiber.StatusInternalServerError,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Vehicles retrieved successfully",
		Status:  fiber.StatusOK,
		Data:    vehicles,
	})
}
