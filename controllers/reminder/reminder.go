package reminder

import (
	"errors"
	"fmt"

	"vehicle-service/logger"
	customerModel "vehicle-service/models/customer"
	reminderModel "vehicle-service/models/reminder"
	"vehicle-service/types"
	reminderTypes "vehicle-service/types/reminder"
	"vehicle-service/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ReminderController lets service centers send reminders and offers.
type ReminderController struct {
	DB     *gorm.DB
	Logger *logger.AsyncLogger
}

func NewReminderController(db *gorm.DB, asyncLogger *logger.AsyncLogger) *ReminderController {
	return &ReminderController{DB: db, Logger: asyncLogger}
}

// Store records a reminder or offer sent by the authenticated service center
// to a customer.
func (rc *ReminderController) Store(c *fiber.Ctx) error {
	var req reminderTypes.ReminderOfferRequest
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

	var cust customerModel.Customer
	err = rc.DB.First(&cust, req.CustomerID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ErrorResponse{
				Message: "Customer not found",
				Status:  fiber.StatusNotFound,
			})
		}
		logger.Error("Database error while loading customer", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Database error",
			Status:  fiber.StatusInternalServerError,
		})
	}

	offer := reminderModel.ReminderOffer{
		ServiceCenterID: profile.ID,
		CustomerID:      cust.ID,
		Title:           req.Title,
		Message:         req.Message,
	}

	if err := rc.DB.Create(&offer).Error; err != nil {
		logger.Error("Failed to create reminder/offer", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Failed to send reminder",
			Status:  fiber.StatusInternalServerError,
		})
	}

	rc.Logger.Log(utils.CreateSanitizedLogEntry(c))

	logger.Success(fmt.Sprintf("Reminder %d sent to customer %d", offer.ID, cust.ID))
	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Message: "Reminder sent successfully",
		Status:  fiber.StatusCreated,
		Data:    offer,
	})
}

// Index lists reminders and offers addressed to the authenticated customer,
// newest first.
func (rc *ReminderController) Index(c *fiber.Ctx) error {
	profile, err := utils.CurrentCustomer(c)
	if err != nil {
		return c.Status(fiber.StatusForbidden).JSON(types.ErrorResponse{
			Message: "Customer profile not found",
			Status:  fiber.StatusForbidden,
		})
	}

	var offers []reminderModel.ReminderOffer
	err = rc.DB.Preload("ServiceCenter").
		Where("customer_id = ?", profile.ID).
		Order("sent_date desc").Find(&offers).Error
	if err != nil {
		logger.Error("Failed to list reminders", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Database error",
			Status:  fiber.StatusInternalServerError,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Reminders retrieved successfully",
		Status:  fiber.StatusOK,
		Data:    offers,
	})
}
