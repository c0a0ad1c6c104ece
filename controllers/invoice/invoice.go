package invoice

import (
	"errors"
	"fmt"
	"strconv"

	"vehicle-service/logger"
	bookingModel "vehicle-service/models/booking"
	invoiceModel "vehicle-service/models/invoice"
	"vehicle-service/services/statusevent"
	"vehicle-service/types"
	invoiceTypes "vehicle-service/types/invoice"
	"vehicle-service/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// InvoiceController handles billing for completed work.
type InvoiceController struct {
	DB     *gorm.DB
	Logger *logger.AsyncLogger
}

func NewInvoiceController(db *gorm.DB, asyncLogger *logger.AsyncLogger) *InvoiceController {
	return &InvoiceController{DB: db, Logger: asyncLogger}
}

// Generate issues the invoice for a booking owned by the authenticated
// service center and marks the booking Completed in the same transaction. A
// booking can only be billed once.
func (ic *InvoiceController) Generate(c *fiber.Ctx) error {
	bookingID, err := strconv.Atoi(c.Params("booking_id"))
	if err != nil || bookingID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
			Message: "Invalid booking id",
			Status:  fiber.StatusBadRequest,
		})
	}

	var req invoiceTypes.InvoiceGenerateRequest
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
	err = ic.DB.First(&b, bookingID).Error
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

	var count int64
	if err := ic.DB.Model(&invoiceModel.Invoice{}).
		Where("booking_id = ?", b.ID).Count(&count).Error; err != nil {
		logger.Error("Database error while checking existing invoice", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Database error",
			Status:  fiber.StatusInternalServerError,
		})
	}
	if count > 0 {
		return c.Status(fiber.StatusConflict).JSON(types.ErrorResponse{
			Message: "An invoice already exists for this booking",
			Status:  fiber.StatusConflict,
		})
	}

	paymentStatus := invoiceModel.PaymentStatusUnpaid
	if req.PaymentStatus != "" {
		paymentStatus = invoiceModel.PaymentStatus(req.PaymentStatus)
	}

	inv := invoiceModel.Invoice{
		BookingID:       b.ID,
		ServiceCenterID: profile.ID,
		TotalAmount:     req.TotalAmount,
		PaymentStatus:   paymentStatus,
	}

	// The invoice and the Completed status land together or not at all.
	err = ic.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&inv).Error; err != nil {
			return err
		}
		return statusevent.AppendStatus(tx, &b, bookingModel.BookingStatusCompleted, "Invoice generated")
	})
	if err != nil {
		logger.Error("Failed to generate invoice", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Failed to generate invoice",
			Status:  fiber.StatusInternalServerError,
		})
	}

	ic.Logger.Log(utils.CreateSanitizedLogEntry(c))

	logger.Success(fmt.Sprintf("Invoice %d generated for booking %d", inv.ID, b.ID))
	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Message: "Invoice generated successfully",
		Status:  fiber.StatusCreated,
		Data:    inv,
	})
}
