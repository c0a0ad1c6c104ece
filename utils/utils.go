package utils

import (
	"errors"
	"fmt"
	"time"

	"vehicle-service/constants"
	"vehicle-service/database"
	"vehicle-service/models/account"
	"vehicle-service/models/customer"
	"vehicle-service/models/servicecenter"
	authService "vehicle-service/services/auth"
	"vehicle-service/types"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetAccountByUUID retrieves an account by its UUID from the database
func GetAccountByUUID(uuid string) (*account.Account, error) {
	if uuid == "" {
		return nil, errors.New("UUID cannot be empty")
	}

	var acc account.Account
	if err := database.DB.Where("uuid = ?", uuid).First(&acc).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("account not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	return &acc, nil
}

// CurrentClaims returns the decoded session claims the auth middleware
// attached to the request.
func CurrentClaims(c *fiber.Ctx) (*authService.Claims, error) {
	claims, ok := c.Locals(constants.LocalsAccount).(*authService.Claims)
	if !ok || claims == nil {
		return nil, errors.New("no authenticated account in request context")
	}
	return claims, nil
}

// CurrentCustomer resolves the customer profile of the authenticated account.
func CurrentCustomer(c *fiber.Ctx) (*customer.Customer, error) {
	claims, err := CurrentClaims(c)
	if err != nil {
		return nil, err
	}

	acc, err := GetAccountByUUID(claims.AccountUUID)
	if err != nil {
		return nil, err
	}

	var profile customer.Customer
	if err := database.DB.Where("account_id = ?", acc.ID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("customer profile not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	return &profile, nil
}

// CurrentServiceCenter resolves the service-center profile of the
// authenticated account.
func CurrentServiceCenter(c *fiber.Ctx) (*servicecenter.ServiceCenter, error) {
	claims, err := CurrentClaims(c)
	if err != nil {
		return nil, err
	}

	acc, err := GetAccountByUUID(claims.AccountUUID)
	if err != nil {
		return nil, err
	}

	var profile servicecenter.ServiceCenter
	if err := database.DB.Where("account_id = ?", acc.ID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("service center profile not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	return &profile, nil
}

// ResolveRole reports which profile is linked to the account. Exactly one
// profile is expected per account; customer wins if both somehow exist.
func ResolveRole(db *gorm.DB, accountID uint) account.Role {
	var count int64
	db.Model(&customer.Customer{}).Where("account_id = ?", accountID).Count(&count)
	if count > 0 {
		return account.RoleCustomer
	}

	db.Model(&servicecenter.ServiceCenter{}).Where("account_id = ?", accountID).Count(&count)
	if count > 0 {
		return account.RoleServiceCenter
	}

	return account.RoleUnassigned
}

const maxLoggedBodySize = 64 * 1024

// sanitizeBody deep copies a request/response body for logging, truncating
// oversized payloads.
func sanitizeBody(body []byte) string {
	if len(body) > maxLoggedBodySize {
		return string(append([]byte(nil), body[:maxLoggedBodySize]...)) + "...[truncated]"
	}
	return string(append([]byte(nil), body...))
}

// CreateSanitizedLogEntry creates a deep copied and sanitized log entry for
// the async logger.
func CreateSanitizedLogEntry(c *fiber.Ctx) types.LogEntry {
	method := string([]byte(c.Method()))
	url := string([]byte(c.OriginalURL()))
	requestBody := sanitizeBody(c.Body())
	responseBody := sanitizeBody(c.Response().Body())

	requestHeaders := make([]byte, len(c.Request().Header.Header()))
	copy(requestHeaders, c.Request().Header.Header())

	responseHeaders := make([]byte, len(c.Response().Header.Header()))
	copy(responseHeaders, c.Response().Header.Header())

	return types.LogEntry{
		Method:          method,
		URL:             url,
		ClientIP:        c.IP(),
		RequestBody:     requestBody,
		ResponseBody:    responseBody,
		RequestHeaders:  string(requestHeaders),
		ResponseHeaders: string(responseHeaders),
		StatusCode:      c.Response().StatusCode(),
		CreatedAt:       time.Now(),
	}
}

// CreateSanitizedLogEntryWithCustomBody creates a sanitized log entry with
// pre-processed request and response bodies (for example with credentials
// blanked out).
func CreateSanitizedLogEntryWithCustomBody(c *fiber.Ctx, requestBody, responseBody string) types.LogEntry {
	entry := CreateSanitizedLogEntry(c)
	entry.RequestBody = sanitizeBody([]byte(requestBody))
	entry.ResponseBody = sanitizeBody([]byte(responseBody))
	return entry
}
