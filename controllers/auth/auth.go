package auth

import (
	"encoding/json"
	"errors"
	"os"
	"time"

	"vehicle-service/constants"
	"vehicle-service/logger"
	accountModel "vehicle-service/models/account"
	customerModel "vehicle-service/models/customer"
	servicecenterModel "vehicle-service/models/servicecenter"
	authService "vehicle-service/services/auth"
	"vehicle-service/types"
	authTypes "vehicle-service/types/auth"
	"vehicle-service/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuthController handles registration, login and logout.
type AuthController struct {
	db             *gorm.DB
	authService    *authService.Service
	loggerInstance *logger.AsyncLogger
}

func NewAuthController(db *gorm.DB, svc *authService.Service, asyncLogger *logger.AsyncLogger) *AuthController {
	return &AuthController{db: db, authService: svc, loggerInstance: asyncLogger}
}

// Helper function to set secure cookies based on environment
func (h *AuthController) setSecureCookie(c *fiber.Ctx, name, value string, maxAge int) {
	isProduction := os.Getenv("APP_ENV") == "production"

	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    value,
		HTTPOnly: true,
		Secure:   isProduction, // Only secure in production (HTTPS)
		SameSite: "Strict",
		MaxAge:   maxAge,
		Path:     "/",
	})
}

// RegisterCustomer creates an account together with its customer profile.
func (h *AuthController) RegisterCustomer(c *fiber.Ctx) error {
	return h.register(c, accountModel.RoleCustomer)
}

// RegisterServiceCenter creates an account together with its service-center
// profile.
func (h *AuthController) RegisterServiceCenter(c *fiber.Ctx) error {
	return h.register(c, accountModel.RoleServiceCenter)
}

func (h *AuthController) register(c *fiber.Ctx, role accountModel.Role) error {
	var req authTypes.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Error parsing request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
			Message: "Invalid request body",
			Status:  fiber.StatusBadRequest,
		})
	}

	if err := req.Validate(); err != nil {
		logger.Error(err.Error(), nil)
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
			Message: err.Error(),
			Status:  fiber.StatusBadRequest,
		})
	}

	var count int64
	if err := h.db.Model(&accountModel.Account{}).
		Where("username = ? OR email = ?", req.Username, req.Email).
		Count(&count).Error; err != nil {
		logger.Error("Database error while checking existing account", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Database error",
			Status:  fiber.StatusInternalServerError,
		})
	}
	if count > 0 {
		return c.Status(fiber.StatusConflict).JSON(types.ErrorResponse{
			Message: "Username or email already registered",
			Status:  fiber.StatusConflict,
		})
	}

	passwordHash, err := h.authService.HashPassword(req.Password)
	if err != nil {
		logger.Error("Failed to hash password", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Failed to create account",
			Status:  fiber.StatusInternalServerError,
		})
	}

	acc := accountModel.Account{
		Uuid:         uuid.NewString(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: passwordHash,
	}

	// Account and profile are created together or not at all.
	err = h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&acc).Error; err != nil {
			return err
		}

		switch role {
		case accountModel.RoleCustomer:
			profile := customerModel.Customer{
				AccountID: acc.ID,
				Name:      req.Name,
				Address:   req.Address,
				Phone:     req.Phone,
				Email:     req.Email,
			}
			return tx.Create(&profile).Error
		case accountModel.RoleServiceCenter:
			profile := servicecenterModel.ServiceCenter{
				AccountID: acc.ID,
				Name:      req.Name,
				Address:   req.Address,
				Phone:     req.Phone,
				Email:     req.Email,
			}
			return tx.Create(&profile).Error
		default:
			return errors.New("unsupported registration role")
		}
	})
	if err != nil {
		logger.Error("Failed to create account with profile", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Failed to create account",
			Status:  fiber.StatusInternalServerError,
		})
	}

	// Never log submitted credentials.
	redactedReq, _ := json.Marshal(fiber.Map{"username": req.Username, "email": req.Email})
	logEntry := utils.CreateSanitizedLogEntryWithCustomBody(c, string(redactedReq), "")
	h.loggerInstance.Log(logEntry)

	logger.Success("Account registered successfully. UUID: " + acc.Uuid + " role: " + role.String())
	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Message: "Account created successfully",
		Status:  fiber.StatusCreated,
		Data:    acc,
	})
}

// Login authenticates credentials, resolves the linked profile once and
// answers with the role plus the dashboard to redirect to.
func (h *AuthController) Login(c *fiber.Ctx) error {
	var req authTypes.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Error parsing request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
			Message: "Invalid request body",
			Status:  fiber.StatusBadRequest,
		})
	}

	if err := req.Validate(); err != nil {
		logger.Error(err.Error(), nil)
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
			Message: err.Error(),
			Status:  fiber.StatusBadRequest,
		})
	}

	var acc accountModel.Account
	err := h.db.Where("username = ?", req.Username).First(&acc).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Error("Database error during login", err)
			return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
				Message: "Database error",
				Status:  fiber.StatusInternalServerError,
			})
		}
		return c.Status(fiber.StatusUnauthorized).JSON(types.ErrorResponse{
			Message: "Invalid username or password",
			Status:  fiber.StatusUnauthorized,
		})
	}

	if !h.authService.CheckPassword(req.Password, acc.PasswordHash) {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ErrorResponse{
			Message: "Invalid username or password",
			Status:  fiber.StatusUnauthorized,
		})
	}

	role := utils.ResolveRole(h.db, acc.ID)

	token, err := h.authService.GenerateToken(&acc, role)
	if err != nil {
		logger.Error("Failed to generate session token", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Failed to log in",
			Status:  fiber.StatusInternalServerError,
		})
	}

	h.setSecureCookie(c, constants.AccessCookie, token, int(h.authService.TokenExpiry().Seconds()))

	// Branch to the dashboard matching the resolved profile; an account with
	// neither profile lands on the generic page.
	redirect := "/"
	switch role {
	case accountModel.RoleCustomer:
		redirect = "/dashboard/customer"
	case accountModel.RoleServiceCenter:
		redirect = "/dashboard/servicecenter"
	}

	response := types.ApiResponse{
		Message: "Login successful",
		Status:  fiber.StatusOK,
		Token:   token,
		Data: fiber.Map{
			"role":     role,
			"redirect": redirect,
		},
	}

	redactedReq, _ := json.Marshal(fiber.Map{"username": req.Username})
	responseBody, _ := json.Marshal(response)
	logEntry := utils.CreateSanitizedLogEntryWithCustomBody(c, string(redactedReq), string(responseBody))
	h.loggerInstance.Log(logEntry)

	currentTime := time.Now().Format("2006-01-02 03:04:05 PM")
	logger.Success("Account logged in successfully. uuid: " + acc.Uuid + " at " + currentTime)
	return c.Status(fiber.StatusOK).JSON(response)
}

// LogOut clears the session cookie.
func (h *AuthController) LogOut(c *fiber.Ctx) error {
	h.setSecureCookie(c, constants.AccessCookie, "", -1) // Expire immediately

	response := types.ApiResponse{
		Message: "Logout successful",
		Status:  fiber.StatusOK,
		Data:    nil,
	}
	logger.Success("Logout successful")
	return c.Status(fiber.StatusOK).JSON(response)
}
