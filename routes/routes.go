package routes

import (
	"vehicle-service/controllers/auth"
	"vehicle-service/controllers/booking"
	"vehicle-service/controllers/dashboard"
	"vehicle-service/controllers/history"
	"vehicle-service/controllers/invoice"
	"vehicle-service/controllers/reminder"
	"vehicle-service/controllers/staff"
	"vehicle-service/controllers/vehicle"
	"vehicle-service/logger"
	"vehicle-service/middleware"
	"vehicle-service/models/account"
	authService "vehicle-service/services/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	asyncLogger := logger.NewAsyncLogger(db)
	svc := authService.NewService()

	authController := auth.NewAuthController(db, svc, asyncLogger)
	vehicleController := vehicle.NewVehicleController(db, asyncLogger)
	staffController := staff.NewStaffController(db, asyncLogger)
	bookingController := booking.NewBookingController(db, asyncLogger)
	invoiceController := invoice.NewInvoiceController(db, asyncLogger)
	historyController := history.NewHistoryController(db, asyncLogger)
	reminderController := reminder.NewReminderController(db, asyncLogger)
	dashboardController := dashboard.NewDashboardController(db)

	// Start the async logger processing goroutine
	go asyncLogger.ProcessLog()

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"service": "vehicle-service", "status": "ok"})
	})

	/*=============================================================================
	| Public Routes
	===============================================================================*/
	api := app.Group("/api")
	api.Post("/register/customer", authController.RegisterCustomer)
	api.Post("/register/servicecenter", authController.RegisterServiceCenter)
	api.Post("/login", authController.Login)
	api.Post("/logout", authController.LogOut)

	/*=============================================================================
	| Dashboards
	===============================================================================*/
	api.Get("/dashboard/customer", middleware.RequireRole(account.RoleCustomer), dashboardController.Customer)
	api.Get("/dashboard/servicecenter", middleware.RequireRole(account.RoleServiceCenter), dashboardController.ServiceCenter)

	/*=============================================================================
	| Vehicle Routes (customer)
	===============================================================================*/
	vehicleGroup := api.Group("/vehicles", middleware.RequireRole(account.RoleCustomer))
	vehicleGroup.Get("/", vehicleController.Index)
	vehicleGroup.Post("/add", vehicleController.Store)
	vehicleGroup.Post("/edit/:id", vehicleController.Update)
	vehicleGroup.Post("/delete/:id", vehicleController.Delete)

	/*=============================================================================
	| Staff Routes (service center)
	===============================================================================*/
	staffGroup := api.Group("/staff", middleware.RequireRole(account.RoleServiceCenter))
	staffGroup.Get("/", staffController.Index)
	staffGroup.Post("/add", staffController.Store)
	staffGroup.Post("/edit/:id", staffController.Update)
	staffGroup.Post("/delete/:id", staffController.Delete)

	/*=============================================================================
	| Booking Routes
	===============================================================================*/
	api.Post("/bookings/service", middleware.RequireRole(account.RoleCustomer), bookingController.Store)
	api.Get("/bookings", middleware.RequireAuthentication(), bookingController.Index)
	api.Post("/bookings/update/:id", middleware.RequireRole(account.RoleServiceCenter), bookingController.UpdateStatus)
	api.Post("/assign-job/:booking_id", middleware.RequireRole(account.RoleServiceCenter), bookingController.AssignJob)

	/*=============================================================================
	| Invoice Routes (service center)
	===============================================================================*/
	api.Post("/generate-invoice/:booking_id", middleware.RequireRole(account.RoleServiceCenter), invoiceController.Generate)

	/*=============================================================================
	| Service History Routes
	===============================================================================*/
	api.Post("/history/record", middleware.RequireAuthentication(), historyController.Record)
	api.Post("/history/record/:booking_id", middleware.RequireAuthentication(), historyController.Record)
	api.Get("/history", middleware.RequireRole(account.RoleCustomer), historyController.Index)

	/*=============================================================================
	| Reminder / Offer Routes
	===============================================================================*/
	api.Post("/reminder-offer", middleware.RequireRole(account.RoleServiceCenter), reminderController.Store)
	api.Get("/reminder-offer", middleware.RequireRole(account.RoleCustomer), reminderController.Index)
}
