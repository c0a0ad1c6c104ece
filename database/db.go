package database

import (
	"fmt"
	"os"

	"vehicle-service/logger"
	"vehicle-service/models/account"
	"vehicle-service/models/booking"
	"vehicle-service/models/customer"
	"vehicle-service/models/history"
	"vehicle-service/models/invoice"
	"vehicle-service/models/log"
	"vehicle-service/models/reminder"
	"vehicle-service/models/servicecenter"
	"vehicle-service/models/staff"
	"vehicle-service/models/vehicle"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// InitDB initializes the database connection with auto migration and indexing
func InitDB() (*gorm.DB, error) {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		logger.Error("Error loading .env file", err)
	}

	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	database := os.Getenv("DB_DATABASE")
	user := os.Getenv("DB_USERNAME")
	password := os.Getenv("DB_PASSWORD")
	sslmode := os.Getenv("DB_SSLMODE")

	if sslmode == "" {
		sslmode = "disable"
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, database, sslmode)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logger.Error("Failed to connect to the database", err)
		return nil, err
	}
	logger.Success("Successfully connected to the database")

	if err := AutoMigrate(DB); err != nil {
		logger.Error("Failed to run migrations", err)
		return nil, err
	}
	logger.Success("All migrations completed successfully")

	if err := createIndexes(); err != nil {
		logger.Error("Failed to create indexes", err)
		return nil, err
	}
	logger.Success("All indexes created successfully")

	return DB, nil
}

// AutoMigrate runs auto migration for all models in dependency order.
// Exported so tests can migrate an in-memory database the same way.
func AutoMigrate(db *gorm.DB) error {
	// Stage 1: identity and profiles
	stage1Models := []interface{}{
		&account.Account{},
		&customer.Customer{},
		&servicecenter.ServiceCenter{},
	}

	// Stage 2: owned assets
	stage2Models := []interface{}{
		&vehicle.Vehicle{},
		&staff.Staff{},
	}

	// Stage 3: booking workflow, billing and outreach
	stage3Models := []interface{}{
		&booking.ServiceBooking{},
		&booking.ServiceStatus{},
		&booking.JobAssignment{},
		&invoice.Invoice{},
		&history.ServiceHistory{},
		&reminder.ReminderOffer{},
	}

	// Remaining models: logging
	remainingModels := []interface{}{
		&log.Log{},
	}

	for _, stage := range [][]interface{}{stage1Models, stage2Models, stage3Models, remainingModels} {
		for _, model := range stage {
			if err := db.AutoMigrate(model); err != nil {
				return fmt.Errorf("failed to migrate %T: %w", model, err)
			}
		}
	}

	return nil
}

// createIndexes creates additional indexes for better performance
func createIndexes() error {
	// Account indexes
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_accounts_uuid ON accounts(uuid)").Error; err != nil {
		return fmt.Errorf("failed to create account uuid index: %w", err)
	}
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_accounts_username ON accounts(username)").Error; err != nil {
		return fmt.Errorf("failed to create account username index: %w", err)
	}

	// Vehicle indexes
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_vehicles_vehicle_number ON vehicles(vehicle_number)").Error; err != nil {
		return fmt.Errorf("failed to create vehicle number index: %w", err)
	}

	// Booking indexes
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_service_bookings_status ON service_bookings(status)").Error; err != nil {
		return fmt.Errorf("failed to create booking status index: %w", err)
	}
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_service_bookings_booking_date ON service_bookings(booking_date)").Error; err != nil {
		return fmt.Errorf("failed to create booking date index: %w", err)
	}

	// Log indexes
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_logs_status_code ON logs(status_code)").Error; err != nil {
		return fmt.Errorf("failed to create log status_code index: %w", err)
	}
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_logs_created_at ON logs(created_at)").Error; err != nil {
		return fmt.Errorf("failed to create log created_at index: %w", err)
	}

	return nil
}

// GetDB returns the database instance
func GetDB() *gorm.DB {
	return DB
}
