package statusevent

import (
	"fmt"
	"testing"
	"time"

	"vehicle-service/database"
	accountModel "vehicle-service/models/account"
	bookingModel "vehicle-service/models/booking"
	customerModel "vehicle-service/models/customer"
	servicecenterModel "vehicle-service/models/servicecenter"
	vehicleModel "vehicle-service/models/vehicle"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	assert.NoError(t, err)

	sqlDB, err := db.DB()
	assert.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	assert.NoError(t, database.AutoMigrate(db))
	return db
}

func seedBooking(t *testing.T, db *gorm.DB) *bookingModel.ServiceBooking {
	custAcc := accountModel.Account{Uuid: uuid.NewString(), Username: "cust", Email: "cust@example.com", PasswordHash: "x"}
	centerAcc := accountModel.Account{Uuid: uuid.NewString(), Username: "center", Email: "center@example.com", PasswordHash: "x"}
	assert.NoError(t, db.Create(&custAcc).Error)
	assert.NoError(t, db.Create(&centerAcc).Error)

	cust := customerModel.Customer{AccountID: custAcc.ID, Name: "Cust", Email: "cust@example.com"}
	center := servicecenterModel.ServiceCenter{AccountID: centerAcc.ID, Name: "Center", Email: "center@example.com"}
	assert.NoError(t, db.Create(&cust).Error)
	assert.NoError(t, db.Create(&center).Error)

	v := vehicleModel.Vehicle{CustomerID: cust.ID, VehicleNumber: "KA-01-1234", Model: "Corolla", Manufacturer: "Toyota", Year: 2020, FuelType: "Petrol"}
	assert.NoError(t, db.Create(&v).Error)

	b := bookingModel.ServiceBooking{
		CustomerID:      cust.ID,
		VehicleID:       v.ID,
		ServiceCenterID: center.ID,
		ScheduledDate:   time.Now().AddDate(0, 0, 1),
		Description:     "Oil change",
		Status:          bookingModel.BookingStatusPending,
	}
	assert.NoError(t, db.Create(&b).Error)
	return &b
}

func TestAppendStatus_MirrorsBookingStatus(t *testing.T) {
	db := setupTestDB(t)
	b := seedBooking(t, db)

	err := db.Transaction(func(tx *gorm.DB) error {
		return AppendStatus(tx, b, bookingModel.BookingStatusInProgress, "Work started")
	})
	assert.NoError(t, err)
	assert.Equal(t, bookingModel.BookingStatusInProgress, b.Status)

	var stored bookingModel.ServiceBooking
	assert.NoError(t, db.First(&stored, b.ID).Error)
	assert.Equal(t, bookingModel.BookingStatusInProgress, stored.Status)

	var entries []bookingModel.ServiceStatus
	assert.NoError(t, db.Where("booking_id = ?", b.ID).Find(&entries).Error)
	assert.Len(t, entries, 1)
	assert.Equal(t, bookingModel.BookingStatusInProgress, entries[0].CurrentStatus)
	assert.Equal(t, "Work started", entries[0].Remarks)
}

func TestAppendStatus_KeepsFullHistory(t *testing.T) {
	db := setupTestDB(t)
	b := seedBooking(t, db)

	steps := []bookingModel.BookingStatus{
		bookingModel.BookingStatusInProgress,
		bookingModel.BookingStatusCompleted,
	}
	for _, s := range steps {
		err := db.Transaction(func(tx *gorm.DB) error {
			return AppendStatus(tx, b, s, "")
		})
		assert.NoError(t, err)
	}

	var count int64
	assert.NoError(t, db.Model(&bookingModel.ServiceStatus{}).Where("booking_id = ?", b.ID).Count(&count).Error)
	assert.EqualValues(t, 2, count)

	var stored bookingModel.ServiceBooking
	assert.NoError(t, db.First(&stored, b.ID).Error)
	assert.Equal(t, bookingModel.BookingStatusCompleted, stored.Status)
}
