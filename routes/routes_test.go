package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"vehicle-service/database"
	bookingModel "vehicle-service/models/booking"
	customerModel "vehicle-service/models/customer"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// envelope mirrors the JSON body every handler answers with.
type envelope struct {
	Message string          `json:"message"`
	Status  int             `json:"status"`
	Token   string          `json:"token"`
	Data    json.RawMessage `json:"data"`
}

func setupTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	assert.NoError(t, err)

	sqlDB, err := db.DB()
	assert.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	assert.NoError(t, database.AutoMigrate(db))

	// Helpers resolve the session profile through the package-level handle.
	database.DB = db

	app := fiber.New()
	SetupRoutes(app, db)
	return app, db
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, payload interface{}) (int, envelope) {
	t.Helper()

	var body *bytes.Buffer = bytes.NewBuffer(nil)
	if payload != nil {
		raw, err := json.Marshal(payload)
		assert.NoError(t, err)
		body = bytes.NewBuffer(raw)
	}

	req, err := http.NewRequest(method, path, body)
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func registerPayload(username string) fiber.Map {
	return fiber.Map{
		"username":         username,
		"email":            username + "@example.com",
		"password":         "password123",
		"confirm_password": "password123",
		"name":             username,
		"address":          "1 Test Street",
		"phone":            "0123456789",
	}
}

// registerAndLogin creates an account of the given kind and returns its
// session token.
func registerAndLogin(t *testing.T, app *fiber.App, kind, username string) string {
	t.Helper()

	code, _ := doJSON(t, app, http.MethodPost, "/api/register/"+kind, "", registerPayload(username))
	assert.Equal(t, http.StatusCreated, code)

	code, env := doJSON(t, app, http.MethodPost, "/api/login", "", fiber.Map{
		"username": username,
		"password": "password123",
	})
	assert.Equal(t, http.StatusOK, code)
	assert.NotEmpty(t, env.Token)
	return env.Token
}

func addVehicle(t *testing.T, app *fiber.App, token, number string) uint {
	t.Helper()

	code, env := doJSON(t, app, http.MethodPost, "/api/vehicles/add", token, fiber.Map{
		"vehicle_number": number,
		"model":          "Corolla",
		"manufacturer":   "Toyota",
		"year":           2020,
		"fuel_type":      "Petrol",
	})
	assert.Equal(t, http.StatusCreated, code)

	var v struct {
		ID uint `json:"id"`
	}
	assert.NoError(t, json.Unmarshal(env.Data, &v))
	return v.ID
}

func bookService(t *testing.T, app *fiber.App, token string, vehicleID, centerID uint) uint {
	t.Helper()

	code, env := doJSON(t, app, http.MethodPost, "/api/bookings/service", token, fiber.Map{
		"vehicle_id":        vehicleID,
		"service_center_id": centerID,
		"scheduled_date":    time.Now().AddDate(0, 0, 1).Format("2006-01-02"),
		"description":       "Oil change",
	})
	assert.Equal(t, http.StatusCreated, code)

	var b struct {
		ID     uint   `json:"id"`
		Status string `json:"status"`
	}
	assert.NoError(t, json.Unmarshal(env.Data, &b))
	assert.Equal(t, "Pending", b.Status)
	return b.ID
}

func TestRegistrationValidation(t *testing.T) {
	app, _ := setupTestApp(t)

	// Mismatched passwords
	payload := registerPayload("alice")
	payload["confirm_password"] = "different123"
	code, env := doJSON(t, app, http.MethodPost, "/api/register/customer", "", payload)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, env.Message, "match")

	// Short password
	payload = registerPayload("alice")
	payload["password"] = "short"
	payload["confirm_password"] = "short"
	code, _ = doJSON(t, app, http.MethodPost, "/api/register/customer", "", payload)
	assert.Equal(t, http.StatusBadRequest, code)

	// First registration succeeds, the same username again conflicts
	code, _ = doJSON(t, app, http.MethodPost, "/api/register/customer", "", registerPayload("alice"))
	assert.Equal(t, http.StatusCreated, code)
	code, _ = doJSON(t, app, http.MethodPost, "/api/register/customer", "", registerPayload("alice"))
	assert.Equal(t, http.StatusConflict, code)
}

func TestLoginAndDashboards(t *testing.T) {
	app, _ := setupTestApp(t)

	code, _ := doJSON(t, app, http.MethodPost, "/api/register/customer", "", registerPayload("bob"))
	assert.Equal(t, http.StatusCreated, code)

	// Wrong password
	code, _ = doJSON(t, app, http.MethodPost, "/api/login", "", fiber.Map{
		"username": "bob",
		"password": "wrongpassword",
	})
	assert.Equal(t, http.StatusUnauthorized, code)

	// Unknown username answers the same way
	code, _ = doJSON(t, app, http.MethodPost, "/api/login", "", fiber.Map{
		"username": "nobody",
		"password": "password123",
	})
	assert.Equal(t, http.StatusUnauthorized, code)

	code, env := doJSON(t, app, http.MethodPost, "/api/login", "", fiber.Map{
		"username": "bob",
		"password": "password123",
	})
	assert.Equal(t, http.StatusOK, code)
	assert.NotEmpty(t, env.Token)

	var data struct {
		Role     string `json:"role"`
		Redirect string `json:"redirect"`
	}
	assert.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "customer", data.Role)
	assert.Equal(t, "/dashboard/customer", data.Redirect)

	// The matching dashboard opens, the other role's does not
	code, _ = doJSON(t, app, http.MethodGet, "/api/dashboard/customer", env.Token, nil)
	assert.Equal(t, http.StatusOK, code)
	code, _ = doJSON(t, app, http.MethodGet, "/api/dashboard/servicecenter", env.Token, nil)
	assert.Equal(t, http.StatusForbidden, code)

	// No token at all
	code, _ = doJSON(t, app, http.MethodGet, "/api/dashboard/customer", "", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestVehicleOwnershipScoping(t *testing.T) {
	app, _ := setupTestApp(t)

	tokenA := registerAndLogin(t, app, "customer", "owner")
	tokenB := registerAndLogin(t, app, "customer", "intruder")

	vehicleID := addVehicle(t, app, tokenA, "KA-01-0001")

	// Someone else's vehicle reads as not found
	code, _ := doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/vehicles/edit/%d", vehicleID), tokenB, fiber.Map{
		"vehicle_number": "KA-01-0001",
		"model":          "Corolla",
		"manufacturer":   "Toyota",
		"year":           2021,
		"fuel_type":      "Petrol",
	})
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/vehicles/delete/%d", vehicleID), tokenB, nil)
	assert.Equal(t, http.StatusNotFound, code)

	// Duplicate vehicle number conflicts even across customers
	code, _ = doJSON(t, app, http.MethodPost, "/api/vehicles/add", tokenB, fiber.Map{
		"vehicle_number": "KA-01-0001",
		"model":          "Civic",
		"manufacturer":   "Honda",
		"year":           2019,
		"fuel_type":      "Petrol",
	})
	assert.Equal(t, http.StatusConflict, code)

	// Each customer only sees their own vehicles
	code, env := doJSON(t, app, http.MethodGet, "/api/vehicles/", tokenB, nil)
	assert.Equal(t, http.StatusOK, code)
	var vehicles []json.RawMessage
	assert.NoError(t, json.Unmarshal(env.Data, &vehicles))
	assert.Len(t, vehicles, 0)
}

func TestBookingLifecycle(t *testing.T) {
	app, db := setupTestApp(t)

	custToken := registerAndLogin(t, app, "customer", "driver")
	centerToken := registerAndLogin(t, app, "servicecenter", "garage")
	otherCenterToken := registerAndLogin(t, app, "servicecenter", "rival")

	vehicleID := addVehicle(t, app, custToken, "KA-02-0002")

	// Service center ids follow registration order in a fresh database.
	centerID := uint(1)

	// Booking in the past is rejected
	code, _ := doJSON(t, app, http.MethodPost, "/api/bookings/service", custToken, fiber.Map{
		"vehicle_id":        vehicleID,
		"service_center_id": centerID,
		"scheduled_date":    time.Now().AddDate(0, 0, -1).Format("2006-01-02"),
		"description":       "Oil change",
	})
	assert.Equal(t, http.StatusBadRequest, code)

	bookingID := bookService(t, app, custToken, vehicleID, centerID)

	// Add one staff member per center
	code, env := doJSON(t, app, http.MethodPost, "/api/staff/add", centerToken, fiber.Map{
		"name":  "Mechanic One",
		"role":  "Mechanic",
		"phone": "0111111111",
		"email": "m1@example.com",
	})
	assert.Equal(t, http.StatusCreated, code)
	var ownStaff struct {
		ID uint `json:"id"`
	}
	assert.NoError(t, json.Unmarshal(env.Data, &ownStaff))

	code, env = doJSON(t, app, http.MethodPost, "/api/staff/add", otherCenterToken, fiber.Map{
		"name":  "Mechanic Two",
		"role":  "Mechanic",
		"phone": "0222222222",
		"email": "m2@example.com",
	})
	assert.Equal(t, http.StatusCreated, code)
	var foreignStaff struct {
		ID uint `json:"id"`
	}
	assert.NoError(t, json.Unmarshal(env.Data, &foreignStaff))

	// A different center cannot touch the booking
	code, _ = doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/assign-job/%d", bookingID), otherCenterToken, fiber.Map{
		"staff_id": foreignStaff.ID,
	})
	assert.Equal(t, http.StatusForbidden, code)

	// The owning center cannot assign another center's staff
	code, _ = doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/assign-job/%d", bookingID), centerToken, fiber.Map{
		"staff_id": foreignStaff.ID,
	})
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/assign-job/%d", bookingID), centerToken, fiber.Map{
		"staff_id": ownStaff.ID,
		"notes":    "Bay 3",
	})
	assert.Equal(t, http.StatusCreated, code)

	// Customers cannot drive the status
	code, _ = doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/bookings/update/%d", bookingID), custToken, fiber.Map{
		"current_status": "In Progress",
	})
	assert.Equal(t, http.StatusForbidden, code)

	// Unknown status value is rejected
	code, _ = doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/bookings/update/%d", bookingID), centerToken, fiber.Map{
		"current_status": "Done",
	})
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/bookings/update/%d", bookingID), centerToken, fiber.Map{
		"current_status": "In Progress",
		"remarks":        "Work started",
	})
	assert.Equal(t, http.StatusOK, code)

	var stored bookingModel.ServiceBooking
	assert.NoError(t, db.First(&stored, bookingID).Error)
	assert.Equal(t, bookingModel.BookingStatusInProgress, stored.Status)

	// Invoice completes the booking and can only be issued once
	code, _ = doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/generate-invoice/%d", bookingID), centerToken, fiber.Map{
		"total_amount": 149.50,
	})
	assert.Equal(t, http.StatusCreated, code)

	assert.NoError(t, db.First(&stored, bookingID).Error)
	assert.Equal(t, bookingModel.BookingStatusCompleted, stored.Status)

	var statusCount int64
	assert.NoError(t, db.Model(&bookingModel.ServiceStatus{}).Where("booking_id = ?", bookingID).Count(&statusCount).Error)
	assert.EqualValues(t, 2, statusCount)

	code, _ = doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/generate-invoice/%d", bookingID), centerToken, fiber.Map{
		"total_amount": 149.50,
	})
	assert.Equal(t, http.StatusConflict, code)

	// Both sides see the booking in their listings
	code, env = doJSON(t, app, http.MethodGet, "/api/bookings", custToken, nil)
	assert.Equal(t, http.StatusOK, code)
	var bookings []json.RawMessage
	assert.NoError(t, json.Unmarshal(env.Data, &bookings))
	assert.Len(t, bookings, 1)

	code, env = doJSON(t, app, http.MethodGet, "/api/bookings", centerToken, nil)
	assert.Equal(t, http.StatusOK, code)
	bookings = nil
	assert.NoError(t, json.Unmarshal(env.Data, &bookings))
	assert.Len(t, bookings, 1)
}

func TestHistoryAndReminders(t *testing.T) {
	app, db := setupTestApp(t)

	custToken := registerAndLogin(t, app, "customer", "historycust")
	otherCustToken := registerAndLogin(t, app, "customer", "othercust")
	centerToken := registerAndLogin(t, app, "servicecenter", "historygarage")

	vehicleID := addVehicle(t, app, custToken, "KA-03-0003")
	bookingID := bookService(t, app, custToken, vehicleID, 1)

	historyPayload := fiber.Map{
		"vehicle_id":   vehicleID,
		"service_date": time.Now().Format("2006-01-02"),
		"details":      "Replaced brake pads",
		"cost":         80.0,
	}

	// Someone else's booking is off limits
	code, _ := doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/history/record/%d", bookingID), otherCustToken, historyPayload)
	assert.Equal(t, http.StatusForbidden, code)

	code, _ = doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/history/record/%d", bookingID), custToken, historyPayload)
	assert.Equal(t, http.StatusCreated, code)

	// The service center side can record against the same booking too
	code, _ = doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/history/record/%d", bookingID), centerToken, historyPayload)
	assert.Equal(t, http.StatusCreated, code)

	code, env := doJSON(t, app, http.MethodGet, "/api/history", custToken, nil)
	assert.Equal(t, http.StatusOK, code)
	var entries []json.RawMessage
	assert.NoError(t, json.Unmarshal(env.Data, &entries))
	assert.Len(t, entries, 2)

	// History listing is customer only
	code, _ = doJSON(t, app, http.MethodGet, "/api/history", centerToken, nil)
	assert.Equal(t, http.StatusForbidden, code)

	// Reminders go from a center to a customer, never the other way
	var cust customerModel.Customer
	assert.NoError(t, db.Where("email = ?", "historycust@example.com").First(&cust).Error)

	code, _ = doJSON(t, app, http.MethodPost, "/api/reminder-offer", centerToken, fiber.Map{
		"customer_id": cust.ID,
		"title":       "Service due",
		"message":     "Your vehicle is due for its annual service.",
	})
	assert.Equal(t, http.StatusCreated, code)

	code, _ = doJSON(t, app, http.MethodPost, "/api/reminder-offer", custToken, fiber.Map{
		"customer_id": cust.ID,
		"title":       "Service due",
		"message":     "Should not work",
	})
	assert.Equal(t, http.StatusForbidden, code)

	code, env = doJSON(t, app, http.MethodGet, "/api/reminder-offer", custToken, nil)
	assert.Equal(t, http.StatusOK, code)
	var offers []json.RawMessage
	assert.NoError(t, json.Unmarshal(env.Data, &offers))
	assert.Len(t, offers, 1)
}
