package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Bhavinahir07/bizpulse/config"
	"github.com/Bhavinahir07/bizpulse/internal/handlers"
	"github.com/Bhavinahir07/bizpulse/models"
)

// setupTestDB swaps the global connection for an in-memory SQLite
// database and restores it when the test finishes.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gin.SetMode(gin.TestMode)

	testDB, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = testDB.AutoMigrate(
		&models.User{},
		&models.BusinessOwnerProfile{},
		&models.Customer{},
		&models.Deal{},
		&models.ReminderLog{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	// The shared-cache memory database survives across tests in the
	// same binary; start each test from a clean slate.
	for _, table := range []string{"reminder_logs", "deals", "customers", "business_owner_profiles", "users"} {
		testDB.Exec("DELETE FROM " + table)
	}

	originalDB := config.DB
	config.DB = testDB
	t.Cleanup(func() { config.DB = originalDB })

	return testDB
}

// seedOwner creates a user; the model hook creates the linked business
// profile, which is what the handlers scope everything by.
func seedOwner(t *testing.T, db *gorm.DB, login string) models.BusinessOwnerProfile {
	t.Helper()

	user := models.User{Login: login, Email: login + "@example.com", PasswordHash: "x"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}

	var profile models.BusinessOwnerProfile
	if err := db.Where("user_id = ?", user.ID).First(&profile).Error; err != nil {
		t.Fatalf("failed to load seeded profile: %v", err)
	}
	return profile
}

// authAs injects the context keys the auth middleware would set.
func authAs(userID, profileID uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Set("profile_id", profileID)
		c.Next()
	}
}

func newRequest(method, path string, body interface{}) *http.Request {
	var reqBody []byte
	if body != nil {
		reqBody, _ = json.Marshal(body)
	}
	req := httptest.NewRequest(method, path, bytes.NewBuffer(reqBody))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func perform(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
	return body
}

func customerRouter(profile models.BusinessOwnerProfile) *gin.Engine {
	r := gin.New()
	api := r.Group("/api", authAs(profile.UserID, profile.ID))
	{
		api.GET("/customers", handlers.ListCustomersHandler)
		api.POST("/customers", handlers.CreateCustomerHandler)
		api.GET("/customers/:id", handlers.GetCustomerHandler)
		api.PUT("/customers/:id", handlers.UpdateCustomerHandler)
		api.DELETE("/customers/:id", handlers.DeleteCustomerHandler)
	}
	return r
}

func dealRouter(profile models.BusinessOwnerProfile) *gin.Engine {
	r := gin.New()
	api := r.Group("/api", authAs(profile.UserID, profile.ID))
	{
		api.GET("/deals", handlers.ListDealsHandler)
		api.POST("/deals", handlers.CreateDealHandler)
		api.GET("/deals/:id", handlers.GetDealHandler)
		api.PUT("/deals/:id", handlers.UpdateDealHandler)
		api.DELETE("/deals/:id", handlers.DeleteDealHandler)
		api.POST("/deals/:id/send_reminder", handlers.SendReminderHandler)
		api.GET("/dashboard", handlers.GetDashboardHandler)
	}
	return r
}
