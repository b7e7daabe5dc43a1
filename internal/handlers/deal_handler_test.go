package handlers_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Bhavinahir07/bizpulse/internal/handlers"
	"github.com/Bhavinahir07/bizpulse/models"
)

func futureDate(days int) string {
	return time.Now().UTC().AddDate(0, 0, days).Format("2006-01-02")
}

func TestCreateDealHandler(t *testing.T) {
	db := setupTestDB(t)
	profile := seedOwner(t, db, "owner1")
	router := dealRouter(profile)

	customer := models.Customer{OwnerID: profile.ID, Name: "Asha Rao", Email: "asha@example.com"}
	assert.NoError(t, db.Create(&customer).Error)

	t.Run("creates a pending deal with a UUID", func(t *testing.T) {
		w := perform(router, newRequest(http.MethodPost, "/api/deals", handlers.DealInput{
			CustomerID:  customer.ID,
			Description: "Wedding Photoshoot",
			Amount:      15000,
			DueDate:     futureDate(14),
		}))
		assert.Equal(t, http.StatusCreated, w.Code)

		var saved models.Deal
		assert.NoError(t, db.Where("description = ?", "Wedding Photoshoot").First(&saved).Error)
		assert.NotEmpty(t, saved.ID)
		assert.Equal(t, models.DealStatusPending, saved.Status)
	})

	t.Run("rejects a zero amount", func(t *testing.T) {
		w := perform(router, newRequest(http.MethodPost, "/api/deals", handlers.DealInput{
			CustomerID:  customer.ID,
			Description: "Free work",
			Amount:      0,
			DueDate:     futureDate(7),
		}))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects a past due date", func(t *testing.T) {
		w := perform(router, newRequest(http.MethodPost, "/api/deals", handlers.DealInput{
			CustomerID:  customer.ID,
			Description: "Backdated",
			Amount:      100,
			DueDate:     futureDate(-3),
		}))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, decodeBody(t, w)["error"], "past")
	})

	t.Run("accepts a deal due today", func(t *testing.T) {
		w := perform(router, newRequest(http.MethodPost, "/api/deals", handlers.DealInput{
			CustomerID:  customer.ID,
			Description: "Due today",
			Amount:      100,
			DueDate:     futureDate(0),
		}))
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("rejects a customer belonging to another owner", func(t *testing.T) {
		other := seedOwner(t, db, "owner2")
		foreign := models.Customer{OwnerID: other.ID, Name: "Foreign", Email: "f@example.com"}
		assert.NoError(t, db.Create(&foreign).Error)

		w := perform(router, newRequest(http.MethodPost, "/api/deals", handlers.DealInput{
			CustomerID:  foreign.ID,
			Description: "Cross-tenant",
			Amount:      100,
			DueDate:     futureDate(7),
		}))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestSendReminderValidation(t *testing.T) {
	db := setupTestDB(t)
	profile := seedOwner(t, db, "owner1")
	router := dealRouter(profile)

	t.Run("rejects a paid deal", func(t *testing.T) {
		customer := models.Customer{OwnerID: profile.ID, Name: "Paid Up", Email: "paid@example.com"}
		assert.NoError(t, db.Create(&customer).Error)
		deal := models.Deal{CustomerID: customer.ID, Description: "Done", Amount: 100, DueDate: time.Now(), Status: models.DealStatusPaid}
		assert.NoError(t, db.Create(&deal).Error)

		w := perform(router, newRequest(http.MethodPost, "/api/deals/"+deal.ID+"/send_reminder", nil))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, decodeBody(t, w)["error"], "already been paid")
	})

	t.Run("rejects a customer without an email", func(t *testing.T) {
		customer := models.Customer{OwnerID: profile.ID, Name: "Phone Only", PhoneNumber: "+919876543210"}
		assert.NoError(t, db.Create(&customer).Error)
		deal := models.Deal{CustomerID: customer.ID, Description: "No email", Amount: 100, DueDate: time.Now(), Status: models.DealStatusPending}
		assert.NoError(t, db.Create(&deal).Error)

		w := perform(router, newRequest(http.MethodPost, "/api/deals/"+deal.ID+"/send_reminder", nil))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, decodeBody(t, w)["error"], "email address")
	})

	t.Run("404 for an unknown deal", func(t *testing.T) {
		w := perform(router, newRequest(http.MethodPost, "/api/deals/00000000-0000-0000-0000-000000000000/send_reminder", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestDealOwnerIsolation(t *testing.T) {
	db := setupTestDB(t)
	owner := seedOwner(t, db, "owner1")
	other := seedOwner(t, db, "owner2")

	foreignCustomer := models.Customer{OwnerID: other.ID, Name: "Foreign", Email: "f@example.com"}
	assert.NoError(t, db.Create(&foreignCustomer).Error)
	foreignDeal := models.Deal{CustomerID: foreignCustomer.ID, Description: "Secret", Amount: 999, DueDate: time.Now(), Status: models.DealStatusPending}
	assert.NoError(t, db.Create(&foreignDeal).Error)

	router := dealRouter(owner)

	w := perform(router, newRequest(http.MethodGet, "/api/deals/"+foreignDeal.ID, nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = perform(router, newRequest(http.MethodDelete, "/api/deals/"+foreignDeal.ID, nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListDealsEmbedsCustomer(t *testing.T) {
	db := setupTestDB(t)
	profile := seedOwner(t, db, "owner1")
	router := dealRouter(profile)

	customer := models.Customer{OwnerID: profile.ID, Name: "Asha Rao", Email: "asha@example.com"}
	assert.NoError(t, db.Create(&customer).Error)
	deal := models.Deal{CustomerID: customer.ID, Description: "Shoot", Amount: 5000, DueDate: time.Now().AddDate(0, 0, 7), Status: models.DealStatusPending}
	assert.NoError(t, db.Create(&deal).Error)

	w := perform(router, newRequest(http.MethodGet, "/api/deals?all=true", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	data := decodeBody(t, w)["data"].([]interface{})
	if assert.Len(t, data, 1) {
		first := data[0].(map[string]interface{})
		embedded := first["customer"].(map[string]interface{})
		assert.Equal(t, "Asha Rao", embedded["name"])
	}
}

func TestUpdateDealStatus(t *testing.T) {
	db := setupTestDB(t)
	profile := seedOwner(t, db, "owner1")
	router := dealRouter(profile)

	customer := models.Customer{OwnerID: profile.ID, Name: "Asha Rao", Email: "asha@example.com"}
	assert.NoError(t, db.Create(&customer).Error)
	deal := models.Deal{CustomerID: customer.ID, Description: "Shoot", Amount: 5000, DueDate: time.Now().UTC().AddDate(0, 0, 7), Status: models.DealStatusPending}
	assert.NoError(t, db.Create(&deal).Error)

	w := perform(router, newRequest(http.MethodPut, "/api/deals/"+deal.ID, handlers.DealInput{
		CustomerID:  customer.ID,
		Description: "Shoot",
		Amount:      5000,
		DueDate:     deal.DueDate.Format("2006-01-02"),
		Status:      models.DealStatusPaid,
	}))
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var saved models.Deal
	assert.NoError(t, db.First(&saved, "id = ?", deal.ID).Error)
	assert.Equal(t, models.DealStatusPaid, saved.Status)
	assert.Equal(t, fmt.Sprintf("%.0f", 5000.0), fmt.Sprintf("%.0f", saved.Amount))
}
