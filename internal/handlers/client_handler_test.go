package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/Bhavinahir07/bizpulse/internal/handlers"
	"github.com/Bhavinahir07/bizpulse/models"
)

func clientRouter() *gin.Engine {
	r := gin.New()
	r.POST("/api/verify/:dealId", handlers.VerifyClientHandler)
	r.POST("/api/pay/:dealId", handlers.SimulatedPaymentHandler)
	return r
}

func TestVerifyClientHandler(t *testing.T) {
	db := setupTestDB(t)
	profile := seedOwner(t, db, "owner1")
	customer := models.Customer{OwnerID: profile.ID, Name: "Asha Rao", Email: "asha@example.com"}
	assert.NoError(t, db.Create(&customer).Error)
	deal := models.Deal{CustomerID: customer.ID, Description: "Shoot", Amount: 5000, DueDate: time.Now(), Status: models.DealStatusPending}
	assert.NoError(t, db.Create(&deal).Error)

	router := clientRouter()

	t.Run("accepts a matching name ignoring case and spaces", func(t *testing.T) {
		w := perform(router, newRequest(http.MethodPost, "/api/verify/"+deal.ID, handlers.VerifyInput{
			FullName: "  asha RAO  ",
		}))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, true, decodeBody(t, w)["success"])
	})

	t.Run("rejects a wrong name", func(t *testing.T) {
		w := perform(router, newRequest(http.MethodPost, "/api/verify/"+deal.ID, handlers.VerifyInput{
			FullName: "Somebody Else",
		}))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, decodeBody(t, w)["error"], "does not match")
	})

	t.Run("404 on an unknown deal id", func(t *testing.T) {
		w := perform(router, newRequest(http.MethodPost, "/api/verify/00000000-0000-0000-0000-000000000000", handlers.VerifyInput{
			FullName: "Asha Rao",
		}))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestSimulatedPaymentHandler(t *testing.T) {
	db := setupTestDB(t)
	profile := seedOwner(t, db, "owner1")
	customer := models.Customer{OwnerID: profile.ID, Name: "Asha Rao", Email: "asha@example.com"}
	assert.NoError(t, db.Create(&customer).Error)
	deal := models.Deal{CustomerID: customer.ID, Description: "Shoot", Amount: 5000, DueDate: time.Now(), Status: models.DealStatusPending}
	assert.NoError(t, db.Create(&deal).Error)

	router := clientRouter()

	t.Run("marks a pending deal as paid", func(t *testing.T) {
		w := perform(router, newRequest(http.MethodPost, "/api/pay/"+deal.ID, nil))
		assert.Equal(t, http.StatusOK, w.Code)

		var saved models.Deal
		assert.NoError(t, db.First(&saved, "id = ?", deal.ID).Error)
		assert.Equal(t, models.DealStatusPaid, saved.Status)
	})

	t.Run("rejects paying twice", func(t *testing.T) {
		w := perform(router, newRequest(http.MethodPost, "/api/pay/"+deal.ID, nil))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, decodeBody(t, w)["message"], "already been paid")
	})

	t.Run("404 on an unknown deal id", func(t *testing.T) {
		w := perform(router, newRequest(http.MethodPost, "/api/pay/00000000-0000-0000-0000-000000000000", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
