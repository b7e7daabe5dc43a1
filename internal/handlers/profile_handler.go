// bizpulse/internal/handlers/profile_handler.go
package handlers

import (
	"net/http"

	"github.com/Bhavinahir07/bizpulse/config"
	"github.com/Bhavinahir07/bizpulse/models"

	"github.com/gin-gonic/gin"
)

type ProfileInput struct {
	FullName     string `json:"fullName"`
	BusinessName string `json:"businessName"`
	UpiID        string `json:"upiId"`
}

type UserProfileInput struct {
	FullName string `json:"fullName"`
	Email    string `json:"email" binding:"omitempty,email"`
}

// profileID returns the authenticated owner's business profile ID set
// by the auth middleware.
func profileID(c *gin.Context) (uint, bool) {
	v, ok := c.Get("profile_id")
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return 0, false
	}
	id, ok := v.(uint)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid profile context"})
		return 0, false
	}
	return id, true
}

func userID(c *gin.Context) (uint, bool) {
	v, ok := c.Get("user_id")
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return 0, false
	}
	id, ok := v.(uint)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user context"})
		return 0, false
	}
	return id, true
}

// GetProfileHandler returns the owner's business profile.
func GetProfileHandler(c *gin.Context) {
	id, ok := profileID(c)
	if !ok {
		return
	}

	var profile models.BusinessOwnerProfile
	if err := config.DB.First(&profile, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateProfileHandler updates the business name, owner name and UPI ID.
func UpdateProfileHandler(c *gin.Context) {
	id, ok := profileID(c)
	if !ok {
		return
	}

	var input ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var profile models.BusinessOwnerProfile
	if err := config.DB.First(&profile, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
		return
	}

	profile.FullName = input.FullName
	profile.BusinessName = input.BusinessName
	profile.UpiID = input.UpiID
	if err := config.DB.Save(&profile).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update profile"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// GetUserProfileHandler returns the account fields of the logged-in user.
func GetUserProfileHandler(c *gin.Context) {
	id, ok := userID(c)
	if !ok {
		return
	}

	var user models.User
	if err := config.DB.First(&user, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, UserResponse{ID: user.ID, Login: user.Login, Email: user.Email, FullName: user.FullName})
}

// UpdateUserProfileHandler updates account fields (not the password).
func UpdateUserProfileHandler(c *gin.Context) {
	id, ok := userID(c)
	if !ok {
		return
	}

	var input UserProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := config.DB.First(&user, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if input.FullName != "" {
		user.FullName = input.FullName
	}
	if input.Email != "" {
		user.Email = input.Email
	}
	if err := config.DB.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update user"})
		return
	}
	c.JSON(http.StatusOK, UserResponse{ID: user.ID, Login: user.Login, Email: user.Email, FullName: user.FullName})
}
