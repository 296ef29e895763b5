// controllers/auth.go
package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"restaurent-app-backend/config"
	"restaurent-app-backend/models"
	"restaurent-app-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

// Login authenticates by username and returns a token plus the flat
// identity fields the dashboard keeps for the session.
func Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	username := strings.TrimSpace(input.Username)

	var user models.User
	result := config.DB.Where("user_name = ? AND is_active = ?", username, true).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusOK, "Invalid credentials")
		} else {
			utils.RespondWithError(c, http.StatusOK, "Database error")
		}
		return
	}

	if !utils.CheckPasswordHash(input.Password, user.Password) {
		utils.RespondWithError(c, http.StatusOK, "Invalid credentials")
		return
	}

	branchID := ""
	if user.BranchID != nil {
		branchID = user.BranchID.String()
	}

	token, err := utils.GenerateToken(user.ID.String(), user.UserName, user.FullName, user.Role, branchID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	now := time.Now()
	config.DB.Model(&user).Update("last_login", &now)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
		"data": gin.H{
			"token":    token,
			"id":       user.ID,
			"username": user.UserName,
			"fullname": user.FullName,
			"role":     user.Role,
			"branchId": branchID,
		},
	})
}

// Me returns the identity baked into the current token.
func Me(c *gin.Context) {
	session, ok := utils.SessionFromContext(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "Session not found in context")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"id":       session.ID,
			"username": session.UserName,
			"fullname": session.FullName,
			"role":     session.Role,
			"branchId": session.BranchID,
		},
	})
}
