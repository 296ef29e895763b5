// controllers/branch.go
package controllers

import (
	"errors"
	"net/http"

	"restaurent-app-backend/config"
	"restaurent-app-backend/models"
	"restaurent-app-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetBranches retrieves the full branch collection (manager/admin view).
func GetBranches(c *gin.Context) {
	if _, ok := utils.SessionFromContext(c); !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "Session not found in context")
		return
	}

	var branches []models.Branch
	if err := config.DB.Find(&branches).Error; err != nil {
		utils.RespondWithError(c, http.StatusOK, "Failed to retrieve branches")
		return
	}

	utils.RespondWithData(c, http.StatusOK, branches)
}

// GetBranchesForUser retrieves the branch(es) the given user is assigned
// to. Non-admin roles reach branch data only through this scoped path.
func GetBranchesForUser(c *gin.Context) {
	if _, ok := utils.SessionFromContext(c); !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "Session not found in context")
		return
	}

	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid user ID format")
		return
	}

	var user models.User
	if err := config.DB.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusOK, "User not found")
		} else {
			utils.RespondWithError(c, http.StatusOK, "Database error")
		}
		return
	}

	branches := []models.Branch{}
	if user.BranchID != nil {
		if err := config.DB.Where("id = ?", *user.BranchID).Find(&branches).Error; err != nil {
			utils.RespondWithError(c, http.StatusOK, "Failed to retrieve branches")
			return
		}
	}

	utils.RespondWithData(c, http.StatusOK, branches)
}
