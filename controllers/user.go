// controllers/user.go
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

type CreateUserInput struct {
	FullName string  `json:"fullname" binding:"required"`
	UserName string  `json:"username" binding:"required"`
	Password string  `json:"password" binding:"required,min=8"`
	Role     string  `json:"role" binding:"required"`
	Phone    string  `json:"phone"`
	BranchID *string `json:"branchId"`
}

type UpdateUserInput struct {
	FullName *string `json:"fullname"`
	UserName *string `json:"username"`
	Password *string `json:"password"`
	Role     *string `json:"role"`
	Phone    *string `json:"phone"`
	BranchID *string `json:"branchId"`
}

// Roles each account type is allowed to hand out. Managers can create
// anyone; admins only the branch staff tiers.
func assignableRoles(creatorRole string) []string {
	switch creatorRole {
	case models.RoleManager:
		return []string{models.RoleManager, models.RoleAdmin, models.RoleBranchManager, models.RoleWaiter, models.RoleChef}
	case models.RoleAdmin:
		return []string{models.RoleBranchManager, models.RoleWaiter, models.RoleChef}
	default:
		return nil
	}
}

func roleAllowed(creatorRole, role string) bool {
	for _, allowed := range assignableRoles(creatorRole) {
		if allowed == role {
			return true
		}
	}
	return false
}

// GetUsers lists every account. The response envelope keys the collection
// as "detail" because that is the shape the consuming client was built
// against.
func GetUsers(c *gin.Context) {
	if _, ok := utils.SessionFromContext(c); !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "Session not found in context")
		return
	}

	var users []models.User
	if err := config.DB.Where("is_active = ?", true).Find(&users).Error; err != nil {
		utils.RespondWithError(c, http.StatusOK, "Failed to retrieve users")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": true, "detail": users})
}

// CreateUser registers a new staff account.
func CreateUser(c *gin.Context) {
	session, ok := utils.SessionFromContext(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "Session not found in context")
		return
	}

	var input CreateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !models.ValidRole(input.Role) {
		utils.RespondWithError(c, http.StatusOK, "Unknown role")
		return
	}
	if !roleAllowed(session.Role, input.Role) {
		utils.RespondWithError(c, http.StatusOK, "Not allowed to assign this role")
		return
	}
	if input.Phone != "" && !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusOK, "Invalid phone number format")
		return
	}

	var existing models.User
	if err := config.DB.Where("user_name = ?", input.UserName).First(&existing).Error; err == nil {
		utils.RespondWithError(c, http.StatusOK, "Username already taken")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusOK, "Database error")
		return
	}

	user := models.User{
		FullName: input.FullName,
		UserName: input.UserName,
		Password: input.Password, // hashed in BeforeCreate hook
		Role:     input.Role,
		Phone:    input.Phone,
		IsActive: true,
	}

	// A branch manager must be pinned to a branch; everyone else has the
	// assignment stripped.
	branchID, err := branchForRole(input.Role, input.BranchID)
	if err != nil {
		utils.RespondWithError(c, http.StatusOK, err.Error())
		return
	}
	user.BranchID = branchID

	if err := config.DB.Create(&user).Error; err != nil {
		utils.RespondWithError(c, http.StatusOK, "Failed to create user")
		return
	}

	utils.RespondWithMessage(c, http.StatusOK, "User created")
}

func branchForRole(role string, raw *string) (*uuid.UUID, error) {
	if role != models.RoleBranchManager && role != models.RoleWaiter && role != models.RoleChef {
		return nil, nil
	}
	if raw == nil || *raw == "" {
		if role == models.RoleBranchManager {
			return nil, errors.New("Select a branch for branch manager")
		}
		return nil, nil
	}
	branchID, err := uuid.Parse(*raw)
	if err != nil {
		return nil, errors.New("Invalid branch ID format")
	}
	var branch models.Branch
	if err := config.DB.First(&branch, "id = ?", branchID).Error; err != nil {
		return nil, errors.New("Branch not found")
	}
	return &branchID, nil
}

// UpdateUser changes an existing account.
func UpdateUser(c *gin.Context) {
	session, ok := utils.SessionFromContext(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "Session not found in context")
		return
	}
	if session.Role != models.RoleManager && session.Role != models.RoleAdmin {
		utils.RespondWithError(c, http.StatusOK, "Not allowed to manage users")
		return
	}

	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid user ID format")
		return
	}

	var input UpdateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
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

	if input.FullName != nil {
		user.FullName = *input.FullName
	}
	if input.UserName != nil && *input.UserName != user.UserName {
		var existing models.User
		if err := config.DB.Where("user_name = ?", *input.UserName).First(&existing).Error; err == nil {
			utils.RespondWithError(c, http.StatusOK, "Username already taken")
			return
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusOK, "Database error")
			return
		}
		user.UserName = *input.UserName
	}
	if input.Role != nil {
		if !models.ValidRole(*input.Role) {
			utils.RespondWithError(c, http.StatusOK, "Unknown role")
			return
		}
		if !roleAllowed(session.Role, *input.Role) {
			utils.RespondWithError(c, http.StatusOK, "Not allowed to assign this role")
			return
		}
		user.Role = *input.Role
	}
	if input.Phone != nil {
		if *input.Phone != "" && !utils.ValidatePhone(*input.Phone) {
			utils.RespondWithError(c, http.StatusOK, "Invalid phone number format")
			return
		}
		user.Phone = *input.Phone
	}
	if input.Password != nil {
		hashed, err := utils.HashPassword(*input.Password)
		if err != nil {
			utils.RespondWithError(c, http.StatusOK, "Failed to update password")
			return
		}
		user.Password = hashed
	}

	if input.BranchID != nil {
		branchID, err := branchForRole(user.Role, input.BranchID)
		if err != nil {
			utils.RespondWithError(c, http.StatusOK, err.Error())
			return
		}
		user.BranchID = branchID
	}
	if user.Role == models.RoleManager || user.Role == models.RoleAdmin {
		user.BranchID = nil
	}
	if user.Role == models.RoleBranchManager && user.BranchID == nil {
		utils.RespondWithError(c, http.StatusOK, "Select a branch for branch manager")
		return
	}

	if err := config.DB.Save(&user).Error; err != nil {
		utils.RespondWithError(c, http.StatusOK, "Failed to update user")
		return
	}

	utils.RespondWithMessage(c, http.StatusOK, "User updated")
}

// DeleteUser soft deletes an account.
func DeleteUser(c *gin.Context) {
	session, ok := utils.SessionFromContext(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "Session not found in context")
		return
	}
	if session.Role != models.RoleManager && session.Role != models.RoleAdmin {
		utils.RespondWithError(c, http.StatusOK, "Not allowed to manage users")
		return
	}

	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid user ID format")
		return
	}

	if session.ID == userID.String() {
		utils.RespondWithError(c, http.StatusOK, "Cannot delete your own account")
		return
	}

	result := config.DB.Where("id = ?", userID).Delete(&models.User{})
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusOK, "Failed to delete user")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusOK, "User not found")
		return
	}

	utils.RespondWithMessage(c, http.StatusOK, "User deleted")
}
