// controllers/order.go
package controllers

import (
	"errors"
	"net/http"
	"time"

	"restaurent-app-backend/config"
	"restaurent-app-backend/models"
	"restaurent-app-backend/services"
	"restaurent-app-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MenuItem is one row of the fixed menu that seeds the order form. Every
// quantity starts at zero; the waiter bumps the items the table asked for.
type MenuItem struct {
	ItemName string `json:"itemName"`
	Quantity int    `json:"quantity"`
}

var defaultMenu = []MenuItem{
	{ItemName: "Smoked BBQ Beef Ribs"},
	{ItemName: "Classic Cheeseburger"},
	{ItemName: "Margherita Pizza"},
	{ItemName: "Grilled Chicken Caesar Salad"},
	{ItemName: "Creamy Alfredo Pasta"},
	{ItemName: "Fish and Chips"},
	{ItemName: "Lamb Kofta Platter"},
	{ItemName: "Vegetable Spring Rolls"},
	{ItemName: "Chocolate Lava Cake"},
	{ItemName: "Fresh Lemonade"},
}

type OrderItemInput struct {
	ItemName string `json:"itemName" binding:"required"`
	Quantity int    `json:"quantity"`
}

type CreateOrderInput struct {
	CustomerName        string           `json:"customerName" binding:"required"`
	TableNumber         int              `json:"tableNumber" binding:"required,min=1"`
	Items               []OrderItemInput `json:"items" binding:"required"`
	SpecialInstructions string           `json:"specialInstructions"`
}

type ChangeOrderStatusInput struct {
	OrderID string `json:"orderId" binding:"required"`
	Status  string `json:"status" binding:"required"`
}

// GetMenu returns the fixed 10-item menu used to seed a new order.
func GetMenu(c *gin.Context) {
	utils.RespondWithData(c, http.StatusOK, defaultMenu)
}

// GetOrdersForUser retrieves the order board for a waiter or chef. A
// waiter sees the orders they took; a chef sees every order placed at
// their branch.
func GetOrdersForUser(c *gin.Context) {
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

	query := config.DB.Preload("Items").Preload("Waiter").Order("placed_at DESC")
	if user.Role == models.RoleChef && user.BranchID != nil {
		query = query.Where("branch_id = ?", *user.BranchID)
	} else {
		query = query.Where("waiter_id = ?", user.ID)
	}

	orders := []models.Order{}
	if err := query.Find(&orders).Error; err != nil {
		utils.RespondWithError(c, http.StatusOK, "Failed to retrieve orders")
		return
	}

	utils.RespondWithData(c, http.StatusOK, orders)
}

// CreateOrder records a new table order. Zero-quantity rows are stripped
// before the write; a submission with nothing ordered is rejected without
// touching the database.
func CreateOrder(c *gin.Context) {
	session, ok := utils.SessionFromContext(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "Session not found in context")
		return
	}
	if session.Role != models.RoleWaiter {
		utils.RespondWithError(c, http.StatusOK, "Only waiters can take orders")
		return
	}

	var input CreateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	items := make([]models.OrderItem, 0, len(input.Items))
	for _, item := range input.Items {
		items = append(items, models.OrderItem{
			ItemName: item.ItemName,
			Quantity: item.Quantity,
		})
	}

	items, err := services.NormalizeOrderItems(items)
	if err != nil {
		utils.RespondWithError(c, http.StatusOK, err.Error())
		return
	}

	waiterID, err := uuid.Parse(session.ID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid user ID format")
		return
	}

	order := models.Order{
		WaiterID:            waiterID,
		CustomerName:        input.CustomerName,
		TableNumber:         input.TableNumber,
		Status:              models.StatusPending,
		PlacedAt:            time.Now(),
		SpecialInstructions: input.SpecialInstructions,
		Items:               items,
	}

	if session.BranchID != "" {
		branchID, err := uuid.Parse(session.BranchID)
		if err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Invalid branch ID format")
			return
		}
		order.BranchID = branchID
	}

	if err := config.DB.Create(&order).Error; err != nil {
		utils.RespondWithError(c, http.StatusOK, "Failed to create order")
		return
	}

	utils.RespondWithMessage(c, http.StatusOK, "Order placed")
}

// ChangeOrderStatus moves an order one step through its lifecycle. The
// transition is validated here against the acting role, not trusted from
// the client.
func ChangeOrderStatus(c *gin.Context) {
	session, ok := utils.SessionFromContext(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "Session not found in context")
		return
	}

	var input ChangeOrderStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	orderID, err := uuid.Parse(input.OrderID)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid order ID format")
		return
	}

	var order models.Order
	if err := config.DB.First(&order, "id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusOK, "Order not found")
		} else {
			utils.RespondWithError(c, http.StatusOK, "Database error")
		}
		return
	}

	if err := services.ValidateTransition(session.Role, order.Status, input.Status); err != nil {
		utils.RespondWithError(c, http.StatusOK, err.Error())
		return
	}

	if err := config.DB.Model(&order).Update("status", input.Status).Error; err != nil {
		utils.RespondWithError(c, http.StatusOK, "Failed to update order status")
		return
	}

	utils.RespondWithMessage(c, http.StatusOK, "Order status updated")
}
