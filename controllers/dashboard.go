// controllers/dashboard.go
package controllers

import (
	"net/http"
	"time"

	"restaurent-app-backend/config"
	"restaurent-app-backend/models"
	"restaurent-app-backend/services"
	"restaurent-app-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type DashboardController struct {
	Board *services.NoticeBoard
}

// BranchCard is one tile of the branch overview: financial totals plus
// how many orders that branch has taken since midnight.
type BranchCard struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Location     string          `json:"location"`
	TotalExpense decimal.Decimal `json:"totalExpense"`
	TotalSale    decimal.Decimal `json:"totalSale"`
	TodayOrders  int64           `json:"todayOrders"`
}

// OrderCard is one tile of the order board, with the placement time
// pre-rendered as relative text.
type OrderCard struct {
	models.Order
	PlacedAgo string `json:"placedAgo"`
}

// GetOverview resolves the session role to its dashboard variant once and
// dispatches on that. Unknown roles get an empty "none" view, not an
// error.
func (dc *DashboardController) GetOverview(c *gin.Context) {
	session, ok := utils.SessionFromContext(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "Session not found in context")
		return
	}

	view := services.ResolveView(session.Role)

	switch view.Kind {
	case services.ViewBranchOverview:
		dc.branchOverview(c, session)
	case services.ViewOrderBoard:
		dc.orderBoard(c, session, view.CreateEnabled)
	default:
		c.JSON(http.StatusOK, gin.H{"success": true, "view": services.ViewNone})
	}
}

func (dc *DashboardController) branchOverview(c *gin.Context, session utils.Session) {
	var branches []models.Branch

	// Managers and admins see every branch, a branch manager only their own.
	query := config.DB
	if session.Role == models.RoleBranchManager {
		if session.BranchID == "" {
			c.JSON(http.StatusOK, gin.H{"success": true, "view": services.ViewBranchOverview, "data": []BranchCard{}})
			return
		}
		query = query.Where("id = ?", session.BranchID)
	}
	if err := query.Find(&branches).Error; err != nil {
		utils.RespondWithError(c, http.StatusOK, "Failed to retrieve branches")
		return
	}

	midnight := utils.BeginningOfDay(time.Now())
	cards := make([]BranchCard, 0, len(branches))
	for _, branch := range branches {
		var todayOrders int64
		config.DB.Model(&models.Order{}).
			Where("branch_id = ? AND placed_at >= ?", branch.ID, midnight).
			Count(&todayOrders)

		cards = append(cards, BranchCard{
			ID:           branch.ID.String(),
			Name:         branch.Name,
			Location:     branch.Location,
			TotalExpense: branch.TotalExpense,
			TotalSale:    branch.TotalSale,
			TodayOrders:  todayOrders,
		})
	}

	response := gin.H{
		"success": true,
		"view":    services.ViewBranchOverview,
		"data":    cards,
	}
	// The notice board only accompanies a non-empty overview.
	if len(cards) > 0 {
		response["reminders"] = dc.Board.Notes()
	}

	c.JSON(http.StatusOK, response)
}

func (dc *DashboardController) orderBoard(c *gin.Context, session utils.Session, createEnabled bool) {
	query := config.DB.Preload("Items").Preload("Waiter").Order("placed_at DESC")
	if session.Role == models.RoleChef && session.BranchID != "" {
		query = query.Where("branch_id = ?", session.BranchID)
	} else {
		query = query.Where("waiter_id = ?", session.ID)
	}

	orders := []models.Order{}
	if err := query.Find(&orders).Error; err != nil {
		utils.RespondWithError(c, http.StatusOK, "Failed to retrieve orders")
		return
	}

	now := time.Now()
	cards := make([]OrderCard, 0, len(orders))
	for _, order := range orders {
		cards = append(cards, OrderCard{
			Order:     order,
			PlacedAgo: utils.TimeAgo(order.PlacedAt, now),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"view":          services.ViewOrderBoard,
		"createEnabled": createEnabled,
		"data":          cards,
	})
}
