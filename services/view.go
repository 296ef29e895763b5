// services/view.go
package services

import "restaurent-app-backend/models"

// ViewKind is the dashboard variant a session resolves to. Exactly one
// variant matches any role; unknown or empty roles get ViewNone, which is
// a silent fallback rather than an error.
type ViewKind string

const (
	ViewNone           ViewKind = "none"
	ViewBranchOverview ViewKind = "branch-overview"
	ViewOrderBoard     ViewKind = "order-board"
)

// View is resolved once per request and consumed by a single dispatch,
// so role checks never have to be re-derived downstream.
type View struct {
	Kind          ViewKind
	CreateEnabled bool // order creation, waiter only
}

// ResolveView maps a session role to its dashboard variant.
func ResolveView(role string) View {
	switch role {
	case models.RoleManager, models.RoleAdmin, models.RoleBranchManager:
		return View{Kind: ViewBranchOverview}
	case models.RoleWaiter:
		return View{Kind: ViewOrderBoard, CreateEnabled: true}
	case models.RoleChef:
		return View{Kind: ViewOrderBoard}
	default:
		return View{Kind: ViewNone}
	}
}
