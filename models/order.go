package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Order lifecycle. Transitions only move forward, one step at a time:
// pending -> prepared -> served.
const (
	StatusPending  = "pending"
	StatusPrepared = "prepared"
	StatusServed   = "served"
)

type Order struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	BranchID uuid.UUID `gorm:"type:uuid;index;not null" json:"branchId"`
	WaiterID uuid.UUID `gorm:"type:uuid;index;not null" json:"waiterId"`

	Waiter User `gorm:"foreignKey:WaiterID" json:"waiter"`

	CustomerName        string    `gorm:"not null" json:"customerName"`
	TableNumber         int       `gorm:"not null" json:"tableNumber"`
	Status              string    `gorm:"type:varchar(20);default:'pending'" json:"status"`
	PlacedAt            time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"placedAt"`
	SpecialInstructions string    `json:"specialInstructions,omitempty"`

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items"`

	gorm.Model
}

type OrderItem struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"-"`
	OrderID  uuid.UUID `gorm:"type:uuid;index;not null" json:"-"`
	ItemName string    `gorm:"not null" json:"itemName"`
	Quantity int       `gorm:"not null" json:"quantity"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) (err error) {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return
}

func (i *OrderItem) BeforeCreate(tx *gorm.DB) (err error) {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return
}
