package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Branch struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name     string    `gorm:"not null" json:"name"`
	Location string    `gorm:"not null" json:"location"`

	TotalExpense decimal.Decimal `gorm:"type:decimal(10,2);default:0.0" json:"totalExpense"`
	TotalSale    decimal.Decimal `gorm:"type:decimal(10,2);default:0.0" json:"totalSale"`

	Users  []User  `gorm:"foreignKey:BranchID" json:"-"`
	Orders []Order `gorm:"foreignKey:BranchID" json:"-"`

	gorm.Model
}

func (b *Branch) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return
}
