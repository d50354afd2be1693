package model

import (
	"time"

	"github.com/google/uuid"
)

type TransactionType string

const (
	TxSale    TransactionType = "sale"
	TxService TransactionType = "service"
)

type TransactionStatus string

const (
	StatusCompleted  TransactionStatus = "completed"
	StatusPending    TransactionStatus = "pending"
	StatusInProgress TransactionStatus = "in-progress"
)

type ItemType string

const (
	ItemProduct ItemType = "product"
	ItemService ItemType = "service"
)

type Transaction struct {
	BaseModel
	CustomerID uuid.UUID         `gorm:"type:uuid;not null;index" json:"customer_id"`
	Customer   *Customer         `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Total      float64           `gorm:"type:decimal(10,2);not null" json:"total"`
	Type       TransactionType   `gorm:"type:varchar(10);not null" json:"type"`
	Status     TransactionStatus `gorm:"type:varchar(15);not null" json:"status"`
	Notes      string            `gorm:"type:text" json:"notes,omitempty"`
	Discount   float64           `gorm:"type:decimal(5,2);not null;default:0" json:"discount"`

	Items []TransactionItem `gorm:"foreignKey:TransactionID" json:"items,omitempty"`
}

// TransactionItem is a denormalized snapshot of the sold product or service.
// Later edits to the catalog must not alter historical transactions.
type TransactionItem struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	TransactionID uuid.UUID `gorm:"type:uuid;not null;index" json:"transaction_id"`
	ItemID        uuid.UUID `gorm:"type:uuid;not null" json:"item_id"`
	ItemType      ItemType  `gorm:"type:varchar(10);not null" json:"item_type"`
	ItemName      string    `gorm:"type:varchar(255);not null" json:"item_name"`
	Quantity      int       `gorm:"not null" json:"quantity"`
	UnitPrice     float64   `gorm:"type:decimal(10,2);not null" json:"unit_price"`
	TotalPrice    float64   `gorm:"type:decimal(10,2);not null" json:"total_price"`
	Warranty      string    `gorm:"type:varchar(100)" json:"warranty,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// TransactionFilter narrows transaction listings.
type TransactionFilter struct {
	Type       TransactionType
	Status     TransactionStatus
	CustomerID *uuid.UUID
}
