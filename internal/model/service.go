package model

// Service is a repair service offered by the shop. Services have no stock
// concept; they are always available.
type Service struct {
	BaseModel
	Name        string  `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Category    string  `gorm:"type:varchar(100);not null" json:"category" validate:"required"`
	Price       float64 `gorm:"type:decimal(10,2);not null" json:"price" validate:"required,gt=0"`
	Duration    string  `gorm:"type:varchar(50);not null" json:"duration" validate:"required"`
	Description string  `gorm:"type:text" json:"description"`
	Warranty    string  `gorm:"type:varchar(100)" json:"warranty,omitempty"`
}
