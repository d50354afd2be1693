package model

type Product struct {
	BaseModel
	Name        string  `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Category    string  `gorm:"type:varchar(100);not null" json:"category" validate:"required"`
	Price       float64 `gorm:"type:decimal(10,2);not null" json:"price" validate:"required,gt=0"`
	Stock       int     `gorm:"not null;default:0" json:"stock" validate:"gte=0"`
	Description string  `gorm:"type:text" json:"description"`
	ImageURL    string  `gorm:"type:varchar(500)" json:"image_url,omitempty"`
}
