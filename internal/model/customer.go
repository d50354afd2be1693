package model

type Customer struct {
	BaseModel
	Name    string `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Phone   string `gorm:"type:varchar(30);uniqueIndex;not null" json:"phone" validate:"required"`
	Email   string `gorm:"type:varchar(255)" json:"email,omitempty"`
	Address string `gorm:"type:text" json:"address,omitempty"`

	// Relasi
	Transactions []Transaction `gorm:"foreignKey:CustomerID" json:"transactions,omitempty"`
}
