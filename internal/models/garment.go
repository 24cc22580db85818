package models

// Garment represents a single clothing item in the wardrobe.
type Garment struct {
	ID          string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Type        string `json:"type" gorm:"type:varchar(100)" validate:"omitempty,max=100"`
	Color       string `json:"color" gorm:"type:varchar(100)" validate:"omitempty,max=100"`
	Category    string `json:"category" gorm:"type:varchar(100)" validate:"omitempty,max=100"`
	IsClean     bool   `json:"isClean"`
	ImageURL    string `json:"imageUrl" gorm:"type:varchar(512)" validate:"omitempty,max=512"`
	Description string `json:"description" gorm:"type:varchar(500)" validate:"omitempty,max=500"`
}
