package repositories

import (
	"closet/internal/models"
)

// GarmentRepository defines the interface for garment data access.
type GarmentRepository interface {
	GetAll() ([]models.Garment, error)
	GetByID(id string) (*models.Garment, error)
	Create(garment *models.Garment) error
	Delete(id string) error
	ReplaceAll(garments []models.Garment) error
	// FindMatches returns garments in the given category, excluding excludeID,
	// whose type contains any of the given keywords (case-insensitive).
	FindMatches(category, excludeID string, typeKeywords []string) ([]models.Garment, error)
}
