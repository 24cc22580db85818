package repositories

import (
	"errors"
	"fmt"
	"strings"

	"closet/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMGarmentRepository is a GORM implementation of GarmentRepository.
type GORMGarmentRepository struct {
	db *gorm.DB
}

// NewGORMGarmentRepository creates a new instance of GORMGarmentRepository.
func NewGORMGarmentRepository(db *gorm.DB) *GORMGarmentRepository {
	return &GORMGarmentRepository{
		db: db,
	}
}

// GetAll retrieves all garments from the database.
func (r *GORMGarmentRepository) GetAll() ([]models.Garment, error) {
	var garments []models.Garment
	if err := r.db.Find(&garments).Error; err != nil {
		return nil, fmt.Errorf("failed to get all garments: %w", err)
	}
	return garments, nil
}

// GetByID retrieves a single garment by its ID from the database.
func (r *GORMGarmentRepository) GetByID(id string) (*models.Garment, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, models.ErrInvalidID
	}
	var garment models.Garment
	if err := r.db.First(&garment, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get garment by ID %s: %w", id, err)
	}
	return &garment, nil
}

// Create persists a new garment, assigning a UUID when none is set.
func (r *GORMGarmentRepository) Create(garment *models.Garment) error {
	if garment.ID == "" {
		garment.ID = uuid.New().String()
	}
	if err := r.db.Create(garment).Error; err != nil {
		return fmt.Errorf("failed to create garment: %w", err)
	}
	return nil
}

// Delete removes a garment by its ID. Deleting an ID that does not exist is
// not an error; the endpoint contract reports success either way.
func (r *GORMGarmentRepository) Delete(id string) error {
	if err := r.db.Delete(&models.Garment{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete garment: %w", err)
	}
	return nil
}

// ReplaceAll wipes the collection and inserts the given garments in a single
// transaction.
func (r *GORMGarmentRepository) ReplaceAll(garments []models.Garment) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.Garment{}).Error; err != nil {
			return err
		}
		if len(garments) == 0 {
			return nil
		}
		for i := range garments {
			if garments[i].ID == "" {
				garments[i].ID = uuid.New().String()
			}
		}
		return tx.Create(&garments).Error
	})
	if err != nil {
		return fmt.Errorf("failed to replace garments: %w", err)
	}
	return nil
}

// FindMatches queries garments in the given category, excluding excludeID,
// whose type contains any of the keywords.
func (r *GORMGarmentRepository) FindMatches(category, excludeID string, typeKeywords []string) ([]models.Garment, error) {
	query := r.db.Where("category = ? AND id <> ?", category, excludeID)
	if len(typeKeywords) > 0 {
		var clauses []string
		var args []interface{}
		for _, keyword := range typeKeywords {
			clauses = append(clauses, "LOWER(type) LIKE ?")
			args = append(args, "%"+strings.ToLower(keyword)+"%")
		}
		query = query.Where(strings.Join(clauses, " OR "), args...)
	}

	var garments []models.Garment
	if err := query.Find(&garments).Error; err != nil {
		return nil, fmt.Errorf("failed to find matches: %w", err)
	}
	return garments, nil
}
