package repositories

import (
	"strings"
	"sync"

	"closet/internal/models"

	"github.com/google/uuid"
)

// MockGarmentRepository is an in-memory implementation of GarmentRepository.
type MockGarmentRepository struct {
	garments map[string]models.Garment
	mu       sync.RWMutex
}

// NewMockGarmentRepository creates a new instance of MockGarmentRepository.
func NewMockGarmentRepository() *MockGarmentRepository {
	return &MockGarmentRepository{
		garments: make(map[string]models.Garment),
	}
}

// GetAll returns all garments.
func (r *MockGarmentRepository) GetAll() ([]models.Garment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	garmentList := make([]models.Garment, 0, len(r.garments))
	for _, g := range r.garments {
		garmentList = append(garmentList, g)
	}
	return garmentList, nil
}

// GetByID returns a garment by its ID.
func (r *MockGarmentRepository) GetByID(id string) (*models.Garment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	garment, ok := r.garments[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return &garment, nil
}

// Create adds a new garment, assigning a UUID when none is set.
func (r *MockGarmentRepository) Create(garment *models.Garment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if garment.ID == "" {
		garment.ID = uuid.New().String()
	}
	r.garments[garment.ID] = *garment
	return nil
}

// Delete removes a garment by its ID. Unknown IDs are not an error.
func (r *MockGarmentRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.garments, id)
	return nil
}

// ReplaceAll wipes the collection and inserts the given garments.
func (r *MockGarmentRepository) ReplaceAll(garments []models.Garment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.garments = make(map[string]models.Garment, len(garments))
	for _, g := range garments {
		if g.ID == "" {
			g.ID = uuid.New().String()
		}
		r.garments[g.ID] = g
	}
	return nil
}

// FindMatches filters garments by category, excluded ID and type keywords.
func (r *MockGarmentRepository) FindMatches(category, excludeID string, typeKeywords []string) ([]models.Garment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matches []models.Garment
	for _, g := range r.garments {
		if g.ID == excludeID || g.Category != category {
			continue
		}
		if len(typeKeywords) == 0 {
			matches = append(matches, g)
			continue
		}
		garmentType := strings.ToLower(g.Type)
		for _, keyword := range typeKeywords {
			if strings.Contains(garmentType, strings.ToLower(keyword)) {
				matches = append(matches, g)
				break
			}
		}
	}
	return matches, nil
}
