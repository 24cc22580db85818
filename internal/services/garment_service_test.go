package services_test

import (
	"fmt"
	"testing"

	"closet/internal/models"
	"closet/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockGarmentRepository is a mock implementation of repositories.GarmentRepository
type MockGarmentRepository struct {
	mock.Mock
}

func (m *MockGarmentRepository) GetAll() ([]models.Garment, error) {
	args := m.Called()
	return args.Get(0).([]models.Garment), args.Error(1)
}

func (m *MockGarmentRepository) GetByID(id string) (*models.Garment, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Garment), args.Error(1)
}

func (m *MockGarmentRepository) Create(garment *models.Garment) error {
	args := m.Called(garment)
	return args.Error(0)
}

func (m *MockGarmentRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockGarmentRepository) ReplaceAll(garments []models.Garment) error {
	args := m.Called(garments)
	return args.Error(0)
}

func (m *MockGarmentRepository) FindMatches(category, excludeID string, typeKeywords []string) ([]models.Garment, error) {
	args := m.Called(category, excludeID, typeKeywords)
	return args.Get(0).([]models.Garment), args.Error(1)
}

func TestGarmentService_ListGarments(t *testing.T) {
	mockRepo := new(MockGarmentRepository)
	service := services.NewGarmentService(mockRepo, nil, nil)

	expectedGarments := []models.Garment{
		{ID: "1", Type: "jeans", Color: "blue", Category: "everyday", IsClean: true},
		{ID: "2", Type: "t-shirt", Color: "gray", Category: "everyday", IsClean: true},
	}

	mockRepo.On("GetAll").Return(expectedGarments, nil).Once()

	garments, err := service.ListGarments()

	assert.NoError(t, err)
	assert.Len(t, garments, 2)
	assert.Equal(t, expectedGarments, garments)
	mockRepo.AssertExpectations(t)
}

func TestGarmentService_CreateGarment(t *testing.T) {
	mockRepo := new(MockGarmentRepository)
	service := services.NewGarmentService(mockRepo, nil, nil)

	newGarment := &models.Garment{Type: "sweater", Color: "red", Category: "everyday", IsClean: true}

	// Test successful creation
	mockRepo.On("Create", newGarment).Return(nil).Once()
	err := service.CreateGarment(newGarment)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)

	// Test creation failure (e.g., database error)
	mockRepo.On("Create", newGarment).Return(fmt.Errorf("database error")).Once()
	err = service.CreateGarment(newGarment)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "database error")
	mockRepo.AssertExpectations(t)
}

func TestGarmentService_DeleteGarment(t *testing.T) {
	mockRepo := new(MockGarmentRepository)
	service := services.NewGarmentService(mockRepo, nil, nil)

	// Deleting succeeds whether or not the record existed; the repository
	// only reports transport-level failures.
	mockRepo.On("Delete", "1").Return(nil).Once()
	err := service.DeleteGarment("1")
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)

	mockRepo.On("Delete", "2").Return(fmt.Errorf("database error")).Once()
	err = service.DeleteGarment("2")
	assert.Error(t, err)
	mockRepo.AssertExpectations(t)
}

func TestGarmentService_SeedCloset(t *testing.T) {
	mockRepo := new(MockGarmentRepository)
	service := services.NewGarmentService(mockRepo, nil, nil)

	mockRepo.On("ReplaceAll", mock.MatchedBy(func(garments []models.Garment) bool {
		if len(garments) != 6 {
			return false
		}
		for _, g := range garments {
			if !g.IsClean {
				return false
			}
		}
		return true
	})).Return(nil).Twice()

	// Seeding twice always hands the repository the same fixed six-item set.
	assert.NoError(t, service.SeedCloset())
	assert.NoError(t, service.SeedCloset())
	mockRepo.AssertExpectations(t)
}

func TestGarmentService_SuggestMatch_ShirtGetsBottoms(t *testing.T) {
	mockRepo := new(MockGarmentRepository)
	service := services.NewGarmentService(mockRepo, nil, nil)

	selected := &models.Garment{ID: "a", Type: "t-shirt", Color: "gray", Category: "everyday", IsClean: true}
	candidates := []models.Garment{
		{ID: "b", Type: "jeans", Color: "blue", Category: "everyday", IsClean: true},
		{ID: "c", Type: "skirt", Color: "green", Category: "everyday", IsClean: true},
	}

	mockRepo.On("GetByID", "a").Return(selected, nil).Once()
	mockRepo.On("FindMatches", "everyday", "a", []string{"pants", "jeans", "trousers", "skirt"}).
		Return(candidates, nil).Once()

	match, err := service.SuggestMatch("a")
	assert.NoError(t, err)
	assert.NotNil(t, match)
	assert.NotEqual(t, selected.ID, match.ID)
	assert.Equal(t, "everyday", match.Category)
	assert.Contains(t, []string{"b", "c"}, match.ID)
	mockRepo.AssertExpectations(t)
}

func TestGarmentService_SuggestMatch_BottomsGetTops(t *testing.T) {
	mockRepo := new(MockGarmentRepository)
	service := services.NewGarmentService(mockRepo, nil, nil)

	selected := &models.Garment{ID: "a", Type: "jeans", Color: "blue", Category: "everyday", IsClean: true}
	candidates := []models.Garment{
		{ID: "b", Type: "t-shirt", Color: "gray", Category: "everyday", IsClean: true},
	}

	mockRepo.On("GetByID", "a").Return(selected, nil).Once()
	mockRepo.On("FindMatches", "everyday", "a", []string{"shirt", "tee", "blouse", "sweater"}).
		Return(candidates, nil).Once()

	match, err := service.SuggestMatch("a")
	assert.NoError(t, err)
	assert.NotNil(t, match)
	assert.Equal(t, "b", match.ID)
	mockRepo.AssertExpectations(t)
}

func TestGarmentService_SuggestMatch_NoCandidates(t *testing.T) {
	mockRepo := new(MockGarmentRepository)
	service := services.NewGarmentService(mockRepo, nil, nil)

	selected := &models.Garment{ID: "a", Type: "gown", Color: "gold", Category: "gala", IsClean: true}

	mockRepo.On("GetByID", "a").Return(selected, nil).Once()
	mockRepo.On("FindMatches", "gala", "a", []string{"shirt", "tee", "blouse", "sweater"}).
		Return([]models.Garment{}, nil).Once()

	// No candidate is a no-match payload, not an error.
	match, err := service.SuggestMatch("a")
	assert.NoError(t, err)
	assert.Nil(t, match)
	mockRepo.AssertExpectations(t)
}

func TestGarmentService_SuggestMatch_UnknownID(t *testing.T) {
	mockRepo := new(MockGarmentRepository)
	service := services.NewGarmentService(mockRepo, nil, nil)

	mockRepo.On("GetByID", "missing").Return(nil, models.ErrNotFound).Once()

	match, err := service.SuggestMatch("missing")
	assert.Error(t, err)
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.Nil(t, match)
	mockRepo.AssertExpectations(t)
}

func TestGarmentService_SuggestMatch_CustomRule(t *testing.T) {
	mockRepo := new(MockGarmentRepository)
	hatsOnly := func(selected *models.Garment) []string { return []string{"hat"} }
	service := services.NewGarmentService(mockRepo, nil, hatsOnly)

	selected := &models.Garment{ID: "a", Type: "t-shirt", Category: "everyday", IsClean: true}
	candidates := []models.Garment{
		{ID: "b", Type: "bucket hat", Category: "everyday", IsClean: true},
	}

	mockRepo.On("GetByID", "a").Return(selected, nil).Once()
	mockRepo.On("FindMatches", "everyday", "a", []string{"hat"}).Return(candidates, nil).Once()

	match, err := service.SuggestMatch("a")
	assert.NoError(t, err)
	assert.Equal(t, "b", match.ID)
	mockRepo.AssertExpectations(t)
}
