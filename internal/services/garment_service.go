package services

import (
	"encoding/json"
	"fmt"
	"log"
	"math/rand"

	"closet/internal/models"
	"closet/internal/repositories"
	"closet/pkg/rabbitmq"
)

// seedGarments is the fixed wardrobe the seed endpoint resets the store to.
var seedGarments = []models.Garment{
	{Type: "tailored trousers", Color: "black", Category: "evening", IsClean: true},
	{Type: "button-down shirt", Color: "light blue", Category: "evening", IsClean: true},
	{Type: "jeans", Color: "dark blue", Category: "everyday", IsClean: true},
	{Type: "t-shirt", Color: "gray", Category: "everyday", IsClean: true},
	{Type: "sneakers", Color: "white", Category: "everyday", IsClean: true},
	{Type: "skirt", Color: "green", Category: "evening", IsClean: true},
}

// GarmentService handles business logic related to garments.
type GarmentService struct {
	repo     repositories.GarmentRepository
	mqClient *rabbitmq.Client
	rule     MatchRule
}

// NewGarmentService creates a new GarmentService. mqClient may be nil, in
// which case event publication is skipped.
func NewGarmentService(repo repositories.GarmentRepository, mqClient *rabbitmq.Client, rule MatchRule) *GarmentService {
	if rule == nil {
		rule = ComplementaryRule
	}
	return &GarmentService{
		repo:     repo,
		mqClient: mqClient,
		rule:     rule,
	}
}

// ListGarments retrieves all garments.
func (s *GarmentService) ListGarments() ([]models.Garment, error) {
	return s.repo.GetAll()
}

// CreateGarment persists a new garment and publishes a creation event.
func (s *GarmentService) CreateGarment(garment *models.Garment) error {
	if err := s.repo.Create(garment); err != nil {
		return err
	}
	s.publishEvent("garment.created", map[string]interface{}{
		"garmentID": garment.ID,
		"type":      garment.Type,
		"category":  garment.Category,
	})
	return nil
}

// DeleteGarment removes a garment by its ID. The operation reports success
// whether or not a record existed.
func (s *GarmentService) DeleteGarment(id string) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	s.publishEvent("garment.deleted", map[string]interface{}{
		"garmentID": id,
	})
	return nil
}

// SeedCloset wipes the store and restocks it with the fixed garment set.
// Calling it repeatedly always leaves exactly the same six items.
func (s *GarmentService) SeedCloset() error {
	garments := make([]models.Garment, len(seedGarments))
	copy(garments, seedGarments)
	if err := s.repo.ReplaceAll(garments); err != nil {
		return err
	}
	s.publishEvent("closet.reseeded", map[string]interface{}{
		"count": len(garments),
	})
	return nil
}

// SuggestMatch picks a complementary garment for the given item: same
// category, different identifier, type restricted by the match rule. The pick
// is uniformly random and stateless across calls. A nil garment with a nil
// error means no candidate exists.
func (s *GarmentService) SuggestMatch(id string) (*models.Garment, error) {
	selected, err := s.repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to load selected garment: %w", err)
	}

	candidates, err := s.repo.FindMatches(selected.Category, selected.ID, s.rule(selected))
	if err != nil {
		return nil, fmt.Errorf("failed to query match candidates: %w", err)
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	match := candidates[rand.Intn(len(candidates))]
	return &match, nil
}

// publishEvent sends a wardrobe event if a broker is wired. Publish failures
// never fail the enclosing operation.
func (s *GarmentService) publishEvent(kind string, payload map[string]interface{}) {
	if s.mqClient == nil {
		return
	}
	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Failed to marshal %s event: %v", kind, err)
		return
	}
	if err := s.mqClient.Publish(kind, body); err != nil {
		log.Printf("Warning: Failed to publish %s event: %v", kind, err)
	}
}
