package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"closet/internal/models"
	"closet/internal/repositories"
	"closet/pkg/rabbitmq"
	"closet/pkg/vision"
)

// ImageUploader hands a raw image buffer to an object store and returns a
// publicly reachable URL.
type ImageUploader interface {
	Upload(ctx context.Context, data []byte) (string, error)
}

// GarmentClassifier produces a structured best-effort description of the
// garment at the given image URL.
type GarmentClassifier interface {
	Classify(ctx context.Context, imageURL string) (*vision.Classification, error)
}

// UploadService composes the photo intake flow: upload the image, have the
// AI model classify it, persist the resulting garment.
type UploadService struct {
	repo       repositories.GarmentRepository
	uploader   ImageUploader
	classifier GarmentClassifier
	mqClient   *rabbitmq.Client
}

// NewUploadService creates a new UploadService. mqClient may be nil.
func NewUploadService(repo repositories.GarmentRepository, uploader ImageUploader, classifier GarmentClassifier, mqClient *rabbitmq.Client) *UploadService {
	return &UploadService{
		repo:       repo,
		uploader:   uploader,
		classifier: classifier,
		mqClient:   mqClient,
	}
}

// UploadGarment runs upload, classification and persistence in order. Any
// failing step aborts the flow; nothing is persisted unless all three
// succeed. A classification parse failure surfaces as *vision.ParseError so
// the handler can echo the raw model text.
func (s *UploadService) UploadGarment(ctx context.Context, image []byte) (*models.Garment, error) {
	if s.uploader == nil || s.classifier == nil {
		return nil, fmt.Errorf("image upload is not configured")
	}

	imageURL, err := s.uploader.Upload(ctx, image)
	if err != nil {
		return nil, fmt.Errorf("failed to upload image: %w", err)
	}

	result, err := s.classifier.Classify(ctx, imageURL)
	if err != nil {
		return nil, fmt.Errorf("failed to classify image: %w", err)
	}

	garment := &models.Garment{
		Type:        result.Type,
		Color:       result.Color,
		Category:    result.Category,
		IsClean:     true,
		ImageURL:    imageURL,
		Description: result.Description,
	}
	if err := s.repo.Create(garment); err != nil {
		return nil, fmt.Errorf("failed to save garment: %w", err)
	}

	s.publishEvent("garment.created", garment)
	return garment, nil
}

func (s *UploadService) publishEvent(kind string, garment *models.Garment) {
	if s.mqClient == nil {
		return
	}
	body, err := json.Marshal(map[string]interface{}{
		"garmentID": garment.ID,
		"type":      garment.Type,
		"category":  garment.Category,
		"imageUrl":  garment.ImageURL,
	})
	if err != nil {
		log.Printf("Failed to marshal %s event: %v", kind, err)
		return
	}
	if err := s.mqClient.Publish(kind, body); err != nil {
		log.Printf("Warning: Failed to publish %s event: %v", kind, err)
	}
}
