package handlers

import (
	"errors"
	"io"
	"log"

	"closet/internal/models"
	"closet/internal/services"
	"closet/pkg/vision"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// GarmentHandler handles HTTP requests for the wardrobe catalog.
type GarmentHandler struct {
	service       *services.GarmentService
	uploadService *services.UploadService
	validate      *validator.Validate
}

// NewGarmentHandler creates a new GarmentHandler.
func NewGarmentHandler(service *services.GarmentService, uploadService *services.UploadService) *GarmentHandler {
	return &GarmentHandler{
		service:       service,
		uploadService: uploadService,
		validate:      validator.New(),
	}
}

// RegisterRoutes registers the garment routes with the Fiber app.
func (h *GarmentHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/clothes", h.HandleGetClothes)
	router.Post("/clothes", h.HandleCreateGarment)
	router.Delete("/clothes/:id", h.HandleDeleteGarment)
	router.Get("/seed", h.HandleSeedCloset)
	router.Get("/suggest/:id", h.HandleSuggestMatch)
	router.Post("/upload-garment", h.HandleUploadGarment)
}

// HandleGetClothes retrieves all garments.
func (h *GarmentHandler) HandleGetClothes(c *fiber.Ctx) error {
	garments, err := h.service.ListGarments()
	if err != nil {
		log.Printf("Error listing garments: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "could not load the clothes",
		})
	}
	return c.JSON(garments)
}

// HandleCreateGarment creates a new garment from a partial JSON body. Omitted
// fields keep their defaults; isClean defaults to true.
func (h *GarmentHandler) HandleCreateGarment(c *fiber.Ctx) error {
	garment := models.Garment{IsClean: true}
	if err := c.BodyParser(&garment); err != nil {
		log.Printf("Error parsing garment body: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "could not save the garment",
		})
	}

	if err := h.validate.Struct(garment); err != nil {
		log.Printf("Garment validation failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "could not save the garment",
		})
	}

	if err := h.service.CreateGarment(&garment); err != nil {
		log.Printf("Error creating garment: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "could not save the garment",
		})
	}
	return c.JSON(garment)
}

// HandleDeleteGarment removes a garment by its ID. The confirmation message
// is returned whether or not a record existed.
func (h *GarmentHandler) HandleDeleteGarment(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.service.DeleteGarment(id); err != nil {
		log.Printf("Error deleting garment %s: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "could not delete the garment",
		})
	}
	return c.JSON(fiber.Map{
		"message": "the garment was deleted successfully",
	})
}

// HandleSeedCloset wipes the wardrobe and restocks it with the fixed set.
func (h *GarmentHandler) HandleSeedCloset(c *fiber.Ctx) error {
	if err := h.service.SeedCloset(); err != nil {
		log.Printf("Error reseeding closet: %v", err)
		return c.Status(fiber.StatusInternalServerError).
			Type("html").
			SendString("<h1>Could not reseed the closet</h1>")
	}
	return c.Type("html").
		SendString("<h1>The closet was wiped and restocked with just 6 items!</h1><a href='/'>Back to the home page</a>")
}

// HandleSuggestMatch returns one randomly chosen complementary garment, or a
// message payload when no candidate exists. Failures (including unknown ids)
// surface as a plain-text 500.
func (h *GarmentHandler) HandleSuggestMatch(c *fiber.Ctx) error {
	id := c.Params("id")
	match, err := h.service.SuggestMatch(id)
	if err != nil {
		log.Printf("Error suggesting match for %s: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).
			SendString("could not find a match")
	}
	if match == nil {
		return c.JSON(fiber.Map{
			"message": "no perfect match found... maybe add some more items?",
		})
	}
	return c.JSON(match)
}

// HandleUploadGarment accepts a multipart image, uploads it to the object
// store, classifies it with the AI model and persists the result.
func (h *GarmentHandler) HandleUploadGarment(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("garmentImage")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "no image file attached",
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Printf("Error opening uploaded file: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "could not read the uploaded image",
		})
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		log.Printf("Error reading uploaded file: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "could not read the uploaded image",
		})
	}

	garment, err := h.uploadService.UploadGarment(c.UserContext(), data)
	if err != nil {
		log.Printf("Upload or AI error: %v", err)
		var parseErr *vision.ParseError
		if errors.As(err, &parseErr) {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error":       "could not parse the AI response",
				"rawResponse": parseErr.Raw,
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "something went wrong while uploading or analyzing the image",
		})
	}

	return c.JSON(fiber.Map{
		"message": "the garment was uploaded and analyzed successfully!",
		"garment": garment,
	})
}
