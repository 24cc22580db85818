package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"github.com/streadway/amqp"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"closet/internal/handlers"
	"closet/internal/models"
	"closet/internal/repositories"
	"closet/internal/services"
	"closet/pkg/cloudstore"
	"closet/pkg/rabbitmq"
	"closet/pkg/vision"
)

func main() {
	// --- Configuration ---
	// A local .env file is optional; environment variables always win.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from the environment")
	}
	viper.SetDefault("APP_PORT", ":3000")
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("RABBITMQ_URL", "")
	viper.SetDefault("PUBLIC_DIR", "./public")
	viper.AutomaticEnv()

	appPort := viper.GetString("APP_PORT")
	publicDir := viper.GetString("PUBLIC_DIR")

	// --- Initialize Database ---
	// Postgres when DATABASE_URL is set, a local SQLite file otherwise.
	var db *gorm.DB
	var err error
	if dsn := viper.GetString("DATABASE_URL"); dsn != "" {
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	} else {
		db, err = gorm.Open(sqlite.Open("closet.db"), &gorm.Config{})
	}
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := db.AutoMigrate(&models.Garment{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// --- Initialize RabbitMQ Client (optional) ---
	// Wardrobe events are a best-effort side channel; without a broker URL the
	// services simply skip publication.
	var mqClient *rabbitmq.Client
	if rabbitMQURL := viper.GetString("RABBITMQ_URL"); rabbitMQURL != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: rabbitMQURL})
		if err != nil {
			log.Printf("Warning: RabbitMQ unavailable, wardrobe events disabled: %v", err)
			mqClient = nil
		} else {
			defer mqClient.Close()
		}
	}

	// --- Initialize Outbound Adapters ---
	// Credentials are checked lazily; a missing configuration only fails the
	// upload endpoint, at request time.
	var uploader services.ImageUploader
	if cloudName := viper.GetString("CLOUDINARY_CLOUD_NAME"); cloudName != "" {
		cloudClient, err := cloudstore.NewClient(
			cloudName,
			viper.GetString("CLOUDINARY_API_KEY"),
			viper.GetString("CLOUDINARY_API_SECRET"),
		)
		if err != nil {
			log.Printf("Warning: Cloudinary unavailable, image uploads disabled: %v", err)
		} else {
			uploader = cloudClient
		}
	}

	var classifier services.GarmentClassifier
	if apiKey := viper.GetString("OPENAI_API_KEY"); apiKey != "" {
		classifier = vision.NewClassifier(apiKey)
	}

	// --- Initialize Repositories ---
	garmentRepo := repositories.NewGORMGarmentRepository(db)

	// --- Initialize Services ---
	garmentService := services.NewGarmentService(garmentRepo, mqClient, services.ComplementaryRule)
	uploadService := services.NewUploadService(garmentRepo, uploader, classifier, mqClient)

	// --- Initialize Handlers ---
	garmentHandler := handlers.NewGarmentHandler(garmentService, uploadService)
	homeHandler := handlers.NewHomeHandler(publicDir)

	// --- Initialize Fiber App ---
	app := newApp(garmentHandler, homeHandler, publicDir)

	// --- Start Wardrobe Event Consumer ---
	// Logs every wardrobe event for operator diagnostics.
	if mqClient != nil {
		go func() {
			log.Println("Starting RabbitMQ consumer for wardrobe events...")
			messageHandler := func(msg amqp.Delivery) error {
				log.Printf("Received wardrobe event %s (Tag: %d): %s", msg.Type, msg.DeliveryTag, string(msg.Body))
				return nil
			}
			if consumerErr := mqClient.ConsumeWardrobeEvents(messageHandler); consumerErr != nil {
				log.Printf("Failed to start RabbitMQ consumer: %v", consumerErr)
			}
		}()
	}

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", appPort)

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(appPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}

	log.Println("Server gracefully stopped")
}

// newApp wires the middleware and routes onto a fresh Fiber app.
func newApp(garmentHandler *handlers.GarmentHandler, homeHandler *handlers.HomeHandler, publicDir string) *fiber.App {
	app := fiber.New()

	// --- Middleware ---
	app.Use(logger.New()) // Request logger

	// --- Routes ---
	app.Get("/", homeHandler.HandleHome)
	app.Static("/", publicDir)

	api := app.Group("/api")
	garmentHandler.RegisterRoutes(api)

	// --- Health Check Endpoint ---
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	return app
}
