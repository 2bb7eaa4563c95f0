package main

import (
	"context"
	"log"
	"time"

	"foodtrucks-maroc-api-server/config"
	"foodtrucks-maroc-api-server/internal/api/handlers"
	"foodtrucks-maroc-api-server/internal/api/routes"
	"foodtrucks-maroc-api-server/internal/auth"
	"foodtrucks-maroc-api-server/internal/database"
	"foodtrucks-maroc-api-server/internal/intake"
	"foodtrucks-maroc-api-server/internal/logging"
	"foodtrucks-maroc-api-server/internal/mailer"
	"foodtrucks-maroc-api-server/internal/socket"
	"foodtrucks-maroc-api-server/internal/storage"
	"foodtrucks-maroc-api-server/internal/upload"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.LoadConfig("./config")
	if err != nil {
		log.Fatalf("Could not load config: %v", err)
	}

	logger := logging.New(cfg.Log.Level)
	defer logger.Sync()

	expiration, err := time.ParseDuration(cfg.JWT.Expiration)
	if err != nil {
		expiration = 24 * time.Hour
	}
	jwtManager := auth.NewJWT(cfg.JWT.Secret, expiration)

	// The file-backed JSON store always exists; Mongo is layered on top as
	// the primary backend when a URI is configured.
	fileTrucks := storage.NewFileFoodTrucks(cfg.Data.Dir)
	fileDevis := storage.NewFileDevis(cfg.Data.Dir)
	fileMessages := storage.NewFileMessages(cfg.Data.Dir)
	fileSettings := storage.NewFileSettings(cfg.Data.Dir)

	var (
		truckStore    storage.FoodTruckStore = fileTrucks
		devisStore    storage.DevisStore     = fileDevis
		messageStore  storage.MessageStore   = fileMessages
		settingsStore storage.SettingsStore  = fileSettings
	)

	if cfg.Mongo.URI != "" {
		client, err := storage.Connect(context.Background(), cfg.Mongo.URI)
		if err != nil {
			logger.Fatal("failed to connect to mongo", zap.Error(err))
		}
		defer client.Disconnect(context.Background())
		db := client.Database(cfg.Mongo.DBName)

		truckStore = storage.NewFallbackFoodTrucks(storage.NewMongoFoodTrucks(db), fileTrucks, logger)
		devisStore = storage.NewFallbackDevis(storage.NewMongoDevis(db), fileDevis, logger)
		messageStore = storage.NewFallbackMessages(storage.NewMongoMessages(db), fileMessages, logger)
		settingsStore = storage.NewFallbackSettings(storage.NewMongoSettings(db), fileSettings, logger)
		logger.Info("using mongo as primary backend", zap.String("db", cfg.Mongo.DBName))
	} else {
		logger.Info("no MONGO_URI configured, using file-backed store", zap.String("dir", cfg.Data.Dir))
	}

	if err := database.SeedFoodTrucks(context.Background(), truckStore, logger); err != nil {
		logger.Warn("seeding failed", zap.Error(err))
	}

	var uploadStorage upload.Storage
	staticUploadsDir := ""
	if cfg.S3.Bucket != "" {
		uploadStorage, err = upload.NewS3Storage(upload.S3Config{
			Bucket:           cfg.S3.Bucket,
			Region:           cfg.S3.Region,
			AccessKeyID:      cfg.S3.AccessKeyID,
			SecretAccessKey:  cfg.S3.SecretAccessKey,
			CloudFrontDomain: cfg.S3.CloudFrontDomain,
		})
		if err != nil {
			logger.Fatal("failed to initialize S3 upload storage", zap.Error(err))
		}
		logger.Info("using S3 upload storage", zap.String("bucket", cfg.S3.Bucket))
	} else {
		uploadStorage = upload.NewLocalStorage(cfg.Upload.Dir, cfg.Upload.BaseURL)
		staticUploadsDir = cfg.Upload.Dir
		logger.Info("using local upload storage", zap.String("dir", cfg.Upload.Dir))
	}

	hub := socket.NewHub(logger)
	sender := mailer.NewLogSender(cfg.Company.Email, cfg.Company.Phone, logger)

	workflow := &intake.Workflow{
		Trucks:   truckStore,
		Devis:    devisStore,
		Messages: messageStore,
		Mailer:   sender,
		Hub:      hub,
		Log:      logger,
	}

	router := routes.SetupRouter(routes.Deps{
		FoodTrucks: &handlers.FoodTruckHandler{Store: truckStore, Log: logger},
		Devis:      &handlers.DevisHandler{Store: devisStore, Intake: workflow, Log: logger},
		Messages:   &handlers.MessageHandler{Store: messageStore, Intake: workflow, Log: logger},
		Upload:     &handlers.UploadHandler{Storage: uploadStorage, Log: logger},
		Settings:   &handlers.SettingsHandler{Store: settingsStore, Log: logger},
		Auth: &handlers.AuthHandler{
			Verifier: auth.ConfigVerifier{
				Email:        cfg.Admin.Email,
				Password:     cfg.Admin.Password,
				PasswordHash: cfg.Admin.PasswordHash,
			},
			JWT: jwtManager,
			Log: logger,
		},
		WebSocket:        &handlers.WebSocketHandler{Hub: hub, JWT: jwtManager, Log: logger},
		JWT:              jwtManager,
		StaticUploadsDir: staticUploadsDir,
	})

	logger.Info("starting API server", zap.String("port", cfg.Server.Port))
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		logger.Fatal("failed to run server", zap.Error(err))
	}
}
