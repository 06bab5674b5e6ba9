package main

import (
	"context"
	"log"

	"movie-catalog/cmd"
	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/usecase"
	"movie-catalog/internal/wire"
	"movie-catalog/migrations"
	"movie-catalog/pkg/database"
	"movie-catalog/pkg/storage"
	"movie-catalog/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.String("db_driver", config.DBDriver),
		zap.String("storage_driver", config.Storage.Driver),
		zap.Bool("debug", config.App.Debug),
	)

	ctx := context.Background()

	// Connect to the configured persistence backend
	var repos *repository.Repository
	switch config.DBDriver {
	case utils.DBDriverMongo:
		db, err := database.InitMongo(config.Mongo)
		if err != nil {
			logger.Fatal("Failed to connect to MongoDB", zap.Error(err))
		}
		defer db.Close()

		repos = repository.NewMongoRepository(db.Database(), logger)

	default:
		db, err := database.InitDB(config.Database)
		if err != nil {
			logger.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer db.Close()

		if err := db.Migrate(ctx, migrations.FS); err != nil {
			logger.Fatal("Failed to run migrations", zap.Error(err))
		}

		repos = repository.NewPostgresRepository(db, logger)
	}

	logger.Info("Database connected successfully")

	// Initialize the media backend
	var media storage.MediaStore
	switch config.Storage.Driver {
	case utils.StorageDriverS3:
		media, err = storage.NewS3Store(config.Storage, logger)
		if err != nil {
			logger.Fatal("Failed to init S3 storage", zap.Error(err))
		}
	default:
		media, err = storage.NewLocalStore(config.Storage.UploadDir, logger)
		if err != nil {
			logger.Fatal("Failed to init local storage", zap.Error(err))
		}
	}

	// Make sure the admin account exists before serving logins
	auth := usecase.NewAuthService(repos, logger)
	if err := auth.SeedAdmin(ctx, config.Admin.Email, config.Admin.Password); err != nil {
		logger.Fatal("Failed to seed admin user", zap.Error(err))
	}

	// Wire all dependencies
	app := wire.Wiring(repos, media, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
