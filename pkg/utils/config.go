package utils

import (
	"github.com/spf13/viper"
)

const (
	DBDriverPostgres = "postgres"
	DBDriverMongo    = "mongo"

	StorageDriverLocal = "local"
	StorageDriverS3    = "s3"
)

type Config struct {
	App AppConfig
	// DBDriver selects the persistence backend (postgres | mongo).
	DBDriver string
	Database DatabaseConfig
	Mongo    MongoConfig
	Storage  StorageConfig
	Admin    AdminConfig
}

type AppConfig struct {
	Name          string
	Port          string
	Debug         bool
	LogPath       string
	AllowedOrigin string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type MongoConfig struct {
	URI      string
	Database string
}

type StorageConfig struct {
	Driver    string
	UploadDir string
	S3Bucket  string
	S3Region  string
	// S3Endpoint overrides the AWS endpoint for MinIO-style deployments.
	S3Endpoint  string
	S3AccessKey string
	S3SecretKey string
}

// AdminConfig seeds the single admin account at startup when both fields
// are set and no user exists for the email yet.
type AdminConfig struct {
	Email    string
	Password string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("DB_DRIVER", DBDriverPostgres)
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	viper.SetDefault("MONGO_DB", "movie_catalog")
	viper.SetDefault("STORAGE_DRIVER", StorageDriverLocal)
	viper.SetDefault("UPLOAD_DIR", "public/poster")

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:          viper.GetString("APP_NAME"),
			Port:          viper.GetString("PORT"),
			Debug:         viper.GetBool("DEBUG"),
			LogPath:       viper.GetString("LOG_PATH"),
			AllowedOrigin: viper.GetString("ALLOWED_ORIGIN"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Mongo: MongoConfig{
			URI:      viper.GetString("MONGO_URI"),
			Database: viper.GetString("MONGO_DB"),
		},
		Storage: StorageConfig{
			Driver:      viper.GetString("STORAGE_DRIVER"),
			UploadDir:   viper.GetString("UPLOAD_DIR"),
			S3Bucket:    viper.GetString("S3_BUCKET"),
			S3Region:    viper.GetString("S3_REGION"),
			S3Endpoint:  viper.GetString("S3_ENDPOINT"),
			S3AccessKey: viper.GetString("S3_ACCESS_KEY"),
			S3SecretKey: viper.GetString("S3_SECRET_KEY"),
		},
		Admin: AdminConfig{
			Email:    viper.GetString("ADMIN_EMAIL"),
			Password: viper.GetString("ADMIN_PASSWORD"),
		},
	}

	config.DBDriver = viper.GetString("DB_DRIVER")

	return config, nil
}
