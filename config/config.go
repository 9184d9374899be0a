package config

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/GarimaBhatia-ProdManager/Personal-Diet-Tracker-sub000/models"
	"github.com/GarimaBhatia-ProdManager/Personal-Diet-Tracker-sub000/utils"
)

type Config struct {
	Port      string `mapstructure:"port"`
	JWTSecret string `mapstructure:"jwt_secret"`

	DBHost     string `mapstructure:"db_host"`
	DBPort     string `mapstructure:"db_port"`
	DBUser     string `mapstructure:"db_user"`
	DBPassword string `mapstructure:"db_password"`
	DBName     string `mapstructure:"db_name"`

	OFFBaseURL string `mapstructure:"off_base_url"`

	AWSRegion    string `mapstructure:"aws_region"`
	EmailFrom    string `mapstructure:"email_from"`
	SupportEmail string `mapstructure:"support_email"`
	S3Bucket     string `mapstructure:"s3_bucket"`
	S3BaseURL    string `mapstructure:"s3_base_url"`
}

// Load reads config.yml when present, with environment variables taking
// precedence. A .env file is loaded first so local runs need no exports.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yml")
	v.AddConfigPath(".")

	// Every key needs a default so env-only values survive Unmarshal.
	v.SetDefault("port", "8080")
	v.SetDefault("jwt_secret", "")
	v.SetDefault("db_host", "localhost")
	v.SetDefault("db_port", "5432")
	v.SetDefault("db_user", "postgres")
	v.SetDefault("db_password", "")
	v.SetDefault("db_name", "diet_tracker")
	v.SetDefault("off_base_url", "https://world.openfoodfacts.org")
	v.SetDefault("aws_region", "")
	v.SetDefault("email_from", "")
	v.SetDefault("support_email", "")
	v.SetDefault("s3_bucket", "")
	v.SetDefault("s3_base_url", "")

	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET must be set")
	}
	return &cfg, nil
}

// InitDB connects with bounded exponential backoff so the service survives a
// database that comes up slower than it does, then migrates the schema.
func InitDB(ctx context.Context, cfg *Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort,
	)

	var db *gorm.DB
	err := utils.Retry(ctx, 6, 500*time.Millisecond, func() error {
		var openErr error
		db, openErr = gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if openErr != nil {
			logrus.WithError(openErr).Warn("database not ready, retrying")
		}
		return openErr
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Food{},
		&models.MealEntry{},
		&models.NutritionGoal{},
		&models.Feedback{},
	); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}
	return db, nil
}
