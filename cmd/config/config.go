package config

import (
	"time"

	"github.com/spf13/viper"
)

var (
	Port            string
	DatabaseDialect string
	DatabaseURL     string
	SessionTTL      time.Duration
	AWSRegion       string
	S3Bucket        string
	LogLevel        string
)

// Load reads configuration from the environment. Every value has a default
// so a bare developer machine can start the server against local postgres.
func Load() {
	viper.AutomaticEnv()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DATABASE_DIALECT", "postgres")
	viper.SetDefault("DATABASE_URL", "host=localhost port=5432 user=catalog password=catalog dbname=catalog sslmode=disable")
	viper.SetDefault("SESSION_TTL_HOURS", 24)
	viper.SetDefault("AWS_REGION", "us-east-1")
	viper.SetDefault("S3_BUCKET", "video-catalog-images")
	viper.SetDefault("LOG_LEVEL", "info")

	Port = viper.GetString("PORT")
	DatabaseDialect = viper.GetString("DATABASE_DIALECT")
	DatabaseURL = viper.GetString("DATABASE_URL")
	SessionTTL = time.Duration(viper.GetInt("SESSION_TTL_HOURS")) * time.Hour
	AWSRegion = viper.GetString("AWS_REGION")
	S3Bucket = viper.GetString("S3_BUCKET")
	LogLevel = viper.GetString("LOG_LEVEL")
}
