package config

import (
	"path/filepath"

	"github.com/spf13/viper"
)

// Storage backends for profile images.
const (
	StorageLocal = "local"
	StorageS3    = "s3"
)

// Config holds application level configuration loaded from environment variables
// and an optional configs/config.yml.
type Config struct {
	ServerPort  string
	MySQLDSN    string
	RedisAddr   string
	RedisDB     int
	RedisPass   string
	JWTSecret   string
	SwaggerHost string
	LogLevel    string
	ResetDB     bool

	UploadPath          string
	ProfileImagesFolder string
	AttachmentsFolder   string
	StorageBackend      string
	S3Bucket            string
	S3Region            string
	S3Endpoint          string
	S3AccessKey         string
	S3SecretKey         string

	SeedUsers  int
	SeedHoaxes int
}

// Load builds Config from environment with sensible defaults.
func Load() *Config {
	v := viper.New()
	setDefaults(v)

	v.AddConfigPath("configs")
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	// The file is optional; env and defaults still apply without it.
	_ = v.ReadInConfig()
	v.AutomaticEnv()

	return &Config{
		ServerPort:          v.GetString("SERVER_PORT"),
		MySQLDSN:            v.GetString("MYSQL_DSN"),
		RedisAddr:           v.GetString("REDIS_ADDR"),
		RedisDB:             v.GetInt("REDIS_DB"),
		RedisPass:           v.GetString("REDIS_PASSWORD"),
		JWTSecret:           v.GetString("JWT_SECRET"),
		SwaggerHost:         v.GetString("SWAGGER_HOST"),
		LogLevel:            v.GetString("LOG_LEVEL"),
		ResetDB:             v.GetBool("RESET_DB"),
		UploadPath:          v.GetString("UPLOAD_PATH"),
		ProfileImagesFolder: v.GetString("PROFILE_IMAGES_FOLDER"),
		AttachmentsFolder:   v.GetString("ATTACHMENTS_FOLDER"),
		StorageBackend:      v.GetString("STORAGE_BACKEND"),
		S3Bucket:            v.GetString("S3_BUCKET"),
		S3Region:            v.GetString("S3_REGION"),
		S3Endpoint:          v.GetString("S3_ENDPOINT"),
		S3AccessKey:         v.GetString("S3_ACCESS_KEY"),
		S3SecretKey:         v.GetString("S3_SECRET_KEY"),
		SeedUsers:           v.GetInt("SEED_USERS"),
		SeedHoaxes:          v.GetInt("SEED_HOAXES"),
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("MYSQL_DSN", "user:password@tcp(localhost:3306)/hoaxify?charset=utf8mb4&parseTime=True&loc=Local")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("JWT_SECRET", "change-me")
	v.SetDefault("SWAGGER_HOST", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("RESET_DB", false)
	v.SetDefault("UPLOAD_PATH", "uploads")
	v.SetDefault("PROFILE_IMAGES_FOLDER", "profile")
	v.SetDefault("ATTACHMENTS_FOLDER", "attachments")
	v.SetDefault("STORAGE_BACKEND", StorageLocal)
	v.SetDefault("S3_BUCKET", "hoaxify")
	v.SetDefault("S3_REGION", "us-east-1")
	v.SetDefault("S3_ENDPOINT", "")
	v.SetDefault("S3_ACCESS_KEY", "")
	v.SetDefault("S3_SECRET_KEY", "")
	v.SetDefault("SEED_USERS", 15)
	v.SetDefault("SEED_HOAXES", 3)
}

// FullProfileImagesPath is the local folder holding profile images.
func (c *Config) FullProfileImagesPath() string {
	return filepath.Join(c.UploadPath, c.ProfileImagesFolder)
}

// FullAttachmentsPath is the local folder holding hoax attachments.
func (c *Config) FullAttachmentsPath() string {
	return filepath.Join(c.UploadPath, c.AttachmentsFolder)
}
