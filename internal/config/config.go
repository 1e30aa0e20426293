package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	// DBUrl selects the remote Postgres engine when set; otherwise the
	// embedded SQLite file at SQLitePath is used.
	DBUrl      string
	SQLitePath string

	JWTSecret  string
	ServerPort string

	// Optional layers, disabled when unset.
	RedisURL string

	S3Bucket    string
	S3Region    string
	S3AccessKey string
	S3SecretKey string
	S3Endpoint  string
	S3PublicURL string
}

func Load() *Config {
	// Missing .env is fine; real env vars win either way.
	_ = godotenv.Load()

	return &Config{
		DBUrl:      os.Getenv("DATABASE_URL"),
		SQLitePath: getEnv("SQLITE_PATH", "barbershop.db"),

		JWTSecret:  getEnv("JWT_SECRET", "changeme"),
		ServerPort: getEnv("SERVER_PORT", "8080"),

		RedisURL: os.Getenv("REDIS_URL"),

		S3Bucket:    os.Getenv("S3_BUCKET"),
		S3Region:    getEnv("S3_REGION", "us-east-1"),
		S3AccessKey: os.Getenv("S3_ACCESS_KEY"),
		S3SecretKey: os.Getenv("S3_SECRET_KEY"),
		S3Endpoint:  os.Getenv("S3_ENDPOINT"),
		S3PublicURL: os.Getenv("S3_PUBLIC_URL"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}

func (c *Config) UsePostgres() bool {
	return c.DBUrl != ""
}

func (c *Config) CacheEnabled() bool {
	return c.RedisURL != ""
}

func (c *Config) UploadsEnabled() bool {
	return c.S3Bucket != ""
}
