package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
)

type Config struct {
	// AppEnv "dev" permite arrancar sin secretos.
	AppEnv string

	MongoURI  string
	MongoDB   string
	RedisAddr string
	RedisPass string

	AdminSecret string
	JWTSecret   string
	HTTPPort    string
	// CORSOrigins vacío = cualquier origen.
	CORSOrigins []string

	TMDBAPIKey       string
	TMDBBaseURL      string
	MetadataTimeout  time.Duration
	MetadataCacheTTL time.Duration
	TMDBRatePerSec   float64

	LogFile string
	// Storage es "mongo" o "memory".
	Storage string

	WorkerRepairSpec  string
	WorkerRefreshSpec string
	// WorkerBackupSpec "off" desactiva el backup programado.
	WorkerBackupSpec string
	BackupDir        string
}

func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv: strings.ToLower(getEnv("APP_ENV", "dev")),

		MongoURI:  getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:   getEnv("MONGO_DB", "mak_catalog"),
		RedisAddr: getEnv("REDIS_ADDR", ""),
		RedisPass: getEnv("REDIS_PASSWORD", ""),

		AdminSecret: getEnv("ADMIN_SECRET", ""),
		JWTSecret:   getEnv("JWT_SECRET", ""),
		HTTPPort:    getEnv("HTTP_PORT", "8080"),
		CORSOrigins: splitList(getEnv("CORS_ORIGINS", "")),

		TMDBAPIKey:       getEnv("TMDB_API_KEY", ""),
		TMDBBaseURL:      getEnv("TMDB_BASE_URL", "https://api.themoviedb.org/3"),
		MetadataTimeout:  getDuration("METADATA_TIMEOUT", 10*time.Second),
		MetadataCacheTTL: getDuration("METADATA_CACHE_TTL", 24*time.Hour),
		TMDBRatePerSec:   cast.ToFloat64(getEnv("TMDB_RATE_PER_SEC", "20")),

		LogFile: getEnv("LOG_FILE", ""),
		Storage: getEnv("STORAGE", "mongo"),

		WorkerRepairSpec:  getEnv("WORKER_REPAIR_SPEC", "@every 15m"),
		WorkerRefreshSpec: getEnv("WORKER_REFRESH_SPEC", "0 3 * * *"),
		WorkerBackupSpec:  getEnv("WORKER_BACKUP_SPEC", "@daily"),
		BackupDir:         getEnv("BACKUP_DIR", "backup"),
	}

	if cfg.IsDev() {
		if cfg.AdminSecret == "" {
			cfg.AdminSecret = devAdminSecret
			log.Println("[config] ADMIN_SECRET vacío, usando secreto de desarrollo")
		}
		if cfg.JWTSecret == "" {
			cfg.JWTSecret = devJWTSecret
			log.Println("[config] JWT_SECRET vacío, usando secreto de desarrollo")
		}
	}
	return cfg
}

const (
	devAdminSecret = "dev-admin-secret"
	devJWTSecret   = "dev-jwt-secret"
)

func (c *Config) IsDev() bool { return c.AppEnv == "dev" }

// Validate falla si falta un secreto fuera de dev.
func (c *Config) Validate() error {
	if c.IsDev() {
		return nil
	}
	if c.AdminSecret == "" {
		return fmt.Errorf("ADMIN_SECRET es obligatorio con APP_ENV=%s", c.AppEnv)
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET es obligatorio con APP_ENV=%s", c.AppEnv)
	}
	return nil
}

func getEnv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Printf("[config] %s no está seteado, usando valor por defecto\n", key)
		return def
	}
	return v
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// getDuration acepta "90s" o un número de segundos.
func getDuration(key string, def time.Duration) time.Duration {
	raw := getEnv(key, "")
	if raw == "" {
		return def
	}
	if n, err := cast.ToIntE(raw); err == nil {
		return time.Duration(n) * time.Second
	}
	d, err := cast.ToDurationE(raw)
	if err != nil || d <= 0 {
		log.Printf("[config] %s=%q no es una duración, usando %s\n", key, raw, def)
		return def
	}
	return d
}
