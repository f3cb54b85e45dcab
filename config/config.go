package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Server  ServerConfig
	App     AppConfig
	OAuth   OAuthConfig
	Admin   AdminConfig
	Unlock  UnlockConfig
	Content ContentConfig
	Sheets  SheetsConfig
	CMS     CMSConfig
}

type ServerConfig struct {
	Port        string
	CORSOrigins []string
}

type AppConfig struct {
	Environment string
	Version     string
}

type OAuthConfig struct {
	ClientID     string
	ClientSecret string
	// BaseURL is the public origin of this service, used to build the
	// redirect URI handed to the provider.
	BaseURL string
}

type AdminConfig struct {
	Password string
	Realm    string
}

type UnlockConfig struct {
	Password  string
	RedisAddr string
	TTLHours  int
}

type ContentConfig struct {
	Dir          string
	FallbackJSON string
}

type SheetsConfig struct {
	CSVURL    string
	SheetID   string
	ReadRange string
	Schedule  string
}

type CMSConfig struct {
	Repo   string
	Branch string
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:        getEnv("PORT", "8080"),
			CORSOrigins: splitList(getEnv("CORS_ORIGINS", "*")),
		},
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		OAuth: OAuthConfig{
			ClientID:     getEnv("GITHUB_CLIENT_ID", ""),
			ClientSecret: getEnv("GITHUB_CLIENT_SECRET", ""),
			BaseURL:      getEnv("OAUTH_BASE_URL", "http://localhost:8080"),
		},
		Admin: AdminConfig{
			Password: getEnv("ADMIN_PASSWORD", ""),
			Realm:    getEnv("ADMIN_REALM", "Admin Area"),
		},
		Unlock: UnlockConfig{
			Password:  getEnv("UNLOCK_PASSWORD", ""),
			RedisAddr: getEnv("REDIS_ADDR", ""),
			TTLHours:  getEnvAsInt("UNLOCK_TTL_HOURS", 12),
		},
		Content: ContentConfig{
			Dir:          getEnv("CONTENT_DIR", "content/projects"),
			FallbackJSON: getEnv("FALLBACK_JSON", "data/projects.json"),
		},
		Sheets: SheetsConfig{
			CSVURL:    getEnv("SHEETS_CSV_URL", ""),
			SheetID:   getEnv("SHEET_ID", ""),
			ReadRange: getEnv("SHEET_RANGE", "A1:L"),
			Schedule:  getEnv("SYNC_SCHEDULE", ""),
		},
		CMS: CMSConfig{
			Repo:   getEnv("CMS_REPO", "nothingsolutions/carterhouck-portfolio"),
			Branch: getEnv("CMS_BRANCH", "main"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.OAuth.ClientID == "" || c.OAuth.ClientSecret == "" {
		log.Println("Warning: GitHub OAuth credentials not set, admin panel login will not work")
	}

	if c.Admin.Password == "" {
		log.Println("Warning: ADMIN_PASSWORD not set, /admin is open (development mode)")
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
