package config

import (
	"os"
	"strconv"
	"sync"
)

// AppConfig holds global application configuration
var AppConfig *Config
var once sync.Once

type Config struct {
	AppName string
	Port    string
	Env     string
	Debug   bool

	// Remiks platform credentials and endpoints
	RemiksAPIKey     string
	RemiksUsername   string
	RemiksPassword   string
	RemiksLoginURL   string
	RemiksProductURL string
	RemiksStockURL   string

	// WooCommerce source credentials
	WooSiteURL        string
	WooConsumerKey    string
	WooConsumerSecret string
	WooPageSize       int

	// Local file collaborators
	ArchiveDir       string
	ErrorLogPath     string
	DefaultWarehouse string
}

// LoadAppConfig initializes the global AppConfig variable
func LoadAppConfig() {
	once.Do(func() {
		AppConfig = &Config{
			AppName: os.Getenv("APP_NAME"),
			Port:    os.Getenv("PORT"),
			Env:     os.Getenv("APP_ENV"),
			Debug:   os.Getenv("DEBUG") == "true",

			RemiksAPIKey:     os.Getenv("REMIKS_API_KEY"),
			RemiksUsername:   os.Getenv("REMIKS_USERNAME"),
			RemiksPassword:   os.Getenv("REMIKS_PASSWORD"),
			RemiksLoginURL:   getEnv("REMIKS_URL_LOGIN", "https://portal.platforma.services/api/rest/login_check"),
			RemiksProductURL: os.Getenv("REMIKS_URL_PRODUCT"),
			RemiksStockURL:   os.Getenv("REMIKS_URL_STOCK"),

			WooSiteURL:        getEnv("WC_SITE_URL", "https://www.bambini.rs"),
			WooConsumerKey:    os.Getenv("WC_CONSUMER_KEY"),
			WooConsumerSecret: os.Getenv("WC_CONSUMER_SECRET"),
			WooPageSize:       getEnvInt("WC_PAGE_SIZE", 100),

			ArchiveDir:       getEnv("ARCHIVE_DIR", "payloads"),
			ErrorLogPath:     getEnv("ERROR_LOG", "remiks_errors.log"),
			DefaultWarehouse: getEnv("DEFAULT_WAREHOUSE", "Bambini-10-GLAVNI MAGACIN"),
		}
	})
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}
