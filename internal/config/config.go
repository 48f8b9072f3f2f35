package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Store drivers.
const (
	DriverMongo  = "mongo"
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

// Search providers.
const (
	SearchNaver = "naver"
	SearchLocal = "local"
)

// JWTConfig defines issuer/secret pair for admin token verification.
type JWTConfig struct {
	Issuer string
	Secret []byte
}

// NaverConfig holds the local search API credentials.
type NaverConfig struct {
	ClientID     string
	ClientSecret string
	SearchURL    string
	Timeout      time.Duration
}

// Config holds runtime configuration shared across the application.
type Config struct {
	Addr             string
	StoreDriver      string
	MongoURI         string
	MongoDatabase    string
	PlaceCollection  string
	ReviewCollection string
	MySQLDSN         string
	SQLiteFile       string
	Timeout          time.Duration
	Timezone         string
	ServerLog        *log.Logger

	SearchProvider string
	Naver          NaverConfig
	BcryptCost     int

	AdminJWT      *JWTConfig
	AdminAudience string

	MessengerEndpoint  string
	DiscordDestination string
	SlackDestination   string
	MessengerTimeout   time.Duration
	AllowedOrigins     []string
}

// Load reads environment variables (and .env when present) and returns a fully populated Config.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf(".env の読み込みに失敗: %w", err)
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from the given lookup function.
func FromEnv(getenv func(string) string) (Config, error) {
	env := func(key, fallback string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return fallback
	}

	timeout, err := parseDuration(env("MONGO_CONNECT_TIMEOUT", ""), 10*time.Second)
	if err != nil {
		return Config{}, fmt.Errorf("MONGO_CONNECT_TIMEOUT: %w", err)
	}
	naverTimeout, err := parseDuration(env("NAVER_TIMEOUT", ""), 5*time.Second)
	if err != nil {
		return Config{}, fmt.Errorf("NAVER_TIMEOUT: %w", err)
	}
	messengerTimeout, err := parseDuration(env("MESSENGER_GATEWAY_TIMEOUT", ""), 3*time.Second)
	if err != nil {
		return Config{}, fmt.Errorf("MESSENGER_GATEWAY_TIMEOUT: %w", err)
	}

	cost := 10
	if raw := env("BCRYPT_COST", ""); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 4 || parsed > 31 {
			return Config{}, fmt.Errorf("BCRYPT_COST must be an integer between 4 and 31: %q", raw)
		}
		cost = parsed
	}

	driver := strings.ToLower(env("STORE_DRIVER", DriverMongo))
	switch driver {
	case DriverMongo, DriverMySQL, DriverSQLite:
	default:
		return Config{}, fmt.Errorf("unknown STORE_DRIVER %q", driver)
	}
	if driver == DriverMySQL && env("MYSQL_DSN", "") == "" {
		return Config{}, errors.New("MYSQL_DSN must be configured when STORE_DRIVER=mysql")
	}

	provider := strings.ToLower(env("SEARCH_PROVIDER", SearchNaver))
	if provider != SearchNaver && provider != SearchLocal {
		return Config{}, fmt.Errorf("unknown SEARCH_PROVIDER %q", provider)
	}

	var adminJWT *JWTConfig
	if secret := env("ADMIN_JWT_SECRET", ""); secret != "" {
		adminJWT = &JWTConfig{
			Issuer: env("ADMIN_JWT_ISSUER", "matjip-map-admin"),
			Secret: []byte(secret),
		}
	}

	cfg := Config{
		Addr:             env("HTTP_ADDR", ":8080"),
		StoreDriver:      driver,
		MongoURI:         env("MONGO_URI", "mongodb://mongo:27017"),
		MongoDatabase:    env("MONGO_DB", "matjip-map"),
		PlaceCollection:  env("PLACE_COLLECTION", "places"),
		ReviewCollection: env("REVIEW_COLLECTION", "reviews"),
		MySQLDSN:         env("MYSQL_DSN", ""),
		SQLiteFile:       env("SQLITE_FILE", "matjip-map.db"),
		Timeout:          timeout,
		Timezone:         env("TIMEZONE", "Asia/Seoul"),
		ServerLog:        log.New(os.Stdout, "[matjip-map-api] ", log.LstdFlags|log.Lshortfile),
		SearchProvider:   provider,
		Naver: NaverConfig{
			ClientID:     env("NAVER_CLIENT_ID", ""),
			ClientSecret: env("NAVER_CLIENT_SECRET", ""),
			SearchURL:    env("NAVER_SEARCH_URL", "https://openapi.naver.com/v1/search/local.json"),
			Timeout:      naverTimeout,
		},
		BcryptCost:         cost,
		AdminJWT:           adminJWT,
		AdminAudience:      env("ADMIN_JWT_AUDIENCE", ""),
		MessengerEndpoint:  env("MESSENGER_GATEWAY_URL", ""),
		DiscordDestination: env("MESSENGER_DISCORD_INCOMING_DESTINATION", ""),
		SlackDestination:   env("MESSENGER_SLACK_DESTINATION", ""),
		MessengerTimeout:   messengerTimeout,
		AllowedOrigins:     parseList(getenv("API_ALLOWED_ORIGINS"), []string{"*"}),
	}

	if cfg.SearchProvider == SearchNaver && (cfg.Naver.ClientID == "" || cfg.Naver.ClientSecret == "") {
		// 起動は続行し、検索リクエスト時に NAVER_API_CONFIG_MISSING を返す。
		cfg.ServerLog.Printf("NAVER_CLIENT_ID / NAVER_CLIENT_SECRET not configured; search will fail")
	}
	cfg.ServerLog.Printf("loaded config: store=%s search=%s messengerEndpoint=%q", cfg.StoreDriver, cfg.SearchProvider, cfg.MessengerEndpoint)

	return cfg, nil
}

// Location resolves the configured timezone, falling back to UTC.
func (c Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func parseDuration(raw string, fallback time.Duration) (time.Duration, error) {
	if raw == "" {
		return fallback, nil
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return 0, err
	}
	if parsed <= 0 {
		return 0, fmt.Errorf("must be positive: %s", raw)
	}
	return parsed, nil
}

func parseList(raw string, fallback []string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback
	}

	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			values = append(values, part)
		}
	}

	if len(values) == 0 {
		return fallback
	}
	return values
}
