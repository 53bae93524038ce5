// Package config は環境変数からアプリケーション設定を読み込みます。
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config はAPIサーバーとUIサーバーの設定を保持します。
// 起動時に1回読み込み、イミュータブルとして扱います。
type Config struct {
	// Database
	DB DBConfig

	// Redis（未設定の場合はキャッシュなしで動作）
	RedisHost     string
	RedisPort     string
	RedisPassword string
	CacheTTL      time.Duration

	// API server
	ServerPort        string
	CORSAllowedOrigin string

	// UI server
	WebPort       string
	APIURL        string
	APITimeout    time.Duration
	APIRatePerSec float64

	LogLevel string
}

// DBConfig はデータベース接続の設定です。
type DBConfig struct {
	Driver         string // mysql | postgres | sqlite
	User           string
	Password       string
	Name           string
	Host           string
	Port           string
	InstanceName   string // Cloud SQL の接続名。設定時はUnixソケット接続
	Path           string // sqlite のファイルパス
	RunMigrations  bool
	ConnectTimeout time.Duration
}

var supportedDrivers = map[string]bool{"mysql": true, "postgres": true, "sqlite": true}

// Load は環境変数からConfigを読み込みます。
// 未対応のDB_DRIVERが指定された場合はエラーを返します。
func Load() (*Config, error) {
	cfg := &Config{
		DB: DBConfig{
			Driver:         strings.ToLower(getEnvString("DB_DRIVER", "mysql")),
			User:           os.Getenv("DB_USER"),
			Password:       os.Getenv("DB_PASSWORD"),
			Name:           os.Getenv("DB_NAME"),
			Host:           getEnvString("DB_HOST", "localhost"),
			Port:           os.Getenv("DB_PORT"),
			InstanceName:   os.Getenv("INSTANCE_CONNECTION_NAME"),
			Path:           getEnvString("DB_PATH", "./user_directory.db"),
			RunMigrations:  getEnvBool("RUN_MIGRATIONS", false),
			ConnectTimeout: getEnvDuration("DB_CONNECT_TIMEOUT", 60*time.Second),
		},
		RedisHost:         os.Getenv("REDIS_HOST"),
		RedisPort:         getEnvString("REDIS_PORT", "6379"),
		RedisPassword:     os.Getenv("REDIS_PASSWORD"),
		CacheTTL:          getEnvDuration("CACHE_TTL", time.Minute),
		ServerPort:        getEnvString("SERVER_PORT", "4000"),
		CORSAllowedOrigin: getEnvString("CORS_ALLOWED_ORIGIN", "http://localhost:3000"),
		WebPort:           getEnvString("WEB_PORT", "3000"),
		APIURL:            getEnvString("API_URL", "http://localhost:4000/graphql"),
		APITimeout:        getEnvDuration("API_TIMEOUT", 10*time.Second),
		APIRatePerSec:     getEnvFloat("API_RATE_PER_SEC", 20),
		LogLevel:          getEnvString("LOG_LEVEL", "info"),
	}

	if !supportedDrivers[cfg.DB.Driver] {
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DB.Driver)
	}
	if cfg.DB.Port == "" {
		cfg.DB.Port = defaultPort(cfg.DB.Driver)
	}

	return cfg, nil
}

// RedisEnabled はRedisの接続先が設定されているかを返します。
func (c *Config) RedisEnabled() bool {
	return c.RedisHost != ""
}

func defaultPort(driver string) string {
	switch driver {
	case "postgres":
		return "5432"
	case "mysql":
		return "3306"
	default:
		return ""
	}
}

func getEnvString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return defaultVal
	}
	return b
}

func getEnvFloat(key string, defaultVal float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return defaultVal
	}
	return f
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return defaultVal
	}
	return d
}
