package config

import (
	"os"
	"strconv"
	"time"

	commoncfg "bukutamu/common/config"

	"github.com/joho/godotenv"
)

// Config is the bukutamu HTTP service configuration.
type Config struct {
	HTTP struct {
		Addr string
	}
	DBEnabled bool
	Database  commoncfg.DatabaseConfig

	RedisEnabled bool
	Redis        commoncfg.RedisConfig
	// DashboardCacheTTL bounds how long a computed snapshot is served from Redis.
	DashboardCacheTTL time.Duration

	Log struct {
		Level  string
		Format string
	}

	// Timezone is the office's local zone; all day/month bucketing happens in it.
	Timezone string

	Export ExportConfig
	Notify NotifyConfig
	MQTT   MQTTConfig
}

// ExportConfig controls the report export gate.
type ExportConfig struct {
	// Password is compared verbatim when PasswordHash is empty.
	Password string
	// PasswordHash is a bcrypt hash; it wins over Password when set.
	PasswordHash string
	FirstYear    int
	OfficeName   string
}

// NotifyConfig configures the admin notification webhook.
type NotifyConfig struct {
	Enabled    bool
	WebhookURL string
	Timeout    time.Duration
}

// MQTTConfig configures guest event publishing.
type MQTTConfig struct {
	Enabled bool
	commoncfg.MQTTConfig
	Topic string
}

// Load reads an optional .env file and then the process environment.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	cfg.HTTP.Addr = getEnv("HTTP_ADDR", ":8080")

	// Without a database the service still runs against the in-memory repository.
	cfg.DBEnabled = getEnv("DB_ENABLED", "true") == "true"
	cfg.Database = commoncfg.DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "postgres",
		Password: "postgres",
		Database: "bukutamu",
		SSLMode:  "disable",
		MaxConns: 10,
		MaxIdle:  2,
	}
	cfg.Database.LoadFromEnv("DB")

	cfg.RedisEnabled = getEnv("REDIS_ENABLED", "false") == "true"
	cfg.Redis = commoncfg.RedisConfig{Addr: "localhost:6379"}
	cfg.Redis.LoadFromEnv("REDIS")
	cfg.DashboardCacheTTL = parseDuration(getEnv("DASHBOARD_CACHE_TTL", "30s"), 30*time.Second)

	cfg.Log.Level = getEnv("LOG_LEVEL", "info")
	cfg.Log.Format = getEnv("LOG_FORMAT", "json")

	// Lombok Barat is on WITA (UTC+8).
	cfg.Timezone = getEnv("TIMEZONE", "Asia/Makassar")

	cfg.Export.Password = getEnv("EXPORT_PASSWORD", "17041958")
	cfg.Export.PasswordHash = getEnv("EXPORT_PASSWORD_HASH", "")
	cfg.Export.FirstYear = parseInt(getEnv("REPORT_FIRST_YEAR", "2024"), 2024)
	cfg.Export.OfficeName = getEnv("OFFICE_NAME", "Bapperida Lombok Barat")

	cfg.Notify.Enabled = getEnv("NOTIFY_WEBHOOK_ENABLED", "false") == "true"
	cfg.Notify.WebhookURL = getEnv("NOTIFY_WEBHOOK_URL", "")
	cfg.Notify.Timeout = parseDuration(getEnv("NOTIFY_WEBHOOK_TIMEOUT", "10s"), 10*time.Second)

	cfg.MQTT.Enabled = getEnv("MQTT_ENABLED", "false") == "true"
	cfg.MQTT.MQTTConfig = commoncfg.MQTTConfig{Broker: "tcp://localhost:1883", ClientID: "bukutamu"}
	cfg.MQTT.MQTTConfig.LoadFromEnv("MQTT")
	cfg.MQTT.QoS = byte(parseInt(getEnv("MQTT_QOS", "1"), 1))
	cfg.MQTT.Topic = getEnv("MQTT_TOPIC", "bukutamu/guests/registered")

	return cfg
}

// Location resolves Timezone, falling back to time.Local when the zone is unknown.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseInt(s string, def int) int {
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}

func parseDuration(s string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return def
	}
	return d
}
