package config

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{
		"HTTP_ADDR", "DB_ENABLED", "DB_NAME", "REDIS_ENABLED", "DASHBOARD_CACHE_TTL", "TIMEZONE",
		"EXPORT_PASSWORD", "EXPORT_PASSWORD_HASH", "REPORT_FIRST_YEAR", "NOTIFY_WEBHOOK_ENABLED",
		"MQTT_ENABLED", "MQTT_QOS", "DB_HOST", "DB_PORT", "REDIS_ADDR", "MQTT_BROKER", "MQTT_CLIENT_ID",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	cfg := Load()

	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.True(t, cfg.DBEnabled)
	assert.Equal(t, "bukutamu", cfg.Database.Database)
	assert.False(t, cfg.RedisEnabled)
	assert.Equal(t, 30*time.Second, cfg.DashboardCacheTTL)
	assert.Equal(t, "Asia/Makassar", cfg.Timezone)
	assert.Equal(t, "17041958", cfg.Export.Password)
	assert.Equal(t, 2024, cfg.Export.FirstYear)
	assert.False(t, cfg.Notify.Enabled)
	assert.False(t, cfg.MQTT.Enabled)
	assert.Equal(t, byte(1), cfg.MQTT.QoS)
}

func TestLoad_FromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("DB_ENABLED", "false")
	t.Setenv("REDIS_ENABLED", "true")
	t.Setenv("DASHBOARD_CACHE_TTL", "2m")
	t.Setenv("EXPORT_PASSWORD_HASH", "$2a$10$abc")
	t.Setenv("REPORT_FIRST_YEAR", "not-a-year")
	t.Setenv("DB_HOST", "db.kantor.local")
	t.Setenv("REDIS_ADDR", "cache:6379")
	t.Setenv("MQTT_BROKER", "tcp://broker:1883")

	cfg := Load()

	assert.Equal(t, ":9090", cfg.HTTP.Addr)
	assert.False(t, cfg.DBEnabled)
	assert.True(t, cfg.RedisEnabled)
	assert.Equal(t, 2*time.Minute, cfg.DashboardCacheTTL)
	assert.Equal(t, "$2a$10$abc", cfg.Export.PasswordHash)
	assert.Equal(t, 2024, cfg.Export.FirstYear)
	assert.Equal(t, "db.kantor.local", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "cache:6379", cfg.Redis.Addr)
	assert.Equal(t, "tcp://broker:1883", cfg.MQTT.Broker)
	assert.Equal(t, "bukutamu", cfg.MQTT.ClientID)
}

func TestConfig_Location(t *testing.T) {
	cfg := &Config{Timezone: "Asia/Makassar"}
	assert.Equal(t, "Asia/Makassar", cfg.Location().String())

	cfg.Timezone = "Nowhere/Atlantis"
	assert.Equal(t, time.Local, cfg.Location())
}
