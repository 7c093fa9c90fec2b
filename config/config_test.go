package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadEnv_Defaults(t *testing.T) {
	cfg := LoadEnv()

	assert.Equal(t, ":8080", cfg.Server.HTTPPort)
	assert.Equal(t, "vi", cfg.Menu.DefaultLang)
	assert.Equal(t, []string{"vi", "en", "zh", "zh-TW", "th"}, cfg.Menu.SupportedLangs)
	assert.Equal(t, 86400, cfg.Menu.SnapshotTTL)
	assert.Equal(t, 10, cfg.Postgres.MaxOpenConns)
}

func TestLoadEnv_Overrides(t *testing.T) {
	t.Setenv("HTTP_PORT", ":9000")
	t.Setenv("MENU_SUPPORTED_LANGS", "vi,en")
	t.Setenv("MENU_SNAPSHOT_TTL", "3600")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")
	t.Setenv("LOGGER_DISABLE_STACKTRACE", "false")

	cfg := LoadEnv()

	assert.Equal(t, ":9000", cfg.Server.HTTPPort)
	assert.Equal(t, []string{"vi", "en"}, cfg.Menu.SupportedLangs)
	assert.Equal(t, 3600, cfg.Menu.SnapshotTTL)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	assert.False(t, cfg.Logger.DisableStacktrace)
}

func TestLoadEnv_BadIntFallsBack(t *testing.T) {
	t.Setenv("MENU_SNAPSHOT_TTL", "not-a-number")
	cfg := LoadEnv()
	assert.Equal(t, 86400, cfg.Menu.SnapshotTTL)
}
