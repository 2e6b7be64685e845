package config_test

import (
	"testing"
	"time"

	"github.com/rayyanshaikh123/bharatbuild-sub004/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()

	assert.NoError(t, err)
	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, "procurement.material.approved.v1", cfg.Kafka.MaterialApprovedTopic)
	assert.Equal(t, 5, cfg.Database.MaxRetries)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_AUTO_MIGRATE", "true")
	t.Setenv("KAFKA_POLL_INTERVAL", "750ms")
	t.Setenv("JWT_SECRET", "s3cret")

	cfg, err := config.Load()

	assert.NoError(t, err)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.True(t, cfg.Database.AutoMigrate)
	assert.Equal(t, 750*time.Millisecond, cfg.Kafka.PollInterval)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
}
