package config

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/SAP-F-2025/kumi-math-service/internal/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "SESSION_STORE", "ASSESSMENT_TIME_LIMIT", "PRACTICE_THRESHOLD", "CORS_ORIGINS", "EVENTS_ENABLED"} {
		t.Setenv(k, "")
	}

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, SessionStoreRedis, cfg.SessionStore)
	assert.Equal(t, 20*time.Minute, cfg.AssessmentTimeLimit)
	assert.Equal(t, 80.0, cfg.PracticeThreshold)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSOrigins)
	assert.True(t, cfg.Events.Enabled)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("SESSION_STORE", "Memory")
	t.Setenv("ASSESSMENT_TIME_LIMIT", "90s")
	t.Setenv("PRACTICE_THRESHOLD", "70")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, SessionStoreMemory, cfg.SessionStore)
	assert.Equal(t, 90*time.Second, cfg.AssessmentTimeLimit)
	assert.Equal(t, 70.0, cfg.PracticeThreshold)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Events.GetKafkaBrokers())
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := map[string][2]string{
		"bad duration":    {"ASSESSMENT_TIME_LIMIT", "twenty"},
		"bad threshold":   {"PRACTICE_THRESHOLD", "abc"},
		"out of range":    {"PRACTICE_THRESHOLD", "150"},
		"unknown store":   {"SESSION_STORE", "disk"},
		"bad events flag": {"EVENTS_ENABLED", "maybe"},
	}
	for name, kv := range tests {
		t.Run(name, func(t *testing.T) {
			t.Setenv(kv[0], kv[1])
			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}

func TestCreateEventPublisher_Mock(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	for _, c := range []EventConfig{{Enabled: false}, {Enabled: true, Publisher: "mock"}, {Enabled: true, Publisher: "carrier-pigeon"}} {
		pub, err := c.CreateEventPublisher(logger)
		require.NoError(t, err)
		assert.IsType(t, &events.MockEventPublisher{}, pub)
	}
}
