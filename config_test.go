package main

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	unsetEnv(t, "STRIPE_PUBLISHABLE_KEY", "FRONTEND_URL", "PORT", "STRIPE_TIMEOUT")
	t.Setenv("STRIPE_SECRET_KEY", "sk_test_abc")

	cfg, err := loadConfig()

	require.NoError(t, err)
	assert.Equal(t, "sk_test_abc", cfg.StripeSecretKey)
	assert.Equal(t, "http://localhost:4242", cfg.FrontendURL)
	assert.Equal(t, 4242, cfg.Port)
	assert.Equal(t, 10*time.Second, cfg.StripeTimeout)
}

func TestLoadConfig_MissingSecretKey(t *testing.T) {
	unsetEnv(t, "STRIPE_SECRET_KEY")

	_, err := loadConfig()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "STRIPE_SECRET_KEY")
}

func TestLoadConfig_TrimsFrontendURL(t *testing.T) {
	unsetEnv(t, "PORT", "STRIPE_TIMEOUT")
	t.Setenv("STRIPE_SECRET_KEY", "sk_test_abc")
	t.Setenv("FRONTEND_URL", "https://shop.example/")

	cfg, err := loadConfig()

	require.NoError(t, err)
	assert.Equal(t, "https://shop.example", cfg.FrontendURL)
}
