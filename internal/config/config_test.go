package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Setenv("WHATSAPP_PHONE_NUMBER_ID", "123456789")
	t.Setenv("WHATSAPP_ACCESS_TOKEN", "token-abc")
	t.Setenv("WHATSAPP_APP_SECRET", "secret")
	t.Setenv("WHATSAPP_VERIFY_TOKEN", "verify")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "123456789", cfg.PhoneNumberID)
	assert.Equal(t, "token-abc", cfg.AccessToken)
	assert.Equal(t, "v21.0", cfg.APIVersion, "api version defaults to v21.0")
	assert.Equal(t, "8080", cfg.Port, "port defaults to 8080")

	assert.NoError(t, cfg.Validate())
	assert.True(t, cfg.CanSend())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("WHATSAPP_API_VERSION", "v22.0")
	t.Setenv("PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "v22.0", cfg.APIVersion)
	assert.Equal(t, "9090", cfg.Port)
}

func TestValidate(t *testing.T) {
	t.Run("Missing App Secret", func(t *testing.T) {
		cfg := &Config{VerifyToken: "verify"}
		assert.ErrorContains(t, cfg.Validate(), "WHATSAPP_APP_SECRET")
	})

	t.Run("Missing Verify Token", func(t *testing.T) {
		cfg := &Config{AppSecret: "secret"}
		assert.ErrorContains(t, cfg.Validate(), "WHATSAPP_VERIFY_TOKEN")
	})
}

func TestCanSend(t *testing.T) {
	assert.False(t, (&Config{PhoneNumberID: "123"}).CanSend())
	assert.False(t, (&Config{AccessToken: "tok"}).CanSend())
	assert.True(t, (&Config{PhoneNumberID: "123", AccessToken: "tok"}).CanSend())
}
