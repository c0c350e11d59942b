package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "8080", cfg.Server.Port)
		assert.Equal(t, "onboarding", cfg.Database.Name)
		assert.Equal(t, "rules", cfg.Assistant.Provider)
		assert.Equal(t, "development", cfg.App.Environment)
	})

	t.Run("reads overrides from the environment", func(t *testing.T) {
		t.Setenv("PORT", "9999")
		t.Setenv("DB_NAME", "onboarding_test")
		t.Setenv("CORS_ALLOW_ORIGINS", "https://app.example.com, https://admin.example.com")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "9999", cfg.Server.Port)
		assert.Equal(t, "onboarding_test", cfg.Database.Name)
		assert.Equal(t, []string{"https://app.example.com", "https://admin.example.com"}, cfg.Server.AllowOrigins)
	})

	t.Run("gemini provider requires an api key", func(t *testing.T) {
		t.Setenv("ASSISTANT_PROVIDER", "gemini")
		t.Setenv("ASSISTANT_API_KEY", "")

		_, err := Load()
		assert.Error(t, err)
	})
}

func TestPostgresDSN(t *testing.T) {
	t.Run("prefers the explicit DSN", func(t *testing.T) {
		c := DatabaseConfig{DSN: "postgres://u:p@h/db"}
		assert.Equal(t, "postgres://u:p@h/db", c.PostgresDSN())
	})

	t.Run("builds one from parts", func(t *testing.T) {
		c := DatabaseConfig{
			Host: "db.internal", Port: 5433, User: "app",
			Password: "secret", Name: "onboarding", SSLMode: "require",
		}
		assert.Equal(t,
			"host=db.internal port=5433 user=app password=secret dbname=onboarding sslmode=require",
			c.PostgresDSN())
	})
}

func TestValidate(t *testing.T) {
	t.Run("requires a port", func(t *testing.T) {
		c := &Config{Database: DatabaseConfig{Host: "localhost"}}
		assert.Error(t, c.Validate())
	})

	t.Run("requires a database target", func(t *testing.T) {
		c := &Config{Server: ServerConfig{Port: "8080"}}
		assert.Error(t, c.Validate())
	})

	t.Run("passes with port and host", func(t *testing.T) {
		c := &Config{
			Server:   ServerConfig{Port: "8080"},
			Database: DatabaseConfig{Host: "localhost"},
		}
		assert.NoError(t, c.Validate())
	})
}
