package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestFromViper_Defaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)

	cfg := fromViper(v)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSAllowedOrigins)
	assert.Equal(t, "gemini-1.5-flash", cfg.Gemini.Model)
	assert.Equal(t, 10*time.Second, cfg.Gemini.NarrativeTimeout)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
	assert.False(t, cfg.Scoring.AllowEmptySubmission)
}

func TestFromViper_Overrides(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.Set("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example ,")
	v.Set("NARRATIVE_TIMEOUT", "3s")
	v.Set("SCORING_ALLOW_EMPTY_SUBMISSION", "true")
	v.Set("DATABASE_NAME", "selfcheck")
	v.Set("DATABASE_USER", "app")

	cfg := fromViper(v)

	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.CORSAllowedOrigins)
	assert.Equal(t, 3*time.Second, cfg.Gemini.NarrativeTimeout)
	assert.True(t, cfg.Scoring.AllowEmptySubmission)
	assert.Contains(t, cfg.Database.DSN(), "dbname=selfcheck")
	assert.Contains(t, cfg.Database.DSN(), "user=app")
}
