package config

import (
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server      Server
	Database    Database
	Gemini      Gemini
	Auth        Auth
	Scoring     Scoring
	LogLevel    string
	CatalogPath string
}

type Server struct {
	Port               string
	GinMode            string
	CORSAllowedOrigins []string
}

type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type Gemini struct {
	ApiKey           string
	Model            string
	NarrativeTimeout time.Duration
}

type Auth struct {
	JWTSecret string
	TokenTTL  time.Duration
}

type Scoring struct {
	// AllowEmptySubmission lets a submission without answers through; it then
	// scores zero and is classified like any other result.
	AllowEmptySubmission bool
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("GIN_MODE", "debug")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("DATABASE_HOST", "localhost")
	v.SetDefault("DATABASE_PORT", "5432")
	v.SetDefault("DATABASE_SSLMODE", "disable")
	v.SetDefault("GEMINI_MODEL", "gemini-1.5-flash")
	v.SetDefault("NARRATIVE_TIMEOUT", "10s")
	v.SetDefault("JWT_TTL", "24h")
	v.SetDefault("SCORING_ALLOW_EMPTY_SUBMISSION", false)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CATALOG_PATH", "catalog/tests.yaml")
}

func NewConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file, using environment only")
	}

	return fromViper(v), nil
}

func fromViper(v *viper.Viper) *Config {
	var config Config

	config.Server.Port = v.GetString("SERVER_PORT")
	config.Server.GinMode = v.GetString("GIN_MODE")
	config.Server.CORSAllowedOrigins = splitList(v.GetString("CORS_ALLOWED_ORIGINS"))

	config.Database.Host = v.GetString("DATABASE_HOST")
	config.Database.Port = v.GetString("DATABASE_PORT")
	config.Database.User = v.GetString("DATABASE_USER")
	config.Database.Password = v.GetString("DATABASE_PASSWORD")
	config.Database.Name = v.GetString("DATABASE_NAME")
	config.Database.SSLMode = v.GetString("DATABASE_SSLMODE")

	config.Gemini.ApiKey = v.GetString("GEMINI_API_KEY")
	config.Gemini.Model = v.GetString("GEMINI_MODEL")
	config.Gemini.NarrativeTimeout = v.GetDuration("NARRATIVE_TIMEOUT")

	config.Auth.JWTSecret = v.GetString("JWT_SECRET")
	config.Auth.TokenTTL = v.GetDuration("JWT_TTL")

	config.Scoring.AllowEmptySubmission = v.GetBool("SCORING_ALLOW_EMPTY_SUBMISSION")

	config.LogLevel = v.GetString("LOG_LEVEL")
	config.CatalogPath = v.GetString("CATALOG_PATH")

	if config.Auth.JWTSecret == "" {
		log.Warn().Msg("JWT_SECRET is not set. Token login and authenticated routes will reject every request.")
	}

	log.Info().
		Str("port", config.Server.Port).
		Str("dbHost", config.Database.Host).
		Str("dbName", config.Database.Name).
		Str("geminiModel", config.Gemini.Model).
		Bool("geminiEnabled", config.Gemini.ApiKey != "").
		Dur("narrativeTimeout", config.Gemini.NarrativeTimeout).
		Msg("Config loaded")
	return &config
}

// DSN is the postgres connection string for gorm's postgres driver.
func (d Database) DSN() string {
	parts := []string{
		"host=" + d.Host,
		"port=" + d.Port,
		"user=" + d.User,
		"password=" + d.Password,
		"dbname=" + d.Name,
		"sslmode=" + d.SSLMode,
		"TimeZone=UTC",
	}
	return strings.Join(parts, " ")
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
