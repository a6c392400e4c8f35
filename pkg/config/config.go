package config

import (
	"errors"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env       string
	Port      int
	APIPrefix string

	CORS       CORSConfig
	Log        LogConfig
	Graduation GraduationConfig
	Plan       PlanConfig
	Export     ExportConfig
	Activity   ActivityConfig
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

// GraduationConfig holds the per-category credit thresholds a plan is
// measured against.
type GraduationConfig struct {
	MandatoryCredits int
	ElectiveCredits  int
}

// PlanConfig controls the initial timeline range, catalog seeding and the
// collation locale used when sorting the unassigned pool.
type PlanConfig struct {
	StartYear   int
	StartTerm   int
	EndYear     int
	EndTerm     int
	SortLocale  string
	SeedCatalog bool
}

// ExportConfig toggles the plan export endpoints.
type ExportConfig struct {
	Enabled bool
}

// ActivityConfig sizes the in-memory mutation trail.
type ActivityConfig struct {
	MaxEntries int
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")
	cfg.APIPrefix = v.GetString("API_PREFIX")

	cfg.CORS = CORSConfig{
		AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS")),
	}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.Graduation = GraduationConfig{
		MandatoryCredits: v.GetInt("GRADUATION_MANDATORY_CREDITS"),
		ElectiveCredits:  v.GetInt("GRADUATION_ELECTIVE_CREDITS"),
	}

	cfg.Plan = PlanConfig{
		StartYear:   v.GetInt("PLAN_START_YEAR"),
		StartTerm:   v.GetInt("PLAN_START_TERM"),
		EndYear:     v.GetInt("PLAN_END_YEAR"),
		EndTerm:     v.GetInt("PLAN_END_TERM"),
		SortLocale:  v.GetString("PLAN_SORT_LOCALE"),
		SeedCatalog: v.GetBool("PLAN_SEED_CATALOG"),
	}

	cfg.Export = ExportConfig{
		Enabled: v.GetBool("ENABLE_EXPORT"),
	}

	cfg.Activity = ActivityConfig{
		MaxEntries: v.GetInt("ACTIVITY_MAX_ENTRIES"),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)
	v.SetDefault("API_PREFIX", "/api/v1")

	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("GRADUATION_MANDATORY_CREDITS", 5)
	v.SetDefault("GRADUATION_ELECTIVE_CREDITS", 40)

	v.SetDefault("PLAN_START_YEAR", 25)
	v.SetDefault("PLAN_START_TERM", 2)
	v.SetDefault("PLAN_END_YEAR", 27)
	v.SetDefault("PLAN_END_TERM", 1)
	v.SetDefault("PLAN_SORT_LOCALE", "en")
	v.SetDefault("PLAN_SEED_CATALOG", true)

	v.SetDefault("ENABLE_EXPORT", true)
	v.SetDefault("ACTIVITY_MAX_ENTRIES", 100)
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
