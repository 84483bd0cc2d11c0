package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Sample size bounds for the AI collaborator. The cap exists to respect
// the model's token budget; the floor keeps the sample representative.
const (
	MinSampleSize     = 50
	MaxSampleSize     = 500
	DefaultSampleSize = 100
)

// DefaultGeminiModel is the model used for mismatch detection unless
// overridden via GEMINI_MODEL.
const DefaultGeminiModel = "gemini-2.0-flash"

// Config carries everything the reconciler needs at runtime. Values
// come from flags, environment variables and an optional config file,
// resolved through viper.
type Config struct {
	// AI collaborator
	GeminiAPIKey string
	GeminiModel  string
	SampleSize   int

	// SQL extract source; empty means the SQL side is read from a file.
	MySQLDSN string

	// Analyzer tuning
	SumTolerance float64
	StrictDates  bool
}

// Load reads configuration from the environment (including a .env file
// when present) and any viper-bound flags. It never fails: missing
// values fall back to defaults, and a missing API key simply disables
// the AI step.
func Load() *Config {
	// Load .env if present; running from cmd/glrecon is also supported.
	_ = godotenv.Load()
	_ = godotenv.Load("../../.env")

	viper.SetDefault("sample-size", DefaultSampleSize)
	viper.SetDefault("tolerance", 0.01)
	viper.SetDefault("strict-dates", false)
	viper.SetDefault("gemini-model", DefaultGeminiModel)

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	cfg := &Config{
		GeminiAPIKey: viper.GetString("GEMINI_API_KEY"),
		GeminiModel:  viper.GetString("gemini-model"),
		SampleSize:   clampSampleSize(viper.GetInt("sample-size")),
		MySQLDSN:     viper.GetString("MYSQL_DSN"),
		SumTolerance: viper.GetFloat64("tolerance"),
		StrictDates:  viper.GetBool("strict-dates"),
	}
	return cfg
}

func clampSampleSize(n int) int {
	if n < MinSampleSize {
		return MinSampleSize
	}
	if n > MaxSampleSize {
		return MaxSampleSize
	}
	return n
}
