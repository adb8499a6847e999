// Package config loads the runtime configuration for the precosteo
// generator from defaults, an optional YAML file and PRECOSTEO_* environment
// variables.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	TemplatesDir  string   `mapstructure:"templates_dir"`
	OutputDir     string   `mapstructure:"output_dir"`
	OutputPrefix  string   `mapstructure:"output_prefix"`
	ExcludedItems []string `mapstructure:"excluded_items"`
	GeminiModel   string   `mapstructure:"gemini_model"`
	GeminiAPIKey  string   `mapstructure:"gemini_api_key"`
	LedgerDBURL   string   `mapstructure:"ledger_db_url"`
	LedgerQuery   string   `mapstructure:"ledger_query"`
}

// Load reads the configuration. path may be empty; environment variables
// override file values (PRECOSTEO_OUTPUT_DIR and so on), and the Gemini key
// also honors the conventional GEMINI_API_KEY variable.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("templates_dir", "TEMPLATES")
	v.SetDefault("output_dir", "BD/PRECOSTEOS")
	v.SetDefault("output_prefix", "PRECOSTEO")
	v.SetDefault("excluded_items", []string{"1.21"}) // llenado de tanques
	v.SetDefault("gemini_model", "gemini-1.5-flash")
	v.SetDefault("ledger_query", "SELECT * FROM actividades")
	v.SetDefault("ledger_db_url", "")

	v.SetEnvPrefix("PRECOSTEO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("gemini_api_key", "PRECOSTEO_GEMINI_API_KEY", "GEMINI_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind environment: %w", err)
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}
