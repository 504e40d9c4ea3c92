package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/cleared-dev/tally/internal/model"
)

// FileName is the config file at the root of a book directory.
const FileName = "ledger.yaml"

// EnvPrefix prefixes environment overrides, e.g. TALLY_LOGGING_LEVEL.
const EnvPrefix = "TALLY"

// Config represents the top-level ledger.yaml configuration.
type Config struct {
	Business BusinessConfig `yaml:"business" mapstructure:"business"`
	Files    FilesConfig    `yaml:"files" mapstructure:"files"`
	Display  DisplayConfig  `yaml:"display" mapstructure:"display"`
	Logging  LoggingConfig  `yaml:"logging" mapstructure:"logging"`
	Git      GitConfig      `yaml:"git" mapstructure:"git"`
	Chart    []ChartAccount `yaml:"chart,omitempty" mapstructure:"chart"`
}

// BusinessConfig identifies whose books these are.
type BusinessConfig struct {
	Name string `yaml:"name" mapstructure:"name"`
}

// FilesConfig locates input files, relative to the book directory.
type FilesConfig struct {
	Chart    string `yaml:"chart" mapstructure:"chart"`
	Postings string `yaml:"postings" mapstructure:"postings"`
}

// DisplayConfig controls report formatting.
type DisplayConfig struct {
	Precision int32 `yaml:"precision" mapstructure:"precision"`
}

// LoggingConfig controls the zerolog logger.
type LoggingConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"` // "json" or "console"
}

// GitConfig controls git integration for `tally init --git`.
type GitConfig struct {
	AuthorName  string `yaml:"author_name" mapstructure:"author_name"`
	AuthorEmail string `yaml:"author_email" mapstructure:"author_email"`
}

// ChartAccount overrides the seed chart when the chart file is absent.
type ChartAccount struct {
	Name           string `yaml:"name" mapstructure:"name"`
	Type           string `yaml:"type" mapstructure:"type"`
	OpeningBalance string `yaml:"opening_balance,omitempty" mapstructure:"opening_balance"`
}

// Load reads a ledger.yaml file. Any key can be overridden from the
// environment: logging.level becomes TALLY_LOGGING_LEVEL.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v, Default(""))

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// setDefaults registers every scalar key so environment overrides apply
// even when the file leaves the key out.
func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("business.name", d.Business.Name)
	v.SetDefault("files.chart", d.Files.Chart)
	v.SetDefault("files.postings", d.Files.Postings)
	v.SetDefault("display.precision", d.Display.Precision)
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
	v.SetDefault("git.author_name", d.Git.AuthorName)
	v.SetDefault("git.author_email", d.Git.AuthorEmail)
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new book.
func Default(businessName string) *Config {
	return &Config{
		Business: BusinessConfig{
			Name: businessName,
		},
		Files: FilesConfig{
			Chart:    "accounts/chart-of-accounts.csv",
			Postings: "postings.csv",
		},
		Display: DisplayConfig{
			Precision: 2,
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
		Git: GitConfig{
			AuthorName:  "Tally",
			AuthorEmail: "tally@cleared.dev",
		},
	}
}

// ChartAccounts converts the inline chart to accounts.
func (c *Config) ChartAccounts() ([]model.Account, error) {
	var out []model.Account
	for i, ca := range c.Chart {
		t, err := model.ParseAccountType(ca.Type)
		if err != nil {
			return nil, fmt.Errorf("chart entry %d (%s): %w", i+1, ca.Name, err)
		}
		opening := decimal.Zero
		if ca.OpeningBalance != "" {
			opening, err = decimal.NewFromString(ca.OpeningBalance)
			if err != nil {
				return nil, fmt.Errorf("chart entry %d (%s): parsing opening_balance %q: %w", i+1, ca.Name, ca.OpeningBalance, err)
			}
		}
		out = append(out, model.Account{Name: ca.Name, Type: t, OpeningBalance: opening, Balance: opening})
	}
	return out, nil
}
