package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Config represents the top-level balancebook.yaml configuration.
type Config struct {
	Business   BusinessConfig   `yaml:"business"`
	Fiscal     FiscalConfig     `yaml:"fiscal"`
	Projection ProjectionConfig `yaml:"projection"`
	Git        GitConfig        `yaml:"git"`
}

// BusinessConfig identifies the business entity.
type BusinessConfig struct {
	Name       string          `yaml:"name"`
	EntityType string          `yaml:"entity_type"`
	Currency   string          `yaml:"currency"`
	Capital    decimal.Decimal `yaml:"capital"` // recorded capital investment
}

// FiscalConfig defines the fiscal year boundaries.
type FiscalConfig struct {
	YearStart string `yaml:"year_start"` // "MM-DD" format, e.g. "01-01"
}

// ProjectionConfig holds default scenario-projection settings.
type ProjectionConfig struct {
	Months int `yaml:"months"`
}

// GitConfig controls git versioning of the book directory.
type GitConfig struct {
	AutoCommit  bool   `yaml:"auto_commit"`
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// CategoryColors maps transaction categories to badge colors for
// rendering layers. Plain configuration, not engine state.
var CategoryColors = map[string]string{
	"EARN":  "green",
	"OPEX":  "orange",
	"VAR":   "yellow",
	"CAPEX": "blue",
	"TAX":   "red",
	"FIN":   "purple",
}

// Load reads a balancebook.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
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
func Default(businessName, entityType string) *Config {
	return &Config{
		Business: BusinessConfig{
			Name:       businessName,
			EntityType: entityType,
			Currency:   "IDR",
			Capital:    decimal.Zero,
		},
		Fiscal: FiscalConfig{
			YearStart: "01-01",
		},
		Projection: ProjectionConfig{
			Months: 12,
		},
		Git: GitConfig{
			AutoCommit:  true,
			AuthorName:  "Balancebook",
			AuthorEmail: "book@balancebook.dev",
		},
	}
}
