package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/KaramelBytes/crosstab-cli/internal/category"
	apperrors "github.com/KaramelBytes/crosstab-cli/internal/errors"
	"github.com/KaramelBytes/crosstab-cli/internal/filter"
)

// DirName is the per-user config directory under $HOME.
const DirName = ".crosstab"

// EnvPrefix prefixes every environment override, e.g. CROSSTAB_LOG_LEVEL.
const EnvPrefix = "CROSSTAB"

// Global configuration structure.
type Global struct {
	Lang        string `mapstructure:"lang" yaml:"lang"`
	CreatedYear int    `mapstructure:"created_year" yaml:"created_year"`
	Workers     int    `mapstructure:"workers" yaml:"workers"`
	// Filtering
	FilterMode string        `mapstructure:"filter_mode" yaml:"filter_mode"`
	Filters    []filter.Rule `mapstructure:"filters" yaml:"filters"`
	// RawIncludeText keeps text and textarea answers in the raw sheets.
	RawIncludeText bool      `mapstructure:"raw_include_text" yaml:"raw_include_text"`
	Log            LogConfig `mapstructure:"log" yaml:"log"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level     string `mapstructure:"level" yaml:"level"`
	Format    string `mapstructure:"format" yaml:"format"`
	Output    string `mapstructure:"output" yaml:"output"`
	FilePath  string `mapstructure:"file_path" yaml:"file_path"`
	AddSource bool   `mapstructure:"add_source" yaml:"add_source"`
}

// Language returns the parsed output language.
func (c *Global) Language() category.Language {
	return category.ParseLanguage(c.Lang)
}

// Mode returns the parsed filter mode.
func (c *Global) Mode() (filter.Mode, error) {
	return filter.ParseMode(c.FilterMode)
}

func defaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, DirName, "config.yaml"), nil
}

// Save writes the given configuration to the cfgFile path. If cfgFile is empty,
// it writes to ~/.crosstab/config.yaml, creating the directory if necessary.
func Save(c *Global, cfgFile string) error {
	path := cfgFile
	if path == "" {
		p, err := defaultPath()
		if err != nil {
			return err
		}
		path = p
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: env > config file > defaults. Command flags are applied by the caller.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("lang", "ja")
	v.SetDefault("created_year", time.Now().Year())
	v.SetDefault("workers", 0)
	v.SetDefault("filter_mode", "ignore")
	v.SetDefault("filters", []filter.Rule{})
	v.SetDefault("raw_include_text", true)
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.output", "stderr")
	v.SetDefault("log.file_path", "")
	v.SetDefault("log.add_source", false)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, apperrors.ConfigInvalid("read config %s: %v", cfgFile, err)
		}
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		v.AddConfigPath(filepath.Join(home, DirName))
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		// optional read
		_ = v.ReadInConfig()
	}

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks the enumerated keys.
func (c *Global) Validate() error {
	switch strings.ToLower(c.Lang) {
	case "ja", "en":
	default:
		return apperrors.ConfigInvalid("lang %q: want ja or en", c.Lang)
	}
	if _, err := c.Mode(); err != nil {
		return err
	}
	if c.Workers < 0 {
		return apperrors.ConfigInvalid("workers must be >= 0, got %d", c.Workers)
	}
	if c.CreatedYear <= 0 {
		return apperrors.ConfigInvalid("created_year must be positive, got %d", c.CreatedYear)
	}
	return nil
}

// Keys lists the settable keys in display order.
var Keys = []string{
	"lang", "created_year", "workers", "filter_mode", "filters", "raw_include_text",
	"log.level", "log.format", "log.output", "log.file_path", "log.add_source",
}

// Get renders the value of key for display.
func (c *Global) Get(key string) (string, error) {
	switch key {
	case "lang":
		return c.Lang, nil
	case "created_year":
		return strconv.Itoa(c.CreatedYear), nil
	case "workers":
		return strconv.Itoa(c.Workers), nil
	case "filter_mode":
		return c.FilterMode, nil
	case "filters":
		parts := make([]string, len(c.Filters))
		for i, r := range c.Filters {
			parts[i] = r.String()
		}
		return strings.Join(parts, ","), nil
	case "raw_include_text":
		return strconv.FormatBool(c.RawIncludeText), nil
	case "log.level":
		return c.Log.Level, nil
	case "log.format":
		return c.Log.Format, nil
	case "log.output":
		return c.Log.Output, nil
	case "log.file_path":
		return c.Log.FilePath, nil
	case "log.add_source":
		return strconv.FormatBool(c.Log.AddSource), nil
	}
	return "", apperrors.ConfigInvalid("unknown key: %s", key)
}

// Set parses val into key. Filters take a comma separated list of category=value.
func (c *Global) Set(key, val string) error {
	switch key {
	case "lang":
		switch l := strings.ToLower(val); l {
		case "ja", "en":
			c.Lang = l
		default:
			return apperrors.ConfigInvalid("invalid lang: %s (use ja or en)", val)
		}
	case "created_year":
		i, err := strconv.Atoi(val)
		if err != nil || i <= 0 {
			return apperrors.ConfigInvalid("invalid int for created_year: %v", val)
		}
		c.CreatedYear = i
	case "workers":
		i, err := strconv.Atoi(val)
		if err != nil || i < 0 {
			return apperrors.ConfigInvalid("invalid int for workers: %v", val)
		}
		c.Workers = i
	case "filter_mode":
		m, err := filter.ParseMode(val)
		if err != nil {
			return err
		}
		c.FilterMode = m.String()
	case "filters":
		var rules []filter.Rule
		for _, s := range strings.Split(val, ",") {
			if strings.TrimSpace(s) == "" {
				continue
			}
			r, err := filter.ParseRule(s)
			if err != nil {
				return err
			}
			rules = append(rules, r)
		}
		c.Filters = rules
	case "raw_include_text", "log.add_source":
		b, err := strconv.ParseBool(val)
		if err != nil {
			return apperrors.ConfigInvalid("invalid bool for %s: %v", key, val)
		}
		if key == "raw_include_text" {
			c.RawIncludeText = b
		} else {
			c.Log.AddSource = b
		}
	case "log.level":
		c.Log.Level = val
	case "log.format":
		c.Log.Format = val
	case "log.output":
		c.Log.Output = val
	case "log.file_path":
		c.Log.FilePath = val
	default:
		return apperrors.ConfigInvalid("unknown key: %s", key)
	}
	return nil
}
