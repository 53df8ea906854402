package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/sandeepkv93/dayplan/internal/logging"
	"github.com/sandeepkv93/dayplan/internal/model"
)

const EnvConfigFile = "DAYPLAN_CONFIG"

var ErrInvalidConfig = errors.New("config: invalid value")

type Config struct {
	LogFile         string `toml:"log_file"`
	LogLevel        string `toml:"log_level"`
	LogFormat       string `toml:"log_format"`
	LogTimestamps   bool   `toml:"log_timestamps"`
	DefaultPriority string `toml:"default_priority"`
	HelpStyle       string `toml:"help_style"`
}

func Default() Config {
	return Config{
		LogFile:         logging.DefaultPath,
		LogLevel:        "info",
		LogFormat:       "text",
		LogTimestamps:   true,
		DefaultPriority: string(model.PriorityMedium),
		HelpStyle:       "dark",
	}
}

// Load applies, in order: defaults, the TOML file named by -config or
// DAYPLAN_CONFIG, environment variables, then the remaining flags.
func Load(fs *flag.FlagSet, args []string) (Config, error) {
	cfg := Default()

	var (
		path      string
		logFile   string
		logLevel  string
		logFormat string
		priority  string
	)
	fs.StringVar(&path, "config", os.Getenv(EnvConfigFile), "path to a TOML config file")
	fs.StringVar(&logFile, "log-file", "", "log file path (empty string in config logs to stderr)")
	fs.StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	fs.StringVar(&logFormat, "log-format", "", "log format: text, json, logfmt")
	fs.StringVar(&priority, "default-priority", "", "priority used when add omits one")
	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("parsing flags: %w", err)
	}

	if strings.TrimSpace(path) != "" {
		loaded, err := LoadFile(cfg, path)
		if err != nil {
			return Config{}, err
		}
		cfg = loaded
	}

	cfg = FromEnv(cfg)

	if logFile != "" {
		cfg.LogFile = logFile
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if logFormat != "" {
		cfg.LogFormat = logFormat
	}
	if priority != "" {
		cfg.DefaultPriority = priority
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFile decodes path over base; keys absent from the file keep base values.
func LoadFile(base Config, path string) (Config, error) {
	cfg := base
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("loading config file %s: %w", path, err)
	}
	return cfg, nil
}

func FromEnv(base Config) Config {
	cfg := base
	if v, ok := os.LookupEnv("DAYPLAN_LOG_FILE"); ok {
		cfg.LogFile = strings.TrimSpace(v)
	}
	if v, ok := getEnvString("DAYPLAN_LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}
	if v, ok := getEnvString("DAYPLAN_LOG_FORMAT"); ok {
		cfg.LogFormat = v
	}
	if v, ok := getEnvBool("DAYPLAN_LOG_TIMESTAMPS"); ok {
		cfg.LogTimestamps = v
	}
	if v, ok := getEnvString("DAYPLAN_DEFAULT_PRIORITY"); ok {
		cfg.DefaultPriority = v
	}
	if v, ok := getEnvString("DAYPLAN_HELP_STYLE"); ok {
		cfg.HelpStyle = v
	}
	return cfg
}

func (c Config) Validate() error {
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("%w: log_level %q", ErrInvalidConfig, c.LogLevel)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json", "logfmt":
	default:
		return fmt.Errorf("%w: log_format %q", ErrInvalidConfig, c.LogFormat)
	}
	if _, err := model.ParsePriority(c.DefaultPriority); err != nil {
		return fmt.Errorf("%w: default_priority %q", ErrInvalidConfig, c.DefaultPriority)
	}
	return nil
}

// Priority returns the canonical default priority; Validate guarantees it parses.
func (c Config) Priority() model.Priority {
	p, err := model.ParsePriority(c.DefaultPriority)
	if err != nil {
		return model.PriorityMedium
	}
	return p
}

func (c Config) LogOptions() logging.Options {
	opts := logging.DefaultOptions()
	opts.Path = c.LogFile
	opts.Level = logging.ParseLevel(c.LogLevel)
	opts.Formatter = logging.ParseFormatter(c.LogFormat)
	opts.ReportTimestamp = c.LogTimestamps
	return opts
}

func getEnvString(name string) (string, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return "", false
	}
	return raw, true
}

func getEnvBool(name string) (bool, bool) {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return false, false
	}
	switch raw {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	default:
		if v, err := strconv.ParseBool(raw); err == nil {
			return v, true
		}
		return false, false
	}
}
