package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/npillmayer/ordmap/textfile"
	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// configName is the config file name without extension.
const configName = ".ordmap"

// configType is the config file format.
const configType = "yaml"

// envPrefix is the environment variable prefix for ordmap settings.
const envPrefix = "ORDMAP"

// Config holds the settings of the ordmap tool.
// Field tags use mapstructure for viper unmarshalling.
type Config struct {
	Separator  string `mapstructure:"separator"`
	Color      bool   `mapstructure:"color"`
	TraceLevel string `mapstructure:"trace_level"`
	Width      int    `mapstructure:"width"`
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if c.Separator == "" {
		return errors.New("separator must not be empty")
	}
	if c.Width < 0 {
		return fmt.Errorf("width must not be negative, is %d", c.Width)
	}
	if _, err := traceLevel(c.TraceLevel); err != nil {
		return err
	}
	return nil
}

// registerConfigFlags adds the flags which override configuration settings.
func registerConfigFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.String("config", "", "config file (default is .ordmap.yaml in . or $HOME)")
	flags.String("separator", textfile.DefaultSeparator, "key/value separator of record files")
	flags.Bool("color", false, "colorize tree output")
	flags.String("trace-level", "error", "trace level (error, info, debug)")
	flags.Int("width", 0, "maximum width of tree output, 0 for terminal width")
}

// loadConfig loads configuration from flags, env vars, file and defaults,
// in this order of precedence.
// Missing config file is not an error; defaults are used.
func loadConfig(cmd *cobra.Command) (*Config, error) {
	viperCfg := viper.New()

	viperCfg.SetDefault("separator", textfile.DefaultSeparator)
	viperCfg.SetDefault("color", false)
	viperCfg.SetDefault("trace_level", "error")
	viperCfg.SetDefault("width", 0)

	viperCfg.SetConfigType(configType)
	viperCfg.SetEnvPrefix(envPrefix)
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viperCfg.AutomaticEnv()

	flags := cmd.Flags()
	for key, flag := range map[string]string{
		"separator":   "separator",
		"color":       "color",
		"trace_level": "trace-level",
		"width":       "width",
	} {
		if f := flags.Lookup(flag); f != nil {
			if err := viperCfg.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("bind flag %s: %w", flag, err)
			}
		}
	}

	configPath, _ := flags.GetString("config")
	if configPath != "" {
		viperCfg.SetConfigFile(configPath)
	} else {
		viperCfg.SetConfigName(configName)
		viperCfg.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viperCfg.AddConfigPath(home)
		}
	}

	readErr := viperCfg.ReadInConfig()
	if readErr != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(readErr, &notFound) {
			return nil, fmt.Errorf("read config: %w", readErr)
		}
	}

	var cfg Config

	unmarshalErr := viperCfg.Unmarshal(&cfg)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("unmarshal config: %w", unmarshalErr)
	}

	validateErr := cfg.Validate()
	if validateErr != nil {
		return nil, fmt.Errorf("validate config: %w", validateErr)
	}

	return &cfg, nil
}

func traceLevel(name string) (tracing.TraceLevel, error) {
	switch strings.ToLower(name) {
	case "", "error":
		return tracing.LevelError, nil
	case "info":
		return tracing.LevelInfo, nil
	case "debug":
		return tracing.LevelDebug, nil
	}
	return tracing.LevelError, fmt.Errorf("unknown trace level %q", name)
}
