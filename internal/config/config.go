package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	EnvPrefix    = "SITEGEN"
	DefaultInput = "mapping.json"
	configName   = "sitegen"
)

type Config struct {
	Input     string `mapstructure:"input"`
	Root      string `mapstructure:"root"`
	Unchecked bool   `mapstructure:"unchecked"`
	DryRun    bool   `mapstructure:"dryrun"`
	NoColor   bool   `mapstructure:"nocolor"`
	Verbose   bool   `mapstructure:"verbose"`
}

// flagKeys maps command line flags to configuration keys.
var flagKeys = map[string]string{
	"root":      "root",
	"unchecked": "unchecked",
	"dry-run":   "dryrun",
	"no-color":  "nocolor",
	"verbose":   "verbose",
}

// Load resolves configuration from, in increasing priority: defaults, the
// config file, SITEGEN_* environment variables (a .env file in the working
// directory is loaded first) and flags that were set explicitly.
func Load(flags *pflag.FlagSet, cfgFile string) (Config, error) {
	_ = godotenv.Load()

	v := viper.New()

	cwd, err := os.Getwd()
	if err != nil {
		return Config{}, fmt.Errorf("failed to get working directory: %w", err)
	}

	v.SetDefault("input", DefaultInput)
	v.SetDefault("root", cwd)
	v.SetDefault("unchecked", false)
	v.SetDefault("dryrun", false)
	v.SetDefault("nocolor", false)
	v.SetDefault("verbose", false)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || cfgFile != "" {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if flags != nil {
		for flag, key := range flagKeys {
			if f := flags.Lookup(flag); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("failed to bind flag %s: %w", flag, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	return cfg, nil
}

// InputPath picks the positional argument when given, the configured input
// otherwise.
func (c Config) InputPath(args []string) string {
	if len(args) > 0 && args[0] != "" {
		return args[0]
	}
	return c.Input
}
