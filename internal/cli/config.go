package cli

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/authcorp/libs/go/fantasy/errors"
)

// EnvPrefix prefixes every environment override, e.g. DOCPATH_LOG_LEVEL.
const EnvPrefix = "DOCPATH"

// Config is the docpath configuration.
type Config struct {
	Log    LogConfig    `mapstructure:"log" validate:"required"`
	Output OutputConfig `mapstructure:"output" validate:"required"`
}

// LogConfig defines logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"required,oneof=json text"`
}

// OutputConfig defines how results are printed. An empty Format keeps the
// input document's format.
type OutputConfig struct {
	Format string `mapstructure:"format" validate:"omitempty,oneof=json yaml"`
	Indent int    `mapstructure:"indent" validate:"min=0,max=8"`
}

var configValidator = validator.New()

// LoadConfig reads defaults, then the config file, then DOCPATH_ variables,
// then the command line flags bound to configuration keys.
func LoadConfig(inv Invocation) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if inv.ConfigFile != "" {
		v.SetConfigFile(inv.ConfigFile)
	} else {
		v.SetConfigName("docpath")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/docpath")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || inv.ConfigFile != "" {
			return nil, errors.Wrap(errors.Config("failed to read config file").WithCause(err), "loading configuration")
		}
	}

	if inv.Flags != nil {
		if f := inv.Flags.Lookup("output"); f != nil {
			if err := v.BindPFlag("output.format", f); err != nil {
				return nil, errors.Config("failed to bind flags").WithCause(err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Config("failed to unmarshal config").WithCause(err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the struct tags of cfg.
func Validate(cfg *Config) error {
	if err := configValidator.Struct(cfg); err != nil {
		return formatValidationError(err)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "text")
	v.SetDefault("output.format", "")
	v.SetDefault("output.indent", 2)
}

func formatValidationError(err error) error {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return errors.Config("configuration validation failed").WithCause(err)
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fieldError := range validationErrors {
		messages = append(messages, fmt.Sprintf("field '%s' failed validation: %s (value: %v)",
			fieldError.Namespace(), fieldError.Tag(), fieldError.Value()))
	}
	return errors.Config("validation errors: " + strings.Join(messages, "; "))
}
