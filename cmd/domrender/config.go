package main

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config is the configuration of a rendering run.
type Config struct {
	Viewport struct {
		Width  float64 `mapstructure:"width"`
		Height float64 `mapstructure:"height"`
	} `mapstructure:"viewport"`
	Output struct {
		Format string `mapstructure:"format"`
		PNG    string `mapstructure:"png"`
		Dump   string `mapstructure:"dump"`
	} `mapstructure:"output"`
	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("viewport.width", 800)
	v.SetDefault("viewport.height", 600)
	v.SetDefault("output.format", "text")
	v.SetDefault("log.level", "warn")
}

// loadConfig reads the config file, if there is one, and the environment.
func loadConfig(v *viper.Viper, cfgFile string) (*Config, error) {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("domrender")
		v.SetConfigType("yaml")
	}
	v.SetEnvPrefix("DOMRENDER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, errors.Wrap(err, "error reading config file")
		}
		// no config file; proceed with defaults and environment
	}
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	if cfg.Viewport.Width <= 0 || cfg.Viewport.Height <= 0 {
		return nil, errors.Errorf("invalid viewport %gx%g", cfg.Viewport.Width, cfg.Viewport.Height)
	}
	switch cfg.Output.Format {
	case "text", "json":
	default:
		return nil, errors.Errorf("unknown output format %q", cfg.Output.Format)
	}
	switch cfg.Output.Dump {
	case "", "styles", "boxes", "dot":
	default:
		return nil, errors.Errorf("unknown dump %q", cfg.Output.Dump)
	}
	return cfg, nil
}

// newLogger creates a console logger writing to w.
func newLogger(level string, w zapcore.WriteSyncer) *zap.Logger {
	lvl := zap.NewAtomicLevel()
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl.SetLevel(zap.WarnLevel)
	}
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), w, lvl)
	return zap.New(core).Named("domrender")
}
