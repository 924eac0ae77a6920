package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Fallback FallbackConfig
	UI       UIConfig
}

// FallbackConfig holds the external-editor settings.
type FallbackConfig struct {
	// Command is the editor command template; the literal token {} marks
	// where the target path goes.
	Command string
}

// UIConfig holds editor presentation settings.
type UIConfig struct {
	ShowCommitPane bool `mapstructure:"show_commit_pane"`
	UndoDepth      int  `mapstructure:"undo_depth"`
}

// Load reads configuration from file and env. Env var overrides use prefix
// REPLAN_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("fallback.command", defaultFallbackCommand())
	v.SetDefault("ui.show_commit_pane", true)
	v.SetDefault("ui.undo_depth", 100)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("REPLAN_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "replan"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("REPLAN")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.UI.UndoDepth < 1 {
		c.UI.UndoDepth = 1
	}
	return c, nil
}

// defaultFallbackCommand honors the usual editor env vars, so replan
// behaves like git's own editor selection for files it does not handle.
func defaultFallbackCommand() string {
	ed := strings.TrimSpace(os.Getenv("VISUAL"))
	if ed == "" {
		ed = strings.TrimSpace(os.Getenv("EDITOR"))
	}
	if ed == "" {
		ed = "vi"
	}
	return ed + " {}"
}
