package base

import (
	"fmt"
	"log/slog"

	"github.com/MobRulesGames/vrtex/logging"
	"github.com/MobRulesGames/vrtex/texture"
)

const (
	BackendLegacy = "legacy"
	BackendMobile = "mobile"
)

type WindowConfig struct {
	Dx int `json:"dx"`
	Dy int `json:"dy"`
}

type Config struct {
	// Which gles.Device to drive; "legacy" for desktop GL through glop,
	// "mobile" for x/mobile's GLES context.
	Backend string `json:"backend"`

	LogLevel      string       `json:"log_level"`
	CheckGlErrors bool         `json:"check_gl_errors"`
	FlipVertical  bool         `json:"flip_vertical"`
	Window        WindowConfig `json:"window"`
}

func DefaultConfig() Config {
	return Config{
		Backend:       BackendLegacy,
		LogLevel:      "info",
		CheckGlErrors: true,
		Window: WindowConfig{
			Dx: 1024,
			Dy: 750,
		},
	}
}

// LoadConfig overlays the json at 'path' on DefaultConfig. Keys missing from
// the file keep their defaults.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()
	err := LoadJson(path, &config)
	if err != nil {
		return Config{}, fmt.Errorf("couldn't load config %q: %w", path, err)
	}
	err = config.Validate()
	if err != nil {
		return Config{}, fmt.Errorf("bad config %q: %w", path, err)
	}
	return config, nil
}

func (c Config) Validate() error {
	switch c.Backend {
	case BackendLegacy, BackendMobile:
	default:
		return fmt.Errorf("unknown backend %q", c.Backend)
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	if c.Window.Dx <= 0 || c.Window.Dy <= 0 {
		return fmt.Errorf("window must have a positive size, got %dx%d", c.Window.Dx, c.Window.Dy)
	}
	return nil
}

func (c Config) SlogLevel() (slog.Level, error) {
	switch c.LogLevel {
	case "trace":
		return logging.LevelTrace, nil
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("unknown log level %q", c.LogLevel)
}

func (c Config) TextureOptions() texture.Options {
	return texture.Options{
		CheckErrors:  c.CheckGlErrors,
		FlipVertical: c.FlipVertical,
	}
}
