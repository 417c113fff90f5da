package backdrop

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override, e.g. BACKDROP_VARIANT.
const EnvPrefix = "BACKDROP_"

// Config holds every tunable of a backdrop. Zero values are not usable;
// start from DefaultConfig.
type Config struct {
	Title   string `yaml:"title" env:"TITLE"`
	Width   int    `yaml:"width" env:"WIDTH"`
	Height  int    `yaml:"height" env:"HEIGHT"`
	Variant string `yaml:"variant" env:"VARIANT"`

	// Smoothing is the fraction of the remaining distance closed per tick
	// by pointer and scroll pursuit.
	Smoothing float64 `yaml:"smoothing" env:"SMOOTHING"`
	// RealTime scales spin steps by elapsed time instead of tick count.
	RealTime bool `yaml:"real_time" env:"REAL_TIME"`

	// ScrollLength is the height of the virtual page in pixels; the scroll
	// offset never exceeds it.
	ScrollLength float64 `yaml:"scroll_length" env:"SCROLL_LENGTH"`
	// ScrollStep is how many pixels one wheel notch scrolls.
	ScrollStep float64 `yaml:"scroll_step" env:"SCROLL_STEP"`

	Effects EffectConfig `yaml:"effects" envPrefix:"EFFECTS_"`

	// Seed feeds the random source for starfields and effect growth.
	Seed uint64 `yaml:"seed" env:"SEED"`

	ShowFPS       bool   `yaml:"show_fps" env:"SHOW_FPS"`
	Debug         bool   `yaml:"debug" env:"DEBUG"`
	LogLevel      string `yaml:"log_level" env:"LOG_LEVEL"`
	ScreenshotDir string `yaml:"screenshot_dir" env:"SCREENSHOT_DIR"`
}

// DefaultConfig returns the hero variant at 800x600 with the observed
// smoothing and splash constants.
func DefaultConfig() Config {
	return Config{
		Title:         "Portfolio",
		Width:         800,
		Height:        600,
		Variant:       VariantHero,
		Smoothing:     DefaultSmoothing,
		ScrollLength:  3000,
		ScrollStep:    40,
		Effects:       DefaultEffectConfig(),
		Seed:          1,
		LogLevel:      "info",
		ScreenshotDir: "screenshots",
	}
}

// LoadConfig decodes YAML from r over the defaults. An empty document
// yields the defaults.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// LoadConfigFile reads the YAML file at path (defaults when path is empty),
// applies BACKDROP_ environment overrides and validates the result.
func LoadConfigFile(path string) (Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return Config{}, fmt.Errorf("open config: %w", err)
		}
		defer f.Close()
		if cfg, err = LoadConfig(f); err != nil {
			return Config{}, err
		}
	}
	if err := cfg.ApplyEnv(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ApplyEnv overwrites fields whose BACKDROP_ variable is set.
func (c *Config) ApplyEnv() error {
	if err := env.ParseWithOptions(c, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate reports the first field outside its allowed range.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("config: window size %dx%d must be positive", c.Width, c.Height)
	case !(c.Smoothing > 0 && c.Smoothing <= 1):
		return fmt.Errorf("config: smoothing %v must be in (0, 1]", c.Smoothing)
	case c.ScrollLength < 0:
		return fmt.Errorf("config: scroll_length %v must not be negative", c.ScrollLength)
	case c.Effects.MaxEffects <= 0:
		return fmt.Errorf("config: effects.max_effects %d must be positive", c.Effects.MaxEffects)
	case !(c.Effects.Decay > 0 && c.Effects.Decay <= 1):
		return fmt.Errorf("config: effects.decay %v must be in (0, 1]", c.Effects.Decay)
	case c.Effects.Growth.Min > c.Effects.Growth.Max:
		return fmt.Errorf("config: effects.growth min %v exceeds max %v",
			c.Effects.Growth.Min, c.Effects.Growth.Max)
	}
	if _, ok := variants[c.Variant]; !ok {
		return fmt.Errorf("config: %w: %q", ErrUnknownVariant, c.Variant)
	}
	return nil
}
