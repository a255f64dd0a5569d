package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// DefaultFile is the config file the demo looks for
const DefaultFile = "app.json"

// Default returns the built-in configuration
func Default() *AppConfig {
	return &AppConfig{
		Display: DisplayConfig{
			ScreenWidth:  800,
			ScreenHeight: 600,
			Scale:        1,
			Framerate:    60,
			Title:        "App Utils Demo",
		},
		Scenes: ScenesConfig{
			MinChangeIntervalMs: 100,
			Start:               "Lines",
			StartImmediately:    true,
			BoxesDurationMs:     10000,
		},
		Fade: FadeConfig{
			InMs:  5000,
			OutMs: 5000,
			Ease:  "linear",
		},
		Warp: WarpConfig{
			Enabled:      true,
			SettingsFile: "quadWarper.xml",
			GridCols:     16,
			GridRows:     16,
		},
	}
}

// Loader loads application configuration using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// Load reads name on top of the defaults. The decoder is picked from the
// extension: .json, .yaml/.yml or .toml. Fields missing from the file keep
// their default values.
func (l *Loader) Load(name string) (*AppConfig, error) {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}

	cfg := Default()
	if err := decode(name, data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", name, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", name, err)
	}

	return cfg, nil
}

func decode(name string, data []byte, cfg *AppConfig) error {
	switch ext := strings.ToLower(path.Ext(name)); ext {
	case ".json":
		return json.Unmarshal(data, cfg)
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, cfg)
	case ".toml":
		return toml.Unmarshal(data, cfg)
	default:
		return fmt.Errorf("unsupported config format %q", ext)
	}
}

// Validate reports every invalid field
func (c *AppConfig) Validate() error {
	var errs []error
	if c.Display.ScreenWidth <= 0 || c.Display.ScreenHeight <= 0 {
		errs = append(errs, fmt.Errorf("display size must be positive, got %dx%d",
			c.Display.ScreenWidth, c.Display.ScreenHeight))
	}
	if c.Display.Scale <= 0 {
		errs = append(errs, fmt.Errorf("display scale must be positive, got %d", c.Display.Scale))
	}
	if c.Display.Framerate <= 0 {
		errs = append(errs, fmt.Errorf("framerate must be positive, got %d", c.Display.Framerate))
	}
	if c.Scenes.MinChangeIntervalMs < 0 {
		errs = append(errs, errors.New("scenes.minChangeIntervalMs must not be negative"))
	}
	if c.Fade.InMs < 0 || c.Fade.OutMs < 0 {
		errs = append(errs, errors.New("fade durations must not be negative"))
	}
	if c.Warp.GridCols < 1 || c.Warp.GridRows < 1 {
		errs = append(errs, fmt.Errorf("warp grid must be at least 1x1, got %dx%d",
			c.Warp.GridCols, c.Warp.GridRows))
	}
	return errors.Join(errs...)
}
