package config

import "time"

// AppConfig is the root application config
type AppConfig struct {
	Display DisplayConfig `json:"display" yaml:"display" toml:"display"`
	Scenes  ScenesConfig  `json:"scenes" yaml:"scenes" toml:"scenes"`
	Fade    FadeConfig    `json:"fade" yaml:"fade" toml:"fade"`
	Warp    WarpConfig    `json:"warp" yaml:"warp" toml:"warp"`
	Debug   bool          `json:"debug" yaml:"debug" toml:"debug"`
}

type DisplayConfig struct {
	ScreenWidth  int    `json:"screenWidth" yaml:"screenWidth" toml:"screenWidth"`
	ScreenHeight int    `json:"screenHeight" yaml:"screenHeight" toml:"screenHeight"`
	Scale        int    `json:"scale" yaml:"scale" toml:"scale"`
	Framerate    int    `json:"framerate" yaml:"framerate" toml:"framerate"`
	Title        string `json:"title" yaml:"title" toml:"title"`
}

// ScenesConfig configures the scene manager
type ScenesConfig struct {
	MinChangeIntervalMs int  `json:"minChangeIntervalMs" yaml:"minChangeIntervalMs" toml:"minChangeIntervalMs"`
	Overlap             bool `json:"overlap" yaml:"overlap" toml:"overlap"`
	// Start is the name of the first scene; empty means the first added
	Start            string `json:"start" yaml:"start" toml:"start"`
	StartImmediately bool   `json:"startImmediately" yaml:"startImmediately" toml:"startImmediately"`
	// BoxesDurationMs is how long the Boxes scene runs before moving on
	BoxesDurationMs int `json:"boxesDurationMs" yaml:"boxesDurationMs" toml:"boxesDurationMs"`
}

// FadeConfig configures scene fades
type FadeConfig struct {
	InMs  int    `json:"inMs" yaml:"inMs" toml:"inMs"`
	OutMs int    `json:"outMs" yaml:"outMs" toml:"outMs"`
	Ease  string `json:"ease" yaml:"ease" toml:"ease"` // e.g. "linear", "inOutQuad"
}

// WarpConfig configures the quad warp
type WarpConfig struct {
	Enabled      bool   `json:"enabled" yaml:"enabled" toml:"enabled"`
	SettingsFile string `json:"settingsFile" yaml:"settingsFile" toml:"settingsFile"`
	GridCols     int    `json:"gridCols" yaml:"gridCols" toml:"gridCols"`
	GridRows     int    `json:"gridRows" yaml:"gridRows" toml:"gridRows"`
	// Watch reloads the settings file when it changes on disk
	Watch bool `json:"watch" yaml:"watch" toml:"watch"`
}

// MinChangeInterval returns the scene change debounce
func (c ScenesConfig) MinChangeInterval() time.Duration {
	return time.Duration(c.MinChangeIntervalMs) * time.Millisecond
}

// BoxesDuration returns the Boxes scene run time
func (c ScenesConfig) BoxesDuration() time.Duration {
	return time.Duration(c.BoxesDurationMs) * time.Millisecond
}

// In returns the fade in duration
func (c FadeConfig) In() time.Duration {
	return time.Duration(c.InMs) * time.Millisecond
}

// Out returns the fade out duration
func (c FadeConfig) Out() time.Duration {
	return time.Duration(c.OutMs) * time.Millisecond
}
