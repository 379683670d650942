package tenfoot

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/orbitview/tenfoot/pkg/tenfoot/internal"
)

// Config is the on-disk tuning overlay for deployments that can't rebuild:
// zoom feel, focus repeat cadence, log level, and the remote device path.
type Config struct {
	BaseZoomSpeed       float64 `toml:"base_zoom_speed"`
	MaxZoomAcceleration float64 `toml:"max_zoom_acceleration"`
	RepeatDelayMS       int     `toml:"repeat_delay_ms"`
	RepeatIntervalMS    int     `toml:"repeat_interval_ms"`
	LogLevel            string  `toml:"log_level"`
	RemoteDevice        string  `toml:"remote_device"`
}

func LoadConfig(path string) (Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}
	return cfg, nil
}

func LoadConfigBytes(data []byte) (Config, error) {
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}

// Apply overlays the set fields onto opts. Zero values leave opts untouched.
// A set log_level takes effect immediately on the engine logger.
func (c Config) Apply(opts *Options) {
	if c.BaseZoomSpeed > 0 {
		opts.BaseZoomSpeed = c.BaseZoomSpeed
	}
	if c.MaxZoomAcceleration >= 1 {
		opts.MaxZoomAcceleration = c.MaxZoomAcceleration
	}
	if c.RepeatDelayMS > 0 {
		opts.RepeatDelay = time.Duration(c.RepeatDelayMS) * time.Millisecond
	}
	if c.RepeatIntervalMS > 0 {
		opts.RepeatInterval = time.Duration(c.RepeatIntervalMS) * time.Millisecond
	}
	if c.LogLevel != "" {
		internal.SetRawLogLevel(c.LogLevel)
	}
}

// ApplyRun overlays the set fields onto the event-pump options.
func (c Config) ApplyRun(runOpts *RunOptions) {
	if c.RemoteDevice != "" {
		runOpts.RemoteDevice = c.RemoteDevice
	}
}
