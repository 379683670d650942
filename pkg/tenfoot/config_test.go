package tenfoot

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigBytes(t *testing.T) {
	cfg, err := LoadConfigBytes([]byte(`
base_zoom_speed = 0.25
max_zoom_acceleration = 8.0
repeat_delay_ms = 200
repeat_interval_ms = 40
log_level = "debug"
remote_device = "/dev/input/event3"
`))
	require.NoError(t, err)
	assert.Equal(t, 0.25, cfg.BaseZoomSpeed)
	assert.Equal(t, 8.0, cfg.MaxZoomAcceleration)
	assert.Equal(t, "/dev/input/event3", cfg.RemoteDevice)

	opts := DefaultOptions(&fakeCamera{})
	cfg.Apply(&opts)
	assert.Equal(t, 0.25, opts.BaseZoomSpeed)
	assert.Equal(t, 8.0, opts.MaxZoomAcceleration)
	assert.Equal(t, 200*time.Millisecond, opts.RepeatDelay)
	assert.Equal(t, 40*time.Millisecond, opts.RepeatInterval)
}

func TestLoadConfigBytesInvalid(t *testing.T) {
	_, err := LoadConfigBytes([]byte(`base_zoom_speed = "fast"`))
	assert.Error(t, err)
}

func TestConfigApplyRun(t *testing.T) {
	runOpts := RunOptions{RemoteDevice: "auto"}
	Config{RemoteDevice: "/dev/input/event7"}.ApplyRun(&runOpts)
	assert.Equal(t, "/dev/input/event7", runOpts.RemoteDevice)

	Config{}.ApplyRun(&runOpts)
	assert.Equal(t, "/dev/input/event7", runOpts.RemoteDevice, "unset field leaves the device alone")
}

func TestConfigApplyLeavesUnsetFields(t *testing.T) {
	opts := DefaultOptions(&fakeCamera{})
	base := opts

	Config{}.Apply(&opts)
	assert.Equal(t, base.BaseZoomSpeed, opts.BaseZoomSpeed)
	assert.Equal(t, base.MaxZoomAcceleration, opts.MaxZoomAcceleration)
	assert.Equal(t, base.RepeatDelay, opts.RepeatDelay)
}
