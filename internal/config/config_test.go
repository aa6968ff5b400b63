package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hand_config.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

const minimalConfig = `
MQTT_BROKER=tcp://localhost:1883
TELEMETRY_HOST=127.0.0.1
TELEMETRY_PORT=9401
`

func TestLoadMinimalAppliesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimalConfig))
	require.NoError(t, err)

	assert.Equal(t, "mock", cfg.TrackingSource)
	assert.Equal(t, "Right", cfg.TrackingSide)
	assert.Equal(t, 10, cfg.TelemetryMinInterval)
	assert.Equal(t, 40.0, cfg.BendThreshold)
	assert.Equal(t, 4, cfg.ClosureThreshold)
	assert.Equal(t, 10, cfg.SampleInterval)
	assert.Equal(t, "hand/wrist", cfg.TopicWrist)
	assert.Equal(t, 8080, cfg.WebServerPort)
}

func TestLoadFullConfig(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
# full configuration
TRACKING_SOURCE=serial
TRACKING_SIDE=Left
TRACKING_SERIAL_PORT=/dev/ttyUSB0
TRACKING_BAUD_RATE=921600
TELEMETRY_HOST=10.0.0.5
TELEMETRY_PORT=9500
TELEMETRY_MIN_INTERVAL=20
BEND_THRESHOLD=35.5
CLOSURE_THRESHOLD=3
SAMPLE_INTERVAL=5
MQTT_BROKER=tcp://broker:1883
MQTT_CLIENT_ID_PRODUCER=test-producer
TOPIC_POSE=test/fist
WEB_SERVER_PORT=9090
`))
	require.NoError(t, err)

	assert.Equal(t, "serial", cfg.TrackingSource)
	assert.Equal(t, "Left", cfg.TrackingSide)
	assert.Equal(t, "/dev/ttyUSB0", cfg.TrackingSerialPort)
	assert.Equal(t, 921600, cfg.TrackingBaudRate)
	assert.Equal(t, "10.0.0.5", cfg.TelemetryHost)
	assert.Equal(t, 9500, cfg.TelemetryPort)
	assert.Equal(t, 20, cfg.TelemetryMinInterval)
	assert.Equal(t, 35.5, cfg.BendThreshold)
	assert.Equal(t, 3, cfg.ClosureThreshold)
	assert.Equal(t, 5, cfg.SampleInterval)
	assert.Equal(t, "test-producer", cfg.MQTTClientIDProducer)
	assert.Equal(t, "test/fist", cfg.TopicPose)
	assert.Equal(t, 9090, cfg.WebServerPort)
}

func TestLoadRejectsUnknownKey(t *testing.T) {
	_, err := Load(writeConfig(t, minimalConfig+"BOGUS_KEY=1\n"))
	assert.ErrorContains(t, err, "unknown config key")
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := []struct {
		name string
		line string
	}{
		{"bad source", "TRACKING_SOURCE=webcam"},
		{"bad side", "TRACKING_SIDE=Middle"},
		{"bad port", "TELEMETRY_PORT=70000"},
		{"bad bend threshold", "BEND_THRESHOLD=200"},
		{"bad closure threshold", "CLOSURE_THRESHOLD=6"},
		{"zero sample interval", "SAMPLE_INTERVAL=0"},
		{"not a number", "TRACKING_BAUD_RATE=fast"},
		{"missing equals", "TELEMETRY_MIN_INTERVAL"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, minimalConfig+tc.line+"\n"))
			assert.Error(t, err)
		})
	}
}

func TestLoadRequiredFields(t *testing.T) {
	_, err := Load(writeConfig(t, "TELEMETRY_HOST=127.0.0.1\nTELEMETRY_PORT=9401\n"))
	assert.ErrorContains(t, err, "MQTT_BROKER is required")

	_, err = Load(writeConfig(t, "MQTT_BROKER=tcp://localhost:1883\nTELEMETRY_PORT=9401\n"))
	assert.ErrorContains(t, err, "TELEMETRY_HOST is required")

	_, err = Load(writeConfig(t, minimalConfig+"TRACKING_SOURCE=serial\n"))
	assert.ErrorContains(t, err, "TRACKING_SERIAL_PORT is required")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}
