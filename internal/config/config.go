package config

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
)

// Config holds all application configuration values.
type Config struct {
	// Tracking provider
	TrackingSource     string // "mock" or "serial"
	TrackingSide       string // "Left" or "Right"
	TrackingSerialPort string
	TrackingBaudRate   int

	// Telemetry destination and pacing
	TelemetryHost        string
	TelemetryPort        int
	TelemetryMinInterval int // milliseconds between sends, scheduler gate

	// Classification
	BendThreshold    float64 // degrees; finger counts as bent above this
	ClosureThreshold int     // bent fingers at which the hand is closed

	// Timing
	SampleInterval int // milliseconds, producer tick

	// MQTT
	MQTTBroker           string
	MQTTClientIDProducer string
	MQTTClientIDConsole  string
	MQTTClientIDWeb      string

	// Topics
	TopicWrist string
	TopicHand  string
	TopicPose  string

	// Web Server
	WebServerPort int
}

// Package-level unexported variables for the singleton pattern, as
// in the rest of the relabs tooling: globalConfig is only set through
// InitGlobal and only read through Get.
var (
	globalConfig *Config
	configOnce   sync.Once
	configMu     sync.RWMutex
)

// defaults returns a Config pre-filled with every value that has a
// sensible default; Load overwrites from the file on top of it.
func defaults() *Config {
	return &Config{
		TrackingSource:       "mock",
		TrackingSide:         "Right",
		TrackingBaudRate:     115200,
		TelemetryMinInterval: 10,
		BendThreshold:        40,
		ClosureThreshold:     4,
		SampleInterval:       10,
		MQTTClientIDProducer: "hand-producer",
		MQTTClientIDConsole:  "hand-console-subscriber",
		MQTTClientIDWeb:      "hand-web-subscriber",
		TopicWrist:           "hand/wrist",
		TopicHand:            "hand/angles",
		TopicPose:            "hand/fist",
		WebServerPort:        8080,
	}
}

// Load reads the configuration file and returns a Config struct.
func Load(configPath string) (*Config, error) {
	file, err := os.Open(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	cfg := defaults()
	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Parse KEY=VALUE
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid config line %d: %q", lineNum, line)
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		if err := cfg.setValue(key, value); err != nil {
			return nil, fmt.Errorf("config line %d: %w", lineNum, err)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Validate required fields
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// setValue sets a config value based on the key.
func (c *Config) setValue(key, value string) error {
	switch key {
	// Tracking provider
	case "TRACKING_SOURCE":
		if value != "mock" && value != "serial" {
			return fmt.Errorf("TRACKING_SOURCE must be \"mock\" or \"serial\", got %q", value)
		}
		c.TrackingSource = value
	case "TRACKING_SIDE":
		if value != "Left" && value != "Right" {
			return fmt.Errorf("TRACKING_SIDE must be \"Left\" or \"Right\", got %q", value)
		}
		c.TrackingSide = value
	case "TRACKING_SERIAL_PORT":
		c.TrackingSerialPort = value
	case "TRACKING_BAUD_RATE":
		rate, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid TRACKING_BAUD_RATE %q: %w", value, err)
		}
		c.TrackingBaudRate = rate

	// Telemetry
	case "TELEMETRY_HOST":
		c.TelemetryHost = value
	case "TELEMETRY_PORT":
		port, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid TELEMETRY_PORT %q: %w", value, err)
		}
		if port < 1 || port > 65535 {
			return fmt.Errorf("TELEMETRY_PORT must be 1-65535, got %d", port)
		}
		c.TelemetryPort = port
	case "TELEMETRY_MIN_INTERVAL":
		interval, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid TELEMETRY_MIN_INTERVAL %q: %w", value, err)
		}
		if interval < 0 {
			return fmt.Errorf("TELEMETRY_MIN_INTERVAL must be >= 0, got %d", interval)
		}
		c.TelemetryMinInterval = interval

	// Classification
	case "BEND_THRESHOLD":
		deg, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid BEND_THRESHOLD %q: %w", value, err)
		}
		if deg <= 0 || deg >= 180 {
			return fmt.Errorf("BEND_THRESHOLD must be in (0,180), got %g", deg)
		}
		c.BendThreshold = deg
	case "CLOSURE_THRESHOLD":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid CLOSURE_THRESHOLD %q: %w", value, err)
		}
		if n < 1 || n > 5 {
			return fmt.Errorf("CLOSURE_THRESHOLD must be 1-5, got %d", n)
		}
		c.ClosureThreshold = n

	// Timing
	case "SAMPLE_INTERVAL":
		interval, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid SAMPLE_INTERVAL %q: %w", value, err)
		}
		if interval < 1 {
			return fmt.Errorf("SAMPLE_INTERVAL must be >= 1, got %d", interval)
		}
		c.SampleInterval = interval

	// MQTT
	case "MQTT_BROKER":
		c.MQTTBroker = value
	case "MQTT_CLIENT_ID_PRODUCER":
		c.MQTTClientIDProducer = value
	case "MQTT_CLIENT_ID_CONSOLE":
		c.MQTTClientIDConsole = value
	case "MQTT_CLIENT_ID_WEB":
		c.MQTTClientIDWeb = value

	// Topics
	case "TOPIC_WRIST":
		c.TopicWrist = value
	case "TOPIC_HAND":
		c.TopicHand = value
	case "TOPIC_POSE":
		c.TopicPose = value

	// Web Server
	case "WEB_SERVER_PORT":
		port, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid WEB_SERVER_PORT %q: %w", value, err)
		}
		c.WebServerPort = port

	default:
		return fmt.Errorf("unknown config key: %q", key)
	}

	return nil
}

// validate checks that all required fields are set.
func (c *Config) validate() error {
	if c.MQTTBroker == "" {
		return fmt.Errorf("MQTT_BROKER is required")
	}
	if c.TelemetryHost == "" {
		return fmt.Errorf("TELEMETRY_HOST is required")
	}
	if c.TelemetryPort == 0 {
		return fmt.Errorf("TELEMETRY_PORT is required")
	}
	if c.TrackingSource == "serial" && c.TrackingSerialPort == "" {
		return fmt.Errorf("TRACKING_SERIAL_PORT is required when TRACKING_SOURCE=serial")
	}
	return nil
}

// InitGlobal initializes the global configuration from file.
// Uses sync.Once to ensure this only runs once, even if called
// multiple times.
func InitGlobal(configPath string) error {
	var err error
	configOnce.Do(func() {
		configMu.Lock()
		defer configMu.Unlock()
		globalConfig, err = Load(configPath)
	})
	return err
}

// Get returns the global configuration instance. InitGlobal must be
// called first, or this will return nil.
func Get() *Config {
	configMu.RLock()
	defer configMu.RUnlock()
	return globalConfig
}
