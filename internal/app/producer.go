// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package app

import (
	"encoding/json"
	"log"
	"net"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/relabs-tech/hand_computer/internal/config"
	"github.com/relabs-tech/hand_computer/internal/hand"
	"github.com/relabs-tech/hand_computer/internal/logsink"
	"github.com/relabs-tech/hand_computer/internal/skeleton"
	"github.com/relabs-tech/hand_computer/internal/telemetry"
	"github.com/relabs-tech/hand_computer/internal/tracking"
)

// fistEvent is the MQTT payload for a pose state change.
type fistEvent struct {
	Side  string `json:"side"`
	State string `json:"state"`
}

// RunHandProducer runs the tracking -> angles -> telemetry pipeline:
// UDP text datagrams for external consumers, JSON over MQTT for the
// console and web subscribers.
func RunHandProducer() error {
	log.Println("starting hand-computer telemetry producer")

	cfg := config.Get()
	sink := logsink.NewCollector(true)

	// --- Tracking provider (mock vs serial glove bridge) ---
	var provider tracking.Provider
	switch cfg.TrackingSource {
	case "serial":
		sp, err := tracking.NewSerialProvider(cfg.TrackingSide, cfg.TrackingSerialPort, uint(cfg.TrackingBaudRate), sink)
		if err != nil {
			log.Printf("failed to open tracking serial source: %v", err)
			return err
		}
		defer sp.Close()
		provider = sp
		log.Printf("using serial tracking source on %s", cfg.TrackingSerialPort)
	default:
		provider = tracking.NewMockProvider(cfg.TrackingSide)
		log.Println("using mock tracking source")
	}

	// --- Pipeline ---
	pipeline, err := buildPipeline(cfg, provider, sink)
	if err != nil {
		log.Printf("failed to build pipeline: %v", err)
		return err
	}
	// Close is idempotent, so the defer also covers early returns
	// after a partial start.
	defer pipeline.Close()

	// --- connect to MQTT ---
	opts := mqtt.NewClientOptions().
		AddBroker(cfg.MQTTBroker).
		SetClientID(cfg.MQTTClientIDProducer)

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		log.Printf("MQTT connect error: %v", token.Error())
		return token.Error()
	}
	defer client.Disconnect(250)

	log.Println("connected to MQTT, starting pipeline loop")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	// Track previous tick time for the scheduler gate
	var lastTickTime time.Time

	ticker := time.NewTicker(time.Duration(cfg.SampleInterval) * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-sigCh:
			log.Println("producer: shutting down")
			return nil

		case t := <-ticker.C:
			var deltaTime float64
			if lastTickTime.IsZero() {
				deltaTime = float64(cfg.SampleInterval) / 1000.0
			} else {
				deltaTime = t.Sub(lastTickTime).Seconds()
			}
			lastTickTime = t

			res := pipeline.Process(deltaTime)
			if res == nil {
				continue
			}

			publishResult(client, cfg, res)
		}
	}
}

// buildPipeline wires the extractor, classifier, and the two UDP
// broadcasters for one hand.
func buildPipeline(cfg *config.Config, provider tracking.Provider, sink *logsink.Collector) (*hand.Pipeline, error) {
	table, err := skeleton.NewTable()
	if err != nil {
		return nil, err
	}

	addr := net.JoinHostPort(cfg.TelemetryHost, strconv.Itoa(cfg.TelemetryPort))

	anglesOut, err := telemetry.NewUDP("hand telemetry", addr, telemetry.FailOpen, sink)
	if err != nil {
		return nil, err
	}

	poseOut, err := telemetry.NewUDP("fist telemetry", addr, telemetry.FailStop, sink)
	if err != nil {
		anglesOut.Close()
		return nil, err
	}

	extractor := hand.NewExtractor(table, sink)
	classifier := hand.NewClassifier(cfg.BendThreshold, cfg.ClosureThreshold, sink)
	minInterval := float64(cfg.TelemetryMinInterval) / 1000.0

	return hand.NewPipeline(provider, extractor, classifier, anglesOut, poseOut, minInterval, sink), nil
}

// publishResult mirrors the datagram stream onto MQTT as JSON.
func publishResult(client mqtt.Client, cfg *config.Config, res *hand.Result) {
	if res.Wrist != nil {
		if payload, err := json.Marshal(res.Wrist); err != nil {
			log.Printf("json marshal error (wrist): %v", err)
		} else if token := client.Publish(cfg.TopicWrist, 0, true, payload); token.Wait() && token.Error() != nil {
			log.Printf("MQTT publish error (wrist): %v", token.Error())
		}
	}

	if res.Frame != nil {
		if payload, err := json.Marshal(res.Frame); err != nil {
			log.Printf("json marshal error (hand): %v", err)
		} else if token := client.Publish(cfg.TopicHand, 0, true, payload); token.Wait() && token.Error() != nil {
			log.Printf("MQTT publish error (hand): %v", token.Error())
		}
	}

	if res.StateChanged {
		event := fistEvent{Side: cfg.TrackingSide, State: res.State.String()}
		if payload, err := json.Marshal(event); err != nil {
			log.Printf("json marshal error (fist): %v", err)
		} else if token := client.Publish(cfg.TopicPose, 0, true, payload); token.Wait() && token.Error() != nil {
			log.Printf("MQTT publish error (fist): %v", token.Error())
		}
	}
}
