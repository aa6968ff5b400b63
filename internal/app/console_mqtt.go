package app

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/relabs-tech/hand_computer/internal/config"
	"github.com/relabs-tech/hand_computer/internal/hand"
)

// RunConsoleMQTT subscribes to the hand telemetry topics and
// pretty-prints every sample.
func RunConsoleMQTT() error {
	cfg := config.Get()

	opts := mqtt.NewClientOptions().
		AddBroker(cfg.MQTTBroker).
		SetClientID(cfg.MQTTClientIDConsole)

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return token.Error()
	}
	log.Printf("console: connected to MQTT broker at %s", cfg.MQTTBroker)

	// Subscribe to wrist pose
	wristToken := client.Subscribe(cfg.TopicWrist, 0, func(_ mqtt.Client, msg mqtt.Message) {
		var w hand.Wrist
		if err := json.Unmarshal(msg.Payload(), &w); err != nil {
			log.Printf("console: wrist unmarshal error: %v", err)
			return
		}

		fmt.Printf(
			"[WRIST] x=%7.3f y=%7.3f z=%7.3f  roll=%7.2f pitch=%7.2f yaw=%7.2f\n",
			w.Position.X, w.Position.Y, w.Position.Z,
			w.Euler.Roll, w.Euler.Pitch, w.Euler.Yaw,
		)
	})
	wristToken.Wait()
	if wristToken.Error() != nil {
		return wristToken.Error()
	}
	log.Printf("console: subscribed to %s", cfg.TopicWrist)

	// Subscribe to joint angles
	handToken := client.Subscribe(cfg.TopicHand, 0, func(_ mqtt.Client, msg mqtt.Message) {
		var f hand.Frame
		if err := json.Unmarshal(msg.Payload(), &f); err != nil {
			log.Printf("console: frame unmarshal error: %v", err)
			return
		}

		fmt.Printf(
			"[HAND]  T=%6.1f/%6.1f/%6.1f/%6.1f  I=%6.1f/%6.1f/%6.1f  M=%6.1f/%6.1f/%6.1f  R=%6.1f/%6.1f/%6.1f  P=%6.1f/%6.1f/%6.1f\n",
			f.Thumb[0], f.Thumb[1], f.Thumb[2], f.Thumb[3],
			f.Index[0], f.Index[1], f.Index[2],
			f.Middle[0], f.Middle[1], f.Middle[2],
			f.Ring[0], f.Ring[1], f.Ring[2],
			f.Pinky[0], f.Pinky[1], f.Pinky[2],
		)
	})
	handToken.Wait()
	if handToken.Error() != nil {
		return handToken.Error()
	}
	log.Printf("console: subscribed to %s", cfg.TopicHand)

	// Subscribe to fist state changes
	poseToken := client.Subscribe(cfg.TopicPose, 0, func(_ mqtt.Client, msg mqtt.Message) {
		var e fistEvent
		if err := json.Unmarshal(msg.Payload(), &e); err != nil {
			log.Printf("console: fist unmarshal error: %v", err)
			return
		}

		fmt.Printf("[FIST]  %s hand: %s\n", e.Side, e.State)
	})
	poseToken.Wait()
	if poseToken.Error() != nil {
		return poseToken.Error()
	}
	log.Printf("console: subscribed to %s", cfg.TopicPose)

	// Wait for Ctrl+C
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Println("console: shutting down")
	client.Disconnect(250)
	return nil
}
