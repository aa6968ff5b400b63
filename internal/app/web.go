package app

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/gorilla/websocket"

	"github.com/relabs-tech/hand_computer/internal/config"
	"github.com/relabs-tech/hand_computer/internal/hand"
)

// handSnapshot is the latest data the web server serves.
type handSnapshot struct {
	Wrist *hand.Wrist `json:"wrist,omitempty"`
	Frame *hand.Frame `json:"frame,omitempty"`
	State string      `json:"state,omitempty"`
}

// wsHub pushes every update to all connected websocket clients.
type wsHub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]bool
}

func newWSHub() *wsHub {
	return &wsHub{clients: make(map[*websocket.Conn]bool)}
}

func (h *wsHub) add(c *websocket.Conn) {
	h.mu.Lock()
	h.clients[c] = true
	h.mu.Unlock()
}

func (h *wsHub) broadcast(payload []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for c := range h.clients {
		if err := c.WriteMessage(websocket.TextMessage, payload); err != nil {
			log.Printf("web: websocket write error, dropping client: %v", err)
			c.Close()
			delete(h.clients, c)
		}
	}
}

// RunWeb serves the latest hand sample over HTTP and a websocket
// live feed, fed from the MQTT topics.
func RunWeb() error {
	cfg := config.Get()

	var (
		mu     sync.RWMutex
		latest handSnapshot
	)
	hub := newWSHub()

	push := func() {
		mu.RLock()
		payload, err := json.Marshal(latest)
		mu.RUnlock()
		if err != nil {
			log.Printf("web: json marshal error: %v", err)
			return
		}
		hub.broadcast(payload)
	}

	// 1) Connect to MQTT broker
	opts := mqtt.NewClientOptions().
		AddBroker(cfg.MQTTBroker).
		SetClientID(cfg.MQTTClientIDWeb)

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return token.Error()
	}
	log.Printf("web: connected to MQTT broker at %s", cfg.MQTTBroker)

	// 2) Subscribe and update the snapshot on each message
	subscriptions := []struct {
		topic   string
		handler mqtt.MessageHandler
	}{
		{cfg.TopicWrist, func(_ mqtt.Client, msg mqtt.Message) {
			var w hand.Wrist
			if err := json.Unmarshal(msg.Payload(), &w); err != nil {
				log.Printf("web: wrist unmarshal error: %v", err)
				return
			}
			mu.Lock()
			latest.Wrist = &w
			mu.Unlock()
			push()
		}},
		{cfg.TopicHand, func(_ mqtt.Client, msg mqtt.Message) {
			var f hand.Frame
			if err := json.Unmarshal(msg.Payload(), &f); err != nil {
				log.Printf("web: frame unmarshal error: %v", err)
				return
			}
			mu.Lock()
			latest.Frame = &f
			mu.Unlock()
			push()
		}},
		{cfg.TopicPose, func(_ mqtt.Client, msg mqtt.Message) {
			var e fistEvent
			if err := json.Unmarshal(msg.Payload(), &e); err != nil {
				log.Printf("web: fist unmarshal error: %v", err)
				return
			}
			mu.Lock()
			latest.State = e.State
			mu.Unlock()
			push()
		}},
	}

	for _, sub := range subscriptions {
		token := client.Subscribe(sub.topic, 0, sub.handler)
		token.Wait()
		if token.Error() != nil {
			return token.Error()
		}
		log.Printf("web: subscribed to %s", sub.topic)
	}

	// 3) JSON API endpoint: latest sample
	http.HandleFunc("/api/hand", func(w http.ResponseWriter, r *http.Request) {
		mu.RLock()
		defer mu.RUnlock()

		if latest.Wrist == nil && latest.Frame == nil && latest.State == "" {
			http.Error(w, "no data yet", http.StatusServiceUnavailable)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(latest); err != nil {
			log.Printf("web: json encode error: %v", err)
		}
	})

	// 4) Websocket live feed
	upgrader := websocket.Upgrader{}
	http.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("web: websocket upgrade error: %v", err)
			return
		}
		hub.add(conn)
	})

	// 5) Static files from ./web as the root
	fs := http.FileServer(http.Dir("web"))
	http.Handle("/", fs)

	addr := fmt.Sprintf(":%d", cfg.WebServerPort)
	log.Printf("web server listening on %s", addr)
	return http.ListenAndServe(addr, nil)
}
