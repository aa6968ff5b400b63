package app

import (
	"fmt"
	"log"
	"net"
	"strconv"

	"github.com/relabs-tech/hand_computer/internal/config"
)

// RunConsole binds the telemetry UDP port and prints every received
// line — the consumer's view of the wire format.
func RunConsole() error {
	cfg := config.Get()

	addr := net.JoinHostPort("", strconv.Itoa(cfg.TelemetryPort))
	conn, err := net.ListenPacket("udp", addr)
	if err != nil {
		return fmt.Errorf("console: listen udp %s: %w", addr, err)
	}
	defer conn.Close()
	log.Printf("console: listening for telemetry datagrams on %s", addr)

	buf := make([]byte, 2048)
	for {
		n, _, err := conn.ReadFrom(buf)
		if err != nil {
			log.Printf("console: read error: %v", err)
			return err
		}
		fmt.Printf("%s\n", buf[:n])
	}
}
