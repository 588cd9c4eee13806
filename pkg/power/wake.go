package power

import (
	"fmt"
	"net"

	"github.com/mdlayher/wol"
)

// defaultBroadcast reaches every machine on the local segment, port 9 is the
// conventional discard port magic packets go to
const defaultBroadcast = "255.255.255.255:9"

// MagicPacket wakes machines by broadcasting a wake-on-lan packet
type MagicPacket struct {
	broadcast string
}

// NewMagicPacket creates a waker targeting broadcast, empty means the global
// broadcast address on port 9
func NewMagicPacket(broadcast string) *MagicPacket {
	if broadcast == "" {
		broadcast = defaultBroadcast
	}
	return &MagicPacket{broadcast: broadcast}
}

// Wake sends the magic packet for mac
func (m *MagicPacket) Wake(mac string) error {
	target, err := net.ParseMAC(mac)
	if err != nil {
		return fmt.Errorf("parse mac %q: %w", mac, err)
	}

	client, err := wol.NewClient()
	if err != nil {
		return fmt.Errorf("create wol client: %w", err)
	}
	defer client.Close()

	if err := client.Wake(m.broadcast, target); err != nil {
		return fmt.Errorf("send magic packet to %s: %w", mac, err)
	}
	return nil
}
