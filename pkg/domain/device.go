package domain

// Device represents a controllable home PC: pinged for liveness, woken over
// the LAN by MAC address, shut down over SSH.
type Device struct {
	Name    string
	Host    string
	MAC     string
	SSHUser string
}
