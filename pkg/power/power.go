// Package power controls home machines: liveness over ping, wake over lan,
// shutdown over ssh. Pending actions survive restarts in a small json state
// file so a booting machine is not woken twice.
package power

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/homedeck/homedeck/pkg/config"
	"github.com/homedeck/homedeck/pkg/domain"
)

// ErrUnknownDevice is returned for device names outside the configured list
var ErrUnknownDevice = errors.New("unknown device")

//go:generate moq -out mocks/pinger.go -pkg mocks -skip-ensure -fmt goimports . Pinger
//go:generate moq -out mocks/waker.go -pkg mocks -skip-ensure -fmt goimports . Waker
//go:generate moq -out mocks/commander.go -pkg mocks -skip-ensure -fmt goimports . Commander

// Pinger answers whether a host responds to a single echo probe
type Pinger interface {
	Online(ctx context.Context, host string) bool
}

// Waker sends a wake-on-lan magic packet to the given mac address
type Waker interface {
	Wake(mac string) error
}

// Commander runs a command on a remote host over ssh
type Commander interface {
	Run(ctx context.Context, user, host, command string) (string, error)
}

// pending actions as stored in the state file
const (
	ActionBooting  = "booting"
	ActionShutdown = "shutdown"
)

const shutdownCommand = "sudo shutdown -h now"

// DeviceStatus is the dashboard view of one machine. Remaining counts the
// seconds left in the current action window.
type DeviceStatus struct {
	Name      string `json:"name"`
	Host      string `json:"host"`
	Online    bool   `json:"online"`
	Action    string `json:"action,omitempty"`
	Remaining int    `json:"remaining,omitempty"`
}

// Manager drives the configured devices. A wake enters a booting window that
// clears as soon as the machine answers pings, a shutdown enters a fixed
// cool-down window. Windows also clear on timeout or an explicit reset.
type Manager struct {
	devices        []domain.Device
	pinger         Pinger
	waker          Waker
	commander      Commander
	store          *stateStore
	bootWindow     time.Duration
	shutdownWindow time.Duration

	nowFn func() time.Time
}

// NewManager creates a manager over devices. Zero windows default to 120s for
// boot and 10s for shutdown, an empty state file path defaults to
// pc_state.json in the working directory.
func NewManager(devices []domain.Device, pinger Pinger, waker Waker, commander Commander, cfg config.PowerConfig) *Manager {
	if cfg.StateFile == "" {
		cfg.StateFile = "pc_state.json"
	}
	if cfg.BootTimeout == 0 {
		cfg.BootTimeout = 120 * time.Second
	}
	if cfg.ShutdownTimeout == 0 {
		cfg.ShutdownTimeout = 10 * time.Second
	}

	return &Manager{
		devices:        devices,
		pinger:         pinger,
		waker:          waker,
		commander:      commander,
		store:          newStateStore(cfg.StateFile),
		bootWindow:     cfg.BootTimeout,
		shutdownWindow: cfg.ShutdownTimeout,
		nowFn:          time.Now,
	}
}

// Devices returns the configured device list
func (m *Manager) Devices() []domain.Device {
	return m.devices
}

// Status probes one device and reconciles its pending action. A booting
// device that answers the probe has its action cleared right away, expired
// windows clear too.
func (m *Manager) Status(ctx context.Context, dev domain.Device) DeviceStatus {
	online := m.pinger.Online(ctx, dev.Host)
	status := DeviceStatus{Name: dev.Name, Host: dev.Host, Online: online}

	action, started := m.store.get(dev.Name)
	elapsed := m.nowFn().Sub(started)

	switch action {
	case ActionBooting:
		if online {
			m.clearAction(dev.Name)
			return status
		}
		if elapsed > m.bootWindow {
			lgr.Printf("[WARN] %s: booting timed out after %v", dev.Name, m.bootWindow)
			m.clearAction(dev.Name)
			return status
		}
		status.Action = ActionBooting
		status.Remaining = int((m.bootWindow - elapsed) / time.Second)
	case ActionShutdown:
		if elapsed > m.shutdownWindow {
			m.clearAction(dev.Name)
			return status
		}
		status.Action = ActionShutdown
		status.Remaining = int((m.shutdownWindow - elapsed) / time.Second)
	}
	return status
}

// Statuses probes all devices in parallel
func (m *Manager) Statuses(ctx context.Context) []DeviceStatus {
	statuses := make([]DeviceStatus, len(m.devices))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(8)
	for i, dev := range m.devices {
		g.Go(func() error {
			statuses[i] = m.Status(ctx, dev)
			return nil
		})
	}
	_ = g.Wait() // probes never fail, they report offline
	return statuses
}

// Wake sends the magic packet and opens the booting window
func (m *Manager) Wake(name string) error {
	dev, err := m.device(name)
	if err != nil {
		return err
	}
	if dev.MAC == "" {
		return fmt.Errorf("device %s has no mac address configured", name)
	}

	if err := m.waker.Wake(dev.MAC); err != nil {
		return fmt.Errorf("wake %s: %w", name, err)
	}
	if err := m.store.set(name, ActionBooting, m.nowFn()); err != nil {
		lgr.Printf("[WARN] failed to persist booting state for %s: %v", name, err)
	}
	lgr.Printf("[INFO] magic packet sent to %s (%s)", name, dev.MAC)
	return nil
}

// Shutdown halts the device over ssh and opens the shutdown window. The
// window is not entered when the command fails, so the buttons stay usable.
func (m *Manager) Shutdown(ctx context.Context, name string) error {
	dev, err := m.device(name)
	if err != nil {
		return err
	}
	if dev.SSHUser == "" {
		return fmt.Errorf("device %s has no ssh user configured", name)
	}

	if _, err := m.commander.Run(ctx, dev.SSHUser, dev.Host, shutdownCommand); err != nil {
		return fmt.Errorf("shutdown %s: %w", name, err)
	}
	if err := m.store.set(name, ActionShutdown, m.nowFn()); err != nil {
		lgr.Printf("[WARN] failed to persist shutdown state for %s: %v", name, err)
	}
	lgr.Printf("[INFO] shutdown command sent to %s", name)
	return nil
}

// Reset drops the pending action so the device is controllable again
func (m *Manager) Reset(name string) error {
	if _, err := m.device(name); err != nil {
		return err
	}
	m.clearAction(name)
	lgr.Printf("[INFO] action state reset for %s", name)
	return nil
}

func (m *Manager) device(name string) (domain.Device, error) {
	for _, dev := range m.devices {
		if dev.Name == name {
			return dev, nil
		}
	}
	return domain.Device{}, fmt.Errorf("%w %q", ErrUnknownDevice, name)
}

func (m *Manager) clearAction(name string) {
	if err := m.store.clear(name); err != nil {
		lgr.Printf("[WARN] failed to clear action state for %s: %v", name, err)
	}
}
