package power

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"
)

// actionState is one device's pending action as persisted on disk. Start
// times are unix seconds so state files written by earlier tooling stay
// readable.
type actionState struct {
	Action    string  `json:"action"`
	StartTime float64 `json:"start_time"`
}

// stateStore keeps the per-device action map in a json file, whole document
// read-modify-write under a lock. A missing or corrupt file reads as empty.
type stateStore struct {
	path string
	mu   sync.Mutex
}

func newStateStore(path string) *stateStore {
	return &stateStore{path: path}
}

// get returns the pending action and its start time for a device, empty
// action when nothing is pending
func (s *stateStore) get(name string) (action string, started time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.load()[name]
	sec := int64(st.StartTime)
	nsec := int64((st.StartTime - float64(sec)) * float64(time.Second))
	return st.Action, time.Unix(sec, nsec)
}

// set records a pending action for a device
func (s *stateStore) set(name, action string, started time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	states := s.load()
	states[name] = actionState{
		Action:    action,
		StartTime: float64(started.UnixNano()) / float64(time.Second),
	}
	return s.save(states)
}

// clear drops the pending action for a device
func (s *stateStore) clear(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	states := s.load()
	states[name] = actionState{}
	return s.save(states)
}

func (s *stateStore) load() map[string]actionState {
	states := map[string]actionState{}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return states
	}
	if err := json.Unmarshal(data, &states); err != nil {
		// a broken file must not brick the controls, start over
		return map[string]actionState{}
	}
	return states
}

func (s *stateStore) save(states map[string]actionState) error {
	data, err := json.Marshal(states)
	if err != nil {
		return fmt.Errorf("marshal action states: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write state file %s: %w", s.path, err)
	}
	return nil
}
