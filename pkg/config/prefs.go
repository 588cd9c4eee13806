package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// preference keys understood by the dashboard
const (
	PrefDefaultModel = "default_model"
	PrefAutoSummary  = "auto_summary_enabled"
)

// Prefs is a flat key-value preferences document persisted as a single JSON
// file. Every Set rewrites the whole document, so concurrent writers resolve
// to the last one. A missing file reads as an empty document.
type Prefs struct {
	path string
	mu   sync.Mutex
}

// NewPrefs creates a preferences store backed by the given file path
func NewPrefs(path string) *Prefs {
	return &Prefs{path: path}
}

// Get returns the value for key, or false when the key or the file is absent.
// Read failures degrade to a miss, they never surface as errors.
func (p *Prefs) Get(key string) (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	doc, err := p.load()
	if err != nil {
		return "", false
	}
	v, ok := doc[key]
	return v, ok
}

// GetBool returns the value for key interpreted as a boolean, false on a miss
func (p *Prefs) GetBool(key string) bool {
	v, ok := p.Get(key)
	return ok && v == "true"
}

// Set stores key=value, rewriting the whole document
func (p *Prefs) Set(key, value string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	doc, err := p.load()
	if err != nil {
		// a corrupt document is replaced rather than kept broken
		doc = map[string]string{}
	}
	doc[key] = value

	return p.store(doc)
}

// All returns a copy of the whole document
func (p *Prefs) All() map[string]string {
	p.mu.Lock()
	defer p.mu.Unlock()

	doc, err := p.load()
	if err != nil {
		return map[string]string{}
	}
	return doc
}

func (p *Prefs) load() (map[string]string, error) {
	data, err := os.ReadFile(p.path) //nolint:gosec // path comes from config
	if os.IsNotExist(err) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read prefs: %w", err)
	}

	doc := map[string]string{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse prefs: %w", err)
	}
	return doc, nil
}

func (p *Prefs) store(doc map[string]string) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}
	if err := os.WriteFile(p.path, data, 0o600); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	return nil
}
