// Package feed turns named RSS sources into reader items. Sources come from
// configuration, fetching goes through a plain HTTP client so traffic can be
// metered before parsing.
package feed

// Source represents a named RSS source
type Source struct {
	Name string
	URL  string
}

// Registry holds the configured sources in display order
type Registry struct {
	sources []Source
	byName  map[string]Source
}

// NewRegistry creates a registry from the configured sources, keeping order
func NewRegistry(sources []Source) *Registry {
	r := &Registry{
		sources: make([]Source, 0, len(sources)),
		byName:  make(map[string]Source, len(sources)),
	}
	for _, s := range sources {
		if s.Name == "" || s.URL == "" {
			continue
		}
		if _, exists := r.byName[s.Name]; exists {
			continue
		}
		r.sources = append(r.sources, s)
		r.byName[s.Name] = s
	}
	return r
}

// Lookup returns the source registered under name
func (r *Registry) Lookup(name string) (Source, bool) {
	s, ok := r.byName[name]
	return s, ok
}

// Names returns all source names in registration order
func (r *Registry) Names() []string {
	names := make([]string, len(r.sources))
	for i, s := range r.sources {
		names[i] = s.Name
	}
	return names
}

// Default returns the first registered source
func (r *Registry) Default() (Source, bool) {
	if len(r.sources) == 0 {
		return Source{}, false
	}
	return r.sources[0], true
}
