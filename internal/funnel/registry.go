package funnel

import (
	"embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed config/*.yaml
var configFiles embed.FS

// Registry holds the funnel definitions the dashboard works with. Definitions
// are loaded from embedded YAML at startup and consulted to validate creative
// funnel tags and lead stages, and to order funnel analytics.
type Registry struct {
	funnels map[string]*Definition
	order   []string // names in file order, for stable listings
	mu      sync.RWMutex
}

// NewRegistry creates a registry from the embedded funnel config.
func NewRegistry() (*Registry, error) {
	r := &Registry{
		funnels: make(map[string]*Definition),
	}

	if err := r.loadFile("config/funnels.yaml"); err != nil {
		return nil, fmt.Errorf("failed to load funnel definitions: %w", err)
	}

	return r, nil
}

func (r *Registry) loadFile(filename string) error {
	data, err := configFiles.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", filename, err)
	}

	var file registryFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to unmarshal %s: %w", filename, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range file.Funnels {
		def := file.Funnels[i]
		if def.Name == "" || len(def.Stages) == 0 {
			return fmt.Errorf("funnel %d in %s has no name or no stages", i, filename)
		}
		if _, dup := r.funnels[def.Name]; dup {
			return fmt.Errorf("duplicate funnel %q in %s", def.Name, filename)
		}
		r.funnels[def.Name] = &def
		r.order = append(r.order, def.Name)
	}

	return nil
}

// Get returns the definition for a funnel name.
func (r *Registry) Get(name string) (*Definition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	def, ok := r.funnels[name]
	if !ok {
		return nil, fmt.Errorf("unknown funnel: %s", name)
	}
	return def, nil
}

// Has reports whether a funnel with the given name exists.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.funnels[name]
	return ok
}

// ValidStage reports whether stage belongs to the named funnel.
func (r *Registry) ValidStage(funnelName, stage string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	def, ok := r.funnels[funnelName]
	if !ok {
		return false
	}
	return def.HasStage(stage)
}

// List returns all definitions in file order.
func (r *Registry) List() []Definition {
	r.mu.RLock()
	defer r.mu.RUnlock()

	defs := make([]Definition, 0, len(r.order))
	for _, name := range r.order {
		defs = append(defs, *r.funnels[name])
	}
	return defs
}
