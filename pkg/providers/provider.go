// Package providers defines the external collaborators the mission engine
// consumes: constellation seeding and per-stage telemetry. The core is
// deterministic given deterministic provider outputs.
package providers

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/astrogrid/constellation-ops/pkg/models"
)

// ConstellationProvider seeds a mission with its initial assets.
type ConstellationProvider interface {
	InitialSatellites() ([]models.Satellite, error)
	GroundStations() ([]models.GroundStation, error)
}

// Vitals is one telemetry reading for a satellite, consumed by the
// constellation-optimize stage.
type Vitals struct {
	SatelliteID    string
	Status         models.SatelliteStatus
	BatteryLevel   float64
	SignalStrength float64
}

// TelemetryProvider supplies the per-stage signals the pipeline consumes.
// Implementations must be synchronous; the orchestrator awaits each call
// before moving to the next stage.
type TelemetryProvider interface {
	// UpdatePositions propagates every satellite to the provider's
	// current epoch and returns one orbital sample per satellite.
	UpdatePositions(ctx context.Context, sats []models.Satellite) ([]models.OrbitalData, error)

	// SampleVitals reads battery, signal and status for every satellite.
	SampleVitals(ctx context.Context, sats []models.Satellite) ([]Vitals, error)

	// AssessHealth evaluates satellite health and returns maintenance
	// tasks for satellites below threshold.
	AssessHealth(ctx context.Context, sats []models.Satellite) ([]models.MaintenanceTask, error)

	// CatalogDebris refreshes the tracked debris catalog.
	CatalogDebris(ctx context.Context) ([]models.SpaceDebris, error)
}

// TLE is a two-line element set for one satellite.
type TLE struct {
	Line1 string `yaml:"line1"`
	Line2 string `yaml:"line2"`
}

// Options configures a telemetry provider built through the registry.
type Options struct {
	// Epoch anchors propagation; zero means wall clock.
	Epoch time.Time

	// TLEs maps satellite ids to element sets for SGP4 propagation.
	TLEs map[string]TLE
}

// Factory builds a telemetry provider from options.
type Factory func(opts Options) (TelemetryProvider, error)

// Registry manages the available telemetry providers by name.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry creates an empty provider registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds a provider factory to the registry.
func (r *Registry) Register(name string, factory Factory) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.factories[name]; exists {
		return fmt.Errorf("provider %s already registered", name)
	}
	r.factories[name] = factory
	return nil
}

// Get builds a new provider instance by name.
func (r *Registry) Get(name string, opts Options) (TelemetryProvider, error) {
	r.mu.RLock()
	factory, exists := r.factories[name]
	r.mu.RUnlock()
	if !exists {
		return nil, fmt.Errorf("provider %s not found", name)
	}
	return factory(opts)
}

// List returns the registered provider names.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	return names
}

// DefaultRegistry is the global provider registry.
var DefaultRegistry = NewRegistry()
