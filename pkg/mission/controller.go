// Package mission wires the engine together: configuration in, a seeded
// state store, the pipeline over it, and the export/import surface.
package mission

import (
	"context"
	"fmt"
	"time"

	"github.com/astrogrid/constellation-ops/pkg/codec"
	"github.com/astrogrid/constellation-ops/pkg/config"
	"github.com/astrogrid/constellation-ops/pkg/logger"
	"github.com/astrogrid/constellation-ops/pkg/models"
	"github.com/astrogrid/constellation-ops/pkg/pipeline"
	"github.com/astrogrid/constellation-ops/pkg/providers"
	"github.com/astrogrid/constellation-ops/pkg/scanner"
	"github.com/astrogrid/constellation-ops/pkg/state"
)

// Controller is the operator-facing facade over one mission.
type Controller struct {
	cfg *config.MissionConfig

	store         *state.Store
	constellation providers.ConstellationProvider
	telemetry     providers.TelemetryProvider
	orch          *pipeline.Orchestrator

	log logger.Logger
	now func() time.Time
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger routes engine logs to l.
func WithLogger(l logger.Logger) Option {
	return func(c *Controller) { c.log = l }
}

// WithClock overrides the time source for the whole engine.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// WithTelemetry bypasses the provider registry. Tests use this to drive
// the pipeline with scripted telemetry.
func WithTelemetry(t providers.TelemetryProvider) Option {
	return func(c *Controller) { c.telemetry = t }
}

// WithConstellation overrides the seed source.
func WithConstellation(p providers.ConstellationProvider) Option {
	return func(c *Controller) { c.constellation = p }
}

// NewController builds the engine from a validated scenario config.
func NewController(cfg *config.MissionConfig, opts ...Option) (*Controller, error) {
	c := &Controller{
		cfg: cfg,
		log: logger.Nop(),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.store = state.New(
		state.WithHistoryCapacity(cfg.Engine.HistoryCapacity),
		state.WithOrbitalCapacity(cfg.Engine.OrbitalCapacity),
		state.WithLogger(c.log),
		state.WithClock(c.now),
	)

	if c.constellation == nil {
		now := c.now()
		c.constellation = providers.NewStaticConstellation(
			cfg.BuildSatellites(now), cfg.BuildStations(now))
	}

	if c.telemetry == nil {
		t, err := providers.DefaultRegistry.Get(cfg.Engine.Provider, providers.Options{
			Epoch: c.now(),
			TLEs:  cfg.TLEs,
		})
		if err != nil {
			return nil, fmt.Errorf("build telemetry provider: %w", err)
		}
		c.telemetry = t
	}

	scan := scanner.New(
		scanner.WithConfig(scanner.Config{
			CriticalRangeKm: cfg.Scanner.CriticalRangeKm,
			HighRangeKm:     cfg.Scanner.HighRangeKm,
			CloseRangeKm:    cfg.Scanner.CloseRangeKm,
		}),
		scanner.WithClock(c.now),
	)

	c.orch = pipeline.New(c.store, c.telemetry,
		pipeline.WithScanner(scan),
		pipeline.WithLogger(c.log),
		pipeline.WithClock(c.now),
	)
	return c, nil
}

// InitializeMission names the mission and seeds the constellation and
// station network from the configured provider. Seeding an already
// populated store fails on the first duplicate id.
func (c *Controller) InitializeMission(name string) error {
	if name != "" {
		c.store.SetMissionName(name)
	} else if c.cfg.Mission.Name != "" {
		c.store.SetMissionName(c.cfg.Mission.Name)
	}

	sats, err := c.constellation.InitialSatellites()
	if err != nil {
		return fmt.Errorf("load constellation: %w", err)
	}
	for _, sat := range sats {
		if err := c.store.AddSatellite(sat); err != nil {
			return err
		}
	}

	stations, err := c.constellation.GroundStations()
	if err != nil {
		return fmt.Errorf("load ground stations: %w", err)
	}
	for _, gs := range stations {
		if err := c.store.AddGroundStation(gs); err != nil {
			return err
		}
	}

	c.store.Snapshot()
	c.log.Infof("%s mission initialized with %d satellites, %d stations",
		logger.IconRocket, len(sats), len(stations))
	return nil
}

// RunMission executes the seven-stage pipeline and returns the run
// report. The report is built even when a stage fails, so callers can
// render the partial picture alongside the error.
func (c *Controller) RunMission(ctx context.Context) (*pipeline.MissionReport, error) {
	err := c.orch.Run(ctx)
	return pipeline.BuildReport(c.store, c.now()), err
}

// Reset discards the mission and starts a fresh, unseeded one.
func (c *Controller) Reset() {
	c.store.Reset()
}

// Status returns the mission summary projection.
func (c *Controller) Status() state.Summary {
	return c.store.Summary()
}

// State returns a deep copy of the full mission state.
func (c *Controller) State() models.MissionState {
	return c.store.State()
}

// Satellites returns the constellation in insertion order.
func (c *Controller) Satellites() []models.Satellite {
	return c.store.Satellites()
}

// CollisionRisks returns the HIGH and CRITICAL threats on record.
func (c *Controller) CollisionRisks() []models.CollisionThreat {
	return c.store.HighRiskThreats()
}

// AllThreats returns every recorded collision threat.
func (c *Controller) AllThreats() []models.CollisionThreat {
	return c.store.CollisionThreats()
}

// ActiveAlerts returns the unresolved alerts.
func (c *Controller) ActiveAlerts() []models.Alert {
	return c.store.ActiveAlerts()
}

// AcknowledgeAlert marks an alert as acknowledged.
func (c *Controller) AcknowledgeAlert(id string) error {
	return c.store.AcknowledgeAlert(id)
}

// ResolveAlert marks an alert as resolved.
func (c *Controller) ResolveAlert(id string) error {
	return c.store.ResolveAlert(id)
}

// MaintenanceTasks returns every scheduled task.
func (c *Controller) MaintenanceTasks() []models.MaintenanceTask {
	return c.store.MaintenanceTasks()
}

// GroundStations returns the station network.
func (c *Controller) GroundStations() []models.GroundStation {
	return c.store.GroundStations()
}

// SpaceDebris returns the tracked debris catalog.
func (c *Controller) SpaceDebris() []models.SpaceDebris {
	return c.store.SpaceDebris()
}

// ExportData renders the mission state as YAML.
func (c *Controller) ExportData() ([]byte, error) {
	return codec.Export(c.store)
}

// ExportToFile writes the mission state to path.
func (c *Controller) ExportToFile(path string) error {
	if err := codec.ExportToFile(c.store, path); err != nil {
		return err
	}
	c.log.Infof("%s mission state exported to %s", logger.IconSave, path)
	return nil
}

// ImportData merges a YAML mission document into the state.
func (c *Controller) ImportData(data []byte) error {
	return codec.Import(c.store, data)
}

// ImportFromFile merges the mission document at path into the state.
func (c *Controller) ImportFromFile(path string) error {
	return codec.ImportFromFile(c.store, path)
}
