// Package pipeline runs the seven-stage mission workflow against the
// state store. Stages execute strictly in order; each one commits its
// writes before the next begins, and a failure aborts the run with the
// partial state intact.
package pipeline

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/astrogrid/constellation-ops/pkg/logger"
	"github.com/astrogrid/constellation-ops/pkg/models"
	"github.com/astrogrid/constellation-ops/pkg/providers"
	"github.com/astrogrid/constellation-ops/pkg/scanner"
	"github.com/astrogrid/constellation-ops/pkg/state"
)

// stageResult is what a stage hands back on success and what the
// orchestrator turns into the stage's audit decision.
type stageResult struct {
	decision  string
	reasoning string
	impact    string
}

// stage binds a name, the phase the store shows while it runs, the fixed
// audit confidence, and the work itself.
type stage struct {
	name       string
	phase      models.MissionPhase
	confidence float64
	run        func(ctx context.Context) (stageResult, error)
}

// Orchestrator drives one mission run: orbital update, constellation
// optimize, threat scan, mission plan, ground coordinate, maintenance
// predict, debris monitor.
type Orchestrator struct {
	store     *state.Store
	telemetry providers.TelemetryProvider
	scan      *scanner.Scanner
	log       logger.Logger
	now       func() time.Time
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithScanner overrides the collision scanner.
func WithScanner(s *scanner.Scanner) Option {
	return func(o *Orchestrator) { o.scan = s }
}

// WithLogger routes stage logs to l.
func WithLogger(l logger.Logger) Option {
	return func(o *Orchestrator) { o.log = l }
}

// WithClock overrides the time source used for decisions and alerts.
func WithClock(now func() time.Time) Option {
	return func(o *Orchestrator) { o.now = now }
}

// New creates an orchestrator over the given store and telemetry source.
func New(store *state.Store, telemetry providers.TelemetryProvider, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		store:     store,
		telemetry: telemetry,
		scan:      scanner.New(),
		log:       logger.Nop(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func (o *Orchestrator) stages() []stage {
	return []stage{
		{"orbital_update", models.PhaseOrbitalCalculation, 0.95, o.orbitalUpdate},
		{"constellation_optimize", models.PhaseConstellationMgmt, 0.92, o.constellationOptimize},
		{"threat_scan", models.PhaseCollisionMonitor, 0.98, o.threatScan},
		{"mission_plan", models.PhaseMissionPlanning, 0.94, o.missionPlan},
		{"ground_coordinate", models.PhaseGroundCoordination, 0.96, o.groundCoordinate},
		{"maintenance_predict", models.PhaseMaintenance, 0.91, o.maintenancePredict},
		{"debris_monitor", models.PhaseDebrisMonitoring, 0.93, o.debrisMonitor},
	}
}

// Run executes the seven stages in order. Each stage sets its phase,
// performs its writes, records one audit decision and snapshots the
// state. On failure the run stops at that stage boundary: the completed
// stages' writes stay committed, a CRITICAL alert is raised, the phase
// moves to ERROR and the error is returned wrapped in StageFailureError.
// Context cancellation is observed at stage boundaries.
func (o *Orchestrator) Run(ctx context.Context) error {
	for _, st := range o.stages() {
		if err := ctx.Err(); err != nil {
			return o.fail(st.name, err)
		}

		o.log.Infof("%s stage %s", logger.IconRocket, st.name)
		o.store.UpdateMissionPhase(st.phase)

		res, err := st.run(ctx)
		if err != nil {
			return o.fail(st.name, err)
		}

		o.store.AddDecision(models.Decision{
			ID:         uuid.NewString(),
			Stage:      st.name,
			Decision:   res.decision,
			Reasoning:  res.reasoning,
			Confidence: st.confidence,
			Impact:     res.impact,
			Timestamp:  o.now(),
		})
		o.store.Snapshot()
	}

	o.refreshMetrics()
	o.store.UpdateMissionPhase(models.PhaseCompleted)
	o.store.Snapshot()
	o.log.Infof("%s mission run complete", logger.IconCheck)
	return nil
}

// fail records the stage failure and leaves the store exactly as the last
// completed stage committed it, plus the alert and the ERROR phase.
func (o *Orchestrator) fail(stageName string, err error) error {
	o.log.Errorf("%s stage %s failed: %v", logger.IconCross, stageName, err)
	o.store.AddAlert(models.Alert{
		ID:        uuid.NewString(),
		Type:      "STAGE_FAILURE",
		Severity:  models.SeverityCritical,
		Message:   "Stage " + stageName + " failed: " + err.Error(),
		Timestamp: o.now(),
	})
	o.store.UpdateMissionPhase(models.PhaseError)
	return &StageFailureError{Stage: stageName, Err: err}
}

// refreshMetrics recomputes the run counters from the final state.
func (o *Orchestrator) refreshMetrics() {
	st := o.store.State()

	active := 0
	healthSum := 0.0
	for i := range st.Satellites {
		if st.Satellites[i].Status == models.SatelliteStatusActive {
			active++
		}
		healthSum += st.Satellites[i].HealthScore
	}

	meanHealth := 0.0
	coverage := 0.0
	if len(st.Satellites) > 0 {
		meanHealth = healthSum / float64(len(st.Satellites))
		coverage = float64(active) / float64(len(st.Satellites)) * 100
	}

	stationsActive := 0
	for i := range st.GroundStations {
		if st.GroundStations[i].Status == "ACTIVE" {
			stationsActive++
		}
	}

	o.store.SetMetrics(models.PerformanceMetrics{
		SatellitesManaged:  st.SatelliteCount,
		ThreatsDetected:    len(st.CollisionThreats),
		TasksScheduled:     len(st.MaintenanceTasks),
		AlertsRaised:       len(st.Alerts),
		DecisionsMade:      len(st.Decisions),
		StationsActive:     stationsActive,
		DebrisTracked:      len(st.SpaceDebris),
		CoveragePercent:    coverage,
		MeanHealthScore:    meanHealth,
		MissionDurationSec: o.now().Sub(st.StartTime).Seconds(),
	})
}
