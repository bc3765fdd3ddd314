package mission

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/astrogrid/constellation-ops/pkg/config"
	"github.com/astrogrid/constellation-ops/pkg/models"
	"github.com/astrogrid/constellation-ops/pkg/state"
)

var missionEpoch = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestController(t *testing.T, cfg *config.MissionConfig) *Controller {
	t.Helper()
	ctrl, err := NewController(cfg, WithClock(func() time.Time { return missionEpoch }))
	if err != nil {
		t.Fatalf("NewController failed: %v", err)
	}
	return ctrl
}

func TestDefaultScenarioRunsClean(t *testing.T) {
	ctrl := newTestController(t, config.GetDefaultConfig())

	if err := ctrl.InitializeMission(""); err != nil {
		t.Fatalf("InitializeMission failed: %v", err)
	}

	sum := ctrl.Status()
	if sum.SatelliteCount != 5 || sum.GroundStations != 3 {
		t.Fatalf("Expected 5 satellites and 3 stations, got %d/%d",
			sum.SatelliteCount, sum.GroundStations)
	}
	if sum.MissionName != "Autonomous Space Mission" {
		t.Errorf("Unexpected mission name %q", sum.MissionName)
	}

	report, err := ctrl.RunMission(context.Background())
	if err != nil {
		t.Fatalf("RunMission failed: %v", err)
	}

	if report.Phase != models.PhaseCompleted {
		t.Errorf("Expected COMPLETED, got %s", report.Phase)
	}
	// The demo constellation is spread around the orbit plane, hundreds
	// of kilometres apart at minimum.
	if risks := ctrl.CollisionRisks(); len(risks) != 0 {
		t.Errorf("Expected no high-risk threats for the demo constellation, got %d", len(risks))
	}
	if report.Metrics.SatellitesManaged != 5 {
		t.Errorf("Expected 5 satellites managed, got %d", report.Metrics.SatellitesManaged)
	}
	if report.Metrics.DecisionsMade != 7 {
		t.Errorf("Expected 7 decisions, got %d", report.Metrics.DecisionsMade)
	}
}

func TestCloseSatellitePairYieldsOneHighThreat(t *testing.T) {
	cfg := config.GetDefaultConfig()
	// Same orbit, 40 km apart along track at 500 km altitude.
	cfg.Satellites = []config.SatelliteSpec{
		{ID: "SAT-001", Name: "Lead", Type: "Communication", AltitudeKm: 500, Inclination: 51.6, Longitude: 0},
		{ID: "SAT-002", Name: "Trail", Type: "Communication", AltitudeKm: 500, Inclination: 51.6, Longitude: 0.3336},
	}

	ctrl := newTestController(t, cfg)
	if err := ctrl.InitializeMission("Proximity Test"); err != nil {
		t.Fatalf("InitializeMission failed: %v", err)
	}
	if _, err := ctrl.RunMission(context.Background()); err != nil {
		t.Fatalf("RunMission failed: %v", err)
	}

	threats := ctrl.AllThreats()
	if len(threats) != 1 {
		t.Fatalf("Expected exactly one threat, got %d", len(threats))
	}
	if threats[0].RiskLevel != models.RiskHigh {
		t.Errorf("Expected HIGH at roughly 40 km, got %s (%.1f km)",
			threats[0].RiskLevel, threats[0].DistanceKm)
	}
	if threats[0].DistanceKm < 35 || threats[0].DistanceKm > 45 {
		t.Errorf("Expected separation near 40 km, got %.1f", threats[0].DistanceKm)
	}
	if len(ctrl.CollisionRisks()) != 1 {
		t.Errorf("Expected the threat reported as high risk")
	}
}

func TestInitializeTwiceFailsOnDuplicates(t *testing.T) {
	ctrl := newTestController(t, config.GetDefaultConfig())

	if err := ctrl.InitializeMission(""); err != nil {
		t.Fatalf("First initialize failed: %v", err)
	}
	err := ctrl.InitializeMission("")
	if !errors.Is(err, state.ErrDuplicateEntity) {
		t.Errorf("Expected duplicate seeding to fail, got %v", err)
	}

	ctrl.Reset()
	if err := ctrl.InitializeMission(""); err != nil {
		t.Errorf("Initialize after reset failed: %v", err)
	}
}

func TestExportImportRoundTripThroughController(t *testing.T) {
	src := newTestController(t, config.GetDefaultConfig())
	if err := src.InitializeMission("Export Mission"); err != nil {
		t.Fatalf("InitializeMission failed: %v", err)
	}
	if _, err := src.RunMission(context.Background()); err != nil {
		t.Fatalf("RunMission failed: %v", err)
	}

	data, err := src.ExportData()
	if err != nil {
		t.Fatalf("ExportData failed: %v", err)
	}

	dst := newTestController(t, config.GetDefaultConfig())
	if err := dst.ImportData(data); err != nil {
		t.Fatalf("ImportData failed: %v", err)
	}

	want, got := src.Status(), dst.Status()
	if got.MissionName != "Export Mission" {
		t.Errorf("Mission name lost: %q", got.MissionName)
	}
	if got.SatelliteCount != want.SatelliteCount ||
		got.MaintenanceTasks != want.MaintenanceTasks ||
		got.SpaceDebris != want.SpaceDebris ||
		got.Decisions != want.Decisions {
		t.Errorf("Counts diverged after round trip: %+v vs %+v", got, want)
	}
	if got.Phase != models.PhaseCompleted {
		t.Errorf("Expected imported phase COMPLETED, got %s", got.Phase)
	}
}

func TestUnknownProviderFails(t *testing.T) {
	cfg := config.GetDefaultConfig()
	cfg.Engine.Provider = "astrology"

	if _, err := NewController(cfg); err == nil {
		t.Error("Expected unknown provider to fail controller construction")
	}
}

func TestAlertLifecycleThroughController(t *testing.T) {
	cfg := config.GetDefaultConfig()
	cfg.Satellites = []config.SatelliteSpec{
		{ID: "SAT-001", Name: "Lead", Type: "Communication", AltitudeKm: 500, Inclination: 51.6, Longitude: 0},
		{ID: "SAT-002", Name: "Trail", Type: "Communication", AltitudeKm: 500, Inclination: 51.6, Longitude: 0.3336},
	}

	ctrl := newTestController(t, cfg)
	if err := ctrl.InitializeMission(""); err != nil {
		t.Fatalf("InitializeMission failed: %v", err)
	}
	if _, err := ctrl.RunMission(context.Background()); err != nil {
		t.Fatalf("RunMission failed: %v", err)
	}

	alerts := ctrl.ActiveAlerts()
	if len(alerts) == 0 {
		t.Fatal("Expected at least one active alert from the close approach")
	}

	if err := ctrl.AcknowledgeAlert(alerts[0].ID); err != nil {
		t.Fatalf("AcknowledgeAlert failed: %v", err)
	}
	if err := ctrl.ResolveAlert(alerts[0].ID); err != nil {
		t.Fatalf("ResolveAlert failed: %v", err)
	}

	if got := len(ctrl.ActiveAlerts()); got != len(alerts)-1 {
		t.Errorf("Expected one fewer active alert, got %d of %d", got, len(alerts))
	}
}
