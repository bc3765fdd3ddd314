package state

import (
	"testing"
	"time"

	"github.com/astrogrid/constellation-ops/pkg/models"
)

func TestLatestOrbitalDataPerSatellite(t *testing.T) {
	s := New()
	for _, id := range []string{"SAT-001", "SAT-002"} {
		if err := s.AddSatellite(testSatellite(id)); err != nil {
			t.Fatalf("Insert %s failed: %v", id, err)
		}
	}

	s.AddOrbitalData(models.OrbitalData{SatelliteID: "SAT-001", MeanAnomaly: 1})
	s.AddOrbitalData(models.OrbitalData{SatelliteID: "SAT-002", MeanAnomaly: 2})
	s.AddOrbitalData(models.OrbitalData{SatelliteID: "SAT-001", MeanAnomaly: 3})

	latest := s.LatestOrbitalData()
	if len(latest) != 2 {
		t.Fatalf("Expected one sample per satellite, got %d", len(latest))
	}
	if latest[0].SatelliteID != "SAT-001" || latest[0].MeanAnomaly != 3 {
		t.Errorf("Expected latest SAT-001 sample first, got %+v", latest[0])
	}
	if latest[1].SatelliteID != "SAT-002" || latest[1].MeanAnomaly != 2 {
		t.Errorf("Expected SAT-002 sample second, got %+v", latest[1])
	}
}

func TestLatestOrbitalDataSkipsUnsampledSatellites(t *testing.T) {
	s := New()
	if err := s.AddSatellite(testSatellite("SAT-001")); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	if err := s.AddSatellite(testSatellite("SAT-002")); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	s.AddOrbitalData(models.OrbitalData{SatelliteID: "SAT-002"})

	latest := s.LatestOrbitalData()
	if len(latest) != 1 || latest[0].SatelliteID != "SAT-002" {
		t.Errorf("Expected only the sampled satellite, got %+v", latest)
	}
}

func TestHighRiskThreatsFilter(t *testing.T) {
	s := New()
	s.AddCollisionThreat(models.CollisionThreat{ThreatID: "a", RiskLevel: models.RiskMedium})
	s.AddCollisionThreat(models.CollisionThreat{ThreatID: "b", RiskLevel: models.RiskHigh})
	s.AddCollisionThreat(models.CollisionThreat{ThreatID: "c", RiskLevel: models.RiskCritical})

	high := s.HighRiskThreats()
	if len(high) != 2 {
		t.Fatalf("Expected 2 high-risk threats, got %d", len(high))
	}
	if high[0].ThreatID != "b" || high[1].ThreatID != "c" {
		t.Errorf("Unexpected threats: %+v", high)
	}
}

func TestHighPriorityMaintenanceExcludesCompleted(t *testing.T) {
	s := New()
	tasks := []models.MaintenanceTask{
		{ID: "T-1", Priority: models.PriorityHigh, Status: models.TaskStatusScheduled},
		{ID: "T-2", Priority: models.PriorityHigh, Status: models.TaskStatusCompleted},
		{ID: "T-3", Priority: models.PriorityLow, Status: models.TaskStatusScheduled},
	}
	for _, task := range tasks {
		if err := s.AddMaintenanceTask(task); err != nil {
			t.Fatalf("Add task failed: %v", err)
		}
	}

	open := s.HighPriorityMaintenance()
	if len(open) != 1 || open[0].ID != "T-1" {
		t.Errorf("Expected only T-1 open, got %+v", open)
	}
}

func TestSummaryCounts(t *testing.T) {
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s := New(WithClock(fixedClock(at)))

	if err := s.AddSatellite(testSatellite("SAT-001")); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	s.AddAlert(models.Alert{ID: "ALT-1"})
	s.AddAlert(models.Alert{ID: "ALT-2"})
	if err := s.ResolveAlert("ALT-2"); err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	s.AddDecision(models.Decision{ID: "DEC-1"})

	sum := s.Summary()
	if sum.SatelliteCount != 1 {
		t.Errorf("Expected 1 satellite, got %d", sum.SatelliteCount)
	}
	if sum.Alerts != 2 || sum.ActiveAlerts != 1 {
		t.Errorf("Expected 2 alerts with 1 active, got %d/%d", sum.Alerts, sum.ActiveAlerts)
	}
	if sum.Decisions != 1 {
		t.Errorf("Expected 1 decision, got %d", sum.Decisions)
	}
	if !sum.LastUpdate.Equal(at) {
		t.Errorf("Expected last update %v, got %v", at, sum.LastUpdate)
	}
}
