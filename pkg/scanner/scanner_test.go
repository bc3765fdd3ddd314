package scanner

import (
	"reflect"
	"testing"
	"time"

	"github.com/astrogrid/constellation-ops/pkg/models"
)

func sampleAt(id string, x float64) models.OrbitalData {
	return models.OrbitalData{
		SatelliteID: id,
		Position:    models.Vector3{X: x},
	}
}

func scanPair(t *testing.T, separation float64) []models.CollisionThreat {
	t.Helper()
	s := New(WithClock(func() time.Time {
		return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	}))
	return s.Scan([]models.OrbitalData{
		sampleAt("SAT-001", 0),
		sampleAt("SAT-002", separation),
	})
}

func TestClassificationBoundaries(t *testing.T) {
	cases := []struct {
		name       string
		separation float64
		emitted    bool
		risk       models.RiskLevel
	}{
		{"critical", 5.0, true, models.RiskCritical},
		{"just under high boundary", 49.999, true, models.RiskHigh},
		{"just over high boundary", 50.001, true, models.RiskMedium},
		{"just under emission range", 99.999, true, models.RiskMedium},
		{"just outside emission range", 100.001, false, ""},
		{"far apart", 5000, false, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			threats := scanPair(t, tc.separation)

			if !tc.emitted {
				if len(threats) != 0 {
					t.Fatalf("Expected no threat at %.3f km, got %d", tc.separation, len(threats))
				}
				return
			}
			if len(threats) != 1 {
				t.Fatalf("Expected one threat at %.3f km, got %d", tc.separation, len(threats))
			}
			if threats[0].RiskLevel != tc.risk {
				t.Errorf("Expected %s at %.3f km, got %s", tc.risk, tc.separation, threats[0].RiskLevel)
			}
		})
	}
}

func TestManeuverRequiredForHighAndCritical(t *testing.T) {
	if th := scanPair(t, 5)[0]; !th.ManeuverNeeded {
		t.Error("CRITICAL threat should require a maneuver")
	}
	if th := scanPair(t, 40)[0]; !th.ManeuverNeeded {
		t.Error("HIGH threat should require a maneuver")
	}
	if th := scanPair(t, 80)[0]; th.ManeuverNeeded {
		t.Error("MEDIUM threat should only be monitored")
	}
}

func TestThreatIDIndependentOfSampleOrder(t *testing.T) {
	s := New()

	forward := s.Scan([]models.OrbitalData{sampleAt("SAT-001", 0), sampleAt("SAT-002", 30)})
	reverse := s.Scan([]models.OrbitalData{sampleAt("SAT-002", 30), sampleAt("SAT-001", 0)})

	if forward[0].ThreatID != reverse[0].ThreatID {
		t.Errorf("Pair identity depends on order: %s vs %s",
			forward[0].ThreatID, reverse[0].ThreatID)
	}
}

func TestScanIsDeterministic(t *testing.T) {
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s := New(WithClock(func() time.Time { return at }))

	samples := []models.OrbitalData{
		sampleAt("SAT-001", 0),
		sampleAt("SAT-002", 30),
		sampleAt("SAT-003", 95),
		sampleAt("SAT-004", 400),
	}

	first := s.Scan(samples)
	second := s.Scan(samples)

	if !reflect.DeepEqual(first, second) {
		t.Error("Same snapshot produced different threat sets")
	}
	// 001-002 at 30, 002-003 at 65, 001-003 at 95; SAT-004 out of range.
	if len(first) != 3 {
		t.Fatalf("Expected 3 threats, got %d", len(first))
	}
}

func TestTimeToCollisionClosingPair(t *testing.T) {
	s := New()

	closing := []models.OrbitalData{
		{SatelliteID: "SAT-001", Position: models.Vector3{X: 0}, Velocity: models.Vector3{X: 0.001}},
		{SatelliteID: "SAT-002", Position: models.Vector3{X: 36}, Velocity: models.Vector3{X: -0.004}},
	}

	threats := s.Scan(closing)
	if len(threats) != 1 {
		t.Fatalf("Expected one threat, got %d", len(threats))
	}

	// Closing at 0.005 km/s over 36 km is 7200 s, so 2 hours.
	if got := threats[0].TimeToCollision; got < 1.99 || got > 2.01 {
		t.Errorf("Expected roughly 2 hours to collision, got %f", got)
	}
}

func TestTimeToCollisionDefaultsWhenReceding(t *testing.T) {
	s := New()

	receding := []models.OrbitalData{
		{SatelliteID: "SAT-001", Position: models.Vector3{X: 0}, Velocity: models.Vector3{X: -1}},
		{SatelliteID: "SAT-002", Position: models.Vector3{X: 36}, Velocity: models.Vector3{X: 1}},
	}

	threats := s.Scan(receding)
	if threats[0].TimeToCollision != DefaultTimeToCollisionHours {
		t.Errorf("Receding pair should report the default horizon, got %f",
			threats[0].TimeToCollision)
	}
}

func TestConfidenceGrowsAsSeparationShrinks(t *testing.T) {
	near := scanPair(t, 10)[0].Confidence
	far := scanPair(t, 90)[0].Confidence

	if near <= far {
		t.Errorf("Expected higher confidence for closer pair, got %f vs %f", near, far)
	}
	if far < 0.5 || near > 1.0 {
		t.Errorf("Confidence out of range: near %f, far %f", near, far)
	}
}

func TestCustomThresholds(t *testing.T) {
	s := New(WithConfig(Config{CriticalRangeKm: 1, HighRangeKm: 5, CloseRangeKm: 20}))

	threats := s.Scan([]models.OrbitalData{sampleAt("SAT-001", 0), sampleAt("SAT-002", 10)})
	if len(threats) != 1 || threats[0].RiskLevel != models.RiskMedium {
		t.Errorf("Expected MEDIUM under custom thresholds, got %+v", threats)
	}

	if got := s.Scan([]models.OrbitalData{sampleAt("SAT-001", 0), sampleAt("SAT-002", 30)}); len(got) != 0 {
		t.Errorf("Expected no threat beyond custom close range, got %d", len(got))
	}
}
