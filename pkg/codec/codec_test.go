package codec

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/astrogrid/constellation-ops/pkg/models"
	"github.com/astrogrid/constellation-ops/pkg/state"
)

func seededStore(t *testing.T) *state.Store {
	t.Helper()
	s := state.New(state.WithClock(func() time.Time {
		return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	}))

	for _, id := range []string{"SAT-001", "SAT-002", "SAT-003"} {
		err := s.AddSatellite(models.Satellite{
			ID:           id,
			Name:         "Test " + id,
			Status:       models.SatelliteStatusActive,
			AltitudeKm:   500,
			BatteryLevel: 90,
		})
		if err != nil {
			t.Fatalf("Seed %s failed: %v", id, err)
		}
	}
	s.AddAlert(models.Alert{ID: "ALT-1", Severity: models.SeverityHigh, Message: "close approach"})
	s.AddDecision(models.Decision{ID: "DEC-1", Stage: "threat_scan", Decision: "monitor", Confidence: 0.98})
	return s
}

func TestExportImportRoundTrip(t *testing.T) {
	src := seededStore(t)

	data, err := Export(src)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	dst := state.New()
	if err := Import(dst, data); err != nil {
		t.Fatalf("Import failed: %v", err)
	}

	got := dst.State()
	want := src.State()

	if got.MissionID != want.MissionID {
		t.Errorf("Mission id changed: %s vs %s", got.MissionID, want.MissionID)
	}
	if got.SatelliteCount != 3 || len(got.Satellites) != 3 {
		t.Errorf("Expected 3 satellites, got count %d, len %d", got.SatelliteCount, len(got.Satellites))
	}
	if got.Satellites[1].ID != "SAT-002" || got.Satellites[1].BatteryLevel != 90 {
		t.Errorf("Satellite fields lost in round trip: %+v", got.Satellites[1])
	}
	if len(got.Alerts) != 1 || got.Alerts[0].Message != "close approach" {
		t.Errorf("Alerts lost in round trip: %+v", got.Alerts)
	}
	if len(got.Decisions) != 1 || got.Decisions[0].Confidence != 0.98 {
		t.Errorf("Decisions lost in round trip: %+v", got.Decisions)
	}
}

func TestImportMergesOnlyPresentSections(t *testing.T) {
	s := seededStore(t)
	before := s.State()

	doc := `
satellites:
  - id: SAT-100
    name: Replacement
    status: ACTIVE
    altitude_km: 700
`
	if err := Import(s, []byte(doc)); err != nil {
		t.Fatalf("Import failed: %v", err)
	}

	got := s.State()
	if len(got.Satellites) != 1 || got.Satellites[0].ID != "SAT-100" {
		t.Errorf("Satellites section not replaced: %+v", got.Satellites)
	}
	if got.SatelliteCount != 1 {
		t.Errorf("Count not recomputed after merge, got %d", got.SatelliteCount)
	}
	if len(got.Alerts) != 1 {
		t.Errorf("Absent alerts section should keep current alerts, got %d", len(got.Alerts))
	}
	if got.MissionID != before.MissionID || got.MissionName != before.MissionName {
		t.Error("Absent identity fields should keep current values")
	}
}

func TestImportRecomputesClaimedCount(t *testing.T) {
	s := state.New()

	doc := `
satellite_count: 42
satellites:
  - id: SAT-001
    altitude_km: 500
  - id: SAT-002
    altitude_km: 550
`
	if err := Import(s, []byte(doc)); err != nil {
		t.Fatalf("Import failed: %v", err)
	}

	if got := s.State().SatelliteCount; got != 2 {
		t.Errorf("Expected recomputed count 2, got %d", got)
	}
}

func TestImportRejectsMalformedDocument(t *testing.T) {
	s := seededStore(t)
	before := s.State()

	err := Import(s, []byte("satellites: [unclosed"))
	if err == nil {
		t.Fatal("Expected malformed document to fail")
	}

	var malformed *MalformedDocumentError
	if !errors.As(err, &malformed) {
		t.Errorf("Expected MalformedDocumentError, got %T", err)
	}

	if got := s.State(); len(got.Satellites) != len(before.Satellites) {
		t.Error("Failed import must leave the state untouched")
	}
}

func TestImportRejectsUnknownFields(t *testing.T) {
	s := state.New()

	err := Import(s, []byte("warp_drive: engaged\n"))
	if err == nil {
		t.Fatal("Expected unknown field to be rejected")
	}
	if !strings.Contains(err.Error(), "malformed") {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestImportEmptyDocumentIsNoOp(t *testing.T) {
	s := seededStore(t)
	before := s.State()

	if err := Import(s, nil); err != nil {
		t.Fatalf("Empty import failed: %v", err)
	}
	if got := s.State(); got.MissionID != before.MissionID || len(got.Satellites) != 3 {
		t.Error("Empty document must not change the state")
	}
}

func TestExportImportFiles(t *testing.T) {
	src := seededStore(t)
	path := filepath.Join(t.TempDir(), "mission.yaml")

	if err := ExportToFile(src, path); err != nil {
		t.Fatalf("ExportToFile failed: %v", err)
	}

	dst := state.New()
	if err := ImportFromFile(dst, path); err != nil {
		t.Fatalf("ImportFromFile failed: %v", err)
	}
	if dst.State().SatelliteCount != 3 {
		t.Errorf("File round trip lost satellites, count %d", dst.State().SatelliteCount)
	}
}
