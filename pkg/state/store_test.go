package state

import (
	"errors"
	"testing"
	"time"

	"github.com/astrogrid/constellation-ops/pkg/models"
)

func fixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

func testSatellite(id string) models.Satellite {
	return models.Satellite{
		ID:           id,
		Name:         "Test " + id,
		Status:       models.SatelliteStatusActive,
		AltitudeKm:   500,
		BatteryLevel: 90,
		HealthScore:  95,
	}
}

func TestNewStoreStartsInInitialization(t *testing.T) {
	s := New()
	st := s.State()

	if st.MissionID == "" {
		t.Error("Expected a generated mission id")
	}
	if st.Phase != models.PhaseInitialization {
		t.Errorf("Expected phase INITIALIZATION, got %s", st.Phase)
	}
	if st.SatelliteCount != 0 || len(st.Satellites) != 0 {
		t.Errorf("Expected empty constellation, got count %d", st.SatelliteCount)
	}
	if st.LastUpdate.Before(st.StartTime) {
		t.Error("last_update must not precede start_time")
	}
}

func TestAddSatelliteDuplicateFails(t *testing.T) {
	s := New()
	if err := s.AddSatellite(testSatellite("SAT-001")); err != nil {
		t.Fatalf("First insert failed: %v", err)
	}

	err := s.AddSatellite(testSatellite("SAT-001"))
	if err == nil {
		t.Fatal("Expected duplicate insert to fail")
	}
	if !errors.Is(err, ErrDuplicateEntity) {
		t.Errorf("Expected ErrDuplicateEntity, got %v", err)
	}

	var dup *DuplicateEntityError
	if !errors.As(err, &dup) {
		t.Fatalf("Expected DuplicateEntityError, got %T", err)
	}
	if dup.Kind != KindSatellite || dup.ID != "SAT-001" {
		t.Errorf("Unexpected error detail: %+v", dup)
	}

	if got := s.State().SatelliteCount; got != 1 {
		t.Errorf("Collection changed on failed insert, count %d", got)
	}
}

func TestSatelliteCountTracksCollection(t *testing.T) {
	s := New()
	for _, id := range []string{"SAT-001", "SAT-002", "SAT-003"} {
		if err := s.AddSatellite(testSatellite(id)); err != nil {
			t.Fatalf("Insert %s failed: %v", id, err)
		}
	}

	st := s.State()
	if st.SatelliteCount != len(st.Satellites) {
		t.Errorf("Count %d does not match collection %d", st.SatelliteCount, len(st.Satellites))
	}
	if st.SatelliteCount != 3 {
		t.Errorf("Expected 3 satellites, got %d", st.SatelliteCount)
	}
}

func TestUpdateUnknownSatelliteFails(t *testing.T) {
	s := New()
	battery := 50.0

	err := s.UpdateSatellite("SAT-404", models.SatelliteUpdate{BatteryLevel: &battery})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestLastUpdateIsMonotonic(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	current := base
	s := New(WithClock(func() time.Time { return current }))

	current = base.Add(time.Minute)
	if err := s.AddSatellite(testSatellite("SAT-001")); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	afterInsert := s.State().LastUpdate

	// Clock regression must not move last_update backwards.
	current = base.Add(-time.Hour)
	s.SetMissionName("Renamed")

	if got := s.State().LastUpdate; got.Before(afterInsert) {
		t.Errorf("last_update went backwards: %v -> %v", afterInsert, got)
	}
}

func TestSnapshotRingEvictsOldest(t *testing.T) {
	s := New(WithHistoryCapacity(3))

	for i := 0; i < 5; i++ {
		s.SetMissionName(string(rune('A' + i)))
		s.Snapshot()
	}

	if got := s.HistoryLen(); got != 3 {
		t.Fatalf("Expected ring of 3, got %d", got)
	}

	oldest, ok := s.HistoryAt(0)
	if !ok {
		t.Fatal("Expected a snapshot at index 0")
	}
	if oldest.MissionName != "C" {
		t.Errorf("Expected oldest retained snapshot C, got %s", oldest.MissionName)
	}

	newest, _ := s.HistoryAt(2)
	if newest.MissionName != "E" {
		t.Errorf("Expected newest snapshot E, got %s", newest.MissionName)
	}
}

func TestSnapshotIsIsolatedFromLaterMutations(t *testing.T) {
	s := New()
	if err := s.AddSatellite(testSatellite("SAT-001")); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	s.Snapshot()

	battery := 10.0
	if err := s.UpdateSatellite("SAT-001", models.SatelliteUpdate{BatteryLevel: &battery}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	snap, _ := s.HistoryAt(0)
	if snap.Satellites[0].BatteryLevel != 90 {
		t.Errorf("Snapshot mutated after the fact: battery %f", snap.Satellites[0].BatteryLevel)
	}
}

func TestOrbitalDataEvictsFIFO(t *testing.T) {
	s := New(WithOrbitalCapacity(2))

	for _, id := range []string{"a", "b", "c"} {
		s.AddOrbitalData(models.OrbitalData{SatelliteID: id})
	}

	st := s.State()
	if len(st.OrbitalData) != 2 {
		t.Fatalf("Expected 2 retained samples, got %d", len(st.OrbitalData))
	}
	if st.OrbitalData[0].SatelliteID != "b" || st.OrbitalData[1].SatelliteID != "c" {
		t.Errorf("Expected oldest sample evicted, got %s, %s",
			st.OrbitalData[0].SatelliteID, st.OrbitalData[1].SatelliteID)
	}
}

func TestRestoreRecomputesSatelliteCount(t *testing.T) {
	s := New()

	st := models.MissionState{
		MissionID:      "M-1",
		Satellites:     []models.Satellite{testSatellite("SAT-001"), testSatellite("SAT-002")},
		SatelliteCount: 99,
	}
	s.Restore(st)

	got := s.State()
	if got.SatelliteCount != 2 {
		t.Errorf("Expected recomputed count 2, got %d", got.SatelliteCount)
	}
	if got.MissionID != "M-1" {
		t.Errorf("Expected restored mission id M-1, got %s", got.MissionID)
	}
}

func TestAlertLifecycle(t *testing.T) {
	s := New()
	s.AddAlert(models.Alert{ID: "ALT-1", Severity: models.SeverityHigh, Message: "test"})

	if err := s.AcknowledgeAlert("ALT-1"); err != nil {
		t.Fatalf("Acknowledge failed: %v", err)
	}
	if err := s.ResolveAlert("ALT-1"); err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if err := s.ResolveAlert("ALT-404"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound for unknown alert, got %v", err)
	}

	st := s.State()
	if !st.Alerts[0].Acknowledged || !st.Alerts[0].Resolved {
		t.Errorf("Alert transitions not recorded: %+v", st.Alerts[0])
	}
	if len(s.ActiveAlerts()) != 0 {
		t.Error("Resolved alert still reported active")
	}
}

func TestResetStartsFreshMission(t *testing.T) {
	s := New()
	if err := s.AddSatellite(testSatellite("SAT-001")); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	s.Snapshot()
	firstID := s.State().MissionID

	s.Reset()

	st := s.State()
	if st.MissionID == firstID {
		t.Error("Expected a new mission id after reset")
	}
	if st.SatelliteCount != 0 {
		t.Errorf("Expected empty constellation after reset, got %d", st.SatelliteCount)
	}
	if s.HistoryLen() != 0 {
		t.Errorf("Expected cleared history, got %d", s.HistoryLen())
	}
}
