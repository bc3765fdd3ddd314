package models

import (
	"testing"
)

func TestThreatIDPairOrderIndependent(t *testing.T) {
	a := ThreatID("SAT-001", "SAT-002")
	b := ThreatID("SAT-002", "SAT-001")

	if a != b {
		t.Errorf("Expected same id for both orders, got %s and %s", a, b)
	}
	if a != "COLL-SAT-001-SAT-002" {
		t.Errorf("Unexpected threat id: %s", a)
	}
}

func TestSatelliteUpdateAppliesOnlySetFields(t *testing.T) {
	sat := Satellite{
		ID:           "SAT-001",
		Status:       SatelliteStatusActive,
		BatteryLevel: 90,
		HealthScore:  95,
	}

	battery := 55.0
	SatelliteUpdate{BatteryLevel: &battery}.Apply(&sat)

	if sat.BatteryLevel != 55 {
		t.Errorf("Expected battery 55, got %f", sat.BatteryLevel)
	}
	if sat.Status != SatelliteStatusActive {
		t.Errorf("Status should be untouched, got %s", sat.Status)
	}
	if sat.HealthScore != 95 {
		t.Errorf("Health score should be untouched, got %f", sat.HealthScore)
	}
}

func TestMissionStateCloneIsDeep(t *testing.T) {
	st := MissionState{
		Satellites: []Satellite{{ID: "SAT-001", BatteryLevel: 90}},
		GroundStations: []GroundStation{
			{ID: "GS-001", ConnectedSatellites: []string{"SAT-001"}},
		},
	}

	clone := st.Clone()
	clone.Satellites[0].BatteryLevel = 10
	clone.GroundStations[0].ConnectedSatellites[0] = "SAT-999"

	if st.Satellites[0].BatteryLevel != 90 {
		t.Errorf("Clone mutation leaked into source satellite")
	}
	if st.GroundStations[0].ConnectedSatellites[0] != "SAT-001" {
		t.Errorf("Clone mutation leaked into source station links")
	}
}
