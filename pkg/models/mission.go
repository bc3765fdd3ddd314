package models

import (
	"time"
)

// MissionPhase is the single current stage label of the pipeline.
type MissionPhase string

func (p MissionPhase) String() string {
	return string(p)
}

const (
	PhaseInitialization     MissionPhase = "INITIALIZATION"
	PhaseOrbitalCalculation MissionPhase = "ORBITAL_CALCULATION"
	PhaseConstellationMgmt  MissionPhase = "CONSTELLATION_MANAGEMENT"
	PhaseCollisionMonitor   MissionPhase = "COLLISION_MONITORING"
	PhaseMissionPlanning    MissionPhase = "MISSION_PLANNING"
	PhaseGroundCoordination MissionPhase = "GROUND_COORDINATION"
	PhaseMaintenance        MissionPhase = "MAINTENANCE_ANALYSIS"
	PhaseDebrisMonitoring   MissionPhase = "DEBRIS_MONITORING"
	PhaseCompleted          MissionPhase = "COMPLETED"
	PhaseError              MissionPhase = "ERROR"
)

// MissionTimeline describes the planned schedule of a mission run.
type MissionTimeline struct {
	Start    time.Time `yaml:"start"`
	Duration string    `yaml:"duration"`
	Phases   []string  `yaml:"phases"`
}

// MissionResources summarizes the assets committed to the mission.
type MissionResources struct {
	Satellites     int    `yaml:"satellites"`
	GroundStations int    `yaml:"ground_stations"`
	Bandwidth      string `yaml:"bandwidth"`
	Power          string `yaml:"power"`
}

// MissionPlan is produced and refreshed by the mission-plan stage.
type MissionPlan struct {
	Name            string            `yaml:"name"`
	Objectives      []string          `yaml:"objectives"`
	Timeline        MissionTimeline   `yaml:"timeline"`
	Resources       MissionResources  `yaml:"resources"`
	SuccessCriteria map[string]string `yaml:"success_criteria"`
	Status          string            `yaml:"status"`
}

// Clone returns a deep copy of the plan.
func (p MissionPlan) Clone() MissionPlan {
	out := p
	out.Objectives = append([]string(nil), p.Objectives...)
	out.Timeline.Phases = append([]string(nil), p.Timeline.Phases...)
	if p.SuccessCriteria != nil {
		out.SuccessCriteria = make(map[string]string, len(p.SuccessCriteria))
		for k, v := range p.SuccessCriteria {
			out.SuccessCriteria[k] = v
		}
	}
	return out
}

// PerformanceMetrics aggregates counters over a mission run.
type PerformanceMetrics struct {
	SatellitesManaged  int     `yaml:"satellites_managed"`
	ThreatsDetected    int     `yaml:"threats_detected"`
	TasksScheduled     int     `yaml:"tasks_scheduled"`
	AlertsRaised       int     `yaml:"alerts_raised"`
	DecisionsMade      int     `yaml:"decisions_made"`
	StationsActive     int     `yaml:"stations_active"`
	DebrisTracked      int     `yaml:"debris_tracked"`
	CoveragePercent    float64 `yaml:"coverage_percent"`
	MeanHealthScore    float64 `yaml:"mean_health_score"`
	MissionDurationSec float64 `yaml:"mission_duration_sec"`
}

// MissionState is the root aggregate threaded through every pipeline stage.
// The state store owns the only live instance; everything else works on
// deep copies.
type MissionState struct {
	MissionID   string       `yaml:"mission_id"`
	MissionName string       `yaml:"mission_name"`
	Phase       MissionPhase `yaml:"mission_phase"`
	StartTime   time.Time    `yaml:"start_time"`
	LastUpdate  time.Time    `yaml:"last_update"`

	Satellites     []Satellite `yaml:"satellites"`
	SatelliteCount int         `yaml:"satellite_count"`

	OrbitalData      []OrbitalData     `yaml:"orbital_data"`
	CollisionThreats []CollisionThreat `yaml:"collision_threats"`
	GroundStations   []GroundStation   `yaml:"ground_stations"`
	SpaceDebris      []SpaceDebris     `yaml:"space_debris"`
	MaintenanceTasks []MaintenanceTask `yaml:"maintenance_tasks"`
	Alerts           []Alert           `yaml:"alerts"`
	Decisions        []Decision        `yaml:"decisions"`

	MissionPlan MissionPlan        `yaml:"mission_plan"`
	Metrics     PerformanceMetrics `yaml:"performance_metrics"`
}

// Clone returns a deep copy of the entire mission state.
func (s MissionState) Clone() MissionState {
	out := s
	out.Satellites = append([]Satellite(nil), s.Satellites...)
	out.OrbitalData = append([]OrbitalData(nil), s.OrbitalData...)
	out.CollisionThreats = append([]CollisionThreat(nil), s.CollisionThreats...)
	out.GroundStations = make([]GroundStation, len(s.GroundStations))
	for i, gs := range s.GroundStations {
		out.GroundStations[i] = gs.Clone()
	}
	out.SpaceDebris = append([]SpaceDebris(nil), s.SpaceDebris...)
	out.MaintenanceTasks = make([]MaintenanceTask, len(s.MaintenanceTasks))
	for i, mt := range s.MaintenanceTasks {
		out.MaintenanceTasks[i] = mt.Clone()
	}
	out.Alerts = append([]Alert(nil), s.Alerts...)
	out.Decisions = append([]Decision(nil), s.Decisions...)
	out.MissionPlan = s.MissionPlan.Clone()
	return out
}
