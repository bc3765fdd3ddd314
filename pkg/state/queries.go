package state

import (
	"time"

	"github.com/astrogrid/constellation-ops/pkg/models"
)

// Summary is a read-only projection of the mission state: entity counts
// plus the latest phase and timestamps.
type Summary struct {
	MissionID        string              `yaml:"mission_id"`
	MissionName      string              `yaml:"mission_name"`
	Phase            models.MissionPhase `yaml:"mission_phase"`
	SatelliteCount   int                 `yaml:"satellite_count"`
	CollisionThreats int                 `yaml:"collision_threats"`
	GroundStations   int                 `yaml:"ground_stations"`
	SpaceDebris      int                 `yaml:"space_debris"`
	MaintenanceTasks int                 `yaml:"maintenance_tasks"`
	Alerts           int                 `yaml:"alerts"`
	ActiveAlerts     int                 `yaml:"active_alerts"`
	Decisions        int                 `yaml:"decisions"`
	StartTime        time.Time           `yaml:"start_time"`
	LastUpdate       time.Time           `yaml:"last_update"`
}

// Summary projects the current counts and timestamps without copying any
// entity collections.
func (s *Store) Summary() Summary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	active := 0
	for i := range s.state.Alerts {
		if !s.state.Alerts[i].Resolved {
			active++
		}
	}

	return Summary{
		MissionID:        s.state.MissionID,
		MissionName:      s.state.MissionName,
		Phase:            s.state.Phase,
		SatelliteCount:   s.state.SatelliteCount,
		CollisionThreats: len(s.state.CollisionThreats),
		GroundStations:   len(s.state.GroundStations),
		SpaceDebris:      len(s.state.SpaceDebris),
		MaintenanceTasks: len(s.state.MaintenanceTasks),
		Alerts:           len(s.state.Alerts),
		ActiveAlerts:     active,
		Decisions:        len(s.state.Decisions),
		StartTime:        s.state.StartTime,
		LastUpdate:       s.state.LastUpdate,
	}
}

// SatelliteByID returns a copy of the satellite with the given id.
func (s *Store) SatelliteByID(id string) (models.Satellite, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.state.Satellites {
		if s.state.Satellites[i].ID == id {
			return s.state.Satellites[i], nil
		}
	}
	return models.Satellite{}, &NotFoundError{Kind: KindSatellite, ID: id}
}

// Satellites returns a copy of the satellite collection in insertion order.
func (s *Store) Satellites() []models.Satellite {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Satellite(nil), s.state.Satellites...)
}

// LatestOrbitalData returns the most recent orbital sample per satellite,
// ordered by satellite insertion order. Satellites without a sample are
// skipped. This is the authoritative input for the threat scanner.
func (s *Store) LatestOrbitalData() []models.OrbitalData {
	s.mu.RLock()
	defer s.mu.RUnlock()

	latest := make(map[string]models.OrbitalData, len(s.state.Satellites))
	for _, od := range s.state.OrbitalData {
		latest[od.SatelliteID] = od
	}

	out := make([]models.OrbitalData, 0, len(latest))
	for i := range s.state.Satellites {
		if od, ok := latest[s.state.Satellites[i].ID]; ok {
			out = append(out, od)
		}
	}
	return out
}

// ActiveAlerts returns the unresolved alerts.
func (s *Store) ActiveAlerts() []models.Alert {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Alert
	for i := range s.state.Alerts {
		if !s.state.Alerts[i].Resolved {
			out = append(out, s.state.Alerts[i])
		}
	}
	return out
}

// HighPriorityMaintenance returns the HIGH priority tasks that are not yet
// completed.
func (s *Store) HighPriorityMaintenance() []models.MaintenanceTask {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.MaintenanceTask
	for i := range s.state.MaintenanceTasks {
		t := &s.state.MaintenanceTasks[i]
		if t.Priority == models.PriorityHigh && t.Status != models.TaskStatusCompleted {
			out = append(out, t.Clone())
		}
	}
	return out
}

// HighRiskThreats returns the collision threats classified HIGH or
// CRITICAL.
func (s *Store) HighRiskThreats() []models.CollisionThreat {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.CollisionThreat
	for i := range s.state.CollisionThreats {
		t := &s.state.CollisionThreats[i]
		if t.RiskLevel == models.RiskHigh || t.RiskLevel == models.RiskCritical {
			out = append(out, *t)
		}
	}
	return out
}

// CollisionThreats returns a copy of every recorded threat.
func (s *Store) CollisionThreats() []models.CollisionThreat {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.CollisionThreat(nil), s.state.CollisionThreats...)
}

// GroundStations returns a copy of the ground station collection.
func (s *Store) GroundStations() []models.GroundStation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.GroundStation, len(s.state.GroundStations))
	for i, gs := range s.state.GroundStations {
		out[i] = gs.Clone()
	}
	return out
}

// SpaceDebris returns a copy of the debris catalog.
func (s *Store) SpaceDebris() []models.SpaceDebris {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.SpaceDebris(nil), s.state.SpaceDebris...)
}

// MaintenanceTasks returns a copy of every scheduled task.
func (s *Store) MaintenanceTasks() []models.MaintenanceTask {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.MaintenanceTask, len(s.state.MaintenanceTasks))
	for i, t := range s.state.MaintenanceTasks {
		out[i] = t.Clone()
	}
	return out
}
