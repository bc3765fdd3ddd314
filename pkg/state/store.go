package state

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/astrogrid/constellation-ops/pkg/logger"
	"github.com/astrogrid/constellation-ops/pkg/models"
)

const (
	// DefaultHistoryCapacity bounds the snapshot ring.
	DefaultHistoryCapacity = 100

	// DefaultOrbitalCapacity bounds the accumulated orbital samples.
	// Oldest samples are evicted FIFO once the cap is reached.
	DefaultOrbitalCapacity = 1024
)

// Store owns the single mutable MissionState. Every mutating call updates
// the last-update timestamp; lookups on unknown ids fail with NotFound.
// The store is a single-writer resource per pipeline stage; the RWMutex
// lets summaries and queries be served concurrently with stage execution.
type Store struct {
	mu    sync.RWMutex
	state models.MissionState

	history    []models.MissionState
	historyCap int
	orbitalCap int

	now func() time.Time
	log logger.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithHistoryCapacity overrides the snapshot ring capacity.
func WithHistoryCapacity(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.historyCap = n
		}
	}
}

// WithOrbitalCapacity overrides the orbital sample retention cap.
func WithOrbitalCapacity(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.orbitalCap = n
		}
	}
}

// WithLogger routes store mutation logs to l.
func WithLogger(l logger.Logger) Option {
	return func(s *Store) { s.log = l }
}

// WithClock overrides the time source. Tests use this for reproducible
// timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New creates a store holding a fresh mission state: generated mission id,
// INITIALIZATION phase, empty collections, start and last-update equal to
// creation time.
func New(opts ...Option) *Store {
	s := &Store{
		historyCap: DefaultHistoryCapacity,
		orbitalCap: DefaultOrbitalCapacity,
		now:        time.Now,
		log:        logger.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.state = s.initialState()
	return s
}

func (s *Store) initialState() models.MissionState {
	now := s.now()
	return models.MissionState{
		MissionID:   uuid.NewString(),
		MissionName: "Autonomous Space Mission",
		Phase:       models.PhaseInitialization,
		StartTime:   now,
		LastUpdate:  now,
	}
}

// touch advances last_update, keeping it monotonically non-decreasing.
// Callers must hold the write lock.
func (s *Store) touch() {
	if now := s.now(); now.After(s.state.LastUpdate) {
		s.state.LastUpdate = now
	}
}

// Reset discards the current state and history and starts a fresh mission.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = s.initialState()
	s.history = nil
}

// SetMissionName renames the mission.
func (s *Store) SetMissionName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.MissionName = name
	s.touch()
}

// UpdateMissionPhase records a phase change. Transitions are
// unconditional: any phase may follow any other.
func (s *Store) UpdateMissionPhase(phase models.MissionPhase) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Phase = phase
	s.touch()
	s.log.Infof("%s mission phase: %s", logger.IconSatellite, phase)
}

// AddSatellite appends a satellite to the constellation. Inserting an id
// that is already present is a contract violation and fails with
// DuplicateEntity, leaving the collection unchanged.
func (s *Store) AddSatellite(sat models.Satellite) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.state.Satellites {
		if s.state.Satellites[i].ID == sat.ID {
			return &DuplicateEntityError{Kind: KindSatellite, ID: sat.ID}
		}
	}
	s.state.Satellites = append(s.state.Satellites, sat)
	s.state.SatelliteCount = len(s.state.Satellites)
	s.touch()
	s.log.Infof("%s added satellite %s", logger.IconSatellite, sat.ID)
	return nil
}

// UpdateSatellite merges the non-nil fields of u into the satellite and
// refreshes its last-contact timestamp.
func (s *Store) UpdateSatellite(id string, u models.SatelliteUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.state.Satellites {
		if s.state.Satellites[i].ID == id {
			u.Apply(&s.state.Satellites[i])
			s.state.Satellites[i].LastContact = s.now()
			s.touch()
			return nil
		}
	}
	return &NotFoundError{Kind: KindSatellite, ID: id}
}

// AddOrbitalData appends a propagated sample. Samples accumulate up to the
// configured cap; beyond it the oldest are evicted FIFO.
func (s *Store) AddOrbitalData(od models.OrbitalData) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.OrbitalData = append(s.state.OrbitalData, od)
	if over := len(s.state.OrbitalData) - s.orbitalCap; over > 0 {
		s.state.OrbitalData = append(s.state.OrbitalData[:0:0], s.state.OrbitalData[over:]...)
	}
	s.touch()
}

// AddCollisionThreat appends a threat record. Threats are append-only.
func (s *Store) AddCollisionThreat(t models.CollisionThreat) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.CollisionThreats = append(s.state.CollisionThreats, t)
	s.touch()
	s.log.Warnf("%s collision threat %s (%.1f km, %s)",
		logger.IconAlert, t.ThreatID, t.DistanceKm, t.RiskLevel)
}

// AddGroundStation appends a ground station.
func (s *Store) AddGroundStation(gs models.GroundStation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.state.GroundStations {
		if s.state.GroundStations[i].ID == gs.ID {
			return &DuplicateEntityError{Kind: KindGroundStation, ID: gs.ID}
		}
	}
	s.state.GroundStations = append(s.state.GroundStations, gs.Clone())
	s.touch()
	s.log.Infof("%s added ground station %s", logger.IconGlobe, gs.ID)
	return nil
}

// UpdateGroundStation merges the non-nil fields of u into the station and
// refreshes its last-contact timestamp.
func (s *Store) UpdateGroundStation(id string, u models.GroundStationUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.state.GroundStations {
		if s.state.GroundStations[i].ID == id {
			u.Apply(&s.state.GroundStations[i])
			s.state.GroundStations[i].LastContact = s.now()
			s.touch()
			return nil
		}
	}
	return &NotFoundError{Kind: KindGroundStation, ID: id}
}

// AddSpaceDebris appends a debris object to the catalog.
func (s *Store) AddSpaceDebris(d models.SpaceDebris) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.state.SpaceDebris {
		if s.state.SpaceDebris[i].ID == d.ID {
			return &DuplicateEntityError{Kind: KindSpaceDebris, ID: d.ID}
		}
	}
	s.state.SpaceDebris = append(s.state.SpaceDebris, d)
	s.touch()
	return nil
}

// UpdateSpaceDebris merges the non-nil fields of u into the debris record.
func (s *Store) UpdateSpaceDebris(id string, u models.SpaceDebrisUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.state.SpaceDebris {
		if s.state.SpaceDebris[i].ID == id {
			u.Apply(&s.state.SpaceDebris[i])
			s.state.SpaceDebris[i].LastUpdated = s.now()
			s.touch()
			return nil
		}
	}
	return &NotFoundError{Kind: KindSpaceDebris, ID: id}
}

// AddMaintenanceTask schedules a maintenance task.
func (s *Store) AddMaintenanceTask(t models.MaintenanceTask) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.state.MaintenanceTasks {
		if s.state.MaintenanceTasks[i].ID == t.ID {
			return &DuplicateEntityError{Kind: KindMaintenanceTask, ID: t.ID}
		}
	}
	s.state.MaintenanceTasks = append(s.state.MaintenanceTasks, t.Clone())
	s.touch()
	s.log.Infof("%s scheduled maintenance %s for %s", logger.IconWrench, t.ID, t.SatelliteID)
	return nil
}

// UpdateMaintenanceTask merges the non-nil fields of u into the task.
func (s *Store) UpdateMaintenanceTask(id string, u models.MaintenanceTaskUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.state.MaintenanceTasks {
		if s.state.MaintenanceTasks[i].ID == id {
			u.Apply(&s.state.MaintenanceTasks[i])
			s.touch()
			return nil
		}
	}
	return &NotFoundError{Kind: KindMaintenanceTask, ID: id}
}

// AddAlert appends an alert. Alerts are append-only; acknowledgement and
// resolution go through the explicit transitions below.
func (s *Store) AddAlert(a models.Alert) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Alerts = append(s.state.Alerts, a)
	s.touch()
	s.log.Warnf("%s alert [%s] %s", logger.IconAlert, a.Severity, a.Message)
}

// AcknowledgeAlert marks an existing alert as acknowledged.
func (s *Store) AcknowledgeAlert(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.state.Alerts {
		if s.state.Alerts[i].ID == id {
			s.state.Alerts[i].Acknowledged = true
			s.touch()
			return nil
		}
	}
	return &NotFoundError{Kind: KindAlert, ID: id}
}

// ResolveAlert marks an existing alert as resolved.
func (s *Store) ResolveAlert(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.state.Alerts {
		if s.state.Alerts[i].ID == id {
			s.state.Alerts[i].Resolved = true
			s.touch()
			return nil
		}
	}
	return &NotFoundError{Kind: KindAlert, ID: id}
}

// AddDecision appends to the audit trail.
func (s *Store) AddDecision(d models.Decision) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Decisions = append(s.state.Decisions, d)
	s.touch()
}

// SetMissionPlan installs the plan produced by the mission-plan stage.
func (s *Store) SetMissionPlan(p models.MissionPlan) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.MissionPlan = p.Clone()
	s.touch()
}

// SetMetrics installs refreshed performance metrics.
func (s *Store) SetMetrics(m models.PerformanceMetrics) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Metrics = m
	s.touch()
}

// Snapshot deep-copies the current state into the bounded history ring,
// evicting the oldest snapshot once the ring is full.
func (s *Store) Snapshot() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.history) == s.historyCap {
		copy(s.history, s.history[1:])
		s.history = s.history[:s.historyCap-1]
	}
	s.history = append(s.history, s.state.Clone())
	s.log.Debugf("%s snapshot saved (history: %d)", logger.IconSave, len(s.history))
}

// HistoryLen reports how many snapshots the ring currently holds.
func (s *Store) HistoryLen() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.history)
}

// HistoryAt returns a copy of the i-th oldest snapshot.
func (s *Store) HistoryAt(i int) (models.MissionState, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i < 0 || i >= len(s.history) {
		return models.MissionState{}, false
	}
	return s.history[i].Clone(), true
}

// Restore replaces the whole mission state, recomputing the satellite
// count invariant and refreshing last_update. Used by the serialization
// gateway after an import merge.
func (s *Store) Restore(st models.MissionState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st.SatelliteCount = len(st.Satellites)
	s.state = st.Clone()
	s.touch()
}

// State returns a deep copy of the current mission state.
func (s *Store) State() models.MissionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}
