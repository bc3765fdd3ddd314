// Package codec is the serialization gateway: it renders the mission
// state to YAML and merges YAML documents back in. Import is a shallow
// top-level merge, so a document carrying only a satellites block
// replaces the satellites and leaves everything else untouched.
package codec

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/astrogrid/constellation-ops/pkg/models"
	"github.com/astrogrid/constellation-ops/pkg/state"
)

// MalformedDocumentError reports a document that could not be decoded,
// including documents with fields the schema does not know.
type MalformedDocumentError struct {
	Err error
}

func (e *MalformedDocumentError) Error() string {
	return fmt.Sprintf("malformed mission document: %v", e.Err)
}

func (e *MalformedDocumentError) Unwrap() error {
	return e.Err
}

// document mirrors MissionState with every top-level field optional.
// A nil field was absent from the input and keeps the current value.
type document struct {
	MissionID   *string              `yaml:"mission_id"`
	MissionName *string              `yaml:"mission_name"`
	Phase       *models.MissionPhase `yaml:"mission_phase"`
	StartTime   *time.Time           `yaml:"start_time"`
	LastUpdate  *time.Time           `yaml:"last_update"`

	Satellites     *[]models.Satellite `yaml:"satellites"`
	SatelliteCount *int                `yaml:"satellite_count"`

	OrbitalData      *[]models.OrbitalData     `yaml:"orbital_data"`
	CollisionThreats *[]models.CollisionThreat `yaml:"collision_threats"`
	GroundStations   *[]models.GroundStation   `yaml:"ground_stations"`
	SpaceDebris      *[]models.SpaceDebris     `yaml:"space_debris"`
	MaintenanceTasks *[]models.MaintenanceTask `yaml:"maintenance_tasks"`
	Alerts           *[]models.Alert           `yaml:"alerts"`
	Decisions        *[]models.Decision        `yaml:"decisions"`

	MissionPlan *models.MissionPlan        `yaml:"mission_plan"`
	Metrics     *models.PerformanceMetrics `yaml:"performance_metrics"`
}

// Export renders the full mission state as a YAML document.
func Export(store *state.Store) ([]byte, error) {
	out, err := yaml.Marshal(store.State())
	if err != nil {
		return nil, fmt.Errorf("encode mission state: %w", err)
	}
	return out, nil
}

// ExportToFile writes the exported state to path.
func ExportToFile(store *state.Store, path string) error {
	data, err := Export(store)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write mission export: %w", err)
	}
	return nil
}

// Import merges a YAML document into the store. Fields present in the
// document replace the current value wholesale; absent fields keep
// theirs. The satellite count is recomputed from the merged satellite
// list, whatever the document claims. Decode failures and unknown
// fields reject the whole document and leave the state untouched.
func Import(store *state.Store, data []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			// Empty document, nothing to merge.
			return nil
		}
		return &MalformedDocumentError{Err: err}
	}

	merged := store.State()

	if doc.MissionID != nil {
		merged.MissionID = *doc.MissionID
	}
	if doc.MissionName != nil {
		merged.MissionName = *doc.MissionName
	}
	if doc.Phase != nil {
		merged.Phase = *doc.Phase
	}
	if doc.StartTime != nil {
		merged.StartTime = *doc.StartTime
	}
	if doc.LastUpdate != nil {
		merged.LastUpdate = *doc.LastUpdate
	}
	if doc.Satellites != nil {
		merged.Satellites = *doc.Satellites
	}
	if doc.OrbitalData != nil {
		merged.OrbitalData = *doc.OrbitalData
	}
	if doc.CollisionThreats != nil {
		merged.CollisionThreats = *doc.CollisionThreats
	}
	if doc.GroundStations != nil {
		merged.GroundStations = *doc.GroundStations
	}
	if doc.SpaceDebris != nil {
		merged.SpaceDebris = *doc.SpaceDebris
	}
	if doc.MaintenanceTasks != nil {
		merged.MaintenanceTasks = *doc.MaintenanceTasks
	}
	if doc.Alerts != nil {
		merged.Alerts = *doc.Alerts
	}
	if doc.Decisions != nil {
		merged.Decisions = *doc.Decisions
	}
	if doc.MissionPlan != nil {
		merged.MissionPlan = *doc.MissionPlan
	}
	if doc.Metrics != nil {
		merged.Metrics = *doc.Metrics
	}

	store.Restore(merged)
	return nil
}

// ImportFromFile merges the document at path into the store.
func ImportFromFile(store *state.Store, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read mission document: %w", err)
	}
	return Import(store, data)
}
