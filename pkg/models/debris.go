package models

import (
	"time"
)

// SpaceDebris is one tracked debris object from the catalog refresh.
type SpaceDebris struct {
	ID        string    `yaml:"id"`
	Name      string    `yaml:"name"`
	SizeClass string    `yaml:"size_class"`
	MassKg    float64   `yaml:"mass_kg"`

	VelocityKms   float64 `yaml:"velocity_kms"`
	OrbitAltitude float64 `yaml:"orbit_altitude_km"`

	ThreatLevel      RiskLevel `yaml:"threat_level"`
	TrackingAccuracy float64   `yaml:"tracking_accuracy_pct"`
	LastUpdated      time.Time `yaml:"last_updated"`
}

// SpaceDebrisUpdate carries a partial in-place update for a debris object.
type SpaceDebrisUpdate struct {
	VelocityKms      *float64
	OrbitAltitude    *float64
	ThreatLevel      *RiskLevel
	TrackingAccuracy *float64
}

// Apply merges the non-nil fields of the update into the debris record.
func (u SpaceDebrisUpdate) Apply(d *SpaceDebris) {
	if u.VelocityKms != nil {
		d.VelocityKms = *u.VelocityKms
	}
	if u.OrbitAltitude != nil {
		d.OrbitAltitude = *u.OrbitAltitude
	}
	if u.ThreatLevel != nil {
		d.ThreatLevel = *u.ThreatLevel
	}
	if u.TrackingAccuracy != nil {
		d.TrackingAccuracy = *u.TrackingAccuracy
	}
}
