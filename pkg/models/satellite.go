package models

import (
	"time"
)

// SatelliteStatus is the operational state of a satellite.
type SatelliteStatus string

func (s SatelliteStatus) String() string {
	return string(s)
}

const (
	SatelliteStatusActive      SatelliteStatus = "ACTIVE"
	SatelliteStatusStandby     SatelliteStatus = "STANDBY"
	SatelliteStatusMaintenance SatelliteStatus = "MAINTENANCE"
	SatelliteStatusOffline     SatelliteStatus = "OFFLINE"
	SatelliteStatusEmergency   SatelliteStatus = "EMERGENCY"
)

// Satellite is one member of the constellation. The ID is stable for the
// satellite's lifetime; a satellite is appended once and mutated in place
// by later stages, never removed during a mission run.
type Satellite struct {
	ID          string          `yaml:"id"`
	Name        string          `yaml:"name"`
	Type        string          `yaml:"type"`
	Status      SatelliteStatus `yaml:"status"`
	AltitudeKm  float64         `yaml:"altitude_km"`
	Inclination float64         `yaml:"inclination_deg"`
	Longitude   float64         `yaml:"longitude_deg"`
	Latitude    float64         `yaml:"latitude_deg"`
	VelocityKms float64         `yaml:"velocity_kms"`

	BatteryLevel     float64 `yaml:"battery_level"`    // 0-100
	SignalStrength   float64 `yaml:"signal_strength"`  // 0-100
	TemperatureC     float64 `yaml:"temperature_c"`
	PowerConsumption float64 `yaml:"power_consumption_w"`
	DataThroughput   float64 `yaml:"data_throughput_mbps"`

	LastContact    time.Time `yaml:"last_contact"`
	HealthScore    float64   `yaml:"health_score"`   // 0-100
	MaintenanceDue bool      `yaml:"maintenance_due"`
	CollisionRisk  float64   `yaml:"collision_risk"` // 0-1
}

// SatelliteUpdate carries a partial in-place update for a satellite.
// Only non-nil fields are applied.
type SatelliteUpdate struct {
	Status           *SatelliteStatus
	AltitudeKm       *float64
	Inclination      *float64
	Longitude        *float64
	Latitude         *float64
	VelocityKms      *float64
	BatteryLevel     *float64
	SignalStrength   *float64
	TemperatureC     *float64
	PowerConsumption *float64
	DataThroughput   *float64
	HealthScore      *float64
	MaintenanceDue   *bool
	CollisionRisk    *float64
}

// Apply merges the non-nil fields of the update into the satellite.
func (u SatelliteUpdate) Apply(s *Satellite) {
	if u.Status != nil {
		s.Status = *u.Status
	}
	if u.AltitudeKm != nil {
		s.AltitudeKm = *u.AltitudeKm
	}
	if u.Inclination != nil {
		s.Inclination = *u.Inclination
	}
	if u.Longitude != nil {
		s.Longitude = *u.Longitude
	}
	if u.Latitude != nil {
		s.Latitude = *u.Latitude
	}
	if u.VelocityKms != nil {
		s.VelocityKms = *u.VelocityKms
	}
	if u.BatteryLevel != nil {
		s.BatteryLevel = *u.BatteryLevel
	}
	if u.SignalStrength != nil {
		s.SignalStrength = *u.SignalStrength
	}
	if u.TemperatureC != nil {
		s.TemperatureC = *u.TemperatureC
	}
	if u.PowerConsumption != nil {
		s.PowerConsumption = *u.PowerConsumption
	}
	if u.DataThroughput != nil {
		s.DataThroughput = *u.DataThroughput
	}
	if u.HealthScore != nil {
		s.HealthScore = *u.HealthScore
	}
	if u.MaintenanceDue != nil {
		s.MaintenanceDue = *u.MaintenanceDue
	}
	if u.CollisionRisk != nil {
		s.CollisionRisk = *u.CollisionRisk
	}
}
