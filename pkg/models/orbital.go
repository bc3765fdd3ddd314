package models

import (
	"math"
	"time"
)

// Vector3 is a 3-component vector in kilometres (position) or km/s (velocity).
type Vector3 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// Sub returns v - o.
func (v Vector3) Sub(o Vector3) Vector3 {
	return Vector3{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

// Dot returns the scalar product of v and o.
func (v Vector3) Dot(o Vector3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Norm returns the Euclidean length of v.
func (v Vector3) Norm() float64 {
	return math.Sqrt(v.Dot(v))
}

// OrbitalData is one propagated position/velocity sample for a satellite.
// The store appends these; the threat scanner consumes the latest sample
// per satellite.
type OrbitalData struct {
	SatelliteID  string  `yaml:"satellite_id"`
	Position     Vector3 `yaml:"position_km"`
	Velocity     Vector3 `yaml:"velocity_kms"`
	Acceleration Vector3 `yaml:"acceleration_kms2"`

	OrbitalPeriodSec  float64 `yaml:"orbital_period_sec"`
	Eccentricity      float64 `yaml:"eccentricity"`
	Inclination       float64 `yaml:"inclination_deg"`
	RightAscension    float64 `yaml:"right_ascension_deg"`
	ArgumentOfPerigee float64 `yaml:"argument_of_perigee_deg"`
	MeanAnomaly       float64 `yaml:"mean_anomaly_deg"`

	Timestamp time.Time `yaml:"timestamp"`
}
