package models

import (
	"fmt"
	"time"
)

// RiskLevel classifies a collision or debris threat.
type RiskLevel string

func (r RiskLevel) String() string {
	return string(r)
}

const (
	RiskLow      RiskLevel = "LOW"
	RiskMedium   RiskLevel = "MEDIUM"
	RiskHigh     RiskLevel = "HIGH"
	RiskCritical RiskLevel = "CRITICAL"
)

// CollisionThreat records a detected close approach between two satellites.
// Threats are append-only: a later scan emits new records rather than
// editing old ones.
type CollisionThreat struct {
	ThreatID        string    `yaml:"threat_id"`
	SatelliteA      string    `yaml:"satellite_1"`
	SatelliteB      string    `yaml:"satellite_2"`
	DistanceKm      float64   `yaml:"distance_km"`
	TimeToCollision float64   `yaml:"time_to_collision_hours"`
	RiskLevel       RiskLevel `yaml:"risk_level"`
	ManeuverNeeded  bool      `yaml:"maneuver_needed"`
	Maneuver        string    `yaml:"avoidance_maneuver"`
	Confidence      float64   `yaml:"confidence"` // 0-1
	Timestamp       time.Time `yaml:"timestamp"`
}

// ThreatID derives the identifier for an unordered satellite pair. The
// result is the same whichever order the ids are given in, so (A,B) and
// (B,A) can never yield two distinct threats.
func ThreatID(satA, satB string) string {
	if satB < satA {
		satA, satB = satB, satA
	}
	return fmt.Sprintf("COLL-%s-%s", satA, satB)
}
