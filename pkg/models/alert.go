package models

import (
	"time"
)

// AlertSeverity ranks how urgently an alert needs attention.
type AlertSeverity string

func (s AlertSeverity) String() string {
	return string(s)
}

const (
	SeverityInfo     AlertSeverity = "INFO"
	SeverityWarning  AlertSeverity = "WARNING"
	SeverityHigh     AlertSeverity = "HIGH"
	SeverityCritical AlertSeverity = "CRITICAL"
)

// Alert is an append-only operational notification. Acknowledgement and
// resolution are explicit transitions on the existing record, never a new
// alert.
type Alert struct {
	ID          string        `yaml:"id"`
	Type        string        `yaml:"type"`
	Severity    AlertSeverity `yaml:"severity"`
	Message     string        `yaml:"message"`
	SatelliteID string        `yaml:"satellite_id,omitempty"`
	Timestamp   time.Time     `yaml:"timestamp"`

	Acknowledged bool `yaml:"acknowledged"`
	Resolved     bool `yaml:"resolved"`
}
