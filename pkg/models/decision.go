package models

import (
	"time"
)

// Decision is one entry in the append-only audit trail. Each pipeline
// stage records at least one on successful completion.
type Decision struct {
	ID         string    `yaml:"id"`
	Stage      string    `yaml:"stage"`
	Decision   string    `yaml:"decision"`
	Reasoning  string    `yaml:"reasoning"`
	Confidence float64   `yaml:"confidence"` // 0-1
	Timestamp  time.Time `yaml:"timestamp"`
	Impact     string    `yaml:"impact"`
}
