package models

import (
	"time"
)

// TaskPriority orders maintenance work.
type TaskPriority string

func (p TaskPriority) String() string {
	return string(p)
}

const (
	PriorityLow    TaskPriority = "LOW"
	PriorityMedium TaskPriority = "MEDIUM"
	PriorityHigh   TaskPriority = "HIGH"
)

// Maintenance task statuses.
const (
	TaskStatusScheduled  = "SCHEDULED"
	TaskStatusInProgress = "IN_PROGRESS"
	TaskStatusCompleted  = "COMPLETED"
	TaskStatusCancelled  = "CANCELLED"
)

// MaintenanceTask is scheduled work for a satellite flagged by the
// maintenance-predict stage.
type MaintenanceTask struct {
	ID          string       `yaml:"id"`
	SatelliteID string       `yaml:"satellite_id"`
	TaskType    string       `yaml:"task_type"`
	Priority    TaskPriority `yaml:"priority"`

	EstimatedHours    float64  `yaml:"estimated_duration_hours"`
	RequiredResources []string `yaml:"required_resources"`

	ScheduledTime time.Time `yaml:"scheduled_time"`
	Status        string    `yaml:"status"`
	Confidence    float64   `yaml:"confidence"` // 0-1
}

// Clone returns a deep copy of the task.
func (t MaintenanceTask) Clone() MaintenanceTask {
	out := t
	out.RequiredResources = append([]string(nil), t.RequiredResources...)
	return out
}

// MaintenanceTaskUpdate carries a partial in-place update for a task.
type MaintenanceTaskUpdate struct {
	Priority      *TaskPriority
	ScheduledTime *time.Time
	Status        *string
	Confidence    *float64
}

// Apply merges the non-nil fields of the update into the task.
func (u MaintenanceTaskUpdate) Apply(t *MaintenanceTask) {
	if u.Priority != nil {
		t.Priority = *u.Priority
	}
	if u.ScheduledTime != nil {
		t.ScheduledTime = *u.ScheduledTime
	}
	if u.Status != nil {
		t.Status = *u.Status
	}
	if u.Confidence != nil {
		t.Confidence = *u.Confidence
	}
}
