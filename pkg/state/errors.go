package state

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is checks. The typed errors below carry the
// entity kind and id for errors.As.
var (
	ErrDuplicateEntity = errors.New("duplicate entity")
	ErrNotFound        = errors.New("entity not found")
)

// Entity kinds reported by store errors.
const (
	KindSatellite       = "satellite"
	KindGroundStation   = "ground_station"
	KindSpaceDebris     = "space_debris"
	KindMaintenanceTask = "maintenance_task"
	KindAlert           = "alert"
)

// DuplicateEntityError reports an insert whose id is already present.
type DuplicateEntityError struct {
	Kind string
	ID   string
}

func (e *DuplicateEntityError) Error() string {
	return fmt.Sprintf("%s %q already exists", e.Kind, e.ID)
}

func (e *DuplicateEntityError) Is(target error) bool {
	return target == ErrDuplicateEntity
}

// NotFoundError reports an operation referencing an unknown id. The store
// never silently no-ops on a missing reference.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
