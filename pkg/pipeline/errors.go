package pipeline

import (
	"fmt"
)

// StageFailureError reports that a pipeline stage could not complete. The
// orchestrator converts it into a CRITICAL alert and an ERROR phase
// transition, then re-surfaces it to the caller.
type StageFailureError struct {
	Stage string
	Err   error
}

func (e *StageFailureError) Error() string {
	return fmt.Sprintf("stage %s failed: %v", e.Stage, e.Err)
}

func (e *StageFailureError) Unwrap() error {
	return e.Err
}
