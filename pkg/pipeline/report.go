package pipeline

import (
	"fmt"
	"time"

	"github.com/astrogrid/constellation-ops/pkg/models"
	"github.com/astrogrid/constellation-ops/pkg/state"
)

// MissionReport is the end-of-run summary handed to the CLI and the
// export surface.
type MissionReport struct {
	MissionID   string              `yaml:"mission_id"`
	MissionName string              `yaml:"mission_name"`
	Phase       models.MissionPhase `yaml:"mission_phase"`
	GeneratedAt time.Time           `yaml:"generated_at"`

	Metrics models.PerformanceMetrics `yaml:"performance_metrics"`

	HighRiskThreats  []models.CollisionThreat  `yaml:"high_risk_threats"`
	OpenMaintenance  []models.MaintenanceTask  `yaml:"open_maintenance"`
	ActiveAlerts     []models.Alert            `yaml:"active_alerts"`
	Recommendations  []string                  `yaml:"recommendations"`
}

// BuildReport projects the store into a report. It reads only, so it can
// run after a failed mission as well.
func BuildReport(store *state.Store, now time.Time) *MissionReport {
	st := store.State()

	rep := &MissionReport{
		MissionID:       st.MissionID,
		MissionName:     st.MissionName,
		Phase:           st.Phase,
		GeneratedAt:     now,
		Metrics:         st.Metrics,
		HighRiskThreats: store.HighRiskThreats(),
		OpenMaintenance: store.HighPriorityMaintenance(),
		ActiveAlerts:    store.ActiveAlerts(),
	}

	if n := len(rep.HighRiskThreats); n > 0 {
		rep.Recommendations = append(rep.Recommendations,
			fmt.Sprintf("Plan avoidance maneuvers for %d high-risk pairs", n))
	}
	if n := len(rep.OpenMaintenance); n > 0 {
		rep.Recommendations = append(rep.Recommendations,
			fmt.Sprintf("Prioritize %d open high-priority maintenance tasks", n))
	}
	if st.Phase == models.PhaseError {
		rep.Recommendations = append(rep.Recommendations,
			"Review the failure alert, then restart the run from a fresh mission")
	}
	if len(rep.Recommendations) == 0 {
		rep.Recommendations = append(rep.Recommendations, "Constellation nominal, continue routine monitoring")
	}
	return rep
}
