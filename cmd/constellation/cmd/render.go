package cmd

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/astrogrid/constellation-ops/pkg/models"
	"github.com/astrogrid/constellation-ops/pkg/pipeline"
	"github.com/astrogrid/constellation-ops/pkg/state"
)

var (
	colorHeading  = color.New(color.FgCyan, color.Bold)
	colorOK       = color.New(color.FgGreen)
	colorWarning  = color.New(color.FgYellow)
	colorDanger   = color.New(color.FgRed)
	colorCritical = color.New(color.FgRed, color.Bold)
)

func riskColor(risk models.RiskLevel) *color.Color {
	switch risk {
	case models.RiskCritical:
		return colorCritical
	case models.RiskHigh:
		return colorDanger
	case models.RiskMedium:
		return colorWarning
	default:
		return colorOK
	}
}

func severityColor(sev models.AlertSeverity) *color.Color {
	switch sev {
	case models.SeverityCritical:
		return colorCritical
	case models.SeverityHigh:
		return colorDanger
	case models.SeverityWarning:
		return colorWarning
	default:
		return colorOK
	}
}

func renderReport(rep *pipeline.MissionReport) {
	if rep == nil {
		return
	}

	_, _ = colorHeading.Printf("\nMission Report: %s\n", rep.MissionName)
	fmt.Printf("  Mission ID: %s\n", rep.MissionID)
	fmt.Printf("  Phase:      %s\n", rep.Phase)

	m := rep.Metrics
	_, _ = colorHeading.Println("\nPerformance")
	fmt.Printf("  Satellites managed: %d\n", m.SatellitesManaged)
	fmt.Printf("  Threats detected:   %d\n", m.ThreatsDetected)
	fmt.Printf("  Tasks scheduled:    %d\n", m.TasksScheduled)
	fmt.Printf("  Stations active:    %d\n", m.StationsActive)
	fmt.Printf("  Debris tracked:     %d\n", m.DebrisTracked)
	fmt.Printf("  Coverage:           %.1f%%\n", m.CoveragePercent)
	fmt.Printf("  Mean health score:  %.1f\n", m.MeanHealthScore)

	if len(rep.HighRiskThreats) > 0 {
		_, _ = colorHeading.Println("\nHigh-Risk Threats")
		for _, t := range rep.HighRiskThreats {
			_, _ = riskColor(t.RiskLevel).Printf("  [%s] %s <-> %s at %.1f km (%s)\n",
				t.RiskLevel, t.SatelliteA, t.SatelliteB, t.DistanceKm, t.Maneuver)
		}
	}

	if len(rep.ActiveAlerts) > 0 {
		_, _ = colorHeading.Println("\nActive Alerts")
		for _, a := range rep.ActiveAlerts {
			_, _ = severityColor(a.Severity).Printf("  [%s] %s\n", a.Severity, a.Message)
		}
	}

	if len(rep.OpenMaintenance) > 0 {
		_, _ = colorHeading.Println("\nOpen High-Priority Maintenance")
		for _, t := range rep.OpenMaintenance {
			fmt.Printf("  %s: %s on %s (%.0fh)\n", t.ID, t.TaskType, t.SatelliteID, t.EstimatedHours)
		}
	}

	_, _ = colorHeading.Println("\nRecommendations")
	for _, r := range rep.Recommendations {
		fmt.Printf("  - %s\n", r)
	}
	fmt.Println()
}

func renderSummary(s state.Summary) {
	_, _ = colorHeading.Printf("\nMission: %s\n", s.MissionName)
	fmt.Printf("  Mission ID:        %s\n", s.MissionID)
	fmt.Printf("  Phase:             %s\n", s.Phase)
	fmt.Printf("  Satellites:        %d\n", s.SatelliteCount)
	fmt.Printf("  Ground stations:   %d\n", s.GroundStations)
	fmt.Printf("  Collision threats: %d\n", s.CollisionThreats)
	fmt.Printf("  Space debris:      %d\n", s.SpaceDebris)
	fmt.Printf("  Maintenance tasks: %d\n", s.MaintenanceTasks)
	fmt.Printf("  Alerts (active):   %d (%d)\n", s.Alerts, s.ActiveAlerts)
	fmt.Printf("  Decisions:         %d\n", s.Decisions)
	fmt.Printf("  Started:           %s\n", s.StartTime.Format("2006-01-02 15:04:05"))
	fmt.Printf("  Last update:       %s\n", s.LastUpdate.Format("2006-01-02 15:04:05"))
	fmt.Println()
}
