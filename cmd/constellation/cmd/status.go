package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/astrogrid/constellation-ops/pkg/codec"
	"github.com/astrogrid/constellation-ops/pkg/models"
	"github.com/astrogrid/constellation-ops/pkg/state"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the mission summary from a saved state file",
	RunE:  showStatus,
}

func init() {
	statusCmd.Flags().StringP("state", "s", "mission_state.yaml", "mission state file (YAML)")
	statusCmd.Flags().Bool("satellites", false, "also list the constellation")
	statusCmd.Flags().Bool("threats", false, "also list high-risk collision threats")
	statusCmd.Flags().Bool("alerts", false, "also list active alerts")
}

func statusColor(s models.SatelliteStatus) *color.Color {
	switch s {
	case models.SatelliteStatusActive:
		return colorOK
	case models.SatelliteStatusStandby, models.SatelliteStatusMaintenance:
		return colorWarning
	default:
		return colorDanger
	}
}

func showStatus(cmd *cobra.Command, _ []string) error {
	path, _ := cmd.Flags().GetString("state")

	store := state.New()
	if err := codec.ImportFromFile(store, path); err != nil {
		return fmt.Errorf("failed to load mission state: %w", err)
	}

	renderSummary(store.Summary())

	if list, _ := cmd.Flags().GetBool("satellites"); list {
		_, _ = colorHeading.Println("Constellation")
		for _, sat := range store.Satellites() {
			_, _ = statusColor(sat.Status).Printf("  [%s]", sat.Status)
			fmt.Printf(" %s %s  alt %.0f km  battery %.0f%%  health %.0f\n",
				sat.ID, sat.Name, sat.AltitudeKm, sat.BatteryLevel, sat.HealthScore)
		}
		fmt.Println()
	}

	if list, _ := cmd.Flags().GetBool("threats"); list {
		_, _ = colorHeading.Println("High-Risk Threats")
		for _, th := range store.HighRiskThreats() {
			_, _ = riskColor(th.RiskLevel).Printf("  [%s] %s <-> %s at %.1f km, %.1fh to approach\n",
				th.RiskLevel, th.SatelliteA, th.SatelliteB, th.DistanceKm, th.TimeToCollision)
		}
		fmt.Println()
	}

	if list, _ := cmd.Flags().GetBool("alerts"); list {
		_, _ = colorHeading.Println("Active Alerts")
		for _, a := range store.ActiveAlerts() {
			_, _ = severityColor(a.Severity).Printf("  [%s] %s %s\n", a.Severity, a.ID, a.Message)
		}
		fmt.Println()
	}
	return nil
}
