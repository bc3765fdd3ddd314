package cmd

import (
	"context"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/astrogrid/constellation-ops/pkg/config"
	"github.com/astrogrid/constellation-ops/pkg/logger"
	"github.com/astrogrid/constellation-ops/pkg/mission"
	"github.com/astrogrid/constellation-ops/pkg/providers"
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Configure and run a mission interactively",
	RunE:  runInteractive,
}

func runInteractive(_ *cobra.Command, _ []string) error {
	var source string
	if err := survey.AskOne(&survey.Select{
		Message: "Scenario:",
		Options: []string{"Built-in demo constellation", "From scenario file"},
		Default: "Built-in demo constellation",
	}, &source); err != nil {
		return err
	}

	var cfg *config.MissionConfig
	var err error
	if source == "From scenario file" {
		path := scenarioFile
		if err := survey.AskOne(&survey.Input{
			Message: "Scenario file path:",
			Default: "constellation.yaml",
		}, &path, survey.WithValidator(survey.Required)); err != nil {
			return err
		}
		cfg, err = config.LoadConfig(path)
	} else {
		cfg, err = config.LoadConfigOrDefault("")
	}
	if err != nil {
		return fmt.Errorf("failed to load scenario: %w", err)
	}

	name := cfg.Mission.Name
	if err := survey.AskOne(&survey.Input{
		Message: "Mission name:",
		Default: name,
	}, &name); err != nil {
		return err
	}

	if err := survey.AskOne(&survey.Select{
		Message: "Telemetry provider:",
		Options: providers.DefaultRegistry.List(),
		Default: cfg.Engine.Provider,
	}, &cfg.Engine.Provider); err != nil {
		return err
	}

	confirmed := false
	if err := survey.AskOne(&survey.Confirm{
		Message: fmt.Sprintf("Run mission with %d satellites and %d ground stations?",
			len(cfg.Satellites), len(cfg.GroundStations)),
		Default: true,
	}, &confirmed); err != nil {
		return err
	}
	if !confirmed {
		return nil
	}

	ctrl, err := mission.NewController(cfg, mission.WithLogger(logger.Default()))
	if err != nil {
		return fmt.Errorf("failed to build mission engine: %w", err)
	}
	if err := ctrl.InitializeMission(name); err != nil {
		return fmt.Errorf("failed to initialize mission: %w", err)
	}

	logger.Section(fmt.Sprintf("Starting %s", name))
	report, runErr := ctrl.RunMission(context.Background())
	renderReport(report)
	if runErr != nil {
		return fmt.Errorf("mission run failed: %w", runErr)
	}

	save := false
	if err := survey.AskOne(&survey.Confirm{
		Message: "Export final mission state?",
		Default: false,
	}, &save); err != nil {
		return err
	}
	if save {
		path := "mission_state.yaml"
		if err := survey.AskOne(&survey.Input{
			Message: "Output file:",
			Default: path,
		}, &path); err != nil {
			return err
		}
		if err := ctrl.ExportToFile(path); err != nil {
			return err
		}
	}

	logger.Successf("Mission completed")
	return nil
}
