package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/astrogrid/constellation-ops/pkg/config"
	"github.com/astrogrid/constellation-ops/pkg/logger"
	"github.com/astrogrid/constellation-ops/pkg/mission"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a mission",
	Long:  `Seed the constellation from the scenario and execute the seven-stage mission pipeline`,
	RunE:  runMission,
}

func init() {
	runCmd.Flags().StringP("name", "n", "", "mission name (overrides scenario)")
	runCmd.Flags().StringP("provider", "p", "", "telemetry provider (kepler, sgp4)")
	runCmd.Flags().StringP("output", "o", "", "write final mission state to file (YAML)")
}

func runMission(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadConfigOrDefault(scenarioFile)
	if err != nil {
		return fmt.Errorf("failed to load scenario: %w", err)
	}
	if provider, _ := cmd.Flags().GetString("provider"); provider != "" {
		cfg.Engine.Provider = provider
	}

	ctrl, err := mission.NewController(cfg, mission.WithLogger(logger.Default()))
	if err != nil {
		return fmt.Errorf("failed to build mission engine: %w", err)
	}

	name, _ := cmd.Flags().GetString("name")
	if err := ctrl.InitializeMission(name); err != nil {
		return fmt.Errorf("failed to initialize mission: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		logger.Warnf("received interrupt signal, aborting mission run...")
		cancel()
	}()

	logger.Section(fmt.Sprintf("Starting %s", ctrl.Status().MissionName))
	report, runErr := ctrl.RunMission(ctx)

	renderReport(report)

	if output, _ := cmd.Flags().GetString("output"); output != "" {
		if err := ctrl.ExportToFile(output); err != nil {
			return err
		}
	}

	if runErr != nil {
		return fmt.Errorf("mission run failed: %w", runErr)
	}
	logger.Successf("Mission completed")
	return nil
}
