package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/astrogrid/constellation-ops/pkg/codec"
	"github.com/astrogrid/constellation-ops/pkg/logger"
	"github.com/astrogrid/constellation-ops/pkg/state"
)

var importCmd = &cobra.Command{
	Use:   "import <document>",
	Short: "Merge a mission document into a saved state file",
	Long: `Merge the top-level sections of a YAML mission document into an
existing state file. Sections present in the document replace the
saved ones; absent sections are kept.`,
	Args: cobra.ExactArgs(1),
	RunE: importDocument,
}

func init() {
	importCmd.Flags().StringP("state", "s", "mission_state.yaml", "mission state file to merge into")
	importCmd.Flags().StringP("output", "o", "", "write result to file (default: overwrite the state file)")
}

func importDocument(cmd *cobra.Command, args []string) error {
	statePath, _ := cmd.Flags().GetString("state")
	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		output = statePath
	}

	store := state.New()
	if err := codec.ImportFromFile(store, statePath); err != nil {
		return fmt.Errorf("failed to load mission state: %w", err)
	}

	if err := codec.ImportFromFile(store, args[0]); err != nil {
		return fmt.Errorf("failed to merge document: %w", err)
	}

	if err := codec.ExportToFile(store, output); err != nil {
		return fmt.Errorf("failed to write merged state: %w", err)
	}

	logger.Successf("Merged %s into %s", args[0], output)
	renderSummary(store.Summary())
	return nil
}
