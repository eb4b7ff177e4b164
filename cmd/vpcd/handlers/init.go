package handlers

import (
	"context"
	"fmt"

	"vpcd/internal/config/wizard"
)

// Factory function variables for init - can be replaced in tests.
var (
	runWizard     = wizard.Run
	writeConfig   = wizard.WriteConfig
	configExists  = wizard.FileExists
	confirmChoice = wizard.ConfirmOverwrite
)

// Init handles the init command.
//
// It runs the interactive wizard and writes the answers as a commented YAML
// configuration file. Existing files are only overwritten after confirmation.
func Init(ctx context.Context, outputPath string) error {
	if configExists(outputPath) {
		ok, err := confirmChoice(outputPath)
		if err != nil {
			return fmt.Errorf("overwrite confirmation failed: %w", err)
		}
		if !ok {
			fmt.Println("Aborted.")
			return nil
		}
	}

	result, err := runWizard(ctx)
	if err != nil {
		return fmt.Errorf("wizard failed: %w", err)
	}

	cfg := wizard.BuildConfig(result)
	if err := writeConfig(cfg, outputPath); err != nil {
		return err
	}

	fmt.Println(style(okStyle, "Configuration written to "+outputPath))
	fmt.Println(style(dimStyle, "Next: vpcd create <name> --config "+outputPath))
	return nil
}
