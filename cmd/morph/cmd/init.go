package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/f3rmion/morph/internal/config"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize morph configuration",
	Long: `Write a config.yaml with the default settings to your config directory,
plus an example script to play.

Edit config.yaml to change the animation duration, frame rate, easing and
the unit labels are aligned by (grapheme or rune).`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().Bool("force", false, "overwrite existing configuration")
}

func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	configDir := getConfigDir()
	configPath := filepath.Join(configDir, config.FileName)
	out := cmd.OutOrStdout()

	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("config already exists: %s\nUse --force to overwrite", configPath)
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("checking config file: %w", err)
	}

	if err := config.EnsureConfigDir(configDir); err != nil {
		return err
	}

	fmt.Fprintf(out, "Initializing morph configuration in %s\n\n", configDir)

	if err := config.Save(configPath, config.Default()); err != nil {
		return err
	}
	fmt.Fprintf(out, "  Created %s\n", config.FileName)

	scriptPath := filepath.Join(configDir, exampleScriptName)
	if err := os.WriteFile(scriptPath, []byte(exampleScript), 0644); err != nil {
		return fmt.Errorf("writing example script: %w", err)
	}
	fmt.Fprintf(out, "  Created %s\n", exampleScriptName)

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Configuration initialized!")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Next steps:")
	fmt.Fprintf(out, "  1. Run 'morph align abc bca' to see how labels are aligned\n")
	fmt.Fprintf(out, "  2. Run 'morph play --script %s' to watch a script\n", scriptPath)
	fmt.Fprintf(out, "  3. Run 'morph' to open the interactive interface\n")

	return nil
}

const exampleScriptName = "example.yaml"

const exampleScript = `# morph example script
# Each label morphs into the next. Shared glyphs travel, the rest fade.
title: Example
labels:
  - hello
  - yellow
  - mellow
  - below
  - elbow
  - bowl
  - blow
  - hello
`
