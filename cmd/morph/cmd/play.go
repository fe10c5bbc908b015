package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/f3rmion/morph/internal/config"
	"github.com/f3rmion/morph/internal/tui"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play [label...]",
	Short: "Morph through labels in the terminal",
	Long: `Animate a sequence of labels inline, morphing each into the next.

Labels come from the arguments or from a script file. A script is either a
YAML document with a 'labels' list, or a text file with one label per line
(blank lines and lines starting with # are skipped).

With --tui the script opens in the Play view of the full interface instead.

Example:
  morph play hello yellow mellow
  morph play --loop --script countdown.txt
  morph play --tui --script demo.yaml`,
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
	playCmd.Flags().StringP("script", "s", "", "read labels from a script file")
	playCmd.Flags().Bool("loop", false, "start over after the last label")
	playCmd.Flags().Duration("hold", tui.DefaultHold, "pause on each label")
	playCmd.Flags().Bool("tui", false, "open the script in the full interface")
}

func runPlay(cmd *cobra.Command, args []string) error {
	scriptPath, _ := cmd.Flags().GetString("script")
	loop, _ := cmd.Flags().GetBool("loop")
	hold, _ := cmd.Flags().GetDuration("hold")
	useTUI, _ := cmd.Flags().GetBool("tui")

	script, err := playScript(scriptPath, args)
	if err != nil {
		return err
	}

	s, err := openSession(useTUI)
	if err != nil {
		return err
	}
	defer s.Close()

	s.logger.Info("playing", "title", script.Title, "labels", len(script.Labels), "tui", useTUI)

	if useTUI {
		app, start := tui.NewAppWithScript(tui.Options{
			Config:    s.cfg,
			ConfigDir: s.configDir,
			Store:     s.store,
			Logger:    s.logger,
		}, script)
		p := tea.NewProgram(startWith{app, start}, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("running TUI: %w", err)
		}
		return nil
	}

	p := tea.NewProgram(tui.NewPlayer(s.cfg, script.Labels, loop).WithHold(hold))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running player: %w", err)
	}
	return nil
}

// playScript builds the script from a file or from labels given as arguments.
func playScript(path string, args []string) (*config.Script, error) {
	switch {
	case path != "" && len(args) > 0:
		return nil, fmt.Errorf("give labels or --script, not both")
	case path != "":
		return config.LoadScript(path)
	case len(args) == 0:
		return nil, fmt.Errorf("no labels: pass labels as arguments or use --script")
	}
	return &config.Script{Title: "arguments", Labels: args}, nil
}

// startWith runs an extra command alongside a model's own Init.
type startWith struct {
	tea.Model
	cmd tea.Cmd
}

func (s startWith) Init() tea.Cmd {
	return tea.Batch(s.Model.Init(), s.cmd)
}
