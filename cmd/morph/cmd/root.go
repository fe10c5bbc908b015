// Package cmd contains all CLI commands for morph.
package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/f3rmion/morph/internal/config"
	"github.com/f3rmion/morph/internal/glyph"
	"github.com/f3rmion/morph/internal/history"
	"github.com/f3rmion/morph/internal/logging"
	"github.com/f3rmion/morph/internal/morph"
	"github.com/f3rmion/morph/internal/tui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgDir string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "morph",
	Short: "Animate text labels morphing into each other",
	Long: `morph animates one text label turning into another.

Glyphs shared by both labels travel to their new positions, glyphs that
are no longer needed fade out, and new glyphs fade in. Which glyph goes
where is decided by a greedy, first-match character aligner.

Running 'morph' without arguments launches the interactive TUI.`,
	SilenceUsage: true,
	RunE:         runUnifiedTUI,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgDir, "config", "", "config directory (default is $HOME/.config/morph)")
	flags.Bool("verbose", false, "log debug records")
	flags.Duration("duration", 0, "length of one transition, e.g. 600ms")
	flags.Int("fps", 0, "animation frames per second")
	flags.String("easing", "", fmt.Sprintf("easing curve %v", morph.EasingNames()))
	flags.String("units", "", "unit of alignment: grapheme or rune")

	for _, name := range []string{"verbose", "duration", "fps", "easing", "units"} {
		viper.BindPFlag(name, flags.Lookup(name))
	}
}

// initConfig reads in ENV variables and resolves the config directory.
func initConfig() {
	if cfgDir != "" {
		viper.Set("config_dir", cfgDir)
	} else {
		dir, err := config.GetConfigDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error finding config directory:", err)
			os.Exit(1)
		}
		viper.SetDefault("config_dir", dir)
	}

	viper.SetEnvPrefix("MORPH")
	viper.AutomaticEnv()
}

// getConfigDir returns the configuration directory path.
func getConfigDir() string {
	return viper.GetString("config_dir")
}

// loadConfig loads config.yaml from the config directory and applies flag and environment overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadDir(getConfigDir())
	if err != nil {
		return nil, err
	}
	if err := applyOverrides(cfg, viper.GetViper()); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyOverrides copies every value set in v over cfg and validates the result.
func applyOverrides(cfg *config.Config, v *viper.Viper) error {
	if v.IsSet("duration") && v.GetDuration("duration") != 0 {
		cfg.Animation.Duration = v.GetDuration("duration")
	}
	if v.IsSet("fps") && v.GetInt("fps") != 0 {
		cfg.Animation.FPS = v.GetInt("fps")
	}
	if s := v.GetString("easing"); s != "" {
		cfg.Animation.Easing = s
	}
	if s := v.GetString("units"); s != "" {
		cfg.Animation.Units = s
	}
	return cfg.Validate()
}

// session holds what a command needs beyond its config. Close releases it.
type session struct {
	cfg       *config.Config
	configDir string
	logger    *slog.Logger
	store     *history.Store

	closeLog func() error
}

// openSession loads config, builds the logger and, when withStore is set and history is enabled, opens the history
// database.
func openSession(withStore bool) (*session, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	logger, closeLog, err := logging.New(cfg.LogFile, viper.GetBool("verbose"))
	if err != nil {
		return nil, err
	}

	s := &session{
		cfg:       cfg,
		configDir: getConfigDir(),
		logger:    logger,
		closeLog:  closeLog,
	}

	if withStore && cfg.History.Enabled {
		if err := config.EnsureConfigDir(s.configDir); err != nil {
			s.Close()
			return nil, err
		}
		path := cfg.HistoryPath(s.configDir)
		store, err := history.Open(path)
		if err != nil {
			s.Close()
			return nil, fmt.Errorf("opening history: %w", err)
		}
		s.store = store
		logger.Debug("history opened", "path", path)
	}

	return s, nil
}

func (s *session) Close() error {
	var errs []error
	if s.store != nil {
		errs = append(errs, s.store.Close())
	}
	errs = append(errs, s.closeLog())
	return errors.Join(errs...)
}

// runUnifiedTUI launches the unified TUI application.
func runUnifiedTUI(cmd *cobra.Command, args []string) error {
	s, err := openSession(true)
	if err != nil {
		return err
	}
	defer s.Close()

	s.logger.Info("starting tui",
		"units", glyph.Mode(s.cfg.Animation.Units),
		"easing", s.cfg.Animation.Easing,
		"history", s.store != nil)

	p := tea.NewProgram(
		tui.NewApp(tui.Options{
			Config:    s.cfg,
			ConfigDir: s.configDir,
			Store:     s.store,
			Logger:    s.logger,
		}),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}

	return nil
}
