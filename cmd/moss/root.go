package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/moss/internal/config"
	"github.com/sandeepkv93/moss/internal/daystore"
	"github.com/sandeepkv93/moss/internal/logging"
	"github.com/sandeepkv93/moss/internal/update"
	"github.com/spf13/cobra"
)

var (
	configPath string
	logFile    string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "moss",
	Short: "Notes, tasks and habits for yesterday, today and tomorrow",
	Long: `Moss keeps a small set of notes, tasks and two daily habit flags
for each calendar day, with a terminal UI that pages between yesterday,
today and tomorrow.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "moss failed: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default $XDG_CONFIG_HOME/moss/config.toml)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs to this file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

func run() error {
	path := configPath
	if path == "" {
		path = config.ResolvePath()
	}
	cfg, err := config.LoadOrCreate(path)
	if err != nil {
		return err
	}
	cfg = config.FromEnv(cfg.AnchorLogFile(filepath.Dir(path)))
	if logFile != "" {
		cfg.Log.File = logFile
	}
	if verbose {
		cfg.Log.Level = "debug"
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer logger.Close()

	loc, err := cfg.Location()
	if err != nil {
		logger.WithError(err).Warnw("falling back to local time zone")
	}

	store := daystore.New(time.Now(), daystore.WithLocation(loc))
	logger.Infow("starting moss", "config", path, "day", store.CurrentKey(), "zone", loc.String())

	program := tea.NewProgram(update.NewModel(store, cfg, logger), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		logger.WithError(err).Errorw("program exited with error")
		return err
	}
	return nil
}
