// Package cli wires configuration, logging, the store and the TUI behind a
// cobra command.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/Makepad-fr/tada/internal/config"
	"github.com/Makepad-fr/tada/internal/logging"
	"github.com/Makepad-fr/tada/internal/todo"
	"github.com/Makepad-fr/tada/internal/tui"
	"github.com/Makepad-fr/tada/internal/ui"
)

// flags override whatever config and env provide.
type flags struct {
	configPath    string
	theme         string
	noThemeToggle bool
	ids           string
	logLevel      string
	logFile       string
}

// Replaced in tests.
var (
	runProgram = func(m tea.Model) (tea.Model, error) {
		return tea.NewProgram(m, tea.WithAltScreen()).Run()
	}
	openLogger = logging.New
)

// Execute runs the root command and returns an exit code (0 ok, 1 error).
func Execute() int {
	cmd := NewRootCommand(os.Stdout, os.Stderr)
	if err := cmd.Execute(); err != nil {
		ui.Fail(os.Stderr, err.Error())
		return 1
	}
	return 0
}

func NewRootCommand(stdout, stderr io.Writer) *cobra.Command {
	f := &flags{}
	root := &cobra.Command{
		Use:   "tada",
		Short: "A todo list for the current terminal session",
		Long: `tada keeps a todo list for as long as it is open.

Add items in the input row, then tab into the list to complete, edit or
delete them. Nothing is saved: the list is gone when you quit.`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, f)
			if err != nil {
				return err
			}
			return runSession(cfg, stdout)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&f.configPath, "config", "", "config file (default "+config.UserConfigPath()+")")
	pf.StringVar(&f.theme, "theme", "", "starting theme: dark or light")
	pf.BoolVar(&f.noThemeToggle, "no-theme-toggle", false, "hide the dark/light toggle")
	pf.StringVar(&f.ids, "ids", "", "id strategy: sequence or uuid")
	pf.StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.StringVar(&f.logFile, "log-file", "", "append logs to this file")

	root.AddCommand(newConfigCommand(f))
	return root
}

func loadConfig(cmd *cobra.Command, f *flags) (*config.Config, error) {
	cfg, err := config.Read(f.configPath)
	if err != nil {
		return nil, err
	}
	fs := cmd.Flags()
	if fs.Changed("theme") {
		cfg.UI.Theme = f.theme
	}
	if fs.Changed("no-theme-toggle") {
		cfg.UI.ThemeToggle = !f.noThemeToggle
	}
	if fs.Changed("ids") {
		cfg.IDs.Strategy = f.ids
	}
	if fs.Changed("log-level") {
		cfg.Logging.Level = f.logLevel
	}
	if fs.Changed("log-file") {
		cfg.Logging.File = f.logFile
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runSession(cfg *config.Config, stdout io.Writer) (err error) {
	logger, closer, err := openLogger(cfg.Logging)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closer.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("close log: %w", cerr))
		}
	}()

	ids, err := todo.NewIDSource(cfg.IDs.Strategy)
	if err != nil {
		return err
	}
	mode, err := ui.ParseMode(cfg.UI.Theme)
	if err != nil {
		return err
	}

	store := todo.NewStore(todo.WithIDSource(ids))
	stop := logging.ObserveStore(logger, store)
	defer stop()
	theme := ui.NewThemeState(mode, cfg.UI.ThemeToggle)

	logger.Info("session started", "theme", mode, "theme_toggle", cfg.UI.ThemeToggle, "ids", cfg.IDs.Strategy)
	m := tui.New(store, theme, tui.Options{
		Title:       cfg.UI.Title,
		Placeholder: cfg.UI.Placeholder,
		CharLimit:   cfg.UI.CharLimit,
	})
	if _, err := runProgram(m); err != nil {
		logger.Error("tui failed", "err", err)
		return fmt.Errorf("tui: %w", err)
	}

	done, pending := todo.Stats(store.Todos())
	logger.Info("session ended", "completed", done, "incomplete", pending, "theme", theme.Mode())
	ui.OK(stdout, fmt.Sprintf("session ended: %d incomplete, %d completed", pending, done))
	return nil
}
