package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v2"
	"sigs.k8s.io/release-utils/version"

	"dictionarium/internal/config"
	"dictionarium/internal/dictionary"
	"dictionarium/internal/logger"
	"dictionarium/internal/scan"
	"dictionarium/internal/session"
	"dictionarium/internal/ui"
	"dictionarium/internal/ui/input"
)

// ExitCodeFailure is the exit code for any error, and for a query without
// matches.
const ExitCodeFailure = 1

// ErrDictionarium is the parent error for all command errors.
var ErrDictionarium = errors.New("dictionarium")

// ErrUnknownLanguage is returned for a --lang value that names no dictionary.
var ErrUnknownLanguage = fmt.Errorf("%w: unknown language", ErrDictionarium)

// ErrNoMatch is returned by the query command when nothing matched.
var ErrNoMatch = fmt.Errorf("%w: no match", ErrDictionarium)

func newApp() *cli.App {
	return &cli.App{
		Name:  "dictionarium",
		Usage: "Search Occidental dictionaries in the terminal.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "read configuration from `FILE`",
				Aliases: []string{"c"},
			},
			&cli.StringFlag{
				Name:  "log-file",
				Usage: "append logs to `FILE`",
			},
			&cli.BoolFlag{
				Name:               "debug",
				Usage:              "log at debug level",
				DisableDefaultText: true,
			},
			&cli.BoolFlag{
				Name:               "version",
				Usage:              "print version information and exit",
				Aliases:            []string{"V"},
				DisableDefaultText: true,
			},
		},
		HideHelpCommand: true,
		Action: func(c *cli.Context) error {
			if c.Bool("version") {
				return printVersion(c.App.Writer)
			}
			return runInteractive(c)
		},
		Commands: []*cli.Command{
			queryCommand,
		},
	}
}

func printVersion(w io.Writer) error {
	_, err := fmt.Fprintln(w, version.GetVersionInfo().String())
	return err
}

// env is what every command needs before it can look anything up
type env struct {
	cfg      *config.Config
	logger   *log.Logger
	store    *dictionary.Store
	engine   *scan.Engine
	closeLog func()
}

// setup loads the configuration, opens the log file and loads the
// dictionaries. An unreadable config file is logged and replaced by defaults.
func setup(c *cli.Context) (*env, error) {
	svc := config.NewConfigService()
	if path := c.String("config"); path != "" {
		svc = config.NewConfigServiceAt(path)
	}
	cfg, cfgErr := svc.Load()
	if cfgErr != nil {
		cfg = config.DefaultConfig()
	}

	logPath := cfg.Log.File
	if c.IsSet("log-file") {
		logPath = c.String("log-file")
	}
	level := cfg.LogLevel()
	if c.Bool("debug") {
		level = log.DebugLevel
	}

	logFile, err := logger.OpenFile(logPath)
	if err != nil {
		return nil, fmt.Errorf("%w: could not open log file: %w", ErrDictionarium, err)
	}
	l := logger.New(logFile, "dictionarium", level)
	logger.Install(l)

	if cfgErr != nil {
		l.Warn("using default configuration", "path", svc.Path(), "err", cfgErr)
	}

	var fsys fs.FS = dictionary.Bundled()
	if cfg.DictionaryDir != "" {
		fsys = os.DirFS(cfg.DictionaryDir)
	}
	store, err := dictionary.Load(fsys, dictionary.DefaultLayout)
	if err != nil {
		l.Error("loading dictionaries failed", "err", err)
		_ = logFile.Close()
		return nil, err
	}

	return &env{
		cfg:      cfg,
		logger:   l,
		store:    store,
		engine:   scan.NewEngine(cfg.Scan.Workers),
		closeLog: func() { _ = logFile.Close() },
	}, nil
}

func runInteractive(c *cli.Context) error {
	e, err := setup(c)
	if err != nil {
		return err
	}
	defer e.closeLog()

	sess := session.New(e.store, e.engine,
		session.WithLanguage(e.cfg.StartLanguage()),
		session.WithLogger(e.logger),
	)
	model := ui.NewModel(sess, input.NewKeyMap(e.cfg.Keys), e.logger)

	// Create context for graceful shutdown
	ctx, stop := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	e.logger.Info("starting session", "language", e.cfg.StartLanguage(), "workers", e.engine.Workers())
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			e.logger.Info("session interrupted")
			return nil
		}
		e.logger.Error("program failed", "err", err)
		return fmt.Errorf("%w: %w", ErrDictionarium, err)
	}
	e.logger.Info("session ended")
	return nil
}
