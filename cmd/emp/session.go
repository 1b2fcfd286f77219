package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jacksmith/emp/internal/cli"
	"github.com/jacksmith/emp/internal/ops"
	"github.com/jacksmith/emp/internal/storage"
	"github.com/jacksmith/emp/internal/storage/sqlite"
	"github.com/rs/zerolog"
)

// session bundles what a command needs: settings, a logger and an open backend.
type session struct {
	cfg     *storage.Config
	log     zerolog.Logger
	path    string
	backend ops.Backend
	store   *ops.Records
	closeFn func() error
}

// Close releases the backend. Safe to call on a flat-file session.
func (s *session) Close() error {
	if s.closeFn == nil {
		return nil
	}
	return s.closeFn()
}

// loadSettings reads .empconfig.yaml from the working directory, applies the
// global flags and sets up color and logging.
func loadSettings() (*storage.Config, zerolog.Logger, error) {
	cfg, err := storage.LoadConfig(".")
	if err != nil {
		return nil, zerolog.Nop(), err
	}
	if flagFile != "" {
		cfg.DataFile = flagFile
	}

	cli.ApplyColorMode(cfg.Color, os.Stdout)

	log, err := newLogger(cfg.LogLevel, flagVerbose)
	if err != nil {
		return nil, zerolog.Nop(), err
	}
	return cfg, log, nil
}

// newLogger builds the stderr console logger.
func newLogger(level string, verbose bool) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log_level %q: %w", level, err)
	}
	if verbose {
		lvl = zerolog.DebugLevel
	}

	out := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		NoColor:    !cli.IsTerminal(os.Stderr),
		TimeFormat: "15:04:05",
	}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger(), nil
}

// isDatabasePath reports whether path should be served by the SQLite backend.
func isDatabasePath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return true
	}
	return false
}

// openSession loads settings and opens the configured backend.
func openSession() (*session, error) {
	cfg, log, err := loadSettings()
	if err != nil {
		return nil, err
	}

	s := &session{cfg: cfg, log: log, path: cfg.DataFile}
	if isDatabasePath(cfg.DataFile) {
		repo, err := sqlite.New(cfg.DataFile, log)
		if err != nil {
			return nil, err
		}
		s.backend = repo
		s.closeFn = repo.Close
	} else {
		fs, err := storage.Open(cfg.DataFile, log)
		if err != nil {
			return nil, err
		}
		s.backend = fs
	}

	s.store = ops.NewRecords(s.backend)
	log.Debug().Str("file", cfg.DataFile).Msg("opened roster")
	return s, nil
}
