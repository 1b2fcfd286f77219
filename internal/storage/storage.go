// Package storage provides the flat-file backend for the employee roster.
package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jacksmith/emp/internal/model"
	"github.com/rs/zerolog"
)

// DefaultDataFile is the data file used when neither config nor flags name one.
const DefaultDataFile = "employees.yaml"

// Storage provides access to a single roster file.
// Every Load reads the file afresh; nothing is cached between calls.
type Storage struct {
	path   string
	format model.Format
	log    zerolog.Logger
}

// Open returns a Storage for the given data file.
// The file itself need not exist yet; Load creates it on first access.
// Returns error if path names a directory.
func Open(path string, log zerolog.Logger) (*Storage, error) {
	if path == "" {
		return nil, fmt.Errorf("no data file specified")
	}
	info, err := os.Stat(path)
	if err == nil && info.IsDir() {
		return nil, fmt.Errorf("%s is a directory, not a data file", path)
	} else if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to access %s: %w", path, err)
	}

	return &Storage{
		path:   path,
		format: model.FormatForPath(path),
		log:    log.With().Str("file", path).Logger(),
	}, nil
}

// Init creates the data file with an empty roster.
// Returns error if the file already exists.
func Init(path string, log zerolog.Logger) (*Storage, error) {
	if _, err := os.Stat(path); err == nil {
		return nil, fmt.Errorf("data file %s already exists", path)
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to check for %s: %w", path, err)
	}

	s, err := Open(path, log)
	if err != nil {
		return nil, err
	}
	if err := s.Save(&model.Roster{}); err != nil {
		return nil, err
	}
	s.log.Debug().Msg("initialized empty roster")
	return s, nil
}

// Path returns the data file path.
func (s *Storage) Path() string {
	return s.path
}

// Format returns the encoding used for the data file.
func (s *Storage) Format() model.Format {
	return s.format
}

// Exists reports whether the data file is present.
func (s *Storage) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Load reads and decodes the whole roster.
// A missing file is first written as an empty roster.
// A malformed file is returned as an error; there is no repair.
func (s *Storage) Load() (*model.Roster, error) {
	if !s.Exists() {
		s.log.Warn().Msg("data file not found, creating empty roster")
		if err := s.Save(&model.Roster{}); err != nil {
			return nil, err
		}
	}

	data, err := s.ReadRaw()
	if err != nil {
		return nil, err
	}

	r, err := model.Decode(data, s.format)
	if err != nil {
		return nil, fmt.Errorf("failed to parse data file %s: %w", s.path, err)
	}

	s.log.Debug().Int("employees", len(r.Employees)).Msg("loaded roster")
	return r, nil
}

// ReadRaw returns the undecoded contents of the data file.
func (s *Storage) ReadRaw() ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read data file %s: %w", s.path, err)
	}
	return data, nil
}

// Save encodes the whole roster and replaces the data file.
// The document is written to a temporary sibling and renamed into place,
// so readers see either the old roster or the new one.
func (s *Storage) Save(r *model.Roster) error {
	data, err := model.Encode(r, s.format)
	if err != nil {
		return fmt.Errorf("failed to encode roster: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	if err := writeFileAtomic(s.path, data); err != nil {
		return fmt.Errorf("failed to write data file %s: %w", s.path, err)
	}

	s.log.Debug().Int("employees", len(r.Employees)).Int("bytes", len(data)).Msg("saved roster")
	return nil
}

// writeFileAtomic writes data to a temp file in the target's directory and
// renames it over path.
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+"-*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		return err
	}
	return os.Rename(tmpPath, path)
}
