// Package session turns a resolved configuration into a ready dashboard:
// the App, its typeface and the optional run journal. Every host starts
// through Open.
package session

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/fvall/claydash/internal/config"
	"github.com/fvall/claydash/internal/dashboard"
	"github.com/fvall/claydash/internal/database"
	"github.com/fvall/claydash/internal/typeface"
)

// Session owns the resources a host needs for one run.
type Session struct {
	Config *config.Config
	App    *dashboard.App
	Font   *typeface.Typeface
	// Store is nil when the journal is disabled.
	Store database.Store
}

// Open loads the font, opens the journal when enabled and builds the App.
// Failures are returned as *dashboard.AppError.
func Open(cfg *config.Config) (*Session, error) {
	font, err := LoadFont(cfg.Font)
	if err != nil {
		return nil, &dashboard.AppError{Op: "session.Open", Kind: dashboard.KindInvalidFont, Err: err}
	}

	s := &Session{Config: cfg, Font: font}
	if cfg.Journal.Enabled {
		store, err := OpenJournal(cfg.Journal.Path)
		if err != nil {
			font.Close()
			return nil, &dashboard.AppError{Op: "session.Open", Kind: dashboard.KindJournal, Err: err}
		}
		s.Store = store
	}

	opts := cfg.DashboardOptions()
	opts.Font = font
	if s.Store != nil {
		opts.Journal = s.Store
	}
	s.App = dashboard.New(opts)
	log.Printf("[INFO] Session ready: %s, %d samples in %d bins, seed %d",
		cfg.Distribution.Kind, cfg.Sampling.Samples, cfg.Sampling.Bins, s.App.Seed())
	return s, nil
}

// LoadFont reads a TTF/OTF file, or returns the bundled typeface when path
// is empty.
func LoadFont(path string) (*typeface.Typeface, error) {
	if path == "" {
		return typeface.Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read font %s: %w", path, err)
	}
	return typeface.Load(filepath.Base(path), data, typeface.DefaultBaseSize)
}

// OpenJournal opens the sqlite journal at path, creating its directory.
func OpenJournal(path string) (*database.DBService, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create journal directory %s: %w", dir, err)
		}
	}
	store, err := database.NewDBService(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open journal: %w", err)
	}
	return store, nil
}

// Close releases the journal and the font.
func (s *Session) Close() error {
	var errs []error
	if s.Store != nil {
		errs = append(errs, s.Store.Close())
	}
	if s.Font != nil {
		errs = append(errs, s.Font.Close())
	}
	return errors.Join(errs...)
}
