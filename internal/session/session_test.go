package session

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/fvall/claydash/internal/config"
	"github.com/fvall/claydash/internal/dashboard"
	"github.com/fvall/claydash/internal/database"
	"github.com/fvall/claydash/internal/stats"
	"github.com/fvall/claydash/internal/typeface"
)

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Sampling.Samples = 1000
	cfg.Sampling.Bins = 10
	cfg.Sampling.Seed = 9
	return &cfg
}

func TestOpenWithoutJournal(t *testing.T) {
	s, err := Open(testConfig())
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer s.Close()

	if s.Store != nil {
		t.Error("expected no journal when disabled")
	}
	if !s.Font.Valid() || s.App.Font() != s.Font {
		t.Error("expected the bundled font on the app")
	}
	if s.App.Seed() != 9 {
		t.Errorf("expected seed 9, got %d", s.App.Seed())
	}
}

func TestOpenRecordsRuns(t *testing.T) {
	cfg := testConfig()
	cfg.Journal.Enabled = true
	cfg.Journal.Path = filepath.Join(t.TempDir(), "nested", "runs.db")
	cfg.Distribution.Kind = stats.KindNormal.String()

	s, err := Open(cfg)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer s.Close()

	s.App.Simulate()
	runs, err := s.Store.QueryRuns(database.RunFilter{})
	if err != nil {
		t.Fatalf("QueryRuns failed: %v", err)
	}
	if len(runs) != 1 || runs[0].Distribution != "Normal" {
		t.Errorf("expected one Normal run, got %+v", runs)
	}
}

func TestOpenBadFont(t *testing.T) {
	cfg := testConfig()
	cfg.Font = filepath.Join(t.TempDir(), "broken.ttf")
	if err := os.WriteFile(cfg.Font, []byte("not a font"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	_, err := Open(cfg)
	var appErr *dashboard.AppError
	if !errors.As(err, &appErr) || appErr.Kind != dashboard.KindInvalidFont {
		t.Fatalf("expected an invalid-font AppError, got %v", err)
	}
	if !errors.Is(err, typeface.ErrInvalidFont) {
		t.Errorf("expected ErrInvalidFont in the chain, got %v", err)
	}
}

func TestOpenBadJournal(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(blocker, nil, 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg := testConfig()
	cfg.Journal.Enabled = true
	cfg.Journal.Path = filepath.Join(blocker, "runs.db")

	_, err := Open(cfg)
	var appErr *dashboard.AppError
	if !errors.As(err, &appErr) || appErr.Kind != dashboard.KindJournal {
		t.Fatalf("expected a journal AppError, got %v", err)
	}
}
