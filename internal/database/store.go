// Package database provides the run journal for the dashboard.
//
// Every time a chart is regenerated the seed, distribution and sample
// summary are appended to a SQLite table so a run can be inspected or
// reproduced later. The journal is write-mostly and never restores UI
// state. DBService is the primary entry point.
package database

import (
	"database/sql"
	"embed"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaFS embed.FS

// Store defines the interface for run persistence.
// This abstraction allows for mocking in tests.
type Store interface {
	// InsertRun appends a run and returns its ID.
	InsertRun(run *Run) (int64, error)
	// BatchInsertRuns appends several runs in a single transaction.
	BatchInsertRuns(runs []*Run) error

	// QueryRuns returns runs matching the filter, most recent first.
	QueryRuns(filter RunFilter) ([]*Run, error)
	// GetRun returns a single run by ID.
	GetRun(runID int64) (*Run, error)
	// GetDistributionStats aggregates every run of one distribution.
	GetDistributionStats(distribution string) (*DistributionStats, error)

	// Close gracefully shuts down the database connection.
	Close() error
}

// ============================================================
// Domain Models
// ============================================================

// Trigger records what caused a regeneration.
const (
	TriggerStartup      = "startup"
	TriggerSimulate     = "simulate"
	TriggerDistribution = "distribution"
	TriggerCLI          = "cli"
)

// Run is one journaled chart regeneration.
type Run struct {
	RunID          int64    `json:"run_id"`
	CreatedAt      int64    `json:"created_at"` // Unix nanoseconds
	Trigger        string   `json:"trigger"`
	Distribution   string   `json:"distribution"`
	ChartKind      string   `json:"chart_kind"`
	Seed           uint64   `json:"seed"`
	Samples        int      `json:"samples"`
	Bins           int      `json:"bins"`
	Mean           float64  `json:"mean"`
	StdDev         float64  `json:"std_dev"`
	Skewness       float64  `json:"skewness"`
	ExcessKurtosis float64  `json:"excess_kurtosis"`
	Min            float64  `json:"min"`
	Max            float64  `json:"max"`
	Counts         []uint32 `json:"counts,omitempty"`
}

// RunFilter defines query parameters for run listing.
type RunFilter struct {
	Distribution *string `json:"distribution,omitempty"`
	Trigger      *string `json:"trigger,omitempty"`
	Since        *int64  `json:"since,omitempty"` // Unix nanoseconds
	Until        *int64  `json:"until,omitempty"` // Unix nanoseconds
	Limit        int     `json:"limit"`
	Offset       int     `json:"offset"`
}

// DistributionStats holds aggregated statistics for one distribution.
type DistributionStats struct {
	Distribution string  `json:"distribution"`
	Runs         int     `json:"runs"`
	TotalSamples int64   `json:"total_samples"`
	AvgMean      float64 `json:"avg_mean"`
	MinMean      float64 `json:"min_mean"`
	MaxMean      float64 `json:"max_mean"`
	AvgStdDev    float64 `json:"avg_std_dev"`
	FirstRun     int64   `json:"first_run"`
	LastRun      int64   `json:"last_run"`
}

// ============================================================
// DBService Implementation
// ============================================================

// DBService implements the Store interface using SQLite.
// It owns the connection and prepared statements and serializes
// access through a read-write mutex.
type DBService struct {
	db   *sql.DB
	mu   sync.RWMutex
	path string

	stmtInsertRun *sql.Stmt
}

// NewDBService creates a new database service, initializes the schema,
// and prepares frequently-used statements.
//
// Use ":memory:" for an in-memory journal (useful for testing).
func NewDBService(path string) (*DBService, error) {
	dsn := fmt.Sprintf("%s?_journal_mode=WAL&_synchronous=NORMAL&_foreign_keys=ON", path)

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database at %s: %w", path, err)
	}

	// SQLite only supports one writer at a time
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	svc := &DBService{
		db:   db,
		path: path,
	}

	if err := svc.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}

	if err := svc.prepareStatements(); err != nil {
		db.Close()
		return nil, fmt.Errorf("preparing statements: %w", err)
	}

	return svc, nil
}

// Path returns the location the journal was opened at.
func (s *DBService) Path() string { return s.path }

func (s *DBService) initSchema() error {
	schema, err := schemaFS.ReadFile("schema.sql")
	if err != nil {
		return fmt.Errorf("reading embedded schema: %w", err)
	}

	if _, err := s.db.Exec(string(schema)); err != nil {
		return fmt.Errorf("executing schema: %w", err)
	}

	return nil
}

func (s *DBService) prepareStatements() error {
	var err error

	s.stmtInsertRun, err = s.db.Prepare(`
		INSERT INTO runs (created_at, trigger, distribution, chart_kind, seed, samples, bins,
			mean, std_dev, skewness, excess_kurtosis, min_value, max_value, counts)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing InsertRun: %w", err)
	}

	return nil
}

// InsertRun appends a run. A zero CreatedAt is stamped with the current
// time and the assigned ID is written back to run.
func (s *DBService) InsertRun(run *Run) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	args, err := runArgs(run)
	if err != nil {
		return 0, err
	}
	result, err := s.stmtInsertRun.Exec(args...)
	if err != nil {
		return 0, fmt.Errorf("inserting %s run: %w", run.Distribution, err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading run id: %w", err)
	}
	run.RunID = id
	return id, nil
}

// BatchInsertRuns appends several runs within a single transaction.
func (s *DBService) BatchInsertRuns(runs []*Run) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning batch run transaction: %w", err)
	}
	defer tx.Rollback() // No-op if committed

	stmt := tx.Stmt(s.stmtInsertRun)
	for _, run := range runs {
		args, err := runArgs(run)
		if err != nil {
			return err
		}
		result, err := stmt.Exec(args...)
		if err != nil {
			return fmt.Errorf("batch inserting %s run: %w", run.Distribution, err)
		}
		if id, err := result.LastInsertId(); err == nil {
			run.RunID = id
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing batch run transaction: %w", err)
	}
	return nil
}

// runArgs flattens a run into statement arguments. Seeds are stored as
// their two's complement bit pattern because SQLite integers are signed.
func runArgs(run *Run) ([]any, error) {
	if run.CreatedAt == 0 {
		run.CreatedAt = time.Now().UnixNano()
	}
	if run.Trigger == "" {
		run.Trigger = TriggerSimulate
	}

	var countsJSON *string
	if run.Counts != nil {
		b, err := json.Marshal(run.Counts)
		if err != nil {
			return nil, fmt.Errorf("marshaling run counts: %w", err)
		}
		str := string(b)
		countsJSON = &str
	}

	return []any{
		run.CreatedAt, run.Trigger, run.Distribution, run.ChartKind, int64(run.Seed),
		run.Samples, run.Bins, run.Mean, run.StdDev, run.Skewness, run.ExcessKurtosis,
		run.Min, run.Max, countsJSON,
	}, nil
}

// QueryRuns returns runs matching the given filter criteria.
// Results are ordered by created_at descending (most recent first).
func (s *DBService) QueryRuns(filter RunFilter) ([]*Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `SELECT ` + runColumns + ` FROM runs WHERE 1=1`
	args := make([]any, 0)

	if filter.Distribution != nil {
		query += ` AND distribution = ?`
		args = append(args, *filter.Distribution)
	}
	if filter.Trigger != nil {
		query += ` AND trigger = ?`
		args = append(args, *filter.Trigger)
	}
	if filter.Since != nil {
		query += ` AND created_at >= ?`
		args = append(args, *filter.Since)
	}
	if filter.Until != nil {
		query += ` AND created_at <= ?`
		args = append(args, *filter.Until)
	}

	query += ` ORDER BY created_at DESC, run_id DESC`

	if filter.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, filter.Limit)
	} else {
		query += ` LIMIT 100`
	}
	if filter.Offset > 0 {
		query += ` OFFSET ?`
		args = append(args, filter.Offset)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	return scanRuns(rows)
}

// GetRun returns a single run by ID.
func (s *DBService) GetRun(runID int64) (*Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`SELECT `+runColumns+` FROM runs WHERE run_id = ?`, runID)
	if err != nil {
		return nil, fmt.Errorf("querying run %d: %w", runID, err)
	}
	defer rows.Close()

	runs, err := scanRuns(rows)
	if err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return nil, fmt.Errorf("run %d: %w", runID, sql.ErrNoRows)
	}
	return runs[0], nil
}

// GetDistributionStats returns aggregated statistics over every run of a
// distribution. Used by the history command and the analysis engine.
func (s *DBService) GetDistributionStats(distribution string) (*DistributionStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := &DistributionStats{Distribution: distribution}

	err := s.db.QueryRow(`
		SELECT
			COUNT(*),
			COALESCE(SUM(samples), 0),
			COALESCE(AVG(mean), 0),
			COALESCE(MIN(mean), 0),
			COALESCE(MAX(mean), 0),
			COALESCE(AVG(std_dev), 0),
			COALESCE(MIN(created_at), 0),
			COALESCE(MAX(created_at), 0)
		FROM runs
		WHERE distribution = ?
	`, distribution).Scan(
		&stats.Runs, &stats.TotalSamples, &stats.AvgMean, &stats.MinMean,
		&stats.MaxMean, &stats.AvgStdDev, &stats.FirstRun, &stats.LastRun,
	)
	if err != nil {
		return nil, fmt.Errorf("querying stats for %s: %w", distribution, err)
	}

	return stats, nil
}

// Close gracefully shuts down the database, closing the prepared
// statements and the underlying connection pool.
func (s *DBService) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stmtInsertRun != nil {
		s.stmtInsertRun.Close()
	}

	return s.db.Close()
}

// ============================================================
// Scan Helpers
// ============================================================

const runColumns = `run_id, created_at, trigger, distribution, chart_kind, seed, samples, bins,
	mean, std_dev, skewness, excess_kurtosis, min_value, max_value, counts`

func scanRuns(rows *sql.Rows) ([]*Run, error) {
	var runs []*Run
	for rows.Next() {
		r := &Run{}
		var seed int64
		var countsStr *string
		if err := rows.Scan(
			&r.RunID, &r.CreatedAt, &r.Trigger, &r.Distribution, &r.ChartKind, &seed,
			&r.Samples, &r.Bins, &r.Mean, &r.StdDev, &r.Skewness, &r.ExcessKurtosis,
			&r.Min, &r.Max, &countsStr,
		); err != nil {
			return nil, fmt.Errorf("scanning run row: %w", err)
		}
		r.Seed = uint64(seed)
		if countsStr != nil {
			if err := json.Unmarshal([]byte(*countsStr), &r.Counts); err != nil {
				// Non-fatal: counts are supplementary
				r.Counts = nil
			}
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
