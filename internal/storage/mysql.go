package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"

	"ctr/internal/domain"
)

const createRunsTable = `CREATE TABLE IF NOT EXISTS ctr_runs (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	suite VARCHAR(255) NOT NULL,
	total INT NOT NULL,
	passed INT NOT NULL,
	failed INT NOT NULL,
	skipped INT NOT NULL,
	duration_seconds DOUBLE NOT NULL,
	workers INT NOT NULL,
	started_at VARCHAR(64) NOT NULL
)`

const createFailuresTable = `CREATE TABLE IF NOT EXISTS ctr_failures (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	run_id BIGINT NOT NULL,
	name VARCHAR(255) NOT NULL,
	path TEXT NOT NULL,
	expected TEXT NOT NULL,
	kind VARCHAR(16) NOT NULL,
	status VARCHAR(16) NOT NULL,
	reason VARCHAR(64) NOT NULL,
	message MEDIUMTEXT NOT NULL,
	diff MEDIUMTEXT NOT NULL,
	stderr MEDIUMTEXT NOT NULL,
	exit_code INT NOT NULL,
	resolved BOOL NOT NULL DEFAULT FALSE,
	INDEX (run_id)
)`

// MySQLStorage records every report in a MySQL database
type MySQLStorage struct {
	db *sql.DB
}

// OpenMySQL connects to the database named by dsn
// (user:pass@tcp(host:port)/dbname) and creates the tables when missing.
func OpenMySQL(dsn string) (*MySQLStorage, error) {
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("invalid database DSN: %w", err)
	}
	if cfg.DBName == "" {
		return nil, errors.New("invalid database DSN: no database name")
	}

	db, err := sql.Open("mysql", cfg.FormatDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database server: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database server: %w", err)
	}

	s := NewMySQLStorage(db)
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// NewMySQLStorage wraps an open database handle. The tables must exist.
func NewMySQLStorage(db *sql.DB) *MySQLStorage {
	return &MySQLStorage{db: db}
}

// Close closes the database handle
func (s *MySQLStorage) Close() error {
	return s.db.Close()
}

func (s *MySQLStorage) migrate() error {
	for _, stmt := range []string{createRunsTable, createFailuresTable} {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("create tables: %w", err)
		}
	}
	return nil
}

// Save inserts the report as a new run
func (s *MySQLStorage) Save(report *domain.Report) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	m := report.Meta
	res, err := tx.Exec(
		`INSERT INTO ctr_runs (suite, total, passed, failed, skipped, duration_seconds, workers, started_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		m.Suite, m.Total, m.Passed, m.Failed, m.Skipped, m.DurationSeconds, m.Workers, m.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	for _, f := range report.Failures {
		message, err := encodeLines(f.Message)
		if err != nil {
			return err
		}
		diff, err := encodeLines(f.Diff)
		if err != nil {
			return err
		}
		_, err = tx.Exec(
			`INSERT INTO ctr_failures (run_id, name, path, expected, kind, status, reason, message, diff, stderr, exit_code, resolved)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			runID, f.Name, f.Path, f.Expected, f.Kind, f.Status, string(f.Reason),
			message, diff, f.Stderr, f.ExitCode, f.Resolved,
		)
		if err != nil {
			return fmt.Errorf("insert failure %s: %w", f.Name, err)
		}
	}

	return tx.Commit()
}

// Load returns the most recent run
func (s *MySQLStorage) Load() (*domain.Report, error) {
	var runID int64
	var report domain.Report
	m := &report.Meta
	err := s.db.QueryRow(
		`SELECT id, suite, total, passed, failed, skipped, duration_seconds, workers, started_at
		FROM ctr_runs ORDER BY id DESC LIMIT 1`,
	).Scan(&runID, &m.Suite, &m.Total, &m.Passed, &m.Failed, &m.Skipped, &m.DurationSeconds, &m.Workers, &m.Timestamp)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errors.New("no runs recorded")
	}
	if err != nil {
		return nil, fmt.Errorf("query run: %w", err)
	}

	rows, err := s.db.Query(
		`SELECT name, path, expected, kind, status, reason, message, diff, stderr, exit_code, resolved
		FROM ctr_failures WHERE run_id = ? ORDER BY id`, runID,
	)
	if err != nil {
		return nil, fmt.Errorf("query failures: %w", err)
	}
	defer rows.Close()

	report.Failures = []domain.Failure{}
	for rows.Next() {
		var f domain.Failure
		var reason, message, diff string
		if err := rows.Scan(&f.Name, &f.Path, &f.Expected, &f.Kind, &f.Status, &reason, &message, &diff, &f.Stderr, &f.ExitCode, &f.Resolved); err != nil {
			return nil, fmt.Errorf("scan failure: %w", err)
		}
		f.Reason = domain.Reason(reason)
		if f.Message, err = decodeLines(message); err != nil {
			return nil, fmt.Errorf("decode message of %s: %w", f.Name, err)
		}
		if f.Diff, err = decodeLines(diff); err != nil {
			return nil, fmt.Errorf("decode diff of %s: %w", f.Name, err)
		}
		report.Failures = append(report.Failures, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query failures: %w", err)
	}
	return &report, nil
}

// encodeLines stores a line list as a JSON array; lines may contain newlines
func encodeLines(lines []string) (string, error) {
	if lines == nil {
		lines = []string{}
	}
	data, err := json.Marshal(lines)
	if err != nil {
		return "", fmt.Errorf("encode lines: %w", err)
	}
	return string(data), nil
}

func decodeLines(s string) ([]string, error) {
	var lines []string
	if err := json.Unmarshal([]byte(s), &lines); err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, nil
	}
	return lines, nil
}
