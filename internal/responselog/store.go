// Package responselog persists fetched answers and their score
// breakdowns for later inspection. It is the external logger the scoring
// core hands its results to; the core itself never writes here.
package responselog

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"

	"github.com/aruiz/qagate/internal/quality"
)

// Record is one persisted question/answer/score entry.
type Record struct {
	ID           string                  `json:"id"`
	Timestamp    time.Time               `json:"timestamp"`
	Question     string                  `json:"question"`
	Answer       string                  `json:"answer"`
	StatusCode   int                     `json:"status_code"`
	ResponseTime float64                 `json:"response_time"`
	Scores       *quality.ScoreBreakdown `json:"quality_scores,omitempty"`
	Safe         bool                    `json:"safe"`
	SafetyReason string                  `json:"safety_reason,omitempty"`
}

// Summary aggregates the stored records.
type Summary struct {
	TotalResponses int     `json:"total_responses"`
	Passed         int     `json:"passed"`
	AverageOverall float64 `json:"average_overall_score"`
	Path           string  `json:"path"`
}

const schemaSQL = `
CREATE TABLE IF NOT EXISTS responses (
	id            TEXT PRIMARY KEY,
	timestamp     TEXT NOT NULL,
	question      TEXT NOT NULL,
	answer        TEXT NOT NULL,
	status_code   INTEGER NOT NULL,
	response_time REAL NOT NULL,
	scores        TEXT,
	safe          INTEGER NOT NULL DEFAULT 1,
	safety_reason TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_responses_timestamp ON responses (timestamp);
`

// Store is a SQLite-backed response log.
type Store struct {
	db   *sql.DB
	path string
}

// Open creates a Store on the SQLite database at path, applying
// recommended pragmas and creating the schema when missing.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

// applyPragmas configures SQLite for single-writer durability.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save stores a record, assigning an ID and timestamp when unset.
func (s *Store) Save(ctx context.Context, rec *Record) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.Timestamp.IsZero() {
		rec.Timestamp = time.Now().UTC()
	}

	var scoresJSON sql.NullString
	if rec.Scores != nil {
		data, err := json.Marshal(rec.Scores)
		if err != nil {
			return fmt.Errorf("marshal scores: %w", err)
		}
		scoresJSON = sql.NullString{String: string(data), Valid: true}
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO responses
		 (id, timestamp, question, answer, status_code, response_time, scores, safe, safety_reason)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID,
		rec.Timestamp.Format(time.RFC3339Nano),
		rec.Question,
		rec.Answer,
		rec.StatusCode,
		rec.ResponseTime,
		scoresJSON,
		boolToInt(rec.Safe),
		rec.SafetyReason,
	)
	if err != nil {
		return fmt.Errorf("save response record: %w", err)
	}
	return nil
}

// List returns stored records, newest first. limit <= 0 returns all.
func (s *Store) List(ctx context.Context, limit int) ([]*Record, error) {
	query := `SELECT id, timestamp, question, answer, status_code, response_time, scores, safe, safety_reason
	          FROM responses ORDER BY timestamp DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query responses: %w", err)
	}
	defer rows.Close()

	var records []*Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate responses: %w", err)
	}
	return records, nil
}

// Get returns the record with the given ID, or nil when not found.
func (s *Store) Get(ctx context.Context, id string) (*Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, timestamp, question, answer, status_code, response_time, scores, safe, safety_reason
		 FROM responses WHERE id = ?`, id)
	if err != nil {
		return nil, fmt.Errorf("query response %s: %w", id, err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}
	return scanRecord(rows)
}

// Summarize aggregates the stored records.
func (s *Store) Summarize(ctx context.Context) (Summary, error) {
	sum := Summary{Path: s.path}

	row := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM responses`)
	if err := row.Scan(&sum.TotalResponses); err != nil {
		return Summary{}, fmt.Errorf("count responses: %w", err)
	}

	if sum.TotalResponses == 0 {
		return sum, nil
	}

	records, err := s.List(ctx, 0)
	if err != nil {
		return Summary{}, err
	}

	scored := 0
	total := 0.0
	for _, rec := range records {
		if rec.Scores == nil {
			continue
		}
		scored++
		total += rec.Scores.OverallScore
		if rec.Scores.PassesThreshold {
			sum.Passed++
		}
	}
	if scored > 0 {
		sum.AverageOverall = total / float64(scored)
	}
	return sum, nil
}

func scanRecord(rows *sql.Rows) (*Record, error) {
	var rec Record
	var ts string
	var scoresJSON sql.NullString
	var safe int

	if err := rows.Scan(
		&rec.ID, &ts, &rec.Question, &rec.Answer,
		&rec.StatusCode, &rec.ResponseTime, &scoresJSON, &safe, &rec.SafetyReason,
	); err != nil {
		return nil, fmt.Errorf("scan response record: %w", err)
	}

	parsed, err := time.Parse(time.RFC3339Nano, ts)
	if err != nil {
		return nil, fmt.Errorf("parse timestamp %q: %w", ts, err)
	}
	rec.Timestamp = parsed
	rec.Safe = safe != 0

	if scoresJSON.Valid {
		var scores quality.ScoreBreakdown
		if err := json.Unmarshal([]byte(scoresJSON.String), &scores); err != nil {
			return nil, fmt.Errorf("unmarshal scores: %w", err)
		}
		rec.Scores = &scores
	}

	return &rec, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// DefaultDBPath resolves the database file path in priority order:
// 1. QAGATE_DB environment variable
// 2. $XDG_DATA_HOME/qagate/responses.db
// 3. ~/.local/share/qagate/responses.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("QAGATE_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "qagate", "responses.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
