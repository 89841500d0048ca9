/*
Package sqlite persists the calculation history.

PURPOSE:
  Every schedule computation served by the API is recorded: the input
  terms, the prepayment plan, and the summary figures. The history is
  immutable - rows are inserted and read, never updated or deleted, so a
  past quote can always be reproduced from its stored inputs.

KEY TABLE:
  calculations:  one row per computed schedule (uuid key, inputs as
                 JSON, summary figures as REAL columns)

WAL MODE:
  SQLite is opened with WAL (Write-Ahead Logging) so readers do not
  block the writer.

USAGE:
  store, err := sqlite.New("./data/loans.db")
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()

SEE ALSO:
  - api/handlers.go: Records each computation here
  - store/cache: Short-lived schedule cache in front of recomputation
*/
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// Calculation is one stored schedule computation.
type Calculation struct {
	ID        string
	CreatedAt time.Time

	// Inputs
	Convention      string
	Principal       float64
	AnnualRate      float64
	Years           int
	PaymentsPerYear int
	Prepayments     map[int]float64
	PayoffPeriod    int

	// Results
	Payment          float64 // 0 for level-principal
	Periods          int
	TotalPayment     float64
	TotalInterest    float64
	BaselineInterest float64
	InterestSaved    float64
}

// Store persists calculations in SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates a store at the given database path. Use ":memory:" for an
// in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite allows one writer; a second pooled connection to ":memory:"
	// would also see a separate empty database.
	db.SetMaxOpenConns(1)

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
	-- Calculation history (insert-only)
	CREATE TABLE IF NOT EXISTS calculations (
		id TEXT PRIMARY KEY,
		created_at TEXT NOT NULL,
		convention TEXT NOT NULL,
		principal REAL NOT NULL,
		annual_rate REAL NOT NULL,
		years INTEGER NOT NULL,
		payments_per_year INTEGER NOT NULL,
		prepayments_json TEXT NOT NULL DEFAULT '{}',
		payoff_period INTEGER NOT NULL DEFAULT 0,
		payment REAL NOT NULL DEFAULT 0,
		periods INTEGER NOT NULL,
		total_payment REAL NOT NULL,
		total_interest REAL NOT NULL,
		baseline_interest REAL NOT NULL,
		interest_saved REAL NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_calculations_created_at
		ON calculations(created_at DESC);
	`
	_, err := s.db.Exec(schema)
	return err
}

// SaveCalculation inserts a calculation, assigning an id and timestamp
// when absent. The stored row is never modified afterwards.
func (s *Store) SaveCalculation(ctx context.Context, c *Calculation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}

	prepayments := c.Prepayments
	if prepayments == nil {
		prepayments = map[int]float64{}
	}
	prepaymentsJSON, err := json.Marshal(prepayments)
	if err != nil {
		return fmt.Errorf("failed to encode prepayments: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO calculations (
			id, created_at, convention, principal, annual_rate, years,
			payments_per_year, prepayments_json, payoff_period, payment,
			periods, total_payment, total_interest, baseline_interest,
			interest_saved
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.CreatedAt.Format(time.RFC3339Nano), c.Convention,
		c.Principal, c.AnnualRate, c.Years, c.PaymentsPerYear,
		string(prepaymentsJSON), c.PayoffPeriod, c.Payment, c.Periods,
		c.TotalPayment, c.TotalInterest, c.BaselineInterest, c.InterestSaved,
	)
	if err != nil {
		return fmt.Errorf("failed to save calculation: %w", err)
	}
	return nil
}

// ListCalculations returns the most recent calculations, newest first.
func (s *Store) ListCalculations(ctx context.Context, limit int) ([]Calculation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, created_at, convention, principal, annual_rate, years,
		       payments_per_year, prepayments_json, payoff_period, payment,
		       periods, total_payment, total_interest, baseline_interest,
		       interest_saved
		FROM calculations
		ORDER BY created_at DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list calculations: %w", err)
	}
	defer rows.Close()

	var out []Calculation
	for rows.Next() {
		c, err := scanCalculation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// GetCalculation returns one calculation by id, or sql.ErrNoRows.
func (s *Store) GetCalculation(ctx context.Context, id string) (Calculation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx, `
		SELECT id, created_at, convention, principal, annual_rate, years,
		       payments_per_year, prepayments_json, payoff_period, payment,
		       periods, total_payment, total_interest, baseline_interest,
		       interest_saved
		FROM calculations
		WHERE id = ?`, id)
	return scanCalculation(row)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCalculation(row rowScanner) (Calculation, error) {
	var c Calculation
	var createdAt, prepaymentsJSON string
	err := row.Scan(
		&c.ID, &createdAt, &c.Convention, &c.Principal, &c.AnnualRate,
		&c.Years, &c.PaymentsPerYear, &prepaymentsJSON, &c.PayoffPeriod,
		&c.Payment, &c.Periods, &c.TotalPayment, &c.TotalInterest,
		&c.BaselineInterest, &c.InterestSaved,
	)
	if err != nil {
		return Calculation{}, err
	}
	if c.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
		return Calculation{}, fmt.Errorf("bad created_at for %s: %w", c.ID, err)
	}
	if err := json.Unmarshal([]byte(prepaymentsJSON), &c.Prepayments); err != nil {
		return Calculation{}, fmt.Errorf("bad prepayments for %s: %w", c.ID, err)
	}
	if len(c.Prepayments) == 0 {
		c.Prepayments = nil
	}
	return c, nil
}
