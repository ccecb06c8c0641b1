package history

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"

	"harn/internal/config"
	"harn/internal/domain"
)

// Store records run summaries in a MySQL table for later inspection
type Store struct {
	config *config.Config
}

// NewStore creates a new Store
func NewStore(cfg *config.Config) *Store {
	return &Store{config: cfg}
}

// Run is one recorded harness run
type Run struct {
	ID   int64
	Meta domain.RunMeta
}

func (s *Store) open() (*sql.DB, error) {
	// .env file might not exist, that's okay - use environment variables
	_ = godotenv.Load(".env")

	dbHost := os.Getenv("DB_HOST")
	if dbHost == "" {
		dbHost = "127.0.0.1"
	}
	dbPort := os.Getenv("DB_PORT")
	if dbPort == "" {
		dbPort = "3306"
	}
	dbUser := os.Getenv("DB_USERNAME")
	if dbUser == "" {
		dbUser = "root"
	}
	dbPassword := os.Getenv("DB_PASSWORD")
	dbName := os.Getenv("DB_DATABASE")
	if dbName == "" {
		dbName = "harness"
	}

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s", dbUser, dbPassword, dbHost, dbPort, dbName)
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database server: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database server: %w", err)
	}

	if err := s.ensureSchema(db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func (s *Store) ensureSchema(db *sql.DB) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS runs (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		total_tests INT NOT NULL,
		passed_tests INT NOT NULL,
		failed_tests INT NOT NULL,
		harness_errors INT NOT NULL,
		duration_seconds DOUBLE NOT NULL,
		workers INT NOT NULL,
		timestamp VARCHAR(64) NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("failed to create runs table: %w", err)
	}
	return nil
}

// Record appends a run summary to the history table
func (s *Store) Record(meta domain.RunMeta) error {
	db, err := s.open()
	if err != nil {
		return err
	}
	defer db.Close()

	_, err = db.Exec(
		`INSERT INTO runs (total_tests, passed_tests, failed_tests, harness_errors, duration_seconds, workers, timestamp)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		meta.TotalTests, meta.PassedTests, meta.FailedTests, meta.HarnessErrors,
		meta.DurationSeconds, meta.Workers, meta.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("failed to record run: %w", err)
	}
	return nil
}

// Recent returns the most recent runs, newest first
func (s *Store) Recent(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	db, err := s.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.Query(
		`SELECT id, total_tests, passed_tests, failed_tests, harness_errors, duration_seconds, workers, timestamp
		 FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		if err := rows.Scan(
			&run.ID, &run.Meta.TotalTests, &run.Meta.PassedTests, &run.Meta.FailedTests,
			&run.Meta.HarnessErrors, &run.Meta.DurationSeconds, &run.Meta.Workers, &run.Meta.Timestamp,
		); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		run.Meta.Duration = fmt.Sprintf("%.2fs", run.Meta.DurationSeconds)
		runs = append(runs, run)
	}
	return runs, rows.Err()
}
