package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/msokolov/rosters/internal/models"
)

// DefaultWorkersPath is the roster file used when no --db flag is given.
const DefaultWorkersPath = "workers.db"

// WorkerStore persists the worker roster: a posts lookup table and a
// workers table referencing it.
type WorkerStore struct {
	*Store
}

// OpenWorkers opens the worker roster database at path.
func OpenWorkers(path string) (*WorkerStore, error) {
	store, err := Open(path)
	if err != nil {
		return nil, err
	}
	return &WorkerStore{Store: store}, nil
}

const workersSchemaSQL = `
CREATE TABLE IF NOT EXISTS posts (
	post_id INTEGER PRIMARY KEY AUTOINCREMENT,
	post_title TEXT NOT NULL UNIQUE
);
CREATE TABLE IF NOT EXISTS workers (
	worker_id INTEGER PRIMARY KEY AUTOINCREMENT,
	worker_name TEXT NOT NULL,
	post_id INTEGER NOT NULL,
	worker_year INTEGER NOT NULL,
	FOREIGN KEY (post_id) REFERENCES posts (post_id)
);
`

// Init ensures both roster tables exist. Safe to call on every invocation.
func (s *WorkerStore) Init(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, workersSchemaSQL)
	return err
}

// Add inserts a worker, creating its post row on first use of the title.
// The lookup-or-create and the insert share one transaction so two
// concurrent adds cannot race a duplicate post into the table.
func (s *WorkerStore) Add(ctx context.Context, name, post string, year int) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	postID, err := lookupOrCreate(ctx, tx,
		`SELECT post_id FROM posts WHERE post_title = ?`,
		`INSERT INTO posts (post_title) VALUES (?)`,
		post)
	if err != nil {
		return fmt.Errorf("resolve post %q: %w", post, err)
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO workers (worker_name, post_id, worker_year) VALUES (?, ?, ?)`,
		name, postID, year,
	); err != nil {
		return fmt.Errorf("insert worker: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// lookupOrCreate resolves a category id by exact title, inserting the row
// if the title has not been seen before. Matching is case-sensitive.
func lookupOrCreate(ctx context.Context, tx *sql.Tx, selectSQL, insertSQL, title string) (int64, error) {
	var id int64
	err := tx.QueryRowContext(ctx, selectSQL, title).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("lookup: %w", err)
	}
	res, err := tx.ExecContext(ctx, insertSQL, title)
	if err != nil {
		return 0, fmt.Errorf("insert: %w", err)
	}
	id, err = res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}
	return id, nil
}

const workersSelectSQL = `
SELECT workers.worker_name, posts.post_title, workers.worker_year
FROM workers
INNER JOIN posts ON posts.post_id = workers.post_id
`

// SelectAll returns every worker joined with its post title, in storage
// order.
func (s *WorkerStore) SelectAll(ctx context.Context) ([]models.Worker, error) {
	rows, err := s.db.QueryContext(ctx, workersSelectSQL)
	if err != nil {
		return nil, fmt.Errorf("select workers: %w", err)
	}
	return scanWorkers(rows)
}

// SelectByPeriod returns workers employed for at least period years,
// counting from the current system year.
func (s *WorkerStore) SelectByPeriod(ctx context.Context, period int) ([]models.Worker, error) {
	year := time.Now().Year()
	rows, err := s.db.QueryContext(ctx,
		workersSelectSQL+`WHERE ? - workers.worker_year >= ?`,
		year, period)
	if err != nil {
		return nil, fmt.Errorf("select workers by period: %w", err)
	}
	return scanWorkers(rows)
}

func scanWorkers(rows *sql.Rows) ([]models.Worker, error) {
	defer rows.Close()

	var workers []models.Worker
	for rows.Next() {
		var w models.Worker
		if err := rows.Scan(&w.Name, &w.Post, &w.Year); err != nil {
			return nil, fmt.Errorf("scan worker: %w", err)
		}
		workers = append(workers, w)
	}
	return workers, rows.Err()
}
