package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/msokolov/rosters/internal/models"
)

// DefaultTrainsPath is the roster file used when no --db flag is given.
const DefaultTrainsPath = "trains.db"

// TrainStore persists the train roster: a types lookup table and a trains
// table referencing it.
type TrainStore struct {
	*Store
}

// OpenTrains opens the train roster database at path.
func OpenTrains(path string) (*TrainStore, error) {
	store, err := Open(path)
	if err != nil {
		return nil, err
	}
	return &TrainStore{Store: store}, nil
}

const trainsSchemaSQL = `
CREATE TABLE IF NOT EXISTS types (
	type_id INTEGER PRIMARY KEY AUTOINCREMENT,
	type_title TEXT NOT NULL UNIQUE
);
CREATE TABLE IF NOT EXISTS trains (
	train_id INTEGER PRIMARY KEY AUTOINCREMENT,
	train_destination TEXT NOT NULL,
	type_id INTEGER NOT NULL,
	train_num INTEGER NOT NULL,
	FOREIGN KEY (type_id) REFERENCES types (type_id)
);
`

// Init ensures both roster tables exist. Safe to call on every invocation.
func (s *TrainStore) Init(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, trainsSchemaSQL)
	return err
}

// Add inserts a train, creating its type row on first use of the title.
// Lookup-or-create and insert share one transaction, same as workers.
func (s *TrainStore) Add(ctx context.Context, destination, typ string, num int) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	typeID, err := lookupOrCreate(ctx, tx,
		`SELECT type_id FROM types WHERE type_title = ?`,
		`INSERT INTO types (type_title) VALUES (?)`,
		typ)
	if err != nil {
		return fmt.Errorf("resolve type %q: %w", typ, err)
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO trains (train_destination, type_id, train_num) VALUES (?, ?, ?)`,
		destination, typeID, num,
	); err != nil {
		return fmt.Errorf("insert train: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

const trainsSelectSQL = `
SELECT trains.train_destination, types.type_title, trains.train_num
FROM trains
INNER JOIN types ON types.type_id = trains.type_id
`

// SelectAll returns every train joined with its type title, in storage
// order.
func (s *TrainStore) SelectAll(ctx context.Context) ([]models.Train, error) {
	rows, err := s.db.QueryContext(ctx, trainsSelectSQL)
	if err != nil {
		return nil, fmt.Errorf("select trains: %w", err)
	}
	return scanTrains(rows)
}

// SelectByType returns trains whose type title matches exactly.
// Matching is case-sensitive: "Express" and "express" are distinct types.
func (s *TrainStore) SelectByType(ctx context.Context, typ string) ([]models.Train, error) {
	rows, err := s.db.QueryContext(ctx,
		trainsSelectSQL+`WHERE types.type_title = ?`, typ)
	if err != nil {
		return nil, fmt.Errorf("select trains by type: %w", err)
	}
	return scanTrains(rows)
}

func scanTrains(rows *sql.Rows) ([]models.Train, error) {
	defer rows.Close()

	var trains []models.Train
	for rows.Next() {
		var t models.Train
		if err := rows.Scan(&t.Destination, &t.Type, &t.Num); err != nil {
			return nil, fmt.Errorf("scan train: %w", err)
		}
		trains = append(trains, t)
	}
	return trains, rows.Err()
}
