package sink

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/0x5844/physics2d/internal/collision"
)

// SQLiteSink persists every tick (and, when enabled, every collision) to
// a SQLite database via the standard driver-registration and
// database/sql.Open pattern.
type SQLiteSink struct {
	db              *sql.DB
	insertTick      *sql.Stmt
	insertCollision *sql.Stmt
}

// NewSQLiteSink opens path (creating it if absent) and creates the ticks
// table, and the collisions table when recordCollisions is true.
func NewSQLiteSink(path string, recordCollisions bool) (*SQLiteSink, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("sink: opening sqlite %s: %w", path, err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS ticks (
		tick_index INTEGER PRIMARY KEY,
		circle_count INTEGER,
		elapsed_seconds REAL,
		total_collisions INTEGER
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("sink: creating ticks table: %w", err)
	}

	insertTick, err := db.Prepare(`INSERT INTO ticks (tick_index, circle_count, elapsed_seconds, total_collisions) VALUES (?, ?, ?, ?)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("sink: preparing tick insert: %w", err)
	}

	s := &SQLiteSink{db: db, insertTick: insertTick}

	if recordCollisions {
		if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS collisions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			moving_name TEXT,
			moving_hp_after INTEGER,
			stationary_name TEXT,
			stationary_hp_after INTEGER
		)`); err != nil {
			db.Close()
			return nil, fmt.Errorf("sink: creating collisions table: %w", err)
		}
		insertCollision, err := db.Prepare(`INSERT INTO collisions (moving_name, moving_hp_after, stationary_name, stationary_hp_after) VALUES (?, ?, ?, ?)`)
		if err != nil {
			db.Close()
			return nil, fmt.Errorf("sink: preparing collision insert: %w", err)
		}
		s.insertCollision = insertCollision
	}

	return s, nil
}

// Record inserts one tick row. A failure is MetricsSinkUnavailable: the
// caller drops the record and continues.
func (s *SQLiteSink) Record(m collision.TickMetrics) error {
	_, err := s.insertTick.Exec(m.TickIndex, m.CircleCount, m.ElapsedSeconds, m.TotalCollisions)
	if err != nil {
		return fmt.Errorf("sink: sqlite tick insert: %w", err)
	}
	return nil
}

// RecordCollision inserts one collision row, if the sink was constructed
// with recordCollisions enabled.
func (s *SQLiteSink) RecordCollision(e collision.CollisionEvent) error {
	if s.insertCollision == nil {
		return nil
	}
	_, err := s.insertCollision.Exec(e.MovingName, e.MovingHPAfter, e.StationaryName, e.StationaryHPAfter)
	if err != nil {
		return fmt.Errorf("sink: sqlite collision insert: %w", err)
	}
	return nil
}

// Close releases the prepared statements and the underlying connection.
func (s *SQLiteSink) Close() error {
	if s.insertCollision != nil {
		s.insertCollision.Close()
	}
	s.insertTick.Close()
	return s.db.Close()
}
