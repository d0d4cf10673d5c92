// Package storage persists finished games and per-item attempt history in
// SQLite through the pure-Go modernc.org/sqlite driver.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/code-arcade/internal/config"
)

const sqliteTimeLayout = "2006-01-02 15:04:05"

// Store manages the SQLite database connection for score persistence.
type Store struct {
	db *sql.DB
}

// ScoreEntry represents a single finished game.
type ScoreEntry struct {
	ID        int64
	GameID    string
	Score     int
	MaxScore  int
	CreatedAt time.Time
}

// Attempt is one graded answer or one drop.
type Attempt struct {
	ID        int64
	SessionID string
	GameID    string
	ItemID    string
	Choice    int
	Correct   bool
	CreatedAt time.Time
}

// ItemStats aggregates attempts for one question or widget.
type ItemStats struct {
	ItemID   string
	Attempts int
	Correct  int
}

// Accuracy returns the share of correct attempts in [0, 1].
func (s ItemStats) Accuracy() float64 {
	if s.Attempts == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Attempts)
}

// migrations are applied in order; PRAGMA user_version records how many
// have run.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS scores (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		game_id TEXT NOT NULL,
		score INTEGER NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(game_id, score DESC);`,

	`ALTER TABLE scores ADD COLUMN max_score INTEGER NOT NULL DEFAULT 0;`,

	`CREATE TABLE IF NOT EXISTS attempts (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		session_id TEXT NOT NULL,
		game_id TEXT NOT NULL,
		item_id TEXT NOT NULL,
		choice INTEGER NOT NULL DEFAULT 0,
		correct INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_attempts_game_item ON attempts(game_id, item_id);
	CREATE INDEX IF NOT EXISTS idx_attempts_session ON attempts(session_id);`,
}

// Open creates or opens the database at dbPath ("~/" is expanded),
// creating parent directories and applying pending migrations.
func Open(dbPath string) (*Store, error) {
	dbPath, err := config.ExpandHome(dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: %w", err)
	}

	if dir := filepath.Dir(dbPath); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
		}
	}

	// SSH sessions write from several goroutines.
	dsn := "file:" + dbPath + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}
	return store, nil
}

func (s *Store) migrate() error {
	var version int
	if err := s.db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return err
	}

	for i := version; i < len(migrations); i++ {
		tx, err := s.db.Begin()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(migrations[i]); err != nil {
			tx.Rollback()
			return fmt.Errorf("step %d: %w", i+1, err)
		}
		// PRAGMA does not take bind parameters.
		if _, err := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", i+1)); err != nil {
			tx.Rollback()
			return err
		}
		if err := tx.Commit(); err != nil {
			return err
		}
	}
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// insert runs an INSERT and returns the new row ID.
func (s *Store) insert(what, query string, args ...any) (int64, error) {
	res, err := s.db.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save %s: %w", what, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get %s ID: %w", what, err)
	}
	return id, nil
}

// queryAll runs query and collects one value per row with scan.
func queryAll[T any](db *sql.DB, what string, scan func(*sql.Rows) (T, error), query string, args ...any) ([]T, error) {
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query %s: %w", what, err)
	}
	defer rows.Close()

	var out []T
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan %s: %w", what, err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: reading %s: %w", what, err)
	}
	return out, nil
}

// SaveScore records a finished game and returns its row ID.
func (s *Store) SaveScore(gameID string, score, maxScore int) (int64, error) {
	return s.insert("score",
		"INSERT INTO scores (game_id, score, max_score) VALUES (?, ?, ?)",
		gameID, score, maxScore)
}

// TopScores returns up to limit results for a game, best first and most
// recent first among ties. A non-positive limit means 10.
func (s *Store) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	return queryAll(s.db, "scores", func(r *sql.Rows) (ScoreEntry, error) {
		var e ScoreEntry
		var at any
		err := r.Scan(&e.ID, &e.GameID, &e.Score, &e.MaxScore, &at)
		e.CreatedAt = parseTime(at)
		return e, err
	}, `SELECT id, game_id, score, max_score, created_at FROM scores
		WHERE game_id = ? ORDER BY score DESC, id DESC LIMIT ?`, gameID, limit)
}

// HighScore returns the best score for a game, 0 when none is stored.
func (s *Store) HighScore(gameID string) (int, error) {
	var best sql.NullInt64
	if err := s.db.QueryRow("SELECT MAX(score) FROM scores WHERE game_id = ?", gameID).Scan(&best); err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	return int(best.Int64), nil
}

// ClearScores deletes every score and attempt of a game.
func (s *Store) ClearScores(gameID string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot clear %s: %w", gameID, err)
	}
	for _, table := range []string{"scores", "attempts"} {
		if _, err := tx.Exec("DELETE FROM "+table+" WHERE game_id = ?", gameID); err != nil {
			tx.Rollback()
			return fmt.Errorf("storage: cannot clear %s: %w", table, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot clear %s: %w", gameID, err)
	}
	return nil
}

// RecordAttempt stores one graded answer or drop and returns its row ID.
func (s *Store) RecordAttempt(a Attempt) (int64, error) {
	return s.insert("attempt",
		`INSERT INTO attempts (session_id, game_id, item_id, choice, correct)
		 VALUES (?, ?, ?, ?, ?)`,
		a.SessionID, a.GameID, a.ItemID, a.Choice, a.Correct)
}

// SessionAttempts returns the attempts of one play session in order.
func (s *Store) SessionAttempts(sessionID string) ([]Attempt, error) {
	return queryAll(s.db, "attempts", func(r *sql.Rows) (Attempt, error) {
		var a Attempt
		var at any
		err := r.Scan(&a.ID, &a.SessionID, &a.GameID, &a.ItemID, &a.Choice, &a.Correct, &at)
		a.CreatedAt = parseTime(at)
		return a, err
	}, `SELECT id, session_id, game_id, item_id, choice, correct, created_at
		FROM attempts WHERE session_id = ? ORDER BY id`, sessionID)
}

// QuestionStats aggregates attempts per item of a game, lowest accuracy
// first, ties by item ID.
func (s *Store) QuestionStats(gameID string) ([]ItemStats, error) {
	return queryAll(s.db, "item stats", func(r *sql.Rows) (ItemStats, error) {
		var st ItemStats
		err := r.Scan(&st.ItemID, &st.Attempts, &st.Correct)
		return st, err
	}, `SELECT item_id, COUNT(*), SUM(correct) FROM attempts
		WHERE game_id = ? GROUP BY item_id
		ORDER BY CAST(SUM(correct) AS REAL) / COUNT(*), item_id`, gameID)
}

// GameStats contains aggregated statistics for a game.
type GameStats struct {
	GameID     string
	GamesCount int
	HighScore  int
	AvgScore   float64
	TotalScore int64
	LastPlayed time.Time
}

// GetGameStats retrieves aggregated statistics for a specific game.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	stats := &GameStats{GameID: gameID}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), COALESCE(SUM(score), 0)
		 FROM scores WHERE game_id = ?`,
		gameID,
	).Scan(&stats.GamesCount, &stats.HighScore, &stats.AvgScore, &stats.TotalScore)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM scores WHERE game_id = ? ORDER BY id DESC LIMIT 1`,
		gameID,
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

// parseTime handles both time.Time and string columns from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(sqliteTimeLayout, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
