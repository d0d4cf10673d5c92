package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveScore("quiz", 2, 3); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore("quiz")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 2 {
		t.Errorf("HighScore() after reopen = %d, expected 2", high)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{1, 3, 2} {
		if _, err := store.SaveScore("quiz", score, 3); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("puzzle", 1, 1); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("quiz", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	want := []int{3, 2, 1}
	for i, w := range want {
		if scores[i].Score != w {
			t.Errorf("scores[%d] = %d, expected %d", i, scores[i].Score, w)
		}
		if scores[i].MaxScore != 3 {
			t.Errorf("scores[%d].MaxScore = %d, expected 3", i, scores[i].MaxScore)
		}
		if scores[i].CreatedAt.IsZero() {
			t.Errorf("scores[%d].CreatedAt should be set", i)
		}
	}

	limited, err := store.TopScores("quiz", 2)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("Expected limit to cap results at 2, got %d", len(limited))
	}
}

func TestStoreHighScoreEmpty(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("quiz")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("HighScore() with no scores = %d, expected 0", high)
	}
}

func TestStoreAttempts(t *testing.T) {
	store := openTestStore(t)

	attempts := []Attempt{
		{SessionID: "s1", GameID: "quiz", ItemID: "print", Choice: 0, Correct: true},
		{SessionID: "s1", GameID: "quiz", ItemID: "main", Choice: 2, Correct: false},
		{SessionID: "s2", GameID: "quiz", ItemID: "main", Choice: 0, Correct: true},
		{SessionID: "s2", GameID: "quiz", ItemID: "main", Choice: 1, Correct: false},
	}
	for _, a := range attempts {
		if _, err := store.RecordAttempt(a); err != nil {
			t.Fatalf("RecordAttempt() failed: %v", err)
		}
	}

	s1, err := store.SessionAttempts("s1")
	if err != nil {
		t.Fatalf("SessionAttempts() failed: %v", err)
	}
	if len(s1) != 2 {
		t.Fatalf("Expected 2 attempts for s1, got %d", len(s1))
	}
	if s1[0].ItemID != "print" || !s1[0].Correct {
		t.Errorf("first attempt = %+v, expected correct answer to print", s1[0])
	}
	if s1[1].Choice != 2 || s1[1].Correct {
		t.Errorf("second attempt = %+v, expected wrong choice 2", s1[1])
	}

	stats, err := store.QuestionStats("quiz")
	if err != nil {
		t.Fatalf("QuestionStats() failed: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("Expected stats for 2 items, got %d", len(stats))
	}
	// Hardest first: main is 1/3, print is 1/1
	if stats[0].ItemID != "main" || stats[0].Attempts != 3 || stats[0].Correct != 1 {
		t.Errorf("stats[0] = %+v, expected main 1/3", stats[0])
	}
	if stats[1].Accuracy() != 1 {
		t.Errorf("stats[1].Accuracy() = %v, expected 1", stats[1].Accuracy())
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("quiz", 3, 3)
	store.SaveScore("puzzle", 1, 1)
	store.RecordAttempt(Attempt{SessionID: "s", GameID: "quiz", ItemID: "print", Correct: true})

	if err := store.ClearScores("quiz"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	quiz, _ := store.TopScores("quiz", 10)
	if len(quiz) != 0 {
		t.Errorf("Expected no quiz scores after clear, got %d", len(quiz))
	}
	stats, _ := store.QuestionStats("quiz")
	if len(stats) != 0 {
		t.Errorf("Expected no quiz attempts after clear, got %d", len(stats))
	}
	puzzle, _ := store.TopScores("puzzle", 10)
	if len(puzzle) != 1 {
		t.Errorf("Other games should be untouched, got %d puzzle scores", len(puzzle))
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("quiz")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v, expected zero values", empty)
	}

	store.SaveScore("quiz", 1, 3)
	store.SaveScore("quiz", 3, 3)

	stats, err := store.GetGameStats("quiz")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 3 || stats.TotalScore != 4 {
		t.Errorf("stats = %+v, expected 2 games, high 3, total 4", stats)
	}
	if stats.AvgScore != 2 {
		t.Errorf("AvgScore = %v, expected 2", stats.AvgScore)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestStoreMigrationsRecorded(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	for i := 0; i < 2; i++ {
		store, err := Open(dbPath)
		if err != nil {
			t.Fatalf("Open() #%d failed: %v", i+1, err)
		}

		var version int
		if err := store.db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
			t.Fatalf("reading user_version: %v", err)
		}
		if version != len(migrations) {
			t.Errorf("user_version = %d, expected %d", version, len(migrations))
		}
		store.Close()
	}
}

func TestStoreUpgradesOldScoresTable(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "old.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	// Simulate a database created before max_score and attempts existed.
	for _, q := range []string{
		"DROP TABLE attempts",
		"DROP TABLE scores",
		"CREATE TABLE scores (id INTEGER PRIMARY KEY AUTOINCREMENT, game_id TEXT NOT NULL, score INTEGER NOT NULL, created_at DATETIME DEFAULT CURRENT_TIMESTAMP)",
		"INSERT INTO scores (game_id, score) VALUES ('quiz', 2)",
		"PRAGMA user_version = 1",
	} {
		if _, err := store.db.Exec(q); err != nil {
			t.Fatalf("%s: %v", q, err)
		}
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	top, err := store.TopScores("quiz", 1)
	if err != nil || len(top) != 1 {
		t.Fatalf("TopScores() = %v, %v", top, err)
	}
	if top[0].Score != 2 || top[0].MaxScore != 0 {
		t.Errorf("upgraded row = %d/%d, expected 2/0", top[0].Score, top[0].MaxScore)
	}
	if _, err := store.RecordAttempt(Attempt{SessionID: "s", GameID: "quiz", ItemID: "q1"}); err != nil {
		t.Errorf("attempts table missing after upgrade: %v", err)
	}
}
