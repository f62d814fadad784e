package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func saveScores(t *testing.T, store *Store, gameID string, scores ...int) {
	t.Helper()
	for _, score := range scores {
		if _, err := store.SaveRun(Run{GameID: gameID, Score: score}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	saveScores(t, store, "stalls", 100, 50, 200)
	// Different game
	saveScores(t, store, "practice", 500)

	// Retrieve top scores for stalls
	scores, err := store.TopScores("stalls", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 200 {
		t.Errorf("Expected highest score to be 200, got %d", scores[0].Score)
	}
	if scores[1].Score != 100 {
		t.Errorf("Expected second score to be 100, got %d", scores[1].Score)
	}
	if scores[2].Score != 50 {
		t.Errorf("Expected third score to be 50, got %d", scores[2].Score)
	}

	// Retrieve top scores for dino
	practiceScores, err := store.TopScores("practice", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(practiceScores) != 1 {
		t.Errorf("Expected 1 practice score, got %d", len(practiceScores))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	saveScores(t, store, "test", 100, 200, 300, 400, 500)

	// Request only top 3
	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}

	// Should be 500, 400, 300 (top 3)
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreClearScores(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	saveScores(t, store, "stalls", 100, 200)
	saveScores(t, store, "practice", 300)

	// Clear only stalls scores
	err = store.ClearScores("stalls")
	if err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	// Stalls should be empty
	stallsScores, _ := store.TopScores("stalls", 10)
	if len(stallsScores) != 0 {
		t.Errorf("Expected 0 stalls scores after clear, got %d", len(stallsScores))
	}

	// Practice should still have scores
	practiceScores, _ := store.TopScores("practice", 10)
	if len(practiceScores) != 1 {
		t.Errorf("Practice scores should not be affected by clearing stalls")
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	// Test that ~ expansion works (we won't actually write to home)
	// Just verify the function doesn't crash
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreSaveRun(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	inv := map[string]int{"wood": 4, "bread": 3, "stone": 1, "gold": 0, "sheep": 2}
	id, err := store.SaveRun(Run{GameID: "stalls", Player: "alice", Seed: 42, Score: 30, Inventory: inv})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if id <= 0 {
		t.Errorf("Expected positive ID, got %d", id)
	}

	scores, err := store.TopScores("stalls", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("Expected 1 score, got %d", len(scores))
	}

	got := scores[0]
	if got.Player != "alice" || got.Seed != 42 || got.Score != 30 {
		t.Errorf("Unexpected entry: %+v", got)
	}
	for name, n := range inv {
		if got.Inventory[name] != n {
			t.Errorf("Inventory[%s] = %d, expected %d", name, got.Inventory[name], n)
		}
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestStoreSaveRunWithoutInventory(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := store.SaveRun(Run{GameID: "stalls", Score: 8}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	scores, err := store.TopScores("stalls", 1)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 || len(scores[0].Inventory) != 0 {
		t.Errorf("Expected one score with empty inventory, got %+v", scores)
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	saveScores(t, store, "stalls", 50, 10, 30)

	runs, err := store.RecentRuns("stalls", 2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("Expected 2 runs, got %d", len(runs))
	}
	if runs[0].Score != 30 || runs[1].Score != 10 {
		t.Errorf("Runs not newest first: %d, %d", runs[0].Score, runs[1].Score)
	}
}

func TestStoreGameStats(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	empty, err := store.GetGameStats("stalls")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", empty)
	}

	saveScores(t, store, "stalls", 10, 30)

	stats, err := store.GetGameStats("stalls")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 30 || stats.TotalScore != 40 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
	if stats.AvgScore != 20 {
		t.Errorf("Expected average 20, got %v", stats.AvgScore)
	}
}
