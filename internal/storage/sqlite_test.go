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

func save(t *testing.T, store *Store, difficulty string, score, correct, wrong int) {
	t.Helper()
	_, err := store.SaveSession(SessionRecord{
		Difficulty:   difficulty,
		Score:        score,
		Correct:      correct,
		Wrong:        wrong,
		Spawned:      correct + wrong + 2,
		DurationSecs: 60,
	})
	if err != nil {
		t.Fatalf("SaveSession() failed: %v", err)
	}
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

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

func TestStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	save(t, store, "normal", 120, 13, 2)
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore("normal")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 120 {
		t.Errorf("HighScore after reopen = %d, want 120", high)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	save(t, store, "normal", 100, 11, 2)
	save(t, store, "normal", 50, 6, 2)
	save(t, store, "normal", 200, 20, 0)
	save(t, store, "hard", 500, 52, 4)

	scores, err := store.TopScores("normal", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	for i, want := range []int{200, 100, 50} {
		if scores[i].Score != want {
			t.Errorf("scores[%d] = %d, want %d", i, scores[i].Score, want)
		}
	}
	top := scores[0]
	if top.Difficulty != "normal" || top.Correct != 20 || top.Wrong != 0 || top.Spawned != 22 || top.DurationSecs != 60 {
		t.Errorf("record not round-tripped: %+v", top)
	}
	if top.ID == 0 {
		t.Error("record ID not set")
	}

	all, err := store.TopScores("", 10)
	if err != nil {
		t.Fatalf("TopScores(all) failed: %v", err)
	}
	if len(all) != 4 || all[0].Score != 500 {
		t.Errorf("TopScores(all) = %d records, first %+v", len(all), all[0])
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 15; i++ {
		save(t, store, "easy", i*10, i, 0)
	}

	scores, err := store.TopScores("easy", 5)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 5 {
		t.Errorf("Expected 5 scores, got %d", len(scores))
	}
	if scores[0].Score != 140 {
		t.Errorf("Expected top score 140, got %d", scores[0].Score)
	}

	// Non-positive limit falls back to 10
	scores, err = store.TopScores("easy", 0)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 10 {
		t.Errorf("Expected default limit of 10, got %d", len(scores))
	}
}

func TestStoreTopScoresTiesKeepOrder(t *testing.T) {
	store := openTestStore(t)

	save(t, store, "hard", 80, 8, 0)
	save(t, store, "hard", 80, 9, 2)

	scores, err := store.TopScores("hard", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 2 || scores[0].ID >= scores[1].ID {
		t.Errorf("tied scores not in insertion order: %+v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("normal")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected 0 for empty table, got %d", high)
	}

	save(t, store, "normal", -15, 0, 3)
	save(t, store, "normal", 75, 8, 1)
	save(t, store, "fixed", 300, 30, 0)

	high, err = store.HighScore("normal")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 75 {
		t.Errorf("Expected 75, got %d", high)
	}

	high, err = store.HighScore("")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected 300 over all difficulties, got %d", high)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats("easy")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.Games != 0 || empty.Best != 0 || empty.Accuracy != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	save(t, store, "easy", 100, 10, 0)
	save(t, store, "easy", 40, 5, 2)
	save(t, store, "hard", 10, 2, 2)

	stats, err := store.Stats("easy")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Games != 2 || stats.Best != 100 || stats.Average != 70 {
		t.Errorf("stats = %+v", stats)
	}
	if want := 15.0 / 17.0; stats.Accuracy < want-1e-9 || stats.Accuracy > want+1e-9 {
		t.Errorf("Accuracy = %g, want %g", stats.Accuracy, want)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed not set")
	}

	all, err := store.Stats("")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if all.Games != 3 {
		t.Errorf("Games over all = %d, want 3", all.Games)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	save(t, store, "normal", 100, 10, 0)
	save(t, store, "normal", 200, 20, 0)
	save(t, store, "hard", 500, 50, 0)

	n, err := store.ClearScores("normal")
	if err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}
	if n != 2 {
		t.Errorf("cleared %d, want 2", n)
	}

	scores, _ := store.TopScores("normal", 10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}

	// Other difficulties unaffected
	scores, _ = store.TopScores("hard", 10)
	if len(scores) != 1 {
		t.Errorf("Expected 1 hard score, got %d", len(scores))
	}

	n, err = store.ClearScores("")
	if err != nil || n != 1 {
		t.Errorf("ClearScores(all) = %d, %v; want 1", n, err)
	}
}

func TestStoreRejectsMissingDifficulty(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveSession(SessionRecord{Score: 10}); err == nil {
		t.Error("expected error for empty difficulty")
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.recycle/scores.db")
	if err != nil {
		t.Fatalf("Open() with ~ path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".recycle", "scores.db")); err != nil {
		t.Errorf("database not created under home: %v", err)
	}
}
