package storage

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

// openTestStore opens a fresh database in a temporary directory.
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
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreOpenNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreOpenExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.arcade/scores.db")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".arcade", "scores.db")); err != nil {
		t.Errorf("Database not created under HOME: %v", err)
	}
}

func TestStoreTopScores(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 500, 50, 300, 200} {
		if _, err := store.SaveScore("defender", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("other", 9000); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	tests := []struct {
		name     string
		limit    int
		expected []int
	}{
		{"top three", 3, []int{500, 300, 200}},
		{"all", 10, []int{500, 300, 200, 100, 50}},
		{"default limit", 0, []int{500, 300, 200, 100, 50}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scores, err := store.TopScores("defender", tt.limit)
			if err != nil {
				t.Fatalf("TopScores() failed: %v", err)
			}
			if len(scores) != len(tt.expected) {
				t.Fatalf("len(TopScores()) = %d, expected %d", len(scores), len(tt.expected))
			}
			for i, want := range tt.expected {
				if scores[i].Score != want {
					t.Errorf("TopScores()[%d] = %d, expected %d", i, scores[i].Score, want)
				}
			}
			if scores[0].CreatedAt.IsZero() {
				t.Error("CreatedAt was not parsed")
			}
		})
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("defender")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("HighScore() = %d for an empty game, expected 0", high)
	}

	store.SaveScore("defender", 100)
	store.SaveScore("defender", 300)
	store.SaveScore("defender", 200)

	high, err = store.HighScore("defender")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("HighScore() = %d, expected 300", high)
	}
}

func TestStoreRuns(t *testing.T) {
	store := openTestStore(t)

	runs := []RunRecord{
		{GameID: "defender", Score: 1200, Level: 2, MissionsCompleted: 1, MissionsTotal: 4, Seconds: 45},
		{GameID: "defender", Score: 8800, Level: 5, MissionsCompleted: 3, MissionsTotal: 4, Seconds: 190, EasterEgg: true},
		{GameID: "other", Score: 10, Level: 1, MissionsTotal: 4, Seconds: 3},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	recent, err := store.RecentRuns("defender", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("len(RecentRuns()) = %d, expected 2", len(recent))
	}

	newest := recent[0]
	if newest.Score != 8800 || newest.Level != 5 || newest.MissionsCompleted != 3 || newest.Seconds != 190 {
		t.Errorf("RecentRuns()[0] = %+v, expected the 8800 run", newest)
	}
	if !newest.EasterEgg {
		t.Error("EasterEgg = false, expected true")
	}
	if recent[1].EasterEgg {
		t.Error("EasterEgg = true for the first run, expected false")
	}
}

func TestStoreReplays(t *testing.T) {
	store := openTestStore(t)

	none, err := store.LatestReplay("defender")
	if err != nil {
		t.Fatalf("LatestReplay() failed: %v", err)
	}
	if none != nil {
		t.Errorf("LatestReplay() = %+v on an empty store, expected nil", none)
	}

	runID, err := store.SaveRun(RunRecord{GameID: "defender", Score: 700})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	first := []byte{0x85, 0x01, 0x02}
	second := []byte{0x85, 0x03, 0x04, 0x05}
	if _, err := store.SaveReplay("defender", runID, 700, first); err != nil {
		t.Fatalf("SaveReplay() failed: %v", err)
	}
	if _, err := store.SaveReplay("defender", runID+1, 900, second); err != nil {
		t.Fatalf("SaveReplay() failed: %v", err)
	}

	latest, err := store.LatestReplay("defender")
	if err != nil {
		t.Fatalf("LatestReplay() failed: %v", err)
	}
	if latest == nil || !bytes.Equal(latest.Data, second) || latest.Score != 900 {
		t.Errorf("LatestReplay() = %+v, expected the second replay", latest)
	}

	byRun, err := store.ReplayByRun(runID)
	if err != nil {
		t.Fatalf("ReplayByRun() failed: %v", err)
	}
	if byRun == nil || !bytes.Equal(byRun.Data, first) {
		t.Errorf("ReplayByRun(%d) = %+v, expected the first replay", runID, byRun)
	}

	if _, err := store.SaveReplay("defender", runID, 0, nil); err == nil {
		t.Error("SaveReplay() with empty data should fail")
	}
}

func TestStorePruneReplays(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		if _, err := store.SaveReplay("defender", int64(i+1), i, []byte{byte(i)}); err != nil {
			t.Fatalf("SaveReplay() failed: %v", err)
		}
	}

	n, err := store.PruneReplays("defender", 2)
	if err != nil {
		t.Fatalf("PruneReplays() failed: %v", err)
	}
	if n != 3 {
		t.Errorf("PruneReplays() = %d, expected 3", n)
	}

	latest, _ := store.LatestReplay("defender")
	if latest == nil || latest.RunID != 5 {
		t.Errorf("LatestReplay() = %+v, expected run 5", latest)
	}
	oldest, _ := store.ReplayByRun(3)
	if oldest != nil {
		t.Errorf("ReplayByRun(3) = %+v after prune, expected nil", oldest)
	}
	kept, _ := store.ReplayByRun(4)
	if kept == nil {
		t.Error("ReplayByRun(4) = nil after prune, expected a replay")
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("defender", 100)
	store.SaveScore("other", 300)
	runID, _ := store.SaveRun(RunRecord{GameID: "defender", Score: 100})
	store.SaveReplay("defender", runID, 100, []byte{1})

	if err := store.ClearScores("defender"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores("defender", 10); len(scores) != 0 {
		t.Errorf("len(TopScores()) = %d after clear, expected 0", len(scores))
	}
	if runs, _ := store.RecentRuns("defender", 10); len(runs) != 0 {
		t.Errorf("len(RecentRuns()) = %d after clear, expected 0", len(runs))
	}
	if r, _ := store.LatestReplay("defender"); r != nil {
		t.Error("LatestReplay() should be nil after clear")
	}
	if scores, _ := store.TopScores("other", 10); len(scores) != 1 {
		t.Error("Other games should not be affected by clearing defender")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 300} {
		store.SaveScore("defender", score)
	}
	store.SaveRun(RunRecord{GameID: "defender", Score: 100, Level: 2, MissionsCompleted: 1, Seconds: 30})
	store.SaveRun(RunRecord{GameID: "defender", Score: 300, Level: 4, MissionsCompleted: 2, Seconds: 90, EasterEgg: true})

	stats, err := store.GetGameStats("defender")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}

	if stats.GamesCount != 2 {
		t.Errorf("GamesCount = %d, expected 2", stats.GamesCount)
	}
	if stats.HighScore != 300 {
		t.Errorf("HighScore = %d, expected 300", stats.HighScore)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %v, expected 200", stats.AvgScore)
	}
	if stats.BestLevel != 4 {
		t.Errorf("BestLevel = %d, expected 4", stats.BestLevel)
	}
	if stats.MissionsCompleted != 3 {
		t.Errorf("MissionsCompleted = %d, expected 3", stats.MissionsCompleted)
	}
	if stats.TotalSeconds != 120 {
		t.Errorf("TotalSeconds = %d, expected 120", stats.TotalSeconds)
	}
	if stats.EasterEggRuns != 1 {
		t.Errorf("EasterEggRuns = %d, expected 1", stats.EasterEggRuns)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed was not set")
	}

	empty, err := store.GetGameStats("nothing")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || empty.HighScore != 0 {
		t.Errorf("GetGameStats(nothing) = %+v, expected zero stats", empty)
	}
}
