package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/whack-arcade/internal/core"
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

func testRound(id string, score int, reason string) core.RoundResult {
	return core.RoundResult{
		RoundID:     id,
		GameID:      "whack",
		Score:       score,
		Taps:        score + 1,
		Reason:      reason,
		Duration:    12*time.Second + 340*time.Millisecond,
		FinalFlash:  600 * time.Millisecond,
		FinalRevert: 500 * time.Millisecond,
	}
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

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
	if _, err := store.SaveRound(testRound("r-1", 4, "miss")); err != nil {
		t.Fatalf("SaveRound() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	rec, err := store.RoundByID("r-1")
	if err != nil || rec == nil {
		t.Fatalf("round lost after reopen: %v", err)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore("whack", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("other", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("whack", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	want := []int{200, 100, 50}
	for i, s := range scores {
		if s.Score != want[i] {
			t.Errorf("position %d: expected %d, got %d", i, want[i], s.Score)
		}
		if s.GameID != "whack" {
			t.Errorf("unexpected game id %q", s.GameID)
		}
		if s.CreatedAt.IsZero() {
			t.Error("CreatedAt should be populated")
		}
	}

	other, err := store.TopScores("other", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(other) != 1 {
		t.Errorf("Expected 1 score for other game, got %d", len(other))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("test", (i+1)*100)
	}

	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{"explicit limit", 3, 3},
		{"larger than rows", 50, 5},
		{"zero uses default", 0, 5},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			scores, err := store.TopScores("test", tc.limit)
			if err != nil {
				t.Fatalf("TopScores() failed: %v", err)
			}
			if len(scores) != tc.want {
				t.Errorf("Expected %d scores, got %d", tc.want, len(scores))
			}
			if len(scores) > 0 && scores[0].Score != 500 {
				t.Errorf("Expected top score 500, got %d", scores[0].Score)
			}
		})
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("whack")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("whack", 10)
	store.SaveScore("whack", 30)
	store.SaveScore("whack", 20)

	high, err = store.HighScore("whack")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 30 {
		t.Errorf("Expected high score of 30, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveRound(testRound("a", 1, "miss"))
	store.SaveRound(testRound("b", 2, "timeout"))
	store.SaveScore("other", 300)

	if err := store.ClearScores("whack"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores("whack", 10); len(scores) != 0 {
		t.Errorf("Expected 0 whack scores after clear, got %d", len(scores))
	}
	if rounds, _ := store.RecentRounds("whack", 10); len(rounds) != 0 {
		t.Errorf("Expected 0 whack rounds after clear, got %d", len(rounds))
	}
	if scores, _ := store.TopScores("other", 10); len(scores) != 1 {
		t.Error("Other game scores should not be affected")
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		store.SaveScore("test", i*10)
	}

	scores, err := store.AllScores("test")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreNestedPath(t *testing.T) {
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

func TestStoreExpandHomePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.arcade/scores.db")
	if err != nil {
		t.Fatalf("Open() with ~ path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".arcade", "scores.db")); err != nil {
		t.Errorf("Database not created under home: %v", err)
	}
}

func TestStoreSaveRound(t *testing.T) {
	store := openTestStore(t)
	in := testRound("0b6a5c1e-round", 7, "timeout")

	id, err := store.SaveRound(in)
	if err != nil {
		t.Fatalf("SaveRound() failed: %v", err)
	}
	if id <= 0 {
		t.Errorf("Expected positive id, got %d", id)
	}

	rec, err := store.RoundByID(in.RoundID)
	if err != nil {
		t.Fatalf("RoundByID() failed: %v", err)
	}
	if rec == nil {
		t.Fatal("round not found")
	}
	if rec.GameID != "whack" || rec.Score != 7 || rec.Taps != 8 || rec.EndReason != "timeout" {
		t.Errorf("unexpected record %+v", rec)
	}
	if rec.Duration != 12340*time.Millisecond {
		t.Errorf("Expected duration 12.34s, got %v", rec.Duration)
	}
	if rec.FinalFlash != 600*time.Millisecond || rec.FinalRevert != 500*time.Millisecond {
		t.Errorf("unexpected final intervals %v/%v", rec.FinalFlash, rec.FinalRevert)
	}

	// The round also lands on the leaderboard.
	high, _ := store.HighScore("whack")
	if high != 7 {
		t.Errorf("Expected round score on leaderboard, got %d", high)
	}
}

func TestStoreSaveRoundDuplicateID(t *testing.T) {
	store := openTestStore(t)

	if err := store.SaveRoundResult(testRound("dup", 1, "miss")); err != nil {
		t.Fatalf("first save failed: %v", err)
	}
	if err := store.SaveRoundResult(testRound("dup", 2, "miss")); err == nil {
		t.Fatal("Expected error for duplicate round id")
	}

	// The failed transaction must not leave a stray score behind.
	scores, _ := store.AllScores("whack")
	if len(scores) != 1 {
		t.Errorf("Expected 1 score after rolled back save, got %d", len(scores))
	}
}

func TestStoreRoundByIDMissing(t *testing.T) {
	store := openTestStore(t)

	rec, err := store.RoundByID("nope")
	if err != nil {
		t.Fatalf("RoundByID() failed: %v", err)
	}
	if rec != nil {
		t.Errorf("Expected nil for missing round, got %+v", rec)
	}
}

func TestStoreRecentRounds(t *testing.T) {
	store := openTestStore(t)

	for i, id := range []string{"first", "second", "third"} {
		if _, err := store.SaveRound(testRound(id, i, "miss")); err != nil {
			t.Fatalf("SaveRound() failed: %v", err)
		}
	}
	other := testRound("elsewhere", 9, "timeout")
	other.GameID = "other"
	store.SaveRound(other)

	rounds, err := store.RecentRounds("whack", 2)
	if err != nil {
		t.Fatalf("RecentRounds() failed: %v", err)
	}
	if len(rounds) != 2 {
		t.Fatalf("Expected 2 rounds, got %d", len(rounds))
	}
	if rounds[0].RoundID != "third" || rounds[1].RoundID != "second" {
		t.Errorf("Expected newest first, got %q, %q", rounds[0].RoundID, rounds[1].RoundID)
	}

	all, err := store.RecentRounds("", 0)
	if err != nil {
		t.Fatalf("RecentRounds() failed: %v", err)
	}
	if len(all) != 4 || all[0].RoundID != "elsewhere" {
		t.Errorf("Expected all 4 rounds newest first, got %d", len(all))
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveRound(testRound("a", 4, "miss"))
	store.SaveRound(testRound("b", 8, "timeout"))
	store.SaveRound(testRound("c", 0, "miss"))

	stats, err := store.GetGameStats("whack")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 3 || stats.HighScore != 8 || stats.TotalScore != 12 {
		t.Errorf("unexpected stats %+v", stats)
	}
	if stats.AvgScore != 4 {
		t.Errorf("Expected avg 4, got %v", stats.AvgScore)
	}
	if stats.Misses != 2 || stats.Timeouts != 1 {
		t.Errorf("Expected 2 misses and 1 timeout, got %d/%d", stats.Misses, stats.Timeouts)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}

	empty, err := store.GetGameStats("never")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", empty)
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 1 || all["whack"] == nil || all["whack"].GamesCount != 3 {
		t.Fatalf("unexpected all stats %+v", all)
	}
	if w := all["whack"]; w.Misses != 2 || w.Timeouts != 1 || w.HighScore != 8 {
		t.Errorf("unexpected whack stats %+v", w)
	}
}

func TestParseTime(t *testing.T) {
	want := time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)

	tests := []struct {
		name string
		in   any
		want time.Time
	}{
		{"time value", want, want},
		{"sqlite text", "2026-03-14 15:09:26", want},
		{"rfc3339", "2026-03-14T15:09:26Z", want},
		{"garbage", "yesterday", time.Time{}},
		{"nil", nil, time.Time{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := parseTime(tc.in); !got.Equal(tc.want) {
				t.Errorf("parseTime(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}
