package service

import (
	"context"
	"errors"
	"testing"

	"github.com/campusclubs/clubdeck/internal/domain/dto"
	"github.com/campusclubs/clubdeck/internal/domain/entity"
	"github.com/campusclubs/clubdeck/pkg/logger"
)

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()

	if err := logger.Init(logger.Config{}); err != nil {
		t.Fatalf("init logger: %v", err)
	}
	lg, err := logger.Named("test")
	if err != nil {
		t.Fatalf("named logger: %v", err)
	}
	return lg
}

// fakeRecommendations simulates the recommendation source.
type fakeRecommendations struct {
	clubs []entity.Club
	err   error
	calls int
}

func (f *fakeRecommendations) Recommendations(_ context.Context, _ int64, _ int) ([]entity.Club, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.clubs, nil
}

func clubs(ids ...int64) []entity.Club {
	out := make([]entity.Club, len(ids))
	for i, id := range ids {
		out[i] = entity.Club{ID: id}
	}
	return out
}

func remainingIDs(deck *DeckService) []int64 {
	window := deck.Window(deck.Remaining())
	// Window is back-to-front; reverse to get deck order.
	ids := make([]int64, len(window))
	for i, c := range window {
		ids[len(window)-1-i] = c.ID
	}
	return ids
}

func TestDeckLoadGatedWithoutSession(t *testing.T) {
	deck := NewDeckService(&fakeRecommendations{clubs: clubs(1)}, nil, testLogger(t), 10)

	if err := deck.Load(context.Background(), 0); !errors.Is(err, ErrNoSession) {
		t.Fatalf("Load without session returned %v, want ErrNoSession", err)
	}
	if deck.State() != dto.DeckLoading {
		t.Fatalf("state = %v, want loading", deck.State())
	}
}

func TestDeckCommitPreservesSurvivorOrder(t *testing.T) {
	deck := NewDeckService(&fakeRecommendations{clubs: clubs(5, 2, 9, 7, 1)}, nil, testLogger(t), 10)
	if err := deck.Load(context.Background(), 42); err != nil {
		t.Fatalf("load: %v", err)
	}

	for _, id := range []int64{5, 2, 9} {
		if !deck.Commit(id) {
			t.Fatalf("commit %d reported no removal", id)
		}
	}

	got := remainingIDs(deck)
	if len(got) != 2 || got[0] != 7 || got[1] != 1 {
		t.Fatalf("remaining deck = %v, want [7 1]", got)
	}
}

func TestDeckCommitIdempotent(t *testing.T) {
	deck := NewDeckService(&fakeRecommendations{clubs: clubs(5, 2, 9)}, nil, testLogger(t), 10)
	if err := deck.Load(context.Background(), 42); err != nil {
		t.Fatalf("load: %v", err)
	}

	if !deck.Commit(2) {
		t.Fatalf("first commit reported no removal")
	}
	if deck.Commit(2) {
		t.Fatalf("second commit of the same id reported a removal")
	}

	got := remainingIDs(deck)
	if len(got) != 2 || got[0] != 5 || got[1] != 9 {
		t.Fatalf("remaining deck = %v, want [5 9]", got)
	}
}

func TestDeckWindowBackToFront(t *testing.T) {
	deck := NewDeckService(&fakeRecommendations{clubs: clubs(5, 2, 9, 7, 1)}, nil, testLogger(t), 10)
	if err := deck.Load(context.Background(), 42); err != nil {
		t.Fatalf("load: %v", err)
	}

	window := deck.Window(3)
	if len(window) != 3 {
		t.Fatalf("window size = %d, want 3", len(window))
	}
	// First element renders behind; the top card comes last.
	if window[0].ID != 9 || window[1].ID != 2 || window[2].ID != 5 {
		t.Fatalf("window = [%d %d %d], want [9 2 5]", window[0].ID, window[1].ID, window[2].ID)
	}

	// A window larger than the deck is just the whole deck.
	if got := deck.Window(WindowSize * 2); len(got) != 5 {
		t.Fatalf("oversized window length = %d, want 5", len(got))
	}
}

func TestDeckDepletionIsTerminalEmptyState(t *testing.T) {
	deck := NewDeckService(&fakeRecommendations{clubs: clubs(5, 2)}, nil, testLogger(t), 10)
	if err := deck.Load(context.Background(), 42); err != nil {
		t.Fatalf("load: %v", err)
	}
	if deck.State() != dto.DeckReady {
		t.Fatalf("state after load = %v, want ready", deck.State())
	}

	deck.Commit(5)
	deck.Commit(2)

	if deck.State() != dto.DeckEmpty {
		t.Fatalf("state after depletion = %v, want empty", deck.State())
	}
	if got := deck.Window(WindowSize); len(got) != 0 {
		t.Fatalf("window after depletion = %v, want empty", got)
	}
}

func TestDeckDropsDuplicateIDsOnLoad(t *testing.T) {
	deck := NewDeckService(&fakeRecommendations{clubs: clubs(5, 2, 5, 9, 2)}, nil, testLogger(t), 10)
	if err := deck.Load(context.Background(), 42); err != nil {
		t.Fatalf("load: %v", err)
	}

	got := remainingIDs(deck)
	if len(got) != 3 || got[0] != 5 || got[1] != 2 || got[2] != 9 {
		t.Fatalf("deck = %v, want [5 2 9]", got)
	}
}

func TestDeckCommittedIDNeverReappears(t *testing.T) {
	source := &fakeRecommendations{clubs: clubs(5, 2, 9)}
	deck := NewDeckService(source, nil, testLogger(t), 10)
	if err := deck.Load(context.Background(), 42); err != nil {
		t.Fatalf("load: %v", err)
	}

	deck.Commit(2)

	// Reloading for the same session must not bring the committed id back.
	if err := deck.Load(context.Background(), 42); err != nil {
		t.Fatalf("reload: %v", err)
	}

	got := remainingIDs(deck)
	if len(got) != 2 || got[0] != 5 || got[1] != 9 {
		t.Fatalf("deck after reload = %v, want [5 9]", got)
	}
}

func TestDeckUserChangeStartsFreshSession(t *testing.T) {
	source := &fakeRecommendations{clubs: clubs(5, 2)}
	deck := NewDeckService(source, nil, testLogger(t), 10)
	if err := deck.Load(context.Background(), 42); err != nil {
		t.Fatalf("load: %v", err)
	}
	deck.Commit(5)

	if err := deck.Load(context.Background(), 43); err != nil {
		t.Fatalf("load for new user: %v", err)
	}

	got := remainingIDs(deck)
	if len(got) != 2 || got[0] != 5 || got[1] != 2 {
		t.Fatalf("deck for new user = %v, want [5 2]", got)
	}
	if deck.UserID() != 43 {
		t.Fatalf("user id = %d, want 43", deck.UserID())
	}
}

func TestDeckFallbackOnFetchFailure(t *testing.T) {
	fallback := clubs(100, 101)
	deck := NewDeckService(&fakeRecommendations{err: errors.New("api down")}, fallback, testLogger(t), 10)

	if err := deck.Load(context.Background(), 42); err != nil {
		t.Fatalf("load with fallback returned error: %v", err)
	}
	if deck.State() != dto.DeckReady {
		t.Fatalf("state = %v, want ready", deck.State())
	}

	got := remainingIDs(deck)
	if len(got) != 2 || got[0] != 100 || got[1] != 101 {
		t.Fatalf("deck = %v, want fallback [100 101]", got)
	}
}

func TestDeckFailedStateWithoutFallback(t *testing.T) {
	deck := NewDeckService(&fakeRecommendations{err: errors.New("api down")}, nil, testLogger(t), 10)

	if err := deck.Load(context.Background(), 42); err == nil {
		t.Fatalf("expected load error")
	}
	if deck.State() != dto.DeckFailed {
		t.Fatalf("state = %v, want failed", deck.State())
	}
}

func TestDeckRefreshFailureKeepsUsableDeck(t *testing.T) {
	source := &fakeRecommendations{clubs: clubs(5, 2, 9)}
	deck := NewDeckService(source, nil, testLogger(t), 10)
	if err := deck.Load(context.Background(), 42); err != nil {
		t.Fatalf("load: %v", err)
	}
	deck.Commit(5)

	source.err = errors.New("api down")
	if err := deck.Load(context.Background(), 42); err == nil {
		t.Fatalf("expected refresh error")
	}

	// The survivors are still swipeable, so the deck stays ready.
	if deck.State() != dto.DeckReady {
		t.Fatalf("state after failed refresh = %v, want ready", deck.State())
	}
	got := remainingIDs(deck)
	if len(got) != 2 || got[0] != 2 || got[1] != 9 {
		t.Fatalf("deck after failed refresh = %v, want [2 9]", got)
	}
}
