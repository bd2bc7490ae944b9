package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/campusclubs/clubdeck/internal/domain/entity"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 5*time.Second)
}

func TestRecommendations(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/recommend" {
			t.Errorf("path = %s, want /api/recommend", r.URL.Path)
		}
		if got := r.URL.Query().Get("user_id"); got != "42" {
			t.Errorf("user_id = %s, want 42", got)
		}
		if got := r.URL.Query().Get("limit"); got != "10" {
			t.Errorf("limit = %s, want 10", got)
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"club_id": 5, "name": "AI Club", "tags": "AI,Tech", "meeting_time": "Tue 18:00", "location": "Room 101"},
			{"club_id": 2, "name": "Music Jam Session"}
		]`))
	})

	clubs, err := client.Recommendations(context.Background(), 42, 10)
	if err != nil {
		t.Fatalf("recommendations: %v", err)
	}
	if len(clubs) != 2 {
		t.Fatalf("clubs = %d, want 2", len(clubs))
	}
	if clubs[0].ID != 5 || clubs[0].Name != "AI Club" || clubs[0].MeetingTime != "Tue 18:00" {
		t.Fatalf("first club = %+v", clubs[0])
	}
	// Optional fields simply stay empty.
	if clubs[1].ID != 2 || clubs[1].Tags != "" || clubs[1].Location != "" {
		t.Fatalf("second club = %+v", clubs[1])
	}
}

func TestSubmitVote(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/swipe" {
			t.Errorf("%s %s, want POST /api/swipe", r.Method, r.URL.Path)
		}

		var body struct {
			UserID   int64  `json:"user_id"`
			ClubID   int64  `json:"club_id"`
			Liked    bool   `json:"liked"`
			ClientID string `json:"client_id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode body: %v", err)
		}
		if body.UserID != 42 || body.ClubID != 5 || !body.Liked || body.ClientID == "" {
			t.Errorf("body = %+v", body)
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status": "ok", "swipe_id": 77}`))
	})

	swipe := &entity.Swipe{ClientID: "abc-123", UserID: 42, ClubID: 5, Liked: true}
	got, err := client.SubmitVote(context.Background(), swipe)
	if err != nil {
		t.Fatalf("submit vote: %v", err)
	}
	if got.ID != 77 {
		t.Fatalf("server-assigned id = %d, want 77", got.ID)
	}
}

func TestSubmitVoteServerError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := client.SubmitVote(context.Background(), &entity.Swipe{UserID: 42, ClubID: 5})
	if err == nil {
		t.Fatalf("expected error on 500 response")
	}
}

func TestLikedClubs(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/likes" {
			t.Errorf("path = %s, want /api/likes", r.URL.Path)
		}
		if got := r.URL.Query().Get("user_id"); got != "42" {
			t.Errorf("user_id = %s, want 42", got)
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"club_id": 2, "name": "Music Jam Session", "tags": "Music"}]`))
	})

	clubs, err := client.LikedClubs(context.Background(), 42)
	if err != nil {
		t.Fatalf("liked clubs: %v", err)
	}
	if len(clubs) != 1 || clubs[0].ID != 2 || clubs[0].Name != "Music Jam Session" {
		t.Fatalf("clubs = %+v", clubs)
	}
}

func TestUpcomingEvents(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/clubs/2/events" {
			t.Errorf("path = %s, want /api/clubs/2/events", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("upcoming") != "true" {
			t.Errorf("upcoming = %s, want true", q.Get("upcoming"))
		}
		if q.Get("user_id") != "42" {
			t.Errorf("user_id = %s, want 42", q.Get("user_id"))
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id": 9, "club_id": 2, "title": "Open Mic", "start_time": "2026-09-15T18:00:00Z", "end_time": null, "is_online": false, "capacity": 40}
		]`))
	})

	events, err := client.UpcomingEvents(context.Background(), 2, 42)
	if err != nil {
		t.Fatalf("upcoming events: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("events = %d, want 1", len(events))
	}
	e := events[0]
	if e.ID != 9 || e.ClubID != 2 || e.Title != "Open Mic" || e.Capacity != 40 {
		t.Fatalf("event = %+v", e)
	}
	if !e.EndTime.IsZero() {
		t.Fatalf("null end_time should stay zero, got %v", e.EndTime)
	}
}

func TestUpcomingEventsAnonymousViewer(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Has("user_id") {
			t.Errorf("anonymous request should not carry user_id")
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	})

	events, err := client.UpcomingEvents(context.Background(), 2, 0)
	if err != nil {
		t.Fatalf("upcoming events: %v", err)
	}
	if len(events) != 0 {
		t.Fatalf("events = %v, want none", events)
	}
}

func TestGetErrorStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	})

	if _, err := client.Recommendations(context.Background(), 42, 10); err == nil {
		t.Fatalf("expected error on 404 response")
	}
}
