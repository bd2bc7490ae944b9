package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/campusclubs/clubdeck/internal/domain/entity"
)

// Client talks to the external campus-clubs REST API. It implements every
// collaborator port the engine consumes: recommendations, vote submission,
// liked clubs and per-club events.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// Recommendations fetches the ranked candidate clubs for a user.
//
// GET /api/recommend?user_id=<id>&limit=<n>
func (c *Client) Recommendations(ctx context.Context, userID int64, limit int) ([]entity.Club, error) {
	q := url.Values{}
	q.Set("user_id", strconv.FormatInt(userID, 10))
	q.Set("limit", strconv.Itoa(limit))

	var clubs []entity.Club
	if err := c.getJSON(ctx, "/api/recommend?"+q.Encode(), &clubs); err != nil {
		return nil, err
	}
	return clubs, nil
}

type swipeRequest struct {
	UserID   int64  `json:"user_id"`
	ClubID   int64  `json:"club_id"`
	Liked    bool   `json:"liked"`
	ClientID string `json:"client_id,omitempty"`
}

type swipeResponse struct {
	Status  string `json:"status"`
	SwipeID int64  `json:"swipe_id"`
}

// SubmitVote posts a swipe vote. The server-assigned id is copied back onto
// the swipe.
//
// POST /api/swipe
func (c *Client) SubmitVote(ctx context.Context, swipe *entity.Swipe) (*entity.Swipe, error) {
	body, err := json.Marshal(swipeRequest{
		UserID:   swipe.UserID,
		ClubID:   swipe.ClubID,
		Liked:    swipe.Liked,
		ClientID: swipe.ClientID,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/swipe", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("swipe endpoint returned status %d", resp.StatusCode)
	}

	var out swipeResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	swipe.ID = out.SwipeID
	return swipe, nil
}

// LikedClubs fetches the clubs the user has liked, in the server's order.
//
// GET /api/likes?user_id=<id>
func (c *Client) LikedClubs(ctx context.Context, userID int64) ([]entity.Club, error) {
	q := url.Values{}
	q.Set("user_id", strconv.FormatInt(userID, 10))

	var clubs []entity.Club
	if err := c.getJSON(ctx, "/api/likes?"+q.Encode(), &clubs); err != nil {
		return nil, err
	}
	return clubs, nil
}

// UpcomingEvents fetches a club's future events. Visibility filtering happens
// server-side; the viewer id is passed through for it.
//
// GET /api/clubs/<id>/events?upcoming=true&user_id=<viewer>
func (c *Client) UpcomingEvents(ctx context.Context, clubID, viewerID int64) ([]entity.Event, error) {
	q := url.Values{}
	q.Set("upcoming", "true")
	if viewerID != 0 {
		q.Set("user_id", strconv.FormatInt(viewerID, 10))
	}

	path := fmt.Sprintf("/api/clubs/%d/events?%s", clubID, q.Encode())
	var events []entity.Event
	if err := c.getJSON(ctx, path, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("GET %s returned status %d", path, resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
