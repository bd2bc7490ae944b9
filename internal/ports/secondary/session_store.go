package secondary

import "context"

// SessionStore holds the externally validated session identity. CurrentUser
// returns 0 when no session is present; the engine performs no fetch or
// dispatch until an id appears.
type SessionStore interface {
	CurrentUser(ctx context.Context) (int64, error)
	SetCurrentUser(ctx context.Context, userID int64) error
	Clear(ctx context.Context) error
}
