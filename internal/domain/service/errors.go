package service

import "errors"

// ErrNoSession gates every fetch and dispatch operation: without an
// externally provided user id the engine is simply not ready.
var ErrNoSession = errors.New("no active session")
