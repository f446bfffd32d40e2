package domain

import "errors"

// ErrInvalidRequest reports a chat request missing its message or session id.
var ErrInvalidRequest = errors.New("message and sessionId are required")
