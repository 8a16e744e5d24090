package api

import "errors"

var (
	// ErrUnavailable means no interpretable server response was received:
	// network failure, timeout, or a malformed body.
	ErrUnavailable = errors.New("server communication failure")

	// ErrSessionExpired is returned when the server rejects the bearer
	// token. The client has already dropped the local session by the time
	// callers see it.
	ErrSessionExpired = errors.New("session expired, please log in again")
)

// ServerError is a well-formed backend rejection. Message is taken verbatim
// from the response envelope.
type ServerError struct {
	Message string
}

func (e *ServerError) Error() string {
	return e.Message
}
