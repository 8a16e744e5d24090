// Package common defines shared constants and sentinel errors used across
// the helpdesk client layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Cached-state errors. Both mean the caller must re-authenticate;
	// neither is retryable.
	ErrNoCachedProfile = errors.New("no cached user data")
	ErrNoRole          = errors.New("no stored role, re-authentication required")

	// Login response validation. A successful login without a role is a
	// hard error; the client never assigns a default role.
	ErrRoleMissing = errors.New("login response carried no role")
)
