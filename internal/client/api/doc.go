// Package api is the HTTP access layer for the helpdesk backend: a single
// configured client with a fixed timeout that attaches the stored bearer
// token to every request, clears the local session on an authorization
// rejection, and normalizes every failure into one of three shapes:
// ErrSessionExpired, *ServerError (server-supplied message) or ErrUnavailable
// (no interpretable response). It never retries.
package api
