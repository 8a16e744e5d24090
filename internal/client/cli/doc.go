// Package cli provides the interactive helpdesk command-line client.
//
// It wires configuration, the local credential store, the HTTP API client,
// and an interactive REPL. A session saved by a previous run is restored on
// startup, so users stay logged in between invocations.
//
// Key features:
//   - Login / Logout with a persisted session
//   - Profile view with a cached fallback when the server is unreachable
//   - Password change
//   - Ticket listing, ticket details with history, and ticket creation
//     with image and document attachments
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
