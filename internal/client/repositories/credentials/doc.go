// Package credentials persists the session token, role and cached profile
// in a local SQLite database, mirroring the key layout of the backend's
// mobile client (jwt_token, user_role, user_data).
package credentials
