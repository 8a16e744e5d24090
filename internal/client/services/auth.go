// Package services contains application services for the helpdesk client.
// This file defines the authentication service: login, profile fetch, cached
// profile/role access, password update and logout.
package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/helpdesk/internal/client/api"
	"github.com/dmitrijs2005/helpdesk/internal/client/models"
	"github.com/dmitrijs2005/helpdesk/internal/client/repositories/credentials"
	"github.com/dmitrijs2005/helpdesk/internal/common"
	"github.com/dmitrijs2005/helpdesk/internal/dbx"
)

// AuthService owns the session lifecycle. The stored token's presence is the
// sole signal of "logged in"; a token without a role or profile is treated as
// not logged in by callers (fail closed).
//
// Contract:
//   - Login: authenticate and persist token, role and cached profile, all
//     three or none.
//   - GetUserProfile: authoritative server fetch; refreshes the cache.
//   - GetUserData: cached profile only; never touches the network.
//   - GetUserRole: cached role; absence means re-authentication is required.
//   - UpdateUserProfile: submit new credential material to the server.
//   - Logout: local cleanup; always succeeds, even with no prior session.
//
// All methods honor context cancellation/timeouts.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*models.Profile, error)
	GetUserProfile(ctx context.Context) (*models.Profile, error)
	GetUserData(ctx context.Context) (*models.Profile, error)
	GetUserRole(ctx context.Context) (string, error)
	UpdateUserProfile(ctx context.Context, newPassword string) error
	Logout(ctx context.Context) error
}

// authService is the concrete AuthService backed by the remote API client
// and the local credential database.
type authService struct {
	client api.Client
	db     *sql.DB
}

// NewAuthService constructs an AuthService bound to the given API client and DB.
func NewAuthService(client api.Client, db *sql.DB) AuthService {
	return &authService{client: client, db: db}
}

func (a *authService) getCredentialsRepo() credentials.Repository {
	return credentials.NewSQLiteRepository(a.db)
}

// Login authenticates against the server. On success it persists the token,
// the role and a denormalized profile, and returns that profile. A response
// without a role is rejected outright and nothing is persisted; the client
// never invents a default role.
func (a *authService) Login(ctx context.Context, email, password string) (*models.Profile, error) {
	data, err := a.client.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(data.User.Role) == "" {
		return nil, common.ErrRoleMissing
	}

	profile := data.User.Profile()
	if err := a.saveSession(ctx, data.Token, data.User.Role, profile); err != nil {
		return nil, fmt.Errorf("session saving error: %w", err)
	}
	return &profile, nil
}

// saveSession persists the three session keys in a single transaction, so a
// crash mid-login never leaves a token without a role.
func (a *authService) saveSession(ctx context.Context, token, role string, profile models.Profile) error {
	encoded, err := json.Marshal(profile)
	if err != nil {
		return err
	}

	return dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := credentials.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, common.KeyToken, []byte(token)); err != nil {
			return err
		}
		if err := repo.Set(ctx, common.KeyRole, []byte(role)); err != nil {
			return err
		}
		return repo.Set(ctx, common.KeyUserData, encoded)
	})
}

// GetUserProfile fetches the authoritative profile from the server and
// overwrites the cached copy. Errors propagate as-is; falling back to the
// cache is the caller's decision, via GetUserData.
func (a *authService) GetUserProfile(ctx context.Context) (*models.Profile, error) {
	user, err := a.client.GetUser(ctx)
	if err != nil {
		return nil, err
	}

	profile := user.Profile()
	encoded, err := json.Marshal(profile)
	if err != nil {
		return nil, err
	}

	repo := a.getCredentialsRepo()
	if err := repo.Set(ctx, common.KeyUserData, encoded); err != nil {
		return nil, fmt.Errorf("profile caching error: %w", err)
	}
	if user.Role != "" {
		if err := repo.Set(ctx, common.KeyRole, []byte(user.Role)); err != nil {
			return nil, fmt.Errorf("role caching error: %w", err)
		}
	}
	return &profile, nil
}

// GetUserData returns the cached profile without touching the network.
func (a *authService) GetUserData(ctx context.Context) (*models.Profile, error) {
	data, err := a.getCredentialsRepo().Get(ctx, common.KeyUserData)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, common.ErrNoCachedProfile
	}

	var profile models.Profile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("cached profile decoding error: %w", err)
	}
	return &profile, nil
}

// GetUserRole returns the cached role string exactly as stored.
func (a *authService) GetUserRole(ctx context.Context) (string, error) {
	role, err := a.getCredentialsRepo().Get(ctx, common.KeyRole)
	if err != nil {
		return "", err
	}
	if len(role) == 0 {
		return "", common.ErrNoRole
	}
	return string(role), nil
}

// UpdateUserProfile submits new credential material to the server. Policy
// rejections (e.g. a weak password) come back as server messages.
func (a *authService) UpdateUserProfile(ctx context.Context, newPassword string) error {
	return a.client.UpdateSelf(ctx, newPassword)
}

// Logout unconditionally removes the token, role and cached profile.
// Idempotent: logging out twice, or with no session at all, succeeds.
// Keys owned by other layers (e.g. avatars) are left alone.
func (a *authService) Logout(ctx context.Context) error {
	repo := a.getCredentialsRepo()
	for _, key := range []string{common.KeyToken, common.KeyRole, common.KeyUserData} {
		if err := repo.Delete(ctx, key); err != nil {
			return fmt.Errorf("logout cleanup error: %w", err)
		}
	}
	return nil
}
