// Package services contains application services for the Freshify client.
// This file defines the authentication service: register, login, session
// restore from the locally stored refresh token, and logout housekeeping.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/dmitrijs2005/freshify/internal/client/client"
	"github.com/dmitrijs2005/freshify/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/freshify/internal/client/repositories/snapshot"
	"github.com/dmitrijs2005/freshify/internal/dbx"
)

// Metadata keys.
const (
	keyUsername     = "username"
	keyRefreshToken = "refresh_token"
)

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Login: authenticate against the server and remember the session locally.
//   - RestoreSession: resume the remembered session. When the server is
//     unreachable it still returns the remembered username together with
//     client.ErrUnavailable so the CLI can start in offline mode.
//   - Logout: forget tokens and wipe the local cache.
type AuthService interface {
	Register(ctx context.Context, username string, password []byte) error
	Login(ctx context.Context, username string, password []byte) error
	RestoreSession(ctx context.Context) (string, error)
	Logout(ctx context.Context) error
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

type authService struct {
	client client.Client
	db     *sql.DB
}

// NewAuthService constructs an AuthService bound to the given API client and
// DB. Rotated refresh tokens are written back to the local metadata store.
func NewAuthService(c client.Client, db *sql.DB) AuthService {
	a := &authService{client: c, db: db}
	c.OnTokensRefreshed(a.persistRefreshToken)
	return a
}

func (a *authService) persistRefreshToken(token string) {
	if err := metadata.NewSQLiteRepository(a.db).Set(context.Background(), keyRefreshToken, []byte(token)); err != nil {
		log.Printf("could not store refresh token: %v", err)
	}
}

func (a *authService) Register(ctx context.Context, username string, password []byte) error {
	return a.client.Register(ctx, username, string(password))
}

func (a *authService) Login(ctx context.Context, username string, password []byte) error {
	if err := a.client.Login(ctx, username, string(password)); err != nil {
		return fmt.Errorf("login error: %w", err)
	}

	refresh := a.client.RefreshToken()
	err := dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		prev, err := repo.Get(ctx, keyUsername)
		if err != nil {
			return err
		}
		// Another user's snapshot must not leak into this session.
		if prev != nil && string(prev) != username {
			if err := snapshot.NewSQLiteRepository(tx).Clear(ctx); err != nil {
				return err
			}
		}
		if err := repo.Set(ctx, keyUsername, []byte(username)); err != nil {
			return err
		}
		return repo.Set(ctx, keyRefreshToken, []byte(refresh))
	})
	if err != nil {
		return fmt.Errorf("session saving error: %w", err)
	}
	return nil
}

func (a *authService) RestoreSession(ctx context.Context) (string, error) {
	repo := metadata.NewSQLiteRepository(a.db)

	username, err := repo.Get(ctx, keyUsername)
	if err != nil {
		return "", err
	}
	refresh, err := repo.Get(ctx, keyRefreshToken)
	if err != nil {
		return "", err
	}
	if username == nil || len(refresh) == 0 {
		return "", client.ErrLocalDataNotAvailable
	}

	err = a.client.Resume(ctx, string(refresh))
	switch {
	case err == nil:
		return string(username), nil
	case errors.Is(err, client.ErrUnavailable):
		return string(username), err
	case errors.Is(err, client.ErrUnauthorized):
		if err := repo.Delete(ctx, keyRefreshToken); err != nil {
			return "", err
		}
		return "", err
	default:
		return "", err
	}
}

func (a *authService) Logout(ctx context.Context) error {
	a.client.ForgetTokens()
	return dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := metadata.NewSQLiteRepository(tx).Clear(ctx); err != nil {
			return err
		}
		return snapshot.NewSQLiteRepository(tx).Clear(ctx)
	})
}

// Ping proxies a liveness check to the underlying client.
func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}

func (a *authService) Close(ctx context.Context) error {
	return a.client.Close()
}
