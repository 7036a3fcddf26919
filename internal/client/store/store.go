// Package store keeps the client's durable state: the bearer token, the
// cached user profile and the theme preference. It is the terminal
// counterpart of the browser's localStorage and uses the same keys.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/sellhub/internal/client/models"
	"github.com/dmitrijs2005/sellhub/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/sellhub/internal/dbx"
)

const (
	KeyToken = "auth_token"
	KeyUser  = "user_data"
	KeyTheme = "theme"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) repo() metadata.Repository {
	return metadata.NewSQLiteRepository(s.db)
}

// Token returns the persisted token or "" when none is stored.
func (s *Store) Token(ctx context.Context) (string, error) {
	v, err := s.repo().Get(ctx, KeyToken)
	if err != nil {
		return "", err
	}
	return string(v), nil
}

func (s *Store) SetToken(ctx context.Context, token string) error {
	return s.repo().Set(ctx, KeyToken, []byte(token))
}

// User returns the cached profile. A missing or undecodable value yields
// (nil, nil).
func (s *Store) User(ctx context.Context) (*models.User, error) {
	v, err := s.repo().Get(ctx, KeyUser)
	if err != nil {
		return nil, err
	}
	if len(v) == 0 {
		return nil, nil
	}
	var u models.User
	if err := json.Unmarshal(v, &u); err != nil {
		return nil, nil
	}
	return &u, nil
}

func (s *Store) SetUser(ctx context.Context, user *models.User) error {
	return setUser(ctx, s.repo(), user)
}

// SaveSession writes token and user in one transaction.
func (s *Store) SaveSession(ctx context.Context, token string, user *models.User) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, KeyToken, []byte(token)); err != nil {
			return err
		}
		return setUser(ctx, repo, user)
	})
}

// ClearSession removes token and user in one transaction. Other keys
// (the theme) are left alone.
func (s *Store) ClearSession(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Delete(ctx, KeyToken); err != nil {
			return err
		}
		return repo.Delete(ctx, KeyUser)
	})
}

func (s *Store) Theme(ctx context.Context) (models.Theme, error) {
	v, err := s.repo().Get(ctx, KeyTheme)
	if err != nil {
		return models.DefaultTheme, err
	}
	return models.ParseTheme(string(v)), nil
}

func (s *Store) SetTheme(ctx context.Context, theme models.Theme) error {
	return s.repo().Set(ctx, KeyTheme, []byte(theme))
}

func setUser(ctx context.Context, repo metadata.Repository, user *models.User) error {
	if user == nil {
		return fmt.Errorf("set %s: nil user", KeyUser)
	}
	b, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode %s: %w", KeyUser, err)
	}
	return repo.Set(ctx, KeyUser, b)
}
