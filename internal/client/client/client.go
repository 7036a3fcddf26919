package client

import (
	"context"

	"github.com/dmitrijs2005/sellhub/internal/client/models"
)

type Client interface {
	Register(ctx context.Context, creds models.RegisterCredentials) error
	Login(ctx context.Context, creds models.LoginCredentials) (string, error)
	GetUser(ctx context.Context, token string) (*models.User, error)
	Ping(ctx context.Context) error
}
