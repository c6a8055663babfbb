package client

import (
	"context"

	"github.com/dmitrijs2005/userdirectory/internal/client/models"
)

type Client interface {
	List(ctx context.Context) ([]models.User, error)
	Create(ctx context.Context, u models.User) (int64, error)
	Delete(ctx context.Context, id int64) error
	Ping(ctx context.Context) error
}

// Pinger reports whether the backend is usable.
type Pinger interface {
	Ping(ctx context.Context) error
}
