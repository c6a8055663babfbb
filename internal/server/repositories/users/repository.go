package users

import (
	"context"

	"github.com/dmitrijs2005/userdirectory/internal/server/models"
)

// Repository is the User Store: one table, one statement per call.
type Repository interface {
	// List returns every user ordered by id, i.e. in insertion order.
	List(ctx context.Context) ([]models.User, error)

	// Create inserts user and sets user.ID to the store-assigned id.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// Delete removes the user with the given id and reports how many rows
	// were removed (0 or 1).
	Delete(ctx context.Context, id int64) (int64, error)
}
