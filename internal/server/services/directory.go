// Package services contains server-side business logic. DirectoryService
// lists, creates and deletes directory users on top of the repositories and
// keeps the list cache coherent with the store.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/userdirectory/internal/common"
	"github.com/dmitrijs2005/userdirectory/internal/logging"
	"github.com/dmitrijs2005/userdirectory/internal/server/cache"
	"github.com/dmitrijs2005/userdirectory/internal/server/models"
	"github.com/dmitrijs2005/userdirectory/internal/server/repositories/repomanager"
)

// CreateUserInput is the payload accepted by Create. Only FirstName and
// LastName are required.
type CreateUserInput struct {
	FirstName   string
	LastName    string
	CompanyName string
	Role        string
	Country     string
}

type DirectoryService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	cache       cache.ListCache
	log         logging.Logger
}

// NewDirectoryService wires a service. A nil cache disables caching.
func NewDirectoryService(db *sql.DB, m repomanager.RepositoryManager, c cache.ListCache, log logging.Logger) *DirectoryService {
	if c == nil {
		c = cache.NopListCache{}
	}
	return &DirectoryService{db: db, repomanager: m, cache: c, log: log}
}

// List returns every stored user ordered by id. The result is never nil.
func (s *DirectoryService) List(ctx context.Context) ([]models.User, error) {
	cached, ok, err := s.cache.Get(ctx)
	if err != nil {
		s.log.Warn(ctx, "list cache read failed", "error", err)
	} else if ok {
		return cached, nil
	}

	// taken before the store read; a write that invalidates meanwhile
	// makes the Set below a no-op
	version, verErr := s.cache.Version(ctx)
	if verErr != nil {
		s.log.Warn(ctx, "list cache version read failed", "error", verErr)
	}

	repo := s.repomanager.Users(s.db)
	users, err := repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}
	if users == nil {
		users = []models.User{}
	}

	if verErr == nil {
		if err := s.cache.Set(ctx, version, users); err != nil {
			s.log.Warn(ctx, "list cache write failed", "error", err)
		}
	}
	return users, nil
}

// Create stores a new user and returns it with its assigned id.
// Missing first or last name yields common.ErrorValidation.
func (s *DirectoryService) Create(ctx context.Context, in CreateUserInput) (*models.User, error) {
	if in.FirstName == "" || in.LastName == "" {
		return nil, common.ErrorValidation
	}

	repo := s.repomanager.Users(s.db)
	u, err := repo.Create(ctx, &models.User{
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		CompanyName: in.CompanyName,
		Role:        in.Role,
		Country:     in.Country,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	s.invalidate(ctx)
	return u, nil
}

// Delete removes the user with the given id. common.ErrorNotFound is
// returned when no such user exists.
func (s *DirectoryService) Delete(ctx context.Context, id int64) error {
	repo := s.repomanager.Users(s.db)
	n, err := repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("error deleting user: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}

	s.invalidate(ctx)
	return nil
}

// Ping reports whether the store is reachable.
func (s *DirectoryService) Ping(ctx context.Context) error {
	if s.db == nil {
		return errors.New("no database")
	}
	return s.db.PingContext(ctx)
}

func (s *DirectoryService) invalidate(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		s.log.Warn(ctx, "list cache invalidation failed", "error", err)
	}
}
