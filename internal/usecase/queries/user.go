package queries

import (
	"context"

	"courtbook/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound = errs.New("user not found")
	ErrUserInactive = errs.New("user inactive")
)

type UserQueries interface {
	// GetAuthorized is the auth middleware lookup: it fails on unknown or
	// deactivated users so stale tokens stop working immediately.
	GetAuthorized(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*UserView, error)
}

type UserViewRepo interface {
	FindAuthorizedByID(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*UserView, error)
}

type userQueriesImpl struct {
	repo UserViewRepo
}

func NewUserQueries(repo UserViewRepo) UserQueries {
	return &userQueriesImpl{repo: repo}
}

func (q *userQueriesImpl) GetAuthorized(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error) {
	view, err := q.repo.FindAuthorizedByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !view.IsActive {
		return nil, ErrUserInactive
	}
	return view, nil
}

func (q *userQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*UserView, error) {
	return q.repo.FindByID(ctx, id)
}
