package readstore

import (
	"context"
	"errors"

	"courtbook/internal/infra"
	"courtbook/internal/infra/db"
	"courtbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{db: dbtx}
}

func (r *UserReadStore) FindAuthorizedByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	const query = `
		SELECT id, email, role, is_active
		FROM users
		WHERE id = $1`

	var v queries.AuthorizedUserView
	err := r.db.QueryRow(ctx, query, id).Scan(&v.ID, &v.Email, &v.Role, &v.IsActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get authorized user", err)
	}
	return &v, nil
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	const query = `
		SELECT id, email, display_name, role, last_login_at, created_at
		FROM users
		WHERE id = $1`

	var v queries.UserView
	err := r.db.QueryRow(ctx, query, id).Scan(&v.ID, &v.Email, &v.DisplayName, &v.Role, &v.LastLoginAt, &v.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get user", err)
	}
	return &v, nil
}

// FindCredentialsByEmail serves the login path only; the password hash never
// leaves the auth command.
func (r *UserReadStore) FindCredentialsByEmail(ctx context.Context, email string) (uuid.UUID, string, string, bool, error) {
	const query = `
		SELECT id, password_hash, role, is_active
		FROM users
		WHERE email = $1`

	var (
		id       uuid.UUID
		hash     string
		role     string
		isActive bool
	)
	err := r.db.QueryRow(ctx, query, email).Scan(&id, &hash, &role, &isActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return uuid.Nil, "", "", false, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return uuid.Nil, "", "", false, infra.WrapRepoErr("failed to get credentials", err)
	}
	return id, hash, role, isActive, nil
}
