package repository

import (
	"context"

	"courtbook/internal/infra/db"
	"courtbook/internal/usecase/shared"

	"github.com/google/uuid"
)

type UserRepository struct{}

func NewUserRepository() shared.UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, dbtx db.DBTX, userID uuid.UUID) error {
	const query = `
		UPDATE users
		SET last_login_at = now(), updated_at = now()
		WHERE id = $1`

	if _, err := dbtx.Exec(ctx, query, userID); err != nil {
		return wrapDBErr("failed to update last login", err)
	}
	return nil
}
