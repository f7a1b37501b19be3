package commands

import (
	"context"
	"log/slog"

	"courtbook/internal/domain/user"
	reqdto "courtbook/internal/handler/dto/request"
	"courtbook/internal/infra"
	"courtbook/internal/pkg/errs"
	"courtbook/internal/pkg/jwt"
	"courtbook/internal/pkg/password"
	"courtbook/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrUserInactive         = errs.New("user inactive")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
)

type LoginResult struct {
	UserID      uuid.UUID
	Role        string
	AccessToken string
}

// CredentialsReader is the login-only lookup; the password hash stays inside
// this command.
type CredentialsReader interface {
	FindCredentialsByEmail(ctx context.Context, email string) (uuid.UUID, string, string, bool, error)
}

type AuthCommands interface {
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	reader     CredentialsReader
	jwtService *jwt.Service
}

func NewAuthCommands(uow shared.UnitOfWork, reader CredentialsReader, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		reader:     reader,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	credentials, err := user.NewCredentials(req.Email, req.Password)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	userID, hash, roleStr, isActive, err := a.reader.FindCredentialsByEmail(ctx, credentials.Email().Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// Same error as a wrong password so login probes cannot
			// enumerate accounts.
			return nil, ErrInvalidCredentials
		}
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	if err := password.ComparePassword(hash, credentials.Password().Value()); err != nil {
		return nil, ErrInvalidCredentials
	}
	if !isActive {
		return nil, ErrUserInactive
	}

	role, err := user.NewRole(roleStr)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	accessToken, err := a.jwtService.GenerateToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateLastLogin(ctx, tx.DB(), userID)
	})
	if err != nil {
		// Login still succeeds; only the bookkeeping failed.
		slog.Warn("failed to update last login", "user_id", userID, "error", err.Error())
	}

	return &LoginResult{
		UserID:      userID,
		Role:        role.String(),
		AccessToken: accessToken,
	}, nil
}
