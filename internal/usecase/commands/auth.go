package commands

import (
	"context"
	"log/slog"

	"balancestore/internal/pkg/errs"
	"balancestore/internal/pkg/jwt"
	"balancestore/internal/usecase/readmodel"
)

type UserRepository interface {
	Load(ctx context.Context, sessionID string) *readmodel.AuthUserRM
	Save(ctx context.Context, sessionID string, user readmodel.AuthUserRM) error
	Clear(ctx context.Context, sessionID string) error
}

// UsersGateway proxies account operations to the remote user service.
type UsersGateway interface {
	Register(ctx context.Context, username, name, email, password string) (*readmodel.AuthUserRM, error)
	Login(ctx context.Context, identifier, password string) (*readmodel.AuthUserRM, error)
}

type LoginResult struct {
	User  readmodel.AuthUserRM
	Token string
}

type AuthCommands interface {
	// Login authenticates against the remote service and persists the
	// session's account record. The session record is the source of truth;
	// the token only backs the cookie.
	Login(ctx context.Context, sessionID, identifier, password string) (*LoginResult, error)
	// Register creates the account remotely without logging the visitor in.
	Register(ctx context.Context, username, name, email, password string) (*readmodel.AuthUserRM, error)
	Logout(ctx context.Context, sessionID string)
	CurrentUser(ctx context.Context, sessionID string) *readmodel.AuthUserRM
}

type authCommandsImpl struct {
	userRepo UserRepository
	gateway  UsersGateway
	tokens   *jwt.Service
	logger   *slog.Logger
}

func NewAuthCommands(userRepo UserRepository, gateway UsersGateway, tokens *jwt.Service, logger *slog.Logger) AuthCommands {
	return &authCommandsImpl{
		userRepo: userRepo,
		gateway:  gateway,
		tokens:   tokens,
		logger:   logger,
	}
}

func (u *authCommandsImpl) Login(ctx context.Context, sessionID, identifier, password string) (*LoginResult, error) {
	user, err := u.gateway.Login(ctx, identifier, password)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidCredentials)
	}

	if err := u.userRepo.Save(ctx, sessionID, *user); err != nil {
		u.logger.Warn("failed to persist account record", "error", err)
	}

	token, err := u.tokens.GenerateToken(user.Username, user.NombreCompleto, user.Email)
	if err != nil {
		return nil, errs.Wrap(err, "failed to issue access token")
	}

	return &LoginResult{User: *user, Token: token}, nil
}

func (u *authCommandsImpl) Register(ctx context.Context, username, name, email, password string) (*readmodel.AuthUserRM, error) {
	user, err := u.gateway.Register(ctx, username, name, email, password)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrRegistrationFailed)
	}
	return user, nil
}

func (u *authCommandsImpl) Logout(ctx context.Context, sessionID string) {
	if err := u.userRepo.Clear(ctx, sessionID); err != nil {
		u.logger.Warn("failed to clear account record", "error", err)
	}
}

func (u *authCommandsImpl) CurrentUser(ctx context.Context, sessionID string) *readmodel.AuthUserRM {
	return u.userRepo.Load(ctx, sessionID)
}
