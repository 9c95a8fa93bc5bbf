package commands

//go:generate mockgen -source=auth.go -destination=../../../tests/mock/commands/auth.go -package=commandsmock

import (
	"context"

	"github.com/google/uuid"

	"hotel-booking/internal/domain/auth"
	"hotel-booking/internal/domain/user"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/pkg/jwt"
	"hotel-booking/internal/pkg/password"
	"hotel-booking/internal/usecase/shared"
)

var (
	ErrUserNotFound         = errs.New("user not found")
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrUserInactive         = errs.New("user inactive")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
	ErrTokenValidation      = errs.New("token validation failed")
)

type LoginResult struct {
	UserID    uuid.UUID
	Role      user.Role
	TokenPair *TokenPair
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type AuthCommands interface {
	Register(ctx context.Context, reg auth.Registration) (uuid.UUID, error)
	Login(ctx context.Context, credentials auth.Credentials) (*LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	users      UserCommands
	jwtService TokenService
	hasher     password.Hasher
}

func NewAuthCommands(uow shared.UnitOfWork, users UserCommands, jwtService TokenService, hasher password.Hasher) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		users:      users,
		jwtService: jwtService,
		hasher:     hasher,
	}
}

// Register is self-service sign-up; it always creates a client.
func (a *authCommandsImpl) Register(ctx context.Context, reg auth.Registration) (uuid.UUID, error) {
	return a.users.CreateUser(ctx, reg, user.RoleClient)
}

func (a *authCommandsImpl) Login(ctx context.Context, credentials auth.Credentials) (*LoginResult, error) {
	snap, err := a.validateUser(ctx, credentials)
	if err != nil {
		return nil, err
	}

	pair, err := a.issue(snap.ID, snap.Role)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		UserID:    snap.ID,
		Role:      snap.Role,
		TokenPair: pair,
	}, nil
}

func (a *authCommandsImpl) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	if claims.TokenType != jwt.TokenTypeRefresh {
		return nil, ErrTokenValidation
	}

	// Validate user still exists and is active; the role is re-read so demotions take effect
	snap, err := a.uow.CommandReads().UserByID(ctx, claims.UserID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrUserNotFound)
		}
		return nil, err
	}

	if !snap.IsActive {
		return nil, ErrUserInactive
	}

	return a.issue(snap.ID, snap.Role)
}

func (a *authCommandsImpl) issue(userID uuid.UUID, role user.Role) (*TokenPair, error) {
	accessToken, err := a.jwtService.GenerateAccessToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	refreshToken, err := a.jwtService.GenerateRefreshToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (a *authCommandsImpl) validateUser(ctx context.Context, credentials auth.Credentials) (*shared.UserSnapshot, error) {
	snap, err := a.uow.CommandReads().UserByEmail(ctx, credentials.Email().Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// Return same error as password mismatch to prevent user enumeration attacks
			return nil, ErrInvalidCredentials
		}
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	if err := a.hasher.Compare(snap.PasswordHash, credentials.Password()); err != nil {
		return nil, ErrInvalidCredentials
	}

	if !snap.IsActive {
		return nil, ErrUserInactive
	}

	return snap, nil
}
