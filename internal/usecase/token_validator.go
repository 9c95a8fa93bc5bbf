package usecase

//go:generate mockgen -source=token_validator.go -destination=../../tests/mock/usecase/token_validator.go -package=usecasemock

import (
	"errors"

	"hotel-booking/internal/domain/access"
	"hotel-booking/internal/domain/user"
	"hotel-booking/internal/pkg/jwt"
)

var ErrNotAccessToken = errors.New("refresh token presented as access token")

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (*access.Principal, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (*access.Principal, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != jwt.TokenTypeAccess {
		return nil, ErrNotAccessToken
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return nil, err
	}

	return &access.Principal{UserID: claims.UserID, Role: role}, nil
}
