package commands

//go:generate mockgen -source=user.go -destination=../../../tests/mock/commands/user.go -package=commandsmock

import (
	"context"

	"github.com/google/uuid"

	"hotel-booking/internal/domain/auth"
	"hotel-booking/internal/domain/user"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/pkg/password"
	"hotel-booking/internal/usecase/shared"
)

var (
	ErrDuplicateUser   = errs.New("user with this email or phone already exists")
	ErrPasswordHashing = errs.New("password hashing failed")
)

type UserCommands interface {
	CreateUser(ctx context.Context, reg auth.Registration, role user.Role) (uuid.UUID, error)
}

type userCommandsImpl struct {
	uow    shared.UnitOfWork
	hasher password.Hasher
	clock  clock.Clock
}

func NewUserCommands(uow shared.UnitOfWork, hasher password.Hasher, clk clock.Clock) UserCommands {
	return &userCommandsImpl{uow: uow, hasher: hasher, clock: clk}
}

func (uc *userCommandsImpl) CreateUser(ctx context.Context, reg auth.Registration, role user.Role) (uuid.UUID, error) {
	if !role.IsValid() {
		return uuid.Nil, user.ErrInvalidRole
	}

	hash, err := uc.hasher.Hash(reg.Password().Value())
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrPasswordHashing)
	}

	u := user.NewUser(reg.Email(), hash, reg.Name(), reg.Phone(), role, uc.clock.Now())

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().Create(ctx, tx.DB(), u)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return uuid.Nil, errs.Mark(err, ErrDuplicateUser)
		}
		return uuid.Nil, err
	}
	return u.ID(), nil
}
