//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"hotel-booking/internal/domain/auth"
	"hotel-booking/internal/domain/user"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/infra/pgquery"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/pkg/jwt"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/shared"
	"hotel-booking/tests/common/builder"
	commandsmock "hotel-booking/tests/mock/commands"
	sharedmock "hotel-booking/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// plainHasher stores passwords with a visible prefix so tests avoid bcrypt's cost.
type plainHasher struct{}

func (plainHasher) Hash(p string) (string, error) { return "plain:" + p, nil }

func (plainHasher) Compare(hashed, p string) error {
	if hashed != "plain:"+p {
		return errors.New("mismatch")
	}
	return nil
}

type authCommandsSuite struct {
	suite.Suite
	ctrl   *gomock.Controller
	uow    *sharedmock.MockUnitOfWork
	tx     *sharedmock.MockTx
	reads  *sharedmock.MockCommandReads
	users  *sharedmock.MockUserRepository
	tokens *commandsmock.MockTokenService
	sut    commands.AuthCommands
}

func TestAuthCommandsSuite(t *testing.T) {
	suite.Run(t, new(authCommandsSuite))
}

func (s *authCommandsSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.uow = sharedmock.NewMockUnitOfWork(s.ctrl)
	s.tx = sharedmock.NewMockTx(s.ctrl)
	s.reads = sharedmock.NewMockCommandReads(s.ctrl)
	s.users = sharedmock.NewMockUserRepository(s.ctrl)
	s.tokens = commandsmock.NewMockTokenService(s.ctrl)

	clk := clock.NewMockClock(time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC))
	userCommands := commands.NewUserCommands(s.uow, plainHasher{}, clk)
	s.sut = commands.NewAuthCommands(s.uow, userCommands, s.tokens, plainHasher{})

	s.uow.EXPECT().CommandReads().Return(s.reads).AnyTimes()
	s.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.tx)
		}).AnyTimes()
	s.tx.EXPECT().Users().Return(s.users).AnyTimes()
	s.tx.EXPECT().DB().Return(nil).AnyTimes()
}

func (s *authCommandsSuite) TestRegister() {
	ctx := context.Background()
	reg, err := builder.NewUserBuilder().BuildRegistration()
	require.NoError(s.T(), err)

	s.Run("creates a client", func() {
		s.users.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ pgquery.DBTX, u *user.User) error {
				assert.Equal(s.T(), user.RoleClient, u.Role())
				assert.Equal(s.T(), "plain:password123", u.PasswordHash())
				return nil
			})

		id, err := s.sut.Register(ctx, reg)

		require.NoError(s.T(), err)
		assert.NotEqual(s.T(), uuid.Nil, id)
	})

	s.Run("duplicate email", func() {
		s.users.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(infra.WrapRepoErr("insert user", nil, infra.KindDuplicateKey))

		_, err := s.sut.Register(ctx, reg)

		assert.True(s.T(), errs.Is(err, commands.ErrDuplicateUser))
	})
}

func (s *authCommandsSuite) TestLogin() {
	ctx := context.Background()
	b := builder.NewUserBuilder().WithPasswordHash("plain:password123")
	creds, err := auth.NewCredentials(b.Email, "password123")
	require.NoError(s.T(), err)

	s.Run("issues a token pair", func() {
		s.reads.EXPECT().UserByEmail(gomock.Any(), b.Email).Return(b.BuildSnapshot(), nil)
		s.tokens.EXPECT().GenerateAccessToken(b.ID, user.RoleClient).Return("access", nil)
		s.tokens.EXPECT().GenerateRefreshToken(b.ID, user.RoleClient).Return("refresh", nil)

		res, err := s.sut.Login(ctx, creds)

		require.NoError(s.T(), err)
		assert.Equal(s.T(), b.ID, res.UserID)
		assert.Equal(s.T(), "access", res.TokenPair.AccessToken)
		assert.Equal(s.T(), "refresh", res.TokenPair.RefreshToken)
	})

	s.Run("unknown email looks like a wrong password", func() {
		s.reads.EXPECT().UserByEmail(gomock.Any(), b.Email).
			Return(nil, infra.WrapRepoErr("find user", nil, infra.KindNotFound))

		_, err := s.sut.Login(ctx, creds)

		assert.True(s.T(), errs.Is(err, commands.ErrInvalidCredentials))
	})

	s.Run("wrong password", func() {
		snap := builder.NewUserBuilder().WithPasswordHash("plain:other").BuildSnapshot()
		s.reads.EXPECT().UserByEmail(gomock.Any(), b.Email).Return(snap, nil)

		_, err := s.sut.Login(ctx, creds)

		assert.True(s.T(), errs.Is(err, commands.ErrInvalidCredentials))
	})

	s.Run("inactive user", func() {
		snap := builder.NewUserBuilder().WithPasswordHash("plain:password123").AsInactive().BuildSnapshot()
		s.reads.EXPECT().UserByEmail(gomock.Any(), b.Email).Return(snap, nil)

		_, err := s.sut.Login(ctx, creds)

		assert.True(s.T(), errs.Is(err, commands.ErrUserInactive))
	})
}

func (s *authCommandsSuite) TestRefreshToken() {
	ctx := context.Background()
	b := builder.NewUserBuilder().WithRole("manager")

	s.Run("re-reads the role", func() {
		s.tokens.EXPECT().ValidateToken("r1").
			Return(&jwt.Claims{UserID: b.ID, Role: "client", TokenType: jwt.TokenTypeRefresh}, nil)
		s.reads.EXPECT().UserByID(gomock.Any(), b.ID).Return(b.BuildSnapshot(), nil)
		s.tokens.EXPECT().GenerateAccessToken(b.ID, user.RoleManager).Return("a2", nil)
		s.tokens.EXPECT().GenerateRefreshToken(b.ID, user.RoleManager).Return("r2", nil)

		pair, err := s.sut.RefreshToken(ctx, "r1")

		require.NoError(s.T(), err)
		assert.Equal(s.T(), "r2", pair.RefreshToken)
	})

	s.Run("access token is rejected", func() {
		s.tokens.EXPECT().ValidateToken("a1").
			Return(&jwt.Claims{UserID: b.ID, TokenType: jwt.TokenTypeAccess}, nil)

		_, err := s.sut.RefreshToken(ctx, "a1")

		assert.True(s.T(), errs.Is(err, commands.ErrTokenValidation))
	})

	s.Run("expired token", func() {
		s.tokens.EXPECT().ValidateToken("old").Return(nil, jwt.ErrExpiredToken)

		_, err := s.sut.RefreshToken(ctx, "old")

		assert.True(s.T(), errs.Is(err, commands.ErrTokenValidation))
	})
}
