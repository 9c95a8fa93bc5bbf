//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"hotel-booking/internal/domain/user"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/infra/pgquery"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUserWriteQueries struct {
	mock.Mock
}

func (m *MockUserWriteQueries) CreateUser(ctx context.Context, db pgquery.DBTX, arg pgquery.CreateUserParams) error {
	args := m.Called(ctx, db, arg)
	return args.Error(0)
}

func newTestUser(t *testing.T) *user.User {
	t.Helper()
	email, err := user.NewEmail("guest@example.com")
	require.NoError(t, err)
	name, err := user.NewName("Test Guest")
	require.NoError(t, err)
	phone, err := user.NewPhone("+81 90-1234-5678")
	require.NoError(t, err)
	return user.NewUser(email, "hashed_password", name, phone, user.RoleClient, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
}

func TestUserRepository_Create(t *testing.T) {
	u := newTestUser(t)

	tests := []struct {
		name      string
		mockError error
		wantKind  infra.RepositoryErrorKind
	}{
		{name: "success"},
		{
			name:      "duplicate email",
			mockError: &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"},
			wantKind:  infra.KindDuplicateKey,
		},
		{name: "database error", mockError: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := new(MockUserWriteQueries)
			q.On("CreateUser", mock.Anything, mock.Anything, mock.MatchedBy(func(p pgquery.CreateUserParams) bool {
				return p.ID == u.ID() &&
					p.Email == "guest@example.com" &&
					p.Role == "client" &&
					p.ContactPhone.Valid && p.ContactPhone.String == "+81 90-1234-5678"
			})).Return(tt.mockError)
			repo := NewUserRepository(q)

			err := repo.Create(context.Background(), nil, u)

			if tt.wantKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				assert.NoError(t, err)
			}
			q.AssertExpectations(t)
		})
	}
}
