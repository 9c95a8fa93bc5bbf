//go:build unit

package user_test

import (
	"testing"

	"hotel-booking/internal/domain/user"
	"hotel-booking/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmpopts.IgnoreUnexported(user.User{}),
	cmpopts.EquateEmpty(),
}

type testCase struct {
	name   string
	mutate func(*builder.UserBuilder)
	errIs  error
}

func TestUser(t *testing.T) {
	t.Run("builds an active user", func(t *testing.T) {

		b := builder.NewUserBuilder()
		actual, err := b.BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		email, _ := user.NewEmail("guest@example.com")
		name, _ := user.NewName("Test Guest")
		phone, _ := user.NewPhone("+81 90-1234-5678")
		expected := user.NewUser(email, "hashed_password", name, phone, user.RoleClient, b.CreatedAt)

		if diff := cmp.Diff(expected, actual, cmpOpts...); diff != "" {
			t.Errorf("User mismatch (-want +got):\n%s", diff)
		}

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.True(t, actual.IsActive())
		assert.Equal(t, "guest@example.com", actual.Email().Value())
		assert.Equal(t, b.CreatedAt, actual.UpdatedAt())
	})

	t.Run("email", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "valid address",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("valid@example.com") },
			},
			{
				name:   "upper case is accepted",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("Guest@Example.COM") },
			},
			{
				name:   "empty",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "malformed",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("invalid-email") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "missing at sign",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("invalidemail.com") },
				errIs:  user.ErrInvalidEmail,
			},
		})
	})

	t.Run("role", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "client",
				mutate: func(b *builder.UserBuilder) { b.WithRole("client") },
			},
			{
				name:   "manager",
				mutate: func(b *builder.UserBuilder) { b.WithRole("manager") },
			},
			{
				name:   "admin",
				mutate: func(b *builder.UserBuilder) { b.WithRole("admin") },
			},
			{
				name:   "unknown role",
				mutate: func(b *builder.UserBuilder) { b.WithRole("operator") },
				errIs:  user.ErrInvalidRole,
			},
			{
				name:   "empty role",
				mutate: func(b *builder.UserBuilder) { b.WithRole("") },
				errIs:  user.ErrInvalidRole,
			},
		})
	})

	t.Run("name", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "blank",
				mutate: func(b *builder.UserBuilder) { b.WithName("   ") },
				errIs:  user.ErrInvalidName,
			},
			{
				name: "too long",
				mutate: func(b *builder.UserBuilder) {
					long := make([]rune, 101)
					for i := range long {
						long[i] = 'a'
					}
					b.WithName(string(long))
				},
				errIs: user.ErrInvalidName,
			},
		})
	})

	t.Run("contact phone", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "omitted",
				mutate: func(b *builder.UserBuilder) { b.WithPhone("") },
			},
			{
				name:   "digits only",
				mutate: func(b *builder.UserBuilder) { b.WithPhone("0312345678") },
			},
			{
				name:   "letters",
				mutate: func(b *builder.UserBuilder) { b.WithPhone("call-me") },
				errIs:  user.ErrInvalidPhone,
			},
		})
	})
}

func TestRole(t *testing.T) {
	assert.False(t, user.RoleClient.IsEmployee())
	assert.True(t, user.RoleManager.IsEmployee())
	assert.True(t, user.RoleAdmin.IsEmployee())
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {

			actual, err := builder.NewUserBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
