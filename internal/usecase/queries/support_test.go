//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"hotel-booking/internal/domain/access"
	"hotel-booking/internal/domain/support"
	"hotel-booking/internal/domain/user"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/queries"
	"hotel-booking/tests/common/builder"
	queriesmock "hotel-booking/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSupportQueries_UnreadCount(t *testing.T) {
	ctrl := gomock.NewController(t)
	threads := queriesmock.NewMockThreadReadStore(ctrl)
	users := queriesmock.NewMockUserReadStore(ctrl)
	sut := queries.NewSupportQueries(threads, users)
	ctx := context.Background()

	employee := uuid.New()
	b := builder.NewThreadBuilder().
		FromClient("hello", 0).
		FromEmployee(employee, "hi there", 5).
		FromClient("still waiting", 10)

	tests := []struct {
		name  string
		actor access.Principal
		want  int
	}{
		{name: "client counts employee messages", actor: access.Principal{UserID: b.ClientID, Role: user.RoleClient}, want: 1},
		{name: "manager counts client messages", actor: access.Principal{UserID: employee, Role: user.RoleManager}, want: 2},
		{name: "another manager shares the employee side", actor: access.Principal{UserID: uuid.New(), Role: user.RoleManager}, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			threads.EXPECT().FindByID(gomock.Any(), b.ID).Return(b.BuildDomain(), nil)

			got, err := sut.UnreadCount(ctx, b.ID, tt.actor)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("other client", func(t *testing.T) {
		threads.EXPECT().FindByID(gomock.Any(), b.ID).Return(b.BuildDomain(), nil)

		_, err := sut.UnreadCount(ctx, b.ID, access.Principal{UserID: uuid.New(), Role: user.RoleClient})

		assert.True(t, errs.Is(err, queries.ErrThreadForbidden))
	})

	t.Run("unknown thread", func(t *testing.T) {
		threads.EXPECT().FindByID(gomock.Any(), "nope").
			Return(nil, infra.WrapRepoErr("find thread", nil, infra.KindNotFound))

		_, err := sut.UnreadCount(ctx, "nope", access.Principal{UserID: employee, Role: user.RoleManager})

		assert.True(t, errs.Is(err, queries.ErrThreadNotFound))
	})
}

func TestSupportQueries_GetMessages(t *testing.T) {
	ctrl := gomock.NewController(t)
	threads := queriesmock.NewMockThreadReadStore(ctrl)
	users := queriesmock.NewMockUserReadStore(ctrl)
	sut := queries.NewSupportQueries(threads, users)

	employee := uuid.New()
	b := builder.NewThreadBuilder().
		FromClient("hello", 0).
		FromEmployee(employee, "hi there", 5)
	th := b.BuildDomain()
	readAt := b.CreatedAt.Add(time.Hour)
	th.MarkRead(support.SideEmployee, readAt, readAt)

	threads.EXPECT().FindByID(gomock.Any(), b.ID).Return(th, nil)
	users.EXPECT().FindByIDs(gomock.Any(), []uuid.UUID{b.ClientID, employee}).
		Return(map[uuid.UUID]*queries.UserView{
			b.ClientID: {ID: b.ClientID, Name: "Guest"},
			employee:   {ID: employee, Name: "Front Desk"},
		}, nil)

	got, err := sut.GetMessages(context.Background(), b.ID, access.Principal{UserID: b.ClientID, Role: user.RoleClient})

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 0, got[0].Index)
	assert.Equal(t, "Guest", got[0].Author.Name)
	require.NotNil(t, got[0].ReadAt)
	assert.Equal(t, readAt, *got[0].ReadAt)
	assert.Equal(t, "Front Desk", got[1].Author.Name)
	assert.Nil(t, got[1].ReadAt)
}

func TestSupportQueries_ListForManager(t *testing.T) {
	ctrl := gomock.NewController(t)
	threads := queriesmock.NewMockThreadReadStore(ctrl)
	users := queriesmock.NewMockUserReadStore(ctrl)
	sut := queries.NewSupportQueries(threads, users)

	b := builder.NewThreadBuilder().FromClient("hello", 0)
	active := true
	phone := "+81 3-0000-0000"

	threads.EXPECT().List(gomock.Any(), queries.ThreadListFilter{
		IsActive: &active,
		Page:     queries.Page{Limit: queries.DefaultPageLimit},
	}).Return([]*support.Thread{b.BuildDomain()}, nil)
	users.EXPECT().FindByIDs(gomock.Any(), []uuid.UUID{b.ClientID}).
		Return(map[uuid.UUID]*queries.UserView{
			b.ClientID: {ID: b.ClientID, Name: "Guest", Email: "guest@example.com", ContactPhone: &phone},
		}, nil)

	got, err := sut.ListForManager(context.Background(), queries.Page{}, &active)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, got[0].HasNewMessages)
	require.NotNil(t, got[0].Client)
	assert.Equal(t, "guest@example.com", got[0].Client.Email)
	assert.Equal(t, &phone, got[0].Client.ContactPhone)
}

func TestParseActiveFilter(t *testing.T) {
	v, err := queries.ParseActiveFilter("")
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = queries.ParseActiveFilter("false")
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.False(t, *v)

	_, err = queries.ParseActiveFilter("yes")
	assert.ErrorIs(t, err, queries.ErrInvalidActiveFilter)
}
