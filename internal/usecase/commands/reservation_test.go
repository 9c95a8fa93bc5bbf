//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"hotel-booking/internal/domain/catalog"
	"hotel-booking/internal/domain/reservation"
	"hotel-booking/internal/domain/user"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/infra/pgquery"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/queries"
	"hotel-booking/internal/usecase/shared"
	"hotel-booking/tests/common/builder"
	queriesmock "hotel-booking/tests/mock/queries"
	sharedmock "hotel-booking/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type reservationCommandsSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	uow          *sharedmock.MockUnitOfWork
	tx           *sharedmock.MockTx
	rooms        *sharedmock.MockRoomRepository
	reservations *sharedmock.MockReservationRepository
	queries      *queriesmock.MockReservationQueries
	clock        *clock.MockClock
	sut          commands.ReservationCommands

	hotelID uuid.UUID
	room    *catalog.Room
}

func TestReservationCommandsSuite(t *testing.T) {
	suite.Run(t, new(reservationCommandsSuite))
}

func (s *reservationCommandsSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.uow = sharedmock.NewMockUnitOfWork(s.ctrl)
	s.tx = sharedmock.NewMockTx(s.ctrl)
	s.rooms = sharedmock.NewMockRoomRepository(s.ctrl)
	s.reservations = sharedmock.NewMockReservationRepository(s.ctrl)
	s.queries = queriesmock.NewMockReservationQueries(s.ctrl)
	s.clock = clock.NewMockClock(time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC))
	s.sut = commands.NewReservationCommands(s.uow, s.queries, s.clock)

	s.hotelID = uuid.New()
	s.room = builder.NewRoomBuilder().WithHotelID(s.hotelID).BuildDomain()

	s.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.tx)
		}).AnyTimes()
	s.tx.EXPECT().Rooms().Return(s.rooms).AnyTimes()
	s.tx.EXPECT().Reservations().Return(s.reservations).AnyTimes()
	s.tx.EXPECT().DB().Return(nil).AnyTimes()
}

func (s *reservationCommandsSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *reservationCommandsSuite) input(fromDay, toDay int) commands.CreateReservationInput {
	base := time.Date(2030, 6, 1, 0, 0, 0, 0, time.UTC)
	return commands.CreateReservationInput{
		HotelID:   s.hotelID,
		RoomID:    s.room.ID(),
		DateStart: base.AddDate(0, 0, fromDay),
		DateEnd:   base.AddDate(0, 0, toDay),
	}
}

func (s *reservationCommandsSuite) existing(fromDay, toDay int) *reservation.Reservation {
	base := time.Date(2030, 6, 1, 0, 0, 0, 0, time.UTC)
	return builder.NewReservationBuilder().
		WithRoom(s.hotelID, s.room.ID()).
		WithStay(base.AddDate(0, 0, fromDay), base.AddDate(0, 0, toDay)).
		BuildDomain()
}

func (s *reservationCommandsSuite) TestCreateReservation() {
	ctx := context.Background()
	guest := uuid.New()

	s.Run("books a free room", func() {
		var stored *reservation.Reservation
		s.rooms.EXPECT().LockForBooking(gomock.Any(), gomock.Any(), s.room.ID()).Return(s.room, nil)
		s.reservations.EXPECT().ListByRoom(gomock.Any(), gomock.Any(), s.room.ID()).
			Return([]*reservation.Reservation{s.existing(0, 5)}, nil)
		s.reservations.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ pgquery.DBTX, r *reservation.Reservation) error {
				stored = r
				return nil
			})
		s.queries.EXPECT().GetByID(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, id uuid.UUID) (*queries.ReservationView, error) {
				return builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) { b.ID = id }).BuildView(), nil
			})

		// touches the existing stay at day 5
		view, err := s.sut.CreateReservation(ctx, guest, s.input(5, 7))

		require.NoError(s.T(), err)
		require.NotNil(s.T(), view)
		require.NotNil(s.T(), stored)
		assert.Equal(s.T(), stored.ID(), view.ID)
		assert.Equal(s.T(), guest, stored.UserID())
		assert.Equal(s.T(), s.clock.Now(), stored.CreatedAt())
	})

	s.Run("overlap is a conflict", func() {
		s.rooms.EXPECT().LockForBooking(gomock.Any(), gomock.Any(), s.room.ID()).Return(s.room, nil)
		s.reservations.EXPECT().ListByRoom(gomock.Any(), gomock.Any(), s.room.ID()).
			Return([]*reservation.Reservation{s.existing(0, 5)}, nil)

		_, err := s.sut.CreateReservation(ctx, guest, s.input(4, 6))

		assert.True(s.T(), errs.Is(err, commands.ErrReservationConflict))
	})

	s.Run("exclusion constraint is a conflict", func() {
		s.rooms.EXPECT().LockForBooking(gomock.Any(), gomock.Any(), s.room.ID()).Return(s.room, nil)
		s.reservations.EXPECT().ListByRoom(gomock.Any(), gomock.Any(), s.room.ID()).Return(nil, nil)
		s.reservations.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(infra.WrapRepoErr("insert reservation", nil, infra.KindConflict))

		_, err := s.sut.CreateReservation(ctx, guest, s.input(1, 2))

		assert.True(s.T(), errs.Is(err, commands.ErrReservationConflict))
	})

	s.Run("invalid stay never opens a transaction", func() {
		_, err := s.sut.CreateReservation(ctx, guest, s.input(3, 3))

		assert.True(s.T(), errs.Is(err, commands.ErrInvalidStay))
	})

	s.Run("unknown room", func() {
		s.rooms.EXPECT().LockForBooking(gomock.Any(), gomock.Any(), s.room.ID()).
			Return(nil, infra.WrapRepoErr("lock room", nil, infra.KindNotFound))

		_, err := s.sut.CreateReservation(ctx, guest, s.input(1, 2))

		assert.True(s.T(), errs.Is(err, commands.ErrRoomNotFound))
	})

	s.Run("room of another hotel", func() {
		s.rooms.EXPECT().LockForBooking(gomock.Any(), gomock.Any(), s.room.ID()).Return(s.room, nil)
		in := s.input(1, 2)
		in.HotelID = uuid.New()

		_, err := s.sut.CreateReservation(ctx, guest, in)

		assert.True(s.T(), errs.Is(err, commands.ErrRoomNotInHotel))
	})

	s.Run("disabled room", func() {
		disabled := builder.NewRoomBuilder().WithHotelID(s.hotelID).AsDisabled().BuildDomain()
		s.rooms.EXPECT().LockForBooking(gomock.Any(), gomock.Any(), gomock.Any()).Return(disabled, nil)

		_, err := s.sut.CreateReservation(ctx, guest, s.input(1, 2))

		assert.True(s.T(), errs.Is(err, commands.ErrRoomUnavailable))
	})
}

func (s *reservationCommandsSuite) TestDeleteReservation() {
	ctx := context.Background()
	owner := uuid.New()
	res := builder.NewReservationBuilder().WithUserID(owner).BuildDomain()

	tests := []struct {
		name    string
		actor   uuid.UUID
		role    user.Role
		deletes bool
		wantErr error
	}{
		{name: "owner deletes", actor: owner, role: user.RoleClient, deletes: true},
		{name: "manager deletes any", actor: uuid.New(), role: user.RoleManager, deletes: true},
		{name: "other client is forbidden", actor: uuid.New(), role: user.RoleClient, wantErr: commands.ErrReservationForbidden},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.reservations.EXPECT().FindByID(gomock.Any(), gomock.Any(), res.ID()).Return(res, nil)
			if tt.deletes {
				s.reservations.EXPECT().Delete(gomock.Any(), gomock.Any(), res.ID()).Return(nil)
			}

			err := s.sut.DeleteReservation(ctx, res.ID(), tt.actor, tt.role)

			if tt.wantErr != nil {
				assert.True(s.T(), errs.Is(err, tt.wantErr), "got %v", err)
				return
			}
			assert.NoError(s.T(), err)
		})
	}

	s.Run("missing reservation", func() {
		s.reservations.EXPECT().FindByID(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, infra.WrapRepoErr("find reservation", nil, infra.KindNotFound))

		err := s.sut.DeleteReservation(ctx, uuid.New(), owner, user.RoleClient)

		assert.True(s.T(), errs.Is(err, commands.ErrReservationNotFound))
	})
}
