package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"reception/config"
	"reception/infras/otel/mocks"
	bookingMocks "reception/internal/domains/booking/mocks"
	"reception/internal/domains/booking/model"
	"reception/internal/domains/booking/model/dto"
	"reception/internal/domains/booking/service"
	chargeMocks "reception/internal/domains/charge/mocks"
	roomMocks "reception/internal/domains/room/mocks"
	roomModel "reception/internal/domains/room/model"
	"reception/internal/events"
	eventMocks "reception/internal/events/mocks"
	"reception/shared/cache"
	"reception/shared/failure"
	gModel "reception/shared/model"
	"reception/shared/timezone"
)

type stubCache struct{}

func (stubCache) Save(_ context.Context, _ string, _ any, _ int) error { return nil }
func (stubCache) Get(_ context.Context, _ string, _ any) error         { return cache.Nil }
func (stubCache) Delete(_ context.Context, _ string) error             { return nil }
func (stubCache) Clear(_ context.Context, _ string) error              { return nil }

type fixture struct {
	svc       service.Booking
	repo      *bookingMocks.MockBooking
	roomRepo  *roomMocks.MockRoom
	charges   *chargeMocks.MockCharge
	publisher *eventMocks.MockPublisher
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	cfg := &config.Config{}
	cfg.Folio.LateCheckout.TierHours = []int{3, 6}
	cfg.Folio.LateCheckout.TierPercents = []int{20, 50}
	cfg.Folio.LateCheckout.MaxPercent = 100
	cfg.Booking.CodeLength = 8
	cfg.Booking.CheckInHour = 15
	cfg.Booking.CheckOutHour = 12

	f := fixture{
		repo:      bookingMocks.NewMockBooking(ctrl),
		roomRepo:  roomMocks.NewMockRoom(ctrl),
		charges:   chargeMocks.NewMockCharge(ctrl),
		publisher: eventMocks.NewMockPublisher(ctrl),
	}

	f.svc = service.New(f.repo, f.roomRepo, f.charges, f.publisher, cfg, stubCache{}, mocks.NewOtel())

	return f
}

// twoNightStay is a deluxe reservation at 1,000,000 per night with a 500,000
// deposit, checked in yesterday and due out tomorrow.
func twoNightStay(status model.Status) model.Booking {
	now := timezone.Now()
	checkIn := now.AddDate(0, 0, -1)

	booking := model.Booking{
		ID:            "booking-1",
		Code:          "BK2N4QXZ",
		GuestRef:      "guest-7",
		RoomType:      "deluxe",
		CheckInDate:   checkIn,
		CheckOutDate:  checkIn.AddDate(0, 0, 2),
		Status:        status,
		NightlyRate:   1_000_000,
		RoomRateTotal: 2_000_000,
		DepositAmount: 500_000,
		PaymentStatus: model.PaymentPartial,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  "system",
			ModifiedBy: "system",
		},
	}

	if status == model.StatusCheckedIn || status == model.StatusCheckedOut {
		roomID := "room-101"
		booking.RoomID = &roomID
		actualIn := checkIn.Add(14 * time.Hour)
		booking.ActualCheckInAt = &actualIn
	}

	return booking
}

func availableRoom(id, roomType string, rate int64) roomModel.Room {
	return roomModel.Room{
		ID:          id,
		RoomNumber:  id,
		RoomType:    roomType,
		NightlyRate: rate,
		Status:      roomModel.StatusAvailable,
	}
}

func TestBookingService_Create(t *testing.T) {
	t.Run("prices a reservation at the cheapest rate of the type", func(t *testing.T) {
		f := newFixture(t)

		f.roomRepo.EXPECT().
			CheapestRateByType(gomock.Any(), "deluxe").
			Return(int64(1_000_000), nil)

		f.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, booking model.Booking) error {
				assert.Equal(t, model.StatusPending, booking.Status)
				assert.Equal(t, int64(2_000_000), booking.RoomRateTotal)
				assert.Nil(t, booking.RoomID)
				assert.Len(t, booking.Code, 8)
				return nil
			})

		res, err := f.svc.Create(context.Background(), dto.CreateBookingRequest{
			GuestRef:      "guest-7",
			RoomType:      "deluxe",
			CheckInDate:   "2026-03-10",
			CheckOutDate:  "2026-03-12",
			DepositAmount: 500_000,
		})

		assert.NoError(t, err)
		assert.Equal(t, "pending", res.Status)
		assert.Equal(t, int64(2_000_000), res.RoomRateTotal)
	})

	t.Run("rejects check-out on or before check-in", func(t *testing.T) {
		f := newFixture(t)

		f.roomRepo.EXPECT().
			CheapestRateByType(gomock.Any(), "deluxe").
			Return(int64(1_000_000), nil)

		_, err := f.svc.Create(context.Background(), dto.CreateBookingRequest{
			GuestRef:     "guest-7",
			RoomType:     "deluxe",
			CheckInDate:  "2026-03-12",
			CheckOutDate: "2026-03-12",
		})

		assert.Error(t, err)
	})

	t.Run("unknown room type", func(t *testing.T) {
		f := newFixture(t)

		f.roomRepo.EXPECT().
			CheapestRateByType(gomock.Any(), "penthouse").
			Return(int64(0), failure.NotFound("room type"))

		_, err := f.svc.Create(context.Background(), dto.CreateBookingRequest{
			GuestRef:     "guest-7",
			RoomType:     "penthouse",
			CheckInDate:  "2026-03-10",
			CheckOutDate: "2026-03-12",
		})

		assert.Error(t, err)
		assert.True(t, failure.IsKind(err, failure.KindNotFound))
	})
}

func TestBookingService_Confirm(t *testing.T) {
	t.Run("pending becomes confirmed", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(twoNightStay(model.StatusPending), nil)

		f.repo.EXPECT().
			UpdateGuarded(gomock.Any(), "booking-1", model.StatusPending, gomock.Any()).
			Return(int64(1), nil)

		assert.NoError(t, f.svc.Confirm(context.Background(), "booking-1"))
	})

	t.Run("confirming twice is an invalid transition", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(twoNightStay(model.StatusConfirmed), nil)

		err := f.svc.Confirm(context.Background(), "booking-1")

		assert.Error(t, err)
		assert.True(t, failure.IsKind(err, failure.KindInvalidTransition))
	})

	t.Run("terminal bookings accept nothing", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(twoNightStay(model.StatusCancelled), nil)

		err := f.svc.Confirm(context.Background(), "booking-1")

		assert.Error(t, err)
		assert.True(t, failure.IsKind(err, failure.KindInvalidTransition))
	})
}

func TestBookingService_CheckIn(t *testing.T) {
	t.Run("claims the room and opens the stay", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(twoNightStay(model.StatusConfirmed), nil)

		f.roomRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(availableRoom("room-101", "deluxe", 1_000_000), nil)

		f.roomRepo.EXPECT().
			Reserve(gomock.Any(), "room-101", gomock.Any()).
			Return(nil)

		f.repo.EXPECT().
			UpdateGuarded(gomock.Any(), "booking-1", model.StatusConfirmed, gomock.Any()).
			Return(int64(1), nil)

		f.publisher.EXPECT().
			RoomStatusChanged(gomock.Any(), gomock.Any())

		err := f.svc.CheckIn(context.Background(), "booking-1", dto.CheckInRequest{RoomID: "room-101"})

		assert.NoError(t, err)
	})

	t.Run("race loser gets RoomNotAvailable", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(twoNightStay(model.StatusConfirmed), nil)

		f.roomRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(availableRoom("room-101", "deluxe", 1_000_000), nil)

		f.roomRepo.EXPECT().
			Reserve(gomock.Any(), "room-101", gomock.Any()).
			Return(failure.RoomNotAvailable("room-101"))

		err := f.svc.CheckIn(context.Background(), "booking-1", dto.CheckInRequest{RoomID: "room-101"})

		assert.Error(t, err)
		assert.True(t, failure.IsKind(err, failure.KindRoomNotAvailable))
	})

	t.Run("releases the claim when the status guard loses", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(twoNightStay(model.StatusConfirmed), nil)

		f.roomRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(availableRoom("room-101", "deluxe", 1_000_000), nil)

		f.roomRepo.EXPECT().
			Reserve(gomock.Any(), "room-101", gomock.Any()).
			Return(nil)

		f.repo.EXPECT().
			UpdateGuarded(gomock.Any(), "booking-1", model.StatusConfirmed, gomock.Any()).
			Return(int64(0), nil)

		f.roomRepo.EXPECT().
			Release(gomock.Any(), "room-101", roomModel.StatusAvailable, gomock.Any()).
			Return(nil)

		err := f.svc.CheckIn(context.Background(), "booking-1", dto.CheckInRequest{RoomID: "room-101"})

		assert.Error(t, err)
		assert.True(t, failure.IsKind(err, failure.KindInvalidTransition))
	})

	t.Run("reserved type must match", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(twoNightStay(model.StatusConfirmed), nil)

		f.roomRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(availableRoom("room-201", "suite", 2_500_000), nil)

		err := f.svc.CheckIn(context.Background(), "booking-1", dto.CheckInRequest{RoomID: "room-201"})

		assert.Error(t, err)
	})

	t.Run("walk-in may take any type and is re-priced", func(t *testing.T) {
		f := newFixture(t)

		booking := twoNightStay(model.StatusConfirmed)
		booking.WalkIn = true

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(booking, nil)

		f.roomRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(availableRoom("room-201", "suite", 2_500_000), nil)

		f.roomRepo.EXPECT().
			Reserve(gomock.Any(), "room-201", gomock.Any()).
			Return(nil)

		f.repo.EXPECT().
			UpdateGuarded(gomock.Any(), "booking-1", model.StatusConfirmed, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, _ model.Status, fields map[string]any) (int64, error) {
				assert.Equal(t, int64(2_500_000), fields[model.FieldNightlyRate])
				assert.Equal(t, int64(5_000_000), fields[model.FieldRoomRateTotal])
				return 1, nil
			})

		f.publisher.EXPECT().
			RoomStatusChanged(gomock.Any(), gomock.Any())

		err := f.svc.CheckIn(context.Background(), "booking-1", dto.CheckInRequest{RoomID: "room-201"})

		assert.NoError(t, err)
	})

	t.Run("pending booking cannot check in", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(twoNightStay(model.StatusPending), nil)

		err := f.svc.CheckIn(context.Background(), "booking-1", dto.CheckInRequest{RoomID: "room-101"})

		assert.Error(t, err)
		assert.True(t, failure.IsKind(err, failure.KindInvalidTransition))
	})
}

func TestBookingService_ChangeRoom(t *testing.T) {
	t.Run("moves the guest and re-prices remaining nights", func(t *testing.T) {
		f := newFixture(t)

		booking := twoNightStay(model.StatusCheckedIn)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(booking, nil)

		f.roomRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(availableRoom("room-202", "suite", 2_000_000), nil)

		f.roomRepo.EXPECT().
			Reserve(gomock.Any(), "room-202", gomock.Any()).
			Return(nil)

		f.repo.EXPECT().
			UpdateGuarded(gomock.Any(), "booking-1", model.StatusCheckedIn, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, _ model.Status, fields map[string]any) (int64, error) {
				// one night slept at 1,000,000 plus one remaining at 2,000,000
				assert.Equal(t, int64(3_000_000), fields[model.FieldRoomRateTotal])
				assert.Equal(t, "room-202", fields[model.FieldRoomID])
				return 1, nil
			})

		f.roomRepo.EXPECT().
			Release(gomock.Any(), "room-101", roomModel.StatusDirty, gomock.Any()).
			Return(nil)

		f.publisher.EXPECT().
			RoomStatusChanged(gomock.Any(), gomock.Any()).
			Times(2)

		err := f.svc.ChangeRoom(context.Background(), "booking-1", dto.ChangeRoomRequest{RoomID: "room-202"})

		assert.NoError(t, err)
	})

	t.Run("new room must differ from the current one", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(twoNightStay(model.StatusCheckedIn), nil)

		err := f.svc.ChangeRoom(context.Background(), "booking-1", dto.ChangeRoomRequest{RoomID: "room-101"})

		assert.Error(t, err)
	})

	t.Run("only in-house guests move rooms", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(twoNightStay(model.StatusConfirmed), nil)

		err := f.svc.ChangeRoom(context.Background(), "booking-1", dto.ChangeRoomRequest{RoomID: "room-202"})

		assert.Error(t, err)
		assert.True(t, failure.IsKind(err, failure.KindInvalidTransition))
	})
}

func TestBookingService_CheckOut(t *testing.T) {
	t.Run("settles the folio on time", func(t *testing.T) {
		f := newFixture(t)

		booking := twoNightStay(model.StatusCheckedIn)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(booking, nil)

		flip := f.repo.EXPECT().
			UpdateGuarded(gomock.Any(), "booking-1", model.StatusCheckedIn, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, _ model.Status, fields map[string]any) (int64, error) {
				assert.Equal(t, model.StatusCheckedOut, fields[model.FieldStatus])
				assert.NotNil(t, fields[model.FieldActualCheckOutAt])
				return 1, nil
			})

		sum := f.charges.EXPECT().
			SumByBooking(gomock.Any(), "booking-1").
			Return(int64(100_000), nil)

		snapshot := f.repo.EXPECT().
			UpdateGuarded(gomock.Any(), "booking-1", model.StatusCheckedOut, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, _ model.Status, fields map[string]any) (int64, error) {
				assert.Equal(t, int64(100_000), fields[model.FieldChargesTotal])
				assert.Equal(t, int64(0), fields[model.FieldPenaltyAmount])
				assert.Equal(t, int64(1_600_000), fields[model.FieldBalanceDue])
				return 1, nil
			})

		// The ledger must be frozen before it is summed, and the snapshot
		// must come from that sum, so a charge slipping in mid-checkout
		// can never be missing from the persisted totals.
		gomock.InOrder(flip, sum, snapshot)

		f.roomRepo.EXPECT().
			Release(gomock.Any(), "room-101", roomModel.StatusDirty, gomock.Any()).
			Return(nil)

		f.publisher.EXPECT().
			RoomStatusChanged(gomock.Any(), gomock.Any())

		f.publisher.EXPECT().
			FolioSettled(gomock.Any(), gomock.Any()).
			Do(func(_ context.Context, event events.FolioSettled) {
				assert.Equal(t, int64(1_600_000), event.BalanceDue)
			})

		res, err := f.svc.CheckOut(context.Background(), "booking-1")

		assert.NoError(t, err)
		assert.True(t, res.Settled)
		assert.Equal(t, int64(2_000_000), res.RoomRateTotal)
		assert.Equal(t, int64(100_000), res.ChargesTotal)
		assert.Zero(t, res.PenaltyAmount)
		assert.Equal(t, int64(1_600_000), res.BalanceDue)
	})

	t.Run("late departure is penalised against the scheduled check-out", func(t *testing.T) {
		f := newFixture(t)

		booking := twoNightStay(model.StatusCheckedIn)
		booking.CheckOutDate = timezone.Now().Add(-90 * time.Minute)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(booking, nil)

		f.charges.EXPECT().
			SumByBooking(gomock.Any(), "booking-1").
			Return(int64(0), nil)

		f.repo.EXPECT().
			UpdateGuarded(gomock.Any(), "booking-1", model.StatusCheckedIn, gomock.Any()).
			Return(int64(1), nil)

		f.repo.EXPECT().
			UpdateGuarded(gomock.Any(), "booking-1", model.StatusCheckedOut, gomock.Any()).
			Return(int64(1), nil)

		f.roomRepo.EXPECT().
			Release(gomock.Any(), "room-101", roomModel.StatusDirty, gomock.Any()).
			Return(nil)

		f.publisher.EXPECT().
			RoomStatusChanged(gomock.Any(), gomock.Any())

		f.publisher.EXPECT().
			FolioSettled(gomock.Any(), gomock.Any())

		res, err := f.svc.CheckOut(context.Background(), "booking-1")

		assert.NoError(t, err)
		assert.Equal(t, 2, res.HoursLate)
		assert.Equal(t, int64(20), res.PenaltyPercent)
		assert.Equal(t, int64(200_000), res.PenaltyAmount)
		assert.Equal(t, int64(1_700_000), res.BalanceDue)
	})

	t.Run("double check-out leaves the folio untouched", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(twoNightStay(model.StatusCheckedOut), nil)

		_, err := f.svc.CheckOut(context.Background(), "booking-1")

		assert.Error(t, err)
		assert.True(t, failure.IsKind(err, failure.KindInvalidTransition))
	})
}

func TestBookingService_MarkNoShow(t *testing.T) {
	t.Run("voids a stale reservation", func(t *testing.T) {
		f := newFixture(t)

		booking := twoNightStay(model.StatusConfirmed)
		booking.CheckInDate = timezone.Now().AddDate(0, 0, -3)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(booking, nil)

		f.repo.EXPECT().
			UpdateGuarded(gomock.Any(), "booking-1", model.StatusConfirmed, gomock.Any()).
			Return(int64(1), nil)

		assert.NoError(t, f.svc.MarkNoShow(context.Background(), "booking-1"))
	})

	t.Run("check-in day must be over first", func(t *testing.T) {
		f := newFixture(t)

		booking := twoNightStay(model.StatusConfirmed)
		booking.CheckInDate = timezone.Now()

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(booking, nil)

		err := f.svc.MarkNoShow(context.Background(), "booking-1")

		assert.Error(t, err)
	})

	t.Run("checked-in guests are not no-shows", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(twoNightStay(model.StatusCheckedIn), nil)

		err := f.svc.MarkNoShow(context.Background(), "booking-1")

		assert.Error(t, err)
		assert.True(t, failure.IsKind(err, failure.KindInvalidTransition))
	})
}

func TestBookingService_GetFolio(t *testing.T) {
	t.Run("previews the bill while in house", func(t *testing.T) {
		f := newFixture(t)

		booking := twoNightStay(model.StatusCheckedIn)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(booking, nil)

		f.charges.EXPECT().
			SumByBooking(gomock.Any(), "booking-1").
			Return(int64(100_000), nil)

		res, err := f.svc.GetFolio(context.Background(), "booking-1")

		assert.NoError(t, err)
		assert.False(t, res.Settled)
		assert.Equal(t, int64(1_600_000), res.BalanceDue)
	})

	t.Run("returns the persisted snapshot once settled", func(t *testing.T) {
		f := newFixture(t)

		booking := twoNightStay(model.StatusCheckedOut)
		chargesTotal := int64(100_000)
		penalty := int64(0)
		balance := int64(1_600_000)
		booking.ChargesTotal = &chargesTotal
		booking.PenaltyAmount = &penalty
		booking.BalanceDue = &balance

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(booking, nil)

		res, err := f.svc.GetFolio(context.Background(), "booking-1")

		assert.NoError(t, err)
		assert.True(t, res.Settled)
		assert.Equal(t, int64(1_600_000), res.BalanceDue)
	})
}

func TestBookingService_Cancel(t *testing.T) {
	t.Run("cancels a confirmed reservation and drops its ledger", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(twoNightStay(model.StatusConfirmed), nil)

		f.repo.EXPECT().
			UpdateGuarded(gomock.Any(), "booking-1", model.StatusConfirmed, gomock.Any()).
			Return(int64(1), nil)

		f.charges.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil)

		assert.NoError(t, f.svc.Cancel(context.Background(), "booking-1"))
	})

	t.Run("cancelling a checked-in stay is rejected", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(twoNightStay(model.StatusCheckedIn), nil)

		err := f.svc.Cancel(context.Background(), "booking-1")

		assert.Error(t, err)
		assert.True(t, failure.IsKind(err, failure.KindInvalidTransition))
	})
}
