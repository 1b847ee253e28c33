package service

import (
	"context"
	"fmt"
	"time"

	"reception/config"
	"reception/infras/otel"
	"reception/internal/domains/booking/model"
	"reception/internal/domains/booking/model/dto"
	"reception/internal/domains/booking/repository"
	chargeModel "reception/internal/domains/charge/model"
	chargeRepo "reception/internal/domains/charge/repository"
	"reception/internal/domains/folio"
	"reception/internal/domains/folio/latefee"
	roomModel "reception/internal/domains/room/model"
	roomRepo "reception/internal/domains/room/repository"
	"reception/internal/events"
	"reception/shared"
	"reception/shared/cache"
	"reception/shared/constant"
	gDto "reception/shared/dto"
	"reception/shared/failure"
	"reception/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"
	cacheRoomPrefix    = "room"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	Confirm(ctx context.Context, id string) error
	Cancel(ctx context.Context, id string) error
	CheckIn(ctx context.Context, id string, req dto.CheckInRequest) error
	ChangeRoom(ctx context.Context, id string, req dto.ChangeRoomRequest) error
	CheckOut(ctx context.Context, id string) (dto.FolioResponse, error)
	MarkNoShow(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	GetFolio(ctx context.Context, id string) (dto.FolioResponse, error)
}

type serviceImpl struct {
	repo       repository.Booking
	roomRepo   roomRepo.Room
	chargeRepo chargeRepo.Charge
	publisher  events.Publisher
	cfg        *config.Config
	cache      cache.RedisCache
	otel       otel.Otel
	latePolicy latefee.Policy
}

func New(
	repo repository.Booking,
	roomRepo roomRepo.Room,
	chargeRepo chargeRepo.Charge,
	publisher events.Publisher,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:       repo,
		roomRepo:   roomRepo,
		chargeRepo: chargeRepo,
		publisher:  publisher,
		cfg:        cfg,
		cache:      cache,
		otel:       otel,
		latePolicy: latefee.PolicyFromConfig(cfg),
	}
}

// Create registers a reservation or walk-in. The booking is priced at the
// cheapest in-service rate of the requested type; the concrete room is chosen
// at check-in.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyStaffID).(string)

	rate, err := s.roomRepo.CheapestRateByType(ctx, req.RoomType)
	if err != nil {
		log.Error().Err(err).Str("roomType", req.RoomType).Msg("failed to price room type")

		return res, fmt.Errorf("failed to price room type: %w", err)
	}

	code, err := shared.GenerateCode(s.cfg.Booking.CodeLength)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate booking code")

		return res, fmt.Errorf("failed to generate booking code: %w", err)
	}

	booking, err := req.ToModel(rate, code, user, s.cfg.Booking.CheckInHour, s.cfg.Booking.CheckOutHour)
	if err != nil {
		log.Error().Err(err).Msg("failed to parse booking request")

		return res, failure.BadRequestFromString(fmt.Sprintf("invalid date format: %v", err)) // nolint:wrapcheck
	}

	if !booking.CheckOutDate.After(booking.CheckInDate) {
		return res, failure.BadRequestFromString("check-out date must be after check-in date") // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	res.FromModel(booking)

	s.invalidateListCaches(ctx)

	return res, nil
}

// Confirm moves a pending booking to confirmed.
func (s *serviceImpl) Confirm(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Confirm")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return err
	}

	_, err = s.transition(ctx, booking, model.EventConfirm, nil)

	return err
}

// Cancel releases whatever the booking holds: the room goes back to the
// housekeeping cycle and the charge ledger is dropped with it. Whether the
// cancellation is permitted at all was decided by the policy engine before
// this call.
func (s *serviceImpl) Cancel(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return err
	}

	if _, err = s.transition(ctx, booking, model.EventCancel, nil); err != nil {
		return err
	}

	s.releaseHeldRoom(ctx, booking)

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    chargeModel.FieldBookingID,
				Value:    booking.ID,
				Operator: gDto.FilterOperatorEq,
				Table:    chargeModel.TableName,
			},
		},
	}

	if err = s.chargeRepo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Str("bookingID", booking.ID).Msg("failed to drop charges for cancelled booking")
	}

	return nil
}

// CheckIn claims the chosen room and opens the stay. The claim is a
// compare-and-set on the room row, so of two concurrent check-ins targeting
// the same room exactly one wins; the loser gets RoomNotAvailable.
func (s *serviceImpl) CheckIn(ctx context.Context, id string, req dto.CheckInRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.CheckIn")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyStaffID).(string)

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return err
	}

	if _, ok := model.NextStatus(booking.Status, model.EventCheckIn); !ok {
		return failure.InvalidTransition(booking.Status.String(), string(model.EventCheckIn)) // nolint:wrapcheck
	}

	room, err := s.roomRepo.Get(ctx, shared.FilterByID(req.RoomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return failure.NotFound(roomModel.EntityName) // nolint:wrapcheck
	}

	if !booking.WalkIn && room.RoomType != booking.RoomType {
		return failure.BadRequestFromString(fmt.Sprintf("room %s is type %s, reservation is for %s", room.RoomNumber, room.RoomType, booking.RoomType)) // nolint:wrapcheck
	}

	if err = s.roomRepo.Reserve(ctx, room.ID, user); err != nil {
		return err // nolint:wrapcheck
	}

	now := timezone.Now()

	extra := map[string]any{
		model.FieldRoomID:          room.ID,
		model.FieldActualCheckInAt: now,
	}

	// Walk-ins taking a different type are re-priced to the actual room.
	if booking.WalkIn && room.RoomType != booking.RoomType {
		extra[model.FieldRoomType] = room.RoomType
		extra[model.FieldNightlyRate] = room.NightlyRate
		extra[model.FieldRoomRateTotal] = room.NightlyRate * int64(booking.Nights())
	}

	if _, err = s.transition(ctx, booking, model.EventCheckIn, extra); err != nil {
		// Undo the claim so the room is not stranded in occupied.
		if releaseErr := s.roomRepo.Release(ctx, room.ID, roomModel.StatusAvailable, user); releaseErr != nil {
			log.Error().Err(releaseErr).Str("roomID", room.ID).Msg("failed to release room after check-in conflict")
		}

		return err
	}

	s.publisher.RoomStatusChanged(ctx, events.RoomStatusChanged{
		RoomID:     room.ID,
		RoomNumber: room.RoomNumber,
		From:       roomModel.StatusAvailable.String(),
		To:         roomModel.StatusOccupied.String(),
		BookingID:  booking.ID,
		OccurredAt: now,
	})

	return nil
}

// ChangeRoom moves an in-house guest. Nights already slept keep the old
// rate; the remaining nights are re-priced at the new room's rate so the
// folio recomputes from the updated total.
func (s *serviceImpl) ChangeRoom(ctx context.Context, id string, req dto.ChangeRoomRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.ChangeRoom")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyStaffID).(string)

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return err
	}

	if _, ok := model.NextStatus(booking.Status, model.EventChangeRoom); !ok {
		return failure.InvalidTransition(booking.Status.String(), string(model.EventChangeRoom)) // nolint:wrapcheck
	}

	if booking.RoomID != nil && *booking.RoomID == req.RoomID {
		return failure.BadRequestFromString("new room must differ from the current room") // nolint:wrapcheck
	}

	newRoom, err := s.roomRepo.Get(ctx, shared.FilterByID(req.RoomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return fmt.Errorf("failed to get room: %w", err)
	}

	if newRoom.ID == constant.Empty {
		return failure.NotFound(roomModel.EntityName) // nolint:wrapcheck
	}

	if err = s.roomRepo.Reserve(ctx, newRoom.ID, user); err != nil {
		return err // nolint:wrapcheck
	}

	now := timezone.Now()
	remaining := remainingNights(now, booking.CheckOutDate, booking.Nights())
	elapsed := booking.Nights() - remaining
	newTotal := booking.NightlyRate*int64(elapsed) + newRoom.NightlyRate*int64(remaining)

	extra := map[string]any{
		model.FieldRoomID:        newRoom.ID,
		model.FieldNightlyRate:   newRoom.NightlyRate,
		model.FieldRoomRateTotal: newTotal,
	}

	if _, err = s.transition(ctx, booking, model.EventChangeRoom, extra); err != nil {
		if releaseErr := s.roomRepo.Release(ctx, newRoom.ID, roomModel.StatusAvailable, user); releaseErr != nil {
			log.Error().Err(releaseErr).Str("roomID", newRoom.ID).Msg("failed to release room after room-change conflict")
		}

		return err
	}

	if booking.RoomID != nil {
		if err := s.roomRepo.Release(ctx, *booking.RoomID, roomModel.StatusDirty, user); err != nil {
			log.Error().Err(err).Str("roomID", *booking.RoomID).Msg("failed to release previous room")
		}

		s.publisher.RoomStatusChanged(ctx, events.RoomStatusChanged{
			RoomID:     *booking.RoomID,
			From:       roomModel.StatusOccupied.String(),
			To:         roomModel.StatusDirty.String(),
			BookingID:  booking.ID,
			OccurredAt: now,
		})
	}

	s.publisher.RoomStatusChanged(ctx, events.RoomStatusChanged{
		RoomID:     newRoom.ID,
		RoomNumber: newRoom.RoomNumber,
		From:       roomModel.StatusAvailable.String(),
		To:         roomModel.StatusOccupied.String(),
		BookingID:  booking.ID,
		OccurredAt: now,
	})

	return nil
}

// CheckOut closes the stay: the ledger freezes with the status change, the
// late penalty is computed against the scheduled check-out, and the folio is
// settled and persisted on the booking row for good.
func (s *serviceImpl) CheckOut(ctx context.Context, id string) (res dto.FolioResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.CheckOut")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyStaffID).(string)

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return res, err
	}

	if _, ok := model.NextStatus(booking.Status, model.EventCheckOut); !ok {
		return res, failure.InvalidTransition(booking.Status.String(), string(model.EventCheckOut)) // nolint:wrapcheck
	}

	now := timezone.Now()

	// Flip the status first: the ledger freezes the moment the row reads
	// checked_out, so the sum taken afterwards cannot miss a concurrent
	// charge that was admitted while the booking was still in-house.
	updated, err := s.transition(ctx, booking, model.EventCheckOut, map[string]any{
		model.FieldActualCheckOutAt: now,
	})
	if err != nil {
		return res, err
	}

	chargesTotal, err := s.chargeRepo.SumByBooking(ctx, booking.ID)
	if err != nil {
		log.Error().Err(err).Msg("failed to total charges")

		return res, fmt.Errorf("failed to total charges: %w", err)
	}

	late := latefee.Calculate(s.latePolicy, booking.CheckOutDate, now, booking.NightlyRate)
	settled := folio.Settle(booking.RoomRateTotal, chargesTotal, booking.DepositAmount, late)

	snapshot := map[string]any{
		model.FieldChargesTotal:  settled.ChargesTotal,
		model.FieldPenaltyAmount: settled.PenaltyAmount,
		model.FieldBalanceDue:    settled.BalanceDue,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if _, err = s.repo.UpdateGuarded(ctx, booking.ID, model.StatusCheckedOut, snapshot); err != nil {
		log.Error().Err(err).Str("bookingID", booking.ID).Msg("failed to persist folio snapshot")

		return res, fmt.Errorf("failed to persist folio snapshot: %w", err)
	}

	s.invalidateBookingCaches(ctx, booking.ID)

	if booking.RoomID != nil {
		if err := s.roomRepo.Release(ctx, *booking.RoomID, roomModel.StatusDirty, user); err != nil {
			log.Error().Err(err).Str("roomID", *booking.RoomID).Msg("failed to release room at check-out")
		}

		s.publisher.RoomStatusChanged(ctx, events.RoomStatusChanged{
			RoomID:     *booking.RoomID,
			From:       roomModel.StatusOccupied.String(),
			To:         roomModel.StatusDirty.String(),
			BookingID:  booking.ID,
			OccurredAt: now,
		})
	}

	s.publisher.FolioSettled(ctx, events.FolioSettled{
		BookingID:     booking.ID,
		BookingCode:   booking.Code,
		RoomRateTotal: settled.RoomRateTotal,
		ChargesTotal:  settled.ChargesTotal,
		PenaltyAmount: settled.PenaltyAmount,
		DepositAmount: settled.DepositAmount,
		BalanceDue:    settled.BalanceDue,
		OccurredAt:    now,
	})

	res.FromFolio(updated, settled, late, true)

	return res, nil
}

// MarkNoShow voids a reservation whose guest never arrived. Only valid once
// the check-in day is over.
func (s *serviceImpl) MarkNoShow(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.MarkNoShow")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return err
	}

	if _, ok := model.NextStatus(booking.Status, model.EventNoShow); !ok {
		return failure.InvalidTransition(booking.Status.String(), string(model.EventNoShow)) // nolint:wrapcheck
	}

	if booking.ActualCheckInAt != nil {
		return failure.InvalidTransition(booking.Status.String(), string(model.EventNoShow)) // nolint:wrapcheck
	}

	if !timezone.Now().After(booking.CheckInDate.AddDate(0, 0, 1)) {
		return failure.BadRequestFromString("check-in date has not passed yet") // nolint:wrapcheck
	}

	if _, err = s.transition(ctx, booking, model.EventNoShow, nil); err != nil {
		return err
	}

	s.releaseHeldRoom(ctx, booking)

	return nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

// GetFolio returns the persisted snapshot once the booking is settled, and a
// live preview before that. The preview includes the penalty the guest would
// owe by checking out right now; reading it never mutates anything.
func (s *serviceImpl) GetFolio(ctx context.Context, id string) (res dto.FolioResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetFolio")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return res, err
	}

	if booking.Status.Terminal() && booking.BalanceDue != nil {
		snapshot := folio.Folio{
			RoomRateTotal: booking.RoomRateTotal,
			ChargesTotal:  *booking.ChargesTotal,
			PenaltyAmount: *booking.PenaltyAmount,
			DepositAmount: booking.DepositAmount,
			BalanceDue:    *booking.BalanceDue,
		}

		res.FromFolio(booking, snapshot, latefee.Result{PenaltyAmount: *booking.PenaltyAmount}, true)

		return res, nil
	}

	chargesTotal, err := s.chargeRepo.SumByBooking(ctx, booking.ID)
	if err != nil {
		log.Error().Err(err).Msg("failed to total charges")

		return res, fmt.Errorf("failed to total charges: %w", err)
	}

	var late latefee.Result
	if booking.CheckedIn() {
		late = latefee.Calculate(s.latePolicy, booking.CheckOutDate, timezone.Now(), booking.NightlyRate)
	}

	preview := folio.Settle(booking.RoomRateTotal, chargesTotal, booking.DepositAmount, late)

	res.FromFolio(booking, preview, late, false)

	return res, nil
}

// getBooking loads one booking or fails with NotFound.
func (s *serviceImpl) getBooking(ctx context.Context, id string) (model.Booking, error) {
	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return model.Booking{}, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return model.Booking{}, failure.NotFound(model.EntityName) // nolint:wrapcheck
	}

	return booking, nil
}

// transition applies one lifecycle event with a status-guarded UPDATE. A
// stale writer loses the guard and gets InvalidTransition, same as an edge
// that never existed.
func (s *serviceImpl) transition(ctx context.Context, booking model.Booking, event model.Event, extra map[string]any) (model.Booking, error) {
	next, ok := model.NextStatus(booking.Status, event)
	if !ok {
		return booking, failure.InvalidTransition(booking.Status.String(), string(event)) // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyStaffID).(string)

	fields := map[string]any{
		model.FieldStatus:        next,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	for col, val := range extra {
		fields[col] = val
	}

	rows, err := s.repo.UpdateGuarded(ctx, booking.ID, booking.Status, fields)
	if err != nil {
		log.Error().Err(err).Str("bookingID", booking.ID).Str("event", string(event)).Msg("failed to transition booking")

		return booking, fmt.Errorf("failed to transition booking: %w", err)
	}

	if rows == 0 {
		return booking, failure.InvalidTransition(booking.Status.String(), string(event)) // nolint:wrapcheck
	}

	booking.Status = next

	s.invalidateBookingCaches(ctx, booking.ID)

	return booking, nil
}

// releaseHeldRoom frees a room a dying booking still references.
func (s *serviceImpl) releaseHeldRoom(ctx context.Context, booking model.Booking) {
	if booking.RoomID == nil {
		return
	}

	user, _ := ctx.Value(constant.ContextKeyStaffID).(string)

	if err := s.roomRepo.Release(ctx, *booking.RoomID, roomModel.StatusDirty, user); err != nil {
		log.Error().Err(err).Str("roomID", *booking.RoomID).Msg("failed to release held room")

		return
	}

	s.publisher.RoomStatusChanged(ctx, events.RoomStatusChanged{
		RoomID:     *booking.RoomID,
		From:       roomModel.StatusOccupied.String(),
		To:         roomModel.StatusDirty.String(),
		BookingID:  booking.ID,
		OccurredAt: timezone.Now(),
	})
}

func (s *serviceImpl) invalidateBookingCaches(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
		shared.InvalidateCaches(c, s.cache, cacheRoomPrefix)
	}()
}

func (s *serviceImpl) invalidateListCaches(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()
}

// remainingNights counts the nights still ahead at the time of a room move,
// clamped to the booked length of stay.
func remainingNights(now, checkOut time.Time, nights int) int {
	if !checkOut.After(now) {
		return 0
	}

	hours := checkOut.Sub(now).Hours()
	remaining := int(hours / 24)

	if hours != float64(remaining*24) {
		remaining++
	}

	if remaining > nights {
		remaining = nights
	}

	return remaining
}
