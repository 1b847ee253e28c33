package service

import (
	"context"
	"fmt"

	"reception/config"
	"reception/infras/otel"
	bookingModel "reception/internal/domains/booking/model"
	bookingRepo "reception/internal/domains/booking/repository"
	"reception/internal/domains/charge/model"
	"reception/internal/domains/charge/model/dto"
	"reception/internal/domains/charge/repository"
	"reception/shared"
	"reception/shared/cache"
	"reception/shared/constant"
	gDto "reception/shared/dto"
	"reception/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheChargesByBooking = "charge:booking"
)

type Charge interface {
	Add(ctx context.Context, bookingID string, req dto.AddChargeRequest) (dto.ChargeResponse, error)
	Remove(ctx context.Context, chargeID string) error
	Total(ctx context.Context, bookingID string) (int64, error)
	ListByBooking(ctx context.Context, bookingID string) (dto.GetChargesResponse, error)
}

type serviceImpl struct {
	repo        repository.Charge
	bookingRepo bookingRepo.Booking
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
}

func New(repo repository.Charge, bookingRepo bookingRepo.Booking, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Charge {
	return &serviceImpl{
		repo:        repo,
		bookingRepo: bookingRepo,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
	}
}

// Add appends a line item to an in-house guest's ledger. The ledger only
// accepts writes while the booking is checked in.
func (s *serviceImpl) Add(ctx context.Context, bookingID string, req dto.AddChargeRequest) (res dto.ChargeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".charge.Add")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.UnitAmount <= 0 {
		return res, failure.InvalidCharge(fmt.Sprintf("unit amount must be positive, got %d", req.UnitAmount)) // nolint:wrapcheck
	}

	if req.Quantity < 1 {
		return res, failure.InvalidCharge(fmt.Sprintf("quantity must be at least 1, got %d", req.Quantity)) // nolint:wrapcheck
	}

	booking, err := s.bookingRepo.Get(ctx, shared.FilterByID(bookingID, bookingModel.FieldID, bookingModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound(bookingModel.EntityName) // nolint:wrapcheck
	}

	if !booking.CheckedIn() {
		return res, failure.LedgerFrozen(booking.Status.String()) // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyStaffID).(string)
	charge := req.ToModel(bookingID, user)

	if err = s.repo.Insert(ctx, charge); err != nil {
		log.Error().Err(err).Msg("failed to add charge")

		return res, fmt.Errorf("failed to add charge: %w", err)
	}

	res.FromModel(charge)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, shared.BuildCacheKey(cacheChargesByBooking, bookingID))
	}()

	return res, nil
}

// Remove deletes a line item, refused once the owning booking has reached a
// terminal status and its folio is settled.
func (s *serviceImpl) Remove(ctx context.Context, chargeID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".charge.Remove")
	defer scope.End()
	defer scope.TraceIfError(err)

	charge, err := s.repo.Get(ctx, shared.FilterByID(chargeID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get charge")

		return fmt.Errorf("failed to get charge: %w", err)
	}

	if charge.ID == constant.Empty {
		return failure.NotFound(model.EntityName) // nolint:wrapcheck
	}

	booking, err := s.bookingRepo.Get(ctx, shared.FilterByID(charge.BookingID, bookingModel.FieldID, bookingModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.Status.Terminal() {
		return failure.LedgerFrozen(booking.Status.String()) // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(chargeID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to remove charge")

		return fmt.Errorf("failed to remove charge: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, shared.BuildCacheKey(cacheChargesByBooking, charge.BookingID))
	}()

	return nil
}

// Total sums the ledger. An empty ledger is zero, not an error.
func (s *serviceImpl) Total(ctx context.Context, bookingID string) (total int64, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".charge.Total")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err = s.repo.SumByBooking(ctx, bookingID)
	if err != nil {
		log.Error().Err(err).Msg("failed to total charges")

		return 0, fmt.Errorf("failed to total charges: %w", err)
	}

	return total, nil
}

func (s *serviceImpl) ListByBooking(ctx context.Context, bookingID string) (res dto.GetChargesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".charge.ListByBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheChargesByBooking, bookingID)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for charges")

		return res, nil
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldBookingID,
				Value:    bookingID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}

	models, err := s.repo.GetAll(ctx, gDto.QueryParams{
		Page:    constant.DefaultValuePage,
		Limit:   constant.DefaultValueMaxLimit,
		SortBy:  constant.FieldCreatedAt,
		SortDir: gDto.SortDirAsc,
	}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to list charges")

		return res, fmt.Errorf("failed to list charges: %w", err)
	}

	res.FromModels(models)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save charges to cache")
		}
	}()

	return res, nil
}
