package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"reception/infras/otel"
	"reception/infras/postgres"
	"reception/internal/domains/charge/model"
	"reception/shared/constant"
	gDto "reception/shared/dto"
	"reception/shared/logger"
	gRepo "reception/shared/repository"
)

type Charge interface {
	Insert(ctx context.Context, model model.ChargeItem) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.ChargeItem, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.ChargeItem, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	SumByBooking(ctx context.Context, bookingID string) (int64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.ChargeItem]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Charge {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.ChargeItem](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// SumByBooking totals the ledger in one aggregate query so concurrent inserts
// cannot skew a partially summed read. An empty ledger sums to zero.
func (r *repositoryImpl) SumByBooking(ctx context.Context, bookingID string) (total int64, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".charge.SumByBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf(
		"SELECT COALESCE(SUM(unit_amount * quantity), 0) FROM %s WHERE booking_id = $1",
		model.TableName,
	)

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	err = r.db.Read.GetContext(ctx, &total, query, bookingID)
	if err != nil {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to sum charges: %w", err)
	}

	return total, nil
}
