package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"reception/infras/otel"
	"reception/infras/postgres"
	"reception/internal/domains/room/model"
	"reception/shared/constant"
	gDto "reception/shared/dto"
	"reception/shared/failure"
	"reception/shared/logger"
	gRepo "reception/shared/repository"
	"reception/shared/timezone"
)

type Room interface {
	Insert(ctx context.Context, model model.Room) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Room, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Room, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) (int64, error)
	Reserve(ctx context.Context, roomID, modifiedBy string) error
	Release(ctx context.Context, roomID string, newStatus model.Status, modifiedBy string) error
	CheapestRateByType(ctx context.Context, roomType string) (int64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Room]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Room {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Room](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// Reserve claims an available room with a single compare-and-set UPDATE.
// When two check-ins race for the same room the database serializes them and
// the loser sees zero affected rows.
func (r *repositoryImpl) Reserve(ctx context.Context, roomID, modifiedBy string) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.Reserve")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf(
		"UPDATE %s SET status = $1, modified_at = $2, modified_by = $3 WHERE id = $4 AND status = $5",
		model.TableName,
	)

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	result, err := r.db.Write.ExecContext(ctx, query,
		model.StatusOccupied, timezone.Now(), modifiedBy, roomID, model.StatusAvailable)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to reserve room: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows (room): %w", err)
	}

	if rows == 0 {
		return failure.RoomNotAvailable(roomID) // nolint:wrapcheck
	}

	return nil
}

// Release hands an occupied room back, always via a housekeeping-relevant
// status. Releasing a room that is no longer occupied is a no-op.
func (r *repositoryImpl) Release(ctx context.Context, roomID string, newStatus model.Status, modifiedBy string) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.Release")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf(
		"UPDATE %s SET status = $1, modified_at = $2, modified_by = $3 WHERE id = $4 AND status = $5",
		model.TableName,
	)

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	_, err = r.db.Write.ExecContext(ctx, query,
		newStatus, timezone.Now(), modifiedBy, roomID, model.StatusOccupied)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to release room: %w", err)
	}

	return nil
}

// CheapestRateByType prices type-only reservations at the lowest nightly rate
// among rooms of the type that are not withdrawn from service.
func (r *repositoryImpl) CheapestRateByType(ctx context.Context, roomType string) (rate int64, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.CheapestRateByType")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf(
		"SELECT MIN(nightly_rate) FROM %s WHERE room_type = $1 AND status <> ALL($2)",
		model.TableName,
	)

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var minRate sql.NullInt64

	err = r.db.Read.GetContext(ctx, &minRate, query, roomType, pq.Array(model.OutOfServiceStatuses()))
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to get cheapest rate: %w", err)
	}

	if !minRate.Valid {
		return 0, failure.NotFound("room type") // nolint:wrapcheck
	}

	return minRate.Int64, nil
}
