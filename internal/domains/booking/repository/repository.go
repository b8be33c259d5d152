package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"stay/infras/otel"
	"stay/infras/postgres"
	"stay/internal/domains/booking/model"
	"stay/shared/constant"
	gDto "stay/shared/dto"
	"stay/shared/logger"
	gRepo "stay/shared/repository"
	"time"

	"github.com/rs/zerolog/log"
)

type Booking interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	CreateWithDetails(ctx context.Context, booking model.Booking, details []model.BookingDetail) error
	GetDetails(ctx context.Context, bookingID string) ([]model.BookingDetail, error)
	CountOverlappingRooms(ctx context.Context, roomTypeID string, checkIn, checkOut time.Time) (int, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	detailRepo gRepo.Repository[model.BookingDetail]
	db         *postgres.Connection
	otel       otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		detailRepo: gRepo.NewRepository[model.BookingDetail](model.DetailEntityName, model.DetailTableName, model.DetailFieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// CreateWithDetails persists the booking header and all of its detail rows in
// one transaction. Either everything commits or nothing does.
func (repo *repositoryImpl) CreateWithDetails(ctx context.Context, booking model.Booking, details []model.BookingDetail) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.CreateWithDetails")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := repo.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin booking transaction: %w", err)
	}

	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				log.Error().Err(rollbackErr).Msg("failed to rollback booking transaction")
			}
		}
	}()

	if err = repo.InsertTx(ctx, tx, booking); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to insert booking: %w", err)
	}

	if err = repo.detailRepo.InsertBulkTx(ctx, tx, details); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to insert booking details: %w", err)
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to commit booking transaction: %w", err)
	}

	return nil
}

func (repo *repositoryImpl) GetDetails(ctx context.Context, bookingID string) ([]model.BookingDetail, error) {
	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.DetailFieldBookingID,
				Operator: gDto.FilterOperatorEq,
				Value:    bookingID,
				Table:    model.DetailTableName,
			},
		},
	}

	return repo.detailRepo.GetAll(ctx, gDto.QueryParams{}, filter) //nolint:wrapcheck
}

// CountOverlappingRooms sums the detail quantities of pending and confirmed
// bookings for a room type whose stay overlaps [checkIn, checkOut). Best
// effort: no row locks, concurrent requests are not serialized.
func (repo *repositoryImpl) CountOverlappingRooms(ctx context.Context, roomTypeID string, checkIn, checkOut time.Time) (count int, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.CountOverlappingRooms")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := `SELECT COALESCE(SUM(bd.quantity), 0)
		FROM booking_details bd
		JOIN bookings b ON b.id = bd.booking_id
		WHERE bd.room_type_id = :room_type_id
		  AND b.status IN ('pending', 'confirmed')
		  AND b.check_in < :check_out
		  AND b.check_out > :check_in`

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	args := map[string]any{
		"room_type_id": roomTypeID,
		"check_in":     checkIn,
		"check_out":    checkOut,
	}

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to prepare overlap count: %w", err)
	}
	defer prepare.Close()

	if err = prepare.GetContext(ctx, &count, args); err != nil {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to count overlapping rooms: %w", err)
	}

	return count, nil
}
