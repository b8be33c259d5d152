package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"stay/infras/otel"
	"stay/infras/postgres"
	"stay/internal/domains/staff/model"
	"stay/shared/constant"
	gDto "stay/shared/dto"
	"stay/shared/logger"
	gRepo "stay/shared/repository"

	"github.com/rs/zerolog/log"
)

type Staff interface {
	Insert(ctx context.Context, model model.Staff) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Staff, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Staff, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	HireWithContract(ctx context.Context, staff model.Staff, contract model.Contract) error
	GetContracts(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Contract, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Staff]
	contractRepo gRepo.Repository[model.Contract]
	db           *postgres.Connection
	otel         otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Staff {
	return &repositoryImpl{
		Repository:   gRepo.NewRepository[model.Staff](model.EntityName, model.TableName, model.FieldID, db, otel),
		contractRepo: gRepo.NewRepository[model.Contract](model.ContractEntityName, model.ContractTableName, model.ContractFieldID, db, otel),
		db:           db,
		otel:         otel,
	}
}

// HireWithContract inserts the staff row and its initial contract in one
// transaction so a hire never exists without a contract.
func (repo *repositoryImpl) HireWithContract(ctx context.Context, staff model.Staff, contract model.Contract) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".staff.HireWithContract")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := repo.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin hire transaction: %w", err)
	}

	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				log.Error().Err(rollbackErr).Msg("failed to rollback hire transaction")
			}
		}
	}()

	if err = repo.InsertTx(ctx, tx, staff); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to insert staff: %w", err)
	}

	if err = repo.contractRepo.InsertTx(ctx, tx, contract); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to insert staff contract: %w", err)
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to commit hire transaction: %w", err)
	}

	return nil
}

func (repo *repositoryImpl) GetContracts(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Contract, error) {
	return repo.contractRepo.GetAll(ctx, params, filter) //nolint:wrapcheck
}
