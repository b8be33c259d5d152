package authz

//go:generate go run go.uber.org/mock/mockgen -source=./authz.go -destination=./mocks/authz_mock.go -package=mocks

import (
	"context"
	"fmt"
	"stay/infras/otel"
	hotelModel "stay/internal/domains/hotel/model"
	hotelRepo "stay/internal/domains/hotel/repository"
	staffModel "stay/internal/domains/staff/model"
	staffRepo "stay/internal/domains/staff/repository"
	"stay/shared"
	"stay/shared/constant"
	gDto "stay/shared/dto"
	"stay/shared/failure"

	"github.com/rs/zerolog/log"
)

const otelScopeName = "authz"

// Authorizer is the single place permission decisions are made. Services ask
// it about hotel relationships instead of re-deriving ownership themselves.
type Authorizer interface {
	// CanManageHotel allows admins, the hotel owner, and active staff of the
	// hotel. Returns a not-found failure when the hotel does not exist.
	CanManageHotel(ctx context.Context, userID string, roleID int, hotelID string) error
	// CanAdministerHotel allows admins and the hotel owner only. Staff cannot
	// administer (hire staff, manage promotions).
	CanAdministerHotel(ctx context.Context, userID string, roleID int, hotelID string) error
	// SelfOrAdmin allows the subject itself and admins.
	SelfOrAdmin(roleID int, userID, targetUserID string) error
}

type authorizerImpl struct {
	hotelRepo hotelRepo.Hotel
	staffRepo staffRepo.Staff
	otel      otel.Otel
}

func New(hotelRepo hotelRepo.Hotel, staffRepo staffRepo.Staff, otel otel.Otel) Authorizer {
	return &authorizerImpl{
		hotelRepo: hotelRepo,
		staffRepo: staffRepo,
		otel:      otel,
	}
}

func (a *authorizerImpl) CanManageHotel(ctx context.Context, userID string, roleID int, hotelID string) (err error) {
	ctx, scope := a.otel.NewScope(ctx, otelScopeName, otelScopeName+".CanManageHotel")
	defer scope.End()
	defer scope.TraceIfError(err)

	if roleID == constant.RoleAdmin {
		return nil
	}

	hotel, err := a.hotelRepo.Get(ctx, shared.FilterByID(hotelID, hotelModel.FieldID, hotelModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get hotel")

		return fmt.Errorf("failed to get hotel: %w", err)
	}

	if hotel.ID == constant.Empty {
		return failure.NotFound("hotel not found")
	}

	if hotel.OwnerID == userID {
		return nil
	}

	isStaff, err := a.staffRepo.Exist(ctx, staffFilter(hotelID, userID))
	if err != nil {
		log.Error().Err(err).Msg("failed to check hotel staff")

		return fmt.Errorf("failed to check hotel staff: %w", err)
	}

	if isStaff {
		return nil
	}

	return failure.Forbidden("you do not have permission to manage this hotel")
}

func (a *authorizerImpl) CanAdministerHotel(ctx context.Context, userID string, roleID int, hotelID string) (err error) {
	ctx, scope := a.otel.NewScope(ctx, otelScopeName, otelScopeName+".CanAdministerHotel")
	defer scope.End()
	defer scope.TraceIfError(err)

	if roleID == constant.RoleAdmin {
		return nil
	}

	hotel, err := a.hotelRepo.Get(ctx, shared.FilterByID(hotelID, hotelModel.FieldID, hotelModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get hotel")

		return fmt.Errorf("failed to get hotel: %w", err)
	}

	if hotel.ID == constant.Empty {
		return failure.NotFound("hotel not found")
	}

	if hotel.OwnerID == userID {
		return nil
	}

	return failure.Forbidden("you do not have permission to manage this hotel")
}

func (a *authorizerImpl) SelfOrAdmin(roleID int, userID, targetUserID string) error {
	if roleID == constant.RoleAdmin || userID == targetUserID {
		return nil
	}

	return failure.Forbidden("you do not have permission to access this resource")
}

func staffFilter(hotelID, userID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    staffModel.FieldHotelID,
				Operator: gDto.FilterOperatorEq,
				Value:    hotelID,
				Table:    staffModel.TableName,
			},
			gDto.Filter{
				Field:    staffModel.FieldUserID,
				Operator: gDto.FilterOperatorEq,
				Value:    userID,
				Table:    staffModel.TableName,
			},
			gDto.Filter{
				Field:    staffModel.FieldActive,
				Operator: gDto.FilterOperatorEq,
				Value:    true,
				Table:    staffModel.TableName,
			},
		},
	}
}
