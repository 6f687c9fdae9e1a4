package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Inventory=MockInventoryService

import (
	"context"
	"fmt"

	"voyage/infras/otel"
	"voyage/internal/domains/inventory/model"
	"voyage/internal/domains/inventory/model/dto"
	"voyage/internal/domains/inventory/repository"
	rtModel "voyage/internal/domains/roomtype/model"
	"voyage/shared/constant"
	"voyage/shared/failure"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

// Inventory answers how many rooms of a type are free for a stay.
// Availability is always computed from committed bookings and never cached.
type Inventory interface {
	AvailableUnits(ctx context.Context, roomTypeID string, stay model.DateRange) (dto.AvailabilityResponse, error)
	AvailableUnitsTx(ctx context.Context, tx *sqlx.Tx, roomType rtModel.RoomType, stay model.DateRange) (int, error)
}

type serviceImpl struct {
	repo repository.Inventory
	otel otel.Otel
}

func New(repo repository.Inventory, otel otel.Otel) Inventory {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) AvailableUnits(ctx context.Context, roomTypeID string, stay model.DateRange) (res dto.AvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AvailableUnits")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	roomType, err := s.repo.GetRoomType(ctx, roomTypeID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get room type")

		return res, fmt.Errorf("failed to get room type: %w", err)
	}

	if roomType.ID == constant.Empty {
		return res, failure.NotFound("room type not found") // nolint:wrapcheck
	}

	reserved, err := s.repo.ReservedUnits(ctx, roomTypeID, stay)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reserved units")

		return res, fmt.Errorf("failed to get reserved units: %w", err)
	}

	res.FromModel(roomType, stay, model.Available(roomType.TotalRooms, reserved))

	return res, nil
}

// AvailableUnitsTx reads availability inside the caller's transaction.
// The caller must already hold the room type lock for the answer to stay valid until commit.
func (s *serviceImpl) AvailableUnitsTx(ctx context.Context, tx *sqlx.Tx, roomType rtModel.RoomType, stay model.DateRange) (available int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AvailableUnitsTx")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	reserved, err := s.repo.ReservedUnitsTx(ctx, tx, roomType.ID, stay)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reserved units")

		return 0, fmt.Errorf("failed to get reserved units: %w", err)
	}

	return model.Available(roomType.TotalRooms, reserved), nil
}
