package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Cascade=MockCascadeService

import (
	"context"
	"fmt"

	"voyage/infras/otel"
	bookingService "voyage/internal/domains/booking/service"
	"voyage/internal/domains/cascade/model"
	"voyage/internal/domains/cascade/model/dto"
	"voyage/internal/domains/cascade/repository"
	destinationService "voyage/internal/domains/destination/service"
	hotelService "voyage/internal/domains/hotel/service"
	paymentService "voyage/internal/domains/payment/service"
	reviewService "voyage/internal/domains/review/service"
	roomTypeService "voyage/internal/domains/roomtype/service"
	"voyage/shared"
	"voyage/shared/cache"
	"voyage/shared/constant"
	"voyage/shared/failure"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

// cachePrefixes covers every entity a cascade can remove.
var cachePrefixes = []string{
	destinationService.CachePrefix,
	hotelService.CachePrefix,
	roomTypeService.CachePrefix,
	bookingService.CachePrefix,
	paymentService.CachePrefix,
	reviewService.CachePrefix,
}

// Cascade deletes an owner together with everything it owns, in one transaction.
type Cascade interface {
	DeleteDestination(ctx context.Context, id string) (dto.DeleteResponse, error)
	DeleteHotel(ctx context.Context, id string) (dto.DeleteResponse, error)
	DeleteRoomType(ctx context.Context, id string) (dto.DeleteResponse, error)
}

type serviceImpl struct {
	repo  repository.Cascade
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Cascade, cache cache.RedisCache, otel otel.Otel) Cascade {
	return &serviceImpl{
		repo:  repo,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) DeleteDestination(ctx context.Context, id string) (res dto.DeleteResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteDestination")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.delete(ctx, model.RootDestination, id)
}

func (s *serviceImpl) DeleteHotel(ctx context.Context, id string) (res dto.DeleteResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteHotel")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.delete(ctx, model.RootHotel, id)
}

func (s *serviceImpl) DeleteRoomType(ctx context.Context, id string) (res dto.DeleteResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteRoomType")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.delete(ctx, model.RootRoomType, id)
}

// delete walks the tree leaves first. Any failing level rolls the whole tree back
// and is reported as a *model.LevelError.
func (s *serviceImpl) delete(ctx context.Context, root, id string) (res dto.DeleteResponse, err error) {
	order, ok := model.Levels(root)
	if !ok {
		return res, fmt.Errorf("unknown cascade root %q", root)
	}

	var report model.Report

	err = s.repo.Transaction(ctx, func(tx *sqlx.Tx) error {
		report = model.Report{Root: root, ID: id}

		found, err := s.repo.LockTx(ctx, tx, root, id)
		if err != nil {
			return &model.LevelError{Root: root, Level: root, Err: err}
		}

		if !found {
			return failure.NotFound(root + " not found") // nolint:wrapcheck
		}

		for _, level := range order {
			rows, err := s.repo.DeleteTx(ctx, tx, root, level, id)
			if err != nil {
				return &model.LevelError{Root: root, Level: level, Err: err}
			}

			report.Add(level, rows)
		}

		return nil
	})
	if err != nil {
		if failure.IsFailure(err) {
			return res, err //nolint:wrapcheck
		}

		log.Error().Err(err).Str("root", root).Str("id", id).Msg("cascade delete failed")

		return res, fmt.Errorf("failed to delete %s: %w", root, err)
	}

	for _, prefix := range cachePrefixes {
		shared.InvalidateCaches(ctx, s.cache, prefix)
	}

	log.Info().Str("root", root).Str("id", id).Interface("deleted", report.Deleted).Msg("cascade delete committed")

	res.FromModel(report)

	return res, nil
}
