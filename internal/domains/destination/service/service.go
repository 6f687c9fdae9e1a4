package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Destination=MockDestinationService

import (
	"context"
	"fmt"

	"voyage/config"
	"voyage/infras/otel"
	"voyage/internal/domains/destination/model"
	"voyage/internal/domains/destination/model/dto"
	"voyage/internal/domains/destination/repository"
	"voyage/shared"
	"voyage/shared/cache"
	"voyage/shared/constant"
	gDto "voyage/shared/dto"
	"voyage/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	CachePrefix = "destination"

	cacheGetDestination    = CachePrefix + ":get"
	cacheGetAllDestination = CachePrefix + ":gets"
)

type Destination interface {
	Create(ctx context.Context, req dto.CreateDestinationRequest) (dto.DestinationResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetDestinationsResponse, error)
	Get(ctx context.Context, id string) (dto.DestinationResponse, error)
	Update(ctx context.Context, req dto.UpdateDestinationRequest, id string) error
}

type serviceImpl struct {
	repo  repository.Destination
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Destination, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Destination {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateDestinationRequest) (res dto.DestinationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	destination := req.ToModel(user)

	if err = s.repo.Insert(ctx, destination); err != nil {
		log.Error().Err(err).Msg("failed to create destination")

		return res, fmt.Errorf("failed to create destination: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, cacheGetAllDestination)

	res.FromModel(destination)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetDestinationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllDestination, req, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for destinations")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count destinations")

		return res, fmt.Errorf("failed to count destinations: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get destinations")

		return res, fmt.Errorf("failed to get destinations: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save destinations to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.DestinationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetDestination, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for destination")

		return res, nil
	}

	destination, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get destination")

		return res, fmt.Errorf("failed to get destination: %w", err)
	}

	if destination.ID == constant.Empty {
		return res, failure.NotFound("destination not found") // nolint:wrapcheck
	}

	res.FromModel(destination)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save destination to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateDestinationRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req == (dto.UpdateDestinationRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if destination exists")

		return fmt.Errorf("failed to check if destination exists: %w", err)
	}

	if !exist {
		return failure.NotFound("destination not found") // nolint:wrapcheck
	}

	if err = s.repo.Update(ctx, shared.TransformFields(req, user), filter); err != nil {
		log.Error().Err(err).Msg("failed to update destination")

		return fmt.Errorf("failed to update destination: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, CachePrefix)

	return nil
}
