package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=RoomType=MockRoomTypeService

import (
	"context"
	"fmt"

	"voyage/config"
	"voyage/infras/otel"
	amenityModel "voyage/internal/domains/amenity/model"
	amenityDto "voyage/internal/domains/amenity/model/dto"
	amenityRepo "voyage/internal/domains/amenity/repository"
	hotelModel "voyage/internal/domains/hotel/model"
	hotelRepo "voyage/internal/domains/hotel/repository"
	inventoryRepo "voyage/internal/domains/inventory/repository"
	"voyage/internal/domains/roomtype/model"
	"voyage/internal/domains/roomtype/model/dto"
	"voyage/internal/domains/roomtype/repository"
	"voyage/shared"
	"voyage/shared/cache"
	"voyage/shared/constant"
	gDto "voyage/shared/dto"
	"voyage/shared/failure"
	"voyage/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	CachePrefix = "room_type"

	cacheGetRoomType    = CachePrefix + ":get"
	cacheGetAllRoomType = CachePrefix + ":gets"
)

type RoomType interface {
	Create(ctx context.Context, req dto.CreateRoomTypeRequest) (dto.RoomTypeResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetRoomTypesResponse, error)
	Get(ctx context.Context, id string) (dto.RoomTypeResponse, error)
	Update(ctx context.Context, req dto.UpdateRoomTypeRequest, id string) error
	AttachAmenity(ctx context.Context, req amenityDto.LinkRequest, roomTypeID string) error
	DetachAmenity(ctx context.Context, roomTypeID, amenityID string) error
}

type serviceImpl struct {
	repo          repository.RoomType
	hotelRepo     hotelRepo.Hotel
	amenityRepo   amenityRepo.Amenity
	inventoryRepo inventoryRepo.Inventory
	cfg           *config.Config
	cache         cache.RedisCache
	otel          otel.Otel
}

func New(
	repo repository.RoomType,
	hotelRepo hotelRepo.Hotel,
	amenityRepo amenityRepo.Amenity,
	inventoryRepo inventoryRepo.Inventory,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) RoomType {
	return &serviceImpl{
		repo:          repo,
		hotelRepo:     hotelRepo,
		amenityRepo:   amenityRepo,
		inventoryRepo: inventoryRepo,
		cfg:           cfg,
		cache:         cache,
		otel:          otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRoomTypeRequest) (res dto.RoomTypeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	exist, err := s.hotelRepo.Exist(ctx, shared.FilterByID(req.HotelID, hotelModel.FieldID, hotelModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if hotel exists")

		return res, fmt.Errorf("failed to check if hotel exists: %w", err)
	}

	if !exist {
		return res, failure.NotFound("hotel not found") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	roomType := req.ToModel(user)

	if err = s.repo.Insert(ctx, roomType); err != nil {
		log.Error().Err(err).Msg("failed to create room type")

		return res, fmt.Errorf("failed to create room type: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, cacheGetAllRoomType)

	res.FromModel(roomType)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetRoomTypesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllRoomType, req, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count room types")

		return res, fmt.Errorf("failed to count room types: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get room types")

		return res, fmt.Errorf("failed to get room types: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save room types to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.RoomTypeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetRoomType, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	roomType, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room type")

		return res, fmt.Errorf("failed to get room type: %w", err)
	}

	if roomType.ID == constant.Empty {
		return res, failure.NotFound("room type not found") // nolint:wrapcheck
	}

	amenities, err := s.repo.GetAmenities(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get room type amenities")

		return res, fmt.Errorf("failed to get room type amenities: %w", err)
	}

	res.FromModel(roomType)
	res.Amenities = amenityDto.FromModels(amenities)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save room type to cache")
		}
	}()

	return res, nil
}

// Update changes a room type. Lowering total_rooms locks the inventory row and is refused
// when some current or future night already holds more rooms than the new total.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateRoomTypeRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req == (dto.UpdateRoomTypeRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	fields := shared.TransformFields(req, user)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	err = s.inventoryRepo.Transaction(ctx, func(tx *sqlx.Tx) error {
		roomType, err := s.inventoryRepo.LockRoomTypeTx(ctx, tx, id)
		if err != nil {
			return err //nolint:wrapcheck
		}

		if roomType.ID == constant.Empty {
			return failure.NotFound("room type not found") // nolint:wrapcheck
		}

		if req.TotalRooms != nil && *req.TotalRooms < roomType.TotalRooms {
			peak, err := s.inventoryRepo.PeakReservedTx(ctx, tx, id, timezone.Today())
			if err != nil {
				return err //nolint:wrapcheck
			}

			if *req.TotalRooms < peak {
				return failure.CapacityExceeded(fmt.Sprintf("total_rooms %d is below the %d rooms already reserved", *req.TotalRooms, peak)) // nolint:wrapcheck
			}
		}

		return s.repo.UpdateTx(ctx, tx, fields, filter) //nolint:wrapcheck
	})
	if err != nil {
		if failure.IsFailure(err) {
			return err //nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to update room type")

		return fmt.Errorf("failed to update room type: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, CachePrefix)

	return nil
}

func (s *serviceImpl) AttachAmenity(ctx context.Context, req amenityDto.LinkRequest, roomTypeID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AttachAmenity")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	exist, err := s.repo.Exist(ctx, shared.FilterByID(roomTypeID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if room type exists")

		return fmt.Errorf("failed to check if room type exists: %w", err)
	}

	if !exist {
		return failure.NotFound("room type not found") // nolint:wrapcheck
	}

	exist, err = s.amenityRepo.Exist(ctx, shared.FilterByID(req.AmenityID, amenityModel.FieldID, amenityModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if amenity exists")

		return fmt.Errorf("failed to check if amenity exists: %w", err)
	}

	if !exist {
		return failure.NotFound("amenity not found") // nolint:wrapcheck
	}

	link := model.Amenity{RoomTypeID: roomTypeID, AmenityID: req.AmenityID}

	attached, err := s.repo.ExistAmenity(ctx, link)
	if err != nil {
		log.Error().Err(err).Msg("failed to check room type amenity")

		return fmt.Errorf("failed to check room type amenity: %w", err)
	}

	if attached {
		return failure.UniquenessConflict("amenity is already attached to the room type") // nolint:wrapcheck
	}

	if err = s.repo.AttachAmenity(ctx, link); err != nil {
		if constraint, ok := shared.UniqueViolation(err); ok && constraint == model.ConstraintRoomAmenity {
			return failure.UniquenessConflict("amenity is already attached to the room type") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to attach room type amenity")

		return fmt.Errorf("failed to attach room type amenity: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, cacheGetRoomType)

	return nil
}

func (s *serviceImpl) DetachAmenity(ctx context.Context, roomTypeID, amenityID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DetachAmenity")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	link := model.Amenity{RoomTypeID: roomTypeID, AmenityID: amenityID}

	attached, err := s.repo.ExistAmenity(ctx, link)
	if err != nil {
		log.Error().Err(err).Msg("failed to check room type amenity")

		return fmt.Errorf("failed to check room type amenity: %w", err)
	}

	if !attached {
		return failure.NotFound("amenity is not attached to the room type") // nolint:wrapcheck
	}

	if err = s.repo.DetachAmenity(ctx, link); err != nil {
		log.Error().Err(err).Msg("failed to detach room type amenity")

		return fmt.Errorf("failed to detach room type amenity: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, cacheGetRoomType)

	return nil
}
