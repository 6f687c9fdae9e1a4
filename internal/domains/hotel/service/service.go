package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Hotel=MockHotelService

import (
	"context"
	"fmt"

	"voyage/config"
	"voyage/infras/otel"
	amenityModel "voyage/internal/domains/amenity/model"
	amenityDto "voyage/internal/domains/amenity/model/dto"
	amenityRepo "voyage/internal/domains/amenity/repository"
	destinationModel "voyage/internal/domains/destination/model"
	destinationRepo "voyage/internal/domains/destination/repository"
	"voyage/internal/domains/hotel/model"
	"voyage/internal/domains/hotel/model/dto"
	"voyage/internal/domains/hotel/repository"
	reviewService "voyage/internal/domains/review/service"
	"voyage/shared"
	"voyage/shared/cache"
	"voyage/shared/constant"
	gDto "voyage/shared/dto"
	"voyage/shared/failure"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	CachePrefix = "hotel"

	cacheGetHotel    = CachePrefix + ":get"
	cacheGetAllHotel = CachePrefix + ":gets"
)

type Hotel interface {
	Create(ctx context.Context, req dto.CreateHotelRequest) (dto.HotelResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetHotelsResponse, error)
	Get(ctx context.Context, id string) (dto.HotelResponse, error)
	Update(ctx context.Context, req dto.UpdateHotelRequest, id string) error
	AddImage(ctx context.Context, req dto.AddImageRequest, hotelID string) (dto.ImageResponse, error)
	GetImages(ctx context.Context, hotelID string) ([]dto.ImageResponse, error)
	AttachAmenity(ctx context.Context, req amenityDto.LinkRequest, hotelID string) error
	DetachAmenity(ctx context.Context, hotelID, amenityID string) error
	GetAmenities(ctx context.Context, hotelID string) ([]amenityDto.AmenityResponse, error)
}

type serviceImpl struct {
	repo            repository.Hotel
	destinationRepo destinationRepo.Destination
	amenityRepo     amenityRepo.Amenity
	reviewService   reviewService.Review
	cfg             *config.Config
	cache           cache.RedisCache
	otel            otel.Otel
}

func New(
	repo repository.Hotel,
	destinationRepo destinationRepo.Destination,
	amenityRepo amenityRepo.Amenity,
	reviewService reviewService.Review,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Hotel {
	return &serviceImpl{
		repo:            repo,
		destinationRepo: destinationRepo,
		amenityRepo:     amenityRepo,
		reviewService:   reviewService,
		cfg:             cfg,
		cache:           cache,
		otel:            otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateHotelRequest) (res dto.HotelResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = req.Validate(); err != nil {
		return res, err //nolint:wrapcheck
	}

	exist, err := s.destinationRepo.Exist(ctx, shared.FilterByID(req.DestinationID, destinationModel.FieldID, destinationModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if destination exists")

		return res, fmt.Errorf("failed to check if destination exists: %w", err)
	}

	if !exist {
		return res, failure.NotFound("destination not found") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	hotel := req.ToModel(user)

	if err = s.repo.Insert(ctx, hotel); err != nil {
		log.Error().Err(err).Msg("failed to create hotel")

		return res, fmt.Errorf("failed to create hotel: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, cacheGetAllHotel)

	res.FromModel(hotel)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetHotelsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllHotel, req, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count hotels")

		return res, fmt.Errorf("failed to count hotels: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get hotels")

		return res, fmt.Errorf("failed to get hotels: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save hotels to cache")
		}
	}()

	return res, nil
}

// Get returns the hotel with its images, amenities, starting price and rating.
// Only the hotel row is cached; the derived parts are read fresh.
func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.HotelResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetHotel, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err != nil {
		var hotel model.Hotel

		if hotel, err = s.get(ctx, id); err != nil {
			return res, err
		}

		res.FromModel(hotel)

		cached := res

		go func() {
			c := context.WithoutCancel(ctx)

			if err := s.cache.Save(c, cacheKey, cached, s.cfg.Cache.TTL); err != nil {
				log.Error().Err(err).Msg("failed to save hotel to cache")
			}
		}()
	}

	price, err := s.repo.StartingPrice(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get starting price")

		return res, fmt.Errorf("failed to get starting price: %w", err)
	}

	res.SetStartingPrice(price)

	images, err := s.repo.GetImages(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get hotel images")

		return res, fmt.Errorf("failed to get hotel images: %w", err)
	}

	res.Images = dto.ImagesFromModels(images)

	amenities, err := s.repo.GetAmenities(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get hotel amenities")

		return res, fmt.Errorf("failed to get hotel amenities: %w", err)
	}

	res.Amenities = amenityDto.FromModels(amenities)

	rating, err := s.reviewService.Summary(ctx, id)
	if err != nil {
		return res, fmt.Errorf("failed to get hotel rating: %w", err)
	}

	res.Rating = &rating

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateHotelRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req == (dto.UpdateHotelRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	if err = req.Validate(); err != nil {
		return err //nolint:wrapcheck
	}

	if err = s.ensureExist(ctx, id); err != nil {
		return err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.repo.Update(ctx, shared.TransformFields(req, user), shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update hotel")

		return fmt.Errorf("failed to update hotel: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, CachePrefix)

	return nil
}

// AddImage appends an image. A new primary image demotes the previous one.
func (s *serviceImpl) AddImage(ctx context.Context, req dto.AddImageRequest, hotelID string) (res dto.ImageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AddImage")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.ensureExist(ctx, hotelID); err != nil {
		return res, err
	}

	image := req.ToModel(hotelID)

	err = s.repo.Transaction(ctx, func(tx *sqlx.Tx) error {
		if image.IsPrimary {
			if err := s.repo.ClearPrimaryImageTx(ctx, tx, hotelID); err != nil {
				return err //nolint:wrapcheck
			}
		}

		return s.repo.InsertImageTx(ctx, tx, image) //nolint:wrapcheck
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to add hotel image")

		return res, fmt.Errorf("failed to add hotel image: %w", err)
	}

	res.FromModel(image)

	return res, nil
}

func (s *serviceImpl) GetImages(ctx context.Context, hotelID string) (res []dto.ImageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetImages")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.ensureExist(ctx, hotelID); err != nil {
		return res, err
	}

	images, err := s.repo.GetImages(ctx, hotelID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get hotel images")

		return res, fmt.Errorf("failed to get hotel images: %w", err)
	}

	return dto.ImagesFromModels(images), nil
}

func (s *serviceImpl) AttachAmenity(ctx context.Context, req amenityDto.LinkRequest, hotelID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AttachAmenity")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.ensureExist(ctx, hotelID); err != nil {
		return err
	}

	exist, err := s.amenityRepo.Exist(ctx, shared.FilterByID(req.AmenityID, amenityModel.FieldID, amenityModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if amenity exists")

		return fmt.Errorf("failed to check if amenity exists: %w", err)
	}

	if !exist {
		return failure.NotFound("amenity not found") // nolint:wrapcheck
	}

	link := model.Amenity{HotelID: hotelID, AmenityID: req.AmenityID}

	attached, err := s.repo.ExistAmenity(ctx, link)
	if err != nil {
		log.Error().Err(err).Msg("failed to check hotel amenity")

		return fmt.Errorf("failed to check hotel amenity: %w", err)
	}

	if attached {
		return failure.UniquenessConflict("amenity is already attached to the hotel") // nolint:wrapcheck
	}

	if err = s.repo.AttachAmenity(ctx, link); err != nil {
		if constraint, ok := shared.UniqueViolation(err); ok && constraint == model.ConstraintHotelAmenity {
			return failure.UniquenessConflict("amenity is already attached to the hotel") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to attach hotel amenity")

		return fmt.Errorf("failed to attach hotel amenity: %w", err)
	}

	return nil
}

func (s *serviceImpl) DetachAmenity(ctx context.Context, hotelID, amenityID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DetachAmenity")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	link := model.Amenity{HotelID: hotelID, AmenityID: amenityID}

	attached, err := s.repo.ExistAmenity(ctx, link)
	if err != nil {
		log.Error().Err(err).Msg("failed to check hotel amenity")

		return fmt.Errorf("failed to check hotel amenity: %w", err)
	}

	if !attached {
		return failure.NotFound("amenity is not attached to the hotel") // nolint:wrapcheck
	}

	if err = s.repo.DetachAmenity(ctx, link); err != nil {
		log.Error().Err(err).Msg("failed to detach hotel amenity")

		return fmt.Errorf("failed to detach hotel amenity: %w", err)
	}

	return nil
}

func (s *serviceImpl) GetAmenities(ctx context.Context, hotelID string) (res []amenityDto.AmenityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAmenities")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.ensureExist(ctx, hotelID); err != nil {
		return res, err
	}

	amenities, err := s.repo.GetAmenities(ctx, hotelID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get hotel amenities")

		return res, fmt.Errorf("failed to get hotel amenities: %w", err)
	}

	return amenityDto.FromModels(amenities), nil
}

func (s *serviceImpl) get(ctx context.Context, id string) (model.Hotel, error) {
	hotel, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get hotel")

		return hotel, fmt.Errorf("failed to get hotel: %w", err)
	}

	if hotel.ID == constant.Empty {
		return hotel, failure.NotFound("hotel not found") // nolint:wrapcheck
	}

	return hotel, nil
}

func (s *serviceImpl) ensureExist(ctx context.Context, id string) error {
	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if hotel exists")

		return fmt.Errorf("failed to check if hotel exists: %w", err)
	}

	if !exist {
		return failure.NotFound("hotel not found") // nolint:wrapcheck
	}

	return nil
}
