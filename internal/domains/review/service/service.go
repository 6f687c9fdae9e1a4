package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Review=MockReviewService

import (
	"context"
	"fmt"

	"voyage/config"
	"voyage/infras/otel"
	bookingModel "voyage/internal/domains/booking/model"
	bookingRepo "voyage/internal/domains/booking/repository"
	hotelModel "voyage/internal/domains/hotel/model"
	hotelRepo "voyage/internal/domains/hotel/repository"
	"voyage/internal/domains/review/model"
	"voyage/internal/domains/review/model/dto"
	"voyage/internal/domains/review/repository"
	roomTypeModel "voyage/internal/domains/roomtype/model"
	roomTypeRepo "voyage/internal/domains/roomtype/repository"
	"voyage/shared"
	"voyage/shared/cache"
	"voyage/shared/constant"
	gDto "voyage/shared/dto"
	"voyage/shared/failure"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	CachePrefix = "review"

	cacheGetReview    = CachePrefix + ":get"
	cacheGetAllReview = CachePrefix + ":gets"
	cacheSummary      = CachePrefix + ":summary"
)

type Review interface {
	Create(ctx context.Context, req dto.CreateReviewRequest) (dto.ReviewResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetReviewsResponse, error)
	Get(ctx context.Context, id string) (dto.ReviewResponse, error)
	Update(ctx context.Context, req dto.UpdateReviewRequest, id string) error
	Delete(ctx context.Context, id string) error
	Vote(ctx context.Context, req dto.VoteRequest, id string) error
	AddPhoto(ctx context.Context, req dto.AddPhotoRequest, id string) (dto.PhotoResponse, error)
	GetPhotos(ctx context.Context, id string) ([]dto.PhotoResponse, error)
	Summary(ctx context.Context, hotelID string) (dto.SummaryResponse, error)
}

type serviceImpl struct {
	repo         repository.Review
	hotelRepo    hotelRepo.Hotel
	bookingRepo  bookingRepo.Booking
	roomTypeRepo roomTypeRepo.RoomType
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(
	repo repository.Review,
	hotelRepo hotelRepo.Hotel,
	bookingRepo bookingRepo.Booking,
	roomTypeRepo roomTypeRepo.RoomType,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Review {
	return &serviceImpl{
		repo:         repo,
		hotelRepo:    hotelRepo,
		bookingRepo:  bookingRepo,
		roomTypeRepo: roomTypeRepo,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

// Create stores a review. A review tied to a booking must come from the guest who made it,
// for a room of the reviewed hotel, and only once per booking.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateReviewRequest) (res dto.ReviewResponse, err error) {
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

	if req.BookingID != nil {
		if err = s.checkBooking(ctx, *req.BookingID, req.HotelID, user); err != nil {
			return res, err
		}
	}

	review := req.ToModel(user)

	if err = s.repo.Insert(ctx, review); err != nil {
		if constraint, ok := shared.UniqueViolation(err); ok && constraint == model.ConstraintBookingID {
			return res, failure.UniquenessConflict("booking has already been reviewed") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create review")

		return res, fmt.Errorf("failed to create review: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, CachePrefix)

	res.FromModel(review)

	return res, nil
}

func (s *serviceImpl) checkBooking(ctx context.Context, bookingID, hotelID, user string) error {
	booking, err := s.bookingRepo.Get(ctx, shared.FilterByID(bookingID, bookingModel.FieldID, bookingModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if booking.UserID != user {
		return failure.BadRequestFromString("booking belongs to another guest") // nolint:wrapcheck
	}

	roomType, err := s.roomTypeRepo.Get(ctx, shared.FilterByID(booking.RoomTypeID, roomTypeModel.FieldID, roomTypeModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room type")

		return fmt.Errorf("failed to get room type: %w", err)
	}

	if roomType.HotelID != hotelID {
		return failure.BadRequestFromString("booking is not for this hotel") // nolint:wrapcheck
	}

	reviewed, err := s.repo.Exist(ctx, shared.FilterByField(model.FieldBookingID, bookingID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check booking review")

		return fmt.Errorf("failed to check booking review: %w", err)
	}

	if reviewed {
		return failure.UniquenessConflict("booking has already been reviewed") // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetReviewsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllReview, req, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count reviews")

		return res, fmt.Errorf("failed to count reviews: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reviews")

		return res, fmt.Errorf("failed to get reviews: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reviews to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ReviewResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetReview, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	review, err := s.get(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(review)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save review to cache")
		}
	}()

	return res, nil
}

// Update edits ratings and text. Only the author or an administrator may edit.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateReviewRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req == (dto.UpdateReviewRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	review, err := s.get(ctx, id)
	if err != nil {
		return err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if review.UserID != user && !shared.IsAdmin(ctx) {
		return failure.Forbidden("only the author can edit this review") // nolint:wrapcheck
	}

	if err = s.repo.Update(ctx, shared.TransformFields(req, user), shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update review")

		return fmt.Errorf("failed to update review: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, CachePrefix)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	review, err := s.get(ctx, id)
	if err != nil {
		return err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if review.UserID != user && !shared.IsAdmin(ctx) {
		return failure.Forbidden("only the author can delete this review") // nolint:wrapcheck
	}

	err = s.repo.Transaction(ctx, func(tx *sqlx.Tx) error {
		if err := s.repo.DeleteVotesTx(ctx, tx, id); err != nil {
			return err //nolint:wrapcheck
		}

		if err := s.repo.DeletePhotosTx(ctx, tx, id); err != nil {
			return err //nolint:wrapcheck
		}

		return s.repo.DeleteTx(ctx, tx, shared.FilterByID(id, model.FieldID, model.TableName)) //nolint:wrapcheck
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to delete review")

		return fmt.Errorf("failed to delete review: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, CachePrefix)

	return nil
}

// Vote records one helpfulness vote per user and bumps the matching counter in the same transaction.
func (s *serviceImpl) Vote(ctx context.Context, req dto.VoteRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Vote")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, err = s.get(ctx, id); err != nil {
		return err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	vote := req.ToModel(id, user)

	err = s.repo.Transaction(ctx, func(tx *sqlx.Tx) error {
		if err := s.repo.InsertVoteTx(ctx, tx, vote); err != nil {
			return err //nolint:wrapcheck
		}

		return s.repo.IncrementCounterTx(ctx, tx, id, vote.CounterField()) //nolint:wrapcheck
	})
	if err != nil {
		if constraint, ok := shared.UniqueViolation(err); ok && constraint == model.ConstraintVote {
			return failure.UniquenessConflict("review already voted by this user") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to vote review")

		return fmt.Errorf("failed to vote review: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, CachePrefix)

	return nil
}

// AddPhoto attaches an image URL to a review. Only the author or an administrator may add one.
func (s *serviceImpl) AddPhoto(ctx context.Context, req dto.AddPhotoRequest, id string) (res dto.PhotoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AddPhoto")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	review, err := s.get(ctx, id)
	if err != nil {
		return res, err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if review.UserID != user && !shared.IsAdmin(ctx) {
		return res, failure.Forbidden("only the author can add photos to this review") // nolint:wrapcheck
	}

	photo := req.ToModel(id)

	if err = s.repo.InsertPhoto(ctx, photo); err != nil {
		log.Error().Err(err).Msg("failed to add review photo")

		return res, fmt.Errorf("failed to add review photo: %w", err)
	}

	res.FromModel(photo)

	return res, nil
}

func (s *serviceImpl) GetPhotos(ctx context.Context, id string) (res []dto.PhotoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetPhotos")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, err = s.get(ctx, id); err != nil {
		return res, err
	}

	photos, err := s.repo.GetPhotos(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get review photos")

		return res, fmt.Errorf("failed to get review photos: %w", err)
	}

	return dto.PhotosFromModels(photos), nil
}

// Summary averages the hotel's ratings. The result is cached until the next review write.
func (s *serviceImpl) Summary(ctx context.Context, hotelID string) (res dto.SummaryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Summary")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheSummary, hotelID)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	exist, err := s.hotelRepo.Exist(ctx, shared.FilterByID(hotelID, hotelModel.FieldID, hotelModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if hotel exists")

		return res, fmt.Errorf("failed to check if hotel exists: %w", err)
	}

	if !exist {
		return res, failure.NotFound("hotel not found") // nolint:wrapcheck
	}

	totals, err := s.repo.Totals(ctx, hotelID)
	if err != nil {
		log.Error().Err(err).Msg("failed to sum reviews")

		return res, fmt.Errorf("failed to sum reviews: %w", err)
	}

	res.FromModel(hotelID, totals.Summary())

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save review summary to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) get(ctx context.Context, id string) (model.Review, error) {
	review, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get review")

		return review, fmt.Errorf("failed to get review: %w", err)
	}

	if review.ID == constant.Empty {
		return review, failure.NotFound("review not found") // nolint:wrapcheck
	}

	return review, nil
}
