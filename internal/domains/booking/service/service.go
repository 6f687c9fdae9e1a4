package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Booking=MockBookingService

import (
	"context"
	"errors"
	"fmt"

	"voyage/config"
	"voyage/infras/kafka"
	"voyage/infras/otel"
	"voyage/internal/domains/booking/model"
	"voyage/internal/domains/booking/model/dto"
	"voyage/internal/domains/booking/pricing"
	"voyage/internal/domains/booking/reference"
	"voyage/internal/domains/booking/repository"
	inventoryModel "voyage/internal/domains/inventory/model"
	inventoryRepo "voyage/internal/domains/inventory/repository"
	inventoryService "voyage/internal/domains/inventory/service"
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
	CachePrefix = "booking"

	cacheGetBooking    = CachePrefix + ":get"
	cacheGetAllBooking = CachePrefix + ":gets"

	defaultReferenceAttempts = 5
)

var errReferenceTaken = errors.New("booking reference already taken")

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	Confirm(ctx context.Context, id string) (dto.BookingResponse, error)
	Cancel(ctx context.Context, id string) (dto.BookingResponse, error)
	Complete(ctx context.Context, id string) (dto.BookingResponse, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	GetByReference(ctx context.Context, bookingReference string) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	GetMine(ctx context.Context, req gDto.QueryParams) (dto.GetBookingsResponse, error)
}

type serviceImpl struct {
	repo             repository.Booking
	inventoryRepo    inventoryRepo.Inventory
	inventoryService inventoryService.Inventory
	references       reference.Generator
	kafka            kafka.Client
	cfg              *config.Config
	cache            cache.RedisCache
	otel             otel.Otel
}

func New(
	repo repository.Booking,
	inventoryRepo inventoryRepo.Inventory,
	inventoryService inventoryService.Inventory,
	references reference.Generator,
	kafka kafka.Client,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:             repo,
		inventoryRepo:    inventoryRepo,
		inventoryService: inventoryService,
		references:       references,
		kafka:            kafka,
		cfg:              cfg,
		cache:            cache,
		otel:             otel,
	}
}

// Create reserves rooms for a stay. The room type row stays locked from the availability
// check until the booking is committed, so concurrent requests for the same room type
// can never oversell it. A reference collision restarts the whole transaction.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	stay, err := req.Stay()
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	if stay.CheckIn.Before(timezone.Today()) {
		return res, failure.BadRequestFromString("check_in cannot be in the past") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	attempts := s.referenceAttempts()

	var booking model.Booking

	for attempt := 1; ; attempt++ {
		booking, err = s.create(ctx, req, stay, user)
		if !errors.Is(err, errReferenceTaken) {
			break
		}

		log.Warn().Int("attempt", attempt).Msg("booking reference collision, retrying")

		if attempt >= attempts {
			return res, failure.UniquenessConflict("could not allocate a unique booking reference") // nolint:wrapcheck
		}
	}

	if err != nil {
		if failure.IsFailure(err) {
			return res, err //nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	s.publish(ctx, model.EventCreated, booking)
	shared.InvalidateCaches(ctx, s.cache, CachePrefix)

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) create(ctx context.Context, req dto.CreateBookingRequest, stay inventoryModel.DateRange, user string) (booking model.Booking, err error) {
	bookingReference, err := s.references.Generate()
	if err != nil {
		return booking, fmt.Errorf("failed to generate booking reference: %w", err)
	}

	err = s.inventoryRepo.Transaction(ctx, func(tx *sqlx.Tx) error {
		roomType, err := s.inventoryRepo.LockRoomTypeTx(ctx, tx, req.RoomTypeID)
		if err != nil {
			return err //nolint:wrapcheck
		}

		if roomType.ID == constant.Empty {
			return failure.NotFound("room type not found") // nolint:wrapcheck
		}

		if capacity := roomType.Capacity(req.NumRooms); req.NumGuests > capacity {
			return failure.BadRequestFromString(fmt.Sprintf("%d rooms of this type hold at most %d guests", req.NumRooms, capacity)) // nolint:wrapcheck
		}

		available, err := s.inventoryService.AvailableUnitsTx(ctx, tx, roomType, stay)
		if err != nil {
			return err //nolint:wrapcheck
		}

		if available < req.NumRooms {
			return failure.CapacityExceeded(fmt.Sprintf("only %d rooms available for %s", available, stay)) // nolint:wrapcheck
		}

		quote, err := pricing.Calculate(roomType.PricePerNight, stay.Nights(), req.NumRooms, s.cfg.Booking.TaxRate)
		if err != nil {
			return err //nolint:wrapcheck
		}

		taken, err := s.repo.ExistTx(ctx, tx, shared.FilterByField(model.FieldBookingReference, bookingReference, model.TableName))
		if err != nil {
			return err //nolint:wrapcheck
		}

		if taken {
			return errReferenceTaken
		}

		booking = req.ToModel(user, bookingReference, stay, quote)

		if err := s.repo.InsertTx(ctx, tx, booking); err != nil {
			if constraint, ok := shared.UniqueViolation(err); ok && constraint == model.ConstraintBookingReference {
				return errReferenceTaken
			}

			return err //nolint:wrapcheck
		}

		return nil
	})

	return booking, err //nolint:wrapcheck
}

func (s *serviceImpl) Confirm(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Confirm")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.transition(ctx, id, model.StatusConfirmed, model.EventConfirmed, nil, nil)
}

// Cancel releases the booking's rooms as soon as the transaction commits.
func (s *serviceImpl) Cancel(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	owner := func(booking model.Booking) error {
		if booking.UserID != user && !shared.IsAdmin(ctx) {
			return failure.Forbidden("only the guest or an administrator can cancel this booking") // nolint:wrapcheck
		}

		return nil
	}

	return s.transition(ctx, id, model.StatusCancelled, model.EventCancelled, owner, nil)
}

// Complete closes a confirmed stay once its check-out day has been reached.
func (s *serviceImpl) Complete(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Complete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	stayOver := func(booking model.Booking) error {
		if timezone.Today().Before(booking.CheckOut) {
			return failure.StayNotFinished(fmt.Sprintf("booking %s checks out on %s", booking.BookingReference, booking.CheckOut.Format(constant.DayFormat))) // nolint:wrapcheck
		}

		return nil
	}

	return s.transition(ctx, id, model.StatusCompleted, model.EventCompleted, nil, stayOver)
}

// transition moves a locked booking to next. access is checked before the current status,
// guard after it.
func (s *serviceImpl) transition(
	ctx context.Context,
	id, next, event string,
	access, guard func(model.Booking) error,
) (res dto.BookingResponse, err error) {
	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	var booking model.Booking

	err = s.repo.Transaction(ctx, func(tx *sqlx.Tx) error {
		current, err := s.repo.GetForUpdateTx(ctx, tx, filter)
		if err != nil {
			return err //nolint:wrapcheck
		}

		if current.ID == constant.Empty {
			return failure.NotFound("booking not found") // nolint:wrapcheck
		}

		if access != nil {
			if err := access(current); err != nil {
				return err
			}
		}

		if !current.CanTransitionTo(next) {
			return failure.InvalidTransition(fmt.Sprintf("booking %s cannot move from %s to %s", current.BookingReference, current.Status, next)) // nolint:wrapcheck
		}

		if guard != nil {
			if err := guard(current); err != nil {
				return err
			}
		}

		now := timezone.Now()

		err = s.repo.UpdateTx(ctx, tx, map[string]any{
			model.FieldStatus:        next,
			constant.FieldModifiedAt: now,
			constant.FieldModifiedBy: user,
		}, filter)
		if err != nil {
			return err //nolint:wrapcheck
		}

		current.Status = next
		current.ModifiedAt = now
		current.ModifiedBy = user
		booking = current

		return nil
	})
	if err != nil {
		if failure.IsFailure(err) {
			return res, err //nolint:wrapcheck
		}

		log.Error().Err(err).Str("status", next).Msg("failed to update booking status")

		return res, fmt.Errorf("failed to update booking status: %w", err)
	}

	s.publish(ctx, event, booking)
	shared.InvalidateCaches(ctx, s.cache, CachePrefix)

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res, err = s.getBy(ctx, shared.BuildCacheKey(cacheGetBooking, id), shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		return res, err
	}

	return res, s.authorize(ctx, res)
}

func (s *serviceImpl) GetByReference(ctx context.Context, bookingReference string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByReference")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !reference.Valid(bookingReference) {
		return res, failure.BadRequestFromString(fmt.Sprintf("invalid booking reference %q", bookingReference)) // nolint:wrapcheck
	}

	res, err = s.getBy(ctx,
		shared.BuildCacheKey(cacheGetBooking, model.FieldBookingReference, bookingReference),
		shared.FilterByField(model.FieldBookingReference, bookingReference, model.TableName),
	)
	if err != nil {
		return res, err
	}

	return res, s.authorize(ctx, res)
}

func (s *serviceImpl) getBy(ctx context.Context, cacheKey string, filter gDto.FilterGroup) (res dto.BookingResponse, err error) {
	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	booking, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

// authorize hides other guests' bookings from non-administrators.
func (s *serviceImpl) authorize(ctx context.Context, res dto.BookingResponse) error {
	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if res.UserID != user && !shared.IsAdmin(ctx) {
		return failure.Forbidden("booking belongs to another guest") // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetMine(ctx context.Context, req gDto.QueryParams) (dto.GetBookingsResponse, error) {
	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	return s.GetAll(ctx, req, shared.FilterByField(model.FieldUserID, user, model.TableName))
}

// publish emits a lifecycle event after commit. Delivery failures are logged and never undo the change.
func (s *serviceImpl) publish(ctx context.Context, eventType string, booking model.Booking) {
	message := kafka.Message{
		Key:   booking.ID,
		Value: booking.ToEvent(eventType, timezone.Now()),
	}

	if err := s.kafka.SendMessages(ctx, s.cfg.Kafka.Topics.Booking, message); err != nil {
		log.Error().Err(err).Str("event", eventType).Str("booking_id", booking.ID).Msg("failed to publish booking event")
	}
}

func (s *serviceImpl) referenceAttempts() int {
	if s.cfg.Booking.ReferenceMaxAttempts > 0 {
		return s.cfg.Booking.ReferenceMaxAttempts
	}

	return defaultReferenceAttempts
}
