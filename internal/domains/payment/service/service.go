package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Payment=MockPaymentService

import (
	"context"
	"fmt"
	"time"

	"voyage/config"
	"voyage/infras/kafka"
	"voyage/infras/otel"
	bookingModel "voyage/internal/domains/booking/model"
	bookingRepo "voyage/internal/domains/booking/repository"
	bookingService "voyage/internal/domains/booking/service"
	"voyage/internal/domains/payment/model"
	"voyage/internal/domains/payment/model/dto"
	"voyage/internal/domains/payment/repository"
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
	CachePrefix = "payment"

	cacheGetPayment    = CachePrefix + ":get"
	cacheGetAllPayment = CachePrefix + ":gets"
)

type Payment interface {
	Create(ctx context.Context, req dto.CreatePaymentRequest) (dto.PaymentResponse, error)
	Complete(ctx context.Context, id string) (dto.PaymentResponse, error)
	Fail(ctx context.Context, id string) (dto.PaymentResponse, error)
	Refund(ctx context.Context, id string) (dto.PaymentResponse, error)
	Get(ctx context.Context, id string) (dto.PaymentResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetPaymentsResponse, error)
}

type serviceImpl struct {
	repo        repository.Payment
	bookingRepo bookingRepo.Booking
	kafka       kafka.Client
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
}

func New(
	repo repository.Payment,
	bookingRepo bookingRepo.Booking,
	kafka kafka.Client,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Payment {
	return &serviceImpl{
		repo:        repo,
		bookingRepo: bookingRepo,
		kafka:       kafka,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
	}
}

// Create records a pending payment for an active booking. A booking has at most one payment
// and gateway transaction ids are never reused.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreatePaymentRequest) (res dto.PaymentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, err := s.bookingRepo.Get(ctx, shared.FilterByID(req.BookingID, bookingModel.FieldID, bookingModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if booking.UserID != user && !shared.IsAdmin(ctx) {
		return res, failure.Forbidden("booking belongs to another guest") // nolint:wrapcheck
	}

	if !booking.IsActive() {
		return res, failure.BadRequestFromString(fmt.Sprintf("booking %s is %s and cannot be paid", booking.BookingReference, booking.Status)) // nolint:wrapcheck
	}

	for _, unique := range []struct {
		field, value, message string
	}{
		{field: model.FieldBookingID, value: req.BookingID, message: "booking already has a payment"},
		{field: model.FieldTransactionID, value: req.TransactionID, message: "transaction id already used"},
	} {
		taken, err := s.repo.Exist(ctx, shared.FilterByField(unique.field, unique.value, model.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to check payment uniqueness")

			return res, fmt.Errorf("failed to check payment uniqueness: %w", err)
		}

		if taken {
			return res, failure.UniquenessConflict(unique.message) // nolint:wrapcheck
		}
	}

	payment := req.ToModel(user, booking.TotalPrice)

	if err = s.repo.Insert(ctx, payment); err != nil {
		if constraint, ok := shared.UniqueViolation(err); ok {
			return res, failure.UniquenessConflict(uniqueMessage(constraint)) // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create payment")

		return res, fmt.Errorf("failed to create payment: %w", err)
	}

	s.publish(ctx, s.cfg.Kafka.Topics.Payment, payment.ID, payment.ToEvent(model.EventCreated, timezone.Now()))
	shared.InvalidateCaches(ctx, s.cache, CachePrefix)

	res.FromModel(payment)

	return res, nil
}

func uniqueMessage(constraint string) string {
	if constraint == model.ConstraintBookingID {
		return "booking already has a payment"
	}

	return "transaction id already used"
}

// Complete settles a pending payment and confirms its booking when still pending,
// both in one transaction.
func (s *serviceImpl) Complete(ctx context.Context, id string) (res dto.PaymentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Complete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	var confirmed *bookingModel.Booking

	payment, err := s.transition(ctx, id, model.StatusCompleted, func(tx *sqlx.Tx, payment *model.Payment, now time.Time) error {
		filter := shared.FilterByID(payment.BookingID, bookingModel.FieldID, bookingModel.TableName)

		booking, err := s.bookingRepo.GetForUpdateTx(ctx, tx, filter)
		if err != nil {
			return err //nolint:wrapcheck
		}

		if !booking.IsActive() {
			return failure.InvalidTransition(fmt.Sprintf("booking %s is %s", booking.BookingReference, booking.Status)) // nolint:wrapcheck
		}

		if booking.Status == bookingModel.StatusPending {
			err = s.bookingRepo.UpdateTx(ctx, tx, map[string]any{
				bookingModel.FieldStatus: bookingModel.StatusConfirmed,
				constant.FieldModifiedAt: now,
				constant.FieldModifiedBy: payment.ModifiedBy,
			}, filter)
			if err != nil {
				return err //nolint:wrapcheck
			}

			booking.Status = bookingModel.StatusConfirmed
			booking.ModifiedAt = now
			booking.ModifiedBy = payment.ModifiedBy
			confirmed = &booking
		}

		payment.CompletedAt = &now

		return nil
	})
	if err != nil {
		return res, err
	}

	s.publish(ctx, s.cfg.Kafka.Topics.Payment, payment.ID, payment.ToEvent(model.EventCompleted, timezone.Now()))

	if confirmed != nil {
		s.publish(ctx, s.cfg.Kafka.Topics.Booking, confirmed.ID, confirmed.ToEvent(bookingModel.EventConfirmed, timezone.Now()))
		shared.InvalidateCaches(ctx, s.cache, bookingService.CachePrefix)
	}

	res.FromModel(payment)

	return res, nil
}

func (s *serviceImpl) Fail(ctx context.Context, id string) (res dto.PaymentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Fail")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	payment, err := s.transition(ctx, id, model.StatusFailed, nil)
	if err != nil {
		return res, err
	}

	s.publish(ctx, s.cfg.Kafka.Topics.Payment, payment.ID, payment.ToEvent(model.EventFailed, timezone.Now()))

	res.FromModel(payment)

	return res, nil
}

func (s *serviceImpl) Refund(ctx context.Context, id string) (res dto.PaymentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Refund")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	payment, err := s.transition(ctx, id, model.StatusRefunded, nil)
	if err != nil {
		return res, err
	}

	s.publish(ctx, s.cfg.Kafka.Topics.Payment, payment.ID, payment.ToEvent(model.EventRefunded, timezone.Now()))

	res.FromModel(payment)

	return res, nil
}

// transition locks the payment, checks the move to next and lets apply add work to the same
// transaction before the new status is written.
func (s *serviceImpl) transition(
	ctx context.Context,
	id, next string,
	apply func(tx *sqlx.Tx, payment *model.Payment, now time.Time) error,
) (payment model.Payment, err error) {
	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	err = s.repo.Transaction(ctx, func(tx *sqlx.Tx) error {
		current, err := s.repo.GetForUpdateTx(ctx, tx, filter)
		if err != nil {
			return err //nolint:wrapcheck
		}

		if current.ID == constant.Empty {
			return failure.NotFound("payment not found") // nolint:wrapcheck
		}

		if !current.CanTransitionTo(next) {
			return failure.InvalidTransition(fmt.Sprintf("payment cannot move from %s to %s", current.Status, next)) // nolint:wrapcheck
		}

		now := timezone.Now()
		current.Status = next
		current.ModifiedAt = now
		current.ModifiedBy = user

		if apply != nil {
			if err := apply(tx, &current, now); err != nil {
				return err
			}
		}

		fields := map[string]any{
			model.FieldStatus:        current.Status,
			constant.FieldModifiedAt: now,
			constant.FieldModifiedBy: user,
		}

		if current.CompletedAt != nil {
			fields[model.FieldCompletedAt] = *current.CompletedAt
		}

		if err := s.repo.UpdateTx(ctx, tx, fields, filter); err != nil {
			return err //nolint:wrapcheck
		}

		payment = current

		return nil
	})
	if err != nil {
		if failure.IsFailure(err) {
			return payment, err //nolint:wrapcheck
		}

		log.Error().Err(err).Str("status", next).Msg("failed to update payment status")

		return payment, fmt.Errorf("failed to update payment status: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, CachePrefix)

	return payment, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.PaymentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetPayment, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	payment, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get payment")

		return res, fmt.Errorf("failed to get payment: %w", err)
	}

	if payment.ID == constant.Empty {
		return res, failure.NotFound("payment not found") // nolint:wrapcheck
	}

	res.FromModel(payment)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save payment to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetPaymentsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllPayment, req, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count payments")

		return res, fmt.Errorf("failed to count payments: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get payments")

		return res, fmt.Errorf("failed to get payments: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save payments to cache")
		}
	}()

	return res, nil
}

// publish emits an event after commit; delivery failures are only logged.
func (s *serviceImpl) publish(ctx context.Context, topic, key string, event any) {
	if err := s.kafka.SendMessages(ctx, topic, kafka.Message{Key: key, Value: event}); err != nil {
		log.Error().Err(err).Str("topic", topic).Str("key", key).Msg("failed to publish payment event")
	}
}
