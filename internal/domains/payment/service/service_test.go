package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"voyage/config"
	kafkaMocks "voyage/infras/kafka/mocks"
	otelMocks "voyage/infras/otel/mocks"
	bookingMocks "voyage/internal/domains/booking/mocks"
	bookingModel "voyage/internal/domains/booking/model"
	paymentMocks "voyage/internal/domains/payment/mocks"
	"voyage/internal/domains/payment/model"
	"voyage/internal/domains/payment/model/dto"
	"voyage/internal/domains/payment/service"
	cacheMocks "voyage/shared/cache/mocks"
	"voyage/shared/constant"
	gDto "voyage/shared/dto"
	"voyage/shared/failure"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	guestID   = "1a2b3c4d-5e6f-4a1b-8c9d-0e1f2a3b4c5d"
	bookingID = "6f5e4d3c-2b1a-4f0e-9d8c-7b6a5f4e3d2c"
	paymentID = "a1b2c3d4-e5f6-4a7b-8c9d-e0f1a2b3c4d5"
)

type deps struct {
	repo     *paymentMocks.MockPayment
	bookings *bookingMocks.MockBooking
	kafka    *kafkaMocks.MockClient
	svc      service.Payment
}

func newDeps(t *testing.T) *deps {
	t.Helper()

	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Kafka.Topics.Booking = "voyage.booking"
	cfg.Kafka.Topics.Payment = "voyage.payment"

	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	d := &deps{
		repo:     paymentMocks.NewMockPayment(ctrl),
		bookings: bookingMocks.NewMockBooking(ctrl),
		kafka:    kafkaMocks.NewMockClient(ctrl),
	}
	d.svc = service.New(d.repo, d.bookings, d.kafka, cfg, mockCache, otelMocks.NewOtel())

	return d
}

func runInTx(_ context.Context, fn func(*sqlx.Tx) error) error {
	return fn(nil)
}

func asGuest(id string) context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, id)

	return context.WithValue(ctx, constant.ContextKeyUserRole, constant.RoleUser)
}

func pendingBooking() bookingModel.Booking {
	return bookingModel.Booking{
		ID:               bookingID,
		BookingReference: "QW12ER34",
		UserID:           guestID,
		Status:           bookingModel.StatusPending,
		TotalPrice:       decimal.RequireFromString("862.50"),
	}
}

func TestPaymentService_Create(t *testing.T) {
	req := dto.CreatePaymentRequest{
		BookingID:     bookingID,
		PaymentMethod: model.MethodCreditCard,
		TransactionID: "txn_0001",
		CardLast4:     "4242",
		CardBrand:     "visa",
	}

	cancelled := pendingBooking()
	cancelled.Status = bookingModel.StatusCancelled

	tests := []struct {
		name       string
		ctx        context.Context
		setupMock  func(d *deps)
		wantCode   int
		wantReason string
	}{
		{
			name: "charges the frozen booking total",
			ctx:  asGuest(guestID),
			setupMock: func(d *deps) {
				d.bookings.EXPECT().Get(gomock.Any(), gomock.Any()).Return(pendingBooking(), nil)
				d.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil).Times(2)
				d.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, payment model.Payment) error {
						assert.Equal(t, "862.50", payment.Amount.StringFixed(constant.MoneyDecimals))
						assert.Equal(t, model.StatusPending, payment.Status)

						return nil
					})
				d.kafka.EXPECT().SendMessages(gomock.Any(), "voyage.payment", gomock.Any()).Return(nil)
			},
		},
		{
			name: "booking missing",
			ctx:  asGuest(guestID),
			setupMock: func(d *deps) {
				d.bookings.EXPECT().Get(gomock.Any(), gomock.Any()).Return(bookingModel.Booking{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "someone else's booking",
			ctx:  asGuest("intruder"),
			setupMock: func(d *deps) {
				d.bookings.EXPECT().Get(gomock.Any(), gomock.Any()).Return(pendingBooking(), nil)
			},
			wantCode: http.StatusForbidden,
		},
		{
			name: "cancelled booking",
			ctx:  asGuest(guestID),
			setupMock: func(d *deps) {
				d.bookings.EXPECT().Get(gomock.Any(), gomock.Any()).Return(cancelled, nil)
			},
			wantReason: failure.ReasonValidation,
		},
		{
			name: "booking already paid",
			ctx:  asGuest(guestID),
			setupMock: func(d *deps) {
				d.bookings.EXPECT().Get(gomock.Any(), gomock.Any()).Return(pendingBooking(), nil)
				d.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantReason: failure.ReasonUniquenessConflict,
		},
		{
			name: "transaction id raced by another insert",
			ctx:  asGuest(guestID),
			setupMock: func(d *deps) {
				d.bookings.EXPECT().Get(gomock.Any(), gomock.Any()).Return(pendingBooking(), nil)
				d.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil).Times(2)
				d.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).
					Return(&pq.Error{Code: constant.PqErrorCodeUniqueViolation, Constraint: model.ConstraintTransactionID})
			},
			wantReason: failure.ReasonUniquenessConflict,
		},
		{
			name: "insert fails",
			ctx:  asGuest(guestID),
			setupMock: func(d *deps) {
				d.bookings.EXPECT().Get(gomock.Any(), gomock.Any()).Return(pendingBooking(), nil)
				d.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil).Times(2)
				d.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("database error"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newDeps(t)
			tt.setupMock(d)

			res, err := d.svc.Create(tt.ctx, req)

			switch {
			case tt.wantReason != "":
				require.Error(t, err)
				assert.Equal(t, tt.wantReason, failure.GetReason(err))
			case tt.wantCode != 0:
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			default:
				require.NoError(t, err)
				assert.Equal(t, "862.50", res.Amount)
				assert.Equal(t, bookingID, res.BookingID)
			}
		})
	}
}

func TestPaymentService_Complete(t *testing.T) {
	pending := model.Payment{ID: paymentID, BookingID: bookingID, Status: model.StatusPending}

	t.Run("confirms a pending booking in the same transaction", func(t *testing.T) {
		d := newDeps(t)

		d.repo.EXPECT().Transaction(gomock.Any(), gomock.Any()).DoAndReturn(runInTx)
		d.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(pending, nil)
		d.bookings.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(pendingBooking(), nil)
		d.bookings.EXPECT().
			UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, req map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, bookingModel.StatusConfirmed, req[bookingModel.FieldStatus])

				return nil
			})
		d.repo.EXPECT().
			UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, req map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, model.StatusCompleted, req[model.FieldStatus])
				assert.Contains(t, req, model.FieldCompletedAt)

				return nil
			})
		d.kafka.EXPECT().SendMessages(gomock.Any(), "voyage.payment", gomock.Any()).Return(nil)
		d.kafka.EXPECT().SendMessages(gomock.Any(), "voyage.booking", gomock.Any()).Return(nil)

		res, err := d.svc.Complete(asGuest(guestID), paymentID)

		require.NoError(t, err)
		assert.Equal(t, model.StatusCompleted, res.Status)
		assert.NotNil(t, res.CompletedAt)
	})

	t.Run("leaves a confirmed booking alone", func(t *testing.T) {
		d := newDeps(t)

		confirmed := pendingBooking()
		confirmed.Status = bookingModel.StatusConfirmed

		d.repo.EXPECT().Transaction(gomock.Any(), gomock.Any()).DoAndReturn(runInTx)
		d.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(pending, nil)
		d.bookings.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(confirmed, nil)
		d.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		d.kafka.EXPECT().SendMessages(gomock.Any(), "voyage.payment", gomock.Any()).Return(nil)

		_, err := d.svc.Complete(asGuest(guestID), paymentID)

		require.NoError(t, err)
	})

	t.Run("booking was cancelled meanwhile", func(t *testing.T) {
		d := newDeps(t)

		cancelled := pendingBooking()
		cancelled.Status = bookingModel.StatusCancelled

		d.repo.EXPECT().Transaction(gomock.Any(), gomock.Any()).DoAndReturn(runInTx)
		d.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(pending, nil)
		d.bookings.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(cancelled, nil)

		_, err := d.svc.Complete(asGuest(guestID), paymentID)

		require.Error(t, err)
		assert.ErrorIs(t, err, failure.ErrInvalidTransition)
	})
}

func TestPaymentService_Transitions(t *testing.T) {
	tests := []struct {
		name       string
		current    model.Payment
		call       func(ctx context.Context, svc service.Payment) (dto.PaymentResponse, error)
		wantStatus string
		wantCode   int
	}{
		{
			name:       "fail pending",
			current:    model.Payment{ID: paymentID, Status: model.StatusPending},
			call:       func(ctx context.Context, svc service.Payment) (dto.PaymentResponse, error) { return svc.Fail(ctx, paymentID) },
			wantStatus: model.StatusFailed,
		},
		{
			name:       "refund completed",
			current:    model.Payment{ID: paymentID, Status: model.StatusCompleted},
			call:       func(ctx context.Context, svc service.Payment) (dto.PaymentResponse, error) { return svc.Refund(ctx, paymentID) },
			wantStatus: model.StatusRefunded,
		},
		{
			name:     "refund pending",
			current:  model.Payment{ID: paymentID, Status: model.StatusPending},
			call:     func(ctx context.Context, svc service.Payment) (dto.PaymentResponse, error) { return svc.Refund(ctx, paymentID) },
			wantCode: http.StatusUnprocessableEntity,
		},
		{
			name:     "fail refunded",
			current:  model.Payment{ID: paymentID, Status: model.StatusRefunded},
			call:     func(ctx context.Context, svc service.Payment) (dto.PaymentResponse, error) { return svc.Fail(ctx, paymentID) },
			wantCode: http.StatusUnprocessableEntity,
		},
		{
			name:     "payment missing",
			current:  model.Payment{},
			call:     func(ctx context.Context, svc service.Payment) (dto.PaymentResponse, error) { return svc.Fail(ctx, paymentID) },
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newDeps(t)

			d.repo.EXPECT().Transaction(gomock.Any(), gomock.Any()).DoAndReturn(runInTx)
			d.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(tt.current, nil)

			if tt.wantCode == 0 {
				d.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				d.kafka.EXPECT().SendMessages(gomock.Any(), "voyage.payment", gomock.Any()).Return(nil)
			}

			res, err := tt.call(asGuest(guestID), d.svc)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, res.Status)
		})
	}
}

func TestPaymentService_Get(t *testing.T) {
	d := newDeps(t)

	mockCache := cacheMocks.NewMockRedisCache(gomock.NewController(t))
	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, _ string, value any) error {
		res, ok := value.(*dto.PaymentResponse)
		require.True(t, ok)

		res.ID = paymentID
		res.Status = model.StatusCompleted

		return nil
	})

	cfg := &config.Config{}
	svc := service.New(d.repo, d.bookings, d.kafka, cfg, mockCache, otelMocks.NewOtel())

	res, err := svc.Get(context.Background(), paymentID)

	require.NoError(t, err)
	assert.Equal(t, model.StatusCompleted, res.Status)
}
