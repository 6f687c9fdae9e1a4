package service_test

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"voyage/config"
	kafkaMocks "voyage/infras/kafka/mocks"
	otelMocks "voyage/infras/otel/mocks"
	bookingMocks "voyage/internal/domains/booking/mocks"
	"voyage/internal/domains/booking/model"
	"voyage/internal/domains/booking/model/dto"
	"voyage/internal/domains/booking/reference"
	"voyage/internal/domains/booking/service"
	inventoryMocks "voyage/internal/domains/inventory/mocks"
	inventoryModel "voyage/internal/domains/inventory/model"
	inventoryService "voyage/internal/domains/inventory/service"
	rtModel "voyage/internal/domains/roomtype/model"
	cacheMocks "voyage/shared/cache/mocks"
	"voyage/shared/constant"
	gDto "voyage/shared/dto"
	"voyage/shared/failure"
	"voyage/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testUserID     = "9f1c2d44-6c1e-4d7b-8a0b-0c1f3e2a7b11"
	testRoomTypeID = "3b0a6f3c-1d2e-4f5a-9b8c-7d6e5f4a3b2c"
	testBookingID  = "5e8d7c6b-4a39-4281-b706-f5e4d3c2b1a0"
)

type fixedReferences struct {
	mu   sync.Mutex
	refs []string
}

func (f *fixedReferences) Generate() (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.refs) == 0 {
		return "", errors.New("no references left")
	}

	ref := f.refs[0]
	f.refs = f.refs[1:]

	return ref, nil
}

type fixture struct {
	repo      *bookingMocks.MockBooking
	available *inventoryMocks.MockInventoryService
	cache     *cacheMocks.MockRedisCache
	kafka     *kafkaMocks.MockClient
	cfg       *config.Config
}

func newFixture(t *testing.T) (*fixture, *gomock.Controller) {
	t.Helper()

	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Booking.TaxRate = decimal.RequireFromString("0.15")
	cfg.Booking.ReferenceMaxAttempts = 3
	cfg.Kafka.Topics.Booking = "voyage.booking"

	f := &fixture{
		repo:  bookingMocks.NewMockBooking(ctrl),
		cache: cacheMocks.NewMockRedisCache(ctrl),
		kafka: kafkaMocks.NewMockClient(ctrl),
		cfg:   cfg,
	}

	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.kafka.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return f, ctrl
}

func runInTx(_ context.Context, fn func(*sqlx.Tx) error) error {
	return fn(nil)
}

func userContext(userID, role string) context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, userID)

	return context.WithValue(ctx, constant.ContextKeyUserRole, role)
}

func futureRequest(nights, rooms, guests int) dto.CreateBookingRequest {
	checkIn := timezone.Today().AddDate(0, 0, 30)

	return dto.CreateBookingRequest{
		RoomTypeID:     testRoomTypeID,
		CheckIn:        checkIn.Format(constant.DayFormat),
		CheckOut:       checkIn.AddDate(0, 0, nights).Format(constant.DayFormat),
		NumGuests:      guests,
		NumRooms:       rooms,
		GuestFirstName: "Ada",
		GuestLastName:  "Lovelace",
		GuestEmail:     "ada@example.com",
	}
}

func deluxe(totalRooms int) rtModel.RoomType {
	return rtModel.RoomType{
		ID:            testRoomTypeID,
		Name:          "Deluxe",
		MaxOccupancy:  2,
		PricePerNight: decimal.RequireFromString("150.00"),
		TotalRooms:    totalRooms,
	}
}

func TestBookingService_Create(t *testing.T) {
	tests := []struct {
		name       string
		req        dto.CreateBookingRequest
		setupMock  func(f *fixture, inv *inventoryMocks.MockInventory)
		wantReason string
		wantCode   int
	}{
		{
			name: "reserves rooms and freezes the price",
			req:  futureRequest(2, 1, 2),
			setupMock: func(f *fixture, inv *inventoryMocks.MockInventory) {
				inv.EXPECT().Transaction(gomock.Any(), gomock.Any()).DoAndReturn(runInTx)
				inv.EXPECT().LockRoomTypeTx(gomock.Any(), gomock.Any(), testRoomTypeID).Return(deluxe(10), nil)
				f.available.EXPECT().AvailableUnitsTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(4, nil)
				f.repo.EXPECT().ExistTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
				f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "room type missing",
			req:  futureRequest(2, 1, 2),
			setupMock: func(_ *fixture, inv *inventoryMocks.MockInventory) {
				inv.EXPECT().Transaction(gomock.Any(), gomock.Any()).DoAndReturn(runInTx)
				inv.EXPECT().LockRoomTypeTx(gomock.Any(), gomock.Any(), testRoomTypeID).Return(rtModel.RoomType{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "too many guests for the rooms requested",
			req:  futureRequest(2, 1, 3),
			setupMock: func(_ *fixture, inv *inventoryMocks.MockInventory) {
				inv.EXPECT().Transaction(gomock.Any(), gomock.Any()).DoAndReturn(runInTx)
				inv.EXPECT().LockRoomTypeTx(gomock.Any(), gomock.Any(), testRoomTypeID).Return(deluxe(10), nil)
			},
			wantReason: failure.ReasonValidation,
		},
		{
			name: "not enough rooms left",
			req:  futureRequest(2, 3, 2),
			setupMock: func(f *fixture, inv *inventoryMocks.MockInventory) {
				inv.EXPECT().Transaction(gomock.Any(), gomock.Any()).DoAndReturn(runInTx)
				inv.EXPECT().LockRoomTypeTx(gomock.Any(), gomock.Any(), testRoomTypeID).Return(deluxe(10), nil)
				f.available.EXPECT().AvailableUnitsTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(2, nil)
			},
			wantReason: failure.ReasonCapacityExceeded,
		},
		{
			name: "check out before check in",
			req: dto.CreateBookingRequest{
				RoomTypeID: testRoomTypeID,
				CheckIn:    timezone.Today().AddDate(0, 0, 10).Format(constant.DayFormat),
				CheckOut:   timezone.Today().AddDate(0, 0, 9).Format(constant.DayFormat),
				NumGuests:  1,
				NumRooms:   1,
			},
			setupMock:  func(*fixture, *inventoryMocks.MockInventory) {},
			wantReason: failure.ReasonValidation,
		},
		{
			name: "check in in the past",
			req: dto.CreateBookingRequest{
				RoomTypeID: testRoomTypeID,
				CheckIn:    timezone.Today().AddDate(0, 0, -1).Format(constant.DayFormat),
				CheckOut:   timezone.Today().AddDate(0, 0, 1).Format(constant.DayFormat),
				NumGuests:  1,
				NumRooms:   1,
			},
			setupMock:  func(*fixture, *inventoryMocks.MockInventory) {},
			wantReason: failure.ReasonValidation,
		},
		{
			name: "database error is wrapped",
			req:  futureRequest(2, 1, 2),
			setupMock: func(_ *fixture, inv *inventoryMocks.MockInventory) {
				inv.EXPECT().Transaction(gomock.Any(), gomock.Any()).DoAndReturn(runInTx)
				inv.EXPECT().LockRoomTypeTx(gomock.Any(), gomock.Any(), testRoomTypeID).Return(rtModel.RoomType{}, errors.New("connection reset"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, ctrl := newFixture(t)
			defer ctrl.Finish()

			inv := inventoryMocks.NewMockInventory(ctrl)
			f.available = newAvailabilityMock(ctrl)
			tt.setupMock(f, inv)

			svc := service.New(f.repo, inv, f.available, &fixedReferences{refs: []string{"AB12CD34"}}, f.kafka, f.cfg, f.cache, otelMocks.NewOtel())

			res, err := svc.Create(userContext(testUserID, constant.RoleUser), tt.req)

			switch {
			case tt.wantReason != "":
				require.Error(t, err)
				assert.Equal(t, tt.wantReason, failure.GetReason(err))
			case tt.wantCode != 0:
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			default:
				require.NoError(t, err)
				assert.Equal(t, "AB12CD34", res.BookingReference)
				assert.Equal(t, model.StatusPending, res.Status)
				assert.Equal(t, testUserID, res.UserID)
				assert.Equal(t, 2, res.NumNights)
				assert.Equal(t, "150.00", res.PricePerNight)
				assert.Equal(t, "300.00", res.Subtotal)
				assert.Equal(t, "45.00", res.Taxes)
				assert.Equal(t, "345.00", res.TotalPrice)
			}
		})
	}
}

func TestBookingService_Create_ReferenceCollision(t *testing.T) {
	t.Run("retries with a fresh reference", func(t *testing.T) {
		f, ctrl := newFixture(t)
		defer ctrl.Finish()

		inv := inventoryMocks.NewMockInventory(ctrl)
		f.available = newAvailabilityMock(ctrl)

		inv.EXPECT().Transaction(gomock.Any(), gomock.Any()).DoAndReturn(runInTx).Times(2)
		inv.EXPECT().LockRoomTypeTx(gomock.Any(), gomock.Any(), testRoomTypeID).Return(deluxe(10), nil).Times(2)
		f.available.EXPECT().AvailableUnitsTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(10, nil).Times(2)
		gomock.InOrder(
			f.repo.EXPECT().ExistTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil),
			f.repo.EXPECT().ExistTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil),
		)
		f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		refs := &fixedReferences{refs: []string{"TAKEN001", "FRESH002"}}
		svc := service.New(f.repo, inv, f.available, refs, f.kafka, f.cfg, f.cache, otelMocks.NewOtel())

		res, err := svc.Create(userContext(testUserID, constant.RoleUser), futureRequest(1, 1, 1))

		require.NoError(t, err)
		assert.Equal(t, "FRESH002", res.BookingReference)
	})

	t.Run("gives up after the configured attempts", func(t *testing.T) {
		f, ctrl := newFixture(t)
		defer ctrl.Finish()

		inv := inventoryMocks.NewMockInventory(ctrl)
		f.available = newAvailabilityMock(ctrl)

		inv.EXPECT().Transaction(gomock.Any(), gomock.Any()).DoAndReturn(runInTx).Times(3)
		inv.EXPECT().LockRoomTypeTx(gomock.Any(), gomock.Any(), testRoomTypeID).Return(deluxe(10), nil).Times(3)
		f.available.EXPECT().AvailableUnitsTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(10, nil).Times(3)
		f.repo.EXPECT().ExistTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil).Times(3)

		refs := &fixedReferences{refs: []string{"AAAAAAAA", "BBBBBBBB", "CCCCCCCC"}}
		svc := service.New(f.repo, inv, f.available, refs, f.kafka, f.cfg, f.cache, otelMocks.NewOtel())

		_, err := svc.Create(userContext(testUserID, constant.RoleUser), futureRequest(1, 1, 1))

		require.Error(t, err)
		assert.ErrorIs(t, err, failure.ErrUniquenessConflict)
	})
}

func TestBookingService_Transitions(t *testing.T) {
	past := timezone.Today().AddDate(0, 0, -3)
	future := timezone.Today().AddDate(0, 0, 3)

	booking := func(status string, checkOut time.Time) model.Booking {
		return model.Booking{
			ID:               testBookingID,
			BookingReference: "AB12CD34",
			UserID:           testUserID,
			RoomTypeID:       testRoomTypeID,
			CheckIn:          checkOut.AddDate(0, 0, -2),
			CheckOut:         checkOut,
			NumRooms:         1,
			Status:           status,
		}
	}

	tests := []struct {
		name       string
		ctx        context.Context
		current    model.Booking
		call       func(ctx context.Context, svc service.Booking) (dto.BookingResponse, error)
		wantUpdate bool
		wantStatus string
		wantReason string
		wantCode   int
	}{
		{
			name:       "confirm pending",
			ctx:        userContext(testUserID, constant.RoleAdmin),
			current:    booking(model.StatusPending, future),
			call:       func(ctx context.Context, svc service.Booking) (dto.BookingResponse, error) { return svc.Confirm(ctx, testBookingID) },
			wantUpdate: true,
			wantStatus: model.StatusConfirmed,
		},
		{
			name:       "confirm cancelled",
			ctx:        userContext(testUserID, constant.RoleAdmin),
			current:    booking(model.StatusCancelled, future),
			call:       func(ctx context.Context, svc service.Booking) (dto.BookingResponse, error) { return svc.Confirm(ctx, testBookingID) },
			wantReason: failure.ReasonInvalidTransition,
		},
		{
			name:       "owner cancels confirmed",
			ctx:        userContext(testUserID, constant.RoleUser),
			current:    booking(model.StatusConfirmed, future),
			call:       func(ctx context.Context, svc service.Booking) (dto.BookingResponse, error) { return svc.Cancel(ctx, testBookingID) },
			wantUpdate: true,
			wantStatus: model.StatusCancelled,
		},
		{
			name:     "stranger cannot cancel",
			ctx:      userContext("someone-else", constant.RoleUser),
			current:  booking(model.StatusPending, future),
			call:     func(ctx context.Context, svc service.Booking) (dto.BookingResponse, error) { return svc.Cancel(ctx, testBookingID) },
			wantCode: http.StatusForbidden,
		},
		{
			name:     "stranger cannot cancel a completed booking",
			ctx:      userContext("someone-else", constant.RoleUser),
			current:  booking(model.StatusCompleted, past),
			call:     func(ctx context.Context, svc service.Booking) (dto.BookingResponse, error) { return svc.Cancel(ctx, testBookingID) },
			wantCode: http.StatusForbidden,
		},
		{
			name:       "cancel completed",
			ctx:        userContext(testUserID, constant.RoleUser),
			current:    booking(model.StatusCompleted, past),
			call:       func(ctx context.Context, svc service.Booking) (dto.BookingResponse, error) { return svc.Cancel(ctx, testBookingID) },
			wantReason: failure.ReasonInvalidTransition,
		},
		{
			name:       "complete after check out",
			ctx:        userContext(testUserID, constant.RoleAdmin),
			current:    booking(model.StatusConfirmed, past),
			call:       func(ctx context.Context, svc service.Booking) (dto.BookingResponse, error) { return svc.Complete(ctx, testBookingID) },
			wantUpdate: true,
			wantStatus: model.StatusCompleted,
		},
		{
			name:       "complete before check out",
			ctx:        userContext(testUserID, constant.RoleAdmin),
			current:    booking(model.StatusConfirmed, future),
			call:       func(ctx context.Context, svc service.Booking) (dto.BookingResponse, error) { return svc.Complete(ctx, testBookingID) },
			wantReason: failure.ReasonStayNotFinished,
		},
		{
			name:       "complete pending",
			ctx:        userContext(testUserID, constant.RoleAdmin),
			current:    booking(model.StatusPending, past),
			call:       func(ctx context.Context, svc service.Booking) (dto.BookingResponse, error) { return svc.Complete(ctx, testBookingID) },
			wantReason: failure.ReasonInvalidTransition,
		},
		{
			name:     "booking missing",
			ctx:      userContext(testUserID, constant.RoleAdmin),
			current:  model.Booking{},
			call:     func(ctx context.Context, svc service.Booking) (dto.BookingResponse, error) { return svc.Confirm(ctx, testBookingID) },
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, ctrl := newFixture(t)
			defer ctrl.Finish()

			f.repo.EXPECT().Transaction(gomock.Any(), gomock.Any()).DoAndReturn(runInTx)
			f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(tt.current, nil)

			if tt.wantUpdate {
				f.repo.EXPECT().
					UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, req map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, tt.wantStatus, req[model.FieldStatus])

						return nil
					})
			}

			svc := service.New(f.repo, inventoryMocks.NewMockInventory(ctrl), newAvailabilityMock(ctrl), reference.New(), f.kafka, f.cfg, f.cache, otelMocks.NewOtel())

			res, err := tt.call(tt.ctx, svc)

			switch {
			case tt.wantReason != "":
				require.Error(t, err)
				assert.Equal(t, tt.wantReason, failure.GetReason(err))
			case tt.wantCode != 0:
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.wantStatus, res.Status)
			}
		})
	}
}

func TestBookingService_Get(t *testing.T) {
	stored := model.Booking{
		ID:               testBookingID,
		BookingReference: "AB12CD34",
		UserID:           testUserID,
		Status:           model.StatusPending,
		PricePerNight:    decimal.RequireFromString("99.90"),
	}

	tests := []struct {
		name     string
		ctx      context.Context
		stored   model.Booking
		wantCode int
	}{
		{name: "owner", ctx: userContext(testUserID, constant.RoleUser), stored: stored},
		{name: "admin", ctx: userContext("admin-id", constant.RoleAdmin), stored: stored},
		{name: "another guest", ctx: userContext("someone-else", constant.RoleUser), stored: stored, wantCode: http.StatusForbidden},
		{name: "missing", ctx: userContext(testUserID, constant.RoleUser), stored: model.Booking{}, wantCode: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, ctrl := newFixture(t)
			defer ctrl.Finish()

			f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
			f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(tt.stored, nil)

			svc := service.New(f.repo, inventoryMocks.NewMockInventory(ctrl), newAvailabilityMock(ctrl), reference.New(), f.kafka, f.cfg, f.cache, otelMocks.NewOtel())

			res, err := svc.Get(tt.ctx, testBookingID)

			time.Sleep(10 * time.Millisecond)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "99.90", res.PricePerNight)
		})
	}
}

func TestBookingService_GetByReference_Invalid(t *testing.T) {
	f, ctrl := newFixture(t)
	defer ctrl.Finish()

	svc := service.New(f.repo, inventoryMocks.NewMockInventory(ctrl), newAvailabilityMock(ctrl), reference.New(), f.kafka, f.cfg, f.cache, otelMocks.NewOtel())

	_, err := svc.GetByReference(userContext(testUserID, constant.RoleUser), "ab12-cd3")

	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

// Eleven guests race for the last ten rooms of a room type.
func TestBookingService_Create_ConcurrentRequestsNeverOversell(t *testing.T) {
	const totalRooms = 10

	f, ctrl := newFixture(t)
	defer ctrl.Finish()

	store := newLedger(deluxe(totalRooms))
	svc := service.New(store, store, inventoryService.New(store, otelMocks.NewOtel()), reference.New(), f.kafka, f.cfg, f.cache, otelMocks.NewOtel())

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		rejected  int
	)

	for i := range totalRooms + 1 {
		wg.Add(1)

		go func(guest int) {
			defer wg.Done()

			_, err := svc.Create(userContext(testUserID, constant.RoleUser), futureRequest(3, 1, 1))

			mu.Lock()
			defer mu.Unlock()

			switch {
			case err == nil:
				succeeded++
			case errors.Is(err, failure.ErrCapacityExceeded):
				rejected++
			default:
				t.Errorf("guest %d: unexpected error %v", guest, err)
			}
		}(i)
	}

	wg.Wait()

	assert.Equal(t, totalRooms, succeeded)
	assert.Equal(t, 1, rejected)
	assert.Equal(t, totalRooms, store.reserved(testRoomTypeID))
}

func TestBookingService_Cancel_ReleasesRooms(t *testing.T) {
	f, ctrl := newFixture(t)
	defer ctrl.Finish()

	store := newLedger(deluxe(5))
	inventory := inventoryService.New(store, otelMocks.NewOtel())
	svc := service.New(store, store, inventory, reference.New(), f.kafka, f.cfg, f.cache, otelMocks.NewOtel())

	ctx := userContext(testUserID, constant.RoleUser)
	req := futureRequest(3, 2, 4)

	stay, err := inventoryModel.ParseDateRange(req.CheckIn, req.CheckOut)
	require.NoError(t, err)

	created, err := svc.Create(ctx, req)
	require.NoError(t, err)

	before, err := inventory.AvailableUnits(ctx, testRoomTypeID, stay)
	require.NoError(t, err)
	assert.Equal(t, 3, before.AvailableUnits)

	cancelled, err := svc.Cancel(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusCancelled, cancelled.Status)

	after, err := inventory.AvailableUnits(ctx, testRoomTypeID, stay)
	require.NoError(t, err)
	assert.Equal(t, before.AvailableUnits+req.NumRooms, after.AvailableUnits)
}

func TestBookingService_Create_SameRequestTwiceGetsDistinctReferences(t *testing.T) {
	f, ctrl := newFixture(t)
	defer ctrl.Finish()

	store := newLedger(deluxe(2))
	svc := service.New(store, store, inventoryService.New(store, otelMocks.NewOtel()), reference.New(), f.kafka, f.cfg, f.cache, otelMocks.NewOtel())

	ctx := userContext(testUserID, constant.RoleUser)
	req := futureRequest(2, 1, 1)

	first, err := svc.Create(ctx, req)
	require.NoError(t, err)

	second, err := svc.Create(ctx, req)
	require.NoError(t, err)

	assert.True(t, reference.Valid(first.BookingReference))
	assert.True(t, reference.Valid(second.BookingReference))
	assert.NotEqual(t, first.BookingReference, second.BookingReference)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, first.TotalPrice, second.TotalPrice)
}

func newAvailabilityMock(ctrl *gomock.Controller) *inventoryMocks.MockInventoryService {
	return inventoryMocks.NewMockInventoryService(ctrl)
}

// ledger is an in-memory booking table. Transaction serializes callers the way the
// room type row lock does in postgres.
type ledger struct {
	mu       sync.Mutex
	roomType rtModel.RoomType
	rows     []model.Booking
}

func newLedger(roomType rtModel.RoomType) *ledger {
	return &ledger{roomType: roomType}
}

func (l *ledger) reserved(roomTypeID string) int {
	total := 0

	for _, row := range l.rows {
		if row.RoomTypeID == roomTypeID && row.IsActive() {
			total += row.NumRooms
		}
	}

	return total
}

func (l *ledger) Transaction(_ context.Context, fn func(tx *sqlx.Tx) error) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	return fn(nil)
}

func (l *ledger) LockRoomTypeTx(_ context.Context, _ *sqlx.Tx, roomTypeID string) (rtModel.RoomType, error) {
	if roomTypeID != l.roomType.ID {
		return rtModel.RoomType{}, nil
	}

	return l.roomType, nil
}

func (l *ledger) GetRoomType(ctx context.Context, roomTypeID string) (rtModel.RoomType, error) {
	return l.LockRoomTypeTx(ctx, nil, roomTypeID)
}

func (l *ledger) ReservedUnits(ctx context.Context, roomTypeID string, stay inventoryModel.DateRange) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.ReservedUnitsTx(ctx, nil, roomTypeID, stay)
}

func (l *ledger) ReservedUnitsTx(_ context.Context, _ *sqlx.Tx, roomTypeID string, stay inventoryModel.DateRange) (int, error) {
	total := 0

	for _, row := range l.rows {
		if row.RoomTypeID == roomTypeID && row.IsActive() && stay.Overlaps(row.Stay()) {
			total += row.NumRooms
		}
	}

	return total, nil
}

func (l *ledger) PeakReservedTx(_ context.Context, _ *sqlx.Tx, roomTypeID string, _ time.Time) (int, error) {
	return l.reserved(roomTypeID), nil
}

func (l *ledger) InsertTx(_ context.Context, _ *sqlx.Tx, booking model.Booking) error {
	l.rows = append(l.rows, booking)

	return nil
}

// find returns the index of the row whose field equals the first equality filter, or -1.
func (l *ledger) find(filter gDto.FilterGroup) int {
	for _, raw := range filter.Filters {
		f, ok := raw.(gDto.Filter)
		if !ok {
			continue
		}

		for i, row := range l.rows {
			switch f.Field {
			case model.FieldID:
				if row.ID == f.Value {
					return i
				}
			case model.FieldBookingReference:
				if row.BookingReference == f.Value {
					return i
				}
			}
		}
	}

	return -1
}

func (l *ledger) Get(_ context.Context, filter gDto.FilterGroup, _ ...string) (model.Booking, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if i := l.find(filter); i >= 0 {
		return l.rows[i], nil
	}

	return model.Booking{}, nil
}

func (l *ledger) GetForUpdateTx(_ context.Context, _ *sqlx.Tx, filter gDto.FilterGroup, _ ...string) (model.Booking, error) {
	if i := l.find(filter); i >= 0 {
		return l.rows[i], nil
	}

	return model.Booking{}, nil
}

func (l *ledger) GetAll(context.Context, gDto.QueryParams, gDto.FilterGroup, ...string) ([]model.Booking, error) {
	return l.rows, nil
}

func (l *ledger) Exist(_ context.Context, filter gDto.FilterGroup) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.find(filter) >= 0, nil
}

func (l *ledger) ExistTx(_ context.Context, _ *sqlx.Tx, filter gDto.FilterGroup) (bool, error) {
	return l.find(filter) >= 0, nil
}

func (l *ledger) Count(context.Context, gDto.FilterGroup) (int, error) {
	return len(l.rows), nil
}

func (l *ledger) UpdateTx(_ context.Context, _ *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error {
	i := l.find(filter)
	if i < 0 {
		return nil
	}

	if status, ok := req[model.FieldStatus].(string); ok {
		l.rows[i].Status = status
	}

	return nil
}
